/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: delimiter.go
Description: Delimiter rule for the DateSense format detector. Rewards
target directives that sit next to an expected delimiter, like hours and
minutes around ':', and optionally penalizes targets that do not.
*/

package rules

import (
	"github.com/kleascm/datesense/pkg/model"
	"github.com/kleascm/datesense/pkg/token"
)

// DelimiterRule adjusts target candidates based on adjacency to delimiter
// literals. Positions immediately next to any position holding one of the
// delimiters count as adjacent; adjacency is positional, so a position next
// to several delimiters is still only credited once.
type DelimiterRule struct {
	targets    []string
	delimiters []string
	posScore   int
	negScore   int
}

// NewDelimiterRule creates a delimiter rule. Target candidates at adjacent
// positions gain posScore; target candidates everywhere else gain negScore.
func NewDelimiterRule(targets, delimiters []string, posScore, negScore int) *DelimiterRule {
	return &DelimiterRule{targets: targets, delimiters: delimiters, posScore: posScore, negScore: negScore}
}

// Apply adjusts candidate scores in the model
func (r *DelimiterRule) Apply(m *model.Model) {
	adjacent := make(map[int]bool)
	for _, delim := range r.delimiters {
		for i, pos := range m.Positions {
			if token.FirstWithText(pos.Candidates, delim) == nil {
				continue
			}
			if i > 0 {
				adjacent[i-1] = true
			}
			if i < len(m.Positions)-1 {
				adjacent[i+1] = true
			}
		}
	}
	for i, pos := range m.Positions {
		delta := r.negScore
		if adjacent[i] {
			delta = r.posScore
		}
		if delta == 0 {
			continue
		}
		for _, cand := range pos.Candidates {
			if containsText(r.targets, cand.Text) {
				cand.Score += delta
			}
		}
	}
}

// Name returns the name of this rule type
func (r *DelimiterRule) Name() string {
	return "DelimiterRule"
}

// Description returns a description of this rule
func (r *DelimiterRule) Description() string {
	return "Rewards directives adjacent to expected delimiter literals"
}

// containsText reports whether text is one of the set entries
func containsText(set []string, text string) bool {
	for _, s := range set {
		if s == text {
			return true
		}
	}
	return false
}
