/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: pattern.go
Description: Pattern rule for the DateSense format detector. Rewards
candidates that line up in a known ordered layout, like hh:mm:ss or
YYYY-MM-DD, and penalizes stray occurrences of the layout's directives.
*/

package rules

import (
	"github.com/kleascm/datesense/pkg/model"
	"github.com/kleascm/datesense/pkg/token"
)

// PatternRule scans positions left to right for an ordered sequence of
// directive-or-literal sets. Directives are eligible sequence members only
// while their current score is at least minMatchScore; literals are always
// eligible. Up to maxGap consecutive non-matching positions are tolerated
// between sequence elements before the search resets.
type PatternRule struct {
	sequence      [][]string
	maxGap        int
	minMatchScore int
	posScore      int
	negScore      int
}

// NewPatternRule creates a pattern rule. Candidates consumed by a complete
// occurrence of the sequence gain posScore; directive candidates named in
// the sequence that are part of no occurrence gain negScore. Literal
// candidates are never penalized.
func NewPatternRule(sequence [][]string, maxGap, minMatchScore, posScore, negScore int) *PatternRule {
	return &PatternRule{sequence: sequence, maxGap: maxGap, minMatchScore: minMatchScore, posScore: posScore, negScore: negScore}
}

// Apply adjusts candidate scores in the model
func (r *PatternRule) Apply(m *model.Model) {
	if len(r.sequence) == 0 {
		return
	}
	matched := make(map[*token.Token]bool)
	onElem := 0
	gap := 0
	var current []*token.Token
	for _, pos := range m.Positions {
		// Too many positions since the last sequence element means the
		// partial match is abandoned and the scan restarts here.
		if len(current) > 0 {
			gap++
			if gap > r.maxGap {
				onElem = 0
				gap = 0
				current = nil
			}
		}
		found := false
		for _, cand := range pos.Candidates {
			if !cand.IsLiteral() && cand.Score < r.minMatchScore {
				continue
			}
			if containsText(r.sequence[onElem], cand.Text) {
				current = append(current, cand)
				found = true
			}
		}
		if !found {
			continue
		}
		onElem++
		gap = 0
		if onElem == len(r.sequence) {
			// Full sequence matched; record it and scan for another
			// disjoint occurrence.
			for _, cand := range current {
				matched[cand] = true
			}
			onElem = 0
			current = nil
		}
	}

	if r.posScore != 0 {
		for _, pos := range m.Positions {
			for _, cand := range pos.Candidates {
				if matched[cand] {
					cand.Score += r.posScore
				}
			}
		}
	}
	if r.negScore != 0 {
		for _, pos := range m.Positions {
			for _, cand := range pos.Candidates {
				if cand.IsLiteral() || matched[cand] {
					continue
				}
				if r.mentions(cand.Text) {
					cand.Score += r.negScore
				}
			}
		}
	}
}

// mentions reports whether the text appears in any sequence element
func (r *PatternRule) mentions(text string) bool {
	for _, elem := range r.sequence {
		if containsText(elem, text) {
			return true
		}
	}
	return false
}

// Name returns the name of this rule type
func (r *PatternRule) Name() string {
	return "PatternRule"
}

// Description returns a description of this rule
func (r *PatternRule) Description() string {
	return "Rewards candidates forming a known ordered layout and penalizes stray members"
}
