/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: mutual_exclusion.go
Description: Mutual exclusion rule for the DateSense format detector. Among
a group of rival directives that should not coexist in one format, like
24-hour and 12-hour fields, only the best-supported one is favored.
*/

package rules

import (
	"github.com/kleascm/datesense/pkg/model"
	"github.com/kleascm/datesense/pkg/token"
)

// MutualExclusionRule holds a group of mutually exclusive elements, each a
// set of directive texts. The element with the strongest candidate anywhere
// in the model wins; every other element is penalized everywhere.
type MutualExclusionRule struct {
	groups   [][]string
	posScore int
	negScore int
}

// NewMutualExclusionRule creates a mutual exclusion rule. Candidates of the
// winning element gain posScore everywhere they occur; candidates of the
// losing elements gain negScore. The rule is a no-op when no candidate
// belongs to any element.
func NewMutualExclusionRule(groups [][]string, posScore, negScore int) *MutualExclusionRule {
	return &MutualExclusionRule{groups: groups, posScore: posScore, negScore: negScore}
}

// Apply adjusts candidate scores in the model
func (r *MutualExclusionRule) Apply(m *model.Model) {
	// Find each element's single strongest candidate occurrence.
	// Earlier positions win score ties.
	champions := make([]*token.Token, len(r.groups))
	for _, pos := range m.Positions {
		for _, cand := range pos.Candidates {
			for gi, group := range r.groups {
				if !containsText(group, cand.Text) {
					continue
				}
				if champions[gi] == nil || cand.Score > champions[gi].Score {
					champions[gi] = cand
				}
			}
		}
	}
	// Pick the overall winner. Lower element indexes win ties.
	winner := -1
	for gi, champ := range champions {
		if champ == nil {
			continue
		}
		if winner == -1 || champ.Score > champions[winner].Score {
			winner = gi
		}
	}
	if winner == -1 {
		return
	}
	for _, pos := range m.Positions {
		for _, cand := range pos.Candidates {
			for gi, group := range r.groups {
				if !containsText(group, cand.Text) {
					continue
				}
				if gi == winner {
					cand.Score += r.posScore
				} else {
					cand.Score += r.negScore
				}
			}
		}
	}
}

// Name returns the name of this rule type
func (r *MutualExclusionRule) Name() string {
	return "MutualExclusionRule"
}

// Description returns a description of this rule
func (r *MutualExclusionRule) Description() string {
	return "Favors the best-supported directive of a group of rivals and penalizes the rest"
}
