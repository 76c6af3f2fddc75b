/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: likely_range.go
Description: Likely range rule for the DateSense format detector. A numeric
directive is usually seen within a subset of its strictly possible values;
years, for instance, rarely fall outside 1000-3000.
*/

package rules

import (
	"github.com/kleascm/datesense/pkg/model"
	"github.com/kleascm/datesense/pkg/token"
)

// LikelyRangeRule adjusts target numeric candidates based on whether every
// value observed at their position fell inside the likely range
type LikelyRangeRule struct {
	targets  []string
	min, max int
	posScore int
	negScore int
}

// NewLikelyRangeRule creates a likely range rule over an inclusive range.
// Targets whose observed values all lie inside the range gain posScore;
// targets with any observation outside it gain negScore.
func NewLikelyRangeRule(targets []string, min, max, posScore, negScore int) *LikelyRangeRule {
	return &LikelyRangeRule{targets: targets, min: min, max: max, posScore: posScore, negScore: negScore}
}

// Apply adjusts candidate scores in the model. Positions that never saw a
// numeric value are skipped.
func (r *LikelyRangeRule) Apply(m *model.Model) {
	for _, pos := range m.Positions {
		if pos.Range == nil {
			continue
		}
		for _, cand := range pos.Candidates {
			if cand.Kind != token.KindNumeric || !containsText(r.targets, cand.Text) {
				continue
			}
			if pos.Range.Min >= r.min && pos.Range.Max <= r.max {
				cand.Score += r.posScore
			} else {
				cand.Score += r.negScore
			}
		}
	}
}

// Name returns the name of this rule type
func (r *LikelyRangeRule) Name() string {
	return "LikelyRangeRule"
}

// Description returns a description of this rule
func (r *LikelyRangeRule) Description() string {
	return "Rewards numeric directives whose observed values stay inside a likely range"
}
