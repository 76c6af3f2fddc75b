/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: duplicates.go
Description: Duplicate resolver for the DateSense candidate model. A date
format ought to contain each directive at most once, so directives that win
in more than one position have all but their strongest occurrence penalized.
*/

package model

import "github.com/kleascm/datesense/pkg/token"

// DefaultDuplicatePenalty is the score delta applied to duplicate
// high-scoring directive occurrences
const DefaultDuplicatePenalty = -2

// PenalizeDuplicates discourages a directive from winning more than one
// position. This is best-effort cleanup, not a constraint solver: if
// duplicates actually arise, the rule set that produced them is the real
// problem.
//
// Step one: any directive that is the sole best candidate somewhere is
// penalized wherever it is merely tied for best. Step two: directives tied
// or best in several positions keep their single strongest occurrence
// (earliest wins ties) and are penalized everywhere else in the model.
func (m *Model) PenalizeDuplicates(penalty int) {
	// Step one: find directives that are the solitary high score anywhere.
	var uniqueBest []string
	seen := make(map[string]bool)
	for _, pos := range m.Positions {
		high := token.AllMaxScore(pos.Candidates)
		if len(high) == 1 && !high[0].IsLiteral() && !seen[high[0].Text] {
			seen[high[0].Text] = true
			uniqueBest = append(uniqueBest, high[0].Text)
		}
	}
	// Penalize those directives wherever the best set is still contested.
	for _, pos := range m.Positions {
		if len(token.AllMaxScore(pos.Candidates)) <= 1 {
			continue
		}
		for _, cand := range pos.Candidates {
			if seen[cand.Text] {
				cand.Score += penalty
			}
		}
	}

	// Step two: group best-scoring directive candidates by text.
	best := make(map[string][]*token.Token)
	var order []string
	for _, pos := range m.Positions {
		for _, cand := range token.AllMaxScore(pos.Candidates) {
			if cand.IsLiteral() {
				continue
			}
			if _, ok := best[cand.Text]; !ok {
				order = append(order, cand.Text)
			}
			best[cand.Text] = append(best[cand.Text], cand)
		}
	}
	// For each directive that wins in more than one place, keep its
	// strongest instance and penalize every other same-text candidate.
	for _, text := range order {
		group := best[text]
		if len(group) < 2 {
			continue
		}
		highest := group[0]
		for _, cand := range group[1:] {
			if cand.Score > highest.Score {
				highest = cand
			}
		}
		for _, pos := range m.Positions {
			for _, cand := range pos.Candidates {
				if cand.Text == text && cand != highest {
					cand.Score += penalty
				}
			}
		}
	}
}
