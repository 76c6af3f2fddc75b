/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: cull.go
Description: Culling passes for the DateSense candidate model. Additional
samples eliminate candidates whose values are inconsistent across the set,
and a final dominance pass removes literal candidates wherever a directive
interpretation survives.
*/

package model

import (
	"strconv"

	"github.com/kleascm/datesense/pkg/catalog"
	"github.com/kleascm/datesense/pkg/token"
)

// CullSamples culls candidates using a set of identically-formatted date
// strings. Each sample is tokenized and checked position by position; a
// candidate that cannot explain the sample's token there is removed.
func (m *Model) CullSamples(samples []string) {
	for _, sample := range samples {
		m.cullTokens(token.Tokenize(sample))
	}
}

// cullTokens culls candidates against one tokenized sample. Positions are
// walked up to the shorter of the two sequences; excess tokens on either
// side are ignored.
func (m *Model) cullTokens(sample []*token.Token) {
	n := len(m.Positions)
	if len(sample) < n {
		n = len(sample)
	}
	for i := 0; i < n; i++ {
		pos := m.Positions[i]
		observed := sample[i]
		kept := make([]*token.Token, 0, len(pos.Candidates))
		for _, cand := range pos.Candidates {
			if pos.accepts(cand, observed) {
				kept = append(kept, cand)
			}
		}
		pos.Candidates = kept
	}
}

// accepts reports whether the candidate survives the observed token, and
// widens the position's value range when a numeric candidate accepts a new
// value.
func (p *Position) accepts(cand, observed *token.Token) bool {
	// Literals must match the sample text exactly.
	if cand.IsLiteral() {
		return cand.Text == observed.Text
	}
	// Directives must agree on the token kind.
	if cand.Kind != observed.Kind {
		return false
	}
	switch cand.Kind {
	case token.KindNumeric:
		value, err := strconv.Atoi(observed.Text)
		if err != nil {
			return false
		}
		opt, ok := cand.Option.(*catalog.NumericOption)
		if !ok || !opt.Includes(value) {
			return false
		}
		p.Range.Widen(value)
		return true
	case token.KindWord:
		opt, ok := cand.Option.(*catalog.WordOption)
		return ok && opt.Includes(observed.Text)
	default:
		// Timezone offsets match any offset token.
		return true
	}
}

// CullLiterals removes literal candidates at any position where a directive
// candidate survives. A position cannot resolve to bare punctuation while a
// directive interpretation remains possible.
func (m *Model) CullLiterals() {
	for _, pos := range m.Positions {
		foundDirective := false
		foundLiteral := false
		for _, cand := range pos.Candidates {
			if cand.IsLiteral() {
				foundLiteral = true
			} else {
				foundDirective = true
			}
		}
		if !foundDirective || !foundLiteral {
			continue
		}
		kept := make([]*token.Token, 0, len(pos.Candidates))
		for _, cand := range pos.Candidates {
			if !cand.IsLiteral() {
				kept = append(kept, cand)
			}
		}
		pos.Candidates = kept
	}
}
