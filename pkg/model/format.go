/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: format.go
Description: Format assembly and debug views for the DateSense candidate
model. Selects the best candidate per position, renders the final format
string, and exposes short and long score dumps for inspection.
*/

package model

import (
	"sort"
	"strings"

	"github.com/kleascm/datesense/pkg/token"
)

// FormatTokens returns the current best candidate for each position.
// Ties go to the earliest candidate; positions with no candidates left
// contribute nothing.
func (m *Model) FormatTokens() []*token.Token {
	tokens := make([]*token.Token, 0, len(m.Positions))
	for _, pos := range m.Positions {
		if best := token.MaxScore(pos.Candidates); best != nil {
			tokens = append(tokens, best)
		}
	}
	return tokens
}

// FormatString renders the detected format. When escapePercent is set,
// literal '%' characters are doubled to '%%' the way strptime-style format
// strings require. When blankIfUnrecognized is set, an empty string is
// returned unless at least one directive was selected and every position
// produced a candidate.
func (m *Model) FormatString(escapePercent, blankIfUnrecognized bool) string {
	var b strings.Builder
	foundDirective := false
	selected := 0
	for _, tok := range m.FormatTokens() {
		if escapePercent && tok.IsLiteral() {
			b.WriteString(strings.ReplaceAll(tok.Text, "%", "%%"))
		} else {
			b.WriteString(tok.Text)
		}
		foundDirective = foundDirective || !tok.IsLiteral()
		selected++
	}
	if !blankIfUnrecognized || (foundDirective && selected == len(m.Positions)) {
		return b.String()
	}
	return ""
}

// ShortDebugString returns one line per position listing the candidates
// tied at the highest score, joined by tokDelim
func (m *Model) ShortDebugString(tokDelim, posDelim string) string {
	return m.debugString(tokDelim, posDelim, func(pos *Position) []*token.Token {
		return token.AllMaxScore(pos.Candidates)
	})
}

// LongDebugString returns one line per position listing every candidate
// sorted by descending score, joined by tokDelim
func (m *Model) LongDebugString(tokDelim, posDelim string) string {
	return m.debugString(tokDelim, posDelim, func(pos *Position) []*token.Token {
		sorted := make([]*token.Token, len(pos.Candidates))
		copy(sorted, pos.Candidates)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Score > sorted[j].Score
		})
		return sorted
	})
}

func (m *Model) debugString(tokDelim, posDelim string, pick func(*Position) []*token.Token) string {
	var b strings.Builder
	for i, pos := range m.Positions {
		if i > 0 {
			b.WriteString(posDelim)
		}
		candidates := pick(pos)
		if len(candidates) == 0 {
			b.WriteString("NONE")
			continue
		}
		for j, cand := range candidates {
			if j > 0 {
				b.WriteString(tokDelim)
			}
			b.WriteString(cand.String())
		}
	}
	return b.String()
}
