/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: model.go
Description: Candidate model for the DateSense format detector. Tracks, for
each position in a tokenized reference date string, the directive and literal
candidates that could occupy it, together with the range of numeric values
observed there across samples.
*/

package model

import (
	"strconv"

	"github.com/kleascm/datesense/pkg/catalog"
	"github.com/kleascm/datesense/pkg/token"
)

// ValueRange is the inclusive range of numeric values observed at a position
type ValueRange struct {
	Min int
	Max int
}

// Widen grows the range to include the value. Ranges only ever widen,
// never narrow.
func (r *ValueRange) Widen(value int) {
	if value < r.Min {
		r.Min = value
	}
	if value > r.Max {
		r.Max = value
	}
}

// Position is one slot in the reference token sequence. Candidates are kept
// in insertion order; Range is nil until a numeric candidate is created for
// the position.
type Position struct {
	Candidates []*token.Token
	Range      *ValueRange
}

// Model holds the per-position candidate state for one detection session.
// A model is built once from the first sample, refined by culling and rule
// scoring, and consumed once by format assembly; it is not safe for
// concurrent use, but independent models may run in parallel and share the
// same read-only catalogs.
type Model struct {
	Positions []*Position

	numOptions  []*catalog.NumericOption
	wordOptions []*catalog.WordOption
	tzDirective string
}

// New builds a model from a tokenized reference sample. Every position gets
// a literal candidate for its raw text; numeric, word and timezone tokens
// additionally get one candidate per catalog option that accepts them. The
// position count is fixed here and never changes afterwards.
func New(reference []*token.Token, numOptions []*catalog.NumericOption, wordOptions []*catalog.WordOption, tzDirective string) *Model {
	m := &Model{
		Positions:   make([]*Position, 0, len(reference)),
		numOptions:  numOptions,
		wordOptions: wordOptions,
		tzDirective: tzDirective,
	}
	for _, tok := range reference {
		pos := &Position{Candidates: []*token.Token{token.NewLiteral(tok.Text)}}
		switch tok.Kind {
		case token.KindNumeric:
			if value, err := strconv.Atoi(tok.Text); err == nil {
				for _, opt := range m.numOptions {
					if opt.Includes(value) {
						pos.Candidates = append(pos.Candidates, token.NewNumeric(opt))
						pos.Range = &ValueRange{Min: value, Max: value}
					}
				}
			}
		case token.KindWord:
			for _, opt := range m.wordOptions {
				if opt.Includes(tok.Text) {
					pos.Candidates = append(pos.Candidates, token.NewWord(opt))
				}
			}
		case token.KindTimezone:
			pos.Candidates = append(pos.Candidates, token.NewTimezone(m.tzDirective))
		}
		m.Positions = append(m.Positions, pos)
	}
	return m
}

// TimezoneDirective returns the directive used for timezone offset tokens
func (m *Model) TimezoneDirective() string {
	return m.tzDirective
}
