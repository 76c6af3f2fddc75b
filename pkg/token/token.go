/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: token.go
Description: Token types for the DateSense format detector. Tokens classify
atomic runs of characters in a date string and, once attached to a model
position, double as directive or literal candidates carrying a mutable score.
*/

package token

import "fmt"

// Kind classifies a token
type Kind int

const (
	// KindLiteral is punctuation or any text that corresponds to no directive,
	// like the ':' characters in "%H:%M:%S"
	KindLiteral Kind = iota
	// KindNumeric is a run of decimal digits
	KindNumeric
	// KindWord is a run of ASCII letters
	KindWord
	// KindTimezone is a numeric UTC offset like +0100 or -0300
	KindTimezone
)

// kindNames are the short names used in debug output
var kindNames = [...]string{"lit", "num", "word", "tz"}

// String returns the short debug name of the kind
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// DirectiveOption describes a directive a candidate token can stand for.
// Implemented by catalog.NumericOption and catalog.WordOption.
type DirectiveOption interface {
	// Directive returns the directive symbol, like "%H" or "%b"
	Directive() string
	// Commonality returns the initial score for candidates of this directive
	Commonality() int
}

// Token is a single classified unit. In a tokenized date string Text holds
// the raw characters; in a candidate list Text holds the directive symbol
// (or the literal text) and Score tracks how likely the detector currently
// considers the candidate to be.
type Token struct {
	Kind   Kind
	Text   string
	Score  int
	Option DirectiveOption
}

// NewLiteral creates a literal candidate carrying the raw text at a position
func NewLiteral(text string) *Token {
	return &Token{Kind: KindLiteral, Text: text}
}

// NewNumeric creates a numeric directive candidate from an option,
// scored at the option's commonality
func NewNumeric(option DirectiveOption) *Token {
	return &Token{Kind: KindNumeric, Text: option.Directive(), Score: option.Commonality(), Option: option}
}

// NewWord creates an alphabetical directive candidate from an option,
// scored at the option's commonality
func NewWord(option DirectiveOption) *Token {
	return &Token{Kind: KindWord, Text: option.Directive(), Score: option.Commonality(), Option: option}
}

// NewTimezone creates a candidate for the timezone offset directive
// (normally "%z")
func NewTimezone(directive string) *Token {
	return &Token{Kind: KindTimezone, Text: directive}
}

// IsLiteral reports whether the token is a literal, not a directive
func (t *Token) IsLiteral() bool { return t.Kind == KindLiteral }

// IsNumeric reports whether the token is numeric
func (t *Token) IsNumeric() bool { return t.Kind == KindNumeric }

// IsWord reports whether the token is alphabetical
func (t *Token) IsWord() bool { return t.Kind == KindWord }

// IsTimezone reports whether the token is a timezone offset
func (t *Token) IsTimezone() bool { return t.Kind == KindTimezone }

// String returns a compact debug representation like num:'%H'(2)
func (t *Token) String() string {
	return fmt.Sprintf("%s:'%s'(%d)", t.Kind, t.Text, t.Score)
}

// FirstWithText returns the first candidate in the set with the given text,
// or nil if none matches
func FirstWithText(candidates []*Token, text string) *Token {
	for _, c := range candidates {
		if c.Text == text {
			return c
		}
	}
	return nil
}

// MaxScore returns the highest-scoring candidate in the set.
// Ties go to the earliest candidate. Returns nil for an empty set.
func MaxScore(candidates []*Token) *Token {
	var high *Token
	for _, c := range candidates {
		if high == nil || c.Score > high.Score {
			high = c
		}
	}
	return high
}

// AllMaxScore returns every candidate tied at the highest score, in order
func AllMaxScore(candidates []*Token) []*Token {
	var high []*Token
	for _, c := range candidates {
		switch {
		case len(high) == 0 || c.Score > high[0].Score:
			high = []*Token{c}
		case c.Score == high[0].Score:
			high = append(high, c)
		}
	}
	return high
}
