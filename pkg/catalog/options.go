/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: options.go
Description: Directive options for the DateSense format detector. Numeric
options pair a directive with the inclusive value range it can represent;
word options pair a directive with the set of words it can match, optionally
accepting prefix matches.
*/

package catalog

import "strings"

// Commonality levels for directive options. The level becomes the initial
// score of every candidate created for the option, so common directives
// start ahead of uncommon ones before any rules run.
const (
	Uncommon = 1
	Common   = 2
)

// NumericOption describes a possible numeric directive
type NumericOption struct {
	directive string
	common    int
	min, max  int
}

// NewNumericOption creates a numeric directive option. The range is
// inclusive on both ends.
func NewNumericOption(directive string, common, min, max int) *NumericOption {
	return &NumericOption{directive: directive, common: common, min: min, max: max}
}

// Directive returns the directive symbol, like "%H" or "%y"
func (o *NumericOption) Directive() string { return o.directive }

// Commonality returns the initial candidate score for this directive
func (o *NumericOption) Commonality() int { return o.common }

// Range returns the inclusive value range of the directive
func (o *NumericOption) Range() (min, max int) { return o.min, o.max }

// Includes reports whether the value is valid for this directive
func (o *NumericOption) Includes(value int) bool {
	return value >= o.min && value <= o.max
}

// WordOption describes a possible alphabetical directive
type WordOption struct {
	directive   string
	common      int
	words       []string
	matchLength int
}

// NewWordOption creates a word directive option matching the given words
// exactly. Words must be lower case.
func NewWordOption(directive string, common int, words ...string) *WordOption {
	return &WordOption{directive: directive, common: common, words: words}
}

// NewPrefixWordOption creates a word directive option that also accepts
// partial matches: any input that is a prefix of one of the words counts,
// provided the input is at least matchLength characters long. Inputs
// shorter than matchLength fall back to exact matching.
func NewPrefixWordOption(directive string, common int, matchLength int, words ...string) *WordOption {
	return &WordOption{directive: directive, common: common, words: words, matchLength: matchLength}
}

// Directive returns the directive symbol, like "%b" or "%p"
func (o *WordOption) Directive() string { return o.directive }

// Commonality returns the initial candidate score for this directive
func (o *WordOption) Commonality() int { return o.common }

// Words returns the words this directive can match
func (o *WordOption) Words() []string { return o.words }

// Includes reports whether the value is valid for this directive.
// Matching is case-insensitive.
func (o *WordOption) Includes(value string) bool {
	lower := strings.ToLower(value)
	if o.matchLength > 0 && len(lower) >= o.matchLength {
		for _, w := range o.words {
			if strings.HasPrefix(w, lower) {
				return true
			}
		}
		return false
	}
	for _, w := range o.words {
		if w == lower {
			return true
		}
	}
	return false
}
