/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: token_test.go
Description: Tests for the tokenizer and token helpers. Covers character
classification, timezone offset merging, sign reclassification, and the
score-based selection helpers used during format assembly.
*/

package token_test

import (
	"testing"

	"github.com/kleascm/datesense/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTokenizeMixedInput verifies that runs of digits, letters and
// punctuation split into separate tokens with the right kinds.
func TestTokenizeMixedInput(t *testing.T) {
	toks := token.Tokenize("12 34Abc?+1000")
	require.Len(t, toks, 6)

	assert.Equal(t, token.KindNumeric, toks[0].Kind)
	assert.Equal(t, "12", toks[0].Text)
	assert.Equal(t, token.KindLiteral, toks[1].Kind)
	assert.Equal(t, " ", toks[1].Text)
	assert.Equal(t, token.KindNumeric, toks[2].Kind)
	assert.Equal(t, "34", toks[2].Text)
	assert.Equal(t, token.KindWord, toks[3].Kind)
	assert.Equal(t, "Abc", toks[3].Text)
	assert.Equal(t, token.KindLiteral, toks[4].Kind)
	assert.Equal(t, "?", toks[4].Text)
	assert.Equal(t, token.KindTimezone, toks[5].Kind)
	assert.Equal(t, "+1000", toks[5].Text)
}

// TestTokenizeEmptyInput verifies that an empty string produces no tokens.
func TestTokenizeEmptyInput(t *testing.T) {
	assert.Empty(t, token.Tokenize(""))
}

// TestTokenizeTimezoneMerge verifies that a sign followed by exactly four
// digits merges into a single timezone token.
func TestTokenizeTimezoneMerge(t *testing.T) {
	toks := token.Tokenize("+0530")
	require.Len(t, toks, 1)
	assert.Equal(t, token.KindTimezone, toks[0].Kind)
	assert.Equal(t, "+0530", toks[0].Text)

	toks = token.Tokenize("-0100")
	require.Len(t, toks, 1)
	assert.Equal(t, token.KindTimezone, toks[0].Kind)
	assert.Equal(t, "-0100", toks[0].Text)
}

// TestTokenizeNoMergeWrongLength verifies that sign+digits only merge when
// the digit run is exactly four characters long.
func TestTokenizeNoMergeWrongLength(t *testing.T) {
	toks := token.Tokenize("+100")
	require.Len(t, toks, 2)
	assert.Equal(t, token.KindLiteral, toks[0].Kind)
	assert.Equal(t, "+", toks[0].Text)
	assert.Equal(t, token.KindNumeric, toks[1].Kind)
	assert.Equal(t, "100", toks[1].Text)

	toks = token.Tokenize("+10000")
	require.Len(t, toks, 2)
	assert.Equal(t, token.KindLiteral, toks[0].Kind)
	assert.Equal(t, token.KindNumeric, toks[1].Kind)
	assert.Equal(t, "10000", toks[1].Text)
}

// TestTokenizeSignAfterNumber verifies that a sign preceded by a number is
// treated as a literal even when four digits follow, so subtraction-like
// text does not produce a bogus timezone offset.
func TestTokenizeSignAfterNumber(t *testing.T) {
	toks := token.Tokenize("12+0100")
	require.Len(t, toks, 3)
	assert.Equal(t, token.KindNumeric, toks[0].Kind)
	assert.Equal(t, token.KindLiteral, toks[1].Kind)
	assert.Equal(t, "+", toks[1].Text)
	assert.Equal(t, token.KindNumeric, toks[2].Kind)
	assert.Equal(t, "0100", toks[2].Text)
}

// TestTokenizeConsecutiveSigns verifies that when two signs run together,
// the first becomes a literal and the second may still merge into a
// timezone token.
func TestTokenizeConsecutiveSigns(t *testing.T) {
	toks := token.Tokenize("--0100")
	require.Len(t, toks, 2)
	assert.Equal(t, token.KindLiteral, toks[0].Kind)
	assert.Equal(t, "-", toks[0].Text)
	assert.Equal(t, token.KindTimezone, toks[1].Kind)
	assert.Equal(t, "-0100", toks[1].Text)
}

// TestTokenizeAdjacentOffsets verifies that a timezone token does not
// allow a directly following sign to start another offset.
func TestTokenizeAdjacentOffsets(t *testing.T) {
	toks := token.Tokenize("+0100-0200")
	require.Len(t, toks, 3)
	assert.Equal(t, token.KindTimezone, toks[0].Kind)
	assert.Equal(t, "+0100", toks[0].Text)
	assert.Equal(t, token.KindLiteral, toks[1].Kind)
	assert.Equal(t, "-", toks[1].Text)
	assert.Equal(t, token.KindNumeric, toks[2].Kind)
	assert.Equal(t, "0200", toks[2].Text)
}

// TestTokenizeDateKeepsDashesLiteral verifies that dashes between short
// number runs stay literal delimiters.
func TestTokenizeDateKeepsDashesLiteral(t *testing.T) {
	toks := token.Tokenize("2013-04-15")
	require.Len(t, toks, 5)
	assert.Equal(t, "2013", toks[0].Text)
	assert.Equal(t, token.KindLiteral, toks[1].Kind)
	assert.Equal(t, "04", toks[2].Text)
	assert.Equal(t, token.KindNumeric, toks[2].Kind)
	assert.Equal(t, token.KindLiteral, toks[3].Kind)
	assert.Equal(t, "15", toks[4].Text)
}

// TestTokenizeOffsetAfterSpace verifies that a timezone offset still
// merges when it follows a non-numeric token.
func TestTokenizeOffsetAfterSpace(t *testing.T) {
	toks := token.Tokenize("14:04:11 +0530")
	require.Len(t, toks, 7)
	assert.Equal(t, token.KindTimezone, toks[6].Kind)
	assert.Equal(t, "+0530", toks[6].Text)
}

// TestMaxScorePrefersEarliest verifies that ties on score resolve to the
// first candidate in the list.
func TestMaxScorePrefersEarliest(t *testing.T) {
	a := &token.Token{Kind: token.KindNumeric, Text: "%H", Score: 0}
	b := &token.Token{Kind: token.KindNumeric, Text: "%M", Score: 0}
	c := token.NewLiteral("10")

	best := token.MaxScore([]*token.Token{c, a, b})
	require.NotNil(t, best)
	assert.Same(t, c, best)

	a.Score = 5
	best = token.MaxScore([]*token.Token{c, a, b})
	assert.Same(t, a, best)

	assert.Nil(t, token.MaxScore(nil))
}

// TestAllMaxScore verifies that every candidate sharing the top score is
// returned, in order.
func TestAllMaxScore(t *testing.T) {
	a := &token.Token{Kind: token.KindNumeric, Text: "%H", Score: 3}
	b := &token.Token{Kind: token.KindNumeric, Text: "%M", Score: 3}
	c := token.NewLiteral("10")

	top := token.AllMaxScore([]*token.Token{a, c, b})
	require.Len(t, top, 2)
	assert.Same(t, a, top[0])
	assert.Same(t, b, top[1])
}

// TestFirstWithText verifies the exact-text candidate lookup.
func TestFirstWithText(t *testing.T) {
	a := token.NewLiteral("-")
	b := &token.Token{Kind: token.KindNumeric, Text: "%d", Score: 2}

	assert.Same(t, a, token.FirstWithText([]*token.Token{a, b}, "-"))
	assert.Same(t, b, token.FirstWithText([]*token.Token{a, b}, "%d"))
	assert.Nil(t, token.FirstWithText([]*token.Token{a, b}, "/"))
}
