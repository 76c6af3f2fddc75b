/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: tokenize.go
Description: Date string tokenizer for the DateSense format detector. Splits
raw input into literal, numeric, word and timezone offset tokens, covering
the whole input with no gaps or overlaps.
*/

package token

// TimezoneLength is the number of digits a timezone offset carries after
// its sign, e.g. +0100 or -0300
const TimezoneLength = 4

// classify maps a character to the kind of token it belongs to.
// '+' and '-' are provisionally classified as timezone signs; the merge
// pass below decides whether they really start an offset.
func classify(c byte) Kind {
	switch {
	case c >= '0' && c <= '9':
		return KindNumeric
	case (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z'):
		return KindWord
	case c == '+' || c == '-':
		return KindTimezone
	default:
		return KindLiteral
	}
}

// Tokenize splits a date string into an ordered sequence of tokens.
// Tokens are divided on the basis of whether each character is a letter,
// a digit, or neither, so "12 34Abc?+1000" tokenizes as '12', ' ', '34',
// 'Abc', '?', '+1000'. A sign immediately followed by a four-digit number
// becomes a single timezone offset token, provided the sign is not itself
// preceded by a number or another sign; signs that fail the check are kept
// as literals. An empty input yields an empty sequence.
func Tokenize(input string) []*Token {
	var raw []*Token
	currentKind := Kind(-1)
	start := 0
	for i := 0; i < len(input); i++ {
		kind := classify(input[i])
		// Sign characters always start a fresh token, so consecutive
		// signs never merge into one run.
		if kind == currentKind && currentKind != KindTimezone {
			continue
		}
		if i > start {
			raw = append(raw, &Token{Kind: currentKind, Text: input[start:i]})
		}
		currentKind = kind
		start = i
	}
	if len(input) > start {
		raw = append(raw, &Token{Kind: currentKind, Text: input[start:]})
	}

	// Second pass: merge sign + four-digit number pairs into timezone
	// offset tokens, and downgrade stray signs to literals.
	tokens := make([]*Token, 0, len(raw))
	skip := false
	for i, tok := range raw {
		if skip {
			skip = false
			continue
		}
		if tok.Kind == KindTimezone {
			var prev, next *Token
			if i > 0 {
				prev = raw[i-1]
			}
			if i < len(raw)-1 {
				next = raw[i+1]
			}
			prevOK := prev == nil || !(prev.IsNumeric() || prev.IsTimezone())
			nextOK := next != nil && next.IsNumeric() && len(next.Text) == TimezoneLength
			if prevOK && nextOK {
				tok.Text += next.Text
				skip = true
			} else {
				tok.Kind = KindLiteral
			}
		}
		tokens = append(tokens, tok)
	}
	return tokens
}
