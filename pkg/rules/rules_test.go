/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: rules_test.go
Description: Tests for the formatting rules. Each rule type is exercised
against small candidate models built from real date fragments, plus sanity
checks over the default rule set.
*/

package rules_test

import (
	"testing"

	"github.com/kleascm/datesense/pkg/catalog"
	"github.com/kleascm/datesense/pkg/model"
	"github.com/kleascm/datesense/pkg/rules"
	"github.com/kleascm/datesense/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newModel builds a model from the input using the default catalogs.
func newModel(input string) *model.Model {
	return model.New(token.Tokenize(input), catalog.DefaultNumericOptions(), catalog.DefaultWordOptions(), catalog.DefaultTimezoneDirective())
}

// score returns the current score of the named candidate at the position,
// failing the test if the candidate is gone.
func score(t *testing.T, m *model.Model, position int, text string) int {
	t.Helper()
	cand := token.FirstWithText(m.Positions[position].Candidates, text)
	require.NotNil(t, cand, "candidate %s at position %d", text, position)
	return cand.Score
}

// TestDelimiterRuleRewardsAdjacency verifies targets next to a delimiter
// gain the positive score and untouched targets keep theirs.
func TestDelimiterRuleRewardsAdjacency(t *testing.T) {
	m := newModel("14:30")
	rule := rules.NewDelimiterRule([]string{"%H", "%I", "%M", "%S"}, []string{":"}, 2, 0)
	rule.Apply(m)

	assert.Equal(t, 4, score(t, m, 0, "%H"))
	assert.Equal(t, 4, score(t, m, 2, "%M"))
	assert.Equal(t, 4, score(t, m, 2, "%S"))
	// Non-target directives at the same positions are untouched.
	assert.Equal(t, 2, score(t, m, 0, "%d"))
}

// TestDelimiterRulePenalizesAbsence verifies the negative score applies to
// targets nowhere near a delimiter.
func TestDelimiterRulePenalizesAbsence(t *testing.T) {
	m := newModel("14 30")
	rule := rules.NewDelimiterRule([]string{"%H", "%I", "%M", "%S"}, []string{":"}, 2, -1)
	rule.Apply(m)

	assert.Equal(t, 1, score(t, m, 0, "%H"))
	assert.Equal(t, 1, score(t, m, 2, "%M"))
}

// TestDelimiterRuleCreditsOnce verifies a position flanked by two
// delimiters is still only credited once.
func TestDelimiterRuleCreditsOnce(t *testing.T) {
	m := newModel("10:20:30")
	rule := rules.NewDelimiterRule([]string{"%M"}, []string{":"}, 2, 0)
	rule.Apply(m)

	assert.Equal(t, 4, score(t, m, 2, "%M"))
}

// TestLikelyRangeRule verifies containment rewards and any outlier
// penalizes.
func TestLikelyRangeRule(t *testing.T) {
	m := newModel("2013")
	rules.NewLikelyRangeRule([]string{"%Y"}, 1000, 3000, 1, -1).Apply(m)
	assert.Equal(t, 3, score(t, m, 0, "%Y"))

	m = newModel("15")
	rules.NewLikelyRangeRule([]string{"%Y"}, 1000, 3000, 1, -1).Apply(m)
	assert.Equal(t, 1, score(t, m, 0, "%Y"))
}

// TestLikelyRangeRuleSkipsNonNumeric verifies positions without an
// observed value range are ignored.
func TestLikelyRangeRuleSkipsNonNumeric(t *testing.T) {
	m := newModel("Oct")
	rules.NewLikelyRangeRule([]string{"%b"}, 0, 10, 1, -1).Apply(m)
	assert.Equal(t, catalog.Common, score(t, m, 0, "%b"))
}

// TestPatternRuleRewardsSequence verifies a complete layout occurrence
// boosts exactly the candidates that formed it.
func TestPatternRuleRewardsSequence(t *testing.T) {
	m := newModel("14:30")
	rule := rules.NewPatternRule([][]string{{"%H", "%I"}, {":"}, {"%M"}}, 1, 0, 1, 0)
	rule.Apply(m)

	assert.Equal(t, 3, score(t, m, 0, "%H"))
	assert.Equal(t, 1, score(t, m, 1, ":"))
	assert.Equal(t, 3, score(t, m, 2, "%M"))
	// A minutes candidate in the hours slot took no part in the match.
	assert.Equal(t, 2, score(t, m, 0, "%M"))
}

// TestPatternRulePenalizesStrays verifies directive occurrences outside
// any complete match take the negative score, literals never.
func TestPatternRulePenalizesStrays(t *testing.T) {
	m := newModel("14:30 22")
	rule := rules.NewPatternRule([][]string{{"%H", "%I"}, {":"}, {"%M"}}, 1, 0, 1, -1)
	rule.Apply(m)

	assert.Equal(t, 3, score(t, m, 0, "%H"))
	assert.Equal(t, 3, score(t, m, 2, "%M"))
	assert.Equal(t, 1, score(t, m, 4, "%H"), "stray hours candidate")
	assert.Equal(t, 1, score(t, m, 0, "%M"), "stray minutes candidate")
	assert.Equal(t, 0, score(t, m, 3, " "), "literals are never penalized")
}

// TestPatternRuleGapLimit verifies the search abandons a partial match
// once the gap between elements exceeds the limit.
func TestPatternRuleGapLimit(t *testing.T) {
	strict := newModel("14:09")
	rules.NewPatternRule([][]string{{"%H"}, {"%M"}}, 0, 0, 5, 0).Apply(strict)
	assert.Equal(t, 2, score(t, strict, 0, "%H"), "colon breaks the zero-gap sequence")

	loose := newModel("14:09")
	rules.NewPatternRule([][]string{{"%H"}, {"%M"}}, 2, 0, 5, 0).Apply(loose)
	assert.Equal(t, 7, score(t, loose, 0, "%H"))
	assert.Equal(t, 7, score(t, loose, 2, "%M"))
}

// TestPatternRuleMinMatchScore verifies directives below the eligibility
// threshold cannot join a match.
func TestPatternRuleMinMatchScore(t *testing.T) {
	m := newModel("14:30")
	rules.NewPatternRule([][]string{{"%H"}, {":"}, {"%M"}}, 1, 3, 1, 0).Apply(m)
	assert.Equal(t, 2, score(t, m, 0, "%H"), "hours score is below the threshold")

	m = newModel("14:30")
	token.FirstWithText(m.Positions[0].Candidates, "%H").Score = 3
	token.FirstWithText(m.Positions[2].Candidates, "%M").Score = 3
	rules.NewPatternRule([][]string{{"%H"}, {":"}, {"%M"}}, 1, 3, 1, 0).Apply(m)
	assert.Equal(t, 4, score(t, m, 0, "%H"))
	assert.Equal(t, 4, score(t, m, 2, "%M"))
}

// TestMutualExclusionRuleTie verifies a score tie between elements goes to
// the earlier element, which keeps its score while rivals are penalized.
func TestMutualExclusionRuleTie(t *testing.T) {
	m := newModel("09")
	rules.NewMutualExclusionRule([][]string{{"%H"}, {"%I", "%p"}}, 0, -2).Apply(m)

	assert.Equal(t, 2, score(t, m, 0, "%H"))
	assert.Equal(t, 0, score(t, m, 0, "%I"))
}

// TestMutualExclusionRuleWinnerByScore verifies the strongest element wins
// regardless of element order.
func TestMutualExclusionRuleWinnerByScore(t *testing.T) {
	m := newModel("09")
	token.FirstWithText(m.Positions[0].Candidates, "%I").Score = 5
	rules.NewMutualExclusionRule([][]string{{"%H"}, {"%I", "%p"}}, 0, -2).Apply(m)

	assert.Equal(t, 5, score(t, m, 0, "%I"))
	assert.Equal(t, 0, score(t, m, 0, "%H"))
}

// TestMutualExclusionRuleNoOp verifies the rule leaves the model alone
// when no candidate belongs to any element.
func TestMutualExclusionRuleNoOp(t *testing.T) {
	m := newModel("Oct")
	rules.NewMutualExclusionRule([][]string{{"%H"}, {"%I", "%p"}}, 0, -2).Apply(m)
	assert.Equal(t, catalog.Common, score(t, m, 0, "%b"))
}

// TestDefaultRules verifies the default rule set is non-trivial and every
// rule identifies itself.
func TestDefaultRules(t *testing.T) {
	set := rules.DefaultRules()
	require.Len(t, set, 29)

	names := make(map[string]int)
	for _, rule := range set {
		names[rule.Name()]++
		assert.NotEmpty(t, rule.Description())
	}
	assert.Equal(t, 3, names["DelimiterRule"])
	assert.Equal(t, 3, names["LikelyRangeRule"])
	assert.Equal(t, 17, names["PatternRule"])
	assert.Equal(t, 6, names["MutualExclusionRule"])
}

// TestApplyRulesOrdering verifies later rules observe scores adjusted by
// earlier ones.
func TestApplyRulesOrdering(t *testing.T) {
	m := newModel("09")
	m.ApplyRules([]model.Rule{
		rules.NewLikelyRangeRule([]string{"%I"}, 0, 99, 3, 0),
		rules.NewMutualExclusionRule([][]string{{"%H"}, {"%I"}}, 0, -2),
	})

	assert.Equal(t, 5, score(t, m, 0, "%I"))
	assert.Equal(t, 0, score(t, m, 0, "%H"))
}
