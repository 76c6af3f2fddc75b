/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: rule.go
Description: Rule interface for the DateSense format detector. Rules inspect
the candidate model and adjust candidate scores according to assumptions
about how date strings are usually formatted.
*/

package model

// Rule adjusts candidate scores in a model. Implementations must be
// stateless: Apply may mutate scores but nothing else, so a rule can be
// shared across sessions.
type Rule interface {
	// Apply adjusts candidate scores in place
	Apply(m *Model)
	// Name returns the name of the rule type
	Name() string
	// Description returns a human-readable description of the rule
	Description() string
}

// ApplyRules applies each rule in order. Later rules see the scores already
// modified by earlier ones, so ordering matters for rules that read scores,
// like pattern and mutual exclusion rules.
func (m *Model) ApplyRules(rules []Rule) {
	for _, rule := range rules {
		rule.Apply(m)
	}
}
