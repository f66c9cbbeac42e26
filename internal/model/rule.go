package model

import "strings"

// Rule is a directional association rule derived from a single frequent
// itemset: antecedent and consequent are disjoint, non-empty, and their
// union is the parent itemset. Metrics are computed at generation time
// and never mutated afterwards.
type Rule struct {
	Antecedent   []Item
	Consequent   []Item
	SupportCount int
	Support      float64
	Confidence   float64
	Lift         float64
}

// String renders the rule in the conventional "lhs => rhs" form.
func (r Rule) String() string {
	return joinItems(r.Antecedent) + " => " + joinItems(r.Consequent)
}

func joinItems(items []Item) string {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = string(it)
	}
	return strings.Join(parts, ", ")
}

// RuleSet is an ordered, build-once collection of rules produced by a
// single mining run.
type RuleSet struct {
	Rules []Rule
}

// Len returns the number of rules in the set.
func (rs RuleSet) Len() int {
	return len(rs.Rules)
}

// Empty reports whether the set contains no rules. An empty rule set is
// a valid result, not an error.
func (rs RuleSet) Empty() bool {
	return len(rs.Rules) == 0
}
