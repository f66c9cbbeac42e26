package rules

import (
	"github.com/halcyonforge/lift/internal/model"
)

// Appearance restricts which items may occur on each side of a rule.
// A nil side is unrestricted; an item listed on both sides may appear
// on either.
type Appearance struct {
	lhs map[model.Item]struct{}
	rhs map[model.Item]struct{}
}

// NewAppearance builds an Appearance from allowed item lists. Empty or
// nil lists leave the corresponding side unrestricted.
func NewAppearance(lhsAllowed, rhsAllowed []model.Item) Appearance {
	return Appearance{
		lhs: toSet(lhsAllowed),
		rhs: toSet(rhsAllowed),
	}
}

// Unrestricted reports whether the appearance allows every rule.
func (a Appearance) Unrestricted() bool {
	return a.lhs == nil && a.rhs == nil
}

// Allows reports whether a rule satisfies the restriction: every
// antecedent item must be allowed on the left and every consequent item
// on the right.
func (a Appearance) Allows(r model.Rule) bool {
	if a.lhs != nil {
		for _, it := range r.Antecedent {
			if _, ok := a.lhs[it]; !ok {
				return false
			}
		}
	}
	if a.rhs != nil {
		for _, it := range r.Consequent {
			if _, ok := a.rhs[it]; !ok {
				return false
			}
		}
	}
	return true
}

// RestrictAppearance filters a rule set down to rules satisfying the
// given side restrictions, preserving order. An empty result is a
// valid rule set, not an error.
func RestrictAppearance(rs model.RuleSet, lhsAllowed, rhsAllowed []model.Item) model.RuleSet {
	app := NewAppearance(lhsAllowed, rhsAllowed)
	if app.Unrestricted() {
		return model.RuleSet{Rules: append([]model.Rule(nil), rs.Rules...)}
	}

	var out []model.Rule
	for _, r := range rs.Rules {
		if app.Allows(r) {
			out = append(out, r)
		}
	}
	return model.RuleSet{Rules: out}
}

func toSet(items []model.Item) map[model.Item]struct{} {
	if len(items) == 0 {
		return nil
	}
	set := make(map[model.Item]struct{}, len(items))
	for _, it := range items {
		set[it] = struct{}{}
	}
	return set
}
