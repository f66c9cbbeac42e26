package rules

import (
	"sort"
	"strings"

	"github.com/halcyonforge/lift/internal/model"
)

// FilterRedundant partitions a rule set into non-redundant and
// redundant rules. A rule is redundant when another rule with the same
// consequent, a strictly smaller antecedent that is a subset of its
// antecedent, and equal-or-higher confidence exists: the more general
// rule already says everything the specific one does. Both partitions
// preserve the original relative order, and filtering an already
// filtered set is a no-op.
func FilterRedundant(rs model.RuleSet) (nonRedundant, redundant model.RuleSet) {
	// Group rule indices by consequent.
	groups := make(map[string][]int)
	for i, r := range rs.Rules {
		key := itemsKey(r.Consequent)
		groups[key] = append(groups[key], i)
	}

	isRedundant := make([]bool, len(rs.Rules))
	for _, group := range groups {
		// Dominance can only flow from smaller antecedents to larger
		// ones, so confirm rules in ascending antecedent size.
		ordered := make([]int, len(group))
		copy(ordered, group)
		sort.SliceStable(ordered, func(a, b int) bool {
			return len(rs.Rules[ordered[a]].Antecedent) < len(rs.Rules[ordered[b]].Antecedent)
		})

		var kept []int
		for _, idx := range ordered {
			r := rs.Rules[idx]
			dominated := false
			for _, kidx := range kept {
				general := rs.Rules[kidx]
				if len(general.Antecedent) >= len(r.Antecedent) {
					continue
				}
				if general.Confidence >= r.Confidence && containsAll(r.Antecedent, general.Antecedent) {
					dominated = true
					break
				}
			}
			if dominated {
				isRedundant[idx] = true
			} else {
				kept = append(kept, idx)
			}
		}
	}

	for i, r := range rs.Rules {
		if isRedundant[i] {
			redundant.Rules = append(redundant.Rules, r)
		} else {
			nonRedundant.Rules = append(nonRedundant.Rules, r)
		}
	}
	return nonRedundant, redundant
}

// containsAll reports whether every item of sub occurs in set. Both
// slices are sorted lexicographically.
func containsAll(set, sub []model.Item) bool {
	j := 0
	for _, want := range sub {
		for j < len(set) && set[j] < want {
			j++
		}
		if j == len(set) || set[j] != want {
			return false
		}
		j++
	}
	return true
}

// itemsKey encodes a sorted item slice as a map key.
func itemsKey(items []model.Item) string {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = string(it)
	}
	return strings.Join(parts, "\x1f")
}
