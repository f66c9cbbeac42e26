// Package rules expands frequent itemsets into association rules and
// provides filtering and ranking over the resulting rule sets.
package rules

import (
	"context"
	"fmt"

	"github.com/halcyonforge/lift/internal/common"
	"github.com/halcyonforge/lift/internal/model"
	"github.com/halcyonforge/lift/internal/store"
)

// confidence comparisons tolerate float rounding at the threshold.
const confEpsilon = 1e-12

// Generate expands every frequent itemset of size two or more into
// directional rules and keeps those whose confidence meets
// minConfidence. Every non-empty proper subset of an itemset is tried
// as antecedent; enumeration is exhaustive rather than pruned, so
// output order is deterministic: itemsets in mined order, antecedent
// bitmasks ascending within each.
func Generate(ctx context.Context, itemsets []model.Itemset, st *store.Store, minConfidence float64) (model.RuleSet, error) {
	if minConfidence <= 0 || minConfidence > 1 {
		return model.RuleSet{}, fmt.Errorf("%w: min confidence %v must be in (0,1]", common.ErrInvalidParameter, minConfidence)
	}

	total := float64(st.Len())
	var out []model.Rule

	for _, set := range itemsets {
		if set.Size() < 2 {
			continue
		}
		if err := ctx.Err(); err != nil {
			return model.RuleSet{}, err
		}

		itemIDs := make([]int, set.Size())
		for i, it := range set.Items {
			id, ok := st.ItemID(it)
			if !ok {
				return model.RuleSet{}, fmt.Errorf("%w: itemset references unknown item %q", common.ErrInvalidParameter, it)
			}
			itemIDs[i] = id
		}

		k := len(itemIDs)
		ant := make([]int, 0, k)
		cons := make([]int, 0, k)
		for mask := 1; mask < (1<<k)-1; mask++ {
			ant = ant[:0]
			cons = cons[:0]
			for i := 0; i < k; i++ {
				if mask&(1<<i) != 0 {
					ant = append(ant, itemIDs[i])
				} else {
					cons = append(cons, itemIDs[i])
				}
			}

			antCount := st.SupportCountIDs(ant)
			if antCount == 0 {
				continue
			}
			confidence := float64(set.SupportCount) / float64(antCount)
			if confidence < minConfidence-confEpsilon {
				continue
			}

			consSupport := float64(st.SupportCountIDs(cons)) / total
			rule := model.Rule{
				Antecedent:   st.ItemsOf(ant),
				Consequent:   st.ItemsOf(cons),
				SupportCount: set.SupportCount,
				Support:      set.Support,
				Confidence:   confidence,
				Lift:         confidence / consSupport,
			}
			out = append(out, rule)
		}
	}

	return model.RuleSet{Rules: out}, nil
}
