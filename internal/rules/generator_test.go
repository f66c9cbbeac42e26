package rules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halcyonforge/lift/internal/common"
	"github.com/halcyonforge/lift/internal/miner"
	"github.com/halcyonforge/lift/internal/model"
	"github.com/halcyonforge/lift/internal/store"
)

func basketOf(items ...string) []model.Item {
	out := make([]model.Item, len(items))
	for i, s := range items {
		out[i] = model.Item(s)
	}
	return out
}

// mineAndGenerate runs the full pipeline on a small dataset.
func mineAndGenerate(t *testing.T, baskets [][]model.Item, minSupport, minConfidence float64) (*store.Store, model.RuleSet) {
	t.Helper()

	st, err := store.New(baskets)
	require.NoError(t, err)

	itemsets, err := miner.Mine(context.Background(), st, miner.Config{
		MinSupport: minSupport,
		MinLen:     1,
		MaxLen:     5,
	})
	require.NoError(t, err)

	rs, err := Generate(context.Background(), itemsets, st, minConfidence)
	require.NoError(t, err)
	return st, rs
}

func classicBaskets() [][]model.Item {
	return [][]model.Item{
		basketOf("milk", "bread"),
		basketOf("milk", "bread", "butter"),
		basketOf("milk"),
		basketOf("bread", "butter"),
	}
}

func findRule(rs model.RuleSet, antecedent, consequent []model.Item) *model.Rule {
	model.SortItems(antecedent)
	model.SortItems(consequent)
	for i := range rs.Rules {
		if assert.ObjectsAreEqual(antecedent, rs.Rules[i].Antecedent) &&
			assert.ObjectsAreEqual(consequent, rs.Rules[i].Consequent) {
			return &rs.Rules[i]
		}
	}
	return nil
}

func TestGenerate_ClassicScenario(t *testing.T) {
	_, rs := mineAndGenerate(t, classicBaskets(), 0.5, 0.5)
	require.False(t, rs.Empty())

	// milk => bread: support(milk,bread)=0.5, support(milk)=0.75.
	rule := findRule(rs, basketOf("milk"), basketOf("bread"))
	require.NotNil(t, rule)
	assert.InDelta(t, 0.5, rule.Support, 1e-9)
	assert.InDelta(t, 2.0/3.0, rule.Confidence, 1e-9)
	assert.InDelta(t, 8.0/9.0, rule.Lift, 1e-9)
}

func TestGenerate_MetricRanges(t *testing.T) {
	_, rs := mineAndGenerate(t, classicBaskets(), 0.25, 0.25)

	for _, r := range rs.Rules {
		assert.NotEmpty(t, r.Antecedent, "rule %s", r)
		assert.NotEmpty(t, r.Consequent, "rule %s", r)
		assert.GreaterOrEqual(t, r.Confidence, 0.0, "rule %s", r)
		assert.LessOrEqual(t, r.Confidence, 1.0+1e-9, "rule %s", r)
		assert.GreaterOrEqual(t, r.Lift, 0.0, "rule %s", r)
	}
}

func TestGenerate_AntecedentConsequentDisjoint(t *testing.T) {
	_, rs := mineAndGenerate(t, classicBaskets(), 0.25, 0.25)

	for _, r := range rs.Rules {
		seen := make(map[model.Item]struct{})
		for _, it := range r.Antecedent {
			seen[it] = struct{}{}
		}
		for _, it := range r.Consequent {
			_, dup := seen[it]
			assert.False(t, dup, "rule %s has overlapping sides", r)
		}
	}
}

func TestGenerate_IndependentItemsHaveUnitLift(t *testing.T) {
	// a and b co-occur exactly as often as independence predicts:
	// support(a)=0.5, support(b)=0.5, support(a,b)=0.25.
	baskets := [][]model.Item{
		basketOf("a", "b"),
		basketOf("a", "x"),
		basketOf("b", "y"),
		basketOf("x", "y"),
	}
	_, rs := mineAndGenerate(t, baskets, 0.2, 0.2)

	rule := findRule(rs, basketOf("a"), basketOf("b"))
	require.NotNil(t, rule)
	assert.InDelta(t, 1.0, rule.Lift, 1e-9)
}

func TestGenerate_ConfidenceThresholdFilters(t *testing.T) {
	// butter => milk has confidence 0.5; milk => butter only 1/3.
	_, rs := mineAndGenerate(t, classicBaskets(), 0.25, 0.5)

	assert.NotNil(t, findRule(rs, basketOf("butter"), basketOf("milk")))
	assert.Nil(t, findRule(rs, basketOf("milk"), basketOf("butter")))
}

func TestGenerate_InvalidMinConfidence(t *testing.T) {
	st, err := store.New(classicBaskets())
	require.NoError(t, err)

	for _, bad := range []float64{0, -0.1, 1.5} {
		_, err := Generate(context.Background(), nil, st, bad)
		require.Error(t, err)
		assert.ErrorIs(t, err, common.ErrInvalidParameter)
	}
}

func TestGenerate_NoItemsetsYieldsEmptySet(t *testing.T) {
	st, err := store.New(classicBaskets())
	require.NoError(t, err)

	rs, err := Generate(context.Background(), nil, st, 0.5)
	require.NoError(t, err)
	assert.True(t, rs.Empty())
}

func TestGenerate_SingleItemSetsProduceNoRules(t *testing.T) {
	st, err := store.New(classicBaskets())
	require.NoError(t, err)

	itemsets := []model.Itemset{
		{Items: basketOf("milk"), SupportCount: 3, Support: 0.75},
	}
	rs, err := Generate(context.Background(), itemsets, st, 0.1)
	require.NoError(t, err)
	assert.True(t, rs.Empty())
}
