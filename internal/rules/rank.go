package rules

import (
	"fmt"
	"sort"

	"github.com/halcyonforge/lift/internal/common"
	"github.com/halcyonforge/lift/internal/model"
)

// SortKey names a rule metric usable for ranking.
type SortKey string

// Supported sort keys.
const (
	SortBySupport    SortKey = "support"
	SortByConfidence SortKey = "confidence"
	SortByLift       SortKey = "lift"
)

// ParseSortKey validates a user-supplied sort key.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case SortBySupport, SortByConfidence, SortByLift:
		return SortKey(s), nil
	default:
		return "", fmt.Errorf("%w: unknown sort key %q (want support, confidence, or lift)", common.ErrInvalidParameter, s)
	}
}

// TopN returns the n highest-ranked rules by the given key, stably
// sorted descending so equal metrics keep their original order. n
// larger than the set returns everything; n must not be negative.
func TopN(rs model.RuleSet, n int, key SortKey) (model.RuleSet, error) {
	metric, err := metricFunc(key)
	if err != nil {
		return model.RuleSet{}, err
	}
	if n < 0 {
		return model.RuleSet{}, fmt.Errorf("%w: n %d must not be negative", common.ErrInvalidParameter, n)
	}

	sorted := make([]model.Rule, len(rs.Rules))
	copy(sorted, rs.Rules)
	sort.SliceStable(sorted, func(i, j int) bool {
		return metric(sorted[i]) > metric(sorted[j])
	})

	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return model.RuleSet{Rules: sorted}, nil
}

// Sort returns the whole set ordered by the given key, descending.
func Sort(rs model.RuleSet, key SortKey) (model.RuleSet, error) {
	return TopN(rs, rs.Len(), key)
}

func metricFunc(key SortKey) (func(model.Rule) float64, error) {
	switch key {
	case SortBySupport:
		return func(r model.Rule) float64 { return r.Support }, nil
	case SortByConfidence:
		return func(r model.Rule) float64 { return r.Confidence }, nil
	case SortByLift:
		return func(r model.Rule) float64 { return r.Lift }, nil
	default:
		return nil, fmt.Errorf("%w: unknown sort key %q (want support, confidence, or lift)", common.ErrInvalidParameter, key)
	}
}
