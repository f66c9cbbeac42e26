package miner

import (
	"strconv"
	"strings"
)

// generateCandidates produces the (k+1)-candidates from the frequent
// k-itemsets of one level. Pairs sharing a (k-1)-item prefix are merged
// (the input is in lexicographic order, so eligible partners are
// adjacent), then any candidate with an infrequent k-subset is pruned.
// Output preserves lexicographic order.
func generateCandidates(level [][]int) [][]int {
	frequent := make(map[string]struct{}, len(level))
	for _, ids := range level {
		frequent[itemsetKey(ids)] = struct{}{}
	}

	k := len(level[0])
	var out [][]int
	for i := 0; i < len(level); i++ {
		for j := i + 1; j < len(level); j++ {
			if !samePrefix(level[i], level[j]) {
				break
			}
			cand := make([]int, k+1)
			copy(cand, level[i])
			cand[k] = level[j][k-1]
			if hasInfrequentSubset(cand, frequent) {
				continue
			}
			out = append(out, cand)
		}
	}
	return out
}

// samePrefix reports whether two equal-length itemsets agree on all but
// the last position.
func samePrefix(a, b []int) bool {
	for i := 0; i < len(a)-1; i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// hasInfrequentSubset applies the anti-monotonicity prune: a candidate
// survives only if every subset one item smaller is frequent.
func hasInfrequentSubset(cand []int, frequent map[string]struct{}) bool {
	sub := make([]int, 0, len(cand)-1)
	for drop := 0; drop < len(cand); drop++ {
		sub = sub[:0]
		for i, id := range cand {
			if i != drop {
				sub = append(sub, id)
			}
		}
		if _, ok := frequent[itemsetKey(sub)]; !ok {
			return true
		}
	}
	return false
}

// itemsetKey encodes a sorted ID slice as a map key.
func itemsetKey(ids []int) string {
	var b strings.Builder
	for i, id := range ids {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(id))
	}
	return b.String()
}
