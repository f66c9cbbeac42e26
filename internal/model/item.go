// Package model defines the core value types shared across the application.
package model

import "sort"

// Item identifies a single product or category code in a basket.
// Items are opaque: the miner never interprets their contents, only
// their identity and lexicographic order.
type Item string

// SortItems sorts a slice of items lexicographically in place and
// returns it for convenience.
func SortItems(items []Item) []Item {
	sort.Slice(items, func(i, j int) bool { return items[i] < items[j] })
	return items
}

// DedupeItems returns a sorted copy of items with duplicates removed.
func DedupeItems(items []Item) []Item {
	if len(items) == 0 {
		return nil
	}
	out := make([]Item, len(items))
	copy(out, items)
	SortItems(out)
	n := 1
	for i := 1; i < len(out); i++ {
		if out[i] != out[n-1] {
			out[n] = out[i]
			n++
		}
	}
	return out[:n]
}
