package model

// Itemset is a set of items together with its support in the mined
// transaction database. Items are sorted lexicographically.
type Itemset struct {
	Items        []Item
	SupportCount int
	Support      float64
}

// Size returns the number of items in the set.
func (s Itemset) Size() int {
	return len(s.Items)
}
