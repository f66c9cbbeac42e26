// Package store holds an immutable in-memory transaction database with
// an inverted index for fast support counting.
package store

import (
	"sort"

	"github.com/halcyonforge/lift/internal/common"
	"github.com/halcyonforge/lift/internal/model"
)

// Store is the transaction database for one mining run. Items are
// interned once at construction under a fixed lexicographic order, so
// every itemset the miner handles is a sorted slice of dense integer
// IDs. A Store is immutable after New returns and safe for concurrent
// readers.
type Store struct {
	items    []model.Item       // ID -> item, lexicographic order
	ids      map[model.Item]int // item -> ID
	txns     [][]int            // transaction -> sorted item IDs
	postings [][]int            // item ID -> sorted transaction indices
}

// New builds a Store from raw transactions. Duplicate items within a
// transaction are collapsed. Returns common.ErrEmptyDataset when no
// transactions are given.
func New(transactions [][]model.Item) (*Store, error) {
	if len(transactions) == 0 {
		return nil, common.ErrEmptyDataset
	}

	// Intern items under a lexicographic total order. The order fixes
	// candidate generation and makes mining output reproducible.
	seen := make(map[model.Item]struct{})
	for _, txn := range transactions {
		for _, it := range txn {
			seen[it] = struct{}{}
		}
	}
	items := make([]model.Item, 0, len(seen))
	for it := range seen {
		items = append(items, it)
	}
	model.SortItems(items)

	ids := make(map[model.Item]int, len(items))
	for id, it := range items {
		ids[it] = id
	}

	s := &Store{
		items:    items,
		ids:      ids,
		txns:     make([][]int, len(transactions)),
		postings: make([][]int, len(items)),
	}

	for i, txn := range transactions {
		row := make([]int, 0, len(txn))
		for _, it := range txn {
			row = append(row, ids[it])
		}
		sort.Ints(row)
		// Collapse duplicates within the transaction.
		n := 0
		for j, id := range row {
			if j == 0 || id != row[n-1] {
				row[n] = id
				n++
			}
		}
		row = row[:n]
		s.txns[i] = row
		for _, id := range row {
			s.postings[id] = append(s.postings[id], i)
		}
	}

	return s, nil
}

// Len returns the number of transactions.
func (s *Store) Len() int {
	return len(s.txns)
}

// NumItems returns the number of distinct items.
func (s *Store) NumItems() int {
	return len(s.items)
}

// Items returns all distinct items in lexicographic order.
func (s *Store) Items() []model.Item {
	out := make([]model.Item, len(s.items))
	copy(out, s.items)
	return out
}

// Item returns the item for an interned ID.
func (s *Store) Item(id int) model.Item {
	return s.items[id]
}

// ItemID returns the interned ID for an item, if it occurs in the
// dataset.
func (s *Store) ItemID(item model.Item) (int, bool) {
	id, ok := s.ids[item]
	return id, ok
}

// ItemsOf maps interned IDs back to items.
func (s *Store) ItemsOf(itemIDs []int) []model.Item {
	out := make([]model.Item, len(itemIDs))
	for i, id := range itemIDs {
		out[i] = s.items[id]
	}
	return out
}

// TransactionIDs returns the sorted interned item IDs of transaction i.
// The returned slice is shared and must not be modified.
func (s *Store) TransactionIDs(i int) []int {
	return s.txns[i]
}

// Postings returns the sorted transaction indices containing an item.
// The returned slice is shared and must not be modified.
func (s *Store) Postings(itemID int) []int {
	return s.postings[itemID]
}

// SupportCount returns the number of transactions containing every item
// in the set. An item absent from the dataset yields zero; the empty
// set is contained in every transaction.
func (s *Store) SupportCount(items []model.Item) int {
	itemIDs := make([]int, len(items))
	for i, it := range items {
		id, ok := s.ids[it]
		if !ok {
			return 0
		}
		itemIDs[i] = id
	}
	return s.SupportCountIDs(itemIDs)
}

// Support returns the support fraction of an itemset.
func (s *Store) Support(items []model.Item) float64 {
	return float64(s.SupportCount(items)) / float64(len(s.txns))
}

// SupportCountIDs counts transactions containing every interned ID by
// intersecting posting lists, shortest first.
func (s *Store) SupportCountIDs(itemIDs []int) int {
	if len(itemIDs) == 0 {
		return len(s.txns)
	}

	lists := make([][]int, len(itemIDs))
	for i, id := range itemIDs {
		lists[i] = s.postings[id]
	}
	sort.Slice(lists, func(i, j int) bool { return len(lists[i]) < len(lists[j]) })

	acc := lists[0]
	for _, next := range lists[1:] {
		if len(acc) == 0 {
			return 0
		}
		acc = intersect(acc, next)
	}
	return len(acc)
}

// intersect merges two sorted int slices, keeping common elements.
func intersect(a, b []int) []int {
	out := make([]int, 0, min(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}
