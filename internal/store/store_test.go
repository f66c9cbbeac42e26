package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halcyonforge/lift/internal/common"
	"github.com/halcyonforge/lift/internal/model"
)

func basketOf(items ...string) []model.Item {
	out := make([]model.Item, len(items))
	for i, s := range items {
		out[i] = model.Item(s)
	}
	return out
}

func TestNew_EmptyDataset(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrEmptyDataset)

	_, err = New([][]model.Item{})
	assert.ErrorIs(t, err, common.ErrEmptyDataset)
}

func TestNew_InternsItemsInLexicographicOrder(t *testing.T) {
	s, err := New([][]model.Item{
		basketOf("milk", "bread"),
		basketOf("butter"),
	})
	require.NoError(t, err)

	assert.Equal(t, []model.Item{"bread", "butter", "milk"}, s.Items())
	assert.Equal(t, 3, s.NumItems())
	assert.Equal(t, 2, s.Len())

	id, ok := s.ItemID("milk")
	require.True(t, ok)
	assert.Equal(t, model.Item("milk"), s.Item(id))

	_, ok = s.ItemID("caviar")
	assert.False(t, ok)
}

func TestNew_CollapsesDuplicateItems(t *testing.T) {
	s, err := New([][]model.Item{
		basketOf("milk", "milk", "bread"),
	})
	require.NoError(t, err)

	id, ok := s.ItemID("milk")
	require.True(t, ok)
	assert.Len(t, s.Postings(id), 1)
	assert.Equal(t, 1, s.SupportCount(basketOf("milk", "bread")))
}

func TestSupportCount(t *testing.T) {
	s, err := New([][]model.Item{
		basketOf("milk", "bread"),
		basketOf("milk", "bread", "butter"),
		basketOf("milk"),
		basketOf("bread", "butter"),
	})
	require.NoError(t, err)

	tests := []struct {
		name  string
		items []model.Item
		want  int
	}{
		{name: "single item", items: basketOf("milk"), want: 3},
		{name: "pair", items: basketOf("milk", "bread"), want: 2},
		{name: "triple", items: basketOf("milk", "bread", "butter"), want: 1},
		{name: "unknown item", items: basketOf("caviar"), want: 0},
		{name: "empty set is in every transaction", items: nil, want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.SupportCount(tt.items))
		})
	}
}

func TestSupport_Fraction(t *testing.T) {
	s, err := New([][]model.Item{
		basketOf("milk", "bread"),
		basketOf("milk", "bread", "butter"),
		basketOf("milk"),
		basketOf("bread", "butter"),
	})
	require.NoError(t, err)

	assert.InDelta(t, 0.75, s.Support(basketOf("milk")), 1e-9)
	assert.InDelta(t, 0.5, s.Support(basketOf("milk", "bread")), 1e-9)
}

func TestTransactionIDs_Sorted(t *testing.T) {
	s, err := New([][]model.Item{
		basketOf("milk", "bread", "apple"),
	})
	require.NoError(t, err)

	ids := s.TransactionIDs(0)
	require.Len(t, ids, 3)
	for i := 1; i < len(ids); i++ {
		assert.Less(t, ids[i-1], ids[i])
	}
}
