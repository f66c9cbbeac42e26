package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortItems(t *testing.T) {
	items := []Item{"milk", "bread", "butter"}

	SortItems(items)

	assert.Equal(t, []Item{"bread", "butter", "milk"}, items)
}

func TestDedupeItems(t *testing.T) {
	tests := []struct {
		name  string
		input []Item
		want  []Item
	}{
		{name: "nil input", input: nil, want: nil},
		{name: "empty input", input: []Item{}, want: nil},
		{name: "already unique", input: []Item{"milk", "bread"}, want: []Item{"bread", "milk"}},
		{name: "duplicates removed", input: []Item{"milk", "bread", "milk", "milk"}, want: []Item{"bread", "milk"}},
		{name: "single item", input: []Item{"milk"}, want: []Item{"milk"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DedupeItems(tt.input)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDedupeItems_DoesNotMutateInput(t *testing.T) {
	input := []Item{"milk", "bread", "milk"}

	DedupeItems(input)

	assert.Equal(t, []Item{"milk", "bread", "milk"}, input)
}

func TestRuleString(t *testing.T) {
	r := Rule{
		Antecedent: []Item{"butter", "milk"},
		Consequent: []Item{"bread"},
	}

	assert.Equal(t, "butter, milk => bread", r.String())
}

func TestRuleSet(t *testing.T) {
	assert.True(t, RuleSet{}.Empty())
	assert.Equal(t, 0, RuleSet{}.Len())

	rs := RuleSet{Rules: []Rule{{}}}
	assert.False(t, rs.Empty())
	assert.Equal(t, 1, rs.Len())
}
