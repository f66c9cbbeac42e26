package miner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCandidates_JoinsAllPairsAtLevelTwo(t *testing.T) {
	level := [][]int{{0}, {1}, {2}}

	got := generateCandidates(level)

	assert.Equal(t, [][]int{{0, 1}, {0, 2}, {1, 2}}, got)
}

func TestGenerateCandidates_RequiresSharedPrefix(t *testing.T) {
	// {0,1} and {0,2} share the prefix {0} and join to {0,1,2}, but
	// {1,2} is needed for it to survive the subset prune.
	tests := []struct {
		name  string
		level [][]int
		want  [][]int
	}{
		{
			name:  "all subsets frequent",
			level: [][]int{{0, 1}, {0, 2}, {1, 2}},
			want:  [][]int{{0, 1, 2}},
		},
		{
			name:  "missing subset prunes candidate",
			level: [][]int{{0, 1}, {0, 2}},
			want:  nil,
		},
		{
			name:  "different prefixes never join",
			level: [][]int{{0, 1}, {1, 2}},
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, generateCandidates(tt.level))
		})
	}
}

func TestIsSubset(t *testing.T) {
	tests := []struct {
		name string
		sub  []int
		set  []int
		want bool
	}{
		{name: "contained", sub: []int{1, 3}, set: []int{0, 1, 2, 3}, want: true},
		{name: "identical", sub: []int{1, 2}, set: []int{1, 2}, want: true},
		{name: "missing element", sub: []int{1, 4}, set: []int{0, 1, 2, 3}, want: false},
		{name: "empty subset", sub: nil, set: []int{1}, want: true},
		{name: "larger than set", sub: []int{1, 2, 3}, set: []int{1, 2}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isSubset(tt.sub, tt.set))
		})
	}
}
