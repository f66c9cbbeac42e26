// Package miner implements level-wise Apriori frequent itemset mining
// over an immutable transaction store.
package miner

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"runtime"

	"github.com/halcyonforge/lift/internal/common"
	"github.com/halcyonforge/lift/internal/model"
	"github.com/halcyonforge/lift/internal/store"
)

// Default length bounds used by the CLI when the caller does not set
// explicit limits.
const (
	DefaultMinLen = 1
	DefaultMaxLen = 8
)

// Config holds the parameters for one mining run.
type Config struct {
	// MinSupport is the minimum support fraction, in (0,1].
	MinSupport float64
	// MinLen and MaxLen bound the size of reported itemsets. Mining
	// always starts at single items; MinLen only filters the output.
	MinLen int
	MaxLen int
	// Workers is the number of support-counting goroutines per level.
	// Zero or negative means runtime.NumCPU().
	Workers int
	// OnLevel, if set, is called after each level completes with the
	// level number, candidate count, and surviving frequent count.
	OnLevel func(level, candidates, frequent int)
}

func (c Config) validate() error {
	if c.MinSupport <= 0 || c.MinSupport > 1 {
		return fmt.Errorf("%w: min support %v must be in (0,1]", common.ErrInvalidParameter, c.MinSupport)
	}
	if c.MinLen < 1 {
		return fmt.Errorf("%w: min length %d must be at least 1", common.ErrInvalidParameter, c.MinLen)
	}
	if c.MinLen > c.MaxLen {
		return fmt.Errorf("%w: min length %d exceeds max length %d", common.ErrInvalidParameter, c.MinLen, c.MaxLen)
	}
	return nil
}

// Mine enumerates every itemset whose support meets cfg.MinSupport,
// with sizes in [cfg.MinLen, cfg.MaxLen]. Output order is
// deterministic: by itemset size, then lexicographic within a level.
// Cancellation is honored between levels; a partially counted level is
// discarded.
func Mine(ctx context.Context, st *store.Store, cfg Config) ([]model.Itemset, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	n := st.Len()
	minCount := int(math.Ceil(cfg.MinSupport*float64(n) - 1e-9))
	if minCount < 1 {
		minCount = 1
	}

	// Level 1: single-item supports come straight off the inverted index.
	var level [][]int
	var counts []int
	for id := 0; id < st.NumItems(); id++ {
		if c := len(st.Postings(id)); c >= minCount {
			level = append(level, []int{id})
			counts = append(counts, c)
		}
	}
	if cfg.OnLevel != nil {
		cfg.OnLevel(1, st.NumItems(), len(level))
	}

	var out []model.Itemset
	for k := 1; len(level) > 0; k++ {
		if k >= cfg.MinLen {
			for i, ids := range level {
				out = append(out, model.Itemset{
					Items:        st.ItemsOf(ids),
					SupportCount: counts[i],
					Support:      float64(counts[i]) / float64(n),
				})
			}
		}
		if k == cfg.MaxLen {
			break
		}

		// Each level is a complete unit of work; abort only at the
		// boundary so no partial level leaks into the result.
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		candidates := generateCandidates(level)
		if len(candidates) == 0 {
			break
		}

		candCounts := countCandidates(ctx, st, candidates, workers)
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var nextLevel [][]int
		var nextCounts []int
		for i, cand := range candidates {
			if candCounts[i] >= minCount {
				nextLevel = append(nextLevel, cand)
				nextCounts = append(nextCounts, candCounts[i])
			}
		}
		if cfg.OnLevel != nil {
			cfg.OnLevel(k+1, len(candidates), len(nextLevel))
		}
		slog.Debug("mined level",
			"level", k+1,
			"candidates", len(candidates),
			"frequent", len(nextLevel))

		level, counts = nextLevel, nextCounts
	}

	return out, nil
}
