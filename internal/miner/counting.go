package miner

import (
	"context"
	"sync"

	"github.com/halcyonforge/lift/internal/store"
)

// txnShard is a half-open range of transaction indices counted by one
// worker.
type txnShard struct {
	start int
	end   int
}

// countCandidates computes support counts for every candidate at one
// level. Transactions are sharded across workers; each worker
// accumulates local counts over its shards and a single reducer sums
// them, so no shared mutable state needs locking. If ctx is canceled
// the partial counts are meaningless and the caller must discard them.
func countCandidates(ctx context.Context, st *store.Store, candidates [][]int, workers int) []int {
	counts := make([]int, len(candidates))
	if len(candidates) == 0 {
		return counts
	}

	n := st.Len()
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}
	chunk := (n + workers - 1) / workers

	workChan := make(chan txnShard, workers)
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		workChan <- txnShard{start: start, end: end}
	}
	close(workChan)

	resultsChan := make(chan []int, workers)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			local := make([]int, len(candidates))
			for shard := range workChan {
				select {
				case <-ctx.Done():
					return
				default:
				}
				for i := shard.start; i < shard.end; i++ {
					txn := st.TransactionIDs(i)
					for c, cand := range candidates {
						if len(cand) <= len(txn) && isSubset(cand, txn) {
							local[c]++
						}
					}
				}
			}
			resultsChan <- local
		}()
	}

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	for local := range resultsChan {
		for i, v := range local {
			counts[i] += v
		}
	}
	return counts
}

// isSubset reports whether every element of sub occurs in set. Both
// slices must be sorted ascending.
func isSubset(sub, set []int) bool {
	j := 0
	for _, want := range sub {
		for j < len(set) && set[j] < want {
			j++
		}
		if j == len(set) || set[j] != want {
			return false
		}
		j++
	}
	return true
}
