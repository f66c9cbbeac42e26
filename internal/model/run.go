package model

import "time"

// MiningRun records the parameters and headline results of one mining
// pass over the basket database.
type MiningRun struct {
	CreatedAt      time.Time
	ID             int64
	MinSupport     float64
	MinConfidence  float64
	MinLen         int
	MaxLen         int
	Transactions   int
	ItemsetCount   int
	RuleCount      int
	RedundantCount int
	Duration       time.Duration
}
