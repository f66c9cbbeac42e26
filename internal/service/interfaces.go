// Package service defines the interfaces for the application's
// persistence and reporting collaborators.
package service

import (
	"context"
	"time"

	"github.com/halcyonforge/lift/internal/model"
)

// Storage defines the contract for the persistence layer.
type Storage interface {
	// Basket operations
	SaveBaskets(ctx context.Context, source string, baskets [][]model.Item) (int, error)
	GetBaskets(ctx context.Context) ([][]model.Item, error)
	CountBaskets(ctx context.Context) (int, error)

	// Mining run operations
	SaveRun(ctx context.Context, run *model.MiningRun, nonRedundant, redundant model.RuleSet) (int64, error)
	GetRun(ctx context.Context, id int64) (*model.MiningRun, error)
	GetLatestRun(ctx context.Context) (*model.MiningRun, error)
	ListRuns(ctx context.Context) ([]model.MiningRun, error)
	GetRules(ctx context.Context, runID int64, includeRedundant bool) (model.RuleSet, error)
	GetRedundantRules(ctx context.Context, runID int64) (model.RuleSet, error)
	DeleteRun(ctx context.Context, id int64) error

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}

// ReportWriter writes a mined rule set to an external report target.
type ReportWriter interface {
	Write(ctx context.Context, run *model.MiningRun, rules model.RuleSet) error
}

// RetryOptions configures retry behavior for external calls.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
