package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/halcyonforge/lift/internal/model"
)

// Validation errors.
var (
	ErrNilContext   = errors.New("context cannot be nil")
	ErrEmptyString  = errors.New("string parameter cannot be empty")
	ErrNilParameter = errors.New("parameter cannot be nil")
	ErrEmptySlice   = errors.New("slice cannot be empty")
	ErrInvalidID    = errors.New("id must be positive")
	ErrInvalidRun   = errors.New("invalid mining run")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateID ensures a row identifier is positive.
func validateID(id int64, paramName string) error {
	if id <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidID, paramName)
	}
	return nil
}

// validateBaskets validates a slice of baskets before persistence.
func validateBaskets(baskets [][]model.Item) error {
	if baskets == nil {
		return fmt.Errorf("%w: baskets", ErrNilParameter)
	}
	if len(baskets) == 0 {
		return fmt.Errorf("%w: baskets", ErrEmptySlice)
	}
	for i, basket := range baskets {
		if len(basket) == 0 {
			return fmt.Errorf("basket at index %d: %w: items", i, ErrEmptySlice)
		}
	}
	return nil
}

// validateRun validates a mining run record before persistence.
func validateRun(run *model.MiningRun) error {
	if run == nil {
		return fmt.Errorf("%w: run", ErrNilParameter)
	}
	if run.MinSupport <= 0 || run.MinSupport > 1 {
		return fmt.Errorf("%w: min support %v", ErrInvalidRun, run.MinSupport)
	}
	if run.MinConfidence <= 0 || run.MinConfidence > 1 {
		return fmt.Errorf("%w: min confidence %v", ErrInvalidRun, run.MinConfidence)
	}
	if run.Transactions <= 0 {
		return fmt.Errorf("%w: transaction count %d", ErrInvalidRun, run.Transactions)
	}
	return nil
}
