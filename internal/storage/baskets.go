package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/halcyonforge/lift/internal/model"
)

// SaveBaskets persists a batch of baskets under a source label and
// returns the number saved. Item order within a basket is normalized
// before storage.
func (s *SQLiteStorage) SaveBaskets(ctx context.Context, source string, baskets [][]model.Item) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateString(source, "source"); err != nil {
		return 0, err
	}
	if err := validateBaskets(baskets); err != nil {
		return 0, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO baskets (source, items) VALUES (?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	saved := 0
	for i, basket := range baskets {
		items, err := json.Marshal(model.DedupeItems(basket))
		if err != nil {
			return 0, fmt.Errorf("failed to encode basket at index %d: %w", i, err)
		}
		if _, err := stmt.ExecContext(ctx, source, string(items)); err != nil {
			return 0, fmt.Errorf("failed to insert basket at index %d: %w", i, err)
		}
		saved++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return saved, nil
}

// GetBaskets loads every stored basket in insertion order.
func (s *SQLiteStorage) GetBaskets(ctx context.Context) ([][]model.Item, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT items FROM baskets ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query baskets: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var baskets [][]model.Item
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("failed to scan basket: %w", err)
		}
		var items []model.Item
		if err := json.Unmarshal([]byte(raw), &items); err != nil {
			return nil, fmt.Errorf("failed to decode basket items: %w", err)
		}
		baskets = append(baskets, items)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate baskets: %w", err)
	}
	return baskets, nil
}

// CountBaskets returns the number of stored baskets.
func (s *SQLiteStorage) CountBaskets(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM baskets`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count baskets: %w", err)
	}
	return count, nil
}
