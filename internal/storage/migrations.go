package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version that the
// application expects.
const ExpectedSchemaVersion = 2

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS baskets (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					source TEXT NOT NULL,
					items TEXT NOT NULL,
					imported_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX idx_baskets_source ON baskets(source)`,

				`CREATE TABLE IF NOT EXISTS mining_runs (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					min_support REAL NOT NULL,
					min_confidence REAL NOT NULL,
					min_len INTEGER NOT NULL,
					max_len INTEGER NOT NULL,
					transactions INTEGER NOT NULL,
					itemset_count INTEGER NOT NULL,
					rule_count INTEGER NOT NULL,
					duration_ms INTEGER NOT NULL DEFAULT 0,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,

				`CREATE TABLE IF NOT EXISTS rules (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					run_id INTEGER NOT NULL,
					position INTEGER NOT NULL,
					antecedent TEXT NOT NULL,
					consequent TEXT NOT NULL,
					support_count INTEGER NOT NULL,
					support REAL NOT NULL,
					confidence REAL NOT NULL,
					lift REAL NOT NULL,
					redundant INTEGER NOT NULL DEFAULT 0,
					FOREIGN KEY (run_id) REFERENCES mining_runs(id) ON DELETE CASCADE
				)`,
				`CREATE INDEX idx_rules_run ON rules(run_id)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Track redundant rule counts per run",
		Up: func(tx *sql.Tx) error {
			if _, err := tx.Exec(`ALTER TABLE mining_runs ADD COLUMN redundant_count INTEGER NOT NULL DEFAULT 0`); err != nil {
				return fmt.Errorf("failed to add redundant_count column: %w", err)
			}
			return nil
		},
	},
}

// Migrate brings the database schema up to the expected version.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	var current int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&current); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	for _, m := range migrations {
		if m.Version <= current {
			continue
		}

		slog.Info("applying migration",
			"version", m.Version,
			"description", m.Description)

		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin migration transaction: %w", err)
		}

		if err := m.Up(tx); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Description, err)
		}

		// PRAGMA does not accept bind parameters.
		if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", m.Version)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to set schema version %d: %w", m.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", m.Version, err)
		}

		current = m.Version
	}

	if current != ExpectedSchemaVersion {
		return fmt.Errorf("schema version %d does not match expected %d", current, ExpectedSchemaVersion)
	}
	return nil
}
