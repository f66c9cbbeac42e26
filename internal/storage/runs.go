package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/halcyonforge/lift/internal/common"
	"github.com/halcyonforge/lift/internal/model"
)

// SaveRun persists a mining run together with both rule partitions in
// one transaction and returns the new run ID.
func (s *SQLiteStorage) SaveRun(ctx context.Context, run *model.MiningRun, nonRedundant, redundant model.RuleSet) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateRun(run); err != nil {
		return 0, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO mining_runs (
			min_support, min_confidence, min_len, max_len,
			transactions, itemset_count, rule_count, redundant_count, duration_ms
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		run.MinSupport, run.MinConfidence, run.MinLen, run.MaxLen,
		run.Transactions, run.ItemsetCount, nonRedundant.Len(), redundant.Len(),
		run.Duration.Milliseconds())
	if err != nil {
		return 0, fmt.Errorf("failed to insert mining run: %w", err)
	}

	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO rules (
			run_id, position, antecedent, consequent,
			support_count, support, confidence, lift, redundant
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare rule statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	insert := func(rules []model.Rule, startPos int, isRedundant bool) error {
		for i, r := range rules {
			ant, err := json.Marshal(r.Antecedent)
			if err != nil {
				return fmt.Errorf("failed to encode antecedent: %w", err)
			}
			cons, err := json.Marshal(r.Consequent)
			if err != nil {
				return fmt.Errorf("failed to encode consequent: %w", err)
			}
			if _, err := stmt.ExecContext(ctx,
				runID, startPos+i, string(ant), string(cons),
				r.SupportCount, r.Support, r.Confidence, r.Lift, isRedundant); err != nil {
				return fmt.Errorf("failed to insert rule at position %d: %w", startPos+i, err)
			}
		}
		return nil
	}

	if err := insert(nonRedundant.Rules, 0, false); err != nil {
		return 0, err
	}
	if err := insert(redundant.Rules, nonRedundant.Len(), true); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	run.ID = runID
	run.RuleCount = nonRedundant.Len()
	run.RedundantCount = redundant.Len()
	return runID, nil
}

// GetRun loads a single mining run by ID.
func (s *SQLiteStorage) GetRun(ctx context.Context, id int64) (*model.MiningRun, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateID(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, min_support, min_confidence, min_len, max_len,
		       transactions, itemset_count, rule_count, redundant_count,
		       duration_ms, created_at
		FROM mining_runs WHERE id = ?
	`, id)
	return scanRun(row)
}

// GetLatestRun loads the most recent mining run.
func (s *SQLiteStorage) GetLatestRun(ctx context.Context) (*model.MiningRun, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, min_support, min_confidence, min_len, max_len,
		       transactions, itemset_count, rule_count, redundant_count,
		       duration_ms, created_at
		FROM mining_runs ORDER BY id DESC LIMIT 1
	`)
	return scanRun(row)
}

// ListRuns returns all mining runs, newest first.
func (s *SQLiteStorage) ListRuns(ctx context.Context) ([]model.MiningRun, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, min_support, min_confidence, min_len, max_len,
		       transactions, itemset_count, rule_count, redundant_count,
		       duration_ms, created_at
		FROM mining_runs ORDER BY id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query mining runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var runs []model.MiningRun
	for rows.Next() {
		var run model.MiningRun
		var durationMS int64
		if err := rows.Scan(&run.ID, &run.MinSupport, &run.MinConfidence,
			&run.MinLen, &run.MaxLen, &run.Transactions, &run.ItemsetCount,
			&run.RuleCount, &run.RedundantCount, &durationMS, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan mining run: %w", err)
		}
		run.Duration = time.Duration(durationMS) * time.Millisecond
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate mining runs: %w", err)
	}
	return runs, nil
}

// GetRules loads the rules of a run in stored order. Redundant rules
// are appended after the non-redundant partition when requested.
func (s *SQLiteStorage) GetRules(ctx context.Context, runID int64, includeRedundant bool) (model.RuleSet, error) {
	if err := validateContext(ctx); err != nil {
		return model.RuleSet{}, err
	}
	if err := validateID(runID, "runID"); err != nil {
		return model.RuleSet{}, err
	}

	query := `
		SELECT antecedent, consequent, support_count, support, confidence, lift
		FROM rules WHERE run_id = ?`
	if !includeRedundant {
		query += ` AND redundant = 0`
	}
	query += ` ORDER BY position`

	return s.queryRules(ctx, query, runID)
}

// GetRedundantRules loads only the redundant partition of a run.
func (s *SQLiteStorage) GetRedundantRules(ctx context.Context, runID int64) (model.RuleSet, error) {
	if err := validateContext(ctx); err != nil {
		return model.RuleSet{}, err
	}
	if err := validateID(runID, "runID"); err != nil {
		return model.RuleSet{}, err
	}

	return s.queryRules(ctx, `
		SELECT antecedent, consequent, support_count, support, confidence, lift
		FROM rules WHERE run_id = ? AND redundant = 1 ORDER BY position
	`, runID)
}

// DeleteRun removes a mining run and its rules.
func (s *SQLiteStorage) DeleteRun(ctx context.Context, id int64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateID(id, "id"); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM mining_runs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete mining run: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("mining run %d: %w", id, common.ErrNotFound)
	}
	return nil
}

func (s *SQLiteStorage) queryRules(ctx context.Context, query string, args ...any) (model.RuleSet, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return model.RuleSet{}, fmt.Errorf("failed to query rules: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []model.Rule
	for rows.Next() {
		var r model.Rule
		var ant, cons string
		if err := rows.Scan(&ant, &cons, &r.SupportCount, &r.Support, &r.Confidence, &r.Lift); err != nil {
			return model.RuleSet{}, fmt.Errorf("failed to scan rule: %w", err)
		}
		if err := json.Unmarshal([]byte(ant), &r.Antecedent); err != nil {
			return model.RuleSet{}, fmt.Errorf("failed to decode antecedent: %w", err)
		}
		if err := json.Unmarshal([]byte(cons), &r.Consequent); err != nil {
			return model.RuleSet{}, fmt.Errorf("failed to decode consequent: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return model.RuleSet{}, fmt.Errorf("failed to iterate rules: %w", err)
	}
	return model.RuleSet{Rules: out}, nil
}

func scanRun(row *sql.Row) (*model.MiningRun, error) {
	var run model.MiningRun
	var durationMS int64
	err := row.Scan(&run.ID, &run.MinSupport, &run.MinConfidence,
		&run.MinLen, &run.MaxLen, &run.Transactions, &run.ItemsetCount,
		&run.RuleCount, &run.RedundantCount, &durationMS, &run.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan mining run: %w", err)
	}
	run.Duration = time.Duration(durationMS) * time.Millisecond
	return &run, nil
}
