package runs

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// ErrNotFound is returned when a run id has no stored record.
var ErrNotFound = errors.New("run not found")

// runsColumns avoids SELECT *; order must match scanRun.
const runsColumns = `id, created_at, num_assets, cardinality, depth, shots, seed,
	best_expectation, bitstring, objective, annual_return, annual_volatility, degraded, result_json`

// Repository handles run persistence in the runs database.
type Repository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewRepository creates a new runs repository.
func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repo", "runs").Logger(),
	}
}

// InitSchema creates the runs table if it doesn't exist.
func (r *Repository) InitSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			created_at TEXT NOT NULL,
			num_assets INTEGER NOT NULL,
			cardinality INTEGER NOT NULL,
			depth INTEGER NOT NULL,
			shots INTEGER NOT NULL,
			seed INTEGER NOT NULL,
			best_expectation REAL NOT NULL,
			bitstring TEXT NOT NULL,
			objective REAL NOT NULL,
			annual_return REAL NOT NULL,
			annual_volatility REAL NOT NULL,
			degraded INTEGER NOT NULL DEFAULT 0,
			result_json TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);
	`
	if _, err := r.db.Exec(query); err != nil {
		return fmt.Errorf("failed to create runs schema: %w", err)
	}
	return nil
}

// Save inserts a completed run.
func (r *Repository) Save(run Run) error {
	query := `
		INSERT INTO runs
		(id, created_at, num_assets, cardinality, depth, shots, seed,
		 best_expectation, bitstring, objective, annual_return, annual_volatility, degraded, result_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	degraded := 0
	if run.Degraded {
		degraded = 1
	}
	_, err := r.db.Exec(query,
		run.ID,
		run.CreatedAt.UTC().Format(time.RFC3339),
		run.NumAssets,
		run.Cardinality,
		run.Depth,
		run.Shots,
		run.Seed,
		run.BestExpectation,
		run.Bitstring,
		run.Objective,
		run.AnnualReturn,
		run.AnnualVolatility,
		degraded,
		run.ResultJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to save run %s: %w", run.ID, err)
	}

	r.log.Debug().Str("run_id", run.ID).Msg("Run persisted")
	return nil
}

// Get returns one run by id, including the full result payload.
func (r *Repository) Get(id string) (*Run, error) {
	query := fmt.Sprintf("SELECT %s FROM runs WHERE id = ?", runsColumns)
	run, err := scanRun(r.db.QueryRow(query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run %s: %w", id, err)
	}
	return run, nil
}

// List returns the most recent runs, newest first, without result payloads.
func (r *Repository) List(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 50
	}
	query := fmt.Sprintf("SELECT %s FROM runs ORDER BY created_at DESC LIMIT ?", runsColumns)
	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var result []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		run.ResultJSON = "" // keep listings light
		result = append(result, *run)
	}
	return result, rows.Err()
}

// DeleteOlderThan removes runs created before the cutoff and returns the
// number deleted.
func (r *Repository) DeleteOlderThan(cutoff time.Time) (int64, error) {
	res, err := r.db.Exec("DELETE FROM runs WHERE created_at < ?", cutoff.UTC().Format(time.RFC3339))
	if err != nil {
		return 0, fmt.Errorf("failed to prune runs: %w", err)
	}
	return res.RowsAffected()
}

// scanner covers both sql.Row and sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRun(s scanner) (*Run, error) {
	var run Run
	var createdAt string
	var degraded int
	err := s.Scan(
		&run.ID,
		&createdAt,
		&run.NumAssets,
		&run.Cardinality,
		&run.Depth,
		&run.Shots,
		&run.Seed,
		&run.BestExpectation,
		&run.Bitstring,
		&run.Objective,
		&run.AnnualReturn,
		&run.AnnualVolatility,
		&degraded,
		&run.ResultJSON,
	)
	if err != nil {
		return nil, err
	}
	run.Degraded = degraded != 0
	if ts, err := time.Parse(time.RFC3339, createdAt); err == nil {
		run.CreatedAt = ts
	}
	return &run, nil
}
