//go:build sqlite

package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"spinesel/internal/tree"

	_ "modernc.org/sqlite"
)

type SQLiteStore struct {
	path string

	mu sync.RWMutex
	db *sql.DB
}

func newSQLiteStore(path string) (Store, error) {
	if path == "" {
		return nil, errors.New("sqlite path is required")
	}
	return &SQLiteStore{path: path}, nil
}

// DefaultStoreKind reports the backend selected when no explicit kind is
// configured.
func DefaultStoreKind() string { return "sqlite" }

func (s *SQLiteStore) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return err
	}
	if err := createTables(ctx, db); err != nil {
		_ = db.Close()
		return err
	}

	s.db = db
	return nil
}

func createTables(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			sample TEXT NOT NULL,
			is_mc INTEGER NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS trees (
			run_id TEXT NOT NULL,
			tree TEXT NOT NULL,
			columns TEXT NOT NULL,
			PRIMARY KEY (run_id, tree)
		)`,
		`CREATE TABLE IF NOT EXISTS rows (
			run_id TEXT NOT NULL,
			tree TEXT NOT NULL,
			run INTEGER NOT NULL,
			subrun INTEGER NOT NULL,
			event INTEGER NOT NULL,
			interaction INTEGER NOT NULL,
			vals TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS rows_run_tree ON rows(run_id, tree)`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create tables: %w", err)
		}
	}
	return nil
}

func (s *SQLiteStore) getDB() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, errors.New("sqlite store is not initialized")
	}
	return s.db, nil
}

func (s *SQLiteStore) SaveRun(ctx context.Context, run Run) error {
	db, err := s.getDB()
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx,
		`INSERT OR REPLACE INTO runs (id, sample, is_mc, created_at) VALUES (?, ?, ?, ?)`,
		run.ID, run.Sample, boolToInt(run.IsMC), run.CreatedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("save run: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Runs(ctx context.Context) ([]Run, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx, `SELECT id, sample, is_mc, created_at FROM runs ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var isMC int
		var created string
		if err := rows.Scan(&run.ID, &run.Sample, &isMC, &created); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.IsMC = isMC != 0
		if run.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
			return nil, fmt.Errorf("parse run timestamp: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

func (s *SQLiteStore) SaveRows(ctx context.Context, runID, treeName string, columns []string, rows []tree.Row) error {
	db, err := s.getDB()
	if err != nil {
		return err
	}
	cols, err := json.Marshal(columns)
	if err != nil {
		return fmt.Errorf("encode columns: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save rows: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT OR IGNORE INTO trees (run_id, tree, columns) VALUES (?, ?, ?)`,
		runID, treeName, string(cols)); err != nil {
		return fmt.Errorf("save tree columns: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO rows (run_id, tree, run, subrun, event, interaction, vals) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare row insert: %w", err)
	}
	defer stmt.Close()

	for _, row := range rows {
		vals, err := encodeValues(row.Values)
		if err != nil {
			return err
		}
		if _, err := stmt.ExecContext(ctx,
			runID, treeName, row.Run, row.Subrun, row.Event, row.Interaction, vals); err != nil {
			return fmt.Errorf("insert row: %w", err)
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) Rows(ctx context.Context, runID, treeName string) ([]string, []tree.Row, bool, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, nil, false, err
	}

	var colsJSON string
	err = db.QueryRowContext(ctx,
		`SELECT columns FROM trees WHERE run_id = ? AND tree = ?`, runID, treeName).Scan(&colsJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, false, nil
	}
	if err != nil {
		return nil, nil, false, fmt.Errorf("load tree columns: %w", err)
	}
	var columns []string
	if err := json.Unmarshal([]byte(colsJSON), &columns); err != nil {
		return nil, nil, false, fmt.Errorf("decode columns: %w", err)
	}

	rows, err := db.QueryContext(ctx,
		`SELECT run, subrun, event, interaction, vals FROM rows WHERE run_id = ? AND tree = ? ORDER BY rowid`,
		runID, treeName)
	if err != nil {
		return nil, nil, false, fmt.Errorf("load rows: %w", err)
	}
	defer rows.Close()

	var out []tree.Row
	for rows.Next() {
		var row tree.Row
		var vals string
		if err := rows.Scan(&row.Run, &row.Subrun, &row.Event, &row.Interaction, &vals); err != nil {
			return nil, nil, false, fmt.Errorf("scan row: %w", err)
		}
		if row.Values, err = decodeValues(vals); err != nil {
			return nil, nil, false, err
		}
		out = append(out, row)
	}
	return columns, out, true, rows.Err()
}

func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
