// Package storage persists analysis runs and their filled tree rows. The
// memory backend serves tests and one-shot runs; the sqlite backend is
// available behind the sqlite build tag.
package storage

import (
	"context"
	"time"

	"spinesel/internal/tree"
)

// Run identifies one analysis execution over one sample.
type Run struct {
	ID        string    `json:"id"`
	Sample    string    `json:"sample"`
	IsMC      bool      `json:"is_mc"`
	CreatedAt time.Time `json:"created_at"`
}

// Store defines persistence operations for runs and tree rows.
type Store interface {
	Init(ctx context.Context) error
	SaveRun(ctx context.Context, run Run) error
	Runs(ctx context.Context) ([]Run, error)
	SaveRows(ctx context.Context, runID, treeName string, columns []string, rows []tree.Row) error
	Rows(ctx context.Context, runID, treeName string) ([]string, []tree.Row, bool, error)
}
