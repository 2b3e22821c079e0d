// Package analysis implements the batch driver: it loads each registered
// sample, fills each registered tree over every event, and persists the
// rows under a fresh run ID per sample.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"spinesel/internal/sample"
	"spinesel/internal/storage"
	"spinesel/internal/tree"
)

// Analysis is a configured set of loaders and trees. Construct with New,
// register with AddLoader and AddTree, execute with Go.
type Analysis struct {
	loaders []sample.Loader
	trees   []*tree.Tree
}

func New() *Analysis {
	return &Analysis{}
}

func (a *Analysis) AddLoader(l sample.Loader) error {
	if l.Name == "" {
		return errors.New("loader name is required")
	}
	for _, existing := range a.loaders {
		if existing.Name == l.Name {
			return fmt.Errorf("loader %s already added", l.Name)
		}
	}
	a.loaders = append(a.loaders, l)
	return nil
}

func (a *Analysis) AddTree(t *tree.Tree) error {
	if err := t.Validate(); err != nil {
		return err
	}
	for _, existing := range a.trees {
		if existing.Name == t.Name {
			return fmt.Errorf("tree %s already added", t.Name)
		}
	}
	a.trees = append(a.trees, t)
	return nil
}

// Result summarizes one sample's execution.
type Result struct {
	RunID  string
	Sample string
	Rows   map[string]int
}

// Go executes every tree over every loader's events and persists the rows.
// Each loader gets its own run ID. Simulation-only trees are skipped for
// data loaders.
func (a *Analysis) Go(ctx context.Context, store storage.Store) ([]Result, error) {
	if len(a.loaders) == 0 {
		return nil, errors.New("no loaders registered")
	}
	if len(a.trees) == 0 {
		return nil, errors.New("no trees registered")
	}

	var results []Result
	for _, loader := range a.loaders {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		res, err := a.runLoader(ctx, store, loader)
		if err != nil {
			return results, fmt.Errorf("sample %s: %w", loader.Name, err)
		}
		results = append(results, res)
	}
	return results, nil
}

func (a *Analysis) runLoader(ctx context.Context, store storage.Store, loader sample.Loader) (Result, error) {
	events, err := loader.Events()
	if err != nil {
		return Result{}, err
	}

	run := storage.Run{
		ID:        uuid.NewString(),
		Sample:    loader.Name,
		IsMC:      loader.IsMC,
		CreatedAt: time.Now().UTC(),
	}
	if err := store.SaveRun(ctx, run); err != nil {
		return Result{}, err
	}

	res := Result{RunID: run.ID, Sample: loader.Name, Rows: make(map[string]int)}
	for _, t := range a.trees {
		if t.SimOnly && !loader.IsMC {
			continue
		}
		columns := make([]string, len(t.Columns))
		for i, col := range t.Columns {
			columns[i] = col.Name
		}
		var rows []tree.Row
		for i := range events {
			rows = append(rows, t.Fill(&events[i])...)
		}
		if err := store.SaveRows(ctx, run.ID, t.Name, columns, rows); err != nil {
			return Result{}, fmt.Errorf("tree %s: %w", t.Name, err)
		}
		res.Rows[t.Name] = len(rows)
	}
	return res, nil
}
