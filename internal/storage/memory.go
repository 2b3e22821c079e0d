package storage

import (
	"context"
	"sort"
	"sync"

	"spinesel/internal/tree"
)

type treeKey struct {
	runID string
	tree  string
}

type treeData struct {
	columns []string
	rows    []tree.Row
}

type MemoryStore struct {
	mu    sync.RWMutex
	runs  map[string]Run
	trees map[treeKey]treeData
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.runs = make(map[string]Run)
	s.trees = make(map[treeKey]treeData)
	return nil
}

func (s *MemoryStore) SaveRun(_ context.Context, run Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.runs[run.ID] = run
	return nil
}

func (s *MemoryStore) Runs(_ context.Context) ([]Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	runs := make([]Run, 0, len(s.runs))
	for _, run := range s.runs {
		runs = append(runs, run)
	}
	sort.Slice(runs, func(i, j int) bool { return runs[i].ID < runs[j].ID })
	return runs, nil
}

func (s *MemoryStore) SaveRows(_ context.Context, runID, treeName string, columns []string, rows []tree.Row) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := treeKey{runID: runID, tree: treeName}
	data := s.trees[key]
	if data.columns == nil {
		data.columns = append([]string(nil), columns...)
	}
	data.rows = append(data.rows, rows...)
	s.trees[key] = data
	return nil
}

func (s *MemoryStore) Rows(_ context.Context, runID, treeName string) ([]string, []tree.Row, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.trees[treeKey{runID: runID, tree: treeName}]
	if !ok {
		return nil, nil, false, nil
	}
	columns := append([]string(nil), data.columns...)
	rows := append([]tree.Row(nil), data.rows...)
	return columns, rows, true, nil
}
