// Package catalog implements named registries of cuts and variables.
// Config files and the CLI address selection functions by name; a Catalog
// resolves those names to the registered closures.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"spinesel/internal/event"
)

var (
	ErrExists   = errors.New("name already registered")
	ErrNotFound = errors.New("name not found")
)

// RecoCut selects reconstructed interactions.
type RecoCut func(*event.RecoInteraction) bool

// TruthCut selects truth interactions.
type TruthCut func(*event.TruthInteraction) bool

// RecoVar extracts a scalar from a reconstructed interaction.
type RecoVar func(*event.RecoInteraction) float64

// TruthVar extracts a scalar from a truth interaction.
type TruthVar func(*event.TruthInteraction) float64

// Catalog is a thread-safe name registry for the four function kinds.
// The zero value is not usable; construct with New.
type Catalog struct {
	mu        sync.RWMutex
	recoCuts  map[string]RecoCut
	truthCuts map[string]TruthCut
	recoVars  map[string]RecoVar
	truthVars map[string]TruthVar
}

func New() *Catalog {
	return &Catalog{
		recoCuts:  make(map[string]RecoCut),
		truthCuts: make(map[string]TruthCut),
		recoVars:  make(map[string]RecoVar),
		truthVars: make(map[string]TruthVar),
	}
}

func (c *Catalog) RegisterRecoCut(name string, fn RecoCut) error {
	if name == "" {
		return errors.New("cut name is required")
	}
	if fn == nil {
		return errors.New("cut function is required")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.recoCuts[name]; exists {
		return fmt.Errorf("%w: %s", ErrExists, name)
	}
	c.recoCuts[name] = fn
	return nil
}

func (c *Catalog) RegisterTruthCut(name string, fn TruthCut) error {
	if name == "" {
		return errors.New("cut name is required")
	}
	if fn == nil {
		return errors.New("cut function is required")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.truthCuts[name]; exists {
		return fmt.Errorf("%w: %s", ErrExists, name)
	}
	c.truthCuts[name] = fn
	return nil
}

func (c *Catalog) RegisterRecoVar(name string, fn RecoVar) error {
	if name == "" {
		return errors.New("variable name is required")
	}
	if fn == nil {
		return errors.New("variable function is required")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.recoVars[name]; exists {
		return fmt.Errorf("%w: %s", ErrExists, name)
	}
	c.recoVars[name] = fn
	return nil
}

func (c *Catalog) RegisterTruthVar(name string, fn TruthVar) error {
	if name == "" {
		return errors.New("variable name is required")
	}
	if fn == nil {
		return errors.New("variable function is required")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.truthVars[name]; exists {
		return fmt.Errorf("%w: %s", ErrExists, name)
	}
	c.truthVars[name] = fn
	return nil
}

func (c *Catalog) MustRegisterRecoCut(name string, fn RecoCut) {
	if err := c.RegisterRecoCut(name, fn); err != nil {
		panic(err)
	}
}

func (c *Catalog) MustRegisterTruthCut(name string, fn TruthCut) {
	if err := c.RegisterTruthCut(name, fn); err != nil {
		panic(err)
	}
}

func (c *Catalog) MustRegisterRecoVar(name string, fn RecoVar) {
	if err := c.RegisterRecoVar(name, fn); err != nil {
		panic(err)
	}
}

func (c *Catalog) MustRegisterTruthVar(name string, fn TruthVar) {
	if err := c.RegisterTruthVar(name, fn); err != nil {
		panic(err)
	}
}

func (c *Catalog) GetRecoCut(name string) (RecoCut, error) {
	c.mu.RLock()
	fn, ok := c.recoCuts[name]
	c.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: reco cut %s", ErrNotFound, name)
	}
	return fn, nil
}

func (c *Catalog) GetTruthCut(name string) (TruthCut, error) {
	c.mu.RLock()
	fn, ok := c.truthCuts[name]
	c.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: truth cut %s", ErrNotFound, name)
	}
	return fn, nil
}

func (c *Catalog) GetRecoVar(name string) (RecoVar, error) {
	c.mu.RLock()
	fn, ok := c.recoVars[name]
	c.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: reco variable %s", ErrNotFound, name)
	}
	return fn, nil
}

func (c *Catalog) GetTruthVar(name string) (TruthVar, error) {
	c.mu.RLock()
	fn, ok := c.truthVars[name]
	c.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: truth variable %s", ErrNotFound, name)
	}
	return fn, nil
}

func (c *Catalog) ListRecoCuts() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return sortedKeys(c.recoCuts)
}

func (c *Catalog) ListTruthCuts() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return sortedKeys(c.truthCuts)
}

func (c *Catalog) ListRecoVars() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return sortedKeys(c.recoVars)
}

func (c *Catalog) ListTruthVars() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return sortedKeys(c.truthVars)
}

func sortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
