// Package spinesel is the public API: a Client owns a store and executes
// configured analyses, and BuildCatalog exposes every built-in cut and
// variable under its registry name.
package spinesel

import (
	"context"
	"fmt"
	"io"

	"spinesel/internal/analysis"
	"spinesel/internal/cuts"
	"spinesel/internal/event"
	"spinesel/internal/pcuts"
	"spinesel/internal/sample"
	"spinesel/internal/storage"
	"spinesel/internal/tree"
)

const defaultDBPath = "spinesel.db"

// Options selects the persistence backend.
type Options struct {
	StoreKind string
	DBPath    string
}

// Config tunes the selection functions a catalog is built with. Zero fields
// keep the nominal values.
type Config struct {
	PIDStrategy string            `json:"pid_strategy,omitempty"`
	Thresholds  *pcuts.Thresholds `json:"thresholds,omitempty"`
	FlashWindow *cuts.FlashWindow `json:"flash_window,omitempty"`
	BeamAxis    *event.Vector3    `json:"beam_axis,omitempty"`
}

// Client executes analyses against its store.
type Client struct {
	store storage.Store
}

func New(opts Options) (*Client, error) {
	storeKind := opts.StoreKind
	if storeKind == "" {
		storeKind = storage.DefaultStoreKind()
	}
	dbPath := opts.DBPath
	if dbPath == "" {
		dbPath = defaultDBPath
	}

	store, err := storage.NewStore(storeKind, dbPath)
	if err != nil {
		return nil, err
	}
	return &Client{store: store}, nil
}

func (c *Client) Init(ctx context.Context) error {
	return c.store.Init(ctx)
}

func (c *Client) Close() error {
	return storage.CloseIfSupported(c.store)
}

// Run executes the analysis and returns one result per sample.
func (c *Client) Run(ctx context.Context, a *analysis.Analysis) ([]analysis.Result, error) {
	return a.Go(ctx, c.store)
}

// Runs lists the persisted runs.
func (c *Client) Runs(ctx context.Context) ([]storage.Run, error) {
	return c.store.Runs(ctx)
}

// Export writes one tree of one run as CSV.
func (c *Client) Export(ctx context.Context, w io.Writer, runID, treeName string) error {
	columns, rows, ok, err := c.store.Rows(ctx, runID, treeName)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("run %s has no tree %s", runID, treeName)
	}
	return storage.ExportCSV(w, columns, rows)
}

// NewAnalysis builds an analysis from resolved loaders and trees.
func NewAnalysis(loaders []sample.Loader, trees []*tree.Tree) (*analysis.Analysis, error) {
	a := analysis.New()
	for _, l := range loaders {
		if err := a.AddLoader(l); err != nil {
			return nil, err
		}
	}
	for _, t := range trees {
		if err := a.AddTree(t); err != nil {
			return nil, err
		}
	}
	return a, nil
}
