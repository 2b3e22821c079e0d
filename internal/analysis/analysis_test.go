package analysis

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"spinesel/internal/event"
	"spinesel/internal/sample"
	"spinesel/internal/storage"
	"spinesel/internal/tree"
)

const eventsJSONL = `{"run":1,"subrun":0,"event":1,"reco":[{"id":1,"is_fiducial":true,"match_ids":[10]}],"truth":[{"id":10,"nu_id":0,"energy":1.2}]}
{"run":1,"subrun":0,"event":2,"reco":[{"id":1,"is_fiducial":false}],"truth":[{"id":10,"nu_id":-1}]}
`

func writeSample(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(eventsJSONL), 0o644); err != nil {
		t.Fatalf("write sample: %v", err)
	}
	return path
}

func selectedTree() *tree.Tree {
	return &tree.Tree{
		Name:    "fiducial",
		Kind:    tree.KindSelected,
		RecoCut: func(r *event.RecoInteraction) bool { return r.IsFiducial },
		Columns: []tree.Column{
			{Name: "vertex_x", Mode: tree.ModeRecoReco, Reco: func(r *event.RecoInteraction) float64 { return r.Vertex.X }},
		},
	}
}

func signalTree() *tree.Tree {
	return &tree.Tree{
		Name:     "truth_nu",
		Kind:     tree.KindSignal,
		TruthCut: func(tt *event.TruthInteraction) bool { return tt.NuID >= 0 },
		Columns: []tree.Column{
			{Name: "energy", Mode: tree.ModeTruthTruth, Truth: func(tt *event.TruthInteraction) float64 { return tt.Energy }},
		},
		SimOnly: true,
	}
}

func TestGoFillsAndPersists(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init store: %v", err)
	}

	a := New()
	if err := a.AddLoader(sample.Loader{Name: "mc", Pattern: writeSample(t, "mc.jsonl"), IsMC: true}); err != nil {
		t.Fatalf("add loader: %v", err)
	}
	if err := a.AddTree(selectedTree()); err != nil {
		t.Fatalf("add selected tree: %v", err)
	}
	if err := a.AddTree(signalTree()); err != nil {
		t.Fatalf("add signal tree: %v", err)
	}

	results, err := a.Go(ctx, store)
	if err != nil {
		t.Fatalf("go: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected one result, got %d", len(results))
	}
	res := results[0]
	if res.RunID == "" || res.Sample != "mc" {
		t.Fatalf("result: %+v", res)
	}
	if res.Rows["fiducial"] != 1 || res.Rows["truth_nu"] != 1 {
		t.Fatalf("row counts: %+v", res.Rows)
	}

	_, rows, ok, err := store.Rows(ctx, res.RunID, "fiducial")
	if err != nil || !ok || len(rows) != 1 {
		t.Fatalf("persisted rows: ok=%v err=%v rows=%+v", ok, err, rows)
	}
}

func TestSimOnlyTreesSkipDataLoaders(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	if err := store.Init(ctx); err != nil {
		t.Fatalf("init store: %v", err)
	}

	a := New()
	if err := a.AddLoader(sample.Loader{Name: "data", Pattern: writeSample(t, "data.jsonl"), IsMC: false}); err != nil {
		t.Fatalf("add loader: %v", err)
	}
	if err := a.AddTree(selectedTree()); err != nil {
		t.Fatalf("add selected tree: %v", err)
	}
	if err := a.AddTree(signalTree()); err != nil {
		t.Fatalf("add signal tree: %v", err)
	}

	results, err := a.Go(ctx, store)
	if err != nil {
		t.Fatalf("go: %v", err)
	}
	if _, filled := results[0].Rows["truth_nu"]; filled {
		t.Fatal("simulation-only tree must be skipped for data loaders")
	}
	if _, _, ok, _ := store.Rows(ctx, results[0].RunID, "truth_nu"); ok {
		t.Fatal("skipped tree must not persist rows")
	}
}

func TestRegistrationValidation(t *testing.T) {
	a := New()
	if err := a.AddLoader(sample.Loader{}); err == nil {
		t.Fatal("nameless loader must error")
	}
	if err := a.AddLoader(sample.Loader{Name: "mc", Pattern: "x"}); err != nil {
		t.Fatalf("add loader: %v", err)
	}
	if err := a.AddLoader(sample.Loader{Name: "mc", Pattern: "y"}); err == nil {
		t.Fatal("duplicate loader must error")
	}
	if err := a.AddTree(&tree.Tree{Name: "empty"}); err == nil {
		t.Fatal("invalid tree must error")
	}
	if _, err := a.Go(context.Background(), storage.NewMemoryStore()); err == nil {
		t.Fatal("run without trees must error")
	}
}
