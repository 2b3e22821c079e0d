package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"spinesel/internal/storage"
	selapi "spinesel/pkg/spinesel"
)

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("missing command")
	}

	switch args[0] {
	case "run":
		return runRun(ctx, args[1:])
	case "cuts":
		return runCuts(ctx, args[1:])
	case "vars":
		return runVars(ctx, args[1:])
	case "runs":
		return runRuns(ctx, args[1:])
	case "export":
		return runExport(ctx, args[1:])
	default:
		return usageError(fmt.Sprintf("unknown command: %s", args[0]))
	}
}

func storeFlags(fs *flag.FlagSet) (storeKind, dbPath *string) {
	storeKind = fs.String("store", storage.DefaultStoreKind(), "store backend (memory|sqlite)")
	dbPath = fs.String("db", "spinesel.db", "sqlite database path")
	return storeKind, dbPath
}

func runRun(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	configPath := fs.String("config", "", "analysis config file (JSON)")
	storeKind, dbPath := storeFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *configPath == "" {
		return usageError("run requires -config")
	}

	cfg, err := loadAnalysisConfig(*configPath)
	if err != nil {
		return err
	}
	cat, err := selapi.BuildCatalog(cfg.Config)
	if err != nil {
		return err
	}
	trees, err := resolveTrees(cat, cfg.Trees)
	if err != nil {
		return err
	}
	a, err := selapi.NewAnalysis(cfg.Samples, trees)
	if err != nil {
		return err
	}

	client, err := selapi.New(selapi.Options{StoreKind: *storeKind, DBPath: *dbPath})
	if err != nil {
		return err
	}
	defer client.Close()
	if err := client.Init(ctx); err != nil {
		return err
	}

	results, err := client.Run(ctx, a)
	if err != nil {
		return err
	}
	for _, res := range results {
		fmt.Printf("run_id=%s sample=%s\n", res.RunID, res.Sample)
		names := make([]string, 0, len(res.Rows))
		for name := range res.Rows {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("  tree=%s rows=%d\n", name, res.Rows[name])
		}
	}
	return nil
}

func runCuts(_ context.Context, args []string) error {
	fs := flag.NewFlagSet("cuts", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	cat, err := selapi.BuildCatalog(selapi.Config{})
	if err != nil {
		return err
	}
	for _, name := range cat.ListRecoCuts() {
		fmt.Printf("reco %s\n", name)
	}
	for _, name := range cat.ListTruthCuts() {
		fmt.Printf("truth %s\n", name)
	}
	return nil
}

func runVars(_ context.Context, args []string) error {
	fs := flag.NewFlagSet("vars", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	cat, err := selapi.BuildCatalog(selapi.Config{})
	if err != nil {
		return err
	}
	for _, name := range cat.ListRecoVars() {
		fmt.Printf("reco %s\n", name)
	}
	for _, name := range cat.ListTruthVars() {
		fmt.Printf("truth %s\n", name)
	}
	return nil
}

func runRuns(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("runs", flag.ContinueOnError)
	storeKind, dbPath := storeFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := selapi.New(selapi.Options{StoreKind: *storeKind, DBPath: *dbPath})
	if err != nil {
		return err
	}
	defer client.Close()
	if err := client.Init(ctx); err != nil {
		return err
	}

	runs, err := client.Runs(ctx)
	if err != nil {
		return err
	}
	for _, r := range runs {
		fmt.Printf("run_id=%s sample=%s is_mc=%t created_at=%s\n",
			r.ID, r.Sample, r.IsMC, r.CreatedAt.Format("2006-01-02T15:04:05Z07:00"))
	}
	return nil
}

func runExport(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	runID := fs.String("run", "", "run ID to export")
	treeName := fs.String("tree", "", "tree name to export")
	outPath := fs.String("out", "", "output CSV path (default stdout)")
	storeKind, dbPath := storeFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *runID == "" || *treeName == "" {
		return usageError("export requires -run and -tree")
	}

	client, err := selapi.New(selapi.Options{StoreKind: *storeKind, DBPath: *dbPath})
	if err != nil {
		return err
	}
	defer client.Close()
	if err := client.Init(ctx); err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	return client.Export(ctx, w, *runID, *treeName)
}

func usageError(msg string) error {
	return fmt.Errorf("%s\nusage: spineselctl <run|cuts|vars|runs|export> [flags]", msg)
}
