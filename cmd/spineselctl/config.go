package main

import (
	"encoding/json"
	"fmt"
	"os"

	"spinesel/internal/catalog"
	"spinesel/internal/sample"
	"spinesel/internal/tree"
	selapi "spinesel/pkg/spinesel"
)

// analysisConfig is the on-disk analysis description: selection tuning plus
// the samples and trees to fill. Cuts and variables are addressed by their
// catalog names.
type analysisConfig struct {
	selapi.Config
	Samples []sample.Loader `json:"samples"`
	Trees   []treeConfig    `json:"trees"`
}

type treeConfig struct {
	Name     string         `json:"name"`
	Kind     string         `json:"kind"`
	RecoCut  string         `json:"reco_cut,omitempty"`
	TruthCut string         `json:"truth_cut,omitempty"`
	SimOnly  bool           `json:"sim_only,omitempty"`
	Columns  []columnConfig `json:"columns"`
}

type columnConfig struct {
	Name string `json:"name"`
	Mode string `json:"mode"`
	Var  string `json:"var"`
}

func loadAnalysisConfig(path string) (analysisConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return analysisConfig{}, err
	}
	var cfg analysisConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return analysisConfig{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if len(cfg.Samples) == 0 {
		return analysisConfig{}, fmt.Errorf("config %s: at least one sample is required", path)
	}
	if len(cfg.Trees) == 0 {
		return analysisConfig{}, fmt.Errorf("config %s: at least one tree is required", path)
	}
	return cfg, nil
}

// resolveTrees turns tree configs into trees, looking up every cut and
// variable name in the catalog.
func resolveTrees(c *catalog.Catalog, configs []treeConfig) ([]*tree.Tree, error) {
	var trees []*tree.Tree
	for _, tc := range configs {
		t, err := resolveTree(c, tc)
		if err != nil {
			return nil, err
		}
		trees = append(trees, t)
	}
	return trees, nil
}

func resolveTree(c *catalog.Catalog, tc treeConfig) (*tree.Tree, error) {
	t := &tree.Tree{Name: tc.Name, SimOnly: tc.SimOnly}
	switch tc.Kind {
	case "", "selected":
		t.Kind = tree.KindSelected
	case "signal":
		t.Kind = tree.KindSignal
		t.SimOnly = true
	default:
		return nil, fmt.Errorf("tree %s: unknown kind %s", tc.Name, tc.Kind)
	}

	if tc.RecoCut != "" {
		fn, err := c.GetRecoCut(tc.RecoCut)
		if err != nil {
			return nil, fmt.Errorf("tree %s: %w", tc.Name, err)
		}
		t.RecoCut = fn
	}
	if tc.TruthCut != "" {
		fn, err := c.GetTruthCut(tc.TruthCut)
		if err != nil {
			return nil, fmt.Errorf("tree %s: %w", tc.Name, err)
		}
		t.TruthCut = fn
	}

	for _, cc := range tc.Columns {
		col, err := resolveColumn(c, tc.Name, cc)
		if err != nil {
			return nil, err
		}
		t.Columns = append(t.Columns, col)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func resolveColumn(c *catalog.Catalog, treeName string, cc columnConfig) (tree.Column, error) {
	col := tree.Column{Name: cc.Name}
	switch cc.Mode {
	case "", "rr":
		col.Mode = tree.ModeRecoReco
		fn, err := c.GetRecoVar(cc.Var)
		if err != nil {
			return tree.Column{}, fmt.Errorf("tree %s column %s: %w", treeName, cc.Name, err)
		}
		col.Reco = fn
	case "rt":
		col.Mode = tree.ModeRecoTruth
		fn, err := c.GetTruthVar(cc.Var)
		if err != nil {
			return tree.Column{}, fmt.Errorf("tree %s column %s: %w", treeName, cc.Name, err)
		}
		col.Truth = fn
	case "tt":
		col.Mode = tree.ModeTruthTruth
		fn, err := c.GetTruthVar(cc.Var)
		if err != nil {
			return tree.Column{}, fmt.Errorf("tree %s column %s: %w", treeName, cc.Name, err)
		}
		col.Truth = fn
	default:
		return tree.Column{}, fmt.Errorf("tree %s column %s: unknown mode %s", treeName, cc.Name, cc.Mode)
	}
	return col, nil
}
