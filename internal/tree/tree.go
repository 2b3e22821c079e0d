// Package tree implements the selection tree harness: a Tree pairs a
// selection cut with an ordered list of variable columns and fills one row
// per selected interaction.
package tree

import (
	"errors"
	"fmt"
	"math"

	"spinesel/internal/catalog"
	"spinesel/internal/event"
)

// Kind selects which record loop fills the tree.
type Kind int

const (
	// KindSelected loops reconstructed interactions passing the reco cut
	// whose best truth match passes the truth cut.
	KindSelected Kind = iota
	// KindSignal loops truth interactions passing the truth cut.
	KindSignal
)

func (k Kind) String() string {
	switch k {
	case KindSelected:
		return "selected"
	case KindSignal:
		return "signal"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Mode selects which record a column evaluates on. A selected tree may mix
// reco-valued and truth-valued columns.
type Mode int

const (
	// ModeRecoReco evaluates the reco variable on the selected reco record.
	ModeRecoReco Mode = iota
	// ModeRecoTruth evaluates the truth variable on the selected record's
	// best truth match; rows without a match get NaN.
	ModeRecoTruth
	// ModeTruthTruth evaluates the truth variable on the looped truth
	// record. Only valid in signal trees.
	ModeTruthTruth
)

// Column is one named value per row.
type Column struct {
	Name  string
	Mode  Mode
	Reco  catalog.RecoVar
	Truth catalog.TruthVar
}

// Tree is a named selection with its output columns. SimOnly trees are
// skipped for samples without truth records.
type Tree struct {
	Name     string
	Kind     Kind
	RecoCut  catalog.RecoCut
	TruthCut catalog.TruthCut
	Columns  []Column
	SimOnly  bool
}

// Row is one filled entry: the event coordinates, the selected interaction
// ID, and the column values in declaration order.
type Row struct {
	Run         int64
	Subrun      int64
	Event       int64
	Interaction int64
	Values      []float64
}

// Validate checks the tree's columns against its kind.
func (t *Tree) Validate() error {
	if t.Name == "" {
		return errors.New("tree name is required")
	}
	if len(t.Columns) == 0 {
		return fmt.Errorf("tree %s: at least one column is required", t.Name)
	}
	for _, col := range t.Columns {
		if col.Name == "" {
			return fmt.Errorf("tree %s: column name is required", t.Name)
		}
		switch col.Mode {
		case ModeRecoReco:
			if t.Kind != KindSelected {
				return fmt.Errorf("tree %s: column %s: reco column in a %s tree", t.Name, col.Name, t.Kind)
			}
			if col.Reco == nil {
				return fmt.Errorf("tree %s: column %s: reco variable is required", t.Name, col.Name)
			}
		case ModeRecoTruth:
			if t.Kind != KindSelected {
				return fmt.Errorf("tree %s: column %s: matched-truth column in a %s tree", t.Name, col.Name, t.Kind)
			}
			if col.Truth == nil {
				return fmt.Errorf("tree %s: column %s: truth variable is required", t.Name, col.Name)
			}
		case ModeTruthTruth:
			if t.Kind != KindSignal {
				return fmt.Errorf("tree %s: column %s: truth column in a %s tree", t.Name, col.Name, t.Kind)
			}
			if col.Truth == nil {
				return fmt.Errorf("tree %s: column %s: truth variable is required", t.Name, col.Name)
			}
		default:
			return fmt.Errorf("tree %s: column %s: unknown mode %d", t.Name, col.Name, int(col.Mode))
		}
	}
	return nil
}

// Fill evaluates the tree on one event and returns a row per selected
// interaction. Fill holds no state between calls.
func (t *Tree) Fill(ev *event.Event) []Row {
	switch t.Kind {
	case KindSignal:
		return t.fillSignal(ev)
	default:
		return t.fillSelected(ev)
	}
}

func (t *Tree) fillSelected(ev *event.Event) []Row {
	var rows []Row
	for i := range ev.Reco {
		r := &ev.Reco[i]
		if t.RecoCut != nil && !t.RecoCut(r) {
			continue
		}
		match, matched := ev.MatchedTruth(r)
		if t.TruthCut != nil && (!matched || !t.TruthCut(match)) {
			continue
		}
		values := make([]float64, len(t.Columns))
		for j, col := range t.Columns {
			switch col.Mode {
			case ModeRecoTruth:
				if !matched {
					values[j] = math.NaN()
				} else {
					values[j] = col.Truth(match)
				}
			default:
				values[j] = col.Reco(r)
			}
		}
		rows = append(rows, t.row(ev, r.ID, values))
	}
	return rows
}

func (t *Tree) fillSignal(ev *event.Event) []Row {
	var rows []Row
	for i := range ev.Truth {
		truth := &ev.Truth[i]
		if t.TruthCut != nil && !t.TruthCut(truth) {
			continue
		}
		values := make([]float64, len(t.Columns))
		for j, col := range t.Columns {
			values[j] = col.Truth(truth)
		}
		rows = append(rows, t.row(ev, truth.ID, values))
	}
	return rows
}

func (t *Tree) row(ev *event.Event, interaction int64, values []float64) Row {
	return Row{
		Run:         int64(ev.Run),
		Subrun:      int64(ev.Subrun),
		Event:       int64(ev.Number),
		Interaction: interaction,
		Values:      values,
	}
}
