// Package muon2024 implements the 1muNp charged-current selection: the
// topological cuts, the truth signal definitions, and the interaction
// categorization used for its selected and signal trees.
package muon2024

import (
	"spinesel/internal/cuts"
	"spinesel/internal/event"
	"spinesel/internal/vars"
)

// Config carries the gate and flash window the selection cuts on. The gate's
// PID strategy and thresholds determine the primary counts; the window
// applies to the reco-side composites only.
type Config struct {
	Selection vars.Options
	Window    cuts.FlashWindow
}

// DefaultConfig returns the nominal selection configuration.
func DefaultConfig() Config {
	return Config{Selection: vars.DefaultOptions(), Window: cuts.DefaultFlashWindow()}
}

// Topological1Mu1P requires exactly one muon and one proton and nothing
// else in the final state.
func (c Config) Topological1Mu1P(obj event.Interaction) bool {
	n := vars.CountPrimaries(c.Selection.Gate, obj)
	return n[event.Photon] == 0 && n[event.Electron] == 0 && n[event.Muon] == 1 &&
		n[event.Pion] == 0 && n[event.Proton] == 1
}

// Topological1MuNP requires exactly one muon, at least one proton, and no
// other final-state particles.
func (c Config) Topological1MuNP(obj event.Interaction) bool {
	n := vars.CountPrimaries(c.Selection.Gate, obj)
	return n[event.Photon] == 0 && n[event.Electron] == 0 && n[event.Muon] == 1 &&
		n[event.Pion] == 0 && n[event.Proton] >= 1
}

// Topological1MuX requires exactly one muon; the rest of the final state is
// unconstrained.
func (c Config) Topological1MuX(obj event.Interaction) bool {
	return vars.CountPrimaries(c.Selection.Gate, obj)[event.Muon] == 1
}

// All1Mu1P is the full reco selection: fiducial, contained, in-time, 1mu1p.
func (c Config) All1Mu1P(r *event.RecoInteraction) bool {
	return c.Window.FiducialContainmentFlashCut(r) && c.Topological1Mu1P(r)
}

func (c Config) All1MuNP(r *event.RecoInteraction) bool {
	return c.Window.FiducialContainmentFlashCut(r) && c.Topological1MuNP(r)
}

func (c Config) All1MuX(r *event.RecoInteraction) bool {
	return c.Window.FiducialContainmentFlashCut(r) && c.Topological1MuX(r)
}

func (c Config) signal(t *event.TruthInteraction, topo func(event.Interaction) bool) bool {
	return cuts.Neutrino(t) && cuts.FiducialCut(t) && cuts.ContainmentCut(t) && topo(t)
}

func (c Config) nonsignal(t *event.TruthInteraction, topo func(event.Interaction) bool) bool {
	return cuts.Neutrino(t) && !(cuts.FiducialCut(t) && cuts.ContainmentCut(t)) && topo(t)
}

// Signal1Mu1P is the truth signal definition: a neutrino interaction with
// the 1mu1p topology, fiducial and contained.
func (c Config) Signal1Mu1P(t *event.TruthInteraction) bool {
	return c.signal(t, c.Topological1Mu1P)
}

// Nonsignal1Mu1P is the topology-matched complement: a neutrino interaction
// with the 1mu1p topology that fails fiducialization or containment.
func (c Config) Nonsignal1Mu1P(t *event.TruthInteraction) bool {
	return c.nonsignal(t, c.Topological1Mu1P)
}

func (c Config) Signal1MuNP(t *event.TruthInteraction) bool {
	return c.signal(t, c.Topological1MuNP)
}

func (c Config) Nonsignal1MuNP(t *event.TruthInteraction) bool {
	return c.nonsignal(t, c.Topological1MuNP)
}

func (c Config) Signal1MuX(t *event.TruthInteraction) bool {
	return c.signal(t, c.Topological1MuX)
}

func (c Config) Nonsignal1MuX(t *event.TruthInteraction) bool {
	return c.nonsignal(t, c.Topological1MuX)
}

// Category enumerates the truth interaction class. The cascade is ordered;
// the first matching predicate assigns the code.
//
//	0: 1mu1p signal     1: 1mu1p out of volume
//	2: 1muNp signal     3: 1muNp out of volume
//	4: 1muX signal      5: 1muX out of volume
//	6: other neutrino   7: cosmic
func (c Config) Category(t *event.TruthInteraction) float64 {
	steps := []struct {
		pass func(*event.TruthInteraction) bool
		code float64
	}{
		{c.Signal1Mu1P, 0},
		{c.Nonsignal1Mu1P, 1},
		{c.Signal1MuNP, 2},
		{c.Nonsignal1MuNP, 3},
		{c.Signal1MuX, 4},
		{c.Nonsignal1MuX, 5},
		{cuts.Neutrino, 6},
	}
	for _, s := range steps {
		if s.pass(t) {
			return s.code
		}
	}
	return 7
}

// OpeningAngle is the angle between the leading muon and leading proton
// start directions, NaN when either is missing.
func (c Config) OpeningAngle(obj event.Interaction) float64 {
	return c.Selection.OpeningAngle(obj)
}
