// Package nue2024 implements the 1eNp charged-current selection for the
// NuMI beam: the electron-mode topological cuts, truth signal definitions,
// categorization, and the beam-relative kinematic variables.
package nue2024

import (
	"math"

	"spinesel/internal/cuts"
	"spinesel/internal/event"
	"spinesel/internal/vars"
)

// Config carries the gate and flash window for the electron-mode selection.
type Config struct {
	Selection vars.Options
	Window    cuts.FlashWindow
}

// DefaultConfig returns the nominal selection configuration.
func DefaultConfig() Config {
	return Config{Selection: vars.DefaultOptions(), Window: cuts.DefaultFlashWindow()}
}

// Topological1E1P requires exactly one electron and one proton and nothing
// else in the final state.
func (c Config) Topological1E1P(obj event.Interaction) bool {
	n := vars.CountPrimaries(c.Selection.Gate, obj)
	return n[event.Photon] == 0 && n[event.Electron] == 1 && n[event.Muon] == 0 &&
		n[event.Pion] == 0 && n[event.Proton] == 1
}

// Topological1ENP requires exactly one electron, at least one proton, and no
// other final-state particles.
func (c Config) Topological1ENP(obj event.Interaction) bool {
	n := vars.CountPrimaries(c.Selection.Gate, obj)
	return n[event.Photon] == 0 && n[event.Electron] == 1 && n[event.Muon] == 0 &&
		n[event.Pion] == 0 && n[event.Proton] >= 1
}

// Topological1EX requires exactly one electron; the rest of the final state
// is unconstrained.
func (c Config) Topological1EX(obj event.Interaction) bool {
	return vars.CountPrimaries(c.Selection.Gate, obj)[event.Electron] == 1
}

func (c Config) All1E1P(r *event.RecoInteraction) bool {
	return c.Window.FiducialContainmentFlashCut(r) && c.Topological1E1P(r)
}

func (c Config) All1ENP(r *event.RecoInteraction) bool {
	return c.Window.FiducialContainmentFlashCut(r) && c.Topological1ENP(r)
}

func (c Config) All1EX(r *event.RecoInteraction) bool {
	return c.Window.FiducialContainmentFlashCut(r) && c.Topological1EX(r)
}

func (c Config) signal(t *event.TruthInteraction, topo func(event.Interaction) bool) bool {
	return cuts.Neutrino(t) && cuts.FiducialCut(t) && cuts.ContainmentCut(t) && topo(t)
}

func (c Config) nonsignal(t *event.TruthInteraction, topo func(event.Interaction) bool) bool {
	return cuts.Neutrino(t) && !(cuts.FiducialCut(t) && cuts.ContainmentCut(t)) && topo(t)
}

func (c Config) Signal1E1P(t *event.TruthInteraction) bool {
	return c.signal(t, c.Topological1E1P)
}

func (c Config) Nonsignal1E1P(t *event.TruthInteraction) bool {
	return c.nonsignal(t, c.Topological1E1P)
}

func (c Config) Signal1ENP(t *event.TruthInteraction) bool {
	return c.signal(t, c.Topological1ENP)
}

func (c Config) Nonsignal1ENP(t *event.TruthInteraction) bool {
	return c.nonsignal(t, c.Topological1ENP)
}

func (c Config) Signal1EX(t *event.TruthInteraction) bool {
	return c.signal(t, c.Topological1EX)
}

func (c Config) Nonsignal1EX(t *event.TruthInteraction) bool {
	return c.nonsignal(t, c.Topological1EX)
}

// Category enumerates the truth interaction class, mirroring the muon-mode
// cascade with electron topologies.
//
//	0: 1e1p signal      1: 1e1p out of volume
//	2: 1eNp signal      3: 1eNp out of volume
//	4: 1eX signal       5: 1eX out of volume
//	6: other neutrino   7: cosmic
func (c Config) Category(t *event.TruthInteraction) float64 {
	steps := []struct {
		pass func(*event.TruthInteraction) bool
		code float64
	}{
		{c.Signal1E1P, 0},
		{c.Nonsignal1E1P, 1},
		{c.Signal1ENP, 2},
		{c.Nonsignal1ENP, 3},
		{c.Signal1EX, 4},
		{c.Nonsignal1EX, 5},
		{cuts.Neutrino, 6},
	}
	for _, s := range steps {
		if s.pass(t) {
			return s.code
		}
	}
	return 7
}

// CategoryTopology is the cut-based categorization used by topology-binned
// spectra. It shares the Category cascade.
func (c Config) CategoryTopology(t *event.TruthInteraction) float64 {
	return c.Category(t)
}

// OpeningAngle is the angle between the leading electron and leading proton
// start directions, NaN when either is missing.
func (c Config) OpeningAngle(obj event.Interaction) float64 {
	m, okM := leadingParticle(c, obj, event.Electron)
	p, okP := leadingParticle(c, obj, event.Proton)
	if !okM || !okP {
		return math.NaN()
	}
	return math.Acos(m.Core().StartDir.Dot(p.Core().StartDir))
}

func leadingParticle(c Config, obj event.Interaction, pid int) (event.Particle, bool) {
	i, ok := vars.LeadingParticleIndex(c.Selection.Gate, obj, pid)
	if !ok {
		return nil, false
	}
	return obj.ParticleAt(i), true
}
