// Package electron2025 implements the electron-pair benchmarking selection:
// shower-counting topologies under the electron gate, the shared muon signal
// definitions, categorization, and the diphoton kinematic variables.
package electron2025

import (
	"math"

	"spinesel/internal/cuts"
	"spinesel/internal/event"
	"spinesel/internal/muon2024"
	"spinesel/internal/vars"
)

// Config carries the gate and flash window for the benchmarking cuts. The
// muon selection is embedded because the muon-shaped categorization and
// signal definitions are shared verbatim with that analysis.
type Config struct {
	Selection vars.Options
	Window    cuts.FlashWindow
	Muon      muon2024.Config
}

// DefaultConfig returns the nominal benchmarking configuration.
func DefaultConfig() Config {
	return Config{
		Selection: vars.DefaultOptions(),
		Window:    cuts.DefaultFlashWindow(),
		Muon:      muon2024.DefaultConfig(),
	}
}

func (c Config) counts(obj event.Interaction) vars.Counts {
	return vars.CountPrimariesEE(c.Selection.Gate, obj)
}

// Topological2E requires exactly two electron showers and nothing else.
func (c Config) Topological2E(obj event.Interaction) bool {
	n := c.counts(obj)
	return n[event.Photon] == 0 && n[event.Electron] == 2 && n[event.Muon] == 0 &&
		n[event.Pion] == 0 && n[event.Proton] == 0
}

// Topological1E1Gamma requires exactly one electron and one photon shower.
func (c Config) Topological1E1Gamma(obj event.Interaction) bool {
	n := c.counts(obj)
	return n[event.Photon] == 1 && n[event.Electron] == 1 && n[event.Muon] == 0 &&
		n[event.Pion] == 0 && n[event.Proton] == 0
}

// Topological1ENGamma requires one electron and more than one photon.
func (c Config) Topological1ENGamma(obj event.Interaction) bool {
	n := c.counts(obj)
	return n[event.Photon] > 1 && n[event.Electron] == 1 && n[event.Muon] == 0 &&
		n[event.Pion] == 0 && n[event.Proton] == 0
}

// Topological2Gamma requires exactly two photon showers and nothing else.
func (c Config) Topological2Gamma(obj event.Interaction) bool {
	n := c.counts(obj)
	return n[event.Photon] == 2 && n[event.Electron] == 0 && n[event.Muon] == 0 &&
		n[event.Pion] == 0 && n[event.Proton] == 0
}

// TopologicalGT2E requires more than two electron showers and nothing else.
func (c Config) TopologicalGT2E(obj event.Interaction) bool {
	n := c.counts(obj)
	return n[event.Photon] == 0 && n[event.Electron] > 2 && n[event.Muon] == 0 &&
		n[event.Pion] == 0 && n[event.Proton] == 0
}

// TopologicalGT2Gamma requires more than two photon showers and nothing else.
func (c Config) TopologicalGT2Gamma(obj event.Interaction) bool {
	n := c.counts(obj)
	return n[event.Photon] > 2 && n[event.Electron] == 0 && n[event.Muon] == 0 &&
		n[event.Pion] == 0 && n[event.Proton] == 0
}

// Topological1Shower requires at least one shower of either species.
func (c Config) Topological1Shower(obj event.Interaction) bool {
	n := c.counts(obj)
	return n[event.Photon] >= 1 || n[event.Electron] >= 1
}

// Topological1ShowerOnly requires exactly one shower and no other
// final-state particles.
func (c Config) Topological1ShowerOnly(obj event.Interaction) bool {
	n := c.counts(obj)
	oneShower := (n[event.Photon] == 1 && n[event.Electron] == 0) ||
		(n[event.Photon] == 0 && n[event.Electron] == 1)
	return oneShower && n[event.Muon] == 0 && n[event.Pion] == 0 && n[event.Proton] == 0
}

// The benchmarking composites deliberately skip containment and flash
// timing; only the fiducial requirement applies.

func (c Config) All2E(r *event.RecoInteraction) bool {
	return cuts.FiducialCut(r) && c.Topological2E(r)
}

// All2EBNB is the beam-gated variant with the full preselection.
func (c Config) All2EBNB(r *event.RecoInteraction) bool {
	return c.Window.FiducialContainmentFlashCut(r) && c.Topological2E(r)
}

func (c Config) All1E1Gamma(r *event.RecoInteraction) bool {
	return cuts.FiducialCut(r) && c.Topological1E1Gamma(r)
}

func (c Config) All1ENGamma(r *event.RecoInteraction) bool {
	return cuts.FiducialCut(r) && c.Topological1ENGamma(r)
}

func (c Config) All2Gamma(r *event.RecoInteraction) bool {
	return cuts.FiducialCut(r) && c.Topological2Gamma(r)
}

func (c Config) AllGT2E(r *event.RecoInteraction) bool {
	return cuts.FiducialCut(r) && c.TopologicalGT2E(r)
}

func (c Config) AllGT2Gamma(r *event.RecoInteraction) bool {
	return cuts.FiducialCut(r) && c.TopologicalGT2Gamma(r)
}

func (c Config) All1Shower(r *event.RecoInteraction) bool {
	return cuts.FiducialCut(r) && c.Topological1Shower(r)
}

func (c Config) All1ShowerOnly(r *event.RecoInteraction) bool {
	return cuts.FiducialCut(r) && c.Topological1ShowerOnly(r)
}

// Category enumerates the truth shower topology. The cascade applies the
// fiducial-gated composites in order; interactions matching none get 6.
//
//	0: 2e          1: 1e1gamma    2: 1eNgamma
//	3: 2gamma      4: >2e         5: >2gamma
//	6: other
func (c Config) Category(t *event.TruthInteraction) float64 {
	steps := []struct {
		pass func(event.Interaction) bool
		code float64
	}{
		{c.Topological2E, 0},
		{c.Topological1E1Gamma, 1},
		{c.Topological1ENGamma, 2},
		{c.Topological2Gamma, 3},
		{c.TopologicalGT2E, 4},
		{c.TopologicalGT2Gamma, 5},
	}
	for _, s := range steps {
		if cuts.FiducialCut(t) && s.pass(t) {
			return s.code
		}
	}
	return 6
}

// CategoryMuons is the muon2024-shaped categorization reused by the
// benchmarking's muon control trees.
func (c Config) CategoryMuons(t *event.TruthInteraction) float64 {
	return c.Muon.Category(t)
}

// OpeningAngle is the muon-proton opening angle shared with the muon
// selection.
func (c Config) OpeningAngle(obj event.Interaction) float64 {
	return c.Selection.OpeningAngle(obj)
}

// OpeningAngleEE is the angle between the leading and subleading shower
// start directions, NaN when fewer than two showers exist.
func (c Config) OpeningAngleEE(obj event.Interaction) float64 {
	lead, okL := vars.LeadingShowerIndex(c.Selection.Gate, obj)
	sub, okS := vars.SubleadingShowerIndex(c.Selection.Gate, obj)
	if !okL || !okS {
		return math.NaN()
	}
	a := obj.ParticleAt(lead).Core().StartDir
	b := obj.ParticleAt(sub).Core().StartDir
	return math.Acos(a.Dot(b))
}

// VisibleEnergyEE is the summed energy of final-state showers under the
// electron gate, in GeV.
func (c Config) VisibleEnergyEE(obj event.Interaction) float64 {
	total := 0.0
	for i := 0; i < obj.NumParticles(); i++ {
		p := obj.ParticleAt(i)
		if c.Selection.Gate.FinalStateSignalElec(p) {
			total += c.Selection.Gate.Particle.Energy(p)
		}
	}
	return total / 1000.0
}

// LeadingShowerEnergy is the total energy of the leading shower under its
// assigned species, kinetic energy plus rest mass.
func (c Config) LeadingShowerEnergy(obj event.Interaction) float64 {
	return c.showerScalar(obj, false, c.Selection.Gate.Particle.Energy)
}

// SubleadingShowerEnergy is the total energy of the subleading shower, NaN
// for single-shower interactions.
func (c Config) SubleadingShowerEnergy(obj event.Interaction) float64 {
	return c.showerScalar(obj, true, c.Selection.Gate.Particle.Energy)
}

// InvariantMass is the invariant mass of the leading and subleading shower
// pair, NaN for single-shower interactions.
func (c Config) InvariantMass(obj event.Interaction) float64 {
	lead, okL := vars.LeadingShowerIndex(c.Selection.Gate, obj)
	sub, okS := vars.SubleadingShowerIndex(c.Selection.Gate, obj)
	if !okL || !okS {
		return math.NaN()
	}
	return c.Selection.InvariantMass(obj.ParticleAt(lead), obj.ParticleAt(sub))
}

// NShowers is the total shower count under the electron gate.
func (c Config) NShowers(obj event.Interaction) float64 {
	n := c.counts(obj)
	return float64(n[event.Photon] + n[event.Electron])
}

func (c Config) NElectrons(obj event.Interaction) float64 {
	return float64(c.counts(obj)[event.Electron])
}

func (c Config) NPhotons(obj event.Interaction) float64 {
	return float64(c.counts(obj)[event.Photon])
}
