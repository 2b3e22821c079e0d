// Package pcuts implements particle-level selection gates. The final-state
// gates decide which particles participate in primary counting and visible
// energy sums.
package pcuts

import (
	"spinesel/internal/event"
	"spinesel/internal/pvars"
)

// Thresholds are the per-species minimum kinetic energies (MeV) a primary
// particle must exceed to count toward the final state.
type Thresholds struct {
	ShowerKE float64 `json:"shower_ke"`
	MuonKE   float64 `json:"muon_ke"`
	PionKE   float64 `json:"pion_ke"`
	ProtonKE float64 `json:"proton_ke"`
}

// DefaultThresholds returns the nominal final-state gate.
func DefaultThresholds() Thresholds {
	return Thresholds{
		ShowerKE: 25,
		MuonKE:   143.425,
		PionKE:   25,
		ProtonKE: 50,
	}
}

// Gate bundles the particle options and thresholds that define the
// final-state signal predicates.
type Gate struct {
	Particle   pvars.Options
	Thresholds Thresholds
}

// DefaultGate returns a gate with nominal PID assignment and thresholds.
func DefaultGate() Gate {
	return Gate{Thresholds: DefaultThresholds()}
}

// FinalStateSignal reports whether the particle counts toward the final
// state: a primary above its species threshold. Unrecognized species never
// pass.
func (g Gate) FinalStateSignal(p event.Particle) bool {
	if !p.Core().IsPrimary {
		return false
	}
	ke := g.Particle.KineticEnergy(p)
	switch g.Particle.PID(p) {
	case event.Photon, event.Electron:
		return ke > g.Thresholds.ShowerKE
	case event.Muon:
		return ke > g.Thresholds.MuonKE
	case event.Pion:
		return ke > g.Thresholds.PionKE
	case event.Proton:
		return ke > g.Thresholds.ProtonKE
	default:
		return false
	}
}

// FinalStateSignalElec is the shower-only gate used by the electron-pair
// benchmarking counts: a primary photon or electron above the shower
// threshold. Track species never pass.
func (g Gate) FinalStateSignalElec(p event.Particle) bool {
	if !p.Core().IsPrimary {
		return false
	}
	pid := g.Particle.PID(p)
	if pid != event.Photon && pid != event.Electron {
		return false
	}
	return g.Particle.KineticEnergy(p) > g.Thresholds.ShowerKE
}
