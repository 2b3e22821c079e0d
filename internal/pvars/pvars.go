// Package pvars implements feature functions over single particle records.
// Every function is pure: it maps one read-only record to a scalar and never
// mutates its input. Absent features are signaled with NaN, never an error.
package pvars

import (
	"math"

	"spinesel/internal/event"
)

// Options configures the particle feature layer. The species assignment
// strategy couples PID to every mass and energy lookup, so the same Options
// value must be used consistently across one analysis.
type Options struct {
	Strategy event.PIDStrategy
}

// PID returns the species assigned to the particle under the configured
// strategy.
func (o Options) PID(p event.Particle) int {
	return p.AssignedPID(o.Strategy)
}

// Mass returns the particle rest mass in MeV. True particles carry their
// stored mass; reconstructed particles use a table lookup keyed by the
// assigned species, NaN when the species is unrecognized.
func (o Options) Mass(p event.Particle) float64 {
	return p.MassFor(o.PID(p))
}

// KineticEnergy returns the authoritative kinetic-energy estimate in MeV.
func (o Options) KineticEnergy(p event.Particle) float64 {
	return p.KineticEnergyFor(o.PID(p))
}

// Energy returns the total energy: kinetic energy plus rest mass.
func (o Options) Energy(p event.Particle) float64 {
	return o.KineticEnergy(p) + o.Mass(p)
}

func Length(p event.Particle) float64 { return p.Core().Length }

func StartX(p event.Particle) float64 { return p.Core().StartPoint.X }
func StartY(p event.Particle) float64 { return p.Core().StartPoint.Y }
func StartZ(p event.Particle) float64 { return p.Core().StartPoint.Z }

func EndX(p event.Particle) float64 { return p.Core().EndPoint.X }
func EndY(p event.Particle) float64 { return p.Core().EndPoint.Y }
func EndZ(p event.Particle) float64 { return p.Core().EndPoint.Z }

func Px(p event.Particle) float64 { return p.Core().Momentum.X }
func Py(p event.Particle) float64 { return p.Core().Momentum.Y }
func Pz(p event.Particle) float64 { return p.Core().Momentum.Z }

// UnitDirection returns the momentum unit vector. Every component is NaN
// when the momentum is the zero vector.
func UnitDirection(p event.Particle) event.Vector3 {
	return p.Core().Momentum.Unit()
}

// PolarAngle is the angle of the start direction with respect to the
// detector z-axis.
func PolarAngle(p event.Particle) float64 {
	return math.Acos(p.Core().StartDir.Z)
}

// AzimuthalAngle is the angle of the start direction in the x-y plane.
// A non-negative y component gives a non-negative angle.
func AzimuthalAngle(p event.Particle) float64 {
	d := p.Core().StartDir
	a := math.Acos(d.X / math.Hypot(d.X, d.Y))
	if d.Y < 0 {
		return -a
	}
	return a
}

// TransverseMomentum returns the momentum component perpendicular to a unit
// beam axis. The axis is an analysis-level configuration choice (detector
// z-axis for BNB, target line for NuMI), never a per-particle decision.
func TransverseMomentum(p event.Particle, axis event.Vector3) event.Vector3 {
	return p.Core().Momentum.Transverse(axis)
}

// IoU returns the best-match intersection over union, NaN when the particle
// has no match.
func IoU(p event.Particle) float64 {
	c := p.Core()
	if len(c.MatchIDs) > 0 {
		return c.MatchOverlaps[0]
	}
	return math.NaN()
}

// Softmax-score accessors. Network confidences exist only for reconstructed
// particles; true particles carry none.

func PhotonSoftmax(p *event.RecoParticle) float64   { return p.PIDScores[event.Photon] }
func ElectronSoftmax(p *event.RecoParticle) float64 { return p.PIDScores[event.Electron] }
func MuonSoftmax(p *event.RecoParticle) float64     { return p.PIDScores[event.Muon] }
func PionSoftmax(p *event.RecoParticle) float64     { return p.PIDScores[event.Pion] }
func ProtonSoftmax(p *event.RecoParticle) float64   { return p.PIDScores[event.Proton] }

// MIPSoftmax is the confidence that the particle is minimum ionizing:
// muon plus pion.
func MIPSoftmax(p *event.RecoParticle) float64 {
	return p.PIDScores[event.Muon] + p.PIDScores[event.Pion]
}

// HadronSoftmax is the pion plus proton confidence.
func HadronSoftmax(p *event.RecoParticle) float64 {
	return p.PIDScores[event.Pion] + p.PIDScores[event.Proton]
}

func PrimarySoftmax(p *event.RecoParticle) float64   { return p.PrimaryScores[1] }
func SecondarySoftmax(p *event.RecoParticle) float64 { return p.PrimaryScores[0] }
