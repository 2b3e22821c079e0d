package vars

import (
	"math"

	"spinesel/internal/event"
	"spinesel/internal/pcuts"
	"spinesel/internal/pvars"
)

// Options configures the generic variable layer: the particle gate and the
// unit beam axis used by every transverse-momentum variable. The axis is a
// per-analysis choice (detector z for BNB), not a per-event branch.
type Options struct {
	Gate pcuts.Gate
	Axis event.Vector3
}

// DefaultOptions returns nominal PID assignment, nominal thresholds, and the
// BNB beam axis.
func DefaultOptions() Options {
	return Options{Gate: pcuts.DefaultGate(), Axis: event.Vector3{Z: 1}}
}

func VertexX(obj event.Interaction) float64 { return obj.Core().Vertex.X }
func VertexY(obj event.Interaction) float64 { return obj.Core().Vertex.Y }
func VertexZ(obj event.Interaction) float64 { return obj.Core().Vertex.Z }

// VisibleEnergy is the summed total energy of final-state signal particles,
// in GeV.
func (o Options) VisibleEnergy(obj event.Interaction) float64 {
	total := 0.0
	for i := 0; i < obj.NumParticles(); i++ {
		p := obj.ParticleAt(i)
		if o.Gate.FinalStateSignal(p) {
			total += o.Gate.Particle.Energy(p)
		}
	}
	return total / 1000.0
}

func FlashTime(r *event.RecoInteraction) float64         { return r.FlashTime }
func FlashTotalPE(r *event.RecoInteraction) float64      { return r.FlashTotalPE }
func FlashHypothesisPE(r *event.RecoInteraction) float64 { return r.FlashHypothesisPE }

func NeutrinoID(t *event.TruthInteraction) float64 { return float64(t.NuID) }

// TrueNeutrinoEnergy is the generator neutrino energy in GeV.
func TrueNeutrinoEnergy(t *event.TruthInteraction) float64 { return t.Energy }

func TrueNeutrinoBaseline(t *event.TruthInteraction) float64 { return t.Baseline }

func TrueNeutrinoPDG(t *event.TruthInteraction) float64 { return float64(t.PDGCode) }

// TrueNeutrinoCC is the current-type code: 0 for charged current, 1 for
// neutral current.
func TrueNeutrinoCC(t *event.TruthInteraction) float64 { return float64(t.CurrentType) }

func InteractionMode(t *event.TruthInteraction) float64 { return float64(t.InteractionMode) }

func (o Options) leading(obj event.Interaction, pid int) (event.Particle, bool) {
	i, ok := LeadingParticleIndex(o.Gate, obj, pid)
	if !ok {
		return nil, false
	}
	return obj.ParticleAt(i), true
}

func (o Options) leadingScalar(obj event.Interaction, pid int, f func(event.Particle) float64) float64 {
	p, ok := o.leading(obj, pid)
	if !ok {
		return math.NaN()
	}
	return f(p)
}

// LeadingMuonKE is the kinetic energy of the leading muon, NaN when the
// interaction has none.
func (o Options) LeadingMuonKE(obj event.Interaction) float64 {
	return o.leadingScalar(obj, event.Muon, o.Gate.Particle.KineticEnergy)
}

func (o Options) LeadingProtonKE(obj event.Interaction) float64 {
	return o.leadingScalar(obj, event.Proton, o.Gate.Particle.KineticEnergy)
}

func (o Options) LeadingMuonEndX(obj event.Interaction) float64 {
	return o.leadingScalar(obj, event.Muon, pvars.EndX)
}

func (o Options) LeadingMuonEndY(obj event.Interaction) float64 {
	return o.leadingScalar(obj, event.Muon, pvars.EndY)
}

func (o Options) LeadingMuonEndZ(obj event.Interaction) float64 {
	return o.leadingScalar(obj, event.Muon, pvars.EndZ)
}

func (o Options) LeadingProtonEndX(obj event.Interaction) float64 {
	return o.leadingScalar(obj, event.Proton, pvars.EndX)
}

func (o Options) LeadingProtonEndY(obj event.Interaction) float64 {
	return o.leadingScalar(obj, event.Proton, pvars.EndY)
}

func (o Options) LeadingProtonEndZ(obj event.Interaction) float64 {
	return o.leadingScalar(obj, event.Proton, pvars.EndZ)
}

// LeadingMuonLength is the track length of the leading muon candidate.
func (o Options) LeadingMuonLength(obj event.Interaction) float64 {
	return o.leadingScalar(obj, event.Muon, pvars.Length)
}

// LeadingMuonPT is the magnitude of the leading muon's beam-transverse
// momentum.
func (o Options) LeadingMuonPT(obj event.Interaction) float64 {
	return o.leadingScalar(obj, event.Muon, func(p event.Particle) float64 {
		return pvars.TransverseMomentum(p, o.Axis).Mag()
	})
}

func (o Options) LeadingProtonPT(obj event.Interaction) float64 {
	return o.leadingScalar(obj, event.Proton, func(p event.Particle) float64 {
		return pvars.TransverseMomentum(p, o.Axis).Mag()
	})
}

// MuonPolarAngle is the polar angle of the leading muon.
func (o Options) MuonPolarAngle(obj event.Interaction) float64 {
	return o.leadingScalar(obj, event.Muon, pvars.PolarAngle)
}

func (o Options) MuonAzimuthalAngle(obj event.Interaction) float64 {
	return o.leadingScalar(obj, event.Muon, pvars.AzimuthalAngle)
}

func (o Options) leadingRecoScore(obj *event.RecoInteraction, pid int, f func(*event.RecoParticle) float64) float64 {
	i, ok := LeadingParticleIndex(o.Gate, obj, pid)
	if !ok {
		return math.NaN()
	}
	return f(&obj.Particles[i])
}

// LeadingMuonSoftmax is the muon confidence of the leading muon candidate.
func (o Options) LeadingMuonSoftmax(obj *event.RecoInteraction) float64 {
	return o.leadingRecoScore(obj, event.Muon, pvars.MuonSoftmax)
}

func (o Options) LeadingProtonSoftmax(obj *event.RecoInteraction) float64 {
	return o.leadingRecoScore(obj, event.Proton, pvars.ProtonSoftmax)
}

func (o Options) LeadingMuonMIPSoftmax(obj *event.RecoInteraction) float64 {
	return o.leadingRecoScore(obj, event.Muon, pvars.MIPSoftmax)
}

// LeadingMuonPionSoftmax is the pion confidence of the leading muon
// candidate, the mu/pi confusion diagnostic paired with the MIP score.
func (o Options) LeadingMuonPionSoftmax(obj *event.RecoInteraction) float64 {
	return o.leadingRecoScore(obj, event.Muon, pvars.PionSoftmax)
}

// LeadingProtonHadronSoftmax is the summed hadron confidence of the leading
// proton candidate.
func (o Options) LeadingProtonHadronSoftmax(obj *event.RecoInteraction) float64 {
	return o.leadingRecoScore(obj, event.Proton, pvars.HadronSoftmax)
}

// transversePair resolves the beam-transverse momenta of the leading muon
// and leading proton. Both must exist for the imbalance variables.
func (o Options) transversePair(obj event.Interaction) (plT, ppT event.Vector3, ok bool) {
	m, okM := o.leading(obj, event.Muon)
	p, okP := o.leading(obj, event.Proton)
	if !okM || !okP {
		return event.Vector3{}, event.Vector3{}, false
	}
	return pvars.TransverseMomentum(m, o.Axis), pvars.TransverseMomentum(p, o.Axis), true
}

// InteractionPT is the magnitude of the summed beam-transverse momentum of
// the leading muon and proton, NaN when either is missing.
func (o Options) InteractionPT(obj event.Interaction) float64 {
	plT, ppT, ok := o.transversePair(obj)
	if !ok {
		return math.NaN()
	}
	return plT.Add(ppT).Mag()
}

// AlphaT is the transverse boosting angle between the momentum imbalance and
// the reversed lepton transverse momentum.
func (o Options) AlphaT(obj event.Interaction) float64 {
	plT, ppT, ok := o.transversePair(obj)
	if !ok {
		return math.NaN()
	}
	delta := plT.Add(ppT)
	return math.Acos(delta.Dot(plT.Scale(-1)) / (plT.Mag() * delta.Mag()))
}

// PhiT is the transverse opening angle between the lepton and hadron
// transverse momenta.
func (o Options) PhiT(obj event.Interaction) float64 {
	plT, ppT, ok := o.transversePair(obj)
	if !ok {
		return math.NaN()
	}
	return math.Acos(plT.Scale(-1).Dot(ppT) / (plT.Mag() * ppT.Mag()))
}

// OpeningAngle is the angle between the start directions of the leading muon
// and leading proton, NaN when either is missing.
func (o Options) OpeningAngle(obj event.Interaction) float64 {
	m, okM := o.leading(obj, event.Muon)
	p, okP := o.leading(obj, event.Proton)
	if !okM || !okP {
		return math.NaN()
	}
	return math.Acos(m.Core().StartDir.Dot(p.Core().StartDir))
}

// InvariantMass is the relativistic invariant mass of a particle pair:
// sqrt(m1^2 + m2^2 + 2(E1 E2 - p1.p2)).
func (o Options) InvariantMass(a, b event.Particle) float64 {
	ma, mb := o.Gate.Particle.Mass(a), o.Gate.Particle.Mass(b)
	ea, eb := o.Gate.Particle.Energy(a), o.Gate.Particle.Energy(b)
	dot := a.Core().Momentum.Dot(b.Core().Momentum)
	return math.Sqrt(ma*ma + mb*mb + 2*(ea*eb-dot))
}
