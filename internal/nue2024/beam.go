package nue2024

import (
	"math"

	"spinesel/internal/event"
	"spinesel/internal/pvars"
	"spinesel/internal/vars"
)

// Target is the NuMI hadron production target position in detector
// coordinates (cm).
var Target = event.Vector3{X: 31512.0380, Y: 3364.4912, Z: 73363.2532}

// BeamAngle is the angle between the particle start direction and the unit
// vector pointing from the target to the particle start point.
func BeamAngle(p event.Particle) float64 {
	start := event.Vector3{X: pvars.StartX(p), Y: pvars.StartY(p), Z: pvars.StartZ(p)}
	d := Target.Sub(start).Unit()
	return math.Acos(d.Dot(p.Core().StartDir))
}

// beamDirection builds the vertex-variant beam direction from the target
// offset plus the interaction vertex. The sign of the vertex term differs
// from BeamAngle; both conventions are kept as their analyses defined them.
func beamDirection(obj event.Interaction) event.Vector3 {
	return Target.Add(obj.Core().Vertex).Unit()
}

// BeamPolarAngle is the polar angle of the vertex-variant beam direction.
func BeamPolarAngle(obj event.Interaction) float64 {
	return math.Acos(beamDirection(obj).Z)
}

// BeamAzimuthalAngle is the signed azimuthal angle of the vertex-variant
// beam direction.
func BeamAzimuthalAngle(obj event.Interaction) float64 {
	d := beamDirection(obj)
	a := math.Acos(d.X / math.Hypot(d.X, d.Y))
	if d.Y < 0 {
		return -a
	}
	return a
}

// TransverseMomentumSum is the vector sum of the beam-transverse momenta of
// the primary particles of the given species. ok is false when the
// interaction has no primary of that species.
func (c Config) TransverseMomentumSum(obj event.Interaction, pid int) (event.Vector3, bool) {
	axis := beamDirection(obj)
	var sum event.Vector3
	found := false
	for i := 0; i < obj.NumParticles(); i++ {
		p := obj.ParticleAt(i)
		if !p.Core().IsPrimary || c.Selection.Gate.Particle.PID(p) != pid {
			continue
		}
		sum = sum.Add(p.Core().Momentum.Transverse(axis))
		found = true
	}
	return sum, found
}

func (c Config) leptonHadronPair(obj event.Interaction) (plT, ppT event.Vector3, ok bool) {
	plT, okL := c.TransverseMomentumSum(obj, event.Electron)
	ppT, okP := c.TransverseMomentumSum(obj, event.Proton)
	if !okL || !okP {
		return event.Vector3{}, event.Vector3{}, false
	}
	return plT, ppT, true
}

// DeltaPT is the magnitude of the summed electron and proton transverse
// momenta, NaN when either species is absent.
func (c Config) DeltaPT(obj event.Interaction) float64 {
	plT, ppT, ok := c.leptonHadronPair(obj)
	if !ok {
		return math.NaN()
	}
	return plT.Add(ppT).Mag()
}

// DeltaAlphaT is the transverse boosting angle between the momentum
// imbalance and the reversed lepton transverse momentum.
func (c Config) DeltaAlphaT(obj event.Interaction) float64 {
	plT, ppT, ok := c.leptonHadronPair(obj)
	if !ok {
		return math.NaN()
	}
	delta := plT.Add(ppT)
	return math.Acos(delta.Dot(plT.Scale(-1)) / (plT.Mag() * delta.Mag()))
}

// DeltaPhiT is the transverse opening angle between the lepton and hadron
// transverse momenta.
func (c Config) DeltaPhiT(obj event.Interaction) float64 {
	plT, ppT, ok := c.leptonHadronPair(obj)
	if !ok {
		return math.NaN()
	}
	return math.Acos(plT.Scale(-1).Dot(ppT) / (plT.Mag() * ppT.Mag()))
}

// ElectronTransverseMomentumMag is the magnitude of the summed electron
// beam-transverse momentum.
func (c Config) ElectronTransverseMomentumMag(obj event.Interaction) float64 {
	plT, ok := c.TransverseMomentumSum(obj, event.Electron)
	if !ok {
		return math.NaN()
	}
	return plT.Mag()
}

func (c Config) ProtonTransverseMomentumMag(obj event.Interaction) float64 {
	ppT, ok := c.TransverseMomentumSum(obj, event.Proton)
	if !ok {
		return math.NaN()
	}
	return ppT.Mag()
}

// LeadingElectronSoftmax is the electron confidence of the leading electron
// candidate.
func (c Config) LeadingElectronSoftmax(obj *event.RecoInteraction) float64 {
	i, ok := vars.LeadingParticleIndex(c.Selection.Gate, obj, event.Electron)
	if !ok {
		return math.NaN()
	}
	return pvars.ElectronSoftmax(&obj.Particles[i])
}

func (c Config) LeadingProtonSoftmax(obj *event.RecoInteraction) float64 {
	i, ok := vars.LeadingParticleIndex(c.Selection.Gate, obj, event.Proton)
	if !ok {
		return math.NaN()
	}
	return pvars.ProtonSoftmax(&obj.Particles[i])
}

func (c Config) leadingBeamScalar(obj event.Interaction, pid int, f func(event.Particle) float64) float64 {
	p, ok := leadingParticle(c, obj, pid)
	if !ok {
		return math.NaN()
	}
	return f(p)
}

// LeadingElectronBeamAngle is the start-point beam angle of the leading
// electron.
func (c Config) LeadingElectronBeamAngle(obj event.Interaction) float64 {
	return c.leadingBeamScalar(obj, event.Electron, BeamAngle)
}

func (c Config) LeadingProtonBeamAngle(obj event.Interaction) float64 {
	return c.leadingBeamScalar(obj, event.Proton, BeamAngle)
}

// LeadingElectronBeamPolarAngle is the vertex-variant beam polar angle,
// guarded on the presence of a leading electron.
func (c Config) LeadingElectronBeamPolarAngle(obj event.Interaction) float64 {
	if _, ok := leadingParticle(c, obj, event.Electron); !ok {
		return math.NaN()
	}
	return BeamPolarAngle(obj)
}

func (c Config) LeadingProtonBeamPolarAngle(obj event.Interaction) float64 {
	if _, ok := leadingParticle(c, obj, event.Proton); !ok {
		return math.NaN()
	}
	return BeamPolarAngle(obj)
}

func (c Config) LeadingElectronBeamAzimuthalAngle(obj event.Interaction) float64 {
	if _, ok := leadingParticle(c, obj, event.Electron); !ok {
		return math.NaN()
	}
	return BeamAzimuthalAngle(obj)
}

func (c Config) LeadingProtonBeamAzimuthalAngle(obj event.Interaction) float64 {
	if _, ok := leadingParticle(c, obj, event.Proton); !ok {
		return math.NaN()
	}
	return BeamAzimuthalAngle(obj)
}
