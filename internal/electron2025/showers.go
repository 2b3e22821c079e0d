package electron2025

import (
	"math"

	"spinesel/internal/event"
	"spinesel/internal/pvars"
	"spinesel/internal/vars"
)

// Per-shower particle columns: features of the leading and subleading shower
// lifted to the interaction level. Every accessor returns NaN when the
// requested shower does not exist.

func (c Config) showerIndex(obj event.Interaction, sub bool) (int, bool) {
	if sub {
		return vars.SubleadingShowerIndex(c.Selection.Gate, obj)
	}
	return vars.LeadingShowerIndex(c.Selection.Gate, obj)
}

func (c Config) showerScalar(obj event.Interaction, sub bool, f func(event.Particle) float64) float64 {
	i, ok := c.showerIndex(obj, sub)
	if !ok {
		return math.NaN()
	}
	return f(obj.ParticleAt(i))
}

func (c Config) showerScore(obj *event.RecoInteraction, sub bool, f func(*event.RecoParticle) float64) float64 {
	i, ok := c.showerIndex(obj, sub)
	if !ok {
		return math.NaN()
	}
	return f(&obj.Particles[i])
}

func dirX(p event.Particle) float64 { return pvars.UnitDirection(p).X }
func dirY(p event.Particle) float64 { return pvars.UnitDirection(p).Y }
func dirZ(p event.Particle) float64 { return pvars.UnitDirection(p).Z }

func (c Config) LeadingShowerPx(obj event.Interaction) float64 {
	return c.showerScalar(obj, false, pvars.Px)
}

func (c Config) LeadingShowerPy(obj event.Interaction) float64 {
	return c.showerScalar(obj, false, pvars.Py)
}

func (c Config) LeadingShowerPz(obj event.Interaction) float64 {
	return c.showerScalar(obj, false, pvars.Pz)
}

func (c Config) SubleadingShowerPx(obj event.Interaction) float64 {
	return c.showerScalar(obj, true, pvars.Px)
}

func (c Config) SubleadingShowerPy(obj event.Interaction) float64 {
	return c.showerScalar(obj, true, pvars.Py)
}

func (c Config) SubleadingShowerPz(obj event.Interaction) float64 {
	return c.showerScalar(obj, true, pvars.Pz)
}

// Momentum unit-vector components. NaN propagates from zero-momentum showers
// as well as from a missing shower.

func (c Config) LeadingShowerDirX(obj event.Interaction) float64 {
	return c.showerScalar(obj, false, dirX)
}

func (c Config) LeadingShowerDirY(obj event.Interaction) float64 {
	return c.showerScalar(obj, false, dirY)
}

func (c Config) LeadingShowerDirZ(obj event.Interaction) float64 {
	return c.showerScalar(obj, false, dirZ)
}

func (c Config) SubleadingShowerDirX(obj event.Interaction) float64 {
	return c.showerScalar(obj, true, dirX)
}

func (c Config) SubleadingShowerDirY(obj event.Interaction) float64 {
	return c.showerScalar(obj, true, dirY)
}

func (c Config) SubleadingShowerDirZ(obj event.Interaction) float64 {
	return c.showerScalar(obj, true, dirZ)
}

// LeadingShowerIoU is the best-match overlap of the leading shower.
func (c Config) LeadingShowerIoU(obj event.Interaction) float64 {
	return c.showerScalar(obj, false, pvars.IoU)
}

func (c Config) SubleadingShowerIoU(obj event.Interaction) float64 {
	return c.showerScalar(obj, true, pvars.IoU)
}

// Network confidences of the shower candidates. Reconstruction only.

func (c Config) LeadingShowerPrimarySoftmax(obj *event.RecoInteraction) float64 {
	return c.showerScore(obj, false, pvars.PrimarySoftmax)
}

func (c Config) LeadingShowerSecondarySoftmax(obj *event.RecoInteraction) float64 {
	return c.showerScore(obj, false, pvars.SecondarySoftmax)
}

func (c Config) LeadingShowerElectronSoftmax(obj *event.RecoInteraction) float64 {
	return c.showerScore(obj, false, pvars.ElectronSoftmax)
}

func (c Config) LeadingShowerPhotonSoftmax(obj *event.RecoInteraction) float64 {
	return c.showerScore(obj, false, pvars.PhotonSoftmax)
}

func (c Config) SubleadingShowerPrimarySoftmax(obj *event.RecoInteraction) float64 {
	return c.showerScore(obj, true, pvars.PrimarySoftmax)
}

func (c Config) SubleadingShowerSecondarySoftmax(obj *event.RecoInteraction) float64 {
	return c.showerScore(obj, true, pvars.SecondarySoftmax)
}

func (c Config) SubleadingShowerElectronSoftmax(obj *event.RecoInteraction) float64 {
	return c.showerScore(obj, true, pvars.ElectronSoftmax)
}

func (c Config) SubleadingShowerPhotonSoftmax(obj *event.RecoInteraction) float64 {
	return c.showerScore(obj, true, pvars.PhotonSoftmax)
}
