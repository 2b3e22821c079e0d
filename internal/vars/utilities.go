// Package vars implements interaction-level utilities and the generic
// analysis variables shared by every selection. Variables specific to one
// analysis live in their own packages (muon2024, nue2024, electron2025).
package vars

import (
	"spinesel/internal/event"
	"spinesel/internal/pcuts"
)

// Counts is the per-species primary multiplicity, indexed by species code
// (photon, electron, muon, pion, proton).
type Counts [event.NumSpecies]int

// Total returns the summed multiplicity over all species.
func (c Counts) Total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

// CountPrimaries scans the interaction and counts, per species, the
// particles passing the final-state signal gate. Unrecognized species are
// never counted.
func CountPrimaries(g pcuts.Gate, obj event.Interaction) Counts {
	var counts Counts
	for i := 0; i < obj.NumParticles(); i++ {
		p := obj.ParticleAt(i)
		if !g.FinalStateSignal(p) {
			continue
		}
		if pid := g.Particle.PID(p); pid >= 0 && pid < event.NumSpecies {
			counts[pid]++
		}
	}
	return counts
}

// CountPrimariesEE is the shower-counting variant used by the electron-pair
// benchmarking: the same scan under the shower-only gate.
func CountPrimariesEE(g pcuts.Gate, obj event.Interaction) Counts {
	var counts Counts
	for i := 0; i < obj.NumParticles(); i++ {
		p := obj.ParticleAt(i)
		if !g.FinalStateSignalElec(p) {
			continue
		}
		if pid := g.Particle.PID(p); pid >= 0 && pid < event.NumSpecies {
			counts[pid]++
		}
	}
	return counts
}

// LeadingParticleIndex returns the index of the particle of the given
// species with the highest authoritative kinetic energy. ok is false when no
// particle of that species with positive kinetic energy exists; callers must
// check it rather than treat index 0 as a match.
func LeadingParticleIndex(g pcuts.Gate, obj event.Interaction, pid int) (int, bool) {
	best, found := 0, false
	var bestKE float64
	for i := 0; i < obj.NumParticles(); i++ {
		p := obj.ParticleAt(i)
		if g.Particle.PID(p) != pid {
			continue
		}
		if ke := g.Particle.KineticEnergy(p); ke > bestKE {
			bestKE = ke
			best = i
			found = true
		}
	}
	return best, found
}

// LeadingShowerIndex returns the index of the highest-energy primary shower
// (photon or electron), ranked by calorimetric energy.
func LeadingShowerIndex(g pcuts.Gate, obj event.Interaction) (int, bool) {
	best, found := 0, false
	var bestKE float64
	for i := 0; i < obj.NumParticles(); i++ {
		if !isShowerPrimary(g, obj, i) {
			continue
		}
		if ke := obj.ParticleAt(i).CalorimetricEnergy(); ke > bestKE {
			bestKE = ke
			best = i
			found = true
		}
	}
	return best, found
}

// SubleadingShowerIndex returns the index of the second-highest-energy
// primary shower. ok is false when fewer than two distinct primary showers
// exist.
func SubleadingShowerIndex(g pcuts.Gate, obj event.Interaction) (int, bool) {
	lead, sub := ParticleIndices(g, obj, event.Electron, event.Photon)
	if lead == sub || !isShowerPrimary(g, obj, sub) {
		return 0, false
	}
	return sub, true
}

func isShowerPrimary(g pcuts.Gate, obj event.Interaction, i int) bool {
	if i < 0 || i >= obj.NumParticles() {
		return false
	}
	p := obj.ParticleAt(i)
	pid := g.Particle.PID(p)
	return p.Core().IsPrimary && (pid == event.Photon || pid == event.Electron)
}

// ParticleIndices returns the indices of the leading and subleading primary
// particles of either of two species, ranked by calorimetric energy. The
// subleading scan excludes the leading index.
//
// Legacy special case, preserved: an interaction with exactly one particle
// returns (0, 0) regardless of species. Callers detect "fewer than two
// candidates" by lead == sub; in low-multiplicity events the indices can
// alias an unrelated particle, which is why the shower index lookups above
// re-validate the candidates.
func ParticleIndices(g pcuts.Gate, obj event.Interaction, pidA, pidB int) (lead, sub int) {
	if obj.NumParticles() == 1 {
		return 0, 0
	}
	var leadKE, subKE float64
	for i := 0; i < obj.NumParticles(); i++ {
		p := obj.ParticleAt(i)
		pid := g.Particle.PID(p)
		if pid != pidA && pid != pidB {
			continue
		}
		if !p.Core().IsPrimary {
			continue
		}
		if ke := p.CalorimetricEnergy(); ke > leadKE {
			leadKE = ke
			lead = i
		}
	}
	for i := 0; i < obj.NumParticles(); i++ {
		if i == lead {
			continue
		}
		p := obj.ParticleAt(i)
		pid := g.Particle.PID(p)
		if pid != pidA && pid != pidB {
			continue
		}
		if !p.Core().IsPrimary {
			continue
		}
		if ke := p.CalorimetricEnergy(); ke > subKE {
			subKE = ke
			sub = i
		}
	}
	return lead, sub
}
