// Package event defines the read-only particle and interaction records the
// selection engine operates on. Records come in two kinds, true (simulation
// truth) and reconstructed, sharing an accessor interface so that feature
// functions can be written once for both. The upstream reconstruction fills
// every field; nothing in this module mutates a record.
package event

import "math"

// Species codes assigned by the upstream particle identification.
const (
	Photon = iota
	Electron
	Muon
	Pion
	Proton

	// NumSpecies is the size of per-species arrays (softmax scores, energy
	// estimates, primary counts).
	NumSpecies = 5
)

// Rest masses in MeV.
const (
	ElectronMass = 0.5109989461
	MuonMass     = 105.6583745
	PionMass     = 139.57039
	ProtonMass   = 938.2720813
)

// PIDStrategy selects how a species is assigned to a reconstructed particle
// before any mass or energy lookup. True particles always use their stored
// species regardless of strategy.
type PIDStrategy int

const (
	// PIDNominal uses the species decided upstream.
	PIDNominal PIDStrategy = iota
	// PIDCustom overrides the upstream decision: muon whenever the muon
	// softmax score exceeds 0.10, otherwise the highest-scoring species.
	PIDCustom
)

const customMuonScoreFloor = 0.10

// ParticleCore holds the fields common to both record kinds.
type ParticleCore struct {
	PID           int       `json:"pid"`
	IsPrimary     bool      `json:"is_primary"`
	Momentum      Vector3   `json:"momentum"`
	StartPoint    Vector3   `json:"start_point"`
	EndPoint      Vector3   `json:"end_point"`
	StartDir      Vector3   `json:"start_dir"`
	Length        float64   `json:"length"`
	MatchIDs      []int64   `json:"match_ids,omitempty"`
	MatchOverlaps []float64 `json:"match_overlaps,omitempty"`
}

// Particle is the accessor surface shared by the true and reconstructed
// record kinds. Kind-specific behavior (energy estimation, mass lookup, PID
// assignment) lives behind the interface so feature functions never branch
// on the concrete type.
type Particle interface {
	Core() *ParticleCore

	// AssignedPID resolves the species under the given assignment strategy.
	AssignedPID(s PIDStrategy) int

	// MassFor returns the rest mass associated with an assumed species,
	// or NaN for an unrecognized species.
	MassFor(pid int) float64

	// KineticEnergyFor returns the authoritative kinetic-energy estimate
	// assuming the given species, or NaN for an unrecognized species.
	KineticEnergyFor(pid int) float64

	// CalorimetricEnergy is the ranking energy used by shower index
	// lookups: the calorimetric estimate for reconstructed particles and
	// the initial kinetic energy for true particles.
	CalorimetricEnergy() float64
}

// RecoParticle is a reconstructed particle record.
type RecoParticle struct {
	ParticleCore
	CaloKE        float64              `json:"calo_ke"`
	CSDAKEPerPID  [NumSpecies]float64  `json:"csda_ke_per_pid"`
	MCSKEPerPID   [NumSpecies]float64  `json:"mcs_ke_per_pid"`
	IsContained   bool                 `json:"is_contained"`
	PIDScores     [NumSpecies]float64  `json:"pid_scores"`
	PrimaryScores [2]float64           `json:"primary_scores"`
}

func (p *RecoParticle) Core() *ParticleCore { return &p.ParticleCore }

func (p *RecoParticle) AssignedPID(s PIDStrategy) int {
	if s != PIDCustom {
		return p.PID
	}
	if p.PIDScores[Muon] > customMuonScoreFloor {
		return Muon
	}
	high := 0
	for i := 1; i < NumSpecies; i++ {
		if p.PIDScores[i] > p.PIDScores[high] {
			high = i
		}
	}
	return high
}

func (p *RecoParticle) MassFor(pid int) float64 {
	switch pid {
	case Photon:
		return 0
	case Electron:
		return ElectronMass
	case Muon:
		return MuonMass
	case Pion:
		return PionMass
	case Proton:
		return ProtonMass
	default:
		return math.NaN()
	}
}

// KineticEnergyFor picks the single authoritative estimator per species:
// showers are calorimetric only, tracks use range (CSDA) when contained and
// multiple scattering (MCS) when exiting.
func (p *RecoParticle) KineticEnergyFor(pid int) float64 {
	switch {
	case pid == Photon || pid == Electron:
		return p.CaloKE
	case pid == Muon || pid == Pion || pid == Proton:
		if p.IsContained {
			return p.CSDAKEPerPID[pid]
		}
		return p.MCSKEPerPID[pid]
	default:
		return math.NaN()
	}
}

func (p *RecoParticle) CalorimetricEnergy() float64 { return p.CaloKE }

// TruthParticle is a simulation-truth particle record.
type TruthParticle struct {
	ParticleCore
	EnergyInit float64 `json:"energy_init"`
	Mass       float64 `json:"mass"`
}

func (p *TruthParticle) Core() *ParticleCore { return &p.ParticleCore }

func (p *TruthParticle) AssignedPID(PIDStrategy) int { return p.PID }

func (p *TruthParticle) MassFor(int) float64 { return p.Mass }

func (p *TruthParticle) KineticEnergyFor(int) float64 {
	return p.EnergyInit - p.Mass
}

func (p *TruthParticle) CalorimetricEnergy() float64 {
	return p.EnergyInit - p.Mass
}

// InteractionCore holds the fields common to both interaction kinds. The
// fiducial and containment flags are computed by the upstream geometric
// gates.
type InteractionCore struct {
	ID            int64     `json:"id"`
	Vertex        Vector3   `json:"vertex"`
	IsFiducial    bool      `json:"is_fiducial"`
	IsContained   bool      `json:"is_contained"`
	MatchIDs      []int64   `json:"match_ids,omitempty"`
	MatchOverlaps []float64 `json:"match_overlaps,omitempty"`
}

// Interaction is the accessor surface shared by the true and reconstructed
// interaction kinds.
type Interaction interface {
	Core() *InteractionCore
	NumParticles() int
	ParticleAt(i int) Particle
}

// RecoInteraction is a reconstructed interaction: a vertex with its outgoing
// reconstructed particles and the optical-flash information used by the
// beam-coincidence gate.
type RecoInteraction struct {
	InteractionCore
	FlashTime         float64        `json:"flash_time"`
	FlashTotalPE      float64        `json:"flash_total_pe"`
	FlashHypothesisPE float64        `json:"flash_hypothesis_pe"`
	Particles         []RecoParticle `json:"particles"`
}

func (r *RecoInteraction) Core() *InteractionCore { return &r.InteractionCore }
func (r *RecoInteraction) NumParticles() int      { return len(r.Particles) }
func (r *RecoInteraction) ParticleAt(i int) Particle {
	return &r.Particles[i]
}

// TruthInteraction is a simulation-truth interaction. NuID is non-negative
// for neutrino-origin interactions and negative for cosmics.
type TruthInteraction struct {
	InteractionCore
	NuID            int64           `json:"nu_id"`
	CurrentType     int             `json:"current_type"`
	PDGCode         int             `json:"pdg_code"`
	InteractionMode int             `json:"interaction_mode"`
	Energy          float64         `json:"energy"`
	Baseline        float64         `json:"baseline"`
	Particles       []TruthParticle `json:"particles"`
}

func (t *TruthInteraction) Core() *InteractionCore { return &t.InteractionCore }
func (t *TruthInteraction) NumParticles() int      { return len(t.Particles) }
func (t *TruthInteraction) ParticleAt(i int) Particle {
	return &t.Particles[i]
}

// Event is one detector readout: all reconstructed interactions and, for
// simulation, all true interactions, with the true/reco correspondence
// established upstream (first match ID is the best match).
type Event struct {
	Run    int                `json:"run"`
	Subrun int                `json:"subrun"`
	Number int                `json:"event"`
	Reco   []RecoInteraction  `json:"reco,omitempty"`
	Truth  []TruthInteraction `json:"truth,omitempty"`
}

// MatchedTruth returns the best-matched true interaction for a reconstructed
// one, if any.
func (e *Event) MatchedTruth(r *RecoInteraction) (*TruthInteraction, bool) {
	if len(r.MatchIDs) == 0 {
		return nil, false
	}
	want := r.MatchIDs[0]
	for i := range e.Truth {
		if e.Truth[i].ID == want {
			return &e.Truth[i], true
		}
	}
	return nil, false
}

// MatchedReco returns the best-matched reconstructed interaction for a true
// one, if any.
func (e *Event) MatchedReco(t *TruthInteraction) (*RecoInteraction, bool) {
	if len(t.MatchIDs) == 0 {
		return nil, false
	}
	want := t.MatchIDs[0]
	for i := range e.Reco {
		if e.Reco[i].ID == want {
			return &e.Reco[i], true
		}
	}
	return nil, false
}
