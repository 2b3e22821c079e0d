package vars

import (
	"math"
	"testing"

	"spinesel/internal/event"
	"spinesel/internal/pcuts"
)

func recoMuon(ke float64, dir event.Vector3) event.RecoParticle {
	return event.RecoParticle{
		ParticleCore: event.ParticleCore{
			PID:       event.Muon,
			IsPrimary: true,
			Momentum:  dir.Scale(ke),
			StartDir:  dir,
			EndPoint:  event.Vector3{X: 10, Y: 20, Z: 30},
		},
		CaloKE: ke,
		CSDAKEPerPID: [event.NumSpecies]float64{
			event.Muon: ke,
		},
		IsContained: true,
	}
}

func recoProton(ke float64, dir event.Vector3) event.RecoParticle {
	p := recoMuon(ke, dir)
	p.PID = event.Proton
	p.CSDAKEPerPID = [event.NumSpecies]float64{event.Proton: ke}
	return p
}

func TestCountPrimaries(t *testing.T) {
	g := pcuts.DefaultGate()
	obj := &event.RecoInteraction{
		Particles: []event.RecoParticle{
			recoMuon(300, event.Vector3{Z: 1}),
			recoProton(120, event.Vector3{Z: 1}),
			recoProton(10, event.Vector3{Z: 1}), // below threshold
		},
	}
	counts := CountPrimaries(g, obj)
	if counts[event.Muon] != 1 || counts[event.Proton] != 1 {
		t.Fatalf("counts: got=%v", counts)
	}
	if counts.Total() != 2 {
		t.Fatalf("total: got=%d", counts.Total())
	}
}

func TestLeadingParticleIndex(t *testing.T) {
	g := pcuts.DefaultGate()
	obj := &event.RecoInteraction{
		Particles: []event.RecoParticle{
			recoMuon(200, event.Vector3{Z: 1}),
			recoMuon(450, event.Vector3{Z: 1}),
			recoProton(120, event.Vector3{Z: 1}),
		},
	}
	if i, ok := LeadingParticleIndex(g, obj, event.Muon); !ok || i != 1 {
		t.Fatalf("leading muon: got=(%d,%v)", i, ok)
	}
	if _, ok := LeadingParticleIndex(g, obj, event.Pion); ok {
		t.Fatal("no pion must yield ok=false")
	}
}

func TestVisibleEnergy(t *testing.T) {
	o := DefaultOptions()
	obj := &event.RecoInteraction{
		Particles: []event.RecoParticle{
			recoMuon(300, event.Vector3{Z: 1}),
			recoProton(100, event.Vector3{Z: 1}),
		},
	}
	want := (300 + event.MuonMass + 100 + event.ProtonMass) / 1000.0
	if got := o.VisibleEnergy(obj); math.Abs(got-want) > 1e-9 {
		t.Fatalf("visible energy: got=%f want=%f", got, want)
	}
}

func TestLeadingMuonVariables(t *testing.T) {
	o := DefaultOptions()
	obj := &event.RecoInteraction{
		Particles: []event.RecoParticle{
			recoMuon(300, event.Vector3{Z: 1}),
		},
	}
	if got := o.LeadingMuonKE(obj); got != 300 {
		t.Fatalf("leading muon KE: got=%f", got)
	}
	if got := o.LeadingMuonEndX(obj); got != 10 {
		t.Fatalf("leading muon end x: got=%f", got)
	}
	if got := o.MuonPolarAngle(obj); got != 0 {
		t.Fatalf("forward muon polar angle: got=%f", got)
	}
	if got := o.LeadingProtonKE(obj); !math.IsNaN(got) {
		t.Fatalf("missing proton must yield NaN, got=%f", got)
	}
}

func TestLeadingCandidateScores(t *testing.T) {
	o := DefaultOptions()
	mu := recoMuon(300, event.Vector3{Z: 1})
	mu.Length = 120
	mu.PIDScores = [event.NumSpecies]float64{0, 0, 0.6, 0.3, 0.1}
	pr := recoProton(120, event.Vector3{Z: 1})
	pr.PIDScores = [event.NumSpecies]float64{0, 0, 0.05, 0.15, 0.8}
	obj := &event.RecoInteraction{Particles: []event.RecoParticle{mu, pr}}

	if got := o.LeadingMuonLength(obj); got != 120 {
		t.Fatalf("leading muon length: got=%f", got)
	}
	if got := o.LeadingMuonPionSoftmax(obj); got != 0.3 {
		t.Fatalf("leading muon pion softmax: got=%f", got)
	}
	if got := o.LeadingProtonHadronSoftmax(obj); math.Abs(got-0.95) > 1e-9 {
		t.Fatalf("leading proton hadron softmax: got=%f", got)
	}

	obj = &event.RecoInteraction{Particles: []event.RecoParticle{mu}}
	if got := o.LeadingProtonHadronSoftmax(obj); !math.IsNaN(got) {
		t.Fatalf("missing proton hadron softmax must be NaN, got=%f", got)
	}
}

func TestTransverseImbalance(t *testing.T) {
	o := DefaultOptions()
	// Perfectly balanced transverse momenta: pT sums to zero, phiT is pi.
	mu := recoMuon(300, event.Vector3{Z: 1})
	mu.Momentum = event.Vector3{X: 50, Z: 300}
	pr := recoProton(120, event.Vector3{Z: 1})
	pr.Momentum = event.Vector3{X: -50, Z: 120}
	obj := &event.RecoInteraction{Particles: []event.RecoParticle{mu, pr}}

	if got := o.InteractionPT(obj); math.Abs(got) > 1e-9 {
		t.Fatalf("balanced interaction pT: got=%f", got)
	}
	if got := o.PhiT(obj); math.Abs(got-math.Pi) > 1e-9 {
		t.Fatalf("back-to-back phiT: got=%f", got)
	}

	// Unbalanced case: imbalance aligned with the proton side.
	pr.Momentum = event.Vector3{X: -20, Z: 120}
	obj = &event.RecoInteraction{Particles: []event.RecoParticle{mu, pr}}
	if got := o.InteractionPT(obj); math.Abs(got-30) > 1e-9 {
		t.Fatalf("interaction pT: got=%f", got)
	}
	if got := o.AlphaT(obj); math.Abs(got-math.Pi) > 1e-9 {
		t.Fatalf("alphaT with imbalance opposing lepton: got=%f", got)
	}

	// Missing proton: the whole triple degrades to NaN.
	obj = &event.RecoInteraction{Particles: []event.RecoParticle{mu}}
	for name, got := range map[string]float64{
		"pT":     o.InteractionPT(obj),
		"alphaT": o.AlphaT(obj),
		"phiT":   o.PhiT(obj),
	} {
		if !math.IsNaN(got) {
			t.Fatalf("%s without proton must be NaN, got=%f", name, got)
		}
	}
}

func TestOpeningAngle(t *testing.T) {
	o := DefaultOptions()
	mu := recoMuon(300, event.Vector3{Z: 1})
	pr := recoProton(120, event.Vector3{X: 1})
	obj := &event.RecoInteraction{Particles: []event.RecoParticle{mu, pr}}
	if got := o.OpeningAngle(obj); math.Abs(got-math.Pi/2) > 1e-9 {
		t.Fatalf("orthogonal opening angle: got=%f", got)
	}
}

func TestInvariantMassTwoPhotons(t *testing.T) {
	o := DefaultOptions()
	// Two 100 MeV photons at right angles: m = sqrt(2 E1 E2 (1 - cos)).
	a := &event.TruthParticle{
		ParticleCore: event.ParticleCore{
			PID:      event.Photon,
			Momentum: event.Vector3{Z: 100},
		},
		EnergyInit: 100,
	}
	b := &event.TruthParticle{
		ParticleCore: event.ParticleCore{
			PID:      event.Photon,
			Momentum: event.Vector3{X: 100},
		},
		EnergyInit: 100,
	}
	want := math.Sqrt(2 * 100 * 100)
	if got := o.InvariantMass(a, b); math.Abs(got-want) > 1e-9 {
		t.Fatalf("diphoton invariant mass: got=%f want=%f", got, want)
	}
}

func TestParticleIndicesSingleParticleCollapse(t *testing.T) {
	g := pcuts.DefaultGate()
	obj := &event.RecoInteraction{
		Particles: []event.RecoParticle{recoMuon(300, event.Vector3{Z: 1})},
	}
	lead, sub := ParticleIndices(g, obj, event.Electron, event.Photon)
	if lead != 0 || sub != 0 {
		t.Fatalf("single-particle collapse: got=(%d,%d)", lead, sub)
	}
	if _, ok := SubleadingShowerIndex(g, obj); ok {
		t.Fatal("single particle must not yield a subleading shower")
	}
}

func TestShowerIndices(t *testing.T) {
	g := pcuts.DefaultGate()
	shower := func(pid int, calo float64) event.RecoParticle {
		return event.RecoParticle{
			ParticleCore: event.ParticleCore{PID: pid, IsPrimary: true},
			CaloKE:       calo,
		}
	}
	obj := &event.RecoInteraction{
		Particles: []event.RecoParticle{
			shower(event.Electron, 80),
			recoMuon(300, event.Vector3{Z: 1}),
			shower(event.Photon, 140),
		},
	}
	if i, ok := LeadingShowerIndex(g, obj); !ok || i != 2 {
		t.Fatalf("leading shower: got=(%d,%v)", i, ok)
	}
	if i, ok := SubleadingShowerIndex(g, obj); !ok || i != 0 {
		t.Fatalf("subleading shower: got=(%d,%v)", i, ok)
	}
}

func TestTruthAccessors(t *testing.T) {
	obj := &event.TruthInteraction{
		NuID:            3,
		CurrentType:     0,
		PDGCode:         14,
		InteractionMode: 1,
		Energy:          1.2,
		Baseline:        0.47,
	}
	if got := NeutrinoID(obj); got != 3 {
		t.Fatalf("neutrino id: got=%f", got)
	}
	if got := TrueNeutrinoPDG(obj); got != 14 {
		t.Fatalf("pdg: got=%f", got)
	}
	if got := TrueNeutrinoCC(obj); got != 0 {
		t.Fatalf("current type: got=%f", got)
	}
	if got := TrueNeutrinoEnergy(obj); got != 1.2 {
		t.Fatalf("energy: got=%f", got)
	}
}
