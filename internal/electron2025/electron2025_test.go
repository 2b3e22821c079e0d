package electron2025

import (
	"math"
	"testing"

	"spinesel/internal/event"
)

func shower(pid int, calo float64, dir event.Vector3) event.TruthParticle {
	return event.TruthParticle{
		ParticleCore: event.ParticleCore{
			PID:       pid,
			IsPrimary: true,
			StartDir:  dir,
			Momentum:  dir.Scale(calo),
		},
		EnergyInit: calo,
	}
}

func interactionWith(fiducial bool, particles ...event.TruthParticle) *event.TruthInteraction {
	return &event.TruthInteraction{
		InteractionCore: event.InteractionCore{IsFiducial: fiducial, IsContained: true},
		NuID:            0,
		Particles:       particles,
	}
}

func TestShowerTopologies(t *testing.T) {
	c := DefaultConfig()
	z := event.Vector3{Z: 1}
	cases := []struct {
		name string
		obj  *event.TruthInteraction
		is2e bool
		want float64
	}{
		{"2e", interactionWith(true, shower(event.Electron, 100, z), shower(event.Electron, 80, z)), true, 0},
		{"1e1gamma", interactionWith(true, shower(event.Electron, 100, z), shower(event.Photon, 80, z)), false, 1},
		{"1e2gamma", interactionWith(true, shower(event.Electron, 100, z), shower(event.Photon, 80, z), shower(event.Photon, 60, z)), false, 2},
		{"2gamma", interactionWith(true, shower(event.Photon, 100, z), shower(event.Photon, 80, z)), false, 3},
		{"3e", interactionWith(true, shower(event.Electron, 100, z), shower(event.Electron, 80, z), shower(event.Electron, 60, z)), false, 4},
		{"3gamma", interactionWith(true, shower(event.Photon, 100, z), shower(event.Photon, 80, z), shower(event.Photon, 60, z)), false, 5},
		{"1e", interactionWith(true, shower(event.Electron, 100, z)), false, 6},
		{"2e out of volume", interactionWith(false, shower(event.Electron, 100, z), shower(event.Electron, 80, z)), true, 6},
	}
	for _, tc := range cases {
		if got := c.Topological2E(tc.obj); got != tc.is2e {
			t.Fatalf("%s 2e: got=%v", tc.name, got)
		}
		if got := c.Category(tc.obj); got != tc.want {
			t.Fatalf("%s category: got=%f want=%f", tc.name, got, tc.want)
		}
	}
}

func TestOneShowerTopologies(t *testing.T) {
	c := DefaultConfig()
	z := event.Vector3{Z: 1}
	one := interactionWith(true, shower(event.Photon, 100, z))
	if !c.Topological1Shower(one) || !c.Topological1ShowerOnly(one) {
		t.Fatal("single photon must satisfy both one-shower topologies")
	}
	two := interactionWith(true, shower(event.Photon, 100, z), shower(event.Electron, 80, z))
	if !c.Topological1Shower(two) || c.Topological1ShowerOnly(two) {
		t.Fatal("two showers satisfy 1shower but not 1showeronly")
	}
}

func TestAllCutsSkipContainmentAndFlash(t *testing.T) {
	c := DefaultConfig()
	r := &event.RecoInteraction{
		InteractionCore: event.InteractionCore{IsFiducial: true, IsContained: false},
		FlashTime:       50, // far out of time
	}
	el := event.RecoParticle{
		ParticleCore: event.ParticleCore{PID: event.Electron, IsPrimary: true},
		CaloKE:       100,
	}
	r.Particles = []event.RecoParticle{el, el}
	if !c.All2E(r) {
		t.Fatal("benchmarking 2e cut must ignore containment and flash")
	}
	if c.All2EBNB(r) {
		t.Fatal("beam-gated 2e cut must enforce the full preselection")
	}
}

func TestDiphotonKinematics(t *testing.T) {
	c := DefaultConfig()
	// Two photons at right angles.
	a := shower(event.Photon, 100, event.Vector3{Z: 1})
	b := shower(event.Photon, 80, event.Vector3{X: 1})
	obj := interactionWith(true, a, b)

	if got := c.OpeningAngleEE(obj); math.Abs(got-math.Pi/2) > 1e-9 {
		t.Fatalf("diphoton opening angle: got=%f", got)
	}
	if got := c.LeadingShowerEnergy(obj); got != 100 {
		t.Fatalf("leading shower energy: got=%f", got)
	}
	if got := c.SubleadingShowerEnergy(obj); got != 80 {
		t.Fatalf("subleading shower energy: got=%f", got)
	}
	want := math.Sqrt(2 * 100 * 80)
	if got := c.InvariantMass(obj); math.Abs(got-want) > 1e-9 {
		t.Fatalf("diphoton invariant mass: got=%f want=%f", got, want)
	}
	if got := c.VisibleEnergyEE(obj); math.Abs(got-0.180) > 1e-12 {
		t.Fatalf("visible shower energy: got=%f", got)
	}
	if got, want := c.NShowers(obj), 2.0; got != want {
		t.Fatalf("shower count: got=%f", got)
	}
	if got := c.NPhotons(obj); got != 2 {
		t.Fatalf("photon count: got=%f", got)
	}
	if got := c.NElectrons(obj); got != 0 {
		t.Fatalf("electron count: got=%f", got)
	}
}

func TestSingleShowerDegradesToNaN(t *testing.T) {
	c := DefaultConfig()
	obj := interactionWith(true, shower(event.Photon, 100, event.Vector3{Z: 1}))
	for name, got := range map[string]float64{
		"opening angle":     c.OpeningAngleEE(obj),
		"subleading energy": c.SubleadingShowerEnergy(obj),
		"invariant mass":    c.InvariantMass(obj),
	} {
		if !math.IsNaN(got) {
			t.Fatalf("%s with one shower must be NaN, got=%f", name, got)
		}
	}
	if got := c.LeadingShowerEnergy(obj); got != 100 {
		t.Fatalf("leading shower energy must resolve, got=%f", got)
	}
}

func TestCategoryMuonsSharedCascade(t *testing.T) {
	c := DefaultConfig()
	mu := event.TruthParticle{
		ParticleCore: event.ParticleCore{PID: event.Muon, IsPrimary: true},
		EnergyInit:   700,
	}
	pr := mu
	pr.PID = event.Proton
	obj := &event.TruthInteraction{
		InteractionCore: event.InteractionCore{IsFiducial: true, IsContained: true},
		NuID:            0,
		Particles:       []event.TruthParticle{mu, pr},
	}
	if got := c.CategoryMuons(obj); got != 0 {
		t.Fatalf("1mu1p signal via shared cascade: got=%f", got)
	}
}
