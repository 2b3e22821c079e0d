package nue2024

import (
	"math"
	"testing"

	"spinesel/internal/cuts"
	"spinesel/internal/event"
)

func truthInteraction(nuID int64, fiducial, contained bool, pids ...int) *event.TruthInteraction {
	t := &event.TruthInteraction{
		InteractionCore: event.InteractionCore{IsFiducial: fiducial, IsContained: contained},
		NuID:            nuID,
	}
	for _, pid := range pids {
		t.Particles = append(t.Particles, event.TruthParticle{
			ParticleCore: event.ParticleCore{PID: pid, IsPrimary: true},
			EnergyInit:   700,
		})
	}
	return t
}

func TestTopologies(t *testing.T) {
	c := DefaultConfig()
	obj := truthInteraction(0, true, true, event.Electron, event.Proton)
	if !c.Topological1E1P(obj) || !c.Topological1ENP(obj) || !c.Topological1EX(obj) {
		t.Fatal("1e1p must satisfy all three electron topologies")
	}
	obj = truthInteraction(0, true, true, event.Electron, event.Proton, event.Proton)
	if c.Topological1E1P(obj) || !c.Topological1ENP(obj) {
		t.Fatal("1e2p is 1eNp but not 1e1p")
	}
	obj = truthInteraction(0, true, true, event.Muon, event.Proton)
	if c.Topological1EX(obj) {
		t.Fatal("muon final state must fail the electron topologies")
	}
}

func TestCategoryCascade(t *testing.T) {
	c := DefaultConfig()
	cases := []struct {
		name string
		obj  *event.TruthInteraction
		want float64
	}{
		{"1e1p signal", truthInteraction(0, true, true, event.Electron, event.Proton), 0},
		{"1e1p escaping", truthInteraction(0, false, true, event.Electron, event.Proton), 1},
		{"1e2p signal", truthInteraction(0, true, true, event.Electron, event.Proton, event.Proton), 2},
		{"1e1pi signal", truthInteraction(0, true, true, event.Electron, event.Pion), 4},
		{"other neutrino", truthInteraction(0, true, true, event.Muon, event.Proton), 6},
		{"cosmic", truthInteraction(-1, true, true, event.Electron, event.Proton), 7},
	}
	for _, tc := range cases {
		if got := c.Category(tc.obj); got != tc.want {
			t.Fatalf("%s: got=%f want=%f", tc.name, got, tc.want)
		}
		if got := c.CategoryTopology(tc.obj); got != tc.want {
			t.Fatalf("%s topology: got=%f want=%f", tc.name, got, tc.want)
		}
	}
}

// enumerateFinalStates calls fn with every per-species multiplicity vector
// up to the given bound per species.
func enumerateFinalStates(bound int, fn func(pids []int)) {
	var counts [event.NumSpecies]int
	var next func(species int)
	next = func(species int) {
		if species == event.NumSpecies {
			var pids []int
			for pid, n := range counts {
				for j := 0; j < n; j++ {
					pids = append(pids, pid)
				}
			}
			fn(pids)
			return
		}
		for n := 0; n <= bound; n++ {
			counts[species] = n
			next(species + 1)
		}
	}
	next(0)
}

func TestCategoryFirstMatchingBranch(t *testing.T) {
	c := DefaultConfig()
	steps := []struct {
		pass func(*event.TruthInteraction) bool
		code float64
	}{
		{c.Signal1E1P, 0},
		{c.Nonsignal1E1P, 1},
		{c.Signal1ENP, 2},
		{c.Nonsignal1ENP, 3},
		{c.Signal1EX, 4},
		{c.Nonsignal1EX, 5},
		{cuts.Neutrino, 6},
	}
	for _, nuID := range []int64{-1, 0} {
		for _, fiducial := range []bool{false, true} {
			for _, contained := range []bool{false, true} {
				enumerateFinalStates(2, func(pids []int) {
					obj := truthInteraction(nuID, fiducial, contained, pids...)
					// The signal and out-of-volume forms of one topology
					// are mutually exclusive.
					for i := 0; i < 6; i += 2 {
						if steps[i].pass(obj) && steps[i+1].pass(obj) {
							t.Fatalf("pids=%v nu=%d fid=%v cont=%v: codes %v and %v both fire",
								pids, nuID, fiducial, contained, steps[i].code, steps[i+1].code)
						}
					}
					want := 7.0
					for _, s := range steps {
						if s.pass(obj) {
							want = s.code
							break
						}
					}
					if got := c.Category(obj); got != want {
						t.Fatalf("pids=%v nu=%d fid=%v cont=%v: got=%f want=%f",
							pids, nuID, fiducial, contained, got, want)
					}
				})
			}
		}
	}
}

func TestBeamAngleOnAxis(t *testing.T) {
	// Particle at the origin pointing straight at the target: zero angle.
	dir := Target.Unit()
	p := &event.TruthParticle{
		ParticleCore: event.ParticleCore{StartDir: dir},
	}
	if got := BeamAngle(p); math.Abs(got) > 1e-9 {
		t.Fatalf("on-axis beam angle: got=%f", got)
	}
}

func TestBeamDirectionVariants(t *testing.T) {
	// Vertex at the origin: the vertex-variant direction is the unit target
	// vector itself.
	obj := &event.TruthInteraction{}
	d := Target.Unit()
	if got := BeamPolarAngle(obj); math.Abs(got-math.Acos(d.Z)) > 1e-12 {
		t.Fatalf("beam polar angle: got=%f", got)
	}
	want := math.Acos(d.X / math.Hypot(d.X, d.Y))
	if got := BeamAzimuthalAngle(obj); math.Abs(got-want) > 1e-12 {
		t.Fatalf("beam azimuthal angle: got=%f", got)
	}
}

func TestTransverseMomentumSumHonorsSpecies(t *testing.T) {
	c := DefaultConfig()
	el := event.TruthParticle{
		ParticleCore: event.ParticleCore{
			PID: event.Electron, IsPrimary: true,
			Momentum: event.Vector3{X: 100},
		},
		EnergyInit: 700,
	}
	pr := el
	pr.PID = event.Proton
	pr.Momentum = event.Vector3{Y: 50}
	obj := &event.TruthInteraction{Particles: []event.TruthParticle{el, pr}}

	eT, ok := c.TransverseMomentumSum(obj, event.Electron)
	if !ok {
		t.Fatal("electron sum must resolve")
	}
	pT, ok := c.TransverseMomentumSum(obj, event.Proton)
	if !ok {
		t.Fatal("proton sum must resolve")
	}
	if eT.Mag() == pT.Mag() {
		t.Fatal("species must be summed separately")
	}
	if _, ok := c.TransverseMomentumSum(obj, event.Muon); ok {
		t.Fatal("absent species must yield ok=false")
	}
}

func TestDeltaVariablesDegradeToNaN(t *testing.T) {
	c := DefaultConfig()
	el := event.TruthParticle{
		ParticleCore: event.ParticleCore{
			PID: event.Electron, IsPrimary: true,
			Momentum: event.Vector3{X: 100},
		},
		EnergyInit: 700,
	}
	obj := &event.TruthInteraction{Particles: []event.TruthParticle{el}}
	for name, got := range map[string]float64{
		"delta pT":     c.DeltaPT(obj),
		"delta alphaT": c.DeltaAlphaT(obj),
		"delta phiT":   c.DeltaPhiT(obj),
		"proton pT":    c.ProtonTransverseMomentumMag(obj),
	} {
		if !math.IsNaN(got) {
			t.Fatalf("%s without proton must be NaN, got=%f", name, got)
		}
	}
	if got := c.ElectronTransverseMomentumMag(obj); math.IsNaN(got) {
		t.Fatal("electron pT must resolve")
	}
}

func TestLeadingBeamVariables(t *testing.T) {
	c := DefaultConfig()
	el := event.TruthParticle{
		ParticleCore: event.ParticleCore{
			PID: event.Electron, IsPrimary: true,
			StartDir: Target.Unit(),
		},
		EnergyInit: 700,
	}
	obj := &event.TruthInteraction{Particles: []event.TruthParticle{el}}
	if got := c.LeadingElectronBeamAngle(obj); math.Abs(got) > 1e-9 {
		t.Fatalf("leading electron beam angle: got=%f", got)
	}
	if got := c.LeadingProtonBeamAngle(obj); !math.IsNaN(got) {
		t.Fatalf("missing proton beam angle must be NaN, got=%f", got)
	}
	if got := c.LeadingElectronBeamPolarAngle(obj); math.IsNaN(got) {
		t.Fatal("leading electron beam polar angle must resolve")
	}
}
