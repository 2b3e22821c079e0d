package spinesel

import (
	"fmt"

	"spinesel/internal/catalog"
	"spinesel/internal/cuts"
	"spinesel/internal/electron2025"
	"spinesel/internal/event"
	"spinesel/internal/muon2024"
	"spinesel/internal/nue2024"
	"spinesel/internal/vars"
)

// BuildCatalog constructs a catalog holding every built-in cut and variable,
// closed over the given configuration. Names are namespaced by package,
// e.g. "muon2024.all_1mu1p_cut" or "vars.visible_energy".
func BuildCatalog(cfg Config) (*catalog.Catalog, error) {
	opts := vars.DefaultOptions()
	switch cfg.PIDStrategy {
	case "", "nominal":
	case "custom":
		opts.Gate.Particle.Strategy = event.PIDCustom
	default:
		return nil, fmt.Errorf("unknown pid strategy: %s", cfg.PIDStrategy)
	}
	if cfg.Thresholds != nil {
		opts.Gate.Thresholds = *cfg.Thresholds
	}
	if cfg.BeamAxis != nil {
		opts.Axis = cfg.BeamAxis.Unit()
	}
	window := cuts.DefaultFlashWindow()
	if cfg.FlashWindow != nil {
		window = *cfg.FlashWindow
	}

	muCfg := muon2024.Config{Selection: opts, Window: window}
	nueCfg := nue2024.Config{Selection: opts, Window: window}
	eeCfg := electron2025.Config{Selection: opts, Window: window, Muon: muCfg}

	c := catalog.New()
	registerCuts(c, window)
	registerVars(c, opts)
	registerMuon2024(c, muCfg)
	registerNue2024(c, nueCfg)
	registerElectron2025(c, eeCfg)
	return c, nil
}

// both registers an interaction-generic variable under one name for the
// reco and truth kinds.
func both(c *catalog.Catalog, name string, fn func(event.Interaction) float64) {
	c.MustRegisterRecoVar(name, func(r *event.RecoInteraction) float64 { return fn(r) })
	c.MustRegisterTruthVar(name, func(t *event.TruthInteraction) float64 { return fn(t) })
}

func bothCut(c *catalog.Catalog, name string, fn func(event.Interaction) bool) {
	c.MustRegisterRecoCut(name, func(r *event.RecoInteraction) bool { return fn(r) })
	c.MustRegisterTruthCut(name, func(t *event.TruthInteraction) bool { return fn(t) })
}

func registerCuts(c *catalog.Catalog, window cuts.FlashWindow) {
	bothCut(c, "cuts.no_cut", cuts.NoCut)
	bothCut(c, "cuts.fiducial_cut", cuts.FiducialCut)
	bothCut(c, "cuts.containment_cut", cuts.ContainmentCut)
	c.MustRegisterTruthCut("cuts.neutrino", cuts.Neutrino)
	c.MustRegisterTruthCut("cuts.cosmic", cuts.Cosmic)
	c.MustRegisterRecoCut("cuts.flash_cut", window.FlashCut)
	c.MustRegisterRecoCut("cuts.fiducial_containment_flash_cut", window.FiducialContainmentFlashCut)
}

func registerVars(c *catalog.Catalog, opts vars.Options) {
	both(c, "vars.vertex_x", vars.VertexX)
	both(c, "vars.vertex_y", vars.VertexY)
	both(c, "vars.vertex_z", vars.VertexZ)
	both(c, "vars.visible_energy", opts.VisibleEnergy)
	both(c, "vars.leading_muon_ke", opts.LeadingMuonKE)
	both(c, "vars.leading_proton_ke", opts.LeadingProtonKE)
	both(c, "vars.leading_muon_end_x", opts.LeadingMuonEndX)
	both(c, "vars.leading_muon_end_y", opts.LeadingMuonEndY)
	both(c, "vars.leading_muon_end_z", opts.LeadingMuonEndZ)
	both(c, "vars.leading_proton_end_x", opts.LeadingProtonEndX)
	both(c, "vars.leading_proton_end_y", opts.LeadingProtonEndY)
	both(c, "vars.leading_proton_end_z", opts.LeadingProtonEndZ)
	both(c, "vars.leading_muon_length", opts.LeadingMuonLength)
	both(c, "vars.leading_muon_pt", opts.LeadingMuonPT)
	both(c, "vars.leading_proton_pt", opts.LeadingProtonPT)
	both(c, "vars.muon_polar_angle", opts.MuonPolarAngle)
	both(c, "vars.muon_azimuthal_angle", opts.MuonAzimuthalAngle)
	both(c, "vars.interaction_pt", opts.InteractionPT)
	both(c, "vars.phiT", opts.PhiT)
	both(c, "vars.alphaT", opts.AlphaT)

	c.MustRegisterRecoVar("vars.flash_time", vars.FlashTime)
	c.MustRegisterRecoVar("vars.flash_total_pe", vars.FlashTotalPE)
	c.MustRegisterRecoVar("vars.flash_hypothesis_pe", vars.FlashHypothesisPE)
	c.MustRegisterRecoVar("vars.leading_muon_softmax", opts.LeadingMuonSoftmax)
	c.MustRegisterRecoVar("vars.leading_proton_softmax", opts.LeadingProtonSoftmax)
	c.MustRegisterRecoVar("vars.leading_muon_mip_softmax", opts.LeadingMuonMIPSoftmax)
	c.MustRegisterRecoVar("vars.leading_muon_pion_softmax", opts.LeadingMuonPionSoftmax)
	c.MustRegisterRecoVar("vars.leading_proton_hadron_softmax", opts.LeadingProtonHadronSoftmax)

	c.MustRegisterTruthVar("vars.neutrino_id", vars.NeutrinoID)
	c.MustRegisterTruthVar("vars.true_neutrino_energy", vars.TrueNeutrinoEnergy)
	c.MustRegisterTruthVar("vars.true_neutrino_baseline", vars.TrueNeutrinoBaseline)
	c.MustRegisterTruthVar("vars.true_neutrino_pdg", vars.TrueNeutrinoPDG)
	c.MustRegisterTruthVar("vars.true_neutrino_cc", vars.TrueNeutrinoCC)
	c.MustRegisterTruthVar("vars.interaction_mode", vars.InteractionMode)
}

func registerMuon2024(c *catalog.Catalog, cfg muon2024.Config) {
	bothCut(c, "muon2024.topological_1mu1p_cut", cfg.Topological1Mu1P)
	bothCut(c, "muon2024.topological_1muNp_cut", cfg.Topological1MuNP)
	bothCut(c, "muon2024.topological_1muX_cut", cfg.Topological1MuX)
	c.MustRegisterRecoCut("muon2024.all_1mu1p_cut", cfg.All1Mu1P)
	c.MustRegisterRecoCut("muon2024.all_1muNp_cut", cfg.All1MuNP)
	c.MustRegisterRecoCut("muon2024.all_1muX_cut", cfg.All1MuX)
	c.MustRegisterTruthCut("muon2024.signal_1mu1p", cfg.Signal1Mu1P)
	c.MustRegisterTruthCut("muon2024.nonsignal_1mu1p", cfg.Nonsignal1Mu1P)
	c.MustRegisterTruthCut("muon2024.signal_1muNp", cfg.Signal1MuNP)
	c.MustRegisterTruthCut("muon2024.nonsignal_1muNp", cfg.Nonsignal1MuNP)
	c.MustRegisterTruthCut("muon2024.signal_1muX", cfg.Signal1MuX)
	c.MustRegisterTruthCut("muon2024.nonsignal_1muX", cfg.Nonsignal1MuX)
	c.MustRegisterTruthVar("muon2024.category", cfg.Category)
	both(c, "muon2024.opening_angle", cfg.OpeningAngle)
}

func registerNue2024(c *catalog.Catalog, cfg nue2024.Config) {
	bothCut(c, "nue2024.topological_1e1p_cut", cfg.Topological1E1P)
	bothCut(c, "nue2024.topological_1eNp_cut", cfg.Topological1ENP)
	bothCut(c, "nue2024.topological_1eX_cut", cfg.Topological1EX)
	c.MustRegisterRecoCut("nue2024.all_1e1p_cut", cfg.All1E1P)
	c.MustRegisterRecoCut("nue2024.all_1eNp_cut", cfg.All1ENP)
	c.MustRegisterRecoCut("nue2024.all_1eX_cut", cfg.All1EX)
	c.MustRegisterTruthCut("nue2024.signal_1e1p", cfg.Signal1E1P)
	c.MustRegisterTruthCut("nue2024.nonsignal_1e1p", cfg.Nonsignal1E1P)
	c.MustRegisterTruthCut("nue2024.signal_1eNp", cfg.Signal1ENP)
	c.MustRegisterTruthCut("nue2024.nonsignal_1eNp", cfg.Nonsignal1ENP)
	c.MustRegisterTruthCut("nue2024.signal_1eX", cfg.Signal1EX)
	c.MustRegisterTruthCut("nue2024.nonsignal_1eX", cfg.Nonsignal1EX)
	c.MustRegisterTruthVar("nue2024.category", cfg.Category)
	c.MustRegisterTruthVar("nue2024.category_topology", cfg.CategoryTopology)
	both(c, "nue2024.opening_angle", cfg.OpeningAngle)
	both(c, "nue2024.delta_pt", cfg.DeltaPT)
	both(c, "nue2024.delta_alphaT", cfg.DeltaAlphaT)
	both(c, "nue2024.delta_phiT", cfg.DeltaPhiT)
	both(c, "nue2024.electron_transverse_momentum_mag", cfg.ElectronTransverseMomentumMag)
	both(c, "nue2024.proton_transverse_momentum_mag", cfg.ProtonTransverseMomentumMag)
	both(c, "nue2024.leading_electron_beam_angle", cfg.LeadingElectronBeamAngle)
	both(c, "nue2024.leading_proton_beam_angle", cfg.LeadingProtonBeamAngle)
	both(c, "nue2024.leading_electron_beam_polar_angle", cfg.LeadingElectronBeamPolarAngle)
	both(c, "nue2024.leading_proton_beam_polar_angle", cfg.LeadingProtonBeamPolarAngle)
	both(c, "nue2024.leading_electron_beam_azimuthal_angle", cfg.LeadingElectronBeamAzimuthalAngle)
	both(c, "nue2024.leading_proton_beam_azimuthal_angle", cfg.LeadingProtonBeamAzimuthalAngle)
	c.MustRegisterRecoVar("nue2024.leading_electron_softmax", cfg.LeadingElectronSoftmax)
	c.MustRegisterRecoVar("nue2024.leading_proton_softmax", cfg.LeadingProtonSoftmax)
}

func registerElectron2025(c *catalog.Catalog, cfg electron2025.Config) {
	bothCut(c, "electron2025.topological_2e_cut", cfg.Topological2E)
	bothCut(c, "electron2025.topological_1e1gamma_cut", cfg.Topological1E1Gamma)
	bothCut(c, "electron2025.topological_1eNgamma_cut", cfg.Topological1ENGamma)
	bothCut(c, "electron2025.topological_2gamma_cut", cfg.Topological2Gamma)
	bothCut(c, "electron2025.topological_gt2e_cut", cfg.TopologicalGT2E)
	bothCut(c, "electron2025.topological_gt2gamma_cut", cfg.TopologicalGT2Gamma)
	bothCut(c, "electron2025.topological_1shower_cut", cfg.Topological1Shower)
	bothCut(c, "electron2025.topological_1showeronly_cut", cfg.Topological1ShowerOnly)
	c.MustRegisterRecoCut("electron2025.all_2e_cut", cfg.All2E)
	c.MustRegisterRecoCut("electron2025.all_2e_cut_bnb", cfg.All2EBNB)
	c.MustRegisterRecoCut("electron2025.all_1e1gamma_cut", cfg.All1E1Gamma)
	c.MustRegisterRecoCut("electron2025.all_1eNgamma_cut", cfg.All1ENGamma)
	c.MustRegisterRecoCut("electron2025.all_2gamma_cut", cfg.All2Gamma)
	c.MustRegisterRecoCut("electron2025.all_gt2e_cut", cfg.AllGT2E)
	c.MustRegisterRecoCut("electron2025.all_gt2gamma_cut", cfg.AllGT2Gamma)
	c.MustRegisterRecoCut("electron2025.all_1shower_cut", cfg.All1Shower)
	c.MustRegisterRecoCut("electron2025.all_1showeronly_cut", cfg.All1ShowerOnly)
	c.MustRegisterTruthCut("electron2025.signal_1mu1p", cfg.Muon.Signal1Mu1P)
	c.MustRegisterTruthCut("electron2025.nonsignal_1mu1p", cfg.Muon.Nonsignal1Mu1P)
	c.MustRegisterTruthCut("electron2025.signal_1muNp", cfg.Muon.Signal1MuNP)
	c.MustRegisterTruthCut("electron2025.nonsignal_1muNp", cfg.Muon.Nonsignal1MuNP)
	c.MustRegisterTruthCut("electron2025.signal_1muX", cfg.Muon.Signal1MuX)
	c.MustRegisterTruthCut("electron2025.nonsignal_1muX", cfg.Muon.Nonsignal1MuX)
	c.MustRegisterTruthVar("electron2025.category", cfg.Category)
	c.MustRegisterTruthVar("electron2025.category_muons", cfg.CategoryMuons)
	both(c, "electron2025.opening_angle", cfg.OpeningAngle)
	both(c, "electron2025.opening_angle_ee", cfg.OpeningAngleEE)
	both(c, "electron2025.visible_energy_ee", cfg.VisibleEnergyEE)
	both(c, "electron2025.leading_shower_energy", cfg.LeadingShowerEnergy)
	both(c, "electron2025.subleading_shower_energy", cfg.SubleadingShowerEnergy)
	both(c, "electron2025.invariant_mass", cfg.InvariantMass)
	both(c, "electron2025.n_showers", cfg.NShowers)
	both(c, "electron2025.n_electrons", cfg.NElectrons)
	both(c, "electron2025.n_photons", cfg.NPhotons)
	both(c, "electron2025.leading_shower_px", cfg.LeadingShowerPx)
	both(c, "electron2025.leading_shower_py", cfg.LeadingShowerPy)
	both(c, "electron2025.leading_shower_pz", cfg.LeadingShowerPz)
	both(c, "electron2025.subleading_shower_px", cfg.SubleadingShowerPx)
	both(c, "electron2025.subleading_shower_py", cfg.SubleadingShowerPy)
	both(c, "electron2025.subleading_shower_pz", cfg.SubleadingShowerPz)
	both(c, "electron2025.leading_shower_dir_x", cfg.LeadingShowerDirX)
	both(c, "electron2025.leading_shower_dir_y", cfg.LeadingShowerDirY)
	both(c, "electron2025.leading_shower_dir_z", cfg.LeadingShowerDirZ)
	both(c, "electron2025.subleading_shower_dir_x", cfg.SubleadingShowerDirX)
	both(c, "electron2025.subleading_shower_dir_y", cfg.SubleadingShowerDirY)
	both(c, "electron2025.subleading_shower_dir_z", cfg.SubleadingShowerDirZ)
	both(c, "electron2025.leading_shower_iou", cfg.LeadingShowerIoU)
	both(c, "electron2025.subleading_shower_iou", cfg.SubleadingShowerIoU)
	c.MustRegisterRecoVar("electron2025.leading_shower_primary_softmax", cfg.LeadingShowerPrimarySoftmax)
	c.MustRegisterRecoVar("electron2025.leading_shower_secondary_softmax", cfg.LeadingShowerSecondarySoftmax)
	c.MustRegisterRecoVar("electron2025.leading_shower_electron_softmax", cfg.LeadingShowerElectronSoftmax)
	c.MustRegisterRecoVar("electron2025.leading_shower_photon_softmax", cfg.LeadingShowerPhotonSoftmax)
	c.MustRegisterRecoVar("electron2025.subleading_shower_primary_softmax", cfg.SubleadingShowerPrimarySoftmax)
	c.MustRegisterRecoVar("electron2025.subleading_shower_secondary_softmax", cfg.SubleadingShowerSecondarySoftmax)
	c.MustRegisterRecoVar("electron2025.subleading_shower_electron_softmax", cfg.SubleadingShowerElectronSoftmax)
	c.MustRegisterRecoVar("electron2025.subleading_shower_photon_softmax", cfg.SubleadingShowerPhotonSoftmax)
}
