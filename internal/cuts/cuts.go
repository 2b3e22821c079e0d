// Package cuts implements the generic interaction-level selection
// predicates: fiducial volume, containment, flash timing, and truth origin.
package cuts

import (
	"spinesel/internal/event"
)

// NoCut accepts every interaction. It exists so a tree can be filled
// unselected.
func NoCut(obj event.Interaction) bool { return true }

// Neutrino reports whether the truth interaction originates from a neutrino.
func Neutrino(t *event.TruthInteraction) bool { return t.NuID >= 0 }

// Cosmic reports whether the truth interaction is of cosmic origin.
func Cosmic(t *event.TruthInteraction) bool { return !Neutrino(t) }

// FiducialCut reports whether the interaction vertex lies inside the
// fiducial volume.
func FiducialCut(obj event.Interaction) bool { return obj.Core().IsFiducial }

// ContainmentCut reports whether every particle in the interaction is
// contained.
func ContainmentCut(obj event.Interaction) bool { return obj.Core().IsContained }

// FlashWindow is the accepted flash time interval in microseconds relative
// to the trigger.
type FlashWindow struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// DefaultFlashWindow returns the nominal BNB beam gate.
func DefaultFlashWindow() FlashWindow {
	return FlashWindow{Min: 0, Max: 1.6}
}

// FlashCut reports whether the interaction's matched flash falls inside the
// window. Interactions without a valid flash time fail (NaN compares false).
func (w FlashWindow) FlashCut(r *event.RecoInteraction) bool {
	return r.FlashTime >= w.Min && r.FlashTime <= w.Max
}

// FiducialContainmentFlashCut is the standard preselection: fiducial vertex,
// full containment, and an in-time flash.
func (w FlashWindow) FiducialContainmentFlashCut(r *event.RecoInteraction) bool {
	return FiducialCut(r) && ContainmentCut(r) && w.FlashCut(r)
}
