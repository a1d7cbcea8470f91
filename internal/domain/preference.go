package domain

import "strings"

// Preference names a fixed weighting of fuel burn vs. raw distance used to
// bias the optimizer's edge cost.
type Preference string

const (
	PreferenceEco      Preference = "eco"
	PreferenceBalanced Preference = "balanced"
	PreferenceFast     Preference = "fast"
)

// Preferences lists the fixed profile set explored by the alternatives
// search, in evaluation order.
var Preferences = []Preference{PreferenceEco, PreferenceBalanced, PreferenceFast}

// ParsePreference maps a caller-supplied string onto a known profile.
// Unknown or empty values fall back to balanced.
func ParsePreference(s string) Preference {
	switch Preference(strings.ToLower(strings.TrimSpace(s))) {
	case PreferenceEco:
		return PreferenceEco
	case PreferenceFast:
		return PreferenceFast
	default:
		return PreferenceBalanced
	}
}

// Weights returns the (fuelWeight, distanceWeight) pair for the profile.
// The pair always sums to 1.0, which keeps the straight-line heuristic
// admissible for the weighted edge cost.
func (p Preference) Weights() (fuelWeight, distanceWeight float64) {
	switch p {
	case PreferenceEco:
		return 0.7, 0.3
	case PreferenceFast:
		return 0.3, 0.7
	default:
		return 0.5, 0.5
	}
}
