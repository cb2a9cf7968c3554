package scenario

import "ecosim/internal/ecology"

// Presets mirror the reference comparison study: four parameter sets that
// span stable, prey-heavy, predator-heavy, and near-critical regimes.
var Presets = Set{
	"balanced-forest": {
		InitialPrey: 40, InitialPredator: 9,
		Rates: ecology.Rates{PreyGrowth: 0.1, PredationRate: 0.02, PredatorGrowth: 0.01, PredatorDeath: 0.1},
	},
	"rabbit-paradise": {
		InitialPrey: 100, InitialPredator: 5,
		Rates: ecology.Rates{PreyGrowth: 0.15, PredationRate: 0.01, PredatorGrowth: 0.005, PredatorDeath: 0.1},
	},
	"fox-dominance": {
		InitialPrey: 20, InitialPredator: 20,
		Rates: ecology.Rates{PreyGrowth: 0.08, PredationRate: 0.03, PredatorGrowth: 0.02, PredatorDeath: 0.08},
	},
	"fragile-balance": {
		InitialPrey: 30, InitialPredator: 12,
		Rates: ecology.Rates{PreyGrowth: 0.12, PredationRate: 0.025, PredatorGrowth: 0.015, PredatorDeath: 0.12},
	},
}

// ListPresets returns the preset names, unsorted.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
