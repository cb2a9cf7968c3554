package ecology

import (
	"math"

	"ecosim/internal/ode"
)

// Rates holds the four Lotka-Volterra rate constants. All are non-negative
// for meaningful ecosystems; the model itself accepts any reals.
type Rates struct {
	PreyGrowth     float64 `yaml:"prey_growth"`     // alpha
	PredationRate  float64 `yaml:"predation_rate"`  // beta
	PredatorGrowth float64 `yaml:"predator_growth"` // delta
	PredatorDeath  float64 `yaml:"predator_death"`  // gamma
}

// DefaultRates are the reference "balanced forest" constants.
func DefaultRates() Rates {
	return Rates{
		PreyGrowth:     0.1,
		PredationRate:  0.02,
		PredatorGrowth: 0.01,
		PredatorDeath:  0.1,
	}
}

// LotkaVolterra implements the classic two-species predator-prey system.
// State: [prey, predator]
// Equations:
//
//	d(prey)/dt     = α·prey − β·prey·predator
//	d(predator)/dt = δ·prey·predator − γ·predator
type LotkaVolterra struct {
	rates Rates
}

func NewLotkaVolterra(rates Rates) *LotkaVolterra {
	return &LotkaVolterra{rates: rates}
}

func (m *LotkaVolterra) Dim() int { return 2 }

func (m *LotkaVolterra) Rates() Rates { return m.rates }

func (m *LotkaVolterra) Derive(x ode.State, _ float64) ode.State {
	prey, predator := x[0], x[1]

	dPrey := m.rates.PreyGrowth*prey - m.rates.PredationRate*prey*predator
	dPredator := m.rates.PredatorGrowth*prey*predator - m.rates.PredatorDeath*predator

	return ode.State{dPrey, dPredator}
}

// Equilibrium returns the nontrivial fixed point (γ/δ, α/β). Starting a
// simulation exactly there keeps both populations constant. Returns NaN
// components when the corresponding rate is zero.
func (m *LotkaVolterra) Equilibrium() (prey, predator float64) {
	return m.rates.PredatorDeath / m.rates.PredatorGrowth,
		m.rates.PreyGrowth / m.rates.PredationRate
}

// Invariant evaluates the conserved quantity
//
//	H = δ·prey − γ·ln(prey) + β·predator − α·ln(predator)
//
// which is constant along exact trajectories. Only defined for positive
// populations.
func (m *LotkaVolterra) Invariant(x ode.State) float64 {
	prey, predator := x[0], x[1]
	return m.rates.PredatorGrowth*prey - m.rates.PredatorDeath*math.Log(prey) +
		m.rates.PredationRate*predator - m.rates.PreyGrowth*math.Log(predator)
}
