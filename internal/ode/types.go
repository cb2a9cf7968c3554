package ode

import "math"

type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// System is an autonomous-friendly ODE right-hand side: dX/dt = f(X, t).
type System interface {
	Derive(x State, t float64) State
	Dim() int
}

type Integrator interface {
	Step(sys System, x State, t, dt float64) State
}

// AdaptiveIntegrator extends Integrator with error-controlled stepping.
// StepAttempt returns the candidate next state, the derivatives at both
// endpoints of the step (for dense output), the suggested next step size,
// and the ratio of estimated local error to tolerance. The caller accepts
// the step only when errRatio <= 1.
type AdaptiveIntegrator interface {
	Integrator
	StepAttempt(sys System, x State, t, dt, relTol, absTol float64) (next State, k0, k1 State, dtNext, errRatio float64)
}

// Conserved is implemented by systems with a known invariant along
// trajectories, used to check integration fidelity.
type Conserved interface {
	Invariant(x State) float64
}
