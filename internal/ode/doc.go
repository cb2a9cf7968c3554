// Package ode provides the primitives shared by the simulation engine:
//
//   - [State]: vector representing system state
//   - [System]: interface for ODE right-hand sides (dX/dt = f(X, t))
//   - [Integrator], [AdaptiveIntegrator]: numerical stepper interfaces
//   - [Conserved]: optional invariant hook for fidelity checks
//
// The package holds no numerical code itself; steppers live in
// internal/integrators and the sampling loop in internal/sim.
package ode
