package sim

import (
	"math"

	"ecosim/internal/ecology"
	"ecosim/internal/integrators"
	"ecosim/internal/ode"
)

// Simulate integrates the predator-prey system over [0, cfg.Duration] and
// samples it at cfg.Steps evenly spaced times, endpoints included.
//
// The integrator is adaptive Dormand-Prince RK45: it subdivides the span
// with error-controlled internal steps and fills the requested grid by
// cubic Hermite interpolation over each accepted step, so the sample times
// never depend on where the sub-steps happened to land. Populations are
// not clamped; integration drift may carry them slightly negative.
//
// A config that fails validation is rejected before any computation. If
// the solver exhausts its step budget or its step size underflows, the
// whole run fails with an *ode.StepError; no partial series is returned.
func Simulate(cfg Config) (*Series, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	model := ecology.NewLotkaVolterra(cfg.Rates)
	var integ ode.AdaptiveIntegrator = integrators.NewRK45()

	steps := cfg.Steps
	duration := cfg.Duration
	relTol, absTol := cfg.relTol(), cfg.absTol()
	budget := cfg.maxSteps()

	gridDt := duration / float64(steps-1)
	gridTime := func(i int) float64 { return duration * float64(i) / float64(steps-1) }

	series := newSeries(steps)
	for i := 0; i < steps; i++ {
		series.Time[i] = gridTime(i)
	}

	x := ode.State{cfg.InitialPrey, cfg.InitialPredator}
	series.Prey[0], series.Predator[0] = x[0], x[1]

	t := 0.0
	// Internal steps never exceed the grid spacing, so the cubic Hermite
	// samples stay well inside the solver tolerance; the controller only
	// shrinks from there.
	hMax := math.Min(gridDt, duration/16)
	hMin := 1e-12 * duration
	h := hMax
	eps := 1e-9 * gridDt
	gi := 1
	attempts := 0

	for gi < steps {
		if h > duration-t {
			h = duration - t
		}

		next, k0, kEnd, hNext, errRatio := integ.StepAttempt(model, x, t, h, relTol, absTol)
		attempts++
		if attempts > budget {
			return nil, &ode.StepError{Step: gi, Time: t, Wrapped: ode.ErrBudgetExceeded}
		}

		if errRatio > 1 {
			// Rejected: retry from the same point with the shrunk step.
			if hNext < hMin {
				return nil, &ode.StepError{Step: gi, Time: t, Wrapped: ode.ErrStepTooSmall}
			}
			h = hNext
			continue
		}

		if !next.IsValid() {
			return nil, &ode.StepError{Step: gi, Time: t, Wrapped: ode.ErrInvalidState}
		}

		t1 := t + h
		for gi < steps && series.Time[gi] <= t1+eps {
			tg := series.Time[gi]
			if tg >= t1-eps {
				series.Prey[gi], series.Predator[gi] = next[0], next[1]
			} else {
				p, q := hermite(tg, t, h, x, next, k0, kEnd)
				series.Prey[gi], series.Predator[gi] = p, q
			}
			gi++
		}

		x = next
		t = t1
		h = math.Max(hMin, math.Min(hNext, hMax))
	}

	return series, nil
}

// hermite evaluates the cubic Hermite interpolant over an accepted step
// [t0, t0+dt] with endpoint states x0, x1 and derivatives f0, f1.
func hermite(tg, t0, dt float64, x0, x1, f0, f1 ode.State) (float64, float64) {
	theta := (tg - t0) / dt
	theta = math.Max(0, math.Min(1, theta))
	t2 := theta * theta
	t3 := t2 * theta

	h00 := 2*t3 - 3*t2 + 1
	h10 := t3 - 2*t2 + theta
	h01 := -2*t3 + 3*t2
	h11 := t3 - t2

	prey := h00*x0[0] + h10*dt*f0[0] + h01*x1[0] + h11*dt*f1[0]
	predator := h00*x0[1] + h10*dt*f0[1] + h01*x1[1] + h11*dt*f1[1]
	return prey, predator
}
