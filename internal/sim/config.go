package sim

import (
	"errors"
	"fmt"

	"ecosim/internal/ecology"
)

// Fixed defaults, declared as constants for reproducibility. Identical
// configs always produce identical series.
const (
	DefaultRelTol   = 1e-6
	DefaultAbsTol   = 1e-9
	DefaultMaxSteps = 1_000_000
)

// ErrInvalidConfig flags a configuration rejected before any integration.
var ErrInvalidConfig = errors.New("sim: invalid configuration")

// Config fully determines a simulation; there is no hidden state.
type Config struct {
	Rates           ecology.Rates `yaml:"rates"`
	InitialPrey     float64       `yaml:"initial_prey"`
	InitialPredator float64       `yaml:"initial_predator"`
	Duration        float64       `yaml:"duration"`
	Steps           int           `yaml:"steps"`

	// Zero values fall back to the package defaults.
	RelTol   float64 `yaml:"rel_tol,omitempty"`
	AbsTol   float64 `yaml:"abs_tol,omitempty"`
	MaxSteps int     `yaml:"max_steps,omitempty"`
}

// DefaultConfig is the reference "balanced forest" run: 40 prey, 9
// predators, 200 time units sampled at 1000 points.
func DefaultConfig() Config {
	return Config{
		Rates:           ecology.DefaultRates(),
		InitialPrey:     40,
		InitialPredator: 9,
		Duration:        200,
		Steps:           1000,
	}
}

func (c Config) Validate() error {
	if c.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %g", ErrInvalidConfig, c.Duration)
	}
	if c.Steps < 2 {
		return fmt.Errorf("%w: steps must be at least 2, got %d", ErrInvalidConfig, c.Steps)
	}
	if c.InitialPrey < 0 || c.InitialPredator < 0 {
		return fmt.Errorf("%w: initial populations must be non-negative, got prey=%g predator=%g",
			ErrInvalidConfig, c.InitialPrey, c.InitialPredator)
	}
	r := c.Rates
	if r.PreyGrowth < 0 || r.PredationRate < 0 || r.PredatorGrowth < 0 || r.PredatorDeath < 0 {
		return fmt.Errorf("%w: rate parameters must be non-negative, got %+v", ErrInvalidConfig, r)
	}
	if c.RelTol < 0 || c.AbsTol < 0 {
		return fmt.Errorf("%w: tolerances must be non-negative", ErrInvalidConfig)
	}
	if c.MaxSteps < 0 {
		return fmt.Errorf("%w: max steps must be non-negative", ErrInvalidConfig)
	}
	return nil
}

func (c Config) relTol() float64 {
	if c.RelTol == 0 {
		return DefaultRelTol
	}
	return c.RelTol
}

func (c Config) absTol() float64 {
	if c.AbsTol == 0 {
		return DefaultAbsTol
	}
	return c.AbsTol
}

func (c Config) maxSteps() int {
	if c.MaxSteps == 0 {
		return DefaultMaxSteps
	}
	return c.MaxSteps
}
