package scenario

import (
	"fmt"
	"sort"

	"github.com/samber/lo"

	"ecosim/internal/ecology"
	"ecosim/internal/sim"
)

// Params is the per-scenario knob set: the two initial populations plus
// the four rate constants. Duration and step count are shared across a
// scenario set.
type Params struct {
	InitialPrey     float64       `yaml:"initial_prey"`
	InitialPredator float64       `yaml:"initial_predator"`
	Rates           ecology.Rates `yaml:",inline"`
}

// Set maps unique scenario names to their parameters.
type Set map[string]Params

// Config expands the params into a full simulation config.
func (p Params) Config(duration float64, steps int) sim.Config {
	return sim.Config{
		Rates:           p.Rates,
		InitialPrey:     p.InitialPrey,
		InitialPredator: p.InitialPredator,
		Duration:        duration,
		Steps:           steps,
	}
}

// Run integrates every scenario independently and serially, in
// lexicographic name order so output ordering is reproducible. The batch
// aborts on the first failure; the returned error names the failing
// scenario and wraps the underlying validation or integration error.
// Scenarios share no state, so an aborted batch leaves nothing corrupted.
func Run(set Set, duration float64, steps int) (map[string]*sim.Series, error) {
	names := lo.Keys(set)
	sort.Strings(names)

	results := make(map[string]*sim.Series, len(set))
	for _, name := range names {
		series, err := sim.Simulate(set[name].Config(duration, steps))
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", name, err)
		}
		results[name] = series
	}
	return results, nil
}
