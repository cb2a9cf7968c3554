package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecosim/internal/ecology"
	"ecosim/internal/sim"
)

func TestRun_Presets(t *testing.T) {
	results, err := Run(Presets, DefaultDuration, DefaultSteps)
	require.NoError(t, err)
	require.Len(t, results, len(Presets))

	for name, series := range results {
		assert.Equal(t, DefaultSteps, series.Len(), "scenario %q", name)
		assert.Equal(t, 0.0, series.Time[0], "scenario %q", name)
		assert.Equal(t, DefaultDuration, series.Time[series.Len()-1], "scenario %q", name)
	}
}

func TestRun_AbortsOnFirstFailure(t *testing.T) {
	set := Set{
		"valid": {
			InitialPrey: 40, InitialPredator: 9,
			Rates: ecology.DefaultRates(),
		},
		"broken": {
			InitialPrey: -5, InitialPredator: 9,
			Rates: ecology.DefaultRates(),
		},
	}

	results, err := Run(set, DefaultDuration, DefaultSteps)

	require.Error(t, err)
	assert.Nil(t, results)
	assert.ErrorIs(t, err, sim.ErrInvalidConfig)
	assert.Contains(t, err.Error(), `scenario "broken"`)
}

func TestRun_IndependentRuns(t *testing.T) {
	set := Set{
		"a": Presets["balanced-forest"],
		"b": Presets["balanced-forest"],
	}

	results, err := Run(set, DefaultDuration, DefaultSteps)
	require.NoError(t, err)

	// Identical configs produce identical series from independent runs.
	require.Equal(t, results["a"].Len(), results["b"].Len())
	for i := 0; i < results["a"].Len(); i++ {
		if results["a"].Prey[i] != results["b"].Prey[i] {
			t.Fatalf("runs with identical configs diverged at sample %d", i)
		}
	}

	// And the maps hold distinct backing arrays.
	assert.NotSame(t, &results["a"].Prey[0], &results["b"].Prey[0])
}

func TestFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenarios.yaml")

	original := &File{
		Duration: 150,
		Steps:    500,
		Scenarios: Set{
			"test": {
				InitialPrey: 25, InitialPredator: 10,
				Rates: ecology.Rates{PreyGrowth: 0.1, PredationRate: 0.02, PredatorGrowth: 0.01, PredatorDeath: 0.1},
			},
		},
	}

	require.NoError(t, Save(path, original))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	raw := "scenarios:\n  quiet:\n    initial_prey: 10\n    initial_predator: 2\n    prey_growth: 0.1\n    predation_rate: 0.02\n    predator_growth: 0.01\n    predator_death: 0.1\n"
	require.NoError(t, os.WriteFile(path, []byte(raw), 0644))

	loaded, err := Load(path)
	require.NoError(t, err)

	// A file without duration/steps falls back to the reference values.
	assert.Equal(t, DefaultDuration, loaded.Duration)
	assert.Equal(t, DefaultSteps, loaded.Steps)
	assert.Equal(t, 10.0, loaded.Scenarios["quiet"].InitialPrey)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestPresets_AllValid(t *testing.T) {
	for name, p := range Presets {
		err := p.Config(DefaultDuration, DefaultSteps).Validate()
		assert.NoError(t, err, "preset %q", name)
	}
}
