package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecosim/internal/sim"
)

func TestConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := sim.DefaultConfig()
	cfg.InitialPrey = 75
	cfg.Duration = 120
	cfg.Steps = 600

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("duration: 50\n"), 0644))

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 50.0, loaded.Duration)
	assert.Equal(t, 1000, loaded.Steps)
	assert.Equal(t, 40.0, loaded.InitialPrey)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
