package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"ecosim/internal/sim"
)

// Load reads a single-run configuration from a YAML file. Fields missing
// from the file keep the reference defaults.
func Load(path string) (sim.Config, error) {
	cfg := sim.DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes a configuration to a YAML file.
func Save(path string, cfg sim.Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
