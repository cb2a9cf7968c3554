package scenario

import (
	"os"

	"gopkg.in/yaml.v3"
)

// File is the YAML layout for a scenario set. Duration and steps apply to
// every scenario in the file; zero values fall back to the reference
// defaults (200 time units, 1000 samples).
type File struct {
	Duration  float64 `yaml:"duration"`
	Steps     int     `yaml:"steps"`
	Scenarios Set     `yaml:"scenarios"`
}

const (
	DefaultDuration = 200.0
	DefaultSteps    = 1000
)

func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f := &File{
		Duration: DefaultDuration,
		Steps:    DefaultSteps,
	}
	if err := yaml.Unmarshal(data, f); err != nil {
		return nil, err
	}
	return f, nil
}

func Save(path string, f *File) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
