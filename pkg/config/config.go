// Package config loads simulation scenario presets from YAML files, so a
// recorded workload can be re-run without retyping the eight positional
// parameters.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/MajorDroolz/schedsim/pkg/sim"
)

// Scenario mirrors sim.Params in file form.
type Scenario struct {
	Processes int     `yaml:"processes"`
	CPUBound  int     `yaml:"cpu_bound"`
	Seed      int64   `yaml:"seed"`
	Lambda    float64 `yaml:"lambda"`
	Threshold int     `yaml:"threshold"`
	TCS       int     `yaml:"t_cs"`
	Alpha     float32 `yaml:"alpha"`
	TSlice    int     `yaml:"t_slice"`
	TimeLimit int     `yaml:"time_limit,omitempty"`
}

// Params converts the scenario to simulation parameters.
func (s Scenario) Params() sim.Params {
	return sim.Params{
		N:         s.Processes,
		NCPU:      s.CPUBound,
		Seed:      s.Seed,
		Lambda:    s.Lambda,
		Threshold: s.Threshold,
		TCS:       s.TCS,
		Alpha:     s.Alpha,
		TSlice:    s.TSlice,
		TimeLimit: s.TimeLimit,
	}
}

// Load reads and validates a scenario file.
func Load(path string) (sim.Params, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return sim.Params{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	var sc Scenario
	if err := yaml.Unmarshal(b, &sc); err != nil {
		return sim.Params{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	p := sc.Params()
	if err := p.Validate(); err != nil {
		return sim.Params{}, err
	}
	return p, nil
}
