package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nkoval/eulersim/internal/ode"
)

const (
	DefaultA    = 1.0
	DefaultX0   = 1.0
	DefaultTMin = 0.0
	DefaultTMax = 5.0
	DefaultStep = 0.1
)

type Config struct {
	A     float64   `yaml:"a"`
	X0    float64   `yaml:"x0"`
	TMin  float64   `yaml:"t_min"`
	TMax  float64   `yaml:"t_max"`
	Step  float64   `yaml:"step"`
	Steps []float64 `yaml:"steps"`
}

func DefaultConfig() *Config {
	return &Config{
		A:     DefaultA,
		X0:    DefaultX0,
		TMin:  DefaultTMin,
		TMax:  DefaultTMax,
		Step:  DefaultStep,
		Steps: []float64{0.5, 0.25, 0.1, 0.05, 0.01},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// RunConfig extracts the parameters the stepper needs.
func (c *Config) RunConfig() ode.Config {
	return ode.Config{A: c.A, X0: c.X0, TMin: c.TMin, TMax: c.TMax}
}
