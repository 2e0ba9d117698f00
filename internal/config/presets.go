package config

import "sort"

// Named parameter sets for common demonstrations. "unstable" deliberately
// uses a step beyond 1/A so the Euler oscillation is visible.
var presets = map[string]Config{
	"default": *DefaultConfig(),
	"fine": {
		A: 1.0, X0: 1.0, TMin: 0, TMax: 5.0,
		Step:  0.01,
		Steps: []float64{0.05, 0.02, 0.01, 0.005, 0.001},
	},
	"coarse": {
		A: 1.0, X0: 1.0, TMin: 0, TMax: 5.0,
		Step:  0.5,
		Steps: []float64{0.9, 0.75, 0.5, 0.25},
	},
	"unstable": {
		A: 1.0, X0: 1.0, TMin: 0, TMax: 10.0,
		Step:  1.5,
		Steps: []float64{2.5, 2.0, 1.5, 1.1},
	},
	"slow-decay": {
		A: 0.2, X0: 1.0, TMin: 0, TMax: 25.0,
		Step:  0.1,
		Steps: []float64{1.0, 0.5, 0.1, 0.05},
	},
}

// GetPreset returns a copy of the named preset, or nil if unknown.
func GetPreset(name string) *Config {
	p, ok := presets[name]
	if !ok {
		return nil
	}
	cp := p
	cp.Steps = append([]float64(nil), p.Steps...)
	return &cp
}

func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
