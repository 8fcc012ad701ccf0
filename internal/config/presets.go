package config

import "sort"

// Presets are named run-parameter sets. They leave the assay block empty.
var Presets = map[string]*Config{
	"standard": {
		Cycles: 40, Efficiency: 0.95, Threshold: 1e6, Noise: 0.1,
		Thermal: ThermalConfig{Denaturation: 95, Annealing: 60, Extension: 72},
	},
	"ideal": {
		Cycles: 40, Efficiency: 1.0, Threshold: 1e6, Noise: 0,
		Thermal: ThermalConfig{Denaturation: 95, Annealing: 60, Extension: 72},
	},
	"inhibited": {
		Cycles: 45, Efficiency: 0.6, Threshold: 1e6, Noise: 0.1,
		Thermal: ThermalConfig{Denaturation: 95, Annealing: 58, Extension: 72},
	},
	"fast": {
		Cycles: 30, Efficiency: 0.9, Threshold: 1e4, Noise: 0.1,
		Thermal: ThermalConfig{Denaturation: 95, Annealing: 60, Extension: 68},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	cp := *cfg
	return &cp
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
