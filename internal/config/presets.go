package config

import (
	"maps"
	"slices"
)

var Presets = map[string]map[string]*Config{
	"quick": {
		"classic": {Algorithm: "quick", Size: 100, Seed: 1},
		"tiny":    {Algorithm: "quick", Size: 12, Seed: 7, Speed: SpeedConfig{Initial: 0.5}},
		"large":   {Algorithm: "quick", Size: 500, Seed: 3, Speed: SpeedConfig{Initial: 5.0}, BaseRate: 240},
	},
	"merge": {
		"classic": {Algorithm: "merge", Size: 100, Seed: 1},
		"tiny":    {Algorithm: "merge", Size: 16, Seed: 7, Speed: SpeedConfig{Initial: 0.5}},
		"large":   {Algorithm: "merge", Size: 512, Seed: 3, Speed: SpeedConfig{Initial: 5.0}, BaseRate: 240},
	},
	"bubble": {
		"classic": {Algorithm: "bubble", Size: 50, Seed: 1, Speed: SpeedConfig{Initial: 3.0}},
		"tiny":    {Algorithm: "bubble", Size: 8, Seed: 7, Speed: SpeedConfig{Initial: 0.5}},
	},
	"heap": {
		"classic": {Algorithm: "heap", Size: 100, Seed: 1},
		"tiny":    {Algorithm: "heap", Size: 15, Seed: 7, Speed: SpeedConfig{Initial: 0.5}},
		"large":   {Algorithm: "heap", Size: 500, Seed: 3, Speed: SpeedConfig{Initial: 5.0}, BaseRate: 240},
	},
}

// GetPreset returns a full configuration for the named preset, or nil when
// either the algorithm or the preset is unknown.
func GetPreset(algorithm, name string) *Config {
	presets, ok := Presets[algorithm]
	if !ok {
		return nil
	}
	p, ok := presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Merge(p)
	return cfg
}

func ListPresets(algorithm string) []string {
	presets, ok := Presets[algorithm]
	if !ok {
		return nil
	}
	return slices.Sorted(maps.Keys(presets))
}
