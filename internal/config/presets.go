package config

import "sort"

var Presets = map[string]ParticlesConfig{
	"default":     {Mass1: 5, Velocity1: 5, Mass2: 5, Velocity2: -3},
	"exchange":    {Mass1: 2, Velocity1: 4, Mass2: 2, Velocity2: 0},
	"heavy_light": {Mass1: 20, Velocity1: 3, Mass2: 1, Velocity2: -3},
	"light_heavy": {Mass1: 1, Velocity1: 6, Mass2: 20, Velocity2: -1},
	"chase":       {Mass1: 3, Velocity1: 8, Mass2: 1, Velocity2: 2},
	"rest_target": {Mass1: 5, Velocity1: 5, Mass2: 10, Velocity2: 0},
}

func GetPreset(name string) *ParticlesConfig {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return &p
}

// ListPresets returns preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyPreset replaces the particle settings with the named preset. It
// reports false when no such preset exists.
func (c *Config) ApplyPreset(name string) bool {
	p := GetPreset(name)
	if p == nil {
		return false
	}
	c.Particles = *p
	return true
}
