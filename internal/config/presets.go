package config

import (
	"fmt"
	"sort"
)

func solarBodies() []BodyConfig {
	return []BodyConfig{
		{Name: "Mercury", Size: 0.5, Radius: 8, Speed: 0.02, Color: "#b5b5b5", Texture: "mercury.jpg"},
		{Name: "Venus", Size: 0.9, Radius: 11, Speed: 0.015, Color: "#e8cda2", Texture: "venus.jpg"},
		{Name: "Earth", Size: 1.0, Radius: 15, Speed: 0.012, Color: "#2e86ab", Texture: "earth.jpg"},
		{Name: "Mars", Size: 0.8, Radius: 18, Speed: 0.010, Color: "#c1440e", Texture: "mars.jpg"},
		{Name: "Jupiter", Size: 2.5, Radius: 25, Speed: 0.007, Color: "#c88b3a", Texture: "jupiter.jpg"},
		{Name: "Saturn", Size: 2.0, Radius: 32, Speed: 0.005, Color: "#e3c16f", Texture: "saturn.jpg"},
		{Name: "Uranus", Size: 1.5, Radius: 38, Speed: 0.004, Color: "#7de3e8", Texture: "uranus.jpg"},
		{Name: "Neptune", Size: 1.5, Radius: 44, Speed: 0.003, Color: "#3f54ba", Texture: "neptune.jpg"},
	}
}

// Presets select a subset of the solar bodies.
var Presets = map[string]func() []BodyConfig{
	"solar": solarBodies,
	"inner": func() []BodyConfig { return solarBodies()[:4] },
	"outer": func() []BodyConfig { return solarBodies()[4:] },
}

// GetPreset returns the default config with the preset's bodies, or nil.
func GetPreset(name string) *Config {
	bodies, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Bodies = bodies()
	return cfg
}

// ApplyPreset swaps cfg's bodies for the named preset.
func (c *Config) ApplyPreset(name string) error {
	bodies, ok := Presets[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	c.Bodies = bodies()
	return nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
