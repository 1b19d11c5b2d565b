package config

import "sort"

// Preset overrides a subset of the configuration.
type Preset struct {
	Description string
	Zoom        float64
	UpdateOrder string
}

var Presets = map[string]Preset{
	"classic": {
		Description: "window as first opened, bodies updated one after another",
		Zoom:        1.0,
		UpdateOrder: "sequential",
	},
	"inner": {
		Description: "Mercury to Mars",
		Zoom:        1.1 * 1.1 * 1.1 * 1.1,
		UpdateOrder: "simultaneous",
	},
	"outer": {
		Description: "all eight orbits, out to Neptune",
		Zoom:        0.08,
		UpdateOrder: "simultaneous",
	},
}

func GetPreset(name string) (Preset, bool) {
	p, ok := Presets[name]
	return p, ok
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

// Apply overwrites the preset's fields on c.
func (p Preset) Apply(c *Config) {
	if p.Zoom > 0 {
		c.View.Zoom = p.Zoom
	}
	if p.UpdateOrder != "" {
		c.UpdateOrder = p.UpdateOrder
	}
}
