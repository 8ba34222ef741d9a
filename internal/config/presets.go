package config

import (
	"fmt"
	"strings"
)

// Preset represents a named set of physics parameters.
type Preset string

const (
	PresetEarth  Preset = "earth"
	PresetMoon   Preset = "moon"
	PresetRubber Preset = "rubber"
	PresetLead   Preset = "lead"
)

// Presets lists every known preset in display order.
func Presets() []Preset {
	return []Preset{PresetEarth, PresetMoon, PresetRubber, PresetLead}
}

// ParsePreset validates a preset name. The empty string is PresetEarth.
func ParsePreset(name string) (Preset, error) {
	if name == "" {
		return PresetEarth, nil
	}
	p := Preset(strings.ToLower(name))
	for _, known := range Presets() {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown preset %q", name)
}

// ApplyPreset modifies the physics section based on a preset.
// PresetEarth leaves the loaded values alone.
func ApplyPreset(cfg *BounceConfig, preset Preset) {
	switch preset {
	case PresetMoon:
		cfg.Physics.Gravity = 16.5
	case PresetRubber:
		cfg.Physics.Restitution = -0.9
	case PresetLead:
		cfg.Physics.Restitution = -0.3
		cfg.Physics.RespawnVelocityX = 35
	}
}
