package config

import (
	_ "embed"
)

//go:embed defaults/bounce.yaml
var defaultBounceYAML []byte

// Default returns the built-in configuration: a 128x32 grid at 30 FPS with
// gravity 100 and restitution -0.65.
func Default() BounceConfig {
	return BounceConfig{
		Display: DisplayConfig{
			Width:  128,
			Height: 32,
			FPS:    30,
			Glyphs: "ascii",
		},
		Physics: PhysicsConfig{
			Gravity:          100,
			Restitution:      -0.65,
			Radius:           0, // Height / 4
			RespawnVelocityX: 50,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBounceYAML
}
