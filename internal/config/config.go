// Package config provides YAML-based configuration loading and physics
// presets for the bounce renderer.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-bounce/internal/core"
)

// BounceConfig is the on-disk configuration.
type BounceConfig struct {
	Display DisplayConfig `yaml:"display"`
	Physics PhysicsConfig `yaml:"physics"`
}

// DisplayConfig defines the grid and how it is drawn.
type DisplayConfig struct {
	Width            int    `yaml:"width"`
	Height           int    `yaml:"height"` // Pixel rows; must be even
	FPS              int    `yaml:"fps"`
	Glyphs           string `yaml:"glyphs"` // "ascii", "blocks", "legacy" or 4 literal characters
	Color            string `yaml:"color"`
	CenteredSampling bool   `yaml:"centered_sampling"`
}

// PhysicsConfig defines the body and its environment.
type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"`
	Restitution      float64 `yaml:"restitution"`
	Radius           float64 `yaml:"radius"` // 0 = height/4
	RespawnVelocityX float64 `yaml:"respawn_velocity_x"`
}

// Runtime resolves names and derived defaults and returns a validated
// core.Config.
func (c BounceConfig) Runtime() (core.Config, error) {
	glyphs, err := core.ParseGlyphs(c.Display.Glyphs)
	if err != nil {
		return core.Config{}, fmt.Errorf("config: glyphs: %w", err)
	}
	color, err := core.ParseColor(c.Display.Color)
	if err != nil {
		return core.Config{}, fmt.Errorf("config: %w", err)
	}

	radius := c.Physics.Radius
	if radius == 0 {
		radius = float64(c.Display.Height) / 4
	}
	sample := core.EdgeSample
	if c.Display.CenteredSampling {
		sample = core.CenterSample
	}

	rt := core.Config{
		Width:            c.Display.Width,
		Height:           c.Display.Height,
		FPS:              c.Display.FPS,
		Gravity:          c.Physics.Gravity,
		Restitution:      c.Physics.Restitution,
		Radius:           radius,
		RespawnVelocityX: c.Physics.RespawnVelocityX,
		Glyphs:           glyphs,
		Sample:           sample,
		Color:            color,
	}
	if err := rt.Validate(); err != nil {
		return core.Config{}, fmt.Errorf("config: %w", err)
	}
	return rt, nil
}
