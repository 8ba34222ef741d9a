package core

import (
	"errors"
	"fmt"
	"math"
)

// ErrNonPositive is wrapped by Config.Validate for sizes and rates that must
// be greater than zero.
var ErrNonPositive = errors.New("must be positive")

// Config contains everything needed to build and run a simulation.
type Config struct {
	Width            int     // Pixel grid width (one glyph per column)
	Height           int     // Pixel grid height (two pixels per text row)
	FPS              int     // Simulation ticks per second
	Gravity          float64 // Downward acceleration, pixels/s²
	Restitution      float64 // Floor bounce velocity multiplier
	Radius           float64 // Body radius in pixels
	RespawnVelocityX float64 // Horizontal speed at spawn, pixels/s
	Glyphs           Glyphs  // Packing table
	Sample           PointF  // Rasterizer sample offset
	Color            Color   // Glyph tint
}

// DefaultConfig returns the 128x32, 30 FPS setup.
func DefaultConfig() Config {
	return Config{
		Width:            128,
		Height:           32,
		FPS:              30,
		Gravity:          100,
		Restitution:      -0.65,
		Radius:           32 / 4,
		RespawnVelocityX: 50,
		Glyphs:           ASCIIGlyphs,
		Sample:           EdgeSample,
		Color:            ColorDefault,
	}
}

// Env returns the per-tick physics parameters.
func (c Config) Env() Env {
	return Env{
		Width:            c.Width,
		Height:           c.Height,
		FPS:              c.FPS,
		Restitution:      c.Restitution,
		RespawnVelocityX: c.RespawnVelocityX,
	}
}

// Rows returns the number of text rows a packed frame occupies.
func (c Config) Rows() int {
	return c.Height / 2
}

// Validate reports every violated invariant, joined into one error.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 {
		errs = append(errs, fmt.Errorf("width %d: %w", c.Width, ErrNonPositive))
	}
	if c.Height <= 0 {
		errs = append(errs, fmt.Errorf("height %d: %w", c.Height, ErrNonPositive))
	} else if c.Height%2 != 0 {
		errs = append(errs, fmt.Errorf("height %d: %w", c.Height, ErrOddHeight))
	}
	if c.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps %d: %w", c.FPS, ErrNonPositive))
	}
	if !(c.Radius > 0) || math.IsInf(c.Radius, 0) {
		errs = append(errs, fmt.Errorf("radius %g: %w", c.Radius, ErrNonPositive))
	}
	finite := []struct {
		name string
		v    float64
	}{
		{"gravity", c.Gravity},
		{"restitution", c.Restitution},
		{"respawn_velocity_x", c.RespawnVelocityX},
	}
	for _, f := range finite {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			errs = append(errs, fmt.Errorf("%s %g: must be finite", f.name, f.v))
		}
	}
	if err := c.Glyphs.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
