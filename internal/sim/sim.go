// Package sim runs the bouncing-ball scene: one body stepped at a fixed
// rate, rasterized into a pixel grid and packed into a text screen.
package sim

import (
	"fmt"

	"github.com/vovakirdan/tui-bounce/internal/core"
)

// Stats counts what happened since the last Reset.
type Stats struct {
	Ticks    int // Number of Step calls
	Bounces  int // Floor contacts
	Respawns int // Right-edge resets
}

// Sim owns the body, the pixel grid and the packed screen for one run.
// It is not safe for concurrent use; every display loop creates its own.
type Sim struct {
	cfg    core.Config
	env    core.Env
	body   core.Body
	grid   *core.PixelGrid
	screen *core.Screen
	stats  Stats
}

// New validates cfg and returns a simulation with the body at its spawn
// point.
func New(cfg core.Config) (*Sim, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("sim: invalid config: %w", err)
	}
	s := &Sim{
		cfg:    cfg,
		env:    cfg.Env(),
		grid:   core.NewPixelGrid(cfg.Width, cfg.Height),
		screen: core.NewScreen(cfg.Width, cfg.Rows()),
	}
	s.Reset()
	return s, nil
}

// Reset respawns the body and zeroes the statistics.
func (s *Sim) Reset() {
	s.body = core.Spawn(s.cfg.Radius, s.cfg.Gravity, s.cfg.RespawnVelocityX)
	s.stats = Stats{}
}

// Step advances the body by one tick.
func (s *Sim) Step() core.Event {
	var ev core.Event
	s.body, ev = s.body.Update(s.env)

	s.stats.Ticks++
	if ev.Has(core.EventBounced) {
		s.stats.Bounces++
	}
	if ev.Has(core.EventRespawned) {
		s.stats.Respawns++
	}
	return ev
}

// Render clears the grid, draws the body and packs the result into the
// screen, which is returned. The screen is reused by the next Render.
func (s *Sim) Render() (*core.Screen, error) {
	s.grid.Clear()
	core.RasterizeCircle(s.body.Pos, s.body.Radius, s.grid, s.cfg.Sample)
	if err := core.Pack(s.grid, s.cfg.Glyphs, s.screen); err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	return s.screen, nil
}

// Frame runs one Step followed by one Render.
func (s *Sim) Frame() (*core.Screen, error) {
	s.Step()
	return s.Render()
}

// Body returns the current body state.
func (s *Sim) Body() core.Body {
	return s.body
}

// SetBody replaces the body state, keeping statistics.
func (s *Sim) SetBody(b core.Body) {
	s.body = b
}

// Grid exposes the pixel grid of the last Render.
func (s *Sim) Grid() *core.PixelGrid {
	return s.grid
}

// Stats returns the counters since the last Reset.
func (s *Sim) Stats() Stats {
	return s.stats
}

// Config returns the configuration the simulation was built with.
func (s *Sim) Config() core.Config {
	return s.cfg
}
