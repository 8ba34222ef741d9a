package tui

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-bounce/internal/core"
	"github.com/vovakirdan/tui-bounce/internal/sim"
)

// Options tunes a Driver.
type Options struct {
	// MaxFrames stops the loop after this many frames. Zero runs until the
	// context is cancelled.
	MaxFrames int

	// Logger receives lifecycle messages. Defaults to log.Default().
	Logger *log.Logger

	// Renderer is used for glyph tinting. Defaults to a renderer detecting
	// the capabilities of the output writer.
	Renderer *lipgloss.Renderer
}

// Result summarizes a finished run.
type Result struct {
	Frames   int
	Stats    sim.Stats
	Duration time.Duration
}

// Driver paces a Sim at its configured rate and redraws every frame in place
// on w: rows are written top to bottom, then the cursor is moved back to the
// top-left corner of the frame so the next one overwrites it.
type Driver struct {
	w      io.Writer
	sim    *sim.Sim
	opts   Options
	style  lipgloss.Style
	tinted bool
	buf    bytes.Buffer
}

// NewDriver creates a driver writing s's frames to w.
func NewDriver(w io.Writer, s *sim.Sim, opts Options) *Driver {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Renderer == nil {
		opts.Renderer = lipgloss.NewRenderer(w)
	}
	style, tinted := glyphStyle(opts.Renderer, s.Config().Color)
	return &Driver{
		w:      w,
		sim:    s,
		opts:   opts,
		style:  style,
		tinted: tinted,
	}
}

// Run draws frames until ctx is done, MaxFrames is reached or a write or
// packing error occurs. The first frame is drawn immediately.
// A packing error means the glyph table is unusable; callers should treat
// it as fatal.
func (d *Driver) Run(ctx context.Context) (Result, error) {
	cfg := d.sim.Config()
	start := time.Now()
	res := Result{}

	d.opts.Logger.Debug("driver started", "fps", cfg.FPS, "width", cfg.Width, "rows", cfg.Rows())

	if _, err := io.WriteString(d.w, ansi.HideCursor); err != nil {
		return res, fmt.Errorf("tui: write: %w", err)
	}
	defer func() {
		// Leave the cursor below the last frame.
		//nolint:errcheck // Best-effort restore, the writer may be gone
		io.WriteString(d.w, ansi.CursorDown(cfg.Rows())+ansi.ShowCursor)
	}()

	ticker := time.NewTicker(frameInterval(cfg.FPS))
	defer ticker.Stop()

	finish := func(err error) (Result, error) {
		res.Stats = d.sim.Stats()
		res.Duration = time.Since(start)
		d.opts.Logger.Debug("driver stopped", "frames", res.Frames, "bounces", res.Stats.Bounces, "respawns", res.Stats.Respawns)
		return res, err
	}

	for {
		screen, err := d.sim.Frame()
		if err != nil {
			return finish(fmt.Errorf("tui: render frame %d: %w", res.Frames, err))
		}
		if err := d.writeFrame(screen); err != nil {
			return finish(err)
		}
		res.Frames++

		if d.opts.MaxFrames > 0 && res.Frames >= d.opts.MaxFrames {
			return finish(nil)
		}

		select {
		case <-ctx.Done():
			return finish(nil)
		case <-ticker.C:
		}
	}
}

// writeFrame emits one frame and the cursor movement back to its origin.
func (d *Driver) writeFrame(screen *core.Screen) error {
	d.buf.Reset()
	for _, row := range screen.Rows() {
		if d.tinted {
			row = d.style.Render(row)
		}
		d.buf.WriteString(row)
		d.buf.WriteByte('\n')
	}
	d.buf.WriteString(ansi.CursorBackward(screen.Width()))
	d.buf.WriteString(ansi.CursorUp(screen.Height()))

	if _, err := d.w.Write(d.buf.Bytes()); err != nil {
		return fmt.Errorf("tui: write: %w", err)
	}
	return nil
}
