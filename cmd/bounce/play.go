package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bounce/internal/platform/tui"
	"github.com/vovakirdan/tui-bounce/internal/sim"
	"github.com/vovakirdan/tui-bounce/internal/storage"
)

var (
	flagFrames    int
	flagNoHistory bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Run the animation",
	Long: `Run the bouncing ball animation in the current terminal.

The frame is redrawn in place; nothing else is written to stdout while
the animation runs. Press Ctrl+C to stop.

Presets:
  earth  - Default gravity and restitution
  moon   - Low gravity, long arcs
  rubber - Bouncy, loses little energy per bounce
  lead   - Heavy, settles quickly and drifts slowly

Examples:
  bounce play
  bounce play --preset moon
  bounce play --glyphs blocks --color bright-cyan
  bounce play --frames 300
  bounce play --config ./my-bounce.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagFrames, "frames", 0, "Stop after this many frames (0 = run until interrupted)")
	cmd.Flags().BoolVar(&flagNoHistory, "no-history", false, "Do not record this run")
}

func runPlay(cmd *cobra.Command, _ []string) {
	s := mustLoadSettings(cmd)
	rt := s.Runtime

	switch err := tui.CheckTerminal(int(os.Stdout.Fd()), rt.Width, rt.Rows()); {
	case errors.Is(err, tui.ErrNotTerminal):
		logger.Debug("stdout is not a terminal, drawing anyway")
	case err != nil:
		logger.Warn("frame may not fit", "error", err)
	}

	simulation, err := sim.New(rt)
	if err != nil {
		exitf("Error: %v\n", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	driver := tui.NewDriver(os.Stdout, simulation, tui.Options{
		MaxFrames: flagFrames,
		Logger:    logger,
		Renderer:  lipgloss.NewRenderer(os.Stdout),
	})
	res, err := driver.Run(ctx)
	if err != nil {
		stop()
		logger.Fatal("animation stopped", "frames", res.Frames, "error", err)
	}

	if flagNoHistory {
		return
	}
	recordRun(storage.Run{
		Source:   storage.SourceLocal,
		User:     os.Getenv("USER"),
		Preset:   string(s.Preset),
		Frames:   res.Frames,
		Bounces:  res.Stats.Bounces,
		Respawns: res.Stats.Respawns,
		Duration: res.Duration,
	})
}

// recordRun stores a finished run. Failures are logged, not fatal.
func recordRun(run storage.Run) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open history database", "error", err)
		return
	}
	defer store.Close()

	if _, err := store.SaveRun(run); err != nil {
		logger.Warn("could not save run", "error", err)
		return
	}
	logger.Debug("run recorded", "frames", run.Frames, "bounces", run.Bounces)
}
