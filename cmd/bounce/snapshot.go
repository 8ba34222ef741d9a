package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bounce/internal/core"
	"github.com/vovakirdan/tui-bounce/internal/sim"
)

var (
	flagTicks   int
	flagOutPath string
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Print one frame after a number of ticks",
	Long: `Advance the simulation without drawing, then print a single packed
frame as plain text (no control sequences and no color).

Examples:
  bounce snapshot --ticks 60
  bounce snapshot --ticks 90 --glyphs blocks
  bounce snapshot --ticks 30 --out frame.txt`,
	Args: cobra.NoArgs,
	Run:  runSnapshot,
}

func init() {
	snapshotCmd.Flags().IntVar(&flagTicks, "ticks", 0, "Physics steps to run before rendering")
	snapshotCmd.Flags().StringVarP(&flagOutPath, "out", "o", "", "Write the frame to a file instead of stdout")
}

func runSnapshot(cmd *cobra.Command, _ []string) {
	if flagTicks < 0 {
		exitf("Error: --ticks must not be negative\n")
	}
	s := mustLoadSettings(cmd)

	simulation, err := sim.New(s.Runtime)
	if err != nil {
		exitf("Error: %v\n", err)
	}
	for range flagTicks {
		simulation.Step()
	}
	screen, err := simulation.Render()
	if err != nil {
		exitf("Error rendering frame: %v\n", err)
	}

	text := snapshotText(screen)
	if flagOutPath == "" {
		fmt.Print(text)
		return
	}
	if err := os.WriteFile(flagOutPath, []byte(text), 0o644); err != nil {
		exitf("Error writing snapshot: %v\n", err)
	}
	body := simulation.Body()
	logger.Info("snapshot written", "path", flagOutPath, "ticks", flagTicks, "x", body.Pos.X, "y", body.Pos.Y, "lit", simulation.Grid().Count())
}

// snapshotText is the frame as plain lines, each terminated by a newline.
func snapshotText(screen *core.Screen) string {
	return screen.String() + "\n"
}
