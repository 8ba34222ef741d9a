// bounce draws a bouncing ball in the terminal using half-height glyphs.
//
// Usage:
//
//	bounce                   - Run the animation (same as bounce play)
//	bounce play              - Run the animation
//	bounce snapshot          - Print a single frame after N ticks
//	bounce serve             - Stream the animation over SSH
//	bounce history           - Show recorded runs
//	bounce config            - Print the effective configuration
//
// Global flags:
//
//	--config <path>  - Config YAML (default: search ~/.bounce, ./configs)
//	--preset <name>  - Physics preset: earth, moon, rubber, lead
//	--fps <rate>     - Frames per second (default: 30)
//	--db <path>      - History database (default: ~/.bounce/history.db)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig      string
	flagPreset      string
	flagFPS         int
	flagWidth       int
	flagHeight      int
	flagGravity     float64
	flagRestitution float64
	flagRadius      float64
	flagGlyphs      string
	flagColor       string
	flagDBPath      string
	flagVerbose     bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "bounce",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bounce",
	Short: "Bounce - a ball bouncing in your terminal",
	Long: `Bounce simulates a ball falling under gravity and draws it in the
terminal, two pixel rows per character cell.

Available commands:
  play      - Run the animation (default)
  snapshot  - Print one frame after a number of ticks
  serve     - Start SSH server streaming the animation
  history   - View recorded runs
  config    - Print the effective configuration

Examples:
  bounce
  bounce play --preset moon --color cyan
  bounce snapshot --ticks 60
  bounce serve --ssh :2222
  bounce history --limit 5`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
	Run: runPlay,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagPreset, "preset", "", "Physics preset: earth, moon, rubber, lead")
	pf.IntVar(&flagFPS, "fps", 30, "Frames per second")
	pf.IntVar(&flagWidth, "width", 128, "Grid width in pixels")
	pf.IntVar(&flagHeight, "height", 32, "Grid height in pixels (must be even)")
	pf.Float64Var(&flagGravity, "gravity", 100, "Downward acceleration in pixels/s²")
	pf.Float64Var(&flagRestitution, "restitution", -0.65, "Vertical velocity factor on floor contact")
	pf.Float64Var(&flagRadius, "radius", 0, "Ball radius in pixels (0 = height/4)")
	pf.StringVar(&flagGlyphs, "glyphs", "ascii", "Glyph set (ascii, blocks, legacy) or 4 characters")
	pf.StringVar(&flagColor, "color", "", "Glyph color (e.g. cyan, bright-red)")
	pf.StringVar(&flagDBPath, "db", "~/.bounce/history.db", "Path to run history database")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	addPlayFlags(rootCmd)
	addPlayFlags(playCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
}
