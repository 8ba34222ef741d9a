package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bounce/internal/storage"
)

var (
	flagLimit  int
	flagSource string
	flagClear  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded runs",
	Long: `Display the most recent runs recorded by play and serve.

Examples:
  bounce history
  bounce history --limit 20
  bounce history --source ssh
  bounce history --clear`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of runs to show")
	historyCmd.Flags().StringVar(&flagSource, "source", "", "Only show runs from this source: local, ssh")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
}

func runHistory(_ *cobra.Command, _ []string) {
	switch flagSource {
	case "", storage.SourceLocal, storage.SourceSSH:
	default:
		exitf("Error: unknown source %q (expected local or ssh)\n", flagSource)
	}

	// Open history storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		exitf("Error opening history database: %v\n", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			store.Close()
			exitf("Error clearing history: %v\n", err)
		}
		fmt.Println("History cleared.")
		return
	}

	runs, err := store.RecentRuns(flagSource, flagLimit)
	if err != nil {
		store.Close()
		exitf("Error retrieving runs: %v\n", err)
	}

	fmt.Println("Recent Runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'bounce play' to record the first one!")
		return
	}

	// Print header
	fmt.Printf("  %-16s  %-6s  %-10s  %-7s  %7s  %7s  %8s  %s\n",
		"Date", "Source", "User", "Preset", "Frames", "Bounces", "Respawns", "Duration")
	fmt.Printf("  %-16s  %-6s  %-10s  %-7s  %7s  %7s  %8s  %s\n",
		"----", "------", "----", "------", "------", "-------", "--------", "--------")

	for _, r := range runs {
		fmt.Printf("  %-16s  %-6s  %-10s  %-7s  %7d  %7d  %8d  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Source, truncate(r.User, 10), r.Preset,
			r.Frames, r.Bounces, r.Respawns, r.Duration.Round(100*time.Millisecond))
	}

	// Show totals
	totals, err := store.Totals()
	if err == nil {
		fmt.Println()
		fmt.Printf("Total: %d runs, %d frames, %d bounces, %s\n",
			totals.Runs, totals.Frames, totals.Bounces, totals.Duration.Round(time.Second))
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
