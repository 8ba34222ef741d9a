package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bounce/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration that play and serve would use, after the
preset and command-line overrides are applied, as YAML.

The output can be saved and passed back with --config.

Examples:
  bounce config
  bounce config --preset rubber > ~/.bounce/config.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) {
	s := mustLoadSettings(cmd)

	data, err := config.Marshal(s.File)
	if err != nil {
		exitf("Error encoding config: %v\n", err)
	}
	fmt.Fprintf(os.Stderr, "# source: %s, preset: %s\n", s.Source, s.Preset)
	fmt.Print(string(data))
}
