package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bounce/internal/config"
	"github.com/vovakirdan/tui-bounce/internal/core"
)

// settings is the resolved configuration for one command invocation.
type settings struct {
	File    config.BounceConfig
	Source  string
	Preset  config.Preset
	Runtime core.Config
}

// loadSettings loads the config file, applies the preset and then any
// explicitly set flags, and validates the result.
func loadSettings(cmd *cobra.Command) (settings, error) {
	file, source, err := config.LoadWithSource(flagConfig)
	if err != nil {
		return settings{}, err
	}
	preset, err := config.ParsePreset(flagPreset)
	if err != nil {
		return settings{}, err
	}
	config.ApplyPreset(&file, preset)
	applyFlagOverrides(cmd, &file)

	rt, err := file.Runtime()
	if err != nil {
		return settings{}, err
	}
	return settings{File: file, Source: source, Preset: preset, Runtime: rt}, nil
}

// applyFlagOverrides copies flags the user actually passed into cfg.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.BounceConfig) {
	changed := func(name string) bool {
		f := cmd.Flag(name)
		return f != nil && f.Changed
	}
	if changed("fps") {
		cfg.Display.FPS = flagFPS
	}
	if changed("width") {
		cfg.Display.Width = flagWidth
	}
	if changed("height") {
		cfg.Display.Height = flagHeight
	}
	if changed("glyphs") {
		cfg.Display.Glyphs = flagGlyphs
	}
	if changed("color") {
		cfg.Display.Color = flagColor
	}
	if changed("gravity") {
		cfg.Physics.Gravity = flagGravity
	}
	if changed("restitution") {
		cfg.Physics.Restitution = flagRestitution
	}
	if changed("radius") {
		cfg.Physics.Radius = flagRadius
	}
}

func mustLoadSettings(cmd *cobra.Command) settings {
	s, err := loadSettings(cmd)
	if err != nil {
		exitf("Error: %v\n", err)
	}
	logger.Debug("configuration loaded", "source", s.Source, "preset", s.Preset)
	return s
}

func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}
