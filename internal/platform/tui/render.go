package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-bounce/internal/core"
)

// colorCodes maps core.Color to ANSI 256-color codes.
var colorCodes = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// glyphStyle returns the style used to tint packed rows and whether any
// tint applies at all. ColorDefault leaves rows untouched.
func glyphStyle(r *lipgloss.Renderer, c core.Color) (lipgloss.Style, bool) {
	code, ok := colorCodes[c]
	if !ok {
		return r.NewStyle(), false
	}
	return r.NewStyle().Foreground(lipgloss.Color(code)), true
}
