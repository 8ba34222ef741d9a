// Package tui drives the bouncing-ball animation on a terminal: frame
// pacing, cursor-relative redraw, glyph tinting and SSH serving.
package tui

import (
	"time"
)

// frameInterval returns the delay between frames at the given rate.
func frameInterval(fps int) time.Duration {
	if fps <= 0 {
		fps = 1
	}
	return time.Second / time.Duration(fps)
}
