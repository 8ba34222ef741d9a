package tui

import (
	"errors"
	"fmt"

	"golang.org/x/term"
)

var (
	// ErrNotTerminal is returned by CheckTerminal when output is redirected.
	ErrNotTerminal = errors.New("output is not a terminal")

	// ErrTerminalTooSmall is returned when a frame would wrap or scroll.
	ErrTerminalTooSmall = errors.New("terminal too small")
)

// CheckTerminal verifies that a frame of width x rows characters, plus the
// line the cursor rests on, fits the terminal behind fd.
func CheckTerminal(fd int, width, rows int) error {
	if !term.IsTerminal(fd) {
		return ErrNotTerminal
	}
	w, h, err := term.GetSize(fd)
	if err != nil {
		return fmt.Errorf("tui: terminal size: %w", err)
	}
	return checkFit(w, h, width, rows)
}

// checkFit compares a terminal size against the space a frame needs.
func checkFit(termW, termH, width, rows int) error {
	if termW < width || termH < rows+1 {
		return fmt.Errorf("%w: need %dx%d, have %dx%d", ErrTerminalTooSmall, width, rows+1, termW, termH)
	}
	return nil
}
