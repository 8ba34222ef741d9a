package core

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

var (
	// ErrInvalidGlyph is returned when a glyph is not a printable,
	// single-column rune.
	ErrInvalidGlyph = errors.New("invalid glyph")

	// ErrOddHeight is returned when a grid cannot be split into row pairs.
	ErrOddHeight = errors.New("grid height must be even")
)

// Glyphs maps a pair of vertically stacked pixels to one character.
// The index is (top << 1) | bottom.
type Glyphs [4]rune

// Built-in glyph sets.
var (
	ASCIIGlyphs  = Glyphs{' ', '_', '^', '█'}
	BlockGlyphs  = Glyphs{' ', '▄', '▀', '█'}
	LegacyGlyphs = Glyphs{' ', '_', '^', 'C'}
)

// glyphWidth measures glyphs as a non-CJK terminal does. The package-level
// runewidth condition follows LANG and would count block elements such as
// '█' as two columns under an East Asian locale.
var glyphWidth = &runewidth.Condition{EastAsianWidth: false}

// glyphSets lists the named sets accepted by ParseGlyphs.
var glyphSets = map[string]Glyphs{
	"ascii":  ASCIIGlyphs,
	"blocks": BlockGlyphs,
	"legacy": LegacyGlyphs,
}

// ParseGlyphs resolves a glyph set name ("ascii", "blocks", "legacy") or a
// literal string of exactly four runes ordered blank, bottom, top, both.
func ParseGlyphs(s string) (Glyphs, error) {
	if g, ok := glyphSets[s]; ok {
		return g, nil
	}
	if !utf8.ValidString(s) {
		return Glyphs{}, fmt.Errorf("%w: %q is not valid UTF-8", ErrInvalidGlyph, s)
	}
	runes := []rune(s)
	if len(runes) != 4 {
		return Glyphs{}, fmt.Errorf("%w: %q must be a set name or exactly 4 characters", ErrInvalidGlyph, s)
	}
	g := Glyphs{runes[0], runes[1], runes[2], runes[3]}
	if err := g.Validate(); err != nil {
		return Glyphs{}, err
	}
	return g, nil
}

// Validate checks that every glyph occupies exactly one terminal column.
func (g Glyphs) Validate() error {
	for i, r := range g {
		if r == utf8.RuneError || !utf8.ValidRune(r) || !unicode.IsPrint(r) || glyphWidth.RuneWidth(r) != 1 {
			return fmt.Errorf("%w: entry %d (%U)", ErrInvalidGlyph, i, r)
		}
	}
	return nil
}

// String returns the four glyphs in table order.
func (g Glyphs) String() string {
	return string(g[:])
}

// Pack renders grid into dst at half the vertical resolution: output row y
// combines pixel rows 2y and 2y+1. dst is resized to Width x Height/2.
func Pack(grid *PixelGrid, glyphs Glyphs, dst *Screen) error {
	if grid.height%2 != 0 {
		return fmt.Errorf("pack: %w (got %d)", ErrOddHeight, grid.height)
	}
	if err := glyphs.Validate(); err != nil {
		return fmt.Errorf("pack: %w", err)
	}

	dst.Resize(grid.width, grid.height/2)
	for y := 0; y < grid.height/2; y++ {
		for x := 0; x < grid.width; x++ {
			top, bottom := grid.At(x, 2*y), grid.At(x, 2*y+1)
			dst.Set(x, y, glyphs[(top&1)<<1|bottom&1])
		}
	}
	return nil
}
