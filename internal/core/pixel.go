package core

// Pixel is the state of a single cell in a PixelGrid.
type Pixel uint8

const (
	Back Pixel = 0 // Unlit background
	Fore Pixel = 1 // Lit foreground
)

// PixelGrid is a row-major binary image of fixed size.
// It is cleared and redrawn every frame.
type PixelGrid struct {
	width  int
	height int
	pix    []Pixel
}

// NewPixelGrid allocates a grid filled with Back.
func NewPixelGrid(width, height int) *PixelGrid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &PixelGrid{
		width:  width,
		height: height,
		pix:    make([]Pixel, width*height),
	}
}

// Width returns the grid width in pixels.
func (g *PixelGrid) Width() int {
	return g.width
}

// Height returns the grid height in pixels.
func (g *PixelGrid) Height() int {
	return g.height
}

// Clear resets every pixel to Back.
func (g *PixelGrid) Clear() {
	clear(g.pix)
}

// Set writes a pixel. Out-of-bounds coordinates are silently ignored.
func (g *PixelGrid) Set(x, y int, v Pixel) {
	if !(Point{X: x, Y: y}).In(g.width, g.height) {
		return
	}
	g.pix[y*g.width+x] = v
}

// At returns the pixel at (x, y), or Back when out of bounds.
func (g *PixelGrid) At(x, y int) Pixel {
	if !(Point{X: x, Y: y}).In(g.width, g.height) {
		return Back
	}
	return g.pix[y*g.width+x]
}

// Count returns the number of Fore pixels.
func (g *PixelGrid) Count() int {
	n := 0
	for _, p := range g.pix {
		if p == Fore {
			n++
		}
	}
	return n
}
