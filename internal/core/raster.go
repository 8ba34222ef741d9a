package core

// Sample offsets applied to a cell's integer coordinate before the distance
// test in RasterizeCircle.
var (
	// EdgeSample samples each cell at (x+0.5, y): centered horizontally, on
	// the top edge vertically. This is the historical behaviour and the
	// default.
	EdgeSample = PointF{X: 0.5, Y: 0}

	// CenterSample samples each cell at its true center. Circles come out
	// vertically symmetric, but cells along the top and bottom rim differ
	// from EdgeSample output.
	CenterSample = PointF{X: 0.5, Y: 0.5}
)

// RasterizeCircle marks every grid cell whose sample point lies within
// radius of center as Fore. Cells outside the grid are skipped and no cell
// is ever reset to Back, so callers clear the grid between frames.
func RasterizeCircle(center PointF, radius float64, grid *PixelGrid, sample PointF) {
	r := Pt(radius, radius)
	lo := Pt(-1, -1)
	hi := Pt(float64(grid.width), float64(grid.height))
	rr := radius * radius

	// Clip the box to the grid in float space: the circle may extend past
	// any edge, and bounds beyond the int range do not convert.
	begin := clampF(center.Sub(r).Floor(), lo, hi).Int()
	end := clampF(center.Add(r).Ceil(), lo, hi).Int()
	begin.X, begin.Y = max(begin.X, 0), max(begin.Y, 0)
	end.X, end.Y = min(end.X, grid.width-1), min(end.Y, grid.height-1)

	for y := begin.Y; y <= end.Y; y++ {
		for x := begin.X; x <= end.X; x++ {
			p := Point{X: x, Y: y}.Float().Add(sample)
			if center.Sub(p).SqrLen() <= rr {
				grid.Set(x, y, Fore)
			}
		}
	}
}

// clampF limits each component of p to [lo, hi]. NaN components become lo.
func clampF(p, lo, hi PointF) PointF {
	clamp := func(v, lo, hi float64) float64 {
		if !(v >= lo) {
			return lo
		}
		return min(v, hi)
	}
	return PointF{X: clamp(p.X, lo.X, hi.X), Y: clamp(p.Y, lo.Y, hi.Y)}
}
