// Package core provides the simulation primitives for the bouncing-ball
// renderer: point math, the pixel grid, circle rasterization, the body
// physics and the two-pixels-per-glyph packer. It has no terminal or UI
// dependencies so everything here stays pure and testable.
package core

import "math"

// PointF is a 2D floating-point vector used for positions, velocities and
// radius pairs. All methods return new values.
type PointF struct {
	X, Y float64
}

// Point is a discrete grid coordinate.
type Point struct {
	X, Y int
}

// Pt is shorthand for PointF{X: x, Y: y}.
func Pt(x, y float64) PointF {
	return PointF{X: x, Y: y}
}

// Add returns p + q.
func (p PointF) Add(q PointF) PointF {
	return PointF{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p PointF) Sub(q PointF) PointF {
	return PointF{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the elementwise product of p and q.
func (p PointF) Mul(q PointF) PointF {
	return PointF{X: p.X * q.X, Y: p.Y * q.Y}
}

// Scale multiplies both components by s.
func (p PointF) Scale(s float64) PointF {
	return PointF{X: p.X * s, Y: p.Y * s}
}

// Floor rounds each component toward negative infinity.
func (p PointF) Floor() PointF {
	return PointF{X: math.Floor(p.X), Y: math.Floor(p.Y)}
}

// Ceil rounds each component toward positive infinity.
func (p PointF) Ceil() PointF {
	return PointF{X: math.Ceil(p.X), Y: math.Ceil(p.Y)}
}

// Int truncates each component toward zero.
// Callers round with Floor or Ceil first when they need a specific direction.
func (p PointF) Int() Point {
	return Point{X: int(p.X), Y: int(p.Y)}
}

// SqrLen returns x*x + y*y.
func (p PointF) SqrLen() float64 {
	return p.X*p.X + p.Y*p.Y
}

// Float widens p to a PointF.
func (p Point) Float() PointF {
	return PointF{X: float64(p.X), Y: float64(p.Y)}
}

// In reports whether p lies inside [0, w) x [0, h).
func (p Point) In(w, h int) bool {
	return p.X >= 0 && p.X < w && p.Y >= 0 && p.Y < h
}
