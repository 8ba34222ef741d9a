package core

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	a := Pt(1.5, -2)
	b := Pt(0.5, 4)

	if got := a.Add(b); got != Pt(2, 2) {
		t.Errorf("Add = %v, expected {2 2}", got)
	}
	if got := a.Sub(b); got != Pt(1, -6) {
		t.Errorf("Sub = %v, expected {1 -6}", got)
	}
	if got := a.Mul(b); got != Pt(0.75, -8) {
		t.Errorf("Mul = %v, expected {0.75 -8}", got)
	}
	if got := a.Scale(2); got != Pt(3, -4) {
		t.Errorf("Scale = %v, expected {3 -4}", got)
	}

	// Operands are values and stay untouched
	if a != Pt(1.5, -2) || b != Pt(0.5, 4) {
		t.Error("arithmetic should not modify its operands")
	}
}

func TestPointRounding(t *testing.T) {
	tests := []struct {
		name  string
		in    PointF
		floor PointF
		ceil  PointF
		trunc Point
	}{
		{"positive fractions", Pt(1.2, 3.7), Pt(1, 3), Pt(2, 4), Point{1, 3}},
		{"negative fractions", Pt(-1.2, -3.7), Pt(-2, -4), Pt(-1, -3), Point{-1, -3}},
		{"integers", Pt(-8, 8), Pt(-8, 8), Pt(-8, 8), Point{-8, 8}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Floor(); got != tc.floor {
				t.Errorf("Floor() = %v, expected %v", got, tc.floor)
			}
			if got := tc.in.Ceil(); got != tc.ceil {
				t.Errorf("Ceil() = %v, expected %v", got, tc.ceil)
			}
			if got := tc.in.Int(); got != tc.trunc {
				t.Errorf("Int() = %v, expected %v", got, tc.trunc)
			}
		})
	}
}

func TestPointFloatAndSqrLen(t *testing.T) {
	if got := (Point{3, -4}).Float(); got != Pt(3, -4) {
		t.Errorf("Float() = %v, expected {3 -4}", got)
	}
	if got := Pt(3, -4).SqrLen(); got != 25 {
		t.Errorf("SqrLen() = %v, expected 25", got)
	}
}

func TestPointNaNPropagates(t *testing.T) {
	p := Pt(math.NaN(), 1).Add(Pt(1, 1))
	if !math.IsNaN(p.X) {
		t.Errorf("NaN should propagate through Add, got %v", p.X)
	}
}

func TestPointIn(t *testing.T) {
	tests := []struct {
		p        Point
		expected bool
	}{
		{Point{0, 0}, true},
		{Point{127, 31}, true},
		{Point{128, 0}, false},
		{Point{0, 32}, false},
		{Point{-1, 5}, false},
	}
	for _, tc := range tests {
		if got := tc.p.In(128, 32); got != tc.expected {
			t.Errorf("%v.In(128, 32) = %v, expected %v", tc.p, got, tc.expected)
		}
	}
}
