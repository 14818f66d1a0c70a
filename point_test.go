package radial

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	diff(t, Vec(3, -4), Pt(4, -2).Sub(Pt(1, 2)))
	diff(t, Pt(-3, 7), Pt(3, 7).MirrorX())
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
}

func TestPointQuantize(t *testing.T) {
	tests := []struct {
		in     Point
		digits int
		want   Point
	}{
		{Pt(1.234567, -7.891), 2, Pt(1.23, -7.89)},
		{Pt(0.005, 0.004), 2, Pt(0.01, 0)},
		{Pt(-0.001, -0.0049), 2, Pt(0, 0)},
		{Pt(12.5, 99.95), 0, Pt(13, 100)},
	}
	for _, tt := range tests {
		got := tt.in.Quantize(tt.digits)
		if got != tt.want {
			t.Errorf("%s.Quantize(%d) = %s, want %s", tt.in, tt.digits, got, tt.want)
		}
		if (got.X == 0 && math.Signbit(got.X)) || (got.Y == 0 && math.Signbit(got.Y)) {
			t.Errorf("%s.Quantize(%d) produced negative zero", tt.in, tt.digits)
		}
	}
}

func TestVecBearing(t *testing.T) {
	const epsilon = 1e-12
	tests := []struct {
		v    Vec2
		want float64
	}{
		{Vec(0, -1), 0},
		{Vec(1, 0), math.Pi / 2},
		{Vec(0, 1), math.Pi},
		{Vec(-1, 0), -math.Pi / 2},
		{Vec(1, -1), math.Pi / 4},
	}
	for _, tt := range tests {
		assertNearFloat(t, tt.v.Bearing(), tt.want, epsilon)
	}
}
