package radial

import (
	"math"
	"testing"
)

func TestAffineBasic(t *testing.T) {
	const epsilon = 1e-9
	p := Pt(3, 4)

	assertNear(t, p.Transform(Scale(2, 2)), Pt(6, 8), epsilon)
	assertNear(t, p.Transform(Scale(1, -1)), Pt(3, -4), epsilon)
	assertNear(t, p.Transform(Rotate(0)), p, epsilon)
	assertNear(t, p.Transform(Rotate(math.Pi/2)), Pt(-4, 3), epsilon)
	assertNear(t, p.Transform(Translate(Vec(5, 6))), Pt(8, 10), epsilon)
	assertNear(t, p.Transform(Rotate(0).ThenTranslate(Vec(5, 6))), Pt(8, 10), epsilon)
}

func TestAffineMul(t *testing.T) {
	const epsilon = 1e-9
	a1 := Affine{1, 2, 3, 4, 5, 6}
	a2 := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}

	for _, pt := range []Point{Pt(1, 0), Pt(0, 1), Pt(1, 1)} {
		assertNear(t, pt.Transform(a2).Transform(a1), pt.Transform(a1.Mul(a2)), epsilon)
	}
}

func TestRotateClockwiseOnScreen(t *testing.T) {
	const epsilon = 1e-9
	// Up, rotated by a quarter turn, points right.
	assertNear(t, Pt(0, -1).Transform(Rotate(math.Pi/2)), Pt(1, 0), epsilon)
	assertNear(t, Pt(0, -1).Transform(Rotate(math.Pi)), Pt(0, 1), epsilon)
	assertNear(t, Pt(0, -1).Transform(Rotate(3*math.Pi/2)), Pt(-1, 0), epsilon)
}

func TestToDevice(t *testing.T) {
	const epsilon = 1e-9
	view := Square(Point{}, 101)
	aff := ToDevice(view, 2)
	assertNear(t, Pt(-101, -101).Transform(aff), Pt(0, 0), epsilon)
	assertNear(t, Pt(0, 0).Transform(aff), Pt(202, 202), epsilon)
	assertNear(t, Pt(101, 101).Transform(aff), Pt(404, 404), epsilon)
	if !aff.IsConformal() {
		t.Error("device transform is not conformal")
	}
}

func TestAffineIsConformal(t *testing.T) {
	tests := []struct {
		aff  Affine
		want bool
	}{
		{Scale(1, 1), true},
		{Rotate(1.234), true},
		{Scale(3, 3).Mul(Rotate(0.5)), true},
		{Scale(1, -1), true},
		{Translate(Vec(10, -4)), true},
		{Scale(2, 1), false},
		{Affine{1, 0, 0.5, 1, 0, 0}, false},
	}
	for _, tt := range tests {
		if got := tt.aff.IsConformal(); got != tt.want {
			t.Errorf("%v.IsConformal() = %t, want %t", tt.aff, got, tt.want)
		}
	}
}
