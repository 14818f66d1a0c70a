package radial

import (
	"math"
	"testing"
)

func TestStrokePathOrientation(t *testing.T) {
	sp, err := NewSectorPath(fourItems)
	if err != nil {
		t.Fatal(err)
	}
	stroke := StrokePath(sp.Boundary.Elements(), 2, DefaultTolerance)
	if len(stroke) == 0 {
		t.Fatal("empty stroke")
	}
	// Every piece of the stroke has positive area, so that overlapping
	// pieces never cancel out under the nonzero rule.
	var piece BezPath
	check := func() {
		if len(piece) == 0 {
			return
		}
		if a := piece.SignedArea(); !(a > 0) {
			t.Errorf("stroke piece %v has area %v", piece, a)
		}
		piece = piece[:0]
	}
	for _, el := range stroke {
		if el.Kind == MoveToKind {
			check()
		}
		piece = append(piece, el)
	}
	check()
}

func TestStrokePathBands(t *testing.T) {
	var p BezPath
	p.MoveTo(Pt(0, 0))
	p.LineTo(Pt(10, 0))
	stroke := StrokePath(p.Elements(), 2, DefaultTolerance)

	// Two round joins and one band.
	joins := 2 * math.Pi
	band := 20.0
	assertNearFloat(t, stroke.SignedArea(), joins+band, 1e-9)

	a := Arc{Radius: 10, StartAngle: 0, SweepAngle: -math.Pi / 2}
	var q BezPath
	q.MoveTo(a.Start())
	q.ArcTo(a)
	arcStroke := StrokePath(q.Elements(), 2, DefaultTolerance)
	ring := 0.5 * (11*11 - 9*9) * math.Pi / 2
	assertNearFloat(t, arcStroke.SignedArea(), joins+ring, 1e-9)
}

func TestStrokePathZeroWidth(t *testing.T) {
	p := Circle{Radius: 10}.Path(0)
	if s := StrokePath(p.Elements(), 0, DefaultTolerance); len(s) != 0 {
		t.Errorf("got %d elements for a zero width stroke, want none", len(s))
	}
}

func TestStrokePathCubicTolerance(t *testing.T) {
	var p BezPath
	p.MoveTo(Pt(0, 0))
	p.CubicTo(Pt(0, -40), Pt(60, -40), Pt(60, 0))
	bands := func(tolerance float64) int {
		n := 0
		for _, el := range StrokePath(p.Elements(), 2, tolerance) {
			if el.Kind == MoveToKind {
				n++
			}
		}
		return n
	}
	// One band plus one join per segment, plus the join at the start.
	tests := []struct {
		tolerance float64
		segments  int
	}{
		{140, 1},
		{35, 2},
		{0.1, 38},
	}
	for _, tt := range tests {
		if got, want := bands(tt.tolerance), 2*tt.segments+1; got != want {
			t.Errorf("tolerance %g: got %d pieces, want %d", tt.tolerance, got, want)
		}
	}
	if coarse, fine := bands(1), bands(0.01); coarse >= fine {
		t.Errorf("got %d pieces at tolerance 1 and %d at 0.01, want more for the finer tolerance", coarse, fine)
	}
}
