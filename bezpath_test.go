package radial

import (
	"math"
	"slices"
	"testing"
)

func TestBezPathSignedAreaImplicitClose(t *testing.T) {
	var closed BezPath
	closed.MoveTo(Pt(0, 0))
	closed.LineTo(Pt(4, 0))
	closed.LineTo(Pt(4, 3))
	closed.ClosePath()

	var open BezPath
	open.MoveTo(Pt(0, 0))
	open.LineTo(Pt(4, 0))
	open.LineTo(Pt(4, 3))

	assertNearFloat(t, closed.SignedArea(), 6, 1e-12)
	assertNearFloat(t, open.SignedArea(), 6, 1e-12)

	// Two subpaths of opposite orientation cancel out.
	var both BezPath
	both = append(both, closed...)
	both.MoveTo(Pt(0, 0))
	both.LineTo(Pt(4, 3))
	both.LineTo(Pt(4, 0))
	both.ClosePath()
	assertNearFloat(t, both.SignedArea(), 0, 1e-12)
}

func TestBezPathPoints(t *testing.T) {
	a := Arc{Radius: 1, StartAngle: 0, SweepAngle: math.Pi / 2}
	var p BezPath
	p.MoveTo(Pt(1, 0))
	p.ArcTo(a)
	p.LineTo(Pt(0, 0))
	p.CubicTo(Pt(0.5, 0), Pt(1, 0), Pt(1, 0))
	p.ClosePath()

	want := []Point{Pt(1, 0), a.End(), Pt(0, 0), Pt(1, 0)}
	diff(t, want, slices.Collect(p.Points()))
}

func TestBezPathLower(t *testing.T) {
	a := Arc{Center: Pt(1, 2), Radius: 5, StartAngle: -math.Pi, SweepAngle: math.Pi}
	var p BezPath
	p.MoveTo(a.Start())
	p.Push(PathElement{Kind: ArcToKind, P0: Pt(6, 2), Arc: a})
	p.LineTo(Pt(1, 2))
	p.ClosePath()

	lowered := p.Lower(1e-3)
	if slices.ContainsFunc(lowered, func(el PathElement) bool { return el.Kind == ArcToKind }) {
		t.Fatal("lowered path still contains arcs")
	}
	// The last cubic of the arc lands exactly on the element's end point.
	i := slices.IndexFunc(lowered, func(el PathElement) bool { return el.Kind == LineToKind })
	if got := lowered[i-1].P2; got != Pt(6, 2) {
		t.Errorf("arc lowered to end at %s, want %s", got, Pt(6, 2))
	}
	if d := math.Abs(p.SignedArea() - lowered.SignedArea()); d > 5e-2 {
		t.Errorf("areas differ by %g after lowering", d)
	}

	// Degenerate arcs become lines.
	var q BezPath
	q.MoveTo(Pt(0, 0))
	q.Push(PathElement{Kind: ArcToKind, P0: Pt(0, 0), Arc: Arc{}})
	diff(t, BezPath{MoveTo(Pt(0, 0)), LineTo(Pt(0, 0))}, q.Lower(0.1))
}

func TestBezPathPerimeter(t *testing.T) {
	p := Circle{Radius: 2}.Path(0)
	assertNearFloat(t, p.Perimeter(1e-9), 4*math.Pi, 1e-9)

	var r BezPath
	r.MoveTo(Pt(0, 0))
	r.LineTo(Pt(3, 0))
	r.LineTo(Pt(3, 4))
	r.ClosePath()
	assertNearFloat(t, r.Perimeter(1e-9), 12, 1e-12)

	// Flattened cubics come close to the exact length.
	assertNearFloat(t, p.Lower(1e-6).Perimeter(1e-6), 4*math.Pi, 1e-3)
}

func TestBezPathTransform(t *testing.T) {
	const epsilon = 1e-9
	p := Circle{Center: Pt(1, 0), Radius: 1}.Path(0)
	aff := Rotate(math.Pi / 2)
	got := p.Transform(aff)
	if len(got) != len(p) {
		t.Fatalf("got %d elements, want %d", len(got), len(p))
	}
	assertNear(t, got[0].P0, Pt(0, 2), epsilon)
	assertNear(t, got[1].Arc.Center, Pt(0, 1), epsilon)
	diff(t, Rect{-1, 0, 1, 2}, got.BoundingBox(), approx(epsilon))
}

func TestBezPathIsNaN(t *testing.T) {
	var p BezPath
	p.MoveTo(Pt(0, 0))
	p.LineTo(Pt(1, 1))
	if p.IsNaN() {
		t.Error("finite path reported as NaN")
	}
	p.LineTo(Pt(math.NaN(), 0))
	if !p.IsNaN() {
		t.Error("NaN path not reported")
	}
}
