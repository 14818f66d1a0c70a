package radial

import (
	"iter"
	"math"
)

// StrokePath expands a stroke of the given width into a fill.
//
// The result is a union of positively oriented pieces: a band around every
// line and arc, and a round join at every vertex. It is meant to be filled
// with the nonzero winding rule; the pieces overlap, so it must not be filled
// with the even-odd rule. Strokes on menu outlines are thin and closed, so
// the outline has no caps.
//
// Cubic Béziers are stroked as polylines. The number of segments grows with
// the length of the control polygon and shrinks with tolerance.
func StrokePath(seq iter.Seq[PathElement], width, tolerance float64) BezPath {
	var out BezPath
	half := width / 2
	if !(half > 0) {
		return out
	}
	var start, last Point
	open := false
	join := func(pt Point) {
		out = append(out, Circle{Center: pt, Radius: half}.Path(tolerance)...)
	}
	line := func(p0, p1 Point) {
		if p0 == p1 {
			return
		}
		n := Vec(-(p1.Y - p0.Y), p1.X-p0.X).Normalize().Mul(half)
		out.MoveTo(p0.Translate(n.Negate()))
		out.LineTo(p1.Translate(n.Negate()))
		out.LineTo(p1.Translate(n))
		out.LineTo(p0.Translate(n))
		out.ClosePath()
		join(p1)
	}
	for el := range seq {
		switch el.Kind {
		case MoveToKind:
			start, last, open = el.P0, el.P0, true
			join(el.P0)
		case LineToKind:
			line(last, el.P0)
			last = el.P0
		case ArcToKind:
			out = append(out, arcBand(el.Arc, half)...)
			join(el.P0)
			last = el.P0
		case CubicToKind:
			p0 := last
			n := cubicSegments(p0, el.P0, el.P1, el.P2, tolerance)
			for i := 1; i <= n; i++ {
				t := float64(i) / float64(n)
				mt := 1 - t
				pt := Point{
					X: mt*mt*mt*p0.X + 3*mt*mt*t*el.P0.X + 3*mt*t*t*el.P1.X + t*t*t*el.P2.X,
					Y: mt*mt*mt*p0.Y + 3*mt*mt*t*el.P0.Y + 3*mt*t*t*el.P1.Y + t*t*t*el.P2.Y,
				}
				line(last, pt)
				last = pt
			}
			last = el.P2
		case ClosePathKind:
			if open {
				line(last, start)
			}
			last = start
		default:
			panic("unreachable")
		}
	}
	return out
}

// cubicSegments returns the number of line segments used to flatten a cubic.
// The flattening error of n segments falls with 1/n², so n grows with the
// square root of length over tolerance.
func cubicSegments(p0, p1, p2, p3 Point, tolerance float64) int {
	l := p0.Distance(p1) + p1.Distance(p2) + p2.Distance(p3)
	return max(1, int(math.Ceil(math.Sqrt(l/max(tolerance, 1e-9)))))
}

// arcBand returns the closed region within half of the arc.
func arcBand(a Arc, half float64) BezPath {
	if a.SweepAngle < 0 {
		a = a.Reverse()
	}
	r := math.Abs(a.Radius)
	outer := Arc{Center: a.Center, Radius: r + half, StartAngle: a.StartAngle, SweepAngle: a.SweepAngle}
	var p BezPath
	p.MoveTo(outer.Start())
	p.ArcTo(outer)
	if inner := r - half; inner > 0 {
		ia := Arc{Center: a.Center, Radius: inner, StartAngle: a.StartAngle, SweepAngle: a.SweepAngle}.Reverse()
		p.LineTo(ia.Start())
		p.ArcTo(ia)
	} else {
		p.LineTo(a.Center)
	}
	p.ClosePath()
	return p
}
