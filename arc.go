package radial

import (
	"iter"
	"math"
	"slices"
)

// Arc is a circular arc.
//
// Angles are in radians and follow the convention of [VecFromAngle]: a
// positive SweepAngle is clockwise in a y-down coordinate system.
type Arc struct {
	Center     Point
	Radius     float64
	StartAngle float64
	SweepAngle float64
}

var _ Shape = Arc{}

// Start returns the first point of the arc.
func (a Arc) Start() Point {
	return pointOnCircle(a.Center, a.Radius, a.StartAngle)
}

// End returns the last point of the arc.
func (a Arc) End() Point {
	return pointOnCircle(a.Center, a.Radius, a.StartAngle+a.SweepAngle)
}

// Eval returns the point at parameter t ∈ [0, 1], which is proportional to
// the swept angle.
func (a Arc) Eval(t float64) Point {
	return pointOnCircle(a.Center, a.Radius, a.StartAngle+t*a.SweepAngle)
}

// Reverse returns the same arc traversed in the opposite direction.
func (a Arc) Reverse() Arc {
	a.StartAngle += a.SweepAngle
	a.SweepAngle = -a.SweepAngle
	return a
}

// Split splits the arc at the midpoint of its sweep.
func (a Arc) Split() (Arc, Arc) {
	half := 0.5 * a.SweepAngle
	a0 := Arc{Center: a.Center, Radius: a.Radius, StartAngle: a.StartAngle, SweepAngle: half}
	a1 := Arc{Center: a.Center, Radius: a.Radius, StartAngle: a.StartAngle + half, SweepAngle: a.SweepAngle - half}
	return a0, a1
}

// PathElements yields a move to the start of the arc, followed by cubic
// Béziers approximating the arc to within tolerance.
func (a Arc) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		if !yield(MoveTo(a.Start())) {
			return
		}
		for el := range a.Cubics(tolerance) {
			if !yield(el) {
				return
			}
		}
	}
}

func (a Arc) Path(tolerance float64) BezPath { return slices.Collect(a.PathElements(tolerance)) }

// Cubics yields cubic Bézier elements approximating the arc, without a
// leading move. The last element ends exactly at [Arc.End].
func (a Arc) Cubics(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		if a.SweepAngle == 0 || a.Radius == 0 {
			return
		}
		scaledError := math.Abs(a.Radius) / tolerance
		// Number of subdivisions per circle based on error tolerance.
		// Note: this may slightly underestimate the error for quadrants.
		nError := max(math.Pow(1.1163*scaledError, 1.0/6.0), 3.999_999)
		n := math.Ceil(nError * math.Abs(a.SweepAngle) * (1.0 / (2.0 * math.Pi)))
		angleStep := a.SweepAngle / n
		armLen := math.Copysign((4.0/3.0)*math.Tan(math.Abs(0.25*angleStep)), a.SweepAngle) * a.Radius
		angle0 := a.StartAngle
		p0 := a.Start()

		for i := range int(n) {
			angle1 := angle0 + angleStep
			var p3 Point
			if i == int(n)-1 {
				p3 = a.End()
			} else {
				p3 = pointOnCircle(a.Center, a.Radius, angle1)
			}
			p1 := p0.Translate(VecFromAngle(angle0 + math.Pi/2).Mul(armLen))
			p2 := p3.Translate(VecFromAngle(angle1 + math.Pi/2).Mul(-armLen))

			angle0 = angle1
			p0 = p3

			if !yield(CubicTo(p1, p2, p3)) {
				return
			}
		}
	}
}

func pointOnCircle(center Point, radius float64, angle float64) Point {
	sin, cos := math.Sincos(angle)
	return center.Translate(
		Vec2{
			X: cos * radius,
			Y: sin * radius,
		})
}

// BoundingBox returns the exact bounding box of the arc: its end points plus
// every axis extreme of the circle that the arc sweeps through.
func (a Arc) BoundingBox() Rect {
	if a.SweepAngle < 0 {
		return a.Reverse().BoundingBox()
	}
	bbox := NewRectFromPoints(a.Start(), a.End())
	if a.SweepAngle >= 2*math.Pi {
		r := math.Abs(a.Radius)
		return Rect{a.Center.X - r, a.Center.Y - r, a.Center.X + r, a.Center.Y + r}
	}
	for k := range 4 {
		th := float64(k) * math.Pi / 2
		// First occurrence of th at or after the start angle.
		d := math.Mod(th-a.StartAngle, 2*math.Pi)
		if d < 0 {
			d += 2 * math.Pi
		}
		if d <= a.SweepAngle {
			bbox = bbox.UnionPoint(pointOnCircle(a.Center, a.Radius, th))
		}
	}
	return bbox
}

func (a Arc) Perimeter(accuracy float64) float64 {
	return math.Abs(a.SweepAngle * a.Radius)
}

// SignedArea returns the arc's contribution to the signed area of a closed
// path, using Green's theorem.
func (a Arc) SignedArea() float64 {
	th0 := a.StartAngle
	th1 := a.StartAngle + a.SweepAngle
	s0, c0 := math.Sincos(th0)
	s1, c1 := math.Sincos(th1)
	r := a.Radius
	return 0.5 * (r*r*a.SweepAngle +
		r*a.Center.X*(s1-s0) -
		r*a.Center.Y*(c1-c0))
}

// Transform applies an affine transformation to the arc.
//
// Only conformal transformations (see [Affine.IsConformal]) map circular arcs
// to circular arcs; Transform panics for any other transformation.
func (a Arc) Transform(aff Affine) Arc {
	if !aff.IsConformal() {
		panic("radial: non-conformal transformation of Arc")
	}
	c := a.Center.Transform(aff)
	start := a.Start().Transform(aff)
	sweep := a.SweepAngle
	if aff.Determinant() < 0 {
		sweep = -sweep
	}
	return Arc{
		Center:     c,
		Radius:     a.Radius * aff.uniformScale(),
		StartAngle: start.Sub(c).Angle(),
		SweepAngle: sweep,
	}
}

func (a Arc) Translate(v Vec2) Arc {
	a.Center = a.Center.Translate(v)
	return a
}

func (a Arc) IsNaN() bool {
	return a.Center.IsNaN() ||
		math.IsNaN(a.Radius) ||
		math.IsNaN(a.StartAngle) ||
		math.IsNaN(a.SweepAngle)
}
