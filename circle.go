package radial

import (
	"iter"
	"math"
	"slices"
)

// Circle is used for the trigger control at the center of a menu and for the
// outer boundary of a menu's interactive surface.
type Circle struct {
	Center Point
	Radius float64
}

var _ ClosedShape = Circle{}

// Contains implements ClosedShape.
func (c Circle) Contains(pt Point) bool {
	return c.Winding(pt) != 0
}

func (c Circle) Path(tolerance float64) BezPath { return slices.Collect(c.PathElements(tolerance)) }

// PathElements expresses the circle as a single clockwise arc starting at
// the rightmost point.
func (c Circle) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		a := Arc{
			Center:     c.Center,
			Radius:     math.Abs(c.Radius),
			StartAngle: 0,
			SweepAngle: 2 * math.Pi,
		}
		_ = yield(MoveTo(a.Start())) &&
			yield(ArcTo(a)) &&
			yield(ClosePath())
	}
}

func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

func (c Circle) BoundingBox() Rect {
	return Square(c.Center, math.Abs(c.Radius))
}

func (c Circle) Perimeter(accuracy float64) float64 {
	return math.Abs(2 * math.Pi * c.Radius)
}

func (c Circle) Winding(pt Point) int {
	if pt.Sub(c.Center).Hypot2() < c.Radius*c.Radius {
		return 1
	} else {
		return 0
	}
}
