package radial

import (
	"iter"
	"math"
)

// DefaultTolerance is a default value for methods that take a tolerance
// argument when approximating arcs with Béziers. It is suitable for painting
// menus at screen resolution.
const DefaultTolerance = 0.1

type ClosedShape interface {
	Shape
	// Area returns the signed area of the closed shape.
	//
	// The convention for positive area is that y increases when x is positive.
	// Thus, it is clockwise when down is increasing y (the usual convention for
	// graphics), and anticlockwise when up is increasing y (the usual
	// convention for math).
	Area() float64

	// Winding returns the [winding number] of a point.
	//
	// The sign of the winding number is consistent with that of
	// [ClosedShape.Area], meaning it is +1 when the point is inside a positive
	// area shape and -1 when it is inside a negative area shape.
	//
	// [winding number]: https://en.wikipedia.org/wiki/Winding_number
	Winding(pt Point) int

	Contains(pt Point) bool
}

type Shape interface {
	// Perimeter returns the length of a shape's perimeter.
	Perimeter(accuracy float64) float64

	// BoundingBox returns the smallest rectangle that encloses the shape.
	BoundingBox() Rect

	// PathElements returns an iterator over path elements that express the
	// shape as a series of "move to", "line to", "arc to", "cubic Bézier to",
	// and "close path" commands.
	//
	// The tolerance parameter controls the accuracy of conversion of geometric
	// primitives to Bézier curves. Shapes that can express themselves exactly
	// with arcs ignore it; see [BezPath.Lower] for converting arcs to Béziers.
	PathElements(tolerance float64) iter.Seq[PathElement]

	Path(tolerance float64) BezPath
}

// solveQuadratic finds real roots of a quadratic equation.
//
// Returns values of x for which c0 + c1 x + c2 x² = 0.0
//
// If the equation is nearly linear, it returns the root ignoring the quadratic
// term. In the degenerate case where all coefficients are zero a single 0.0 is
// returned.
func solveQuadratic(c0, c1, c2 float64) ([2]float64, int) {
	sc0 := c0 / c2
	sc1 := c1 / c2
	if math.IsInf(sc0, 0) || math.IsInf(sc1, 0) || math.IsNaN(sc0) || math.IsNaN(sc1) {
		// c2 is zero or very small, treat as linear eqn
		root := -c0 / c1
		if !math.IsInf(root, 0) && !math.IsNaN(root) {
			return [2]float64{root}, 1
		} else if c0 == 0.0 && c1 == 0.0 {
			// Degenerate case
			return [2]float64{0}, 1
		} else {
			return [2]float64{}, 0
		}
	}
	arg := sc1*sc1 - 4.0*sc0
	var root1 float64
	if math.IsInf(arg, 0) {
		// Likely, calculation of sc1 * sc1 overflowed. Find one root
		// using sc1 x + x² = 0, other root as sc0 / root1.
		root1 = -sc1
	} else {
		if arg < 0.0 {
			return [2]float64{}, 0
		} else if arg == 0.0 {
			return [2]float64{-0.5 * sc1}, 1
		}
		// See https://math.stackexchange.com/questions/866331
		root1 = -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	}
	root2 := sc0 / root1
	if !math.IsInf(root2, 0) && !math.IsNaN(root2) {
		// Sort just to be friendly and make results deterministic.
		if root2 > root1 {
			return [2]float64{root1, root2}, 2
		} else {
			return [2]float64{root2, root1}, 2
		}
	} else {
		return [2]float64{root1}, 1
	}
}

func isFinite(fs ...float64) bool {
	for _, f := range fs {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}
