package radial

import (
	"fmt"
	"math"
)

// Point is a position in menu coordinates: the origin is the menu center, x
// grows to the right and y grows downwards.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

func (pt Point) Translate(o Vec2) Point {
	return Point{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
	}
}

func (pt Point) Transform(aff Affine) Point {
	return Point{
		X: aff.N0*pt.X + aff.N2*pt.Y + aff.N4,
		Y: aff.N1*pt.X + aff.N3*pt.Y + aff.N5,
	}
}

// Sub computes pt−o.
// To subtract a vector from pt, use Translate and negate the vector.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	return math.Hypot(pt.X-o.X, pt.Y-o.Y)
}

// MirrorX returns the point reflected across the vertical axis, which is the
// symmetry axis of a wedge in its local frame.
func (pt Point) MirrorX() Point {
	return Point{X: -pt.X, Y: pt.Y}
}

// Quantize rounds x and y to the given number of fractional digits.
//
// Quantize exists for comparing and serializing coordinates. Geometry code
// must not quantize intermediate results.
func (pt Point) Quantize(digits int) Point {
	return Point{
		X: quantize(pt.X, digits),
		Y: quantize(pt.Y, digits),
	}
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}

func quantize(f float64, digits int) float64 {
	p := math.Pow10(digits)
	q := math.Round(f*p) / p
	if q == 0 {
		// Avoid -0, which would serialize as "-0".
		return 0
	}
	return q
}
