package radial

import (
	"math"
)

// Affine describes an affine transform via coefficients.
//
// If the coefficients are (a, b, c, d, e, f), then the resulting
// transformation represents this augmented matrix:
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// Wedges only ever need rigid rotations about the menu center, and renderers
// add a uniform scale and a translation to reach device space. Arcs survive
// all of these exactly; see [Affine.IsConformal].
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Scale creates an affine transform representing non-uniform scaling with
// different scale values for x and y
func Scale(x, y float64) Affine {
	return Affine{x, 0, 0, y, 0, 0}
}

// Translate creates an affine transform representing translation.
func Translate(v Vec2) Affine {
	return Affine{1, 0, 0, 1, v.X, v.Y}
}

// Rotate creates an affine transform representing a rotation by th radians
// about the origin.
//
// A positive angle rotates the positive x direction into positive y. Menu
// coordinates are y-down, so this is a clockwise rotation on screen: rotating
// a wedge that opens upwards by π/2 makes it open to the right.
func Rotate(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

// ToDevice returns the transform from menu coordinates to the pixels of an
// image that shows view at scale pixels per unit. The top left corner of view
// maps to the image origin.
func ToDevice(view Rect, scale float64) Affine {
	return Translate(Vec(-view.X0, -view.Y0)).ThenScale(scale, scale)
}

// Mul returns the transform that applies o, then aff.
func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.N0*o.N0 + aff.N2*o.N1,
		aff.N1*o.N0 + aff.N3*o.N1,
		aff.N0*o.N2 + aff.N2*o.N3,
		aff.N1*o.N2 + aff.N3*o.N3,
		aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// ThenScale creates aff followed by a scale of (x, y).
//
// Equivalent to "Scale(x, y) * aff"
func (aff Affine) ThenScale(x, y float64) Affine {
	return Scale(x, y).Mul(aff)
}

// ThenTranslate creates aff followed by a translation of v.
func (aff Affine) ThenTranslate(v Vec2) Affine {
	aff.N4 += v.X
	aff.N5 += v.Y
	return aff
}

func (aff Affine) Determinant() float64 {
	return aff.N0*aff.N3 - aff.N1*aff.N2
}

// IsConformal reports whether aff preserves angles and circles, that is,
// whether it is a composition of rotation, uniform scaling, reflection and
// translation. Arcs can only be transformed exactly by such transforms.
func (aff Affine) IsConformal() bool {
	const eps = 1e-9
	// Columns (N0, N1) and (N2, N3) must be orthogonal and of equal length.
	dot := aff.N0*aff.N2 + aff.N1*aff.N3
	l0 := aff.N0*aff.N0 + aff.N1*aff.N1
	l1 := aff.N2*aff.N2 + aff.N3*aff.N3
	return math.Abs(dot) <= eps*max(l0, 1) && math.Abs(l0-l1) <= eps*max(l0, 1)
}

// uniformScale returns the scale factor of a conformal transform.
func (aff Affine) uniformScale() float64 {
	return math.Sqrt(math.Abs(aff.Determinant()))
}
