package radial

// Line is a straight segment, such as the radial edge that joins the inner
// and outer arc of a wedge.
type Line struct {
	P0 Point
	P1 Point
}

// Eval returns the point at parameter t, linearly interpolating between P0
// and P1.
func (l Line) Eval(t float64) Point {
	return l.P0.Translate(l.P1.Sub(l.P0).Mul(t))
}

// SignedArea returns the signed area under the line, which is the line's
// contribution to the area of a closed path.
func (l Line) SignedArea() float64 {
	return 0.5 * (l.P0.X*l.P1.Y - l.P1.X*l.P0.Y)
}
