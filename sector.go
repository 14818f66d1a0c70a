package radial

import (
	"errors"
	"fmt"
	"iter"
	"math"
)

// ErrConfiguration is matched by every [*ConfigurationError] when using
// [errors.Is].
var ErrConfiguration = errors.New("radial: invalid configuration")

// ConfigurationError reports geometry parameters that would produce a
// degenerate wedge: a non-positive radius, width or corrected angle, or a
// non-finite value.
type ConfigurationError struct {
	// Param names the offending parameter.
	Param string
	// Value is the offending value.
	Value float64
	// Reason describes the violated constraint.
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("radial: invalid %s %g: %s", e.Param, e.Value, e.Reason)
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

func configError(param string, value float64, format string, args ...any) *ConfigurationError {
	return &ConfigurationError{
		Param:  param,
		Value:  value,
		Reason: fmt.Sprintf(format, args...),
	}
}

// SectorSpec describes one wedge of a menu.
type SectorSpec struct {
	OuterRadius float64
	InnerRadius float64
	// Angle is the nominal central angle of the wedge, in radians.
	Angle       float64
	StrokeWidth float64
	// Gap is the linear clearance between neighboring wedges, and between
	// the wedges and the trigger control.
	Gap float64
}

// Validate checks the invariants of the spec. The annulus has to remain
// non-degenerate once the gap and stroke have been inset:
//
//	0 < InnerRadius + Gap + StrokeWidth/2 < OuterRadius − StrokeWidth/2
//
// The lower bound excludes pie-shaped wedges that meet in the center: every
// wedge needs an inner arc of positive radius.
func (s SectorSpec) Validate() error {
	switch {
	case !isFinite(s.OuterRadius):
		return configError("outer radius", s.OuterRadius, "must be finite")
	case !isFinite(s.InnerRadius):
		return configError("inner radius", s.InnerRadius, "must be finite")
	case !isFinite(s.Angle):
		return configError("angle", s.Angle, "must be finite")
	case !isFinite(s.StrokeWidth):
		return configError("stroke width", s.StrokeWidth, "must be finite")
	case !isFinite(s.Gap):
		return configError("gap", s.Gap, "must be finite")
	case s.OuterRadius <= 0:
		return configError("outer radius", s.OuterRadius, "must be positive")
	case s.InnerRadius < 0:
		return configError("inner radius", s.InnerRadius, "must not be negative")
	case s.InnerRadius >= s.OuterRadius:
		return configError("inner radius", s.InnerRadius, "must be smaller than the outer radius %g", s.OuterRadius)
	case s.Angle <= 0 || s.Angle > 2*math.Pi:
		return configError("angle", s.Angle, "must be in (0, 2π]")
	case s.StrokeWidth < 0:
		return configError("stroke width", s.StrokeWidth, "must not be negative")
	case s.Gap < 0:
		return configError("gap", s.Gap, "must not be negative")
	}
	half := s.StrokeWidth / 2
	if s.InnerRadius+s.Gap+half <= 0 {
		return configError("inner radius", s.InnerRadius,
			"leaves no inner arc; a menu without gap or stroke needs a positive inner radius")
	}
	if inner, outer := s.InnerRadius+s.Gap+half, s.OuterRadius-half; inner >= outer {
		return configError("gap", s.Gap,
			"inner arc at radius %g does not fit inside outer arc at radius %g", inner, outer)
	}
	return nil
}

// inset returns the arc length removed from both arcs of a wedge.
func (s SectorSpec) inset() float64 {
	return s.StrokeWidth + s.Gap
}

// Arcs measures the outer and inner arcs of the wedge.
//
// The outer arc is measured at OuterRadius. The inner arc is measured at the
// effective radius InnerRadius+Gap+StrokeWidth, so that it is drawn at
// InnerRadius+Gap+StrokeWidth/2 and loses a larger angle than the outer arc
// for the same linear inset.
func (s SectorSpec) Arcs() (outer, inner ArcMeasurement, err error) {
	if err := s.Validate(); err != nil {
		return ArcMeasurement{}, ArcMeasurement{}, err
	}
	outer, err = ComputeArc(s.OuterRadius, s.Angle, s.StrokeWidth, s.inset())
	if err != nil {
		return ArcMeasurement{}, ArcMeasurement{}, err
	}
	inner, err = ComputeArc(s.InnerRadius+s.Gap+s.StrokeWidth, s.Angle, s.StrokeWidth, s.inset())
	if err != nil {
		return ArcMeasurement{}, ArcMeasurement{}, err
	}
	return outer, inner, nil
}

// ArcMeasurement is one arc of a wedge in the wedge's local frame: centered on
// the origin, symmetric about the vertical axis and bulging upwards.
type ArcMeasurement struct {
	// Radius is the radius the arc is drawn at, which is the input radius
	// minus half the stroke width, so that the stroke is centered on it.
	Radius float64
	// CorrectedAngle is the central angle left after the inset has been
	// removed.
	CorrectedAngle float64
	ChordLeft      Point
	ChordRight     Point
	StrokeWidth    float64
}

// ComputeArc measures an arc of the given radius and nominal angle.
//
// The inset is a linear budget, usually the stroke width plus the gap between
// wedges, that is removed from the arc's length. Because arc length is
// radius·angle, it is converted into an angular correction:
//
//	correctedAngle = (nominalAngle·r − inset) / r
//
// where r is radius − strokeWidth/2. The end points then follow from
// halfChord = r·sin(correctedAngle/2) and chordHeight = −r·cos(correctedAngle/2).
//
// ComputeArc returns a [*ConfigurationError] if r or the corrected angle are
// not positive.
func ComputeArc(radius, nominalAngle, strokeWidth, inset float64) (ArcMeasurement, error) {
	switch {
	case !isFinite(radius):
		return ArcMeasurement{}, configError("radius", radius, "must be finite")
	case !isFinite(nominalAngle) || nominalAngle <= 0 || nominalAngle > 2*math.Pi:
		return ArcMeasurement{}, configError("angle", nominalAngle, "must be in (0, 2π]")
	case !isFinite(strokeWidth) || strokeWidth < 0:
		return ArcMeasurement{}, configError("stroke width", strokeWidth, "must be finite and not negative")
	case !isFinite(inset) || inset < 0:
		return ArcMeasurement{}, configError("inset", inset, "must be finite and not negative")
	}
	r := radius - strokeWidth/2
	if r <= 0 {
		return ArcMeasurement{}, configError("radius", radius, "leaves no room for a stroke of width %g", strokeWidth)
	}
	corrected := (nominalAngle*r - inset) / r
	if corrected <= 0 {
		return ArcMeasurement{}, configError("angle", nominalAngle,
			"arc length %g at radius %g is used up by an inset of %g", nominalAngle*r, r, inset)
	}
	sin, cos := math.Sincos(corrected / 2)
	right := Pt(r*sin, -r*cos)
	return ArcMeasurement{
		Radius:         r,
		CorrectedAngle: corrected,
		ChordLeft:      right.MirrorX(),
		ChordRight:     right,
		StrokeWidth:    strokeWidth,
	}, nil
}

// HalfChord returns half the distance between the arc's end points.
func (m ArcMeasurement) HalfChord() float64 { return m.ChordRight.X }

// ChordHeight returns the y coordinate of the arc's end points.
func (m ArcMeasurement) ChordHeight() float64 { return m.ChordRight.Y }

// Arc returns the measured arc, running clockwise on screen from ChordLeft
// to ChordRight.
func (m ArcMeasurement) Arc() Arc {
	return Arc{
		Radius:     m.Radius,
		StartAngle: -math.Pi/2 - m.CorrectedAngle/2,
		SweepAngle: m.CorrectedAngle,
	}
}

// SectorPath is the boundary of a single wedge in its local frame, together
// with the data a renderer needs to paint it without further computation.
type SectorPath struct {
	Outer ArcMeasurement
	Inner ArcMeasurement
	// Boundary is the closed outline of the wedge.
	Boundary BezPath
	// Bounds is the extent of Boundary inflated by half the stroke width on
	// every side, so that a centered stroke is never clipped.
	Bounds Rect
}

var _ ClosedShape = SectorPath{}

// BuildSectorPath joins two arc measurements into the closed outline of a
// wedge:
//
//   - move to the left end of the outer arc,
//   - follow the outer arc clockwise to its right end,
//   - draw a straight edge to the right end of the inner arc,
//   - follow the inner arc counter-clockwise to its left end,
//   - draw a straight edge back to the start.
//
// The outline has a consistent winding and does not intersect itself.
func BuildSectorPath(outer, inner ArcMeasurement) SectorPath {
	oa := outer.Arc()
	ia := inner.Arc().Reverse()

	var p BezPath
	p.MoveTo(outer.ChordLeft)
	p.Push(PathElement{Kind: ArcToKind, P0: outer.ChordRight, Arc: oa})
	p.LineTo(inner.ChordRight)
	p.Push(PathElement{Kind: ArcToKind, P0: inner.ChordLeft, Arc: ia})
	p.LineTo(outer.ChordLeft)
	p.ClosePath()

	half := max(outer.StrokeWidth, inner.StrokeWidth) / 2
	bounds := oa.BoundingBox().Union(ia.BoundingBox())
	return SectorPath{
		Outer:    outer,
		Inner:    inner,
		Boundary: p,
		Bounds:   bounds.Inflate(half, half),
	}
}

// NewSectorPath validates spec and builds the outline of its wedge.
func NewSectorPath(spec SectorSpec) (SectorPath, error) {
	outer, inner, err := spec.Arcs()
	if err != nil {
		return SectorPath{}, err
	}
	return BuildSectorPath(outer, inner), nil
}

func (sp SectorPath) Path(tolerance float64) BezPath { return sp.Boundary }

func (sp SectorPath) PathElements(tolerance float64) iter.Seq[PathElement] {
	return sp.Boundary.Elements()
}

func (sp SectorPath) BoundingBox() Rect { return sp.Bounds }

// ViewBox returns the origin and size of a viewport that shows exactly the
// wedge and its stroke. The origin is usually negative, as the wedge sits
// above the center of the menu.
func (sp SectorPath) ViewBox() (origin Point, size Size) {
	return sp.Bounds.Origin(), sp.Bounds.Size()
}

func (sp SectorPath) Perimeter(accuracy float64) float64 {
	return sp.Boundary.Perimeter(accuracy)
}

// Area returns the area enclosed by the outline. It is positive, as the
// outline runs clockwise on screen.
func (sp SectorPath) Area() float64 {
	return sp.Boundary.SignedArea()
}

// Contains reports whether pt, in the wedge's local frame, lies within the
// filled region of the wedge. Points in the gaps around a wedge are not
// contained in it.
func (sp SectorPath) Contains(pt Point) bool {
	v := pt.Sub(Point{})
	rho := v.Hypot()
	if rho < sp.Inner.Radius || rho > sp.Outer.Radius {
		return false
	}
	return math.Abs(v.Bearing()) <= sp.edgeBearing(rho)
}

func (sp SectorPath) Winding(pt Point) int {
	if sp.Contains(pt) {
		return 1
	}
	return 0
}

// edgeBearing returns the bearing of the right edge of the wedge at distance
// rho from the center. The edge is a straight line between the arcs' right
// end points, so its bearing varies slightly with the distance.
func (sp SectorPath) edgeBearing(rho float64) float64 {
	a := sp.Inner.ChordRight
	d := sp.Outer.ChordRight.Sub(a)
	av := a.Sub(Point{})
	// |a + t·d|² = ρ²
	roots, n := solveQuadratic(av.Hypot2()-rho*rho, 2*av.Dot(d), d.Hypot2())
	t := 0.0
	for _, root := range roots[:n] {
		if root >= -1e-12 && root <= 1+1e-12 {
			t = root
		}
	}
	t = min(max(t, 0), 1)
	return a.Translate(d.Mul(t)).Sub(Point{}).Bearing()
}

// LabelPoint returns the point, in the wedge's local frame, at which a label
// for the wedge is centered: on the symmetry axis, halfway between the arcs.
func (sp SectorPath) LabelPoint() Point {
	return Pt(0, -(sp.Outer.Radius+sp.Inner.Radius)/2)
}

// SVG returns the outline as SVG path data. A zero MaxPrecision selects
// [DefaultPrecision].
func (sp SectorPath) SVG(opts SVGOptions) string {
	if opts.MaxPrecision == 0 {
		opts.MaxPrecision = DefaultPrecision
	}
	return sp.Boundary.SVG(opts)
}
