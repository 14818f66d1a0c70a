package radial

import (
	"fmt"
	"io"
	"iter"
	"math"
	"slices"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a circular arc from the current location to the point.
	ArcToKind
	// Draw a cubic bezier using the current location and the three points.
	CubicToKind
	// Close off the path.
	ClosePathKind
)

// PathElement is one drawing command of a [BezPath].
//
// A valid path has a MoveTo at the beginning of each subpath. For ArcTo
// elements, P0 is the end point of the arc and Arc describes the arc itself;
// the arc's start point is expected to coincide with the current location.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
	Arc  Arc
}

func (el PathElement) String() string {
	switch el.Kind {
	case MoveToKind:
		return fmt.Sprintf("MoveTo(%s)", el.P0)
	case LineToKind:
		return fmt.Sprintf("LineTo(%s)", el.P0)
	case ArcToKind:
		return fmt.Sprintf("ArcTo(%s, r=%g, sweep=%g)", el.P0, el.Arc.Radius, el.Arc.SweepAngle)
	case CubicToKind:
		return fmt.Sprintf("CubicTo(%s, %s, %s)", el.P0, el.P1, el.P2)
	case ClosePathKind:
		return "ClosePath"
	default:
		return "InvalidPathElement"
	}
}

func (el PathElement) Transform(aff Affine) PathElement {
	switch el.Kind {
	case MoveToKind:
		return MoveTo(el.P0.Transform(aff))
	case LineToKind:
		return LineTo(el.P0.Transform(aff))
	case ArcToKind:
		return PathElement{Kind: ArcToKind, P0: el.P0.Transform(aff), Arc: el.Arc.Transform(aff)}
	case CubicToKind:
		return CubicTo(el.P0.Transform(aff), el.P1.Transform(aff), el.P2.Transform(aff))
	case ClosePathKind:
		return ClosePath()
	default:
		return PathElement{}
	}
}

// EndPoint returns the location of the pen after drawing the element. It
// returns false for ClosePath, whose end point depends on the subpath.
func (el PathElement) EndPoint() (Point, bool) {
	switch el.Kind {
	case MoveToKind, LineToKind, ArcToKind:
		return el.P0, true
	case CubicToKind:
		return el.P2, true
	default:
		return Point{}, false
	}
}

func (el PathElement) IsNaN() bool {
	return el.P0.IsNaN() ||
		el.P1.IsNaN() ||
		el.P2.IsNaN() ||
		(el.Kind == ArcToKind && el.Arc.IsNaN())
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

// ArcTo returns an element drawing the arc a, ending at a.End().
func ArcTo(a Arc) PathElement {
	return PathElement{Kind: ArcToKind, P0: a.End(), Arc: a}
}

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

// BezPath is a path made of lines, circular arcs and cubic Béziers, and may
// contain multiple subpaths. Each subpath begins with a MoveTo, then has zero
// or more LineTo, ArcTo and CubicTo elements, and optionally ends with a
// ClosePath.
type BezPath []PathElement

var _ Shape = BezPath{}

func (p BezPath) PathElements(tolerance float64) iter.Seq[PathElement] {
	return slices.Values([]PathElement(p))
}

func (p BezPath) Path(tolerance float64) BezPath { return p }

// Transform returns a new path with an affine transformation applied to the
// path. Paths containing arcs can only be transformed by conformal
// transformations, see [Arc.Transform].
func (p BezPath) Transform(aff Affine) BezPath {
	els := make([]PathElement, len(p))
	for i := range p {
		els[i] = p[i].Transform(aff)
	}
	return els
}

// Push adds an element to the path.
func (p *BezPath) Push(el PathElement) {
	*p = append(*p, el)
}

// MoveTo pushes a "move to" element onto the path.
func (p *BezPath) MoveTo(pt Point) { p.Push(MoveTo(pt)) }

// LineTo pushes a "line to" element onto the path.
func (p *BezPath) LineTo(pt Point) { p.Push(LineTo(pt)) }

// ArcTo pushes an "arc to" element onto the path.
func (p *BezPath) ArcTo(a Arc) { p.Push(ArcTo(a)) }

// CubicTo pushes a "curve to" element onto the path.
func (p *BezPath) CubicTo(p1, p2, p3 Point) { p.Push(CubicTo(p1, p2, p3)) }

// ClosePath pushes a "close path" element onto the path.
func (p *BezPath) ClosePath() { p.Push(ClosePath()) }

// Elements returns an iterator over the path's elements.
func (p BezPath) Elements() iter.Seq[PathElement] { return slices.Values(p) }

// Points returns the on-curve points of the path in order: the targets of
// all elements except ClosePath.
func (p BezPath) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for _, el := range p {
			if pt, ok := el.EndPoint(); ok {
				if !yield(pt) {
					return
				}
			}
		}
	}
}

// Lower returns a copy of the path with every arc replaced by cubic Béziers
// approximating it to within tolerance. This is useful for renderers that do
// not support arcs.
func (p BezPath) Lower(tolerance float64) BezPath {
	out := make(BezPath, 0, len(p))
	for _, el := range p {
		if el.Kind != ArcToKind {
			out = append(out, el)
			continue
		}
		n := len(out)
		for c := range el.Arc.Cubics(tolerance) {
			out = append(out, c)
		}
		if len(out) == n {
			out = append(out, LineTo(el.P0))
		} else {
			// Land exactly on the element's end point.
			out[len(out)-1].P2 = el.P0
		}
	}
	return out
}

// walk calls fn for every drawing element with the pen location it starts
// from. ClosePath elements are reported as lines back to the start of the
// subpath.
func (p BezPath) walk(fn func(from Point, el PathElement)) {
	var start, last Point
	for _, el := range p {
		switch el.Kind {
		case MoveToKind:
			start = el.P0
			last = el.P0
		case LineToKind, ArcToKind:
			fn(last, el)
			last = el.P0
		case CubicToKind:
			fn(last, el)
			last = el.P2
		case ClosePathKind:
			if last != start {
				fn(last, LineTo(start))
			}
			last = start
		default:
			panic(fmt.Sprintf("unhandled case %v", el.Kind))
		}
	}
}

// SignedArea returns the signed area of the path, treating every subpath as
// closed.
func (p BezPath) SignedArea() float64 {
	var area float64
	p.walk(func(from Point, el PathElement) {
		switch el.Kind {
		case LineToKind:
			area += Line{from, el.P0}.SignedArea()
		case ArcToKind:
			area += el.Arc.SignedArea()
		case CubicToKind:
			p0, p1, p2, p3 := from, el.P0, el.P1, el.P2
			v := p0.X*(6.0*p1.Y+3.0*p2.Y+p3.Y) +
				3.0*(p1.X*(-2.0*p0.Y+p2.Y+p3.Y)-p2.X*(p0.Y+p1.Y-2.0*p3.Y)) -
				p3.X*(p0.Y+3.0*p1.Y+6.0*p2.Y)
			area += v * (1.0 / 20.0)
		}
	})
	// Implicitly close subpaths that lack a ClosePath.
	var start, last Point
	open := false
	for _, el := range p {
		switch el.Kind {
		case MoveToKind:
			if open {
				area += Line{last, start}.SignedArea()
			}
			start, last, open = el.P0, el.P0, true
		case ClosePathKind:
			open = false
		default:
			last, _ = el.EndPoint()
		}
	}
	if open {
		area += Line{last, start}.SignedArea()
	}
	return area
}

// Perimeter returns the length of the path. Lines and arcs are measured
// exactly; cubic Béziers are flattened.
func (p BezPath) Perimeter(accuracy float64) float64 {
	var length float64
	p.walk(func(from Point, el PathElement) {
		switch el.Kind {
		case LineToKind:
			length += from.Distance(el.P0)
		case ArcToKind:
			length += el.Arc.Perimeter(accuracy)
		case CubicToKind:
			length += cubicLength(from, el.P0, el.P1, el.P2, accuracy)
		}
	})
	return length
}

func cubicLength(p0, p1, p2, p3 Point, accuracy float64) float64 {
	// Enough subdivisions for the chord error to drop below accuracy for the
	// flat cubics produced by arc approximation.
	n := int(math.Ceil(math.Sqrt(p0.Distance(p1)+p1.Distance(p2)+p2.Distance(p3)) / math.Sqrt(max(accuracy, 1e-9))))
	n = min(max(n, 8), 1024)
	var length float64
	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		mt := 1 - t
		pt := Point{
			X: mt*mt*mt*p0.X + 3*mt*mt*t*p1.X + 3*mt*t*t*p2.X + t*t*t*p3.X,
			Y: mt*mt*mt*p0.Y + 3*mt*mt*t*p1.Y + 3*mt*t*t*p2.Y + t*t*t*p3.Y,
		}
		length += prev.Distance(pt)
		prev = pt
	}
	return length
}

// BoundingBox returns a rectangle enclosing the path. It is exact for lines
// and arcs; for cubic Béziers the control points are included, which may make
// the box larger than necessary.
func (p BezPath) BoundingBox() Rect {
	var bbox Rect
	first := true
	add := func(r Rect) {
		if first {
			bbox = r
			first = false
		} else {
			bbox = bbox.Union(r)
		}
	}
	for _, el := range p {
		switch el.Kind {
		case MoveToKind, LineToKind:
			add(NewRectFromPoints(el.P0, el.P0))
		case ArcToKind:
			add(el.Arc.BoundingBox())
		case CubicToKind:
			add(NewRectFromPoints(el.P0, el.P1).UnionPoint(el.P2))
		}
	}
	return bbox
}

// IsNaN reports whether any element of the path contains NaN values.
func (p BezPath) IsNaN() bool {
	return slices.ContainsFunc(p, PathElement.IsNaN)
}

// SVG returns the path as a string of SVG path commands. See [SVG].
func (p BezPath) SVG(opts SVGOptions) string {
	return SVG(p.Elements(), opts)
}

// WriteSVG writes the path as SVG path commands to w. See [WriteSVG].
func (p BezPath) WriteSVG(w io.Writer, opts SVGOptions) error {
	return WriteSVG(w, p.Elements(), opts)
}
