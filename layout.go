package radial

import (
	"math"
)

// Wedge is one positioned wedge of a menu.
type Wedge struct {
	// Index is the position of the wedge's item in the menu's item list.
	Index int
	// Rotation is the clockwise rotation, in radians, that moves the wedge
	// from its local frame (opening upwards) to its place on the ring.
	Rotation float64
	// Sector is the wedge's outline in its local frame. All wedges of a
	// layout share the same outline.
	Sector SectorPath
}

// LayoutSectors divides a full turn evenly between itemCount wedges.
//
// The wedge for item i is rotated by i·2π/itemCount, so the first item sits
// at the top and the others follow clockwise, in item order. The outline is
// computed once and shared by all wedges.
//
// Zero items yield an empty layout, which is not an error. A negative count
// and parameters that leave no room for the wedges yield a
// [*ConfigurationError], as do an inner radius, gap and stroke width that are
// all zero; see [SectorSpec.Validate].
func LayoutSectors(itemCount int, outerRadius, innerRadius, strokeWidth, gap float64) ([]Wedge, error) {
	if itemCount < 0 {
		return nil, configError("item count", float64(itemCount), "must not be negative")
	}
	if itemCount == 0 {
		return []Wedge{}, nil
	}
	sectorAngle := 2 * math.Pi / float64(itemCount)
	sector, err := NewSectorPath(SectorSpec{
		OuterRadius: outerRadius,
		InnerRadius: innerRadius,
		Angle:       sectorAngle,
		StrokeWidth: strokeWidth,
		Gap:         gap,
	})
	if err != nil {
		return nil, err
	}
	wedges := make([]Wedge, itemCount)
	for i := range wedges {
		wedges[i] = Wedge{
			Index:    i,
			Rotation: float64(i) * sectorAngle,
			Sector:   sector,
		}
	}
	return wedges, nil
}

// Transform returns the transformation from the wedge's local frame to menu
// coordinates.
func (w Wedge) Transform() Affine {
	return Rotate(w.Rotation)
}

// Path returns the wedge's outline in menu coordinates.
func (w Wedge) Path() BezPath {
	return w.Sector.Boundary.Transform(w.Transform())
}

// BoundingBox returns the bounding box of the wedge and its stroke in menu
// coordinates.
func (w Wedge) BoundingBox() Rect {
	half := w.Sector.Outer.StrokeWidth / 2
	return w.Path().BoundingBox().Inflate(half, half)
}

// Contains reports whether pt, in menu coordinates, lies within the wedge.
func (w Wedge) Contains(pt Point) bool {
	return w.Sector.Contains(pt.Transform(Rotate(-w.Rotation)))
}

// LabelPoint returns the center of the wedge's label in menu coordinates.
func (w Wedge) LabelPoint() Point {
	return w.Sector.LabelPoint().Transform(w.Transform())
}

// RotationDegrees returns the wedge's rotation in degrees.
func (w Wedge) RotationDegrees() float64 {
	return w.Rotation * 180 / math.Pi
}

// HitTest returns the index of the wedge containing pt, in menu coordinates.
// Points in the gaps between wedges hit nothing.
func HitTest(wedges []Wedge, pt Point) (int, bool) {
	for _, w := range wedges {
		if w.Contains(pt) {
			return w.Index, true
		}
	}
	return -1, false
}
