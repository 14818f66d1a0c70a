// Package radial computes the geometry of radial ("pie") popup menus: a round
// trigger control surrounded by N wedge-shaped, selectable regions.
//
// Each wedge is an annular sector, a "donut slice", bounded by two concentric
// arcs and two straight edges. The package derives the exact boundary of such
// a wedge from an outer radius, an inner radius, a central angle, a stroke width
// and the gap between neighboring wedges, and produces data only: path
// elements, bounding boxes and rotations. Painting is left to a renderer; see
// the render sub-package for SVG and raster implementations.
//
// # Coordinate system
//
// All geometry uses a y-down coordinate system, as is common for graphics, with
// the center of the menu at the origin. A positive rotation turns the positive
// x axis towards the positive y axis, which is clockwise on screen. A single
// wedge is computed in its local frame, symmetric about the vertical axis and
// opening upwards, and then rotated into its position on the ring.
//
// # Arc geometry
//
// [ComputeArc] measures one arc of a wedge. The nominal angle of a wedge,
// 2π/N, would make neighboring wedges touch. To separate them by a constant
// linear distance, the arc length budget of the stroke and the gap is removed
// from the arc and converted back into an angle:
//
//	correctedAngle = (nominalAngle·r − inset) / r
//
// Equal linear gaps subtend larger angles at smaller radii. The inner arc is
// therefore drawn at InnerRadius+Gap+StrokeWidth/2, not at InnerRadius, and
// its angle is corrected at that radius. The two arcs of a wedge are thus
// treated asymmetrically, which keeps the visual gap between wedges looking
// even.
//
// [BuildSectorPath] joins an outer and an inner measurement into a closed
// [SectorPath], and [LayoutSectors] places one wedge per menu item around the
// ring.
//
// # Shapes and paths
//
// The package carries a small set of 2D primitives used by the geometry
// engine and by renderers: [Point], [Vec2], [Size], [Rect], [Affine], [Line],
// [Circle] and [Arc]. Shapes can be converted to a [BezPath], a slice of
// [PathElement] values describing move, line, arc, cubic Bézier and close
// commands. [WriteSVG] serializes path elements to SVG path data with a fixed
// number of fractional digits; rounding happens only there, never between
// computations.
package radial
