// Package render paints radial menus.
//
// Renderers draw a [Scene], a snapshot of everything visible about a menu:
// the trigger, the wedges if the menu is open, their labels and the wedge
// under the pointer. Two renderers are provided, [SVG] for vector output and
// [Raster] for images.
package render

import (
	"io"

	"honnef.co/go/radial"
	"honnef.co/go/radial/menu"
	"honnef.co/go/radial/theme"
)

// Renderer writes a scene to w in some format.
type Renderer interface {
	Render(w io.Writer, s Scene) error
}

// Scene is a snapshot of a menu, in menu coordinates.
type Scene struct {
	Trigger      radial.Circle
	TriggerLabel string
	// Wedges are only drawn if Open is set.
	Wedges []radial.Wedge
	// Labels holds one label per wedge.
	Labels []string
	Open   bool
	// Hovered is the index of the wedge under the pointer, or -1.
	Hovered int
	// Radius is the outer radius of the menu, which determines the size of
	// the output.
	Radius float64
	Theme  theme.Theme
}

// NewScene captures the current state of a mounted controller.
func NewScene(c *menu.Controller, th theme.Theme) Scene {
	items := c.Items()
	labels := make([]string, len(items))
	for i, it := range items {
		labels[i] = it.Label
	}
	return Scene{
		Trigger:      c.Trigger(),
		TriggerLabel: c.TriggerLabel(),
		Wedges:       c.Wedges(),
		Labels:       labels,
		Open:         c.State().Visible(),
		Hovered:      -1,
		Radius:       c.Geometry().MenuRadius,
		Theme:        th,
	}
}

// Bounds returns the area covered by the scene, including strokes.
func (s Scene) Bounds() radial.Rect {
	half := s.Theme.StrokeWidth / 2
	return radial.Square(s.Trigger.Center, max(s.Radius, s.Trigger.Radius)+half)
}

func (s Scene) label(i int) string {
	if i < len(s.Labels) {
		return s.Labels[i]
	}
	return ""
}
