// Package theme holds the style variables of a radial menu and loads menu
// descriptions from YAML files.
package theme

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// Color is an opaque color that is written as a hex triplet such as
// "#424242". It implements [color.Color].
type Color struct {
	c colorful.Color
}

var _ color.Color = Color{}

// ParseColor parses a color in "#rrggbb" or "#rgb" notation.
func ParseColor(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("theme: invalid color %q: %w", s, err)
	}
	return Color{c}, nil
}

// MustParseColor is like [ParseColor] but panics on invalid input.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the color as a lowercase "#rrggbb" string.
func (c Color) Hex() string { return c.c.Hex() }

func (c Color) String() string { return c.Hex() }

func (c Color) RGBA() (r, g, b, a uint32) { return c.c.RGBA() }

// NRGBA returns the color as an 8-bit color.
func (c Color) NRGBA() color.NRGBA {
	r, g, b := c.c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*c = parsed
	return nil
}

func (c Color) MarshalYAML() (any, error) {
	return c.Hex(), nil
}

// Theme holds the style variables of a menu.
type Theme struct {
	// BackgroundColor fills the trigger and the wedges.
	BackgroundColor Color `yaml:"background_color"`
	// HoverColor fills the wedge under the pointer.
	HoverColor  Color   `yaml:"hover_color"`
	StrokeWidth float64 `yaml:"stroke_width"`
	// StrokeColor is used for outlines and for the text of labels.
	StrokeColor Color `yaml:"stroke_color"`
}

// Default returns the default theme: dark grey wedges with a lighter hover
// color and no stroke.
func Default() Theme {
	return Theme{
		BackgroundColor: MustParseColor("#424242"),
		HoverColor:      MustParseColor("#696969"),
		StrokeWidth:     0,
		StrokeColor:     MustParseColor("#A0A0A0"),
	}
}

// Fill returns the fill color of a wedge.
func (th Theme) Fill(hovered bool) Color {
	if hovered {
		return th.HoverColor
	}
	return th.BackgroundColor
}
