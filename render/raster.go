package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"honnef.co/go/radial"
)

// DefaultFontSize is the label size, in points at a scale of 1.
const DefaultFontSize = 12

// Raster renders scenes as PNG images.
type Raster struct {
	// Scale is the number of pixels per menu unit. Zero means 1.
	Scale float64
	// Tolerance is the maximum error, in pixels, when flattening arcs. Zero
	// selects [radial.DefaultTolerance].
	Tolerance float64
	// FontSize is the size of labels in points at a scale of 1. Zero
	// selects [DefaultFontSize].
	FontSize float64
}

var _ Renderer = Raster{}

// Render writes s to w as a PNG image.
func (r Raster) Render(w io.Writer, s Scene) error {
	img, err := r.Image(s)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// Image paints s onto a new transparent image. The center of the menu is at
// the center of the image.
func (r Raster) Image(s Scene) (*image.RGBA, error) {
	scale := r.Scale
	if scale == 0 {
		scale = 1
	}
	if !(scale > 0) || math.IsInf(scale, 0) {
		return nil, fmt.Errorf("render: invalid scale %g", scale)
	}
	tol := r.Tolerance
	if tol == 0 {
		tol = radial.DefaultTolerance
	}
	b := s.Bounds()
	size := b.Size().Scale(scale).Ceil()
	img := image.NewRGBA(image.Rect(0, 0, int(size.Width), int(size.Height)))
	face, err := r.face(scale)
	if err != nil {
		return nil, err
	}
	p := painter{
		img:   img,
		aff:   radial.ToDevice(b, scale),
		tol:   tol,
		width: s.Theme.StrokeWidth * scale,
		face:  face,
	}
	th := s.Theme

	if s.Open {
		for _, wg := range s.Wedges {
			p.shape(wg.Path(), th.Fill(wg.Index == s.Hovered), th.StrokeColor)
		}
		for _, wg := range s.Wedges {
			p.text(wg.LabelPoint(), s.label(wg.Index), th.StrokeColor)
		}
	}
	p.shape(s.Trigger.Path(tol), th.BackgroundColor, th.StrokeColor)
	p.text(s.Trigger.Center, s.TriggerLabel, th.StrokeColor)
	return img, nil
}

func (r Raster) face(scale float64) (font.Face, error) {
	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("render: parse font: %w", err)
	}
	fontSize := r.FontSize
	if fontSize == 0 {
		fontSize = DefaultFontSize
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    fontSize * scale,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("render: load font: %w", err)
	}
	return face, nil
}

type painter struct {
	img   *image.RGBA
	aff   radial.Affine
	tol   float64
	width float64
	face  font.Face
}

// shape fills and strokes p, which is in menu coordinates.
func (pt painter) shape(p radial.BezPath, fill, stroke color.Color) {
	dev := p.Transform(pt.aff)
	pt.fill(dev, fill)
	if pt.width > 0 {
		pt.fill(radial.StrokePath(dev.Elements(), pt.width, pt.tol), stroke)
	}
}

// fill fills p, which is in device coordinates.
func (pt painter) fill(p radial.BezPath, c color.Color) {
	b := pt.img.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	for el := range p.Lower(pt.tol).Elements() {
		switch el.Kind {
		case radial.MoveToKind:
			z.MoveTo(float32(el.P0.X), float32(el.P0.Y))
		case radial.LineToKind:
			z.LineTo(float32(el.P0.X), float32(el.P0.Y))
		case radial.CubicToKind:
			z.CubeTo(
				float32(el.P0.X), float32(el.P0.Y),
				float32(el.P1.X), float32(el.P1.Y),
				float32(el.P2.X), float32(el.P2.Y),
			)
		case radial.ClosePathKind:
			z.ClosePath()
		default:
			panic("unreachable")
		}
	}
	z.Draw(pt.img, b, image.NewUniform(c), image.Point{})
}

// text draws label centered on at, which is in menu coordinates.
func (pt painter) text(at radial.Point, label string, c color.Color) {
	if label == "" {
		return
	}
	dev := at.Transform(pt.aff)
	width := font.MeasureString(pt.face, label)
	m := pt.face.Metrics()
	// Center the glyphs vertically on the point.
	baseline := fixed.Int26_6(math.Round(dev.Y*64)) + (m.Ascent-m.Descent)/2
	d := &font.Drawer{
		Dst:  pt.img,
		Src:  image.NewUniform(c),
		Face: pt.face,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(math.Round(dev.X*64)) - width/2,
			Y: baseline,
		},
	}
	d.DrawString(label)
}
