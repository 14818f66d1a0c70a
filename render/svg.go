package render

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"honnef.co/go/radial"
	"honnef.co/go/radial/theme"
)

// SVG renders scenes as standalone SVG documents.
//
// Every wedge is written with its shared local outline and a rotate(deg)
// transform, so the path data is identical for all wedges of a menu.
type SVG struct {
	// Precision is the number of fractional digits of coordinates. Zero
	// selects [radial.DefaultPrecision].
	Precision int
}

var _ Renderer = SVG{}

func (r SVG) precision() int {
	if r.Precision == 0 {
		return radial.DefaultPrecision
	}
	return r.Precision
}

func (r SVG) num(n float64) string {
	return radial.FormatNumber(n, r.precision())
}

// Render writes s as an SVG document.
func (r SVG) Render(w io.Writer, s Scene) error {
	bw := bufio.NewWriter(w)
	th := s.Theme
	b := s.Bounds()

	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="%s %s %s %s">`+"\n",
		r.num(b.Width()), r.num(b.Height()),
		r.num(b.X0), r.num(b.Y0), r.num(b.Width()), r.num(b.Height()))

	if s.Open && len(s.Wedges) > 0 {
		d := s.Wedges[0].Sector.SVG(radial.SVGOptions{MaxPrecision: r.precision()})
		bw.WriteString(`<g class="wedges">` + "\n")
		for _, wg := range s.Wedges {
			fmt.Fprintf(bw, `<path transform="rotate(%s)" d="%s" %s/>`+"\n",
				r.num(wg.RotationDegrees()), d, r.paint(th.Fill(wg.Index == s.Hovered), th))
		}
		for _, wg := range s.Wedges {
			r.text(bw, wg.LabelPoint(), s.label(wg.Index), th.StrokeColor)
		}
		bw.WriteString("</g>\n")
	}

	c := s.Trigger
	fmt.Fprintf(bw, `<circle class="trigger" cx="%s" cy="%s" r="%s" %s/>`+"\n",
		r.num(c.Center.X), r.num(c.Center.Y), r.num(c.Radius), r.paint(th.BackgroundColor, th))
	r.text(bw, c.Center, s.TriggerLabel, th.StrokeColor)

	bw.WriteString("</svg>\n")
	return bw.Flush()
}

func (r SVG) paint(fill theme.Color, th theme.Theme) string {
	return fmt.Sprintf(`fill="%s" stroke="%s" stroke-width="%s"`, fill.Hex(), th.StrokeColor.Hex(), r.num(th.StrokeWidth))
}

func (r SVG) text(w *bufio.Writer, at radial.Point, label string, fill theme.Color) {
	if label == "" {
		return
	}
	fmt.Fprintf(w, `<text x="%s" y="%s" fill="%s" text-anchor="middle" dominant-baseline="central">`,
		r.num(at.X), r.num(at.Y), fill.Hex())
	xml.EscapeText(w, []byte(label))
	w.WriteString("</text>\n")
}

// WriteWedgeSVG writes a standalone SVG document showing a single wedge in
// its local frame. The viewport is the wedge's bounding box, so the document
// can be placed over the center of the menu and rotated into position.
func WriteWedgeSVG(w io.Writer, sp radial.SectorPath, th theme.Theme, precision int) error {
	r := SVG{Precision: precision}
	origin, size := sp.ViewBox()
	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="%s %s %s %s">`,
		r.num(size.Width), r.num(size.Height),
		r.num(origin.X), r.num(origin.Y), r.num(size.Width), r.num(size.Height))
	fmt.Fprintf(&sb, `<path d="%s" %s/></svg>`+"\n",
		sp.SVG(radial.SVGOptions{MaxPrecision: r.precision()}), r.paint(th.BackgroundColor, th))
	_, err := io.WriteString(w, sb.String())
	return err
}
