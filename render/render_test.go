package render

import (
	"bytes"
	"image/color"
	"image/png"
	"math"
	"strings"
	"testing"

	"honnef.co/go/radial"
	"honnef.co/go/radial/menu"
	"honnef.co/go/radial/theme"
)

var testItems = []menu.Item{
	{Value: "a", Label: "Alpha"},
	{Value: "b", Label: "B & B"},
	{Value: "c", Label: "Charlie"},
	{Value: "d", Label: "Delta"},
}

func openScene(t *testing.T, th theme.Theme) Scene {
	t.Helper()
	g := menu.DefaultGeometry
	g.StrokeWidth = th.StrokeWidth
	c := menu.New(testItems, g)
	d := menu.NewDispatcher()
	if err := c.Mount(d); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(c.Unmount)
	c.SetValue("b")
	d.Dispatch(radial.Pt(0, 0))
	s := NewScene(c, th)
	if i, ok := c.Hover(radial.Pt(60, 0)); ok {
		s.Hovered = i
	}
	return s
}

func TestNewScene(t *testing.T) {
	s := openScene(t, theme.Default())
	if !s.Open {
		t.Error("scene of an open menu is closed")
	}
	if len(s.Wedges) != 4 || len(s.Labels) != 4 {
		t.Fatalf("got %d wedges and %d labels, want 4 each", len(s.Wedges), len(s.Labels))
	}
	if s.TriggerLabel != "b" {
		t.Errorf("got trigger label %q, want \"b\"", s.TriggerLabel)
	}
	if s.Hovered != 1 {
		t.Errorf("got hovered wedge %d, want 1", s.Hovered)
	}
	if b := s.Bounds(); b != (radial.Rect{X0: -100, Y0: -100, X1: 100, Y1: 100}) {
		t.Errorf("got bounds %v", b)
	}
}

func TestSVGRender(t *testing.T) {
	s := openScene(t, theme.Default())
	var buf bytes.Buffer
	if err := (SVG{}).Render(&buf, s); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	d := s.Wedges[0].Sector.SVG(radial.SVGOptions{MaxPrecision: radial.DefaultPrecision})
	for _, want := range []string{
		`<svg xmlns="http://www.w3.org/2000/svg" width="200" height="200" viewBox="-100 -100 200 200">`,
		`<path transform="rotate(0)" d="` + d + `" fill="#424242"`,
		`<path transform="rotate(90)" d="` + d + `" fill="#696969"`,
		`<path transform="rotate(270)" d="` + d + `" fill="#424242"`,
		`<circle class="trigger" cx="0" cy="0" r="25" fill="#424242" stroke="#a0a0a0" stroke-width="0"/>`,
		`>B &amp; B</text>`,
		`>b</text>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %s:\n%s", want, out)
		}
	}
	if n := strings.Count(out, "<path"); n != 4 {
		t.Errorf("got %d paths, want 4", n)
	}
}

func TestSVGRenderClosed(t *testing.T) {
	s := openScene(t, theme.Default())
	s.Open = false
	var buf bytes.Buffer
	if err := (SVG{}).Render(&buf, s); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "<path") {
		t.Errorf("closed menu rendered wedges:\n%s", buf.String())
	}
}

func TestLabelsUseStrokeColor(t *testing.T) {
	th := theme.Default()
	th.StrokeColor = theme.MustParseColor("#ff0000")
	s := openScene(t, th)

	var buf bytes.Buffer
	if err := (SVG{}).Render(&buf, s); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if n := strings.Count(out, "<text"); n != 5 {
		t.Fatalf("got %d labels, want 5:\n%s", n, out)
	}
	if n := strings.Count(out, `<text x="`); n != strings.Count(out, `fill="#ff0000" text-anchor`) {
		t.Errorf("not every label is painted with the stroke color:\n%s", out)
	}

	// Without a stroke, red can only come from the labels.
	img, err := (Raster{}).Image(s)
	if err != nil {
		t.Fatal(err)
	}
	red := false
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y && !red; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.RGBAAt(x, y)
			if c.R > c.G+32 {
				red = true
				break
			}
		}
	}
	if !red {
		t.Error("raster labels are not painted with the stroke color")
	}
}

func TestWriteWedgeSVG(t *testing.T) {
	sp, err := radial.NewSectorPath(radial.SectorSpec{
		OuterRadius: 100,
		InnerRadius: 25,
		Angle:       math.Pi / 2,
		StrokeWidth: 2,
		Gap:         10,
	})
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := WriteWedgeSVG(&buf, sp, theme.Default(), 2); err != nil {
		t.Fatal(err)
	}
	want := `<svg xmlns="http://www.w3.org/2000/svg" width="133.27" height="71.67" viewBox="-66.64 -100 133.27 71.67">` +
		`<path d="M-65.64,-74.12 A99,99 0 0,1 65.64,-74.12 L20.88,-29.33 A36,36 0 0,0 -20.88,-29.33 L-65.64,-74.12 Z" ` +
		`fill="#424242" stroke="#a0a0a0" stroke-width="0"/></svg>` + "\n"
	if got := buf.String(); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestRasterImage(t *testing.T) {
	th := theme.Default()
	th.StrokeWidth = 2
	s := openScene(t, th)
	s.Labels = nil
	s.TriggerLabel = ""

	img, err := (Raster{Scale: 2}).Image(s)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 404 || b.Dy() != 404 {
		t.Fatalf("got image size %dx%d, want 404x404", b.Dx(), b.Dy())
	}
	// Menu point p is at pixel (p + 101) * 2.
	at := func(x, y float64) color.NRGBA {
		return color.NRGBAModel.Convert(img.At(int((x+101)*2), int((y+101)*2))).(color.NRGBA)
	}
	tests := []struct {
		name string
		x, y float64
		want color.NRGBA
	}{
		{"trigger", 0, 0, th.BackgroundColor.NRGBA()},
		{"wedge", 0, -60, th.BackgroundColor.NRGBA()},
		{"hovered wedge", 60, 0, th.HoverColor.NRGBA()},
		{"outer stroke", 0, -99.5, th.StrokeColor.NRGBA()},
		{"gap", 42.4, -42.4, color.NRGBA{}},
		{"outside", 99, 99, color.NRGBA{}},
	}
	for _, tt := range tests {
		if got := at(tt.x, tt.y); got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestRasterRender(t *testing.T) {
	s := openScene(t, theme.Default())
	var buf bytes.Buffer
	if err := (Raster{}).Render(&buf, s); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 200 {
		t.Errorf("got image size %dx%d, want 200x200", b.Dx(), b.Dy())
	}

	if _, err := (Raster{Scale: -1}).Image(s); err == nil {
		t.Error("negative scale accepted")
	}
}
