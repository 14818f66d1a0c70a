package theme

import (
	"image/color"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"#424242", "#424242"},
		{"#A0A0A0", "#a0a0a0"},
		{"#fff", "#ffffff"},
	}
	for _, tt := range tests {
		c, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%q): %v", tt.in, err)
			continue
		}
		if got := c.Hex(); got != tt.want {
			t.Errorf("ParseColor(%q).Hex() = %q, want %q", tt.in, got, tt.want)
		}
	}

	for _, in := range []string{"", "424242", "#12345", "red", "#gggggg"} {
		if _, err := ParseColor(in); err == nil {
			t.Errorf("ParseColor(%q) succeeded, want an error", in)
		}
	}
}

func TestColorRGBA(t *testing.T) {
	c := MustParseColor("#696969")
	diff(t, color.NRGBA{0x69, 0x69, 0x69, 0xff}, c.NRGBA())
	got := color.NRGBAModel.Convert(c).(color.NRGBA)
	diff(t, color.NRGBA{0x69, 0x69, 0x69, 0xff}, got)
}

func TestDefault(t *testing.T) {
	th := Default()
	diff(t, "#424242", th.BackgroundColor.Hex())
	diff(t, "#696969", th.HoverColor.Hex())
	diff(t, "#a0a0a0", th.StrokeColor.Hex())
	diff(t, 0.0, th.StrokeWidth)
	diff(t, th.HoverColor, th.Fill(true), cmpColor)
	diff(t, th.BackgroundColor, th.Fill(false), cmpColor)
}

func TestColorYAML(t *testing.T) {
	var v struct {
		C Color `yaml:"c"`
	}
	if err := yaml.Unmarshal([]byte("c: \"#123456\"\n"), &v); err != nil {
		t.Fatal(err)
	}
	diff(t, "#123456", v.C.Hex())

	out, err := yaml.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, "c: '#123456'\n", string(out))

	err = yaml.Unmarshal([]byte("c: blue\n"), &v)
	if err == nil {
		t.Fatal("invalid color accepted")
	}
	if msg := err.Error(); !strings.Contains(msg, "line 1") || !strings.Contains(msg, `"blue"`) {
		t.Errorf("got error %q, want the line and the offending value", msg)
	}
}
