package radial

import (
	"fmt"
	"math"
)

// Size is the extent of a viewport or image.
type Size struct {
	Width  float64
	Height float64
}

// Sz returns the size w×h.
func Sz(w, h float64) Size {
	return Size{
		Width:  w,
		Height: h,
	}
}

func (sz Size) String() string {
	return fmt.Sprintf("%g×%g", sz.Width, sz.Height)
}

// Scale multiplies sz by f, converting menu units to pixels.
func (sz Size) Scale(f float64) Size {
	return Size{
		Width:  sz.Width * f,
		Height: sz.Height * f,
	}
}

// Ceil rounds width and height up to whole pixels.
func (sz Size) Ceil() Size {
	return Size{
		Width:  math.Ceil(sz.Width),
		Height: math.Ceil(sz.Height),
	}
}
