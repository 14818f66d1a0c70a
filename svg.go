package radial

import (
	"fmt"
	"io"
	"iter"
	"math"
	"strconv"
	"strings"
)

// DefaultPrecision is the number of fractional digits used when serializing
// menu geometry.
const DefaultPrecision = 2

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// SVG converts a sequence of path elements to a string of SVG path commands.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(seq iter.Seq[PathElement], opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, seq, opts)
	return sb.String()
}

// FormatNumber formats n the way [WriteSVG] formats coordinates: rounded to at
// most prec fractional digits, without trailing zeros, and never as "-0". A
// prec of 0 uses the shortest representation that round-trips.
func FormatNumber(n float64, prec int) string {
	if prec <= 0 {
		if n == 0 {
			n = 0
		}
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	s := strconv.FormatFloat(quantize(n, prec), 'f', prec, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		s = "0"
	}
	return s
}

// WriteSVG converts a sequence of path elements to a string of SVG path
// commands and writes it to w.
//
// Arcs are written as "A" commands. Arcs sweeping more than half a turn are
// split in two, so that the large-arc flag is always 0 and full circles, whose
// start and end points coincide, are drawn correctly.
//
// See [SVG] for a version that returns a string instead.
func WriteSVG(w io.Writer, seq iter.Seq[PathElement], opts SVGOptions) error {
	space := []byte(" ")
	z := []byte("Z")
	var err error
	write := func(s []byte) {
		if err != nil {
			return
		}
		_, err = w.Write(s)
	}
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		return FormatNumber(n, opts.MaxPrecision)
	}
	writeArc := func(a Arc, end Point) {
		sweep := 0
		if a.SweepAngle > 0 {
			sweep = 1
		}
		r := format(math.Abs(a.Radius))
		writef("A%s,%s 0 0,%d %s,%s", r, r, sweep, format(end.X), format(end.Y))
	}
	first := true
	for el := range seq {
		if err != nil {
			return err
		}
		if !first {
			write(space)
		}
		first = false
		switch el.Kind {
		case MoveToKind:
			writef("M%s,%s", format(el.P0.X), format(el.P0.Y))
		case LineToKind:
			writef("L%s,%s", format(el.P0.X), format(el.P0.Y))
		case ArcToKind:
			if math.Abs(el.Arc.SweepAngle) > math.Pi {
				a0, _ := el.Arc.Split()
				writeArc(a0, a0.End())
				write(space)
			}
			writeArc(el.Arc, el.P0)
		case CubicToKind:
			writef("C%s,%s %s,%s %s,%s",
				format(el.P0.X), format(el.P0.Y),
				format(el.P1.X), format(el.P1.Y),
				format(el.P2.X), format(el.P2.Y))
		case ClosePathKind:
			write(z)
		default:
			panic("unreachable")
		}
	}
	return err
}
