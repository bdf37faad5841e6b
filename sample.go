package transition

import (
	"fmt"
	"io"
	"iter"
	"math"
	"strconv"
	"strings"
)

// Sample evaluates e at n+1 evenly spaced progress fractions from 0 to 1,
// inclusive. It yields nothing if n < 1.
func Sample(e Easer, n int) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		if n < 1 {
			return
		}
		for i := range n + 1 {
			p := float64(i) / float64(n)
			if !yield(Pt(p, e.Ease(p))) {
				return
			}
		}
	}
}

// Range returns the smallest and largest outputs of e over n+1 samples. A
// range extending beyond [0, 1] indicates that the curve overshoots. NaN
// samples are ignored. If there are no usable samples, both values are NaN.
func Range(e Easer, n int) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for pt := range Sample(e, n) {
		if math.IsNaN(pt.Y) {
			continue
		}
		lo = min(lo, pt.Y)
		hi = max(hi, pt.Y)
	}
	if lo > hi {
		return math.NaN(), math.NaN()
	}
	return lo, hi
}

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
	// Scale multiplies both coordinates. A value of 0 means 1.
	Scale float64
}

// SVG converts a sequence of samples to a string of SVG path commands.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(seq iter.Seq[Point], opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, seq, opts)
	return sb.String()
}

// WriteSVG converts a sequence of samples to a string of SVG path commands
// and writes it to w. The first sample is a "move to", all further samples
// are "line to" commands.
//
// SVG's y axis points down, so y is written as 1 - y, which puts an output
// of 0 at the bottom and 1 at the top of the unit square.
//
// See [SVG] for a version that returns a string instead.
func WriteSVG(w io.Writer, seq iter.Seq[Point], opts SVGOptions) error {
	space := []byte(" ")
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
	scale := opts.Scale
	if scale == 0 {
		scale = 1
	}
	format := func(n float64) string {
		n *= scale
		maxPrec := opts.MaxPrecision
		if maxPrec <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		} else {
			s := strconv.FormatFloat(n, 'f', maxPrec, 64)
			s = strings.TrimRight(s, "0")
			s = strings.TrimSuffix(s, ".")
			if s == "-0" {
				s = "0"
			}
			return s
		}
	}
	first := true
	for pt := range seq {
		if err != nil {
			return err
		}
		if !first {
			write(space)
		}
		cmd := "L"
		if first {
			cmd = "M"
		}
		first = false
		writef("%s%s,%s", cmd, format(pt.X), format(1-pt.Y))
	}
	return err
}
