package transition

import "math"

// maxSolveIterations bounds [cubicPoly.invert]. Bisection alone halves the
// bracket each step, which reaches any useful accuracy well before this.
const maxSolveIterations = 64

// cubicPoly is the polynomial ((a t + b) t + c) t, the form each coordinate
// of a Bézier takes when it starts at 0 and ends at 1.
type cubicPoly struct {
	a, b, c float64
}

// bezierPoly returns the polynomial of one coordinate of a Bézier with
// control values 0, p1, p2 and 1.
func bezierPoly(p1, p2 float64) cubicPoly {
	c := 3 * p1
	b := 3*(p2-p1) - c
	return cubicPoly{a: 1 - c - b, b: b, c: c}
}

func (c cubicPoly) at(t float64) float64 {
	return ((c.a*t+c.b)*t + c.c) * t
}

// slope returns the derivative at t.
func (c cubicPoly) slope(t float64) float64 {
	return (3*c.a*t+2*c.b)*t + c.c
}

// invert finds t in [0, 1] with c.at(t) = v to within epsilon. c must be
// non-decreasing on [0, 1] and v within [0, 1].
//
// Newton steps are taken while they stay inside the bracket known to contain
// the solution; otherwise the bracket is bisected.
func (c cubicPoly) invert(v, epsilon float64) float64 {
	lo, hi := 0.0, 1.0
	t := v
	for range maxSolveIterations {
		d := c.at(t) - v
		if math.Abs(d) < epsilon {
			return t
		}
		if d < 0 {
			lo = t
		} else {
			hi = t
		}
		if hi-lo < epsilon {
			return t
		}
		next := t - d/c.slope(t)
		if !(next > lo && next < hi) {
			next = lo + (hi-lo)/2
		}
		t = next
	}
	return t
}
