package transition

import (
	"math"
	"testing"
)

func TestCubicPolyInvert(t *testing.T) {
	const epsilon = 1e-12
	polys := []struct {
		name string
		c    cubicPoly
	}{
		{"ease", bezierPoly(0.25, 0.25)},
		{"ease-in", bezierPoly(0.42, 1)},
		// Zero slope at t = 0 forces bisection for the first step.
		{"ease-out", bezierPoly(0, 0.58)},
		{"ease-in-out", bezierPoly(0.42, 0.58)},
		{"linear", bezierPoly(1.0/3, 2.0/3)},
	}
	for _, tt := range polys {
		for i := 1; i < 100; i++ {
			v := float64(i) / 100
			x := tt.c.invert(v, epsilon)
			if x < 0 || x > 1 {
				t.Errorf("%s: invert(%v) = %v, outside [0, 1]", tt.name, v, x)
			}
			if d := math.Abs(tt.c.at(x) - v); d > 1e-10 {
				t.Errorf("%s: at(invert(%v)) is off by %v", tt.name, v, d)
			}
		}
	}

	// x(t) of the CSS ease-in-out curve is symmetric around (0.5, 0.5).
	if x := bezierPoly(0.42, 0.58).invert(0.5, epsilon); math.Abs(x-0.5) > epsilon {
		t.Errorf("invert(0.5) = %v, want 0.5", x)
	}
}

func TestCubicPolySlope(t *testing.T) {
	c := bezierPoly(0.25, 0.25)
	const h = 1e-7
	for _, x := range []float64{0.1, 0.5, 0.9} {
		numeric := (c.at(x+h) - c.at(x-h)) / (2 * h)
		approx(t, "slope", c.slope(x), numeric, 1e-7)
	}
}
