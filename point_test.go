package transition

import "testing"

func TestPointSplat(t *testing.T) {
	x, y := Pt(0.5, 0.25).Splat()
	if x != 0.5 || y != 0.25 {
		t.Errorf("got (%v, %v), want (0.5, 0.25)", x, y)
	}
}
