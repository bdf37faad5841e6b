package transition

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func approx(t *testing.T, name string, got, want, epsilon float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v (±%g)", name, got, want, epsilon)
	}
}

// grid returns the progress fractions 0, 0.1, ..., 1.
func grid() []float64 {
	var ps []float64
	for i := range 11 {
		ps = append(ps, float64(i)/10)
	}
	return ps
}
