package transition

import (
	"errors"
	"testing"
)

func TestComplementLaw(t *testing.T) {
	for _, tt := range builtinFamilies {
		fam := Derive(tt.raw)
		for _, p := range grid() {
			if got, want := fam.Out(p), 1-fam.In(1-p); got != want {
				t.Errorf("%s.easeOut(%v) = %v, want %v", tt.name, p, got, want)
			}
		}
	}
}

func TestComplementLawForwardsParams(t *testing.T) {
	fam := Derive(Elastic)
	for _, p := range grid() {
		if got, want := fam.Out(p, 2, 150), 1-Elastic(1-p, 2, 150); got != want {
			t.Errorf("Elastic.easeOut(%v, 2, 150) = %v, want %v", p, got, want)
		}
	}
}

func TestSplitLaw(t *testing.T) {
	for _, tt := range builtinFamilies {
		fam := Derive(tt.raw)
		for _, p := range grid() {
			var want float64
			if p <= 0.5 {
				want = fam.In(2*p) / 2
			} else {
				want = 1 - fam.In(2*(1-p))/2
			}
			approx(t, tt.name+".easeInOut", fam.InOut(p), want, 1e-15)
		}
	}
}

func TestSplitContinuity(t *testing.T) {
	for _, tt := range builtinFamilies {
		fam := Derive(tt.raw)
		left := fam.In(1) / 2
		right := (2 - fam.In(2*(1-0.5))) / 2
		approx(t, tt.name+" at 0.5", left, right, 1e-12)
		approx(t, tt.name+".easeInOut(0.5)", fam.InOut(0.5), left, 0)

		// Approaching the split from the right converges on the same value.
		// Circ has an infinite slope at 1.
		approx(t, tt.name+".easeInOut(0.5+ε)", fam.InOut(0.5+1e-9), left, 1e-4)
	}
}

func TestInIsRaw(t *testing.T) {
	fam := Derive(Back)
	for _, p := range grid() {
		if got, want := fam.In(p, 3), Back(p, 3); got != want {
			t.Errorf("Back.easeIn(%v, 3) = %v, want %v", p, got, want)
		}
	}
}

func TestFamilyMode(t *testing.T) {
	fam := Derive(Quad)
	for _, m := range []Mode{EaseIn, EaseOut, EaseInOut} {
		fn, ok := fam.Mode(m)
		if !ok || fn == nil {
			t.Errorf("Family.Mode(%s) = _, %t", m, ok)
		}
	}
	if _, ok := fam.Mode(Bare); ok {
		t.Error("Family.Mode(Bare) succeeded")
	}
	if _, ok := fam.Mode(Mode(42)); ok {
		t.Error("Family.Mode(42) succeeded")
	}

	out, _ := fam.Mode(EaseOut)
	approx(t, "Quad.easeOut(0.5)", out(0.5), 0.75, 0)
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
	}{
		{"easeIn", EaseIn},
		{"easeout", EaseOut},
		{"EASEINOUT", EaseInOut},
		{"bare", Bare},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if err != nil {
			t.Errorf("ParseMode(%q) failed: %s", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %s, want %s", tt.in, got, tt.want)
		}
		if back, _ := ParseMode(got.String()); back != got {
			t.Errorf("mode %s doesn't round-trip", got)
		}
	}

	if _, err := ParseMode("ease-in"); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("got error %v, want %v", err, ErrUnknownMode)
	}
	if s := Mode(7).String(); s != "Mode(7)" {
		t.Errorf("got %q", s)
	}
}
