package transition

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode is returned by [ParseMode] for strings that don't name a
// mode.
var ErrUnknownMode = errors.New("transition: unknown mode")

// Mode selects one of the variants of a registered curve.
type Mode int

const (
	// Bare selects a curve that was registered without derivation, such as
	// linear.
	Bare Mode = iota
	EaseIn
	EaseOut
	EaseInOut
)

var modeNames = [...]string{
	Bare:      "bare",
	EaseIn:    "easeIn",
	EaseOut:   "easeOut",
	EaseInOut: "easeInOut",
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// ParseMode parses the name of a mode, as returned by [Mode.String]. Case is
// ignored.
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if strings.EqualFold(s, name) {
			return Mode(m), nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownMode, s)
}

// Family is the set of variants derived from a single raw curve.
type Family struct {
	In    Func
	Out   Func
	InOut Func
}

// Derive derives the ease-in, ease-out and ease-in-out variants of raw.
// Parameters passed to any of the variants are forwarded to raw unchanged.
func Derive(raw Func) Family {
	return Family{
		In:    In(raw),
		Out:   Out(raw),
		InOut: InOut(raw),
	}
}

// Mode returns the variant selected by m. It returns false for [Bare] and
// for invalid modes.
func (fam Family) Mode(m Mode) (Func, bool) {
	switch m {
	case EaseIn:
		return fam.In, true
	case EaseOut:
		return fam.Out, true
	case EaseInOut:
		return fam.InOut, true
	default:
		return nil, false
	}
}

// In returns the ease-in variant of raw, which is raw itself.
func In(raw Func) Func {
	return raw
}

// Out returns the ease-out variant of raw, the complement of raw on the
// complemented input: 1 - raw(1 - p).
func Out(raw Func) Func {
	return func(p float64, params ...float64) float64 {
		return 1 - raw(1-p, params...)
	}
}

// InOut returns the ease-in-out variant of raw. The first half of the domain
// runs raw at double speed, the second half runs the ease-out variant.
func InOut(raw Func) Func {
	return func(p float64, params ...float64) float64 {
		if p <= 0.5 {
			return raw(2*p, params...) / 2
		}
		return (2 - raw(2*(1-p), params...)) / 2
	}
}
