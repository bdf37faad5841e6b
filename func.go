package transition

// Easer describes anything that maps a progress fraction to an output
// weight.
type Easer interface {
	// Ease evaluates the curve at progress p. Generally, p is in the range
	// [0, 1], but it is never clamped.
	Ease(p float64) float64
}

var (
	_ Easer = Func(nil)
	_ Easer = Bound{}
)

// Func is a transition curve. It maps a progress fraction p to an output
// weight, optionally taking curve-specific trailing parameters. Parameters
// that aren't provided take the curve's defaults.
//
// Implementations must be pure: they mustn't retain or modify params.
type Func func(p float64, params ...float64) float64

// Ease implements [Easer] by evaluating f with its default parameters.
func (f Func) Ease(p float64) float64 {
	return f(p)
}

// Bind returns f with params bound. It is equivalent to Bind(f, params...).
func (f Func) Bind(params ...float64) Bound {
	return Bind(f, params...)
}

// Params is an immutable bundle of curve parameters.
//
// The zero value is an empty bundle.
type Params struct {
	values []float64
}

// NewParams returns a bundle holding a copy of vs.
func NewParams(vs ...float64) Params {
	if len(vs) == 0 {
		return Params{}
	}
	return Params{values: append([]float64(nil), vs...)}
}

// Len returns the number of parameters in the bundle.
func (ps Params) Len() int {
	return len(ps.values)
}

// At returns the i-th parameter. It panics if i is out of range.
func (ps Params) At(i int) float64 {
	return ps.values[i]
}

// Values returns a copy of the parameters.
func (ps Params) Values() []float64 {
	return append([]float64(nil), ps.values...)
}

// Append returns a new bundle consisting of ps followed by vs.
func (ps Params) Append(vs ...float64) Params {
	out := make([]float64, 0, len(ps.values)+len(vs))
	out = append(out, ps.values...)
	out = append(out, vs...)
	return Params{values: out}
}

// Bound is a curve with some of its trailing parameters fixed. Bound values
// are cheap to copy and safe to share; binding never affects the base curve.
type Bound struct {
	fn     Func
	params Params
}

// Bind fixes the leading params of f, returning a curve that only needs the
// progress fraction. The params slice is copied.
func Bind(f Func, params ...float64) Bound {
	return Bound{fn: f, params: NewParams(params...)}
}

// Ease implements [Easer].
func (b Bound) Ease(p float64) float64 {
	return b.fn(p, b.params.values...)
}

// Params returns the bound parameters.
func (b Bound) Params() Params {
	return b.params
}

// Func returns b as a [Func]. Any parameters passed to the returned function
// follow the bound ones, which allows binding only some of a curve's
// parameters.
func (b Bound) Func() Func {
	fn, ps := b.fn, b.params
	if ps.Len() == 0 {
		return fn
	}
	return func(p float64, params ...float64) float64 {
		if len(params) == 0 {
			return fn(p, ps.values...)
		}
		return fn(p, ps.Append(params...).values...)
	}
}

// Bind binds further parameters after those already bound.
func (b Bound) Bind(params ...float64) Bound {
	return Bound{fn: b.fn, params: b.params.Append(params...)}
}

// param returns params[i], or def if it wasn't provided.
func param(params []float64, i int, def float64) float64 {
	if i < len(params) {
		return params[i]
	}
	return def
}
