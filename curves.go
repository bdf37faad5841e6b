package transition

import "math"

// Default parameters of the built-in curves.
const (
	DefaultPowExponent      = 6
	DefaultBackOvershoot    = 1.618
	DefaultElasticAmplitude = 1
	DefaultElasticPeriod    = 300
)

// The built-in curves are raw, ease-in shaped curves. None of them clamp
// their input or validate their parameters; out-of-domain values produce
// whatever IEEE 754 arithmetic produces, including NaN and infinities.

// Linear is the identity curve. It is its own inverse and is registered as
// a bare curve.
func Linear(p float64, _ ...float64) float64 {
	return p
}

// Pow computes p raised to the power of params[0], which defaults to
// [DefaultPowExponent].
func Pow(p float64, params ...float64) float64 {
	return math.Pow(p, param(params, 0, DefaultPowExponent))
}

// Quad is Pow with an exponent of 2.
func Quad(p float64, _ ...float64) float64 { return Pow(p, 2) }

// Cubic is Pow with an exponent of 3.
func Cubic(p float64, _ ...float64) float64 { return Pow(p, 3) }

// Quart is Pow with an exponent of 4.
func Quart(p float64, _ ...float64) float64 { return Pow(p, 4) }

// Quint is Pow with an exponent of 5.
func Quint(p float64, _ ...float64) float64 { return Pow(p, 5) }

// Expo computes 2^(8(p-1)). Note that Expo(0) is 2^-8, not 0.
func Expo(p float64, _ ...float64) float64 {
	return math.Pow(2, 8*(p-1))
}

// Circ follows a quarter circle, computing 1 - sin(acos(p)). It is NaN for p
// outside [-1, 1].
func Circ(p float64, _ ...float64) float64 {
	return 1 - math.Sin(math.Acos(p))
}

// Sine follows a quarter sine wave, computing 1 - sin((1-p)π/2).
func Sine(p float64, _ ...float64) float64 {
	return 1 - math.Sin((1-p)*math.Pi/2)
}

// Back pulls back below 0 before heading towards 1, computing
// p²((x+1)p - x). The overshoot x is params[0] and defaults to
// [DefaultBackOvershoot].
func Back(p float64, params ...float64) float64 {
	x := param(params, 0, DefaultBackOvershoot)
	return p * p * ((x+1)*p - x)
}

// Bounce bounces off 0 with decreasing height, reaching 1 at p = 1.
func Bounce(p float64, _ ...float64) float64 {
	const b = 7.5625
	q := 1 - p
	var y float64
	switch {
	case q < 1/2.75:
		y = b * q * q
	case q < 2/2.75:
		q -= 1.5 / 2.75
		y = b*q*q + 0.75
	case q < 2.5/2.75:
		q -= 2.25 / 2.75
		y = b*q*q + 0.9375
	default:
		q -= 2.625 / 2.75
		y = b*q*q + 0.984375
	}
	return 1 - y
}

// Elastic oscillates with exponentially growing amplitude, computing
// 2^(10(p-1)) cos(2π(p-1)y/x) with x = 0.3y/a.
//
// The amplitude multiplier a is params[0] and defaults to
// [DefaultElasticAmplitude]; the period-like constant y is params[1] and
// defaults to [DefaultElasticPeriod]. An amplitude of 0 makes x infinite,
// which removes the oscillation; a period of 0 results in NaN.
func Elastic(p float64, params ...float64) float64 {
	a := param(params, 0, DefaultElasticAmplitude)
	y := param(params, 1, DefaultElasticPeriod)
	x := y * 0.3 / a
	return math.Pow(2, 10*(p-1)) * math.Cos(2*math.Pi*(p-1)*y/x)
}
