package transition

// Default control points of [CubicBezier], matching the CSS "ease" timing
// function.
const (
	DefaultBezierX1 = 0.25
	DefaultBezierY1 = 0.1
	DefaultBezierX2 = 0.25
	DefaultBezierY2 = 1.0
)

// The CSS timing functions, as cubic Bézier curves.
var (
	CSSEase      = NewCubicBezier(0.25, 0.1, 0.25, 1)
	CSSEaseIn    = NewCubicBezier(0.42, 0, 1, 1)
	CSSEaseOut   = NewCubicBezier(0, 0, 0.58, 1)
	CSSEaseInOut = NewCubicBezier(0.42, 0, 0.58, 1)
)

// bezierEpsilon is the accuracy to which CubicBezier solves for t.
const bezierEpsilon = 1e-10

// timingCurve is a cubic Bézier from (0, 0) to (1, 1).
type timingCurve struct {
	x, y cubicPoly
	// Slopes dy/dx at the end points, used to extrapolate.
	start, end float64
}

func newTimingCurve(x1, y1, x2, y2 float64) timingCurve {
	tc := timingCurve{
		x: bezierPoly(x1, x2),
		y: bezierPoly(y1, y2),
	}

	// When a control point coincides with its end point, the tangent is
	// given by the other control point.
	switch {
	case x1 > 0:
		tc.start = y1 / x1
	case y1 == 0 && x2 > 0:
		tc.start = y2 / x2
	case y1 == 0 && y2 == 0:
		tc.start = 1
	}
	switch {
	case x2 < 1:
		tc.end = (y2 - 1) / (x2 - 1)
	case y2 == 1 && x1 < 1:
		tc.end = (y1 - 1) / (x1 - 1)
	case y2 == 1 && y1 == 1:
		tc.end = 1
	}
	return tc
}

// at returns y for the given x.
func (tc timingCurve) at(x float64) float64 {
	switch {
	case x < 0:
		return tc.start * x
	case x == 0:
		return 0
	case x == 1:
		return 1
	case x > 1:
		return 1 + tc.end*(x-1)
	}
	return tc.y.at(tc.x.invert(x, bezierEpsilon))
}

// CubicBezier is a timing curve in the manner of CSS's cubic-bezier(): a
// cubic Bézier from (0, 0) to (1, 1) with inner control points (x1, y1) and
// (x2, y2), evaluated as y for the given x = p. Outside [0, 1], the curve
// continues along its tangent at the nearest end point.
//
// The control points are params[0] through params[3] and default to
// [DefaultBezierX1], [DefaultBezierY1], [DefaultBezierX2] and
// [DefaultBezierY2]. For x1 and x2 outside [0, 1] the curve may not be a
// function of p, in which case an arbitrary solution is returned.
func CubicBezier(p float64, params ...float64) float64 {
	return newTimingCurve(
		param(params, 0, DefaultBezierX1),
		param(params, 1, DefaultBezierY1),
		param(params, 2, DefaultBezierX2),
		param(params, 3, DefaultBezierY2),
	).at(p)
}

// NewCubicBezier returns [CubicBezier] bound to the given control points.
func NewCubicBezier(x1, y1, x2, y2 float64) Bound {
	return Bind(CubicBezier, x1, y1, x2, y2)
}
