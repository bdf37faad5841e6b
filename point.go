package transition

// Point is a sample of a curve: X is the progress fraction and Y the
// curve's output.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Splat returns the point's coordinates.
func (pt Point) Splat() (x, y float64) {
	return pt.X, pt.Y
}
