package lattice

import "math"

// Circle is the curve x² + y² = Radius², centred on the origin.
type Circle struct {
	Radius int
}

var _ Shape = Circle{}

// NewCircle returns a circle of the given radius. A negative radius has no
// curve to draw.
func NewCircle(radius int) (Circle, error) {
	if radius < 0 {
		return Circle{}, &IntersectionError{X: 0}
	}
	return Circle{Radius: radius}, nil
}

func (Circle) shape() {}

// Err implements Shape.
func (c Circle) Err(p Point) int64 {
	x, y, r := int64(p.X), int64(p.Y), int64(c.Radius)
	return x*x + y*y - r*r
}

// NearestY implements Shape. The result is sqrt(r² - x²) rounded half away
// from zero; see roundSqrt.
func (c Circle) NearestY(x int) (int, bool) {
	if c.Radius < 0 {
		return 0, false
	}
	r, xx := int64(c.Radius), int64(x)
	d := r*r - xx*xx
	if d < 0 {
		return 0, false
	}
	return int(roundSqrt(d)), true
}

// Extent implements Shape.
func (c Circle) Extent() int {
	return c.Radius
}

// Trace walks the circle's boundary. See Trace.
func (c Circle) Trace() ([]Point, error) {
	return Trace(c)
}

// Boundary computes the circle's boundary one row at a time.
func (c Circle) Boundary() (PointSet, error) {
	if c.Radius < 0 {
		return nil, &IntersectionError{X: 0}
	}
	return c.rowScan(), nil
}

// Rasterize draws the circle with the given strategy.
func (c Circle) Rasterize(strategy Strategy, glyphs Glyphs) ([]string, error) {
	return Render(c, strategy, glyphs)
}

// roundSqrt returns sqrt(d) rounded to the nearest integer, halves away from
// zero, for d >= 0. With s = floor(sqrt(d)) the root is at least s + 0.5
// exactly when d >= s² + s + 0.25, i.e. d - s² > s for integer d, so an
// exact half never occurs and the result matches math.Round(math.Sqrt(d))
// without float error at large d.
func roundSqrt(d int64) int64 {
	s := int64(math.Sqrt(float64(d)))
	for s*s > d {
		s--
	}
	for (s+1)*(s+1) <= d {
		s++
	}
	if d-s*s > s {
		s++
	}
	return s
}
