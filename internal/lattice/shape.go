package lattice

// Shape is an implicit 2D curve that can be walked on the integer lattice.
//
// The set of shapes is closed: only types in this package implement it, and
// shape-specific strategies such as the row scan switch on the concrete type.
type Shape interface {
	// Err returns a signed measure of how far p is from the curve: zero on
	// it, negative inside, positive outside. Values are only comparable
	// with each other.
	Err(p Point) int64

	// NearestY returns the lattice y closest to the curve in column x, or
	// false if the curve does not cross that column.
	NearestY(x int) (int, bool)

	// Extent is the half-width of the square canvas the curve fits in.
	Extent() int

	shape()
}

// inExtent reports whether p lies inside the square [-e, e]².
func inExtent(p Point, e int) bool {
	return abs(p.X) <= e && abs(p.Y) <= e
}
