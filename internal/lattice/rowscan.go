package lattice

import "fmt"

// Boundary computes the boundary of s row by row from its closed-form
// inverse. Only shapes with such an inverse support it.
func Boundary(s Shape) (PointSet, error) {
	switch s := s.(type) {
	case Circle:
		return s.Boundary()
	default:
		return nil, fmt.Errorf("row scan: unsupported shape %T", s)
	}
}

// rowScan solves x² = r² - y² for every row y in [-r, r]. Rows where the
// rounded x is 0 contribute a single point.
func (c Circle) rowScan() PointSet {
	r := int64(c.Radius)
	set := make(PointSet, 4*c.Radius+1)
	for y := -r; y <= r; y++ {
		d := r*r - y*y
		if d < 0 {
			continue
		}
		x := int(roundSqrt(d))
		if x == 0 {
			set.Add(Point{X: 0, Y: int(y)})
			continue
		}
		set.Add(Point{X: x, Y: int(y)}, Point{X: -x, Y: int(y)})
	}
	return set
}
