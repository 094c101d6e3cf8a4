package lattice

import (
	"cmp"
	"slices"
)

// Point is an integer lattice coordinate. The y axis points up.
type Point struct {
	X, Y int
}

// neighbourOffsets lists the Moore neighbourhood top row first, left to
// right. Walk tie-breaks depend on this order.
var neighbourOffsets = [8]Point{
	{-1, 1}, {0, 1}, {1, 1},
	{-1, 0}, {1, 0},
	{-1, -1}, {0, -1}, {1, -1},
}

// Neighbours returns the 8 lattice points surrounding p.
func (p Point) Neighbours() [8]Point {
	var out [8]Point
	for i, d := range neighbourOffsets {
		out[i] = Point{X: p.X + d.X, Y: p.Y + d.Y}
	}
	return out
}

// Adjacent reports whether q is one of p's neighbours.
func (p Point) Adjacent(q Point) bool {
	return max(abs(p.X-q.X), abs(p.Y-q.Y)) == 1
}

// PointSet is an unordered collection of points.
type PointSet map[Point]struct{}

// Add inserts points into the set.
func (s PointSet) Add(points ...Point) {
	for _, p := range points {
		s[p] = struct{}{}
	}
}

// Contains reports whether p is in the set.
func (s PointSet) Contains(p Point) bool {
	_, ok := s[p]
	return ok
}

// Len returns the number of points in the set.
func (s PointSet) Len() int {
	return len(s)
}

// Sorted returns the points top row first, left to right within a row.
func (s PointSet) Sorted() []Point {
	out := make([]Point, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b Point) int {
		if c := cmp.Compare(b.Y, a.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.X, b.X)
	})
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
