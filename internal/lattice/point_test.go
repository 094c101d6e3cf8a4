package lattice

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNeighboursOrder(t *testing.T) {
	got := Point{X: 3, Y: -2}.Neighbours()
	want := [8]Point{
		{2, -1}, {3, -1}, {4, -1},
		{2, -2}, {4, -2},
		{2, -3}, {3, -3}, {4, -3},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Neighbours mismatch (-want +got):\n%s", diff)
	}
}

func TestNeighboursAreAdjacentAndDistinct(t *testing.T) {
	p := Point{X: -7, Y: 11}
	seen := make(PointSet)
	for _, n := range p.Neighbours() {
		if !p.Adjacent(n) {
			t.Errorf("%v is not adjacent to %v", n, p)
		}
		seen.Add(n)
	}
	if seen.Len() != 8 {
		t.Errorf("Expected 8 distinct neighbours, got %d", seen.Len())
	}
	if seen.Contains(p) {
		t.Error("Neighbours must not contain the point itself")
	}
}

func TestAdjacent(t *testing.T) {
	tests := []struct {
		name string
		q    Point
		want bool
	}{
		{"same point", Point{0, 0}, false},
		{"orthogonal", Point{0, 1}, true},
		{"diagonal", Point{-1, -1}, true},
		{"two away", Point{2, 0}, false},
		{"knight move", Point{1, 2}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := (Point{}).Adjacent(tt.q); got != tt.want {
				t.Errorf("Adjacent(%v) = %v, want %v", tt.q, got, tt.want)
			}
		})
	}
}

func TestPointSetSorted(t *testing.T) {
	s := make(PointSet)
	s.Add(Point{1, 0}, Point{0, -1}, Point{-1, 0}, Point{0, 1}, Point{1, 0})

	want := []Point{{0, 1}, {-1, 0}, {1, 0}, {0, -1}}
	if diff := cmp.Diff(want, s.Sorted()); diff != "" {
		t.Errorf("Sorted mismatch (-want +got):\n%s", diff)
	}
}
