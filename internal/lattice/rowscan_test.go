package lattice

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBoundaryRadiusOne(t *testing.T) {
	set, err := Circle{Radius: 1}.Boundary()
	if err != nil {
		t.Fatalf("Boundary failed: %v", err)
	}
	want := []Point{{0, 1}, {-1, 0}, {1, 0}, {0, -1}}
	if diff := cmp.Diff(want, set.Sorted()); diff != "" {
		t.Errorf("Boundary mismatch (-want +got):\n%s", diff)
	}
}

func TestBoundaryRadiusTwo(t *testing.T) {
	set, err := Boundary(Circle{Radius: 2})
	if err != nil {
		t.Fatalf("Boundary failed: %v", err)
	}
	want := []Point{
		{0, 2},
		{-2, 1}, {2, 1},
		{-2, 0}, {2, 0},
		{-2, -1}, {2, -1},
		{0, -2},
	}
	if diff := cmp.Diff(want, set.Sorted()); diff != "" {
		t.Errorf("Boundary mismatch (-want +got):\n%s", diff)
	}
}

func TestBoundaryRadiusZero(t *testing.T) {
	set, err := Circle{Radius: 0}.Boundary()
	if err != nil {
		t.Fatalf("Boundary failed: %v", err)
	}
	if set.Len() != 1 || !set.Contains(Point{}) {
		t.Errorf("Expected only the origin, got %v", set.Sorted())
	}
}

func TestBoundaryProperties(t *testing.T) {
	for r := 1; r <= 80; r++ {
		set, err := Circle{Radius: r}.Boundary()
		if err != nil {
			t.Fatalf("r=%d: Boundary failed: %v", r, err)
		}

		rows := make(map[int]int)
		for p := range set {
			if p.X != 0 && !set.Contains(Point{-p.X, p.Y}) {
				t.Errorf("r=%d: mirror of %v missing", r, p)
			}
			if !inExtent(p, r) {
				t.Errorf("r=%d: %v outside extent", r, p)
			}
			rows[p.Y]++
		}
		for _, p := range []Point{{0, r}, {0, -r}, {r, 0}, {-r, 0}} {
			if !set.Contains(p) {
				t.Errorf("r=%d: axis point %v missing", r, p)
			}
		}
		if len(rows) != 2*r+1 {
			t.Errorf("r=%d: %d rows marked, want %d", r, len(rows), 2*r+1)
		}
		for y, n := range rows {
			if n > 2 {
				t.Errorf("r=%d: row %d has %d points", r, y, n)
			}
		}
	}
}

func TestBoundaryNegativeRadius(t *testing.T) {
	if _, err := Boundary(Circle{Radius: -1}); !errors.Is(err, ErrNoIntersection) {
		t.Fatalf("Expected ErrNoIntersection, got %v", err)
	}
}
