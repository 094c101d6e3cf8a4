package lattice

import (
	"log/slog"
	"math"
)

// WalkState is the position of a lattice walk: the point it stands on and,
// once it has moved, the point it came from.
type WalkState struct {
	Current     Point
	Previous    Point
	HasPrevious bool
}

// advance moves the walk to next.
func (st WalkState) advance(next Point) WalkState {
	return WalkState{Current: next, Previous: st.Current, HasPrevious: true}
}

// Step applies the walk's selection rule once. Candidates are the neighbours
// of st.Current, without st.Previous and without points outside the shape's
// extent. The candidate with the smallest |Err| wins; ties go to the earliest
// candidate in Neighbours order. The tie-break is deterministic, not random.
func Step(s Shape, st WalkState) (Point, error) {
	var (
		best    Point
		bestErr int64 = math.MaxInt64
		found   bool
	)
	extent := s.Extent()
	for _, n := range st.Current.Neighbours() {
		if st.HasPrevious && n == st.Previous {
			continue
		}
		if !inExtent(n, extent) {
			continue
		}
		e := s.Err(n)
		if e < 0 {
			e = -e
		}
		if e < bestErr {
			best, bestErr, found = n, e, true
		}
	}
	if !found {
		return Point{}, &TraceError{At: st.Current, Reason: "every neighbour is excluded"}
	}
	return best, nil
}

// Trace walks the lattice around s, starting where the curve crosses x = 0
// at the top, and returns the closed loop of visited points in walk order.
// The start point is not repeated at the end.
//
// The walk is deterministic, so revisiting a (previous, current) pair means
// it is on a cycle that excludes the start; Trace reports that as
// ErrNoTraceableNeighbor instead of looping forever.
func Trace(s Shape) ([]Point, error) {
	y, ok := s.NearestY(0)
	if !ok {
		return nil, &IntersectionError{X: 0}
	}
	start := Point{X: 0, Y: y}

	var (
		st    = WalkState{Current: start}
		curve []Point
		seen  = make(map[WalkState]struct{})
	)
	for {
		if _, dup := seen[st]; dup {
			return nil, &TraceError{At: st.Current, Reason: "walk cycles without returning to start"}
		}
		seen[st] = struct{}{}
		curve = append(curve, st.Current)

		next, err := Step(s, st)
		if err != nil {
			return nil, err
		}
		if next == start {
			break
		}
		st = st.advance(next)
	}

	slog.Debug("Trace complete", "start_y", start.Y, "points", len(curve))
	return curve, nil
}
