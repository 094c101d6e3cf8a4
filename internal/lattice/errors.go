package lattice

import "fmt"

// ErrNoIntersection is returned when a shape's curve does not cross a column
// it is required to cross, such as the start column of a walk.
// Use errors.Is(err, ErrNoIntersection) to check for this error.
var ErrNoIntersection = &IntersectionError{}

// ErrNoTraceableNeighbor is returned when a walk cannot continue: either no
// candidate neighbour is left, or the walk entered a cycle that never
// returns to its start.
var ErrNoTraceableNeighbor = &TraceError{}

// ErrOutOfBounds is returned when a boundary point does not fit the canvas
// declared for its shape.
var ErrOutOfBounds = &OutOfBoundsError{}

// IntersectionError reports the column the curve failed to cross.
type IntersectionError struct {
	X int
}

func (e *IntersectionError) Error() string {
	return fmt.Sprintf("no intersection with column x=%d", e.X)
}

func (e *IntersectionError) Is(target error) bool {
	_, ok := target.(*IntersectionError)
	return ok
}

// TraceError reports where a lattice walk got stuck.
type TraceError struct {
	At     Point
	Reason string
}

func (e *TraceError) Error() string {
	if e.Reason == "" {
		return "no traceable neighbor"
	}
	return fmt.Sprintf("no traceable neighbor at (%d,%d): %s", e.At.X, e.At.Y, e.Reason)
}

func (e *TraceError) Is(target error) bool {
	_, ok := target.(*TraceError)
	return ok
}

// OutOfBoundsError reports a point that maps outside a canvas.
type OutOfBoundsError struct {
	Point    Point
	Row, Col int
	Size     int
}

func (e *OutOfBoundsError) Error() string {
	if e.Size == 0 {
		return "point out of canvas bounds"
	}
	return fmt.Sprintf("point (%d,%d) maps to cell (%d,%d) outside %dx%d canvas",
		e.Point.X, e.Point.Y, e.Row, e.Col, e.Size, e.Size)
}

func (e *OutOfBoundsError) Is(target error) bool {
	_, ok := target.(*OutOfBoundsError)
	return ok
}
