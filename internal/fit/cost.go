package fit

import (
	"math"

	"github.com/cwbudde/latticetrace/internal/lattice"
)

// CostFunc scores a candidate radius against a fixed set of points.
type CostFunc func(radius float64) float64

// RadialMSE returns the mean squared distance between each point's distance
// from the origin and radius.
func RadialMSE(points []lattice.Point) CostFunc {
	norms := make([]float64, len(points))
	for i, p := range points {
		norms[i] = math.Hypot(float64(p.X), float64(p.Y))
	}
	return func(radius float64) float64 {
		if len(norms) == 0 {
			return 0
		}
		var sum float64
		for _, n := range norms {
			d := n - radius
			sum += d * d
		}
		return sum / float64(len(norms))
	}
}

// maxNorm is the largest distance of any point from the origin.
func maxNorm(points []lattice.Point) float64 {
	var m float64
	for _, p := range points {
		m = math.Max(m, math.Hypot(float64(p.X), float64(p.Y)))
	}
	return m
}
