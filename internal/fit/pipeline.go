package fit

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/cwbudde/latticetrace/internal/lattice"
	"github.com/cwbudde/latticetrace/internal/opt"
)

// ErrNoPoints is returned when there is nothing to fit.
var ErrNoPoints = errors.New("fit: no points")

// Result holds the outcome of a radius fit.
type Result struct {
	Radius   float64 // best continuous radius
	Rounded  int     // Radius rounded half away from zero
	Cost     float64 // RadialMSE at Radius
	Restarts int     // optimizer runs performed
}

// Circle returns the lattice circle of the rounded radius.
func (r *Result) Circle() lattice.Circle {
	return lattice.Circle{Radius: r.Rounded}
}

// FitRadius finds the radius of the origin-centred circle that best matches
// points in the RadialMSE sense.
func FitRadius(points []lattice.Point, optimizer opt.Optimizer) (*Result, error) {
	if len(points) == 0 {
		return nil, ErrNoPoints
	}
	cost := RadialMSE(points)
	eval := func(x []float64) float64 { return cost(x[0]) }
	lower, upper := []float64{0}, []float64{maxNorm(points) + 1}

	best, bestCost, err := optimizer.Run(eval, lower, upper, 1)
	if err != nil {
		return nil, fmt.Errorf("fit radius: %w", err)
	}
	if len(best) != 1 {
		return nil, fmt.Errorf("fit radius: optimizer returned %d parameters", len(best))
	}

	radius := math.Max(0, best[0])
	slog.Debug("Radius fitted", "points", len(points), "radius", radius, "cost", bestCost)
	return &Result{
		Radius:   radius,
		Rounded:  int(math.Round(radius)),
		Cost:     bestCost,
		Restarts: 1,
	}, nil
}

// FitRadiusMultiStart reruns FitRadius with seeds seed, seed+1, ... up to
// maxRestarts times, keeping the best result and stopping early once the
// convergence tracker reports no further progress.
func FitRadiusMultiStart(points []lattice.Point, factory opt.Factory, seed int64, maxRestarts int, config ConvergenceConfig) (*Result, error) {
	if maxRestarts <= 0 {
		return nil, fmt.Errorf("fit: restarts must be positive, got %d", maxRestarts)
	}
	tracker := NewConvergenceTracker(config)

	var best *Result
	runs := 0
	for i := 0; i < maxRestarts; i++ {
		res, err := FitRadius(points, factory(seed+int64(i)))
		if err != nil {
			return nil, err
		}
		runs++
		if best == nil || res.Cost < best.Cost {
			best = res
		}
		if tracker.Update(res.Cost) {
			break
		}
	}
	best.Restarts = runs

	slog.Info("Multi-start fit complete", "restarts", runs, "radius", best.Radius, "cost", best.Cost)
	return best, nil
}
