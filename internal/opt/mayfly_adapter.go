package opt

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/cwbudde/mayfly"
)

// minPopulation is the smallest population mayfly v0.1.0 accepts.
const minPopulation = 20

// MayflyAdapter wraps the external Mayfly library to conform to our Optimizer interface
type MayflyAdapter struct {
	maxIters int
	popSize  int
	seed     int64
}

// NewMayfly creates a new Mayfly optimizer adapter. Population sizes below
// the library minimum are raised to it.
func NewMayfly(maxIters, popSize int, seed int64) *MayflyAdapter {
	return &MayflyAdapter{
		maxIters: maxIters,
		popSize:  max(popSize, minPopulation),
		seed:     seed,
	}
}

// MayflyFactory returns a Factory producing adapters with fixed iteration
// and population settings.
func MayflyFactory(maxIters, popSize int) Factory {
	return func(seed int64) Optimizer {
		return NewMayfly(maxIters, popSize, seed)
	}
}

// Run executes the Mayfly optimization. The library takes scalar bounds, so
// the box is widened to cover every dimension.
func (m *MayflyAdapter) Run(eval func([]float64) float64, lower, upper []float64, dim int) ([]float64, float64, error) {
	if dim <= 0 {
		return nil, 0, fmt.Errorf("mayfly: invalid dimension %d", dim)
	}
	if len(lower) < dim || len(upper) < dim {
		return nil, 0, fmt.Errorf("mayfly: bounds shorter than dimension %d", dim)
	}

	lo, hi := lower[0], upper[0]
	for i := 1; i < dim; i++ {
		lo = min(lo, lower[i])
		hi = max(hi, upper[i])
	}

	config := mayfly.NewDefaultConfig()
	config.ObjectiveFunc = eval
	config.ProblemSize = dim
	config.MaxIterations = m.maxIters
	config.NPop = m.popSize
	config.LowerBound = lo
	config.UpperBound = hi
	config.Rand = rand.New(rand.NewSource(m.seed))

	result, err := mayfly.Optimize(config)
	if err != nil {
		return nil, 0, fmt.Errorf("mayfly: %w", err)
	}

	slog.Debug("Mayfly run complete", "seed", m.seed, "iters", m.maxIters, "cost", result.GlobalBest.Cost)
	return result.GlobalBest.Position, result.GlobalBest.Cost, nil
}
