package opt

// Optimizer defines an optimization algorithm interface
type Optimizer interface {
	// Run minimizes eval over the box [lower, upper].
	// dim: dimensionality of parameter space
	// Returns: best parameters and their cost, or an error if the
	// underlying algorithm could not run.
	Run(eval func([]float64) float64, lower, upper []float64, dim int) ([]float64, float64, error)
}

// Factory builds a fresh optimizer for the given seed. Multi-start searches
// use it to rerun with different seeds.
type Factory func(seed int64) Optimizer
