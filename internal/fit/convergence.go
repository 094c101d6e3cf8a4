package fit

import (
	"log/slog"
	"math"
)

// ConvergenceConfig decides when a multi-start search stops restarting.
type ConvergenceConfig struct {
	// Enabled controls whether early stopping is active. When false every
	// restart runs.
	Enabled bool

	// Patience is the number of consecutive restarts without a significant
	// improvement before stopping.
	Patience int

	// Threshold is the minimum relative improvement that counts as
	// progress: (lastSignificant - cost) / lastSignificant.
	Threshold float64
}

// DefaultConvergenceConfig stops after two restarts that improve by less
// than 1%.
func DefaultConvergenceConfig() ConvergenceConfig {
	return ConvergenceConfig{
		Enabled:   true,
		Patience:  2,
		Threshold: 0.01,
	}
}

// ConvergenceTracker records restart costs and reports convergence.
type ConvergenceTracker struct {
	config          ConvergenceConfig
	history         []float64
	bestCost        float64
	lastSignificant float64
	staleCount      int
}

// NewConvergenceTracker creates a tracker with no history.
func NewConvergenceTracker(config ConvergenceConfig) *ConvergenceTracker {
	return &ConvergenceTracker{
		config:          config,
		bestCost:        math.Inf(1),
		lastSignificant: math.Inf(1),
	}
}

// Update records cost and returns true once patience is exhausted.
func (c *ConvergenceTracker) Update(cost float64) bool {
	c.history = append(c.history, cost)
	if cost < c.bestCost {
		c.bestCost = cost
	}
	if !c.config.Enabled {
		return false
	}

	if len(c.history) == 1 {
		c.lastSignificant = cost
		return false
	}

	// A zero cost cannot be improved on.
	var improvement float64
	if c.lastSignificant > 0 {
		improvement = (c.lastSignificant - cost) / c.lastSignificant
	}

	if improvement >= c.config.Threshold && c.lastSignificant > 0 {
		c.lastSignificant = cost
		c.staleCount = 0
		return false
	}

	c.staleCount++
	slog.Debug("Restart without significant improvement",
		"cost", cost,
		"last_significant", c.lastSignificant,
		"stale_count", c.staleCount,
	)
	if c.staleCount >= c.config.Patience {
		slog.Debug("Converged", "best_cost", c.bestCost, "restarts", len(c.history))
		return true
	}
	return false
}

// BestCost returns the lowest cost recorded so far.
func (c *ConvergenceTracker) BestCost() float64 {
	return c.bestCost
}

// History returns a copy of every recorded cost.
func (c *ConvergenceTracker) History() []float64 {
	return append([]float64(nil), c.history...)
}

// StaleCount returns the current number of restarts without improvement.
func (c *ConvergenceTracker) StaleCount() int {
	return c.staleCount
}
