package main

import (
	"encoding/json"
	"fmt"

	"github.com/cwbudde/latticetrace/internal/lattice"
	"github.com/spf13/cobra"
)

var (
	pointsRadius   int
	pointsStrategy string
)

// pointRecord is one JSON line of `points` output.
type pointRecord struct {
	Index int `json:"index"`
	X     int `json:"x"`
	Y     int `json:"y"`
}

var pointsCmd = &cobra.Command{
	Use:   "points",
	Short: "Print boundary points as JSON lines",
	Long: `Prints the boundary of a circle, one JSON object per line.
The tracer lists points in walk order; the row scan lists them top to bottom.`,
	RunE: runPoints,
}

func init() {
	pointsCmd.Flags().IntVarP(&pointsRadius, "radius", "r", 17, "Circle radius")
	pointsCmd.Flags().StringVar(&pointsStrategy, "strategy", "trace", "Boundary strategy: trace, rowscan")

	rootCmd.AddCommand(pointsCmd)
}

func runPoints(cmd *cobra.Command, args []string) error {
	strategy, err := lattice.ParseStrategy(pointsStrategy)
	if err != nil {
		return err
	}
	circle, err := lattice.NewCircle(pointsRadius)
	if err != nil {
		return fmt.Errorf("invalid radius %d: %w", pointsRadius, err)
	}

	points, err := lattice.BoundaryPoints(circle, strategy)
	if err != nil {
		return fmt.Errorf("failed to compute boundary: %w", err)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	for i, p := range points {
		if err := enc.Encode(pointRecord{Index: i, X: p.X, Y: p.Y}); err != nil {
			return fmt.Errorf("failed to write point %d: %w", i, err)
		}
	}
	return nil
}
