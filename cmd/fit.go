package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/cwbudde/latticetrace/internal/fit"
	"github.com/cwbudde/latticetrace/internal/lattice"
	"github.com/cwbudde/latticetrace/internal/opt"
	"github.com/spf13/cobra"
)

var (
	fitIn        string
	fitMark      string
	fitIters     int
	fitPopSize   int
	fitSeed      int64
	fitRestarts  int
	fitPatience  int
	fitThreshold float64
	fitRedraw    bool
)

var fitCmd = &cobra.Command{
	Use:   "fit",
	Short: "Recover the radius of a drawn circle",
	Long: `Reads a square drawing (as produced by draw), takes the marked cells as
points around the grid centre and fits the circle radius with mayfly
optimization, restarting with new seeds until the cost stops improving.`,
	RunE: runFit,
}

func init() {
	fitCmd.Flags().StringVar(&fitIn, "in", "-", "Drawing to read ('-' for stdin)")
	fitCmd.Flags().StringVar(&fitMark, "mark", "o", "Glyph of boundary cells in the drawing")
	fitCmd.Flags().IntVar(&fitIters, "iters", 100, "Max iterations per run")
	fitCmd.Flags().IntVar(&fitPopSize, "pop", 20, "Population size (minimum 20)")
	fitCmd.Flags().Int64Var(&fitSeed, "seed", 42, "Random seed of the first run")
	fitCmd.Flags().IntVar(&fitRestarts, "restarts", 5, "Maximum number of runs")
	fitCmd.Flags().IntVar(&fitPatience, "patience", 2, "Runs without improvement before stopping")
	fitCmd.Flags().Float64Var(&fitThreshold, "threshold", 0.01, "Relative improvement that counts as progress")
	fitCmd.Flags().BoolVar(&fitRedraw, "redraw", false, "Print the fitted circle after the result")

	rootCmd.AddCommand(fitCmd)
}

func runFit(cmd *cobra.Command, args []string) error {
	mark, err := glyphFlag("mark", fitMark)
	if err != nil {
		return err
	}

	lines, err := readDrawing(cmd, fitIn)
	if err != nil {
		return err
	}
	points, radius, err := lattice.ParseGrid(lines, mark)
	if err != nil {
		return err
	}
	slog.Info("Loaded drawing", "rows", len(lines), "radius", radius, "points", len(points))

	convergence := fit.ConvergenceConfig{
		Enabled:   fitPatience > 0,
		Patience:  fitPatience,
		Threshold: fitThreshold,
	}
	result, err := fit.FitRadiusMultiStart(points, opt.MayflyFactory(fitIters, fitPopSize), fitSeed, fitRestarts, convergence)
	if err != nil {
		return fmt.Errorf("failed to fit radius: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "radius %.3f (rounded %d, cost %.4f, %d runs)\n",
		result.Radius, result.Rounded, result.Cost, result.Restarts)

	if !fitRedraw {
		return nil
	}
	redrawn, err := result.Circle().Rasterize(lattice.StrategyRowScan, lattice.Glyphs{Background: '.', Mark: mark})
	if err != nil {
		return fmt.Errorf("failed to redraw radius %d: %w", result.Rounded, err)
	}
	return printLines(cmd, redrawn)
}

// readDrawing returns the non-empty lines of path, or of the command's
// input when path is "-".
func readDrawing(cmd *cobra.Command, path string) ([]string, error) {
	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open drawing: %w", err)
		}
		defer f.Close()
		r = f
	}

	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read drawing: %w", err)
	}
	return lines, nil
}
