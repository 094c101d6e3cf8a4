package main

import (
	"fmt"
	"log/slog"

	"github.com/cwbudde/latticetrace/internal/lattice"
	"github.com/spf13/cobra"
)

var (
	drawRadius     int
	drawStrategy   string
	drawMark       string
	drawBackground string
	drawColor      string
)

var drawCmd = &cobra.Command{
	Use:   "draw",
	Short: "Draw a circle as text",
	Long: `Draws a circle of the given radius on a (2r+1)x(2r+1) character grid.

Strategies:
  trace    walk the lattice around the curve (default)
  rowscan  solve the curve one row at a time
  overlay  both on one grid: tracer-only 'o', row-scan-only '+', shared '@'`,
	RunE: runDraw,
}

func init() {
	drawCmd.Flags().IntVarP(&drawRadius, "radius", "r", 17, "Circle radius")
	drawCmd.Flags().StringVar(&drawStrategy, "strategy", "trace", "Boundary strategy: trace, rowscan, overlay")
	drawCmd.Flags().StringVar(&drawMark, "mark", "o", "Glyph for boundary cells")
	drawCmd.Flags().StringVar(&drawBackground, "background", ".", "Glyph for empty cells")
	drawCmd.Flags().StringVar(&drawColor, "color", "", "Foreground colour for boundary cells (e.g. #7C3AED or 212)")

	rootCmd.AddCommand(drawCmd)
}

func runDraw(cmd *cobra.Command, args []string) error {
	strategy, err := lattice.ParseStrategy(drawStrategy)
	if err != nil {
		return err
	}
	glyphs, err := glyphsFromFlags(drawMark, drawBackground)
	if err != nil {
		return err
	}

	circle, err := lattice.NewCircle(drawRadius)
	if err != nil {
		return fmt.Errorf("invalid radius %d: %w", drawRadius, err)
	}

	slog.Info("Drawing circle", "radius", drawRadius, "strategy", strategy.String())
	lines, err := circle.Rasterize(strategy, glyphs)
	if err != nil {
		return fmt.Errorf("failed to draw radius %d with %s: %w", drawRadius, strategy, err)
	}

	if style, ok := markStyle(drawColor); ok {
		lines = colorize(lines, glyphs.Background, style)
	}
	return printLines(cmd, lines)
}

func glyphsFromFlags(mark, background string) (lattice.Glyphs, error) {
	m, err := glyphFlag("mark", mark)
	if err != nil {
		return lattice.Glyphs{}, err
	}
	b, err := glyphFlag("background", background)
	if err != nil {
		return lattice.Glyphs{}, err
	}
	if m == b {
		return lattice.Glyphs{}, fmt.Errorf("--mark and --background must differ")
	}
	return lattice.Glyphs{Background: b, Mark: m}, nil
}

func printLines(cmd *cobra.Command, lines []string) error {
	out := cmd.OutOrStdout()
	for _, line := range lines {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}
