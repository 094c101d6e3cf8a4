package lattice

import (
	"fmt"
	"log/slog"
	"strings"
)

// Strategy selects how boundary points are produced for a render.
type Strategy int

const (
	// StrategyTrace walks the curve with the lattice tracer.
	StrategyTrace Strategy = iota
	// StrategyRowScan solves the curve one row at a time.
	StrategyRowScan
	// StrategyOverlay draws both on one canvas with distinct marks.
	StrategyOverlay
)

func (s Strategy) String() string {
	switch s {
	case StrategyTrace:
		return "trace"
	case StrategyRowScan:
		return "rowscan"
	case StrategyOverlay:
		return "overlay"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy is the inverse of Strategy.String.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "trace":
		return StrategyTrace, nil
	case "rowscan", "row-scan":
		return StrategyRowScan, nil
	case "overlay":
		return StrategyOverlay, nil
	default:
		return 0, fmt.Errorf("unknown strategy: %q", name)
	}
}

// BoundaryPoints produces the boundary of s with a single-strategy render.
// Tracer output keeps walk order; row-scan output is sorted top to bottom.
func BoundaryPoints(s Shape, strategy Strategy) ([]Point, error) {
	switch strategy {
	case StrategyTrace:
		return Trace(s)
	case StrategyRowScan:
		set, err := Boundary(s)
		if err != nil {
			return nil, err
		}
		return set.Sorted(), nil
	default:
		return nil, fmt.Errorf("strategy %s does not produce a single boundary", strategy)
	}
}

// Render draws s on a canvas sized by its extent. StrategyOverlay uses
// glyphs.Mark for tracer-only cells and the default overlay marks otherwise.
func Render(s Shape, strategy Strategy, glyphs Glyphs) ([]string, error) {
	if _, ok := s.NearestY(0); !ok {
		return nil, &IntersectionError{X: 0}
	}
	if strategy == StrategyOverlay {
		og := DefaultOverlayGlyphs
		og.Background, og.Trace = glyphs.Background, glyphs.Mark
		return RenderOverlay(s, og)
	}

	points, err := BoundaryPoints(s, strategy)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", strategy, err)
	}
	lines, err := Rasterize(points, s.Extent(), glyphs)
	if err != nil {
		return nil, err
	}
	slog.Debug("Rendered shape", "strategy", strategy.String(), "extent", s.Extent(), "points", len(points))
	return lines, nil
}

// RenderOverlay draws the tracer and row-scan boundaries of s together.
func RenderOverlay(s Shape, glyphs OverlayGlyphs) ([]string, error) {
	traced, err := Trace(s)
	if err != nil {
		return nil, fmt.Errorf("trace: %w", err)
	}
	scanned, err := Boundary(s)
	if err != nil {
		return nil, fmt.Errorf("rowscan: %w", err)
	}

	var traceOnly, both []Point
	inTrace := make(PointSet, len(traced))
	for _, p := range traced {
		inTrace.Add(p)
		if scanned.Contains(p) {
			both = append(both, p)
		} else {
			traceOnly = append(traceOnly, p)
		}
	}
	var scanOnly []Point
	for _, p := range scanned.Sorted() {
		if !inTrace.Contains(p) {
			scanOnly = append(scanOnly, p)
		}
	}

	canvas, err := NewCanvas(s.Extent(), glyphs.Background)
	if err != nil {
		return nil, err
	}
	for _, layer := range []struct {
		points []Point
		mark   rune
	}{
		{scanOnly, glyphs.RowScan},
		{traceOnly, glyphs.Trace},
		{both, glyphs.Both},
	} {
		if err := canvas.Plot(layer.points, layer.mark); err != nil {
			return nil, fmt.Errorf("overlay: %w", err)
		}
	}
	slog.Debug("Rendered overlay", "extent", s.Extent(), "trace_only", len(traceOnly), "rowscan_only", len(scanOnly), "both", len(both))
	return canvas.Lines(), nil
}
