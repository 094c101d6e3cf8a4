package lattice

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRenderRadiusOne(t *testing.T) {
	want := []string{
		".o.",
		"o.o",
		".o.",
	}
	for _, strategy := range []Strategy{StrategyTrace, StrategyRowScan} {
		t.Run(strategy.String(), func(t *testing.T) {
			got, err := Circle{Radius: 1}.Rasterize(strategy, DefaultGlyphs)
			if err != nil {
				t.Fatalf("Rasterize failed: %v", err)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("Grid mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRenderRadiusThree(t *testing.T) {
	tests := []struct {
		strategy Strategy
		want     []string
	}{
		{
			strategy: StrategyTrace,
			want: []string{
				"..ooo..",
				".o...o.",
				"o.....o",
				"o.....o",
				"o.....o",
				".o...o.",
				"..ooo..",
			},
		},
		{
			strategy: StrategyRowScan,
			want: []string{
				"...o...",
				".o...o.",
				"o.....o",
				"o.....o",
				"o.....o",
				".o...o.",
				"...o...",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.strategy.String(), func(t *testing.T) {
			got, err := Render(Circle{Radius: 3}, tt.strategy, DefaultGlyphs)
			if err != nil {
				t.Fatalf("Render failed: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Grid mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRenderOverlay(t *testing.T) {
	got, err := Render(Circle{Radius: 2}, StrategyOverlay, DefaultGlyphs)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	want := []string{
		".o@o.",
		"@...@",
		"@...@",
		"@...@",
		".o@o.",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Grid mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderRadiusZero(t *testing.T) {
	got, err := Render(Circle{Radius: 0}, StrategyRowScan, DefaultGlyphs)
	if err != nil {
		t.Fatalf("Row scan render failed: %v", err)
	}
	if diff := cmp.Diff([]string{"o"}, got); diff != "" {
		t.Errorf("Grid mismatch (-want +got):\n%s", diff)
	}

	lines, err := Render(Circle{Radius: 0}, StrategyTrace, DefaultGlyphs)
	if !errors.Is(err, ErrNoTraceableNeighbor) {
		t.Fatalf("Expected ErrNoTraceableNeighbor, got %v", err)
	}
	if lines != nil {
		t.Errorf("Expected no output, got %q", lines)
	}
}

func TestRenderNegativeRadius(t *testing.T) {
	for _, strategy := range []Strategy{StrategyTrace, StrategyRowScan, StrategyOverlay} {
		if _, err := Render(Circle{Radius: -4}, strategy, DefaultGlyphs); !errors.Is(err, ErrNoIntersection) {
			t.Errorf("%s: expected ErrNoIntersection, got %v", strategy, err)
		}
	}
}

func TestRenderGridShape(t *testing.T) {
	for _, r := range []int{1, 2, 5, 10, 17, 33} {
		lines, err := Circle{Radius: r}.Rasterize(StrategyTrace, DefaultGlyphs)
		if err != nil {
			t.Fatalf("r=%d: Rasterize failed: %v", r, err)
		}
		if len(lines) != 2*r+1 {
			t.Errorf("r=%d: got %d rows", r, len(lines))
		}
		for i, line := range lines {
			if len(line) != 2*r+1 {
				t.Errorf("r=%d: row %d has length %d", r, i, len(line))
			}
		}
	}
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		in      string
		want    Strategy
		wantErr bool
	}{
		{"trace", StrategyTrace, false},
		{"RowScan", StrategyRowScan, false},
		{"row-scan", StrategyRowScan, false},
		{" overlay ", StrategyOverlay, false},
		{"spiral", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseStrategy(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseStrategy(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseStrategy(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	for _, s := range []Strategy{StrategyTrace, StrategyRowScan, StrategyOverlay} {
		if got, err := ParseStrategy(s.String()); err != nil || got != s {
			t.Errorf("round trip of %v gave %v, %v", s, got, err)
		}
	}
}
