package lattice

import (
	"fmt"
	"strings"
)

// Glyphs are the characters a canvas is drawn with.
type Glyphs struct {
	Background rune
	Mark       rune
}

// DefaultGlyphs draws background cells as '.' and boundary cells as 'o'.
var DefaultGlyphs = Glyphs{Background: '.', Mark: 'o'}

// OverlayGlyphs draws both boundary strategies on one canvas.
type OverlayGlyphs struct {
	Background rune
	Trace      rune // only the tracer marked the cell
	RowScan    rune // only the row scan marked the cell
	Both       rune
}

// DefaultOverlayGlyphs is used by StrategyOverlay when no glyphs are given.
var DefaultOverlayGlyphs = OverlayGlyphs{Background: '.', Trace: 'o', RowScan: '+', Both: '@'}

// Canvas is a square character grid centred on the origin. Row 0 is the top
// (y = radius), column 0 the left (x = -radius).
type Canvas struct {
	radius int
	size   int
	cells  [][]rune
}

// NewCanvas allocates a (2*radius+1)² canvas filled with background.
func NewCanvas(radius int, background rune) (*Canvas, error) {
	if radius < 0 {
		return nil, fmt.Errorf("canvas: negative radius %d", radius)
	}
	size := 2*radius + 1
	cells := make([][]rune, size)
	for i := range cells {
		row := make([]rune, size)
		for j := range row {
			row[j] = background
		}
		cells[i] = row
	}
	return &Canvas{radius: radius, size: size, cells: cells}, nil
}

// Size returns the canvas width, which is also its height.
func (c *Canvas) Size() int {
	return c.size
}

// cell maps a lattice point to its row and column.
func (c *Canvas) cell(p Point) (row, col int, err error) {
	row, col = c.radius-p.Y, c.radius+p.X
	if row < 0 || row >= c.size || col < 0 || col >= c.size {
		return row, col, &OutOfBoundsError{Point: p, Row: row, Col: col, Size: c.size}
	}
	return row, col, nil
}

// Plot marks every point with mark. All points are checked before any cell
// is written, so a failed Plot leaves the canvas unchanged.
func (c *Canvas) Plot(points []Point, mark rune) error {
	for _, p := range points {
		if _, _, err := c.cell(p); err != nil {
			return err
		}
	}
	for _, p := range points {
		row, col, _ := c.cell(p)
		c.cells[row][col] = mark
	}
	return nil
}

// At returns the glyph drawn at p.
func (c *Canvas) At(p Point) (rune, error) {
	row, col, err := c.cell(p)
	if err != nil {
		return 0, err
	}
	return c.cells[row][col], nil
}

// Lines returns the canvas rows, top to bottom.
func (c *Canvas) Lines() []string {
	lines := make([]string, c.size)
	var sb strings.Builder
	for i, row := range c.cells {
		sb.Reset()
		for _, r := range row {
			sb.WriteRune(r)
		}
		lines[i] = sb.String()
	}
	return lines
}

// Rasterize draws points on a fresh canvas for the given radius. It returns
// every row or, on error, none.
func Rasterize(points []Point, radius int, glyphs Glyphs) ([]string, error) {
	canvas, err := NewCanvas(radius, glyphs.Background)
	if err != nil {
		return nil, err
	}
	if err := canvas.Plot(points, glyphs.Mark); err != nil {
		return nil, fmt.Errorf("rasterize radius %d: %w", radius, err)
	}
	return canvas.Lines(), nil
}

// ParseGrid reads a drawing produced by Rasterize back into lattice points.
// The grid must be square with an odd side; it returns the marked points and
// the radius implied by the side.
func ParseGrid(lines []string, mark rune) ([]Point, int, error) {
	size := len(lines)
	if size == 0 || size%2 == 0 {
		return nil, 0, fmt.Errorf("parse grid: need an odd number of rows, got %d", size)
	}
	radius := size / 2
	var points []Point
	for row, line := range lines {
		cells := []rune(line)
		if len(cells) != size {
			return nil, 0, fmt.Errorf("parse grid: row %d has %d cells, want %d", row, len(cells), size)
		}
		for col, r := range cells {
			if r == mark {
				points = append(points, Point{X: col - radius, Y: radius - row})
			}
		}
	}
	return points, radius, nil
}
