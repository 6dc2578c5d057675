package gridsearch

import (
	"strings"
	"unicode/utf8"
)

// Load builds a Grid from text with one row per line.
// Line endings may be "\n" or "\r\n"; empty lines are ignored wherever they occur.
// Returns ErrEmptyGrid if no line remains and ErrNonRectangular if any row's
// rune count differs from the first row's. Both wrap ErrMalformedGrid.
// Complexity: O(len(text)) time and memory.
func Load(text string) (*Grid, error) {
	var rows []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	g, err := newGrid(rows)
	if err != nil {
		return nil, wrapf(methodLoad, err, "%d line(s)", len(rows))
	}

	return g, nil
}

// NewGrid builds a Grid from already split rows. Unlike Load it does not skip
// empty rows: an empty first row is reported as ErrEmptyGrid.
// Complexity: O(W×H).
func NewGrid(rows []string) (*Grid, error) {
	g, err := newGrid(rows)
	if err != nil {
		return nil, wrapf(methodNewGrid, err, "%d row(s)", len(rows))
	}

	return g, nil
}

func newGrid(rows []string) (*Grid, error) {
	if len(rows) == 0 || rows[0] == "" {
		return nil, ErrEmptyGrid
	}
	w, h := utf8.RuneCountInString(rows[0]), len(rows)
	for _, row := range rows {
		if utf8.RuneCountInString(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Single buffer, copied out of the strings so the grid owns its storage.
	cells := make([]rune, 0, w*h)
	for _, row := range rows {
		cells = append(cells, []rune(row)...)
	}

	return &Grid{width: w, height: h, cells: cells}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// HBound returns the largest valid column index (Width-1).
func (g *Grid) HBound() int { return g.width - 1 }

// VBound returns the largest valid row index (Height-1).
func (g *Grid) VBound() int { return g.height - 1 }

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// At returns the rune at p. p must be in bounds; At does not check.
// Complexity: O(1).
func (g *Grid) At(p Position) rune {
	return g.cells[g.index(p.X, p.Y)]
}

// Row returns row y as a string.
func (g *Grid) Row(y int) string {
	return string(g.cells[y*g.width : (y+1)*g.width])
}

// String returns the grid rows joined with "\n".
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(len(g.cells) + g.height)
	for y := 0; y < g.height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(g.Row(y))
	}

	return b.String()
}

// index maps (x,y) to a row-major index: y*width + x.
func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

// Coordinate converts a row-major index back to a Position.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Position {
	return Position{X: idx % g.width, Y: idx / g.width}
}
