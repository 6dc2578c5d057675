// Package render draws a grid with the cells covered by search matches
// highlighted. Cells outside every match are shown as a dimmed '.'.
package render

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/wordgrid/gridsearch"
)

// Placeholder replaces runes not covered by any match.
const Placeholder = '.'

// CellSet is a set of grid positions.
type CellSet map[gridsearch.Position]struct{}

// Add inserts p.
func (s CellSet) Add(p gridsearch.Position) { s[p] = struct{}{} }

// Has reports whether p is in the set.
func (s CellSet) Has(p gridsearch.Position) bool {
	_, ok := s[p]
	return ok
}

// LinearCells collects every cell read by the given linear matches of word.
func LinearCells(matches []gridsearch.Match, word string) CellSet {
	n := utf8.RuneCountInString(word)
	cells := make(CellSet, len(matches)*n)
	for _, m := range matches {
		p := m.Origin
		for i := 0; i < n; i++ {
			cells.Add(p)
			p = p.Step(m.Direction)
		}
	}

	return cells
}

// CrossCells collects both diagonals of every X centered on fulcrums.
// word must have odd length, as accepted by CrossSearch.
func CrossCells(fulcrums []gridsearch.Position, word string) CellSet {
	arm := utf8.RuneCountInString(word) / 2
	cells := make(CellSet, len(fulcrums)*(4*arm+1))
	for _, f := range fulcrums {
		cells.Add(f)
		for i := 1; i <= arm; i++ {
			cells.Add(f.Add(-i, -i))
			cells.Add(f.Add(i, -i))
			cells.Add(f.Add(-i, i))
			cells.Add(f.Add(i, i))
		}
	}

	return cells
}

// Renderer styles highlighted and placeholder cells.
type Renderer struct {
	title lipgloss.Style
	hit   lipgloss.Style
	miss  lipgloss.Style
}

// New returns a Renderer whose color support is detected from w.
func New(w io.Writer) *Renderer {
	r := lipgloss.NewRenderer(w)
	return &Renderer{
		title: r.NewStyle().Bold(true).Underline(true),
		hit:   r.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#005F87", Dark: "#FFD75F"}),
		miss:  r.NewStyle().Faint(true),
	}
}

// Grid renders g row by row under title; runes in cells are highlighted
// and every other rune becomes Placeholder.
func (r *Renderer) Grid(title string, g *gridsearch.Grid, cells CellSet) string {
	var b strings.Builder
	b.WriteString(r.title.Render(title))
	for y := 0; y < g.Height(); y++ {
		b.WriteByte('\n')
		for x := 0; x < g.Width(); x++ {
			p := gridsearch.Pos(x, y)
			if cells.Has(p) {
				b.WriteString(r.hit.Render(string(g.At(p))))
			} else {
				b.WriteString(r.miss.Render(string(Placeholder)))
			}
		}
	}

	return b.String()
}
