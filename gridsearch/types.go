// Package gridsearch defines core types, options, and the direction table
// for the gridsearch package of github.com/katalvlaran/wordgrid.
package gridsearch

import "fmt"

// Position is a (column, row) coordinate. X grows to the east, Y to the south.
type Position struct {
	X, Y int
}

// Pos is a shorthand constructor for Position.
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// Add returns p offset by (dx, dy).
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Step returns the neighbor of p one unit along d.
func (p Position) Step(d Direction) Position {
	dx, dy := d.Delta()
	return p.Add(dx, dy)
}

// String renders p as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Match is one successful straight reading of a word.
type Match struct {
	Origin    Position  // cell holding the first rune
	Direction Direction // direction the rest of the word follows
}

// String renders m as "(x,y) DIR".
func (m Match) String() string {
	return m.Origin.String() + " " + m.Direction.String()
}

// Grid is an immutable rectangular rune matrix.
// Cells are stored row-major in a single buffer: cells[y*width+x].
type Grid struct {
	width, height int
	cells         []rune
}

// brokenWord is the cross-search view of an odd-length word.
type brokenWord struct {
	runes   []rune
	fulcrum rune // middle rune
	arm     int  // runes on each side of the fulcrum
}

// Options holds tunable parameters for searches.
type Options struct {
	// Workers is the maximum number of goroutines scanning row bands.
	// 1 (the default) searches sequentially on the calling goroutine.
	Workers int
}

// Option configures a search call.
type Option func(*Options)

// DefaultOptions returns Options with Workers=1.
func DefaultOptions() Options {
	return Options{
		Workers: 1,
	}
}
