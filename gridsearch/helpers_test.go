package gridsearch_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordgrid/gridsearch"
)

// sample is the 10×10 puzzle used throughout: 18 linear XMAS, 9 crossed MAS.
var sample = []string{
	"MMMSXXMASM",
	"MSAMXMSMSA",
	"AMXSXMAAMM",
	"MSAMASMSMX",
	"XMASAMXAMM",
	"XXAMMXXAMA",
	"SMSMSASXSS",
	"SAXAMASAAA",
	"MAMMMXMMMM",
	"MXMXAXMASX",
}

// mustGrid builds a grid from rows or fails the test.
func mustGrid(t testing.TB, rows ...string) *gridsearch.Grid {
	t.Helper()
	g, err := gridsearch.Load(strings.Join(rows, "\n"))
	require.NoError(t, err)

	return g
}

// withRune returns a copy of rows with the rune at p replaced by r.
func withRune(rows []string, p gridsearch.Position, r rune) []string {
	out := make([]string, len(rows))
	copy(out, rows)
	line := []rune(out[p.Y])
	line[p.X] = r
	out[p.Y] = string(line)

	return out
}
