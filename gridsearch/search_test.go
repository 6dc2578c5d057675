package gridsearch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordgrid/gridsearch"
)

// TestLinearSearch_Small is the five-row XMAS example: four readings, one
// each heading E, SE, W and N.
func TestLinearSearch_Small(t *testing.T) {
	g := mustGrid(t,
		"..X...",
		".SAMX.",
		".A..A.",
		"XMAS.S",
		".X....",
	)
	assert.Equal(t, 4, gridsearch.LinearSearch(g, "XMAS"))

	want := []gridsearch.Match{
		{Origin: gridsearch.Pos(2, 0), Direction: gridsearch.SouthEast},
		{Origin: gridsearch.Pos(4, 1), Direction: gridsearch.West},
		{Origin: gridsearch.Pos(0, 3), Direction: gridsearch.East},
		{Origin: gridsearch.Pos(1, 4), Direction: gridsearch.North},
	}
	assert.Equal(t, want, g.LinearMatches("XMAS"))
}

// TestLinearSearch_Sample counts the 10×10 sample.
func TestLinearSearch_Sample(t *testing.T) {
	g := mustGrid(t, sample...)
	assert.Equal(t, 18, g.LinearSearch("XMAS"))
	assert.Len(t, g.LinearMatches("XMAS"), 18)
}

// TestLinearSearch_Idempotent repeats a search on the same grid.
func TestLinearSearch_Idempotent(t *testing.T) {
	g := mustGrid(t, sample...)
	first := g.LinearSearch("XMAS")
	assert.Equal(t, first, g.LinearSearch("XMAS"))

	c1, err := g.CrossSearch("MAS")
	require.NoError(t, err)
	c2, err := g.CrossSearch("MAS")
	require.NoError(t, err)
	assert.Equal(t, c1, c2)
}

// TestLinearSearch_SingleCell has no room for any multi-rune word.
func TestLinearSearch_SingleCell(t *testing.T) {
	g := mustGrid(t, "X")
	for _, w := range []string{"XMAS", "XX", "AB", "A"} {
		assert.Equal(t, 0, g.LinearSearch(w), "word %q", w)
	}
}

// TestLinearSearch_SingleRune counts a one-rune word once per direction.
func TestLinearSearch_SingleRune(t *testing.T) {
	g := mustGrid(t, "AB", "BA")
	assert.Equal(t, 16, g.LinearSearch("A"))
}

// TestLinearSearch_Palindrome counts both reading directions.
func TestLinearSearch_Palindrome(t *testing.T) {
	g := mustGrid(t, "ABA")
	assert.Equal(t, 2, g.LinearSearch("ABA"))
	assert.Equal(t, []gridsearch.Match{
		{Origin: gridsearch.Pos(0, 0), Direction: gridsearch.East},
		{Origin: gridsearch.Pos(2, 0), Direction: gridsearch.West},
	}, g.LinearMatches("ABA"))
}

// TestLinearSearch_EmptyWord yields nothing.
func TestLinearSearch_EmptyWord(t *testing.T) {
	g := mustGrid(t, sample...)
	assert.Equal(t, 0, g.LinearSearch(""))
	assert.Nil(t, g.LinearMatches(""))
}

// TestLinearSearch_TooLong never matches a word longer than either side.
func TestLinearSearch_TooLong(t *testing.T) {
	g := mustGrid(t, "ABC", "DEF")
	assert.Equal(t, 0, g.LinearSearch("ABCD"))
	assert.Equal(t, 1, g.LinearSearch("ABC"))
	assert.Equal(t, 1, g.LinearSearch("AD"))
}
