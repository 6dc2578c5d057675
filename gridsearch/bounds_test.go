package gridsearch_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordgrid/gridsearch"
)

// walkInBounds is the reference model for IsValid: step length-1 times and
// check every visited cell.
func walkInBounds(g *gridsearch.Grid, origin gridsearch.Position, d gridsearch.Direction, length int) bool {
	p := origin
	for i := 0; i < length; i++ {
		if !g.InBounds(p) {
			return false
		}
		p = p.Step(d)
	}

	return length > 0
}

// TestIsValid_BruteForce compares IsValid with a step-by-step walk on
// random grids, origins, directions and lengths.
func TestIsValid_BruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 200; trial++ {
		w, h := 1+rng.Intn(8), 1+rng.Intn(8)
		rows := make([]string, h)
		for y := range rows {
			rows[y] = strings.Repeat(".", w)
		}
		g, err := gridsearch.NewGrid(rows)
		require.NoError(t, err)

		for k := 0; k < 50; k++ {
			origin := gridsearch.Pos(rng.Intn(w), rng.Intn(h))
			d := gridsearch.Directions[rng.Intn(len(gridsearch.Directions))]
			length := rng.Intn(10)
			want := walkInBounds(g, origin, d, length)
			got := g.IsValid(origin, d, length)
			require.Equal(t, want, got, "grid %dx%d origin %v dir %v len %d", w, h, origin, d, length)
		}
	}
}

// TestIsValid_Edges covers the corners of a 4×3 grid.
func TestIsValid_Edges(t *testing.T) {
	g := mustGrid(t, "....", "....", "....")
	cases := []struct {
		name   string
		origin gridsearch.Position
		dir    gridsearch.Direction
		length int
		want   bool
	}{
		{"EastFullRow", gridsearch.Pos(0, 0), gridsearch.East, 4, true},
		{"EastOneTooLong", gridsearch.Pos(0, 0), gridsearch.East, 5, false},
		{"EastIgnoresRows", gridsearch.Pos(0, 2), gridsearch.East, 4, true},
		{"NorthFromBottom", gridsearch.Pos(3, 2), gridsearch.North, 3, true},
		{"NorthFromTop", gridsearch.Pos(3, 0), gridsearch.North, 2, false},
		{"SouthEastLimitedByHeight", gridsearch.Pos(0, 0), gridsearch.SouthEast, 4, false},
		{"SouthEastFits", gridsearch.Pos(1, 0), gridsearch.SouthEast, 3, true},
		{"NorthWestCorner", gridsearch.Pos(3, 2), gridsearch.NorthWest, 3, true},
		{"SouthWestCorner", gridsearch.Pos(3, 0), gridsearch.SouthWest, 3, true},
		{"SingleRuneAnywhere", gridsearch.Pos(0, 0), gridsearch.NorthWest, 1, true},
		{"ZeroLength", gridsearch.Pos(0, 0), gridsearch.East, 0, false},
		{"OriginOutside", gridsearch.Pos(0, -1), gridsearch.East, 2, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, g.IsValid(tc.origin, tc.dir, tc.length))
		})
	}
}
