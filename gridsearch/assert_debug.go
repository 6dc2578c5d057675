//go:build wordgriddebug

package gridsearch

import "fmt"

// assertScan enforces the MatchAt precondition in debug builds.
func assertScan(g *Grid, origin Position, d Direction, length int) {
	if length > 0 && !g.IsValid(origin, d, length) {
		panic(fmt.Errorf("%w: origin %v, direction %v, length %d, grid %dx%d",
			ErrUnvalidatedScan, origin, d, length, g.width, g.height))
	}
}
