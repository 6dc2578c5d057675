package gridsearch

// LinearSearch counts every straight reading of word in g: each cell is
// tried as an origin in all eight directions, and each (cell, direction)
// pair that reads word adds one. Readings are not deduplicated, so a
// palindrome is counted once per direction it reads in.
// An empty word yields 0.
// Complexity: O(W×H×8×L) time, O(L) memory per worker.
func LinearSearch(g *Grid, word string, opts ...Option) int {
	return g.LinearSearch(word, opts...)
}

// CrossSearch counts X-shaped readings of word in g. See (*Grid).CrossSearch.
func CrossSearch(g *Grid, word string, opts ...Option) (int, error) {
	return g.CrossSearch(word, opts...)
}

// LinearSearch is the method form of the package-level LinearSearch.
func (g *Grid) LinearSearch(word string, opts ...Option) int {
	w := []rune(word)
	if len(w) == 0 {
		return 0
	}
	o := resolve(opts)
	parts := runBands(0, g.height, o.Workers, func(y0, y1 int) int {
		count := 0
		g.eachLinear(w, y0, y1, func(Match) { count++ })
		return count
	})

	return sum(parts)
}

// LinearMatches returns every reading LinearSearch counts, ordered by origin
// (row-major) and then by the order of Directions.
func (g *Grid) LinearMatches(word string, opts ...Option) []Match {
	w := []rune(word)
	if len(w) == 0 {
		return nil
	}
	o := resolve(opts)
	parts := runBands(0, g.height, o.Workers, func(y0, y1 int) []Match {
		var ms []Match
		g.eachLinear(w, y0, y1, func(m Match) { ms = append(ms, m) })
		return ms
	})

	return concat(parts)
}

// eachLinear calls visit for every reading of w whose origin lies in rows [y0, y1).
func (g *Grid) eachLinear(w []rune, y0, y1 int, visit func(Match)) {
	for y := y0; y < y1; y++ {
		for x := 0; x < g.width; x++ {
			origin := Position{X: x, Y: y}
			if g.At(origin) != w[0] {
				continue // no direction can match
			}
			for _, d := range Directions {
				if g.IsValid(origin, d, len(w)) && g.matchAt(w, origin, d) {
					visit(Match{Origin: origin, Direction: d})
				}
			}
		}
	}
}
