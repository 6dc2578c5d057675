package gridsearch

// MatchAt reports whether word reads from origin along d, rune by rune.
//
// Precondition: g.IsValid(origin, d, rune length of word) must hold. MatchAt
// does not check bounds itself; an unvalidated call may panic or read a
// wrapped-around row. Builds tagged wordgriddebug panic with ErrUnvalidatedScan
// instead.
// Complexity: O(L).
func (g *Grid) MatchAt(word string, origin Position, d Direction) bool {
	return g.matchAt([]rune(word), origin, d)
}

func (g *Grid) matchAt(word []rune, origin Position, d Direction) bool {
	assertScan(g, origin, d, len(word))
	dx, dy := d.Delta()
	pos := origin
	last := len(word) - 1
	for i, r := range word {
		if g.At(pos) != r {
			return false
		}
		if i < last {
			pos = pos.Add(dx, dy)
		}
	}

	return true
}
