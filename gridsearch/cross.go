package gridsearch

// breakDown splits an odd-length word around its middle rune.
// Returns ErrEmptyWord or ErrEvenWord otherwise.
func breakDown(word string) (brokenWord, error) {
	w := []rune(word)
	switch {
	case len(w) == 0:
		return brokenWord{}, ErrEmptyWord
	case len(w)%2 == 0:
		return brokenWord{}, ErrEvenWord
	}
	mid := len(w) / 2

	return brokenWord{runes: w, fulcrum: w[mid], arm: mid}, nil
}

// CrossSearch counts cells where word forms an "X": both diagonals through
// the cell read word, one way or the other, with the cell holding the
// middle rune (the fulcrum).
//
// For every fulcrum cell the full word is matched from the four corners of
// the X, each heading inward (SE, SW, NE, NW). The cell counts only when
// exactly two of the four corner readings succeed. Three or four successes,
// as a palindromic word can produce, do not count.
//
// Only cells at least len(word)/2 away from every edge are tried, which keeps
// all four corner readings in bounds; a grid too small for the word yields 0.
// Returns ErrEmptyWord or ErrEvenWord (both ErrInvalidWord) for words without
// a single middle rune.
// Complexity: O(W×H×4×L) time.
func (g *Grid) CrossSearch(word string, opts ...Option) (int, error) {
	bw, err := breakDown(word)
	if err != nil {
		return 0, wrapf(methodCrossSearch, err, "word %q", word)
	}
	o := resolve(opts)
	parts := runBands(bw.arm, g.height-bw.arm, o.Workers, func(y0, y1 int) int {
		count := 0
		g.eachCross(bw, y0, y1, func(Position) { count++ })
		return count
	})

	return sum(parts), nil
}

// CrossMatches returns the fulcrum positions CrossSearch counts, in row-major order.
func (g *Grid) CrossMatches(word string, opts ...Option) ([]Position, error) {
	bw, err := breakDown(word)
	if err != nil {
		return nil, wrapf(methodCrossSearch, err, "word %q", word)
	}
	o := resolve(opts)
	parts := runBands(bw.arm, g.height-bw.arm, o.Workers, func(y0, y1 int) []Position {
		var ps []Position
		g.eachCross(bw, y0, y1, func(p Position) { ps = append(ps, p) })
		return ps
	})

	return concat(parts), nil
}

// eachCross calls visit for every counted fulcrum in rows [y0, y1).
// The caller clamps the rows to [arm, VBound-arm].
func (g *Grid) eachCross(bw brokenWord, y0, y1 int, visit func(Position)) {
	a := bw.arm
	for y := y0; y < y1; y++ {
		for x := a; x <= g.HBound()-a; x++ {
			p := Position{X: x, Y: y}
			if g.At(p) != bw.fulcrum {
				continue
			}
			if g.crossArms(bw, p) == 2 {
				visit(p)
			}
		}
	}
}

// crossArms returns how many of the four corner readings around fulcrum p
// match the full word.
func (g *Grid) crossArms(bw brokenWord, p Position) int {
	a := bw.arm
	arms := [4]Match{
		{Origin: p.Add(-a, -a), Direction: SouthEast},
		{Origin: p.Add(a, -a), Direction: SouthWest},
		{Origin: p.Add(-a, a), Direction: NorthEast},
		{Origin: p.Add(a, a), Direction: NorthWest},
	}
	n := 0
	for _, arm := range arms {
		if g.matchAt(bw.runes, arm.Origin, arm.Direction) {
			n++
		}
	}

	return n
}
