package gridsearch

// IsValid reports whether a straight reading of length runes starting at
// origin and heading in d stays inside the grid. Only the axes d moves along
// are checked; the origin itself must be in bounds.
// Returns false for length < 1.
// Complexity: O(1).
func (g *Grid) IsValid(origin Position, d Direction, length int) bool {
	if length < 1 || !g.InBounds(origin) {
		return false
	}
	n := length - 1
	x, y := origin.X, origin.Y
	switch d {
	case North:
		return y-n >= 0
	case NorthEast:
		return x+n <= g.HBound() && y-n >= 0
	case East:
		return x+n <= g.HBound()
	case SouthEast:
		return x+n <= g.HBound() && y+n <= g.VBound()
	case South:
		return y+n <= g.VBound()
	case SouthWest:
		return x-n >= 0 && y+n <= g.VBound()
	case West:
		return x-n >= 0
	case NorthWest:
		return x-n >= 0 && y-n >= 0
	default:
		panic("gridsearch: IsValid: " + d.String())
	}
}
