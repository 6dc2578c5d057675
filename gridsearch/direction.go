package gridsearch

import (
	"fmt"
	"strings"
)

// Direction is one of the eight compass directions a word can be read in.
// The set is closed: only the constants below are valid values.
type Direction uint8

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// Directions lists every Direction, clockwise from North.
// LinearSearch and LinearMatches visit directions in this order.
var Directions = [8]Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

// Delta returns the unit step (dx, dy) of d in screen coordinates
// (y grows downward). It panics on a value outside the enumerated set.
// Complexity: O(1).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case NorthEast:
		return 1, -1
	case East:
		return 1, 0
	case SouthEast:
		return 1, 1
	case South:
		return 0, 1
	case SouthWest:
		return -1, 1
	case West:
		return -1, 0
	case NorthWest:
		return -1, -1
	default:
		panic(fmt.Sprintf("gridsearch: unknown direction %d", uint8(d)))
	}
}

// Opposite returns the direction pointing the other way along the same line.
func (d Direction) Opposite() Direction {
	_, _ = d.Delta() // reject unknown values
	return (d + 4) % 8
}

var directionNames = [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// String returns the compass abbreviation of d ("N", "NE", ...).
func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// ParseDirection is the inverse of String; matching is case-insensitive.
func ParseDirection(s string) (Direction, error) {
	for i, name := range directionNames {
		if strings.EqualFold(s, name) {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("gridsearch: unknown direction %q", s)
}
