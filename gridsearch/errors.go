package gridsearch

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedGrid indicates the input text cannot form a rectangular grid.
	ErrMalformedGrid = errors.New("gridsearch: malformed grid")
	// ErrEmptyGrid indicates the input has no non-empty lines.
	ErrEmptyGrid = fmt.Errorf("%w: input must have at least one non-empty line", ErrMalformedGrid)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrMalformedGrid)

	// ErrInvalidWord indicates a word the cross search cannot pivot on.
	ErrInvalidWord = errors.New("gridsearch: invalid word")
	// ErrEmptyWord indicates a zero-length word.
	ErrEmptyWord = fmt.Errorf("%w: word is empty", ErrInvalidWord)
	// ErrEvenWord indicates a word with no single middle rune.
	ErrEvenWord = fmt.Errorf("%w: word length must be odd", ErrInvalidWord)

	// ErrUnvalidatedScan marks a MatchAt call whose path leaves the grid.
	// It is only raised (as a panic) in wordgriddebug builds.
	ErrUnvalidatedScan = errors.New("gridsearch: scan path not validated")
)

// Method names used as error context.
const (
	methodLoad        = "Load"
	methodNewGrid     = "NewGrid"
	methodCrossSearch = "CrossSearch"
)

// wrapf prefixes err with the method name and a formatted detail, keeping
// err reachable through errors.Is.
func wrapf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
