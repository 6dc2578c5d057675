// Package gridsearch treats a rectangular block of text as a word-search
// puzzle and counts where a word can be read from it.
//
// What:
//
//   - Grid wraps an immutable, rectangular rune matrix loaded from text.
//   - LinearSearch counts straight readings of a word in all eight compass
//     directions (N, NE, E, SE, S, SW, W, NW).
//   - CrossSearch counts "X" shapes: two diagonal readings of an odd-length
//     word that share its middle rune (the fulcrum).
//   - LinearMatches / CrossMatches return where those readings are.
//
// Why:
//
//   - Word-search puzzles and their X-shaped variant.
//   - Scanning fixed-size character maps for directional patterns.
//
// Complexity:
//
//   - LinearSearch: O(W×H×8×L), Memory: O(L)     (L = word length in runes).
//   - CrossSearch:  O(W×H×4×L), Memory: O(L).
//
// Scanning contract:
//
//	MatchAt never checks bounds. Callers must gate it with IsValid for the
//	full word length. Building with -tags wordgriddebug turns that contract
//	into a panic for tests and fuzzing.
//
// Options:
//
//   - WithWorkers(n): split rows into bands searched concurrently by up to n
//     goroutines. Results are identical to the sequential search.
//
// Errors:
//
//   - ErrMalformedGrid: no rows (ErrEmptyGrid) or ragged rows (ErrNonRectangular).
//   - ErrInvalidWord: empty (ErrEmptyWord) or even-length (ErrEvenWord) cross word.
package gridsearch
