// Package cli implements the wordgrid command line: flag parsing, config
// resolution, running both searches over a grid file and reporting counts.
package cli
