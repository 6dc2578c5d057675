// Package wordgrid counts words hidden in rectangular character grids.
//
// What is in the module?
//
//	gridsearch/   — Grid, the eight-direction table, bounds validation,
//	                linear (straight-line) and cross ("X") searches
//	cmd/wordgrid/ — command line front end printing both counts
//	internal/     — config (viper), logging (slog), rendering (lipgloss)
//	                and the cobra command wiring
//
// Quick ASCII example, XMAS read four ways:
//
//	..X...
//	.SAMX.
//	.A..A.
//	XMAS.S
//	.X....
//
// and MAS crossed over a shared A:
//
//	M.S
//	.A.
//	M.S
//
// Install the command with:
//
//	go install github.com/katalvlaran/wordgrid/cmd/wordgrid@latest
package wordgrid
