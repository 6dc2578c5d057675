// Command wordgrid counts straight and crossed readings of words in a
// word-search grid file.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/wordgrid/internal/cli"
)

func main() {
	// Use a minimal logger until the configured one is built.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the program for tests.
func run(outW, errW io.Writer, args []string) error {
	return cli.Execute(context.Background(), args, outW, errW)
}
