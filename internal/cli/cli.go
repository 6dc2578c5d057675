package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordgrid/gridsearch"
	"github.com/katalvlaran/wordgrid/internal/config"
	"github.com/katalvlaran/wordgrid/internal/ctxlog"
	"github.com/katalvlaran/wordgrid/internal/logging"
	"github.com/katalvlaran/wordgrid/internal/render"
)

// Exit codes returned through ExitError.
const (
	ExitFailure = 1 // the grid could not be read or searched
	ExitUsage   = 2 // bad flags, arguments or configuration
)

// ExitError is an error that carries the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func exitf(code int, format string, args ...interface{}) *ExitError {
	return &ExitError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Execute runs the wordgrid command with args. Results go to out, logs to
// errOut. Every returned error is an *ExitError.
func Execute(ctx context.Context, args []string, out, errOut io.Writer) error {
	cmd := NewRootCommand(out, errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}

	return exitf(ExitUsage, "%v", err)
}

// NewRootCommand builds the cobra command. Flags are bound to the config
// keys, so a flag set on the command line wins over env and file values.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "wordgrid [flags] GRID_FILE",
		Short: "Count words in a word-search grid",
		Long: `wordgrid reads a rectangular grid of characters, one row per line, and prints
how often a word reads in a straight line in any of eight directions, and how
often an odd-length word forms an X across two diagonals.`,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := config.New()
			for key, name := range map[string]string{
				config.KeySearchWord:      "word",
				config.KeySearchCrossWord: "cross-word",
				config.KeySearchWorkers:   "workers",
				config.KeyLogLevel:        "log-level",
				config.KeyLogFormat:       "log-format",
				config.KeyRenderHighlight: "highlight",
			} {
				if err := v.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
					return exitf(ExitUsage, "bind flag %s: %v", name, err)
				}
			}
			cfg, err := config.Load(v, configPath)
			if err != nil {
				return exitf(ExitUsage, "config: %v", err)
			}

			logger := logging.New(cfg.Log.Level, cfg.Log.Format, errOut)
			ctx := ctxlog.WithLogger(cmd.Context(), logger)

			return Run(ctx, out, cfg, args[0])
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	f := cmd.Flags()
	f.StringVar(&configPath, "config", "", "Path to a TOML config file (default $XDG_CONFIG_HOME/wordgrid/config.toml).")
	f.StringP("word", "w", "XMAS", "Word to count along straight lines.")
	f.StringP("cross-word", "x", "MAS", "Odd-length word to count as diagonal crosses.")
	f.IntP("workers", "j", 1, "Number of goroutines scanning row bands.")
	f.String("log-level", "info", "Logging level: debug, info, warn or error.")
	f.String("log-format", "text", "Log output format: text or json.")
	f.Bool("highlight", false, "Also print the grid with matched cells highlighted.")

	return cmd
}

// Run loads the grid at path and reports both searches to out.
func Run(ctx context.Context, out io.Writer, cfg config.Config, path string) error {
	logger := ctxlog.FromContext(ctx)

	data, err := os.ReadFile(path)
	if err != nil {
		return exitf(ExitFailure, "read grid: %v", err)
	}
	g, err := gridsearch.Load(string(data))
	if err != nil {
		return exitf(ExitFailure, "load grid %s: %v", path, err)
	}
	logger.Debug("Grid loaded.", "path", path, "width", g.Width(), "height", g.Height())

	opt := gridsearch.WithWorkers(cfg.Search.Workers)
	word, crossWord := cfg.Search.Word, cfg.Search.CrossWord

	start := time.Now()
	var (
		linear  int
		matches []gridsearch.Match
	)
	if cfg.Render.Highlight {
		matches = g.LinearMatches(word, opt)
		linear = len(matches)
	} else {
		linear = g.LinearSearch(word, opt)
	}
	logger.Debug("Linear search finished.", "word", word, "count", linear, "elapsed", time.Since(start))

	start = time.Now()
	var (
		cross    int
		fulcrums []gridsearch.Position
	)
	if cfg.Render.Highlight {
		fulcrums, err = g.CrossMatches(crossWord, opt)
		cross = len(fulcrums)
	} else {
		cross, err = g.CrossSearch(crossWord, opt)
	}
	if err != nil {
		return exitf(ExitFailure, "cross search: %v", err)
	}
	logger.Debug("Cross search finished.", "word", crossWord, "count", cross, "elapsed", time.Since(start))

	fmt.Fprintf(out, "linear %s: %d\n", word, linear)
	fmt.Fprintf(out, "cross %s: %d\n", crossWord, cross)

	if cfg.Render.Highlight {
		r := render.New(out)
		fmt.Fprintln(out)
		fmt.Fprintln(out, r.Grid("linear "+word, g, render.LinearCells(matches, word)))
		fmt.Fprintln(out)
		fmt.Fprintln(out, r.Grid("cross "+crossWord, g, render.CrossCells(fulcrums, crossWord)))
	}
	logger.Info("Search complete.", "path", path, "linear", linear, "cross", cross, "workers", cfg.Search.Workers)

	return nil
}
