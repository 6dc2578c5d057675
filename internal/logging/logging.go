// Package logging builds the slog.Logger used by the wordgrid command.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Accepted values for the log.level and log.format settings.
var (
	Levels  = []string{"debug", "info", "warn", "error"}
	Formats = []string{"text", "json"}
)

// New creates a logger writing to w. It does not set the global logger,
// so tests can capture output in isolation. Unknown levels fall back to
// info and unknown formats to text; use Validate to reject them first.
func New(levelStr, formatStr string, w io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(levelStr) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if strings.ToLower(formatStr) == "json" {
		handler = slog.NewJSONHandler(w, handlerOpts)
	} else {
		handler = slog.NewTextHandler(w, handlerOpts)
	}

	return slog.New(handler)
}

// Validate reports an error for a level or format New would silently replace.
func Validate(levelStr, formatStr string) error {
	if !contains(Levels, levelStr) {
		return fmt.Errorf("invalid log level %q: must be one of %s", levelStr, strings.Join(Levels, ", "))
	}
	if !contains(Formats, formatStr) {
		return fmt.Errorf("invalid log format %q: must be one of %s", formatStr, strings.Join(Formats, ", "))
	}

	return nil
}

func contains(set []string, s string) bool {
	for _, v := range set {
		if strings.EqualFold(v, s) {
			return true
		}
	}

	return false
}
