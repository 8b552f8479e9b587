// internal/logx/logx.go
package logx

import (
	"io"
	"log/slog"
)

// New returns the CLI logger: human-readable text on w (normally stderr).
// Default level is warn so normal runs stay quiet; verbose lowers it to
// debug for load/match counts.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
