package cmd

import (
	"log/slog"
	"os"
)

// newLogger returns a stderr text logger. Without verbose only warnings and
// errors are written; stdout stays reserved for command output.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
