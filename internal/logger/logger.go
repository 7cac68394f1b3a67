// Package logger builds the structured logger used for diagnostics.
//
// Command results are written to stdout by the dispatcher; everything that
// goes through this logger lands on stderr so scripted use of the tool sees
// only the results.
package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/pterm/pterm"
)

// New returns a logger writing to stderr. Verbose enables debug output,
// otherwise only warnings and errors are shown.
func New(verbose bool) *slog.Logger {
	return NewWithOutput(verbose, os.Stderr)
}

// NewWithOutput is New with a custom writer, mostly for tests.
func NewWithOutput(verbose bool, w io.Writer) *slog.Logger {
	level := pterm.LogLevelWarn
	if verbose {
		level = pterm.LogLevelDebug
	}

	pl := pterm.DefaultLogger.
		WithWriter(w).
		WithLevel(level)

	return slog.New(pterm.NewSlogHandler(pl))
}

// Discard drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
