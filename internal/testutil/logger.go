package testutil

import (
	"io"
	"log/slog"
)

// NopLogger returns a logger that drops everything.
// Keeps test output free of log lines.
func NopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
