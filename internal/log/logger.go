package log

import (
	"io"
	"log/slog"
)

// New creates a structured logger writing to the given sink.
// When verbose is true the level is Debug; otherwise Info, which keeps
// the per-stage progress lines (rows read/written) visible by default.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
