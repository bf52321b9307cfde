// Package logging configures the slog logger used by the retry command.
package logging

import (
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// New returns a text logger writing to w. Only warnings and errors are shown
// unless verbose is set, so a normal run prints nothing but the retry notice.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				if t, ok := a.Value.Any().(time.Time); ok {
					return slog.String(a.Key, t.Format("15:04:05.000"))
				}
			}
			return a
		},
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

// WithRunID tags every record with a fresh run identifier so interleaved
// output from several supervisors can be told apart.
func WithRunID(l *slog.Logger) *slog.Logger {
	return l.With(slog.String("run_id", uuid.NewString()))
}
