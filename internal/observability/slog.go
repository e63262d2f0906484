// Package observability provides logging initialization.
package observability

import (
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/stolasapp/bulletin/internal/config"
)

// InitSlog initializes a logger with the given config. When running in a
// terminal, it uses a human-readable text format; otherwise it uses JSON for
// structured logging.
func InitSlog(cfg *config.Config) *slog.Logger {
	return newLogger(os.Stderr, term.IsTerminal(int(os.Stdin.Fd())), cfg)
}

func newLogger(out io.Writer, text bool, cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		AddSource: cfg.DevMode,
		Level:     toLogLevel(cfg.LogLevel),
	}
	var handler slog.Handler
	if text {
		handler = slog.NewTextHandler(out, opts)
	} else {
		handler = slog.NewJSONHandler(out, opts)
	}
	return slog.New(handler)
}

// toLogLevel maps the configured level name to a [slog.Level], falling back to
// info for anything unrecognized.
func toLogLevel(lvl string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(lvl)); err != nil {
		return slog.LevelInfo
	}
	return level
}
