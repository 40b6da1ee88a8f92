package bitvector

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with bitvector-specific helpers.
// This keeps field names consistent across call sites.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithLen adds the vector length to the logger.
func (l *Logger) WithLen(n uint64) *Logger {
	return &Logger{
		Logger: l.Logger.With("len", n),
	}
}

// LogOutOfRange logs a rejected position access.
func (l *Logger) LogOutOfRange(op string, pos uint64) {
	l.Debug("position out of range",
		"op", op,
		"pos", pos,
	)
}

// LogParse logs the outcome of parsing a bit string.
func (l *Logger) LogParse(length int, err error) {
	if err != nil {
		l.Debug("parse failed",
			"length", length,
			"error", err,
		)
	} else {
		l.Debug("parse completed",
			"length", length,
		)
	}
}
