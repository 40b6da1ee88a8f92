package bitvector

import "log/slog"

type options struct {
	logger *Logger
}

// Option configures New and Parse.
type Option func(*options)

// WithLogger configures structured logging for rejected operations.
// Pass nil to disable logging.
//
// Example:
//
//	logger := bitvector.NewJSONLogger(slog.LevelDebug)
//	v := bitvector.New(128, bitvector.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		logger: nil,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
