package crc32lut

import (
	"fmt"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with table-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses an info-level text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		return NewTextLogger(slog.LevelInfo)
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger creates a Logger that writes JSON records to stderr.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NewTextLogger creates a Logger that writes key=value records to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithPolynomial adds a polynomial field to the logger.
func (l *Logger) WithPolynomial(p Polynomial) *Logger {
	return &Logger{
		Logger: l.Logger.With("polynomial", polyAttr(p)),
	}
}

// LogCreate logs a table creation or a failed allocation.
func (l *Logger) LogCreate(p Polynomial, inUse int64, err error) {
	if err != nil {
		l.Warn("table allocation failed",
			"polynomial", polyAttr(p),
			"in_use", inUse,
			"error", err,
		)
		return
	}
	l.Debug("table created",
		"polynomial", polyAttr(p),
		"in_use", inUse,
	)
}

// LogDestroy logs a successful table release.
func (l *Logger) LogDestroy(p Polynomial, inUse int64) {
	l.Debug("table destroyed",
		"polynomial", polyAttr(p),
		"in_use", inUse,
	)
}

// LogRejectedRelease logs a release that was refused. A nil handle carries
// no polynomial, so none is logged.
func (l *Logger) LogRejectedRelease(h *Handle, reason string) {
	if h == nil {
		l.Debug("table release rejected", "reason", reason)
		return
	}
	l.Debug("table release rejected",
		"polynomial", polyAttr(h.poly),
		"reason", reason,
	)
}

func polyAttr(p Polynomial) slog.Value {
	return slog.StringValue(fmt.Sprintf("0x%08x", uint32(p)))
}
