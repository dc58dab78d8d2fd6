package crc32lut

import "log/slog"

type options struct {
	memoryLimit      int64
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures an Allocator.
type Option func(*options)

// WithMemoryLimit caps the bytes an Allocator may reserve for live tables.
// Each table costs TableSize bytes. Zero or a negative value means no limit.
//
// Example:
//
//	a := crc32lut.NewAllocator(crc32lut.WithMemoryLimit(16 * crc32lut.TableSize))
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) {
		o.memoryLimit = bytes
	}
}

// WithMetricsCollector configures a metrics collector for table lifecycle events.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &crc32lut.BasicMetricsCollector{}
//	a := crc32lut.NewAllocator(crc32lut.WithMetricsCollector(metrics))
//	// ... use a ...
//	stats := metrics.GetStats()
//	fmt.Printf("Live tables: %d\n", stats.Live)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for table lifecycle events.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := crc32lut.NewJSONLogger(slog.LevelDebug)
//	a := crc32lut.NewAllocator(crc32lut.WithLogger(logger))
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
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
