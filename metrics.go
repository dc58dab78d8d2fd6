package crc32lut

import "sync/atomic"

// MetricsCollector defines an interface for collecting table lifecycle metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordCreate is called after each CreateTable call.
	// err is nil if the table was created.
	RecordCreate(p Polynomial, err error)

	// RecordDestroy is called after each DestroyTable call.
	// ok is false if the handle was rejected.
	RecordDestroy(ok bool)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordCreate(Polynomial, error) {}
func (NoopMetricsCollector) RecordDestroy(bool)             {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	CreateCount    atomic.Int64
	CreateFailures atomic.Int64
	DestroyCount   atomic.Int64
	DestroyRejects atomic.Int64
}

// RecordCreate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCreate(_ Polynomial, err error) {
	if err != nil {
		b.CreateFailures.Add(1)
		return
	}
	b.CreateCount.Add(1)
}

// RecordDestroy implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDestroy(ok bool) {
	if !ok {
		b.DestroyRejects.Add(1)
		return
	}
	b.DestroyCount.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	created := b.CreateCount.Load()
	destroyed := b.DestroyCount.Load()
	return BasicMetricsStats{
		CreateCount:    created,
		CreateFailures: b.CreateFailures.Load(),
		DestroyCount:   destroyed,
		DestroyRejects: b.DestroyRejects.Load(),
		Live:           created - destroyed,
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	CreateCount    int64
	CreateFailures int64
	DestroyCount   int64
	DestroyRejects int64
	Live           int64
}
