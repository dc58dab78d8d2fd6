package crc32lut

import (
	"sync/atomic"

	"github.com/hupe1980/crc32lut/internal/resource"
)

// Allocator creates and destroys caller-owned tables against an optional
// memory budget.
//
// All methods are safe for concurrent use.
type Allocator struct {
	rc      *resource.Controller
	logger  *Logger
	metrics MetricsCollector
	live    atomic.Int64
}

// NewAllocator creates an Allocator.
func NewAllocator(optFns ...Option) *Allocator {
	o := applyOptions(optFns)

	return &Allocator{
		rc:      resource.NewController(resource.Config{MemoryLimitBytes: o.memoryLimit}),
		logger:  o.logger,
		metrics: o.metricsCollector,
	}
}

// CreateTable builds a table for p and returns a handle to it.
//
// If the memory budget cannot cover another table, CreateTable returns a nil
// handle and an *AllocationError matching ErrAllocationFailure.
// Every handle returned must be released exactly once with DestroyTable or
// Handle.Release.
func (a *Allocator) CreateTable(p Polynomial) (*Handle, error) {
	if err := a.rc.AcquireMemory(TableSize); err != nil {
		aerr := &AllocationError{
			Polynomial: p,
			Requested:  TableSize,
			InUse:      a.rc.MemoryUsage(),
			Limit:      a.rc.MemoryLimit(),
			cause:      err,
		}
		a.logger.LogCreate(p, aerr.InUse, aerr)
		a.metrics.RecordCreate(p, aerr)
		return nil, aerr
	}

	h := &Handle{owner: a, poly: p}
	h.table.Store(MakeTable(p))
	a.live.Add(1)

	a.logger.LogCreate(p, a.rc.MemoryUsage(), nil)
	a.metrics.RecordCreate(p, nil)
	return h, nil
}

// DestroyTable releases h and returns its memory to the budget.
//
// It returns false if h is nil, is a zero Handle, was already released, or
// belongs to a different Allocator. Checksums already running on h finish normally.
func (a *Allocator) DestroyTable(h *Handle) bool {
	if reason := a.rejectRelease(h); reason != "" {
		a.logger.LogRejectedRelease(h, reason)
		a.metrics.RecordDestroy(false)
		return false
	}

	a.rc.ReleaseMemory(TableSize)
	a.live.Add(-1)

	a.logger.LogDestroy(h.poly, a.rc.MemoryUsage())
	a.metrics.RecordDestroy(true)
	return true
}

// rejectRelease claims h for release, or returns why it cannot be released.
func (a *Allocator) rejectRelease(h *Handle) string {
	switch {
	case h == nil:
		return "nil handle"
	case h.owner == nil:
		return "unowned handle"
	case h.owner != a:
		return "foreign allocator"
	case h.table.Swap(nil) == nil:
		return "already released"
	}
	return ""
}

// Live returns the number of tables created and not yet destroyed.
func (a *Allocator) Live() int {
	return int(a.live.Load())
}

// MemoryUsage returns the bytes reserved by live tables.
func (a *Allocator) MemoryUsage() int64 {
	return a.rc.MemoryUsage()
}

// PeakMemoryUsage returns the highest MemoryUsage observed.
func (a *Allocator) PeakMemoryUsage() int64 {
	return a.rc.PeakMemoryUsage()
}

// MemoryLimit returns the configured budget in bytes (0 if unlimited).
func (a *Allocator) MemoryLimit() int64 {
	return a.rc.MemoryLimit()
}

var defaultAllocator = NewAllocator()

// CreateTable builds a table for p using the process-wide allocator,
// which has no memory limit.
func CreateTable(p Polynomial) (*Handle, error) {
	return defaultAllocator.CreateTable(p)
}

// DestroyTable releases a handle obtained from the package-level CreateTable.
func DestroyTable(h *Handle) bool {
	return defaultAllocator.DestroyTable(h)
}
