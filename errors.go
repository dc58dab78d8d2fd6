package crc32lut

import (
	"errors"
	"fmt"
)

var (
	// ErrAllocationFailure is returned when a table's backing storage cannot
	// be reserved.
	ErrAllocationFailure = errors.New("table allocation failed")

	// ErrReleased is returned when a released handle is used.
	ErrReleased = errors.New("table handle already released")

	// ErrNilHandle is returned when a nil handle is used.
	ErrNilHandle = errors.New("nil table handle")
)

// AllocationError describes a table that could not be created because the
// allocator's memory budget was exhausted.
//
// It matches ErrAllocationFailure via errors.Is. The underlying error can be
// accessed via errors.Unwrap.
type AllocationError struct {
	Polynomial Polynomial
	Requested  int64
	InUse      int64
	Limit      int64
	cause      error
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("%v: polynomial 0x%08x: requested %d bytes, %d of %d in use",
		ErrAllocationFailure, uint32(e.Polynomial), e.Requested, e.InUse, e.Limit)
}

func (e *AllocationError) Unwrap() error { return e.cause }

// Is reports whether target is ErrAllocationFailure.
func (e *AllocationError) Is(target error) bool {
	return target == ErrAllocationFailure
}
