package crc32lut

import "sync/atomic"

// Handle is a caller-owned table created by an Allocator.
//
// A Handle stays usable until it is released. After release every method
// that needs the table reports ErrReleased instead of touching freed state.
type Handle struct {
	owner *Allocator
	poly  Polynomial
	table atomic.Pointer[Table]
}

// Checksum returns the CRC-32 of data continuing from seed.
func (h *Handle) Checksum(data []byte, seed uint32) (uint32, error) {
	t, err := h.Table()
	if err != nil {
		return 0, err
	}
	return Checksum(t, data, seed), nil
}

// Table returns the underlying immutable table.
//
// The returned table remains valid after the handle is released; only the
// handle's claim on the allocator budget ends.
func (h *Handle) Table() (*Table, error) {
	if h == nil {
		return nil, ErrNilHandle
	}
	t := h.table.Load()
	if t == nil {
		return nil, ErrReleased
	}
	return t, nil
}

// Polynomial returns the polynomial the handle was created for.
func (h *Handle) Polynomial() Polynomial {
	if h == nil {
		return 0
	}
	return h.poly
}

// Released reports whether the handle has been released.
func (h *Handle) Released() bool {
	return h == nil || h.table.Load() == nil
}

// Release is shorthand for DestroyTable on the owning allocator.
// It returns true only for the first call on a live handle. A zero Handle
// has no owner and always reports false.
func (h *Handle) Release() bool {
	if h == nil || h.owner == nil {
		return false
	}
	return h.owner.DestroyTable(h)
}
