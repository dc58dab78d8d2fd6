// Package crc32lut computes CRC-32 checksums with a configurable polynomial
// using a precomputed 256-entry lookup table.
//
// # Quick Start
//
// Shared tables for well-known polynomials need no setup:
//
//	sum := crc32lut.ChecksumIEEE([]byte("123456789")) // 0xcbf43926
//	sum = crc32lut.Checksum(crc32lut.CastagnoliTable(), data, 0)
//
// Tables for other polynomials are built with MakeTable:
//
//	t := crc32lut.MakeTable(0xd5828281)
//	sum := t.Checksum(data, 0)
//
// # Streaming
//
// The seed argument carries state between chunks. The checksum of the last
// chunk, seeded with the checksum of the previous one, equals the checksum of
// the whole stream:
//
//	crc := uint32(0)
//	for _, chunk := range chunks {
//	    crc = crc32lut.Checksum(t, chunk, crc)
//	}
//
// New and NewWithSeed wrap the same computation in a hash.Hash32.
//
// # Managed Tables
//
// An Allocator hands out tables as explicitly released handles and enforces
// an optional memory budget. When the budget is exhausted CreateTable fails
// with ErrAllocationFailure:
//
//	a := crc32lut.NewAllocator(crc32lut.WithMemoryLimit(64 * crc32lut.TableSize))
//	h, err := a.CreateTable(0x741b8cd7)
//	if err != nil {
//	    return err
//	}
//	defer h.Release()
//
//	sum, err := h.Checksum(data, 0)
//
// Release reports true exactly once. A released handle returns ErrReleased.
//
// # Thread Safety
//
// Tables are immutable and may be shared by any number of goroutines.
// Allocator and Handle methods are safe for concurrent use.
package crc32lut
