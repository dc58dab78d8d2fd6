package crc32lut

import "hash"

// Size of a CRC-32 checksum in bytes.
const Size = 4

type digest struct {
	seed uint32
	crc  uint32
	tab  *Table
}

// New returns a hash.Hash32 computing the CRC-32 with t.
func New(t *Table) hash.Hash32 { return NewWithSeed(t, 0) }

// NewWithSeed returns a hash.Hash32 that continues from a previously
// computed checksum. Reset returns the digest to seed.
func NewWithSeed(t *Table, seed uint32) hash.Hash32 {
	if t == nil {
		panic("crc32lut: New called with nil table")
	}
	return &digest{seed: seed, crc: seed, tab: t}
}

func (d *digest) Size() int { return Size }

func (d *digest) BlockSize() int { return 1 }

func (d *digest) Reset() { d.crc = d.seed }

func (d *digest) Write(p []byte) (n int, err error) {
	d.crc = Checksum(d.tab, p, d.crc)
	return len(p), nil
}

func (d *digest) Sum32() uint32 { return d.crc }

func (d *digest) Sum(in []byte) []byte {
	s := d.Sum32()
	return append(in, byte(s>>24), byte(s>>16), byte(s>>8), byte(s))
}
