package crc32lut

// TableSize is the number of bytes backing one lookup table.
const TableSize = 256 * 4

// Polynomial is a CRC-32 polynomial in reflected (LSB-first) form.
//
// Every 32-bit value is accepted. Degenerate values such as 0 produce a
// valid table with poor error detection.
type Polynomial uint32

// Table is a 256-entry lookup table for the byte-wise reflected CRC-32
// algorithm. Entry i is the remainder contribution of byte value i.
//
// A Table is immutable once built and safe for concurrent use.
type Table struct {
	poly    Polynomial
	entries [256]uint32
}

// MakeTable builds the lookup table for p.
// The result depends only on p.
func MakeTable(p Polynomial) *Table {
	t := &Table{poly: p}
	populate(&t.entries, p)
	return t
}

func populate(entries *[256]uint32, p Polynomial) {
	for i := range entries {
		r := uint32(i)
		for range 8 {
			if r&1 == 1 {
				r = (r >> 1) ^ uint32(p)
			} else {
				r >>= 1
			}
		}
		entries[i] = r
	}
}

// Polynomial returns the polynomial the table was built for.
func (t *Table) Polynomial() Polynomial {
	return t.poly
}

// Entry returns the table entry for byte value b.
func (t *Table) Entry(b byte) uint32 {
	return t.entries[b]
}

// Entries returns a copy of all 256 entries.
func (t *Table) Entries() [256]uint32 {
	return t.entries
}

// Equal reports whether t and o hold bit-identical entries.
func (t *Table) Equal(o *Table) bool {
	if t == nil || o == nil {
		return t == o
	}
	return t.entries == o.entries
}
