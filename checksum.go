package crc32lut

const complement = 0xFFFFFFFF

// Checksum returns the CRC-32 of data using t, continuing from seed.
//
// Pass 0 as seed for a fresh stream. To checksum a stream in chunks, pass
// the result for one chunk as the seed for the next; the final value equals
// the checksum of the concatenated chunks. Empty data returns seed.
//
// t must not be nil.
func Checksum(t *Table, data []byte, seed uint32) uint32 {
	if t == nil {
		panic("crc32lut: Checksum called with nil table")
	}

	crc := seed ^ complement
	for _, d := range data {
		crc = t.entries[byte(crc)^d] ^ (crc >> 8)
	}
	return crc ^ complement
}

// Checksum returns the CRC-32 of data using t, continuing from seed.
// See the package-level Checksum.
func (t *Table) Checksum(data []byte, seed uint32) uint32 {
	return Checksum(t, data, seed)
}
