package crc32lut

import (
	"sort"
	"strings"
)

// Well-known reflected polynomials.
const (
	// IEEE is the IEEE 802.3 polynomial, used by PNG, gzip, zip,
	// Ethernet and SATA.
	IEEE Polynomial = 0xedb88320

	// Castagnoli (CRC-32C) has better error detection than IEEE.
	// Used by iSCSI, ext4 and Btrfs.
	Castagnoli Polynomial = 0x82f63b78

	// Koopman is Philip Koopman's {1,3,28} polynomial (CRC-32K).
	Koopman Polynomial = 0xeb31d82e

	// KoopmanHD18 is a Koopman polynomial with Hamming distance 18 on
	// short messages.
	// https://users.ece.cmu.edu/~koopman/crc/index.html
	KoopmanHD18 Polynomial = 0x973afb51
)

// Process-wide tables. Built once during package initialization and never
// written afterwards.
var (
	ieeeTable        = MakeTable(IEEE)
	castagnoliTable  = MakeTable(Castagnoli)
	koopmanTable     = MakeTable(Koopman)
	koopmanHD18Table = MakeTable(KoopmanHD18)
)

var knownTables = map[string]*Table{
	"ieee":         ieeeTable,
	"castagnoli":   castagnoliTable,
	"koopman":      koopmanTable,
	"koopman-hd18": koopmanHD18Table,
}

// IEEETable returns the shared table for IEEE.
func IEEETable() *Table { return ieeeTable }

// CastagnoliTable returns the shared table for Castagnoli.
func CastagnoliTable() *Table { return castagnoliTable }

// KoopmanTable returns the shared table for Koopman.
func KoopmanTable() *Table { return koopmanTable }

// KoopmanHD18Table returns the shared table for KoopmanHD18.
func KoopmanHD18Table() *Table { return koopmanHD18Table }

// KnownTable looks up a shared table by name. Names are case-insensitive:
// "ieee", "castagnoli", "koopman" and "koopman-hd18".
func KnownTable(name string) (*Table, bool) {
	t, ok := knownTables[strings.ToLower(strings.TrimSpace(name))]
	return t, ok
}

// KnownNames returns the names accepted by KnownTable, sorted.
func KnownNames() []string {
	names := make([]string, 0, len(knownTables))
	for name := range knownTables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ChecksumIEEE returns the CRC-32 of data using the IEEE table.
func ChecksumIEEE(data []byte) uint32 {
	return Checksum(ieeeTable, data, 0)
}
