package crc32lut

import (
	"bytes"
	"encoding/binary"
	"io"
	"math/rand/v2"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The gzip trailer stores CRC-32/IEEE of the uncompressed payload
// little-endian, followed by the payload size.
func TestChecksumIEEE_GzipTrailer(t *testing.T) {
	rng := rand.New(rand.NewPCG(13, 14))

	for _, n := range []int{0, 1, 9, 4096, 100_000} {
		payload := randomBytes(rng, n)

		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		_, err := zw.Write(payload)
		require.NoError(t, err)
		require.NoError(t, zw.Close())

		stream := buf.Bytes()
		require.GreaterOrEqual(t, len(stream), 8)
		trailer := stream[len(stream)-8:]

		assert.Equal(t, binary.LittleEndian.Uint32(trailer[:4]), ChecksumIEEE(payload), "length %d", n)
		assert.Equal(t, uint32(n), binary.LittleEndian.Uint32(trailer[4:]))

		zr, err := gzip.NewReader(bytes.NewReader(stream))
		require.NoError(t, err)
		got, err := io.ReadAll(zr)
		require.NoError(t, err)
		assert.Equal(t, ChecksumIEEE(payload), ChecksumIEEE(got))
	}
}

// Checksumming the payload while it is fed to the compressor in chunks
// matches the trailer as well.
func TestChecksumIEEE_GzipChunked(t *testing.T) {
	rng := rand.New(rand.NewPCG(15, 16))
	payload := randomBytes(rng, 10_000)

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	crc := uint32(0)
	for off := 0; off < len(payload); off += 777 {
		chunk := payload[off:min(off+777, len(payload))]
		_, err := zw.Write(chunk)
		require.NoError(t, err)
		crc = Checksum(IEEETable(), chunk, crc)
	}
	require.NoError(t, zw.Close())

	stream := buf.Bytes()
	assert.Equal(t, binary.LittleEndian.Uint32(stream[len(stream)-8:]), crc)
}
