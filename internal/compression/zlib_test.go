package compression

import (
	"bytes"
	"testing"

	"github.com/klauspost/compress/zlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	c := Default()
	for _, data := range [][]byte{
		{},
		[]byte("blob 5\x00hello"),
		bytes.Repeat([]byte("abcdefgh"), 1024),
	} {
		compressed, err := c.Compress(data)
		require.NoError(t, err)

		got, err := c.Decompress(compressed)
		require.NoError(t, err)
		assert.Equal(t, len(data), len(got))
		assert.True(t, bytes.Equal(data, got))
	}
}

func TestCompressWritesZlibStream(t *testing.T) {
	compressed, err := Default().Compress([]byte("blob 5\x00hello"))
	require.NoError(t, err)
	require.NotEmpty(t, compressed)
	// zlib header: deflate method, 32K window
	assert.Equal(t, byte(0x78), compressed[0])
}

func TestDecompressGarbage(t *testing.T) {
	_, err := Default().Decompress([]byte("definitely not zlib"))
	require.Error(t, err)
}

func TestNewCompressor(t *testing.T) {
	for _, level := range []int{zlib.BestSpeed, zlib.DefaultCompression, zlib.BestCompression} {
		c, err := NewCompressor(level)
		require.NoError(t, err)

		compressed, err := c.Compress([]byte("payload"))
		require.NoError(t, err)
		got, err := c.Decompress(compressed)
		require.NoError(t, err)
		assert.Equal(t, "payload", string(got))
	}

	_, err := NewCompressor(42)
	require.Error(t, err)
}
