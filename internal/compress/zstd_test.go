package compress

import (
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"
)

func TestDecompressRoundTrip(t *testing.T) {
	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	original := []byte("the quick brown fox jumps over the lazy dog, repeatedly, for compressibility")
	compressed := enc.EncodeAll(original, nil)
	require.NoError(t, enc.Close())

	got, err := Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, original, got)
}

func TestDecompressEmptyInput(t *testing.T) {
	got, err := Decompress(nil)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestDecompressCorruptInput(t *testing.T) {
	_, err := Decompress([]byte{0x01, 0x02, 0x03})
	require.Error(t, err)
}
