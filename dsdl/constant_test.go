package dsdl_test

import (
	"bytes"
	"encoding/ascii85"
	"encoding/gob"
	"testing"

	"github.com/flyiscool/uavdsdl/dsdl"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/require"
)

// encodeOpaqueConstant mirrors the pipeline a schema compiler runs once,
// offline, to produce the opaque literal a generated adapter embeds as
// source text. dsdl.RestoreConstant is the inverse of exactly this.
func encodeOpaqueConstant(t *testing.T, v any) string {
	t.Helper()

	var gobBuf bytes.Buffer
	require.NoError(t, gob.NewEncoder(&gobBuf).Encode(v))

	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	compressed := enc.EncodeAll(gobBuf.Bytes(), nil)
	require.NoError(t, enc.Close())

	ascii := make([]byte, ascii85.MaxEncodedLen(len(compressed)))
	n := ascii85.Encode(ascii, compressed)
	return string(ascii[:n])
}

func TestRestoreConstantRoundTrip(t *testing.T) {
	want := float64(3.14159265358979)
	opaque := encodeOpaqueConstant(t, want)

	got := dsdl.RestoreConstant[float64](opaque)
	require.Equal(t, want, got)
}

func TestRestoreConstantStructValue(t *testing.T) {
	type limits struct {
		Min, Max int32
	}
	want := limits{Min: -100, Max: 100}
	opaque := encodeOpaqueConstant(t, want)

	got := dsdl.RestoreConstant[limits](opaque)
	require.Equal(t, want, got)
}
