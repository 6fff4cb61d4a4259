package bitstream

import (
	"testing"

	"github.com/flyiscool/uavdsdl/internal/endian"
	"github.com/stretchr/testify/require"
)

func TestUint16ArrayAliasesInputWhenAlignedAndLittleEndian(t *testing.T) {
	if !endian.IsNativeLittleEndian() {
		t.Skip("aliasing fast path only applies on little-endian hosts")
	}

	buf := []byte{0xAD, 0xDE, 0xEF, 0xBE}
	d := NewDeserializer(buf)
	arr, err := d.ReadUint16Array(2)
	require.NoError(t, err)
	require.Equal(t, []uint16{0xDEAD, 0xBEEF}, arr)

	// Mutating the backing array must be visible through arr: this is the
	// zero-copy alias the aligned fast path promises, not a coincidence.
	buf[0] = 0x00
	require.EqualValues(t, 0xDE00, arr[0])
}

func TestUint32ArrayRoundTrip(t *testing.T) {
	s := NewSerializer(8)
	require.NoError(t, s.WriteUint32Array([]uint32{1, 2}))
	s.Pad()

	d := NewDeserializer(s.Bytes())
	arr, err := d.ReadUint32Array(2)
	require.NoError(t, err)
	require.Equal(t, []uint32{1, 2}, arr)
}

func TestUint64ArrayUnalignedFallsBackToElementwise(t *testing.T) {
	s := NewSerializer(17)
	require.NoError(t, s.WriteBit(true)) // force misalignment
	require.NoError(t, s.WriteUint64Array([]uint64{1, 0xFFFFFFFFFFFFFFFF}))
	s.Pad()

	d := NewDeserializer(s.Bytes())
	_, err := d.ReadBit()
	require.NoError(t, err)
	arr, err := d.ReadUint64Array(2)
	require.NoError(t, err)
	require.Equal(t, []uint64{1, 0xFFFFFFFFFFFFFFFF}, arr)
}
