package dsdl_test

import (
	"testing"

	"github.com/flyiscool/uavdsdl/dsdl"
	"github.com/stretchr/testify/require"
)

func TestSerializeDeserializeRoundTrip(t *testing.T) {
	in := &heartbeat{Uptime: 123456, Health: 1, Mode: 2, Vendor: 0}

	fragments, err := dsdl.Serialize(in)
	require.NoError(t, err)
	require.Len(t, fragments, 1)
	require.Len(t, fragments[0], 7)

	out, ok := dsdl.Deserialize[heartbeat, *heartbeat](fragments...)
	require.True(t, ok)
	require.Equal(t, in, out)
}

func TestDeserializeMultiFragmentConcatenation(t *testing.T) {
	in := &heartbeat{Uptime: 7, Health: 0, Mode: 1, Vendor: 9}
	fragments, err := dsdl.Serialize(in)
	require.NoError(t, err)
	whole := fragments[0]

	out, ok := dsdl.Deserialize[heartbeat, *heartbeat](whole[:4], whole[4:])
	require.True(t, ok)
	require.Equal(t, in, out)
}

func TestDeserializeTooShortReturnsFalseNotError(t *testing.T) {
	out, ok := dsdl.Deserialize[heartbeat, *heartbeat]([]byte{0x01, 0x02, 0x03})
	require.False(t, ok)
	require.Nil(t, out)
}

func TestSerializeAnyRejectsService(t *testing.T) {
	_, err := dsdl.SerializeAny(heartbeatService{})
	require.ErrorIs(t, err, dsdl.ErrNotSerializable)
}

func TestSerializeAnyAcceptsMessage(t *testing.T) {
	fragments, err := dsdl.SerializeAny(&heartbeat{Uptime: 1})
	require.NoError(t, err)
	require.Len(t, fragments, 1)
}
