package codecpool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGrowReturnsZeroedSlice(t *testing.T) {
	b := &Buffer{}
	out := b.Grow(4)
	require.Equal(t, []byte{0, 0, 0, 0}, out)
}

func TestGrowReusesCapacityWithoutReallocating(t *testing.T) {
	b := &Buffer{B: make([]byte, 0, 16)}
	out := b.Grow(8)
	require.Len(t, out, 8)
	require.Equal(t, 16, cap(b.B))
}

func TestPoolGetPutRecycles(t *testing.T) {
	p := New(8, 1024)
	b := p.Get()
	b.Grow(8)
	copy(b.B, []byte{1, 2, 3, 4, 5, 6, 7, 8})
	p.Put(b)

	b2 := p.Get()
	require.Equal(t, 0, len(b2.B))
}

func TestPoolDiscardsOversizedBuffers(t *testing.T) {
	p := New(8, 16)
	b := &Buffer{B: make([]byte, 0, 1024)}
	p.Put(b)

	// The oversized buffer must not have been retained; a fresh Get()
	// should not have 1024 bytes of capacity "for free."
	fresh := p.Get()
	require.Less(t, cap(fresh.B), 1024)
}
