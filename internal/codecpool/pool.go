// Package codecpool provides a sync.Pool-backed recycler for the byte
// buffers backing bitstream.Serializer. dsdl.Serialize borrows one of
// these buffers for the duration of a single encode and returns it once
// the result has been copied out, so repeated calls don't allocate a
// fresh backing array every time. Pooling is purely an allocation
// optimization: it never changes the single-threaded-per-instance
// contract of bitstream.Serializer.
package codecpool

import "sync"

// Buffer is a growable byte slice recyclable through a Pool.
type Buffer struct {
	B []byte
}

// Reset truncates the buffer to length zero while keeping its capacity.
func (b *Buffer) Reset() {
	b.B = b.B[:0]
}

// Grow ensures the buffer can hold at least n bytes without reallocating,
// then returns it sized to exactly n bytes, zeroed.
func (b *Buffer) Grow(n int) []byte {
	if cap(b.B) < n {
		b.B = make([]byte, n)
		return b.B
	}
	b.B = b.B[:n]
	for i := range b.B {
		b.B[i] = 0
	}
	return b.B
}

// Pool recycles Buffers sized around defaultSize, discarding buffers that
// grew past maxThreshold instead of returning them to the pool, to bound
// memory retained by a single oversized message.
type Pool struct {
	pool         sync.Pool
	maxThreshold int
}

// New constructs a Pool whose fresh Buffers start at defaultSize capacity.
func New(defaultSize, maxThreshold int) *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return &Buffer{B: make([]byte, 0, defaultSize)}
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a Buffer from the pool, allocating a new one if empty.
func (p *Pool) Get() *Buffer {
	return p.pool.Get().(*Buffer)
}

// Put returns a Buffer to the pool for reuse. Buffers whose capacity
// exceeds maxThreshold are discarded rather than retained.
func (p *Pool) Put(b *Buffer) {
	if b == nil {
		return
	}
	if p.maxThreshold > 0 && cap(b.B) > p.maxThreshold {
		return
	}
	b.Reset()
	p.pool.Put(b)
}

const (
	defaultBufferSize = 1024 * 4  // 4KiB, generous for a single DSDL message
	maxBufferSize     = 1024 * 64 // 64KiB
)

var defaultPool = New(defaultBufferSize, maxBufferSize)

// GetBuffer retrieves a Buffer from the package-level default pool.
func GetBuffer() *Buffer { return defaultPool.Get() }

// PutBuffer returns a Buffer to the package-level default pool.
func PutBuffer(b *Buffer) { defaultPool.Put(b) }
