// Package bitstream implements the DSDL bit-level codec: a Serializer and
// Deserializer pair that translate between in-memory composite-type values
// and their on-wire byte representation, at arbitrary (non-byte-aligned)
// bit positions when required.
//
// # Bit ordering
//
// Integers and floats are little-endian across whole bytes. Within a byte,
// bit index 0 is the most significant bit (MSB-first), matching the DSDL
// wire format and the bit-packing convention used throughout this package.
//
// # Thread safety
//
// A Serializer or Deserializer is single-use and single-threaded. The
// underlying byte region of a Deserializer may be shared read-only across
// multiple Deserializer instances, since no Deserializer mutates its input.
package bitstream

import "fmt"

const bitsPerByte = 8

// buffer is the shared bit-cursor bookkeeping behind both Serializer and
// Deserializer. It owns a contiguous mutable byte region and a bit cursor
// in [0, 8*len(buf)].
//
// The cursor is stored only as bitOffset. Its position within the current
// byte (intraByteOffset: 0 means byte-aligned, 1-7 means a partial byte is
// in progress) is derived from it, so there is exactly one source of truth.
type buffer struct {
	buf       []byte
	bitOffset uint64 // cursor, in bits, from the start of buf
	capBits   uint64 // declared capacity in bits (encode: presized; decode: len(buf)*8)
}

// CapacityBytes returns the declared capacity of the buffer in bytes.
func (b *buffer) CapacityBytes() int {
	return int(b.capBits / bitsPerByte)
}

// ConsumedBits returns the number of bits the cursor has advanced past.
func (b *buffer) ConsumedBits() uint64 {
	return b.bitOffset
}

// RemainingBits returns the number of bits left before the cursor reaches
// the declared capacity.
func (b *buffer) RemainingBits() uint64 {
	return b.capBits - b.bitOffset
}

// ByteOffset returns the cursor's whole-byte position (bitOffset / 8).
func (b *buffer) ByteOffset() int {
	return int(b.bitOffset / bitsPerByte)
}

// aligned reports whether the cursor currently sits on a byte boundary.
func (b *buffer) aligned() bool {
	return b.bitOffset%bitsPerByte == 0
}

// intraByteOffset returns the cursor's position within its current byte,
// 0-7, with 0 meaning byte-aligned.
func (b *buffer) intraByteOffset() uint64 {
	return b.bitOffset % bitsPerByte
}

func (b *buffer) advance(nBits uint64) {
	b.bitOffset += nBits
}

// ErrCapacityExceeded is a programmer fault: an encode operation attempted
// to write past the buffer's declared capacity. Callers must presize the
// Serializer's buffer using the schema's declared maximum serialized size;
// this is never raised by malformed input.
var ErrCapacityExceeded = fmt.Errorf("bitstream: write past declared capacity")

// ErrCursorOverrun is a programmer fault: a decode operation attempted to
// skip or read past the buffer end without first validating
// RequireRemainingBits. Distinguishing this from ErrShort lets tests tell
// implementation bugs apart from malformed input, per the codec's error
// contract.
var ErrCursorOverrun = fmt.Errorf("bitstream: cursor overrun without pre-check")

// ErrShort is returned by Deserializer operations when the input does not
// contain enough bits to satisfy the requested read.
var ErrShort = fmt.Errorf("bitstream: short input")
