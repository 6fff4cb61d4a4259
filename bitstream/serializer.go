package bitstream

import (
	"math"

	"github.com/flyiscool/uavdsdl/internal/endian"
)

// Serializer appends typed values to a pre-sized byte buffer at the current
// cursor. Callers MUST presize the buffer to at least the top-level type's
// declared maximum serialized size; writes never grow the buffer, and an
// attempt to write past the declared capacity is a programmer fault
// (ErrCapacityExceeded), not a format error.
type Serializer struct {
	buffer
}

// Option configures a Serializer at construction time.
type Option func(*Serializer)

// WithBuffer supplies a preallocated, zeroed byte slice of at least
// capacityBytes length for the Serializer to write into directly, letting
// a caller reuse a buffer obtained from internal/codecpool instead of
// allocating a fresh one per message.
func WithBuffer(buf []byte) Option {
	return func(s *Serializer) {
		s.buf = buf
	}
}

// NewSerializer returns a Serializer backed by a zeroed buffer of the given
// capacity, in bytes. capacityBytes should be at least the schema's
// max_serialized_representation_size_bytes for the top-level type being
// encoded.
func NewSerializer(capacityBytes int, opts ...Option) *Serializer {
	s := &Serializer{
		buffer: buffer{
			capBits: uint64(capacityBytes) * bitsPerByte,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.buf == nil {
		s.buf = make([]byte, capacityBytes)
	}
	return s
}

// Bytes returns the portion of the buffer written so far, including the
// trailing partial byte if the cursor is not on a byte boundary. Callers
// that need the canonical top-level representation should call Pad first.
func (s *Serializer) Bytes() []byte {
	n := (s.bitOffset + 7) / 8
	return s.buf[:n]
}

// Pad advances the cursor to the next byte boundary, leaving the skipped
// bits at their existing zero value. The top-level encode operation always
// finishes with exactly one Pad call; nested composites are never padded.
func (s *Serializer) Pad() {
	if rem := s.intraByteOffset(); rem != 0 {
		s.advance(bitsPerByte - rem)
	}
}

// Advance skips forward nBits without writing anything, leaving the
// skipped bits at their existing zero value. Used for DSDL void (reserved)
// fields, which are always zero.
func (s *Serializer) Advance(nBits uint64) error {
	if err := s.requireCapacity(nBits); err != nil {
		return err
	}
	s.advance(nBits)
	return nil
}

func (s *Serializer) requireCapacity(nBits uint64) error {
	if nBits > s.RemainingBits() {
		return ErrCapacityExceeded
	}
	return nil
}

// writeBytes places data at the current cursor, advancing it by nBits
// bits (len(data)*8 for whole bytes; fewer when the final byte of data
// carries only its high nBits%8 bits, as produced by bitLengthToBytes).
// When the cursor is byte-aligned this is a direct slice copy (Tier 1);
// otherwise it performs the unaligned split-byte algorithm: each source
// byte is split across the two adjacent destination bytes at the current
// intra-byte offset, with the destination's low (unfilled) bits receiving
// the source's high bits and the next destination byte's high bits
// receiving the source's low bits.
func (s *Serializer) writeBytes(data []byte, nBits uint64) error {
	if len(data) == 0 {
		return nil
	}
	if err := s.requireCapacity(nBits); err != nil {
		return err
	}

	byteOff := s.ByteOffset()
	left := s.intraByteOffset()
	if left == 0 {
		copy(s.buf[byteOff:byteOff+len(data)], data)
		s.advance(nBits)
		return nil
	}

	right := bitsPerByte - left
	for i, b := range data {
		s.buf[byteOff+i] |= b >> left
		if byteOff+i+1 < len(s.buf) {
			s.buf[byteOff+i+1] |= (b << right) & 0xFF
		}
	}
	s.advance(nBits)
	return nil
}

// WriteBit writes a single bit at the current cursor.
func (s *Serializer) WriteBit(v bool) error {
	if err := s.requireCapacity(1); err != nil {
		return err
	}
	if v {
		byteOff := s.ByteOffset()
		mask := byte(1) << (7 - s.intraByteOffset())
		s.buf[byteOff] |= mask
	}
	s.advance(1)
	return nil
}

// bitLengthToBytes encodes the low bitLength bits of value as
// ceil(bitLength/8) bytes. Whole bytes hold a full 8 bits each,
// little-endian; the final byte right-justifies its meaningful
// bitLength%8 bits against its own MSB, so the byte's low (8 - bitLength%8)
// bits are the zero padding available to whatever field follows at this
// cursor position. This is the exact inverse of unsignedFromBytes.
func bitLengthToBytes(value uint64, bitLength uint8) []byte {
	value &= maskFor(bitLength)
	n := (int(bitLength) + 7) / 8
	out := make([]byte, n)
	for i := 0; i < n-1; i++ {
		out[i] = byte(value >> (uint(i) * 8))
	}
	shift := (8 - bitLength%8) & 7
	out[n-1] = byte(value>>(uint(n-1)*8)) << shift
	return out
}

func maskFor(bitLength uint8) uint64 {
	if bitLength >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << bitLength) - 1
}

// WriteUint writes the low bitLength bits (1-64) of value as an unsigned
// non-negative-binary integer, little-endian across whole bytes. This is
// Tier 2 when the cursor is byte-aligned and Tier 3 otherwise; both share
// the same byte representation, only the placement algorithm differs.
func (s *Serializer) WriteUint(bitLength uint8, value uint64) error {
	if bitLength == 0 || bitLength > 64 {
		return ErrCapacityExceeded
	}
	return s.writeBytes(bitLengthToBytes(value, bitLength), uint64(bitLength))
}

// WriteInt writes the low bitLength bits (2-64) of value using two's
// complement representation.
func (s *Serializer) WriteInt(bitLength uint8, value int64) error {
	return s.WriteUint(bitLength, uint64(value)&maskFor(bitLength))
}

// WriteUint8, WriteUint16, WriteUint32, WriteUint64 are Tier 1 fast-path
// writers for standard-width unsigned integers.
func (s *Serializer) WriteUint8(v uint8) error   { return s.WriteUint(8, uint64(v)) }
func (s *Serializer) WriteUint16(v uint16) error { return s.WriteUint(16, uint64(v)) }
func (s *Serializer) WriteUint32(v uint32) error { return s.WriteUint(32, uint64(v)) }
func (s *Serializer) WriteUint64(v uint64) error { return s.WriteUint(64, v) }

// WriteInt8, WriteInt16, WriteInt32, WriteInt64 are Tier 1 fast-path
// writers for standard-width signed integers.
func (s *Serializer) WriteInt8(v int8) error   { return s.WriteInt(8, int64(v)) }
func (s *Serializer) WriteInt16(v int16) error { return s.WriteInt(16, int64(v)) }
func (s *Serializer) WriteInt32(v int32) error { return s.WriteInt(32, int64(v)) }
func (s *Serializer) WriteInt64(v int64) error { return s.WriteInt(64, v) }

// WriteFloat16 writes a half-precision (binary16) float.
func (s *Serializer) WriteFloat16(v float64) error {
	return s.WriteUint(16, uint64(float64ToFloat16Bits(v)))
}

// WriteFloat32 writes a single-precision (binary32) float.
func (s *Serializer) WriteFloat32(v float32) error {
	return s.WriteUint(32, uint64(math.Float32bits(v)))
}

// WriteFloat64 writes a double-precision (binary64) float.
func (s *Serializer) WriteFloat64(v float64) error {
	return s.WriteUint(64, math.Float64bits(v))
}

// WriteBytes writes a raw byte sequence (e.g. an octet string's payload)
// at the current cursor without any length prefix; the caller is
// responsible for any length determinant required by the schema.
func (s *Serializer) WriteBytes(data []byte) error {
	return s.writeBytes(data, uint64(len(data))*bitsPerByte)
}

// WriteBitArray packs bits MSB-first, one bit per element of values, at the
// current cursor.
func (s *Serializer) WriteBitArray(values []bool) error {
	if err := s.requireCapacity(uint64(len(values))); err != nil {
		return err
	}
	for _, v := range values {
		_ = s.WriteBit(v) // capacity already validated above
	}
	return nil
}

// writeAlignedArray writes a standard-width primitive array in its raw
// little-endian byte representation. When the cursor is byte-aligned and
// the host is little-endian it copies the input slice's memory directly
// (Tier 1 raw memory copy); otherwise it falls back to element-wise
// encoding.
func writeAlignedArray[T standardPrimitive](s *Serializer, values []T) error {
	var zero T
	elemBits := uint8(8 * sizeOf(zero))
	nBits := uint64(len(values)) * uint64(elemBits)
	if err := s.requireCapacity(nBits); err != nil {
		return err
	}
	if s.aligned() && endian.IsNativeLittleEndian() {
		raw := asBytes(values)
		byteOff := s.ByteOffset()
		copy(s.buf[byteOff:byteOff+len(raw)], raw)
		s.advance(nBits)
		return nil
	}
	for _, v := range values {
		if err := s.WriteUint(elemBits, toUint64(v)); err != nil {
			return err
		}
	}
	return nil
}

// WriteUint16Array writes a fixed-size array of uint16 using the aligned
// raw-copy fast path when possible.
func (s *Serializer) WriteUint16Array(values []uint16) error { return writeAlignedArray(s, values) }

// WriteUint32Array writes a fixed-size array of uint32 using the aligned
// raw-copy fast path when possible.
func (s *Serializer) WriteUint32Array(values []uint32) error { return writeAlignedArray(s, values) }

// WriteUint64Array writes a fixed-size array of uint64 using the aligned
// raw-copy fast path when possible.
func (s *Serializer) WriteUint64Array(values []uint64) error { return writeAlignedArray(s, values) }
