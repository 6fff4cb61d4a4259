package bitstream

import (
	"math"

	"github.com/flyiscool/uavdsdl/internal/endian"
)

// Deserializer consumes typed values from a byte region starting at the
// current cursor, mirroring Serializer's Tier 1/2/3 structure.
//
// A Deserializer never mutates its input. Array fields returned by the
// aligned fast path may alias the input region directly (see
// ReadUint16Array and friends); callers must not mutate or free the input
// before any decoded value that may alias it is discarded.
type Deserializer struct {
	buffer
}

// NewDeserializer wraps data for reading. data is not copied; the
// Deserializer may return views into it from the aligned array fast path.
func NewDeserializer(data []byte) *Deserializer {
	return &Deserializer{
		buffer: buffer{
			buf:     data,
			capBits: uint64(len(data)) * bitsPerByte,
		},
	}
}

// RequireRemainingBits fails with ErrShort if the remaining bit length is
// strictly less than minBits. Every top-level decode MUST call this before
// consuming any data; doing so is what makes the trailing-byte zero-fill
// behavior of the unaligned reads (see readBytes) safe.
func (d *Deserializer) RequireRemainingBits(minBits uint64) error {
	if d.RemainingBits() < minBits {
		return ErrShort
	}
	return nil
}

// Advance skips forward nBits, used for schema-declared padding. Returns
// ErrCursorOverrun if nBits exceeds the remaining length; callers are
// expected to have validated RequireRemainingBits beforehand, so reaching
// this error indicates a bug in the caller, not malformed input.
func (d *Deserializer) Advance(nBits uint64) error {
	if nBits > d.RemainingBits() {
		return ErrCursorOverrun
	}
	d.advance(nBits)
	return nil
}

// readBytes returns count bytes starting at the current cursor and
// advances the cursor by nBits (count*8 for whole bytes; fewer for a
// sub-byte-length integer, whose final byte only carries its high nBits%8
// bits). When the cursor is byte-aligned, the result aliases the input
// slice directly (Tier 1, zero copy). Otherwise it applies the unaligned
// split-byte algorithm, the inverse of Serializer.writeBytes: each
// destination byte is assembled from the low bits of one source byte and
// the high bits of the next.
//
// The final byte of an unaligned read is allowed to be short by up to
// seven bits at the very end of the buffer; those missing bits read as
// zero. This is only safe because the caller has already validated
// RequireRemainingBits for the full read, per the codec's length
// pre-check contract (an unchecked overrun elsewhere surfaces as
// ErrCursorOverrun, not a silently zero-filled read).
func (d *Deserializer) readBytes(count int, nBits uint64) ([]byte, error) {
	if count == 0 {
		return nil, nil
	}
	if nBits > d.RemainingBits() {
		return nil, ErrCursorOverrun
	}

	byteOff := d.ByteOffset()
	left := d.intraByteOffset()
	if left == 0 {
		out := d.buf[byteOff : byteOff+count]
		d.advance(nBits)
		return out, nil
	}

	right := bitsPerByte - left
	out := make([]byte, count)
	lastIdx := count - 1
	for i := 0; i < lastIdx; i++ {
		out[i] = (d.buf[byteOff+i] << left) | (d.buf[byteOff+i+1] >> right)
	}
	// The last destination byte's low bits come from the byte following
	// byteOff+lastIdx, which may be past the end of buf if the stream ends
	// within the final partial byte. RequireRemainingBits already
	// guarantees those missing bits are legitimately zero padding.
	x := d.buf[byteOff+lastIdx] << left
	if byteOff+lastIdx+1 < len(d.buf) {
		x |= d.buf[byteOff+lastIdx+1] >> right
	}
	out[lastIdx] = x

	d.advance(nBits)
	return out, nil
}

// unsignedFromBytes reconstructs an unsigned value of bitLength bits from
// its little-endian byte representation: whole bytes contribute all eight
// bits, and the final byte contributes only its high bitLength%8 bits
// (shifted right to justify), matching the placement bitLengthToBytes
// performed on encode.
func unsignedFromBytes(b []byte, bitLength uint8) uint64 {
	lastIdx := len(b) - 1
	var out uint64
	for i := 0; i < lastIdx; i++ {
		out |= uint64(b[i]) << (uint(i) * 8)
	}
	shift := (8 - bitLength%8) & 7
	out |= uint64(b[lastIdx]>>shift) << (uint(lastIdx) * 8)
	return out
}

// ReadBit reads a single bit at the current cursor.
func (d *Deserializer) ReadBit() (bool, error) {
	if d.RemainingBits() < 1 {
		return false, ErrCursorOverrun
	}
	byteOff := d.ByteOffset()
	mask := byte(1) << (7 - d.intraByteOffset())
	out := d.buf[byteOff]&mask == mask
	d.advance(1)
	return out, nil
}

// ReadUint reads bitLength bits (1-64) as an unsigned non-negative-binary
// integer.
func (d *Deserializer) ReadUint(bitLength uint8) (uint64, error) {
	if bitLength == 0 || bitLength > 64 {
		return 0, ErrCursorOverrun
	}
	n := (int(bitLength) + 7) / 8
	b, err := d.readBytes(n, uint64(bitLength))
	if err != nil {
		return 0, err
	}
	return unsignedFromBytes(b, bitLength), nil
}

// ReadInt reads bitLength bits (2-64) and interprets them as a two's
// complement signed integer.
func (d *Deserializer) ReadInt(bitLength uint8) (int64, error) {
	if bitLength < 2 {
		return 0, ErrCursorOverrun
	}
	u, err := d.ReadUint(bitLength)
	if err != nil {
		return 0, err
	}
	signBit := uint64(1) << (bitLength - 1)
	if u&signBit != 0 {
		return int64(u) - int64(uint64(1)<<bitLength), nil
	}
	return int64(u), nil
}

// ReadUint8, ReadUint16, ReadUint32, ReadUint64 are Tier 1 fast-path
// readers for standard-width unsigned integers.
func (d *Deserializer) ReadUint8() (uint8, error) {
	v, err := d.ReadUint(8)
	return uint8(v), err
}

func (d *Deserializer) ReadUint16() (uint16, error) {
	v, err := d.ReadUint(16)
	return uint16(v), err
}

func (d *Deserializer) ReadUint32() (uint32, error) {
	v, err := d.ReadUint(32)
	return uint32(v), err
}

func (d *Deserializer) ReadUint64() (uint64, error) {
	return d.ReadUint(64)
}

// ReadInt8, ReadInt16, ReadInt32, ReadInt64 are Tier 1 fast-path readers
// for standard-width signed integers.
func (d *Deserializer) ReadInt8() (int8, error) {
	v, err := d.ReadInt(8)
	return int8(v), err
}

func (d *Deserializer) ReadInt16() (int16, error) {
	v, err := d.ReadInt(16)
	return int16(v), err
}

func (d *Deserializer) ReadInt32() (int32, error) {
	v, err := d.ReadInt(32)
	return int32(v), err
}

func (d *Deserializer) ReadInt64() (int64, error) {
	return d.ReadInt(64)
}

// ReadFloat16 reads a half-precision (binary16) float.
func (d *Deserializer) ReadFloat16() (float64, error) {
	v, err := d.ReadUint(16)
	if err != nil {
		return 0, err
	}
	return float16BitsToFloat64(uint16(v)), nil
}

// ReadFloat32 reads a single-precision (binary32) float.
func (d *Deserializer) ReadFloat32() (float32, error) {
	v, err := d.ReadUint(32)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(uint32(v)), nil
}

// ReadFloat64 reads a double-precision (binary64) float.
func (d *Deserializer) ReadFloat64() (float64, error) {
	v, err := d.ReadUint(64)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

// ReadBytes reads count raw bytes (e.g. an octet string's payload). When
// the cursor is byte-aligned the result aliases the input region; callers
// must respect the aliasing rule documented on Deserializer.
func (d *Deserializer) ReadBytes(count int) ([]byte, error) {
	return d.readBytes(count, uint64(count)*bitsPerByte)
}

// ReadBitArray reads count bits, MSB-first, returning one bool per bit. An
// empty array (count == 0) returns an empty, non-nil-checked result.
func (d *Deserializer) ReadBitArray(count int) ([]bool, error) {
	if count == 0 {
		return []bool{}, nil
	}
	if uint64(count) > d.RemainingBits() {
		return nil, ErrCursorOverrun
	}
	out := make([]bool, count)
	for i := range out {
		v, err := d.ReadBit()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// readAlignedArray reads count standard-width elements. When the cursor is
// byte-aligned and the host is little-endian, it returns a slice aliasing
// the input buffer directly (Tier 1, zero copy); otherwise it falls back
// to a freshly-owned, element-wise decode.
func readAlignedArray[T standardPrimitive](d *Deserializer, count int) ([]T, error) {
	var zero T
	elemBits := uint8(8 * sizeOf(zero))
	if d.aligned() && endian.IsNativeLittleEndian() {
		raw, err := d.readBytes(count*int(elemBits/8), uint64(count)*uint64(elemBits))
		if err != nil {
			return nil, err
		}
		return fromBytes[T](raw, count), nil
	}

	out := make([]T, count)
	for i := range out {
		v, err := d.ReadUint(elemBits)
		if err != nil {
			return nil, err
		}
		out[i] = T(v)
	}
	return out, nil
}

// ReadUint16Array reads a fixed-size array of uint16, aliasing the input
// buffer when alignment and host endianness allow.
func (d *Deserializer) ReadUint16Array(count int) ([]uint16, error) {
	return readAlignedArray[uint16](d, count)
}

// ReadUint32Array reads a fixed-size array of uint32, aliasing the input
// buffer when alignment and host endianness allow.
func (d *Deserializer) ReadUint32Array(count int) ([]uint32, error) {
	return readAlignedArray[uint32](d, count)
}

// ReadUint64Array reads a fixed-size array of uint64, aliasing the input
// buffer when alignment and host endianness allow.
func (d *Deserializer) ReadUint64Array(count int) ([]uint64, error) {
	return readAlignedArray[uint64](d, count)
}
