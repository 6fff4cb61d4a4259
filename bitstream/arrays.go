package bitstream

import "unsafe"

// standardPrimitive enumerates the standard-width unsigned integer widths
// eligible for the aligned raw-memory-copy fast path. Signed widths share
// the same bit pattern on the wire, so callers convert through the
// unsigned family before reaching the array helpers.
type standardPrimitive interface {
	~uint16 | ~uint32 | ~uint64
}

func sizeOf[T standardPrimitive](v T) uintptr {
	return unsafe.Sizeof(v)
}

func toUint64[T standardPrimitive](v T) uint64 {
	return uint64(v)
}

// asBytes reinterprets a standard-width primitive slice as its raw
// little-endian byte representation without copying. This is only safe to
// call when the host is little-endian, since it aliases the slice's
// backing array directly.
func asBytes[T standardPrimitive](values []T) []byte {
	if len(values) == 0 {
		return nil
	}
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	ptr := unsafe.Pointer(&values[0])
	return unsafe.Slice((*byte)(ptr), len(values)*elemSize)
}

// fromBytes reinterprets a raw byte slice as a standard-width primitive
// slice without copying. Only safe when the host is little-endian and buf
// is sized to an exact multiple of the element width.
func fromBytes[T standardPrimitive](buf []byte, count int) []T {
	if count == 0 {
		return nil
	}
	ptr := unsafe.Pointer(&buf[0])
	return unsafe.Slice((*T)(ptr), count)
}
