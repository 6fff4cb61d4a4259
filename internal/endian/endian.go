// Package endian determines the host process's native byte order so the
// bitstream package can decide, once per process, whether an aligned
// standard-width primitive array can alias the underlying buffer directly
// or must go through a copying path.
package endian

import (
	"encoding/binary"
	"sync"
	"unsafe"
)

var (
	once       sync.Once
	hostOrder  binary.ByteOrder
	nativeIsLE bool
)

// detect probes the host's byte order using a fixed value placed in memory,
// the same technique encoding/binary's own tests use to avoid depending on
// build constraints for every architecture.
func detect() binary.ByteOrder {
	var i uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

func ensure() {
	once.Do(func() {
		hostOrder = detect()
		nativeIsLE = hostOrder == binary.LittleEndian
	})
}

// Native returns the host's byte order, computed once and cached.
func Native() binary.ByteOrder {
	ensure()
	return hostOrder
}

// IsNativeLittleEndian reports whether the host is little-endian. The wire
// format is always little-endian; when this is true, aligned standard-width
// arrays may alias the buffer directly instead of being copied element by
// element.
func IsNativeLittleEndian() bool {
	ensure()
	return nativeIsLE
}
