package dsdl

import (
	"bytes"
	"encoding/ascii85"
	"encoding/gob"
	"fmt"

	"github.com/flyiscool/uavdsdl/internal/compress"
)

// RestoreConstant decodes a generator-embedded opaque constant back into a
// value of type T. The on-disk pipeline, reversed here, is: encode the
// Go value with encoding/gob, zstd-compress the result, then ascii85-encode
// it into a string literal the generated adapter can embed as source text.
//
// Generated adapters call this once, from their package init(), and cache
// the result in a package-level variable; it is never meant to run on a
// per-decode hot path.
func RestoreConstant[T any](opaqueText string) T {
	raw := make([]byte, len(opaqueText))
	n, _, err := ascii85.Decode(raw, []byte(opaqueText), true)
	if err != nil {
		panic(fmt.Sprintf("dsdl: RestoreConstant: ascii85 decode: %v", err))
	}

	decompressed, err := compress.Decompress(raw[:n])
	if err != nil {
		panic(fmt.Sprintf("dsdl: RestoreConstant: zstd decompress: %v", err))
	}

	var out T
	dec := gob.NewDecoder(bytes.NewReader(decompressed))
	if err := dec.Decode(&out); err != nil {
		panic(fmt.Sprintf("dsdl: RestoreConstant: gob decode: %v", err))
	}
	return out
}
