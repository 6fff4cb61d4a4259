// Package compress backs dsdl.RestoreConstant's decompression step. It is
// decompression-only: DSDL's wire format never carries compressed payloads,
// only opaque generator-embedded constants do, and those are produced
// up front by the schema compiler, never by this codec.
package compress

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// decoderPool pools zstd decoders for reuse, per the klauspost/compress/zstd
// guidance that a decoder should be kept warm and reused rather than
// recreated per call.
var decoderPool = sync.Pool{
	New: func() any {
		d, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(false),
		)
		if err != nil {
			panic(fmt.Sprintf("compress: failed to build zstd decoder: %v", err))
		}
		return d
	},
}

// Decompress restores the original bytes previously produced by a
// zstd-compressing schema compiler. Constants are small and decoded at most
// once per adapter, so correctness, not throughput, is what matters here.
func Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	d := decoderPool.Get().(*zstd.Decoder)
	defer decoderPool.Put(d)

	out, err := d.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("compress: zstd decompress: %w", err)
	}
	return out, nil
}
