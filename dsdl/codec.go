package dsdl

import (
	"errors"
	"fmt"

	"github.com/flyiscool/uavdsdl/bitstream"
	"github.com/flyiscool/uavdsdl/internal/codecpool"
)

// Serialize encodes msg into one or more wire fragments. A single-fragment
// result is the common case; multiple fragments only arise from transports
// that impose their own MTU below the type's maximum size, which this
// package does not itself model (it always returns exactly one fragment).
//
// Encoding uses a pooled backing buffer (internal/codecpool) rather than
// allocating one per call; the returned fragment is a fresh copy sized to
// the actual encoded length, so the pooled buffer can be recycled as soon
// as this function returns.
func Serialize(msg Message) ([][]byte, error) {
	capacity := int(msg.MaxSizeBytes())

	pooled := codecpool.GetBuffer()
	defer codecpool.PutBuffer(pooled)

	s := bitstream.NewSerializer(capacity, bitstream.WithBuffer(pooled.Grow(capacity)))
	if err := msg.Encode(s); err != nil {
		return nil, fmt.Errorf("dsdl: serialize %s: %w", msg.Model().FullName, err)
	}
	s.Pad()

	out := make([]byte, len(s.Bytes()))
	copy(out, s.Bytes())
	return [][]byte{out}, nil
}

// Deserialize concatenates fragments (in order) and decodes them into a
// fresh *T, where T is a generated message type whose pointer (PT)
// implements Message. A single fragment is decoded in place, without a
// copy, so array fields of the result may alias it. It never returns a Go error: a malformed input
// yields (nil, false) after logging one INFO line identifying the
// failure, matching the contract that decoding a value either succeeds or
// is reported as "not this type," never as an exception a caller must
// specifically catch.
//
// Any error other than a FormatError (for instance a bitstream
// programmer-fault error) is a bug, not malformed input, and is
// intentionally not swallowed here; see ErrCapacityExceeded and
// ErrCursorOverrun, which this function lets panic rather than hide.
func Deserialize[T any, PT interface {
	*T
	Message
}](fragments ...[]byte) (*T, bool) {
	out := new(T)
	msg := PT(out)
	if !DecodeDynamic(msg, fragments...) {
		return nil, false
	}
	return out, true
}

// DecodeDynamic decodes fragments into an already-constructed msg,
// typically one obtained from the registry via ClassOf when the concrete
// type is only known at runtime (as in cmd/dsdldump). It has the same
// never-returns-an-error-at-this-boundary contract as Deserialize.
func DecodeDynamic(msg Message, fragments ...[]byte) bool {
	var buf []byte
	if len(fragments) == 1 {
		buf = fragments[0]
	} else {
		total := 0
		for _, f := range fragments {
			total += len(f)
		}
		buf = make([]byte, 0, total)
		for _, f := range fragments {
			buf = append(buf, f...)
		}
	}

	d := bitstream.NewDeserializer(buf)

	minBits := uint64(msg.Model().MinSerializedBits)
	if err := d.RequireRemainingBits(minBits); err != nil {
		logFormatError(msg.Model().FullName, err, d)
		return false
	}

	if err := msg.DecodeMessage(d); err != nil {
		if errors.Is(err, ErrFormat) || errors.Is(err, bitstream.ErrShort) {
			logFormatError(msg.Model().FullName, err, d)
			return false
		}
		panic(fmt.Sprintf("dsdl: deserialize %s: programmer fault: %v", msg.Model().FullName, err))
	}

	return true
}

// SerializeAny accepts either a Message or a Service. A Service is never
// serializable as a unit, by construction: Service does not embed Message,
// so the only way to reach this error is the explicit type switch below,
// never a runtime-only method call that silently "succeeds" with garbage.
func SerializeAny(v any) ([][]byte, error) {
	switch t := v.(type) {
	case Message:
		return Serialize(t)
	case Service:
		return nil, fmt.Errorf("dsdl: %s: %w", t.Model().FullName, ErrNotSerializable)
	default:
		return nil, fmt.Errorf("dsdl: value of type %T is neither a Message nor a Service", v)
	}
}

func logFormatError(fullName string, err error, d *bitstream.Deserializer) {
	log.WithFields(logrusFields(fullName, err, d)).Info("dsdl: malformed serialized representation")
}

func logrusFields(fullName string, err error, d *bitstream.Deserializer) map[string]any {
	return map[string]any{
		"descriptor":     fullName,
		"error":          err.Error(),
		"consumed_bits":  d.ConsumedBits(),
		"remaining_bits": d.RemainingBits(),
	}
}
