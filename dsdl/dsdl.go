// Package dsdl implements the Composite Object Contract: the interfaces and
// registry that let a generated DSDL type participate in serialization
// without the codec ever needing to parse a schema at runtime.
package dsdl

import (
	"errors"

	"github.com/flyiscool/uavdsdl/bitstream"
	"github.com/flyiscool/uavdsdl/model"
	"github.com/sirupsen/logrus"
)

// ErrFormat is the sentinel wrapped into every detailed deserialize-time
// format error. Detail is attached with fmt.Errorf("%w: ...", ErrFormat);
// callers discriminate with errors.Is(err, ErrFormat).
var ErrFormat = errors.New("dsdl: malformed serialized representation")

// ErrNotSerializable is returned by SerializeAny when it is given a Service
// value: a service's request and response types are independently
// serializable, but the service itself never appears on the wire. The
// decode entry points (Deserialize, DecodeDynamic) accept only a Message,
// so a Service cannot be passed to them at all.
var ErrNotSerializable = errors.New("dsdl: service type is not serializable as a unit")

// ErrAttributeMissing is returned by GetAttribute/SetAttribute when neither
// the field's own name nor its trailing-underscore alias resolves.
var ErrAttributeMissing = errors.New("dsdl: attribute not found")

// Message is implemented by every generated message (and service
// request/response) type.
type Message interface {
	// Encode appends this value's serialized representation to s at the
	// current cursor. s must already be sized to at least MaxSizeBytes().
	Encode(s *bitstream.Serializer) error

	// DecodeMessage populates this value by consuming fields from d at
	// the current cursor.
	DecodeMessage(d *bitstream.Deserializer) error

	// MaxSizeBytes returns the schema's declared maximum serialized
	// representation size in bytes.
	MaxSizeBytes() uint32

	// Model returns the static descriptor for this type.
	Model() *model.Descriptor
}

// FixedPort is implemented by Message types that have a fixed port ID
// assigned by the schema.
type FixedPort interface {
	Message
	FixedPortID() (uint16, bool)
}

// Service represents a DSDL service type. It deliberately does not embed
// Message: a Service is a pairing of two independently serializable
// Message types, never serializable itself.
type Service interface {
	Request() Message
	Response() Message
	Model() *model.Descriptor
}

// log is the package-level structured logger used for the single INFO
// line Deserialize emits on a FormatError. Callers may replace it with
// SetLogger to route it into their own logging pipeline.
var log = logrus.StandardLogger()

// SetLogger replaces the logger Deserialize uses to report FormatError.
func SetLogger(l *logrus.Logger) {
	if l == nil {
		return
	}
	log = l
}
