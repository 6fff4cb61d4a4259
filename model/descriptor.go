// Package model holds the plain value types that describe a DSDL composite
// type as produced by a schema provider (a DSDL compiler front-end). This
// package contains no parsing logic: descriptors are assumed to already
// exist, typically built by generated adapter code at init() time.
package model

// Descriptor identifies a single DSDL type version and carries the static
// facts the codec needs before it can serialize or deserialize a value of
// that type.
type Descriptor struct {
	// FullName is the dotted namespace-qualified type name, e.g.
	// "uavcan.node.Heartbeat".
	FullName string

	// ShortName is the last component of FullName, e.g. "Heartbeat".
	ShortName string

	MajorVersion uint8
	MinorVersion uint8

	// FixedPortID is nil for types with no fixed port assignment.
	FixedPortID *uint16

	// ParentService is non-nil when this descriptor describes the
	// request or response half of a service type; it then points at the
	// descriptor for the service itself.
	ParentService *Descriptor

	// MaxSerializedBytes is the schema's declared maximum serialized
	// representation size, used to presize a Serializer's buffer.
	MaxSerializedBytes uint32

	// MinSerializedBits is the schema's declared minimum serialized
	// representation size, used by Deserialize's mandatory length
	// pre-check before any field is read.
	MinSerializedBits uint32
}

// Name renders the descriptor's identity as "full_name.major.minor", the
// key format used by the registry.
func (d *Descriptor) Name() string {
	return d.FullName + "." + versionString(d.MajorVersion) + "." + versionString(d.MinorVersion)
}

func versionString(v uint8) string {
	const digits = "0123456789"
	if v < 10 {
		return string(digits[v])
	}
	buf := [3]byte{}
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = digits[v%10]
		v /= 10
	}
	return string(buf[i:])
}
