package dsdl_test

import (
	"github.com/flyiscool/uavdsdl/bitstream"
	"github.com/flyiscool/uavdsdl/dsdl"
	"github.com/flyiscool/uavdsdl/model"
)

// heartbeat is a hand-written stand-in for a generated adapter: four
// fixed-width fields, no arrays, matching the shape of uavcan.node.Heartbeat.
type heartbeat struct {
	Uptime uint32
	Health uint8
	Mode   uint8
	Vendor uint8
}

var heartbeatModel = &model.Descriptor{
	FullName:           "test.node.Heartbeat",
	ShortName:          "Heartbeat",
	MajorVersion:       1,
	MinorVersion:       0,
	FixedPortID:        func() *uint16 { id := uint16(7509); return &id }(),
	MaxSerializedBytes: 7,
	MinSerializedBits:  7 * 8,
}

func (h *heartbeat) Encode(s *bitstream.Serializer) error {
	if err := s.WriteUint32(h.Uptime); err != nil {
		return err
	}
	if err := s.WriteUint8(h.Health); err != nil {
		return err
	}
	if err := s.WriteUint8(h.Mode); err != nil {
		return err
	}
	return s.WriteUint8(h.Vendor)
}

func (h *heartbeat) DecodeMessage(d *bitstream.Deserializer) error {
	var err error
	if h.Uptime, err = d.ReadUint32(); err != nil {
		return err
	}
	if h.Health, err = d.ReadUint8(); err != nil {
		return err
	}
	if h.Mode, err = d.ReadUint8(); err != nil {
		return err
	}
	h.Vendor, err = d.ReadUint8()
	return err
}

func (h *heartbeat) MaxSizeBytes() uint32     { return heartbeatModel.MaxSerializedBytes }
func (h *heartbeat) Model() *model.Descriptor { return heartbeatModel }

func (h *heartbeat) FixedPortID() (uint16, bool) { return 7509, true }

func init() {
	dsdl.Register(heartbeatModel.FullName, heartbeatModel.MajorVersion, heartbeatModel.MinorVersion,
		func() dsdl.Message { return &heartbeat{} })
}

// heartbeatService is a hand-written stand-in for a generated service
// adapter: deliberately does not implement Message.
type heartbeatService struct{}

func (heartbeatService) Request() dsdl.Message  { return &heartbeat{} }
func (heartbeatService) Response() dsdl.Message { return &heartbeat{} }
func (heartbeatService) Model() *model.Descriptor {
	return &model.Descriptor{FullName: "test.node.ExecuteCommand", MajorVersion: 1, MinorVersion: 0}
}
