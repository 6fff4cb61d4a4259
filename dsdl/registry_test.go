package dsdl_test

import (
	"testing"

	"github.com/flyiscool/uavdsdl/dsdl"
	"github.com/flyiscool/uavdsdl/model"
	"github.com/stretchr/testify/require"
)

func TestClassOfFindsRegisteredConstructor(t *testing.T) {
	ctor, ok := dsdl.ClassOf(heartbeatModel)
	require.True(t, ok)

	msg := ctor()
	require.IsType(t, &heartbeat{}, msg)
	require.Equal(t, heartbeatModel, msg.Model())
}

func TestClassOfUnknownDescriptor(t *testing.T) {
	unknown := &model.Descriptor{
		FullName:     heartbeatModel.FullName,
		MajorVersion: 99,
		MinorVersion: heartbeatModel.MinorVersion,
	}
	_, ok := dsdl.ClassOf(unknown)
	require.False(t, ok)
}
