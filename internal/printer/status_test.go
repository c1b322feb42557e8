package printer

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDescribe(t *testing.T) {
	cases := map[DeviceStatus]string{
		DeviceReady:        "Printer is ready",
		DeviceDoorOpen:     "Printer door is open",
		DeviceOverheated:   "Printer head is overheated",
		DevicePaperOut:     "Paper is out",
		DevicePaperLow:     "Paper is running low",
		DeviceNotConnected: "Printer not connected",
		DeviceStatus(99):   "Unknown printer status",
	}

	for status, want := range cases {
		assert.Equal(t, want, Describe(status))
	}
}

func TestDeviceStatus_Codes(t *testing.T) {
	// The numeric values are the device SDK's codes and must stay stable.
	assert.Equal(t, 0, int(DeviceReady))
	assert.Equal(t, 3, int(DeviceDoorOpen))
	assert.Equal(t, 4, int(DeviceOverheated))
	assert.Equal(t, 7, int(DevicePaperOut))
	assert.Equal(t, 8, int(DevicePaperLow))
	assert.Equal(t, -1, int(DeviceNotConnected))
}

func TestStatusTranslator_ReadsFromDetectedBridge(t *testing.T) {
	mock := NewMockBridge(zap.NewNop())
	detector := NewDetector(nil, mock, zap.NewNop())
	translator := NewStatusTranslator(detector, zap.NewNop())

	status, err := translator.Read(context.Background())

	require.NoError(t, err)
	assert.Equal(t, DeviceReady, status)
}

func TestStatusTranslator_PollsPerCall(t *testing.T) {
	// Two reads see two different device states: nothing is cached.
	replies := bytes.NewReader([]byte{
		0x00, 0x60, // first read: paper out
		0x00, 0x00, // second read: ready
	})
	bridge := NewESCPOSBridge(&captureConn{}, replies)
	detector := NewDetector(func() (Bridge, error) { return bridge, nil }, NewMockBridge(zap.NewNop()), zap.NewNop())
	translator := NewStatusTranslator(detector, zap.NewNop())

	first, err := translator.Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DevicePaperOut, first)

	second, err := translator.Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DeviceReady, second)
}
