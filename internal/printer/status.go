package printer

import (
	"context"

	"go.uber.org/zap"
)

// DeviceStatus is a snapshot read from the printer. The numeric values match
// the codes the device SDK reports, so a raw code can be stored or logged
// as-is.
type DeviceStatus int

const (
	DeviceReady        DeviceStatus = 0
	DeviceDoorOpen     DeviceStatus = 3
	DeviceOverheated   DeviceStatus = 4
	DevicePaperOut     DeviceStatus = 7
	DevicePaperLow     DeviceStatus = 8
	DeviceNotConnected DeviceStatus = -1
)

func (s DeviceStatus) String() string {
	switch s {
	case DeviceReady:
		return "ready"
	case DeviceDoorOpen:
		return "doorOpen"
	case DeviceOverheated:
		return "overheated"
	case DevicePaperOut:
		return "paperOut"
	case DevicePaperLow:
		return "paperLow"
	case DeviceNotConnected:
		return "notConnected"
	default:
		return "unknown"
	}
}

// Describe maps a device status to a human-readable message. Pure mapping,
// no side effects.
func Describe(s DeviceStatus) string {
	switch s {
	case DeviceReady:
		return "Printer is ready"
	case DeviceDoorOpen:
		return "Printer door is open"
	case DeviceOverheated:
		return "Printer head is overheated"
	case DevicePaperOut:
		return "Paper is out"
	case DevicePaperLow:
		return "Paper is running low"
	case DeviceNotConnected:
		return "Printer not connected"
	default:
		return "Unknown printer status"
	}
}

// StatusTranslator reads the device status on demand for health and
// diagnostic display. It is never consulted automatically before printing; a
// transient paper-out surfaces as a print failure instead, which avoids a
// race between check and use.
type StatusTranslator struct {
	detector *Detector
	logger   *zap.Logger
}

func NewStatusTranslator(detector *Detector, logger *zap.Logger) *StatusTranslator {
	return &StatusTranslator{detector: detector, logger: logger}
}

// Read polls the device. The snapshot is never cached across jobs; hardware
// state can change between prints.
func (t *StatusTranslator) Read(ctx context.Context) (DeviceStatus, error) {
	capability := t.detector.Detect()

	status, err := capability.Bridge.ReadStatus(ctx)
	if err != nil {
		t.logger.Warn("status read failed", zap.Error(err))
		return DeviceNotConnected, err
	}

	return status, nil
}
