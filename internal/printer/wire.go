package printer

import (
	"go.uber.org/zap"

	"tillroll/internal/config"
)

// Module bundles the print subsystem's entry points.
type Module struct {
	Coordinator *Coordinator
	Translator  *StatusTranslator
	Detector    *Detector
	Mock        *MockBridge
}

// NewModule wires the detector, renderer and coordinator from config. Mode
// "mock" disables hardware probing; "auto" probes the configured network
// address or device path and silently falls back to mock.
func NewModule(cfg config.PrinterConfig, logger *zap.Logger) *Module {
	mock := NewMockBridge(logger)

	var probe BridgeProbe
	if cfg.Mode != "mock" {
		switch {
		case cfg.Address != "":
			probe = func() (Bridge, error) { return DialNetwork(cfg.Address, cfg.Port) }
		case cfg.DevicePath != "":
			probe = func() (Bridge, error) { return OpenDevice(cfg.DevicePath) }
		}
	}

	detector := NewDetector(probe, mock, logger)
	renderer := NewRenderer(cfg.RestaurantName, cfg.RestaurantAddress)

	return &Module{
		Coordinator: NewCoordinator(detector, renderer, logger),
		Translator:  NewStatusTranslator(detector, logger),
		Detector:    detector,
		Mock:        mock,
	}
}
