package printer

import (
	"sync"

	"go.uber.org/zap"
)

// Mode is the execution path selected by the detector.
type Mode int

const (
	ModeHardware Mode = iota
	ModeMock
)

func (m Mode) String() string {
	if m == ModeHardware {
		return "hardware"
	}
	return "mock"
}

// Capability is the two-variant result of detection: a hardware bridge when
// one is present, the mock bridge otherwise. Downstream components branch on
// Mode, never on environment checks, so the two paths stay behaviorally
// symmetric.
type Capability struct {
	Mode   Mode
	Bridge Bridge
}

// BridgeProbe attempts to open a connection to physical print hardware.
type BridgeProbe func() (Bridge, error)

// Detector selects the execution path once and caches it. Absence of
// hardware is not an error condition: the subsystem must run identically in
// a development context and on the physical device, so a failed probe
// silently selects mock. Invalidate forces a re-probe after a hardware call
// fails unexpectedly (the device may have been unplugged mid-session).
type Detector struct {
	mu     sync.Mutex
	probe  BridgeProbe
	mock   Bridge
	logger *zap.Logger

	detected *Capability
}

func NewDetector(probe BridgeProbe, mock Bridge, logger *zap.Logger) *Detector {
	return &Detector{probe: probe, mock: mock, logger: logger}
}

// Detect returns the cached capability, probing for hardware on first use or
// after Invalidate.
func (d *Detector) Detect() Capability {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.detected != nil {
		return *d.detected
	}

	if d.probe != nil {
		bridge, err := d.probe()
		if err == nil {
			d.logger.Info("print hardware detected", zap.String("mode", ModeHardware.String()))
			d.detected = &Capability{Mode: ModeHardware, Bridge: bridge}
			return *d.detected
		}
		d.logger.Info("no print hardware, running in mock mode", zap.Error(err))
	} else {
		d.logger.Info("no hardware probe configured, running in mock mode")
	}

	d.detected = &Capability{Mode: ModeMock, Bridge: d.mock}
	return *d.detected
}

// Invalidate drops the cached capability so the next Detect re-probes.
func (d *Detector) Invalidate() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.detected = nil
}
