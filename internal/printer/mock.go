package printer

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// MockBridge is the software fallback path. It honors the same call sequence
// and buffered-session protocol as the hardware bridge, logging one line per
// instruction and exporting the flat-text rendering of the last committed
// receipt. The exported text matches what the hardware path would have
// printed, modulo physical control codes.
type MockBridge struct {
	logger *zap.Logger

	mu          sync.Mutex
	buf         strings.Builder
	lastReceipt string
}

func NewMockBridge(logger *zap.Logger) *MockBridge {
	return &MockBridge{logger: logger}
}

func (m *MockBridge) SetAlignment(ctx context.Context, align Alignment) error {
	m.logger.Debug("mock printer: set alignment", zap.Int("alignment", int(align)))
	return ctx.Err()
}

func (m *MockBridge) SetTextSize(ctx context.Context, size TextSize) error {
	m.logger.Debug("mock printer: set text size", zap.Int("size", int(size)))
	return ctx.Err()
}

func (m *MockBridge) SetStyle(ctx context.Context, style Style) error {
	m.logger.Debug("mock printer: set style", zap.Bool("bold", style.Bold), zap.Bool("underline", style.Underline))
	return ctx.Err()
}

func (m *MockBridge) PrintText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.logger.Debug("mock printer: print text", zap.String("text", strings.TrimSuffix(text, "\n")))
	m.mu.Lock()
	m.buf.WriteString(text)
	m.mu.Unlock()
	return nil
}

func (m *MockBridge) Feed(ctx context.Context, lines int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.logger.Debug("mock printer: feed", zap.Int("lines", lines))
	m.mu.Lock()
	m.buf.WriteString(strings.Repeat("\n", lines))
	m.mu.Unlock()
	return nil
}

func (m *MockBridge) Cut(ctx context.Context, full bool) error {
	m.logger.Debug("mock printer: cut", zap.Bool("full", full))
	return ctx.Err()
}

func (m *MockBridge) PrintBarcode(ctx context.Context, data string, symbology int) error {
	m.logger.Debug("mock printer: print barcode", zap.String("data", data), zap.Int("symbology", symbology))
	return ctx.Err()
}

func (m *MockBridge) PrintQR(ctx context.Context, data string) error {
	m.logger.Debug("mock printer: print QR", zap.String("data", data))
	return ctx.Err()
}

// ReadStatus always reports ready: the mock path has no paper to run out of.
func (m *MockBridge) ReadStatus(ctx context.Context) (DeviceStatus, error) {
	return DeviceReady, ctx.Err()
}

func (m *MockBridge) EnterBuffer(ctx context.Context) error {
	m.logger.Debug("mock printer: enter buffer")
	m.mu.Lock()
	m.buf.Reset()
	m.mu.Unlock()
	return ctx.Err()
}

func (m *MockBridge) CommitBuffer(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	m.lastReceipt = m.buf.String()
	m.buf.Reset()
	m.mu.Unlock()
	m.logger.Info("mock printer: receipt committed", zap.Int("bytes", len(m.lastReceipt)))
	return nil
}

func (m *MockBridge) ExitBuffer(ctx context.Context) error {
	m.logger.Debug("mock printer: exit buffer, output discarded")
	m.mu.Lock()
	m.buf.Reset()
	m.mu.Unlock()
	return nil
}

// Export returns the flat-text rendering of the last committed receipt.
func (m *MockBridge) Export() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastReceipt
}
