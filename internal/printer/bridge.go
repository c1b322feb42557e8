package printer

import "context"

// Symbology codes for PrintBarcode, matching the ESC/POS function-B table.
const SymbologyCode128 = 73

// Bridge is the primitive operation surface of one print device. The
// hardware implementation speaks ESC/POS to a physical printer; the mock
// implementation routes the same calls to a diagnostic sink. Both honor the
// buffered-session protocol: between EnterBuffer and CommitBuffer nothing is
// physically emitted, and ExitBuffer discards everything buffered so far.
type Bridge interface {
	SetAlignment(ctx context.Context, align Alignment) error
	SetTextSize(ctx context.Context, size TextSize) error
	SetStyle(ctx context.Context, style Style) error
	PrintText(ctx context.Context, text string) error
	Feed(ctx context.Context, lines int) error
	Cut(ctx context.Context, full bool) error
	PrintBarcode(ctx context.Context, data string, symbology int) error
	PrintQR(ctx context.Context, data string) error
	ReadStatus(ctx context.Context) (DeviceStatus, error)

	EnterBuffer(ctx context.Context) error
	CommitBuffer(ctx context.Context) error
	ExitBuffer(ctx context.Context) error
}
