package printer

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"net"
	"os"
	"time"

	qrcode "github.com/skip2/go-qrcode"
)

// ESC/POS control bytes.
const (
	escByte byte = 0x1B
	gsByte  byte = 0x1D
	dleByte byte = 0x10
	eotByte byte = 0x04
	nlByte  byte = 0x0A
)

const qrImageSize = 192 // pixels, fits 58mm paper at 203 DPI

// ESCPOSBridge drives a thermal printer over a raw byte connection. Between
// EnterBuffer and CommitBuffer all commands accumulate in memory and are
// flushed in one write, so a job that fails mid-render never reaches paper.
type ESCPOSBridge struct {
	conn   io.WriteCloser
	reader io.Reader
	buf    bytes.Buffer
}

// DialNetwork opens an ESC/POS bridge to a network printer.
func DialNetwork(address string, port int) (*ESCPOSBridge, error) {
	conn, err := net.DialTimeout("tcp", fmt.Sprintf("%s:%d", address, port), 3*time.Second)
	if err != nil {
		return nil, fmt.Errorf("connecting to printer at %s:%d: %w", address, port, err)
	}
	return &ESCPOSBridge{conn: conn, reader: conn}, nil
}

// OpenDevice opens an ESC/POS bridge to a local USB or serial device file.
func OpenDevice(path string) (*ESCPOSBridge, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("opening printer device %s: %w", path, err)
	}
	return &ESCPOSBridge{conn: f, reader: f}, nil
}

// NewESCPOSBridge wraps an existing connection. reader may be nil for
// write-only targets; ReadStatus then reports ready.
func NewESCPOSBridge(conn io.WriteCloser, reader io.Reader) *ESCPOSBridge {
	return &ESCPOSBridge{conn: conn, reader: reader}
}

func (b *ESCPOSBridge) write(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b.buf.Write(data)
	return nil
}

func (b *ESCPOSBridge) SetAlignment(ctx context.Context, align Alignment) error {
	return b.write(ctx, []byte{escByte, 'a', byte(align)})
}

func (b *ESCPOSBridge) SetTextSize(ctx context.Context, size TextSize) error {
	n := byte(size) - 1
	return b.write(ctx, []byte{gsByte, '!', (n << 4) | n})
}

func (b *ESCPOSBridge) SetStyle(ctx context.Context, style Style) error {
	var bold, underline byte
	if style.Bold {
		bold = 1
	}
	if style.Underline {
		underline = 1
	}
	if err := b.write(ctx, []byte{escByte, 'E', bold}); err != nil {
		return err
	}
	return b.write(ctx, []byte{escByte, '-', underline})
}

func (b *ESCPOSBridge) PrintText(ctx context.Context, text string) error {
	return b.write(ctx, []byte(text))
}

func (b *ESCPOSBridge) Feed(ctx context.Context, lines int) error {
	for i := 0; i < lines; i++ {
		if err := b.write(ctx, []byte{nlByte}); err != nil {
			return err
		}
	}
	return nil
}

func (b *ESCPOSBridge) Cut(ctx context.Context, full bool) error {
	mode := byte(66) // partial cut
	if full {
		mode = 65
	}
	return b.write(ctx, []byte{gsByte, 'V', mode, 0})
}

func (b *ESCPOSBridge) PrintBarcode(ctx context.Context, data string, symbology int) error {
	// GS k, function B: symbology, length byte, then the data.
	cmd := []byte{gsByte, 'k', byte(symbology), byte(len(data))}
	cmd = append(cmd, []byte(data)...)
	return b.write(ctx, cmd)
}

// PrintQR renders the payload as a QR bitmap and emits it with the GS v 0
// raster command, which is more widely supported than native QR commands.
func (b *ESCPOSBridge) PrintQR(ctx context.Context, data string) error {
	code, err := qrcode.New(data, qrcode.Medium)
	if err != nil {
		return fmt.Errorf("generating QR code: %w", err)
	}
	return b.printRaster(ctx, code.Image(qrImageSize))
}

func (b *ESCPOSBridge) printRaster(ctx context.Context, img image.Image) error {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	widthBytes := (width + 7) / 8

	header := []byte{
		gsByte, 'v', '0', 0,
		byte(widthBytes % 256), byte(widthBytes / 256),
		byte(height % 256), byte(height / 256),
	}
	if err := b.write(ctx, header); err != nil {
		return err
	}

	row := make([]byte, widthBytes)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for i := range row {
			row[i] = 0
		}
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			gray := (299*(r>>8) + 587*(g>>8) + 114*(bl>>8)) / 1000
			if gray < 128 {
				col := x - bounds.Min.X
				row[col/8] |= 1 << uint(7-col%8)
			}
		}
		if err := b.write(ctx, row); err != nil {
			return err
		}
	}
	return b.write(ctx, []byte{nlByte})
}

// ReadStatus sends a real-time status request (DLE EOT) and maps the reply
// byte to a semantic state.
func (b *ESCPOSBridge) ReadStatus(ctx context.Context) (DeviceStatus, error) {
	if b.reader == nil {
		return DeviceReady, nil
	}
	if err := ctx.Err(); err != nil {
		return DeviceNotConnected, err
	}

	// Printer status (n=1) reports drawer/online bits; offline cause (n=2)
	// carries the door and feed bits; paper sensor is n=4.
	if _, err := b.conn.Write([]byte{dleByte, eotByte, 2}); err != nil {
		return DeviceNotConnected, fmt.Errorf("requesting printer status: %w", err)
	}
	reply := make([]byte, 1)
	if _, err := io.ReadFull(b.reader, reply); err != nil {
		return DeviceNotConnected, fmt.Errorf("reading printer status: %w", err)
	}
	if reply[0]&0x04 != 0 {
		return DeviceDoorOpen, nil
	}
	if reply[0]&0x40 != 0 {
		return DeviceOverheated, nil
	}

	if _, err := b.conn.Write([]byte{dleByte, eotByte, 4}); err != nil {
		return DeviceNotConnected, fmt.Errorf("requesting paper status: %w", err)
	}
	if _, err := io.ReadFull(b.reader, reply); err != nil {
		return DeviceNotConnected, fmt.Errorf("reading paper status: %w", err)
	}
	if reply[0]&0x60 != 0 {
		return DevicePaperOut, nil
	}
	if reply[0]&0x0C != 0 {
		return DevicePaperLow, nil
	}

	return DeviceReady, nil
}

// EnterBuffer starts a buffered transaction. The init sequence is buffered
// too, so an aborted job leaves no trace on the device.
func (b *ESCPOSBridge) EnterBuffer(ctx context.Context) error {
	b.buf.Reset()
	return b.write(ctx, []byte{escByte, '@'})
}

// CommitBuffer flushes the accumulated commands to the device in one write.
func (b *ESCPOSBridge) CommitBuffer(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if b.conn == nil {
		return fmt.Errorf("no printer connection")
	}
	_, err := b.conn.Write(b.buf.Bytes())
	b.buf.Reset()
	if err != nil {
		return fmt.Errorf("flushing print buffer: %w", err)
	}
	return nil
}

// ExitBuffer discards everything buffered since EnterBuffer.
func (b *ESCPOSBridge) ExitBuffer(ctx context.Context) error {
	b.buf.Reset()
	return nil
}

func (b *ESCPOSBridge) Close() error {
	if b.conn == nil {
		return nil
	}
	return b.conn.Close()
}
