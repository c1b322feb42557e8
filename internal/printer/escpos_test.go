package printer

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopWriteCloser struct{}

func (nopWriteCloser) Write(p []byte) (int, error) { return len(p), nil }
func (nopWriteCloser) Close() error                { return nil }

// captureConn records every write flushed to the device.
type captureConn struct {
	bytes.Buffer
}

func (c *captureConn) Close() error { return nil }

func TestESCPOS_NothingReachesDeviceBeforeCommit(t *testing.T) {
	ctx := context.Background()
	conn := &captureConn{}
	b := NewESCPOSBridge(conn, nil)

	require.NoError(t, b.EnterBuffer(ctx))
	require.NoError(t, b.SetAlignment(ctx, AlignCenter))
	require.NoError(t, b.PrintText(ctx, "hello\n"))
	require.NoError(t, b.Feed(ctx, 2))
	require.NoError(t, b.Cut(ctx, false))

	assert.Zero(t, conn.Len(), "buffered commands must not reach the device before commit")

	require.NoError(t, b.CommitBuffer(ctx))
	assert.NotZero(t, conn.Len())
}

func TestESCPOS_CommitFlushesExpectedBytes(t *testing.T) {
	ctx := context.Background()
	conn := &captureConn{}
	b := NewESCPOSBridge(conn, nil)

	require.NoError(t, b.EnterBuffer(ctx))
	require.NoError(t, b.SetAlignment(ctx, AlignCenter))
	require.NoError(t, b.SetTextSize(ctx, SizeDouble))
	require.NoError(t, b.SetStyle(ctx, Style{Bold: true}))
	require.NoError(t, b.PrintText(ctx, "hi\n"))
	require.NoError(t, b.Cut(ctx, true))
	require.NoError(t, b.CommitBuffer(ctx))

	expected := []byte{
		0x1B, '@', // init, buffered by EnterBuffer
		0x1B, 'a', 1, // center
		0x1D, '!', 0x11, // double width and height
		0x1B, 'E', 1, // bold on
		0x1B, '-', 0, // underline off
		'h', 'i', '\n',
		0x1D, 'V', 65, 0, // full cut
	}
	assert.Equal(t, expected, conn.Bytes())
}

func TestESCPOS_ExitDiscardsBuffer(t *testing.T) {
	ctx := context.Background()
	conn := &captureConn{}
	b := NewESCPOSBridge(conn, nil)

	require.NoError(t, b.EnterBuffer(ctx))
	require.NoError(t, b.PrintText(ctx, "never printed\n"))
	require.NoError(t, b.ExitBuffer(ctx))

	// A later commit flushes nothing from the aborted session.
	require.NoError(t, b.CommitBuffer(ctx))
	assert.Zero(t, conn.Len())
}

func TestESCPOS_EnterBufferResetsPreviousContent(t *testing.T) {
	ctx := context.Background()
	conn := &captureConn{}
	b := NewESCPOSBridge(conn, nil)

	require.NoError(t, b.EnterBuffer(ctx))
	require.NoError(t, b.PrintText(ctx, "stale\n"))

	require.NoError(t, b.EnterBuffer(ctx))
	require.NoError(t, b.PrintText(ctx, "fresh\n"))
	require.NoError(t, b.CommitBuffer(ctx))

	assert.NotContains(t, string(conn.Bytes()), "stale")
	assert.Contains(t, string(conn.Bytes()), "fresh")
}

func TestESCPOS_BarcodeCommand(t *testing.T) {
	ctx := context.Background()
	conn := &captureConn{}
	b := NewESCPOSBridge(conn, nil)

	require.NoError(t, b.EnterBuffer(ctx))
	require.NoError(t, b.PrintBarcode(ctx, "1001", SymbologyCode128))
	require.NoError(t, b.CommitBuffer(ctx))

	expected := append([]byte{0x1B, '@', 0x1D, 'k', 73, 4}, []byte("1001")...)
	assert.Equal(t, expected, conn.Bytes())
}

func TestESCPOS_ReadStatusMapsReplyBits(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name    string
		replies []byte
		want    DeviceStatus
	}{
		{"ready", []byte{0x00, 0x00}, DeviceReady},
		{"doorOpen", []byte{0x04}, DeviceDoorOpen},
		{"overheated", []byte{0x40}, DeviceOverheated},
		{"paperOut", []byte{0x00, 0x60}, DevicePaperOut},
		{"paperLow", []byte{0x00, 0x0C}, DevicePaperLow},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			conn := &captureConn{}
			b := NewESCPOSBridge(conn, bytes.NewReader(tc.replies))

			status, err := b.ReadStatus(ctx)
			require.NoError(t, err)
			assert.Equal(t, tc.want, status)
		})
	}
}

func TestESCPOS_ReadStatusWithoutReaderReportsReady(t *testing.T) {
	b := NewESCPOSBridge(&captureConn{}, nil)

	status, err := b.ReadStatus(context.Background())

	require.NoError(t, err)
	assert.Equal(t, DeviceReady, status)
}

func TestESCPOS_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	b := NewESCPOSBridge(&captureConn{}, nil)
	assert.Error(t, b.PrintText(ctx, "hello\n"))
	assert.Error(t, b.CommitBuffer(ctx))
}
