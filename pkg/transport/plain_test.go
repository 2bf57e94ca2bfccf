package transport_test

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/igloo-home/esphome-go/pkg/transport"
	"github.com/igloo-home/esphome-go/pkg/transport/transporttest"
	"github.com/igloo-home/esphome-go/pkg/varint"
	"github.com/igloo-home/esphome-go/pkg/wire"
)

func TestPlainFrameRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		mt      wire.MessageType
		payload []byte
	}{
		{"empty body", wire.MsgPingRequest, nil},
		{"small body", wire.MsgHelloRequest, []byte("hello")},
		{"two byte length", wire.MsgSwitchStateResponse, bytes.Repeat([]byte{0xAB}, 300)},
		{"three byte length", wire.MsgCameraImageResponse, bytes.Repeat([]byte{0x01}, 5000)},
		{"large type id", wire.MsgUpdateCommandRequest, []byte{0x00, 0xFF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := transport.AppendPlainFrame(nil, tt.mt, tt.payload)
			assert.Equal(t, byte(transport.PlainPreamble), frame[0])

			mt, payload, err := transport.ReadPlainFrame(bufio.NewReader(bytes.NewReader(frame)), 0)
			require.NoError(t, err)
			assert.Equal(t, tt.mt, mt)
			assert.Equal(t, len(tt.payload), len(payload))
			assert.True(t, bytes.Equal(tt.payload, payload))
		})
	}
}

func TestPlainFrameFieldOrder(t *testing.T) {
	// Length precedes type in both directions.
	frame := transport.AppendPlainFrame(nil, wire.MsgSwitchCommandRequest, []byte{1, 2, 3})
	assert.Equal(t, []byte{0x00, 0x03, 33, 1, 2, 3}, frame)
}

func TestPlainFrameUnknownType(t *testing.T) {
	var frame []byte
	frame = append(frame, transport.PlainPreamble)
	frame = varint.Append(frame, 0)
	frame = varint.Append(frame, 9999)

	_, _, err := transport.ReadPlainFrame(bufio.NewReader(bytes.NewReader(frame)), 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, wire.ErrUnknownMessageType))
}

func TestPlainFrameWrongPreamble(t *testing.T) {
	frame := []byte{0x01, 0x00, 0x07}
	_, _, err := transport.ReadPlainFrame(bufio.NewReader(bytes.NewReader(frame)), 0)
	assert.ErrorIs(t, err, transport.ErrFramePreamble)
}

func TestPlainFrameTruncated(t *testing.T) {
	full := transport.AppendPlainFrame(nil, wire.MsgHelloRequest, []byte("hello"))

	for cut := 1; cut < len(full); cut++ {
		_, _, err := transport.ReadPlainFrame(bufio.NewReader(bytes.NewReader(full[:cut])), 0)
		assert.ErrorIs(t, err, transport.ErrFrameTruncated, "cut at %d", cut)
	}

	_, _, err := transport.ReadPlainFrame(bufio.NewReader(bytes.NewReader(nil)), 0)
	assert.ErrorIs(t, err, io.EOF)
}

func TestPlainFrameTooLarge(t *testing.T) {
	frame := transport.AppendPlainFrame(nil, wire.MsgHelloRequest, make([]byte, 100))
	_, _, err := transport.ReadPlainFrame(bufio.NewReader(bytes.NewReader(frame)), 50)
	assert.ErrorIs(t, err, transport.ErrMessageTooLarge)
}

func TestPlainTransportNotConnected(t *testing.T) {
	tr := transport.NewPlain("127.0.0.1:1", transport.Config{})

	assert.ErrorIs(t, tr.Send(wire.MsgPingRequest, nil), transport.ErrNotConnected)
	_, _, err := tr.Receive()
	assert.ErrorIs(t, err, transport.ErrNotConnected)
	assert.ErrorIs(t, tr.WaitReadable(context.Background()), transport.ErrNotConnected)
	assert.NoError(t, tr.Disconnect())
	assert.Equal(t, transport.StateDisconnected, tr.State())
}

func TestPlainTransportExchange(t *testing.T) {
	ln := transporttest.Listen(t)
	tr := transport.NewPlain(ln.Addr(), transport.Config{})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, tr.Connect(ctx))
	defer tr.Disconnect()
	dev := ln.AcceptPlain(t)

	assert.Equal(t, transport.StateConnected, tr.State())
	assert.NotEmpty(t, tr.ConnectionID())
	assert.Empty(t, tr.PeerName())

	// Connecting again is a no-op.
	id := tr.ConnectionID()
	require.NoError(t, tr.Connect(ctx))
	assert.Equal(t, id, tr.ConnectionID())

	require.NoError(t, tr.Send(wire.MsgHelloRequest, []byte{0x0A, 0x01, 'x'}))
	mt, payload, err := dev.Receive()
	require.NoError(t, err)
	assert.Equal(t, wire.MsgHelloRequest, mt)
	assert.Equal(t, []byte{0x0A, 0x01, 'x'}, payload)

	require.NoError(t, dev.Send(wire.MsgHelloResponse, []byte{0x08, 0x01}))
	require.NoError(t, tr.WaitReadable(ctx))
	mt, payload, err = tr.Receive()
	require.NoError(t, err)
	assert.Equal(t, wire.MsgHelloResponse, mt)
	assert.Equal(t, []byte{0x08, 0x01}, payload)
}

func TestPlainTransportUnknownTypeFromDevice(t *testing.T) {
	ln := transporttest.Listen(t)
	tr := transport.NewPlain(ln.Addr(), transport.Config{})
	require.NoError(t, tr.Connect(context.Background()))
	defer tr.Disconnect()
	raw := ln.Accept(t)

	frame := []byte{transport.PlainPreamble}
	frame = varint.Append(frame, 2)
	frame = varint.Append(frame, 500)
	frame = append(frame, 0xaa, 0xbb)
	frame = transport.AppendPlainFrame(frame, wire.MsgPingRequest, nil)
	_, err := raw.Write(frame)
	require.NoError(t, err)

	_, _, err = tr.Receive()
	var unknown *wire.UnknownMessageTypeError
	require.True(t, errors.As(err, &unknown), "got %v", err)
	assert.Equal(t, uint32(500), unknown.ID)

	// The unknown frame's payload was consumed.
	mt, payload, err := tr.Receive()
	require.NoError(t, err)
	assert.Equal(t, wire.MsgPingRequest, mt)
	assert.Empty(t, payload)
}

func TestWaitReadableHonoursContext(t *testing.T) {
	ln := transporttest.Listen(t)
	tr := transport.NewPlain(ln.Addr(), transport.Config{})
	require.NoError(t, tr.Connect(context.Background()))
	defer tr.Disconnect()
	dev := ln.AcceptPlain(t)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := tr.WaitReadable(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// The connection still works after a cancelled wait.
	require.NoError(t, dev.Send(wire.MsgPingRequest, nil))
	mt, _, err := tr.Receive()
	require.NoError(t, err)
	assert.Equal(t, wire.MsgPingRequest, mt)
}

func TestDisconnectUnblocksReceive(t *testing.T) {
	ln := transporttest.Listen(t)
	tr := transport.NewPlain(ln.Addr(), transport.Config{})
	require.NoError(t, tr.Connect(context.Background()))
	ln.Accept(t)

	errCh := make(chan error, 1)
	go func() {
		_, _, err := tr.Receive()
		errCh <- err
	}()

	time.Sleep(20 * time.Millisecond)
	require.NoError(t, tr.Disconnect())

	select {
	case err := <-errCh:
		assert.Error(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Receive did not return after Disconnect")
	}
	assert.Equal(t, transport.StateDisconnected, tr.State())
}

func TestNewSelectsVariant(t *testing.T) {
	tr, err := transport.New("host:6053", "", transport.Config{})
	require.NoError(t, err)
	assert.IsType(t, &transport.PlainTransport{}, tr)

	tr, err = transport.New("host:6053", testPSK, transport.Config{})
	require.NoError(t, err)
	assert.IsType(t, &transport.NoiseTransport{}, tr)

	_, err = transport.New("host:6053", "not base64!", transport.Config{})
	assert.ErrorIs(t, err, transport.ErrInvalidPSK)

	_, err = transport.New("host:6053", "c2hvcnQ=", transport.Config{})
	assert.ErrorIs(t, err, transport.ErrInvalidPSK)
}

func TestConnectionStateString(t *testing.T) {
	assert.Equal(t, "DISCONNECTED", transport.StateDisconnected.String())
	assert.Equal(t, "HANDSHAKING", transport.StateHandshaking.String())
	assert.Equal(t, "CONNECTED", transport.StateConnected.String())
	assert.Equal(t, "UNKNOWN", transport.ConnectionState(42).String())
}

func TestPlainTransportResyncAfterBadPreamble(t *testing.T) {
	ln := transporttest.Listen(t)
	tr := transport.NewPlain(ln.Addr(), transport.Config{})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, tr.Connect(ctx))
	defer tr.Disconnect()
	dev := ln.AcceptPlain(t)

	_, err := dev.Conn().Write([]byte{0x05, 0x00, 0x07})
	require.NoError(t, err)
	require.NoError(t, tr.WaitReadable(ctx))
	_, _, err = tr.Receive()
	assert.ErrorIs(t, err, transport.ErrFramePreamble)

	// The rest of the bad frame is dropped, not read as the next header.
	require.NoError(t, dev.Send(wire.MsgPingRequest, nil))
	require.NoError(t, tr.WaitReadable(ctx))
	mt, payload, err := tr.Receive()
	require.NoError(t, err)
	assert.Equal(t, wire.MsgPingRequest, mt)
	assert.Empty(t, payload)
}
