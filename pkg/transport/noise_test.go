package transport_test

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"io"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/igloo-home/esphome-go/pkg/log"
	"github.com/igloo-home/esphome-go/pkg/transport"
	"github.com/igloo-home/esphome-go/pkg/transport/transporttest"
	"github.com/igloo-home/esphome-go/pkg/wire"
)

const testPSK = "AAECAwQFBgcICQoLDA0ODxAREhMUFRYXGBkaGxwdHh8="

func mustPSK(t *testing.T) []byte {
	t.Helper()
	key, err := transport.DecodePSK(testPSK)
	require.NoError(t, err)
	return key
}

// connectNoise connects a NoiseTransport to an in-process responder.
func connectNoise(t *testing.T, cfg transport.Config) (*transport.NoiseTransport, transporttest.Device) {
	t.Helper()
	ln := transporttest.Listen(t)
	tr := transport.NewNoise(ln.Addr(), mustPSK(t), cfg)

	errCh := make(chan error, 1)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		errCh <- tr.Connect(ctx)
	}()
	dev := ln.AcceptNoise(t, mustPSK(t), "living-room")
	require.NoError(t, <-errCh)
	t.Cleanup(func() { tr.Disconnect() })
	return tr, dev
}

func TestNoiseHandshakeAndExchange(t *testing.T) {
	tr, dev := connectNoise(t, transport.Config{})

	assert.Equal(t, transport.StateConnected, tr.State())
	assert.Equal(t, "living-room", tr.PeerName())

	require.NoError(t, tr.Send(wire.MsgHelloRequest, []byte("client")))
	mt, payload, err := dev.Receive()
	require.NoError(t, err)
	assert.Equal(t, wire.MsgHelloRequest, mt)
	assert.Equal(t, []byte("client"), payload)

	require.NoError(t, dev.Send(wire.MsgSwitchStateResponse, []byte{0x0D, 7, 0, 0, 0, 0x10, 1}))
	mt, payload, err = tr.Receive()
	require.NoError(t, err)
	assert.Equal(t, wire.MsgSwitchStateResponse, mt)
	assert.Equal(t, []byte{0x0D, 7, 0, 0, 0, 0x10, 1}, payload)
}

func TestNoiseConnectTwiceIsNoop(t *testing.T) {
	tr, _ := connectNoise(t, transport.Config{})
	id := tr.ConnectionID()

	require.NoError(t, tr.Connect(context.Background()))
	assert.Equal(t, id, tr.ConnectionID())
	assert.Equal(t, transport.StateConnected, tr.State())
}

// recordingConn captures everything written through it.
type recordingConn struct {
	net.Conn
	mu  sync.Mutex
	buf bytes.Buffer
}

func (c *recordingConn) Write(p []byte) (int, error) {
	c.mu.Lock()
	c.buf.Write(p)
	c.mu.Unlock()
	return c.Conn.Write(p)
}

func (c *recordingConn) Bytes() []byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]byte(nil), c.buf.Bytes()...)
}

func TestNoiseCiphertextHidesPlaintext(t *testing.T) {
	var rec *recordingConn
	cfg := transport.Config{
		Dial: func(ctx context.Context, network, address string) (net.Conn, error) {
			var d net.Dialer
			c, err := d.DialContext(ctx, network, address)
			if err != nil {
				return nil, err
			}
			rec = &recordingConn{Conn: c}
			return rec, nil
		},
	}
	tr, dev := connectNoise(t, cfg)

	payload := []byte("a very recognisable plaintext payload")
	require.NoError(t, tr.Send(wire.MsgSelectCommandRequest, payload))
	_, got, err := dev.Receive()
	require.NoError(t, err)
	require.Equal(t, payload, got)

	header := make([]byte, 4)
	binary.BigEndian.PutUint16(header[0:2], uint16(wire.MsgSelectCommandRequest))
	binary.BigEndian.PutUint16(header[2:4], uint16(len(payload)))

	onWire := rec.Bytes()
	assert.False(t, bytes.Contains(onWire, payload), "payload visible on the wire")
	assert.False(t, bytes.Contains(onWire, append(header, payload...)), "inner frame visible on the wire")
	assert.False(t, bytes.Contains(onWire, payload[:8]), "payload prefix visible on the wire")
}

// serveRaw accepts one connection, drains the client hello and handshake
// frames, then writes frames.
func serveRaw(t *testing.T, frames ...[]byte) string {
	t.Helper()
	ln := transporttest.Listen(t)
	go func() {
		c := ln.Accept(t)
		for i := 0; i < 2; i++ {
			if _, err := transport.ReadNoiseFrame(c); err != nil {
				return
			}
		}
		for _, f := range frames {
			if _, err := c.Write(transport.AppendNoiseFrame(nil, f)); err != nil {
				return
			}
		}
		// Hold the socket open until the client gives up.
		_, _ = io.Copy(io.Discard, c)
	}()
	return ln.Addr()
}

func TestNoiseServerHelloRejections(t *testing.T) {
	tests := []struct {
		name   string
		frames [][]byte
		want   error
	}{
		{"wrong protocol", [][]byte{{0x02, 'x', 0x00}}, transport.ErrUnknownProtocol},
		{"empty server hello", [][]byte{{}}, transport.ErrUnknownProtocol},
		{"missing null", [][]byte{{0x01, 'n', 'a', 'm', 'e'}}, transport.ErrMissingNullTerminator},
		{"rejected handshake", [][]byte{{0x01, 'x', 0x00}, {0x01}}, transport.ErrHandshakePreamble},
		{"bad handshake message", [][]byte{{0x01, 'x', 0x00}, {0x00, 1, 2, 3}}, transport.ErrHandshake},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := serveRaw(t, tt.frames...)
			tr := transport.NewNoise(addr, mustPSK(t), transport.Config{})

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			err := tr.Connect(ctx)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)

			assert.Equal(t, transport.StateDisconnected, tr.State())
			assert.Empty(t, tr.PeerName())
			assert.ErrorIs(t, tr.Send(wire.MsgPingRequest, nil), transport.ErrNotConnected)
		})
	}
}

func TestNoiseRejectionCarriesReason(t *testing.T) {
	addr := serveRaw(t, []byte{0x01, 'd', 0x00}, append([]byte{0x01}, "Handshake MAC failure"...))
	tr := transport.NewNoise(addr, mustPSK(t), transport.Config{})

	err := tr.Connect(context.Background())
	require.ErrorIs(t, err, transport.ErrHandshakePreamble)
	assert.Contains(t, err.Error(), "Handshake MAC failure")
}

func TestNoiseWrongPSK(t *testing.T) {
	ln := transporttest.Listen(t)
	wrong := bytes.Repeat([]byte{0x42}, 32)
	tr := transport.NewNoise(ln.Addr(), wrong, transport.Config{})

	errCh := make(chan error, 1)
	go func() { errCh <- tr.Connect(context.Background()) }()

	c := ln.Accept(t)
	_, err := transporttest.NewNoiseDevice(c, mustPSK(t), "dev")
	require.Error(t, err)

	err = <-errCh
	assert.ErrorIs(t, err, transport.ErrHandshakePreamble)
	assert.Equal(t, transport.StateDisconnected, tr.State())
}

func TestNoiseHandshakeTimeout(t *testing.T) {
	ln := transporttest.Listen(t)
	go func() {
		c := ln.Accept(t)
		_, _ = io.Copy(io.Discard, c)
	}()

	tr := transport.NewNoise(ln.Addr(), mustPSK(t), transport.Config{HandshakeTimeout: 50 * time.Millisecond})
	start := time.Now()
	err := tr.Connect(context.Background())
	require.Error(t, err)
	var ne net.Error
	assert.True(t, errors.As(err, &ne) && ne.Timeout(), "got %v", err)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestNoiseConnectCancelled(t *testing.T) {
	ln := transporttest.Listen(t)
	go func() {
		c := ln.Accept(t)
		_, _ = io.Copy(io.Discard, c)
	}()

	tr := transport.NewNoise(ln.Addr(), mustPSK(t), transport.Config{})
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := tr.Connect(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNoiseDisconnectDiscardsState(t *testing.T) {
	tr, _ := connectNoise(t, transport.Config{})

	require.NoError(t, tr.Disconnect())
	assert.Equal(t, transport.StateDisconnected, tr.State())
	assert.Empty(t, tr.PeerName())
	assert.ErrorIs(t, tr.Send(wire.MsgPingRequest, nil), transport.ErrNotConnected)
	_, _, err := tr.Receive()
	assert.ErrorIs(t, err, transport.ErrNotConnected)

	// Disconnecting twice is harmless.
	assert.NoError(t, tr.Disconnect())
}

func TestNoiseUnknownMessageType(t *testing.T) {
	tr, dev := connectNoise(t, transport.Config{})

	require.NoError(t, dev.Send(wire.MessageType(4000), nil))
	_, _, err := tr.Receive()
	assert.ErrorIs(t, err, wire.ErrUnknownMessageType)
}

func TestNoiseTamperedFrame(t *testing.T) {
	ln := transporttest.Listen(t)
	tr := transport.NewNoise(ln.Addr(), mustPSK(t), transport.Config{})
	errCh := make(chan error, 1)
	go func() { errCh <- tr.Connect(context.Background()) }()
	c := ln.Accept(t)
	_, err := transporttest.NewNoiseDevice(c, mustPSK(t), "dev")
	require.NoError(t, err)
	require.NoError(t, <-errCh)
	defer tr.Disconnect()

	_, err = c.Write(transport.AppendNoiseFrame(nil, bytes.Repeat([]byte{0x55}, 40)))
	require.NoError(t, err)

	_, _, err = tr.Receive()
	assert.ErrorIs(t, err, transport.ErrDecrypt)
}

func TestNoiseWrongFramePreamble(t *testing.T) {
	_, err := transport.ReadNoiseFrame(bytes.NewReader([]byte{0x00, 0x00, 0x01, 0xFF}))
	assert.ErrorIs(t, err, transport.ErrFramePreamble)

	_, err = transport.ReadNoiseFrame(bytes.NewReader([]byte{0x01, 0x00, 0x05, 0xFF}))
	assert.ErrorIs(t, err, transport.ErrFrameTruncated)
}

func TestNoiseMessageTooLarge(t *testing.T) {
	tr, _ := connectNoise(t, transport.Config{})
	err := tr.Send(wire.MsgCameraImageResponse, make([]byte, transport.MaxNoisePayload+1))
	assert.ErrorIs(t, err, transport.ErrMessageTooLarge)
}

func TestParseServerHello(t *testing.T) {
	name, err := transport.ParseServerHello([]byte{0x01, 'p', 'l', 'u', 'g', 0x00, 'A', 'A', 0x00})
	require.NoError(t, err)
	assert.Equal(t, "plug", name)

	name, err = transport.ParseServerHello([]byte{0x01, 0xFF, 0x00})
	require.NoError(t, err)
	assert.Equal(t, "�", name)
}

func TestDecodeNoiseMessage(t *testing.T) {
	mt, body, err := transport.DecodeNoiseMessage(transport.EncodeNoiseMessage(wire.MsgPingResponse, []byte{9}))
	require.NoError(t, err)
	assert.Equal(t, wire.MsgPingResponse, mt)
	assert.Equal(t, []byte{9}, body)

	_, _, err = transport.DecodeNoiseMessage([]byte{0x00, 0x07, 0x00})
	assert.ErrorIs(t, err, transport.ErrFrameTruncated)

	_, _, err = transport.DecodeNoiseMessage([]byte{0x00, 0x07, 0x00, 0x05, 1})
	assert.ErrorIs(t, err, transport.ErrFrameTruncated)
}

// captureLogger records protocol events.
type captureLogger struct {
	mu     sync.Mutex
	events []log.Event
}

func (c *captureLogger) Log(e log.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, e)
}

func (c *captureLogger) steps() []log.HandshakeStep {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []log.HandshakeStep
	for _, e := range c.events {
		if e.Handshake != nil {
			out = append(out, e.Handshake.Step)
		}
	}
	return out
}

func TestNoiseCaptureEvents(t *testing.T) {
	capture := &captureLogger{}
	tr, dev := connectNoise(t, transport.Config{ProtocolLogger: capture})

	require.NoError(t, dev.Send(wire.MsgPingRequest, nil))
	_, _, err := tr.Receive()
	require.NoError(t, err)

	assert.Equal(t, []log.HandshakeStep{
		log.HandshakeClientHello, log.HandshakeServerHello, log.HandshakeComplete,
	}, capture.steps())

	capture.mu.Lock()
	defer capture.mu.Unlock()
	var frames int
	for _, e := range capture.events {
		assert.Equal(t, tr.ConnectionID(), e.ConnectionID)
		if e.Frame != nil {
			frames++
			assert.True(t, e.Frame.Encrypted)
		}
	}
	// client hello, server hello, handshake, ping
	assert.Equal(t, 4, frames)
}
