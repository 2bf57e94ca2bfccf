// Package transporttest provides the device side of both transport
// variants for tests.
package transporttest

import (
	"bufio"
	"crypto/rand"
	"fmt"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/flynn/noise"

	"github.com/igloo-home/esphome-go/pkg/transport"
	"github.com/igloo-home/esphome-go/pkg/wire"
)

// Device is one accepted connection seen from the device.
type Device interface {
	// Send writes one message with a raw body.
	Send(mt wire.MessageType, payload []byte) error

	// Receive reads one message.
	Receive() (wire.MessageType, []byte, error)

	// Conn returns the underlying socket.
	Conn() net.Conn

	// Close closes the socket.
	Close() error
}

// SendMessage encodes and sends m.
func SendMessage(d Device, m wire.Message) error {
	return d.Send(m.MessageType(), wire.Marshal(m))
}

// Expect reads one message, fails the test unless it has type mt, and
// decodes it into into when into is non-nil.
func Expect(t testing.TB, d Device, mt wire.MessageType, into wire.Message) {
	t.Helper()
	if err := d.Conn().SetReadDeadline(time.Now().Add(5 * time.Second)); err != nil {
		t.Fatalf("set deadline: %v", err)
	}
	got, payload, err := d.Receive()
	if err != nil {
		t.Fatalf("device receive (want %s): %v", mt, err)
	}
	if got != mt {
		t.Fatalf("device received %s, want %s", got, mt)
	}
	if into != nil {
		if err := wire.Unmarshal(payload, into); err != nil {
			t.Fatalf("decode %s: %v", mt, err)
		}
	}
}

// Listener accepts bridge connections on a loopback port.
type Listener struct {
	ln net.Listener
}

// Listen opens a loopback listener that is closed when the test ends.
func Listen(t testing.TB) *Listener {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	t.Cleanup(func() { ln.Close() })
	return &Listener{ln: ln}
}

// Addr returns the address to dial.
func (l *Listener) Addr() string {
	return l.ln.Addr().String()
}

// Accept waits for the next raw connection.
func (l *Listener) Accept(t testing.TB) net.Conn {
	t.Helper()
	type result struct {
		c   net.Conn
		err error
	}
	ch := make(chan result, 1)
	go func() {
		c, err := l.ln.Accept()
		ch <- result{c, err}
	}()
	select {
	case r := <-ch:
		if r.err != nil {
			t.Fatalf("accept: %v", r.err)
		}
		t.Cleanup(func() { r.c.Close() })
		return r.c
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for connection")
		return nil
	}
}

// AcceptPlain accepts a plaintext connection.
func (l *Listener) AcceptPlain(t testing.TB) Device {
	t.Helper()
	return NewPlainDevice(l.Accept(t))
}

// AcceptNoise accepts a connection and completes the responder side of the
// handshake, announcing name in the server hello.
func (l *Listener) AcceptNoise(t testing.TB, psk []byte, name string) Device {
	t.Helper()
	d, err := NewNoiseDevice(l.Accept(t), psk, name)
	if err != nil {
		t.Fatalf("noise responder: %v", err)
	}
	return d
}

// PlainDevice speaks the plaintext framing.
type PlainDevice struct {
	c  net.Conn
	br *bufio.Reader
	mu sync.Mutex
}

// NewPlainDevice wraps an accepted socket.
func NewPlainDevice(c net.Conn) *PlainDevice {
	return &PlainDevice{c: c, br: bufio.NewReader(c)}
}

func (d *PlainDevice) Send(mt wire.MessageType, payload []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, err := d.c.Write(transport.AppendPlainFrame(nil, mt, payload))
	return err
}

func (d *PlainDevice) Receive() (wire.MessageType, []byte, error) {
	return transport.ReadPlainFrame(d.br, 0)
}

func (d *PlainDevice) Conn() net.Conn { return d.c }
func (d *PlainDevice) Close() error   { return d.c.Close() }

// NoiseDevice speaks the encrypted framing.
type NoiseDevice struct {
	c    net.Conn
	br   *bufio.Reader
	mu   sync.Mutex
	send *noise.CipherState
	recv *noise.CipherState
}

// NewNoiseDevice runs the responder handshake on c.
func NewNoiseDevice(c net.Conn, psk []byte, name string) (*NoiseDevice, error) {
	br := bufio.NewReader(c)
	if err := c.SetDeadline(time.Now().Add(5 * time.Second)); err != nil {
		return nil, err
	}

	hello, err := transport.ReadNoiseFrame(br)
	if err != nil {
		return nil, fmt.Errorf("read client hello: %w", err)
	}
	if len(hello) != 0 {
		return nil, fmt.Errorf("client hello has %d byte body", len(hello))
	}
	msg1, err := transport.ReadNoiseFrame(br)
	if err != nil {
		return nil, fmt.Errorf("read handshake: %w", err)
	}
	if len(msg1) == 0 || msg1[0] != 0x00 {
		return nil, fmt.Errorf("bad handshake preamble")
	}

	hs, err := noise.NewHandshakeState(noise.Config{
		CipherSuite:           transport.NoiseCipherSuite,
		Random:                rand.Reader,
		Pattern:               noise.HandshakeNN,
		Initiator:             false,
		Prologue:              []byte(transport.NoisePrologue),
		PresharedKey:          psk,
		PresharedKeyPlacement: 0,
	})
	if err != nil {
		return nil, err
	}

	serverHello := append([]byte{transport.NoisePreamble}, name...)
	serverHello = append(serverHello, 0x00)
	if _, err := c.Write(transport.AppendNoiseFrame(nil, serverHello)); err != nil {
		return nil, err
	}

	if _, _, _, err := hs.ReadMessage(nil, msg1[1:]); err != nil {
		// Reject the way firmware does: a non-zero preamble and a reason.
		reject := append([]byte{0x01}, "Handshake MAC failure"...)
		_, _ = c.Write(transport.AppendNoiseFrame(nil, reject))
		return nil, fmt.Errorf("read message: %w", err)
	}
	msg2, cs1, cs2, err := hs.WriteMessage(nil, nil)
	if err != nil {
		return nil, err
	}
	if _, err := c.Write(transport.AppendNoiseFrame(nil, append([]byte{0x00}, msg2...))); err != nil {
		return nil, err
	}
	if err := c.SetDeadline(time.Time{}); err != nil {
		return nil, err
	}

	// The initiator encrypts with the first cipher state.
	return &NoiseDevice{c: c, br: br, send: cs2, recv: cs1}, nil
}

func (d *NoiseDevice) Send(mt wire.MessageType, payload []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	ct, err := d.send.Encrypt(nil, nil, transport.EncodeNoiseMessage(mt, payload))
	if err != nil {
		return err
	}
	_, err = d.c.Write(transport.AppendNoiseFrame(nil, ct))
	return err
}

func (d *NoiseDevice) Receive() (wire.MessageType, []byte, error) {
	body, err := transport.ReadNoiseFrame(d.br)
	if err != nil {
		return 0, nil, err
	}
	pt, err := d.recv.Decrypt(nil, nil, body)
	if err != nil {
		return 0, nil, err
	}
	return transport.DecodeNoiseMessage(pt)
}

func (d *NoiseDevice) Conn() net.Conn { return d.c }
func (d *NoiseDevice) Close() error   { return d.c.Close() }

// Compile-time interface satisfaction checks.
var (
	_ Device = (*PlainDevice)(nil)
	_ Device = (*NoiseDevice)(nil)
)
