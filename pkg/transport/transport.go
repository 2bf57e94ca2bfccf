package transport

import (
	"bufio"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/igloo-home/esphome-go/pkg/log"
	"github.com/igloo-home/esphome-go/pkg/wire"
)

// Transport carries typed messages to and from one device.
type Transport interface {
	// Connect opens the socket and, for encrypted transports, completes the
	// handshake. Calling Connect on a connected transport is a no-op.
	Connect(ctx context.Context) error

	// Disconnect closes the socket and discards all session state. It is
	// safe to call in any state.
	Disconnect() error

	// Send writes one message.
	Send(t wire.MessageType, payload []byte) error

	// Receive reads one message. It blocks until a full frame arrives or
	// the connection fails.
	Receive() (wire.MessageType, []byte, error)

	// WaitReadable blocks until at least one byte is buffered for Receive,
	// the connection fails, or ctx is done.
	WaitReadable(ctx context.Context) error

	// PeerName returns the device name learned during the handshake, or ""
	// when the variant has none.
	PeerName() string

	// State returns the current connection state.
	State() ConnectionState

	// ConnectionID returns the capture ID of the current connection.
	ConnectionID() string
}

// ConnectionState is the lifecycle state of a Transport.
type ConnectionState int32

const (
	// StateDisconnected indicates no socket.
	StateDisconnected ConnectionState = iota

	// StateHandshaking indicates the socket is open and the handshake is
	// in progress.
	StateHandshaking

	// StateConnected indicates messages can flow.
	StateConnected
)

// String returns the connection state name.
func (s ConnectionState) String() string {
	switch s {
	case StateDisconnected:
		return "DISCONNECTED"
	case StateHandshaking:
		return "HANDSHAKING"
	case StateConnected:
		return "CONNECTED"
	default:
		return "UNKNOWN"
	}
}

// Defaults.
const (
	// DefaultDialTimeout bounds TCP connection establishment.
	DefaultDialTimeout = 10 * time.Second

	// DefaultHandshakeTimeout bounds each handshake read.
	DefaultHandshakeTimeout = 60 * time.Second

	// DefaultMaxMessageSize caps plaintext message bodies accepted by
	// PlainTransport.
	DefaultMaxMessageSize = 1 << 20

	// MaxLogFrameDataSize is the maximum frame data included in capture
	// events. Larger frames are truncated.
	MaxLogFrameDataSize = 4096
)

// DialFunc opens the underlying stream.
type DialFunc func(ctx context.Context, network, address string) (net.Conn, error)

// Config configures a Transport.
type Config struct {
	// DialTimeout bounds TCP connection establishment (default 10s).
	DialTimeout time.Duration

	// HandshakeTimeout bounds each handshake read (default 60s).
	HandshakeTimeout time.Duration

	// MaxMessageSize caps plaintext message bodies (default 1 MiB).
	MaxMessageSize uint32

	// Dial replaces the TCP dialer, mainly for tests.
	Dial DialFunc

	// Logger receives operational logs. Nil discards them.
	Logger *slog.Logger

	// ProtocolLogger receives capture events. Nil disables capture.
	ProtocolLogger log.Logger
}

// DefaultConfig returns the default transport configuration.
func DefaultConfig() Config {
	return Config{
		DialTimeout:      DefaultDialTimeout,
		HandshakeTimeout: DefaultHandshakeTimeout,
		MaxMessageSize:   DefaultMaxMessageSize,
	}
}

func (c *Config) applyDefaults() {
	if c.DialTimeout <= 0 {
		c.DialTimeout = DefaultDialTimeout
	}
	if c.HandshakeTimeout <= 0 {
		c.HandshakeTimeout = DefaultHandshakeTimeout
	}
	if c.MaxMessageSize == 0 {
		c.MaxMessageSize = DefaultMaxMessageSize
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.DiscardHandler)
	}
	if c.Dial == nil {
		d := &net.Dialer{Timeout: c.DialTimeout}
		c.Dial = d.DialContext
	}
}

// New returns a NoiseTransport when psk is non-empty and a PlainTransport
// otherwise. psk is the base64 (standard encoding) form of the 32-byte key.
func New(address, psk string, cfg Config) (Transport, error) {
	if psk == "" {
		return NewPlain(address, cfg), nil
	}
	key, err := DecodePSK(psk)
	if err != nil {
		return nil, err
	}
	return NewNoise(address, key, cfg), nil
}

// DecodePSK decodes a base64 pre-shared key and checks its length.
func DecodePSK(psk string) ([]byte, error) {
	key, err := base64.StdEncoding.DecodeString(psk)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPSK, err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("%w: got %d bytes, want 32", ErrInvalidPSK, len(key))
	}
	return key, nil
}

// conn holds the socket handling shared by both variants.
type conn struct {
	address string
	cfg     Config
	logger  *slog.Logger

	// mu guards nc, br and connID. readMu and writeMu serialize each
	// direction and are taken before mu.
	mu      sync.Mutex
	readMu  sync.Mutex
	writeMu sync.Mutex

	nc     net.Conn
	br     *bufio.Reader
	connID string

	state atomic.Int32
}

func newConn(address string, cfg Config) conn {
	cfg.applyDefaults()
	return conn{
		address: address,
		cfg:     cfg,
		logger:  cfg.Logger.With("address", address),
	}
}

// State returns the current connection state.
func (c *conn) State() ConnectionState {
	return ConnectionState(c.state.Load())
}

// ConnectionID returns the capture ID of the current connection.
func (c *conn) ConnectionID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connID
}

// dial opens the socket and moves to StateHandshaking. It returns false
// when the transport was already connected or connecting.
func (c *conn) dial(ctx context.Context) (bool, error) {
	if !c.state.CompareAndSwap(int32(StateDisconnected), int32(StateHandshaking)) {
		return false, nil
	}

	nc, err := c.cfg.Dial(ctx, "tcp", c.address)
	if err != nil {
		c.state.Store(int32(StateDisconnected))
		return false, fmt.Errorf("dial %s: %w", c.address, err)
	}

	c.mu.Lock()
	c.nc = nc
	c.br = bufio.NewReader(nc)
	c.connID = uuid.NewString()
	c.mu.Unlock()

	c.logState(StateDisconnected, StateHandshaking, "")
	return true, nil
}

// established moves a handshaking transport to StateConnected.
func (c *conn) established() {
	c.state.Store(int32(StateConnected))
	c.logState(StateHandshaking, StateConnected, "")
	c.logger.Debug("transport connected", "conn_id", c.ConnectionID())
}

// teardown closes the socket. It returns the previous state.
func (c *conn) teardown(reason string) (ConnectionState, error) {
	c.mu.Lock()
	nc := c.nc
	c.nc = nil
	c.br = nil
	c.mu.Unlock()

	old := ConnectionState(c.state.Swap(int32(StateDisconnected)))
	if nc == nil {
		return old, nil
	}
	err := nc.Close()
	c.logState(old, StateDisconnected, reason)
	return old, err
}

// socket returns the open socket and reader, or ErrNotConnected.
func (c *conn) socket() (net.Conn, *bufio.Reader, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.nc == nil {
		return nil, nil, ErrNotConnected
	}
	return c.nc, c.br, nil
}

// WaitReadable blocks until Receive can make progress.
func (c *conn) WaitReadable(ctx context.Context) error {
	c.readMu.Lock()
	defer c.readMu.Unlock()

	nc, br, err := c.socket()
	if err != nil {
		return err
	}
	if br.Buffered() > 0 {
		return nil
	}

	// Wake the blocked Peek by expiring the read deadline on cancel.
	expired := make(chan struct{})
	stop := context.AfterFunc(ctx, func() {
		_ = nc.SetReadDeadline(time.Now())
		close(expired)
	})
	_, err = br.Peek(1)
	if !stop() {
		<-expired
		_ = nc.SetReadDeadline(time.Time{})
		return ctx.Err()
	}
	if err != nil {
		return ioError(err)
	}
	return nil
}

// write sends one complete frame.
func (c *conn) write(frame []byte, encrypted bool) error {
	nc, _, err := c.socket()
	if err != nil {
		return err
	}
	if _, err := nc.Write(frame); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	c.logFrame(frame, log.DirectionOut, encrypted)
	return nil
}

// ioError maps a mid-frame EOF to ErrFrameTruncated.
// resync drops the buffered remainder of a frame whose end cannot be
// located, so the next read starts on fresh input.
func resync(br *bufio.Reader) {
	_, _ = br.Discard(br.Buffered())
}

func ioError(err error) error {
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrFrameTruncated
	}
	return err
}

func (c *conn) capture() log.Logger {
	return c.cfg.ProtocolLogger
}

func (c *conn) event(dir log.Direction, cat log.Category) log.Event {
	return log.Event{
		Timestamp:    time.Now(),
		ConnectionID: c.ConnectionID(),
		Direction:    dir,
		Layer:        log.LayerTransport,
		Category:     cat,
		RemoteAddr:   c.address,
	}
}

func (c *conn) logFrame(frame []byte, dir log.Direction, encrypted bool) {
	if c.capture() == nil {
		return
	}
	data := frame
	truncated := false
	if len(data) > MaxLogFrameDataSize {
		data = data[:MaxLogFrameDataSize]
		truncated = true
	}
	e := c.event(dir, log.CategoryMessage)
	e.Frame = &log.FrameEvent{
		Size:      len(frame),
		Data:      append([]byte(nil), data...),
		Truncated: truncated,
		Encrypted: encrypted,
	}
	c.capture().Log(e)
}

func (c *conn) logState(from, to ConnectionState, reason string) {
	if c.capture() == nil {
		return
	}
	e := c.event(log.DirectionOut, log.CategoryState)
	e.StateChange = &log.StateChangeEvent{
		Entity:   log.StateEntityConnection,
		OldState: from.String(),
		NewState: to.String(),
		Reason:   reason,
	}
	c.capture().Log(e)
}

func (c *conn) logError(err error, op string) {
	if c.capture() == nil {
		return
	}
	e := c.event(log.DirectionIn, log.CategoryError)
	e.Error = &log.ErrorEventData{
		Layer:   log.LayerTransport,
		Message: err.Error(),
		Context: op,
	}
	c.capture().Log(e)
}
