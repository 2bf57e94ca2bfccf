package transport

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/igloo-home/esphome-go/pkg/log"
	"github.com/igloo-home/esphome-go/pkg/varint"
	"github.com/igloo-home/esphome-go/pkg/wire"
)

// PlainPreamble starts every unencrypted frame.
const PlainPreamble = 0x00

// PlainTransport exchanges unencrypted varint-framed messages.
type PlainTransport struct {
	conn
}

// NewPlain creates a disconnected plaintext transport.
func NewPlain(address string, cfg Config) *PlainTransport {
	return &PlainTransport{conn: newConn(address, cfg)}
}

// Connect opens the socket. Plain connections have no handshake.
func (t *PlainTransport) Connect(ctx context.Context) error {
	opened, err := t.dial(ctx)
	if err != nil || !opened {
		return err
	}
	t.established()
	return nil
}

// Disconnect closes the socket.
func (t *PlainTransport) Disconnect() error {
	_, err := t.teardown("disconnect")
	return err
}

// PeerName returns "": plaintext devices announce their name only in the
// message-level hello.
func (t *PlainTransport) PeerName() string {
	return ""
}

// Send writes one message frame.
func (t *PlainTransport) Send(mt wire.MessageType, payload []byte) error {
	t.writeMu.Lock()
	defer t.writeMu.Unlock()
	return t.write(AppendPlainFrame(nil, mt, payload), false)
}

// Receive reads one message frame.
func (t *PlainTransport) Receive() (wire.MessageType, []byte, error) {
	t.readMu.Lock()
	defer t.readMu.Unlock()

	_, br, err := t.socket()
	if err != nil {
		return 0, nil, err
	}

	mt, payload, n, err := readPlainFrame(br, t.cfg.MaxMessageSize)
	if err != nil {
		if !errors.Is(err, io.EOF) {
			t.logError(err, "receive")
		}
		if unframed(err) {
			resync(br)
		}
		return 0, nil, err
	}
	if t.capture() != nil {
		t.logFrame(AppendPlainFrame(make([]byte, 0, n), mt, payload), log.DirectionIn, false)
	}
	return mt, payload, nil
}

// AppendPlainFrame appends the plaintext frame for one message to dst:
// preamble, varint body length, varint message type, body.
func AppendPlainFrame(dst []byte, mt wire.MessageType, payload []byte) []byte {
	dst = append(dst, PlainPreamble)
	dst = varint.Append(dst, uint32(len(payload)))
	dst = varint.Append(dst, uint32(mt))
	return append(dst, payload...)
}

// ReadPlainFrame reads one plaintext frame from r. Fake devices use it to
// decode what PlainTransport sends.
func ReadPlainFrame(r *bufio.Reader, maxSize uint32) (wire.MessageType, []byte, error) {
	mt, payload, _, err := readPlainFrame(r, maxSize)
	return mt, payload, err
}

// readPlainFrame also returns the encoded frame size.
func readPlainFrame(r *bufio.Reader, maxSize uint32) (wire.MessageType, []byte, int, error) {
	preamble, err := varint.Read(r)
	if err != nil {
		return 0, nil, 0, fmt.Errorf("read preamble: %w", ioError(err))
	}
	if preamble != PlainPreamble {
		return 0, nil, 0, fmt.Errorf("%w: got 0x%02x", ErrFramePreamble, preamble)
	}

	length, err := varint.Read(r)
	if err != nil {
		return 0, nil, 0, fmt.Errorf("read length: %w", truncated(err))
	}
	if maxSize > 0 && length > maxSize {
		return 0, nil, 0, fmt.Errorf("%w: %d > %d", ErrMessageTooLarge, length, maxSize)
	}

	id, err := varint.Read(r)
	if err != nil {
		return 0, nil, 0, fmt.Errorf("read message type: %w", truncated(err))
	}
	// Consume the payload before resolving the type so an unknown type
	// leaves the reader at the next frame.
	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return 0, nil, 0, fmt.Errorf("read payload: %w", truncated(err))
	}
	mt, err := wire.LookupMessageType(id)
	if err != nil {
		return 0, nil, 0, err
	}

	size := 1 + varint.Len(length) + varint.Len(id) + int(length)
	return mt, payload, size, nil
}

// unframed reports whether err left the reader inside a frame whose end is
// unknown.
func unframed(err error) bool {
	return errors.Is(err, ErrFramePreamble) ||
		errors.Is(err, ErrMessageTooLarge) ||
		errors.Is(err, varint.ErrInvalidFirstByte) ||
		errors.Is(err, varint.ErrOverflow)
}

// truncated treats any EOF after the preamble as a truncated frame.
func truncated(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrFrameTruncated
	}
	return err
}

// Compile-time interface satisfaction check.
var _ Transport = (*PlainTransport)(nil)
