package transport

import (
	"bufio"
	"bytes"
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/flynn/noise"

	"github.com/igloo-home/esphome-go/pkg/log"
	"github.com/igloo-home/esphome-go/pkg/wire"
)

// Noise framing constants.
const (
	// NoisePreamble starts every encrypted frame.
	NoisePreamble = 0x01

	// NoisePrologue is mixed into the handshake hash on both sides.
	NoisePrologue = "NoiseAPIInit\x00\x00"

	// MaxNoiseFrameSize is the largest frame body, which bounds each Noise
	// message including its authentication tag.
	MaxNoiseFrameSize = 0xFFFF

	// noiseHeaderSize is the encrypted message header: type and length.
	noiseHeaderSize = 4

	// noiseTagSize is the ChaChaPoly authentication tag.
	noiseTagSize = 16

	// MaxNoisePayload is the largest message body NoiseTransport can send.
	MaxNoisePayload = MaxNoiseFrameSize - noiseTagSize - noiseHeaderSize
)

// clientHello is an empty frame that precedes the first handshake message.
var clientHello = []byte{NoisePreamble, 0x00, 0x00}

// NoiseCipherSuite is Noise_*_25519_ChaChaPoly_SHA256.
var NoiseCipherSuite = noise.NewCipherSuite(noise.DH25519, noise.CipherChaChaPoly, noise.HashSHA256)

// NoiseTransport exchanges messages encrypted with a Noise NNpsk0 session.
type NoiseTransport struct {
	conn
	psk []byte

	// cipherMu guards peerName and the cipher states. send and recv are
	// used under writeMu and readMu respectively.
	cipherMu sync.Mutex
	peerName string
	send     *noise.CipherState
	recv     *noise.CipherState
}

// NewNoise creates a disconnected encrypted transport. psk must be 32 bytes;
// use New or DecodePSK to obtain it from configuration.
func NewNoise(address string, psk []byte, cfg Config) *NoiseTransport {
	return &NoiseTransport{
		conn: newConn(address, cfg),
		psk:  append([]byte(nil), psk...),
	}
}

// Connect opens the socket and runs the handshake. Any failure closes the
// socket; there is no handshake resumption.
func (t *NoiseTransport) Connect(ctx context.Context) error {
	opened, err := t.dial(ctx)
	if err != nil || !opened {
		return err
	}

	if err := t.handshake(ctx); err != nil {
		if ctx.Err() != nil {
			err = fmt.Errorf("handshake: %w", ctx.Err())
		}
		t.logError(err, "handshake")
		_ = t.Disconnect()
		return err
	}
	t.established()
	return nil
}

func (t *NoiseTransport) handshake(ctx context.Context) error {
	t.readMu.Lock()
	defer t.readMu.Unlock()
	t.writeMu.Lock()
	defer t.writeMu.Unlock()

	nc, br, err := t.socket()
	if err != nil {
		return err
	}

	// Bound each read and abort the handshake when ctx ends.
	stop := context.AfterFunc(ctx, func() {
		_ = nc.SetDeadline(time.Now())
	})
	defer stop()

	hs, err := noise.NewHandshakeState(noise.Config{
		CipherSuite:           NoiseCipherSuite,
		Random:                rand.Reader,
		Pattern:               noise.HandshakeNN,
		Initiator:             true,
		Prologue:              []byte(NoisePrologue),
		PresharedKey:          t.psk,
		PresharedKeyPlacement: 0,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrHandshake, err)
	}

	msg1, _, _, err := hs.WriteMessage(nil, nil)
	if err != nil {
		return fmt.Errorf("%w: write message: %v", ErrHandshake, err)
	}
	hello := append([]byte(nil), clientHello...)
	hello = AppendNoiseFrame(hello, append([]byte{0x00}, msg1...))
	if _, err := nc.Write(hello); err != nil {
		return fmt.Errorf("write client hello: %w", err)
	}
	t.logFrame(hello, log.DirectionOut, true)
	t.logHandshake(log.DirectionOut, log.HandshakeClientHello, "", "")

	serverHello, err := t.readHandshakeFrame(nc, br)
	if err != nil {
		return fmt.Errorf("read server hello: %w", err)
	}
	name, err := ParseServerHello(serverHello)
	if err != nil {
		return err
	}
	t.logHandshake(log.DirectionIn, log.HandshakeServerHello, name, "")

	resp, err := t.readHandshakeFrame(nc, br)
	if err != nil {
		return fmt.Errorf("read handshake: %w", err)
	}
	if len(resp) == 0 || resp[0] != 0x00 {
		reason := ""
		if len(resp) > 1 {
			reason = strings.ToValidUTF8(string(resp[1:]), "�")
		}
		t.logHandshake(log.DirectionIn, log.HandshakeRejected, name, reason)
		if reason != "" {
			return fmt.Errorf("%w: %s", ErrHandshakePreamble, reason)
		}
		return ErrHandshakePreamble
	}

	_, send, recv, err := hs.ReadMessage(nil, resp[1:])
	if err != nil {
		return fmt.Errorf("%w: %v", ErrHandshake, err)
	}
	if send == nil || recv == nil {
		return fmt.Errorf("%w: handshake did not complete", ErrHandshake)
	}

	if !stop() {
		return ctx.Err()
	}
	if err := nc.SetDeadline(time.Time{}); err != nil {
		return err
	}

	t.cipherMu.Lock()
	t.peerName = name
	t.send = send
	t.recv = recv
	t.cipherMu.Unlock()

	t.logHandshake(log.DirectionIn, log.HandshakeComplete, name, "")
	t.logger.Debug("noise handshake complete", "peer_name", name)
	return nil
}

func (t *NoiseTransport) readHandshakeFrame(nc net.Conn, br *bufio.Reader) ([]byte, error) {
	if err := nc.SetReadDeadline(time.Now().Add(t.cfg.HandshakeTimeout)); err != nil {
		return nil, err
	}
	body, err := ReadNoiseFrame(br)
	if err != nil {
		return nil, err
	}
	t.logFrame(AppendNoiseFrame(nil, body), log.DirectionIn, true)
	return body, nil
}

// ParseServerHello validates a server hello frame body and returns the
// device name it announces.
func ParseServerHello(body []byte) (string, error) {
	if len(body) == 0 || body[0] != NoisePreamble {
		got := -1
		if len(body) > 0 {
			got = int(body[0])
		}
		return "", fmt.Errorf("%w: protocol %d", ErrUnknownProtocol, got)
	}
	rest := body[1:]
	end := bytes.IndexByte(rest, 0x00)
	if end < 0 {
		return "", ErrMissingNullTerminator
	}
	return strings.ToValidUTF8(string(rest[:end]), "�"), nil
}

// Disconnect closes the socket and discards the cipher states and peer name.
func (t *NoiseTransport) Disconnect() error {
	_, err := t.teardown("disconnect")

	t.readMu.Lock()
	t.writeMu.Lock()
	t.cipherMu.Lock()
	t.send = nil
	t.recv = nil
	t.peerName = ""
	t.cipherMu.Unlock()
	t.writeMu.Unlock()
	t.readMu.Unlock()

	return err
}

// PeerName returns the name from the server hello.
func (t *NoiseTransport) PeerName() string {
	t.cipherMu.Lock()
	defer t.cipherMu.Unlock()
	return t.peerName
}

func (t *NoiseTransport) ciphers() (send, recv *noise.CipherState) {
	t.cipherMu.Lock()
	defer t.cipherMu.Unlock()
	return t.send, t.recv
}

// Send encrypts and writes one message.
func (t *NoiseTransport) Send(mt wire.MessageType, payload []byte) error {
	if len(payload) > MaxNoisePayload {
		return fmt.Errorf("%w: %d > %d", ErrMessageTooLarge, len(payload), MaxNoisePayload)
	}

	t.writeMu.Lock()
	defer t.writeMu.Unlock()

	cs, _ := t.ciphers()
	if cs == nil || t.State() != StateConnected {
		return ErrNotConnected
	}

	ciphertext, err := cs.Encrypt(nil, nil, EncodeNoiseMessage(mt, payload))
	if err != nil {
		return fmt.Errorf("encrypt: %w", err)
	}
	return t.write(AppendNoiseFrame(nil, ciphertext), true)
}

// Receive reads and decrypts one message.
func (t *NoiseTransport) Receive() (wire.MessageType, []byte, error) {
	t.readMu.Lock()
	defer t.readMu.Unlock()

	_, cs := t.ciphers()
	_, br, err := t.socket()
	if err != nil {
		return 0, nil, err
	}
	if cs == nil {
		return 0, nil, ErrNotConnected
	}

	body, err := ReadNoiseFrame(br)
	if err != nil {
		if !errors.Is(err, io.EOF) {
			t.logError(err, "receive")
		}
		if errors.Is(err, ErrFramePreamble) {
			resync(br)
		}
		return 0, nil, err
	}
	t.logFrame(AppendNoiseFrame(nil, body), log.DirectionIn, true)

	plaintext, err := cs.Decrypt(nil, nil, body)
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrDecrypt, err)
		t.logError(err, "receive")
		return 0, nil, err
	}
	return DecodeNoiseMessage(plaintext)
}

// DecodeNoiseMessage splits a decrypted message into type and body.
func DecodeNoiseMessage(plaintext []byte) (wire.MessageType, []byte, error) {
	if len(plaintext) < noiseHeaderSize {
		return 0, nil, fmt.Errorf("%w: %d byte message header", ErrFrameTruncated, len(plaintext))
	}
	id := binary.BigEndian.Uint16(plaintext[0:2])
	length := int(binary.BigEndian.Uint16(plaintext[2:4]))
	body := plaintext[noiseHeaderSize:]
	if length > len(body) {
		return 0, nil, fmt.Errorf("%w: header length %d, have %d", ErrFrameTruncated, length, len(body))
	}
	mt, err := wire.LookupMessageType(uint32(id))
	if err != nil {
		return 0, nil, err
	}
	return mt, body[:length], nil
}

// EncodeNoiseMessage builds the plaintext header and body for one message.
func EncodeNoiseMessage(mt wire.MessageType, payload []byte) []byte {
	out := make([]byte, noiseHeaderSize, noiseHeaderSize+len(payload))
	binary.BigEndian.PutUint16(out[0:2], uint16(mt))
	binary.BigEndian.PutUint16(out[2:4], uint16(len(payload)))
	return append(out, payload...)
}

// AppendNoiseFrame appends [0x01, len_hi, len_lo] and body to dst. body
// must not exceed MaxNoiseFrameSize.
func AppendNoiseFrame(dst, body []byte) []byte {
	dst = append(dst, NoisePreamble, byte(len(body)>>8), byte(len(body)))
	return append(dst, body...)
}

// ReadNoiseFrame reads one encrypted-transport frame and returns its body.
func ReadNoiseFrame(r io.Reader) ([]byte, error) {
	var header [3]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, err
		}
		return nil, fmt.Errorf("read frame header: %w", ioError(err))
	}
	if header[0] != NoisePreamble {
		return nil, fmt.Errorf("%w: got 0x%02x", ErrFramePreamble, header[0])
	}
	body := make([]byte, binary.BigEndian.Uint16(header[1:3]))
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, fmt.Errorf("read frame body: %w", truncated(err))
	}
	return body, nil
}

func (t *NoiseTransport) logHandshake(dir log.Direction, step log.HandshakeStep, name, reason string) {
	if t.capture() == nil {
		return
	}
	e := t.event(dir, log.CategoryHandshake)
	e.Handshake = &log.HandshakeEvent{Step: step, ServerName: name, Reason: reason}
	t.capture().Log(e)
}

// Compile-time interface satisfaction check.
var _ Transport = (*NoiseTransport)(nil)
