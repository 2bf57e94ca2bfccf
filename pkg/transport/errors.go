package transport

import "errors"

// Transport errors.
var (
	// ErrNotConnected is returned by I/O methods when no socket is open.
	ErrNotConnected = errors.New("not connected")

	// ErrFramePreamble indicates a frame did not start with the expected
	// preamble byte.
	ErrFramePreamble = errors.New("wrong frame preamble")

	// ErrFrameTruncated indicates the connection ended inside a frame.
	ErrFrameTruncated = errors.New("frame truncated")

	// ErrMessageTooLarge indicates a message does not fit the frame format
	// or exceeds the configured limit.
	ErrMessageTooLarge = errors.New("message too large")
)

// Cryptographic errors. Any of these is fatal for the connection attempt;
// the caller must reconnect from scratch.
var (
	// ErrInvalidPSK indicates the pre-shared key is not base64 or does not
	// decode to 32 bytes.
	ErrInvalidPSK = errors.New("invalid pre-shared key")

	// ErrUnknownProtocol indicates the server hello announced a protocol
	// other than Noise.
	ErrUnknownProtocol = errors.New("unknown client protocol")

	// ErrHandshakePreamble indicates the device rejected the handshake. The
	// wrapped error text carries the device's reason when it sent one.
	ErrHandshakePreamble = errors.New("wrong handshake preamble")

	// ErrMissingNullTerminator indicates the server hello name was not
	// terminated.
	ErrMissingNullTerminator = errors.New("server hello missing null terminator")

	// ErrHandshake indicates a Noise handshake step failed.
	ErrHandshake = errors.New("noise handshake failed")

	// ErrDecrypt indicates a transport message failed authentication.
	ErrDecrypt = errors.New("decrypt failed")
)
