package device

import (
	"errors"
	"fmt"

	"github.com/igloo-home/esphome-go/pkg/wire"
)

// Session errors.
var (
	ErrNotConnected     = errors.New("session not connected")
	ErrAlreadyConnected = errors.New("session already connected")

	// ErrUnexpectedMessage is returned when a fixed request/response
	// exchange receives the wrong message type.
	ErrUnexpectedMessage = errors.New("unexpected message")

	// ErrInvalidPassword is returned by Connect when the device rejects
	// the password.
	ErrInvalidPassword = errors.New("invalid password")

	// ErrIncompatibleAPI is returned by Connect when the device speaks a
	// different major API version.
	ErrIncompatibleAPI = errors.New("incompatible API version")

	// ErrDeviceRequestedShutdown signals a device-initiated disconnect.
	// Run treats it as a clean exit and returns nil.
	ErrDeviceRequestedShutdown = errors.New("device requested shutdown")

	// ErrConnectionLost is returned by Run when the transport can no longer
	// be read.
	ErrConnectionLost = errors.New("connection lost")

	// ErrKeepAliveTimeout is returned by Run when too many pings went
	// unanswered.
	ErrKeepAliveTimeout = errors.New("keep-alive timeout")

	// ErrDuplicateKey is returned when discovery reports the same entity
	// key twice.
	ErrDuplicateKey = errors.New("duplicate entity key")
)

// UnexpectedMessageError reports which message arrived instead of the
// expected one.
type UnexpectedMessageError struct {
	Want wire.MessageType
	Got  wire.MessageType
}

func (e *UnexpectedMessageError) Error() string {
	return fmt.Sprintf("%s: got %s, want %s", ErrUnexpectedMessage, e.Got, e.Want)
}

// Is makes errors.Is(err, ErrUnexpectedMessage) match.
func (e *UnexpectedMessageError) Is(target error) bool {
	return target == ErrUnexpectedMessage
}
