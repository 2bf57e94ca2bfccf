package log

import (
	"time"

	"github.com/igloo-home/esphome-go/pkg/wire"
)

// Event represents a protocol log event captured at any layer.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// ConnectionID uniquely identifies the connection (UUID).
	ConnectionID string `cbor:"2,keyasint"`

	// Direction indicates message flow.
	Direction Direction `cbor:"3,keyasint"`

	// Layer where the event was captured.
	Layer Layer `cbor:"4,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"5,keyasint"`

	// RemoteAddr is the device address (host:port).
	RemoteAddr string `cbor:"6,keyasint,omitempty"`

	// DeviceName is the name the device reported in its hello, once known.
	DeviceName string `cbor:"7,keyasint,omitempty"`

	// Type-specific payload (one of these will be set).
	Frame       *FrameEvent       `cbor:"10,keyasint,omitempty"` // Transport layer
	Message     *MessageEvent     `cbor:"11,keyasint,omitempty"` // Wire layer
	StateChange *StateChangeEvent `cbor:"12,keyasint,omitempty"` // Connection/session state
	ControlMsg  *ControlMsgEvent  `cbor:"13,keyasint,omitempty"` // Ping/disconnect/time
	Error       *ErrorEventData   `cbor:"14,keyasint,omitempty"` // Errors at any layer
	Handshake   *HandshakeEvent   `cbor:"15,keyasint,omitempty"` // Noise handshake steps
}

// Direction indicates the direction of message flow.
type Direction uint8

const (
	// DirectionIn indicates data received from the device.
	DirectionIn Direction = 0
	// DirectionOut indicates data sent to the device.
	DirectionOut Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "IN"
	case DirectionOut:
		return "OUT"
	default:
		return "UNKNOWN"
	}
}

// Layer indicates which protocol layer captured the event.
type Layer uint8

const (
	// LayerTransport is the framing layer (raw or encrypted bytes).
	LayerTransport Layer = 0
	// LayerWire is the message layer (typed message bodies).
	LayerWire Layer = 1
	// LayerSession is the device session and bridge layer.
	LayerSession Layer = 2
)

// String returns the layer name.
func (l Layer) String() string {
	switch l {
	case LayerTransport:
		return "TRANSPORT"
	case LayerWire:
		return "WIRE"
	case LayerSession:
		return "SESSION"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryMessage indicates a protocol message.
	CategoryMessage Category = 0
	// CategoryControl indicates a control message (ping, disconnect, time).
	CategoryControl Category = 1
	// CategoryState indicates a state change.
	CategoryState Category = 2
	// CategoryError indicates an error event.
	CategoryError Category = 3
	// CategoryHandshake indicates a Noise handshake step.
	CategoryHandshake Category = 4
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryMessage:
		return "MESSAGE"
	case CategoryControl:
		return "CONTROL"
	case CategoryState:
		return "STATE"
	case CategoryError:
		return "ERROR"
	case CategoryHandshake:
		return "HANDSHAKE"
	default:
		return "UNKNOWN"
	}
}

// FrameEvent captures raw frame data at the transport layer.
type FrameEvent struct {
	// Size is the frame size in bytes including the header.
	Size int `cbor:"1,keyasint"`

	// Data is the frame body (may be truncated for large frames).
	// For encrypted frames this is the ciphertext.
	Data []byte `cbor:"2,keyasint,omitempty"`

	// Truncated indicates if Data was truncated.
	Truncated bool `cbor:"3,keyasint,omitempty"`

	// Encrypted indicates the frame was carried by the Noise transport.
	Encrypted bool `cbor:"4,keyasint,omitempty"`
}

// MessageEvent captures a typed protocol message at the wire layer.
type MessageEvent struct {
	// Type is the message identifier.
	Type wire.MessageType `cbor:"1,keyasint"`

	// Size is the body length in bytes.
	Size int `cbor:"2,keyasint"`

	// Key is the entity key for entity list, state and command messages.
	Key *uint32 `cbor:"3,keyasint,omitempty"`

	// Payload is the raw message body (may be truncated).
	Payload []byte `cbor:"4,keyasint,omitempty"`
}

// StateChangeEvent captures connection and session lifecycle events.
type StateChangeEvent struct {
	// Entity being changed.
	Entity StateEntity `cbor:"1,keyasint"`

	// OldState is the previous state (may be empty).
	OldState string `cbor:"2,keyasint,omitempty"`

	// NewState is the new state.
	NewState string `cbor:"3,keyasint"`

	// Reason for the change (if available).
	Reason string `cbor:"4,keyasint,omitempty"`
}

// StateEntity indicates what entity changed state.
type StateEntity uint8

const (
	// StateEntityConnection indicates a transport connection state change.
	StateEntityConnection StateEntity = 0
	// StateEntitySession indicates a device session state change.
	StateEntitySession StateEntity = 1
	// StateEntityDevice indicates a bridge device registration change.
	StateEntityDevice StateEntity = 2
)

// String returns the state entity name.
func (s StateEntity) String() string {
	switch s {
	case StateEntityConnection:
		return "CONNECTION"
	case StateEntitySession:
		return "SESSION"
	case StateEntityDevice:
		return "DEVICE"
	default:
		return "UNKNOWN"
	}
}

// ControlMsgEvent captures session control messages.
type ControlMsgEvent struct {
	// Type of control message.
	Type ControlMsgType `cbor:"1,keyasint"`
}

// ControlMsgType indicates the type of control message.
type ControlMsgType uint8

const (
	// ControlMsgPing indicates a ping request.
	ControlMsgPing ControlMsgType = 0
	// ControlMsgPong indicates a ping response.
	ControlMsgPong ControlMsgType = 1
	// ControlMsgDisconnect indicates a disconnect request or response.
	ControlMsgDisconnect ControlMsgType = 2
	// ControlMsgGetTime indicates a time request or response.
	ControlMsgGetTime ControlMsgType = 3
)

// String returns the control message type name.
func (c ControlMsgType) String() string {
	switch c {
	case ControlMsgPing:
		return "PING"
	case ControlMsgPong:
		return "PONG"
	case ControlMsgDisconnect:
		return "DISCONNECT"
	case ControlMsgGetTime:
		return "GET_TIME"
	default:
		return "UNKNOWN"
	}
}

// HandshakeEvent captures one step of the Noise handshake.
type HandshakeEvent struct {
	// Step is the handshake step.
	Step HandshakeStep `cbor:"1,keyasint"`

	// ServerName is the name announced in the server hello.
	ServerName string `cbor:"2,keyasint,omitempty"`

	// Reason is the device's explanation for a rejected handshake.
	Reason string `cbor:"3,keyasint,omitempty"`
}

// HandshakeStep identifies a Noise handshake step.
type HandshakeStep uint8

const (
	// HandshakeClientHello is the client's hello and first handshake message.
	HandshakeClientHello HandshakeStep = 0
	// HandshakeServerHello is the device's protocol and name announcement.
	HandshakeServerHello HandshakeStep = 1
	// HandshakeComplete indicates the transport keys were established.
	HandshakeComplete HandshakeStep = 2
	// HandshakeRejected indicates the device refused the handshake.
	HandshakeRejected HandshakeStep = 3
)

// String returns the handshake step name.
func (s HandshakeStep) String() string {
	switch s {
	case HandshakeClientHello:
		return "CLIENT_HELLO"
	case HandshakeServerHello:
		return "SERVER_HELLO"
	case HandshakeComplete:
		return "COMPLETE"
	case HandshakeRejected:
		return "REJECTED"
	default:
		return "UNKNOWN"
	}
}

// ErrorEventData captures errors at any layer.
type ErrorEventData struct {
	// Layer where the error occurred.
	Layer Layer `cbor:"1,keyasint"`

	// Message is the error message.
	Message string `cbor:"2,keyasint"`

	// Context describes what operation was being performed.
	Context string `cbor:"3,keyasint,omitempty"`
}
