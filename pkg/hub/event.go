package hub

import (
	"fmt"
	"strings"
)

// EventType identifies an outbound event.
type EventType uint8

const (
	// EventEntityRegistered - a device entity was assigned an index.
	EventEntityRegistered EventType = iota + 1

	// EventAttributesWritten - attributes of an entity changed.
	EventAttributesWritten

	// EventDeviceIdentityDiscovered - a provisional device reported its name
	// and awaits an ID from the hub.
	EventDeviceIdentityDiscovered
)

// String returns the event type name.
func (t EventType) String() string {
	switch t {
	case EventEntityRegistered:
		return "ENTITY_REGISTERED"
	case EventAttributesWritten:
		return "ATTRIBUTES_WRITTEN"
	case EventDeviceIdentityDiscovered:
		return "DEVICE_IDENTITY_DISCOVERED"
	default:
		return "UNKNOWN"
	}
}

// Event is sent from the bridge to the hub.
type Event struct {
	// Type is the event type.
	Type EventType

	// DeviceID is the hub device ID (entity events).
	DeviceID uint64

	// EntityIndex is the entity within the device (entity events).
	EntityIndex int

	// EntityName is the display name (EventEntityRegistered).
	EntityName string

	// Attributes are the written attributes (EventAttributesWritten).
	Attributes []Attribute

	// Name is the device name (EventDeviceIdentityDiscovered).
	Name string
}

// EntityRegistered builds an EventEntityRegistered.
func EntityRegistered(deviceID uint64, name string, index int) Event {
	return Event{Type: EventEntityRegistered, DeviceID: deviceID, EntityName: name, EntityIndex: index}
}

// AttributesWritten builds an EventAttributesWritten.
func AttributesWritten(deviceID uint64, index int, attrs []Attribute) Event {
	return Event{Type: EventAttributesWritten, DeviceID: deviceID, EntityIndex: index, Attributes: attrs}
}

// DeviceIdentityDiscovered builds an EventDeviceIdentityDiscovered.
func DeviceIdentityDiscovered(name string) Event {
	return Event{Type: EventDeviceIdentityDiscovered, Name: name}
}

// String renders the event on one line.
func (e Event) String() string {
	switch e.Type {
	case EventEntityRegistered:
		return fmt.Sprintf("%s device=%d entity=%d name=%q", e.Type, e.DeviceID, e.EntityIndex, e.EntityName)
	case EventAttributesWritten:
		return fmt.Sprintf("%s device=%d entity=%d [%s]", e.Type, e.DeviceID, e.EntityIndex, FormatAttributes(e.Attributes))
	case EventDeviceIdentityDiscovered:
		return fmt.Sprintf("%s name=%q", e.Type, e.Name)
	default:
		return e.Type.String()
	}
}

// FormatAttributes joins attributes with spaces.
func FormatAttributes(attrs []Attribute) string {
	parts := make([]string, len(attrs))
	for i, a := range attrs {
		parts[i] = a.String()
	}
	return strings.Join(parts, " ")
}

// CommandType identifies an inbound command.
type CommandType uint8

const (
	// CommandWriteAttributes - write attributes of a device entity.
	CommandWriteAttributes CommandType = iota + 1

	// CommandAddDevice - connect a new device by address.
	CommandAddDevice

	// CommandDeviceCreated - the hub assigned an ID to a discovered device.
	CommandDeviceCreated
)

// String returns the command type name.
func (t CommandType) String() string {
	switch t {
	case CommandWriteAttributes:
		return "WRITE_ATTRIBUTES"
	case CommandAddDevice:
		return "ADD_DEVICE"
	case CommandDeviceCreated:
		return "DEVICE_CREATED"
	default:
		return "UNKNOWN"
	}
}

// Command is sent from the hub to the bridge.
type Command struct {
	// Type is the command type.
	Type CommandType

	// DeviceID is the target device (CommandWriteAttributes) or the newly
	// assigned ID (CommandDeviceCreated).
	DeviceID uint64

	// Write carries the entity write (CommandWriteAttributes).
	Write Write

	// Add carries connection details (CommandAddDevice).
	Add AddDevice

	// Name is the device name returned by EventDeviceIdentityDiscovered
	// (CommandDeviceCreated).
	Name string
}

// Write is an attribute write addressed to one entity of a device.
type Write struct {
	EntityIndex int
	Attributes  []Attribute
}

// AddDevice describes a device to connect to. An empty NoisePSK selects
// the plaintext protocol.
type AddDevice struct {
	Address  string
	NoisePSK string
	Password string
	Name     string
}

// WriteAttributes builds a CommandWriteAttributes.
func WriteAttributes(deviceID uint64, index int, attrs []Attribute) Command {
	return Command{
		Type:     CommandWriteAttributes,
		DeviceID: deviceID,
		Write:    Write{EntityIndex: index, Attributes: attrs},
	}
}

// NewAddDevice builds a CommandAddDevice.
func NewAddDevice(add AddDevice) Command {
	return Command{Type: CommandAddDevice, Add: add}
}

// DeviceCreated builds a CommandDeviceCreated.
func DeviceCreated(name string, deviceID uint64) Command {
	return Command{Type: CommandDeviceCreated, Name: name, DeviceID: deviceID}
}
