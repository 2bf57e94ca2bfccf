package wire

import (
	"errors"
	"fmt"
)

// MessageType identifies a protocol message on the wire.
type MessageType uint16

// ErrUnknownMessageType is matched by UnknownMessageTypeError.
var ErrUnknownMessageType = errors.New("unknown message type")

// UnknownMessageTypeError reports a message identifier missing from the
// message table.
type UnknownMessageTypeError struct {
	ID uint32
}

func (e *UnknownMessageTypeError) Error() string {
	return fmt.Sprintf("unknown message type %d", e.ID)
}

// Is reports whether target is ErrUnknownMessageType.
func (e *UnknownMessageTypeError) Is(target error) bool {
	return target == ErrUnknownMessageType
}

// String returns the message name.
func (t MessageType) String() string {
	if name, ok := messageTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("MessageType(%d)", uint16(t))
}

// IsKnown reports whether t is in the message table.
func (t MessageType) IsKnown() bool {
	_, ok := messageTypeNames[t]
	return ok
}

// LookupMessageType resolves a wire identifier. Identifiers that are not in
// the message table yield an *UnknownMessageTypeError.
func LookupMessageType(id uint32) (MessageType, error) {
	if id > 0xFFFF {
		return 0, &UnknownMessageTypeError{ID: id}
	}
	t := MessageType(id)
	if !t.IsKnown() {
		return 0, &UnknownMessageTypeError{ID: id}
	}
	return t, nil
}

// EntityType is a category of device capability.
type EntityType uint8

// String returns the entity type name.
func (e EntityType) String() string {
	if int(e) < len(entityTypeNames) {
		return entityTypeNames[e]
	}
	return fmt.Sprintf("EntityType(%d)", uint8(e))
}

// EntityTypes returns every entity type in declaration order.
func EntityTypes() []EntityType {
	out := make([]EntityType, len(entityTypeNames))
	for i := range entityTypeNames {
		out[i] = EntityType(i)
	}
	return out
}

// EntityForListResponse returns the entity type announced by a
// ListEntities<Kind>Response message type.
func EntityForListResponse(t MessageType) (EntityType, bool) {
	e, ok := listResponseEntities[t]
	return e, ok
}

// EntityForStateResponse returns the entity type whose state a
// <Kind>StateResponse message type carries.
func EntityForStateResponse(t MessageType) (EntityType, bool) {
	e, ok := stateResponseEntities[t]
	return e, ok
}

// CommandRequestFor returns the command message type of an entity type.
// Entity types that accept no commands return false.
func CommandRequestFor(e EntityType) (MessageType, bool) {
	t, ok := commandRequests[e]
	return t, ok
}
