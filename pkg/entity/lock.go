package entity

import (
	"github.com/igloo-home/esphome-go/pkg/hub"
	"github.com/igloo-home/esphome-go/pkg/wire"
)

// Lock translates locks. A Text attribute written by the hub is sent as
// the unlock code.
type Lock struct{}

func (Lock) EntityType() wire.EntityType { return wire.EntityLock }

func (Lock) Describe(payload []byte) (Description, error) {
	var m wire.ListEntitiesLockResponse
	if err := decode(payload, &m); err != nil {
		return Description{}, err
	}
	attrs := make([]hub.Attribute, 0, 3)
	attrs = addEntityCategory(attrs, m.EntityCategory)
	attrs = addIcon(attrs, m.Icon)
	if m.CodeFormat != "" {
		attrs = append(attrs, hub.Text(m.CodeFormat))
	}
	return Description{Header: m.EntityHeader, Attributes: attrs}, nil
}

func (Lock) State(payload []byte) (Update, error) {
	var m wire.LockStateResponse
	if err := decode(payload, &m); err != nil {
		return Update{}, err
	}
	return Update{Key: m.Key, Attributes: []hub.Attribute{hub.Lock(lockState(m.State))}}, nil
}

func lockState(s wire.LockState) hub.LockState {
	switch s {
	case wire.LockStateLocked:
		return hub.LockLocked
	case wire.LockStateUnlocked:
		return hub.LockUnlocked
	case wire.LockStateJammed:
		return hub.LockJammed
	case wire.LockStateLocking:
		return hub.LockLocking
	case wire.LockStateUnlocking:
		return hub.LockUnlocking
	default:
		return hub.LockUnknown
	}
}

// lockCommand maps a requested state to the command reaching it. Anything
// other than a locked or locking target unlocks.
func lockCommand(s hub.LockState) wire.LockCommand {
	switch s {
	case hub.LockLocked, hub.LockLocking:
		return wire.LockCommandLock
	default:
		return wire.LockCommandUnlock
	}
}

// Command locks unless a LockState attribute asks otherwise.
func (Lock) Command(key uint32, attrs []hub.Attribute) (wire.Message, []hub.Attribute, error) {
	req := &wire.LockCommandRequest{Key: key, Command: wire.LockCommandLock}
	var ignored []hub.Attribute
	for _, a := range attrs {
		switch a.Kind {
		case hub.KindText:
			req.HasCode = true
			req.Code = a.Text
		case hub.KindLockState:
			req.Command = lockCommand(a.LockState())
		default:
			ignored = append(ignored, a)
		}
	}
	return req, ignored, nil
}
