package entity

import (
	"github.com/igloo-home/esphome-go/pkg/hub"
	"github.com/igloo-home/esphome-go/pkg/wire"
)

// Switch translates on/off switches.
type Switch struct{}

func (Switch) EntityType() wire.EntityType { return wire.EntitySwitch }

func (Switch) Describe(payload []byte) (Description, error) {
	var m wire.ListEntitiesSwitchResponse
	if err := decode(payload, &m); err != nil {
		return Description{}, err
	}
	attrs := make([]hub.Attribute, 0, 3)
	attrs = addEntityCategory(attrs, m.EntityCategory)
	attrs = addIcon(attrs, m.Icon)
	attrs = addDeviceClass(attrs, m.DeviceClass)
	return Description{Header: m.EntityHeader, Attributes: attrs}, nil
}

func (Switch) State(payload []byte) (Update, error) {
	var m wire.SwitchStateResponse
	if err := decode(payload, &m); err != nil {
		return Update{}, err
	}
	return Update{Key: m.Key, Attributes: []hub.Attribute{hub.Switch(m.State)}}, nil
}

// Command turns the last Switch attribute into the requested state.
func (Switch) Command(key uint32, attrs []hub.Attribute) (wire.Message, []hub.Attribute, error) {
	req := &wire.SwitchCommandRequest{Key: key}
	var ignored []hub.Attribute
	for _, a := range attrs {
		if a.Kind == hub.KindSwitch {
			req.State = a.Bool
			continue
		}
		ignored = append(ignored, a)
	}
	return req, ignored, nil
}

// Button translates stateless buttons. Any write presses the button.
type Button struct{}

func (Button) EntityType() wire.EntityType { return wire.EntityButton }

func (Button) Describe(payload []byte) (Description, error) {
	var m wire.ListEntitiesButtonResponse
	if err := decode(payload, &m); err != nil {
		return Description{}, err
	}
	attrs := make([]hub.Attribute, 0, 3)
	attrs = addEntityCategory(attrs, m.EntityCategory)
	attrs = addIcon(attrs, m.Icon)
	attrs = addDeviceClass(attrs, m.DeviceClass)
	return Description{Header: m.EntityHeader, Attributes: attrs}, nil
}

func (Button) State([]byte) (Update, error) {
	return Update{}, ErrNoState
}

func (Button) Command(key uint32, attrs []hub.Attribute) (wire.Message, []hub.Attribute, error) {
	return &wire.ButtonCommandRequest{Key: key}, attrs, nil
}
