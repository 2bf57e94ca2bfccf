package entity

import (
	"github.com/igloo-home/esphome-go/pkg/hub"
	"github.com/igloo-home/esphome-go/pkg/wire"
)

// AlarmControlPanel translates alarm panels. A Text attribute written by
// the hub is sent as the panel code.
type AlarmControlPanel struct{}

func (AlarmControlPanel) EntityType() wire.EntityType { return wire.EntityAlarmControlPanel }

func (AlarmControlPanel) Describe(payload []byte) (Description, error) {
	var m wire.ListEntitiesAlarmControlPanelResponse
	if err := decode(payload, &m); err != nil {
		return Description{}, err
	}
	attrs := make([]hub.Attribute, 0, 2)
	attrs = addEntityCategory(attrs, m.EntityCategory)
	attrs = addIcon(attrs, m.Icon)
	return Description{Header: m.EntityHeader, Attributes: attrs}, nil
}

func (AlarmControlPanel) State(payload []byte) (Update, error) {
	var m wire.AlarmControlPanelStateResponse
	if err := decode(payload, &m); err != nil {
		return Update{}, err
	}
	return Update{Key: m.Key, Attributes: []hub.Attribute{hub.Alarm(alarmState(m.State))}}, nil
}

// Wire states share their order with the hub, custom bypass included.
func alarmState(s wire.AlarmControlPanelState) hub.AlarmState {
	if s < wire.AlarmStateDisarmed || s > wire.AlarmStateTriggered {
		return hub.AlarmDisarmed
	}
	return hub.AlarmState(s)
}

// alarmCommand maps a requested state to the command reaching it.
func alarmCommand(s hub.AlarmState) wire.AlarmControlPanelCommand {
	switch s {
	case hub.AlarmArmedHome, hub.AlarmArming:
		return wire.AlarmCommandArmHome
	case hub.AlarmArmedAway:
		return wire.AlarmCommandArmAway
	case hub.AlarmArmedNight:
		return wire.AlarmCommandArmNight
	case hub.AlarmArmedVacation:
		return wire.AlarmCommandArmVacation
	case hub.AlarmArmedCustom:
		return wire.AlarmCommandArmCustomBypass
	case hub.AlarmTriggered:
		return wire.AlarmCommandTrigger
	default:
		return wire.AlarmCommandDisarm
	}
}

// Command disarms unless an AlarmState attribute asks otherwise.
func (AlarmControlPanel) Command(key uint32, attrs []hub.Attribute) (wire.Message, []hub.Attribute, error) {
	req := &wire.AlarmControlPanelCommandRequest{Key: key, Command: wire.AlarmCommandDisarm}
	var ignored []hub.Attribute
	for _, a := range attrs {
		switch a.Kind {
		case hub.KindText:
			req.Code = a.Text
		case hub.KindAlarmState:
			req.Command = alarmCommand(a.AlarmState())
		default:
			ignored = append(ignored, a)
		}
	}
	return req, ignored, nil
}
