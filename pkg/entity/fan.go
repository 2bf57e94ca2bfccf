package entity

import (
	"github.com/igloo-home/esphome-go/pkg/hub"
	"github.com/igloo-home/esphome-go/pkg/wire"
)

// Fan translates fans. Speed levels are exchanged as Integer attributes
// between 1 and the advertised speed count.
type Fan struct{}

func (Fan) EntityType() wire.EntityType { return wire.EntityFan }

func (Fan) Describe(payload []byte) (Description, error) {
	var m wire.ListEntitiesFanResponse
	if err := decode(payload, &m); err != nil {
		return Description{}, err
	}
	attrs := make([]hub.Attribute, 0, 4)
	attrs = addEntityCategory(attrs, m.EntityCategory)
	attrs = addIcon(attrs, m.Icon)
	if m.SupportedSpeedCount > 0 {
		attrs = append(attrs, hub.Max(float64(m.SupportedSpeedCount)))
	}
	if len(m.SupportedPresetModes) > 0 {
		attrs = append(attrs, hub.TextList(m.SupportedPresetModes))
	}
	return Description{Header: m.EntityHeader, Attributes: attrs}, nil
}

func (Fan) State(payload []byte) (Update, error) {
	var m wire.FanStateResponse
	if err := decode(payload, &m); err != nil {
		return Update{}, err
	}
	osc := hub.OscillationOff
	if m.Oscillating {
		osc = hub.OscillationOn
	}
	dir := hub.FanForward
	if m.Direction == wire.FanDirectionReverse {
		dir = hub.FanReverse
	}
	attrs := []hub.Attribute{
		hub.Switch(m.State),
		hub.Speed(fanSpeed(m.Speed)),
		hub.Integer(int64(m.SpeedLevel)),
		hub.Direction(dir),
		hub.Oscillation(osc),
	}
	if m.PresetMode != "" {
		attrs = append(attrs, hub.Text(m.PresetMode))
	}
	return Update{Key: m.Key, Attributes: attrs}, nil
}

func fanSpeed(s wire.FanSpeed) hub.FanSpeed {
	switch s {
	case wire.FanSpeedMedium:
		return hub.FanMedium
	case wire.FanSpeedHigh:
		return hub.FanHigh
	default:
		return hub.FanLow
	}
}

// Command applies each attribute with its Has flag. A FanSpeed of off or
// on switches the fan; other named speeds have no fan equivalent.
func (Fan) Command(key uint32, attrs []hub.Attribute) (wire.Message, []hub.Attribute, error) {
	req := &wire.FanCommandRequest{Key: key}
	var ignored []hub.Attribute
	for _, a := range attrs {
		switch a.Kind {
		case hub.KindSwitch:
			req.HasState = true
			req.State = a.Bool
		case hub.KindFanSpeed:
			switch a.FanSpeed() {
			case hub.FanOff:
				req.HasState, req.State = true, false
			case hub.FanOn:
				req.HasState, req.State = true, true
			default:
				ignored = append(ignored, a)
			}
		case hub.KindInteger:
			req.HasSpeedLevel = true
			req.SpeedLevel = int32(a.Int)
		case hub.KindFanOscillation:
			req.HasOscillating = true
			req.Oscillating = a.FanOscillation() != hub.OscillationOff
		case hub.KindFanDirection:
			req.HasDirection = true
			req.Direction = wire.FanDirectionForward
			if a.FanDirection() == hub.FanReverse {
				req.Direction = wire.FanDirectionReverse
			}
		case hub.KindText:
			req.HasPresetMode = true
			req.PresetMode = a.Text
		default:
			ignored = append(ignored, a)
		}
	}
	return req, ignored, nil
}
