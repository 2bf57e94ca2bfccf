package entity

import (
	"github.com/igloo-home/esphome-go/pkg/hub"
	"github.com/igloo-home/esphome-go/pkg/wire"
)

// Cover translates blinds, shutters and garage doors. Positions and tilts
// are in [0, 1] on both sides.
type Cover struct{}

func (Cover) EntityType() wire.EntityType { return wire.EntityCover }

func (Cover) Describe(payload []byte) (Description, error) {
	var m wire.ListEntitiesCoverResponse
	if err := decode(payload, &m); err != nil {
		return Description{}, err
	}
	attrs := []hub.Attribute{hub.Cover()}
	attrs = addEntityCategory(attrs, m.EntityCategory)
	attrs = addIcon(attrs, m.Icon)
	attrs = addDeviceClass(attrs, m.DeviceClass)
	return Description{Header: m.EntityHeader, Attributes: attrs}, nil
}

func (Cover) State(payload []byte) (Update, error) {
	var m wire.CoverStateResponse
	if err := decode(payload, &m); err != nil {
		return Update{}, err
	}
	return Update{Key: m.Key, Attributes: []hub.Attribute{
		hub.Position(float64(m.Position)),
		hub.Tilt(float64(m.Tilt)),
		hub.CoverStatus(coverState(m.CurrentOperation)),
	}}, nil
}

func coverState(op wire.CoverOperation) hub.CoverState {
	switch op {
	case wire.CoverOperationOpening:
		return hub.CoverOpening
	case wire.CoverOperationClosing:
		return hub.CoverClosing
	default:
		return hub.CoverIdle
	}
}

// coverCommand maps a requested state to the legacy command reaching it.
func coverCommand(s hub.CoverState) wire.LegacyCoverCommand {
	switch s {
	case hub.CoverOpen, hub.CoverOpening:
		return wire.LegacyCoverOpen
	case hub.CoverClosed, hub.CoverClosing:
		return wire.LegacyCoverClose
	default:
		return wire.LegacyCoverStop
	}
}

func (Cover) Command(key uint32, attrs []hub.Attribute) (wire.Message, []hub.Attribute, error) {
	req := &wire.CoverCommandRequest{Key: key}
	var ignored []hub.Attribute
	for _, a := range attrs {
		switch a.Kind {
		case hub.KindPosition:
			req.HasPosition = true
			req.Position = float32(a.Float)
		case hub.KindTilt:
			req.HasTilt = true
			req.Tilt = float32(a.Float)
		case hub.KindCoverState:
			req.HasLegacyCommand = true
			req.LegacyCommand = coverCommand(a.CoverState())
		default:
			ignored = append(ignored, a)
		}
	}
	return req, ignored, nil
}

// Valve translates water and gas valves.
type Valve struct{}

func (Valve) EntityType() wire.EntityType { return wire.EntityValve }

func (Valve) Describe(payload []byte) (Description, error) {
	var m wire.ListEntitiesValveResponse
	if err := decode(payload, &m); err != nil {
		return Description{}, err
	}
	attrs := []hub.Attribute{hub.Valve()}
	attrs = addEntityCategory(attrs, m.EntityCategory)
	attrs = addIcon(attrs, m.Icon)
	attrs = addDeviceClass(attrs, m.DeviceClass)
	return Description{Header: m.EntityHeader, Attributes: attrs}, nil
}

func (Valve) State(payload []byte) (Update, error) {
	var m wire.ValveStateResponse
	if err := decode(payload, &m); err != nil {
		return Update{}, err
	}
	return Update{Key: m.Key, Attributes: []hub.Attribute{
		hub.Position(float64(m.Position)),
		hub.ValveStatus(valveState(m.CurrentOperation)),
	}}, nil
}

func valveState(op wire.ValveOperation) hub.ValveState {
	switch op {
	case wire.ValveOperationOpening:
		return hub.ValveOpening
	case wire.ValveOperationClosing:
		return hub.ValveClosing
	default:
		return hub.ValveIdle
	}
}

// Command moves the valve to a Position. Writing the idle state stops it;
// opening and closing are only reachable through a position.
func (Valve) Command(key uint32, attrs []hub.Attribute) (wire.Message, []hub.Attribute, error) {
	req := &wire.ValveCommandRequest{Key: key}
	var ignored []hub.Attribute
	for _, a := range attrs {
		switch {
		case a.Kind == hub.KindPosition:
			req.HasPosition = true
			req.Position = float32(a.Float)
		case a.Kind == hub.KindValveState && a.ValveState() == hub.ValveIdle:
			req.Stop = true
		default:
			ignored = append(ignored, a)
		}
	}
	return req, ignored, nil
}
