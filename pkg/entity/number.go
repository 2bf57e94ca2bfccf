package entity

import (
	"github.com/igloo-home/esphome-go/pkg/hub"
	"github.com/igloo-home/esphome-go/pkg/wire"
)

// Number translates numeric inputs.
type Number struct{}

func (Number) EntityType() wire.EntityType { return wire.EntityNumber }

func (Number) Describe(payload []byte) (Description, error) {
	var m wire.ListEntitiesNumberResponse
	if err := decode(payload, &m); err != nil {
		return Description{}, err
	}
	attrs := make([]hub.Attribute, 0, 8)
	attrs = addEntityCategory(attrs, m.EntityCategory)
	attrs = append(attrs, hub.Number(numberMode(m.Mode)))
	attrs = addIcon(attrs, m.Icon)
	attrs = addDeviceClass(attrs, m.DeviceClass)
	attrs = append(attrs,
		hub.Min(float64(m.MinValue)),
		hub.Max(float64(m.MaxValue)),
	)
	if m.Step > 0 {
		attrs = append(attrs, hub.Step(float64(m.Step)))
	}
	attrs = addUnit(attrs, m.UnitOfMeasurement)
	return Description{Header: m.EntityHeader, Attributes: attrs}, nil
}

func numberMode(m wire.NumberMode) hub.NumberMode {
	switch m {
	case wire.NumberModeBox:
		return hub.NumberModeBox
	case wire.NumberModeSlider:
		return hub.NumberModeSlider
	default:
		return hub.NumberModeAuto
	}
}

func (Number) State(payload []byte) (Update, error) {
	var m wire.NumberStateResponse
	if err := decode(payload, &m); err != nil {
		return Update{}, err
	}
	return Update{
		Key:        m.Key,
		Attributes: []hub.Attribute{hub.Real(float64(m.State))},
		Missing:    m.MissingState,
	}, nil
}

func (Number) Command(key uint32, attrs []hub.Attribute) (wire.Message, []hub.Attribute, error) {
	req := &wire.NumberCommandRequest{Key: key}
	var ignored []hub.Attribute
	for _, a := range attrs {
		if a.Kind == hub.KindReal {
			req.State = float32(a.Float)
			continue
		}
		ignored = append(ignored, a)
	}
	return req, ignored, nil
}

// Select translates option pickers.
type Select struct{}

func (Select) EntityType() wire.EntityType { return wire.EntitySelect }

func (Select) Describe(payload []byte) (Description, error) {
	var m wire.ListEntitiesSelectResponse
	if err := decode(payload, &m); err != nil {
		return Description{}, err
	}
	attrs := make([]hub.Attribute, 0, 4)
	attrs = addEntityCategory(attrs, m.EntityCategory)
	attrs = addIcon(attrs, m.Icon)
	attrs = append(attrs, hub.TextSelect(), hub.TextList(m.Options))
	return Description{Header: m.EntityHeader, Attributes: attrs}, nil
}

func (Select) State(payload []byte) (Update, error) {
	var m wire.SelectStateResponse
	if err := decode(payload, &m); err != nil {
		return Update{}, err
	}
	return Update{
		Key:        m.Key,
		Attributes: []hub.Attribute{hub.Text(m.State)},
		Missing:    m.MissingState,
	}, nil
}

func (Select) Command(key uint32, attrs []hub.Attribute) (wire.Message, []hub.Attribute, error) {
	req := &wire.SelectCommandRequest{Key: key}
	var ignored []hub.Attribute
	for _, a := range attrs {
		if a.Kind == hub.KindText {
			req.State = a.Text
			continue
		}
		ignored = append(ignored, a)
	}
	return req, ignored, nil
}
