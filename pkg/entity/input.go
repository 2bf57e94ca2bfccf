package entity

import (
	"math"

	"github.com/igloo-home/esphome-go/pkg/hub"
	"github.com/igloo-home/esphome-go/pkg/wire"
)

func describeInput(h wire.EntityHeader, cat wire.EntityCategory, icon string) Description {
	attrs := make([]hub.Attribute, 0, 2)
	attrs = addEntityCategory(attrs, cat)
	attrs = addIcon(attrs, icon)
	return Description{Header: h, Attributes: attrs}
}

// Text translates free-form text inputs.
type Text struct{}

func (Text) EntityType() wire.EntityType { return wire.EntityText }

func (Text) Describe(payload []byte) (Description, error) {
	var m wire.ListEntitiesTextResponse
	if err := decode(payload, &m); err != nil {
		return Description{}, err
	}
	desc := describeInput(m.EntityHeader, m.EntityCategory, m.Icon)
	if m.MaxLength > 0 {
		desc.Attributes = append(desc.Attributes,
			hub.Min(float64(m.MinLength)),
			hub.Max(float64(m.MaxLength)),
		)
	}
	return desc, nil
}

func (Text) State(payload []byte) (Update, error) {
	var m wire.TextStateResponse
	if err := decode(payload, &m); err != nil {
		return Update{}, err
	}
	return Update{
		Key:        m.Key,
		Attributes: []hub.Attribute{hub.Text(m.State)},
		Missing:    m.MissingState,
	}, nil
}

func (Text) Command(key uint32, attrs []hub.Attribute) (wire.Message, []hub.Attribute, error) {
	req := &wire.TextCommandRequest{Key: key}
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

// Date translates calendar date inputs.
type Date struct{}

func (Date) EntityType() wire.EntityType { return wire.EntityDate }

func (Date) Describe(payload []byte) (Description, error) {
	var m wire.ListEntitiesDateResponse
	if err := decode(payload, &m); err != nil {
		return Description{}, err
	}
	return describeInput(m.EntityHeader, m.EntityCategory, m.Icon), nil
}

func (Date) State(payload []byte) (Update, error) {
	var m wire.DateStateResponse
	if err := decode(payload, &m); err != nil {
		return Update{}, err
	}
	return Update{
		Key:        m.Key,
		Attributes: []hub.Attribute{hub.Date(int(m.Year), int(m.Month), int(m.Day))},
		Missing:    m.MissingState,
	}, nil
}

func (Date) Command(key uint32, attrs []hub.Attribute) (wire.Message, []hub.Attribute, error) {
	req := &wire.DateCommandRequest{Key: key}
	var ignored []hub.Attribute
	for _, a := range attrs {
		d := a.Date
		if a.Kind != hub.KindDate || d.Year < 0 || d.Month < 0 || d.Day < 0 {
			ignored = append(ignored, a)
			continue
		}
		req.Year, req.Month, req.Day = uint32(d.Year), uint32(d.Month), uint32(d.Day)
	}
	return req, ignored, nil
}

// Time translates time-of-day inputs.
type Time struct{}

func (Time) EntityType() wire.EntityType { return wire.EntityTime }

func (Time) Describe(payload []byte) (Description, error) {
	var m wire.ListEntitiesTimeResponse
	if err := decode(payload, &m); err != nil {
		return Description{}, err
	}
	return describeInput(m.EntityHeader, m.EntityCategory, m.Icon), nil
}

func (Time) State(payload []byte) (Update, error) {
	var m wire.TimeStateResponse
	if err := decode(payload, &m); err != nil {
		return Update{}, err
	}
	return Update{
		Key:        m.Key,
		Attributes: []hub.Attribute{hub.Time(int(m.Hour), int(m.Minute), int(m.Second))},
		Missing:    m.MissingState,
	}, nil
}

func (Time) Command(key uint32, attrs []hub.Attribute) (wire.Message, []hub.Attribute, error) {
	req := &wire.TimeCommandRequest{Key: key}
	var ignored []hub.Attribute
	for _, a := range attrs {
		t := a.Time
		if a.Kind != hub.KindTime || t.Hour < 0 || t.Minute < 0 || t.Second < 0 {
			ignored = append(ignored, a)
			continue
		}
		req.Hour, req.Minute, req.Second = uint32(t.Hour), uint32(t.Minute), uint32(t.Second)
	}
	return req, ignored, nil
}

// DateTime translates date and time inputs. Instants are Unix seconds.
type DateTime struct{}

func (DateTime) EntityType() wire.EntityType { return wire.EntityDateTime }

func (DateTime) Describe(payload []byte) (Description, error) {
	var m wire.ListEntitiesDateTimeResponse
	if err := decode(payload, &m); err != nil {
		return Description{}, err
	}
	return describeInput(m.EntityHeader, m.EntityCategory, m.Icon), nil
}

func (DateTime) State(payload []byte) (Update, error) {
	var m wire.DateTimeStateResponse
	if err := decode(payload, &m); err != nil {
		return Update{}, err
	}
	return Update{
		Key:        m.Key,
		Attributes: []hub.Attribute{hub.Timestamp(int64(m.EpochSeconds))},
		Missing:    m.MissingState,
	}, nil
}

// Command ignores instants the device cannot represent.
func (DateTime) Command(key uint32, attrs []hub.Attribute) (wire.Message, []hub.Attribute, error) {
	req := &wire.DateTimeCommandRequest{Key: key}
	var ignored []hub.Attribute
	for _, a := range attrs {
		if a.Kind != hub.KindTimestamp || a.Int < 0 || a.Int > math.MaxUint32 {
			ignored = append(ignored, a)
			continue
		}
		req.EpochSeconds = uint32(a.Int)
	}
	return req, ignored, nil
}
