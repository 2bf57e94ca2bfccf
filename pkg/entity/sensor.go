package entity

import (
	"github.com/igloo-home/esphome-go/pkg/hub"
	"github.com/igloo-home/esphome-go/pkg/wire"
)

// BinarySensor translates binary sensors. They accept no commands.
type BinarySensor struct{}

func (BinarySensor) EntityType() wire.EntityType { return wire.EntityBinarySensor }

func (BinarySensor) Describe(payload []byte) (Description, error) {
	var m wire.ListEntitiesBinarySensorResponse
	if err := decode(payload, &m); err != nil {
		return Description{}, err
	}
	attrs := []hub.Attribute{hub.Sensor()}
	attrs = addEntityCategory(attrs, m.EntityCategory)
	attrs = addIcon(attrs, m.Icon)
	attrs = addDeviceClass(attrs, m.DeviceClass)
	return Description{Header: m.EntityHeader, Attributes: attrs}, nil
}

func (BinarySensor) State(payload []byte) (Update, error) {
	var m wire.BinarySensorStateResponse
	if err := decode(payload, &m); err != nil {
		return Update{}, err
	}
	return Update{
		Key:        m.Key,
		Attributes: []hub.Attribute{hub.Bool(m.State)},
		Missing:    m.MissingState,
	}, nil
}

func (BinarySensor) Command(uint32, []hub.Attribute) (wire.Message, []hub.Attribute, error) {
	return nil, nil, ErrNoCommand
}

// Sensor translates numeric sensors. They accept no commands.
type Sensor struct{}

func (Sensor) EntityType() wire.EntityType { return wire.EntitySensor }

func (Sensor) Describe(payload []byte) (Description, error) {
	var m wire.ListEntitiesSensorResponse
	if err := decode(payload, &m); err != nil {
		return Description{}, err
	}
	attrs := make([]hub.Attribute, 0, 7)
	attrs = append(attrs, hub.Sensor())
	attrs = addEntityCategory(attrs, m.EntityCategory)
	attrs = addStateClass(attrs, m.StateClass)
	attrs = addIcon(attrs, m.Icon)
	attrs = addDeviceClass(attrs, m.DeviceClass)
	attrs = addUnit(attrs, m.UnitOfMeasurement)
	attrs = append(attrs, hub.AccuracyDecimals(int64(m.AccuracyDecimals)))
	return Description{Header: m.EntityHeader, Attributes: attrs}, nil
}

func (Sensor) State(payload []byte) (Update, error) {
	var m wire.SensorStateResponse
	if err := decode(payload, &m); err != nil {
		return Update{}, err
	}
	return Update{
		Key:        m.Key,
		Attributes: []hub.Attribute{hub.Real(float64(m.State))},
		Missing:    m.MissingState,
	}, nil
}

func (Sensor) Command(uint32, []hub.Attribute) (wire.Message, []hub.Attribute, error) {
	return nil, nil, ErrNoCommand
}

// TextSensor translates text sensors. They accept no commands.
type TextSensor struct{}

func (TextSensor) EntityType() wire.EntityType { return wire.EntityTextSensor }

func (TextSensor) Describe(payload []byte) (Description, error) {
	var m wire.ListEntitiesTextSensorResponse
	if err := decode(payload, &m); err != nil {
		return Description{}, err
	}
	attrs := []hub.Attribute{hub.Sensor()}
	attrs = addEntityCategory(attrs, m.EntityCategory)
	attrs = addIcon(attrs, m.Icon)
	attrs = addDeviceClass(attrs, m.DeviceClass)
	return Description{Header: m.EntityHeader, Attributes: attrs}, nil
}

func (TextSensor) State(payload []byte) (Update, error) {
	var m wire.TextSensorStateResponse
	if err := decode(payload, &m); err != nil {
		return Update{}, err
	}
	return Update{
		Key:        m.Key,
		Attributes: []hub.Attribute{hub.Text(m.State)},
		Missing:    m.MissingState,
	}, nil
}

func (TextSensor) Command(uint32, []hub.Attribute) (wire.Message, []hub.Attribute, error) {
	return nil, nil, ErrNoCommand
}
