package entity

import (
	"strings"

	"github.com/igloo-home/esphome-go/pkg/hub"
	"github.com/igloo-home/esphome-go/pkg/wire"
)

// FirmwareUpdate translates update entities. The release details are
// folded into one Text attribute of comma separated key:value pairs.
type FirmwareUpdate struct{}

func (FirmwareUpdate) EntityType() wire.EntityType { return wire.EntityUpdate }

func (FirmwareUpdate) Describe(payload []byte) (Description, error) {
	var m wire.ListEntitiesUpdateResponse
	if err := decode(payload, &m); err != nil {
		return Description{}, err
	}
	desc := describeInput(m.EntityHeader, m.EntityCategory, m.Icon)
	desc.Attributes = addDeviceClass(desc.Attributes, m.DeviceClass)
	return desc, nil
}

func (FirmwareUpdate) State(payload []byte) (Update, error) {
	var m wire.UpdateStateResponse
	if err := decode(payload, &m); err != nil {
		return Update{}, err
	}
	release := strings.Join([]string{
		"title:" + m.Title,
		"current_version:" + m.CurrentVersion,
		"latest_version:" + m.LatestVersion,
		"release_summary:" + m.ReleaseSummary,
		"release_url:" + m.ReleaseURL,
	}, ",")
	attrs := []hub.Attribute{hub.Bool(m.InProgress), hub.Text(release)}
	if m.HasProgress {
		attrs = append(attrs, hub.Real(float64(m.Progress)))
	}
	return Update{Key: m.Key, Attributes: attrs, Missing: m.MissingState}, nil
}

// Command installs the latest release. Writing Bool false only checks for
// a newer one.
func (FirmwareUpdate) Command(key uint32, attrs []hub.Attribute) (wire.Message, []hub.Attribute, error) {
	req := &wire.UpdateCommandRequest{Key: key, Command: wire.UpdateCommandUpdate}
	var ignored []hub.Attribute
	for _, a := range attrs {
		if a.Kind == hub.KindBool {
			req.Command = wire.UpdateCommandCheck
			if a.Bool {
				req.Command = wire.UpdateCommandUpdate
			}
			continue
		}
		ignored = append(ignored, a)
	}
	return req, ignored, nil
}

// Event translates device-fired events. Only discovery is translated.
type Event struct{}

func (Event) EntityType() wire.EntityType { return wire.EntityEvent }

func (Event) Describe(payload []byte) (Description, error) {
	var m wire.ListEntitiesEventResponse
	if err := decode(payload, &m); err != nil {
		return Description{}, err
	}
	desc := describeInput(m.EntityHeader, m.EntityCategory, m.Icon)
	desc.Attributes = addDeviceClass(desc.Attributes, m.DeviceClass)
	if len(m.EventTypes) > 0 {
		desc.Attributes = append(desc.Attributes, hub.TextList(m.EventTypes))
	}
	return desc, nil
}

func (Event) State([]byte) (Update, error) {
	return Update{}, ErrNoState
}

func (Event) Command(uint32, []hub.Attribute) (wire.Message, []hub.Attribute, error) {
	return nil, nil, ErrNoCommand
}

// Camera translates cameras. Image streaming is not bridged.
type Camera struct{}

func (Camera) EntityType() wire.EntityType { return wire.EntityCamera }

func (Camera) Describe(payload []byte) (Description, error) {
	var m wire.ListEntitiesCameraResponse
	if err := decode(payload, &m); err != nil {
		return Description{}, err
	}
	return describeInput(m.EntityHeader, m.EntityCategory, m.Icon), nil
}

func (Camera) State([]byte) (Update, error) {
	return Update{}, ErrNoState
}

func (Camera) Command(uint32, []hub.Attribute) (wire.Message, []hub.Attribute, error) {
	return nil, nil, ErrNoCommand
}
