package entity

import (
	"github.com/igloo-home/esphome-go/pkg/hub"
	"github.com/igloo-home/esphome-go/pkg/wire"
)

// Siren translates sirens and chimes. A Text write picks the tone and an
// Integer write sets the duration in seconds.
type Siren struct{}

func (Siren) EntityType() wire.EntityType { return wire.EntitySiren }

func (Siren) Describe(payload []byte) (Description, error) {
	var m wire.ListEntitiesSirenResponse
	if err := decode(payload, &m); err != nil {
		return Description{}, err
	}
	attrs := []hub.Attribute{hub.Siren()}
	attrs = addEntityCategory(attrs, m.EntityCategory)
	attrs = addIcon(attrs, m.Icon)
	if len(m.Tones) > 0 {
		attrs = append(attrs, hub.TextSelect(), hub.TextList(m.Tones))
	}
	return Description{Header: m.EntityHeader, Attributes: attrs}, nil
}

func (Siren) State(payload []byte) (Update, error) {
	var m wire.SirenStateResponse
	if err := decode(payload, &m); err != nil {
		return Update{}, err
	}
	return Update{Key: m.Key, Attributes: []hub.Attribute{hub.Bool(m.State)}}, nil
}

func (Siren) Command(key uint32, attrs []hub.Attribute) (wire.Message, []hub.Attribute, error) {
	req := &wire.SirenCommandRequest{Key: key}
	var ignored []hub.Attribute
	for _, a := range attrs {
		switch a.Kind {
		case hub.KindSwitch, hub.KindBool:
			req.HasState = true
			req.State = a.Bool
		case hub.KindText:
			req.HasTone = true
			req.Tone = a.Text
		case hub.KindVolume:
			req.HasVolume = true
			req.Volume = float32(a.Float)
		case hub.KindInteger:
			if a.Int < 0 {
				ignored = append(ignored, a)
				continue
			}
			req.HasDuration = true
			req.Duration = uint32(a.Int)
		default:
			ignored = append(ignored, a)
		}
	}
	return req, ignored, nil
}
