package entity

import (
	"github.com/igloo-home/esphome-go/pkg/hub"
	"github.com/igloo-home/esphome-go/pkg/wire"
)

// Light translates lights. Colour temperatures are exchanged with the hub
// in kelvin and with the device in mireds.
type Light struct{}

func (Light) EntityType() wire.EntityType { return wire.EntityLight }

func (Light) Describe(payload []byte) (Description, error) {
	var m wire.ListEntitiesLightResponse
	if err := decode(payload, &m); err != nil {
		return Description{}, err
	}
	attrs := make([]hub.Attribute, 0, 6)
	attrs = addEntityCategory(attrs, m.EntityCategory)
	attrs = addIcon(attrs, m.Icon)
	attrs = append(attrs, hub.Light())

	// Kelvin bounds are inverted relative to mireds.
	if m.MaxMireds > 0 {
		attrs = append(attrs, hub.Min(float64(MiredsToKelvin(float64(m.MaxMireds)))))
	}
	if m.MinMireds > 0 {
		attrs = append(attrs, hub.Max(float64(MiredsToKelvin(float64(m.MinMireds)))))
	}
	if len(m.Effects) > 0 {
		attrs = append(attrs, hub.TextList(m.Effects))
	}
	return Description{Header: m.EntityHeader, Attributes: attrs}, nil
}

func (Light) State(payload []byte) (Update, error) {
	var m wire.LightStateResponse
	if err := decode(payload, &m); err != nil {
		return Update{}, err
	}

	attrs := make([]hub.Attribute, 0, 6)
	attrs = append(attrs,
		hub.RGB(float64(m.Red), float64(m.Green), float64(m.Blue)),
		hub.Dimmer(float64(m.Brightness)),
		hub.Switch(m.State),
	)
	if m.ColorTemperature > 0 {
		attrs = append(attrs, hub.ColorTemperature(MiredsToKelvin(float64(m.ColorTemperature))))
	}
	switch {
	case m.ColorMode.Has(wire.CapabilityRGB):
		attrs = append(attrs, hub.Mode(hub.ColorModeRGB))
	case m.ColorMode.Has(wire.CapabilityColorTemperature):
		attrs = append(attrs, hub.Mode(hub.ColorModeTemperature))
	}
	if m.Effect != "" {
		attrs = append(attrs, hub.Effect(m.Effect))
	}
	return Update{Key: m.Key, Attributes: attrs}, nil
}

// Command applies every attribute with its Has flag set. Transitions are
// always immediate.
func (Light) Command(key uint32, attrs []hub.Attribute) (wire.Message, []hub.Attribute, error) {
	req := &wire.LightCommandRequest{
		Key:                 key,
		HasTransitionLength: true,
	}

	var ignored []hub.Attribute
	for _, a := range attrs {
		switch a.Kind {
		case hub.KindColor:
			req.HasRGB = true
			req.Red = float32(a.Color.R)
			req.Green = float32(a.Color.G)
			req.Blue = float32(a.Color.B)
		case hub.KindDimmer:
			req.HasBrightness = true
			req.Brightness = float32(a.Float)
			req.HasState = true
			req.State = a.Float > 0
		case hub.KindSwitch:
			req.HasState = true
			req.State = a.Bool
		case hub.KindColorTemperature:
			req.HasColorTemperature = true
			req.ColorTemperature = float32(KelvinToMireds(a.Int))
		case hub.KindColorMode:
			switch a.ColorMode() {
			case hub.ColorModeRGB:
				req.HasColorMode = true
				req.ColorMode = wire.ColorModeRGB
			case hub.ColorModeTemperature:
				req.HasColorMode = true
				req.ColorMode = wire.ColorModeColorTemperature
			default:
				ignored = append(ignored, a)
			}
		case hub.KindEffect:
			req.HasEffect = true
			req.Effect = a.Text
		default:
			ignored = append(ignored, a)
		}
	}
	return req, ignored, nil
}
