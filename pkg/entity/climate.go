package entity

import (
	"github.com/igloo-home/esphome-go/pkg/hub"
	"github.com/igloo-home/esphome-go/pkg/wire"
)

// Climate translates thermostats and air conditioners. Presets are
// exchanged as Text: the built-in preset names in upper case, anything else
// as a custom preset.
type Climate struct{}

func (Climate) EntityType() wire.EntityType { return wire.EntityClimate }

func (Climate) Describe(payload []byte) (Description, error) {
	var m wire.ListEntitiesClimateResponse
	if err := decode(payload, &m); err != nil {
		return Description{}, err
	}
	attrs := make([]hub.Attribute, 0, 7)
	attrs = addEntityCategory(attrs, m.EntityCategory)
	attrs = addIcon(attrs, m.Icon)
	if m.VisualMaxTemperature > m.VisualMinTemperature {
		attrs = append(attrs,
			hub.Min(float64(m.VisualMinTemperature)),
			hub.Max(float64(m.VisualMaxTemperature)),
		)
	}
	if m.VisualTargetTemperatureStep > 0 {
		attrs = append(attrs, hub.Step(float64(m.VisualTargetTemperatureStep)))
	}

	presets := make([]string, 0, len(m.SupportedPresets)+len(m.SupportedCustomPresets))
	for _, p := range m.SupportedPresets {
		presets = append(presets, p.String())
	}
	presets = append(presets, m.SupportedCustomPresets...)
	if len(presets) > 0 {
		attrs = append(attrs, hub.TextSelect(), hub.TextList(presets))
	}
	return Description{Header: m.EntityHeader, Attributes: attrs}, nil
}

func (Climate) State(payload []byte) (Update, error) {
	var m wire.ClimateStateResponse
	if err := decode(payload, &m); err != nil {
		return Update{}, err
	}
	attrs := []hub.Attribute{
		hub.Real(float64(m.TargetTemperature)),
		hub.Climate(climateMode(m.Mode)),
		hub.Speed(climateFanSpeed(m.FanMode)),
		hub.Oscillation(climateSwing(m.SwingMode)),
	}
	switch {
	case m.CustomPreset != "":
		attrs = append(attrs, hub.Text(m.CustomPreset))
	case m.Preset != wire.ClimatePresetNone:
		attrs = append(attrs, hub.Text(m.Preset.String()))
	}
	return Update{Key: m.Key, Attributes: attrs}, nil
}

// Wire modes 0 to 6 share their order with the hub.
func climateMode(m wire.ClimateMode) hub.ClimateMode {
	if m < wire.ClimateModeOff || m > wire.ClimateModeAuto {
		return hub.ClimateOff
	}
	return hub.ClimateMode(m)
}

func climateModeCommand(m hub.ClimateMode) wire.ClimateMode {
	if m == hub.ClimateEco {
		return wire.ClimateModeAuto
	}
	return wire.ClimateMode(m)
}

// Wire fan modes list on before off; the rest share the hub order.
func climateFanSpeed(f wire.ClimateFanMode) hub.FanSpeed {
	switch {
	case f == wire.ClimateFanOn:
		return hub.FanOn
	case f == wire.ClimateFanOff:
		return hub.FanOff
	case f > wire.ClimateFanOff && f <= wire.ClimateFanQuiet:
		return hub.FanSpeed(f)
	default:
		return hub.FanAuto
	}
}

func climateFanCommand(s hub.FanSpeed) wire.ClimateFanMode {
	switch s {
	case hub.FanOn:
		return wire.ClimateFanOn
	case hub.FanOff:
		return wire.ClimateFanOff
	default:
		return wire.ClimateFanMode(s)
	}
}

func climateSwing(s wire.ClimateSwingMode) hub.FanOscillation {
	switch s {
	case wire.ClimateSwingBoth:
		return hub.OscillationBoth
	case wire.ClimateSwingVertical:
		return hub.OscillationVertical
	case wire.ClimateSwingHorizontal:
		return hub.OscillationHorizontal
	default:
		return hub.OscillationOff
	}
}

func climateSwingCommand(o hub.FanOscillation) wire.ClimateSwingMode {
	switch o {
	case hub.OscillationOn, hub.OscillationBoth:
		return wire.ClimateSwingBoth
	case hub.OscillationVertical:
		return wire.ClimateSwingVertical
	case hub.OscillationHorizontal:
		return wire.ClimateSwingHorizontal
	default:
		return wire.ClimateSwingOff
	}
}

func climatePreset(name string) (wire.ClimatePreset, bool) {
	for p := wire.ClimatePresetNone; p <= wire.ClimatePresetActivity; p++ {
		if p.String() == name {
			return p, true
		}
	}
	return 0, false
}

func (Climate) Command(key uint32, attrs []hub.Attribute) (wire.Message, []hub.Attribute, error) {
	req := &wire.ClimateCommandRequest{Key: key}
	var ignored []hub.Attribute
	for _, a := range attrs {
		switch a.Kind {
		case hub.KindClimateMode:
			req.HasMode = true
			req.Mode = climateModeCommand(a.ClimateMode())
		case hub.KindReal:
			req.HasTargetTemperature = true
			req.TargetTemperature = float32(a.Float)
		case hub.KindFanSpeed:
			req.HasFanMode = true
			req.FanMode = climateFanCommand(a.FanSpeed())
		case hub.KindFanOscillation:
			req.HasSwingMode = true
			req.SwingMode = climateSwingCommand(a.FanOscillation())
		case hub.KindText:
			if p, ok := climatePreset(a.Text); ok {
				req.HasPreset = true
				req.Preset = p
				continue
			}
			req.HasCustomPreset = true
			req.CustomPreset = a.Text
		default:
			ignored = append(ignored, a)
		}
	}
	return req, ignored, nil
}
