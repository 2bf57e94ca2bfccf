package entity

import (
	"math"

	"github.com/igloo-home/esphome-go/pkg/hub"
	"github.com/igloo-home/esphome-go/pkg/wire"
)

func addEntityCategory(attrs []hub.Attribute, c wire.EntityCategory) []hub.Attribute {
	switch c {
	case wire.EntityCategoryConfig:
		return append(attrs, hub.Config())
	case wire.EntityCategoryDiagnostic:
		return append(attrs, hub.Diagnostic())
	}
	return attrs
}

func addIcon(attrs []hub.Attribute, icon string) []hub.Attribute {
	if icon == "" {
		return attrs
	}
	return append(attrs, hub.Icon(icon))
}

func addUnit(attrs []hub.Attribute, unit string) []hub.Attribute {
	if unit == "" {
		return attrs
	}
	return append(attrs, hub.Unit(unit))
}

func addDeviceClass(attrs []hub.Attribute, class string) []hub.Attribute {
	if class == "" {
		return attrs
	}
	return append(attrs, hub.DeviceClass(class))
}

func addStateClass(attrs []hub.Attribute, c wire.SensorStateClass) []hub.Attribute {
	switch c {
	case wire.StateClassMeasurement:
		return append(attrs, hub.StateClass(hub.StateClassMeasurement))
	case wire.StateClassTotalIncreasing:
		return append(attrs, hub.StateClass(hub.StateClassTotalIncreasing))
	case wire.StateClassTotal:
		return append(attrs, hub.StateClass(hub.StateClassTotal))
	}
	return attrs
}

// KelvinToMireds converts a colour temperature in kelvin to mireds.
func KelvinToMireds(kelvin int64) float64 {
	if kelvin <= 0 {
		return 0
	}
	return 1_000_000 / float64(kelvin)
}

// MiredsToKelvin converts mireds to kelvin, rounded to the nearest degree.
func MiredsToKelvin(mireds float64) int64 {
	if mireds <= 0 {
		return 0
	}
	return int64(math.Round(1_000_000 / mireds))
}
