package hub

import (
	"fmt"
	"strconv"
	"strings"
)

// AttributeKind identifies what an Attribute describes and which of its
// value fields is meaningful.
type AttributeKind uint8

const (
	// Markers carry no value.
	KindConfig AttributeKind = iota + 1
	KindDiagnostic
	KindSensor
	KindLight
	KindTextSelect

	// Text-valued.
	KindIcon
	KindUnit
	KindDeviceClass
	KindText
	KindEffect

	// Boolean.
	KindSwitch
	KindBool

	// Float.
	KindReal
	KindDimmer
	KindMin
	KindMax
	KindStep

	// Integer.
	KindAccuracyDecimals
	KindColorTemperature

	// Enumerations, stored in Int.
	KindSensorStateClass
	KindColorMode
	KindLockState
	KindNumberMode

	KindColor
	KindTextList

	// Entity markers.
	KindCover
	KindValve
	KindSiren

	// Float.
	KindPosition
	KindTilt
	KindVolume

	// Boolean.
	KindMuted

	// Integer. Timestamps are Unix seconds.
	KindInteger
	KindTimestamp

	// Enumerations, stored in Int.
	KindCoverState
	KindValveState
	KindFanSpeed
	KindFanDirection
	KindFanOscillation
	KindClimateMode
	KindAlarmState
	KindMediaState

	KindDate
	KindTime
)

var kindNames = map[AttributeKind]string{
	KindConfig:           "config",
	KindDiagnostic:       "diagnostic",
	KindSensor:           "sensor",
	KindLight:            "light",
	KindTextSelect:       "text_select",
	KindIcon:             "icon",
	KindUnit:             "unit",
	KindDeviceClass:      "device_class",
	KindText:             "text",
	KindEffect:           "effect",
	KindSwitch:           "switch",
	KindBool:             "bool",
	KindReal:             "real",
	KindDimmer:           "dimmer",
	KindMin:              "min",
	KindMax:              "max",
	KindStep:             "step",
	KindAccuracyDecimals: "accuracy_decimals",
	KindColorTemperature: "color_temperature",
	KindSensorStateClass: "sensor_state_class",
	KindColorMode:        "color_mode",
	KindLockState:        "lock_state",
	KindNumberMode:       "number_mode",
	KindColor:            "color",
	KindTextList:         "text_list",
	KindCover:            "cover",
	KindValve:            "valve",
	KindSiren:            "siren",
	KindPosition:         "position",
	KindTilt:             "tilt",
	KindVolume:           "volume",
	KindMuted:            "muted",
	KindInteger:          "integer",
	KindTimestamp:        "timestamp",
	KindCoverState:       "cover_state",
	KindValveState:       "valve_state",
	KindFanSpeed:         "fan_speed",
	KindFanDirection:     "fan_direction",
	KindFanOscillation:   "fan_oscillation",
	KindClimateMode:      "climate_mode",
	KindAlarmState:       "alarm_state",
	KindMediaState:       "media_state",
	KindDate:             "date",
	KindTime:             "time",
}

// String returns the snake_case kind name.
func (k AttributeKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseAttributeKind is the inverse of AttributeKind.String.
func ParseAttributeKind(s string) (AttributeKind, bool) {
	for k, name := range kindNames {
		if name == s {
			return k, true
		}
	}
	return 0, false
}

// SensorStateClass describes how a sensor's values accumulate.
type SensorStateClass uint8

const (
	StateClassMeasurement SensorStateClass = iota + 1
	StateClassTotalIncreasing
	StateClassTotal
)

// String returns the state class name.
func (c SensorStateClass) String() string {
	switch c {
	case StateClassMeasurement:
		return "measurement"
	case StateClassTotalIncreasing:
		return "total_increasing"
	case StateClassTotal:
		return "total"
	default:
		return "unknown"
	}
}

// ColorMode is the colour model a light is currently driven in.
type ColorMode uint8

const (
	ColorModeRGB ColorMode = iota + 1
	ColorModeTemperature
)

// String returns the colour mode name.
func (m ColorMode) String() string {
	switch m {
	case ColorModeRGB:
		return "rgb"
	case ColorModeTemperature:
		return "temperature"
	default:
		return "unknown"
	}
}

// LockState is the hub-side state of a lock.
type LockState uint8

const (
	LockUnknown LockState = iota
	LockLocked
	LockUnlocked
	LockJammed
	LockLocking
	LockUnlocking
)

// String returns the lock state name.
func (s LockState) String() string {
	switch s {
	case LockLocked:
		return "locked"
	case LockUnlocked:
		return "unlocked"
	case LockJammed:
		return "jammed"
	case LockLocking:
		return "locking"
	case LockUnlocking:
		return "unlocking"
	default:
		return "unknown"
	}
}

// NumberMode is the preferred input widget for a number entity.
type NumberMode uint8

const (
	NumberModeAuto NumberMode = iota
	NumberModeBox
	NumberModeSlider
)

// String returns the number mode name.
func (m NumberMode) String() string {
	switch m {
	case NumberModeAuto:
		return "auto"
	case NumberModeBox:
		return "box"
	case NumberModeSlider:
		return "slider"
	default:
		return "unknown"
	}
}

// Color is an RGB colour with channels in [0, 1].
type Color struct {
	R, G, B float64
}

// Attribute is one typed fact about an entity. Kind selects which value
// field is set; the others stay zero.
type Attribute struct {
	Kind  AttributeKind
	Bool  bool
	Float float64
	Int   int64
	Text  string
	List  []string
	Color Color
	Date  CalendarDate
	Time  ClockTime
}

// Marker builds a valueless attribute such as KindSensor or KindConfig.
func Marker(kind AttributeKind) Attribute { return Attribute{Kind: kind} }

func Config() Attribute     { return Marker(KindConfig) }
func Diagnostic() Attribute { return Marker(KindDiagnostic) }
func Sensor() Attribute     { return Marker(KindSensor) }
func Light() Attribute      { return Marker(KindLight) }
func TextSelect() Attribute { return Marker(KindTextSelect) }

func Icon(s string) Attribute        { return Attribute{Kind: KindIcon, Text: s} }
func Unit(s string) Attribute        { return Attribute{Kind: KindUnit, Text: s} }
func DeviceClass(s string) Attribute { return Attribute{Kind: KindDeviceClass, Text: s} }
func Text(s string) Attribute        { return Attribute{Kind: KindText, Text: s} }
func Effect(s string) Attribute      { return Attribute{Kind: KindEffect, Text: s} }

func Switch(on bool) Attribute { return Attribute{Kind: KindSwitch, Bool: on} }
func Bool(v bool) Attribute    { return Attribute{Kind: KindBool, Bool: v} }

func Real(v float64) Attribute   { return Attribute{Kind: KindReal, Float: v} }
func Dimmer(v float64) Attribute { return Attribute{Kind: KindDimmer, Float: v} }
func Min(v float64) Attribute    { return Attribute{Kind: KindMin, Float: v} }
func Max(v float64) Attribute    { return Attribute{Kind: KindMax, Float: v} }
func Step(v float64) Attribute   { return Attribute{Kind: KindStep, Float: v} }

func AccuracyDecimals(n int64) Attribute { return Attribute{Kind: KindAccuracyDecimals, Int: n} }

// ColorTemperature carries a colour temperature in kelvin.
func ColorTemperature(kelvin int64) Attribute {
	return Attribute{Kind: KindColorTemperature, Int: kelvin}
}

func StateClass(c SensorStateClass) Attribute {
	return Attribute{Kind: KindSensorStateClass, Int: int64(c)}
}

func Mode(m ColorMode) Attribute    { return Attribute{Kind: KindColorMode, Int: int64(m)} }
func Lock(s LockState) Attribute    { return Attribute{Kind: KindLockState, Int: int64(s)} }
func Number(m NumberMode) Attribute { return Attribute{Kind: KindNumberMode, Int: int64(m)} }

func Cover() Attribute { return Marker(KindCover) }
func Valve() Attribute { return Marker(KindValve) }
func Siren() Attribute { return Marker(KindSiren) }

// Position is a cover or valve position in [0, 1], 1 being fully open.
func Position(v float64) Attribute { return Attribute{Kind: KindPosition, Float: v} }
func Tilt(v float64) Attribute     { return Attribute{Kind: KindTilt, Float: v} }
func Volume(v float64) Attribute   { return Attribute{Kind: KindVolume, Float: v} }
func Muted(v bool) Attribute       { return Attribute{Kind: KindMuted, Bool: v} }
func Integer(n int64) Attribute    { return Attribute{Kind: KindInteger, Int: n} }

// Timestamp carries an instant as Unix seconds.
func Timestamp(unix int64) Attribute { return Attribute{Kind: KindTimestamp, Int: unix} }

func CoverStatus(s CoverState) Attribute     { return Attribute{Kind: KindCoverState, Int: int64(s)} }
func ValveStatus(s ValveState) Attribute     { return Attribute{Kind: KindValveState, Int: int64(s)} }
func Speed(s FanSpeed) Attribute             { return Attribute{Kind: KindFanSpeed, Int: int64(s)} }
func Direction(d FanDirection) Attribute     { return Attribute{Kind: KindFanDirection, Int: int64(d)} }
func Oscillation(o FanOscillation) Attribute { return Attribute{Kind: KindFanOscillation, Int: int64(o)} }
func Climate(m ClimateMode) Attribute        { return Attribute{Kind: KindClimateMode, Int: int64(m)} }
func Alarm(s AlarmState) Attribute           { return Attribute{Kind: KindAlarmState, Int: int64(s)} }
func Media(s MediaState) Attribute           { return Attribute{Kind: KindMediaState, Int: int64(s)} }

func Date(year, month, day int) Attribute {
	return Attribute{Kind: KindDate, Date: CalendarDate{Year: year, Month: month, Day: day}}
}

func Time(hour, minute, second int) Attribute {
	return Attribute{Kind: KindTime, Time: ClockTime{Hour: hour, Minute: minute, Second: second}}
}

func RGB(r, g, b float64) Attribute {
	return Attribute{Kind: KindColor, Color: Color{R: r, G: g, B: b}}
}

func TextList(items []string) Attribute {
	return Attribute{Kind: KindTextList, List: items}
}

// SensorStateClass returns the state class of a KindSensorStateClass attribute.
func (a Attribute) SensorStateClass() SensorStateClass { return SensorStateClass(a.Int) }

// ColorMode returns the mode of a KindColorMode attribute.
func (a Attribute) ColorMode() ColorMode { return ColorMode(a.Int) }

// LockState returns the state of a KindLockState attribute.
func (a Attribute) LockState() LockState { return LockState(a.Int) }

// NumberMode returns the mode of a KindNumberMode attribute.
func (a Attribute) NumberMode() NumberMode { return NumberMode(a.Int) }

func (a Attribute) CoverState() CoverState         { return CoverState(a.Int) }
func (a Attribute) ValveState() ValveState         { return ValveState(a.Int) }
func (a Attribute) FanSpeed() FanSpeed             { return FanSpeed(a.Int) }
func (a Attribute) FanDirection() FanDirection     { return FanDirection(a.Int) }
func (a Attribute) FanOscillation() FanOscillation { return FanOscillation(a.Int) }
func (a Attribute) ClimateMode() ClimateMode       { return ClimateMode(a.Int) }
func (a Attribute) AlarmState() AlarmState         { return AlarmState(a.Int) }
func (a Attribute) MediaState() MediaState         { return MediaState(a.Int) }

// String renders the attribute as kind=value, the form ParseAttribute reads.
func (a Attribute) String() string {
	v := a.value()
	if v == "" && a.Kind.marker() {
		return a.Kind.String()
	}
	return a.Kind.String() + "=" + v
}

func (a Attribute) value() string {
	switch a.Kind {
	case KindIcon, KindUnit, KindDeviceClass, KindText, KindEffect:
		return a.Text
	case KindSwitch, KindBool, KindMuted:
		return strconv.FormatBool(a.Bool)
	case KindReal, KindDimmer, KindMin, KindMax, KindStep, KindPosition, KindTilt, KindVolume:
		return strconv.FormatFloat(a.Float, 'g', -1, 64)
	case KindAccuracyDecimals, KindColorTemperature, KindInteger, KindTimestamp:
		return strconv.FormatInt(a.Int, 10)
	case KindSensorStateClass:
		return a.SensorStateClass().String()
	case KindColorMode:
		return a.ColorMode().String()
	case KindLockState:
		return a.LockState().String()
	case KindNumberMode:
		return a.NumberMode().String()
	case KindCoverState:
		return a.CoverState().String()
	case KindValveState:
		return a.ValveState().String()
	case KindFanSpeed:
		return a.FanSpeed().String()
	case KindFanDirection:
		return a.FanDirection().String()
	case KindFanOscillation:
		return a.FanOscillation().String()
	case KindClimateMode:
		return a.ClimateMode().String()
	case KindAlarmState:
		return a.AlarmState().String()
	case KindMediaState:
		return a.MediaState().String()
	case KindDate:
		return a.Date.String()
	case KindTime:
		return a.Time.String()
	case KindColor:
		return fmt.Sprintf("%g,%g,%g", a.Color.R, a.Color.G, a.Color.B)
	case KindTextList:
		return strings.Join(a.List, "|")
	}
	return ""
}

func (k AttributeKind) marker() bool {
	switch k {
	case KindConfig, KindDiagnostic, KindSensor, KindLight, KindTextSelect,
		KindCover, KindValve, KindSiren:
		return true
	}
	return false
}
