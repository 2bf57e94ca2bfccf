package hub

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidAttribute is returned by ParseAttribute for malformed input.
var ErrInvalidAttribute = errors.New("invalid attribute")

// ParseAttribute reads the kind=value form produced by Attribute.String.
// Markers are written as the bare kind name.
func ParseAttribute(s string) (Attribute, error) {
	name, value, hasValue := strings.Cut(strings.TrimSpace(s), "=")
	kind, ok := ParseAttributeKind(name)
	if !ok {
		return Attribute{}, fmt.Errorf("%w: unknown kind %q", ErrInvalidAttribute, name)
	}
	if kind.marker() {
		return Marker(kind), nil
	}
	if !hasValue {
		return Attribute{}, fmt.Errorf("%w: %s needs a value", ErrInvalidAttribute, kind)
	}

	a := Attribute{Kind: kind}
	var err error
	switch kind {
	case KindIcon, KindUnit, KindDeviceClass, KindText, KindEffect:
		a.Text = value
	case KindSwitch, KindBool, KindMuted:
		a.Bool, err = strconv.ParseBool(value)
	case KindReal, KindDimmer, KindMin, KindMax, KindStep, KindPosition, KindTilt, KindVolume:
		a.Float, err = strconv.ParseFloat(value, 64)
	case KindAccuracyDecimals, KindColorTemperature, KindInteger, KindTimestamp:
		a.Int, err = strconv.ParseInt(value, 10, 64)
	case KindSensorStateClass:
		a.Int, err = parseEnum(value, func(i int64) string { return SensorStateClass(i).String() }, 1, 3)
	case KindColorMode:
		a.Int, err = parseEnum(value, func(i int64) string { return ColorMode(i).String() }, 1, 2)
	case KindLockState:
		a.Int, err = parseEnum(value, func(i int64) string { return LockState(i).String() }, 0, 5)
	case KindNumberMode:
		a.Int, err = parseEnum(value, func(i int64) string { return NumberMode(i).String() }, 0, 2)
	case KindCoverState:
		a.Int, err = parseNamed(value, coverStateNames)
	case KindValveState:
		a.Int, err = parseNamed(value, valveStateNames)
	case KindFanSpeed:
		a.Int, err = parseNamed(value, fanSpeedNames)
	case KindFanDirection:
		a.Int, err = parseNamed(value, fanDirectionNames)
	case KindFanOscillation:
		a.Int, err = parseNamed(value, fanOscillationNames)
	case KindClimateMode:
		a.Int, err = parseNamed(value, climateModeNames)
	case KindAlarmState:
		a.Int, err = parseNamed(value, alarmStateNames)
	case KindMediaState:
		a.Int, err = parseNamed(value, mediaStateNames)
	case KindDate:
		a.Date, err = parseDate(value)
	case KindTime:
		a.Time, err = parseClock(value)
	case KindColor:
		a.Color, err = parseColor(value)
	case KindTextList:
		if value != "" {
			a.List = strings.Split(value, "|")
		}
	}
	if err != nil {
		return Attribute{}, fmt.Errorf("%w: %s: %v", ErrInvalidAttribute, kind, err)
	}
	return a, nil
}

// ParseAttributes parses whitespace-separated attributes.
func ParseAttributes(fields []string) ([]Attribute, error) {
	attrs := make([]Attribute, 0, len(fields))
	for _, f := range fields {
		a, err := ParseAttribute(f)
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, a)
	}
	return attrs, nil
}

func parseEnum(value string, name func(int64) string, lo, hi int64) (int64, error) {
	for i := lo; i <= hi; i++ {
		if name(i) == value {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown value %q", value)
}

func parseNamed(value string, names []string) (int64, error) {
	for i, name := range names {
		if name == value {
			return int64(i), nil
		}
	}
	return 0, fmt.Errorf("unknown value %q", value)
}

func parseColor(value string) (Color, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 3 {
		return Color{}, fmt.Errorf("want r,g,b, got %q", value)
	}
	var ch [3]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Color{}, err
		}
		ch[i] = f
	}
	return Color{R: ch[0], G: ch[1], B: ch[2]}, nil
}
