package hub

import (
	"fmt"
	"strconv"
	"strings"
)

func enumName(names []string, v int) string {
	if v >= 0 && v < len(names) {
		return names[v]
	}
	return "unknown"
}

// CoverState is what a cover is doing or was last asked to do.
type CoverState uint8

const (
	CoverIdle CoverState = iota
	CoverOpen
	CoverClosed
	CoverOpening
	CoverClosing
	CoverStopped
)

var coverStateNames = []string{"idle", "open", "closed", "opening", "closing", "stopped"}

// String returns the cover state name.
func (s CoverState) String() string { return enumName(coverStateNames, int(s)) }

// ValveState is what a valve is doing.
type ValveState uint8

const (
	ValveIdle ValveState = iota
	ValveOpening
	ValveClosing
)

var valveStateNames = []string{"idle", "opening", "closing"}

// String returns the valve state name.
func (s ValveState) String() string { return enumName(valveStateNames, int(s)) }

// FanSpeed is a named fan setting shared by fans and climate devices.
type FanSpeed uint8

const (
	FanOff FanSpeed = iota
	FanOn
	FanAuto
	FanLow
	FanMedium
	FanHigh
	FanMiddle
	FanFocus
	FanDiffuse
	FanQuiet
)

var fanSpeedNames = []string{
	"off", "on", "auto", "low", "medium", "high", "middle", "focus", "diffuse", "quiet",
}

// String returns the fan speed name.
func (s FanSpeed) String() string { return enumName(fanSpeedNames, int(s)) }

// FanDirection is the rotation direction of a fan.
type FanDirection uint8

const (
	FanForward FanDirection = iota
	FanReverse
)

var fanDirectionNames = []string{"forward", "reverse"}

// String returns the direction name.
func (d FanDirection) String() string { return enumName(fanDirectionNames, int(d)) }

// FanOscillation is the oscillation or swing setting of a fan or climate
// device.
type FanOscillation uint8

const (
	OscillationOff FanOscillation = iota
	OscillationOn
	OscillationVertical
	OscillationHorizontal
	OscillationBoth
)

var fanOscillationNames = []string{"off", "on", "vertical", "horizontal", "both"}

// String returns the oscillation name.
func (o FanOscillation) String() string { return enumName(fanOscillationNames, int(o)) }

// ClimateMode is the operating mode of a climate device.
type ClimateMode uint8

const (
	ClimateOff ClimateMode = iota
	ClimateHeatCool
	ClimateCool
	ClimateHeat
	ClimateFanOnly
	ClimateDry
	ClimateAuto
	ClimateEco
)

var climateModeNames = []string{"off", "heat_cool", "cool", "heat", "fan_only", "dry", "auto", "eco"}

// String returns the mode name.
func (m ClimateMode) String() string { return enumName(climateModeNames, int(m)) }

// AlarmState is the state of an alarm panel.
type AlarmState uint8

const (
	AlarmDisarmed AlarmState = iota
	AlarmArmedHome
	AlarmArmedAway
	AlarmArmedNight
	AlarmArmedVacation
	AlarmArmedCustom
	AlarmPending
	AlarmArming
	AlarmDisarming
	AlarmTriggered
)

var alarmStateNames = []string{
	"disarmed", "armed_home", "armed_away", "armed_night", "armed_vacation",
	"armed_custom", "pending", "arming", "disarming", "triggered",
}

// String returns the alarm state name.
func (s AlarmState) String() string { return enumName(alarmStateNames, int(s)) }

// MediaState is the playback state of a media player.
type MediaState uint8

const (
	MediaUnknown MediaState = iota
	MediaIdle
	MediaPlaying
	MediaPaused
)

var mediaStateNames = []string{"unknown", "idle", "playing", "paused"}

// String returns the playback state name.
func (s MediaState) String() string { return enumName(mediaStateNames, int(s)) }

// CalendarDate is a date without a time zone. Devices report the zero
// date when unset.
type CalendarDate struct {
	Year, Month, Day int
}

// String formats the date as YYYY-MM-DD.
func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func parseDate(value string) (CalendarDate, error) {
	n, err := splitInts(value, "-")
	if err != nil {
		return CalendarDate{}, err
	}
	d := CalendarDate{Year: n[0], Month: n[1], Day: n[2]}
	if d.Year < 0 || d.Month < 0 || d.Month > 12 || d.Day < 0 || d.Day > 31 {
		return CalendarDate{}, fmt.Errorf("date %q out of range", value)
	}
	return d, nil
}

// ClockTime is a time of day.
type ClockTime struct {
	Hour, Minute, Second int
}

// String formats the time as HH:MM:SS.
func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

func parseClock(value string) (ClockTime, error) {
	n, err := splitInts(value, ":")
	if err != nil {
		return ClockTime{}, err
	}
	t := ClockTime{Hour: n[0], Minute: n[1], Second: n[2]}
	if t.Hour < 0 || t.Hour > 23 || t.Minute < 0 || t.Minute > 59 || t.Second < 0 || t.Second > 59 {
		return ClockTime{}, fmt.Errorf("time %q out of range", value)
	}
	return t, nil
}

func splitInts(value, sep string) ([3]int, error) {
	var out [3]int
	parts := strings.Split(value, sep)
	if len(parts) != len(out) {
		return out, fmt.Errorf("want three %q separated numbers, got %q", sep, value)
	}
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return out, err
		}
		out[i] = n
	}
	return out, nil
}
