package wire

// EntityCategory classifies an entity for presentation.
type EntityCategory int32

const (
	EntityCategoryNone       EntityCategory = 0
	EntityCategoryConfig     EntityCategory = 1
	EntityCategoryDiagnostic EntityCategory = 2
)

// String returns the category name.
func (c EntityCategory) String() string {
	switch c {
	case EntityCategoryNone:
		return "NONE"
	case EntityCategoryConfig:
		return "CONFIG"
	case EntityCategoryDiagnostic:
		return "DIAGNOSTIC"
	default:
		return "UNKNOWN"
	}
}

// SensorStateClass describes how a sensor reading evolves over time.
type SensorStateClass int32

const (
	StateClassNone            SensorStateClass = 0
	StateClassMeasurement     SensorStateClass = 1
	StateClassTotalIncreasing SensorStateClass = 2
	StateClassTotal           SensorStateClass = 3
)

// String returns the state class name.
func (c SensorStateClass) String() string {
	switch c {
	case StateClassNone:
		return "NONE"
	case StateClassMeasurement:
		return "MEASUREMENT"
	case StateClassTotalIncreasing:
		return "TOTAL_INCREASING"
	case StateClassTotal:
		return "TOTAL"
	default:
		return "UNKNOWN"
	}
}

// ColorMode is a light's color mode. The value is a bitmask of
// ColorCapability flags.
type ColorMode int32

const (
	ColorModeUnknown             ColorMode = 0
	ColorModeOnOff               ColorMode = 1
	ColorModeLegacyBrightness    ColorMode = 2
	ColorModeBrightness          ColorMode = 3
	ColorModeWhite               ColorMode = 7
	ColorModeColorTemperature    ColorMode = 11
	ColorModeColdWarmWhite       ColorMode = 19
	ColorModeRGB                 ColorMode = 35
	ColorModeRGBWhite            ColorMode = 39
	ColorModeRGBColorTemperature ColorMode = 47
	ColorModeRGBColdWarmWhite    ColorMode = 51
)

// ColorCapability is a single bit of a ColorMode.
type ColorCapability int32

const (
	CapabilityOnOff            ColorCapability = 1 << 0
	CapabilityBrightness       ColorCapability = 1 << 1
	CapabilityWhite            ColorCapability = 1 << 2
	CapabilityColorTemperature ColorCapability = 1 << 3
	CapabilityColdWarmWhite    ColorCapability = 1 << 4
	CapabilityRGB              ColorCapability = 1 << 5
)

// Has reports whether the mode includes capability c.
func (m ColorMode) Has(c ColorCapability) bool {
	return int32(m)&int32(c) != 0
}

// String returns the color mode name.
func (m ColorMode) String() string {
	switch m {
	case ColorModeUnknown:
		return "UNKNOWN"
	case ColorModeOnOff:
		return "ON_OFF"
	case ColorModeLegacyBrightness:
		return "LEGACY_BRIGHTNESS"
	case ColorModeBrightness:
		return "BRIGHTNESS"
	case ColorModeWhite:
		return "WHITE"
	case ColorModeColorTemperature:
		return "COLOR_TEMPERATURE"
	case ColorModeColdWarmWhite:
		return "COLD_WARM_WHITE"
	case ColorModeRGB:
		return "RGB"
	case ColorModeRGBWhite:
		return "RGB_WHITE"
	case ColorModeRGBColorTemperature:
		return "RGB_COLOR_TEMPERATURE"
	case ColorModeRGBColdWarmWhite:
		return "RGB_COLD_WARM_WHITE"
	default:
		return "UNKNOWN"
	}
}

// LockState is the reported state of a lock.
type LockState int32

const (
	LockStateNone      LockState = 0
	LockStateLocked    LockState = 1
	LockStateUnlocked  LockState = 2
	LockStateJammed    LockState = 3
	LockStateLocking   LockState = 4
	LockStateUnlocking LockState = 5
)

// String returns the lock state name.
func (s LockState) String() string {
	switch s {
	case LockStateNone:
		return "NONE"
	case LockStateLocked:
		return "LOCKED"
	case LockStateUnlocked:
		return "UNLOCKED"
	case LockStateJammed:
		return "JAMMED"
	case LockStateLocking:
		return "LOCKING"
	case LockStateUnlocking:
		return "UNLOCKING"
	default:
		return "UNKNOWN"
	}
}

// LockCommand is an action requested of a lock.
type LockCommand int32

const (
	LockCommandUnlock LockCommand = 0
	LockCommandLock   LockCommand = 1
	LockCommandOpen   LockCommand = 2
)

// String returns the command name.
func (c LockCommand) String() string {
	switch c {
	case LockCommandUnlock:
		return "UNLOCK"
	case LockCommandLock:
		return "LOCK"
	case LockCommandOpen:
		return "OPEN"
	default:
		return "UNKNOWN"
	}
}

// NumberMode is the preferred input widget for a number entity.
type NumberMode int32

const (
	NumberModeAuto   NumberMode = 0
	NumberModeBox    NumberMode = 1
	NumberModeSlider NumberMode = 2
)

// String returns the mode name.
func (m NumberMode) String() string {
	switch m {
	case NumberModeAuto:
		return "AUTO"
	case NumberModeBox:
		return "BOX"
	case NumberModeSlider:
		return "SLIDER"
	default:
		return "UNKNOWN"
	}
}

// LogLevel is the verbosity of device log lines.
type LogLevel int32

const (
	LogLevelNone        LogLevel = 0
	LogLevelError       LogLevel = 1
	LogLevelWarn        LogLevel = 2
	LogLevelInfo        LogLevel = 3
	LogLevelConfig      LogLevel = 4
	LogLevelDebug       LogLevel = 5
	LogLevelVerbose     LogLevel = 6
	LogLevelVeryVerbose LogLevel = 7
)

// String returns the level name.
func (l LogLevel) String() string {
	switch l {
	case LogLevelNone:
		return "NONE"
	case LogLevelError:
		return "ERROR"
	case LogLevelWarn:
		return "WARN"
	case LogLevelInfo:
		return "INFO"
	case LogLevelConfig:
		return "CONFIG"
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelVerbose:
		return "VERBOSE"
	case LogLevelVeryVerbose:
		return "VERY_VERBOSE"
	default:
		return "UNKNOWN"
	}
}

// CoverOperation is what a cover is currently doing.
type CoverOperation int32

const (
	CoverOperationIdle    CoverOperation = 0
	CoverOperationOpening CoverOperation = 1
	CoverOperationClosing CoverOperation = 2
)

// LegacyCoverCommand is the open/close/stop command of a cover.
type LegacyCoverCommand int32

const (
	LegacyCoverOpen  LegacyCoverCommand = 0
	LegacyCoverClose LegacyCoverCommand = 1
	LegacyCoverStop  LegacyCoverCommand = 2
)

// ValveOperation is what a valve is currently doing.
type ValveOperation int32

const (
	ValveOperationIdle    ValveOperation = 0
	ValveOperationOpening ValveOperation = 1
	ValveOperationClosing ValveOperation = 2
)

// FanSpeed is the legacy three-step fan speed.
type FanSpeed int32

const (
	FanSpeedLow    FanSpeed = 0
	FanSpeedMedium FanSpeed = 1
	FanSpeedHigh   FanSpeed = 2
)

// FanDirection is the rotation direction of a fan.
type FanDirection int32

const (
	FanDirectionForward FanDirection = 0
	FanDirectionReverse FanDirection = 1
)

// ClimateMode is the operating mode of a climate device.
type ClimateMode int32

const (
	ClimateModeOff      ClimateMode = 0
	ClimateModeHeatCool ClimateMode = 1
	ClimateModeCool     ClimateMode = 2
	ClimateModeHeat     ClimateMode = 3
	ClimateModeFanOnly  ClimateMode = 4
	ClimateModeDry      ClimateMode = 5
	ClimateModeAuto     ClimateMode = 6
)

// ClimateFanMode is the fan setting of a climate device.
type ClimateFanMode int32

const (
	ClimateFanOn      ClimateFanMode = 0
	ClimateFanOff     ClimateFanMode = 1
	ClimateFanAuto    ClimateFanMode = 2
	ClimateFanLow     ClimateFanMode = 3
	ClimateFanMedium  ClimateFanMode = 4
	ClimateFanHigh    ClimateFanMode = 5
	ClimateFanMiddle  ClimateFanMode = 6
	ClimateFanFocus   ClimateFanMode = 7
	ClimateFanDiffuse ClimateFanMode = 8
	ClimateFanQuiet   ClimateFanMode = 9
)

// ClimateSwingMode is the louvre movement of a climate device.
type ClimateSwingMode int32

const (
	ClimateSwingOff        ClimateSwingMode = 0
	ClimateSwingBoth       ClimateSwingMode = 1
	ClimateSwingVertical   ClimateSwingMode = 2
	ClimateSwingHorizontal ClimateSwingMode = 3
)

// ClimatePreset is a named climate profile.
type ClimatePreset int32

const (
	ClimatePresetNone     ClimatePreset = 0
	ClimatePresetHome     ClimatePreset = 1
	ClimatePresetAway     ClimatePreset = 2
	ClimatePresetBoost    ClimatePreset = 3
	ClimatePresetComfort  ClimatePreset = 4
	ClimatePresetEco      ClimatePreset = 5
	ClimatePresetSleep    ClimatePreset = 6
	ClimatePresetActivity ClimatePreset = 7
)

// String returns the preset name.
func (p ClimatePreset) String() string {
	switch p {
	case ClimatePresetNone:
		return "NONE"
	case ClimatePresetHome:
		return "HOME"
	case ClimatePresetAway:
		return "AWAY"
	case ClimatePresetBoost:
		return "BOOST"
	case ClimatePresetComfort:
		return "COMFORT"
	case ClimatePresetEco:
		return "ECO"
	case ClimatePresetSleep:
		return "SLEEP"
	case ClimatePresetActivity:
		return "ACTIVITY"
	default:
		return "UNKNOWN"
	}
}

// MediaPlayerState is the playback state of a media player.
type MediaPlayerState int32

const (
	MediaPlayerStateNone    MediaPlayerState = 0
	MediaPlayerStateIdle    MediaPlayerState = 1
	MediaPlayerStatePlaying MediaPlayerState = 2
	MediaPlayerStatePaused  MediaPlayerState = 3
)

// MediaPlayerCommand is an action requested of a media player.
type MediaPlayerCommand int32

const (
	MediaPlayerPlay   MediaPlayerCommand = 0
	MediaPlayerPause  MediaPlayerCommand = 1
	MediaPlayerStop   MediaPlayerCommand = 2
	MediaPlayerMute   MediaPlayerCommand = 3
	MediaPlayerUnmute MediaPlayerCommand = 4
)

// AlarmControlPanelState is the reported state of an alarm panel.
type AlarmControlPanelState int32

const (
	AlarmStateDisarmed          AlarmControlPanelState = 0
	AlarmStateArmedHome         AlarmControlPanelState = 1
	AlarmStateArmedAway         AlarmControlPanelState = 2
	AlarmStateArmedNight        AlarmControlPanelState = 3
	AlarmStateArmedVacation     AlarmControlPanelState = 4
	AlarmStateArmedCustomBypass AlarmControlPanelState = 5
	AlarmStatePending           AlarmControlPanelState = 6
	AlarmStateArming            AlarmControlPanelState = 7
	AlarmStateDisarming         AlarmControlPanelState = 8
	AlarmStateTriggered         AlarmControlPanelState = 9
)

// AlarmControlPanelCommand is an action requested of an alarm panel.
type AlarmControlPanelCommand int32

const (
	AlarmCommandDisarm          AlarmControlPanelCommand = 0
	AlarmCommandArmAway         AlarmControlPanelCommand = 1
	AlarmCommandArmHome         AlarmControlPanelCommand = 2
	AlarmCommandArmNight        AlarmControlPanelCommand = 3
	AlarmCommandArmVacation     AlarmControlPanelCommand = 4
	AlarmCommandArmCustomBypass AlarmControlPanelCommand = 5
	AlarmCommandTrigger         AlarmControlPanelCommand = 6
)

// TextMode is the input style of a text entity.
type TextMode int32

const (
	TextModeText     TextMode = 0
	TextModePassword TextMode = 1
)

// UpdateCommand is an action requested of a firmware update entity.
type UpdateCommand int32

const (
	UpdateCommandNone   UpdateCommand = 0
	UpdateCommandUpdate UpdateCommand = 1
	UpdateCommandCheck  UpdateCommand = 2
)
