package wire

// --- cover ---

type ListEntitiesCoverResponse struct {
	EntityHeader
	AssumedState      bool
	SupportsPosition  bool
	SupportsTilt      bool
	DeviceClass       string
	DisabledByDefault bool
	Icon              string
	EntityCategory    EntityCategory
	SupportsStop      bool
}

func (*ListEntitiesCoverResponse) MessageType() MessageType { return MsgListEntitiesCoverResponse }

func (m *ListEntitiesCoverResponse) AppendWire(b []byte) []byte {
	b = m.EntityHeader.append(b)
	b = appendBool(b, 5, m.AssumedState)
	b = appendBool(b, 6, m.SupportsPosition)
	b = appendBool(b, 7, m.SupportsTilt)
	b = appendString(b, 8, m.DeviceClass)
	b = appendBool(b, 9, m.DisabledByDefault)
	b = appendString(b, 10, m.Icon)
	b = appendInt32(b, 11, int32(m.EntityCategory))
	return appendBool(b, 12, m.SupportsStop)
}

func (m *ListEntitiesCoverResponse) UnmarshalWire(data []byte) error {
	*m = ListEntitiesCoverResponse{}
	return walk(data, func(f field) error {
		if m.EntityHeader.take(f) {
			return nil
		}
		switch f.Number() {
		case 5:
			m.AssumedState = f.Bool()
		case 6:
			m.SupportsPosition = f.Bool()
		case 7:
			m.SupportsTilt = f.Bool()
		case 8:
			m.DeviceClass = f.Str()
		case 9:
			m.DisabledByDefault = f.Bool()
		case 10:
			m.Icon = f.Str()
		case 11:
			m.EntityCategory = EntityCategory(f.Int32())
		case 12:
			m.SupportsStop = f.Bool()
		}
		return nil
	})
}

// CoverStateResponse reports position and tilt in [0, 1], 1 being open.
type CoverStateResponse struct {
	Key              uint32
	Position         float32
	Tilt             float32
	CurrentOperation CoverOperation
}

func (*CoverStateResponse) MessageType() MessageType { return MsgCoverStateResponse }

func (m *CoverStateResponse) AppendWire(b []byte) []byte {
	b = appendFixed32(b, 1, m.Key)
	b = appendFloat(b, 3, m.Position)
	b = appendFloat(b, 4, m.Tilt)
	return appendInt32(b, 5, int32(m.CurrentOperation))
}

func (m *CoverStateResponse) UnmarshalWire(data []byte) error {
	*m = CoverStateResponse{}
	return walk(data, func(f field) error {
		switch f.Number() {
		case 1:
			m.Key = f.Fixed32()
		case 3:
			m.Position = f.Float()
		case 4:
			m.Tilt = f.Float()
		case 5:
			m.CurrentOperation = CoverOperation(f.Int32())
		}
		return nil
	})
}

type CoverCommandRequest struct {
	Key              uint32
	HasLegacyCommand bool
	LegacyCommand    LegacyCoverCommand
	HasPosition      bool
	Position         float32
	HasTilt          bool
	Tilt             float32
	Stop             bool
}

func (*CoverCommandRequest) MessageType() MessageType { return MsgCoverCommandRequest }

func (m *CoverCommandRequest) AppendWire(b []byte) []byte {
	b = appendFixed32(b, 1, m.Key)
	b = appendBool(b, 2, m.HasLegacyCommand)
	b = appendInt32(b, 3, int32(m.LegacyCommand))
	b = appendBool(b, 4, m.HasPosition)
	b = appendFloat(b, 5, m.Position)
	b = appendBool(b, 6, m.HasTilt)
	b = appendFloat(b, 7, m.Tilt)
	return appendBool(b, 8, m.Stop)
}

func (m *CoverCommandRequest) UnmarshalWire(data []byte) error {
	*m = CoverCommandRequest{}
	return walk(data, func(f field) error {
		switch f.Number() {
		case 1:
			m.Key = f.Fixed32()
		case 2:
			m.HasLegacyCommand = f.Bool()
		case 3:
			m.LegacyCommand = LegacyCoverCommand(f.Int32())
		case 4:
			m.HasPosition = f.Bool()
		case 5:
			m.Position = f.Float()
		case 6:
			m.HasTilt = f.Bool()
		case 7:
			m.Tilt = f.Float()
		case 8:
			m.Stop = f.Bool()
		}
		return nil
	})
}

// --- fan ---

type ListEntitiesFanResponse struct {
	EntityHeader
	SupportsOscillation  bool
	SupportsSpeed        bool
	SupportsDirection    bool
	SupportedSpeedCount  int32
	DisabledByDefault    bool
	Icon                 string
	EntityCategory       EntityCategory
	SupportedPresetModes []string
}

func (*ListEntitiesFanResponse) MessageType() MessageType { return MsgListEntitiesFanResponse }

func (m *ListEntitiesFanResponse) AppendWire(b []byte) []byte {
	b = m.EntityHeader.append(b)
	b = appendBool(b, 5, m.SupportsOscillation)
	b = appendBool(b, 6, m.SupportsSpeed)
	b = appendBool(b, 7, m.SupportsDirection)
	b = appendInt32(b, 8, m.SupportedSpeedCount)
	b = appendBool(b, 9, m.DisabledByDefault)
	b = appendString(b, 10, m.Icon)
	b = appendInt32(b, 11, int32(m.EntityCategory))
	return appendRepeatedString(b, 12, m.SupportedPresetModes)
}

func (m *ListEntitiesFanResponse) UnmarshalWire(data []byte) error {
	*m = ListEntitiesFanResponse{}
	return walk(data, func(f field) error {
		if m.EntityHeader.take(f) {
			return nil
		}
		switch f.Number() {
		case 5:
			m.SupportsOscillation = f.Bool()
		case 6:
			m.SupportsSpeed = f.Bool()
		case 7:
			m.SupportsDirection = f.Bool()
		case 8:
			m.SupportedSpeedCount = f.Int32()
		case 9:
			m.DisabledByDefault = f.Bool()
		case 10:
			m.Icon = f.Str()
		case 11:
			m.EntityCategory = EntityCategory(f.Int32())
		case 12:
			m.SupportedPresetModes = append(m.SupportedPresetModes, f.Str())
		}
		return nil
	})
}

type FanStateResponse struct {
	Key         uint32
	State       bool
	Oscillating bool
	Speed       FanSpeed
	Direction   FanDirection
	SpeedLevel  int32
	PresetMode  string
}

func (*FanStateResponse) MessageType() MessageType { return MsgFanStateResponse }

func (m *FanStateResponse) AppendWire(b []byte) []byte {
	b = appendFixed32(b, 1, m.Key)
	b = appendBool(b, 2, m.State)
	b = appendBool(b, 3, m.Oscillating)
	b = appendInt32(b, 4, int32(m.Speed))
	b = appendInt32(b, 5, int32(m.Direction))
	b = appendInt32(b, 6, m.SpeedLevel)
	return appendString(b, 7, m.PresetMode)
}

func (m *FanStateResponse) UnmarshalWire(data []byte) error {
	*m = FanStateResponse{}
	return walk(data, func(f field) error {
		switch f.Number() {
		case 1:
			m.Key = f.Fixed32()
		case 2:
			m.State = f.Bool()
		case 3:
			m.Oscillating = f.Bool()
		case 4:
			m.Speed = FanSpeed(f.Int32())
		case 5:
			m.Direction = FanDirection(f.Int32())
		case 6:
			m.SpeedLevel = f.Int32()
		case 7:
			m.PresetMode = f.Str()
		}
		return nil
	})
}

type FanCommandRequest struct {
	Key            uint32
	HasState       bool
	State          bool
	HasOscillating bool
	Oscillating    bool
	HasDirection   bool
	Direction      FanDirection
	HasSpeedLevel  bool
	SpeedLevel     int32
	HasPresetMode  bool
	PresetMode     string
}

func (*FanCommandRequest) MessageType() MessageType { return MsgFanCommandRequest }

func (m *FanCommandRequest) AppendWire(b []byte) []byte {
	b = appendFixed32(b, 1, m.Key)
	b = appendBool(b, 2, m.HasState)
	b = appendBool(b, 3, m.State)
	b = appendBool(b, 6, m.HasOscillating)
	b = appendBool(b, 7, m.Oscillating)
	b = appendBool(b, 8, m.HasDirection)
	b = appendInt32(b, 9, int32(m.Direction))
	b = appendBool(b, 10, m.HasSpeedLevel)
	b = appendInt32(b, 11, m.SpeedLevel)
	b = appendBool(b, 12, m.HasPresetMode)
	return appendString(b, 13, m.PresetMode)
}

func (m *FanCommandRequest) UnmarshalWire(data []byte) error {
	*m = FanCommandRequest{}
	return walk(data, func(f field) error {
		switch f.Number() {
		case 1:
			m.Key = f.Fixed32()
		case 2:
			m.HasState = f.Bool()
		case 3:
			m.State = f.Bool()
		case 6:
			m.HasOscillating = f.Bool()
		case 7:
			m.Oscillating = f.Bool()
		case 8:
			m.HasDirection = f.Bool()
		case 9:
			m.Direction = FanDirection(f.Int32())
		case 10:
			m.HasSpeedLevel = f.Bool()
		case 11:
			m.SpeedLevel = f.Int32()
		case 12:
			m.HasPresetMode = f.Bool()
		case 13:
			m.PresetMode = f.Str()
		}
		return nil
	})
}

// --- climate ---

type ListEntitiesClimateResponse struct {
	EntityHeader
	SupportsCurrentTemperature        bool
	SupportsTwoPointTargetTemperature bool
	SupportedModes                    []ClimateMode
	VisualMinTemperature              float32
	VisualMaxTemperature              float32
	VisualTargetTemperatureStep       float32
	SupportsAction                    bool
	SupportedFanModes                 []ClimateFanMode
	SupportedSwingModes               []ClimateSwingMode
	SupportedCustomFanModes           []string
	SupportedPresets                  []ClimatePreset
	SupportedCustomPresets            []string
	DisabledByDefault                 bool
	Icon                              string
	EntityCategory                    EntityCategory
}

func (*ListEntitiesClimateResponse) MessageType() MessageType {
	return MsgListEntitiesClimateResponse
}

func (m *ListEntitiesClimateResponse) AppendWire(b []byte) []byte {
	b = m.EntityHeader.append(b)
	b = appendBool(b, 5, m.SupportsCurrentTemperature)
	b = appendBool(b, 6, m.SupportsTwoPointTargetTemperature)
	b = appendPackedInt32(b, 7, enumValues(m.SupportedModes))
	b = appendFloat(b, 8, m.VisualMinTemperature)
	b = appendFloat(b, 9, m.VisualMaxTemperature)
	b = appendFloat(b, 10, m.VisualTargetTemperatureStep)
	b = appendBool(b, 12, m.SupportsAction)
	b = appendPackedInt32(b, 13, enumValues(m.SupportedFanModes))
	b = appendPackedInt32(b, 14, enumValues(m.SupportedSwingModes))
	b = appendRepeatedString(b, 15, m.SupportedCustomFanModes)
	b = appendPackedInt32(b, 16, enumValues(m.SupportedPresets))
	b = appendRepeatedString(b, 17, m.SupportedCustomPresets)
	b = appendBool(b, 18, m.DisabledByDefault)
	b = appendString(b, 19, m.Icon)
	return appendInt32(b, 20, int32(m.EntityCategory))
}

func (m *ListEntitiesClimateResponse) UnmarshalWire(data []byte) error {
	*m = ListEntitiesClimateResponse{}
	return walk(data, func(f field) error {
		if m.EntityHeader.take(f) {
			return nil
		}
		var err error
		switch f.Number() {
		case 5:
			m.SupportsCurrentTemperature = f.Bool()
		case 6:
			m.SupportsTwoPointTargetTemperature = f.Bool()
		case 7:
			m.SupportedModes, err = appendEnums(m.SupportedModes, f)
		case 8:
			m.VisualMinTemperature = f.Float()
		case 9:
			m.VisualMaxTemperature = f.Float()
		case 10:
			m.VisualTargetTemperatureStep = f.Float()
		case 12:
			m.SupportsAction = f.Bool()
		case 13:
			m.SupportedFanModes, err = appendEnums(m.SupportedFanModes, f)
		case 14:
			m.SupportedSwingModes, err = appendEnums(m.SupportedSwingModes, f)
		case 15:
			m.SupportedCustomFanModes = append(m.SupportedCustomFanModes, f.Str())
		case 16:
			m.SupportedPresets, err = appendEnums(m.SupportedPresets, f)
		case 17:
			m.SupportedCustomPresets = append(m.SupportedCustomPresets, f.Str())
		case 18:
			m.DisabledByDefault = f.Bool()
		case 19:
			m.Icon = f.Str()
		case 20:
			m.EntityCategory = EntityCategory(f.Int32())
		}
		return err
	})
}

type ClimateStateResponse struct {
	Key                   uint32
	Mode                  ClimateMode
	CurrentTemperature    float32
	TargetTemperature     float32
	TargetTemperatureLow  float32
	TargetTemperatureHigh float32
	FanMode               ClimateFanMode
	SwingMode             ClimateSwingMode
	CustomFanMode         string
	Preset                ClimatePreset
	CustomPreset          string
}

func (*ClimateStateResponse) MessageType() MessageType { return MsgClimateStateResponse }

func (m *ClimateStateResponse) AppendWire(b []byte) []byte {
	b = appendFixed32(b, 1, m.Key)
	b = appendInt32(b, 2, int32(m.Mode))
	b = appendFloat(b, 3, m.CurrentTemperature)
	b = appendFloat(b, 4, m.TargetTemperature)
	b = appendFloat(b, 5, m.TargetTemperatureLow)
	b = appendFloat(b, 6, m.TargetTemperatureHigh)
	b = appendInt32(b, 9, int32(m.FanMode))
	b = appendInt32(b, 10, int32(m.SwingMode))
	b = appendString(b, 11, m.CustomFanMode)
	b = appendInt32(b, 12, int32(m.Preset))
	return appendString(b, 13, m.CustomPreset)
}

func (m *ClimateStateResponse) UnmarshalWire(data []byte) error {
	*m = ClimateStateResponse{}
	return walk(data, func(f field) error {
		switch f.Number() {
		case 1:
			m.Key = f.Fixed32()
		case 2:
			m.Mode = ClimateMode(f.Int32())
		case 3:
			m.CurrentTemperature = f.Float()
		case 4:
			m.TargetTemperature = f.Float()
		case 5:
			m.TargetTemperatureLow = f.Float()
		case 6:
			m.TargetTemperatureHigh = f.Float()
		case 9:
			m.FanMode = ClimateFanMode(f.Int32())
		case 10:
			m.SwingMode = ClimateSwingMode(f.Int32())
		case 11:
			m.CustomFanMode = f.Str()
		case 12:
			m.Preset = ClimatePreset(f.Int32())
		case 13:
			m.CustomPreset = f.Str()
		}
		return nil
	})
}

type ClimateCommandRequest struct {
	Key                  uint32
	HasMode              bool
	Mode                 ClimateMode
	HasTargetTemperature bool
	TargetTemperature    float32
	HasFanMode           bool
	FanMode              ClimateFanMode
	HasSwingMode         bool
	SwingMode            ClimateSwingMode
	HasPreset            bool
	Preset               ClimatePreset
	HasCustomPreset      bool
	CustomPreset         string
}

func (*ClimateCommandRequest) MessageType() MessageType { return MsgClimateCommandRequest }

func (m *ClimateCommandRequest) AppendWire(b []byte) []byte {
	b = appendFixed32(b, 1, m.Key)
	b = appendBool(b, 2, m.HasMode)
	b = appendInt32(b, 3, int32(m.Mode))
	b = appendBool(b, 4, m.HasTargetTemperature)
	b = appendFloat(b, 5, m.TargetTemperature)
	b = appendBool(b, 12, m.HasFanMode)
	b = appendInt32(b, 13, int32(m.FanMode))
	b = appendBool(b, 14, m.HasSwingMode)
	b = appendInt32(b, 15, int32(m.SwingMode))
	b = appendBool(b, 18, m.HasPreset)
	b = appendInt32(b, 19, int32(m.Preset))
	b = appendBool(b, 20, m.HasCustomPreset)
	return appendString(b, 21, m.CustomPreset)
}

func (m *ClimateCommandRequest) UnmarshalWire(data []byte) error {
	*m = ClimateCommandRequest{}
	return walk(data, func(f field) error {
		switch f.Number() {
		case 1:
			m.Key = f.Fixed32()
		case 2:
			m.HasMode = f.Bool()
		case 3:
			m.Mode = ClimateMode(f.Int32())
		case 4:
			m.HasTargetTemperature = f.Bool()
		case 5:
			m.TargetTemperature = f.Float()
		case 12:
			m.HasFanMode = f.Bool()
		case 13:
			m.FanMode = ClimateFanMode(f.Int32())
		case 14:
			m.HasSwingMode = f.Bool()
		case 15:
			m.SwingMode = ClimateSwingMode(f.Int32())
		case 18:
			m.HasPreset = f.Bool()
		case 19:
			m.Preset = ClimatePreset(f.Int32())
		case 20:
			m.HasCustomPreset = f.Bool()
		case 21:
			m.CustomPreset = f.Str()
		}
		return nil
	})
}

// --- valve ---

type ListEntitiesValveResponse struct {
	EntityHeader
	Icon              string
	DisabledByDefault bool
	EntityCategory    EntityCategory
	DeviceClass       string
	AssumedState      bool
	SupportsPosition  bool
	SupportsStop      bool
}

func (*ListEntitiesValveResponse) MessageType() MessageType { return MsgListEntitiesValveResponse }

func (m *ListEntitiesValveResponse) AppendWire(b []byte) []byte {
	b = m.EntityHeader.append(b)
	b = appendString(b, 5, m.Icon)
	b = appendBool(b, 6, m.DisabledByDefault)
	b = appendInt32(b, 7, int32(m.EntityCategory))
	b = appendString(b, 8, m.DeviceClass)
	b = appendBool(b, 9, m.AssumedState)
	b = appendBool(b, 10, m.SupportsPosition)
	return appendBool(b, 11, m.SupportsStop)
}

func (m *ListEntitiesValveResponse) UnmarshalWire(data []byte) error {
	*m = ListEntitiesValveResponse{}
	return walk(data, func(f field) error {
		if m.EntityHeader.take(f) {
			return nil
		}
		switch f.Number() {
		case 5:
			m.Icon = f.Str()
		case 6:
			m.DisabledByDefault = f.Bool()
		case 7:
			m.EntityCategory = EntityCategory(f.Int32())
		case 8:
			m.DeviceClass = f.Str()
		case 9:
			m.AssumedState = f.Bool()
		case 10:
			m.SupportsPosition = f.Bool()
		case 11:
			m.SupportsStop = f.Bool()
		}
		return nil
	})
}

type ValveStateResponse struct {
	Key              uint32
	Position         float32
	CurrentOperation ValveOperation
}

func (*ValveStateResponse) MessageType() MessageType { return MsgValveStateResponse }

func (m *ValveStateResponse) AppendWire(b []byte) []byte {
	b = appendFixed32(b, 1, m.Key)
	b = appendFloat(b, 2, m.Position)
	return appendInt32(b, 3, int32(m.CurrentOperation))
}

func (m *ValveStateResponse) UnmarshalWire(data []byte) error {
	*m = ValveStateResponse{}
	return walk(data, func(f field) error {
		switch f.Number() {
		case 1:
			m.Key = f.Fixed32()
		case 2:
			m.Position = f.Float()
		case 3:
			m.CurrentOperation = ValveOperation(f.Int32())
		}
		return nil
	})
}

type ValveCommandRequest struct {
	Key         uint32
	HasPosition bool
	Position    float32
	Stop        bool
}

func (*ValveCommandRequest) MessageType() MessageType { return MsgValveCommandRequest }

func (m *ValveCommandRequest) AppendWire(b []byte) []byte {
	b = appendFixed32(b, 1, m.Key)
	b = appendBool(b, 2, m.HasPosition)
	b = appendFloat(b, 3, m.Position)
	return appendBool(b, 4, m.Stop)
}

func (m *ValveCommandRequest) UnmarshalWire(data []byte) error {
	*m = ValveCommandRequest{}
	return walk(data, func(f field) error {
		switch f.Number() {
		case 1:
			m.Key = f.Fixed32()
		case 2:
			m.HasPosition = f.Bool()
		case 3:
			m.Position = f.Float()
		case 4:
			m.Stop = f.Bool()
		}
		return nil
	})
}

// --- siren ---

type ListEntitiesSirenResponse struct {
	EntityHeader
	Icon              string
	DisabledByDefault bool
	Tones             []string
	SupportsDuration  bool
	SupportsVolume    bool
	EntityCategory    EntityCategory
}

func (*ListEntitiesSirenResponse) MessageType() MessageType { return MsgListEntitiesSirenResponse }

func (m *ListEntitiesSirenResponse) AppendWire(b []byte) []byte {
	b = m.EntityHeader.append(b)
	b = appendString(b, 5, m.Icon)
	b = appendBool(b, 6, m.DisabledByDefault)
	b = appendRepeatedString(b, 7, m.Tones)
	b = appendBool(b, 8, m.SupportsDuration)
	b = appendBool(b, 9, m.SupportsVolume)
	return appendInt32(b, 10, int32(m.EntityCategory))
}

func (m *ListEntitiesSirenResponse) UnmarshalWire(data []byte) error {
	*m = ListEntitiesSirenResponse{}
	return walk(data, func(f field) error {
		if m.EntityHeader.take(f) {
			return nil
		}
		switch f.Number() {
		case 5:
			m.Icon = f.Str()
		case 6:
			m.DisabledByDefault = f.Bool()
		case 7:
			m.Tones = append(m.Tones, f.Str())
		case 8:
			m.SupportsDuration = f.Bool()
		case 9:
			m.SupportsVolume = f.Bool()
		case 10:
			m.EntityCategory = EntityCategory(f.Int32())
		}
		return nil
	})
}

type SirenStateResponse struct {
	Key   uint32
	State bool
}

func (*SirenStateResponse) MessageType() MessageType { return MsgSirenStateResponse }

func (m *SirenStateResponse) AppendWire(b []byte) []byte {
	b = appendFixed32(b, 1, m.Key)
	return appendBool(b, 2, m.State)
}

func (m *SirenStateResponse) UnmarshalWire(data []byte) error {
	*m = SirenStateResponse{}
	return walk(data, func(f field) error {
		switch f.Number() {
		case 1:
			m.Key = f.Fixed32()
		case 2:
			m.State = f.Bool()
		}
		return nil
	})
}

type SirenCommandRequest struct {
	Key         uint32
	HasState    bool
	State       bool
	HasTone     bool
	Tone        string
	HasDuration bool
	Duration    uint32
	HasVolume   bool
	Volume      float32
}

func (*SirenCommandRequest) MessageType() MessageType { return MsgSirenCommandRequest }

func (m *SirenCommandRequest) AppendWire(b []byte) []byte {
	b = appendFixed32(b, 1, m.Key)
	b = appendBool(b, 2, m.HasState)
	b = appendBool(b, 3, m.State)
	b = appendBool(b, 4, m.HasTone)
	b = appendString(b, 5, m.Tone)
	b = appendBool(b, 6, m.HasDuration)
	b = appendUint32(b, 7, m.Duration)
	b = appendBool(b, 8, m.HasVolume)
	return appendFloat(b, 9, m.Volume)
}

func (m *SirenCommandRequest) UnmarshalWire(data []byte) error {
	*m = SirenCommandRequest{}
	return walk(data, func(f field) error {
		switch f.Number() {
		case 1:
			m.Key = f.Fixed32()
		case 2:
			m.HasState = f.Bool()
		case 3:
			m.State = f.Bool()
		case 4:
			m.HasTone = f.Bool()
		case 5:
			m.Tone = f.Str()
		case 6:
			m.HasDuration = f.Bool()
		case 7:
			m.Duration = f.Uint32()
		case 8:
			m.HasVolume = f.Bool()
		case 9:
			m.Volume = f.Float()
		}
		return nil
	})
}

// --- media player ---

type ListEntitiesMediaPlayerResponse struct {
	EntityHeader
	Icon              string
	DisabledByDefault bool
	EntityCategory    EntityCategory
	SupportsPause     bool
}

func (*ListEntitiesMediaPlayerResponse) MessageType() MessageType {
	return MsgListEntitiesMediaPlayerResponse
}

func (m *ListEntitiesMediaPlayerResponse) AppendWire(b []byte) []byte {
	b = m.EntityHeader.append(b)
	b = appendString(b, 5, m.Icon)
	b = appendBool(b, 6, m.DisabledByDefault)
	b = appendInt32(b, 7, int32(m.EntityCategory))
	return appendBool(b, 8, m.SupportsPause)
}

// UnmarshalWire skips the supported format list.
func (m *ListEntitiesMediaPlayerResponse) UnmarshalWire(data []byte) error {
	*m = ListEntitiesMediaPlayerResponse{}
	return walk(data, func(f field) error {
		if m.EntityHeader.take(f) {
			return nil
		}
		switch f.Number() {
		case 5:
			m.Icon = f.Str()
		case 6:
			m.DisabledByDefault = f.Bool()
		case 7:
			m.EntityCategory = EntityCategory(f.Int32())
		case 8:
			m.SupportsPause = f.Bool()
		}
		return nil
	})
}

type MediaPlayerStateResponse struct {
	Key    uint32
	State  MediaPlayerState
	Volume float32
	Muted  bool
}

func (*MediaPlayerStateResponse) MessageType() MessageType { return MsgMediaPlayerStateResponse }

func (m *MediaPlayerStateResponse) AppendWire(b []byte) []byte {
	b = appendFixed32(b, 1, m.Key)
	b = appendInt32(b, 2, int32(m.State))
	b = appendFloat(b, 3, m.Volume)
	return appendBool(b, 4, m.Muted)
}

func (m *MediaPlayerStateResponse) UnmarshalWire(data []byte) error {
	*m = MediaPlayerStateResponse{}
	return walk(data, func(f field) error {
		switch f.Number() {
		case 1:
			m.Key = f.Fixed32()
		case 2:
			m.State = MediaPlayerState(f.Int32())
		case 3:
			m.Volume = f.Float()
		case 4:
			m.Muted = f.Bool()
		}
		return nil
	})
}

type MediaPlayerCommandRequest struct {
	Key         uint32
	HasCommand  bool
	Command     MediaPlayerCommand
	HasVolume   bool
	Volume      float32
	HasMediaURL bool
	MediaURL    string
}

func (*MediaPlayerCommandRequest) MessageType() MessageType { return MsgMediaPlayerCommandRequest }

func (m *MediaPlayerCommandRequest) AppendWire(b []byte) []byte {
	b = appendFixed32(b, 1, m.Key)
	b = appendBool(b, 2, m.HasCommand)
	b = appendInt32(b, 3, int32(m.Command))
	b = appendBool(b, 4, m.HasVolume)
	b = appendFloat(b, 5, m.Volume)
	b = appendBool(b, 6, m.HasMediaURL)
	return appendString(b, 7, m.MediaURL)
}

func (m *MediaPlayerCommandRequest) UnmarshalWire(data []byte) error {
	*m = MediaPlayerCommandRequest{}
	return walk(data, func(f field) error {
		switch f.Number() {
		case 1:
			m.Key = f.Fixed32()
		case 2:
			m.HasCommand = f.Bool()
		case 3:
			m.Command = MediaPlayerCommand(f.Int32())
		case 4:
			m.HasVolume = f.Bool()
		case 5:
			m.Volume = f.Float()
		case 6:
			m.HasMediaURL = f.Bool()
		case 7:
			m.MediaURL = f.Str()
		}
		return nil
	})
}

// --- alarm control panel ---

type ListEntitiesAlarmControlPanelResponse struct {
	EntityHeader
	Icon              string
	DisabledByDefault bool
	EntityCategory    EntityCategory
	SupportedFeatures uint32
	RequiresCode      bool
	RequiresCodeToArm bool
}

func (*ListEntitiesAlarmControlPanelResponse) MessageType() MessageType {
	return MsgListEntitiesAlarmControlPanelResponse
}

func (m *ListEntitiesAlarmControlPanelResponse) AppendWire(b []byte) []byte {
	b = m.EntityHeader.append(b)
	b = appendString(b, 5, m.Icon)
	b = appendBool(b, 6, m.DisabledByDefault)
	b = appendInt32(b, 7, int32(m.EntityCategory))
	b = appendUint32(b, 8, m.SupportedFeatures)
	b = appendBool(b, 9, m.RequiresCode)
	return appendBool(b, 10, m.RequiresCodeToArm)
}

func (m *ListEntitiesAlarmControlPanelResponse) UnmarshalWire(data []byte) error {
	*m = ListEntitiesAlarmControlPanelResponse{}
	return walk(data, func(f field) error {
		if m.EntityHeader.take(f) {
			return nil
		}
		switch f.Number() {
		case 5:
			m.Icon = f.Str()
		case 6:
			m.DisabledByDefault = f.Bool()
		case 7:
			m.EntityCategory = EntityCategory(f.Int32())
		case 8:
			m.SupportedFeatures = f.Uint32()
		case 9:
			m.RequiresCode = f.Bool()
		case 10:
			m.RequiresCodeToArm = f.Bool()
		}
		return nil
	})
}

type AlarmControlPanelStateResponse struct {
	Key   uint32
	State AlarmControlPanelState
}

func (*AlarmControlPanelStateResponse) MessageType() MessageType {
	return MsgAlarmControlPanelStateResponse
}

func (m *AlarmControlPanelStateResponse) AppendWire(b []byte) []byte {
	b = appendFixed32(b, 1, m.Key)
	return appendInt32(b, 2, int32(m.State))
}

func (m *AlarmControlPanelStateResponse) UnmarshalWire(data []byte) error {
	*m = AlarmControlPanelStateResponse{}
	return walk(data, func(f field) error {
		switch f.Number() {
		case 1:
			m.Key = f.Fixed32()
		case 2:
			m.State = AlarmControlPanelState(f.Int32())
		}
		return nil
	})
}

type AlarmControlPanelCommandRequest struct {
	Key     uint32
	Command AlarmControlPanelCommand
	Code    string
}

func (*AlarmControlPanelCommandRequest) MessageType() MessageType {
	return MsgAlarmControlPanelCommandRequest
}

func (m *AlarmControlPanelCommandRequest) AppendWire(b []byte) []byte {
	b = appendFixed32(b, 1, m.Key)
	b = appendInt32(b, 2, int32(m.Command))
	return appendString(b, 3, m.Code)
}

func (m *AlarmControlPanelCommandRequest) UnmarshalWire(data []byte) error {
	*m = AlarmControlPanelCommandRequest{}
	return walk(data, func(f field) error {
		switch f.Number() {
		case 1:
			m.Key = f.Fixed32()
		case 2:
			m.Command = AlarmControlPanelCommand(f.Int32())
		case 3:
			m.Code = f.Str()
		}
		return nil
	})
}
