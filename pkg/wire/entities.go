package wire

// EntityHeader is the identity shared by every ListEntities<Kind>Response.
type EntityHeader struct {
	ObjectID string
	Key      uint32
	Name     string
	UniqueID string
}

func (h *EntityHeader) append(b []byte) []byte {
	b = appendString(b, 1, h.ObjectID)
	b = appendFixed32(b, 2, h.Key)
	b = appendString(b, 3, h.Name)
	return appendString(b, 4, h.UniqueID)
}

// take consumes a header field and reports whether f was one.
func (h *EntityHeader) take(f field) bool {
	switch f.Number() {
	case 1:
		h.ObjectID = f.Str()
	case 2:
		h.Key = f.Fixed32()
	case 3:
		h.Name = f.Str()
	case 4:
		h.UniqueID = f.Str()
	default:
		return false
	}
	return true
}

// DecodeEntityHeader reads the identity fields of any list response,
// including kinds this package has no message struct for.
func DecodeEntityHeader(data []byte) (EntityHeader, error) {
	var h EntityHeader
	err := walk(data, func(f field) error {
		h.take(f)
		return nil
	})
	return h, err
}

// DecodeStateKey reads the entity key of any state response.
func DecodeStateKey(data []byte) (uint32, error) {
	var key uint32
	err := walk(data, func(f field) error {
		if f.Number() == 1 {
			key = f.Fixed32()
		}
		return nil
	})
	return key, err
}

// --- binary sensor ---

type ListEntitiesBinarySensorResponse struct {
	EntityHeader
	DeviceClass       string
	IsStatusBinary    bool
	DisabledByDefault bool
	Icon              string
	EntityCategory    EntityCategory
}

func (*ListEntitiesBinarySensorResponse) MessageType() MessageType {
	return MsgListEntitiesBinarySensorResponse
}

func (m *ListEntitiesBinarySensorResponse) AppendWire(b []byte) []byte {
	b = m.EntityHeader.append(b)
	b = appendString(b, 5, m.DeviceClass)
	b = appendBool(b, 6, m.IsStatusBinary)
	b = appendBool(b, 7, m.DisabledByDefault)
	b = appendString(b, 8, m.Icon)
	return appendInt32(b, 9, int32(m.EntityCategory))
}

func (m *ListEntitiesBinarySensorResponse) UnmarshalWire(data []byte) error {
	*m = ListEntitiesBinarySensorResponse{}
	return walk(data, func(f field) error {
		if m.EntityHeader.take(f) {
			return nil
		}
		switch f.Number() {
		case 5:
			m.DeviceClass = f.Str()
		case 6:
			m.IsStatusBinary = f.Bool()
		case 7:
			m.DisabledByDefault = f.Bool()
		case 8:
			m.Icon = f.Str()
		case 9:
			m.EntityCategory = EntityCategory(f.Int32())
		}
		return nil
	})
}

type BinarySensorStateResponse struct {
	Key          uint32
	State        bool
	MissingState bool
}

func (*BinarySensorStateResponse) MessageType() MessageType { return MsgBinarySensorStateResponse }

func (m *BinarySensorStateResponse) AppendWire(b []byte) []byte {
	b = appendFixed32(b, 1, m.Key)
	b = appendBool(b, 2, m.State)
	return appendBool(b, 3, m.MissingState)
}

func (m *BinarySensorStateResponse) UnmarshalWire(data []byte) error {
	*m = BinarySensorStateResponse{}
	return walk(data, func(f field) error {
		switch f.Number() {
		case 1:
			m.Key = f.Fixed32()
		case 2:
			m.State = f.Bool()
		case 3:
			m.MissingState = f.Bool()
		}
		return nil
	})
}

// --- sensor ---

type ListEntitiesSensorResponse struct {
	EntityHeader
	Icon              string
	UnitOfMeasurement string
	AccuracyDecimals  int32
	ForceUpdate       bool
	DeviceClass       string
	StateClass        SensorStateClass
	DisabledByDefault bool
	EntityCategory    EntityCategory
}

func (*ListEntitiesSensorResponse) MessageType() MessageType { return MsgListEntitiesSensorResponse }

func (m *ListEntitiesSensorResponse) AppendWire(b []byte) []byte {
	b = m.EntityHeader.append(b)
	b = appendString(b, 5, m.Icon)
	b = appendString(b, 6, m.UnitOfMeasurement)
	b = appendInt32(b, 7, m.AccuracyDecimals)
	b = appendBool(b, 8, m.ForceUpdate)
	b = appendString(b, 9, m.DeviceClass)
	b = appendInt32(b, 10, int32(m.StateClass))
	b = appendBool(b, 12, m.DisabledByDefault)
	return appendInt32(b, 13, int32(m.EntityCategory))
}

func (m *ListEntitiesSensorResponse) UnmarshalWire(data []byte) error {
	*m = ListEntitiesSensorResponse{}
	return walk(data, func(f field) error {
		if m.EntityHeader.take(f) {
			return nil
		}
		switch f.Number() {
		case 5:
			m.Icon = f.Str()
		case 6:
			m.UnitOfMeasurement = f.Str()
		case 7:
			m.AccuracyDecimals = f.Int32()
		case 8:
			m.ForceUpdate = f.Bool()
		case 9:
			m.DeviceClass = f.Str()
		case 10:
			m.StateClass = SensorStateClass(f.Int32())
		case 12:
			m.DisabledByDefault = f.Bool()
		case 13:
			m.EntityCategory = EntityCategory(f.Int32())
		}
		return nil
	})
}

type SensorStateResponse struct {
	Key          uint32
	State        float32
	MissingState bool
}

func (*SensorStateResponse) MessageType() MessageType { return MsgSensorStateResponse }

func (m *SensorStateResponse) AppendWire(b []byte) []byte {
	b = appendFixed32(b, 1, m.Key)
	b = appendFloat(b, 2, m.State)
	return appendBool(b, 3, m.MissingState)
}

func (m *SensorStateResponse) UnmarshalWire(data []byte) error {
	*m = SensorStateResponse{}
	return walk(data, func(f field) error {
		switch f.Number() {
		case 1:
			m.Key = f.Fixed32()
		case 2:
			m.State = f.Float()
		case 3:
			m.MissingState = f.Bool()
		}
		return nil
	})
}

// --- text sensor ---

type ListEntitiesTextSensorResponse struct {
	EntityHeader
	Icon              string
	DisabledByDefault bool
	EntityCategory    EntityCategory
	DeviceClass       string
}

func (*ListEntitiesTextSensorResponse) MessageType() MessageType {
	return MsgListEntitiesTextSensorResponse
}

func (m *ListEntitiesTextSensorResponse) AppendWire(b []byte) []byte {
	b = m.EntityHeader.append(b)
	b = appendString(b, 5, m.Icon)
	b = appendBool(b, 6, m.DisabledByDefault)
	b = appendInt32(b, 7, int32(m.EntityCategory))
	return appendString(b, 8, m.DeviceClass)
}

func (m *ListEntitiesTextSensorResponse) UnmarshalWire(data []byte) error {
	*m = ListEntitiesTextSensorResponse{}
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
		}
		return nil
	})
}

type TextSensorStateResponse struct {
	Key          uint32
	State        string
	MissingState bool
}

func (*TextSensorStateResponse) MessageType() MessageType { return MsgTextSensorStateResponse }

func (m *TextSensorStateResponse) AppendWire(b []byte) []byte {
	b = appendFixed32(b, 1, m.Key)
	b = appendString(b, 2, m.State)
	return appendBool(b, 3, m.MissingState)
}

func (m *TextSensorStateResponse) UnmarshalWire(data []byte) error {
	*m = TextSensorStateResponse{}
	return walk(data, func(f field) error {
		switch f.Number() {
		case 1:
			m.Key = f.Fixed32()
		case 2:
			m.State = f.Str()
		case 3:
			m.MissingState = f.Bool()
		}
		return nil
	})
}

// --- switch ---

type ListEntitiesSwitchResponse struct {
	EntityHeader
	Icon              string
	AssumedState      bool
	DisabledByDefault bool
	EntityCategory    EntityCategory
	DeviceClass       string
}

func (*ListEntitiesSwitchResponse) MessageType() MessageType { return MsgListEntitiesSwitchResponse }

func (m *ListEntitiesSwitchResponse) AppendWire(b []byte) []byte {
	b = m.EntityHeader.append(b)
	b = appendString(b, 5, m.Icon)
	b = appendBool(b, 6, m.AssumedState)
	b = appendBool(b, 7, m.DisabledByDefault)
	b = appendInt32(b, 8, int32(m.EntityCategory))
	return appendString(b, 9, m.DeviceClass)
}

func (m *ListEntitiesSwitchResponse) UnmarshalWire(data []byte) error {
	*m = ListEntitiesSwitchResponse{}
	return walk(data, func(f field) error {
		if m.EntityHeader.take(f) {
			return nil
		}
		switch f.Number() {
		case 5:
			m.Icon = f.Str()
		case 6:
			m.AssumedState = f.Bool()
		case 7:
			m.DisabledByDefault = f.Bool()
		case 8:
			m.EntityCategory = EntityCategory(f.Int32())
		case 9:
			m.DeviceClass = f.Str()
		}
		return nil
	})
}

type SwitchStateResponse struct {
	Key   uint32
	State bool
}

func (*SwitchStateResponse) MessageType() MessageType { return MsgSwitchStateResponse }

func (m *SwitchStateResponse) AppendWire(b []byte) []byte {
	b = appendFixed32(b, 1, m.Key)
	return appendBool(b, 2, m.State)
}

func (m *SwitchStateResponse) UnmarshalWire(data []byte) error {
	*m = SwitchStateResponse{}
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

type SwitchCommandRequest struct {
	Key   uint32
	State bool
}

func (*SwitchCommandRequest) MessageType() MessageType { return MsgSwitchCommandRequest }

func (m *SwitchCommandRequest) AppendWire(b []byte) []byte {
	b = appendFixed32(b, 1, m.Key)
	return appendBool(b, 2, m.State)
}

func (m *SwitchCommandRequest) UnmarshalWire(data []byte) error {
	*m = SwitchCommandRequest{}
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

// --- button ---

type ListEntitiesButtonResponse struct {
	EntityHeader
	Icon              string
	DisabledByDefault bool
	EntityCategory    EntityCategory
	DeviceClass       string
}

func (*ListEntitiesButtonResponse) MessageType() MessageType { return MsgListEntitiesButtonResponse }

func (m *ListEntitiesButtonResponse) AppendWire(b []byte) []byte {
	b = m.EntityHeader.append(b)
	b = appendString(b, 5, m.Icon)
	b = appendBool(b, 6, m.DisabledByDefault)
	b = appendInt32(b, 7, int32(m.EntityCategory))
	return appendString(b, 8, m.DeviceClass)
}

func (m *ListEntitiesButtonResponse) UnmarshalWire(data []byte) error {
	*m = ListEntitiesButtonResponse{}
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
		}
		return nil
	})
}

type ButtonCommandRequest struct {
	Key uint32
}

func (*ButtonCommandRequest) MessageType() MessageType { return MsgButtonCommandRequest }

func (m *ButtonCommandRequest) AppendWire(b []byte) []byte {
	return appendFixed32(b, 1, m.Key)
}

func (m *ButtonCommandRequest) UnmarshalWire(data []byte) error {
	*m = ButtonCommandRequest{}
	return walk(data, func(f field) error {
		if f.Number() == 1 {
			m.Key = f.Fixed32()
		}
		return nil
	})
}

// --- light ---

type ListEntitiesLightResponse struct {
	EntityHeader
	MinMireds           float32
	MaxMireds           float32
	Effects             []string
	SupportedColorModes []ColorMode
	DisabledByDefault   bool
	Icon                string
	EntityCategory      EntityCategory
}

func (*ListEntitiesLightResponse) MessageType() MessageType { return MsgListEntitiesLightResponse }

func (m *ListEntitiesLightResponse) AppendWire(b []byte) []byte {
	b = m.EntityHeader.append(b)
	b = appendFloat(b, 9, m.MinMireds)
	b = appendFloat(b, 10, m.MaxMireds)
	b = appendRepeatedString(b, 11, m.Effects)
	b = appendPackedInt32(b, 12, enumValues(m.SupportedColorModes))
	b = appendBool(b, 13, m.DisabledByDefault)
	b = appendString(b, 14, m.Icon)
	return appendInt32(b, 15, int32(m.EntityCategory))
}

func (m *ListEntitiesLightResponse) UnmarshalWire(data []byte) error {
	*m = ListEntitiesLightResponse{}
	return walk(data, func(f field) error {
		if m.EntityHeader.take(f) {
			return nil
		}
		switch f.Number() {
		case 9:
			m.MinMireds = f.Float()
		case 10:
			m.MaxMireds = f.Float()
		case 11:
			m.Effects = append(m.Effects, f.Str())
		case 12:
			var err error
			if m.SupportedColorModes, err = appendEnums(m.SupportedColorModes, f); err != nil {
				return err
			}
		case 13:
			m.DisabledByDefault = f.Bool()
		case 14:
			m.Icon = f.Str()
		case 15:
			m.EntityCategory = EntityCategory(f.Int32())
		}
		return nil
	})
}

type LightStateResponse struct {
	Key              uint32
	State            bool
	Brightness       float32
	ColorMode        ColorMode
	ColorBrightness  float32
	Red              float32
	Green            float32
	Blue             float32
	White            float32
	ColorTemperature float32
	ColdWhite        float32
	WarmWhite        float32
	Effect           string
}

func (*LightStateResponse) MessageType() MessageType { return MsgLightStateResponse }

func (m *LightStateResponse) AppendWire(b []byte) []byte {
	b = appendFixed32(b, 1, m.Key)
	b = appendBool(b, 2, m.State)
	b = appendFloat(b, 3, m.Brightness)
	b = appendFloat(b, 4, m.Red)
	b = appendFloat(b, 5, m.Green)
	b = appendFloat(b, 6, m.Blue)
	b = appendFloat(b, 7, m.White)
	b = appendFloat(b, 8, m.ColorTemperature)
	b = appendString(b, 9, m.Effect)
	b = appendFloat(b, 10, m.ColorBrightness)
	b = appendInt32(b, 11, int32(m.ColorMode))
	b = appendFloat(b, 12, m.ColdWhite)
	return appendFloat(b, 13, m.WarmWhite)
}

func (m *LightStateResponse) UnmarshalWire(data []byte) error {
	*m = LightStateResponse{}
	return walk(data, func(f field) error {
		switch f.Number() {
		case 1:
			m.Key = f.Fixed32()
		case 2:
			m.State = f.Bool()
		case 3:
			m.Brightness = f.Float()
		case 4:
			m.Red = f.Float()
		case 5:
			m.Green = f.Float()
		case 6:
			m.Blue = f.Float()
		case 7:
			m.White = f.Float()
		case 8:
			m.ColorTemperature = f.Float()
		case 9:
			m.Effect = f.Str()
		case 10:
			m.ColorBrightness = f.Float()
		case 11:
			m.ColorMode = ColorMode(f.Int32())
		case 12:
			m.ColdWhite = f.Float()
		case 13:
			m.WarmWhite = f.Float()
		}
		return nil
	})
}

// LightCommandRequest changes a light. Each value is applied only when its
// Has flag is set.
type LightCommandRequest struct {
	Key                 uint32
	HasState            bool
	State               bool
	HasBrightness       bool
	Brightness          float32
	HasColorMode        bool
	ColorMode           ColorMode
	HasColorBrightness  bool
	ColorBrightness     float32
	HasRGB              bool
	Red                 float32
	Green               float32
	Blue                float32
	HasWhite            bool
	White               float32
	HasColorTemperature bool
	ColorTemperature    float32
	HasTransitionLength bool
	TransitionLength    uint32
	HasEffect           bool
	Effect              string
}

func (*LightCommandRequest) MessageType() MessageType { return MsgLightCommandRequest }

func (m *LightCommandRequest) AppendWire(b []byte) []byte {
	b = appendFixed32(b, 1, m.Key)
	b = appendBool(b, 2, m.HasState)
	b = appendBool(b, 3, m.State)
	b = appendBool(b, 4, m.HasBrightness)
	b = appendFloat(b, 5, m.Brightness)
	b = appendBool(b, 6, m.HasRGB)
	b = appendFloat(b, 7, m.Red)
	b = appendFloat(b, 8, m.Green)
	b = appendFloat(b, 9, m.Blue)
	b = appendBool(b, 10, m.HasWhite)
	b = appendFloat(b, 11, m.White)
	b = appendBool(b, 12, m.HasColorTemperature)
	b = appendFloat(b, 13, m.ColorTemperature)
	b = appendBool(b, 14, m.HasTransitionLength)
	b = appendUint32(b, 15, m.TransitionLength)
	b = appendBool(b, 18, m.HasEffect)
	b = appendString(b, 19, m.Effect)
	b = appendBool(b, 20, m.HasColorBrightness)
	b = appendFloat(b, 21, m.ColorBrightness)
	b = appendBool(b, 22, m.HasColorMode)
	return appendInt32(b, 23, int32(m.ColorMode))
}

func (m *LightCommandRequest) UnmarshalWire(data []byte) error {
	*m = LightCommandRequest{}
	return walk(data, func(f field) error {
		switch f.Number() {
		case 1:
			m.Key = f.Fixed32()
		case 2:
			m.HasState = f.Bool()
		case 3:
			m.State = f.Bool()
		case 4:
			m.HasBrightness = f.Bool()
		case 5:
			m.Brightness = f.Float()
		case 6:
			m.HasRGB = f.Bool()
		case 7:
			m.Red = f.Float()
		case 8:
			m.Green = f.Float()
		case 9:
			m.Blue = f.Float()
		case 10:
			m.HasWhite = f.Bool()
		case 11:
			m.White = f.Float()
		case 12:
			m.HasColorTemperature = f.Bool()
		case 13:
			m.ColorTemperature = f.Float()
		case 14:
			m.HasTransitionLength = f.Bool()
		case 15:
			m.TransitionLength = f.Uint32()
		case 18:
			m.HasEffect = f.Bool()
		case 19:
			m.Effect = f.Str()
		case 20:
			m.HasColorBrightness = f.Bool()
		case 21:
			m.ColorBrightness = f.Float()
		case 22:
			m.HasColorMode = f.Bool()
		case 23:
			m.ColorMode = ColorMode(f.Int32())
		}
		return nil
	})
}

// --- number ---

type ListEntitiesNumberResponse struct {
	EntityHeader
	Icon              string
	MinValue          float32
	MaxValue          float32
	Step              float32
	DisabledByDefault bool
	EntityCategory    EntityCategory
	UnitOfMeasurement string
	Mode              NumberMode
	DeviceClass       string
}

func (*ListEntitiesNumberResponse) MessageType() MessageType { return MsgListEntitiesNumberResponse }

func (m *ListEntitiesNumberResponse) AppendWire(b []byte) []byte {
	b = m.EntityHeader.append(b)
	b = appendString(b, 5, m.Icon)
	b = appendFloat(b, 6, m.MinValue)
	b = appendFloat(b, 7, m.MaxValue)
	b = appendFloat(b, 8, m.Step)
	b = appendBool(b, 9, m.DisabledByDefault)
	b = appendInt32(b, 10, int32(m.EntityCategory))
	b = appendString(b, 11, m.UnitOfMeasurement)
	b = appendInt32(b, 12, int32(m.Mode))
	return appendString(b, 13, m.DeviceClass)
}

func (m *ListEntitiesNumberResponse) UnmarshalWire(data []byte) error {
	*m = ListEntitiesNumberResponse{}
	return walk(data, func(f field) error {
		if m.EntityHeader.take(f) {
			return nil
		}
		switch f.Number() {
		case 5:
			m.Icon = f.Str()
		case 6:
			m.MinValue = f.Float()
		case 7:
			m.MaxValue = f.Float()
		case 8:
			m.Step = f.Float()
		case 9:
			m.DisabledByDefault = f.Bool()
		case 10:
			m.EntityCategory = EntityCategory(f.Int32())
		case 11:
			m.UnitOfMeasurement = f.Str()
		case 12:
			m.Mode = NumberMode(f.Int32())
		case 13:
			m.DeviceClass = f.Str()
		}
		return nil
	})
}

type NumberStateResponse struct {
	Key          uint32
	State        float32
	MissingState bool
}

func (*NumberStateResponse) MessageType() MessageType { return MsgNumberStateResponse }

func (m *NumberStateResponse) AppendWire(b []byte) []byte {
	b = appendFixed32(b, 1, m.Key)
	b = appendFloat(b, 2, m.State)
	return appendBool(b, 3, m.MissingState)
}

func (m *NumberStateResponse) UnmarshalWire(data []byte) error {
	*m = NumberStateResponse{}
	return walk(data, func(f field) error {
		switch f.Number() {
		case 1:
			m.Key = f.Fixed32()
		case 2:
			m.State = f.Float()
		case 3:
			m.MissingState = f.Bool()
		}
		return nil
	})
}

type NumberCommandRequest struct {
	Key   uint32
	State float32
}

func (*NumberCommandRequest) MessageType() MessageType { return MsgNumberCommandRequest }

func (m *NumberCommandRequest) AppendWire(b []byte) []byte {
	b = appendFixed32(b, 1, m.Key)
	return appendFloat(b, 2, m.State)
}

func (m *NumberCommandRequest) UnmarshalWire(data []byte) error {
	*m = NumberCommandRequest{}
	return walk(data, func(f field) error {
		switch f.Number() {
		case 1:
			m.Key = f.Fixed32()
		case 2:
			m.State = f.Float()
		}
		return nil
	})
}

// --- select ---

type ListEntitiesSelectResponse struct {
	EntityHeader
	Icon              string
	Options           []string
	DisabledByDefault bool
	EntityCategory    EntityCategory
}

func (*ListEntitiesSelectResponse) MessageType() MessageType { return MsgListEntitiesSelectResponse }

func (m *ListEntitiesSelectResponse) AppendWire(b []byte) []byte {
	b = m.EntityHeader.append(b)
	b = appendString(b, 5, m.Icon)
	b = appendRepeatedString(b, 6, m.Options)
	b = appendBool(b, 7, m.DisabledByDefault)
	return appendInt32(b, 8, int32(m.EntityCategory))
}

func (m *ListEntitiesSelectResponse) UnmarshalWire(data []byte) error {
	*m = ListEntitiesSelectResponse{}
	return walk(data, func(f field) error {
		if m.EntityHeader.take(f) {
			return nil
		}
		switch f.Number() {
		case 5:
			m.Icon = f.Str()
		case 6:
			m.Options = append(m.Options, f.Str())
		case 7:
			m.DisabledByDefault = f.Bool()
		case 8:
			m.EntityCategory = EntityCategory(f.Int32())
		}
		return nil
	})
}

type SelectStateResponse struct {
	Key          uint32
	State        string
	MissingState bool
}

func (*SelectStateResponse) MessageType() MessageType { return MsgSelectStateResponse }

func (m *SelectStateResponse) AppendWire(b []byte) []byte {
	b = appendFixed32(b, 1, m.Key)
	b = appendString(b, 2, m.State)
	return appendBool(b, 3, m.MissingState)
}

func (m *SelectStateResponse) UnmarshalWire(data []byte) error {
	*m = SelectStateResponse{}
	return walk(data, func(f field) error {
		switch f.Number() {
		case 1:
			m.Key = f.Fixed32()
		case 2:
			m.State = f.Str()
		case 3:
			m.MissingState = f.Bool()
		}
		return nil
	})
}

type SelectCommandRequest struct {
	Key   uint32
	State string
}

func (*SelectCommandRequest) MessageType() MessageType { return MsgSelectCommandRequest }

func (m *SelectCommandRequest) AppendWire(b []byte) []byte {
	b = appendFixed32(b, 1, m.Key)
	return appendString(b, 2, m.State)
}

func (m *SelectCommandRequest) UnmarshalWire(data []byte) error {
	*m = SelectCommandRequest{}
	return walk(data, func(f field) error {
		switch f.Number() {
		case 1:
			m.Key = f.Fixed32()
		case 2:
			m.State = f.Str()
		}
		return nil
	})
}

// --- lock ---

type ListEntitiesLockResponse struct {
	EntityHeader
	Icon              string
	DisabledByDefault bool
	EntityCategory    EntityCategory
	AssumedState      bool
	SupportsOpen      bool
	RequiresCode      bool
	CodeFormat        string
}

func (*ListEntitiesLockResponse) MessageType() MessageType { return MsgListEntitiesLockResponse }

func (m *ListEntitiesLockResponse) AppendWire(b []byte) []byte {
	b = m.EntityHeader.append(b)
	b = appendString(b, 5, m.Icon)
	b = appendBool(b, 6, m.DisabledByDefault)
	b = appendInt32(b, 7, int32(m.EntityCategory))
	b = appendBool(b, 8, m.AssumedState)
	b = appendBool(b, 9, m.SupportsOpen)
	b = appendBool(b, 10, m.RequiresCode)
	return appendString(b, 11, m.CodeFormat)
}

func (m *ListEntitiesLockResponse) UnmarshalWire(data []byte) error {
	*m = ListEntitiesLockResponse{}
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
			m.AssumedState = f.Bool()
		case 9:
			m.SupportsOpen = f.Bool()
		case 10:
			m.RequiresCode = f.Bool()
		case 11:
			m.CodeFormat = f.Str()
		}
		return nil
	})
}

type LockStateResponse struct {
	Key   uint32
	State LockState
}

func (*LockStateResponse) MessageType() MessageType { return MsgLockStateResponse }

func (m *LockStateResponse) AppendWire(b []byte) []byte {
	b = appendFixed32(b, 1, m.Key)
	return appendInt32(b, 2, int32(m.State))
}

func (m *LockStateResponse) UnmarshalWire(data []byte) error {
	*m = LockStateResponse{}
	return walk(data, func(f field) error {
		switch f.Number() {
		case 1:
			m.Key = f.Fixed32()
		case 2:
			m.State = LockState(f.Int32())
		}
		return nil
	})
}

type LockCommandRequest struct {
	Key     uint32
	Command LockCommand
	HasCode bool
	Code    string
}

func (*LockCommandRequest) MessageType() MessageType { return MsgLockCommandRequest }

func (m *LockCommandRequest) AppendWire(b []byte) []byte {
	b = appendFixed32(b, 1, m.Key)
	b = appendInt32(b, 2, int32(m.Command))
	b = appendBool(b, 3, m.HasCode)
	return appendString(b, 4, m.Code)
}

func (m *LockCommandRequest) UnmarshalWire(data []byte) error {
	*m = LockCommandRequest{}
	return walk(data, func(f field) error {
		switch f.Number() {
		case 1:
			m.Key = f.Fixed32()
		case 2:
			m.Command = LockCommand(f.Int32())
		case 3:
			m.HasCode = f.Bool()
		case 4:
			m.Code = f.Str()
		}
		return nil
	})
}
