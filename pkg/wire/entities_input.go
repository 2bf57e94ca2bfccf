package wire

// appendInputInfo encodes the fields shared by the text, date, time,
// datetime, update and event list responses.
func appendInputInfo(b []byte, h *EntityHeader, icon string, disabled bool, cat EntityCategory) []byte {
	b = h.append(b)
	b = appendString(b, 5, icon)
	b = appendBool(b, 6, disabled)
	return appendInt32(b, 7, int32(cat))
}

// takeInputInfo consumes a shared field and reports whether f was one.
func takeInputInfo(f field, h *EntityHeader, icon *string, disabled *bool, cat *EntityCategory) bool {
	if h.take(f) {
		return true
	}
	switch f.Number() {
	case 5:
		*icon = f.Str()
	case 6:
		*disabled = f.Bool()
	case 7:
		*cat = EntityCategory(f.Int32())
	default:
		return false
	}
	return true
}

// --- text ---

type ListEntitiesTextResponse struct {
	EntityHeader
	Icon              string
	DisabledByDefault bool
	EntityCategory    EntityCategory
	MinLength         uint32
	MaxLength         uint32
	Pattern           string
	Mode              TextMode
}

func (*ListEntitiesTextResponse) MessageType() MessageType { return MsgListEntitiesTextResponse }

func (m *ListEntitiesTextResponse) AppendWire(b []byte) []byte {
	b = appendInputInfo(b, &m.EntityHeader, m.Icon, m.DisabledByDefault, m.EntityCategory)
	b = appendUint32(b, 8, m.MinLength)
	b = appendUint32(b, 9, m.MaxLength)
	b = appendString(b, 10, m.Pattern)
	return appendInt32(b, 11, int32(m.Mode))
}

func (m *ListEntitiesTextResponse) UnmarshalWire(data []byte) error {
	*m = ListEntitiesTextResponse{}
	return walk(data, func(f field) error {
		if takeInputInfo(f, &m.EntityHeader, &m.Icon, &m.DisabledByDefault, &m.EntityCategory) {
			return nil
		}
		switch f.Number() {
		case 8:
			m.MinLength = f.Uint32()
		case 9:
			m.MaxLength = f.Uint32()
		case 10:
			m.Pattern = f.Str()
		case 11:
			m.Mode = TextMode(f.Int32())
		}
		return nil
	})
}

type TextStateResponse struct {
	Key          uint32
	State        string
	MissingState bool
}

func (*TextStateResponse) MessageType() MessageType { return MsgTextStateResponse }

func (m *TextStateResponse) AppendWire(b []byte) []byte {
	b = appendFixed32(b, 1, m.Key)
	b = appendString(b, 2, m.State)
	return appendBool(b, 3, m.MissingState)
}

func (m *TextStateResponse) UnmarshalWire(data []byte) error {
	*m = TextStateResponse{}
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

type TextCommandRequest struct {
	Key   uint32
	State string
}

func (*TextCommandRequest) MessageType() MessageType { return MsgTextCommandRequest }

func (m *TextCommandRequest) AppendWire(b []byte) []byte {
	b = appendFixed32(b, 1, m.Key)
	return appendString(b, 2, m.State)
}

func (m *TextCommandRequest) UnmarshalWire(data []byte) error {
	*m = TextCommandRequest{}
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

// --- date ---

type ListEntitiesDateResponse struct {
	EntityHeader
	Icon              string
	DisabledByDefault bool
	EntityCategory    EntityCategory
}

func (*ListEntitiesDateResponse) MessageType() MessageType { return MsgListEntitiesDateResponse }

func (m *ListEntitiesDateResponse) AppendWire(b []byte) []byte {
	return appendInputInfo(b, &m.EntityHeader, m.Icon, m.DisabledByDefault, m.EntityCategory)
}

func (m *ListEntitiesDateResponse) UnmarshalWire(data []byte) error {
	*m = ListEntitiesDateResponse{}
	return walk(data, func(f field) error {
		takeInputInfo(f, &m.EntityHeader, &m.Icon, &m.DisabledByDefault, &m.EntityCategory)
		return nil
	})
}

type DateStateResponse struct {
	Key          uint32
	MissingState bool
	Year         uint32
	Month        uint32
	Day          uint32
}

func (*DateStateResponse) MessageType() MessageType { return MsgDateStateResponse }

func (m *DateStateResponse) AppendWire(b []byte) []byte {
	b = appendFixed32(b, 1, m.Key)
	b = appendBool(b, 2, m.MissingState)
	b = appendUint32(b, 3, m.Year)
	b = appendUint32(b, 4, m.Month)
	return appendUint32(b, 5, m.Day)
}

func (m *DateStateResponse) UnmarshalWire(data []byte) error {
	*m = DateStateResponse{}
	return walk(data, func(f field) error {
		switch f.Number() {
		case 1:
			m.Key = f.Fixed32()
		case 2:
			m.MissingState = f.Bool()
		case 3:
			m.Year = f.Uint32()
		case 4:
			m.Month = f.Uint32()
		case 5:
			m.Day = f.Uint32()
		}
		return nil
	})
}

type DateCommandRequest struct {
	Key   uint32
	Year  uint32
	Month uint32
	Day   uint32
}

func (*DateCommandRequest) MessageType() MessageType { return MsgDateCommandRequest }

func (m *DateCommandRequest) AppendWire(b []byte) []byte {
	b = appendFixed32(b, 1, m.Key)
	b = appendUint32(b, 2, m.Year)
	b = appendUint32(b, 3, m.Month)
	return appendUint32(b, 4, m.Day)
}

func (m *DateCommandRequest) UnmarshalWire(data []byte) error {
	*m = DateCommandRequest{}
	return walk(data, func(f field) error {
		switch f.Number() {
		case 1:
			m.Key = f.Fixed32()
		case 2:
			m.Year = f.Uint32()
		case 3:
			m.Month = f.Uint32()
		case 4:
			m.Day = f.Uint32()
		}
		return nil
	})
}

// --- time ---

type ListEntitiesTimeResponse struct {
	EntityHeader
	Icon              string
	DisabledByDefault bool
	EntityCategory    EntityCategory
}

func (*ListEntitiesTimeResponse) MessageType() MessageType { return MsgListEntitiesTimeResponse }

func (m *ListEntitiesTimeResponse) AppendWire(b []byte) []byte {
	return appendInputInfo(b, &m.EntityHeader, m.Icon, m.DisabledByDefault, m.EntityCategory)
}

func (m *ListEntitiesTimeResponse) UnmarshalWire(data []byte) error {
	*m = ListEntitiesTimeResponse{}
	return walk(data, func(f field) error {
		takeInputInfo(f, &m.EntityHeader, &m.Icon, &m.DisabledByDefault, &m.EntityCategory)
		return nil
	})
}

type TimeStateResponse struct {
	Key          uint32
	MissingState bool
	Hour         uint32
	Minute       uint32
	Second       uint32
}

func (*TimeStateResponse) MessageType() MessageType { return MsgTimeStateResponse }

func (m *TimeStateResponse) AppendWire(b []byte) []byte {
	b = appendFixed32(b, 1, m.Key)
	b = appendBool(b, 2, m.MissingState)
	b = appendUint32(b, 3, m.Hour)
	b = appendUint32(b, 4, m.Minute)
	return appendUint32(b, 5, m.Second)
}

func (m *TimeStateResponse) UnmarshalWire(data []byte) error {
	*m = TimeStateResponse{}
	return walk(data, func(f field) error {
		switch f.Number() {
		case 1:
			m.Key = f.Fixed32()
		case 2:
			m.MissingState = f.Bool()
		case 3:
			m.Hour = f.Uint32()
		case 4:
			m.Minute = f.Uint32()
		case 5:
			m.Second = f.Uint32()
		}
		return nil
	})
}

type TimeCommandRequest struct {
	Key    uint32
	Hour   uint32
	Minute uint32
	Second uint32
}

func (*TimeCommandRequest) MessageType() MessageType { return MsgTimeCommandRequest }

func (m *TimeCommandRequest) AppendWire(b []byte) []byte {
	b = appendFixed32(b, 1, m.Key)
	b = appendUint32(b, 2, m.Hour)
	b = appendUint32(b, 3, m.Minute)
	return appendUint32(b, 4, m.Second)
}

func (m *TimeCommandRequest) UnmarshalWire(data []byte) error {
	*m = TimeCommandRequest{}
	return walk(data, func(f field) error {
		switch f.Number() {
		case 1:
			m.Key = f.Fixed32()
		case 2:
			m.Hour = f.Uint32()
		case 3:
			m.Minute = f.Uint32()
		case 4:
			m.Second = f.Uint32()
		}
		return nil
	})
}

// --- datetime ---

type ListEntitiesDateTimeResponse struct {
	EntityHeader
	Icon              string
	DisabledByDefault bool
	EntityCategory    EntityCategory
}

func (*ListEntitiesDateTimeResponse) MessageType() MessageType {
	return MsgListEntitiesDateTimeResponse
}

func (m *ListEntitiesDateTimeResponse) AppendWire(b []byte) []byte {
	return appendInputInfo(b, &m.EntityHeader, m.Icon, m.DisabledByDefault, m.EntityCategory)
}

func (m *ListEntitiesDateTimeResponse) UnmarshalWire(data []byte) error {
	*m = ListEntitiesDateTimeResponse{}
	return walk(data, func(f field) error {
		takeInputInfo(f, &m.EntityHeader, &m.Icon, &m.DisabledByDefault, &m.EntityCategory)
		return nil
	})
}

type DateTimeStateResponse struct {
	Key          uint32
	MissingState bool
	EpochSeconds uint32
}

func (*DateTimeStateResponse) MessageType() MessageType { return MsgDateTimeStateResponse }

func (m *DateTimeStateResponse) AppendWire(b []byte) []byte {
	b = appendFixed32(b, 1, m.Key)
	b = appendBool(b, 2, m.MissingState)
	return appendFixed32(b, 3, m.EpochSeconds)
}

func (m *DateTimeStateResponse) UnmarshalWire(data []byte) error {
	*m = DateTimeStateResponse{}
	return walk(data, func(f field) error {
		switch f.Number() {
		case 1:
			m.Key = f.Fixed32()
		case 2:
			m.MissingState = f.Bool()
		case 3:
			m.EpochSeconds = f.Fixed32()
		}
		return nil
	})
}

type DateTimeCommandRequest struct {
	Key          uint32
	EpochSeconds uint32
}

func (*DateTimeCommandRequest) MessageType() MessageType { return MsgDateTimeCommandRequest }

func (m *DateTimeCommandRequest) AppendWire(b []byte) []byte {
	b = appendFixed32(b, 1, m.Key)
	return appendFixed32(b, 2, m.EpochSeconds)
}

func (m *DateTimeCommandRequest) UnmarshalWire(data []byte) error {
	*m = DateTimeCommandRequest{}
	return walk(data, func(f field) error {
		switch f.Number() {
		case 1:
			m.Key = f.Fixed32()
		case 2:
			m.EpochSeconds = f.Fixed32()
		}
		return nil
	})
}

// --- update ---

type ListEntitiesUpdateResponse struct {
	EntityHeader
	Icon              string
	DisabledByDefault bool
	EntityCategory    EntityCategory
	DeviceClass       string
}

func (*ListEntitiesUpdateResponse) MessageType() MessageType { return MsgListEntitiesUpdateResponse }

func (m *ListEntitiesUpdateResponse) AppendWire(b []byte) []byte {
	b = appendInputInfo(b, &m.EntityHeader, m.Icon, m.DisabledByDefault, m.EntityCategory)
	return appendString(b, 8, m.DeviceClass)
}

func (m *ListEntitiesUpdateResponse) UnmarshalWire(data []byte) error {
	*m = ListEntitiesUpdateResponse{}
	return walk(data, func(f field) error {
		if takeInputInfo(f, &m.EntityHeader, &m.Icon, &m.DisabledByDefault, &m.EntityCategory) {
			return nil
		}
		if f.Number() == 8 {
			m.DeviceClass = f.Str()
		}
		return nil
	})
}

type UpdateStateResponse struct {
	Key            uint32
	MissingState   bool
	InProgress     bool
	HasProgress    bool
	Progress       float32
	CurrentVersion string
	LatestVersion  string
	Title          string
	ReleaseSummary string
	ReleaseURL     string
}

func (*UpdateStateResponse) MessageType() MessageType { return MsgUpdateStateResponse }

func (m *UpdateStateResponse) AppendWire(b []byte) []byte {
	b = appendFixed32(b, 1, m.Key)
	b = appendBool(b, 2, m.MissingState)
	b = appendBool(b, 3, m.InProgress)
	b = appendBool(b, 4, m.HasProgress)
	b = appendFloat(b, 5, m.Progress)
	b = appendString(b, 6, m.CurrentVersion)
	b = appendString(b, 7, m.LatestVersion)
	b = appendString(b, 8, m.Title)
	b = appendString(b, 9, m.ReleaseSummary)
	return appendString(b, 10, m.ReleaseURL)
}

func (m *UpdateStateResponse) UnmarshalWire(data []byte) error {
	*m = UpdateStateResponse{}
	return walk(data, func(f field) error {
		switch f.Number() {
		case 1:
			m.Key = f.Fixed32()
		case 2:
			m.MissingState = f.Bool()
		case 3:
			m.InProgress = f.Bool()
		case 4:
			m.HasProgress = f.Bool()
		case 5:
			m.Progress = f.Float()
		case 6:
			m.CurrentVersion = f.Str()
		case 7:
			m.LatestVersion = f.Str()
		case 8:
			m.Title = f.Str()
		case 9:
			m.ReleaseSummary = f.Str()
		case 10:
			m.ReleaseURL = f.Str()
		}
		return nil
	})
}

type UpdateCommandRequest struct {
	Key     uint32
	Command UpdateCommand
}

func (*UpdateCommandRequest) MessageType() MessageType { return MsgUpdateCommandRequest }

func (m *UpdateCommandRequest) AppendWire(b []byte) []byte {
	b = appendFixed32(b, 1, m.Key)
	return appendInt32(b, 2, int32(m.Command))
}

func (m *UpdateCommandRequest) UnmarshalWire(data []byte) error {
	*m = UpdateCommandRequest{}
	return walk(data, func(f field) error {
		switch f.Number() {
		case 1:
			m.Key = f.Fixed32()
		case 2:
			m.Command = UpdateCommand(f.Int32())
		}
		return nil
	})
}

// --- event and camera (discovery only) ---

type ListEntitiesEventResponse struct {
	EntityHeader
	Icon              string
	DisabledByDefault bool
	EntityCategory    EntityCategory
	DeviceClass       string
	EventTypes        []string
}

func (*ListEntitiesEventResponse) MessageType() MessageType { return MsgListEntitiesEventResponse }

func (m *ListEntitiesEventResponse) AppendWire(b []byte) []byte {
	b = appendInputInfo(b, &m.EntityHeader, m.Icon, m.DisabledByDefault, m.EntityCategory)
	b = appendString(b, 8, m.DeviceClass)
	return appendRepeatedString(b, 9, m.EventTypes)
}

func (m *ListEntitiesEventResponse) UnmarshalWire(data []byte) error {
	*m = ListEntitiesEventResponse{}
	return walk(data, func(f field) error {
		if takeInputInfo(f, &m.EntityHeader, &m.Icon, &m.DisabledByDefault, &m.EntityCategory) {
			return nil
		}
		switch f.Number() {
		case 8:
			m.DeviceClass = f.Str()
		case 9:
			m.EventTypes = append(m.EventTypes, f.Str())
		}
		return nil
	})
}

// ListEntitiesCameraResponse has disabled_by_default at 5 and icon at 6,
// unlike the other input list responses.
type ListEntitiesCameraResponse struct {
	EntityHeader
	DisabledByDefault bool
	Icon              string
	EntityCategory    EntityCategory
}

func (*ListEntitiesCameraResponse) MessageType() MessageType { return MsgListEntitiesCameraResponse }

func (m *ListEntitiesCameraResponse) AppendWire(b []byte) []byte {
	b = m.EntityHeader.append(b)
	b = appendBool(b, 5, m.DisabledByDefault)
	b = appendString(b, 6, m.Icon)
	return appendInt32(b, 7, int32(m.EntityCategory))
}

func (m *ListEntitiesCameraResponse) UnmarshalWire(data []byte) error {
	*m = ListEntitiesCameraResponse{}
	return walk(data, func(f field) error {
		if m.EntityHeader.take(f) {
			return nil
		}
		switch f.Number() {
		case 5:
			m.DisabledByDefault = f.Bool()
		case 6:
			m.Icon = f.Str()
		case 7:
			m.EntityCategory = EntityCategory(f.Int32())
		}
		return nil
	})
}
