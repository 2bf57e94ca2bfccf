package wire

// empty implements the body of messages that carry no fields. Unknown
// fields are validated and skipped.
type empty struct{}

func (empty) AppendWire(b []byte) []byte      { return b }
func (empty) UnmarshalWire(data []byte) error { return skipAll(data) }

// HelloRequest opens the handshake at the message layer.
type HelloRequest struct {
	ClientInfo      string
	APIVersionMajor uint32
	APIVersionMinor uint32
}

func (*HelloRequest) MessageType() MessageType { return MsgHelloRequest }

func (m *HelloRequest) AppendWire(b []byte) []byte {
	b = appendString(b, 1, m.ClientInfo)
	b = appendUint32(b, 2, m.APIVersionMajor)
	return appendUint32(b, 3, m.APIVersionMinor)
}

func (m *HelloRequest) UnmarshalWire(data []byte) error {
	*m = HelloRequest{}
	return walk(data, func(f field) error {
		switch f.Number() {
		case 1:
			m.ClientInfo = f.Str()
		case 2:
			m.APIVersionMajor = f.Uint32()
		case 3:
			m.APIVersionMinor = f.Uint32()
		}
		return nil
	})
}

// HelloResponse carries the device's API version and identity.
type HelloResponse struct {
	APIVersionMajor uint32
	APIVersionMinor uint32
	ServerInfo      string
	Name            string
}

func (*HelloResponse) MessageType() MessageType { return MsgHelloResponse }

func (m *HelloResponse) AppendWire(b []byte) []byte {
	b = appendUint32(b, 1, m.APIVersionMajor)
	b = appendUint32(b, 2, m.APIVersionMinor)
	b = appendString(b, 3, m.ServerInfo)
	return appendString(b, 4, m.Name)
}

func (m *HelloResponse) UnmarshalWire(data []byte) error {
	*m = HelloResponse{}
	return walk(data, func(f field) error {
		switch f.Number() {
		case 1:
			m.APIVersionMajor = f.Uint32()
		case 2:
			m.APIVersionMinor = f.Uint32()
		case 3:
			m.ServerInfo = f.Str()
		case 4:
			m.Name = f.Str()
		}
		return nil
	})
}

// ConnectRequest authenticates with the device password.
type ConnectRequest struct {
	Password string
}

func (*ConnectRequest) MessageType() MessageType { return MsgConnectRequest }

func (m *ConnectRequest) AppendWire(b []byte) []byte {
	return appendString(b, 1, m.Password)
}

func (m *ConnectRequest) UnmarshalWire(data []byte) error {
	*m = ConnectRequest{}
	return walk(data, func(f field) error {
		if f.Number() == 1 {
			m.Password = f.Str()
		}
		return nil
	})
}

// ConnectResponse reports whether the password was rejected.
type ConnectResponse struct {
	InvalidPassword bool
}

func (*ConnectResponse) MessageType() MessageType { return MsgConnectResponse }

func (m *ConnectResponse) AppendWire(b []byte) []byte {
	return appendBool(b, 1, m.InvalidPassword)
}

func (m *ConnectResponse) UnmarshalWire(data []byte) error {
	*m = ConnectResponse{}
	return walk(data, func(f field) error {
		if f.Number() == 1 {
			m.InvalidPassword = f.Bool()
		}
		return nil
	})
}

// DisconnectRequest asks the peer to close the session. Either side may send it.
type DisconnectRequest struct{ empty }

func (*DisconnectRequest) MessageType() MessageType { return MsgDisconnectRequest }

// DisconnectResponse acknowledges a DisconnectRequest.
type DisconnectResponse struct{ empty }

func (*DisconnectResponse) MessageType() MessageType { return MsgDisconnectResponse }

// PingRequest is a keepalive request. Either side may send it.
type PingRequest struct{ empty }

func (*PingRequest) MessageType() MessageType { return MsgPingRequest }

// PingResponse answers a PingRequest.
type PingResponse struct{ empty }

func (*PingResponse) MessageType() MessageType { return MsgPingResponse }

// DeviceInfoRequest asks for the device description.
type DeviceInfoRequest struct{ empty }

func (*DeviceInfoRequest) MessageType() MessageType { return MsgDeviceInfoRequest }

// DeviceInfoResponse describes the device firmware and hardware.
type DeviceInfoResponse struct {
	UsesPassword    bool
	Name            string
	MACAddress      string
	ESPHomeVersion  string
	CompilationTime string
	Model           string
	HasDeepSleep    bool
	ProjectName     string
	ProjectVersion  string
	WebserverPort   uint32
	Manufacturer    string
	FriendlyName    string
	SuggestedArea   string
}

func (*DeviceInfoResponse) MessageType() MessageType { return MsgDeviceInfoResponse }

func (m *DeviceInfoResponse) AppendWire(b []byte) []byte {
	b = appendBool(b, 1, m.UsesPassword)
	b = appendString(b, 2, m.Name)
	b = appendString(b, 3, m.MACAddress)
	b = appendString(b, 4, m.ESPHomeVersion)
	b = appendString(b, 5, m.CompilationTime)
	b = appendString(b, 6, m.Model)
	b = appendBool(b, 7, m.HasDeepSleep)
	b = appendString(b, 8, m.ProjectName)
	b = appendString(b, 9, m.ProjectVersion)
	b = appendUint32(b, 10, m.WebserverPort)
	b = appendString(b, 12, m.Manufacturer)
	b = appendString(b, 13, m.FriendlyName)
	return appendString(b, 16, m.SuggestedArea)
}

func (m *DeviceInfoResponse) UnmarshalWire(data []byte) error {
	*m = DeviceInfoResponse{}
	return walk(data, func(f field) error {
		switch f.Number() {
		case 1:
			m.UsesPassword = f.Bool()
		case 2:
			m.Name = f.Str()
		case 3:
			m.MACAddress = f.Str()
		case 4:
			m.ESPHomeVersion = f.Str()
		case 5:
			m.CompilationTime = f.Str()
		case 6:
			m.Model = f.Str()
		case 7:
			m.HasDeepSleep = f.Bool()
		case 8:
			m.ProjectName = f.Str()
		case 9:
			m.ProjectVersion = f.Str()
		case 10:
			m.WebserverPort = f.Uint32()
		case 12:
			m.Manufacturer = f.Str()
		case 13:
			m.FriendlyName = f.Str()
		case 16:
			m.SuggestedArea = f.Str()
		}
		return nil
	})
}

// ListEntitiesRequest starts entity discovery.
type ListEntitiesRequest struct{ empty }

func (*ListEntitiesRequest) MessageType() MessageType { return MsgListEntitiesRequest }

// ListEntitiesDoneResponse ends entity discovery.
type ListEntitiesDoneResponse struct{ empty }

func (*ListEntitiesDoneResponse) MessageType() MessageType { return MsgListEntitiesDoneResponse }

// SubscribeStatesRequest asks the device to stream state updates.
type SubscribeStatesRequest struct{ empty }

func (*SubscribeStatesRequest) MessageType() MessageType { return MsgSubscribeStatesRequest }

// GetTimeRequest asks the peer for the current time. Devices send it to
// the client.
type GetTimeRequest struct{ empty }

func (*GetTimeRequest) MessageType() MessageType { return MsgGetTimeRequest }

// GetTimeResponse carries the current time in Unix seconds.
type GetTimeResponse struct {
	EpochSeconds uint32
}

func (*GetTimeResponse) MessageType() MessageType { return MsgGetTimeResponse }

func (m *GetTimeResponse) AppendWire(b []byte) []byte {
	return appendFixed32(b, 1, m.EpochSeconds)
}

func (m *GetTimeResponse) UnmarshalWire(data []byte) error {
	*m = GetTimeResponse{}
	return walk(data, func(f field) error {
		if f.Number() == 1 {
			m.EpochSeconds = f.Fixed32()
		}
		return nil
	})
}

// SubscribeLogsRequest asks the device to stream log lines at or above Level.
type SubscribeLogsRequest struct {
	Level      LogLevel
	DumpConfig bool
}

func (*SubscribeLogsRequest) MessageType() MessageType { return MsgSubscribeLogsRequest }

func (m *SubscribeLogsRequest) AppendWire(b []byte) []byte {
	b = appendInt32(b, 1, int32(m.Level))
	return appendBool(b, 2, m.DumpConfig)
}

func (m *SubscribeLogsRequest) UnmarshalWire(data []byte) error {
	*m = SubscribeLogsRequest{}
	return walk(data, func(f field) error {
		switch f.Number() {
		case 1:
			m.Level = LogLevel(f.Int32())
		case 2:
			m.DumpConfig = f.Bool()
		}
		return nil
	})
}

// SubscribeLogsResponse is one device log line.
type SubscribeLogsResponse struct {
	Level      LogLevel
	Message    string
	SendFailed bool
}

func (*SubscribeLogsResponse) MessageType() MessageType { return MsgSubscribeLogsResponse }

func (m *SubscribeLogsResponse) AppendWire(b []byte) []byte {
	b = appendInt32(b, 1, int32(m.Level))
	b = appendString(b, 3, m.Message)
	return appendBool(b, 4, m.SendFailed)
}

func (m *SubscribeLogsResponse) UnmarshalWire(data []byte) error {
	*m = SubscribeLogsResponse{}
	return walk(data, func(f field) error {
		switch f.Number() {
		case 1:
			m.Level = LogLevel(f.Int32())
		case 3:
			m.Message = f.Str()
		case 4:
			m.SendFailed = f.Bool()
		}
		return nil
	})
}
