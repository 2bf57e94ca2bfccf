package device

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/igloo-home/esphome-go/pkg/entity"
	"github.com/igloo-home/esphome-go/pkg/hub"
	"github.com/igloo-home/esphome-go/pkg/log"
	"github.com/igloo-home/esphome-go/pkg/transport"
	"github.com/igloo-home/esphome-go/pkg/varint"
	"github.com/igloo-home/esphome-go/pkg/version"
	"github.com/igloo-home/esphome-go/pkg/wire"
)

// DefaultDisconnectTimeout bounds the wait for a DisconnectResponse.
const DefaultDisconnectTimeout = 5 * time.Second

// ErrRunning is returned when an operation that reads from the transport is
// attempted while Run owns it.
var ErrRunning = errors.New("session is running")

// Config configures a Session.
type Config struct {
	// Logger receives operational logs. Nil disables logging.
	Logger *slog.Logger

	// ProtocolLogger receives protocol capture events. Nil disables capture.
	ProtocolLogger log.Logger

	// Translators converts entity messages. Nil uses entity.DefaultRegistry.
	Translators *entity.Registry

	// Transport configures the underlying connection. Its loggers default
	// to the session's.
	Transport transport.Config

	// KeepAlive configures bridge-initiated pings. Disabled by default.
	KeepAlive KeepAliveConfig

	// DisconnectTimeout bounds the wait for a DisconnectResponse when Run is
	// cancelled or Disconnect is called.
	DisconnectTimeout time.Duration

	// DeviceLogLevel, when not LogLevelNone, subscribes to device log
	// lines at that level and forwards them to Logger.
	DeviceLogLevel wire.LogLevel

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

func (c *Config) applyDefaults() {
	if c.Logger == nil {
		c.Logger = slog.New(slog.DiscardHandler)
	}
	if c.Translators == nil {
		c.Translators = entity.DefaultRegistry()
	}
	if c.Transport.Logger == nil {
		c.Transport.Logger = c.Logger
	}
	if c.Transport.ProtocolLogger == nil {
		c.Transport.ProtocolLogger = c.ProtocolLogger
	}
	if c.DisconnectTimeout <= 0 {
		c.DisconnectTimeout = DefaultDisconnectTimeout
	}
	if c.Now == nil {
		c.Now = time.Now
	}
}

// Session is one device connection and its entity registry.
type Session struct {
	id     atomic.Uint64
	params ConnectionParams
	tr     transport.Transport
	cfg    Config
	logger *slog.Logger

	entities *EntityRegistry

	mu        sync.Mutex
	connected bool
	running   bool
	info      *wire.DeviceInfoResponse
	lastPing  time.Time
	keepAlive *keepAlive
}

// New creates a disconnected session for the device with the given hub ID.
// The transport variant is chosen by params.NoisePSK.
func New(id uint64, params ConnectionParams, cfg Config) (*Session, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	tr, err := transport.New(params.DialAddress(), params.NoisePSK, cfg.Transport)
	if err != nil {
		return nil, err
	}
	return newSession(id, params, tr, cfg), nil
}

// NewWithTransport creates a session over an existing transport.
func NewWithTransport(id uint64, params ConnectionParams, tr transport.Transport, cfg Config) *Session {
	cfg.applyDefaults()
	return newSession(id, params, tr, cfg)
}

func newSession(id uint64, params ConnectionParams, tr transport.Transport, cfg Config) *Session {
	s := &Session{
		params:   params,
		tr:       tr,
		cfg:      cfg,
		logger:   cfg.Logger.With("address", params.Address),
		entities: NewEntityRegistry(),
	}
	s.id.Store(id)
	if cfg.KeepAlive.Enabled() {
		s.keepAlive = newKeepAlive(cfg.KeepAlive)
	}
	return s
}

// ID returns the hub device ID. Provisional sessions use 0.
func (s *Session) ID() uint64 {
	return s.id.Load()
}

// SetID assigns the hub device ID. Events emitted afterwards carry it.
func (s *Session) SetID(id uint64) {
	s.id.Store(id)
}

// Params returns the connection parameters.
func (s *Session) Params() ConnectionParams {
	return s.params
}

// Entities returns the session's entity registry.
func (s *Session) Entities() *EntityRegistry {
	return s.entities
}

// Connected reports whether Connect succeeded and the session has not been
// disconnected since.
func (s *Session) Connected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connected
}

// Info returns the device info fetched by Connect, or nil.
func (s *Session) Info() *wire.DeviceInfoResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.info
}

// Name returns the best known device name: the reported device name, the
// configured name, or the name announced during the encrypted handshake.
func (s *Session) Name() string {
	if info := s.Info(); info != nil && info.Name != "" {
		return info.Name
	}
	if s.params.Name != "" {
		return s.params.Name
	}
	return s.tr.PeerName()
}

// LastPing returns when the device last answered a ping.
func (s *Session) LastPing() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastPing, !s.lastPing.IsZero()
}

// KeepAliveStats returns keep-alive statistics. The second result is false
// when keep-alive is disabled.
func (s *Session) KeepAliveStats() (KeepAliveStats, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.keepAlive == nil {
		return KeepAliveStats{}, false
	}
	return s.keepAlive.stats(), true
}

// Connect opens the transport, negotiates the API version, authenticates
// and returns the device info. On any failure the transport is closed and
// the session stays disconnected.
func (s *Session) Connect(ctx context.Context) (*wire.DeviceInfoResponse, error) {
	s.mu.Lock()
	if s.connected {
		s.mu.Unlock()
		return nil, ErrAlreadyConnected
	}
	s.mu.Unlock()

	if err := s.tr.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect transport: %w", err)
	}

	info, err := s.handshake(ctx)
	if err != nil {
		s.mu.Lock()
		s.connected = false
		s.mu.Unlock()
		_ = s.tr.Disconnect()
		s.logError(err, "connect")
		return nil, err
	}

	s.logger.Info("device connected", "device_id", s.ID(), "name", info.Name, "esphome_version", info.ESPHomeVersion)
	return info, nil
}

func (s *Session) handshake(ctx context.Context) (*wire.DeviceInfoResponse, error) {
	var hello wire.HelloResponse
	err := s.exchange(ctx, &wire.HelloRequest{
		ClientInfo:      version.ClientInfo,
		APIVersionMajor: version.Current.Major,
		APIVersionMinor: version.Current.Minor,
	}, &hello)
	if err != nil {
		return nil, fmt.Errorf("hello: %w", err)
	}
	remote := version.APIVersion{Major: hello.APIVersionMajor, Minor: hello.APIVersionMinor}
	if !version.Current.Compatible(remote) {
		return nil, fmt.Errorf("%w: device speaks %s, client %s", ErrIncompatibleAPI, remote, version.Current)
	}
	if version.Current.Less(remote) {
		s.logger.Debug("device API is newer", "device_api", remote.String(), "server_info", hello.ServerInfo)
	}

	var auth wire.ConnectResponse
	if err := s.exchange(ctx, &wire.ConnectRequest{Password: s.params.Password}, &auth); err != nil {
		return nil, fmt.Errorf("authenticate: %w", err)
	}
	if auth.InvalidPassword {
		return nil, ErrInvalidPassword
	}

	s.mu.Lock()
	s.connected = true
	s.mu.Unlock()
	s.logState("disconnected", "connected", "")

	var info wire.DeviceInfoResponse
	if err := s.exchange(ctx, &wire.DeviceInfoRequest{}, &info); err != nil {
		return nil, fmt.Errorf("device info: %w", err)
	}
	s.mu.Lock()
	s.info = &info
	s.mu.Unlock()
	return &info, nil
}

// DiscoverEntities lists the device's entities and registers each one,
// emitting EntityRegistered followed by the entity's static attributes.
// Entities of types without a translator are registered with no
// attributes. Services and unrecognised messages are skipped.
func (s *Session) DiscoverEntities(ctx context.Context, events chan<- hub.Event) error {
	if !s.Connected() {
		return ErrNotConnected
	}
	if err := s.send(&wire.ListEntitiesRequest{}); err != nil {
		return err
	}

	for {
		mt, payload, err := s.recv(ctx)
		if err != nil {
			if recoverable(err) {
				s.logger.Warn("skipping message during discovery", "error", err)
				continue
			}
			return err
		}

		switch mt {
		case wire.MsgListEntitiesDoneResponse:
			s.logger.Debug("discovery complete", "device_id", s.ID(), "entities", s.entities.Len())
			return nil
		case wire.MsgListEntitiesServicesResponse:
			continue
		}

		et, ok := wire.EntityForListResponse(mt)
		if !ok {
			s.logger.Debug("skipping message during discovery", "msg_type", mt.String())
			continue
		}
		if err := s.registerEntity(ctx, events, et, payload); err != nil {
			if errors.Is(err, ErrDuplicateKey) || errors.Is(err, wire.ErrDecode) {
				s.logger.Warn("skipping entity", "entity_type", et.String(), "error", err)
				continue
			}
			return err
		}
	}
}

func (s *Session) registerEntity(ctx context.Context, events chan<- hub.Event, et wire.EntityType, payload []byte) error {
	var desc entity.Description
	if t, ok := s.cfg.Translators.Lookup(et); ok {
		d, err := t.Describe(payload)
		if err != nil {
			return err
		}
		desc = d
	} else {
		h, err := wire.DecodeEntityHeader(payload)
		if err != nil {
			return err
		}
		desc.Header = h
	}

	idx, err := s.entities.Register(et, desc.Header.Key, desc.Header.Name)
	if err != nil {
		return err
	}
	s.logger.Debug("entity registered",
		"device_id", s.ID(),
		"entity_index", idx,
		"entity_type", et.String(),
		"name", desc.Header.Name)

	if err := emit(ctx, events, hub.EntityRegistered(s.ID(), desc.Header.Name, idx)); err != nil {
		return err
	}
	return emit(ctx, events, hub.AttributesWritten(s.ID(), idx, desc.Attributes))
}

// SubscribeStates asks the device to stream state changes. No response is
// expected; states arrive during Run.
func (s *Session) SubscribeStates() error {
	if !s.Connected() {
		return ErrNotConnected
	}
	return s.send(&wire.SubscribeStatesRequest{})
}

// Serve discovers entities, subscribes to states and runs the session
// until it ends. It is the whole life of a connected session.
func (s *Session) Serve(ctx context.Context, commands <-chan hub.Write, events chan<- hub.Event) error {
	if err := s.DiscoverEntities(ctx, events); err != nil {
		s.ForceDisconnect()
		return fmt.Errorf("discover entities: %w", err)
	}
	if err := s.SubscribeStates(); err != nil {
		s.ForceDisconnect()
		return fmt.Errorf("subscribe states: %w", err)
	}
	if s.cfg.DeviceLogLevel != wire.LogLevelNone {
		if err := s.send(&wire.SubscribeLogsRequest{Level: s.cfg.DeviceLogLevel}); err != nil {
			s.ForceDisconnect()
			return fmt.Errorf("subscribe logs: %w", err)
		}
	}
	return s.Run(ctx, commands, events)
}

// Disconnect asks the device to close the connection, waits for its
// response and closes the transport. Messages arriving meanwhile are
// discarded. It must not be called while Run is active; cancel Run's
// context instead.
func (s *Session) Disconnect(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return ErrRunning
	}
	connected := s.connected
	s.mu.Unlock()
	if !connected {
		s.ForceDisconnect()
		return ErrNotConnected
	}
	defer s.ForceDisconnect()

	ctx, cancel := context.WithTimeout(ctx, s.cfg.DisconnectTimeout)
	defer cancel()

	if err := s.send(&wire.DisconnectRequest{}); err != nil {
		return err
	}
	for {
		mt, _, err := s.recv(ctx)
		if err != nil {
			if recoverable(err) {
				continue
			}
			return err
		}
		if mt == wire.MsgDisconnectResponse {
			return nil
		}
	}
}

// ForceDisconnect closes the transport without notifying the device.
func (s *Session) ForceDisconnect() {
	s.mu.Lock()
	was := s.connected
	s.connected = false
	s.mu.Unlock()

	if err := s.tr.Disconnect(); err != nil {
		s.logger.Debug("transport close", "error", err)
	}
	if was {
		s.logState("connected", "disconnected", "")
	}
}

// Ping sends a PingRequest. The response is recorded by Run.
func (s *Session) Ping() error {
	if !s.Connected() {
		return ErrNotConnected
	}
	return s.send(&wire.PingRequest{})
}

// exchange sends req and decodes the next message into resp, which must be
// of the expected response type.
func (s *Session) exchange(ctx context.Context, req, resp wire.Message) error {
	if err := s.send(req); err != nil {
		return err
	}
	mt, payload, err := s.recv(ctx)
	if err != nil {
		return err
	}
	if mt != resp.MessageType() {
		return &UnexpectedMessageError{Want: resp.MessageType(), Got: mt}
	}
	return wire.Unmarshal(payload, resp)
}

func (s *Session) send(m wire.Message) error {
	payload := wire.Marshal(m)
	if err := s.tr.Send(m.MessageType(), payload); err != nil {
		return fmt.Errorf("send %s: %w", m.MessageType(), err)
	}
	s.logMessage(log.DirectionOut, m.MessageType(), payload)
	return nil
}

// recv waits for and reads the next message.
func (s *Session) recv(ctx context.Context) (wire.MessageType, []byte, error) {
	if err := s.tr.WaitReadable(ctx); err != nil {
		return 0, nil, err
	}
	mt, payload, err := s.tr.Receive()
	if err != nil {
		return 0, nil, err
	}
	s.logMessage(log.DirectionIn, mt, payload)
	return mt, payload, nil
}

// recoverable reports whether err spoiled a single frame rather than the
// connection, so reading can continue. A dead socket surfaces as io.EOF or
// net.ErrClosed on the next read.
func recoverable(err error) bool {
	switch {
	case errors.Is(err, wire.ErrUnknownMessageType),
		errors.Is(err, wire.ErrDecode),
		errors.Is(err, transport.ErrFramePreamble),
		errors.Is(err, transport.ErrFrameTruncated),
		errors.Is(err, transport.ErrMessageTooLarge),
		errors.Is(err, varint.ErrInvalidFirstByte),
		errors.Is(err, varint.ErrOverflow):
		return true
	}
	return false
}

// emit delivers ev, blocking while events is full. A nil channel discards.
func emit(ctx context.Context, events chan<- hub.Event, ev hub.Event) error {
	if events == nil {
		return nil
	}
	select {
	case events <- ev:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
