package bridge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/igloo-home/esphome-go/pkg/config"
	"github.com/igloo-home/esphome-go/pkg/connection"
	"github.com/igloo-home/esphome-go/pkg/device"
	"github.com/igloo-home/esphome-go/pkg/hub"
	"github.com/igloo-home/esphome-go/pkg/log"
)

// DefaultConnectTimeout bounds the handshake of one connection attempt.
const DefaultConnectTimeout = 30 * time.Second

// ErrAlreadyRunning is returned when Run is called while another Run is
// active.
var ErrAlreadyRunning = errors.New("bridge already running")

// Config configures a Bridge.
type Config struct {
	// Logger receives operational logs. Nil disables logging.
	Logger *slog.Logger

	// Store persists devices adopted through DeviceCreated. Nil disables
	// persistence.
	Store *config.Store

	// CommandCapacity buffers each per-device command channel (default 50).
	CommandCapacity int

	// ConnectTimeout bounds each connection handshake (default 30s).
	ConnectTimeout time.Duration

	// Reconnect re-creates sessions that end.
	Reconnect bool

	// Backoff paces reconnection attempts.
	Backoff connection.BackoffConfig

	// Session is the template for every device session. Its Logger
	// defaults to Logger.
	Session device.Config
}

func (c *Config) applyDefaults() {
	if c.Logger == nil {
		c.Logger = slog.New(slog.DiscardHandler)
	}
	if c.CommandCapacity <= 0 {
		c.CommandCapacity = config.DefaultCommandCapacity
	}
	if c.ConnectTimeout <= 0 {
		c.ConnectTimeout = DefaultConnectTimeout
	}
	if c.Session.Logger == nil {
		c.Session.Logger = c.Logger
	}
}

// FromConfig derives bridge settings from a configuration file. The
// protocol logger, when non-nil, receives capture events from every
// session.
func FromConfig(c *config.Config, store *config.Store, logger *slog.Logger, capture log.Logger) Config {
	return Config{
		Logger:          logger,
		Store:           store,
		CommandCapacity: c.Bridge.CommandCapacity,
		Reconnect:       c.Bridge.Reconnect.Enabled,
		Backoff:         c.Bridge.Reconnect.BackoffConfig,
		Session: device.Config{
			Logger:         logger,
			ProtocolLogger: capture,
			KeepAlive:      c.Bridge.KeepAlive,
			DeviceLogLevel: c.DeviceLogLevel(),
		},
	}
}

// DeviceStatus describes one device known to the bridge.
type DeviceStatus struct {
	// ID is the hub device ID, or 0 for a parked device.
	ID uint64

	// Name is the device name, when known.
	Name string

	// Address is the configured address.
	Address string

	// Connected reports whether the device's session is connected.
	Connected bool

	// Parked reports whether the device awaits DeviceCreated.
	Parked bool
}

// entry is one started device.
type entry struct {
	id       uint64
	params   device.ConnectionParams
	commands chan hub.Write
	cancel   context.CancelFunc
	done     chan struct{}

	// session is the current session, guarded by Bridge.mu.
	session *device.Session
}

// arrival is a provisional session that finished connecting.
type arrival struct {
	name    string
	session *device.Session
}

// Bridge supervises device sessions.
type Bridge struct {
	cfg    Config
	logger *slog.Logger

	// mu guards the tables for Devices. Only the supervisor goroutine
	// writes them.
	mu      sync.Mutex
	running bool
	devices map[uint64]*entry
	parked  map[string]*device.Session

	events   chan<- hub.Event
	exits    chan *entry
	arrivals chan arrival
	stopping chan struct{}
	wg       sync.WaitGroup
}

// New creates a bridge.
func New(cfg Config) *Bridge {
	cfg.applyDefaults()
	return &Bridge{
		cfg:    cfg,
		logger: cfg.Logger,
	}
}

// Run starts a session for each configured device and serves hub commands
// until ctx ends or commands is closed. It stops every session before
// returning: ctx.Err() on cancellation, nil when commands was closed.
func (b *Bridge) Run(ctx context.Context, devices map[uint64]device.ConnectionParams, commands <-chan hub.Command, events chan<- hub.Event) error {
	b.mu.Lock()
	if b.running {
		b.mu.Unlock()
		return ErrAlreadyRunning
	}
	b.running = true
	b.devices = make(map[uint64]*entry)
	b.parked = make(map[string]*device.Session)
	b.mu.Unlock()

	b.events = events
	b.exits = make(chan *entry)
	b.arrivals = make(chan arrival)
	b.stopping = make(chan struct{})

	ctx, cancel := context.WithCancel(ctx)
	defer b.shutdown(cancel)

	ids := make([]uint64, 0, len(devices))
	for id := range devices {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		b.start(ctx, id, devices[id], nil)
	}
	b.logger.Info("bridge started", "devices", len(ids), "reconnect", b.cfg.Reconnect)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case cmd, ok := <-commands:
			if !ok {
				b.logger.Info("hub command channel closed")
				return nil
			}
			b.handleCommand(ctx, cmd)

		case e := <-b.exits:
			b.remove(e)

		case a := <-b.arrivals:
			b.park(ctx, a)
		}
	}
}

// shutdown stops every device goroutine and closes parked sessions.
func (b *Bridge) shutdown(cancel context.CancelFunc) {
	close(b.stopping)
	cancel()
	b.wg.Wait()

	b.mu.Lock()
	for name, s := range b.parked {
		s.ForceDisconnect()
		delete(b.parked, name)
	}
	clear(b.devices)
	b.running = false
	b.mu.Unlock()
	b.logger.Info("bridge stopped")
}

// Devices returns the started and parked devices, started devices first in
// ID order.
func (b *Bridge) Devices() []DeviceStatus {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]DeviceStatus, 0, len(b.devices)+len(b.parked))
	for _, e := range b.devices {
		st := DeviceStatus{ID: e.id, Name: e.params.Name, Address: e.params.Address}
		if e.session != nil {
			st.Name = e.session.Name()
			st.Connected = e.session.Connected()
		}
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	names := make([]string, 0, len(b.parked))
	for name := range b.parked {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		s := b.parked[name]
		out = append(out, DeviceStatus{
			Name:      name,
			Address:   s.Params().Address,
			Connected: s.Connected(),
			Parked:    true,
		})
	}
	return out
}

func (b *Bridge) handleCommand(ctx context.Context, cmd hub.Command) {
	switch cmd.Type {
	case hub.CommandWriteAttributes:
		b.route(ctx, cmd.DeviceID, cmd.Write)
	case hub.CommandAddDevice:
		b.add(ctx, cmd.Add)
	case hub.CommandDeviceCreated:
		b.adopt(ctx, cmd.Name, cmd.DeviceID)
	default:
		b.logger.Warn("unknown hub command", "type", cmd.Type.String())
	}
}

// route forwards a write to its device, blocking while the device's
// command channel is full.
func (b *Bridge) route(ctx context.Context, id uint64, w hub.Write) {
	b.mu.Lock()
	e, ok := b.devices[id]
	b.mu.Unlock()
	if !ok {
		b.logger.Warn("write for unknown device", "device_id", id, "entity_index", w.EntityIndex)
		return
	}

	select {
	case e.commands <- w:
	case <-e.done:
		b.logger.Warn("write for stopped device", "device_id", id, "entity_index", w.EntityIndex)
	case <-ctx.Done():
	}
}

// add connects a provisional session in the background. It is parked once
// connected.
func (b *Bridge) add(ctx context.Context, add hub.AddDevice) {
	params := device.ConnectionParams{
		Address:  add.Address,
		NoisePSK: add.NoisePSK,
		Password: add.Password,
		Name:     add.Name,
	}
	s, err := b.newSession(0, params)
	if err != nil {
		b.logger.Warn("add device rejected", "address", add.Address, "error", err)
		return
	}

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		if err := b.connect(ctx, s); err != nil {
			b.logger.Warn("add device failed", "address", params.Address, "error", err)
			return
		}
		name := s.Name()
		if name == "" {
			name = params.Address
		}
		select {
		case b.arrivals <- arrival{name: name, session: s}:
		case <-b.stopping:
			s.ForceDisconnect()
		}
	}()
}

// park holds a provisional session until the hub assigns its ID.
func (b *Bridge) park(ctx context.Context, a arrival) {
	b.mu.Lock()
	old, replaced := b.parked[a.name]
	b.parked[a.name] = a.session
	b.mu.Unlock()
	if replaced {
		b.logger.Warn("replacing parked device", "name", a.name)
		b.logDevice(old.Params().Address, a.name, "parked", "replaced", "")
		old.ForceDisconnect()
	}

	b.logger.Info("device awaiting id", "name", a.name, "address", a.session.Params().Address)
	b.logDevice(a.session.Params().Address, a.name, "", "parked", "")
	select {
	case b.events <- hub.DeviceIdentityDiscovered(a.name):
	case <-ctx.Done():
	}
}

// adopt starts the parked session name under id.
func (b *Bridge) adopt(ctx context.Context, name string, id uint64) {
	b.mu.Lock()
	s, ok := b.parked[name]
	if ok {
		delete(b.parked, name)
	}
	_, taken := b.devices[id]
	b.mu.Unlock()

	if !ok {
		b.logger.Warn("device created for unknown name", "name", name, "device_id", id)
		return
	}
	if id == 0 || taken {
		b.logger.Warn("device id unavailable", "name", name, "device_id", id)
		b.logDevice(s.Params().Address, name, "parked", "rejected", fmt.Sprintf("device id %d unavailable", id))
		s.ForceDisconnect()
		return
	}
	b.logDevice(s.Params().Address, name, "parked", "adopted", fmt.Sprintf("device id %d", id))

	s.SetID(id)
	if b.cfg.Store != nil {
		if err := b.cfg.Store.Put(id, s.Params()); err != nil {
			b.logger.Warn("persist device failed", "device_id", id, "error", err)
		}
	}
	b.start(ctx, id, s.Params(), s)
}

// start runs a device goroutine. s, when non-nil, is an already connected
// session to serve first.
func (b *Bridge) start(ctx context.Context, id uint64, params device.ConnectionParams, s *device.Session) {
	e := &entry{
		id:       id,
		params:   params,
		commands: make(chan hub.Write, b.cfg.CommandCapacity),
		done:     make(chan struct{}),
	}
	ctx, e.cancel = context.WithCancel(ctx)

	b.mu.Lock()
	b.devices[id] = e
	b.mu.Unlock()
	b.logDevice(params.Address, params.Name, "", "started", fmt.Sprintf("device id %d", id))

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		b.serveDevice(ctx, e, s)
		close(e.done)
		select {
		case b.exits <- e:
		case <-b.stopping:
		}
	}()
}

// remove drops an exited device from the table.
func (b *Bridge) remove(e *entry) {
	e.cancel()
	b.mu.Lock()
	if b.devices[e.id] == e {
		delete(b.devices, e.id)
	}
	b.mu.Unlock()
	b.logger.Debug("device removed", "device_id", e.id)
	b.logDevice(e.params.Address, e.params.Name, "started", "removed", fmt.Sprintf("device id %d", e.id))
}

// logDevice records a device table change in the protocol capture.
func (b *Bridge) logDevice(addr, name, from, to, reason string) {
	capture := b.cfg.Session.ProtocolLogger
	if capture == nil {
		return
	}
	capture.Log(log.Event{
		Timestamp:  time.Now(),
		Direction:  log.DirectionOut,
		Layer:      log.LayerSession,
		Category:   log.CategoryState,
		RemoteAddr: addr,
		DeviceName: name,
		StateChange: &log.StateChangeEvent{
			Entity:   log.StateEntityDevice,
			OldState: from,
			NewState: to,
			Reason:   reason,
		},
	})
}

func (b *Bridge) newSession(id uint64, params device.ConnectionParams) (*device.Session, error) {
	return device.New(id, params, b.cfg.Session)
}

func (b *Bridge) connect(ctx context.Context, s *device.Session) error {
	ctx, cancel := context.WithTimeout(ctx, b.cfg.ConnectTimeout)
	defer cancel()
	_, err := s.Connect(ctx)
	return err
}
