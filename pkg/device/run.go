package device

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/igloo-home/esphome-go/pkg/entity"
	"github.com/igloo-home/esphome-go/pkg/hub"
	"github.com/igloo-home/esphome-go/pkg/log"
	"github.com/igloo-home/esphome-go/pkg/wire"
)

// inbound is one result of reading the transport.
type inbound struct {
	mt      wire.MessageType
	payload []byte
	err     error
}

// Run serves hub writes from commands and device messages until the
// session ends, emitting state changes on events. The session must be
// connected, and normally has discovered its entities (see Serve).
//
// Run returns nil when the device asks to disconnect. When ctx is
// cancelled it sends a DisconnectRequest, waits up to DisconnectTimeout
// for the response and returns ctx.Err(). Receive errors confined to one
// frame, such as a bad preamble or an unknown message type, are logged and
// skipped; a dead socket or a decrypt failure ends Run with
// ErrConnectionLost. In every case the transport is closed on return.
func (s *Session) Run(ctx context.Context, commands <-chan hub.Write, events chan<- hub.Event) error {
	s.mu.Lock()
	if !s.connected {
		s.mu.Unlock()
		return ErrNotConnected
	}
	if s.running {
		s.mu.Unlock()
		return ErrRunning
	}
	s.running = true
	s.mu.Unlock()
	s.logState("connected", "running", "")

	// The reader outlives ctx so the disconnect exchange can still be read.
	readCtx, stopReading := context.WithCancel(context.WithoutCancel(ctx))
	in := make(chan inbound)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.readLoop(readCtx, in)
	}()

	err := s.loop(ctx, commands, events, in)

	stopReading()
	s.ForceDisconnect()
	wg.Wait()

	s.mu.Lock()
	s.running = false
	s.mu.Unlock()

	reason := ""
	if err != nil {
		reason = err.Error()
	}
	s.logState("running", "stopped", reason)
	return err
}

func (s *Session) loop(ctx context.Context, commands <-chan hub.Write, events chan<- hub.Event, in <-chan inbound) error {
	var tick <-chan time.Time
	if s.keepAlive != nil {
		ticker := time.NewTicker(s.cfg.KeepAlive.PingInterval)
		defer ticker.Stop()
		tick = ticker.C
	}

	done := ctx.Done()
	var closing <-chan time.Time

	for {
		select {
		case <-done:
			done = nil
			commands = nil
			tick = nil
			if err := s.send(&wire.DisconnectRequest{}); err != nil {
				return ctx.Err()
			}
			timer := time.NewTimer(s.cfg.DisconnectTimeout)
			defer timer.Stop()
			closing = timer.C

		case <-closing:
			s.logger.Debug("no disconnect response", "device_id", s.ID())
			return ctx.Err()

		case w, ok := <-commands:
			if !ok {
				commands = nil
				continue
			}
			s.handleWrite(w)

		case msg := <-in:
			if msg.err != nil {
				if !recoverable(msg.err) {
					return fmt.Errorf("%w: %w", ErrConnectionLost, msg.err)
				}
				s.logger.Warn("receive failed", "device_id", s.ID(), "error", msg.err)
				continue
			}
			if closing != nil {
				if msg.mt == wire.MsgDisconnectResponse {
					return ctx.Err()
				}
				continue
			}
			if err := s.handleMessage(ctx, events, msg.mt, msg.payload); err != nil {
				if errors.Is(err, ErrDeviceRequestedShutdown) {
					s.logger.Info("device requested disconnect", "device_id", s.ID())
					return nil
				}
				s.logger.Warn("message processing failed",
					"device_id", s.ID(),
					"msg_type", msg.mt.String(),
					"error", err)
			}

		case now := <-tick:
			s.mu.Lock()
			ping, dead := s.keepAlive.tick(now)
			s.mu.Unlock()
			if dead {
				return ErrKeepAliveTimeout
			}
			if ping {
				if err := s.send(&wire.PingRequest{}); err != nil {
					s.logger.Warn("keep-alive ping failed", "device_id", s.ID(), "error", err)
				}
				s.logControl(log.DirectionOut, log.ControlMsgPing)
			}
		}
	}
}

// readLoop hands received messages to in until a read leaves the stream
// unusable or ctx ends.
func (s *Session) readLoop(ctx context.Context, in chan<- inbound) {
	for {
		mt, payload, err := s.recv(ctx)
		if ctx.Err() != nil {
			return
		}
		select {
		case in <- inbound{mt: mt, payload: payload, err: err}:
		case <-ctx.Done():
			return
		}
		if err != nil && !recoverable(err) {
			return
		}
	}
}

// handleMessage processes one device message.
func (s *Session) handleMessage(ctx context.Context, events chan<- hub.Event, mt wire.MessageType, payload []byte) error {
	switch mt {
	case wire.MsgDisconnectRequest:
		s.logControl(log.DirectionIn, log.ControlMsgDisconnect)
		if err := s.send(&wire.DisconnectResponse{}); err != nil {
			s.logger.Debug("disconnect response", "error", err)
		}
		s.ForceDisconnect()
		return ErrDeviceRequestedShutdown

	case wire.MsgPingRequest:
		s.logControl(log.DirectionIn, log.ControlMsgPing)
		return s.send(&wire.PingResponse{})

	case wire.MsgPingResponse:
		s.logControl(log.DirectionIn, log.ControlMsgPong)
		now := s.cfg.Now()
		s.mu.Lock()
		s.lastPing = now
		if s.keepAlive != nil {
			s.keepAlive.pong(now)
		}
		s.mu.Unlock()
		return nil

	case wire.MsgGetTimeRequest:
		s.logControl(log.DirectionIn, log.ControlMsgGetTime)
		return s.send(&wire.GetTimeResponse{EpochSeconds: uint32(s.cfg.Now().Unix())})

	case wire.MsgSubscribeLogsResponse:
		if s.cfg.DeviceLogLevel == wire.LogLevelNone {
			return nil
		}
		var m wire.SubscribeLogsResponse
		if err := wire.Unmarshal(payload, &m); err != nil {
			return err
		}
		s.logger.Info("device log", "device_id", s.ID(), "level", m.Level.String(), "line", m.Message)
		return nil
	}
	return s.handleState(ctx, events, mt, payload)
}

// handleState forwards a state response to the hub as an attribute write.
func (s *Session) handleState(ctx context.Context, events chan<- hub.Event, mt wire.MessageType, payload []byte) error {
	switch mt {
	case wire.MsgDisconnectRequest, wire.MsgPingRequest, wire.MsgPingResponse,
		wire.MsgGetTimeRequest, wire.MsgSubscribeLogsResponse:
		panic(fmt.Sprintf("device: control message %s reached state dispatch", mt))
	}

	et, ok := wire.EntityForStateResponse(mt)
	if !ok {
		s.logger.Debug("ignoring message", "device_id", s.ID(), "msg_type", mt.String())
		return nil
	}

	t, ok := s.cfg.Translators.Lookup(et)
	if !ok {
		key, err := wire.DecodeStateKey(payload)
		if err != nil {
			return err
		}
		s.logger.Debug("no translator for state", "device_id", s.ID(), "entity_type", et.String(), "key", key)
		return nil
	}

	up, err := t.State(payload)
	if err != nil {
		return err
	}
	if up.Missing {
		return nil
	}

	idx, ok := s.entities.IndexOf(up.Key)
	if !ok {
		s.logger.Warn("state for unknown entity", "device_id", s.ID(), "key", up.Key, "msg_type", mt.String())
		return nil
	}
	if info, _ := s.entities.Lookup(idx); info.Type != et {
		s.logger.Warn("state type mismatch",
			"device_id", s.ID(),
			"entity_index", idx,
			"registered", info.Type.String(),
			"received", et.String())
		return nil
	}

	return emit(ctx, events, hub.AttributesWritten(s.ID(), idx, up.Attributes))
}

// handleWrite turns a hub write into a device command. Failures are logged
// and the write is dropped.
func (s *Session) handleWrite(w hub.Write) {
	info, ok := s.entities.Lookup(w.EntityIndex)
	if !ok {
		s.logger.Warn("write for unknown entity", "device_id", s.ID(), "entity_index", w.EntityIndex)
		return
	}

	t, ok := s.cfg.Translators.Lookup(info.Type)
	if !ok {
		s.logger.Warn("entity type does not support commands",
			"device_id", s.ID(),
			"entity_index", w.EntityIndex,
			"entity_type", info.Type.String())
		return
	}

	msg, ignored, err := t.Command(info.Key, w.Attributes)
	if err != nil {
		if errors.Is(err, entity.ErrNoCommand) {
			s.logger.Warn("entity type does not support commands",
				"device_id", s.ID(),
				"entity_index", w.EntityIndex,
				"entity_type", info.Type.String())
			return
		}
		s.logger.Warn("build command failed", "device_id", s.ID(), "entity_index", w.EntityIndex, "error", err)
		return
	}
	for _, a := range ignored {
		s.logger.Warn("unexpected attribute in write",
			"device_id", s.ID(),
			"entity_index", w.EntityIndex,
			"entity_type", info.Type.String(),
			"attribute", a.String())
	}

	if err := s.send(msg); err != nil {
		s.logger.Warn("send command failed", "device_id", s.ID(), "entity_index", w.EntityIndex, "error", err)
	}
}
