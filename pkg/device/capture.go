package device

import (
	"github.com/igloo-home/esphome-go/pkg/log"
	"github.com/igloo-home/esphome-go/pkg/wire"
)

// MaxLogPayloadSize caps the message body included in capture events.
const MaxLogPayloadSize = 1024

func (s *Session) capture() log.Logger {
	return s.cfg.ProtocolLogger
}

func (s *Session) event(dir log.Direction, layer log.Layer, cat log.Category) log.Event {
	return log.Event{
		Timestamp:    s.cfg.Now(),
		ConnectionID: s.tr.ConnectionID(),
		Direction:    dir,
		Layer:        layer,
		Category:     cat,
		RemoteAddr:   s.params.DialAddress(),
		DeviceName:   s.Name(),
	}
}

// logMessage records a typed message. Entity messages carry their key.
func (s *Session) logMessage(dir log.Direction, mt wire.MessageType, payload []byte) {
	if s.capture() == nil {
		return
	}
	data := payload
	if len(data) > MaxLogPayloadSize {
		data = data[:MaxLogPayloadSize]
	}
	e := s.event(dir, log.LayerWire, log.CategoryMessage)
	e.Message = &log.MessageEvent{
		Type:    mt,
		Size:    len(payload),
		Key:     messageKey(mt, payload),
		Payload: append([]byte(nil), data...),
	}
	s.capture().Log(e)
}

func messageKey(mt wire.MessageType, payload []byte) *uint32 {
	if _, ok := wire.EntityForListResponse(mt); ok {
		h, err := wire.DecodeEntityHeader(payload)
		if err != nil {
			return nil
		}
		return &h.Key
	}
	_, state := wire.EntityForStateResponse(mt)
	if !state && !isCommandRequest(mt) {
		return nil
	}
	key, err := wire.DecodeStateKey(payload)
	if err != nil {
		return nil
	}
	return &key
}

func isCommandRequest(mt wire.MessageType) bool {
	for _, et := range wire.EntityTypes() {
		if cmd, ok := wire.CommandRequestFor(et); ok && cmd == mt {
			return true
		}
	}
	return false
}

func (s *Session) logControl(dir log.Direction, ct log.ControlMsgType) {
	if s.capture() == nil {
		return
	}
	e := s.event(dir, log.LayerSession, log.CategoryControl)
	e.ControlMsg = &log.ControlMsgEvent{Type: ct}
	s.capture().Log(e)
}

func (s *Session) logState(from, to, reason string) {
	if s.capture() == nil {
		return
	}
	e := s.event(log.DirectionOut, log.LayerSession, log.CategoryState)
	e.StateChange = &log.StateChangeEvent{
		Entity:   log.StateEntitySession,
		OldState: from,
		NewState: to,
		Reason:   reason,
	}
	s.capture().Log(e)
}

func (s *Session) logError(err error, op string) {
	if s.capture() == nil {
		return
	}
	e := s.event(log.DirectionIn, log.LayerSession, log.CategoryError)
	e.Error = &log.ErrorEventData{
		Layer:   log.LayerSession,
		Message: err.Error(),
		Context: op,
	}
	s.capture().Log(e)
}
