package mqtt

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/igloo-home/esphome-go/pkg/hub"
)

type entityConfig struct {
	Name string `json:"name"`
}

type entityState struct {
	Attributes []string `json:"attributes"`
}

type discovered struct {
	Name string `json:"name"`
}

type addRequest struct {
	Address  string `json:"address"`
	NoisePSK string `json:"noise_psk,omitempty"`
	Password string `json:"password,omitempty"`
	Name     string `json:"name,omitempty"`
}

type createdRequest struct {
	Name     string `json:"name"`
	DeviceID uint64 `json:"device_id"`
}

// Link relays hub events to a broker and broker commands to the hub
// command queue.
type Link struct {
	broker Broker
	topics Topics
	qos    byte
	logger *slog.Logger
}

// NewLink returns a Link publishing through b. A nil logger discards.
func NewLink(b Broker, cfg Config, logger *slog.Logger) *Link {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Link{broker: b, topics: cfg.Topics(), qos: cfg.QoS, logger: logger}
}

// Run subscribes to the command topics, marks the bridge online and
// publishes events until ctx ends or events is closed. Commands are
// delivered on commands; a full queue blocks the broker's handler.
// The bridge is marked offline on return.
func (l *Link) Run(ctx context.Context, events <-chan hub.Event, commands chan<- hub.Command) error {
	handle := func(topic string, payload []byte) {
		cmd, err := l.Command(topic, payload)
		if err != nil {
			l.logger.Warn("ignoring mqtt command", "topic", topic, "error", err)
			return
		}
		select {
		case commands <- cmd:
		case <-ctx.Done():
		}
	}
	for _, topic := range []string{l.topics.AllEntitySets(), l.topics.Add(), l.topics.Created()} {
		if err := l.broker.Subscribe(topic, l.qos, handle); err != nil {
			return err
		}
	}
	if err := l.broker.Publish(l.topics.Status(), 1, true, []byte(StatusOnline)); err != nil {
		return err
	}
	l.logger.Info("mqtt link up", "prefix", l.topics.Prefix)
	defer l.offline()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := l.Publish(ev); err != nil {
				l.logger.Warn("publish event failed", "event", ev.Type.String(), "error", err)
			}
		}
	}
}

func (l *Link) offline() {
	if err := l.broker.Publish(l.topics.Status(), 1, true, []byte(StatusOffline)); err != nil {
		l.logger.Debug("publish offline status", "error", err)
	}
}

// Publish sends one event to its topic.
func (l *Link) Publish(ev hub.Event) error {
	var (
		topic    string
		body     any
		retained bool
	)
	switch ev.Type {
	case hub.EventEntityRegistered:
		topic = l.topics.EntityConfig(ev.DeviceID, ev.EntityIndex)
		body = entityConfig{Name: ev.EntityName}
		retained = true
	case hub.EventAttributesWritten:
		attrs := make([]string, len(ev.Attributes))
		for i, a := range ev.Attributes {
			attrs[i] = a.String()
		}
		topic = l.topics.EntityState(ev.DeviceID, ev.EntityIndex)
		body = entityState{Attributes: attrs}
		retained = true
	case hub.EventDeviceIdentityDiscovered:
		topic = l.topics.Discovered()
		body = discovered{Name: ev.Name}
	default:
		return fmt.Errorf("mqtt: unsupported event %s", ev.Type)
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	return l.broker.Publish(topic, l.qos, retained, payload)
}

// Command decodes a message received on one of the command topics.
func (l *Link) Command(topic string, payload []byte) (hub.Command, error) {
	switch topic {
	case l.topics.Add():
		var req addRequest
		if err := json.Unmarshal(payload, &req); err != nil {
			return hub.Command{}, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
		}
		if req.Address == "" {
			return hub.Command{}, fmt.Errorf("%w: address required", ErrInvalidPayload)
		}
		return hub.NewAddDevice(hub.AddDevice{
			Address:  req.Address,
			NoisePSK: req.NoisePSK,
			Password: req.Password,
			Name:     req.Name,
		}), nil

	case l.topics.Created():
		var req createdRequest
		if err := json.Unmarshal(payload, &req); err != nil {
			return hub.Command{}, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
		}
		if req.Name == "" {
			return hub.Command{}, fmt.Errorf("%w: name required", ErrInvalidPayload)
		}
		return hub.DeviceCreated(req.Name, req.DeviceID), nil
	}

	id, index, err := l.topics.ParseEntitySet(topic)
	if err != nil {
		return hub.Command{}, err
	}
	var req entityState
	if err := json.Unmarshal(payload, &req); err != nil {
		return hub.Command{}, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	if len(req.Attributes) == 0 {
		return hub.Command{}, fmt.Errorf("%w: no attributes", ErrInvalidPayload)
	}
	attrs, err := hub.ParseAttributes(req.Attributes)
	if err != nil {
		return hub.Command{}, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	return hub.WriteAttributes(id, index, attrs), nil
}
