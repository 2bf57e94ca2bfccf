package mqtt_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/igloo-home/esphome-go/pkg/hub"
	"github.com/igloo-home/esphome-go/pkg/mqtt"
)

type published struct {
	topic    string
	qos      byte
	retained bool
	payload  string
}

type fakeBroker struct {
	mu        sync.Mutex
	published []published
	handlers  map[string]mqtt.Handler
	failSub   error
}

func newFakeBroker() *fakeBroker {
	return &fakeBroker{handlers: make(map[string]mqtt.Handler)}
}

func (b *fakeBroker) Publish(topic string, qos byte, retained bool, payload []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.published = append(b.published, published{topic, qos, retained, string(payload)})
	return nil
}

func (b *fakeBroker) Subscribe(topic string, _ byte, h mqtt.Handler) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.failSub != nil {
		return b.failSub
	}
	b.handlers[topic] = h
	return nil
}

func (b *fakeBroker) Disconnect() {}

func (b *fakeBroker) deliver(filter, topic, payload string) {
	b.mu.Lock()
	h := b.handlers[filter]
	b.mu.Unlock()
	h(topic, []byte(payload))
}

func (b *fakeBroker) subscribed(filter string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.handlers[filter]
	return ok
}

func (b *fakeBroker) messages() []published {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]published(nil), b.published...)
}

func (b *fakeBroker) last() published {
	m := b.messages()
	if len(m) == 0 {
		return published{}
	}
	return m[len(m)-1]
}

type linkRun struct {
	broker   *fakeBroker
	events   chan hub.Event
	commands chan hub.Command
	cancel   context.CancelFunc
	done     chan error
}

func startLink(t *testing.T, cfg mqtt.Config) *linkRun {
	t.Helper()
	r := &linkRun{
		broker:   newFakeBroker(),
		events:   make(chan hub.Event),
		commands: make(chan hub.Command, 4),
		done:     make(chan error, 1),
	}
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	t.Cleanup(cancel)

	link := mqtt.NewLink(r.broker, cfg, nil)
	go func() { r.done <- link.Run(ctx, r.events, r.commands) }()

	topics := cfg.Topics()
	require.Eventually(t, func() bool {
		return r.broker.subscribed(topics.Created()) && r.broker.last().topic == topics.Status()
	}, 5*time.Second, 5*time.Millisecond)
	return r
}

func (r *linkRun) wait(t *testing.T) error {
	t.Helper()
	select {
	case err := <-r.done:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("link did not stop")
		return nil
	}
}

func TestLinkPublishesOnlineAndOffline(t *testing.T) {
	r := startLink(t, mqtt.Config{})

	assert.Equal(t, published{"esphome/status", 1, true, "online"}, r.broker.last())

	r.cancel()
	assert.ErrorIs(t, r.wait(t), context.Canceled)
	assert.Equal(t, published{"esphome/status", 1, true, "offline"}, r.broker.last())
}

func TestLinkPublishesEvents(t *testing.T) {
	r := startLink(t, mqtt.Config{TopicPrefix: "home/esp", QoS: 1})

	r.events <- hub.EntityRegistered(5, "relay", 0)
	r.events <- hub.AttributesWritten(5, 0, []hub.Attribute{hub.Switch(true)})
	r.events <- hub.DeviceIdentityDiscovered("porch")
	close(r.events)
	require.NoError(t, r.wait(t))

	msgs := r.broker.messages()
	require.Len(t, msgs, 5)
	assert.Equal(t, published{"home/esp/device/5/entity/0/config", 1, true, `{"name":"relay"}`}, msgs[1])
	assert.Equal(t, published{"home/esp/device/5/entity/0/state", 1, true, `{"attributes":["switch=true"]}`}, msgs[2])
	assert.Equal(t, published{"home/esp/discovered", 1, false, `{"name":"porch"}`}, msgs[3])
	assert.Equal(t, "offline", msgs[4].payload)
}

func TestLinkDeliversCommands(t *testing.T) {
	r := startLink(t, mqtt.Config{})
	topics := mqtt.Config{}.Topics()

	r.broker.deliver(topics.AllEntitySets(), topics.EntitySet(5, 2), `{"attributes":["switch=false","dimmer=0.5"]}`)
	assert.Equal(t,
		hub.WriteAttributes(5, 2, []hub.Attribute{hub.Switch(false), hub.Dimmer(0.5)}),
		<-r.commands)

	r.broker.deliver(topics.Add(), topics.Add(), `{"address":"10.0.0.9","password":"pw"}`)
	assert.Equal(t,
		hub.NewAddDevice(hub.AddDevice{Address: "10.0.0.9", Password: "pw"}),
		<-r.commands)

	r.broker.deliver(topics.Created(), topics.Created(), `{"name":"porch","device_id":12}`)
	assert.Equal(t, hub.DeviceCreated("porch", 12), <-r.commands)
}

func TestLinkDropsBadCommands(t *testing.T) {
	r := startLink(t, mqtt.Config{})
	topics := mqtt.Config{}.Topics()

	r.broker.deliver(topics.AllEntitySets(), "esphome/device/x/entity/0/set", `{"attributes":["switch=true"]}`)
	r.broker.deliver(topics.AllEntitySets(), topics.EntitySet(5, 0), `{"attributes":["bogus=1"]}`)
	r.broker.deliver(topics.Add(), topics.Add(), `{}`)
	r.broker.deliver(topics.Created(), topics.Created(), `not json`)
	assert.Empty(t, r.commands)
}

func TestLinkSubscribeFailure(t *testing.T) {
	b := newFakeBroker()
	b.failSub = errors.New("not authorized")
	link := mqtt.NewLink(b, mqtt.Config{}, nil)

	err := link.Run(context.Background(), nil, nil)
	assert.EqualError(t, err, "not authorized")
	assert.Empty(t, b.messages())
}

func TestCommandDecoding(t *testing.T) {
	link := mqtt.NewLink(newFakeBroker(), mqtt.Config{TopicPrefix: "p"}, nil)

	tests := []struct {
		name    string
		topic   string
		payload string
		want    hub.Command
		wantErr error
	}{
		{"write", "p/device/7/entity/1/set", `{"attributes":["switch=true"]}`,
			hub.WriteAttributes(7, 1, []hub.Attribute{hub.Switch(true)}), nil},
		{"add with key", "p/add", `{"address":"kitchen.local","noise_psk":"abc","name":"kitchen"}`,
			hub.NewAddDevice(hub.AddDevice{Address: "kitchen.local", NoisePSK: "abc", Name: "kitchen"}), nil},
		{"created", "p/created", `{"name":"kitchen","device_id":3}`, hub.DeviceCreated("kitchen", 3), nil},
		{"empty attributes", "p/device/7/entity/1/set", `{"attributes":[]}`, hub.Command{}, mqtt.ErrInvalidPayload},
		{"negative index", "p/device/7/entity/-1/set", `{"attributes":["switch=true"]}`, hub.Command{}, mqtt.ErrInvalidTopic},
		{"foreign prefix", "q/device/7/entity/1/set", `{"attributes":["switch=true"]}`, hub.Command{}, mqtt.ErrInvalidTopic},
		{"short topic", "p/device/7/set", `{}`, hub.Command{}, mqtt.ErrInvalidTopic},
		{"created without name", "p/created", `{"device_id":3}`, hub.Command{}, mqtt.ErrInvalidPayload},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := link.Command(tt.topic, []byte(tt.payload))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPublishRejectsUnknownEvent(t *testing.T) {
	link := mqtt.NewLink(newFakeBroker(), mqtt.Config{}, nil)
	assert.Error(t, link.Publish(hub.Event{}))
}

func TestStatePayloadIsJSON(t *testing.T) {
	b := newFakeBroker()
	link := mqtt.NewLink(b, mqtt.Config{}, nil)
	require.NoError(t, link.Publish(hub.AttributesWritten(1, 0, []hub.Attribute{hub.Real(21.5), hub.Unit("°C")})))

	var body struct {
		Attributes []string `json:"attributes"`
	}
	require.NoError(t, json.Unmarshal([]byte(b.last().payload), &body))
	attrs, err := hub.ParseAttributes(body.Attributes)
	require.NoError(t, err)
	assert.Equal(t, []hub.Attribute{hub.Real(21.5), hub.Unit("°C")}, attrs)
}

func TestConfig(t *testing.T) {
	assert.False(t, mqtt.Config{}.Enabled())
	assert.True(t, mqtt.Config{Broker: "tcp://localhost:1883"}.Enabled())
	assert.NoError(t, mqtt.Config{QoS: 2}.Validate())
	assert.Error(t, mqtt.Config{QoS: 3}.Validate())
	assert.Equal(t, "esphome", mqtt.Config{}.Topics().Prefix)
}
