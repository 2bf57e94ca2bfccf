package mqtt

import (
	"fmt"
	"sync"
	"time"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"
)

const (
	defaultConnectTimeout  = 10 * time.Second
	defaultPublishTimeout  = 5 * time.Second
	defaultDisconnectQuiet = 250 // milliseconds
	defaultKeepAlive       = 60 * time.Second
	maxQoS                 = 2
)

// Config selects the broker and topic layout. It is read from the
// "mqtt" section of the bridge configuration file.
type Config struct {
	// Broker is the broker URL, e.g. tcp://localhost:1883. Empty disables
	// the link.
	Broker   string `yaml:"broker,omitempty"`
	ClientID string `yaml:"client_id,omitempty"`
	Username string `yaml:"username,omitempty"`
	Password string `yaml:"password,omitempty"`

	TopicPrefix string `yaml:"topic_prefix,omitempty"`
	QoS         byte   `yaml:"qos,omitempty"`
}

// Enabled reports whether a broker is configured.
func (c Config) Enabled() bool {
	return c.Broker != ""
}

// Validate checks the QoS level.
func (c Config) Validate() error {
	if c.QoS > maxQoS {
		return fmt.Errorf("mqtt: qos %d out of range", c.QoS)
	}
	return nil
}

// Topics returns the topic builder for c.
func (c Config) Topics() Topics {
	prefix := c.TopicPrefix
	if prefix == "" {
		prefix = DefaultTopicPrefix
	}
	return Topics{Prefix: prefix}
}

// Handler receives one message from a subscription.
type Handler func(topic string, payload []byte)

// Broker is the part of an MQTT client a Link uses.
type Broker interface {
	Publish(topic string, qos byte, retained bool, payload []byte) error
	Subscribe(topic string, qos byte, h Handler) error
	Disconnect()
}

type pahoBroker struct {
	client pahomqtt.Client

	mu   sync.Mutex
	subs map[string]pahomqtt.MessageHandler
	qos  map[string]byte
}

// Dial connects to the broker in cfg. The broker publishes StatusOffline
// on the status topic if the bridge vanishes; subscriptions are restored
// after the client reconnects.
func Dial(cfg Config) (Broker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	topics := cfg.Topics()
	b := &pahoBroker{
		subs: make(map[string]pahomqtt.MessageHandler),
		qos:  make(map[string]byte),
	}

	opts := pahomqtt.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(cfg.ClientID)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}
	opts.SetCleanSession(true)
	opts.SetAutoReconnect(true)
	opts.SetConnectTimeout(defaultConnectTimeout)
	opts.SetKeepAlive(defaultKeepAlive)
	// Handlers block on the bridge's command queue.
	opts.SetOrderMatters(false)
	opts.SetWill(topics.Status(), StatusOffline, 1, true)
	opts.SetOnConnectHandler(func(c pahomqtt.Client) {
		c.Publish(topics.Status(), 1, true, StatusOnline)
		b.resubscribe(c)
	})

	b.client = pahomqtt.NewClient(opts)
	tok := b.client.Connect()
	if !tok.WaitTimeout(defaultConnectTimeout) {
		return nil, fmt.Errorf("%w: timeout after %v", ErrConnectionFailed, defaultConnectTimeout)
	}
	if err := tok.Error(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnectionFailed, err)
	}
	return b, nil
}

func (b *pahoBroker) Publish(topic string, qos byte, retained bool, payload []byte) error {
	tok := b.client.Publish(topic, qos, retained, payload)
	if !tok.WaitTimeout(defaultPublishTimeout) {
		return fmt.Errorf("%w: %s: timeout", ErrPublishFailed, topic)
	}
	if err := tok.Error(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrPublishFailed, topic, err)
	}
	return nil
}

func (b *pahoBroker) Subscribe(topic string, qos byte, h Handler) error {
	mh := func(_ pahomqtt.Client, m pahomqtt.Message) {
		h(m.Topic(), m.Payload())
	}
	b.mu.Lock()
	b.subs[topic] = mh
	b.qos[topic] = qos
	b.mu.Unlock()

	tok := b.client.Subscribe(topic, qos, mh)
	if !tok.WaitTimeout(defaultPublishTimeout) {
		return fmt.Errorf("%w: %s: timeout", ErrSubscribeFailed, topic)
	}
	if err := tok.Error(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrSubscribeFailed, topic, err)
	}
	return nil
}

func (b *pahoBroker) resubscribe(c pahomqtt.Client) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for topic, mh := range b.subs {
		c.Subscribe(topic, b.qos[topic], mh)
	}
}

func (b *pahoBroker) Disconnect() {
	b.client.Disconnect(defaultDisconnectQuiet)
}
