package device

import (
	"time"
)

// Keep-alive defaults.
const (
	// DefaultPingInterval is the default interval between pings.
	DefaultPingInterval = 30 * time.Second

	// DefaultPongTimeout is the default timeout waiting for a pong response.
	DefaultPongTimeout = 5 * time.Second

	// DefaultMaxMissedPongs is the default number of missed pongs before
	// the connection is considered lost.
	DefaultMaxMissedPongs = 3
)

// KeepAliveConfig configures client-initiated pings. A zero PingInterval
// disables them; devices still ping the bridge and get answered.
type KeepAliveConfig struct {
	// PingInterval is the interval between pings.
	PingInterval time.Duration `yaml:"ping_interval,omitempty"`

	// PongTimeout is the timeout waiting for a pong response.
	PongTimeout time.Duration `yaml:"pong_timeout,omitempty"`

	// MaxMissedPongs is the number of missed pongs before disconnect.
	MaxMissedPongs int `yaml:"max_missed_pongs,omitempty"`
}

// DefaultKeepAliveConfig returns an enabled keep-alive configuration.
func DefaultKeepAliveConfig() KeepAliveConfig {
	return KeepAliveConfig{
		PingInterval:   DefaultPingInterval,
		PongTimeout:    DefaultPongTimeout,
		MaxMissedPongs: DefaultMaxMissedPongs,
	}
}

// Enabled reports whether pings are sent.
func (c KeepAliveConfig) Enabled() bool {
	return c.PingInterval > 0
}

// DetectionDelay is the longest a dead connection can go unnoticed:
// PingInterval * MaxMissedPongs + PongTimeout.
func (c KeepAliveConfig) DetectionDelay() time.Duration {
	return c.PingInterval*time.Duration(c.MaxMissedPongs) + c.PongTimeout
}

func (c *KeepAliveConfig) applyDefaults() {
	if c.PongTimeout <= 0 {
		c.PongTimeout = DefaultPongTimeout
	}
	if c.MaxMissedPongs <= 0 {
		c.MaxMissedPongs = DefaultMaxMissedPongs
	}
}

// KeepAliveStats contains keep-alive statistics.
type KeepAliveStats struct {
	LastPingTime time.Time
	LastPongTime time.Time
	MissedPongs  int
	Latency      time.Duration
}

// keepAlive tracks outstanding pings. It is driven by the Run loop and is
// not safe for concurrent use.
type keepAlive struct {
	config KeepAliveConfig

	missedPongs  int
	lastPingTime time.Time
	lastPongTime time.Time
	latency      time.Duration
	hasPending   bool
}

func newKeepAlive(config KeepAliveConfig) *keepAlive {
	config.applyDefaults()
	return &keepAlive{config: config}
}

// tick is called every PingInterval. It reports whether to send a ping and
// whether the connection should be considered dead.
func (ka *keepAlive) tick(now time.Time) (ping, dead bool) {
	if ka.hasPending && now.Sub(ka.lastPingTime) >= ka.config.PongTimeout {
		ka.missedPongs++
		ka.hasPending = false
		if ka.missedPongs >= ka.config.MaxMissedPongs {
			return false, true
		}
	}
	ka.lastPingTime = now
	ka.hasPending = true
	return true, false
}

// pong records a ping response.
func (ka *keepAlive) pong(now time.Time) {
	ka.lastPongTime = now
	if ka.hasPending {
		ka.latency = now.Sub(ka.lastPingTime)
		ka.hasPending = false
		ka.missedPongs = 0
	}
}

func (ka *keepAlive) stats() KeepAliveStats {
	return KeepAliveStats{
		LastPingTime: ka.lastPingTime,
		LastPongTime: ka.lastPongTime,
		MissedPongs:  ka.missedPongs,
		Latency:      ka.latency,
	}
}
