package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/igloo-home/esphome-go/pkg/connection"
	"github.com/igloo-home/esphome-go/pkg/device"
	"github.com/igloo-home/esphome-go/pkg/mqtt"
	"github.com/igloo-home/esphome-go/pkg/wire"
)

// Channel defaults.
const (
	// DefaultEventCapacity is the buffer of the bridge-to-hub event channel.
	DefaultEventCapacity = 100

	// DefaultCommandCapacity is the buffer of each per-device command channel.
	DefaultCommandCapacity = 50
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the bridge configuration file.
type Config struct {
	// Bridge holds bridge-wide settings.
	Bridge Bridge `yaml:"bridge,omitempty"`

	// MQTT links the bridge to a hub over an MQTT broker. Disabled
	// unless a broker is set.
	MQTT mqtt.Config `yaml:"mqtt,omitempty"`

	// Devices maps hub device IDs to connection parameters.
	Devices map[uint64]device.ConnectionParams `yaml:"devices,omitempty"`
}

// Bridge holds bridge-wide settings.
type Bridge struct {
	// EventCapacity buffers events to the hub (default 100).
	EventCapacity int `yaml:"event_capacity,omitempty"`

	// CommandCapacity buffers commands to each device (default 50).
	CommandCapacity int `yaml:"command_capacity,omitempty"`

	// ProtocolLog is the path of a protocol capture file. Empty disables
	// capture.
	ProtocolLog string `yaml:"protocol_log,omitempty"`

	// MetricsAddr serves Prometheus metrics on this address. Empty
	// disables the endpoint.
	MetricsAddr string `yaml:"metrics_addr,omitempty"`

	// DeviceLogLevel subscribes to device log lines at this level ("none",
	// "error", "warn", "info", "config", "debug", "verbose",
	// "very_verbose"). Empty means none.
	DeviceLogLevel string `yaml:"device_log_level,omitempty"`

	// Reconnect restarts sessions that end.
	Reconnect Reconnect `yaml:"reconnect,omitempty"`

	// KeepAlive configures bridge-initiated pings.
	KeepAlive device.KeepAliveConfig `yaml:"keep_alive,omitempty"`
}

// Reconnect configures session restarts. Disabled by default.
type Reconnect struct {
	Enabled                  bool `yaml:"enabled"`
	connection.BackoffConfig `yaml:",inline"`
}

// New returns an empty configuration with defaults applied.
func New() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

func (c *Config) applyDefaults() {
	if c.Devices == nil {
		c.Devices = make(map[uint64]device.ConnectionParams)
	}
	if c.Bridge.EventCapacity <= 0 {
		c.Bridge.EventCapacity = DefaultEventCapacity
	}
	if c.Bridge.CommandCapacity <= 0 {
		c.Bridge.CommandCapacity = DefaultCommandCapacity
	}
}

// Validate checks every device entry and the bridge settings.
func (c *Config) Validate() error {
	var errs []error
	for _, id := range c.DeviceIDs() {
		if id == 0 {
			errs = append(errs, fmt.Errorf("%w: device id 0 is reserved", ErrInvalidConfig))
			continue
		}
		if err := c.Devices[id].Validate(); err != nil {
			errs = append(errs, fmt.Errorf("device %d: %w", id, err))
		}
	}
	if _, err := ParseLogLevel(c.Bridge.DeviceLogLevel); err != nil {
		errs = append(errs, err)
	}
	if err := c.MQTT.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidConfig, err))
	}
	if c.Bridge.EventCapacity < 0 || c.Bridge.CommandCapacity < 0 {
		errs = append(errs, fmt.Errorf("%w: negative channel capacity", ErrInvalidConfig))
	}
	return errors.Join(errs...)
}

// DeviceIDs returns the configured device IDs in ascending order.
func (c *Config) DeviceIDs() []uint64 {
	ids := make([]uint64, 0, len(c.Devices))
	for id := range c.Devices {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// DeviceLogLevel returns the parsed device log level.
func (c *Config) DeviceLogLevel() wire.LogLevel {
	level, _ := ParseLogLevel(c.Bridge.DeviceLogLevel)
	return level
}

var logLevels = map[string]wire.LogLevel{
	"":             wire.LogLevelNone,
	"none":         wire.LogLevelNone,
	"error":        wire.LogLevelError,
	"warn":         wire.LogLevelWarn,
	"info":         wire.LogLevelInfo,
	"config":       wire.LogLevelConfig,
	"debug":        wire.LogLevelDebug,
	"verbose":      wire.LogLevelVerbose,
	"very_verbose": wire.LogLevelVeryVerbose,
}

// ParseLogLevel parses a device log level name, case-insensitively.
func ParseLogLevel(s string) (wire.LogLevel, error) {
	level, ok := logLevels[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return wire.LogLevelNone, fmt.Errorf("%w: unknown device log level %q", ErrInvalidConfig, s)
	}
	return level, nil
}
