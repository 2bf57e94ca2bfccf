package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/igloo-home/esphome-go/pkg/device"
	"github.com/igloo-home/esphome-go/pkg/mqtt"
	"github.com/igloo-home/esphome-go/pkg/transport"
	"github.com/igloo-home/esphome-go/pkg/wire"
)

const testPSK = "AAECAwQFBgcICQoLDA0ODxAREhMUFRYXGBkaGxwdHh8="

func TestLoadMissingFile(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "bridge.yaml"))

	c, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, c.Devices)
	assert.NotNil(t, c.Devices)
	assert.Equal(t, DefaultEventCapacity, c.Bridge.EventCapacity)
	assert.Equal(t, DefaultCommandCapacity, c.Bridge.CommandCapacity)
	assert.False(t, c.Bridge.Reconnect.Enabled)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bridge.yaml")
	data := `
bridge:
  command_capacity: 8
  protocol_log: /tmp/capture.elog
  device_log_level: Debug
  reconnect:
    enabled: true
    initial: 500ms
    max: 2m
    jitter: 0.1
  keep_alive:
    ping_interval: 30s
  metrics_addr: 127.0.0.1:9464
mqtt:
  broker: tcp://broker.local:1883
  client_id: esphome-bridge
  qos: 1
devices:
  17:
    address: 10.0.0.5
    noise_psk: ` + testPSK + `
  3:
    address: porch.local:6053
    password: secret
    name: porch
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0600))

	c, err := NewStore(path).Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultEventCapacity, c.Bridge.EventCapacity)
	assert.Equal(t, 8, c.Bridge.CommandCapacity)
	assert.Equal(t, "/tmp/capture.elog", c.Bridge.ProtocolLog)
	assert.Equal(t, wire.LogLevelDebug, c.DeviceLogLevel())

	assert.True(t, c.Bridge.Reconnect.Enabled)
	assert.Equal(t, 500*time.Millisecond, c.Bridge.Reconnect.Initial)
	assert.Equal(t, 2*time.Minute, c.Bridge.Reconnect.Max)
	assert.InDelta(t, 0.1, c.Bridge.Reconnect.Jitter, 1e-9)
	assert.Equal(t, 30*time.Second, c.Bridge.KeepAlive.PingInterval)
	assert.Equal(t, "127.0.0.1:9464", c.Bridge.MetricsAddr)
	assert.Equal(t, mqtt.Config{Broker: "tcp://broker.local:1883", ClientID: "esphome-bridge", QoS: 1}, c.MQTT)

	assert.Equal(t, []uint64{3, 17}, c.DeviceIDs())
	assert.Equal(t, device.ConnectionParams{Address: "10.0.0.5", NoisePSK: testPSK}, c.Devices[17])
	assert.Equal(t, device.ConnectionParams{Address: "porch.local:6053", Password: "secret", Name: "porch"}, c.Devices[3])
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{"bad yaml", "devices: [", nil},
		{"missing address", "devices:\n  1:\n    password: x\n", device.ErrInvalidParams},
		{"short psk", "devices:\n  1:\n    address: a\n    noise_psk: c2hvcnQ=\n", transport.ErrInvalidPSK},
		{"reserved id", "devices:\n  0:\n    address: a\n", ErrInvalidConfig},
		{"log level", "bridge:\n  device_log_level: loud\n", ErrInvalidConfig},
		{"mqtt qos", "mqtt:\n  broker: tcp://b:1883\n  qos: 3\n", ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bridge.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.data), 0600))

			_, err := NewStore(path).Load()
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "bridge.yaml")
	s := NewStore(path)

	c := New()
	c.Bridge.Reconnect.Enabled = true
	c.Bridge.Reconnect.Initial = 2 * time.Second
	c.Devices[5] = device.ConnectionParams{Address: "10.0.0.5", NoisePSK: testPSK}
	require.NoError(t, s.Save(c))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, c, loaded)

	// Durations are written in their readable form.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "initial: 2s")

	// No temporary files are left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSaveRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bridge.yaml")
	c := New()
	c.Devices[1] = device.ConnectionParams{}

	assert.ErrorIs(t, NewStore(path).Save(c), device.ErrInvalidParams)
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestPut(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bridge.yaml")
	s := NewStore(path)

	c := New()
	c.Bridge.ProtocolLog = "capture.elog"
	require.NoError(t, s.Save(c))

	require.NoError(t, s.Put(7, device.ConnectionParams{Address: "10.0.0.7"}))
	require.NoError(t, s.Put(8, device.ConnectionParams{Address: "10.0.0.8", Name: "attic"}))
	require.NoError(t, s.Put(7, device.ConnectionParams{Address: "10.0.0.70"}))

	loaded, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "capture.elog", loaded.Bridge.ProtocolLog)
	assert.Equal(t, []uint64{7, 8}, loaded.DeviceIDs())
	assert.Equal(t, "10.0.0.70", loaded.Devices[7].Address)

	assert.Error(t, s.Put(9, device.ConnectionParams{}))
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want wire.LogLevel
	}{
		{"", wire.LogLevelNone},
		{"none", wire.LogLevelNone},
		{"ERROR", wire.LogLevelError},
		{" info ", wire.LogLevelInfo},
		{"very_verbose", wire.LogLevelVeryVerbose},
	}
	for _, tt := range tests {
		got, err := ParseLogLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseLogLevel("trace")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
