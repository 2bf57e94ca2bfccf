package interactive

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/igloo-home/esphome-go/pkg/bridge"
	"github.com/igloo-home/esphome-go/pkg/hub"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name string
		line []string
		want hub.Command
	}{
		{
			name: "add plain",
			line: []string{"add", "10.0.0.5"},
			want: hub.NewAddDevice(hub.AddDevice{Address: "10.0.0.5"}),
		},
		{
			name: "add with options",
			line: []string{"add", "porch.local:6053", "psk=foo=", "password=pw", "name=Porch"},
			want: hub.NewAddDevice(hub.AddDevice{Address: "porch.local:6053", NoisePSK: "foo=", Password: "pw", Name: "Porch"}),
		},
		{
			name: "created",
			line: []string{"created", "porch", "12"},
			want: hub.DeviceCreated("porch", 12),
		},
		{
			name: "write",
			line: []string{"w", "5", "0", "switch=true"},
			want: hub.WriteAttributes(5, 0, []hub.Attribute{hub.Switch(true)}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCommand(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCommandErrors(t *testing.T) {
	tests := map[string][]string{
		"empty":              nil,
		"add no address":     {"add"},
		"add bad option":     {"add", "10.0.0.5", "color=red"},
		"add bare option":    {"add", "10.0.0.5", "psk"},
		"created missing id": {"created", "porch"},
		"created zero id":    {"created", "porch", "0"},
		"write short":        {"write", "5", "0"},
		"write bad id":       {"write", "x", "0", "switch=true"},
		"write bad index":    {"write", "5", "-1", "switch=true"},
	}
	for name, line := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseCommand(line)
			assert.ErrorIs(t, err, ErrUsage)
		})
	}

	_, err := ParseCommand([]string{"write", "5", "0", "switch=maybe"})
	assert.ErrorIs(t, err, hub.ErrInvalidAttribute)

	_, err = ParseCommand([]string{"frobnicate"})
	assert.Error(t, err)
}

func TestPrintDevices(t *testing.T) {
	var buf bytes.Buffer
	PrintDevices(&buf, []bridge.DeviceStatus{
		{ID: 5, Name: "kitchen", Address: "10.0.0.5:6053", Connected: true},
		{Name: "porch", Address: "10.0.0.9:6053", Connected: true, Parked: true},
	})
	out := buf.String()
	assert.Contains(t, out, "Devices (2)")
	assert.Contains(t, out, "ID: 5")
	assert.Contains(t, out, "Status: connected")
	assert.Contains(t, out, "ID: -")
	assert.Contains(t, out, "Status: awaiting id")

	buf.Reset()
	PrintDevices(&buf, nil)
	assert.Equal(t, "No devices\n", buf.String())
}
