package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/igloo-home/esphome-go/pkg/log"
	"github.com/igloo-home/esphome-go/pkg/wire"
)

func newTestCollector(t *testing.T) (*Collector, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	return NewCollector(reg), reg
}

func stateEvent(entity log.StateEntity, from, to string) log.Event {
	return log.Event{
		Category:    log.CategoryState,
		StateChange: &log.StateChangeEvent{Entity: entity, OldState: from, NewState: to},
	}
}

func TestCollectorCountsTraffic(t *testing.T) {
	c, _ := newTestCollector(t)

	c.Log(log.Event{Direction: log.DirectionOut, Frame: &log.FrameEvent{Size: 10, Encrypted: true}})
	c.Log(log.Event{Direction: log.DirectionOut, Frame: &log.FrameEvent{Size: 30, Encrypted: true}})
	c.Log(log.Event{Direction: log.DirectionIn, Frame: &log.FrameEvent{Size: 7}})
	c.Log(log.Event{Direction: log.DirectionIn, Message: &log.MessageEvent{Type: wire.MsgSwitchStateResponse}})
	c.Log(log.Event{Direction: log.DirectionIn, ControlMsg: &log.ControlMsgEvent{Type: log.ControlMsgPing}})
	c.Log(log.Event{Handshake: &log.HandshakeEvent{Step: log.HandshakeComplete}})
	c.Log(log.Event{Error: &log.ErrorEventData{Layer: log.LayerTransport, Message: "eof"}})

	assert.Equal(t, 2.0, testutil.ToFloat64(c.frames.WithLabelValues("out", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.frames.WithLabelValues("in", "false")))
	assert.Equal(t, 40.0, testutil.ToFloat64(c.frameBytes.WithLabelValues("out")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.messages.WithLabelValues("in", wire.MsgSwitchStateResponse.String())))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.control.WithLabelValues("in", "ping")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.handshakes.WithLabelValues("complete")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.errors.WithLabelValues("transport")))
}

func TestCollectorTracksLifecycles(t *testing.T) {
	c, _ := newTestCollector(t)

	c.Log(stateEvent(log.StateEntityConnection, "DISCONNECTED", "HANDSHAKING"))
	c.Log(stateEvent(log.StateEntityConnection, "HANDSHAKING", "CONNECTED"))
	c.Log(stateEvent(log.StateEntitySession, "connected", "running"))
	c.Log(stateEvent(log.StateEntityDevice, "", "started"))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.connections))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.sessions))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.devices))

	c.Log(stateEvent(log.StateEntitySession, "running", "stopped"))
	c.Log(stateEvent(log.StateEntityConnection, "CONNECTED", "DISCONNECTED"))
	c.Log(stateEvent(log.StateEntityDevice, "started", "removed"))
	assert.Zero(t, testutil.ToFloat64(c.connections))
	assert.Zero(t, testutil.ToFloat64(c.sessions))
	assert.Zero(t, testutil.ToFloat64(c.devices))

	// A handshake that fails never counted as connected.
	c.Log(stateEvent(log.StateEntityConnection, "HANDSHAKING", "DISCONNECTED"))
	assert.Zero(t, testutil.ToFloat64(c.connections))

	assert.Equal(t, 1.0, testutil.ToFloat64(c.states.WithLabelValues("session", "running")))
}

func TestCollectorParkedDevices(t *testing.T) {
	c, _ := newTestCollector(t)

	c.Log(stateEvent(log.StateEntityDevice, "", "parked"))
	c.Log(stateEvent(log.StateEntityDevice, "", "parked"))
	c.Log(stateEvent(log.StateEntityDevice, "parked", "replaced"))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.parked))

	c.Log(stateEvent(log.StateEntityDevice, "parked", "adopted"))
	assert.Zero(t, testutil.ToFloat64(c.parked))
}

func TestCollectorRegistersMetrics(t *testing.T) {
	c, reg := newTestCollector(t)
	c.Log(stateEvent(log.StateEntityDevice, "", "started"))

	families, err := reg.Gather()
	require.NoError(t, err)
	var names []string
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "esphome_bridge_devices")
	assert.Contains(t, names, "esphome_bridge_state_changes_total")

	assert.Panics(t, func() { NewCollector(reg) }, "duplicate registration")
}
