// Package metrics derives Prometheus metrics from protocol capture events.
//
// A Collector is a log.Logger: attach it next to (or instead of) a capture
// file and every frame, message, handshake step and state change updates
// the counters below. Nothing else in the bridge knows about Prometheus.
package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/igloo-home/esphome-go/pkg/log"
)

// Namespace prefixes every metric name.
const Namespace = "esphome_bridge"

// Collector turns capture events into metrics.
type Collector struct {
	frames     *prometheus.CounterVec
	frameBytes *prometheus.CounterVec
	messages   *prometheus.CounterVec
	control    *prometheus.CounterVec
	handshakes *prometheus.CounterVec
	errors     *prometheus.CounterVec
	states     *prometheus.CounterVec

	connections prometheus.Gauge
	sessions    prometheus.Gauge
	devices     prometheus.Gauge
	parked      prometheus.Gauge
}

// NewCollector registers the bridge metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	f := promauto.With(reg)
	return &Collector{
		frames: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "frames_total",
			Help:      "Transport frames by direction and encryption.",
		}, []string{"direction", "encrypted"}),
		frameBytes: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "frame_bytes_total",
			Help:      "Transport frame bytes including headers.",
		}, []string{"direction"}),
		messages: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "messages_total",
			Help:      "Typed API messages by direction and message type.",
		}, []string{"direction", "type"}),
		control: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "control_messages_total",
			Help:      "Ping, disconnect and time messages.",
		}, []string{"direction", "type"}),
		handshakes: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "handshake_steps_total",
			Help:      "Noise handshake steps.",
		}, []string{"step"}),
		errors: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "errors_total",
			Help:      "Errors by protocol layer.",
		}, []string{"layer"}),
		states: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "state_changes_total",
			Help:      "Connection, session and device table transitions.",
		}, []string{"entity", "state"}),

		connections: f.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "connections",
			Help:      "Transports with messages flowing.",
		}),
		sessions: f.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "running_sessions",
			Help:      "Device sessions in their run loop.",
		}),
		devices: f.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "devices",
			Help:      "Devices in the bridge table.",
		}),
		parked: f.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "parked_devices",
			Help:      "Added devices awaiting an ID from the hub.",
		}),
	}
}

// Log implements log.Logger.
func (c *Collector) Log(e log.Event) {
	dir := strings.ToLower(e.Direction.String())
	switch {
	case e.Frame != nil:
		enc := "false"
		if e.Frame.Encrypted {
			enc = "true"
		}
		c.frames.WithLabelValues(dir, enc).Inc()
		c.frameBytes.WithLabelValues(dir).Add(float64(e.Frame.Size))
	case e.Message != nil:
		c.messages.WithLabelValues(dir, e.Message.Type.String()).Inc()
	case e.ControlMsg != nil:
		c.control.WithLabelValues(dir, strings.ToLower(e.ControlMsg.Type.String())).Inc()
	case e.Handshake != nil:
		c.handshakes.WithLabelValues(strings.ToLower(e.Handshake.Step.String())).Inc()
	case e.Error != nil:
		c.errors.WithLabelValues(strings.ToLower(e.Error.Layer.String())).Inc()
	case e.StateChange != nil:
		c.stateChange(e.StateChange)
	}
}

func (c *Collector) stateChange(sc *log.StateChangeEvent) {
	entity := strings.ToLower(sc.Entity.String())
	to := strings.ToLower(sc.NewState)
	c.states.WithLabelValues(entity, to).Inc()

	from := strings.ToLower(sc.OldState)
	switch sc.Entity {
	case log.StateEntityConnection:
		if to == "connected" {
			c.connections.Inc()
		} else if from == "connected" {
			c.connections.Dec()
		}
	case log.StateEntitySession:
		if to == "running" {
			c.sessions.Inc()
		} else if from == "running" {
			c.sessions.Dec()
		}
	case log.StateEntityDevice:
		switch to {
		case "parked":
			c.parked.Inc()
		case "adopted", "rejected", "replaced":
			c.parked.Dec()
		case "started":
			c.devices.Inc()
		case "removed":
			c.devices.Dec()
		}
	}
}

var _ log.Logger = (*Collector)(nil)
