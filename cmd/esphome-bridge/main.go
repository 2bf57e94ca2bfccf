// Command esphome-bridge connects ESPHome devices to the hub.
//
// It loads the configured devices, keeps one native API session per device
// and relays entity state and commands. Without a hub attached, hub events
// are printed and the interactive console stands in for hub commands.
//
// Usage:
//
//	esphome-bridge [flags]
//
// Flags:
//
//	-config string        Configuration file path (default "esphome-bridge.yaml")
//	-log-level string     Log level: debug, info, warn, error (default "info")
//	-protocol-log string  Append protocol capture events to this file
//	-trace                Also log protocol capture events at debug level
//	-metrics-addr string  Serve Prometheus metrics on this address (overrides the config file)
//	-interactive          Enable interactive command mode
//	-reconnect            Reconnect devices whose session ends (overrides the config file)
//
// Examples:
//
//	# Run the configured devices with a console
//	esphome-bridge -config /etc/esphome-bridge.yaml -interactive
//
//	# Capture all traffic for later analysis with esphome-log
//	esphome-bridge -protocol-log /var/log/esphome-bridge.elog
//
//	# Expose metrics for Prometheus
//	esphome-bridge -metrics-addr :9464
//
// When the configuration file has an mqtt section, hub events are published
// to the broker and commands are taken from it (see package mqtt).
//
// Interactive Commands:
//
//	add <address> [psk=..] [password=..] [name=..] - Connect a new device
//	created <name> <device-id>                     - Assign an ID to a discovered device
//	write <device-id> <entity-index> <attr>...     - Write attributes
//	devices                                        - List devices
//	quit                                           - Exit the bridge
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/igloo-home/esphome-go/cmd/esphome-bridge/interactive"
	"github.com/igloo-home/esphome-go/pkg/bridge"
	"github.com/igloo-home/esphome-go/pkg/config"
	"github.com/igloo-home/esphome-go/pkg/hub"
	"github.com/igloo-home/esphome-go/pkg/log"
	"github.com/igloo-home/esphome-go/pkg/metrics"
	"github.com/igloo-home/esphome-go/pkg/mqtt"
	"github.com/igloo-home/esphome-go/pkg/version"
)

// Options holds the command-line flags.
type Options struct {
	ConfigFile  string
	LogLevel    string
	ProtocolLog string
	Trace       bool
	MetricsAddr string
	Interactive bool
	Reconnect   bool
}

var opts Options

func init() {
	flag.StringVar(&opts.ConfigFile, "config", "esphome-bridge.yaml", "Configuration file path")
	flag.StringVar(&opts.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flag.StringVar(&opts.ProtocolLog, "protocol-log", "", "Append protocol capture events to this file")
	flag.BoolVar(&opts.Trace, "trace", false, "Also log protocol capture events at debug level")
	flag.StringVar(&opts.MetricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address (overrides the config file)")
	flag.BoolVar(&opts.Interactive, "interactive", false, "Enable interactive command mode")
	flag.BoolVar(&opts.Reconnect, "reconnect", false, "Reconnect devices whose session ends (overrides the config file)")
}

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	level, err := parseLevel(opts.LogLevel)
	if err != nil {
		return err
	}
	logOut := &switchWriter{w: os.Stderr}
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level}))

	store := config.NewStore(opts.ConfigFile)
	cfg, err := store.Load()
	if err != nil {
		return err
	}
	if opts.Reconnect {
		cfg.Bridge.Reconnect.Enabled = true
	}
	if opts.ProtocolLog != "" {
		cfg.Bridge.ProtocolLog = opts.ProtocolLog
	}
	if opts.MetricsAddr != "" {
		cfg.Bridge.MetricsAddr = opts.MetricsAddr
	}

	var sinks []log.Logger
	var reg *prometheus.Registry
	if cfg.Bridge.MetricsAddr != "" {
		reg = prometheus.NewRegistry()
		sinks = append(sinks, metrics.NewCollector(reg))
	}
	capture, closeCapture, err := protocolLogger(cfg.Bridge.ProtocolLog, opts.Trace, logger, sinks...)
	if err != nil {
		return err
	}
	defer closeCapture()

	logger.Info("ESPHome bridge starting",
		"version", version.Build,
		"api", version.Current.String(),
		"config", store.Path(),
		"devices", len(cfg.Devices))

	b := bridge.New(bridge.FromConfig(cfg, store, logger, capture))
	commands := make(chan hub.Command, cfg.Bridge.CommandCapacity)
	events := make(chan hub.Event, cfg.Bridge.EventCapacity)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if reg != nil {
		go func() {
			if err := serveMetrics(ctx, cfg.Bridge.MetricsAddr, reg, logger); err != nil {
				logger.Error("metrics endpoint failed", "error", err)
			}
		}()
	}

	var linkEvents chan hub.Event
	if cfg.MQTT.Enabled() {
		broker, err := mqtt.Dial(cfg.MQTT)
		if err != nil {
			return err
		}
		linkEvents = make(chan hub.Event, cfg.Bridge.EventCapacity)
		link := mqtt.NewLink(broker, cfg.MQTT, logger)
		linkDone := make(chan struct{})
		go func() {
			defer close(linkDone)
			if err := link.Run(ctx, linkEvents, commands); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("mqtt link failed", "error", err)
			}
		}()
		// The link publishes its offline status before the broker goes.
		defer func() {
			cancel()
			<-linkDone
			broker.Disconnect()
		}()
	}

	out := io.Writer(os.Stdout)
	if opts.Interactive {
		console, err := interactive.New(b, commands)
		if err != nil {
			return err
		}
		// Route logs through readline so they do not garble the prompt.
		out = console.Stdout()
		logOut.set(out)
		go console.Run(ctx, cancel)
	}

	// Events are printed unless an MQTT hub consumes them outside the
	// console.
	printEvents := opts.Interactive || linkEvents == nil
	go relayEvents(ctx, events, linkEvents, func(ev hub.Event) {
		if printEvents {
			interactive.PrintEvent(out, ev)
		}
	})

	err = b.Run(ctx, cfg.Devices, commands, events)
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	logger.Info("ESPHome bridge stopped")
	return err
}

// relayEvents hands each bridge event to show and then to link, when set.
func relayEvents(ctx context.Context, events <-chan hub.Event, link chan<- hub.Event, show func(hub.Event)) {
	for {
		select {
		case ev := <-events:
			show(ev)
			if link == nil {
				continue
			}
			select {
			case link <- ev:
			case <-ctx.Done():
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

// protocolLogger builds the capture sink from a file path, the trace flag
// and any extra sinks. It returns a nil logger when capture is off.
func protocolLogger(path string, trace bool, logger *slog.Logger, extra ...log.Logger) (log.Logger, func(), error) {
	sinks := append([]log.Logger(nil), extra...)
	closeFn := func() {}

	if path != "" {
		fl, err := log.NewFileLogger(path)
		if err != nil {
			return nil, nil, fmt.Errorf("open protocol log: %w", err)
		}
		sinks = append(sinks, fl)
		closeFn = func() {
			if n := fl.Dropped(); n > 0 {
				logger.Warn("protocol log dropped events", "count", n)
			}
			_ = fl.Close()
		}
		logger.Info("protocol capture enabled", "path", path)
	}
	if trace {
		sinks = append(sinks, log.NewSlogAdapter(logger).WithLevel(slog.LevelDebug))
	}

	switch len(sinks) {
	case 0:
		return nil, closeFn, nil
	case 1:
		return sinks[0], closeFn, nil
	default:
		return log.NewMultiLogger(sinks...), closeFn, nil
	}
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q (use debug, info, warn, error)", s)
	}
	return level, nil
}
