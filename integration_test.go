package esphome_test

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/igloo-home/esphome-go/pkg/bridge"
	"github.com/igloo-home/esphome-go/pkg/config"
	"github.com/igloo-home/esphome-go/pkg/device"
	"github.com/igloo-home/esphome-go/pkg/hub"
	"github.com/igloo-home/esphome-go/pkg/log"
	"github.com/igloo-home/esphome-go/pkg/transport/transporttest"
	"github.com/igloo-home/esphome-go/pkg/wire"
)

func testPSK() []byte {
	psk := make([]byte, 32)
	for i := range psk {
		psk[i] = byte(i + 1)
	}
	return psk
}

type bridgeRun struct {
	commands chan hub.Command
	events   chan hub.Event
	cancel   context.CancelFunc
	done     chan error
}

// startBridge runs a bridge built from the configuration in store.
func startBridge(t *testing.T, store *config.Store, capture log.Logger) *bridgeRun {
	t.Helper()
	cfg, err := store.Load()
	require.NoError(t, err)

	bcfg := bridge.FromConfig(cfg, store, slog.New(slog.DiscardHandler), capture)
	bcfg.Session.DisconnectTimeout = 200 * time.Millisecond
	b := bridge.New(bcfg)

	ctx, cancel := context.WithCancel(context.Background())
	r := &bridgeRun{
		commands: make(chan hub.Command, cfg.Bridge.CommandCapacity),
		events:   make(chan hub.Event, cfg.Bridge.EventCapacity),
		cancel:   cancel,
		done:     make(chan error, 1),
	}
	go func() { r.done <- b.Run(ctx, cfg.Devices, r.commands, r.events) }()
	t.Cleanup(cancel)
	return r
}

func (r *bridgeRun) stop(t *testing.T) {
	t.Helper()
	r.cancel()
	select {
	case err := <-r.done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("bridge did not stop")
	}
}

func (r *bridgeRun) waitFor(t *testing.T, match func(hub.Event) bool) hub.Event {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case ev := <-r.events:
			if match(ev) {
				return ev
			}
		case <-deadline:
			t.Fatal("expected event not received")
			return hub.Event{}
		}
	}
}

func readCapture(t *testing.T, path string) []log.Event {
	t.Helper()
	reader, err := log.NewReader(path)
	require.NoError(t, err)
	defer reader.Close()

	var events []log.Event
	for {
		e, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return events
		}
		require.NoError(t, err)
		events = append(events, e)
	}
}

// TestE2E_NoiseSessionWithCapture runs a configured encrypted device through
// discovery, a state update and a command, then checks the capture file.
func TestE2E_NoiseSessionWithCapture(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ln := transporttest.Listen(t)
	dir := t.TempDir()
	store := config.NewStore(filepath.Join(dir, "bridge.yaml"))
	require.NoError(t, store.Put(5, device.ConnectionParams{
		Address:  ln.Addr(),
		NoisePSK: base64.StdEncoding.EncodeToString(testPSK()),
		Password: "secret",
	}))

	capturePath := filepath.Join(dir, "bridge.elog")
	capture, err := log.NewFileLogger(capturePath)
	require.NoError(t, err)

	r := startBridge(t, store, capture)
	dev := ln.AcceptNoise(t, testPSK(), "kitchen")
	transporttest.AnswerHandshake(t, dev, "kitchen")
	transporttest.AnswerDiscovery(t, dev, &wire.ListEntitiesSwitchResponse{
		EntityHeader: wire.EntityHeader{ObjectID: "relay", Key: 7, Name: "relay"},
	})

	ev := r.waitFor(t, func(ev hub.Event) bool { return ev.Type == hub.EventEntityRegistered })
	assert.Equal(t, hub.EntityRegistered(5, "relay", 0), ev)

	transporttest.Send(t, dev, &wire.SwitchStateResponse{Key: 7, State: true})
	ev = r.waitFor(t, func(ev hub.Event) bool {
		return ev.Type == hub.EventAttributesWritten && len(ev.Attributes) > 0
	})
	assert.Equal(t, hub.AttributesWritten(5, 0, []hub.Attribute{hub.Switch(true)}), ev)

	r.commands <- hub.WriteAttributes(5, 0, []hub.Attribute{hub.Switch(false)})
	var cmd wire.SwitchCommandRequest
	transporttest.Expect(t, dev, wire.MsgSwitchCommandRequest, &cmd)
	assert.Equal(t, uint32(7), cmd.Key)
	assert.False(t, cmd.State)

	r.stop(t)
	require.NoError(t, capture.Close())

	var (
		completed bool
		stateKeys []uint32
		deviceUp  bool
	)
	for _, e := range readCapture(t, capturePath) {
		switch {
		case e.Handshake != nil && e.Handshake.Step == log.HandshakeComplete:
			completed = true
			assert.Equal(t, "kitchen", e.Handshake.ServerName)
		case e.Message != nil && e.Message.Type == wire.MsgSwitchStateResponse:
			require.NotNil(t, e.Message.Key)
			stateKeys = append(stateKeys, *e.Message.Key)
		case e.StateChange != nil && e.StateChange.Entity == log.StateEntityDevice && e.StateChange.NewState == "started":
			deviceUp = true
		}
	}
	assert.True(t, completed, "handshake completion captured")
	assert.Equal(t, []uint32{7}, stateKeys)
	assert.True(t, deviceUp, "device start captured")
}

// TestE2E_AddedDeviceSurvivesRestart adds a device through the hub commands
// and checks that a restarted bridge reconnects it under the assigned ID.
func TestE2E_AddedDeviceSurvivesRestart(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ln := transporttest.Listen(t)
	store := config.NewStore(filepath.Join(t.TempDir(), "bridge.yaml"))

	first := startBridge(t, store, nil)
	first.commands <- hub.NewAddDevice(hub.AddDevice{Address: ln.Addr(), Password: "pw"})
	dev := ln.AcceptPlain(t)
	transporttest.AnswerHandshake(t, dev, "porch")

	ev := first.waitFor(t, func(ev hub.Event) bool { return ev.Type == hub.EventDeviceIdentityDiscovered })
	first.commands <- hub.DeviceCreated(ev.Name, 12)
	transporttest.AnswerDiscovery(t, dev)
	first.stop(t)

	cfg, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, []uint64{12}, cfg.DeviceIDs())

	second := startBridge(t, store, nil)
	dev = ln.AcceptPlain(t)
	transporttest.AnswerHandshake(t, dev, "porch")
	transporttest.AnswerDiscovery(t, dev, &wire.ListEntitiesBinarySensorResponse{
		EntityHeader: wire.EntityHeader{ObjectID: "motion", Key: 3, Name: "motion"},
	})

	ev = second.waitFor(t, func(ev hub.Event) bool { return ev.Type == hub.EventEntityRegistered })
	assert.Equal(t, hub.EntityRegistered(12, "motion", 0), ev)
	second.stop(t)
}
