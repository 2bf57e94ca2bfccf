package device_test

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/igloo-home/esphome-go/pkg/device"
	"github.com/igloo-home/esphome-go/pkg/hub"
	"github.com/igloo-home/esphome-go/pkg/transport/transporttest"
	"github.com/igloo-home/esphome-go/pkg/wire"
)

func TestRunWriteSendsCommand(t *testing.T) {
	forEachVariant(t, func(t *testing.T, v variant) {
		s, dev := connect(t, v, device.Config{})
		r := serve(t, s, dev, switchEntity(7, "relay"))

		r.commands <- hub.Write{EntityIndex: 0, Attributes: []hub.Attribute{hub.Switch(true)}}

		var cmd wire.SwitchCommandRequest
		transporttest.Expect(t, dev, wire.MsgSwitchCommandRequest, &cmd)
		assert.Equal(t, uint32(7), cmd.Key)
		assert.True(t, cmd.State)
	})
}

func TestRunWriteIgnoresForeignAttributes(t *testing.T) {
	s, dev := connect(t, variants[0], device.Config{})
	r := serve(t, s, dev, switchEntity(7, "relay"))

	r.commands <- hub.Write{EntityIndex: 0, Attributes: []hub.Attribute{hub.Dimmer(0.5), hub.Switch(false)}}

	var cmd wire.SwitchCommandRequest
	transporttest.Expect(t, dev, wire.MsgSwitchCommandRequest, &cmd)
	assert.Equal(t, uint32(7), cmd.Key)
	assert.False(t, cmd.State)
}

func TestRunWriteDropped(t *testing.T) {
	s, dev := connect(t, variants[0], device.Config{Translators: registryWithout(wire.EntityCover)})
	r := serve(t, s, dev,
		switchEntity(7, "relay"),
		&wire.ListEntitiesBinarySensorResponse{EntityHeader: wire.EntityHeader{ObjectID: "door", Key: 8, Name: "door"}},
		relabel(switchEntity(9, "blind"), wire.MsgListEntitiesCoverResponse),
	)

	// Unknown index, a read-only entity and an untranslated entity produce
	// nothing on the wire.
	r.commands <- hub.Write{EntityIndex: 5, Attributes: []hub.Attribute{hub.Switch(true)}}
	r.commands <- hub.Write{EntityIndex: 1, Attributes: []hub.Attribute{hub.Switch(true)}}
	r.commands <- hub.Write{EntityIndex: 2, Attributes: []hub.Attribute{hub.Switch(true)}}
	r.commands <- hub.Write{EntityIndex: 0, Attributes: []hub.Attribute{hub.Switch(true)}}

	var cmd wire.SwitchCommandRequest
	transporttest.Expect(t, dev, wire.MsgSwitchCommandRequest, &cmd)
	assert.Equal(t, uint32(7), cmd.Key)
}

func TestRunCoverStateAndCommand(t *testing.T) {
	s, dev := connect(t, variants[0], device.Config{})
	r := serve(t, s, dev, &wire.ListEntitiesCoverResponse{
		EntityHeader: wire.EntityHeader{ObjectID: "blind", Key: 9, Name: "blind"},
	})
	r.drain()

	sendMessage(t, dev, &wire.CoverStateResponse{
		Key:              9,
		Position:         0.5,
		CurrentOperation: wire.CoverOperationOpening,
	})
	assert.Equal(t,
		hub.AttributesWritten(testDeviceID, 0, []hub.Attribute{
			hub.Position(0.5),
			hub.Tilt(0),
			hub.CoverStatus(hub.CoverOpening),
		}),
		nextEvent(t, r.events))

	r.commands <- hub.Write{EntityIndex: 0, Attributes: []hub.Attribute{hub.Position(1)}}
	var cmd wire.CoverCommandRequest
	transporttest.Expect(t, dev, wire.MsgCoverCommandRequest, &cmd)
	assert.Equal(t, uint32(9), cmd.Key)
	assert.True(t, cmd.HasPosition)
	assert.Equal(t, float32(1), cmd.Position)
}

func TestRunSurvivesBadPreamble(t *testing.T) {
	out := &lockedBuffer{}
	s, dev := connect(t, variants[0], device.Config{
		Logger: slog.New(slog.NewTextHandler(out, nil)),
	})
	r := serve(t, s, dev, switchEntity(7, "relay"))
	r.drain()

	_, err := dev.Conn().Write([]byte{0x05, 0x00, 0x07})
	require.NoError(t, err)
	assert.Eventually(t, func() bool {
		return bytes.Contains([]byte(out.String()), []byte("receive failed"))
	}, 5*time.Second, 10*time.Millisecond)

	sendMessage(t, dev, &wire.SwitchStateResponse{Key: 7, State: true})
	assert.Equal(t,
		hub.AttributesWritten(testDeviceID, 0, []hub.Attribute{hub.Switch(true)}),
		nextEvent(t, r.events))
	assert.True(t, s.Connected())

	sendMessage(t, dev, &wire.PingRequest{})
	transporttest.Expect(t, dev, wire.MsgPingResponse, nil)
}

func TestRunClosedCommandsKeepsRunning(t *testing.T) {
	s, dev := connect(t, variants[0], device.Config{})
	r := serve(t, s, dev, switchEntity(7, "relay"))
	r.drain()

	close(r.commands)
	sendMessage(t, dev, &wire.SwitchStateResponse{Key: 7, State: true})
	ev := nextEvent(t, r.events)
	assert.Equal(t, []hub.Attribute{hub.Switch(true)}, ev.Attributes)
}

func TestRunStateDropped(t *testing.T) {
	s, dev := connect(t, variants[0], device.Config{})
	r := serve(t, s, dev, switchEntity(7, "relay"))
	r.drain()

	// Unknown key.
	sendMessage(t, dev, &wire.SwitchStateResponse{Key: 99, State: true})
	// Registered key, wrong entity type.
	sendMessage(t, dev, &wire.BinarySensorStateResponse{Key: 7, State: true})
	// Missing state.
	sendMessage(t, dev, &wire.SensorStateResponse{Key: 7, MissingState: true})
	// Unknown message type.
	require.NoError(t, dev.Send(wire.MessageType(9999), []byte{0xFF}))
	// Not a state response.
	sendMessage(t, dev, &wire.ListEntitiesDoneResponse{})

	sendMessage(t, dev, &wire.SwitchStateResponse{Key: 7, State: false})

	assert.Equal(t,
		hub.AttributesWritten(testDeviceID, 0, []hub.Attribute{hub.Switch(false)}),
		nextEvent(t, r.events))
	assert.Empty(t, r.events)
}

func TestRunAnswersPing(t *testing.T) {
	forEachVariant(t, func(t *testing.T, v variant) {
		s, dev := connect(t, v, device.Config{})
		serve(t, s, dev)

		sendMessage(t, dev, &wire.PingRequest{})
		transporttest.Expect(t, dev, wire.MsgPingResponse, nil)
	})
}

func TestRunAnswersGetTime(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	s, dev := connect(t, variants[0], device.Config{Now: func() time.Time { return now }})
	serve(t, s, dev)

	sendMessage(t, dev, &wire.GetTimeRequest{})
	var resp wire.GetTimeResponse
	transporttest.Expect(t, dev, wire.MsgGetTimeResponse, &resp)
	assert.Equal(t, uint32(1_700_000_000), resp.EpochSeconds)
}

func TestRunRecordsPong(t *testing.T) {
	s, dev := connect(t, variants[0], device.Config{})
	serve(t, s, dev)

	_, ok := s.LastPing()
	assert.False(t, ok)

	require.NoError(t, s.Ping())
	transporttest.Expect(t, dev, wire.MsgPingRequest, nil)
	sendMessage(t, dev, &wire.PingResponse{})

	assert.Eventually(t, func() bool {
		_, ok := s.LastPing()
		return ok
	}, 5*time.Second, 10*time.Millisecond)
}

func TestRunCancelDisconnects(t *testing.T) {
	forEachVariant(t, func(t *testing.T, v variant) {
		s, dev := connect(t, v, device.Config{})
		r := serve(t, s, dev)

		r.cancel()
		transporttest.Expect(t, dev, wire.MsgDisconnectRequest, nil)
		sendMessage(t, dev, &wire.DisconnectResponse{})

		assert.ErrorIs(t, r.wait(t), context.Canceled)
		assert.False(t, s.Connected())
	})
}

func TestRunCancelDisconnectTimeout(t *testing.T) {
	s, dev := connect(t, variants[0], device.Config{DisconnectTimeout: 50 * time.Millisecond})
	r := serve(t, s, dev)

	r.cancel()
	transporttest.Expect(t, dev, wire.MsgDisconnectRequest, nil)

	assert.ErrorIs(t, r.wait(t), context.Canceled)
	assert.False(t, s.Connected())
}

func TestRunConnectionLost(t *testing.T) {
	forEachVariant(t, func(t *testing.T, v variant) {
		s, dev := connect(t, v, device.Config{})
		r := serve(t, s, dev)

		require.NoError(t, dev.Close())

		assert.ErrorIs(t, r.wait(t), device.ErrConnectionLost)
		assert.False(t, s.Connected())
	})
}

func TestRunKeepAliveTimeout(t *testing.T) {
	s, dev := connect(t, variants[0], device.Config{KeepAlive: device.KeepAliveConfig{
		PingInterval:   20 * time.Millisecond,
		PongTimeout:    10 * time.Millisecond,
		MaxMissedPongs: 2,
	}})
	r := serve(t, s, dev)

	transporttest.Expect(t, dev, wire.MsgPingRequest, nil)
	assert.ErrorIs(t, r.wait(t), device.ErrKeepAliveTimeout)

	stats, ok := s.KeepAliveStats()
	require.True(t, ok)
	assert.Equal(t, 2, stats.MissedPongs)
}

func TestRunKeepAliveAnswered(t *testing.T) {
	s, dev := connect(t, variants[0], device.Config{KeepAlive: device.KeepAliveConfig{
		PingInterval:   20 * time.Millisecond,
		PongTimeout:    time.Second,
		MaxMissedPongs: 1,
	}})
	serve(t, s, dev)

	for range 3 {
		transporttest.Expect(t, dev, wire.MsgPingRequest, nil)
		sendMessage(t, dev, &wire.PingResponse{})
	}

	assert.Eventually(t, func() bool {
		stats, _ := s.KeepAliveStats()
		return !stats.LastPongTime.IsZero()
	}, 5*time.Second, 10*time.Millisecond)
	stats, ok := s.KeepAliveStats()
	require.True(t, ok)
	assert.Zero(t, stats.MissedPongs)
}

func TestRunKeepAliveDisabledByDefault(t *testing.T) {
	s, _ := connect(t, variants[0], device.Config{})
	_, ok := s.KeepAliveStats()
	assert.False(t, ok)
}

func TestRunAlreadyRunning(t *testing.T) {
	s, dev := connect(t, variants[0], device.Config{})
	serve(t, s, dev)
	// A ping round trip proves the loop is up.
	sendMessage(t, dev, &wire.PingRequest{})
	transporttest.Expect(t, dev, wire.MsgPingResponse, nil)

	assert.ErrorIs(t, s.Run(context.Background(), nil, nil), device.ErrRunning)
	assert.ErrorIs(t, s.Disconnect(context.Background()), device.ErrRunning)
}

// lockedBuffer is a bytes.Buffer safe for the session's goroutines.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestRunForwardsDeviceLogs(t *testing.T) {
	out := &lockedBuffer{}
	s, dev := connect(t, variants[0], device.Config{
		Logger:         slog.New(slog.NewTextHandler(out, nil)),
		DeviceLogLevel: wire.LogLevelDebug,
	})
	serve(t, s, dev)

	var sub wire.SubscribeLogsRequest
	transporttest.Expect(t, dev, wire.MsgSubscribeLogsRequest, &sub)
	assert.Equal(t, wire.LogLevelDebug, sub.Level)

	sendMessage(t, dev, &wire.SubscribeLogsResponse{Level: wire.LogLevelInfo, Message: "[sensor] temp=21.5"})

	assert.Eventually(t, func() bool {
		return bytes.Contains([]byte(out.String()), []byte("temp=21.5"))
	}, 5*time.Second, 10*time.Millisecond)
}
