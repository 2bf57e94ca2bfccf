package transporttest

import (
	"testing"

	"github.com/igloo-home/esphome-go/pkg/version"
	"github.com/igloo-home/esphome-go/pkg/wire"
)

// Send encodes and sends m, failing the test on error.
func Send(t testing.TB, d Device, m wire.Message) {
	t.Helper()
	if err := SendMessage(d, m); err != nil {
		t.Fatalf("device send %s: %v", m.MessageType(), err)
	}
}

// AnswerHandshake plays the device side of a session Connect: hello with
// the bridge's own API version, an accepted password and device info
// naming the device name.
func AnswerHandshake(t testing.TB, d Device, name string) {
	t.Helper()
	Expect(t, d, wire.MsgHelloRequest, nil)
	Send(t, d, &wire.HelloResponse{
		APIVersionMajor: version.Current.Major,
		APIVersionMinor: version.Current.Minor,
		ServerInfo:      name + " (esphome v2024.6.0)",
		Name:            name,
	})
	Expect(t, d, wire.MsgConnectRequest, nil)
	Send(t, d, &wire.ConnectResponse{})
	Expect(t, d, wire.MsgDeviceInfoRequest, nil)
	Send(t, d, &wire.DeviceInfoResponse{Name: name, ESPHomeVersion: "2024.6.0"})
}

// AnswerDiscovery answers ListEntitiesRequest with lists and waits for the
// state subscription that follows.
func AnswerDiscovery(t testing.TB, d Device, lists ...wire.Message) {
	t.Helper()
	Expect(t, d, wire.MsgListEntitiesRequest, nil)
	for _, m := range lists {
		Send(t, d, m)
	}
	Send(t, d, &wire.ListEntitiesDoneResponse{})
	Expect(t, d, wire.MsgSubscribeStatesRequest, nil)
}
