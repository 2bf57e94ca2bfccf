package log

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/igloo-home/esphome-go/pkg/wire"
)

func createTestLogFile(t *testing.T, events []Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.elog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create test log: %v", err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	logger.Close()

	return path
}

func readAll(t *testing.T, r *Reader) []Event {
	t.Helper()
	var out []Event
	for e, err := range r.All() {
		if err != nil {
			t.Fatalf("read failed: %v", err)
		}
		out = append(out, e)
	}
	return out
}

func TestReaderIteratesEvents(t *testing.T) {
	now := time.Now()
	path := createTestLogFile(t, []Event{
		{Timestamp: now, ConnectionID: "conn-1", Layer: LayerTransport},
		{Timestamp: now, ConnectionID: "conn-2", Layer: LayerWire},
		{Timestamp: now, ConnectionID: "conn-3", Layer: LayerSession, Category: CategoryState},
	})

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	read := readAll(t, reader)
	if len(read) != 3 {
		t.Fatalf("got %d events, want 3", len(read))
	}
	if read[0].ConnectionID != "conn-1" || read[2].ConnectionID != "conn-3" {
		t.Errorf("order not preserved: %q..%q", read[0].ConnectionID, read[2].ConnectionID)
	}
}

func TestReaderHandlesEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.elog")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	if _, err := reader.Next(); err != io.EOF {
		t.Errorf("got %v, want io.EOF", err)
	}
}

func TestReaderHandlesTruncatedFile(t *testing.T) {
	path := createTestLogFile(t, []Event{{Timestamp: time.Now(), ConnectionID: "conn-1"}})
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data[:len(data)-2], 0o644); err != nil {
		t.Fatal(err)
	}

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	if _, err := reader.Next(); err == nil || err == io.EOF {
		t.Errorf("expected decode error, got %v", err)
	}
}

func TestReaderFilters(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ping := wire.MsgPingRequest
	state := wire.MsgSwitchStateResponse

	events := []Event{
		{Timestamp: base, ConnectionID: "a", DeviceName: "plug", Direction: DirectionOut, Layer: LayerWire,
			Message: &MessageEvent{Type: ping}},
		{Timestamp: base.Add(time.Second), ConnectionID: "a", DeviceName: "plug", Direction: DirectionIn, Layer: LayerWire,
			Message: &MessageEvent{Type: state}},
		{Timestamp: base.Add(2 * time.Second), ConnectionID: "b", DeviceName: "lamp", Direction: DirectionIn, Layer: LayerTransport,
			Frame: &FrameEvent{Size: 10}},
		{Timestamp: base.Add(3 * time.Second), ConnectionID: "b", DeviceName: "lamp", Direction: DirectionIn, Layer: LayerSession,
			Category: CategoryState, StateChange: &StateChangeEvent{NewState: "RUNNING"}},
	}
	path := createTestLogFile(t, events)

	in := DirectionIn
	wireLayer := LayerWire
	stateCat := CategoryState
	start := base.Add(time.Second)
	end := base.Add(3 * time.Second)

	tests := []struct {
		name   string
		filter Filter
		want   int
	}{
		{"none", Filter{}, 4},
		{"connection", Filter{ConnectionID: "b"}, 2},
		{"device", Filter{DeviceName: "plug"}, 2},
		{"direction", Filter{Direction: &in}, 3},
		{"layer", Filter{Layer: &wireLayer}, 2},
		{"category", Filter{Category: &stateCat}, 1},
		{"message type", Filter{MessageType: &state}, 1},
		{"time range", Filter{TimeStart: &start, TimeEnd: &end}, 2},
		{"combined", Filter{ConnectionID: "a", Direction: &in, Layer: &wireLayer}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader, err := NewFilteredReader(path, tt.filter)
			if err != nil {
				t.Fatalf("NewFilteredReader failed: %v", err)
			}
			defer reader.Close()

			if got := len(readAll(t, reader)); got != tt.want {
				t.Errorf("got %d events, want %d", got, tt.want)
			}
		})
	}
}
