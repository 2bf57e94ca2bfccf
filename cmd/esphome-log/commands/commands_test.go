package commands

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/igloo-home/esphome-go/pkg/log"
	"github.com/igloo-home/esphome-go/pkg/wire"
)

const testConnID = "abc12345-6789-0123-4567-890abcdef012"

func createTestLogFile(t *testing.T, events []log.Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.elog")

	logger, err := log.NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	logger.Close()
	return path
}

func sampleEvents() []log.Event {
	ts := time.Date(2026, 1, 28, 10, 15, 32, 123456000, time.UTC)
	key := uint32(7)
	return []log.Event{
		{
			Timestamp:    ts,
			ConnectionID: testConnID,
			Direction:    log.DirectionOut,
			Layer:        log.LayerTransport,
			Category:     log.CategoryHandshake,
			RemoteAddr:   "10.0.0.5:6053",
			Handshake:    &log.HandshakeEvent{Step: log.HandshakeServerHello, ServerName: "kitchen"},
		},
		{
			Timestamp:    ts.Add(time.Millisecond),
			ConnectionID: testConnID,
			Direction:    log.DirectionIn,
			Layer:        log.LayerWire,
			Category:     log.CategoryMessage,
			RemoteAddr:   "10.0.0.5:6053",
			DeviceName:   "kitchen",
			Message: &log.MessageEvent{
				Type:    wire.MsgSwitchStateResponse,
				Size:    4,
				Key:     &key,
				Payload: []byte{0x0d, 0x07, 0x00, 0x00},
			},
		},
		{
			Timestamp:    ts.Add(2 * time.Millisecond),
			ConnectionID: testConnID,
			Direction:    log.DirectionOut,
			Layer:        log.LayerSession,
			Category:     log.CategoryControl,
			DeviceName:   "kitchen",
			ControlMsg:   &log.ControlMsgEvent{Type: log.ControlMsgPing},
		},
		{
			Timestamp:    ts.Add(3 * time.Second),
			ConnectionID: testConnID,
			Direction:    log.DirectionIn,
			Layer:        log.LayerSession,
			Category:     log.CategoryError,
			DeviceName:   "kitchen",
			Error:        &log.ErrorEventData{Layer: log.LayerSession, Message: "connection reset", Context: "receive"},
		},
	}
}

func TestFormatMessageEvent(t *testing.T) {
	var buf bytes.Buffer
	formatEvent(&buf, sampleEvents()[1])
	output := buf.String()

	for _, want := range []string{
		"2026-01-28T10:15:32.124456Z",
		"[conn:abc12345]",
		"IN  WIRE SwitchStateResponse (kitchen)",
		"Key: 7",
		"Payload: 0d070000",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got:\n%s", want, output)
		}
	}
}

func TestFormatControlEventUsesCtrl(t *testing.T) {
	var buf bytes.Buffer
	formatEvent(&buf, sampleEvents()[2])
	if !strings.Contains(buf.String(), "OUT CTRL PING") {
		t.Errorf("expected CTRL header, got: %s", buf.String())
	}
}

func TestFormatHandshakeFallsBackToAddress(t *testing.T) {
	var buf bytes.Buffer
	formatEvent(&buf, sampleEvents()[0])
	output := buf.String()
	if !strings.Contains(output, "Handshake (10.0.0.5:6053)") {
		t.Errorf("expected address in header, got: %s", output)
	}
	if !strings.Contains(output, "Step: SERVER_HELLO") || !strings.Contains(output, "Server: kitchen") {
		t.Errorf("expected handshake details, got: %s", output)
	}
}

func TestFormatTruncatedPayload(t *testing.T) {
	var buf bytes.Buffer
	formatMessageDetails(&buf, &log.MessageEvent{Type: wire.MsgSensorStateResponse, Size: 2048, Payload: []byte{1, 2}})
	if !strings.Contains(buf.String(), "(truncated)") {
		t.Errorf("expected truncation marker, got: %s", buf.String())
	}
}

func TestRunViewFilters(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())

	opts := FilterOptions{Category: "error"}
	filter, err := opts.Filter()
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := RunView(path, filter, &buf); err != nil {
		t.Fatalf("RunView failed: %v", err)
	}
	output := buf.String()
	if !strings.Contains(output, "connection reset") {
		t.Errorf("expected error event, got: %s", output)
	}
	if strings.Contains(output, "SwitchStateResponse") {
		t.Errorf("unexpected message event, got: %s", output)
	}
}

func TestFilterOptionsInvalid(t *testing.T) {
	tests := []FilterOptions{
		{Layer: "service"},
		{Direction: "sideways"},
		{Category: "snapshot"},
		{MessageType: "NoSuchRequest"},
		{MessageType: "9999"},
		{TimeStart: "yesterday"},
		{TimeEnd: "tomorrow"},
	}
	for _, opts := range tests {
		if _, err := opts.Filter(); err == nil {
			t.Errorf("expected error for %+v", opts)
		}
	}
}

func TestParseMessageType(t *testing.T) {
	tests := []struct {
		in   string
		want wire.MessageType
	}{
		{"33", wire.MsgSwitchCommandRequest},
		{"SwitchCommandRequest", wire.MsgSwitchCommandRequest},
		{"pingrequest", wire.MsgPingRequest},
	}
	for _, tt := range tests {
		got, err := parseMessageType(tt.in)
		if err != nil {
			t.Errorf("parseMessageType(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseMessageType(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestRunFilter(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())
	out := filepath.Join(t.TempDir(), "filtered.elog")

	n, err := RunFilter(path, FilterOptions{Output: out, Device: "kitchen", MessageType: "SwitchStateResponse"})
	if err != nil {
		t.Fatalf("RunFilter failed: %v", err)
	}
	if n != 1 {
		t.Fatalf("filtered %d events, want 1", n)
	}

	reader, err := log.NewReader(out)
	if err != nil {
		t.Fatal(err)
	}
	defer reader.Close()
	event, err := reader.Next()
	if err != nil {
		t.Fatal(err)
	}
	if event.Message == nil || *event.Message.Key != 7 {
		t.Errorf("unexpected event: %+v", event)
	}
}

func TestExportJSONL(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())
	out := filepath.Join(t.TempDir(), "out.jsonl")

	if err := RunExport(path, "jsonl", out); err != nil {
		t.Fatalf("RunExport failed: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	lines := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var decoded map[string]any
		if err := json.Unmarshal(scanner.Bytes(), &decoded); err != nil {
			t.Fatalf("line %d is not JSON: %v", lines+1, err)
		}
		lines++
	}
	if lines != 4 {
		t.Errorf("exported %d lines, want 4", lines)
	}
}

func TestExportCSV(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())
	out := filepath.Join(t.TempDir(), "out.csv")

	if err := RunExport(path, "csv", out); err != nil {
		t.Fatalf("RunExport failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 5 {
		t.Fatalf("got %d rows, want header plus 4", len(rows))
	}
	msg := rows[2]
	if msg[6] != "kitchen" || msg[7] != "SwitchStateResponse" || msg[8] != "7" || msg[9] != "4" {
		t.Errorf("unexpected message row: %v", msg)
	}
}

func TestExportUnknownFormat(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())
	if err := RunExport(path, "xml", ""); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestStats(t *testing.T) {
	events := sampleEvents()
	events = append(events, log.Event{
		Timestamp:    events[0].Timestamp,
		ConnectionID: "ffff0000-other",
		Layer:        log.LayerTransport,
		Category:     log.CategoryHandshake,
		Handshake:    &log.HandshakeEvent{Step: log.HandshakeRejected, Reason: "Handshake MAC failure"},
	})
	path := createTestLogFile(t, events)

	stats, err := Collect(path)
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	if stats.TotalEvents != 5 {
		t.Errorf("TotalEvents = %d, want 5", stats.TotalEvents)
	}
	if stats.Messages[wire.MsgSwitchStateResponse] != 1 {
		t.Errorf("Messages = %v", stats.Messages)
	}
	if stats.Errors != 1 {
		t.Errorf("Errors = %d, want 1", stats.Errors)
	}
	conn := stats.Connections[testConnID]
	if conn == nil || conn.DeviceName != "kitchen" || !conn.Encrypted || conn.Rejected {
		t.Errorf("unexpected connection stats: %+v", conn)
	}
	if other := stats.Connections["ffff0000-other"]; other == nil || !other.Rejected {
		t.Errorf("expected rejected connection, got %+v", other)
	}

	var buf bytes.Buffer
	if err := RunStats(path, &buf); err != nil {
		t.Fatal(err)
	}
	output := buf.String()
	for _, want := range []string{"Total Events: 5", "SESSION:", "HANDSHAKE:", "SwitchStateResponse:", "Device: kitchen", "noise (rejected)", "Errors: 1"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got:\n%s", want, output)
		}
	}
}
