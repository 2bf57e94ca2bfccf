// Package commands implements the esphome-log subcommands.
package commands

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/igloo-home/esphome-go/pkg/log"
)

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [conn:id] DIRECTION LAYER label (device)
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	layer := event.Layer.String()
	if event.Category == log.CategoryControl {
		layer = "CTRL"
	}

	fmt.Fprintf(w, "%s [conn:%s] %-3s %s %s", ts, shortenConnID(event.ConnectionID),
		event.Direction.String(), layer, eventLabel(event))
	if event.DeviceName != "" {
		fmt.Fprintf(w, " (%s)", event.DeviceName)
	} else if event.RemoteAddr != "" {
		fmt.Fprintf(w, " (%s)", event.RemoteAddr)
	}
	fmt.Fprintln(w)

	switch {
	case event.Frame != nil:
		formatFrameDetails(w, event.Frame)
	case event.Message != nil:
		formatMessageDetails(w, event.Message)
	case event.StateChange != nil:
		formatStateChangeDetails(w, event.StateChange)
	case event.Handshake != nil:
		formatHandshakeDetails(w, event.Handshake)
	case event.Error != nil:
		formatErrorDetails(w, event.Error)
	}

	fmt.Fprintln(w)
}

// eventLabel names the event's payload.
func eventLabel(event log.Event) string {
	switch {
	case event.Frame != nil:
		return "Frame"
	case event.Message != nil:
		return event.Message.Type.String()
	case event.StateChange != nil:
		return "State"
	case event.ControlMsg != nil:
		return event.ControlMsg.Type.String()
	case event.Handshake != nil:
		return "Handshake"
	case event.Error != nil:
		return "Error"
	default:
		return "Unknown"
	}
}

// shortenConnID returns the first 8 characters of the connection ID.
func shortenConnID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

func formatFrameDetails(w io.Writer, frame *log.FrameEvent) {
	fmt.Fprintf(w, "  Size: %d bytes", frame.Size)
	if frame.Encrypted {
		fmt.Fprint(w, " (encrypted)")
	}
	fmt.Fprintln(w)
	if len(frame.Data) > 0 {
		fmt.Fprintf(w, "  Data: %s", hex.EncodeToString(frame.Data))
		if frame.Truncated {
			fmt.Fprint(w, " (truncated)")
		}
		fmt.Fprintln(w)
	}
}

func formatMessageDetails(w io.Writer, msg *log.MessageEvent) {
	fmt.Fprintf(w, "  Type: %d  Size: %d bytes\n", uint16(msg.Type), msg.Size)
	if msg.Key != nil {
		fmt.Fprintf(w, "  Key: %d\n", *msg.Key)
	}
	if len(msg.Payload) > 0 {
		fmt.Fprintf(w, "  Payload: %s", hex.EncodeToString(msg.Payload))
		if len(msg.Payload) < msg.Size {
			fmt.Fprint(w, " (truncated)")
		}
		fmt.Fprintln(w)
	}
}

func formatStateChangeDetails(w io.Writer, sc *log.StateChangeEvent) {
	fmt.Fprintf(w, "  Entity: %s\n", sc.Entity.String())
	if sc.OldState != "" {
		fmt.Fprintf(w, "  %s -> %s\n", sc.OldState, sc.NewState)
	} else {
		fmt.Fprintf(w, "  -> %s\n", sc.NewState)
	}
	if sc.Reason != "" {
		fmt.Fprintf(w, "  Reason: %s\n", sc.Reason)
	}
}

func formatHandshakeDetails(w io.Writer, hs *log.HandshakeEvent) {
	fmt.Fprintf(w, "  Step: %s\n", hs.Step.String())
	if hs.ServerName != "" {
		fmt.Fprintf(w, "  Server: %s\n", hs.ServerName)
	}
	if hs.Reason != "" {
		fmt.Fprintf(w, "  Reason: %s\n", hs.Reason)
	}
}

func formatErrorDetails(w io.Writer, err *log.ErrorEventData) {
	fmt.Fprintf(w, "  Layer: %s\n", err.Layer.String())
	fmt.Fprintf(w, "  Message: %s\n", err.Message)
	if err.Context != "" {
		fmt.Fprintf(w, "  Context: %s\n", err.Context)
	}
}

// RunView prints the events of path selected by filter.
func RunView(path string, filter log.Filter, output io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open capture file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(output, event)
	}
}
