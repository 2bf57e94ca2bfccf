package commands

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/igloo-home/esphome-go/pkg/log"
	"github.com/igloo-home/esphome-go/pkg/wire"
)

// FilterOptions holds event selection flags as given on the command line.
type FilterOptions struct {
	Output      string
	ConnID      string
	Device      string
	MessageType string
	TimeStart   string
	TimeEnd     string
	Layer       string
	Direction   string
	Category    string
}

// Filter parses the options into a log.Filter.
func (o FilterOptions) Filter() (log.Filter, error) {
	filter := log.Filter{
		ConnectionID: o.ConnID,
		DeviceName:   o.Device,
	}

	if o.TimeStart != "" {
		t, err := time.Parse(time.RFC3339, o.TimeStart)
		if err != nil {
			return log.Filter{}, fmt.Errorf("invalid time-start format: %w", err)
		}
		filter.TimeStart = &t
	}
	if o.TimeEnd != "" {
		t, err := time.Parse(time.RFC3339, o.TimeEnd)
		if err != nil {
			return log.Filter{}, fmt.Errorf("invalid time-end format: %w", err)
		}
		filter.TimeEnd = &t
	}
	if o.Layer != "" {
		l, err := parseLayer(o.Layer)
		if err != nil {
			return log.Filter{}, err
		}
		filter.Layer = &l
	}
	if o.Direction != "" {
		d, err := parseDirection(o.Direction)
		if err != nil {
			return log.Filter{}, err
		}
		filter.Direction = &d
	}
	if o.Category != "" {
		c, err := parseCategory(o.Category)
		if err != nil {
			return log.Filter{}, err
		}
		filter.Category = &c
	}
	if o.MessageType != "" {
		mt, err := parseMessageType(o.MessageType)
		if err != nil {
			return log.Filter{}, err
		}
		filter.MessageType = &mt
	}
	return filter, nil
}

// RunFilter copies the events of path selected by opts to opts.Output and
// returns how many were written.
func RunFilter(path string, opts FilterOptions) (int, error) {
	filter, err := opts.Filter()
	if err != nil {
		return 0, err
	}

	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to open capture file: %w", err)
	}
	defer reader.Close()

	out, err := log.NewFileLogger(opts.Output)
	if err != nil {
		return 0, fmt.Errorf("failed to create output file: %w", err)
	}
	defer out.Close()

	count := 0
	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return count, fmt.Errorf("failed to read event: %w", err)
		}
		out.Log(event)
		count++
	}
	return count, nil
}

func parseLayer(s string) (log.Layer, error) {
	switch strings.ToLower(s) {
	case "transport":
		return log.LayerTransport, nil
	case "wire":
		return log.LayerWire, nil
	case "session":
		return log.LayerSession, nil
	default:
		return 0, fmt.Errorf("invalid layer: %s (must be transport, wire or session)", s)
	}
}

func parseDirection(s string) (log.Direction, error) {
	switch strings.ToLower(s) {
	case "in":
		return log.DirectionIn, nil
	case "out":
		return log.DirectionOut, nil
	default:
		return 0, fmt.Errorf("invalid direction: %s (must be in or out)", s)
	}
}

func parseCategory(s string) (log.Category, error) {
	switch strings.ToLower(s) {
	case "message":
		return log.CategoryMessage, nil
	case "control":
		return log.CategoryControl, nil
	case "state":
		return log.CategoryState, nil
	case "error":
		return log.CategoryError, nil
	case "handshake":
		return log.CategoryHandshake, nil
	default:
		return 0, fmt.Errorf("invalid category: %s (must be message, control, state, error or handshake)", s)
	}
}

// parseMessageType accepts a wire identifier or a message name such as
// SwitchCommandRequest (case-insensitive).
func parseMessageType(s string) (wire.MessageType, error) {
	if n, err := strconv.ParseUint(s, 10, 32); err == nil {
		return wire.LookupMessageType(uint32(n))
	}
	for id := range uint32(1 << 16) {
		mt := wire.MessageType(id)
		if mt.IsKnown() && strings.EqualFold(mt.String(), s) {
			return mt, nil
		}
	}
	return 0, fmt.Errorf("invalid message type: %s", s)
}
