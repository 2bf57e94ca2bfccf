package log

import (
	"errors"
	"io"
	"iter"
	"os"
	"time"

	"github.com/fxamacker/cbor/v2"

	"github.com/igloo-home/esphome-go/pkg/wire"
)

// Filter selects capture events. A zero field places no constraint.
type Filter struct {
	ConnectionID string

	// DeviceName is the name the device reported in its hello.
	DeviceName string

	Direction *Direction
	Layer     *Layer
	Category  *Category

	// MessageType keeps only typed messages of that identifier.
	MessageType *wire.MessageType

	// TimeStart is inclusive, TimeEnd exclusive.
	TimeStart *time.Time
	TimeEnd   *time.Time
}

// Matches reports whether e passes every set constraint.
func (f *Filter) Matches(e Event) bool {
	switch {
	case f.ConnectionID != "" && e.ConnectionID != f.ConnectionID:
		return false
	case f.DeviceName != "" && e.DeviceName != f.DeviceName:
		return false
	case f.Direction != nil && e.Direction != *f.Direction:
		return false
	case f.Layer != nil && e.Layer != *f.Layer:
		return false
	case f.Category != nil && e.Category != *f.Category:
		return false
	case f.TimeStart != nil && e.Timestamp.Before(*f.TimeStart):
		return false
	case f.TimeEnd != nil && !e.Timestamp.Before(*f.TimeEnd):
		return false
	}
	if f.MessageType != nil {
		return e.Message != nil && e.Message.Type == *f.MessageType
	}
	return true
}

// Reader streams events out of a capture file.
type Reader struct {
	src    io.ReadCloser
	dec    *cbor.Decoder
	filter Filter
}

// NewReader opens the capture at path and yields every event.
func NewReader(path string) (*Reader, error) {
	return NewFilteredReader(path, Filter{})
}

// NewFilteredReader opens the capture at path and yields only events
// accepted by filter.
func NewFilteredReader(path string, filter Filter) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &Reader{src: f, dec: NewDecoder(f), filter: filter}, nil
}

// Next returns the next accepted event, or io.EOF at the end of the capture.
func (r *Reader) Next() (Event, error) {
	for {
		var e Event
		err := r.dec.Decode(&e)
		switch {
		case errors.Is(err, io.EOF):
			return Event{}, io.EOF
		case err != nil:
			return Event{}, err
		case r.filter.Matches(e):
			return e, nil
		}
	}
}

// All iterates the remaining accepted events. Iteration stops after the
// first decode error, which is yielded with a zero Event.
func (r *Reader) All() iter.Seq2[Event, error] {
	return func(yield func(Event, error) bool) {
		for {
			e, err := r.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(e, err) || err != nil {
				return
			}
		}
	}
}

// Close releases the capture file.
func (r *Reader) Close() error {
	return r.src.Close()
}
