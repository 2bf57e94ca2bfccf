package log

import (
	"io"

	"github.com/fxamacker/cbor/v2"
)

// Capture files are a plain sequence of CBOR items (RFC 8742), one Event
// per item. Maps are written with canonical key order so two captures of
// the same traffic compare byte for byte.
var (
	captureEnc = mustEncMode(cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
		Time:          cbor.TimeRFC3339Nano,
	})

	// Decoding is lenient so captures from newer writers still load.
	captureDec = mustDecMode(cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyQuiet,
		IndefLength:       cbor.IndefLengthAllowed,
		ExtraReturnErrors: cbor.ExtraDecErrorNone,
	})
)

func mustEncMode(opts cbor.EncOptions) cbor.EncMode {
	m, err := opts.EncMode()
	if err != nil {
		panic("log: capture encoder: " + err.Error())
	}
	return m
}

func mustDecMode(opts cbor.DecOptions) cbor.DecMode {
	m, err := opts.DecMode()
	if err != nil {
		panic("log: capture decoder: " + err.Error())
	}
	return m
}

// EncodeEvent returns the capture encoding of e.
func EncodeEvent(e Event) ([]byte, error) {
	return captureEnc.Marshal(e)
}

// DecodeEvent parses one capture item.
func DecodeEvent(data []byte) (Event, error) {
	var e Event
	err := captureDec.Unmarshal(data, &e)
	if err != nil {
		return Event{}, err
	}
	return e, nil
}

// NewEncoder returns an encoder appending capture items to w.
func NewEncoder(w io.Writer) *cbor.Encoder {
	return captureEnc.NewEncoder(w)
}

// NewDecoder returns a decoder reading capture items from r.
func NewDecoder(r io.Reader) *cbor.Decoder {
	return captureDec.NewDecoder(r)
}
