package wire

import (
	"errors"
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// ErrDecode is returned for malformed message bodies.
var ErrDecode = errors.New("malformed message")

// Message is a protocol message body.
type Message interface {
	// MessageType returns the identifier sent in the frame header.
	MessageType() MessageType

	// AppendWire appends the encoded body to b.
	AppendWire(b []byte) []byte

	// UnmarshalWire replaces the receiver's contents with the decoded body.
	UnmarshalWire(b []byte) error
}

// Marshal encodes a message body.
func Marshal(m Message) []byte {
	return m.AppendWire(nil)
}

// Unmarshal decodes a message body into m.
func Unmarshal(data []byte, m Message) error {
	return m.UnmarshalWire(data)
}

// field is one decoded top-level field of a message body.
type field struct {
	num     protowire.Number
	typ     protowire.Type
	varint  uint64
	fixed32 uint32
	fixed64 uint64
	bytes   []byte
}

func (f field) Bool() bool      { return f.varint != 0 }
func (f field) Uint32() uint32  { return uint32(f.varint) }
func (f field) Int32() int32    { return int32(f.varint) }
func (f field) Str() string     { return string(f.bytes) }
func (f field) Float() float32  { return math.Float32frombits(f.fixed32) }
func (f field) Fixed32() uint32 { return f.fixed32 }
func (f field) Bytes() []byte   { return append([]byte(nil), f.bytes...) }
func (f field) IsPacked() bool  { return f.typ == protowire.BytesType }
func (f field) Number() int     { return int(f.num) }

// Varints returns the values of a repeated scalar field occurrence, which is
// either a single varint or a packed run.
func (f field) Varints() ([]uint64, error) {
	if !f.IsPacked() {
		return []uint64{f.varint}, nil
	}
	var out []uint64
	b := f.bytes
	for len(b) > 0 {
		v, n := protowire.ConsumeVarint(b)
		if n < 0 {
			return nil, fmt.Errorf("%w: field %d: %v", ErrDecode, f.num, protowire.ParseError(n))
		}
		out = append(out, v)
		b = b[n:]
	}
	return out, nil
}

// walk calls fn for every top-level field in b, in wire order.
func walk(b []byte, fn func(f field) error) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fmt.Errorf("%w: %v", ErrDecode, protowire.ParseError(n))
		}
		b = b[n:]

		f := field{num: num, typ: typ}
		switch typ {
		case protowire.VarintType:
			f.varint, n = protowire.ConsumeVarint(b)
		case protowire.Fixed32Type:
			f.fixed32, n = protowire.ConsumeFixed32(b)
		case protowire.Fixed64Type:
			f.fixed64, n = protowire.ConsumeFixed64(b)
		case protowire.BytesType:
			f.bytes, n = protowire.ConsumeBytes(b)
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
		}
		if n < 0 {
			return fmt.Errorf("%w: field %d: %v", ErrDecode, num, protowire.ParseError(n))
		}
		b = b[n:]

		if err := fn(f); err != nil {
			return err
		}
	}
	return nil
}

// skipAll decodes b only to validate it.
func skipAll(b []byte) error {
	return walk(b, func(field) error { return nil })
}

func appendBool(b []byte, num protowire.Number, v bool) []byte {
	if !v {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, 1)
}

func appendUint32(b []byte, num protowire.Number, v uint32) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(v))
}

// appendInt32 encodes int32 and enum fields. Negative values are sign
// extended to ten bytes as proto3 requires.
func appendInt32(b []byte, num protowire.Number, v int32) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(int64(v)))
}

func appendFixed32(b []byte, num protowire.Number, v uint32) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.Fixed32Type)
	return protowire.AppendFixed32(b, v)
}

func appendFloat(b []byte, num protowire.Number, v float32) []byte {
	if v == 0 {
		return b
	}
	return appendFixed32(b, num, math.Float32bits(v))
}

func appendString(b []byte, num protowire.Number, v string) []byte {
	if v == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

func appendBytes(b []byte, num protowire.Number, v []byte) []byte {
	if len(v) == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

func appendRepeatedString(b []byte, num protowire.Number, vs []string) []byte {
	for _, v := range vs {
		b = protowire.AppendTag(b, num, protowire.BytesType)
		b = protowire.AppendString(b, v)
	}
	return b
}

// appendPackedInt32 encodes a repeated enum field in packed form.
func appendPackedInt32(b []byte, num protowire.Number, vs []int32) []byte {
	if len(vs) == 0 {
		return b
	}
	var packed []byte
	for _, v := range vs {
		packed = protowire.AppendVarint(packed, uint64(int64(v)))
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, packed)
}

func enumValues[E ~int32](vs []E) []int32 {
	out := make([]int32, len(vs))
	for i, v := range vs {
		out[i] = int32(v)
	}
	return out
}

// appendEnums decodes one occurrence of a repeated enum field.
func appendEnums[E ~int32](dst []E, f field) ([]E, error) {
	vs, err := f.Varints()
	if err != nil {
		return dst, err
	}
	for _, v := range vs {
		dst = append(dst, E(int32(v)))
	}
	return dst, nil
}
