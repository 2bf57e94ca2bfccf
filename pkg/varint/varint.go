// Package varint implements the variable-length unsigned integer encoding
// used by the plaintext device transport.
//
// The encoding is the SQLite4 varint scheme restricted to 32-bit values. The
// first byte selects the length class:
//
//	0-240     value is the byte itself                 (1 byte)
//	241-248   240 + 256*(b0-241) + b1                  (2 bytes)
//	249       2288 + 256*b1 + b2                       (3 bytes)
//	250       67824 + big-endian 24-bit b1..b3         (4 bytes)
//	251       16777216 + big-endian 32-bit b1..b4      (5 bytes)
//
// First bytes 252-255 are never produced and are rejected on decode, as is a
// 251 encoding whose value does not fit 32 bits.
package varint

import (
	"errors"
	"fmt"
	"io"
	"math"
)

// Class boundaries (inclusive upper bounds).
const (
	max1 = 240
	max2 = 2287
	max3 = 67823
	max4 = 16777215

	// MaxLen is the longest encoding of a 32-bit value.
	MaxLen = 5
)

// ErrInvalidFirstByte is returned when a varint starts with 252-255.
var ErrInvalidFirstByte = errors.New("invalid varint first byte")

// ErrOverflow is returned when a 5-byte varint exceeds math.MaxUint32.
var ErrOverflow = errors.New("varint overflows 32 bits")

// Len returns the number of bytes Append would emit for v.
func Len(v uint32) int {
	switch {
	case v <= max1:
		return 1
	case v <= max2:
		return 2
	case v <= max3:
		return 3
	case v <= max4:
		return 4
	default:
		return 5
	}
}

// Append appends the encoding of v to dst and returns the extended slice.
func Append(dst []byte, v uint32) []byte {
	switch {
	case v <= max1:
		return append(dst, byte(v))
	case v <= max2:
		off := v - 240
		return append(dst, byte(241+(off>>8)), byte(off))
	case v <= max3:
		off := v - 2288
		return append(dst, 249, byte(off>>8), byte(off))
	case v <= max4:
		off := v - 67824
		return append(dst, 250, byte(off>>16), byte(off>>8), byte(off))
	default:
		off := v - 16777216
		return append(dst, 251, byte(off>>24), byte(off>>16), byte(off>>8), byte(off))
	}
}

// Encode returns the encoding of v.
func Encode(v uint32) []byte {
	return Append(make([]byte, 0, Len(v)), v)
}

// Read decodes one varint from r.
//
// An io.EOF before the first byte is returned unchanged; a stream that ends
// inside a varint yields io.ErrUnexpectedEOF.
func Read(r io.ByteReader) (uint32, error) {
	first, err := r.ReadByte()
	if err != nil {
		return 0, err
	}

	var n int
	switch {
	case first <= max1:
		return uint32(first), nil
	case first <= 248:
		n = 1
	case first == 249:
		n = 2
	case first == 250:
		n = 3
	case first == 251:
		n = 4
	default:
		return 0, fmt.Errorf("%w: %d", ErrInvalidFirstByte, first)
	}

	var rest uint32
	for i := 0; i < n; i++ {
		b, err := r.ReadByte()
		if err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return 0, err
		}
		rest = rest<<8 | uint32(b)
	}

	switch first {
	case 249:
		return 2288 + rest, nil
	case 250:
		return 67824 + rest, nil
	case 251:
		if rest > math.MaxUint32-16777216 {
			return 0, fmt.Errorf("%w: offset 0x%08x", ErrOverflow, rest)
		}
		return 16777216 + rest, nil
	default:
		return 240 + uint32(first-241)<<8 + rest, nil
	}
}

// Decode decodes one varint from the start of buf and returns the value and
// the number of bytes consumed.
func Decode(buf []byte) (uint32, int, error) {
	r := sliceReader{buf: buf}
	v, err := Read(&r)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return v, r.off, err
}

type sliceReader struct {
	buf []byte
	off int
}

func (s *sliceReader) ReadByte() (byte, error) {
	if s.off >= len(s.buf) {
		return 0, io.EOF
	}
	b := s.buf[s.off]
	s.off++
	return b, nil
}
