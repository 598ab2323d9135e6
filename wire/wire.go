// Package wire implements the variable-length integer encoding used
// throughout the codec's binary payloads: lengths, counts and frequency
// positions are all written with AppendVarint and read back with Varint.
package wire

import (
	"encoding/binary"
	"io"
	"math"
)

// AppendVarint appends v to buf using the codec's variable-length integer
// encoding: values up to 250 are written as a single literal byte; larger
// values are preceded by a marker byte naming the width of the
// little-endian integer that follows (251 -> uint16, 252 -> uint32,
// 253 -> uint64).
func AppendVarint(buf []byte, v uint64) []byte {
	switch {
	case v <= 250:
		return append(buf, byte(v))
	case v <= 0xffff:
		buf = append(buf, 251)
		return binary.LittleEndian.AppendUint16(buf, uint16(v))
	case v <= 0xffffffff:
		buf = append(buf, 252)
		return binary.LittleEndian.AppendUint32(buf, uint32(v))
	default:
		buf = append(buf, 253)
		return binary.LittleEndian.AppendUint64(buf, v)
	}
}

// Varint reads a varint from the front of buf, returning the decoded value
// and the number of bytes consumed.
func Varint(buf []byte) (uint64, int, error) {
	if len(buf) == 0 {
		return 0, 0, io.ErrUnexpectedEOF
	}
	switch m := buf[0]; {
	case m <= 250:
		return uint64(m), 1, nil
	case m == 251:
		if len(buf) < 3 {
			return 0, 0, io.ErrUnexpectedEOF
		}
		return uint64(binary.LittleEndian.Uint16(buf[1:3])), 3, nil
	case m == 252:
		if len(buf) < 5 {
			return 0, 0, io.ErrUnexpectedEOF
		}
		return uint64(binary.LittleEndian.Uint32(buf[1:5])), 5, nil
	case m == 253:
		if len(buf) < 9 {
			return 0, 0, io.ErrUnexpectedEOF
		}
		return binary.LittleEndian.Uint64(buf[1:9]), 9, nil
	default:
		return 0, 0, io.ErrUnexpectedEOF
	}
}

// AppendFloat32 appends the little-endian bytes of f to buf.
func AppendFloat32(buf []byte, f float32) []byte {
	return binary.LittleEndian.AppendUint32(buf, math.Float32bits(f))
}

// Float32 reads a little-endian float32 from the front of buf.
func Float32(buf []byte) (float32, error) {
	if len(buf) < 4 {
		return 0, io.ErrUnexpectedEOF
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[:4])), nil
}

// AppendFloat64 appends the little-endian bytes of f to buf.
func AppendFloat64(buf []byte, f float64) []byte {
	return binary.LittleEndian.AppendUint64(buf, math.Float64bits(f))
}

// Float64 reads a little-endian float64 from the front of buf.
func Float64(buf []byte) (float64, error) {
	if len(buf) < 8 {
		return 0, io.ErrUnexpectedEOF
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(buf[:8])), nil
}
