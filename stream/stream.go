// Package stream implements the top-level container: a header followed by
// a length-prefixed sequence of frames.
package stream

import (
	"github.com/brro-compressor/brro"
	"github.com/brro-compressor/brro/frame"
	"github.com/brro-compressor/brro/wire"
)

// Magic is the 4-byte identifier every stream begins with.
var Magic = [4]byte{'B', 'R', 'R', 'O'}

// Version is the wire format version this package writes and accepts.
const Version byte = 1

// Stream is an ordered sequence of frames, owned by the caller.
type Stream struct {
	Frames []frame.Frame
}

// CompressChunk appends one frame built from x with the given kind's
// default fit.
func (s *Stream) CompressChunk(x []float64, kind brro.CompressorKind) error {
	f, err := frame.Compress(x, kind)
	if err != nil {
		return err
	}
	s.Frames = append(s.Frames, f)
	return nil
}

// CompressChunkBounded appends one frame built from x with kind's bounded
// fit.
func (s *Stream) CompressChunkBounded(x []float64, kind brro.CompressorKind, maxErr float64) error {
	f, err := frame.CompressBounded(x, kind, maxErr)
	if err != nil {
		return err
	}
	s.Frames = append(s.Frames, f)
	return nil
}

// CompressChunkAuto appends one frame chosen by Auto selection.
func (s *Stream) CompressChunkAuto(x []float64, maxErr float64, speed frame.Speed) error {
	f, err := frame.CompressBest(x, maxErr, speed)
	if err != nil {
		return err
	}
	s.Frames = append(s.Frames, f)
	return nil
}

// ToBytes encodes the header and every frame, in insertion order.
func (s *Stream) ToBytes() ([]byte, error) {
	buf := make([]byte, 0, 64*len(s.Frames))
	buf = append(buf, Magic[:]...)
	buf = append(buf, Version)
	buf = wire.AppendVarint(buf, uint64(len(s.Frames)))
	for _, f := range s.Frames {
		var err error
		buf, err = f.Encode(buf)
		if err != nil {
			return nil, err
		}
	}
	return buf, nil
}

// FromBytes decodes a stream header and its frames, validating the magic
// and rejecting unknown versions.
func FromBytes(buf []byte) (*Stream, error) {
	if len(buf) < 5 {
		return nil, brro.NewError(brro.Malformed, "stream.FromBytes", "buffer too short for header")
	}
	for i, b := range Magic {
		if buf[i] != b {
			return nil, brro.NewError(brro.Malformed, "stream.FromBytes", "bad magic")
		}
	}
	if buf[4] != Version {
		return nil, brro.NewError(brro.Malformed, "stream.FromBytes", "unknown stream version")
	}
	rest := buf[5:]

	count, n, err := wire.Varint(rest)
	if err != nil {
		return nil, brro.NewError(brro.Malformed, "stream.FromBytes", "truncated frame_count")
	}
	rest = rest[n:]

	s := &Stream{Frames: make([]frame.Frame, 0, count)}
	for i := uint64(0); i < count; i++ {
		f, consumed, err := frame.Decode(rest)
		if err != nil {
			return nil, err
		}
		s.Frames = append(s.Frames, f)
		rest = rest[consumed:]
	}
	return s, nil
}

// Decompress concatenates every frame's reconstructed vector in order.
func (s *Stream) Decompress() ([]float64, error) {
	total := 0
	for _, f := range s.Frames {
		total += f.SampleCount
	}
	out := make([]float64, 0, total)
	for _, f := range s.Frames {
		samples, err := f.Decompress()
		if err != nil {
			return nil, err
		}
		out = append(out, samples...)
	}
	return out, nil
}
