// Package frame wraps one compressor's output with its kind and sample
// count, and implements the Auto selection policy across kinds.
package frame

import (
	"github.com/brro-compressor/brro"
	"github.com/brro-compressor/brro/compressor"
	"github.com/brro-compressor/brro/stats"
	"github.com/brro-compressor/brro/wire"
)

// Frame is (sample_count, kind, payload_bytes) — one compressed chunk plus
// enough metadata to decode it and to validate it against its own internal
// payload tag.
type Frame struct {
	SampleCount int
	Kind        brro.CompressorKind
	Payload     []byte
}

func compressorFor(kind brro.CompressorKind) (compressor.Compressor, error) {
	switch kind {
	case brro.Noop:
		return compressor.NoopCompressor{}, nil
	case brro.Constant:
		return compressor.ConstantCompressor{}, nil
	case brro.FFT:
		return compressor.FFTCompressor{}, nil
	case brro.Polynomial:
		return compressor.NewPolynomialCompressor(), nil
	case brro.IDW:
		return compressor.NewIDWCompressor(), nil
	default:
		return nil, brro.NewError(brro.InvalidInput, "frame.compressorFor", "kind must be a concrete compressor, not Auto")
	}
}

// Compress runs kind's default fit.
func Compress(x []float64, kind brro.CompressorKind) (Frame, error) {
	c, err := compressorFor(kind)
	if err != nil {
		return Frame{}, err
	}
	res, err := c.Compress(x)
	if err != nil {
		return Frame{}, err
	}
	return Frame{SampleCount: len(x), Kind: kind, Payload: res.Payload}, nil
}

// CompressBounded runs kind's bounded fit where one exists; Noop and
// Constant have no iterative mode and fall back to their default.
func CompressBounded(x []float64, kind brro.CompressorKind, maxErr float64) (Frame, error) {
	c, err := compressorFor(kind)
	if err != nil {
		return Frame{}, err
	}
	res, err := c.CompressBounded(x, maxErr)
	if err != nil {
		return Frame{}, err
	}
	return Frame{SampleCount: len(x), Kind: kind, Payload: res.Payload}, nil
}

// autoCandidateOrder is the tie-break order when several kinds produce a
// payload of the same size: prefer the simpler model.
var autoCandidateOrder = []brro.CompressorKind{brro.Constant, brro.Polynomial, brro.FFT, brro.IDW, brro.Noop}

// Speed bounds how many candidate kinds CompressBest evaluates.
type Speed int

const (
	// SpeedThorough evaluates every bounded compressor (FFT, Polynomial,
	// IDW), plus Constant on a flat chunk.
	SpeedThorough Speed = iota
	// SpeedFast evaluates only FFT and Polynomial, plus Constant on a flat
	// chunk, skipping IDW.
	SpeedFast
)

func candidateKinds(speed Speed) []brro.CompressorKind {
	switch speed {
	case SpeedFast:
		return []brro.CompressorKind{brro.Constant, brro.FFT, brro.Polynomial}
	default:
		return []brro.CompressorKind{brro.Constant, brro.FFT, brro.Polynomial, brro.IDW}
	}
}

// CompressBest implements Auto: it runs speed's candidate kinds in their
// bounded mode, keeps those meeting maxErr, and picks the smallest payload
// (ties broken by autoCandidateOrder). If none qualifies, it falls back to
// Noop. Constant reports zero error whatever the data, so it is a
// candidate only when every sample of x is equal.
func CompressBest(x []float64, maxErr float64, speed Speed) (Frame, error) {
	if err := brro.Chunk(x).Validate(); err != nil {
		return Frame{}, err
	}

	type candidate struct {
		kind brro.CompressorKind
		res  compressor.Result
	}
	flat := stats.Compute(x).Constant()
	var qualifying []candidate
	for _, kind := range candidateKinds(speed) {
		if kind == brro.Constant && !flat {
			continue
		}
		c, err := compressorFor(kind)
		if err != nil {
			return Frame{}, err
		}
		res, err := c.CompressBounded(x, maxErr)
		if err != nil {
			return Frame{}, err
		}
		if res.Err <= maxErr {
			qualifying = append(qualifying, candidate{kind, res})
		}
	}

	if len(qualifying) == 0 {
		return Compress(x, brro.Noop)
	}

	rank := func(k brro.CompressorKind) int {
		for i, c := range autoCandidateOrder {
			if c == k {
				return i
			}
		}
		return len(autoCandidateOrder)
	}

	best := qualifying[0]
	for _, c := range qualifying[1:] {
		switch {
		case len(c.res.Payload) < len(best.res.Payload):
			best = c
		case len(c.res.Payload) == len(best.res.Payload) && rank(c.kind) < rank(best.kind):
			best = c
		}
	}
	return Frame{SampleCount: len(x), Kind: best.kind, Payload: best.res.Payload}, nil
}

// Decompress dispatches on f.Kind to the matching decoder, validating that
// the payload's internal tag agrees with the frame's kind.
func (f Frame) Decompress() ([]float64, error) {
	c, err := compressorFor(f.Kind)
	if err != nil {
		return nil, err
	}
	out, err := c.Decompress(f.SampleCount, f.Payload)
	if err != nil {
		return nil, err
	}
	if len(out) != f.SampleCount {
		return nil, brro.NewError(brro.LengthMismatch, "Frame.Decompress", "decoded length does not match sample_count")
	}
	return out, nil
}

// Encode writes the frame's wire form: sample_count, kind_disc, payload_len,
// payload.
func (f Frame) Encode(buf []byte) ([]byte, error) {
	disc, ok := f.Kind.Disc()
	if !ok {
		return nil, brro.NewError(brro.InvalidInput, "Frame.Encode", "kind has no wire discriminant")
	}
	buf = wire.AppendVarint(buf, uint64(f.SampleCount))
	buf = append(buf, disc)
	buf = wire.AppendVarint(buf, uint64(len(f.Payload)))
	buf = append(buf, f.Payload...)
	return buf, nil
}

// Decode reads one frame's wire form from the front of buf, returning the
// frame and the number of bytes consumed.
func Decode(buf []byte) (Frame, int, error) {
	sampleCount, n1, err := wire.Varint(buf)
	if err != nil {
		return Frame{}, 0, brro.NewError(brro.Malformed, "frame.Decode", "truncated sample_count")
	}
	rest := buf[n1:]
	if len(rest) < 1 {
		return Frame{}, 0, brro.NewError(brro.Malformed, "frame.Decode", "truncated kind discriminant")
	}
	kind, ok := brro.KindFromDisc(rest[0])
	if !ok {
		return Frame{}, 0, brro.NewError(brro.Malformed, "frame.Decode", "unknown kind discriminant")
	}
	rest = rest[1:]

	payloadLen, n2, err := wire.Varint(rest)
	if err != nil {
		return Frame{}, 0, brro.NewError(brro.Malformed, "frame.Decode", "truncated payload_len")
	}
	rest = rest[n2:]
	if uint64(len(rest)) < payloadLen {
		return Frame{}, 0, brro.NewError(brro.Malformed, "frame.Decode", "payload shorter than declared")
	}

	if err := checkInnerTag(kind, rest[:payloadLen]); err != nil {
		return Frame{}, 0, err
	}

	f := Frame{SampleCount: int(sampleCount), Kind: kind, Payload: rest[:payloadLen]}
	total := len(buf) - len(rest) + int(payloadLen)
	return f, total, nil
}

func checkInnerTag(kind brro.CompressorKind, payload []byte) error {
	if kind == brro.Noop {
		return nil
	}
	if len(payload) < 1 {
		return brro.NewError(brro.Malformed, "frame.Decode", "payload too short for kind tag")
	}
	want := map[brro.CompressorKind]byte{
		brro.Constant:   brro.TagConstant,
		brro.FFT:        brro.TagFFT,
		brro.Polynomial: brro.TagPolynomialSpline,
		brro.IDW:        brro.TagIDW,
	}[kind]
	if payload[0] != want {
		return brro.NewError(brro.Malformed, "frame.Decode", "inner payload tag disagrees with kind discriminant")
	}
	return nil
}
