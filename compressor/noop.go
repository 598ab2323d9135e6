package compressor

import (
	"github.com/brro-compressor/brro"
	"github.com/brro-compressor/brro/wire"
)

// NoopCompressor stores samples verbatim. Used as the universal fallback
// and as a baseline for testing.
type NoopCompressor struct{}

func (NoopCompressor) Kind() brro.CompressorKind { return brro.Noop }

func (c NoopCompressor) Compress(x []float64) (Result, error) {
	if err := brro.Chunk(x).Validate(); err != nil {
		return Result{}, err
	}
	buf := make([]byte, 0, 8*len(x))
	for _, v := range x {
		buf = wire.AppendFloat64(buf, v)
	}
	return Result{Payload: buf, Err: 0}, nil
}

// CompressBounded ignores maxErr: Noop always reproduces the input exactly.
func (c NoopCompressor) CompressBounded(x []float64, maxErr float64) (Result, error) {
	return c.Compress(x)
}

func (c NoopCompressor) Decompress(sampleCount int, payload []byte) ([]float64, error) {
	if len(payload) != sampleCount*8 {
		return nil, brro.NewError(brro.Malformed, "NoopCompressor.Decompress", "payload length does not match sample count")
	}
	out := make([]float64, sampleCount)
	for i := range out {
		v, err := wire.Float64(payload[i*8:])
		if err != nil {
			return nil, brro.NewError(brro.Malformed, "NoopCompressor.Decompress", "truncated payload")
		}
		out[i] = v
	}
	return out, nil
}
