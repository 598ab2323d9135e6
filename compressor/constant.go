package compressor

import (
	"github.com/brro-compressor/brro"
	"github.com/brro-compressor/brro/stats"
	"github.com/brro-compressor/brro/wire"
)

// ConstantCompressor encodes a single scalar per frame: the chunk's
// minimum value, repeated sample_count times at decode.
type ConstantCompressor struct{}

func (ConstantCompressor) Kind() brro.CompressorKind { return brro.Constant }

// Compress stores chunk.min. The achieved error is always reported as 0:
// the caller is expected to offer this compressor only when it already
// knows (or accepts) that the chunk is effectively constant.
func (c ConstantCompressor) Compress(x []float64) (Result, error) {
	if err := brro.Chunk(x).Validate(); err != nil {
		return Result{}, err
	}
	value := stats.Compute(x).Min
	buf := make([]byte, 0, 9)
	buf = append(buf, brro.TagConstant)
	buf = wire.AppendFloat64(buf, value)
	return Result{Payload: buf, Err: 0}, nil
}

// CompressBounded ignores maxErr: Constant has no iterative fitting mode.
func (c ConstantCompressor) CompressBounded(x []float64, maxErr float64) (Result, error) {
	return c.Compress(x)
}

func (c ConstantCompressor) Decompress(sampleCount int, payload []byte) ([]float64, error) {
	if len(payload) < 1 || payload[0] != brro.TagConstant {
		return nil, brro.NewError(brro.Malformed, "ConstantCompressor.Decompress", "missing or wrong constant tag")
	}
	value, err := wire.Float64(payload[1:])
	if err != nil {
		return nil, brro.NewError(brro.Malformed, "ConstantCompressor.Decompress", "truncated payload")
	}
	out := make([]float64, sampleCount)
	for i := range out {
		out[i] = value
	}
	return out, nil
}
