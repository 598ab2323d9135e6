// Package compressor implements the per-frame compressor family: Constant,
// Noop, FFT and Polynomial/IDW. Each exposes a default fit, and the bounded
// kinds additionally expose an error-bounded fit.
package compressor

import "github.com/brro-compressor/brro"

// Result is what every compressor returns: the wire payload and the MSE it
// achieved against the original chunk (not persisted on the wire — see
// the split-data design note).
type Result struct {
	Payload []byte
	Err     float64
}

// Compressor is implemented by every per-frame codec.
type Compressor interface {
	Kind() brro.CompressorKind
	Compress(x []float64) (Result, error)
	CompressBounded(x []float64, maxErr float64) (Result, error)
	Decompress(sampleCount int, payload []byte) ([]float64, error)
}
