package compressor

import (
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/brro-compressor/brro"
	"github.com/brro-compressor/brro/numeric"
	"github.com/brro-compressor/brro/stats"
	"github.com/brro-compressor/brro/topk"
	"github.com/brro-compressor/brro/wire"
)

// FrequencyPoint is one retained Fourier coefficient: a bin position and
// its complex value, split into 32-bit real/imaginary parts for the wire.
// Ordering is by magnitude only — this is a domain-specific total order,
// not mathematical equality on ℂ.
type FrequencyPoint struct {
	Position uint16
	Real     float32
	Imag     float32
}

func (p FrequencyPoint) magSq() float64 {
	r, i := float64(p.Real), float64(p.Imag)
	return r*r + i*i
}

func freqLess(a, b FrequencyPoint) bool { return a.magSq() < b.magSq() }

func freqIsZero(p FrequencyPoint) bool { return p.Real == 0 && p.Imag == 0 }

// FFTCompressor truncates the chunk's discrete Fourier transform to its K
// largest-magnitude coefficients.
type FFTCompressor struct{}

func (FFTCompressor) Kind() brro.CompressorKind { return brro.FFT }

func (c FFTCompressor) Compress(x []float64) (Result, error) {
	if err := brro.Chunk(x).Validate(); err != nil {
		return Result{}, err
	}
	n := len(x)
	k := numeric.Max(3, n/100)
	return c.fitK(x, k)
}

func (c FFTCompressor) CompressBounded(x []float64, maxErr float64) (Result, error) {
	if err := brro.Chunk(x).Validate(); err != nil {
		return Result{}, err
	}
	if maxErr < 0 {
		return Result{}, brro.NewError(brro.InvalidInput, "FFTCompressor.CompressBounded", "error budget must be non-negative")
	}
	n := len(x)
	base := numeric.Max(3, n/100)
	extra := 0
	iter := 0
	errv := maxErr + 1
	var res Result
	var fitErr error
	for numeric.FixedCompare(maxErr, errv, 3) < 0 && iter <= 22 {
		iter++
		k := base + extra
		res, fitErr = c.fitK(x, k)
		if fitErr != nil {
			return Result{}, fitErr
		}
		errv = res.Err
		if iter <= 17 {
			extra += numeric.Max(1, base/2)
		} else if iter <= 22 {
			extra += numeric.Max(1, base/10)
		} else {
			break
		}
	}
	return res, nil
}

// fitK retains the k largest-magnitude coefficients and measures the
// resulting MSE against x.
func (c FFTCompressor) fitK(x []float64, k int) (Result, error) {
	st := stats.Compute(x)
	if st.Constant() {
		buf := encodeFFTPayload(nil, float32(st.Max), float32(st.Min))
		return Result{Payload: buf, Err: 0}, nil
	}

	n := len(x)
	padded, left, _ := gibbsPad(x)
	paddedN := len(padded)

	ft := fourier.NewFFT(paddedN)
	coeffs := ft.Coefficients(nil, padded)

	candidates := make([]FrequencyPoint, len(coeffs))
	for i, cv := range coeffs {
		candidates[i] = FrequencyPoint{Position: uint16(i), Real: float32(real(cv)), Imag: float32(imag(cv))}
	}
	selected := topk.SelectMax(candidates, k, freqLess, freqIsZero)

	half := make([]complex128, paddedN/2+1)
	for _, p := range selected {
		half[p.Position] = complex(float64(p.Real), float64(p.Imag))
	}
	recon := ft.Sequence(nil, half)
	for i := range recon {
		recon[i] /= float64(paddedN)
	}
	recon = recon[left : left+n]

	out := make([]float64, n)
	for i := range out {
		out[i] = numeric.RoundAndLimit(recon[i], st.Min, st.Max, 5)
	}
	mse, err := numeric.CalculateError(x, out)
	if err != nil {
		return Result{}, err
	}

	buf := encodeFFTPayload(nil, float32(st.Max), float32(st.Min), selected...)
	return Result{Payload: buf, Err: mse}, nil
}

func (c FFTCompressor) Decompress(sampleCount int, payload []byte) ([]float64, error) {
	if len(payload) < 1 || payload[0] != brro.TagFFT {
		return nil, brro.NewError(brro.Malformed, "FFTCompressor.Decompress", "missing or wrong FFT tag")
	}
	rest := payload[1:]
	count, n, err := wire.Varint(rest)
	if err != nil {
		return nil, brro.NewError(brro.Malformed, "FFTCompressor.Decompress", "truncated frequency count")
	}
	rest = rest[n:]

	points := make([]FrequencyPoint, count)
	for i := range points {
		pos, n, err := wire.Varint(rest)
		if err != nil {
			return nil, brro.NewError(brro.Malformed, "FFTCompressor.Decompress", "truncated position")
		}
		rest = rest[n:]
		r, err := wire.Float32(rest)
		if err != nil {
			return nil, brro.NewError(brro.Malformed, "FFTCompressor.Decompress", "truncated real part")
		}
		rest = rest[4:]
		im, err := wire.Float32(rest)
		if err != nil {
			return nil, brro.NewError(brro.Malformed, "FFTCompressor.Decompress", "truncated imaginary part")
		}
		rest = rest[4:]
		points[i] = FrequencyPoint{Position: uint16(pos), Real: r, Imag: im}
	}
	maxV, err := wire.Float32(rest)
	if err != nil {
		return nil, brro.NewError(brro.Malformed, "FFTCompressor.Decompress", "truncated max_value")
	}
	rest = rest[4:]
	minV, err := wire.Float32(rest)
	if err != nil {
		return nil, brro.NewError(brro.Malformed, "FFTCompressor.Decompress", "truncated min_value")
	}

	if maxV == minV {
		out := make([]float64, sampleCount)
		for i := range out {
			out[i] = float64(maxV)
		}
		return out, nil
	}

	paddedN := sampleCount
	left := 0
	if sampleCount >= 128 {
		paddedN = numeric.NextSize(sampleCount)
		pad := paddedN - sampleCount
		left = pad / 2
	}
	half := make([]complex128, paddedN/2+1)
	for _, p := range points {
		if int(p.Position) >= len(half) {
			return nil, brro.NewError(brro.Malformed, "FFTCompressor.Decompress", "frequency position out of range")
		}
		half[p.Position] = complex(float64(p.Real), float64(p.Imag))
	}
	ft := fourier.NewFFT(paddedN)
	recon := ft.Sequence(nil, half)
	for i := range recon {
		recon[i] /= float64(paddedN)
	}
	recon = recon[left : left+sampleCount]

	out := make([]float64, sampleCount)
	for i := range out {
		out[i] = numeric.RoundAndLimit(recon[i], float64(minV), float64(maxV), 5)
	}
	return out, nil
}

func encodeFFTPayload(buf []byte, maxV, minV float32, points ...FrequencyPoint) []byte {
	buf = append(buf, brro.TagFFT)
	buf = wire.AppendVarint(buf, uint64(len(points)))
	for _, p := range points {
		buf = wire.AppendVarint(buf, uint64(p.Position))
		buf = wire.AppendFloat32(buf, p.Real)
		buf = wire.AppendFloat32(buf, p.Imag)
	}
	buf = wire.AppendFloat32(buf, maxV)
	buf = wire.AppendFloat32(buf, minV)
	return buf
}

// gibbsPad extends x to numeric.NextSize(len(x)) when len(x) >= 128,
// prepending copies of the first sample and appending copies of the last
// to suppress ringing at the frame edges. It returns the (possibly
// unmodified) padded slice and the left/right pad counts.
func gibbsPad(x []float64) (padded []float64, left, right int) {
	n := len(x)
	if n < 128 {
		return x, 0, 0
	}
	target := numeric.NextSize(n)
	pad := target - n
	left = pad / 2
	right = pad - left
	out := make([]float64, target)
	for i := 0; i < left; i++ {
		out[i] = x[0]
	}
	copy(out[left:left+n], x)
	for i := 0; i < right; i++ {
		out[left+n+i] = x[n-1]
	}
	return out, left, right
}
