package compressor

import (
	"github.com/brro-compressor/brro"
	"github.com/brro-compressor/brro/numeric"
	"github.com/brro-compressor/brro/stats"
	"github.com/brro-compressor/brro/wire"
)

// reconstructFunc evaluates a keypoint interpolant at every integer
// position in [0, n). Both PolynomialCompressor (Catmull-Rom spline) and
// IDWCompressor (inverse-distance weighting) implement this shape.
type reconstructFunc func(positions []int, values []float64, n int, minValue, maxValue float64) []float64

// polyKeypoint is a shared implementation for the two keypoint-based
// compressors; only the wire tag and the reconstruction rule differ.
type polyKeypoint struct {
	kind        brro.CompressorKind
	tag         byte
	reconstruct reconstructFunc
}

func (p polyKeypoint) Kind() brro.CompressorKind { return p.kind }

func (p polyKeypoint) Compress(x []float64) (Result, error) {
	if err := brro.Chunk(x).Validate(); err != nil {
		return Result{}, err
	}
	n := len(x)
	return p.fitP(x, numeric.Max(3, n/100))
}

func (p polyKeypoint) CompressBounded(x []float64, maxErr float64) (Result, error) {
	if err := brro.Chunk(x).Validate(); err != nil {
		return Result{}, err
	}
	if maxErr < 0 {
		return Result{}, brro.NewError(brro.InvalidInput, "polyKeypoint.CompressBounded", "error budget must be non-negative")
	}
	n := len(x)
	base := numeric.Max(3, n/100)
	jump := 0
	iter := 0
	errv := maxErr + 1
	target := numeric.RoundDecimals(maxErr, 3)

	var res Result
	var err error
loop:
	for target < numeric.RoundDecimals(errv, 4) {
		iter++
		pp := base + jump
		if pp >= n {
			pp = n
		}
		res, err = p.fitP(x, pp)
		if err != nil {
			return Result{}, err
		}
		errv = res.Err
		if pp >= n {
			break loop
		}
		switch {
		case iter <= 17:
			jump += numeric.Max(1, n/10)
		case iter <= 22:
			jump += numeric.Max(1, n/100)
		default:
			if target > numeric.RoundDecimals(errv, 4) {
				break loop
			}
			res, err = p.fitP(x, n)
			if err != nil {
				return Result{}, err
			}
			break loop
		}
	}
	return res, nil
}

// fitP selects P keypoints (stride S = max(1, N/P), augmented with argmin
// and argmax when they fall strictly between two grid positions) and
// measures the reconstruction error.
func (p polyKeypoint) fitP(x []float64, pts int) (Result, error) {
	n := len(x)
	st := stats.Compute(x)
	if st.Constant() {
		payload := encodePolynomialPayload(p.tag, []float64{st.Min}, float32(st.Max), float32(st.Min), 0, 0, 1)
		return Result{Payload: payload, Err: 0}, nil
	}

	s := numeric.Max(1, n/pts)
	positions := reconstructPositions(n, s, st.ArgMin, st.ArgMax)
	values := make([]float64, len(positions))
	for i, pos := range positions {
		values[i] = x[pos]
	}

	recon := p.reconstruct(positions, values, n, st.Min, st.Max)
	mse, err := numeric.CalculateError(x, recon)
	if err != nil {
		return Result{}, err
	}

	payload := encodePolynomialPayload(p.tag, values, float32(st.Max), float32(st.Min), st.ArgMin, st.ArgMax, s)
	return Result{Payload: payload, Err: mse}, nil
}

func (p polyKeypoint) Decompress(sampleCount int, payload []byte) ([]float64, error) {
	if len(payload) < 1 || payload[0] != p.tag {
		return nil, brro.NewError(brro.Malformed, "polyKeypoint.Decompress", "missing or wrong polynomial/IDW tag")
	}
	rest := payload[1:]

	count, n, err := wire.Varint(rest)
	if err != nil {
		return nil, brro.NewError(brro.Malformed, "polyKeypoint.Decompress", "truncated data point count")
	}
	rest = rest[n:]

	values := make([]float64, count)
	for i := range values {
		v, err := wire.Float64(rest)
		if err != nil {
			return nil, brro.NewError(brro.Malformed, "polyKeypoint.Decompress", "truncated data point")
		}
		values[i] = v
		rest = rest[8:]
	}

	maxV, err := wire.Float32(rest)
	if err != nil {
		return nil, brro.NewError(brro.Malformed, "polyKeypoint.Decompress", "truncated max_value")
	}
	rest = rest[4:]
	minV, err := wire.Float32(rest)
	if err != nil {
		return nil, brro.NewError(brro.Malformed, "polyKeypoint.Decompress", "truncated min_value")
	}
	rest = rest[4:]

	minPos, n, err := wire.Varint(rest)
	if err != nil {
		return nil, brro.NewError(brro.Malformed, "polyKeypoint.Decompress", "truncated min_position")
	}
	rest = rest[n:]
	maxPos, n, err := wire.Varint(rest)
	if err != nil {
		return nil, brro.NewError(brro.Malformed, "polyKeypoint.Decompress", "truncated max_position")
	}
	rest = rest[n:]
	step, _, err := wire.Varint(rest)
	if err != nil {
		return nil, brro.NewError(brro.Malformed, "polyKeypoint.Decompress", "truncated point_step")
	}

	if maxV == minV {
		out := make([]float64, sampleCount)
		for i := range out {
			out[i] = float64(maxV)
		}
		return out, nil
	}

	positions := reconstructPositions(sampleCount, int(step), int(minPos), int(maxPos))
	if len(positions) != len(values) {
		return nil, brro.NewError(brro.Malformed, "polyKeypoint.Decompress", "reconstructed position count does not match data point count")
	}

	out := p.reconstruct(positions, values, sampleCount, float64(minV), float64(maxV))
	return out, nil
}

func encodePolynomialPayload(tag byte, values []float64, maxV, minV float32, minPos, maxPos, step int) []byte {
	buf := make([]byte, 0, 16+8*len(values))
	buf = append(buf, tag)
	buf = wire.AppendVarint(buf, uint64(len(values)))
	for _, v := range values {
		buf = wire.AppendFloat64(buf, v)
	}
	buf = wire.AppendFloat32(buf, maxV)
	buf = wire.AppendFloat32(buf, minV)
	buf = wire.AppendVarint(buf, uint64(minPos))
	buf = wire.AppendVarint(buf, uint64(maxPos))
	buf = wire.AppendVarint(buf, uint64(step))
	return buf
}

// reconstructPositions walks the regular grid 0, s, 2s, ... up to n,
// inserting minPos/maxPos whenever either falls strictly between two
// consecutive grid steps, and coalescing with a grid step it exactly
// equals. It finishes by appending maxPos if it falls past the last grid
// step reached, and n-1 if that isn't already the final position.
func reconstructPositions(n, s, minPos, maxPos int) []int {
	if s < 1 {
		s = 1
	}
	var out []int
	prevStep := -1
	for step := 0; step < n; step += s {
		if prevStep >= 0 {
			if minPos > prevStep && minPos < step {
				out = append(out, minPos)
			}
			if maxPos > prevStep && maxPos < step {
				out = append(out, maxPos)
			}
		}
		// Equality with a grid point needs no augmentation — step is
		// emitted unconditionally below, which already covers that case.
		out = append(out, step)
		prevStep = step
	}
	if len(out) == 0 || maxPos > out[len(out)-1] {
		out = append(out, maxPos)
	}
	if out[len(out)-1] != n-1 {
		out = append(out, n-1)
	}
	return out
}

// PolynomialCompressor reconstructs keypoints with a Catmull-Rom spline,
// degrading to linear interpolation at the first and last segments.
type PolynomialCompressor struct{ polyKeypoint }

func NewPolynomialCompressor() PolynomialCompressor {
	return PolynomialCompressor{polyKeypoint{kind: brro.Polynomial, tag: brro.TagPolynomialSpline, reconstruct: reconstructSpline}}
}

// IDWCompressor reconstructs keypoints with inverse-distance weighting.
type IDWCompressor struct{ polyKeypoint }

func NewIDWCompressor() IDWCompressor {
	return IDWCompressor{polyKeypoint{kind: brro.IDW, tag: brro.TagIDW, reconstruct: reconstructIDW}}
}

func reconstructSpline(positions []int, values []float64, n int, minValue, maxValue float64) []float64 {
	out := make([]float64, n)
	if len(positions) < 2 {
		v := minValue
		if len(values) > 0 {
			v = values[0]
		}
		for i := range out {
			out[i] = v
		}
		return out
	}

	prev := minValue
	seg := 0
	for x := 0; x < n; x++ {
		for seg < len(positions)-2 && x > positions[seg+1] {
			seg++
		}
		if x < positions[0] || x > positions[len(positions)-1] {
			out[x] = prev
			continue
		}
		p1pos, p2pos := positions[seg], positions[seg+1]
		var t float64
		if p2pos != p1pos {
			t = float64(x-p1pos) / float64(p2pos-p1pos)
		}

		var v float64
		if seg == 0 || seg == len(positions)-2 {
			v = values[seg] + (values[seg+1]-values[seg])*t
		} else {
			v = catmullRomNonUniform(
				float64(positions[seg-1]), float64(positions[seg]), float64(positions[seg+1]), float64(positions[seg+2]),
				values[seg-1], values[seg], values[seg+1], values[seg+2],
				t,
			)
		}
		out[x] = numeric.RoundAndLimit(v, minValue, maxValue, 5)
		prev = out[x]
	}
	return out
}

// catmullRomNonUniform evaluates the cubic Hermite segment between p1 and p2
// at local parameter u in [0,1], with tangents derived from the actual
// spacing between the surrounding knots t0..t3 rather than assuming every
// segment spans the same width. On collinear input (m1 == m2 == the
// constant slope times t2-t1) this reduces to the line through p1 and p2,
// regardless of how unevenly the knots are spaced.
func catmullRomNonUniform(t0, t1, t2, t3, p0, p1, p2, p3, u float64) float64 {
	d01, d12, d23 := t1-t0, t2-t1, t3-t2
	d02, d13 := t2-t0, t3-t1

	m1 := d12 * ((p1-p0)/d01 - (p2-p0)/d02 + (p2-p1)/d12)
	m2 := d12 * ((p2-p1)/d12 - (p3-p1)/d13 + (p3-p2)/d23)

	u2, u3 := u*u, u*u*u
	h00 := 2*u3 - 3*u2 + 1
	h10 := u3 - 2*u2 + u
	h01 := -2*u3 + 3*u2
	h11 := u3 - u2
	return h00*p1 + h10*m1 + h01*p2 + h11*m2
}

func reconstructIDW(positions []int, values []float64, n int, minValue, maxValue float64) []float64 {
	out := make([]float64, n)
	for x := 0; x < n; x++ {
		exact := -1
		for i, p := range positions {
			if p == x {
				exact = i
				break
			}
		}
		if exact >= 0 {
			out[x] = numeric.RoundAndLimit(values[exact], minValue, maxValue, 5)
			continue
		}
		var num, den float64
		for i, p := range positions {
			d := float64(x - p)
			w := 1.0 / (d * d)
			num += w * values[i]
			den += w
		}
		out[x] = numeric.RoundAndLimit(num/den, minValue, maxValue, 5)
	}
	return out
}
