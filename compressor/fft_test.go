package compressor

import (
	"testing"

	"github.com/brro-compressor/brro/numeric"
)

func sample12() []float64 {
	return []float64{1, 1, 1, 1, 2, 1, 1, 1, 3, 1, 1, 5}
}

func TestFFTFixedKScenarioS2(t *testing.T) {
	c := FFTCompressor{}
	res, err := c.fitK(sample12(), 2)
	if err != nil {
		t.Fatal(err)
	}
	if res.Payload[0] != 15 {
		t.Fatalf("tag = %d, want 15", res.Payload[0])
	}
	if res.Payload[1] != 2 {
		t.Fatalf("count = %d, want 2", res.Payload[1])
	}
}

func TestFFTLosslessAtFullK(t *testing.T) {
	x := sample12()
	c := FFTCompressor{}
	res, err := c.fitK(x, len(x))
	if err != nil {
		t.Fatal(err)
	}
	out, err := c.Decompress(len(x), res.Payload)
	if err != nil {
		t.Fatal(err)
	}
	for i := range x {
		if numeric.RoundDecimals(out[i], 3) != numeric.RoundDecimals(x[i], 3) {
			t.Fatalf("decode[%d] = %v, want %v", i, out[i], x[i])
		}
	}
}

func TestFFTErrorBounded(t *testing.T) {
	c := FFTCompressor{}
	res, err := c.CompressBounded(sample12(), 0.01)
	if err != nil {
		t.Fatal(err)
	}
	if res.Err > 0.01+1e-9 {
		t.Fatalf("achieved error %v exceeds budget 0.01", res.Err)
	}
}

func TestFFTConstantShortCircuit(t *testing.T) {
	c := FFTCompressor{}
	x := make([]float64, 10)
	for i := range x {
		x[i] = 7
	}
	res, err := c.Compress(x)
	if err != nil {
		t.Fatal(err)
	}
	if res.Payload[1] != 0 {
		t.Fatalf("frequency count = %d, want 0 for a constant chunk", res.Payload[1])
	}
	out, err := c.Decompress(len(x), res.Payload)
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range out {
		if v != 7 {
			t.Fatalf("got %v, want 7", v)
		}
	}
}

func TestGibbsPaddingScenarioS8(t *testing.T) {
	n := 2048
	x := make([]float64, n)
	for i := range x {
		x[i] = 2
	}
	x[0] = 1
	x[n-1] = 3

	padded, left, _ := gibbsPad(x)
	if len(padded) != 2187 {
		t.Fatalf("padded length = %d, want 2187", len(padded))
	}
	if padded[2] != 1.0 {
		t.Fatalf("padded[2] = %v, want 1.0", padded[2])
	}
	if padded[2185] != 3.0 {
		t.Fatalf("padded[2185] = %v, want 3.0", padded[2185])
	}
	_ = left
}

func TestGibbsPaddingSkippedBelow128(t *testing.T) {
	x := make([]float64, 100)
	padded, left, right := gibbsPad(x)
	if len(padded) != 100 || left != 0 || right != 0 {
		t.Fatalf("expected no padding below 128 samples, got len=%d left=%d right=%d", len(padded), left, right)
	}
}
