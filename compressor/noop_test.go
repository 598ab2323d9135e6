package compressor

import (
	"reflect"
	"testing"
)

func TestNoopRoundTripExact(t *testing.T) {
	x := []float64{1, -2.5, 3.14159, 0, 42}
	c := NoopCompressor{}
	res, err := c.Compress(x)
	if err != nil {
		t.Fatal(err)
	}
	out, err := c.Decompress(len(x), res.Payload)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(out, x) {
		t.Fatalf("got %v, want %v", out, x)
	}
	if res.Err != 0 {
		t.Fatalf("noop error = %v, want 0", res.Err)
	}
}

func TestNoopDecompressWrongLength(t *testing.T) {
	c := NoopCompressor{}
	res, _ := c.Compress([]float64{1, 2, 3})
	if _, err := c.Decompress(2, res.Payload); err == nil {
		t.Fatal("expected length mismatch error")
	}
}
