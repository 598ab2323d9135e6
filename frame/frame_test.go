package frame

import (
	"reflect"
	"testing"

	"github.com/brro-compressor/brro"
)

func TestCompressDecompressNoopExact(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	f, err := Compress(x, brro.Noop)
	if err != nil {
		t.Fatal(err)
	}
	out, err := f.Decompress()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(out, x) {
		t.Fatalf("got %v, want %v", out, x)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	x := []float64{1, 1, 1, 1, 1}
	f, err := Compress(x, brro.Constant)
	if err != nil {
		t.Fatal(err)
	}
	buf, err := f.Encode(nil)
	if err != nil {
		t.Fatal(err)
	}
	decoded, n, err := Decode(buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != len(buf) {
		t.Fatalf("consumed %d, want %d", n, len(buf))
	}
	out, err := decoded.Decompress()
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range out {
		if v != 1 {
			t.Fatalf("got %v", out)
		}
	}
}

func TestDecodeRejectsUnknownDisc(t *testing.T) {
	if _, _, err := Decode([]byte{5, 99, 0}); err == nil {
		t.Fatal("expected error for unknown kind discriminant")
	}
}

func TestDecodeRejectsTagMismatch(t *testing.T) {
	// sample_count=5, disc=Constant(3), payload_len=1, payload=[0] (wrong tag).
	buf := []byte{5, 3, 1, 0}
	if _, _, err := Decode(buf); !brro.Is(err, brro.Malformed) {
		t.Fatalf("want Malformed, got %v", err)
	}
}

func TestCompressBestZeroBudgetRoundTripsExactly(t *testing.T) {
	x := []float64{1, 7, 2, 9, 0, 5, 3, 8, 4, 6}
	f, err := CompressBest(x, 0, SpeedThorough)
	if err != nil {
		t.Fatal(err)
	}
	if f.Kind != brro.Noop {
		// Noop is exact by construction; any other kind chosen under a zero
		// budget must also reproduce this non-constant data exactly.
		out, err := f.Decompress()
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(out, x) {
			t.Fatalf("chosen kind %v did not round-trip exactly under a zero budget", f.Kind)
		}
	}
}
