package optimizer

import (
	"testing"

	"github.com/brro-compressor/brro"
)

func TestSplitCoversAllSamples(t *testing.T) {
	x := make([]float64, 10000)
	for i := range x {
		x[i] = float64(i % 7)
	}
	plans := Split(x)
	total := 0
	for _, p := range plans {
		total += len(p.Data)
	}
	if total != len(x) {
		t.Fatalf("covered %d samples, want %d", total, len(x))
	}
}

func TestSplitSmallInputIsOneChunk(t *testing.T) {
	x := make([]float64, 100)
	plans := Split(x)
	if len(plans) != 1 || len(plans[0].Data) != 100 {
		t.Fatalf("got %d plans", len(plans))
	}
}

func TestSplitPicksSmoothSize(t *testing.T) {
	x := make([]float64, 5000)
	plans := Split(x)
	if !isSmooth(len(plans[0].Data)) && len(plans[0].Data) != maxWindow {
		t.Fatalf("first chunk size %d is not 2^a*3^b", len(plans[0].Data))
	}
}

func TestDefaultKindConstant(t *testing.T) {
	x := make([]float64, 200)
	for i := range x {
		x[i] = 3.0
	}
	plans := Split(x)
	if plans[0].Kind != brro.Constant {
		t.Fatalf("kind = %v, want Constant", plans[0].Kind)
	}
}
