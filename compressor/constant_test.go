package compressor

import "testing"

func TestConstantScenarioS1(t *testing.T) {
	x := []float64{1.0, 1.0, 1.0, 1.0, 1.0}
	c := ConstantCompressor{}
	res, err := c.Compress(x)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{30, 0, 0, 0, 0, 0, 0, 240, 63}
	if len(res.Payload) != len(want) {
		t.Fatalf("payload length = %d, want %d", len(res.Payload), len(want))
	}
	for i, b := range want {
		if res.Payload[i] != b {
			t.Fatalf("payload[%d] = %d, want %d", i, res.Payload[i], b)
		}
	}

	out, err := c.Decompress(len(x), res.Payload)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range out {
		if v != 1.0 {
			t.Fatalf("decode[%d] = %v, want 1.0", i, v)
		}
	}
}

func TestConstantPicksMin(t *testing.T) {
	c := ConstantCompressor{}
	res, err := c.Compress([]float64{5, 2, 9, 2, 7})
	if err != nil {
		t.Fatal(err)
	}
	out, err := c.Decompress(5, res.Payload)
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range out {
		if v != 2 {
			t.Fatalf("got %v, want constant 2", out)
		}
	}
}

func TestConstantRejectsBadTag(t *testing.T) {
	c := ConstantCompressor{}
	if _, err := c.Decompress(1, []byte{0, 0, 0, 0, 0, 0, 0, 0, 0}); err == nil {
		t.Fatal("expected error on wrong tag")
	}
}
