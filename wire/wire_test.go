package wire

import "testing"

func TestVarintRoundTrip(t *testing.T) {
	cases := []uint64{0, 1, 200, 250, 251, 1024, 65535, 65536, 1 << 32, 1 << 40}
	for _, v := range cases {
		buf := AppendVarint(nil, v)
		got, n, err := Varint(buf)
		if err != nil {
			t.Fatalf("Varint(%d): %v", v, err)
		}
		if n != len(buf) {
			t.Fatalf("Varint(%d): consumed %d, want %d", v, n, len(buf))
		}
		if got != v {
			t.Fatalf("Varint(%d): got %d", v, got)
		}
	}
}

func TestVarintLiteralEncoding(t *testing.T) {
	// Values up to 250 are always a single literal byte.
	if buf := AppendVarint(nil, 9); len(buf) != 1 || buf[0] != 9 {
		t.Fatalf("AppendVarint(9) = %v", buf)
	}
	if buf := AppendVarint(nil, 1024); len(buf) != 3 || buf[0] != 251 || buf[1] != 0 || buf[2] != 4 {
		t.Fatalf("AppendVarint(1024) = %v", buf)
	}
}

func TestFloat32RoundTrip(t *testing.T) {
	for _, f := range []float32{0, 1, -2.75, 19.0, 4.3309765} {
		buf := AppendFloat32(nil, f)
		got, err := Float32(buf)
		if err != nil {
			t.Fatalf("Float32(%v): %v", f, err)
		}
		if got != f {
			t.Fatalf("Float32 round trip: got %v want %v", got, f)
		}
	}
}

func TestFloat64RoundTrip(t *testing.T) {
	buf := AppendFloat64(nil, 1.0)
	want := []byte{0, 0, 0, 0, 0, 0, 240, 63}
	for i, b := range want {
		if buf[i] != b {
			t.Fatalf("AppendFloat64(1.0)[%d] = %d, want %d", i, buf[i], b)
		}
	}
	got, err := Float64(buf)
	if err != nil || got != 1.0 {
		t.Fatalf("Float64: got %v, %v", got, err)
	}
}

func TestVarintTruncated(t *testing.T) {
	if _, _, err := Varint(nil); err == nil {
		t.Fatal("expected error on empty buffer")
	}
	if _, _, err := Varint([]byte{251, 0}); err == nil {
		t.Fatal("expected error on truncated uint16 varint")
	}
}
