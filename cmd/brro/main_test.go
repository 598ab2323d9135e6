package main

import (
	"testing"

	"github.com/brro-compressor/brro"
)

func TestParseKind(t *testing.T) {
	cases := []struct {
		in      string
		want    brro.CompressorKind
		wantErr bool
	}{
		{"auto", brro.Auto, false},
		{"noop", brro.Noop, false},
		{"fft", brro.FFT, false},
		{"constant", brro.Constant, false},
		{"polynomial", brro.Polynomial, false},
		{"wavelet", 0, true},
		{"topbottom", 0, true},
		{"bogus", 0, true},
	}
	for _, c := range cases {
		got, err := parseKind(c.in)
		if (err != nil) != c.wantErr {
			t.Fatalf("parseKind(%q): err = %v, wantErr %v", c.in, err, c.wantErr)
		}
		if err == nil && got != c.want {
			t.Fatalf("parseKind(%q) = %v, want %v", c.in, got, c.want)
		}
		if err != nil && !brro.Is(err, brro.InvalidInput) {
			t.Fatalf("parseKind(%q): want InvalidInput, got %v", c.in, err)
		}
	}
}
