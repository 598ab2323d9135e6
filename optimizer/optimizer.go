// Package optimizer splits a full input sequence into chunks sized for
// good spectral behavior and assigns each one a default compressor.
package optimizer

import (
	"github.com/brro-compressor/brro"
	"github.com/brro-compressor/brro/stats"
)

// Plan is one (kind, chunk) pair ready to be handed to a Stream.
type Plan struct {
	Kind brro.CompressorKind
	Data []float64
}

// Window bounds the preferred chunk size.
const (
	minWindow = 512
	maxWindow = 8192
)

// Split chops x into chunks whose length is, wherever the input allows,
// the largest value in [minWindow, maxWindow] that is a power of two or a
// 2^a*3^b factorization — sizes the FFT compressor handles cheaply. Any
// remainder shorter than minWindow becomes its own final, smaller chunk.
func Split(x []float64) []Plan {
	var plans []Plan
	remaining := x
	for len(remaining) > 0 {
		size := chooseSize(len(remaining))
		chunk := remaining[:size]
		plans = append(plans, Plan{Kind: defaultKind(chunk), Data: chunk})
		remaining = remaining[size:]
	}
	return plans
}

func chooseSize(remainingLen int) int {
	if remainingLen <= minWindow {
		return remainingLen
	}
	upper := remainingLen
	if upper > maxWindow {
		upper = maxWindow
	}
	for c := upper; c >= minWindow; c-- {
		if isSmooth(c) {
			return c
		}
	}
	return upper
}

// isSmooth reports whether n's prime factorization contains only 2 and 3.
func isSmooth(n int) bool {
	for n%2 == 0 {
		n /= 2
	}
	for n%3 == 0 {
		n /= 3
	}
	return n == 1
}

// defaultKind picks a reasonable default compressor for a chunk: Constant
// for a chunk that is already flat, FFT for chunks long enough to benefit
// from spectral truncation, Polynomial otherwise.
func defaultKind(chunk []float64) brro.CompressorKind {
	st := stats.Compute(chunk)
	switch {
	case st.Constant():
		return brro.Constant
	case len(chunk) >= 128:
		return brro.FFT
	default:
		return brro.Polynomial
	}
}
