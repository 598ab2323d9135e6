// Copyright (C) 2022 Sneller, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Package numeric provides the error metrics, rounding and FFT-sizing
// helpers shared by every compressor.
package numeric

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/brro-compressor/brro"
)

// Min returns the smaller of x and y.
func Min[T constraints.Ordered](x, y T) T {
	if x <= y {
		return x
	}
	return y
}

// Max returns the greater of x and y.
func Max[T constraints.Ordered](x, y T) T {
	if x >= y {
		return x
	}
	return y
}

// Clamp returns x if it is in [lo, hi]. Otherwise the nearest bounding value
// is returned.
func Clamp[T constraints.Ordered](x, lo, hi T) T {
	return Max(lo, Min(x, hi))
}

// CalculateError returns the mean squared error between two equal-length
// sequences.
func CalculateError(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, brro.NewError(brro.LengthMismatch, "numeric.CalculateError", "sequences have different lengths")
	}
	if len(a) == 0 {
		return 0, nil
	}
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum / float64(len(a)), nil
}

// NMSQE returns the normalized mean squared error Σ(g−o)² / Σo² between the
// original and generated sequences.
func NMSQE(original, generated []float64) (float64, error) {
	if len(original) != len(generated) {
		return 0, brro.NewError(brro.LengthMismatch, "numeric.NMSQE", "sequences have different lengths")
	}
	var num, den float64
	for i := range original {
		d := generated[i] - original[i]
		num += d * d
		den += original[i] * original[i]
	}
	if den == 0 {
		return 0, nil
	}
	return num / den, nil
}

// RoundAndLimit rounds x to d decimals then clamps it to [lo, hi].
func RoundAndLimit(x, lo, hi float64, d int) float64 {
	return Clamp(RoundDecimals(x, d), lo, hi)
}

// RoundDecimals rounds x to d decimal places.
func RoundDecimals(x float64, d int) float64 {
	p := math.Pow(10, float64(d))
	return math.Round(x*p) / p
}

// FixedCompare compares two float64 values at a fixed-point precision of d
// decimals, as the bounded fitting loops do: round(a*10^d) vs round(b*10^d).
func FixedCompare(a, b float64, d int) int {
	p := math.Pow(10, float64(d))
	ra := math.Round(a * p)
	rb := math.Round(b * p)
	switch {
	case ra < rb:
		return -1
	case ra > rb:
		return 1
	default:
		return 0
	}
}

// NextSize returns the smallest integer ≥ n+1 whose prime factorization
// contains only 2 and 3.
func NextSize(n int) int {
	target := n + 1
	if target <= 1 {
		return 1
	}
	best := -1
	p2 := 1
	for a := 0; a <= 24; a++ {
		p := p2
		for b := 0; b <= 20; b++ {
			if p >= target {
				if best == -1 || p < best {
					best = p
				}
				break
			}
			p *= 3
		}
		p2 *= 2
	}
	return best
}

// PrevPowerOfTwo returns the largest power of two ≤ n, or 0 if n <= 0.
func PrevPowerOfTwo(n int) int {
	if n <= 0 {
		return 0
	}
	p := 1
	for p*2 <= n {
		p *= 2
	}
	return p
}

// F64ToU64 returns round(x * 10^d) for d in [0, 6]. An out-of-range d is a
// precondition violation.
func F64ToU64(x float64, d int) (uint64, error) {
	if d < 0 || d > 6 {
		return 0, brro.NewError(brro.InvalidInput, "numeric.F64ToU64", "decimal precision must be in [0, 6]")
	}
	p := math.Pow(10, float64(d))
	return uint64(math.Round(x * p)), nil
}
