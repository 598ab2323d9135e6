// Package stats computes the small set of summary values the compressors
// fit against: min, max and their first-occurrence positions.
package stats

// DataStats is an immutable summary of a chunk, computed once in a single
// linear pass.
type DataStats struct {
	Min, Max       float64
	ArgMin, ArgMax int
}

// Compute scans x once, recording the minimum and maximum values and the
// index of their first occurrence (ties keep the first one seen).
func Compute(x []float64) DataStats {
	s := DataStats{Min: x[0], Max: x[0], ArgMin: 0, ArgMax: 0}
	for i := 1; i < len(x); i++ {
		if x[i] < s.Min {
			s.Min = x[i]
			s.ArgMin = i
		}
		if x[i] > s.Max {
			s.Max = x[i]
			s.ArgMax = i
		}
	}
	return s
}

// Constant reports whether the chunk's min and max coincide, i.e. every
// sample has the same value.
func (s DataStats) Constant() bool {
	return s.Min == s.Max
}
