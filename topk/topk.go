// Package topk selects the K largest elements of a slice under a
// caller-supplied ordering, built on top of the module's generic heap.
package topk

import brroheap "github.com/brro-compressor/brro/heap"

// SelectMax returns up to k elements of items, largest-first, where "larger"
// is whatever less reports as sorting after (less(a, b) means a comes
// before b in ascending order). It builds a max-heap over a copy of items
// and pops k times; if isZero reports true for a popped element, selection
// stops immediately, since every element still in the heap is no larger.
func SelectMax[T any](items []T, k int, less func(a, b T) bool, isZero func(T) bool) []T {
	if k <= 0 || len(items) == 0 {
		return nil
	}
	buf := make([]T, len(items))
	copy(buf, items)

	// brroheap.OrderSlice/PopSlice maintain a min-heap under "less"; negating
	// the comparator makes the root (and thus each Pop) the largest element.
	maxFirst := func(a, b T) bool { return less(b, a) }
	brroheap.OrderSlice(buf, maxFirst)

	if k > len(buf) {
		k = len(buf)
	}
	out := make([]T, 0, k)
	for i := 0; i < k && len(buf) > 0; i++ {
		top := brroheap.PopSlice(&buf, maxFirst)
		if isZero(top) {
			break
		}
		out = append(out, top)
	}
	return out
}
