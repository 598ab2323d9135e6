package topk

import (
	"reflect"
	"testing"
)

func TestSelectMaxOrdersDescending(t *testing.T) {
	items := []int{3, 1, 4, 1, 5, 9, 2, 6}
	less := func(a, b int) bool { return a < b }
	isZero := func(int) bool { return false }

	got := SelectMax(items, 3, less, isZero)
	want := []int{9, 6, 5}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestSelectMaxStopsOnZero(t *testing.T) {
	items := []int{5, 0, 0, 3}
	less := func(a, b int) bool { return a < b }
	isZero := func(v int) bool { return v == 0 }

	got := SelectMax(items, 4, less, isZero)
	want := []int{5, 3}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestSelectMaxKLargerThanInput(t *testing.T) {
	items := []int{2, 1}
	got := SelectMax(items, 10, func(a, b int) bool { return a < b }, func(int) bool { return false })
	if len(got) != 2 {
		t.Fatalf("got %v", got)
	}
}

func TestSelectMaxEmpty(t *testing.T) {
	if got := SelectMax([]int{}, 3, func(a, b int) bool { return a < b }, func(int) bool { return false }); got != nil {
		t.Fatalf("got %v", got)
	}
}
