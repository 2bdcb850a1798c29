package BTree

import (
	"fmt"
	"slices"

	DataStructures "github.com/KayakDov/DataStructures"
)

// OverflowError is the panic value when a bounded sequence is asked to hold
// more than its capacity.
type OverflowError struct {
	Capacity int
}

func (e OverflowError) Error() string {
	return fmt.Sprintf("bounded sequence of capacity %d is full", e.Capacity)
}

// bounded is a sequence with a fixed capacity. len(s) is the live length and
// cap(s) the capacity; the backing array is never reallocated. Slots past
// the live length are zeroed so they don't retain removed values.
type bounded[T any] struct {
	s []T
}

func newBounded[T any](capacity int) bounded[T] {
	return bounded[T]{make([]T, 0, capacity)}
}

func (u *bounded[T]) Len() int {
	return len(u.s)
}

func (u *bounded[T]) Cap() int {
	return cap(u.s)
}

func (u *bounded[T]) full() bool {
	return len(u.s) == cap(u.s)
}

func (u *bounded[T]) at(i int) T {
	return u.s[i]
}

func (u *bounded[T]) set(i int, v T) {
	u.s[i] = v
}

func (u *bounded[T]) last() T {
	return u.s[len(u.s)-1]
}

func (u *bounded[T]) grow(n int) {
	if len(u.s)+n > cap(u.s) {
		panic(OverflowError{cap(u.s)})
	}
	u.s = u.s[:len(u.s)+n]
}

// insertAt shifts the elements from i one place right and puts v at i.
// Time: O(n)
func (u *bounded[T]) insertAt(i int, v T) {
	u.grow(1)
	copy(u.s[i+1:], u.s[i:])
	u.s[i] = v
}

// removeAt removes the element at i, shifting the rest left.
// Time: O(n)
func (u *bounded[T]) removeAt(i int) T {
	v := u.s[i]
	copy(u.s[i:], u.s[i+1:])
	u.truncate(len(u.s) - 1)
	return v
}

func (u *bounded[T]) push(v T) {
	u.grow(1)
	u.s[len(u.s)-1] = v
}

func (u *bounded[T]) pop() T {
	return u.removeAt(len(u.s) - 1)
}

// appendAll puts vs at the end.
func (u *bounded[T]) appendAll(vs ...T) {
	n := len(u.s)
	u.grow(len(vs))
	copy(u.s[n:], vs)
}

// truncate to the first n elements.
func (u *bounded[T]) truncate(n int) {
	clear(u.s[n:])
	u.s = u.s[:n]
}

// find v by binary search in a sorted sequence. Returns the index of v and
// true, or the index where v would be inserted and false.
// Time: O(log n)
func (u *bounded[T]) find(v T, cmp DataStructures.Comparator[T]) (int, bool) {
	low, high := 0, len(u.s)
	for low < high {
		mid := int(uint(low+high) >> 1)
		switch c := cmp(v, u.s[mid]); {
		case c > 0:
			low = mid + 1
		case c < 0:
			high = mid
		default:
			return mid, true
		}
	}
	return low, false
}

// splitAt returns copies of the elements before i and from i on. u is left
// unchanged.
func (u *bounded[T]) splitAt(i int) (l, r []T) {
	return slices.Clone(u.s[:i]), slices.Clone(u.s[i:])
}

// splitAround returns copies of the elements before i and after i together
// with the element at i. u is left unchanged.
func (u *bounded[T]) splitAround(i int) (l []T, pivot T, r []T) {
	return slices.Clone(u.s[:i]), u.s[i], slices.Clone(u.s[i+1:])
}
