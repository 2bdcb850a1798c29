package Queues

import (
	DataStructures "github.com/KayakDov/DataStructures"
	"golang.org/x/exp/constraints"
)

// Heap is a binary max-heap laid out in a slice, see Cormen chapter 6. The
// children of index i are at 2i+1 and 2i+2. Only the first Len() elements of
// the slice belong to the heap.
type Heap[T any] struct {
	s    []T
	size int
	cmp  DataStructures.Comparator[T]
}

// NewHeap over s, which is used in place. s isn't a heap until BuildMaxHeap
// is called.
func NewHeap[T any](s []T, cmp DataStructures.Comparator[T]) *Heap[T] {
	return &Heap[T]{s, len(s), cmp}
}

func left(i int) int {
	return i<<1 + 1
}

func right(i int) int {
	return (i + 1) << 1
}

func parent(i int) int {
	return (i - 1) >> 1
}

// Len of the heap.
func (u *Heap[T]) Len() int {
	return u.size
}

func (u *Heap[T]) swap(i, j int) {
	u.s[i], u.s[j] = u.s[j], u.s[i]
}

// MaxHeapify lets the element at i sink until the subtree rooting at i is a
// max-heap, assuming both subtrees of i already are.
// Time: O(log n); Space: O(1)
func (u *Heap[T]) MaxHeapify(i int) {
	for {
		m := i
		if l := left(i); l < u.size && u.cmp(u.s[l], u.s[m]) > 0 {
			m = l
		}
		if r := right(i); r < u.size && u.cmp(u.s[r], u.s[m]) > 0 {
			m = r
		}
		if m == i {
			return
		}
		u.swap(i, m)
		i = m
	}
}

// siftUp lets the element at i rise while it's greater than its parent.
func (u *Heap[T]) siftUp(i int) {
	for i > 0 && u.cmp(u.s[parent(i)], u.s[i]) < 0 {
		u.swap(i, parent(i))
		i = parent(i)
	}
}

// BuildMaxHeap rearranges the elements into a max-heap.
// Time: O(n); Space: O(1)
func (u *Heap[T]) BuildMaxHeap() {
	for i := u.size/2 - 1; i >= 0; i-- {
		u.MaxHeapify(i)
	}
}

// IsHeap reports whether every element is at least as great as its children.
// Time: O(n)
func (u *Heap[T]) IsHeap() bool {
	for i := 1; i < u.size; i++ {
		if u.cmp(u.s[parent(i)], u.s[i]) < 0 {
			return false
		}
	}
	return true
}

// Sort the elements of the heap in ascending order, the heap property is lost
// afterwards.
// Time: O(n*log n); Space: O(1)
func (u *Heap[T]) Sort() {
	n := u.size
	u.BuildMaxHeap()
	for u.size > 1 {
		u.size--
		u.swap(0, u.size)
		u.MaxHeapify(0)
	}
	u.size = n
}

// HeapSort sorts s in ascending order in place.
func HeapSort[T constraints.Ordered](s []T) {
	NewHeap(s, DataStructures.Ordered[T]()).Sort()
}
