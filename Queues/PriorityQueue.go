package Queues

import (
	DataStructures "github.com/KayakDov/DataStructures"
	"golang.org/x/exp/constraints"
)

// PriorityQueue is a Queue giving its greatest item first, built on Heap.
type PriorityQueue[T any] struct {
	h Heap[T]
}

var _ Queue[int] = (*PriorityQueue[int])(nil)

// NewPriorityQueue ordered by the natural order of T.
func NewPriorityQueue[T constraints.Ordered]() *PriorityQueue[T] {
	return NewPriorityQueueWith(DataStructures.Ordered[T]())
}

// NewPriorityQueueWith creates an empty PriorityQueue ordered by cmp.
func NewPriorityQueueWith[T any](cmp DataStructures.Comparator[T]) *PriorityQueue[T] {
	return &PriorityQueue[T]{Heap[T]{cmp: cmp}}
}

// PriorityQueueOf turns s into a PriorityQueue. s is used in place and
// mustn't be used by the caller afterwards.
// Time: O(n)
func PriorityQueueOf[T any](s []T, cmp DataStructures.Comparator[T]) *PriorityQueue[T] {
	q := &PriorityQueue[T]{*NewHeap(s, cmp)}
	q.h.BuildMaxHeap()
	return q
}

func (u *PriorityQueue[T]) Empty() bool {
	return u.h.size == 0
}

func (u *PriorityQueue[T]) Size() uint {
	return uint(u.h.size)
}

// Push [Queue.Push]
// Time: amortized O(log n)
func (u *PriorityQueue[T]) Push(item T) {
	u.h.s = append(u.h.s[:u.h.size], item)
	u.h.size++
	u.h.siftUp(u.h.size - 1)
}

// Pop removes and returns the greatest item.
// Time: O(log n)
func (u *PriorityQueue[T]) Pop() (item T, e error) {
	if u.Empty() {
		return item, &EmptyQueueError{}
	}
	item = u.h.s[0]
	u.h.size--
	u.h.swap(0, u.h.size)
	u.h.s[u.h.size] = *new(T)
	u.h.MaxHeapify(0)
	return item, nil
}

// Peek at the greatest item.
func (u *PriorityQueue[T]) Peek() (item T) {
	if !u.Empty() {
		item = u.h.s[0]
	}
	return
}

// IncreaseKey replaces the item at index i of the underlying heap with the
// greater or equal v and moves it up to its place. i must be less than Size().
// Time: O(log n)
func (u *PriorityQueue[T]) IncreaseKey(i int, v T) error {
	if i < 0 || i >= u.h.size {
		return &IndexOutOfRangeError{i, u.h.size}
	}
	if u.h.cmp(v, u.h.s[i]) < 0 {
		return &SmallerKeyError{}
	}
	u.h.s[i] = v
	u.h.siftUp(i)
	return nil
}

// Items in heap order. The slice is shared with the queue.
func (u *PriorityQueue[T]) Items() []T {
	return u.h.s[:u.h.size]
}
