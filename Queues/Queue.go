package Queues

import "fmt"

// Queue is a container handing out its items one at a time. The order in
// which Pop gives them is up to the implementation: first in first out for
// ArrayQueue, greatest first for PriorityQueue.
type Queue[T any] interface {
	Push(item T)
	// Pop removes and returns the next item, or *EmptyQueueError if there's
	// none.
	Pop() (T, error)
	// Peek returns the next item without removing it, the zero value of T if
	// the queue is empty.
	Peek() T
	Empty() bool
	Size() uint
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}

// SmallerKeyError is returned by PriorityQueue.IncreaseKey when the new key
// is smaller than the one it replaces.
type SmallerKeyError struct {
}

func (e *SmallerKeyError) Error() string {
	return "new key is smaller than current key"
}

// IndexOutOfRangeError is returned by PriorityQueue.IncreaseKey when the
// index isn't that of an item in the queue.
type IndexOutOfRangeError struct {
	Index, Size int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range for queue of size %d", e.Index, e.Size)
}
