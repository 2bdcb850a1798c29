package DataStructures

import "golang.org/x/exp/constraints"

// Comparator is a three-way comparison. It returns a negative number when
// a<b, 0 when a==b and a positive number when a>b. It must be pure, every
// structure in this module relies on it describing a total order.
type Comparator[T any] func(a, b T) int

// Ordered returns the natural Comparator of T.
func Ordered[T constraints.Ordered]() Comparator[T] {
	return func(a, b T) int {
		if a < b {
			return -1
		} else if a > b {
			return 1
		}
		return 0
	}
}

// Reverse the order of c.
func Reverse[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}

// Less reports whether a<b under u.
func (u Comparator[T]) Less(a, b T) bool {
	return u(a, b) < 0
}
