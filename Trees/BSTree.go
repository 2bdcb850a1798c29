package Trees

import (
	DataStructures "github.com/KayakDov/DataStructures"
	"golang.org/x/exp/constraints"
)

// BSTree is an unbalanced binary search tree with no repeated values. It's
// the plain version of RBTree: same nodes and same deletion strategy, but
// without coloring and rotations. The height D of the tree is O(n) in the
// worst case and O(log n) on average for random insertions.
type BSTree[T any] struct {
	base[T]
}

// New BSTree ordered by the natural order of T.
func New[T constraints.Ordered]() *BSTree[T] {
	return NewWith(DataStructures.Ordered[T]())
}

// NewWith creates an empty BSTree ordered by cmp.
func NewWith[T any](cmp DataStructures.Comparator[T]) *BSTree[T] {
	return &BSTree[T]{base[T]{cmp: cmp}}
}

// Insert [Tree.Insert]
// Time: O(D)
func (u *BSTree[T]) Insert(v T) bool {
	if u.root == nil {
		u.root = NewNode(v)
		u.size++
		return true
	}
	if _, inserted := u.root.Insert(v, u.cmp); inserted {
		u.size++
		return true
	}
	return false
}

// Remove [Tree.Remove]
// Time: O(D)
func (u *BSTree[T]) Remove(v T) bool {
	if u.root != nil && u.root.IsLeaf() && u.cmp(v, u.root.key) == 0 {
		u.root = nil
	} else if !u.root.DeleteKey(v, u.cmp) {
		return false
	}
	u.size--
	return true
}

// Validate checks the ordering and the parent links of the tree.
func (u *BSTree[T]) Validate() error {
	return u.validateBST()
}
