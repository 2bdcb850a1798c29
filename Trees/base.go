package Trees

import DataStructures "github.com/KayakDov/DataStructures"

// base holds what BSTree and RBTree share: a root, possibly nil when the
// tree is empty, the order of the keys and the number of keys.
// The zero value is meaningless, cmp must be set.
type base[T any] struct {
	root *Node[T]
	cmp  DataStructures.Comparator[T]
	size uint
}

// Size [Tree.Size]
// Time: O(1); Space: O(1)
func (u *base[T]) Size() uint {
	return u.size
}

func (u *base[T]) IsEmpty() bool {
	return u.root == nil
}

// Root node of the tree, nil if empty. Nodes mustn't be relinked by callers.
func (u *base[T]) Root() *Node[T] {
	return u.root
}

// Find the node holding v, nil if there's none.
// Time: O(D); Space: O(1)
func (u *base[T]) Find(v T) *Node[T] {
	return u.root.Search(v, u.cmp)
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *base[T]) Has(v T) bool {
	return u.root.Search(v, u.cmp) != nil
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *base[T]) Minimum() (v T, ok bool) {
	if u.root != nil {
		v, ok = u.root.Min().key, true
	}
	return
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *base[T]) Maximum() (v T, ok bool) {
	if u.root != nil {
		v, ok = u.root.Max().key, true
	}
	return
}

// Successor [Tree.Successor]
// Time: O(D); Space: O(1)
func (u *base[T]) Successor(v T) (T, bool) {
	return keyOf(u.root.successorOf(v, u.cmp))
}

// Predecessor [Tree.Predecessor]
// Time: O(D); Space: O(1)
func (u *base[T]) Predecessor(v T) (T, bool) {
	return keyOf(u.root.predecessorOf(v, u.cmp))
}

func keyOf[T any](n *Node[T]) (v T, ok bool) {
	if n != nil {
		v, ok = n.key, true
	}
	return
}

// InOrder [Tree.InOrder]
// Time: f(): amortized O(1) at each call to the returned function. Space: O(1)
func (u *base[T]) InOrder() func() (T, bool) {
	if u.root == nil {
		return func() (v T, ok bool) { return }
	}
	next := u.root.InOrder()
	return func() (T, bool) {
		n, _ := next()
		return keyOf(n)
	}
}

// Keys of the tree in ascending order.
// Time: O(n); Space: O(n)
func (u *base[T]) Keys() []T {
	keys := make([]T, 0, u.size)
	if u.root != nil {
		u.root.Range(func(n *Node[T]) bool {
			keys = append(keys, n.key)
			return true
		})
	}
	return keys
}

// Levels of the tree from the root down, each in ascending order.
// Time: O(n); Space: O(n)
func (u *base[T]) Levels() (levels [][]T) {
	if u.root == nil {
		return
	}
	u.root.LevelOrder(func(n *Node[T], depth int) bool {
		if depth == len(levels) {
			levels = append(levels, nil)
		}
		levels[depth] = append(levels[depth], n.key)
		return true
	})
	return
}

// Height of the tree counting edges, -1 when empty.
func (u *base[T]) Height() int {
	return u.root.Height()
}

// Corrupt [Tree.Corrupt]
func (u *base[T]) Corrupt() bool {
	return u.validateBST() != nil
}
