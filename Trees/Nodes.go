package Trees

import "github.com/KayakDov/DataStructures/Queues"

// Node is a node of a binary tree. left and right are owned by the node,
// parent is a back reference kept in sync by every method that links nodes.
// A node is the root iff parent==nil.
// red is only meaningful for nodes of a RBTree; other trees ignore it.
type Node[T any] struct {
	key                 T
	parent, left, right *Node[T]
	red                 bool
}

// NewNode creates a root node holding key.
func NewNode[T any](key T) *Node[T] {
	return &Node[T]{key: key}
}

func (u *Node[T]) Key() T {
	return u.key
}

func (u *Node[T]) SetKey(key T) {
	u.key = key
}

func (u *Node[T]) Left() *Node[T] {
	return u.left
}

func (u *Node[T]) Right() *Node[T] {
	return u.right
}

func (u *Node[T]) Parent() *Node[T] {
	return u.parent
}

// Red reports the color of u. Only meaningful in a RBTree.
func (u *Node[T]) Red() bool {
	return u.red
}

func (u *Node[T]) HasLeft() bool {
	return u.left != nil
}

func (u *Node[T]) HasRight() bool {
	return u.right != nil
}

func (u *Node[T]) IsLeaf() bool {
	return u.left == nil && u.right == nil
}

func (u *Node[T]) HasOneChildOrLess() bool {
	return u.left == nil || u.right == nil
}

func (u *Node[T]) IsRoot() bool {
	return u.parent == nil
}

// IsLeft is true iff u is the left child of its parent.
func (u *Node[T]) IsLeft() bool {
	return u.parent != nil && u.parent.left == u
}

// IsRight is true iff u is the right child of its parent.
func (u *Node[T]) IsRight() bool {
	return u.parent != nil && u.parent.right == u
}

// SetLeftKey replaces the left child with a new red node holding key. The
// previous left subtree is lost to u.
func (u *Node[T]) SetLeftKey(key T) *Node[T] {
	return u.SetLeft(&Node[T]{key: key, red: true})
}

// SetRightKey replaces the right child with a new red node holding key. The
// previous right subtree is lost to u.
func (u *Node[T]) SetRightKey(key T) *Node[T] {
	return u.SetRight(&Node[T]{key: key, red: true})
}

// SetLeft attaches the subtree rooted at n, possibly nil, as the left child.
func (u *Node[T]) SetLeft(n *Node[T]) *Node[T] {
	if u.left = n; n != nil {
		n.parent = u
	}
	return n
}

// SetRight attaches the subtree rooted at n, possibly nil, as the right child.
func (u *Node[T]) SetRight(n *Node[T]) *Node[T] {
	if u.right = n; n != nil {
		n.parent = u
	}
	return n
}

// setChild sets the left child if left, otherwise the right child.
func (u *Node[T]) setChild(left bool, n *Node[T]) {
	if left {
		u.SetLeft(n)
	} else {
		u.SetRight(n)
	}
}

func (u *Node[T]) child(left bool) *Node[T] {
	if left {
		return u.left
	}
	return u.right
}

// Transplant puts replacement, together with its subtree, where u is.
// The root has no parent to redirect, so when u is the root the key and
// children of replacement are copied into u instead and u stays the root.
// A nil replacement clears the root's key and children.
func (u *Node[T]) Transplant(replacement *Node[T]) {
	if u.parent != nil {
		u.parent.setChild(u.IsLeft(), replacement)
		u.parent = nil
	} else if replacement == nil {
		var zero T
		u.key, u.left, u.right = zero, nil, nil
	} else {
		l, r := replacement.left, replacement.right
		u.key = replacement.key
		u.SetLeft(l)
		u.SetRight(r)
	}
}

// Sibling of u, nil if u is the root or has no sibling.
func (u *Node[T]) Sibling() *Node[T] {
	if u.parent == nil {
		return nil
	}
	return u.parent.child(!u.IsLeft())
}

// Uncle is the sibling of the parent.
func (u *Node[T]) Uncle() *Node[T] {
	if u.parent == nil {
		return nil
	}
	return u.parent.Sibling()
}

func (u *Node[T]) GrandParent() *Node[T] {
	if u.parent == nil {
		return nil
	}
	return u.parent.parent
}

// NearNephew is the child of the sibling on the same side as u.
func (u *Node[T]) NearNephew() *Node[T] {
	if s := u.Sibling(); s != nil {
		return s.child(u.IsLeft())
	}
	return nil
}

// FarNephew is the child of the sibling on the opposite side of u.
func (u *Node[T]) FarNephew() *Node[T] {
	if s := u.Sibling(); s != nil {
		return s.child(!u.IsLeft())
	}
	return nil
}

// InOrder walk of the subtree rooting at u. The returned closure gives the
// next node on each call and (nil, false) once exhausted. The subtree
// mustn't be modified while walking.
// Time: f(): amortized O(1); Space: O(1)
func (u *Node[T]) InOrder() func() (*Node[T], bool) {
	cur, started := u, false
	return func() (*Node[T], bool) {
		if !started {
			started = true
			if cur != nil {
				cur = cur.Min()
			}
			return cur, cur != nil
		}
		if cur == nil {
			return nil, false
		}
		if cur.right != nil {
			cur = cur.right.Min()
			return cur, true
		}
		// climb until we leave a left subtree, never above u.
		for cur != u && cur.IsRight() {
			cur = cur.parent
		}
		if cur == u {
			cur = nil
		} else {
			cur = cur.parent
		}
		return cur, cur != nil
	}
}

// Range calls f on every node of the subtree in order until f returns false.
func (u *Node[T]) Range(f func(*Node[T]) bool) {
	for next := u.InOrder(); ; {
		if n, ok := next(); !ok || !f(n) {
			return
		}
	}
}

type leveled[T any] struct {
	n     *Node[T]
	depth int
}

// LevelOrder calls f on every node of the subtree, level by level and left
// to right, with its depth below u, until f returns false.
// Time: O(n); Space: O(n)
func (u *Node[T]) LevelOrder(f func(n *Node[T], depth int) bool) {
	q := Queues.NewArrayQueue[leveled[T]](16)
	q.Push(leveled[T]{u, 0})
	for !q.Empty() {
		l, _ := q.Pop()
		if !f(l.n, l.depth) {
			return
		}
		if l.n.left != nil {
			q.Push(leveled[T]{l.n.left, l.depth + 1})
		}
		if l.n.right != nil {
			q.Push(leveled[T]{l.n.right, l.depth + 1})
		}
	}
}

// Find the first node in order whose key matches. This is a linear search,
// ordered trees should use Search instead.
// Time: O(n)
func (u *Node[T]) Find(match func(T) bool) (found *Node[T]) {
	u.Range(func(n *Node[T]) bool {
		if match(n.key) {
			found = n
			return false
		}
		return true
	})
	return
}

// Size of the subtree rooting at u.
// Time: O(n)
func (u *Node[T]) Size() (s uint) {
	u.Range(func(*Node[T]) bool {
		s++
		return true
	})
	return
}

// Height of the subtree, counting edges. A single node has height 0.
func (u *Node[T]) Height() int {
	if u == nil {
		return -1
	}
	return max(u.left.Height(), u.right.Height()) + 1
}

// FillArray writes the keys of the subtree into dst using the heap layout:
// the children of index i are at 2i+1 and 2i+2. dst must be long enough for
// the deepest node; missing positions are left untouched.
func (u *Node[T]) FillArray(dst []T) []T {
	u.fillArray(0, dst)
	return dst
}

func (u *Node[T]) fillArray(i int, dst []T) {
	dst[i] = u.key
	if u.left != nil {
		u.left.fillArray(2*i+1, dst)
	}
	if u.right != nil {
		u.right.fillArray(2*i+2, dst)
	}
}

// DeleteSubTree removes u and all its descendants from the tree by severing
// the parent's pointer to u.
func (u *Node[T]) DeleteSubTree() {
	if u.parent != nil {
		u.parent.setChild(u.IsLeft(), nil)
		u.parent = nil
	}
}
