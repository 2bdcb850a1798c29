package BTree

import (
	"fmt"
	"slices"

	DataStructures "github.com/KayakDov/DataStructures"
	"github.com/KayakDov/DataStructures/Queues"
	"github.com/KayakDov/DataStructures/Trees"
	"golang.org/x/exp/constraints"
)

var _ Trees.Tree[int] = (*BTree[int])(nil)

// InvalidCapacityError is the panic value of New and NewWith when the key
// capacity of a node is less than 3.
type InvalidCapacityError struct {
	Capacity int
}

func (e InvalidCapacityError) Error() string {
	return fmt.Sprintf("invalid B-tree node capacity %d, need at least 3", e.Capacity)
}

type node[T any] struct {
	keys bounded[T]
	// children is empty for leaves, otherwise it holds keys.Len()+1 nodes.
	children bounded[*node[T]]
}

func (n *node[T]) leaf() bool {
	return n.children.Len() == 0
}

// min is the smallest key in the subtree rooting at n.
func (n *node[T]) min() T {
	for !n.leaf() {
		n = n.children.at(0)
	}
	return n.keys.at(0)
}

// max is the greatest key in the subtree rooting at n.
func (n *node[T]) max() T {
	for !n.leaf() {
		n = n.children.last()
	}
	return n.keys.last()
}

// BTree is a B-tree with no repeated values, see Cormen chapter 18. Every
// node holds at most c keys in sorted order, every node other than the root
// holds at least (c-1)/2 keys, an internal node with k keys has k+1 children
// and all leaves are at the same depth.
// Full nodes are split on the way down during insertion and thin nodes are
// filled on the way down during deletion, so both only make one pass from
// the root.
type BTree[T any] struct {
	root     *node[T]
	cmp      DataStructures.Comparator[T]
	capacity int
	size     uint
}

// New BTree ordered by the natural order of T whose nodes hold at most
// capacity keys. Panics with InvalidCapacityError if capacity<3.
func New[T constraints.Ordered](capacity int) *BTree[T] {
	return NewWith(capacity, DataStructures.Ordered[T]())
}

// NewWith creates an empty BTree ordered by cmp whose nodes hold at most
// capacity keys. Panics with InvalidCapacityError if capacity<3.
func NewWith[T any](capacity int, cmp DataStructures.Comparator[T]) *BTree[T] {
	if capacity < 3 {
		panic(InvalidCapacityError{capacity})
	}
	return &BTree[T]{cmp: cmp, capacity: capacity}
}

// Capacity is the maximum number of keys in a node.
func (u *BTree[T]) Capacity() int {
	return u.capacity
}

// MinKeys is the minimum number of keys in a node other than the root.
func (u *BTree[T]) MinKeys() int {
	return (u.capacity - 1) / 2
}

func (u *BTree[T]) newNode(leaf bool) *node[T] {
	n := &node[T]{keys: newBounded[T](u.capacity)}
	if !leaf {
		n.children = newBounded[*node[T]](u.capacity + 1)
	}
	return n
}

// Size [Trees.Tree.Size]
func (u *BTree[T]) Size() uint {
	return u.size
}

func (u *BTree[T]) IsEmpty() bool {
	return u.root == nil
}

// Height of the tree counting edges: -1 when empty, 0 when the root is a leaf.
// Time: O(log n)
func (u *BTree[T]) Height() (h int) {
	if u.root == nil {
		return -1
	}
	for n := u.root; !n.leaf(); n = n.children.at(0) {
		h++
	}
	return
}

// Find the key of the tree equal to v.
// Time: O(log n)
func (u *BTree[T]) Find(v T) (T, bool) {
	for n := u.root; n != nil; {
		i, found := n.keys.find(v, u.cmp)
		if found {
			return n.keys.at(i), true
		}
		if n.leaf() {
			break
		}
		n = n.children.at(i)
	}
	var zero T
	return zero, false
}

// Has [Trees.Tree.Has]
// Time: O(log n)
func (u *BTree[T]) Has(v T) bool {
	_, found := u.Find(v)
	return found
}

// Minimum [Trees.Tree.Minimum]
// Time: O(log n)
func (u *BTree[T]) Minimum() (v T, ok bool) {
	if u.root != nil {
		v, ok = u.root.min(), true
	}
	return
}

// Maximum [Trees.Tree.Maximum]
// Time: O(log n)
func (u *BTree[T]) Maximum() (v T, ok bool) {
	if u.root != nil {
		v, ok = u.root.max(), true
	}
	return
}

// Successor [Trees.Tree.Successor]
// Time: O(log n)
func (u *BTree[T]) Successor(v T) (s T, ok bool) {
	for n := u.root; n != nil; {
		i, found := n.keys.find(v, u.cmp)
		if found {
			i++
		}
		if i < n.keys.Len() {
			s, ok = n.keys.at(i), true
		}
		if n.leaf() {
			break
		}
		n = n.children.at(i)
	}
	return
}

// Predecessor [Trees.Tree.Predecessor]
// Time: O(log n)
func (u *BTree[T]) Predecessor(v T) (p T, ok bool) {
	for n := u.root; n != nil; {
		i, _ := n.keys.find(v, u.cmp)
		if i > 0 {
			p, ok = n.keys.at(i-1), true
		}
		if n.leaf() {
			break
		}
		n = n.children.at(i)
	}
	return
}

// Insert [Trees.Tree.Insert]
// A full root is split first, growing the tree by one level, then every full
// child met on the way down is split before descending into it.
// Time: O(c*log n)
func (u *BTree[T]) Insert(v T) bool {
	if u.Has(v) {
		return false
	}
	if u.root == nil {
		u.root = u.newNode(true)
	}
	if u.root.keys.full() {
		old := u.root
		u.root = u.newNode(false)
		u.root.children.push(old)
		u.splitChild(u.root, 0)
	}
	n := u.root
	for {
		i, _ := n.keys.find(v, u.cmp)
		if n.leaf() {
			n.keys.insertAt(i, v)
			break
		}
		if n.children.at(i).keys.full() {
			u.splitChild(n, i)
			// the promoted median may send us right.
			if u.cmp(v, n.keys.at(i)) > 0 {
				i++
			}
		}
		n = n.children.at(i)
	}
	u.size++
	return true
}

// splitChild splits the full child i of n. The first c/2 keys stay in the
// child, the next one moves up into n at i and the rest go into a new child
// at i+1 together with the matching grandchildren.
func (u *BTree[T]) splitChild(n *node[T], i int) {
	child := n.children.at(i)
	mid := u.capacity / 2
	_, median, r := child.keys.splitAround(mid)
	right := u.newNode(child.leaf())
	right.keys.appendAll(r...)
	child.keys.truncate(mid)
	if !child.leaf() {
		_, rc := child.children.splitAt(mid + 1)
		right.children.appendAll(rc...)
		child.children.truncate(mid + 1)
	}
	n.keys.insertAt(i, median)
	n.children.insertAt(i+1, right)
}

// Remove [Trees.Tree.Remove]
func (u *BTree[T]) Remove(v T) bool {
	return u.Delete(v)
}

// Delete v from the tree. Returns false if v isn't in the tree.
// Every child is given more than MinKeys keys before descending into it, so
// the key can be removed from a leaf without fixing anything upwards. The
// root is dropped when it runs out of keys.
// Time: O(c*log n)
func (u *BTree[T]) Delete(v T) bool {
	if !u.Has(v) {
		return false
	}
	u.delete(u.root, v)
	if u.root.keys.Len() == 0 {
		if u.root.leaf() {
			u.root = nil
		} else {
			u.root = u.root.children.at(0)
		}
	}
	u.size--
	return true
}

// delete v, which is in the subtree rooting at n.
func (u *BTree[T]) delete(n *node[T], v T) {
	for {
		i, found := n.keys.find(v, u.cmp)
		if n.leaf() {
			n.keys.removeAt(i)
			return
		}
		if !found {
			n = u.descend(n, i)
			continue
		}
		// v is a separator: replace it with its neighbour from a child that
		// can lose a key, then delete the neighbour from that child.
		if l := n.children.at(i); l.keys.Len() > u.MinKeys() {
			pred := l.max()
			n.keys.set(i, pred)
			n, v = l, pred
		} else if r := n.children.at(i + 1); r.keys.Len() > u.MinKeys() {
			suc := r.min()
			n.keys.set(i, suc)
			n, v = r, suc
		} else {
			u.mergeChild(n, i)
			n = n.children.at(i)
		}
	}
}

// descend returns the child of n covering the keys of child i after making
// sure it holds more than MinKeys keys.
func (u *BTree[T]) descend(n *node[T], i int) *node[T] {
	c := n.children.at(i)
	switch {
	case c.keys.Len() > u.MinKeys():
	case i+1 < n.children.Len() && n.children.at(i+1).keys.Len() > u.MinKeys():
		u.rotateKey(n, i, false)
	case i > 0 && n.children.at(i-1).keys.Len() > u.MinKeys():
		u.rotateKey(n, i, true)
	default:
		// merge with the right sibling, or the left one for the last child.
		if i == n.children.Len()-1 {
			i--
		}
		u.mergeChild(n, i)
		c = n.children.at(i)
	}
	return c
}

// rotateKey moves a key into child i of n from its left or right sibling.
// The separating key of n moves down into the child, the nearest key of the
// sibling moves up to replace it and, for internal nodes, the nearest
// grandchild of the sibling moves across.
// Time: O(c)
func (u *BTree[T]) rotateKey(n *node[T], i int, fromLeft bool) {
	c := n.children.at(i)
	if fromLeft {
		l := n.children.at(i - 1)
		c.keys.insertAt(0, n.keys.at(i-1))
		n.keys.set(i-1, l.keys.pop())
		if !c.leaf() {
			c.children.insertAt(0, l.children.pop())
		}
		return
	}
	r := n.children.at(i + 1)
	c.keys.push(n.keys.at(i))
	n.keys.set(i, r.keys.removeAt(0))
	if !c.leaf() {
		c.children.push(r.children.removeAt(0))
	}
}

// mergeChild concatenates child i, the separating key i and child i+1 of n
// into child i, then removes the key and child i+1 from n.
// Time: O(c)
func (u *BTree[T]) mergeChild(n *node[T], i int) {
	l, r := n.children.at(i), n.children.at(i+1)
	l.keys.push(n.keys.removeAt(i))
	l.keys.appendAll(r.keys.s...)
	if !l.leaf() {
		l.children.appendAll(r.children.s...)
	}
	n.children.removeAt(i + 1)
}

type frame[T any] struct {
	n *node[T]
	i int
}

// InOrder [Trees.Tree.InOrder]
// Time: f(): amortized O(1); Space: O(log n)
func (u *BTree[T]) InOrder() func() (T, bool) {
	var stack []frame[T]
	pushLeft := func(n *node[T]) {
		for n != nil {
			stack = append(stack, frame[T]{n, 0})
			if n.leaf() {
				break
			}
			n = n.children.at(0)
		}
	}
	pushLeft(u.root)
	return func() (v T, ok bool) {
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.i < top.n.keys.Len() {
				k, n := top.n.keys.at(top.i), top.n
				top.i++
				if !n.leaf() {
					pushLeft(n.children.at(top.i))
				}
				return k, true
			}
			stack = stack[:len(stack)-1]
		}
		return
	}
}

// Keys of the tree in ascending order.
// Time: O(n)
func (u *BTree[T]) Keys() []T {
	keys := make([]T, 0, u.size)
	next := u.InOrder()
	for v, ok := next(); ok; v, ok = next() {
		keys = append(keys, v)
	}
	return keys
}

// Levels of the tree from the root down. Each level lists the keys of its
// nodes from left to right, one slice per node.
// Time: O(n); Space: O(n)
func (u *BTree[T]) Levels() (levels [][][]T) {
	if u.root == nil {
		return
	}
	q := Queues.NewArrayQueue[*node[T]](16)
	q.Push(u.root)
	// nodes of the current level left in the queue.
	for width := 1; !q.Empty(); width = int(q.Size()) {
		var level [][]T
		for range width {
			n, _ := q.Pop()
			level = append(level, slices.Clone(n.keys.s))
			for _, c := range n.children.s {
				q.Push(c)
			}
		}
		levels = append(levels, level)
	}
	return
}

// Corrupt [Trees.Tree.Corrupt]
func (u *BTree[T]) Corrupt() bool {
	return u.Validate() != nil
}
