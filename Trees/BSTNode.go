package Trees

import DataStructures "github.com/KayakDov/DataStructures"

// Binary search tree operations on Node. In the subtree rooting at any node,
// all keys on the left are less than the key of the node and all keys on the
// right are greater.

// Min is the node with the smallest key in the subtree rooting at u.
// Time: O(D); Space: O(1)
func (u *Node[T]) Min() *Node[T] {
	for u.left != nil {
		u = u.left
	}
	return u
}

// Max is the node with the greatest key in the subtree rooting at u.
// Time: O(D); Space: O(1)
func (u *Node[T]) Max() *Node[T] {
	for u.right != nil {
		u = u.right
	}
	return u
}

// Successor is the smallest node in the right subtree, nil if there's no
// right subtree.
func (u *Node[T]) Successor() *Node[T] {
	if u.right == nil {
		return nil
	}
	return u.right.Min()
}

// Predecessor is the greatest node in the left subtree, nil if there's no
// left subtree.
func (u *Node[T]) Predecessor() *Node[T] {
	if u.left == nil {
		return nil
	}
	return u.left.Max()
}

// AChild returns the left child if there is one, otherwise the right child.
func (u *Node[T]) AChild() *Node[T] {
	if u.left != nil {
		return u.left
	}
	return u.right
}

// Insert key in the subtree rooting at u. Returns the new node and true, or
// the node already holding key and false.
// Time: O(D); Space: O(1)
func (u *Node[T]) Insert(key T, cmp DataStructures.Comparator[T]) (*Node[T], bool) {
	for {
		if c := cmp(key, u.key); c < 0 {
			if u.left == nil {
				return u.SetLeftKey(key), true
			}
			u = u.left
		} else if c > 0 {
			if u.right == nil {
				return u.SetRightKey(key), true
			}
			u = u.right
		} else {
			return u, false
		}
	}
}

// Search the subtree rooting at u for key. nil if not found.
// Time: O(D); Space: O(1)
func (u *Node[T]) Search(key T, cmp DataStructures.Comparator[T]) *Node[T] {
	for u != nil {
		if c := cmp(key, u.key); c < 0 {
			u = u.left
		} else if c > 0 {
			u = u.right
		} else {
			return u
		}
	}
	return nil
}

// replaceWithSuccessor removes suc, the successor of u, from the tree with
// its right child taking its place, then moves the key of suc into u.
func (u *Node[T]) replaceWithSuccessor(suc *Node[T]) *Node[T] {
	suc.Transplant(suc.right)
	u.key = suc.key
	return u
}

// Delete u from the tree. If u has at most one child, the child takes its
// place; otherwise the key of the successor is copied into u and the
// successor node is removed instead.
// Deleting a root with no children leaves an empty root, so trees should
// drop their root instead.
func (u *Node[T]) Delete() {
	if u.HasOneChildOrLess() {
		u.Transplant(u.AChild())
	} else {
		u.replaceWithSuccessor(u.Successor())
	}
}

// DeleteKey deletes the node holding key from the subtree, see Delete.
// Returns false if key isn't in the subtree.
// Time: O(D)
func (u *Node[T]) DeleteKey(key T, cmp DataStructures.Comparator[T]) bool {
	n := u.Search(key, cmp)
	if n == nil {
		return false
	}
	n.Delete()
	return true
}

// successorOf finds the smallest key greater than key in the subtree.
func (u *Node[T]) successorOf(key T, cmp DataStructures.Comparator[T]) (p *Node[T]) {
	for u != nil {
		if cmp(key, u.key) < 0 {
			p = u
			u = u.left
		} else {
			u = u.right
		}
	}
	return
}

// predecessorOf finds the greatest key less than key in the subtree.
func (u *Node[T]) predecessorOf(key T, cmp DataStructures.Comparator[T]) (p *Node[T]) {
	for u != nil {
		if cmp(key, u.key) <= 0 {
			u = u.left
		} else {
			p = u
			u = u.right
		}
	}
	return
}
