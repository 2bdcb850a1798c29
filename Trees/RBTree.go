package Trees

import (
	DataStructures "github.com/KayakDov/DataStructures"
	"golang.org/x/exp/constraints"
)

// RBTree is a red-black tree with no repeated values, see Cormen chapter 13.
// Every node is red or black, the root is black, a red node never has a red
// child and every path from a node to a nil descendant has the same number
// of black nodes. The height D of the tree is at most 2*log2(n+1).
//
// Rotations move keys and colors instead of nodes: the node at the rotated
// position stays in place and a new node takes the key moving down. So a
// *Node obtained from the tree may hold a different key after a later
// Insert or Remove.
type RBTree[T any] struct {
	base[T]
}

// NewRB creates an empty RBTree ordered by the natural order of T.
func NewRB[T constraints.Ordered]() *RBTree[T] {
	return NewRBWith(DataStructures.Ordered[T]())
}

// NewRBWith creates an empty RBTree ordered by cmp.
func NewRBWith[T any](cmp DataStructures.Comparator[T]) *RBTree[T] {
	return &RBTree[T]{base[T]{cmp: cmp}}
}

func isRed[T any](n *Node[T]) bool {
	return n != nil && n.red
}

// isBlack treats nil as black.
func isBlack[T any](n *Node[T]) bool {
	return n == nil || !n.red
}

// rightRotate moves u down and its left child up. See page 313 of Cormen.
// The key and color of the left child are moved into u, and the previous
// key and color of u go into a new right child.
// Time: O(1); Space: O(1)
func (u *Node[T]) rightRotate() {
	l := u.left
	if l == nil {
		return
	}
	prevTop := &Node[T]{key: u.key, red: u.red}
	u.key, u.red = l.key, l.red
	prevTop.SetLeft(l.right)
	prevTop.SetRight(u.right)
	u.SetLeft(l.left)
	u.SetRight(prevTop)
}

// leftRotate moves u down and its right child up. See page 313 of Cormen.
// Time: O(1); Space: O(1)
func (u *Node[T]) leftRotate() {
	r := u.right
	if r == nil {
		return
	}
	prevTop := &Node[T]{key: u.key, red: u.red}
	u.key, u.red = r.key, r.red
	prevTop.SetRight(r.left)
	prevTop.SetLeft(u.left)
	u.SetRight(r.right)
	u.SetLeft(prevTop)
}

// rotate moves u down towards the given side.
func (u *Node[T]) rotate(left bool) {
	if left {
		u.leftRotate()
	} else {
		u.rightRotate()
	}
}

// rotateUp rotates u above its parent. The key of u moves into the parent's
// node and the returned node, now a child of it, holds the parent's key.
func (u *Node[T]) rotateUp() *Node[T] {
	p := u.parent
	if p == nil {
		return u
	}
	if u.IsLeft() {
		p.rightRotate()
		return p.right
	}
	p.leftRotate()
	return p.left
}

// isTriangle is true if u is a left child of a right child or a right child
// of a left child.
func (u *Node[T]) isTriangle() bool {
	if u.GrandParent() == nil {
		return false
	}
	return u.IsLeft() != u.parent.IsLeft()
}

// insertFixUp restores the red-black properties after u, a red leaf, was
// inserted.
func (u *Node[T]) insertFixUp() {
	for {
		if u.IsRoot() {
			u.red = false
			return
		}
		p := u.parent
		if !p.red {
			return
		}
		if uncle := u.Uncle(); isRed(uncle) {
			g := p.parent
			p.red, uncle.red, g.red = false, false, true
			u = g
		} else if u.isTriangle() {
			u = u.rotateUp()
		} else {
			g := p.parent
			p.red, g.red = false, true
			p.rotateUp()
			return
		}
	}
}

// fixUp is the position carrying the extra black during deletion. The
// position is the child of parent on the given side and it may be empty;
// parent==nil means the root.
type fixUp[T any] struct {
	parent *Node[T]
	left   bool
}

// deleteFixUp restores the red-black properties after a black node was
// removed from the position t.
func (t fixUp[T]) deleteFixUp(root *Node[T]) {
	for {
		var x *Node[T]
		if t.parent == nil {
			x = root
		} else {
			x = t.parent.child(t.left)
		}
		if t.parent == nil || isRed(x) {
			if x != nil {
				x.red = false
			}
			return
		}
		p := t.parent
		s := p.child(!t.left)
		if s.red {
			s.red, p.red = false, true
			p.rotate(t.left)
			// p now holds the sibling's key; the old parent moved down to our side.
			p = p.child(t.left)
			t.parent = p
			s = p.child(!t.left)
		}
		if isBlack(s.child(t.left)) && isBlack(s.child(!t.left)) {
			s.red = true
			t = fixUp[T]{p.parent, p.IsLeft()}
			if p.red || p.parent == nil {
				p.red = false
				return
			}
			continue
		}
		if isBlack(s.child(!t.left)) {
			near := s.child(t.left)
			near.red, s.red = false, true
			s.rotate(!t.left)
		}
		s.red, p.red = p.red, false
		s.child(!t.left).red = false
		p.rotate(t.left)
		return
	}
}

// Insert [Tree.Insert]
// Time: O(log n)
func (u *RBTree[T]) Insert(v T) bool {
	if u.root == nil {
		u.root = NewNode(v)
		u.size++
		return true
	}
	n, inserted := u.root.Insert(v, u.cmp)
	if inserted {
		n.insertFixUp()
		u.size++
	}
	return inserted
}

// Remove [Tree.Remove]
// Time: O(log n)
func (u *RBTree[T]) Remove(v T) bool {
	n := u.root.Search(v, u.cmp)
	if n == nil {
		return false
	}
	u.size--
	u.delete(n)
	return true
}

// delete n following Node.Delete, tracking the color leaving the tree.
func (u *RBTree[T]) delete(n *Node[T]) {
	var t fixUp[T]
	removedRed := n.red
	if n.HasOneChildOrLess() {
		if n.IsRoot() {
			if n.IsLeaf() {
				u.root = nil
			} else {
				// the root keeps its own black color.
				n.Transplant(n.AChild())
			}
			return
		}
		t = fixUp[T]{n.parent, n.IsLeft()}
		n.Transplant(n.AChild())
	} else {
		suc := n.Successor()
		removedRed = suc.red
		t = fixUp[T]{suc.parent, suc.IsLeft()}
		n.replaceWithSuccessor(suc)
	}
	if !removedRed {
		t.deleteFixUp(u.root)
	}
}

// BlackHeight of the tree, the number of black nodes on any path from the
// root down to a nil child, counting the root.
func (u *RBTree[T]) BlackHeight() (h int) {
	for n := u.root; n != nil; n = n.left {
		if !n.red {
			h++
		}
	}
	return
}

// Corrupt [Tree.Corrupt]
func (u *RBTree[T]) Corrupt() bool {
	return u.Validate() != nil
}

// Validate checks the ordering, the parent links and the red-black
// properties of the tree.
func (u *RBTree[T]) Validate() error {
	if err := u.validateBST(); err != nil {
		return err
	}
	return u.validateRB()
}
