package Trees

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrUnordered is returned when the in-order walk isn't strictly increasing.
	ErrUnordered = errors.New("keys out of order")
	// ErrParentLink is returned when a child doesn't point back to its parent.
	ErrParentLink = errors.New("broken parent link")
	// ErrSize is returned when the recorded size differs from the node count.
	ErrSize = errors.New("size mismatch")
	// ErrRedRoot is returned when the root of a RBTree is red.
	ErrRedRoot = errors.New("red root")
	// ErrRedRed is returned when a red node has a red child.
	ErrRedRed = errors.New("red node with red child")
	// ErrBlackHeight is returned when two paths have different black heights.
	ErrBlackHeight = errors.New("unequal black height")
	// ErrTooTall is returned when a RBTree is higher than 2*log2(n+1).
	ErrTooTall = errors.New("tree too tall")
)

func (u *base[T]) validateBST() error {
	if u.root == nil {
		if u.size != 0 {
			return fmt.Errorf("%w: empty tree with size %d", ErrSize, u.size)
		}
		return nil
	}
	if u.root.parent != nil {
		return fmt.Errorf("%w: root has a parent", ErrParentLink)
	}
	var (
		err   error
		prev  *Node[T]
		count uint
	)
	u.root.Range(func(n *Node[T]) bool {
		count++
		if prev != nil && u.cmp(prev.key, n.key) >= 0 {
			err = fmt.Errorf("%w: %v before %v", ErrUnordered, prev.key, n.key)
			return false
		}
		if (n.left != nil && n.left.parent != n) || (n.right != nil && n.right.parent != n) {
			err = fmt.Errorf("%w: below %v", ErrParentLink, n.key)
			return false
		}
		prev = n
		return true
	})
	if err == nil && count != u.size {
		err = fmt.Errorf("%w: counted %d, recorded %d", ErrSize, count, u.size)
	}
	return err
}

func (u *base[T]) validateRB() error {
	if u.root == nil {
		return nil
	}
	if u.root.red {
		return ErrRedRoot
	}
	if _, err := blackHeight(u.root); err != nil {
		return err
	}
	if limit := 2 * math.Log2(float64(u.size)+1); float64(u.root.Height()) > limit {
		return fmt.Errorf("%w: height %d for %d keys", ErrTooTall, u.root.Height(), u.size)
	}
	return nil
}

// blackHeight of the subtree rooting at n, counting n and excluding nil.
func blackHeight[T any](n *Node[T]) (int, error) {
	if n == nil {
		return 0, nil
	}
	if n.red && (isRed(n.left) || isRed(n.right)) {
		return 0, fmt.Errorf("%w: at %v", ErrRedRed, n.key)
	}
	l, err := blackHeight(n.left)
	if err != nil {
		return 0, err
	}
	r, err := blackHeight(n.right)
	if err != nil {
		return 0, err
	}
	if l != r {
		return 0, fmt.Errorf("%w: %d and %d below %v", ErrBlackHeight, l, r, n.key)
	}
	if !n.red {
		l++
	}
	return l, nil
}
