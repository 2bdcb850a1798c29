package BTree

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsorted is returned when keys aren't strictly increasing in order.
	ErrUnsorted = errors.New("keys out of order")
	// ErrOccupancy is returned when a node holds too few or too many keys.
	ErrOccupancy = errors.New("bad node occupancy")
	// ErrFanout is returned when an internal node with k keys doesn't have
	// k+1 children.
	ErrFanout = errors.New("bad fanout")
	// ErrLeafDepth is returned when leaves are at different depths.
	ErrLeafDepth = errors.New("leaves at different depths")
	// ErrSize is returned when the recorded size differs from the key count.
	ErrSize = errors.New("size mismatch")
)

type validator[T any] struct {
	t         *BTree[T]
	leafDepth int
	count     uint
	prev      *T
}

// Validate checks the ordering, occupancy, fanout and leaf depth of every
// node and the recorded size.
// Time: O(n)
func (u *BTree[T]) Validate() error {
	if u.root == nil {
		if u.size != 0 {
			return fmt.Errorf("%w: empty tree with size %d", ErrSize, u.size)
		}
		return nil
	}
	v := &validator[T]{t: u, leafDepth: -1}
	if err := v.check(u.root, 0); err != nil {
		return err
	}
	if v.count != u.size {
		return fmt.Errorf("%w: counted %d, recorded %d", ErrSize, v.count, u.size)
	}
	return nil
}

// check walks the subtree in order.
func (v *validator[T]) check(n *node[T], depth int) error {
	k := n.keys.Len()
	lo := v.t.MinKeys()
	if n == v.t.root {
		lo = 1
	}
	if k < lo || k > v.t.capacity {
		return fmt.Errorf("%w: %d keys at depth %d", ErrOccupancy, k, depth)
	}
	if n.leaf() {
		if v.leafDepth == -1 {
			v.leafDepth = depth
		} else if v.leafDepth != depth {
			return fmt.Errorf("%w: %d and %d", ErrLeafDepth, v.leafDepth, depth)
		}
	} else if c := n.children.Len(); c != k+1 {
		return fmt.Errorf("%w: %d keys with %d children at depth %d", ErrFanout, k, c, depth)
	}
	for i := 0; i <= k; i++ {
		if !n.leaf() {
			if err := v.check(n.children.at(i), depth+1); err != nil {
				return err
			}
		}
		if i == k {
			break
		}
		key := n.keys.at(i)
		if v.prev != nil && v.t.cmp(*v.prev, key) >= 0 {
			return fmt.Errorf("%w: %v before %v", ErrUnsorted, *v.prev, key)
		}
		v.prev = &key
		v.count++
	}
	return nil
}
