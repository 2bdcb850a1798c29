package BTree

import (
	"slices"
	"testing"

	DataStructures "github.com/KayakDov/DataStructures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBounded_Mutation(t *testing.T) {
	b := newBounded[int](4)
	assert.Equal(t, 4, b.Cap())
	b.push(3)
	b.insertAt(0, 1)
	b.insertAt(1, 2)
	b.insertAt(3, 4)
	assert.Equal(t, []int{1, 2, 3, 4}, b.s)
	assert.True(t, b.full())
	assert.PanicsWithValue(t, OverflowError{4}, func() { b.push(5) })
	assert.PanicsWithValue(t, OverflowError{4}, func() { b.insertAt(0, 0) })

	assert.Equal(t, 2, b.removeAt(1))
	assert.Equal(t, 4, b.pop())
	assert.Equal(t, []int{1, 3}, b.s)
	// removed slots are zeroed.
	assert.Equal(t, []int{1, 3, 0, 0}, b.s[:4])

	b.appendAll(7, 8)
	assert.Equal(t, 8, b.last())
	assert.PanicsWithValue(t, OverflowError{4}, func() { b.appendAll(9) })
	b.truncate(1)
	assert.Equal(t, []int{1}, b.s)
	assert.Equal(t, []int{1, 0, 0, 0}, b.s[:4])
}

func TestBounded_Find(t *testing.T) {
	cmp := DataStructures.Ordered[int]()
	b := newBounded[int](8)
	b.appendAll(2, 4, 6, 8, 10)
	for v, want := range map[int]int{1: 0, 2: 0, 3: 1, 6: 2, 9: 4, 10: 4, 11: 5} {
		i, found := b.find(v, cmp)
		assert.Equal(t, want, i, "find %d", v)
		assert.Equal(t, v%2 == 0 && v >= 2 && v <= 10, found, "find %d", v)
	}
	empty := newBounded[int](3)
	i, found := empty.find(1, cmp)
	assert.Zero(t, i)
	assert.False(t, found)
}

func TestBounded_Split(t *testing.T) {
	b := newBounded[int](7)
	b.appendAll(1, 2, 3, 4, 5, 6, 7)
	orig := slices.Clone(b.s)
	for i := 0; i <= b.Len(); i++ {
		l, r := b.splitAt(i)
		require.Len(t, l, i)
		require.Equal(t, orig, slices.Concat(l, r))
		// the halves don't alias the sequence.
		if len(l) > 0 {
			l[0] = -1
		}
		require.Equal(t, orig, b.s)
	}
	for i := 0; i < b.Len(); i++ {
		l, pivot, r := b.splitAround(i)
		require.Equal(t, orig[i], pivot)
		require.Equal(t, orig, slices.Concat(l, []int{pivot}, r))
		if len(r) > 0 {
			r[0] = -1
		}
		require.Equal(t, orig, b.s)
	}
}
