package Queues

import (
	"math/rand"
	"slices"
	"testing"

	DataStructures "github.com/KayakDov/DataStructures"
	"github.com/emirpasic/gods/trees/binaryheap"
	"github.com/emirpasic/gods/utils"
	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rg = rand.New(rand.NewSource(0))

func TestPriorityQueue_Order(t *testing.T) {
	q := NewPriorityQueue[int]()
	for _, v := range []int{3, 5, 1, 7, -5} {
		q.Push(v)
		require.True(t, NewHeap(q.Items(), DataStructures.Ordered[int]()).IsHeap())
	}
	assert.Equal(t, 7, q.Peek())
	assert.Equal(t, uint(5), q.Size())
	var got []int
	for !q.Empty() {
		v, err := q.Pop()
		require.NoError(t, err)
		got = append(got, v)
	}
	assert.Equal(t, []int{7, 5, 3, 1, -5}, got)

	_, err := q.Pop()
	var empty *EmptyQueueError
	assert.ErrorAs(t, err, &empty)
	assert.Zero(t, q.Peek())
}

func TestPriorityQueue_IncreaseKey(t *testing.T) {
	q := PriorityQueueOf([]int{4, 1, 3, 2, 16, 9, 10, 14, 8, 7}, DataStructures.Ordered[int]())
	require.Equal(t, 16, q.Peek())
	i := slices.Index(q.Items(), 1)
	require.NoError(t, q.IncreaseKey(i, 15))
	cmp := DataStructures.Ordered[int]()
	assert.True(t, NewHeap(q.Items(), cmp).IsHeap())
	var sk *SmallerKeyError
	assert.ErrorAs(t, q.IncreaseKey(0, 0), &sk)

	require.NoError(t, q.IncreaseKey(slices.Index(q.Items(), 15), 20))
	assert.Equal(t, 20, q.Peek())
}

// slots freed by Pop are still in the backing slice but aren't in the queue.
func TestPriorityQueue_IncreaseKeyRange(t *testing.T) {
	q := NewPriorityQueue[int]()
	for _, v := range []int{3, 5, 1, 7, -5} {
		q.Push(v)
	}
	q.Pop()
	q.Pop()
	var oor *IndexOutOfRangeError
	for _, i := range []int{-1, 3, 4, 5} {
		require.ErrorAs(t, q.IncreaseKey(i, 100), &oor, "index %d", i)
		assert.Equal(t, i, oor.Index)
		assert.Equal(t, 3, oor.Size)
	}
	assert.Equal(t, uint(3), q.Size())
	var got []int
	for !q.Empty() {
		v, _ := q.Pop()
		got = append(got, v)
	}
	assert.Equal(t, []int{3, 1, -5}, got)
}

// the binary heap of gods, reversed into a max-heap, serves as the oracle.
func TestPriorityQueue_Gods(t *testing.T) {
	q := NewPriorityQueueWith(DataStructures.Ordered[string]())
	oracle := binaryheap.NewWith(func(a, b interface{}) int {
		return -utils.StringComparator(a, b)
	})
	for range 2000 {
		if rg.Intn(3) == 0 {
			want, ok := oracle.Pop()
			got, err := q.Pop()
			require.Equal(t, ok, err == nil)
			if ok {
				require.Equal(t, want.(string), got)
			}
		} else {
			w := faker.Word()
			q.Push(w)
			oracle.Push(w)
		}
		require.Equal(t, uint(oracle.Size()), q.Size())
	}
	for !oracle.Empty() {
		want, _ := oracle.Pop()
		got, err := q.Pop()
		require.NoError(t, err)
		require.Equal(t, want.(string), got)
	}
	assert.True(t, q.Empty())
}

func TestHeap(t *testing.T) {
	s := []int{5, 1, 8, -7, 23}
	h := NewHeap(s, DataStructures.Ordered[int]())
	assert.Equal(t, 5, h.Len())
	assert.False(t, h.IsHeap())
	h.BuildMaxHeap()
	assert.True(t, h.IsHeap())
	assert.Equal(t, 23, s[0])

	h.Sort()
	assert.Equal(t, []int{-7, 1, 5, 8, 23}, s)
	assert.Equal(t, 5, h.Len())

	// a sorted slice is a heap under the reversed order.
	assert.True(t, NewHeap(s, DataStructures.Reverse(DataStructures.Ordered[int]())).IsHeap())
}

func TestHeapSort(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 10, 1000} {
		s := make([]int, n)
		for i := range s {
			s[i] = rg.Intn(100)
		}
		want := slices.Clone(s)
		slices.Sort(want)
		HeapSort(s)
		assert.Equal(t, want, s, "length %d", n)
	}
	words := []string{"pear", "apple", "fig", "kiwi", "apple"}
	HeapSort(words)
	assert.Equal(t, []string{"apple", "apple", "fig", "kiwi", "pear"}, words)
}

func TestArrayQueue(t *testing.T) {
	q := NewArrayQueue[int](0)
	_, err := q.Pop()
	var empty *EmptyQueueError
	require.ErrorAs(t, err, &empty)

	pushed, popped := 0, 0
	for range 1000 {
		// push more than we pop so the ring wraps and grows.
		for range rg.Intn(3) + 1 {
			q.Push(pushed)
			pushed++
		}
		if rg.Intn(2) == 0 {
			require.Equal(t, popped, q.Peek())
			v, err := q.Pop()
			require.NoError(t, err)
			require.Equal(t, popped, v)
			popped++
		}
		require.Equal(t, uint(pushed-popped), q.Size())
	}
	for !q.Empty() {
		v, _ := q.Pop()
		require.Equal(t, popped, v)
		popped++
	}
	require.Equal(t, pushed, popped)
	q.Push(1)
	q.Push(2)
	q.Shrink()
	assert.Equal(t, uint(2), q.Size())
	v, _ := q.Pop()
	assert.Equal(t, 1, v)
	q.Clear()
	assert.True(t, q.Empty())
	assert.Zero(t, q.Peek())
}
