package comparisons

import (
	"math/rand"
	"testing"

	"github.com/KayakDov/DataStructures/Trees"
	"github.com/KayakDov/DataStructures/Trees/BTree"
	"github.com/cornelk/hashmap"
	"github.com/petar/GoLLRB/llrb"
	"github.com/stretchr/testify/require"
)

const (
	testOps      = 20000
	testValRange = 5000
)

var rg = rand.New(rand.NewSource(0))

func trees() map[string]Trees.Tree[int] {
	return map[string]Trees.Tree[int]{
		"BSTree":  Trees.New[int](),
		"RBTree":  Trees.NewRB[int](),
		"BTree3":  BTree.New[int](3),
		"BTree16": BTree.New[int](16),
	}
}

// GoLLRB is a left leaning red-black tree; it must agree with every tree on
// membership and order.
func TestLLRB(t *testing.T) {
	for name, tree := range trees() {
		t.Run(name, func(t *testing.T) {
			oracle := llrb.New()
			for range testOps {
				k := rg.Intn(testValRange)
				if rg.Intn(2) == 0 {
					require.Equal(t, oracle.Delete(llrb.Int(k)) != nil, tree.Remove(k))
				} else {
					require.Equal(t, !oracle.Has(llrb.Int(k)), tree.Insert(k))
					oracle.ReplaceOrInsert(llrb.Int(k))
				}
			}
			require.False(t, tree.Corrupt())
			require.Equal(t, uint(oracle.Len()), tree.Size())
			next := tree.InOrder()
			oracle.AscendGreaterOrEqual(oracle.Min(), func(i llrb.Item) bool {
				v, ok := next()
				require.True(t, ok)
				require.Equal(t, int(i.(llrb.Int)), v)
				return true
			})
			_, ok := next()
			require.False(t, ok)
		})
	}
}

// the concurrent hash map serves as a shadow set.
func TestHashMap(t *testing.T) {
	for name, tree := range trees() {
		t.Run(name, func(t *testing.T) {
			hm := hashmap.New[int, struct{}]()
			for range testOps {
				k := rg.Intn(testValRange)
				_, in := hm.Get(k)
				if rg.Intn(3) == 0 {
					require.Equal(t, in, tree.Remove(k), "remove %d", k)
					hm.Del(k)
				} else {
					require.Equal(t, !in, tree.Insert(k), "insert %d", k)
					hm.Set(k, struct{}{})
				}
			}
			require.Equal(t, hm.Len(), int(tree.Size()))
			for k := range testValRange {
				_, in := hm.Get(k)
				require.Equal(t, in, tree.Has(k), "key %d", k)
			}
		})
	}
}

func keysOf(tree Trees.Tree[int]) (keys []int) {
	next := tree.InOrder()
	for v, ok := next(); ok; v, ok = next() {
		keys = append(keys, v)
	}
	return
}

// inserting a new key and deleting it right away gives back the same keys.
func TestRoundTrip(t *testing.T) {
	for name, tree := range trees() {
		t.Run(name, func(t *testing.T) {
			for range 500 {
				tree.Insert(rg.Intn(testValRange))
			}
			before := keysOf(tree)
			for range 500 {
				k := rg.Intn(testValRange)
				if tree.Has(k) {
					continue
				}
				require.True(t, tree.Insert(k))
				require.True(t, tree.Remove(k))
				require.Equal(t, before, keysOf(tree))
			}
			require.False(t, tree.Corrupt())
		})
	}
}
