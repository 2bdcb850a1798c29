package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"testing"

	"github.com/KayakDov/DataStructures/Trees"
	"github.com/KayakDov/DataStructures/Trees/BTree"
	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
)

var (
	bAddN = 1 << 16
	bQryN = bAddN
)
var _R = rand.New(rand.NewSource(0))

type contender struct {
	name string
	mk   func() Trees.Tree[int]
}

var contenders = []contender{
	{"BSTree", func() Trees.Tree[int] { return Trees.New[int]() }},
	{"RBTree", func() Trees.Tree[int] { return Trees.NewRB[int]() }},
	{"BTree(3)", func() Trees.Tree[int] { return BTree.New[int](3) }},
	{"BTree(31)", func() Trees.Tree[int] { return BTree.New[int](31) }},
	{"BTree(255)", func() Trees.Tree[int] { return BTree.New[int](255) }},
}

func create(b *testing.B, c contender, all []int) Trees.Tree[int] {
	b.Helper()
	tree := c.mk()
	for _, v := range all {
		tree.Insert(v)
	}
	return tree
}

var __r1 bool

type operation struct {
	name  string
	bench func(c contender, all []int) func(*testing.B)
}

var operations = []operation{
	{"insert", func(c contender, all []int) func(*testing.B) {
		return func(b *testing.B) {
			for range b.N {
				create(b, c, all)
			}
		}
	}},
	{"has", func(c contender, all []int) func(*testing.B) {
		return func(b *testing.B) {
			tree := create(b, c, all)
			b.ResetTimer()
			for range b.N {
				for range bQryN {
					__r1 = tree.Has(_R.Intn(2 * bAddN))
				}
			}
		}
	}},
	{"remove", func(c contender, all []int) func(*testing.B) {
		return func(b *testing.B) {
			for range b.N {
				b.StopTimer()
				tree := create(b, c, all)
				b.StartTimer()
				for _, v := range all {
					tree.Remove(v)
				}
			}
		}
	}},
}

func main() {
	testing.Init()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	all := _R.Perm(2 * bAddN)[:bAddN]

	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.SetTitle(fmt.Sprintf("%s keys", humanize.Comma(int64(bAddN))))
	header := table.Row{"tree"}
	for _, op := range operations {
		header = append(header, op.name+" ns/key", op.name+" allocs")
	}
	tbl.AppendHeader(header)

	for _, c := range contenders {
		row := table.Row{c.name}
		for _, op := range operations {
			logger.Info("measuring", "tree", c.name, "op", op.name)
			r := testing.Benchmark(op.bench(c, all))
			perKey := r.NsPerOp() / int64(bAddN)
			logger.Info("measured", "tree", c.name, "op", op.name, "runs", r.N, "total", r.T)
			row = append(row, humanize.Comma(perKey), humanize.SIWithDigits(float64(r.AllocsPerOp()), 1, ""))
		}
		tbl.AppendRow(row)
	}
	fmt.Println(tbl.Render())
}
