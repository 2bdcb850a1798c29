package BTree

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

const (
	LeftBranch   = "┌"
	RightBranch  = "└"
	Branch       = "├"
	Limb         = "──"
	Trunk        = "│    "
	LastPosition = -1
)

var (
	colorEven = color.New(color.FgHiYellow)
	colorOdd  = color.New(color.FgHiCyan)
)

// visualizer draws the tree sideways, smallest key on top. Each level is
// indented once more than its parent and levels alternate colors.
type visualizer[T any] struct {
	t *BTree[T]
}

func (v *visualizer[T]) visualize() string {
	if v.t.root == nil {
		return "<empty>\n"
	}
	b := &strings.Builder{}
	v.recurse(b, v.t.root, 0, LastPosition)
	return b.String()
}

func levelColor(level int) *color.Color {
	if level%2 == 0 {
		return colorEven
	}
	return colorOdd
}

func (v *visualizer[T]) recurse(b *strings.Builder, n *node[T], level int, parentPos int) {
	c := levelColor(level)
	k := n.keys.Len()
	for i := 0; i < k; i++ {
		if !n.leaf() {
			v.recurse(b, n.children.at(i), level+1, i)
		}
		for l := 0; l < level; l++ {
			b.WriteString(levelColor(l).Sprint(Trunk))
		}
		branch := Branch
		if i == 0 && parentPos == 0 {
			branch = LeftBranch
		} else if i == k-1 && parentPos == LastPosition {
			branch = RightBranch
		}
		b.WriteString(c.Sprint(branch + Limb + " "))
		b.WriteString(c.Sprint(fmt.Sprint(n.keys.at(i))))
		b.WriteString("\n")
	}
	if !n.leaf() {
		v.recurse(b, n.children.last(), level+1, LastPosition)
	}
}

// String draws the tree.
func (u *BTree[T]) String() string {
	v := &visualizer[T]{u}
	return v.visualize()
}
