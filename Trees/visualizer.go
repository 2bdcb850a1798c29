package Trees

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

const (
	LeftBranch  = "└"
	RightBranch = "┌"
	Limb        = "──"
	Trunk       = "│   "
	Gap         = "    "
)

var (
	colorRed   = color.New(color.FgHiRed)
	colorBlack = color.New(color.FgHiWhite, color.Bold)
	colorPlain = color.New(color.Reset)
	colorLimb  = color.New(color.FgHiBlack)
)

// visualizer draws a tree sideways: the right subtree above a node, the left
// subtree below it.
type visualizer[T any] struct {
	paint func(*Node[T]) *color.Color
}

func (v visualizer[T]) visualize(root *Node[T]) string {
	if root == nil {
		return "<empty>\n"
	}
	b := &strings.Builder{}
	v.recurse(b, root.right, "", true)
	b.WriteString(v.paint(root).Sprint(fmt.Sprint(root.key)))
	b.WriteString("\n")
	v.recurse(b, root.left, "", false)
	return b.String()
}

func (v visualizer[T]) recurse(b *strings.Builder, n *Node[T], prefix string, right bool) {
	if n == nil {
		return
	}
	above, below, branch := prefix+Gap, prefix+Trunk, RightBranch
	if !right {
		above, below, branch = prefix+Trunk, prefix+Gap, LeftBranch
	}
	v.recurse(b, n.right, above, true)
	b.WriteString(colorLimb.Sprint(prefix + branch + Limb + " "))
	b.WriteString(v.paint(n).Sprint(fmt.Sprint(n.key)))
	b.WriteString("\n")
	v.recurse(b, n.left, below, false)
}

// String draws the tree.
func (u *BSTree[T]) String() string {
	return visualizer[T]{func(*Node[T]) *color.Color { return colorPlain }}.visualize(u.root)
}

// String draws the tree with red nodes in red.
func (u *RBTree[T]) String() string {
	return visualizer[T]{func(n *Node[T]) *color.Color {
		if n.red {
			return colorRed
		}
		return colorBlack
	}}.visualize(u.root)
}
