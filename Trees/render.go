package Trees

import (
	"fmt"
	"strings"

	"github.com/xlab/treeprint"
)

// String returns the tree rotated 90 degrees counterclockwise: the right
// subtree is printed above a node and the left below it, each value on its
// own line prefixed by "| " once per level of depth.
// Time: O(n); Space: O(D)
func (u *LinkedBST[T]) String() string {
	type frame struct {
		n *node[T]
		d int
	}
	var sb strings.Builder
	var st []frame
	cur, d := u.root, 0
	for cur != nil || len(st) > 0 {
		for ; cur != nil; cur, d = cur.r, d+1 {
			st = append(st, frame{cur, d})
		}
		top := st[len(st)-1]
		st = st[:len(st)-1]
		sb.WriteString(strings.Repeat("| ", top.d))
		fmt.Fprintln(&sb, top.n.v)
		cur, d = top.n.l, top.d+1
	}
	return sb.String()
}

// Diagram returns the tree drawn from the root down, with the children of a
// node tagged [L] and [R]. Recursive.
func (u *LinkedBST[T]) Diagram() string {
	if u.root == nil {
		return treeprint.New().String()
	}
	tp := treeprint.NewWithRoot(u.root.v)
	addBranches(tp, u.root)
	return tp.String()
}

func addBranches[T any](tp treeprint.Tree, n *node[T]) {
	if n.l != nil {
		addBranches(tp.AddMetaBranch("L", n.l.v), n.l)
	}
	if n.r != nil {
		addBranches(tp.AddMetaBranch("R", n.r.v), n.r)
	}
}
