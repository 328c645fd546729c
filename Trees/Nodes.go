package Trees

import (
	"math/bits"
	"sort"

	"golang.org/x/exp/constraints"
)

// A node in the LinkedBST.
// Every node is owned by exactly one edge: either LinkedBST.root or the l or r
// of its parent. Nodes are never shared.
type node[T any] struct {
	v    T
	l, r *node[T]
}

// maxEdge returns the edge that holds the maximum node in the subtree at *e.
// *e mustn't be nil. The returned node has no right child.
// Time: O(D); Space: O(1)
func maxEdge[T any](e **node[T]) **node[T] {
	for (*e).r != nil {
		e = &(*e).r
	}
	return e
}

// build a subtree of minimum height from the sorted slice s and return its root.
// The middle element is len(s)/2, moved left to the first of its equal values
// so that the left subtree stays strictly smaller.
// Time: O(n log n) worst case with heavy duplicates, O(n) otherwise.
// Space: O(log n) explicit stack.
func build[T constraints.Ordered](s []T) *node[T] {
	type span struct {
		lo, hi int
		e      **node[T]
	}
	var root *node[T]
	st := make([]span, 0, bits.Len(uint(len(s)))+1)
	st = append(st, span{0, len(s), &root})
	for len(st) > 0 {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		if top.lo >= top.hi {
			continue
		}
		mid := top.lo + (top.hi-top.lo)>>1
		if pv := s[mid]; mid > top.lo && s[mid-1] == pv {
			mid = top.lo + sort.Search(mid-top.lo, func(i int) bool { return s[top.lo+i] >= pv })
		}
		n := &node[T]{v: s[mid]}
		*top.e = n
		st = append(st, span{mid + 1, top.hi, &n.r}, span{top.lo, mid, &n.l})
	}
	return root
}
