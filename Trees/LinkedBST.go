package Trees

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// LinkedBST is a binary search tree built from linked nodes. It never
// rebalances by itself: the shape depends on the insertion order until
// Rebalance is called. Values equal to a node are stored in its right
// subtree, so repeated values are kept.
// The height D of the tree is O(n) in the worst case, e.g. after inserting
// sorted values, and floor(log2(n)) right after Rebalance.
// The zero value is an empty tree ready to use.
// LinkedBST isn't safe for concurrent use.
type LinkedBST[T constraints.Ordered] struct {
	root *node[T]
	sz   uint
}

var _ Tree[int] = (*LinkedBST[int])(nil)

// New returns a LinkedBST holding items, added one by one in the given order.
// Time: O(n*D)
func New[T constraints.Ordered](items ...T) *LinkedBST[T] {
	u := new(LinkedBST[T])
	for _, v := range items {
		u.Add(v)
	}
	return u
}

// From builds a LinkedBST of minimum height from the given slice, which must
// be sorted in ascending order. This is faster than calling Add for each value.
// If safe==true, the order is checked first and From panics with
// InvalidSliceError if it's broken. Otherwise, it's up to the user to ensure
// the order, or the tree will be corrupt.
// Time: O(n)
func From[T constraints.Ordered](sli []T, safe bool) *LinkedBST[T] {
	if safe {
		for i := 1; i < len(sli); i++ {
			if sli[i] < sli[i-1] {
				panic(InvalidSliceError[T]{i, sli[i-1], sli[i]})
			}
		}
	}
	return &LinkedBST[T]{build(sli), uint(len(sli))}
}

// Size [Tree.Size]
// Time: O(1); Space: O(1)
func (u *LinkedBST[T]) Size() uint {
	return u.sz
}

// IsEmpty [Tree.IsEmpty]
// Time: O(1); Space: O(1)
func (u *LinkedBST[T]) IsEmpty() bool {
	return u.sz == 0
}

// Clear [Tree.Clear]
// Time: O(1); Space: O(1)
func (u *LinkedBST[T]) Clear() {
	u.root, u.sz = nil, 0
}

// Add [Tree.Add]
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Add(v T) {
	e := &u.root
	for *e != nil {
		if v < (*e).v {
			e = &(*e).l
		} else {
			e = &(*e).r
		}
	}
	*e = &node[T]{v: v}
	u.sz++
}

// Find [Tree.Find]
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Find(v T) (T, bool) {
	for cur := u.root; cur != nil; {
		if v == cur.v {
			return cur.v, true
		} else if v < cur.v {
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	return *new(T), false
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Has(v T) bool {
	_, ok := u.Find(v)
	return ok
}

// Remove [Tree.Remove]
// The node holding v is unlinked by reassigning the edge that owns it. If it
// has both children, the maximum of its left subtree is hoisted into it and
// that maximum node is unlinked instead. When the left subtree holds repeated
// copies of its maximum, the minimum of the right subtree is used.
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Remove(v T) (T, error) {
	e := &u.root
	for *e != nil && (*e).v != v {
		if v < (*e).v {
			e = &(*e).l
		} else {
			e = &(*e).r
		}
	}
	cur := *e
	if cur == nil {
		return *new(T), notFound(v)
	}
	removed := cur.v
	if cur.l != nil && cur.r != nil {
		m, p := &cur.l, cur
		for (*m).r != nil {
			p, m = *m, &(*m).r
		}
		if p != cur && p.v == (*m).v {
			//another copy of the maximum would stay on the left, so the minimum of the right subtree is hoisted.
			m = &cur.r
			for (*m).l != nil {
				m = &(*m).l
			}
			cur.v = (*m).v
			*m = (*m).r
		} else {
			cur.v = (*m).v
			*m = (*m).l
		}
	} else if cur.l == nil {
		*e = cur.r
	} else {
		*e = cur.l
	}
	u.sz--
	return removed, nil
}

// Replace [Tree.Replace]
// The structure isn't changed and the ordering isn't checked.
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Replace(v, nv T) (T, bool) {
	for cur := u.root; cur != nil; {
		if cur.v == v {
			old := cur.v
			cur.v = nv
			return old, true
		} else if v < cur.v {
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	return *new(T), false
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Minimum() (T, bool) {
	if cur := u.root; cur == nil {
		return *new(T), false
	} else {
		for cur.l != nil {
			cur = cur.l
		}
		return cur.v, true
	}
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Maximum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return (*maxEdge(&u.root)).v, true
}

// Predecessor [Tree.Predecessor]
// v doesn't need to be in the tree. Nodes equal to v are treated as greater,
// so all copies of v are skipped.
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Predecessor(v T) (T, bool) {
	var p *node[T]
	for cur := u.root; cur != nil; {
		if v <= cur.v {
			cur = cur.l
		} else {
			p = cur
			cur = cur.r
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}

// Successor [Tree.Successor]
// v doesn't need to be in the tree. Nodes equal to v are treated as smaller,
// so all copies of v are skipped.
// Time: O(D); Space: O(1)
func (u *LinkedBST[T]) Successor(v T) (T, bool) {
	var p *node[T]
	for cur := u.root; cur != nil; {
		if v < cur.v {
			p = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}

// RangeFind [Tree.RangeFind]
// Subtrees entirely outside [low, high] aren't visited.
// Time: O(D+k); Space: O(D)
func (u *LinkedBST[T]) RangeFind(low, high T) []T {
	var res []T
	var st []*node[T]
	for cur := u.root; ; {
		for cur != nil {
			if cur.v < low { //the left subtree is smaller still.
				cur = cur.r
			} else {
				st = append(st, cur)
				cur = cur.l
			}
		}
		if len(st) == 0 {
			break
		}
		cur, st = st[len(st)-1], st[:len(st)-1]
		if high < cur.v { //everything after it in order is at least cur.v.
			break
		}
		res = append(res, cur.v)
		cur = cur.r
	}
	return res
}

// Height [Tree.Height]
// Time: O(n); Space: O(D)
func (u *LinkedBST[T]) Height() int {
	type frame struct {
		n *node[T]
		d int
	}
	h := -1
	var st []frame
	if u.root != nil {
		st = append(st, frame{u.root, 0})
	}
	for len(st) > 0 {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		h = max(h, top.d)
		if top.n.l != nil {
			st = append(st, frame{top.n.l, top.d + 1})
		}
		if top.n.r != nil {
			st = append(st, frame{top.n.r, top.d + 1})
		}
	}
	return h
}

// IsBalanced [Tree.IsBalanced]
// A tree with at least 2 elements is balanced when Height() < floor(log2(Size()-1))+1.
// Trees with 0 or 1 element are always balanced. Note that by this threshold a
// 2 element tree is never balanced.
// Time: O(n); Space: O(D)
func (u *LinkedBST[T]) IsBalanced() bool {
	if u.sz <= 1 {
		return true
	}
	return u.Height() < bits.Len(u.sz-1)
}

// Rebalance [Tree.Rebalance]
// The tree is rebuilt from its sorted values like From, giving a height of
// floor(log2(n)) when there are no repeated values. Repeated values stay on the
// right of each other, so k copies of a value add up to about 2k levels.
// Time: O(n); Space: O(n)
func (u *LinkedBST[T]) Rebalance() {
	sorted := make([]T, 0, u.sz)
	next := u.InOrder()
	for v, ok := next(); ok; v, ok = next() {
		sorted = append(sorted, v)
	}
	u.root = build(sorted)
}

// Corrupt [Tree.Corrupt]
// Time: O(n); Space: O(D)
func (u *LinkedBST[T]) Corrupt() bool {
	type frame struct {
		n            *node[T]
		lo, hi       T
		hasLo, hasHi bool
	}
	var cnt uint
	var st []frame
	if u.root != nil {
		st = append(st, frame{n: u.root})
	}
	for len(st) > 0 {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		if (top.hasLo && top.n.v < top.lo) || (top.hasHi && !(top.n.v < top.hi)) {
			return true
		}
		cnt++
		if top.n.l != nil {
			st = append(st, frame{top.n.l, top.lo, top.n.v, top.hasLo, true})
		}
		if top.n.r != nil {
			st = append(st, frame{top.n.r, top.n.v, top.hi, true, top.hasHi})
		}
	}
	return cnt != u.sz
}
