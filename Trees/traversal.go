package Trees

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/g-m-twostay/linkedbst/Queues"
)

// InOrder [Tree.InOrder]
// Each call starts a new traversal.
// Time: f(): amortized O(1) at each call to the returned function. Space: O(D)
func (u *LinkedBST[T]) InOrder() func() (T, bool) {
	var st []*node[T]
	for cur := u.root; cur != nil; cur = cur.l {
		st = append(st, cur)
	}
	return func() (T, bool) {
		if len(st) == 0 {
			return *new(T), false
		}
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		for next := cur.r; next != nil; next = next.l {
			st = append(st, next)
		}
		return cur.v, true
	}
}

// PreOrder [Tree.PreOrder]
// The right child is pushed before the left so that the left subtree comes first.
// Time: f(): O(1) at each call to the returned function. Space: O(D)
func (u *LinkedBST[T]) PreOrder() func() (T, bool) {
	st := arraystack.New()
	if u.root != nil {
		st.Push(u.root)
	}
	return func() (T, bool) {
		top, ok := st.Pop()
		if !ok {
			return *new(T), false
		}
		cur := top.(*node[T])
		if cur.r != nil {
			st.Push(cur.r)
		}
		if cur.l != nil {
			st.Push(cur.l)
		}
		return cur.v, true
	}
}

// PostOrder is InOrder but in post-order.
// Time: f(): amortized O(1) at each call to the returned function. Space: O(D)
func (u *LinkedBST[T]) PostOrder() func() (T, bool) {
	var st []*node[T]
	var last *node[T]
	cur := u.root
	return func() (T, bool) {
		for cur != nil || len(st) > 0 {
			if cur != nil {
				st = append(st, cur)
				cur = cur.l
				continue
			}
			top := st[len(st)-1]
			if top.r != nil && top.r != last {
				cur = top.r
				continue
			}
			st = st[:len(st)-1]
			last = top
			return top.v, true
		}
		return *new(T), false
	}
}

// LevelOrder is InOrder but level by level from the root, left to right.
// Time: f(): amortized O(1) at each call to the returned function. Space: O(n)
func (u *LinkedBST[T]) LevelOrder() func() (T, bool) {
	q := Queues.MakeArrayQueue[*node[T]](8)
	if u.root != nil {
		q.Push(u.root)
	}
	return func() (T, bool) {
		cur, err := q.Pop()
		if err != nil {
			return *new(T), false
		}
		if cur.l != nil {
			q.Push(cur.l)
		}
		if cur.r != nil {
			q.Push(cur.r)
		}
		return cur.v, true
	}
}

// Items collects the values in the default iteration order, which is PreOrder.
// Use InOrder for sorted values.
func (u *LinkedBST[T]) Items() []T {
	res := make([]T, 0, u.sz)
	next := u.PreOrder()
	for v, ok := next(); ok; v, ok = next() {
		res = append(res, v)
	}
	return res
}
