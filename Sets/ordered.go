package Sets

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
	"golang.org/x/exp/constraints"
)

// BTreeSet is a google/btree B-tree of the given degree.
type BTreeSet[E constraints.Ordered] struct {
	t *btree.BTreeG[E]
}

func NewBTreeSet[E constraints.Ordered](degree int) *BTreeSet[E] {
	return &BTreeSet[E]{btree.NewOrderedG[E](degree)}
}

func (u *BTreeSet[E]) Put(v E) {
	u.t.ReplaceOrInsert(v)
}

func (u *BTreeSet[E]) Has(v E) bool {
	return u.t.Has(v)
}

func (u *BTreeSet[E]) Size() uint {
	return uint(u.t.Len())
}

// llrbItem adapts E to llrb.Item.
type llrbItem[E constraints.Ordered] struct {
	v E
}

func (a llrbItem[E]) Less(than llrb.Item) bool {
	return a.v < than.(llrbItem[E]).v
}

// LLRBSet is a GoLLRB left-leaning red-black tree.
type LLRBSet[E constraints.Ordered] struct {
	t *llrb.LLRB
}

func NewLLRBSet[E constraints.Ordered]() *LLRBSet[E] {
	return &LLRBSet[E]{llrb.New()}
}

func (u *LLRBSet[E]) Put(v E) {
	u.t.ReplaceOrInsert(llrbItem[E]{v})
}

func (u *LLRBSet[E]) Has(v E) bool {
	return u.t.Has(llrbItem[E]{v})
}

func (u *LLRBSet[E]) Size() uint {
	return uint(u.t.Len())
}

// GodsSet is a gods treeset, a red-black tree of boxed values.
type GodsSet[E constraints.Ordered] struct {
	s *treeset.Set
}

func NewGodsSet[E constraints.Ordered]() *GodsSet[E] {
	return &GodsSet[E]{treeset.NewWith(compare[E])}
}

func (u *GodsSet[E]) Put(v E) {
	u.s.Add(v)
}

func (u *GodsSet[E]) Has(v E) bool {
	return u.s.Contains(v)
}

func (u *GodsSet[E]) Size() uint {
	return uint(u.s.Size())
}
