// Package Sets wraps ordered and hashed collections from several libraries
// behind one interface so lookups can be compared against Trees.LinkedBST.
package Sets

import (
	"cmp"

	"github.com/g-m-twostay/linkedbst/Trees"
	"golang.org/x/exp/constraints"
)

// Set of elements of type E. Whether Put keeps repeated elements depends on
// the implementation.
type Set[E any] interface {
	Put(E)
	Has(E) bool
	Size() uint
}

// SliceSet is a plain list searched linearly. Put always appends.
type SliceSet[E comparable] struct {
	vs []E
}

func NewSliceSet[E comparable](hint int) *SliceSet[E] {
	return &SliceSet[E]{make([]E, 0, hint)}
}

func (u *SliceSet[E]) Put(v E) {
	u.vs = append(u.vs, v)
}

// Has scans the whole list.
// Time: O(n)
func (u *SliceSet[E]) Has(v E) bool {
	for _, x := range u.vs {
		if x == v {
			return true
		}
	}
	return false
}

func (u *SliceSet[E]) Size() uint {
	return uint(len(u.vs))
}

// BSTSet is a Trees.LinkedBST used as a Set. Put keeps repeated elements.
type BSTSet[E constraints.Ordered] struct {
	*Trees.LinkedBST[E]
}

func NewBSTSet[E constraints.Ordered]() BSTSet[E] {
	return BSTSet[E]{Trees.New[E]()}
}

func (u BSTSet[E]) Put(v E) {
	u.Add(v)
}

// compare is a gods utils.Comparator for E.
func compare[E constraints.Ordered](a, b interface{}) int {
	return cmp.Compare(a.(E), b.(E))
}
