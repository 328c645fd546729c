// Package Trees implements a link-based binary search tree that is only
// rebalanced on request.
package Trees

// Tree represents an ordered tree like structure implemented using nodes.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined. For example, if calling Minimum on
// an empty tree, the return value will be (x T, false bool). In this
// case x is the zero value of T and shouldn't be used.
// Duplicated values are allowed; a value equal to a node goes to its right.
// Unless noted otherwise, methods are implemented iteratively.
type Tree[T any] interface {
	//Add v to the Tree. Always succeeds.
	Add(v T)
	//Remove one node holding v from the Tree, returning the stored value.
	//The error is ErrItemNotFound if v isn't in the tree.
	Remove(v T) (T, error)
	//Find the stored value equal to v.
	Find(v T) (T, bool)
	//Has element v.
	Has(v T) bool
	//Replace the stored value equal to v with nv in place, returning the old value.
	//The caller must make sure nv keeps the ordering.
	Replace(v, nv T) (T, bool)
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Predecessor returns the greatest element less than v.
	Predecessor(v T) (T, bool)
	//Successor returns the smallest element greater than v.
	Successor(v T) (T, bool)
	//RangeFind returns the elements in [low, high] in ascending order.
	RangeFind(low, high T) []T
	//Height of the tree. -1 for an empty tree.
	Height() int
	//IsBalanced reports whether the height is below the threshold for Size().
	IsBalanced() bool
	//Rebalance the tree to the minimum height.
	Rebalance()
	//Size of the tree.
	Size() uint
	//IsEmpty is Size()==0.
	IsEmpty() bool
	//Clear the tree.
	Clear()
	//InOrder returns a closure function f acting like an iterator. f
	//gives values in the in-order traversal of the tree.
	//Calling f is like calling "Next()" of iterators: val, valid=f()
	//val is meaningful only if valid is true. When valid==false,
	//then f is exhausted. valid can't turn true after it first became false.
	//The tree must not be modified during the iteration of f.
	InOrder() func() (T, bool)
	//PreOrder is InOrder but in pre-order. It's the default iteration order.
	PreOrder() func() (T, bool)
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node violates the ordering or the size counter is off.
	//This is to be distinguished from whether the tree is balanced or not.
	Corrupt() bool
}
