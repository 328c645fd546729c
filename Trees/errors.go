package Trees

import (
	"fmt"

	"github.com/ansel1/merry"
)

// ErrItemNotFound is returned by LinkedBST.Remove when the value isn't stored.
// The missing value is attached to the returned error, see ItemOf.
var ErrItemNotFound = merry.New("item not in tree")

const itemKey = "item"

func notFound[T any](v T) error {
	return merry.Here(ErrItemNotFound).WithValue(itemKey, v)
}

// ItemOf returns the value attached to an error derived from ErrItemNotFound.
func ItemOf[T any](err error) (T, bool) {
	v, ok := merry.Value(err, itemKey).(T)
	return v, ok
}

// InvalidSliceError is the panic value of From when safe is true and the
// given slice isn't sorted in ascending order.
type InvalidSliceError[T any] struct {
	Index      int //Index of Next in the slice.
	Prev, Next T
}

func (e InvalidSliceError[T]) Error() string {
	return fmt.Sprintf("slice not sorted at %d: %v > %v", e.Index, e.Prev, e.Next)
}
