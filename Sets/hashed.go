package Sets

import (
	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/puzpuzpuz/xsync/v3"
	"golang.org/x/exp/constraints"
)

// HaxSet is an alphadose/haxmap with empty values.
type HaxSet[E constraints.Ordered] struct {
	m *haxmap.Map[E, struct{}]
}

func NewHaxSet[E constraints.Ordered]() *HaxSet[E] {
	return &HaxSet[E]{haxmap.New[E, struct{}]()}
}

func (u *HaxSet[E]) Put(v E) {
	u.m.Set(v, struct{}{})
}

func (u *HaxSet[E]) Has(v E) bool {
	_, ok := u.m.Get(v)
	return ok
}

func (u *HaxSet[E]) Size() uint {
	return uint(u.m.Len())
}

// HashMapSet is a cornelk/hashmap with empty values.
type HashMapSet[E constraints.Ordered] struct {
	m *hashmap.Map[E, struct{}]
}

func NewHashMapSet[E constraints.Ordered]() *HashMapSet[E] {
	return &HashMapSet[E]{hashmap.New[E, struct{}]()}
}

func (u *HashMapSet[E]) Put(v E) {
	u.m.Set(v, struct{}{})
}

func (u *HashMapSet[E]) Has(v E) bool {
	_, ok := u.m.Get(v)
	return ok
}

func (u *HashMapSet[E]) Size() uint {
	return uint(u.m.Len())
}

// XSyncSet is a puzpuzpuz/xsync MapOf with empty values.
type XSyncSet[E comparable] struct {
	m *xsync.MapOf[E, struct{}]
}

func NewXSyncSet[E comparable]() *XSyncSet[E] {
	return &XSyncSet[E]{xsync.NewMapOf[E, struct{}]()}
}

func (u *XSyncSet[E]) Put(v E) {
	u.m.Store(v, struct{}{})
}

func (u *XSyncSet[E]) Has(v E) bool {
	_, ok := u.m.Load(v)
	return ok
}

func (u *XSyncSet[E]) Size() uint {
	return uint(u.m.Size())
}
