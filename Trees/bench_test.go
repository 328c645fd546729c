package Trees

import (
	"slices"
	"testing"

	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

var (
	bAddN = 1 << 16
	bQryN = bAddN / 2
)

var sideEff bool

func randomInts(n int) []int {
	all := make([]int, n)
	for i := range all {
		all[i] = rg.Int()
	}
	return all
}

func BenchmarkLinkedBST_Add(b *testing.B) {
	all := randomInts(bAddN)
	b.ResetTimer()
	for range b.N {
		tree := New[int]()
		for _, v := range all {
			tree.Add(v)
		}
	}
}

func BenchmarkFrom(b *testing.B) {
	all := randomInts(bAddN)
	slices.Sort(all)
	b.ResetTimer()
	for range b.N {
		From(all, false)
	}
}

func BenchmarkLinkedBST_Has(b *testing.B) {
	all := randomInts(bAddN)
	tree := New(all...)
	b.Logf("height: %d, size: %d", tree.Height(), tree.Size())
	b.ResetTimer()
	for range b.N {
		for _, v := range all[:bQryN] {
			sideEff = tree.Has(v)
		}
	}
}

func BenchmarkLinkedBST_HasRebalanced(b *testing.B) {
	all := randomInts(bAddN)
	tree := New(all...)
	tree.Rebalance()
	b.ResetTimer()
	for range b.N {
		for _, v := range all[:bQryN] {
			sideEff = tree.Has(v)
		}
	}
}

func BenchmarkLinkedBST_Remove(b *testing.B) {
	all := randomInts(bAddN)
	b.ResetTimer()
	for range b.N {
		b.StopTimer()
		tree := New(all...)
		b.StartTimer()
		for _, v := range all {
			tree.Remove(v)
		}
	}
}

func BenchmarkBTree_Has(b *testing.B) {
	all := randomInts(bAddN)
	tree := btree.NewOrderedG[int](32)
	for _, v := range all {
		tree.ReplaceOrInsert(v)
	}
	b.ResetTimer()
	for range b.N {
		for _, v := range all[:bQryN] {
			sideEff = tree.Has(v)
		}
	}
}

func BenchmarkLLRB_Has(b *testing.B) {
	all := randomInts(bAddN)
	tree := llrb.New()
	for _, v := range all {
		tree.ReplaceOrInsert(llrb.Int(v))
	}
	b.ResetTimer()
	for range b.N {
		for _, v := range all[:bQryN] {
			sideEff = tree.Has(llrb.Int(v))
		}
	}
}
