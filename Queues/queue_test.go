package Queues

import (
	"math/rand"
	"testing"
)

var rg = *rand.New(rand.NewSource(0))

func TestArrayQueue(t *testing.T) {
	q := MakeArrayQueue[int](0)
	if !q.Empty() {
		t.Errorf("new queue isn't empty")
	}
	if _, err := q.Pop(); err == nil {
		t.Errorf("pop on empty queue didn't fail")
	}
	var want []int
	for range 10000 {
		if rg.Intn(3) == 0 && len(want) > 0 {
			v, err := q.Pop()
			if err != nil || v != want[0] {
				t.Fatalf("popped %d, %v, want %d", v, err, want[0])
			}
			want = want[1:]
		} else {
			v := rg.Int()
			q.Push(v)
			want = append(want, v)
		}
		if q.Empty() != (len(want) == 0) {
			t.Fatalf("queue emptiness is %v with %d items", q.Empty(), len(want))
		}
	}
	for _, w := range want {
		if v, err := q.Pop(); err != nil || v != w {
			t.Fatalf("popped %d, want %d", v, w)
		}
	}
	if !q.Empty() {
		t.Errorf("queue isn't empty after popping everything")
	}
}

func TestArrayQueue_GrowWrapped(t *testing.T) {
	q := MakeArrayQueue[int](4)
	for i := range 4 {
		q.Push(i)
	}
	q.Pop()
	q.Pop()
	q.Push(4)
	q.Push(5)
	//full with the items wrapped around the end, so this push resizes.
	q.Push(6)
	for i := 2; i < 7; i++ {
		if v, err := q.Pop(); err != nil || v != i {
			t.Fatalf("popped %d, want %d", v, i)
		}
	}
	if _, err := q.Pop(); err == nil {
		t.Errorf("pop on drained queue didn't fail")
	}
}
