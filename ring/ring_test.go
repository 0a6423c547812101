package ring

import "testing"

func TestPushEvictsHeadWhenFull(t *testing.T) {
	b := New[int](3)
	for i := 1; i <= 5; i++ {
		b.Push(i)
	}
	if got, want := b.Len(), 3; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
	got := b.Slice()
	want := []int{3, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("Slice() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Slice() = %v, want %v", got, want)
		}
	}
}

func TestWithEvictFuncCalledOnEviction(t *testing.T) {
	var evicted []int
	b := New[int](2).WithEvictFunc(func(v int) { evicted = append(evicted, v) })
	b.Push(1)
	b.Push(2)
	b.Push(3)
	if len(evicted) != 1 || evicted[0] != 1 {
		t.Fatalf("evicted = %v, want [1]", evicted)
	}
}

func TestNewFromSliceRetainsTail(t *testing.T) {
	b := NewFromSlice(3, []int{1, 2, 3, 4, 5})
	want := []int{3, 4, 5}
	got := b.Slice()
	if len(got) != len(want) {
		t.Fatalf("Slice() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Slice() = %v, want %v", got, want)
		}
	}
}

func TestPopFrontAndPopBack(t *testing.T) {
	b := NewFromSlice(4, []int{1, 2, 3})
	front, ok := b.PopFront()
	if !ok || front != 1 {
		t.Fatalf("PopFront() = %d, %v, want 1, true", front, ok)
	}
	back, ok := b.PopBack()
	if !ok || back != 3 {
		t.Fatalf("PopBack() = %d, %v, want 3, true", back, ok)
	}
	if got, want := b.Len(), 1; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
}

func TestGetOutOfRange(t *testing.T) {
	b := NewFromSlice(2, []int{1, 2})
	if _, ok := b.Get(-1); ok {
		t.Fatal("Get(-1) returned ok=true")
	}
	if _, ok := b.Get(2); ok {
		t.Fatal("Get(2) returned ok=true")
	}
	if v, ok := b.Get(1); !ok || v != 2 {
		t.Fatalf("Get(1) = %d, %v, want 2, true", v, ok)
	}
}

func TestEmptyPopReturnsFalse(t *testing.T) {
	b := New[int](2)
	if _, ok := b.PopFront(); ok {
		t.Fatal("PopFront() on empty buffer returned ok=true")
	}
	if _, ok := b.PopBack(); ok {
		t.Fatal("PopBack() on empty buffer returned ok=true")
	}
}

func TestZeroCapacityPushIsNoop(t *testing.T) {
	b := New[int](0)
	b.Push(1)
	if got := b.Len(); got != 0 {
		t.Fatalf("Len() = %d, want 0", got)
	}
}
