/*
NAME
  ring.go

DESCRIPTION
  ring.go implements Buffer, a fixed-capacity FIFO with head-drop-on-full
  semantics, used for both the frame history and the statistic history
  in the Chain pipeline coordinator.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package ring implements a generic fixed-capacity FIFO buffer with
// head eviction, used as the sliding window for both frame and
// statistic history.
package ring

// Buffer is a bounded FIFO of T. Capacity is fixed at construction.
// Pushing onto a full buffer evicts the head element before appending
// the new tail element, so length never exceeds capacity.
type Buffer[T any] struct {
	items   []T
	cap     int
	onEvict func(T)
}

// New returns an empty Buffer with the given capacity.
func New[T any](capacity int) *Buffer[T] {
	return &Buffer[T]{items: make([]T, 0, capacity), cap: capacity}
}

// WithEvictFunc sets a callback invoked with each element evicted by
// Push, in the order they are evicted. It is used by Chain to release
// frame.View Mats when the frame history slides forward, without ring
// needing to import the frame package.
func (b *Buffer[T]) WithEvictFunc(f func(T)) *Buffer[T] {
	b.onEvict = f
	return b
}

// NewFromSlice builds a Buffer of the given capacity from an ordered
// slice by repeated Push, so a slice longer than capacity retains only
// its tail.
func NewFromSlice[T any](capacity int, items []T) *Buffer[T] {
	b := New[T](capacity)
	for _, it := range items {
		b.Push(it)
	}
	return b
}

// Push appends value as the new tail. If the buffer is already at
// capacity, the head element is evicted first (and passed to the evict
// callback, if set).
func (b *Buffer[T]) Push(value T) {
	if b.cap <= 0 {
		return
	}
	if len(b.items) >= b.cap {
		head := b.items[0]
		b.items = b.items[1:]
		if b.onEvict != nil {
			b.onEvict(head)
		}
	}
	b.items = append(b.items, value)
}

// PopFront removes and returns the head element, if any.
func (b *Buffer[T]) PopFront() (T, bool) {
	var zero T
	if len(b.items) == 0 {
		return zero, false
	}
	v := b.items[0]
	b.items = b.items[1:]
	return v, true
}

// PopBack removes and returns the tail element, if any.
func (b *Buffer[T]) PopBack() (T, bool) {
	var zero T
	n := len(b.items)
	if n == 0 {
		return zero, false
	}
	v := b.items[n-1]
	b.items = b.items[:n-1]
	return v, true
}

// Get returns the element at index i (0 is the head), and whether i was
// in range.
func (b *Buffer[T]) Get(i int) (T, bool) {
	var zero T
	if i < 0 || i >= len(b.items) {
		return zero, false
	}
	return b.items[i], true
}

// Len returns the current number of elements.
func (b *Buffer[T]) Len() int { return len(b.items) }

// Cap returns the fixed capacity.
func (b *Buffer[T]) Cap() int { return b.cap }

// Slice returns the buffer's elements in insertion (oldest-first) order.
// The returned slice aliases the buffer's backing array and must not be
// retained across a subsequent Push.
func (b *Buffer[T]) Slice() []T { return b.items }
