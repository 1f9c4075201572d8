package util

import "unsafe"

// FixedArray is a contiguous store whose length is set once at construction.
// It never grows or shrinks. Index validation is left to the caller, Get and Set
// panic on out of range indices like a plain slice would.
//
// Thread-safety: FixedArray is not safe for concurrent use.
type FixedArray[T any] struct {
	items []T
}

// NewFixedArray creates a zero initialized array with length elements.
// A negative length is treated as zero.
func NewFixedArray[T any](length int) *FixedArray[T] {
	if length < 0 {
		length = 0
	}
	return &FixedArray[T]{items: make([]T, length)}
}

// Len returns the number of elements
func (a *FixedArray[T]) Len() int {
	return len(a.items)
}

// InRange reports whether i is a valid index
func (a *FixedArray[T]) InRange(i int) bool {
	return i >= 0 && i < len(a.items)
}

// Get returns the element at i
func (a *FixedArray[T]) Get(i int) T {
	return a.items[i]
}

// Set stores v at i
func (a *FixedArray[T]) Set(i int, v T) {
	a.items[i] = v
}

// Fill overwrites every element with v. This is O(n).
func (a *FixedArray[T]) Fill(v T) {
	for i := range a.items {
		a.items[i] = v
	}
}

// SizeBytes returns the size of the backing store in bytes
func (a *FixedArray[T]) SizeBytes() int {
	var zero T
	return len(a.items) * int(unsafe.Sizeof(zero))
}
