package arrays

import (
	"fmt"
	"iter"
	"slices"
)

// FixedArray holds exactly N elements of T in contiguous storage. N is set
// at construction and never changes; the storage is never reallocated, so
// slices returned by Data and pointers returned by Ref stay valid for the
// life of the array.
//
// The zero value is an array of length 0.
type FixedArray[T any] struct {
	storage []T
}

// NewFixedArray returns an array of n zero-valued elements. It panics if n < 0.
func NewFixedArray[T any](n int) *FixedArray[T] {
	mustNotBeNegative(n)
	return &FixedArray[T]{storage: make([]T, n)}
}

// NewFixedArrayOf returns an array holding a copy of values.
func NewFixedArrayOf[T any](values ...T) *FixedArray[T] {
	return &FixedArray[T]{storage: slices.Clone(values)}
}

// Get returns the element at index without a range check. The caller must
// guarantee 0 <= index < Size().
func (a *FixedArray[T]) Get(index int) T {
	return a.storage[index]
}

// Set stores v at index without a range check.
func (a *FixedArray[T]) Set(index int, v T) {
	a.storage[index] = v
}

// Ref returns a pointer to the element at index without a range check.
func (a *FixedArray[T]) Ref(index int) *T {
	return &a.storage[index]
}

// At returns the element at index, or an error wrapping ErrOutOfRange.
func (a *FixedArray[T]) At(index int) (T, error) {
	if !inRange(index, len(a.storage)) {
		var zero T
		return zero, outOfRange(index, len(a.storage))
	}
	return a.storage[index], nil
}

// SetAt stores v at index, or returns an error wrapping ErrOutOfRange.
func (a *FixedArray[T]) SetAt(index int, v T) error {
	if !inRange(index, len(a.storage)) {
		return outOfRange(index, len(a.storage))
	}
	a.storage[index] = v
	return nil
}

// Fill assigns v to every element.
func (a *FixedArray[T]) Fill(v T) {
	for i := range a.storage {
		a.storage[i] = v
	}
}

// Swap exchanges contents with other element by element. Both arrays keep
// their own storage. It fails only when the lengths differ.
func (a *FixedArray[T]) Swap(other *FixedArray[T]) error {
	if len(a.storage) != len(other.storage) {
		return fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(a.storage), len(other.storage))
	}
	for i := range a.storage {
		a.storage[i], other.storage[i] = other.storage[i], a.storage[i]
	}
	return nil
}

// Resize exists so generic code can treat both arrays alike. It succeeds
// only when n equals the current length.
func (a *FixedArray[T]) Resize(n int) error {
	if n != len(a.storage) {
		return fmt.Errorf("%w: length %d, requested %d", ErrFixedLength, len(a.storage), n)
	}
	return nil
}

// Empty reports whether the array has length 0.
func (a *FixedArray[T]) Empty() bool {
	return len(a.storage) == 0
}

// Size returns N.
func (a *FixedArray[T]) Size() int {
	return len(a.storage)
}

// MaxSize returns N.
func (a *FixedArray[T]) MaxSize() int {
	return len(a.storage)
}

// Front returns the first element. It panics if the array is empty.
func (a *FixedArray[T]) Front() T {
	return a.storage[0]
}

// Back returns the last element. It panics if the array is empty.
func (a *FixedArray[T]) Back() T {
	return a.storage[len(a.storage)-1]
}

// Data returns the backing storage. Writes through it are visible in the array.
func (a *FixedArray[T]) Data() []T {
	return a.storage
}

// Values returns a copy of the elements.
func (a *FixedArray[T]) Values() []T {
	return slices.Clone(a.storage)
}

// All iterates over index/element pairs from 0 to N-1.
func (a *FixedArray[T]) All() iter.Seq2[int, T] {
	return forward(a.storage)
}

// Backward iterates over index/element pairs from N-1 to 0.
func (a *FixedArray[T]) Backward() iter.Seq2[int, T] {
	return backward(a.storage)
}

// Iterator returns a cursor positioned before the first element.
func (a *FixedArray[T]) Iterator() *Iterator[T] {
	return newIterator(a.storage)
}

func (a *FixedArray[T]) String() string {
	return fmt.Sprint(a.storage)
}
