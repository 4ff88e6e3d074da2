package arrays

import (
	"iter"

	"github.com/emirpasic/gods/v2/containers"
)

var _ containers.ReverseIteratorWithIndex[int] = (*Iterator[int])(nil)

// Iterator is a stateful cursor over the elements an array held when the
// iterator was created. It starts positioned before the first element.
//
// An iterator does not own the elements. One obtained from a DynamicArray
// is invalidated by any operation that reallocates or changes the size.
type Iterator[T any] struct {
	elems []T
	index int
}

func newIterator[T any](elems []T) *Iterator[T] {
	return &Iterator[T]{elems: elems, index: -1}
}

// Next moves the iterator to the next element and reports whether one exists.
func (it *Iterator[T]) Next() bool {
	if it.index < len(it.elems) {
		it.index++
	}
	return it.index < len(it.elems)
}

// Prev moves the iterator to the previous element and reports whether one exists.
func (it *Iterator[T]) Prev() bool {
	if it.index >= 0 {
		it.index--
	}
	return it.index >= 0
}

// Value returns the current element. Only valid after Next, Prev, First or
// Last returned true.
func (it *Iterator[T]) Value() T {
	return it.elems[it.index]
}

// Index returns the current position.
func (it *Iterator[T]) Index() int {
	return it.index
}

// Begin resets the iterator to its initial state (one-before-first).
func (it *Iterator[T]) Begin() {
	it.index = -1
}

// End moves the iterator past the last element (one-past-last).
func (it *Iterator[T]) End() {
	it.index = len(it.elems)
}

// First moves the iterator to the first element and reports whether one exists.
func (it *Iterator[T]) First() bool {
	it.Begin()
	return it.Next()
}

// Last moves the iterator to the last element and reports whether one exists.
func (it *Iterator[T]) Last() bool {
	it.End()
	return it.Prev()
}

// NextTo advances to the next element satisfying f and reports whether one was found.
func (it *Iterator[T]) NextTo(f func(index int, value T) bool) bool {
	for it.Next() {
		if f(it.index, it.elems[it.index]) {
			return true
		}
	}
	return false
}

// PrevTo moves back to the previous element satisfying f and reports whether one was found.
func (it *Iterator[T]) PrevTo(f func(index int, value T) bool) bool {
	for it.Prev() {
		if f(it.index, it.elems[it.index]) {
			return true
		}
	}
	return false
}

func forward[T any](elems []T) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range elems {
			if !yield(i, v) {
				return
			}
		}
	}
}

func backward[T any](elems []T) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := len(elems) - 1; i >= 0; i-- {
			if !yield(i, elems[i]) {
				return
			}
		}
	}
}
