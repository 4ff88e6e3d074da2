package arrays

import (
	"fmt"
	"iter"
	"math"
	"slices"

	"github.com/emirpasic/gods/v2/containers"
)

var _ containers.Container[int] = (*DynamicArray[int])(nil)

// DynamicArray is a growable sequence of T backed by a single contiguous
// buffer. It tracks a logical size and a separately allocated capacity.
// Appends are amortized O(1): when the buffer is full it is replaced by one
// twice the size needed.
//
// The buffer is never grown in place. Every reallocation allocates a new
// buffer, copies the live elements, then frees the old one. Slices from
// Data and pointers from Ref are invalidated by any operation that may
// reallocate.
//
// The zero value is an empty array backed by the heap. A DynamicArray is
// not safe for concurrent use.
type DynamicArray[T any] struct {
	buf      []T // len(buf) is the capacity
	size     int
	alloc    Allocator[T]
	reallocs int
}

// NewDynamicArray returns an empty array. No memory is allocated until the
// first element is added.
func NewDynamicArray[T any]() *DynamicArray[T] {
	return &DynamicArray[T]{}
}

// NewDynamicArrayIn returns an empty array whose buffers come from alloc.
func NewDynamicArrayIn[T any](alloc Allocator[T]) *DynamicArray[T] {
	return &DynamicArray[T]{alloc: alloc}
}

// NewDynamicArrayOf returns an array of count copies of value, with
// capacity exactly count. It panics if count < 0.
func NewDynamicArrayOf[T any](count int, value T) *DynamicArray[T] {
	mustNotBeNegative(count)
	d := &DynamicArray[T]{}
	d.buf = d.allocator().Alloc(count)
	d.size = count
	d.Fill(value)
	return d
}

// Get returns the element at index without a range check. The caller must
// guarantee 0 <= index < Size().
func (d *DynamicArray[T]) Get(index int) T {
	return d.buf[index]
}

// Set stores v at index without a range check.
func (d *DynamicArray[T]) Set(index int, v T) {
	d.buf[index] = v
}

// Ref returns a pointer to the element at index without a range check.
func (d *DynamicArray[T]) Ref(index int) *T {
	return &d.buf[index]
}

// At returns the element at index, or an error wrapping ErrOutOfRange.
func (d *DynamicArray[T]) At(index int) (T, error) {
	if !inRange(index, d.size) {
		var zero T
		return zero, outOfRange(index, d.size)
	}
	return d.buf[index], nil
}

// SetAt stores v at index, or returns an error wrapping ErrOutOfRange.
func (d *DynamicArray[T]) SetAt(index int, v T) error {
	if !inRange(index, d.size) {
		return outOfRange(index, d.size)
	}
	d.buf[index] = v
	return nil
}

// Fill assigns v to every live element.
func (d *DynamicArray[T]) Fill(v T) {
	for i := range d.buf[:d.size] {
		d.buf[i] = v
	}
}

// Reserve makes the capacity exactly n if n exceeds the current capacity.
// Size and elements are unchanged. Smaller requests are ignored.
func (d *DynamicArray[T]) Reserve(n int) {
	if n > len(d.buf) {
		d.realloc(n)
	}
}

// ShrinkToFit reduces the capacity to the size. An empty array gives up
// its buffer entirely.
func (d *DynamicArray[T]) ShrinkToFit() {
	if d.size < len(d.buf) {
		d.realloc(d.size)
	}
}

// Clear sets the size to 0. The capacity is kept, so subsequent appends
// reuse the buffer.
func (d *DynamicArray[T]) Clear() {
	clear(d.buf[:d.size])
	d.size = 0
}

// PushBack appends v.
func (d *DynamicArray[T]) PushBack(v T) {
	if d.size == len(d.buf) {
		d.realloc(growCapacity(d.size + 1))
	}
	d.buf[d.size] = v
	d.size++
}

// PopBack removes and returns the last element. It panics if the array is
// empty.
func (d *DynamicArray[T]) PopBack() T {
	if d.size == 0 {
		panic("arrays: PopBack on empty DynamicArray")
	}
	last := d.size - 1
	v := d.buf[last]
	var zero T
	d.buf[last] = zero
	d.size = last
	return v
}

// Resize changes the size to count. Growing beyond the capacity reallocates
// to exactly count slots. New elements are zero values; elements dropped by
// shrinking are zeroed. It panics if count < 0.
func (d *DynamicArray[T]) Resize(count int) {
	mustNotBeNegative(count)
	switch {
	case count < d.size:
		clear(d.buf[count:d.size])
	case count > len(d.buf):
		d.realloc(count)
	default:
		clear(d.buf[d.size:count])
	}
	d.size = count
}

// Swap exchanges the contents of d and other, including their buffers and
// allocators. No elements are copied.
func (d *DynamicArray[T]) Swap(other *DynamicArray[T]) {
	*d, *other = *other, *d
}

// Front returns the first element. It panics if the array is empty.
func (d *DynamicArray[T]) Front() T {
	return d.buf[:d.size][0]
}

// Back returns the last element. It panics if the array is empty.
func (d *DynamicArray[T]) Back() T {
	return d.buf[:d.size][d.size-1]
}

// Data returns the live elements as a slice aliasing the buffer. Its
// capacity is clipped to the size, so appending to it never writes into
// the array.
func (d *DynamicArray[T]) Data() []T {
	return d.buf[:d.size:d.size]
}

// Empty reports whether the array has no elements.
func (d *DynamicArray[T]) Empty() bool {
	return d.size == 0
}

// Size returns the number of elements.
func (d *DynamicArray[T]) Size() int {
	return d.size
}

// MaxSize returns the largest size an array can theoretically reach.
func (d *DynamicArray[T]) MaxSize() int {
	return math.MaxInt
}

// Cap returns the number of allocated slots.
func (d *DynamicArray[T]) Cap() int {
	return len(d.buf)
}

// Values returns a copy of the elements.
func (d *DynamicArray[T]) Values() []T {
	return slices.Clone(d.buf[:d.size])
}

// All iterates over index/element pairs from first to last.
func (d *DynamicArray[T]) All() iter.Seq2[int, T] {
	return forward(d.buf[:d.size])
}

// Backward iterates over index/element pairs from last to first.
func (d *DynamicArray[T]) Backward() iter.Seq2[int, T] {
	return backward(d.buf[:d.size])
}

// Iterator returns a cursor positioned before the first element.
func (d *DynamicArray[T]) Iterator() *Iterator[T] {
	return newIterator(d.buf[:d.size])
}

func (d *DynamicArray[T]) String() string {
	return fmt.Sprint(d.buf[:d.size])
}

func (d *DynamicArray[T]) allocator() Allocator[T] {
	if d.alloc == nil {
		d.alloc = HeapAllocator[T]{}
	}
	return d.alloc
}

// realloc replaces the buffer with one of exactly n slots.
func (d *DynamicArray[T]) realloc(n int) {
	d.buf = reallocate(d.allocator(), d.buf, d.size, n)
	d.reallocs++
}

// growCapacity returns the capacity to allocate when need slots are
// required: twice need, or need itself when doubling would overflow.
func growCapacity(need int) int {
	if need > math.MaxInt/2 {
		return need
	}
	return need * 2
}
