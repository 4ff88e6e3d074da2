package arrays

// Allocator hands out contiguous buffers of T to a DynamicArray.
//
// Alloc must return a zeroed slice with len and cap equal to n, or nil if
// n <= 0. Free is called exactly once for every buffer the array stops
// owning; implementations may recycle it or do nothing.
type Allocator[T any] interface {
	Alloc(n int) []T
	Free(buf []T)
}

// HeapAllocator allocates buffers with make and leaves reclamation to the GC.
type HeapAllocator[T any] struct{}

// Alloc returns a new zeroed buffer of n elements, or nil if n <= 0.
func (HeapAllocator[T]) Alloc(n int) []T {
	if n <= 0 {
		return nil
	}
	return make([]T, n)
}

// Free zeroes buf so values it references become collectable even if the
// caller still holds a stale slice of it.
func (HeapAllocator[T]) Free(buf []T) {
	clear(buf)
}

// reallocate moves the first live elements of old into a fresh buffer of
// newCap slots taken from alloc. The new buffer is fully populated before
// old is released, so a panic in Alloc leaves old untouched.
func reallocate[T any](alloc Allocator[T], old []T, live, newCap int) []T {
	buf := alloc.Alloc(newCap)
	copy(buf, old[:live])
	if old != nil {
		alloc.Free(old)
	}
	return buf
}
