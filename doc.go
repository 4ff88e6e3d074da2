// Package arrays implements two generic sequential containers: FixedArray,
// whose length is set once at construction, and DynamicArray, a growable
// array with explicit capacity control.
//
// # Overview
//
// FixedArray is a flat wrapper over exactly N elements. It never reallocates,
// so pointers and slices obtained from it stay valid for its whole life.
//
// DynamicArray keeps a logical size and an allocated capacity:
//
//   - PushBack is amortized O(1); a full buffer is replaced by one twice the
//     size needed
//   - Reserve and ShrinkToFit set the capacity exactly
//   - Resize grows with zero values or truncates
//   - Clear empties the array but keeps the buffer
//
// # Basic Usage
//
//	fixed := arrays.NewFixedArray[int](10)
//	fixed.Fill(7)
//	for i, v := range fixed.All() {
//		fmt.Println(i, v)
//	}
//
//	dyn := arrays.NewDynamicArrayOf(5, 3) // size 5, capacity 5
//	dyn.Reserve(20)                       // capacity 20, no reallocation until full
//	dyn.PushBack(9)
//
// # Access
//
// Both containers offer two tiers of element access. Get, Set and Ref skip
// the logical range check; the caller guarantees the index is below Size.
// At and SetAt check the index and return an error wrapping ErrOutOfRange.
//
// # Allocators
//
// A DynamicArray draws its buffers from an Allocator. The default is
// HeapAllocator. Arena is a chunked bump allocator that serves many arrays
// from a few large chunks and reclaims them all at once:
//
//	a := arrays.NewArena[int](0)
//	defer a.Release()
//
//	xs := arrays.NewDynamicArrayIn[int](a)
//	ys := arrays.NewDynamicArrayIn[int](a)
//	// ... use xs and ys ...
//	a.Reset() // xs and ys must not be used after this
//
// SafeArena wraps an Arena in a mutex so arrays owned by different
// goroutines can share it.
//
// # Thread Safety
//
// FixedArray and DynamicArray are not safe for concurrent use.
//
// # Interoperability
//
// DynamicArray implements the gods containers.Container interface and both
// arrays return iterators implementing containers.ReverseIteratorWithIndex,
// so they can be passed to code written against
// github.com/emirpasic/gods/v2.
package arrays
