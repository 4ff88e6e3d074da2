package arrays

// DefaultChunkSize is the default number of slots per arena chunk.
const DefaultChunkSize = 4096

// chunk is a single block of slots within an arena.
type chunk[T any] struct {
	buf    []T // backing slots
	offset int // next free slot within buf
}

// free returns the number of unused slots left in the chunk.
func (c *chunk[T]) free() int {
	return len(c.buf) - c.offset
}

// take carves n slots off the chunk. The result is capacity-limited so an
// append on it can never spill into a neighbouring allocation.
func (c *chunk[T]) take(n int) []T {
	s := c.buf[c.offset : c.offset+n : c.offset+n]
	c.offset += n
	clear(s)
	return s
}

// Arena is a chunked bump allocator of T slots. It satisfies Allocator, so
// many DynamicArrays can draw their buffers from one arena and be reclaimed
// together with Reset. Not goroutine-safe; use SafeArena for shared access.
//
// Buffers handed out by an arena are only valid until the next Reset or
// Release. Free is a no-op: replaced buffers stay in the chunk until Reset.
type Arena[T any] struct {
	chunks    []chunk[T]
	chunkSize int
	current   int // index of the chunk allocations are served from
}

// NewArena creates a new Arena with the specified chunk size in slots.
// If chunkSize <= 0, DefaultChunkSize is used.
func NewArena[T any](chunkSize int) *Arena[T] {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	a := &Arena[T]{chunkSize: chunkSize}
	a.grow(chunkSize)
	return a
}

// Alloc returns n zeroed slots carved from the arena, or nil if n <= 0.
func (a *Arena[T]) Alloc(n int) []T {
	if n <= 0 {
		return nil
	}

	// Fast path: current chunk has room
	if a.current < len(a.chunks) {
		if c := &a.chunks[a.current]; c.free() >= n {
			return c.take(n)
		}
	}

	return a.allocSlow(n)
}

// allocSlow handles allocation when the current chunk is exhausted.
func (a *Arena[T]) allocSlow(n int) []T {
	a.panicIfReleased()

	// After a Reset the later chunks are empty again; reuse them first.
	for i := a.current + 1; i < len(a.chunks); i++ {
		if a.chunks[i].free() >= n {
			a.current = i
			return a.chunks[i].take(n)
		}
	}

	a.grow(n)
	return a.chunks[a.current].take(n)
}

// Free is a no-op. Arena memory is reclaimed in bulk by Reset or Release.
func (a *Arena[T]) Free([]T) {}

// EnsureCapacity ensures the current chunk has at least n free slots.
// If not, it grows the arena with a new chunk.
func (a *Arena[T]) EnsureCapacity(n int) {
	a.panicIfReleased()
	if a.chunks[a.current].free() < n {
		a.grow(n)
	}
}

// Reset zeroes every used slot and rewinds all chunks for reuse. Buffers
// previously handed out must no longer be used.
func (a *Arena[T]) Reset() {
	a.panicIfReleased()
	for i := range a.chunks {
		c := &a.chunks[i]
		clear(c.buf[:c.offset])
		c.offset = 0
	}
	a.current = 0
}

// Release drops all chunks and makes the arena unusable.
// Any subsequent operations will panic.
func (a *Arena[T]) Release() {
	a.chunks = nil
	a.current = 0
}

// grow appends a new chunk of at least min slots and makes it current.
func (a *Arena[T]) grow(min int) {
	size := a.chunkSize
	if min > size {
		size = min
	}
	a.chunks = append(a.chunks, chunk[T]{buf: make([]T, size)})
	a.current = len(a.chunks) - 1
}

// panicIfReleased panics if the arena has been released.
func (a *Arena[T]) panicIfReleased() {
	if a.chunks == nil {
		panic("arena: use after Release()")
	}
}
