package arrays

import "sync"

// SafeArena is a mutex-protected wrapper around Arena for concurrent access.
// It lets containers owned by different goroutines share one arena; the
// containers themselves remain single-goroutine.
type SafeArena[T any] struct {
	mu sync.Mutex
	a  *Arena[T]
}

// NewSafeArena creates a new thread-safe arena with the specified chunk size.
// If chunkSize <= 0, DefaultChunkSize is used.
func NewSafeArena[T any](chunkSize int) *SafeArena[T] {
	return &SafeArena[T]{a: NewArena[T](chunkSize)}
}

// Alloc thread-safely returns n zeroed slots, or nil if n <= 0.
func (s *SafeArena[T]) Alloc(n int) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Alloc(n)
}

// Free is a no-op, as for Arena.
func (s *SafeArena[T]) Free([]T) {}

// EnsureCapacity thread-safely ensures the current chunk has at least n free slots.
func (s *SafeArena[T]) EnsureCapacity(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.EnsureCapacity(n)
}

// Reset thread-safely rewinds the arena for reuse.
func (s *SafeArena[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Reset()
}

// Release thread-safely drops all chunks and makes the arena unusable.
func (s *SafeArena[T]) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Release()
}
