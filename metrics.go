package arrays

// SizeInUse returns the number of slots currently handed out by the arena.
func (a *Arena[T]) SizeInUse() int {
	sum := 0
	for _, c := range a.chunks {
		sum += c.offset
	}
	return sum
}

// NumChunks returns the number of chunks currently allocated by the arena.
func (a *Arena[T]) NumChunks() int {
	return len(a.chunks)
}

// Capacity returns the total number of slots across all chunks.
func (a *Arena[T]) Capacity() int {
	sum := 0
	for _, c := range a.chunks {
		sum += len(c.buf)
	}
	return sum
}

// Utilization returns the ratio of slots in use to total capacity (0.0 to 1.0).
// Returns 0.0 if the arena has no capacity.
func (a *Arena[T]) Utilization() float64 {
	return ratio(a.SizeInUse(), a.Capacity())
}

// ChunkSize returns the default chunk size used by this arena.
func (a *Arena[T]) ChunkSize() int {
	return a.chunkSize
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena[T]) Metrics() ArenaMetrics {
	return ArenaMetrics{
		SizeInUse:   a.SizeInUse(),
		Capacity:    a.Capacity(),
		NumChunks:   a.NumChunks(),
		ChunkSize:   a.ChunkSize(),
		Utilization: a.Utilization(),
	}
}

// ArenaMetrics contains statistical information about an arena.
type ArenaMetrics struct {
	SizeInUse   int     // Slots currently handed out
	Capacity    int     // Total slots
	NumChunks   int     // Number of chunks
	ChunkSize   int     // Default chunk size
	Utilization float64 // Ratio of used to total capacity (0.0-1.0)
}

// Thread-safe metrics for SafeArena

// SizeInUse thread-safely returns the number of slots currently handed out.
func (s *SafeArena[T]) SizeInUse() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.SizeInUse()
}

// NumChunks thread-safely returns the number of chunks currently allocated.
func (s *SafeArena[T]) NumChunks() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.NumChunks()
}

// Capacity thread-safely returns the total number of slots across all chunks.
func (s *SafeArena[T]) Capacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Capacity()
}

// Metrics thread-safely returns a snapshot of arena statistics.
func (s *SafeArena[T]) Metrics() ArenaMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Metrics()
}

// Stats is a snapshot of a DynamicArray's storage.
type Stats struct {
	Size          int     // Live elements
	Capacity      int     // Allocated slots
	Reallocations int     // Buffer replacements since construction
	Utilization   float64 // Size / Capacity (0.0-1.0)
}

// Stats returns a snapshot of the array's storage usage.
func (d *DynamicArray[T]) Stats() Stats {
	return Stats{
		Size:          d.size,
		Capacity:      len(d.buf),
		Reallocations: d.reallocs,
		Utilization:   ratio(d.size, len(d.buf)),
	}
}

func ratio(used, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(used) / float64(total)
}
