package arrays

import (
	"fmt"
	"testing"
)

func TestNewArena(t *testing.T) {
	tests := []struct {
		name      string
		chunkSize int
		expected  int
	}{
		{"default chunk size", 0, DefaultChunkSize},
		{"negative chunk size", -1, DefaultChunkSize},
		{"custom chunk size", 512, 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewArena[int](tt.chunkSize)
			if a.chunkSize != tt.expected {
				t.Errorf("NewArena(%d) chunk size = %d, want %d", tt.chunkSize, a.chunkSize, tt.expected)
			}
			if len(a.chunks) != 1 {
				t.Errorf("NewArena(%d) chunks = %d, want 1", tt.chunkSize, len(a.chunks))
			}
		})
	}
}

func TestArenaAlloc(t *testing.T) {
	a := NewArena[int](64)

	// Test normal allocation
	s1 := a.Alloc(10)
	if len(s1) != 10 || cap(s1) != 10 {
		t.Errorf("Alloc(10) len/cap = %d/%d, want 10/10", len(s1), cap(s1))
	}

	// Test zero allocation
	if s := a.Alloc(0); s != nil {
		t.Errorf("Alloc(0) = %v, want nil", s)
	}

	// Test negative allocation
	if s := a.Alloc(-1); s != nil {
		t.Errorf("Alloc(-1) = %v, want nil", s)
	}

	// Test allocation that forces chunk growth
	s2 := a.Alloc(100)
	if len(s2) != 100 {
		t.Errorf("Alloc(100) length = %d, want 100", len(s2))
	}
	if a.NumChunks() != 2 {
		t.Errorf("NumChunks after large allocation = %d, want 2", a.NumChunks())
	}
}

func TestArenaAllocationsDoNotOverlap(t *testing.T) {
	a := NewArena[int](32)
	s1 := a.Alloc(8)
	s2 := a.Alloc(8)

	for i := range s1 {
		s1[i] = 1
	}
	for i := range s2 {
		s2[i] = 2
	}
	for i, v := range s1 {
		if v != 1 {
			t.Fatalf("s1[%d] = %d, overwritten by neighbouring allocation", i, v)
		}
	}

	// capacity is clipped so append cannot spill into s2
	_ = append(s1, 99)
	if s2[0] != 2 {
		t.Error("append on an arena slice wrote into the next allocation")
	}
}

func TestArenaEnsureCapacity(t *testing.T) {
	a := NewArena[byte](1024)
	initialChunks := a.NumChunks()

	// Ensure capacity within current chunk
	a.EnsureCapacity(100)
	if a.NumChunks() != initialChunks {
		t.Errorf("EnsureCapacity(100) changed chunk count")
	}

	// Ensure capacity that requires new chunk
	a.EnsureCapacity(2000)
	if a.NumChunks() != initialChunks+1 {
		t.Errorf("EnsureCapacity(2000) chunks = %d, want %d", a.NumChunks(), initialChunks+1)
	}
}

func TestArenaReset(t *testing.T) {
	a := NewArena[int](16)

	// Allocate enough to spill into a second chunk
	s := a.Alloc(10)
	s[0] = 42
	a.Alloc(10)

	if a.SizeInUse() != 20 {
		t.Errorf("SizeInUse = %d, want 20", a.SizeInUse())
	}

	a.Reset()
	if a.SizeInUse() != 0 {
		t.Errorf("SizeInUse after Reset() = %d, want 0", a.SizeInUse())
	}
	if a.NumChunks() != 2 {
		t.Errorf("Expected chunks to remain after Reset(), got %d", a.NumChunks())
	}

	// Memory is zeroed and reused
	r := a.Alloc(10)
	if r[0] != 0 {
		t.Errorf("Alloc after Reset()[0] = %d, want 0", r[0])
	}

	// The second chunk is reused instead of growing a third
	a.Alloc(10)
	if a.NumChunks() != 2 {
		t.Errorf("NumChunks after reuse = %d, want 2", a.NumChunks())
	}
}

func TestArenaRelease(t *testing.T) {
	a := NewArena[int](64)
	a.Alloc(10)

	a.Release()

	if a.chunks != nil {
		t.Error("Expected chunks to be nil after Release()")
	}

	// Test panic on use after release
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic on use after Release()")
		}
	}()
	a.Alloc(10)
}

func TestArenaReleasePanicsEverywhere(t *testing.T) {
	ops := map[string]func(a *Arena[int]){
		"Reset":          func(a *Arena[int]) { a.Reset() },
		"EnsureCapacity": func(a *Arena[int]) { a.EnsureCapacity(1) },
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			a := NewArena[int](8)
			a.Release()
			defer func() {
				if r := recover(); r != "arena: use after Release()" {
					t.Errorf("recover() = %v, want use-after-release panic", r)
				}
			}()
			op(a)
		})
	}
}

func BenchmarkArenaAlloc(b *testing.B) {
	a := NewArena[int64](1 << 16)
	sizes := []int{1, 8, 32, 128}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("size-%d", size), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				a.Alloc(size)
				if i%1000 == 999 { // Reset periodically to avoid growing too much
					a.Reset()
				}
			}
		})
	}
}

func BenchmarkArenaVsBuiltin(b *testing.B) {
	b.Run("arena", func(b *testing.B) {
		a := NewArena[int64](1 << 16)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			a.Alloc(8)
			if i%1000 == 999 {
				a.Reset()
			}
		}
	})

	b.Run("builtin", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = make([]int64, 8)
		}
	})
}
