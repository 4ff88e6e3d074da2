package arrays

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEdgeCases covers boundary behaviour of both arrays
func TestEdgeCases(t *testing.T) {
	t.Run("ZeroLengthFixedArray", func(t *testing.T) {
		a := NewFixedArray[int](0)
		assert.True(t, a.Empty())
		assert.Empty(t, a.Data())
		a.Fill(1)
		require.NoError(t, a.Swap(NewFixedArray[int](0)))

		it := a.Iterator()
		assert.False(t, it.Next())
		for range a.All() {
			t.Fatal("zero-length array yielded an element")
		}
	})

	t.Run("EmptyDynamicArrayOperations", func(t *testing.T) {
		d := NewDynamicArray[int]()
		d.Clear()
		d.ShrinkToFit()
		d.Reserve(0)
		d.Resize(0)
		d.Fill(3)
		assert.Equal(t, 0, d.Cap())
		assert.Equal(t, 0, d.Stats().Reallocations, "no-op operations must not allocate")
		assert.Empty(t, d.Data())
		assert.Equal(t, "[]", d.String())
	})

	t.Run("ReuseAfterShrinkToZero", func(t *testing.T) {
		d := NewDynamicArrayOf(3, 1)
		d.Clear()
		d.ShrinkToFit()
		d.PushBack(8)
		assert.Equal(t, []int{8}, d.Values())
		assert.Equal(t, 2, d.Cap())
	})

	t.Run("PopThenPush", func(t *testing.T) {
		d := NewDynamicArrayOf(1, 5)
		assert.Equal(t, 5, d.PopBack())
		assert.Equal(t, 0, d.Size())
		d.PushBack(6)
		assert.Equal(t, []int{6}, d.Values())
		assert.Equal(t, 1, d.Cap(), "push into free capacity does not grow")
	})

	t.Run("ValuesIsACopy", func(t *testing.T) {
		d := NewDynamicArrayOf(2, 1)
		v := d.Values()
		v[0] = 100
		assert.Equal(t, 1, d.Get(0))

		a := NewFixedArrayOf(1, 2)
		av := a.Values()
		av[0] = 100
		assert.Equal(t, 1, a.Get(0))
	})

	t.Run("LargeStructElements", func(t *testing.T) {
		type big struct {
			payload [512]byte
			id      int
		}
		d := NewDynamicArray[big]()
		for i := 0; i < 100; i++ {
			d.PushBack(big{id: i})
		}
		for i := 0; i < 100; i++ {
			require.Equal(t, i, d.Get(i).id)
		}
	})
}

// TestResetBehavior checks arrays backed by an arena across resets
func TestResetBehavior(t *testing.T) {
	a := NewArena[string](32)
	defer a.Release()

	for round := 0; round < 5; round++ {
		d := NewDynamicArrayIn[string](a)
		for i := 0; i < 20; i++ {
			d.PushBack("x")
		}
		require.Equal(t, 20, d.Size())
		a.Reset()
		require.Equal(t, 0, a.SizeInUse())
	}
	// chunks are reused instead of piling up
	assert.LessOrEqual(t, a.NumChunks(), 3)
}

// TestMemoryLeaks checks that dropped elements become collectable
func TestMemoryLeaks(t *testing.T) {
	var m1, m2 runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&m1)

	d := NewDynamicArray[[]byte]()
	for i := 0; i < 100; i++ {
		d.PushBack(make([]byte, 64*1024))
	}
	d.Clear()
	d.ShrinkToFit()

	runtime.GC()
	runtime.ReadMemStats(&m2)

	// 100 * 64KiB were allocated; nearly all of it must be gone
	assert.Less(t, int64(m2.HeapAlloc)-int64(m1.HeapAlloc), int64(1<<20))
	runtime.KeepAlive(d)
}
