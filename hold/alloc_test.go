package hold

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//
// -----------------------------------------------------------------------------
// HeapAllocator
// -----------------------------------------------------------------------------

// TestHeapAllocator_AllocAndFree verifies the default allocator hands out
// distinct slots and tolerates Free (the GC does the real reclamation).
func TestHeapAllocator_AllocAndFree(t *testing.T) {
	t.Parallel()

	a := HeapAllocator{}

	s1 := a.Alloc(18)
	s2 := a.Alloc(18)
	require.NotNil(t, s1)
	require.NotNil(t, s2)
	assert.NotSame(t, s1, s2)
	assert.Equal(t, 18, s1.Get())

	require.NotPanics(t, func() { a.Free(s1) })
	require.NotPanics(t, func() { a.Free(nil) })
}

//
// -----------------------------------------------------------------------------
// Slot
// -----------------------------------------------------------------------------

// TestSlot_GetSet verifies the storage unit round-trips its scalar.
func TestSlot_GetSet(t *testing.T) {
	t.Parallel()

	s := &Slot{derived: 18}
	assert.Equal(t, 18, s.Get())

	s.Set(21)
	assert.Equal(t, 21, s.Get())
}

//
// -----------------------------------------------------------------------------
// CountingAllocator
// -----------------------------------------------------------------------------

// TestCountingAllocator_Accounting verifies alloc/free counters and liveness.
func TestCountingAllocator_Accounting(t *testing.T) {
	t.Parallel()

	a := NewCountingAllocator()
	assert.True(t, a.Balanced())

	s1 := a.Alloc(3)
	s2 := a.Alloc(18)

	assert.Equal(t, 2, a.Allocs())
	assert.Equal(t, 0, a.Frees())
	assert.Equal(t, 2, a.Live())
	assert.True(t, a.Owns(s1))
	assert.True(t, a.Owns(s2))
	assert.False(t, a.Balanced())

	a.Free(s1)
	assert.Equal(t, 1, a.Frees())
	assert.Equal(t, 1, a.Live())
	assert.False(t, a.Owns(s1))

	a.Free(s2)
	assert.True(t, a.Balanced())
}

// TestCountingAllocator_FreeNilIsNoOp mirrors free(NULL) semantics.
func TestCountingAllocator_FreeNilIsNoOp(t *testing.T) {
	t.Parallel()

	a := NewCountingAllocator()
	require.NotPanics(t, func() { a.Free(nil) })
	assert.Equal(t, 0, a.Frees())
}

// TestCountingAllocator_DoubleFreePanics verifies the fail-fast path for the
// one ownership bug the whole package exists to prevent.
func TestCountingAllocator_DoubleFreePanics(t *testing.T) {
	t.Parallel()

	a := NewCountingAllocator()
	s := a.Alloc(18)
	a.Free(s)

	defer func() {
		rec := recover()
		require.NotNil(t, rec)

		err, ok := rec.(DoubleFreeError)
		require.True(t, ok)
		assert.Same(t, s, err.Slot)
	}()
	a.Free(s)
}

// TestCountingAllocator_ForeignSlotPanics verifies slots from elsewhere are
// rejected rather than silently accounted.
func TestCountingAllocator_ForeignSlotPanics(t *testing.T) {
	t.Parallel()

	a := NewCountingAllocator()
	foreign := HeapAllocator{}.Alloc(18)

	defer func() {
		rec := recover()
		require.NotNil(t, rec)

		err, ok := rec.(ForeignSlotError)
		require.True(t, ok)
		assert.Same(t, foreign, err.Slot)
	}()
	a.Free(foreign)
}
