package probingmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewSet(t *testing.T) {
	ss := NewSet[uint64](4096)

	require.Len(t, ss.slots, 4096)
	require.Equal(t, 4096, ss.Size())
	require.Equal(t, 0, ss.Count())
}

func Test_Add(t *testing.T) {
	ss := NewSet[uint64](4096)

	require.NoError(t, ss.Add(1))
	require.True(t, ss.Has(1))

	require.NoError(t, ss.Add(1))
	assert.Equal(t, 1, ss.Count())

	assert.False(t, ss.Has(2))
}

func Test_Add_Grow(t *testing.T) {
	ss := NewSet[uint64](16)

	for i := range uint64(100) {
		require.NoError(t, ss.Add(i))
	}

	require.Equal(t, 100, ss.Count())
	require.Equal(t, 256, ss.Size())

	for i := range uint64(100) {
		require.True(t, ss.Has(i))
	}
}

func TestProbingSet_RemoveBridge(t *testing.T) {
	collisionHash := func(k string) uint64 {
		return 0 // All keys start at index 0
	}

	ss := NewSet(16, WithHashFunc[string, struct{}](collisionHash))

	require.NoError(t, ss.Add("A")) // Slot 0
	require.NoError(t, ss.Add("B")) // Slot 1 (via probe)
	require.NoError(t, ss.Add("C")) // Slot 2 (via probe)

	// Delete the "bridge" element
	require.True(t, ss.Remove("B"))
	require.False(t, ss.Remove("B"))

	// Verify we can still find "C" even though "B" is gone
	require.True(t, ss.Has("C"), "Probe chain broken: could not find 'C' after deleting 'B'")
	require.True(t, ss.Has("A"))
	require.False(t, ss.Has("B"))

	checkInvariants(t, &ss.table)
}

func TestProbingSet_Range(t *testing.T) {
	ss := NewSet[int](8)

	for i := range 20 {
		require.NoError(t, ss.Add(i))
	}

	seen := make(map[int]int)
	ss.Range(func(k int) bool {
		seen[k]++
		return true
	})

	require.Len(t, seen, 20)
	for k, n := range seen {
		require.Equalf(t, 1, n, "key %d visited %d times", k, n)
	}
}

func TestProbingSet_Clear(t *testing.T) {
	ss := NewSet[int](8)

	for i := range 5 {
		require.NoError(t, ss.Add(i))
	}

	ss.Clear()

	assert.Equal(t, 0, ss.Count())
	for i := range 5 {
		assert.False(t, ss.Has(i))
	}
}
