package container_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinypb/wirepb/container"
)

func TestGrowableMapLastWriteWins(t *testing.T) {
	m := container.NewGrowableMap[string, int32]()
	require.NoError(t, m.Insert("a", 1))
	require.NoError(t, m.Insert("a", 2))
	assert.Equal(t, 1, m.Len())
	var got int32
	m.Range(func(k string, v int32) bool {
		got = v
		return true
	})
	assert.Equal(t, int32(2), got)
}

func TestFixedMapOverflowButOverwriteIsFree(t *testing.T) {
	m := container.NewFixedMap[string, int32](1)
	require.NoError(t, m.Insert("a", 1))
	// Overwriting the existing key never counts against maxEntries.
	require.NoError(t, m.Insert("a", 2))
	err := m.Insert("b", 3)
	assert.ErrorIs(t, err, container.ErrOverflow)
}

func TestFixedMapRangeAndReset(t *testing.T) {
	m := container.NewFixedMap[string, int32](2)
	require.NoError(t, m.Insert("a", 1))
	require.NoError(t, m.Insert("b", 2))
	require.NoError(t, m.Insert("a", 3))

	got := map[string]int32{}
	m.Range(func(k string, v int32) bool {
		got[k] = v
		return true
	})
	assert.Equal(t, map[string]int32{"a": 3, "b": 2}, got)

	m.Reset()
	assert.Equal(t, 0, m.Len())
	require.NoError(t, m.Insert("c", 4))
	assert.Equal(t, 1, m.Len())
}
