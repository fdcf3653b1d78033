package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wlang/dfs"
)

// TestHasCycle covers a graph with a cycle and a self-loop, and a DAG.
func TestHasCycle(t *testing.T) {
	g := build(t, 5, true, [2]int{0, 2}, [2]int{2, 3}, [2]int{3, 1}, [2]int{1, 2}, [2]int{4, 4})
	has, err := dfs.HasCycle(g)
	require.NoError(t, err)
	assert.True(t, has)

	g = build(t, 3, false, [2]int{0, 1}, [2]int{0, 2}, [2]int{1, 2})
	has, err = dfs.HasCycle(g)
	require.NoError(t, err)
	assert.False(t, has)

	_, err = dfs.HasCycle[rune](nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

// TestStronglyConnected checks the partition and the condensation order.
func TestStronglyConnected(t *testing.T) {
	// 0 → {1,2,3 cycle} → 4, 4 ↺, 5 isolated.
	g := build(t, 6, true,
		[2]int{0, 2}, [2]int{2, 3}, [2]int{3, 1}, [2]int{1, 2}, [2]int{3, 4}, [2]int{4, 4})
	comps, err := dfs.StronglyConnected(g)
	require.NoError(t, err)
	assert.ElementsMatch(t, [][]int{{0}, {1, 2, 3}, {4}, {5}}, comps)

	pos := make(map[int]int)
	for i, c := range comps {
		for _, q := range c {
			pos[q] = i
		}
	}
	assert.Less(t, pos[0], pos[1], "source component first")
	assert.Less(t, pos[1], pos[4], "sink component last")
}

// TestStronglyConnected_Edges covers the nil and empty graphs.
func TestStronglyConnected_Edges(t *testing.T) {
	_, err := dfs.StronglyConnected[rune](nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	comps, err := dfs.StronglyConnected(build(t, 0, false))
	require.NoError(t, err)
	assert.Empty(t, comps)

	// Two-state cycle without loops enabled.
	comps, err = dfs.StronglyConnected(build(t, 2, false, [2]int{0, 1}, [2]int{1, 0}))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1}}, comps)
}
