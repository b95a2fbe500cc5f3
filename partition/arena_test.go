package partition

import (
	"testing"

	"github.com/katalvlaran/modl/freqtable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func denseVectors(rows [][]int64) []freqtable.Vector {
	out := make([]freqtable.Vector, len(rows))
	for i, r := range rows {
		out[i] = freqtable.NewDenseVector(r, 1)
	}
	return out
}

func TestArenaLiveGroupsInitiallyAllAlive(t *testing.T) {
	a := newArena(denseVectors([][]int64{{1, 0}, {0, 1}, {2, 2}}))
	assert.Equal(t, 3, a.liveCount)
	assert.ElementsMatch(t, []int{0, 1, 2}, a.LiveGroups())
}

func TestArenaMergeMarksSourceDeadAndKeepsTarget(t *testing.T) {
	a := newArena(denseVectors([][]int64{{1, 0}, {0, 1}, {2, 2}}))
	merged, err := a.Merge(0, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 1}, merged.Counts())
	assert.Equal(t, 2, a.liveCount)
	assert.False(t, a.groups[1].alive)
	assert.True(t, a.groups[0].alive)
}

func TestArenaMergeInvalidHandleRejected(t *testing.T) {
	a := newArena(denseVectors([][]int64{{1, 0}, {0, 1}}))
	_, err := a.Merge(0, 0)
	assert.ErrorIs(t, err, ErrInvalidHandle)

	_, err = a.Merge(0, 1)
	require.NoError(t, err)
	_, err = a.Merge(0, 1)
	assert.ErrorIs(t, err, ErrInvalidHandle)
}

func TestArenaLargestModalityGroupTracksSortedIndex(t *testing.T) {
	a := newArena([]freqtable.Vector{
		freqtable.NewDenseVector([]int64{1, 0}, 1),
		freqtable.NewDenseVector([]int64{0, 1}, 5),
		freqtable.NewDenseVector([]int64{1, 1}, 2),
	})
	assert.Equal(t, 1, a.LargestModalityGroup())
}

func TestArenaBestMergePicksLowestCachedDelta(t *testing.T) {
	a := newArena(denseVectors([][]int64{{1, 0}, {0, 1}, {2, 2}}))
	a.SetMergeDelta(1, 0, 5.0)
	a.SetMergeDelta(2, 0, -1.0)
	a.SetMergeDelta(2, 1, 3.0)
	i, j, delta, ok := a.BestMerge()
	require.True(t, ok)
	assert.Equal(t, -1.0, delta)
	assert.ElementsMatch(t, []int{2, 0}, []int{i, j})
}

func TestArenaBestMergeNoneWhenNoValidCells(t *testing.T) {
	a := newArena(denseVectors([][]int64{{1, 0}}))
	_, _, _, ok := a.BestMerge()
	assert.False(t, ok)
}

func TestMergeIndexLowerTriangularSymmetric(t *testing.T) {
	assert.Equal(t, mergeIndex(3, 1), mergeIndex(1, 3))
	assert.NotEqual(t, mergeIndex(3, 1), mergeIndex(3, 2))
}
