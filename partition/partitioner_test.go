package partition

import (
	"testing"

	"github.com/katalvlaran/modl/freqtable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupEmptySourceErrors(t *testing.T) {
	tbl := freqtable.NewWithCapacity(freqtable.Dense, 2, 0)
	_, err := Group(tbl, 1.0, 10, true, nil)
	assert.ErrorIs(t, err, ErrEmptySource)
}

func TestGroupSingleRowIsIdentity(t *testing.T) {
	tbl := buildGroupingTable(t, [][]int64{{10, 0}})
	result, err := Group(tbl, 1.0, 10, true, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, result.Assignment)
	assert.Equal(t, 1, result.Chosen.Len())
}

func TestGroupProducesValidAssignmentOverOriginalRows(t *testing.T) {
	rows := [][]int64{{10, 0}, {9, 1}, {0, 10}, {1, 9}, {5, 5}, {6, 4}}
	tbl := buildGroupingTable(t, rows)
	result, err := Group(tbl, 1.0, 10, true, nil)
	require.NoError(t, err)
	require.Len(t, result.Assignment, len(rows))
	for _, g := range result.Assignment {
		assert.GreaterOrEqual(t, g, 0)
		assert.Less(t, g, result.Chosen.Len())
	}
}

func TestLargestGroupIndexPicksMaxModalityNumber(t *testing.T) {
	tbl := freqtable.NewWithCapacity(freqtable.Dense, 2, 3)
	require.NoError(t, tbl.Append(freqtable.NewDenseVector([]int64{1, 0}, 1)))
	require.NoError(t, tbl.Append(freqtable.NewDenseVector([]int64{0, 1}, 7)))
	require.NoError(t, tbl.Append(freqtable.NewDenseVector([]int64{1, 1}, 2)))
	assert.Equal(t, 1, largestGroupIndex(tbl))
}
