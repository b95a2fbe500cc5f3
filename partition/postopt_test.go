package partition

import (
	"testing"

	"github.com/katalvlaran/modl/costmodel"
	"github.com/katalvlaran/modl/freqtable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostOptimizeNeverIncreasesCost(t *testing.T) {
	rows := [][]int64{{10, 0}, {8, 2}, {0, 10}, {2, 8}}
	source := buildGroupingTable(t, rows)
	cfg, err := costmodel.NewConfig(int(source.Total()), 4, 2, costmodel.WithAttributeCost(1.0))
	require.NoError(t, err)

	result, err := buildMergeConstruction(source, defaultCfgBuilder(int(source.Total())), nil)
	require.NoError(t, err)

	_, _, optimizedCost, err := PostOptimize(source, result.Assignment, result.Chosen, cfg, -1, nil)
	require.NoError(t, err)
	assert.LessOrEqual(t, optimizedCost, result.ChosenCost+1e-6)
}

func TestFastPostOptimizeTerminatesAndNeverIncreasesCost(t *testing.T) {
	rows := [][]int64{{10, 0}, {8, 2}, {0, 10}, {2, 8}, {5, 5}}
	source := buildGroupingTable(t, rows)
	cfg, err := costmodel.NewConfig(int(source.Total()), 5, 2, costmodel.WithAttributeCost(1.0))
	require.NoError(t, err)

	result, err := buildMergeConstruction(source, defaultCfgBuilder(int(source.Total())), nil)
	require.NoError(t, err)

	_, _, fastCost, err := FastPostOptimize(source, result.Assignment, result.Chosen, cfg, -1, 42, nil)
	require.NoError(t, err)
	assert.LessOrEqual(t, fastCost, result.ChosenCost+1e-6)
}

func TestForceBestMergeRejectsFewerThanTwoGroups(t *testing.T) {
	source := buildGroupingTable(t, [][]int64{{10, 0}})
	single := freqtable.NewWithCapacity(freqtable.Dense, 2, 1)
	require.NoError(t, single.Append(freqtable.NewDenseVector([]int64{10, 0}, 1)))
	cfg, err := costmodel.NewConfig(10, 1, 2)
	require.NoError(t, err)
	_, _, _, _, err = ForceBestMerge(source, []int{0}, single, cfg, -1, nil)
	assert.ErrorIs(t, err, ErrTooFewGroups)
}

func TestExhaustiveMergeToMinimumReducesOrMatchesGroupCount(t *testing.T) {
	rows := [][]int64{{10, 0}, {8, 2}, {0, 10}, {2, 8}}
	source := buildGroupingTable(t, rows)
	cfg, err := costmodel.NewConfig(int(source.Total()), 4, 2, costmodel.WithAttributeCost(1.0))
	require.NoError(t, err)
	result, err := buildMergeConstruction(source, defaultCfgBuilder(int(source.Total())), nil)
	require.NoError(t, err)

	best, bestAssignment, _, err := ExhaustiveMergeToMinimum(source, result.Assignment, result.Chosen, cfg, -1, nil)
	require.NoError(t, err)
	assert.LessOrEqual(t, best.Len(), result.Chosen.Len())
	assert.Len(t, bestAssignment, len(rows))
}
