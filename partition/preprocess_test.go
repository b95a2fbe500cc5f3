package partition

import (
	"testing"

	"github.com/katalvlaran/modl/freqtable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPurityClassDetectsSingleNonZeroClass(t *testing.T) {
	pure := freqtable.NewDenseVector([]int64{0, 5, 0}, 1)
	cls, ok := purityClass(pure)
	assert.True(t, ok)
	assert.Equal(t, 1, cls)

	mixed := freqtable.NewDenseVector([]int64{1, 1, 0}, 1)
	_, ok = purityClass(mixed)
	assert.False(t, ok)

	allZero := freqtable.NewDenseVector([]int64{0, 0, 0}, 1)
	_, ok = purityClass(allZero)
	assert.False(t, ok)
}

func TestMergePureValuesCollapsesSameClassPureRows(t *testing.T) {
	tbl := freqtable.NewWithCapacity(freqtable.Dense, 2, 4)
	rows := [][]int64{{5, 0}, {0, 3}, {2, 0}, {1, 1}}
	for _, r := range rows {
		require.NoError(t, tbl.Append(freqtable.NewDenseVector(r, 1)))
	}
	tbl.SetInitialValueNumber(4)

	assignment, out, err := MergePureValues(tbl)
	require.NoError(t, err)
	require.Len(t, assignment, 4)

	// Row 0 and row 2 are both pure class 0; they must land in the same
	// output group.
	assert.Equal(t, assignment[0], assignment[2])
	// Row 1 is pure class 1, distinct from class 0's pure group.
	assert.NotEqual(t, assignment[0], assignment[1])
	// Row 3 is mixed and keeps its own group.
	assert.NotEqual(t, assignment[3], assignment[0])
	assert.NotEqual(t, assignment[3], assignment[1])

	merged0, err := out.Vector(assignment[0])
	require.NoError(t, err)
	assert.Equal(t, []int64{7, 0}, merged0.Counts())
}

func TestMergePureValuesEmptySourceErrors(t *testing.T) {
	tbl := freqtable.NewWithCapacity(freqtable.Dense, 2, 0)
	_, _, err := MergePureValues(tbl)
	assert.ErrorIs(t, err, ErrEmptySource)
}

func TestSmallGroupThresholdNoOpWhenAlreadyUnderBudget(t *testing.T) {
	assert.Equal(t, int64(0), smallGroupThreshold([]int64{1, 2, 3}, 5))
}

func TestSmallGroupThresholdFoldsSmallestGroupsFirst(t *testing.T) {
	threshold := smallGroupThreshold([]int64{1, 1, 1, 100}, 2)
	assert.GreaterOrEqual(t, threshold, int64(1))
}

func TestMergeSmallGroupsRespectsMaxOutputGroups(t *testing.T) {
	tbl := freqtable.NewWithCapacity(freqtable.Dense, 2, 5)
	rows := [][]int64{{1, 0}, {1, 0}, {1, 0}, {1, 0}, {100, 100}}
	for _, r := range rows {
		require.NoError(t, tbl.Append(freqtable.NewDenseVector(r, 1)))
	}
	tbl.SetInitialValueNumber(5)

	assignment, out, err := MergeSmallGroups(tbl, 2, true)
	require.NoError(t, err)
	require.Len(t, assignment, 5)
	// Threshold 1 folds the four unit rows into one bucket beside {100,100}.
	assert.LessOrEqual(t, out.Len(), 2)
}

func TestProjectOneVsRestSumsOtherClasses(t *testing.T) {
	tbl := freqtable.NewWithCapacity(freqtable.Dense, 3, 1)
	require.NoError(t, tbl.Append(freqtable.NewDenseVector([]int64{2, 3, 5}, 1)))
	out, err := projectOneVsRest(tbl, 1)
	require.NoError(t, err)
	v, err := out.Vector(0)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 7}, v.Counts())
}

func TestComposePreprocessingChainsAssignments(t *testing.T) {
	tbl := freqtable.NewWithCapacity(freqtable.Dense, 2, 4)
	rows := [][]int64{{5, 0}, {0, 3}, {2, 0}, {1, 1}}
	for _, r := range rows {
		require.NoError(t, tbl.Append(freqtable.NewDenseVector(r, 1)))
	}
	tbl.SetInitialValueNumber(4)

	final, out, err := ComposePreprocessing(tbl, 10, true, nil)
	require.NoError(t, err)
	require.Len(t, final, 4)
	for _, g := range final {
		assert.GreaterOrEqual(t, g, 0)
		assert.Less(t, g, out.Len())
	}
}
