package freqtable

import (
	"testing"

	"github.com/katalvlaran/modl/datagrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTable(t *testing.T) *Table {
	t.Helper()
	tbl := NewWithCapacity(Dense, 2, 3)
	require.NoError(t, tbl.Append(NewDenseVector([]int64{5, 1}, 1)))
	require.NoError(t, tbl.Append(NewDenseVector([]int64{2, 4}, 1)))
	require.NoError(t, tbl.Append(NewDenseVector([]int64{0, 3}, 1)))
	return tbl
}

func TestTableTotalAndPartialTotal(t *testing.T) {
	tbl := buildTable(t)
	assert.EqualValues(t, 15, tbl.Total())
	pt, err := tbl.PartialTotal(0, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 12, pt)
}

func TestTableSetVectorRejectsEmptyAlongsideOthers(t *testing.T) {
	tbl := buildTable(t)
	err := tbl.SetVector(0, NewDenseVector([]int64{0, 0}, 1))
	assert.ErrorIs(t, err, ErrEmptyVectorNotAllowed)
}

func TestTableComputeTargetFrequencies(t *testing.T) {
	tbl := buildTable(t)
	freqs, err := tbl.ComputeTargetFrequencies()
	require.NoError(t, err)
	assert.EqualValues(t, []int64{7, 8}, freqs)
}

func TestTableComputeNullTable(t *testing.T) {
	tbl := buildTable(t)
	null, err := tbl.ComputeNullTable()
	require.NoError(t, err)
	assert.Equal(t, 1, null.Len())
	assert.EqualValues(t, 15, null.Total())
}

func TestTableFilterEmptyVectors(t *testing.T) {
	tbl := NewWithCapacity(Dense, 1, 2)
	require.NoError(t, tbl.Append(NewDenseVector([]int64{1}, 1)))
	tbl.vectors = append(tbl.vectors, NewDenseVector([]int64{0}, 1))
	removed := tbl.FilterEmptyVectors()
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, tbl.Len())
}

func TestTableSortBySourceFrequency(t *testing.T) {
	tbl := buildTable(t)
	tbl.SortBySourceFrequency()
	assert.True(t, tbl.IsSortedBySourceFrequency())
	v0, _ := tbl.Vector(0)
	assert.EqualValues(t, 6, v0.Total())
}

func TestGarbagePartIndexRequiresThreeVectors(t *testing.T) {
	tbl := NewWithCapacity(Dense, 1, 2)
	require.NoError(t, tbl.Append(NewDenseVector([]int64{1}, 1)))
	require.NoError(t, tbl.Append(NewDenseVector([]int64{2}, 1)))
	err := tbl.SetGarbagePartIndex(0)
	assert.ErrorIs(t, err, ErrGarbageRequiresThreeVectors)
}

func TestImportFromDataGrid(t *testing.T) {
	g := datagrid.NewGrid()
	src := datagrid.NewSymbolSingleton("color", []string{"red", "blue"})
	tgt := datagrid.NewSymbolSingleton("label", []string{"yes", "no"})
	require.NoError(t, g.AddAttribute(src))
	require.NoError(t, g.AddAttribute(tgt))
	require.NoError(t, g.SetSourceAttributeNumber(1))
	require.NoError(t, g.CreateAllCells())
	require.NoError(t, g.SetCellFrequency([]int{0, 0}, 3))
	require.NoError(t, g.SetCellFrequency([]int{0, 1}, 2))
	require.NoError(t, g.SetCellFrequency([]int{1, 0}, 1))
	require.NoError(t, g.SetCellFrequency([]int{1, 1}, 4))

	tbl, err := ImportFromDataGrid(g, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.Len())
	v0, _ := tbl.Vector(0)
	assert.EqualValues(t, []int64{3, 2}, v0.Counts())
	v1, _ := tbl.Vector(1)
	assert.EqualValues(t, []int64{1, 4}, v1.Counts())
}
