package shapley

import (
	"testing"

	"github.com/katalvlaran/modl/datagrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildBivariateGrid(t *testing.T) *datagrid.Grid {
	t.Helper()
	g := datagrid.NewGrid()
	src0 := datagrid.NewSymbolSingleton("src0", []string{"a", "b"})
	src1 := datagrid.NewSymbolSingleton("src1", []string{"x", "y"})
	target := datagrid.NewSymbolSingleton("target", []string{"c0", "c1", "c2"})
	require.NoError(t, g.AddAttribute(src0))
	require.NoError(t, g.AddAttribute(src1))
	require.NoError(t, g.AddAttribute(target))
	require.NoError(t, g.SetSourceAttributeNumber(2))
	require.NoError(t, g.CreateAllCells())

	// (a,x)->c0:5  (a,y)->c1:3  (b,x)->c2:4  (b,y)->c0:2
	require.NoError(t, g.SetCellFrequency([]int{0, 0, 0}, 5))
	require.NoError(t, g.SetCellFrequency([]int{0, 1, 1}, 3))
	require.NoError(t, g.SetCellFrequency([]int{1, 0, 2}, 4))
	require.NoError(t, g.SetCellFrequency([]int{1, 1, 0}, 2))
	return g
}

func TestBuildUnivariateDataGridStatsRejectsNonBivariate(t *testing.T) {
	g := datagrid.NewGrid()
	src := datagrid.NewSymbolSingleton("src", []string{"a"})
	target := datagrid.NewSymbolSingleton("target", []string{"c0"})
	require.NoError(t, g.AddAttribute(src))
	require.NoError(t, g.AddAttribute(target))
	require.NoError(t, g.SetSourceAttributeNumber(1))
	require.NoError(t, g.CreateAllCells())

	_, err := BuildUnivariateDataGridStats(g, 1)
	assert.ErrorIs(t, err, ErrNotBivariate)
}

func TestBuildUnivariateDataGridStatsCollapsesToVirtualSource(t *testing.T) {
	g := buildBivariateGrid(t)

	out, err := BuildUnivariateDataGridStats(g, 2)
	require.NoError(t, err)

	require.Equal(t, 1, out.SourceAttributeNumber())
	virtual, err := out.Attribute(0)
	require.NoError(t, err)
	assert.Equal(t, 4, virtual.PartCount())

	targetAttr, err := out.Attribute(1)
	require.NoError(t, err)
	assert.Equal(t, 3, targetAttr.PartCount())

	assert.Equal(t, int64(14), out.ComputeGridFrequency())

	cells, err := out.ExportSourceCellsAt(1)
	require.NoError(t, err)
	require.Len(t, cells, 4)
	var total int64
	for _, c := range cells {
		for _, f := range c.TargetFrequencies {
			total += f
		}
	}
	assert.Equal(t, int64(14), total)
}
