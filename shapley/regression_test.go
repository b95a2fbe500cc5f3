package shapley

import (
	"testing"

	"github.com/katalvlaran/modl/datagrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildUnivariateRegressionGrid(t *testing.T) *datagrid.Grid {
	t.Helper()
	g := datagrid.NewGrid()
	src := datagrid.NewSymbolSingleton("src", []string{"s0", "s1", "s2"})
	target := datagrid.NewDiscretization("target", []float64{10, 20}, 3, 3)
	require.NoError(t, g.AddAttribute(src))
	require.NoError(t, g.AddAttribute(target))
	require.NoError(t, g.SetSourceAttributeNumber(1))
	require.NoError(t, g.CreateAllCells())

	freqs := [][]int64{
		{8, 2, 1},
		{1, 9, 3},
		{2, 1, 7},
	}
	for s, row := range freqs {
		for tt, f := range row {
			require.NoError(t, g.SetCellFrequency([]int{s, tt}, f))
		}
	}
	return g
}

func TestRegressionRejectsNonPositiveWeight(t *testing.T) {
	g := buildUnivariateRegressionGrid(t)
	_, err := Regression(g, 1, 0)
	assert.ErrorIs(t, err, ErrInvalidWeight)
}

func TestRegressionTableShape(t *testing.T) {
	g := buildUnivariateRegressionGrid(t)
	tb, err := Regression(g, 1, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 3, tb.SourcePartCount())
	assert.Equal(t, 3, tb.TargetValueCount())
}

func TestRegressionWeightedColumnSumsToZero(t *testing.T) {
	g := buildUnivariateRegressionGrid(t)
	tb, err := Regression(g, 1, 1.0)
	require.NoError(t, err)

	sourceTotals := []int64{11, 13, 10}
	var n int64
	for _, v := range sourceTotals {
		n += v
	}

	for tt := 0; tt < tb.TargetValueCount(); tt++ {
		var sum float64
		for s := 0; s < tb.SourcePartCount(); s++ {
			v, err := tb.Get(s, tt)
			require.NoError(t, err)
			sum += (float64(sourceTotals[s]) / float64(n)) * v
		}
		assert.InDelta(t, 0, sum, 1e-6)
	}
}

func TestRegressionBivariateProjectsFirst(t *testing.T) {
	g := buildBivariateGrid(t)
	tb, err := Regression(g, 2, 1.0)
	require.NoError(t, err)
	assert.Equal(t, 4, tb.SourcePartCount())
	assert.Equal(t, 3, tb.TargetValueCount())
}
