package shapley

import (
	"math"
	"testing"

	"github.com/katalvlaran/modl/datagrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildUnivariateClassificationGrid(t *testing.T) *datagrid.Grid {
	t.Helper()
	g := datagrid.NewGrid()
	src := datagrid.NewSymbolSingleton("src", []string{"s0", "s1", "s2", "s3"})
	target := datagrid.NewSymbolSingleton("target", []string{"c0", "c1", "c2"})
	require.NoError(t, g.AddAttribute(src))
	require.NoError(t, g.AddAttribute(target))
	require.NoError(t, g.SetSourceAttributeNumber(1))
	require.NoError(t, g.CreateAllCells())

	freqs := [][]int64{
		{10, 2, 1},
		{3, 8, 4},
		{1, 1, 9},
		{6, 3, 5},
	}
	for s, row := range freqs {
		for tt, f := range row {
			require.NoError(t, g.SetCellFrequency([]int{s, tt}, f))
		}
	}
	return g
}

func TestClassificationRejectsNonPositiveWeight(t *testing.T) {
	g := buildUnivariateClassificationGrid(t)
	_, err := Classification(g, 1, 0)
	assert.ErrorIs(t, err, ErrInvalidWeight)
	_, err = Classification(g, 1, -1)
	assert.ErrorIs(t, err, ErrInvalidWeight)
}

func TestClassificationTableShape(t *testing.T) {
	g := buildUnivariateClassificationGrid(t)
	tb, err := Classification(g, 1, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 4, tb.SourcePartCount())
	assert.Equal(t, 3, tb.TargetValueCount())
}

// TestClassificationWeightedColumnSumsToZero pins the invariant that the
// source-frequency-weighted sum of a target column's Shapley values is
// zero: shapley(s,t) = w*(term(s,t) - E_t) and E_t is exactly that
// weighted mean of term(s,t) over s.
func TestClassificationWeightedColumnSumsToZero(t *testing.T) {
	g := buildUnivariateClassificationGrid(t)
	tb, err := Classification(g, 1, 0.5)
	require.NoError(t, err)

	sourceTotals := []int64{13, 15, 11, 14}
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

func TestClassificationBivariateProjectsFirst(t *testing.T) {
	g := buildBivariateGrid(t)
	tb, err := Classification(g, 2, 1.0)
	require.NoError(t, err)
	assert.Equal(t, 4, tb.SourcePartCount())
	assert.Equal(t, 3, tb.TargetValueCount())
}

func TestClassificationFromFrequenciesRejectsEmpty(t *testing.T) {
	_, err := classificationFromFrequencies(nil, 1.0)
	assert.ErrorIs(t, err, ErrEmptyTarget)

	_, err = classificationFromFrequencies([][]float64{{}}, 1.0)
	assert.ErrorIs(t, err, ErrEmptyTarget)
}

func TestClassificationFromFrequenciesFiniteValues(t *testing.T) {
	tb, err := classificationFromFrequencies([][]float64{
		{10, 0},
		{0, 10},
	}, 1.0)
	require.NoError(t, err)
	for s := 0; s < 2; s++ {
		for tt := 0; tt < 2; tt++ {
			v, err := tb.Get(s, tt)
			require.NoError(t, err)
			assert.False(t, math.IsNaN(v))
			assert.False(t, math.IsInf(v, 0))
		}
	}
}
