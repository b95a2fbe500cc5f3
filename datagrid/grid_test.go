package datagrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSmallGrid(t *testing.T) *Grid {
	t.Helper()
	g := NewGrid()
	src := NewSymbolSingleton("color", []string{"red", "blue"})
	tgt := NewSymbolSingleton("label", []string{"yes", "no"})
	require.NoError(t, g.AddAttribute(src))
	require.NoError(t, g.AddAttribute(tgt))
	require.NoError(t, g.SetSourceAttributeNumber(1))
	require.NoError(t, g.CreateAllCells())
	return g
}

func TestComputeCellIndexRoundTrip(t *testing.T) {
	g := buildSmallGrid(t)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			idx, err := g.ComputeCellIndex([]int{i, j})
			require.NoError(t, err)
			back, err := g.ComputeIndicesForCell(idx)
			require.NoError(t, err)
			assert.Equal(t, []int{i, j}, back)
		}
	}
}

func TestSetGetCellFrequencyAndTotal(t *testing.T) {
	g := buildSmallGrid(t)
	require.NoError(t, g.SetCellFrequency([]int{0, 0}, 3))
	require.NoError(t, g.SetCellFrequency([]int{0, 1}, 2))
	require.NoError(t, g.SetCellFrequency([]int{1, 0}, 1))
	require.NoError(t, g.SetCellFrequency([]int{1, 1}, 4))

	f, err := g.GetCellFrequency([]int{0, 0})
	require.NoError(t, err)
	assert.EqualValues(t, 3, f)
	assert.EqualValues(t, 10, g.ComputeGridFrequency())

	cells, err := g.ExportSourceCellsAt(1)
	require.NoError(t, err)
	assert.Len(t, cells, 2)

	marginal, err := g.ExportAttributePartFrequenciesAt(0)
	require.NoError(t, err)
	assert.EqualValues(t, []int64{5, 5}, marginal)
}

func TestSetCellFrequencyRejectsNegative(t *testing.T) {
	g := buildSmallGrid(t)
	err := g.SetCellFrequency([]int{0, 0}, -1)
	assert.ErrorIs(t, err, ErrNegativeFrequency)
}

func TestAddAttributeAfterCreateAllCellsFails(t *testing.T) {
	g := buildSmallGrid(t)
	err := g.AddAttribute(NewSymbolSingleton("extra", []string{"a"}))
	assert.ErrorIs(t, err, ErrCellsAlreadyCreated)
}

func TestInterestByCellSumsToHundredPercent(t *testing.T) {
	g := buildSmallGrid(t)
	require.NoError(t, g.SetCellFrequency([]int{0, 0}, 8))
	require.NoError(t, g.SetCellFrequency([]int{0, 1}, 2))
	require.NoError(t, g.SetCellFrequency([]int{1, 0}, 2))
	require.NoError(t, g.SetCellFrequency([]int{1, 1}, 8))

	_, pct, err := g.InterestByCell(1)
	require.NoError(t, err)
	var total float64
	for _, p := range pct {
		total += p
	}
	assert.InDelta(t, 100, total, 1e-6)
}

func TestDiscretizationComputePartIndexFor(t *testing.T) {
	p := NewDiscretization("age", []float64{10, 20}, 3, 3)
	assert.Equal(t, 3, p.PartCount())
	assert.Equal(t, 0, p.ComputePartIndexFor(Value{IsContinuous: true, Continuous: 5}))
	assert.Equal(t, 1, p.ComputePartIndexFor(Value{IsContinuous: true, Continuous: 15}))
	assert.Equal(t, 2, p.ComputePartIndexFor(Value{IsContinuous: true, Continuous: 25}))
	assert.Equal(t, 0, p.ComputePartIndexFor(Value{IsContinuous: true, Continuous: 10}))
}

func TestGroupingComputePartIndexForDefaultsToStarGroup(t *testing.T) {
	p := NewGrouping("city", []string{"paris", "lyon", "*", "other"}, []int{0, 2}, -1, 2, 4, 4)
	assert.Equal(t, 2, p.PartCount())
	assert.Equal(t, 0, p.ComputePartIndexFor(Value{Symbol: "paris"}))
	assert.Equal(t, 1, p.ComputePartIndexFor(Value{Symbol: "*"}))
	assert.Equal(t, 1, p.ComputePartIndexFor(Value{Symbol: "unseen-modality"}))
}
