package costmodel

import (
	"testing"

	"github.com/katalvlaran/modl/mdlmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecomposeSumsToTotal(t *testing.T) {
	cfg, err := NewConfig(200, 20, 2, WithAttributeCost(1))
	require.NoError(t, err)
	modelCost, err := cfg.DiscretizationPartitionCost(4)
	require.NoError(t, err)
	total := modelCost + 12.5 // plus summed part costs

	d := cfg.Decompose(4, modelCost, total)
	assert.InDelta(t, total, d.Sum(), mdlmath.Epsilon)
	assert.GreaterOrEqual(t, d.Construction, 0.0)
	assert.GreaterOrEqual(t, d.Preparation, 0.0)
	assert.GreaterOrEqual(t, d.Data, 0.0)
}

func TestDecomposeConstructionExcludesAttributeCostForSinglePart(t *testing.T) {
	cfg, err := NewConfig(200, 20, 2, WithAttributeCost(1))
	require.NoError(t, err)
	d := cfg.Decompose(1, 0.69, 0.69)
	assert.InDelta(t, 0.6931471805599453, d.Construction, 1e-9)
}
