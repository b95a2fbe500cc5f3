package granularity

import (
	"testing"

	"github.com/katalvlaran/modl/interrupt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGMax(t *testing.T) {
	assert.Equal(t, 0, GMax(1))
	assert.Equal(t, 4, GMax(16))
	assert.Equal(t, 7, GMax(100))
}

func uniformBuilder(t *testing.T, rows int, freq int64) *QuantileBuilder {
	t.Helper()
	fs := make([]int64, rows)
	for i := range fs {
		fs[i] = freq
	}
	b, err := NewQuantileBuilder(fs)
	require.NoError(t, err)
	return b
}

func TestSweepFindsMinimumCostStep(t *testing.T) {
	b := uniformBuilder(t, 64, 10)
	best, bestCost, interrupted := Sweep(b, nil, func(step StepResult) float64 {
		// Prefer a mid-sized partile count, penalizing both extremes.
		return float64((step.PartileCount - 8) * (step.PartileCount - 8))
	})
	require.False(t, interrupted)
	require.NotNil(t, best)
	assert.LessOrEqual(t, bestCost, 64.0)
}

func TestSweepHonorsInterruption(t *testing.T) {
	b := uniformBuilder(t, 64, 10)
	tok := interrupt.NewAtomicToken(0)
	calls := 0
	tok.Request()
	best, _, interrupted := Sweep(b, tok, func(step StepResult) float64 {
		calls++
		return 0
	})
	assert.True(t, interrupted)
	assert.Nil(t, best)
	assert.Equal(t, 0, calls)
}

func TestSweepSkipsIneligibleGranularities(t *testing.T) {
	// 600 unit rows: g=9 yields 512 partiles and 1.5*512 > 600, so g=9 is
	// skipped, while g=10 (600 partiles == V_source) is still eligible.
	b := uniformBuilder(t, 600, 1)
	seen := map[int]bool{}
	_, _, interrupted := Sweep(b, nil, func(step StepResult) float64 {
		seen[step.Granularity] = true
		return float64(step.Granularity)
	})
	require.False(t, interrupted)
	// Not every granularity from 1..GMax should have been visited.
	assert.Less(t, len(seen), GMax(600))
}
