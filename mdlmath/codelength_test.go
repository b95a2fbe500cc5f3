package mdlmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLBoundedDegenerateIsZero(t *testing.T) {
	assert.Equal(t, 0.0, LBounded(0, 0))
	assert.Equal(t, 0.0, LBounded(3, 0))
}

func TestLBoundedIsIndependentOfK(t *testing.T) {
	a := LBounded(0, 5)
	b := LBounded(5, 5)
	c := LBounded(2, 5)
	assert.Equal(t, a, b)
	assert.Equal(t, a, c)
	assert.InDelta(t, math.Log(6), a, 1e-12)
}

func TestLBoundedGrowsWithN(t *testing.T) {
	small := LBounded(0, 2)
	large := LBounded(0, 20)
	assert.Less(t, small, large)
}

func TestLnFactorialBaseCases(t *testing.T) {
	assert.Equal(t, 0.0, LnFactorial(0))
	assert.Equal(t, 0.0, LnFactorial(1))
	assert.InDelta(t, math.Log(2), LnFactorial(2), 1e-9)
	assert.InDelta(t, math.Log(6), LnFactorial(3), 1e-9)
	assert.InDelta(t, math.Log(24), LnFactorial(4), 1e-9)
}

func TestLnGammaRatioMatchesFactorialRatio(t *testing.T) {
	// LnGammaRatio(n, t) == ln(Γ(n+t)/Γ(t)); for integer t this telescopes
	// to ln((t)(t+1)...(t+n-1)).
	got := LnGammaRatio(3, 2)
	want := math.Log(2.0 * 3.0 * 4.0)
	assert.InDelta(t, want, got, 1e-9)
}

func TestLnGammaRatioZeroStepIsZero(t *testing.T) {
	assert.InDelta(t, 0.0, LnGammaRatio(0, 5), 1e-12)
}

func TestLnBellKnownSmallValues(t *testing.T) {
	// Stirling numbers of the second kind: S(4,2) = 7.
	got := LnBell(4, 2)
	assert.InDelta(t, math.Log(7), got, 1e-9)

	// S(v,v) = 1 for any v.
	assert.InDelta(t, 0.0, LnBell(5, 5), 1e-9)

	// S(v,1) = 1 for v >= 1.
	assert.InDelta(t, 0.0, LnBell(6, 1), 1e-9)
}

func TestLnBellOutOfRangeIsNegativeInfinity(t *testing.T) {
	assert.True(t, math.IsInf(LnBell(2, 3), -1))
	assert.True(t, math.IsInf(LnBell(3, 0), -1))
}

func TestLnBellMatchesDirectRecurrenceForModeratelyLargeV(t *testing.T) {
	// Cross-check LnBell against a plain (non-log) Stirling2 recurrence for
	// a value small enough to stay within float64 range directly, pinning
	// the log-space implementation against the textbook one.
	s := directStirling2(8, 3)
	got := LnBell(8, 3)
	assert.InDelta(t, math.Log(s), got, 1e-6)
}

// directStirling2 computes S(v,k) in linear (non-log) space via the
// standard recurrence, for cross-checking LnBell on small inputs.
func directStirling2(v, k int) float64 {
	row := make([]float64, k+1)
	row[0] = 1
	for i := 1; i <= v; i++ {
		next := make([]float64, k+1)
		upper := k
		if i < upper {
			upper = i
		}
		for j := 1; j <= upper; j++ {
			next[j] = float64(j)*row[j] + row[j-1]
		}
		row = next
	}
	return row[k]
}
