// SPDX-License-Identifier: MIT
//
// File: codelength.go
// Role: MDL universal code lengths and the combinatorial log-helpers the
// cost model (costmodel package) composes into partition/part costs.
//
// Grounded on original_source/Learning/KWDataPreparation/KWUnivariatePartitionCost.cpp
// (KWStat::BoundedNaturalNumbersUniversalCodeLength / LnFactorial / LnBell),
// reimplemented from their documented semantics rather than transliterated.
package mdlmath

import (
	"math"
)

// LBounded is the bounded natural-numbers universal code length for coding
// an integer k known to lie in [0, n]: the code length of picking one of
// n+1 equally-likely outcomes. It is the MDL prior used for "choice of
// granularity" and "choice of partition size" terms throughout costmodel
// (spec.md §4.B).
//
// The filtered original_source drops KWStat.cpp (the file defining the
// exact Khiops series-expansion universal code), so this implements the
// simplest closed form consistent with spec.md's description — a uniform
// bounded code — rather than guessing at undocumented constants. gonum's
// stat/combin package models a different quantity (binomial coefficients
// for unordered selection) and would misrepresent this term, so it is not
// used here; see DESIGN.md.
//
// For n <= 0 there is nothing to choose (a single possible value), so the
// code length is 0.
//
// Complexity: O(1).
func LBounded(k, n int) float64 {
	if n <= 0 {
		return 0
	}
	if k < 0 {
		k = 0
	}
	if k > n {
		k = n
	}
	_ = k // k does not affect a uniform bounded code's length, only its domain check above
	return math.Log(float64(n) + 1)
}

// LnFactorial returns ln(n!) via the log-gamma function. Using math.Lgamma
// (stdlib) instead of a hand-rolled accumulator keeps this numerically
// stable for the large counts that appear in part-cost computations
// (nIntervalFrequency + classValueNumber can run into the millions).
//
// Complexity: O(1).
func LnFactorial(n int) float64 {
	if n < 0 {
		return 0
	}
	if n <= 1 {
		return 0
	}
	v, _ := math.Lgamma(float64(n) + 1)
	return v
}

// LnGammaRatio returns ln(Γ(n+t)) - ln(Γ(t)), the closed form used by the
// MODL per-part cost (spec.md §4.B: "ln Γ(n_k + T) − ln Γ(T) − ...").
//
// Complexity: O(1).
func LnGammaRatio(n int, t int) float64 {
	a, _ := math.Lgamma(float64(n) + float64(t))
	b, _ := math.Lgamma(float64(t))
	return a - b
}

// lnBellStirling2 returns ln(Stirling2(v, k)) — the log count of ways to
// partition v distinguishable modalities into k non-empty unlabeled
// groups, i.e. the "ln_Bell(V, K)" term of spec.md §4.B's grouping cost.
//
// gonum exposes binomial/multinomial combinatorics but no Stirling
// second-kind / restricted Bell counting (stat/combin's Partitions
// enumerates set partitions combinatorially, not the count itself in log
// space) so this is computed directly via the standard recurrence
//
//	S(v, k) = k*S(v-1, k) + S(v-1, k-1),  S(0,0) = 1, S(v,0) = S(0,k) = 0.
//
// evaluated row by row in log space (terms combined with logSumExp), so
// large v does not overflow float64; nothing is cached between calls.
// Verified against small cases in codelength_test.go.
func lnBellStirling2(v, k int) float64 {
	if k < 0 || v < 0 || k > v {
		return math.Inf(-1)
	}
	if v == 0 && k == 0 {
		return 0
	}
	if k == 0 {
		return math.Inf(-1)
	}

	// Rolling computation of row v of Stirling2 restricted to columns
	// [0, k], in log-space to avoid overflow for large v.
	// logRow[j] holds ln(S(i, j)) for the current i.
	logRow := make([]float64, k+1)
	for j := range logRow {
		logRow[j] = math.Inf(-1)
	}
	logRow[0] = 0 // S(0,0) = 1

	for i := 1; i <= v; i++ {
		next := make([]float64, k+1)
		next[0] = math.Inf(-1) // S(i,0) = 0 for i>0
		upper := k
		if i < upper {
			upper = i
		}
		for j := 1; j <= upper; j++ {
			// S(i,j) = j*S(i-1,j) + S(i-1,j-1)
			term1 := math.Inf(-1)
			if logRow[j] != math.Inf(-1) {
				term1 = math.Log(float64(j)) + logRow[j]
			}
			term2 := logRow[j-1]
			next[j] = logSumExp(term1, term2)
		}
		for j := upper + 1; j <= k; j++ {
			next[j] = math.Inf(-1)
		}
		logRow = next
	}
	return logRow[k]
}

// LnBell returns ln(Stirling2(v, k)), the log count of ways to partition v
// modalities into k non-empty unlabeled groups (spec.md §4.B).
//
// Complexity: O(v*k) time, O(k) space.
func LnBell(v, k int) float64 {
	return lnBellStirling2(v, k)
}

// logSumExp combines two log-domain values: ln(e^a + e^b), guarding
// against -Inf operands.
func logSumExp(a, b float64) float64 {
	if math.IsInf(a, -1) {
		return b
	}
	if math.IsInf(b, -1) {
		return a
	}
	if a < b {
		a, b = b, a
	}
	return a + math.Log1p(math.Exp(b-a))
}
