// SPDX-License-Identifier: MIT
//
// File: entropy.go — target entropy and mutual information, in bits
// (spec.md §4.A).
package freqtable

import "math"

// entropyFloor clamps entropy terms below this magnitude to zero, matching
// the teacher's numeric-stability convention of snapping near-zero
// residuals rather than propagating float noise (see tsp/cost.go's
// round1e9 for the analogous pattern on costs).
const entropyFloor = 1e-10

// TargetEntropy returns H(Y) in bits, computed from the table's marginal
// target-class frequencies. Returns 0 for a table with no vectors or zero
// total frequency.
func (t *Table) TargetEntropy() (float64, error) {
	freqs, err := t.ComputeTargetFrequencies()
	if err != nil {
		return 0, err
	}
	n := t.Total()
	if n == 0 {
		return 0, nil
	}
	h := shannonEntropy(freqs, n)
	if h < entropyFloor {
		return 0, nil
	}
	return h, nil
}

// MutualEntropy returns I(X;Y) in bits, the mutual information between the
// partition (source parts) and the target classes: H(Y) − H(Y|X).
func (t *Table) MutualEntropy() (float64, error) {
	hy, err := t.TargetEntropy()
	if err != nil {
		return 0, err
	}
	n := t.Total()
	if n == 0 {
		return 0, nil
	}
	var hyGivenX float64
	for _, v := range t.vectors {
		pn := v.Total()
		if pn == 0 {
			continue
		}
		h := shannonEntropy(v.Counts(), pn)
		hyGivenX += (float64(pn) / float64(n)) * h
	}
	mi := hy - hyGivenX
	if mi < entropyFloor {
		return 0, nil
	}
	return mi, nil
}

// shannonEntropy returns -Σ p_i·log2(p_i) in bits for counts summing to n.
func shannonEntropy(counts []int64, n int64) float64 {
	if n == 0 {
		return 0
	}
	var h float64
	for _, c := range counts {
		if c == 0 {
			continue
		}
		p := float64(c) / float64(n)
		h -= p * math.Log2(p)
	}
	return h
}
