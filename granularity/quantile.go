// SPDX-License-Identifier: MIT
//
// File: quantile.go — QuantileBuilder: deterministic row-to-partile
// assignment for one granularity level (spec.md §4.C.1).
package granularity

import "math"

// QuantileBuilder is initialized once with a table's per-row frequencies
// (in the table's current order — callers sort beforehand, e.g. via
// freqtable.Table.SortBySourceFrequency, when an ordering convention is
// required) and can then be asked, for any granularity g, to assign rows
// to quantile partiles deterministically: the same (frequencies, g) always
// yields the same assignment.
type QuantileBuilder struct {
	frequencies []int64
	cumulative  []int64 // cumulative[i] = sum(frequencies[0:i+1])
	total       int64
}

// NewQuantileBuilder builds a QuantileBuilder over frequencies. Returns
// ErrEmptyFrequencies if frequencies is empty, or ErrNegativeFrequency if
// any entry is negative.
func NewQuantileBuilder(frequencies []int64) (*QuantileBuilder, error) {
	if len(frequencies) == 0 {
		return nil, ErrEmptyFrequencies
	}
	cum := make([]int64, len(frequencies))
	var running int64
	for i, f := range frequencies {
		if f < 0 {
			return nil, ErrNegativeFrequency
		}
		running += f
		cum[i] = running
	}
	return &QuantileBuilder{
		frequencies: append([]int64(nil), frequencies...),
		cumulative:  cum,
		total:       running,
	}, nil
}

// RowCount returns the number of original rows this builder was built
// from (V_source).
func (b *QuantileBuilder) RowCount() int { return len(b.frequencies) }

// Total returns the total frequency across all rows (N).
func (b *QuantileBuilder) Total() int64 { return b.total }

// TargetPartileCount returns the target partile count for granularity g:
// min(2^g, RowCount()), per the glossary's "partiles target count ≈ 2^g".
func (b *QuantileBuilder) TargetPartileCount(g int) int {
	target := int(math.Pow(2, float64(g)))
	if target > b.RowCount() {
		target = b.RowCount()
	}
	if target < 1 {
		target = 1
	}
	return target
}

// Granularize assigns every row to one of P quantile partiles, where
// P = TargetPartileCount(g), by thresholding the cumulative frequency at
// P equal-width quantile boundaries of the total frequency mass. Rows are
// visited in their existing order and assigned to the first partile whose
// upper frequency boundary has not yet been exceeded, so the same input
// always yields the same assignment and P_g is non-decreasing as rows are
// scanned (spec.md §4.C.1: "deterministically assigns original rows to
// quantile partiles").
//
// Returns the per-row partile index assignment (len == RowCount()) and the
// realized partile count actualP, which may be < P when trailing rows
// have zero frequency and collapse into the last partile.
func (b *QuantileBuilder) Granularize(g int) (assignment []int, actualP int) {
	p := b.TargetPartileCount(g)
	assignment = make([]int, b.RowCount())
	if b.total == 0 {
		return assignment, 1
	}

	boundary := 0
	nextThreshold := quantileThreshold(b.total, boundary+1, p)
	maxPartile := 0
	for i, cum := range b.cumulative {
		for boundary < p-1 && cum > nextThreshold {
			boundary++
			nextThreshold = quantileThreshold(b.total, boundary+1, p)
		}
		assignment[i] = boundary
		if boundary > maxPartile {
			maxPartile = boundary
		}
	}
	return assignment, maxPartile + 1
}

// quantileThreshold returns the cumulative-frequency upper bound of the
// k-th of p equal-width quantiles over a total mass of total.
func quantileThreshold(total int64, k, p int) int64 {
	return int64(math.Ceil(float64(total) * float64(k) / float64(p)))
}

// IsEligible reports whether granularity g is eligible given the previous
// granularity's realized partile count prevP and the source row count
// vSource: P_g >= 1.5*prevP AND 1.5*P_g <= vSource, or P_g == vSource
// (the last granularity is always eligible) (spec.md §4.C.1).
func IsEligible(pG, prevP, vSource int) bool {
	if pG == vSource {
		return true
	}
	return float64(pG) >= 1.5*float64(prevP) && 1.5*float64(pG) <= float64(vSource)
}
