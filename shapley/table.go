// SPDX-License-Identifier: MIT
//
// File: table.go — Table: the dense (sourcePartCount x targetValueCount)
// Shapley output matrix (spec.md §4.E).
package shapley

import "github.com/katalvlaran/modl/mdlmath"

// Table is a dense row-major (sourcePartCount x targetValueCount) matrix
// of Shapley contributions, built on the same flat-buffer convention as
// datagrid.Grid (spec.md §4.E: "stored as the compilation-unit's numeric
// Continuous type").
type Table struct {
	sourcePartCount  int
	targetValueCount int
	values           []mdlmath.Continuous
}

// newTable allocates a zeroed Table of the given shape.
func newTable(sourcePartCount, targetValueCount int) *Table {
	return &Table{
		sourcePartCount:  sourcePartCount,
		targetValueCount: targetValueCount,
		values:           make([]mdlmath.Continuous, sourcePartCount*targetValueCount),
	}
}

// SourcePartCount returns the number of source-part rows.
func (tb *Table) SourcePartCount() int { return tb.sourcePartCount }

// TargetValueCount returns the number of target-value columns.
func (tb *Table) TargetValueCount() int { return tb.targetValueCount }

// Get returns the contribution at (s, t).
func (tb *Table) Get(s, t int) (mdlmath.Continuous, error) {
	if s < 0 || s >= tb.sourcePartCount || t < 0 || t >= tb.targetValueCount {
		return 0, ErrIndexOutOfRange
	}
	return tb.values[s*tb.targetValueCount+t], nil
}

func (tb *Table) set(s, t int, v mdlmath.Continuous) {
	tb.values[s*tb.targetValueCount+t] = v
}

// MeanAbsoluteShapleyValues computes Σ_t (n_t/n) · Σ_s (n_s/n) · |shapley(s,t)|
// (spec.md §4.E's optional aggregate). sourceTotals and targetTotals are
// the marginal row/column instance counts the table was built from; n is
// their shared grand total.
func (tb *Table) MeanAbsoluteShapleyValues(sourceTotals, targetTotals []int64, n int64) (mdlmath.Continuous, error) {
	if len(sourceTotals) != tb.sourcePartCount || len(targetTotals) != tb.targetValueCount {
		return 0, ErrIndexOutOfRange
	}
	if n <= 0 {
		return 0, ErrEmptyTotal
	}
	var total mdlmath.Continuous
	for t := 0; t < tb.targetValueCount; t++ {
		weightT := float64(targetTotals[t]) / float64(n)
		var inner mdlmath.Continuous
		for s := 0; s < tb.sourcePartCount; s++ {
			weightS := float64(sourceTotals[s]) / float64(n)
			v := tb.values[s*tb.targetValueCount+t]
			if v < 0 {
				v = -v
			}
			inner += weightS * v
		}
		total += weightT * inner
	}
	return total, nil
}
