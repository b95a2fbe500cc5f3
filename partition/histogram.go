// SPDX-License-Identifier: MIT
//
// File: histogram.go — G-Enum histogram construction (spec.md §4.C.6,
// §6).
package partition

import (
	"github.com/katalvlaran/modl/costmodel"
	"github.com/katalvlaran/modl/freqtable"
	"github.com/katalvlaran/modl/granularity"
	"github.com/katalvlaran/modl/interrupt"
	"github.com/katalvlaran/modl/mdlmath"
	"github.com/katalvlaran/modl/telemetry"
)

// Histogram builds a G-Enum histogram over a continuous attribute:
// values are a sorted sample (ascending), min/max bound the attribute's
// domain. It derives the epsilon-bin grid (costmodel.DeriveHistogramGrid),
// drives the granularity.Sweep over elementary-bin partile counts, and at
// each eligible granularity runs the adjacency-only merge optimizer with
// HistogramPartitionCost standing in for DiscretizationPartitionCost
// (spec.md §4.B: "analogous form with interval-length bookkeeping").
//
// Returns the chosen bin table and the per-sample-row bin assignment.
func Histogram(values []float64, min, max float64, tok interrupt.Token) (*freqtable.Table, []int, error) {
	if tok == nil {
		tok = interrupt.Never
	}
	n := len(values)
	if n == 0 {
		return nil, nil, ErrEmptySource
	}

	distinctValues := mdlmath.NumberDistinctValues(min, max)
	grid := costmodel.DeriveHistogramGrid(min, max, n, costmodel.MaxElementaryBins, distinctValues)

	frequencies := make([]int64, n)
	for i := range frequencies {
		frequencies[i] = 1
	}
	builder, err := granularity.NewQuantileBuilder(frequencies)
	if err != nil {
		return nil, nil, err
	}

	type candidate struct {
		table      *freqtable.Table
		assignment []int
		cost       float64
	}
	var bestCandidate *candidate

	_, _, interrupted := granularity.Sweep(builder, tok, func(step granularity.StepResult) float64 {
		elementaryBinsPerPartile := grid.EpsilonBinLength
		if step.PartileCount > 0 {
			elementaryBinsPerPartile = float64(grid.MaxPartileNumber) / float64(step.PartileCount)
		}

		vectors := make([]freqtable.Vector, step.PartileCount)
		rowsPerPartile := make([]int64, step.PartileCount)
		for _, part := range step.Assignment {
			rowsPerPartile[part]++
		}
		for p := 0; p < step.PartileCount; p++ {
			vectors[p] = freqtable.NewHistogramVector(rowsPerPartile[p], elementaryBinsPerPartile, 1)
		}

		cfg, err := costmodel.NewConfig(n, step.PartileCount, 1, costmodel.WithGranularity(step.Granularity))
		if err != nil {
			return mdlmath.MaxValue
		}
		lengthInBins := float64(grid.MaxPartileNumber)
		partitionCostFn := func(k int) (float64, error) {
			return cfg.HistogramPartitionCost(k, lengthInBins)
		}

		assignment, merged, err := adjacentMerge(vectors, cfg, false, partitionCostFn, tok)
		if err != nil {
			return mdlmath.MaxValue
		}

		total := 0.0
		for i := 0; i < merged.Len(); i++ {
			v, _ := merged.Vector(i)
			c, err := cfg.PartCost(&v)
			if err != nil {
				return mdlmath.MaxValue
			}
			total += c
		}
		pc, err := cfg.HistogramPartitionCost(merged.Len(), lengthInBins)
		if err != nil {
			return mdlmath.MaxValue
		}
		total += pc

		finalAssignment := make([]int, n)
		for row, part := range step.Assignment {
			finalAssignment[row] = assignment[part]
		}
		if bestCandidate == nil || total < bestCandidate.cost {
			bestCandidate = &candidate{table: merged, assignment: finalAssignment, cost: total}
		}
		return total
	})

	if bestCandidate == nil {
		if interrupted {
			return nil, nil, telemetry.ErrInterrupted
		}
		return nil, nil, ErrEmptySource
	}
	return bestCandidate.table, bestCandidate.assignment, nil
}
