// SPDX-License-Identifier: MIT
//
// File: discretize.go — adjacency-only merge for ordered (discretization
// and sort-then-discretize) partitioning (spec.md §4.C.2, §4.C.4).
package partition

import (
	"github.com/katalvlaran/modl/costmodel"
	"github.com/katalvlaran/modl/freqtable"
	"github.com/katalvlaran/modl/granularity"
	"github.com/katalvlaran/modl/interrupt"
	"github.com/katalvlaran/modl/mdlmath"
	"github.com/katalvlaran/modl/telemetry"
)

// adjacentMerge runs the merge-based construction restricted to adjacent
// intervals: it never considers merging two non-neighboring parts, since
// discretization (and the sort-then-discretize two-class subgrouper) must
// preserve the source's order. partitionCostFn computes the K-part
// regularization term for the vector kind in play (Dense discretization
// vs Histogram); pass nil to use cfg.DiscretizationPartitionCost. Returns
// the per-row group assignment and the final merged table.
func adjacentMerge(ordered []freqtable.Vector, cfg *costmodel.Config, nullPartitionCost bool, partitionCostFn func(k int) (float64, error), tok interrupt.Token) ([]int, *freqtable.Table, error) {
	if tok == nil {
		tok = interrupt.Never
	}
	n := len(ordered)
	if n == 0 {
		return nil, nil, ErrEmptySource
	}

	parts := make([]freqtable.Vector, n)
	copy(parts, ordered)
	selfCost := make([]float64, n)
	for i, v := range parts {
		c, err := cfg.PartCost(&v)
		if err != nil {
			return nil, nil, err
		}
		selfCost[i] = c
	}

	// assignment[i] maps original row i to its current part's position in
	// parts/selfCost; merging part p+1 into part p shifts later indices
	// down by one, tracked via partOf.
	partOf := make([]int, n)
	for i := range partOf {
		partOf[i] = i
	}

	valueNumber := n
	if cfg.ValueNumber() > 0 {
		valueNumber = cfg.ValueNumber()
	}

	if partitionCostFn == nil {
		partitionCostFn = cfg.DiscretizationPartitionCost
	}
	partitionCost := func(k int) (float64, error) {
		if nullPartitionCost {
			return 0, nil
		}
		return partitionCostFn(k)
	}

	for len(parts) > 1 {
		if tok.IsRequested() {
			break
		}
		bestIdx := -1
		bestDelta := mdlmath.MaxValue
		for i := 0; i < len(parts)-1; i++ {
			union, err := freqtable.Union(parts[i], parts[i+1])
			if err != nil {
				return nil, nil, err
			}
			unionCost, err := cfg.PartCost(&union)
			if err != nil {
				return nil, nil, err
			}
			delta := unionCost - selfCost[i] - selfCost[i+1]
			pc, err := partitionCost(len(parts) - 1)
			if err != nil {
				return nil, nil, err
			}
			pcCur, err := partitionCost(len(parts))
			if err != nil {
				return nil, nil, err
			}
			total := delta + (pc - pcCur)
			if total < bestDelta {
				bestDelta = total
				bestIdx = i
			}
		}
		if bestIdx < 0 || bestDelta >= -mdlmath.Epsilon {
			break
		}

		merged, err := freqtable.Union(parts[bestIdx], parts[bestIdx+1])
		if err != nil {
			return nil, nil, err
		}
		mergedCost, err := cfg.PartCost(&merged)
		if err != nil {
			return nil, nil, err
		}
		parts[bestIdx] = merged
		selfCost[bestIdx] = mergedCost
		parts = append(parts[:bestIdx+1], parts[bestIdx+2:]...)
		selfCost = append(selfCost[:bestIdx+1], selfCost[bestIdx+2:]...)
		for r := range partOf {
			if partOf[r] > bestIdx {
				partOf[r]--
			}
		}
	}

	out := freqtable.NewWithCapacity(freqtable.Dense, vectorSizeOf(parts), len(parts))
	for _, p := range parts {
		if err := out.Append(p); err != nil {
			return nil, nil, err
		}
	}
	out.SetInitialValueNumber(valueNumber)
	return partOf, out, nil
}

func vectorSizeOf(parts []freqtable.Vector) int {
	for _, p := range parts {
		if p.Kind() == freqtable.Dense {
			return p.Size()
		}
	}
	return 0
}

// Discretize implements spec.md §4.C's Discretize operation: it drives the
// granularity sweep (granularity package) over the source's row order and,
// at each eligible granularity, collapses rows into their quantile
// partiles and runs adjacentMerge over the resulting partile vectors,
// retaining the argmin total cost (part costs plus the
// DiscretizationPartitionCost of the resulting interval count) over the
// sweep (spec.md §4.C.1, §4.C.2).
func Discretize(source *freqtable.Table, attributeCost float64, tok interrupt.Token) (*freqtable.Table, []int, error) {
	if tok == nil {
		tok = interrupt.Never
	}
	if source.Len() == 0 {
		return nil, nil, ErrEmptySource
	}
	if source.Len() == 1 {
		return source, []int{0}, nil
	}

	rows := source.Len()
	classValueNumber := vectorSizeOfTable(source)
	vectors := make([]freqtable.Vector, rows)
	frequencies := make([]int64, rows)
	for i := range vectors {
		v, err := source.Vector(i)
		if err != nil {
			return nil, nil, err
		}
		vectors[i] = v
		frequencies[i] = v.Total()
	}

	builder, err := granularity.NewQuantileBuilder(frequencies)
	if err != nil {
		return nil, nil, err
	}

	type candidate struct {
		table      *freqtable.Table
		assignment []int
	}
	var bestCandidate *candidate
	bestTotal := mdlmath.MaxValue

	_, _, interrupted := granularity.Sweep(builder, tok, func(step granularity.StepResult) float64 {
		partileVectors := make([]freqtable.Vector, step.PartileCount)
		started := make([]bool, step.PartileCount)
		for row, part := range step.Assignment {
			if !started[part] {
				partileVectors[part] = vectors[row].Clone()
				started[part] = true
				continue
			}
			if err := partileVectors[part].Add(vectors[row]); err != nil {
				return mdlmath.MaxValue
			}
		}

		cfg, err := costmodel.NewConfig(int(source.Total()), step.PartileCount, classValueNumber,
			costmodel.WithAttributeCost(attributeCost), costmodel.WithGranularity(step.Granularity))
		if err != nil {
			return mdlmath.MaxValue
		}

		partAssignment, merged, err := adjacentMerge(partileVectors, cfg, false, nil, tok)
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
		pc, err := cfg.DiscretizationPartitionCost(merged.Len())
		if err != nil {
			return mdlmath.MaxValue
		}
		total += pc

		finalAssignment := make([]int, rows)
		for row, part := range step.Assignment {
			finalAssignment[row] = partAssignment[part]
		}
		if bestCandidate == nil || total < bestTotal {
			bestCandidate = &candidate{table: merged, assignment: finalAssignment}
			bestTotal = total
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

func vectorSizeOfTable(t *freqtable.Table) int {
	if t.Len() == 0 {
		return 0
	}
	v, _ := t.Vector(0)
	return v.Size()
}
