// SPDX-License-Identifier: MIT
//
// File: subgroup.go — two-class subgrouping (spec.md §4.C.4).
package partition

import (
	"sort"

	"github.com/katalvlaran/modl/costmodel"
	"github.com/katalvlaran/modl/freqtable"
	"github.com/katalvlaran/modl/interrupt"
)

// SubgroupTwoClass reduces a two-target-class grouping problem to a
// sort-then-discretize: sort source rows by the proportion of target
// class 1 ascending, then run the discretization merge algorithm
// (adjacency-only) on the sorted table. Also usable as the cheap
// evaluator for reliable-subgroup construction by passing nullPartitionCost
// = true, in which case only part costs matter (no partition
// regularization term) (spec.md §4.C.4).
//
// Returns the per-original-row assignment into the resulting groups.
func SubgroupTwoClass(source *freqtable.Table, nullPartitionCost bool, tok interrupt.Token) ([]int, *freqtable.Table, error) {
	if source.Len() == 0 {
		return nil, nil, ErrEmptySource
	}
	vectors := make([]freqtable.Vector, source.Len())
	for i := range vectors {
		v, err := source.Vector(i)
		if err != nil {
			return nil, nil, err
		}
		if v.Kind() != freqtable.Dense || v.Size() != 2 {
			return nil, nil, ErrNotTwoClasses
		}
		vectors[i] = v
	}

	order := make([]int, len(vectors))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return classOneProportion(vectors[order[a]]) < classOneProportion(vectors[order[b]])
	})

	sorted := make([]freqtable.Vector, len(order))
	for pos, idx := range order {
		sorted[pos] = vectors[idx]
	}

	cfg, err := costmodel.NewConfig(int(source.Total()), source.Len(), 2)
	if err != nil {
		return nil, nil, err
	}

	groupAssignment, merged, err := adjacentMerge(sorted, cfg, nullPartitionCost, nil, tok)
	if err != nil {
		return nil, nil, err
	}

	assignment := make([]int, len(order))
	for pos, idx := range order {
		assignment[idx] = groupAssignment[pos]
	}
	return assignment, merged, nil
}

// classOneProportion returns n_1 / (n_0 + n_1) for a 2-class Dense vector.
func classOneProportion(v freqtable.Vector) float64 {
	counts := v.Counts()
	total := counts[0] + counts[1]
	if total == 0 {
		return 0
	}
	return float64(counts[1]) / float64(total)
}
