// SPDX-License-Identifier: MIT
//
// File: group.go — merge-based agglomerative construction for grouping
// (spec.md §4.C.2).
package partition

import (
	"github.com/katalvlaran/modl/costmodel"
	"github.com/katalvlaran/modl/freqtable"
	"github.com/katalvlaran/modl/interrupt"
	"github.com/katalvlaran/modl/mdlmath"
)

// GroupResult is the output of the merge-based construction: the two
// candidate partitions (without and with a garbage group), plus which one
// has the lower total cost.
type GroupResult struct {
	WithoutGarbage *freqtable.Table
	WithGarbage    *freqtable.Table // nil unless some merge step left at least 3 groups
	WithoutCost    float64
	WithGarbageCost float64
	Assignment     []int // per-source-row -> final part index, against WithoutGarbage or WithGarbage per Chosen
	Chosen         *freqtable.Table
	ChosenCost     float64
}

// buildMergeConstruction runs spec.md §4.C.2's loop over a working table
// of m groups, returning the best "no garbage" and "with garbage"
// candidate partitions it found along the way. valueNumber is V, the
// distinct value count feeding GroupingPartitionCost.
func buildMergeConstruction(source *freqtable.Table, cfgBuilder func(valueNumber int) (*costmodel.Config, error), tok interrupt.Token) (*GroupResult, error) {
	if tok == nil {
		tok = interrupt.Never
	}
	n := source.Len()
	if n == 0 {
		return nil, ErrEmptySource
	}

	vectors := make([]freqtable.Vector, n)
	origin := make([]int, n) // which arena group index each original row currently belongs to
	for i := 0; i < n; i++ {
		v, err := source.Vector(i)
		if err != nil {
			return nil, err
		}
		vectors[i] = v
		origin[i] = i
	}

	valueNumber := source.InitialValueNumber()
	if valueNumber == 0 {
		valueNumber = n
	}
	cfg, err := cfgBuilder(valueNumber)
	if err != nil {
		return nil, err
	}

	a := newArena(vectors)
	for _, i := range a.LiveGroups() {
		cost, err := cfg.PartCost(&a.groups[i].vector)
		if err != nil {
			return nil, err
		}
		a.groups[i].selfCost = cost
	}
	if err := primeMergeDeltas(a, cfg); err != nil {
		return nil, err
	}

	bestWithout, bestWithoutCost, err := snapshotPartition(a, cfg, valueNumber, 0)
	if err != nil {
		return nil, err
	}
	var bestWith *freqtable.Table
	bestWithCost := mdlmath.MaxValue

	for a.liveCount > 1 {
		if tok.IsRequested() {
			break
		}
		i, j, delta, ok := a.BestMerge()
		if !ok {
			break
		}

		pcWithoutCur, err := cfg.GroupingPartitionCost(a.liveCount, 0)
		if err != nil {
			return nil, err
		}
		pcWithoutNext, err := cfg.GroupingPartitionCost(a.liveCount-1, 0)
		if err != nil {
			return nil, err
		}
		improvesWithout := delta+(pcWithoutNext-pcWithoutCur) < -mdlmath.Epsilon

		improvesWith := false
		if a.liveCount >= 3 {
			garbageIdx := a.LargestModalityGroup()
			if garbageIdx != handleInvalid {
				garbageModalityNumber := a.groups[garbageIdx].vector.ModalityNumber()
				garbageModalityNumberAfter := garbageModalityNumber
				if i == garbageIdx || j == garbageIdx {
					// The trial merge would absorb the current garbage
					// group itself; its post-merge modality count is the
					// union's, not the unmerged count.
					union, uerr := freqtable.Union(a.groups[i].vector, a.groups[j].vector)
					if uerr != nil {
						return nil, uerr
					}
					garbageModalityNumberAfter = union.ModalityNumber()
				}
				pcWithCur, err := cfg.GroupingPartitionCost(a.liveCount, garbageModalityNumber)
				if err != nil {
					return nil, err
				}
				pcWithNext, err := cfg.GroupingPartitionCost(a.liveCount-1, garbageModalityNumberAfter)
				if err != nil {
					return nil, err
				}
				improvesWith = delta+(pcWithNext-pcWithCur) < -mdlmath.Epsilon
			}
		}

		if !improvesWithout && !improvesWith {
			break
		}

		if _, err := a.Merge(i, j); err != nil {
			return nil, err
		}
		for r := range origin {
			if origin[r] == j {
				origin[r] = i
			}
		}
		newCost, err := cfg.PartCost(&a.groups[i].vector)
		if err != nil {
			return nil, err
		}
		a.groups[i].selfCost = newCost
		if err := recostMergesInvolving(a, cfg, i); err != nil {
			return nil, err
		}

		withoutSnap, withoutSnapCost, err := snapshotPartition(a, cfg, valueNumber, 0)
		if err != nil {
			return nil, err
		}
		if withoutSnapCost < bestWithoutCost {
			bestWithout, bestWithoutCost = withoutSnap, withoutSnapCost
		}
		if a.liveCount >= 3 {
			garbageIdx := a.LargestModalityGroup()
			withSnap, withSnapCost, err := snapshotPartition(a, cfg, valueNumber, garbageIdx)
			if err != nil {
				return nil, err
			}
			if withSnapCost < bestWithCost {
				bestWith, bestWithCost = withSnap, withSnapCost
			}
		}
	}

	result := &GroupResult{
		WithoutGarbage:  bestWithout,
		WithGarbage:     bestWith,
		WithoutCost:     bestWithoutCost,
		WithGarbageCost: bestWithCost,
		Assignment:      remapAssignment(origin, bestWithout),
	}
	if bestWith != nil && bestWithCost < bestWithoutCost {
		result.Chosen = bestWith
		result.ChosenCost = bestWithCost
	} else {
		result.Chosen = bestWithout
		result.ChosenCost = bestWithoutCost
	}
	return result, nil
}

// primeMergeDeltas computes every pairwise merge delta for the initial
// live group set.
func primeMergeDeltas(a *arena, cfg *costmodel.Config) error {
	live := a.LiveGroups()
	for li := 0; li < len(live); li++ {
		for lj := 0; lj < li; lj++ {
			if err := recostMergeCell(a, cfg, live[li], live[lj]); err != nil {
				return err
			}
		}
	}
	return nil
}

// recostMergesInvolving recomputes every merge cell touching group i
// against every other surviving group (spec.md §4.C.2 step 3).
func recostMergesInvolving(a *arena, cfg *costmodel.Config, i int) error {
	for _, other := range a.LiveGroups() {
		if other == i {
			continue
		}
		if err := recostMergeCell(a, cfg, i, other); err != nil {
			return err
		}
	}
	return nil
}

func recostMergeCell(a *arena, cfg *costmodel.Config, i, j int) error {
	union, err := freqtable.Union(a.groups[i].vector, a.groups[j].vector)
	if err != nil {
		return err
	}
	unionCost, err := cfg.PartCost(&union)
	if err != nil {
		return err
	}
	delta := unionCost - a.groups[i].selfCost - a.groups[j].selfCost
	a.SetMergeDelta(i, j, delta)
	return nil
}

// totalPartitionCost returns the current arena's total cost: the
// GroupingPartitionCost of the live group count (with garbage size
// derived from garbageGroup, 0 meaning no garbage) plus the sum of each
// live group's self cost.
func totalPartitionCost(a *arena, cfg *costmodel.Config, valueNumber, garbageGroup int) (float64, error) {
	k := a.liveCount
	garbageModalityNumber := 0
	if garbageGroup != handleInvalid && garbageGroup >= 0 && a.groups[garbageGroup].alive {
		garbageModalityNumber = a.groups[garbageGroup].vector.ModalityNumber()
	}
	partitionCost, err := cfg.GroupingPartitionCost(k, garbageModalityNumber)
	if err != nil {
		return 0, err
	}
	total := partitionCost
	for _, i := range a.LiveGroups() {
		total += a.groups[i].selfCost
	}
	return total, nil
}

// snapshotPartition builds an immutable freqtable.Table from the arena's
// current live groups and returns it alongside its total cost.
func snapshotPartition(a *arena, cfg *costmodel.Config, valueNumber, garbageGroup int) (*freqtable.Table, float64, error) {
	live := a.LiveGroups()
	size := 0
	for _, i := range live {
		if a.groups[i].vector.Kind() == freqtable.Dense {
			size = a.groups[i].vector.Size()
			break
		}
	}
	out := freqtable.NewWithCapacity(freqtable.Dense, size, len(live))
	for _, i := range live {
		if err := out.Append(a.groups[i].vector.Clone()); err != nil {
			return nil, 0, err
		}
	}
	out.SetInitialValueNumber(valueNumber)
	cost, err := totalPartitionCost(a, cfg, valueNumber, garbageGroup)
	if err != nil {
		return nil, 0, err
	}
	return out, cost, nil
}

// remapAssignment converts an arena-index origin slice into a dense
// 0..len(target.vectors)-1 assignment vector matching target's row order.
func remapAssignment(origin []int, target *freqtable.Table) []int {
	_ = target
	// Compact arena indices into 0-based order of first appearance.
	remap := make(map[int]int)
	out := make([]int, len(origin))
	for i, o := range origin {
		r, ok := remap[o]
		if !ok {
			r = len(remap)
			remap[o] = r
		}
		out[i] = r
	}
	return out
}
