// SPDX-License-Identifier: MIT
//
// File: postopt.go — fixed-K post-optimization of a grouping partition
// (spec.md §4.C.5).
package partition

import (
	"github.com/katalvlaran/modl/costmodel"
	"github.com/katalvlaran/modl/freqtable"
	"github.com/katalvlaran/modl/interrupt"
	"github.com/katalvlaran/modl/mdlmath"
	"github.com/katalvlaran/modl/rngstream"
)

// MaxFastSteps bounds the fast post-optimization variant's move count
// (spec.md §4.C.5: "capped at max_steps").
const MaxFastSteps = 10000

// postOptState is the mutable working set the move search operates on: one
// Vector accumulator per group plus the per-source-row assignment into it.
type postOptState struct {
	groups     []freqtable.Vector
	assignment []int
}

func newPostOptState(source *freqtable.Table, assignment []int, chosen *freqtable.Table) (*postOptState, error) {
	groups := make([]freqtable.Vector, chosen.Len())
	for i := 0; i < chosen.Len(); i++ {
		v, err := chosen.Vector(i)
		if err != nil {
			return nil, err
		}
		groups[i] = v.Clone()
	}
	a := make([]int, len(assignment))
	copy(a, assignment)
	return &postOptState{groups: groups, assignment: a}, nil
}

func (s *postOptState) snapshot(valueNumber int) *freqtable.Table {
	size := 0
	for _, g := range s.groups {
		if g.Kind() == freqtable.Dense {
			size = g.Size()
			break
		}
	}
	out := freqtable.NewWithCapacity(freqtable.Dense, size, len(s.groups))
	for _, g := range s.groups {
		out.Append(g.Clone())
	}
	out.SetInitialValueNumber(valueNumber)
	return out
}

func (s *postOptState) totalCost(cfg *costmodel.Config, garbageGroupIdx int) (float64, error) {
	garbageModalityNumber := 0
	if garbageGroupIdx != handleInvalid && garbageGroupIdx >= 0 && garbageGroupIdx < len(s.groups) {
		garbageModalityNumber = s.groups[garbageGroupIdx].ModalityNumber()
	}
	partitionCost, err := cfg.GroupingPartitionCost(len(s.groups), garbageModalityNumber)
	if err != nil {
		return 0, err
	}
	total := partitionCost
	for i := range s.groups {
		c, err := cfg.PartCost(&s.groups[i])
		if err != nil {
			return 0, err
		}
		total += c
	}
	return total, nil
}

// moveModalityDelta returns the cost change of moving source row `row`
// (currently in group `from`) into group `to`, leaving the groups slice
// untouched; both part-cost terms are recomputed via cfg.PartCost since no
// closed-form delta exists for a single-modality move in the general case.
func moveModalityDelta(source *freqtable.Table, row int, from, to int, s *postOptState, cfg *costmodel.Config) (float64, error) {
	rowVec, err := source.Vector(row)
	if err != nil {
		return 0, err
	}
	fromBefore, err := cfg.PartCost(&s.groups[from])
	if err != nil {
		return 0, err
	}
	toBefore, err := cfg.PartCost(&s.groups[to])
	if err != nil {
		return 0, err
	}

	fromAfter := s.groups[from].Clone()
	if err := fromAfter.Subtract(rowVec); err != nil {
		return 0, err
	}
	toAfter := s.groups[to].Clone()
	if err := toAfter.Add(rowVec); err != nil {
		return 0, err
	}
	fromAfterCost, err := cfg.PartCost(&fromAfter)
	if err != nil {
		return 0, err
	}
	toAfterCost, err := cfg.PartCost(&toAfter)
	if err != nil {
		return 0, err
	}
	return (fromAfterCost + toAfterCost) - (fromBefore + toBefore), nil
}

func applyMove(source *freqtable.Table, row int, from, to int, s *postOptState) error {
	rowVec, err := source.Vector(row)
	if err != nil {
		return err
	}
	if err := s.groups[from].Subtract(rowVec); err != nil {
		return err
	}
	if err := s.groups[to].Add(rowVec); err != nil {
		return err
	}
	s.assignment[row] = to
	return nil
}

// PostOptimize runs the best-move fixed-K post-optimization pass (spec.md
// §4.C.5): repeatedly finds the single modality move with the most
// negative total cost delta and applies it, until no improving move
// remains. garbageGroupIdx is the index of the garbage group in chosen, or
// handleInvalid if chosen carries no garbage. A move that would leave a
// garbage-bearing partition with fewer than 3 groups is rejected (spec.md
// §4.C.5: "rejecting moves leaving <3 groups in a garbage-bearing
// partition").
func PostOptimize(source *freqtable.Table, assignment []int, chosen *freqtable.Table, cfg *costmodel.Config, garbageGroupIdx int, tok interrupt.Token) (*freqtable.Table, []int, float64, error) {
	if tok == nil {
		tok = interrupt.Never
	}
	s, err := newPostOptState(source, assignment, chosen)
	if err != nil {
		return nil, nil, 0, err
	}

	for {
		if tok.IsRequested() {
			break
		}
		nonEmpty := 0
		for _, g := range s.groups {
			if g.Total() > 0 {
				nonEmpty++
			}
		}
		bestRow, bestTo, bestDelta := -1, -1, -mdlmath.Epsilon
		for row, from := range s.assignment {
			left := nonEmpty
			if rowVec, err := source.Vector(row); err == nil && rowVec.Total() == s.groups[from].Total() {
				left-- // moving this row empties its group
			}
			for to := range s.groups {
				if to == from {
					continue
				}
				if garbageGroupIdx != handleInvalid && left < 3 {
					continue
				}
				delta, err := moveModalityDelta(source, row, from, to, s, cfg)
				if err != nil {
					return nil, nil, 0, err
				}
				if delta < bestDelta {
					bestDelta = delta
					bestRow, bestTo = row, to
				}
			}
		}
		if bestRow < 0 {
			break
		}
		from := s.assignment[bestRow]
		if err := applyMove(source, bestRow, from, bestTo, s); err != nil {
			return nil, nil, 0, err
		}
	}

	cost, err := s.totalCost(cfg, garbageGroupIdx)
	if err != nil {
		return nil, nil, 0, err
	}
	return s.snapshot(cfg.ValueNumber()), s.assignment, cost, nil
}

// FastPostOptimize is PostOptimize's bounded, randomized-order variant:
// instead of scanning for the single best move each round, it visits
// (row, candidate-group) pairs in a deterministic pseudorandom order
// derived from seed and accepts the first improving move found, up to
// MaxFastSteps total move attempts (spec.md §4.C.5: "first-improving with
// randomized order via rngstream, capped at max_steps").
func FastPostOptimize(source *freqtable.Table, assignment []int, chosen *freqtable.Table, cfg *costmodel.Config, garbageGroupIdx int, seed int64, tok interrupt.Token) (*freqtable.Table, []int, float64, error) {
	if tok == nil {
		tok = interrupt.Never
	}
	s, err := newPostOptState(source, assignment, chosen)
	if err != nil {
		return nil, nil, 0, err
	}
	rng := rngstream.FromSeed(seed)

	steps := 0
	improved := true
	for improved && steps < MaxFastSteps {
		if tok.IsRequested() {
			break
		}
		improved = false
		rowOrder, err := rngstream.Permutation(len(s.assignment), rng)
		if err != nil {
			return nil, nil, 0, err
		}
		for _, row := range rowOrder {
			if steps >= MaxFastSteps {
				break
			}
			if garbageGroupIdx != handleInvalid && len(s.groups) < 3 {
				continue
			}
			groupOrder, err := rngstream.Permutation(len(s.groups), rng)
			if err != nil {
				return nil, nil, 0, err
			}
			from := s.assignment[row]
			for _, to := range groupOrder {
				if to == from {
					continue
				}
				steps++
				delta, err := moveModalityDelta(source, row, from, to, s, cfg)
				if err != nil {
					return nil, nil, 0, err
				}
				if delta < -mdlmath.Epsilon {
					if err := applyMove(source, row, from, to, s); err != nil {
						return nil, nil, 0, err
					}
					improved = true
					break
				}
				if steps >= MaxFastSteps {
					break
				}
			}
		}
	}

	cost, err := s.totalCost(cfg, garbageGroupIdx)
	if err != nil {
		return nil, nil, 0, err
	}
	return s.snapshot(cfg.ValueNumber()), s.assignment, cost, nil
}

// ForceBestMerge unconditionally merges the single best-scoring pair of
// groups (ignoring whether the merge improves cost), post-optimizes the
// result, and reports whether the post-optimized partition beats the
// pre-merge cost. Callers run this repeatedly and stop after three
// consecutive failures (spec.md §4.C.5: "force-best-merge ... stop after 3
// consecutive failures").
func ForceBestMerge(source *freqtable.Table, assignment []int, chosen *freqtable.Table, cfg *costmodel.Config, garbageGroupIdx int, tok interrupt.Token) (merged *freqtable.Table, mergedAssignment []int, mergedCost float64, improved bool, err error) {
	if tok == nil {
		tok = interrupt.Never
	}
	s, err := newPostOptState(source, assignment, chosen)
	if err != nil {
		return nil, nil, 0, false, err
	}
	if len(s.groups) < 2 {
		return nil, nil, 0, false, ErrTooFewGroups
	}
	preCost, err := s.totalCost(cfg, garbageGroupIdx)
	if err != nil {
		return nil, nil, 0, false, err
	}

	bestI, bestJ, bestUnionCost := -1, -1, mdlmath.MaxValue
	for i := 0; i < len(s.groups); i++ {
		for j := 0; j < i; j++ {
			union, err := freqtable.Union(s.groups[i], s.groups[j])
			if err != nil {
				return nil, nil, 0, false, err
			}
			uc, err := cfg.PartCost(&union)
			if err != nil {
				return nil, nil, 0, false, err
			}
			if uc < bestUnionCost {
				bestUnionCost, bestI, bestJ = uc, i, j
			}
		}
	}

	newGroups := make([]freqtable.Vector, 0, len(s.groups)-1)
	remap := make([]int, len(s.groups))
	for i := range s.groups {
		if i == bestJ {
			continue
		}
		if i == bestI {
			union, err := freqtable.Union(s.groups[bestI], s.groups[bestJ])
			if err != nil {
				return nil, nil, 0, false, err
			}
			remap[i] = len(newGroups)
			newGroups = append(newGroups, union)
			continue
		}
		remap[i] = len(newGroups)
		newGroups = append(newGroups, s.groups[i])
	}
	remap[bestJ] = remap[bestI]

	newAssignment := make([]int, len(s.assignment))
	for row, g := range s.assignment {
		newAssignment[row] = remap[g]
	}

	newGarbageIdx := handleInvalid
	if garbageGroupIdx != handleInvalid {
		newGarbageIdx = remap[garbageGroupIdx]
	}
	mergedTable := (&postOptState{groups: newGroups}).snapshot(cfg.ValueNumber())

	optimized, optimizedAssignment, optimizedCost, err := PostOptimize(source, newAssignment, mergedTable, cfg, newGarbageIdx, tok)
	if err != nil {
		return nil, nil, 0, false, err
	}
	return optimized, optimizedAssignment, optimizedCost, optimizedCost < preCost-mdlmath.Epsilon, nil
}

// ExhaustiveMergeToMinimum repeatedly applies ForceBestMerge until either
// only one group remains or three consecutive merges fail to improve the
// cost, returning the best partition observed along the way (spec.md
// §4.C.5).
func ExhaustiveMergeToMinimum(source *freqtable.Table, assignment []int, chosen *freqtable.Table, cfg *costmodel.Config, garbageGroupIdx int, tok interrupt.Token) (*freqtable.Table, []int, float64, error) {
	if tok == nil {
		tok = interrupt.Never
	}
	curTable, curAssignment := chosen, assignment
	curGarbage := garbageGroupIdx
	bestTable, bestAssignment := chosen, assignment
	s, err := newPostOptState(source, assignment, chosen)
	if err != nil {
		return nil, nil, 0, err
	}
	bestCostVal, err := s.totalCost(cfg, garbageGroupIdx)
	if err != nil {
		return nil, nil, 0, err
	}

	failures := 0
	for curTable.Len() > 1 && failures < 3 {
		if tok.IsRequested() {
			break
		}
		merged, mergedAssignment, mergedCost, improved, err := ForceBestMerge(source, curAssignment, curTable, cfg, curGarbage, tok)
		if err != nil {
			return nil, nil, 0, err
		}
		if improved {
			failures = 0
		} else {
			failures++
		}
		if mergedCost < bestCostVal {
			bestCostVal = mergedCost
			bestTable, bestAssignment = merged, mergedAssignment
		}
		curTable, curAssignment = merged, mergedAssignment
		if curGarbage != handleInvalid {
			curGarbage = largestGroupIndex(curTable)
		}
	}
	return bestTable, bestAssignment, bestCostVal, nil
}
