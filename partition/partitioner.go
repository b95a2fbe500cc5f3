// SPDX-License-Identifier: MIT
//
// File: partitioner.go — the top-level Group operation composing
// preprocessing, merge-based construction, and post-optimization (spec.md
// §4.C).
package partition

import (
	"github.com/katalvlaran/modl/costmodel"
	"github.com/katalvlaran/modl/freqtable"
	"github.com/katalvlaran/modl/granularity"
	"github.com/katalvlaran/modl/interrupt"
	"github.com/katalvlaran/modl/mdlmath"
	"github.com/katalvlaran/modl/telemetry"
)

// groupableSource bundles a preprocessed table with its Config factory and
// interrupt token so the "merge" grouper registered in registry.go can
// close over them without widening Grouper's signature.
type groupableSource struct {
	table      *freqtable.Table
	cfgBuilder func(valueNumber int) (*costmodel.Config, error)
	tok        interrupt.Token
}

// Group is the public grouping entry point: it runs the three
// preprocessings (MergePureValues, BuildReliableSubgroups,
// MergeSmallGroups), then drives the granularity sweep (granularity
// package) over the preprocessed table, collapsing rows into quantile
// partiles at each eligible granularity and running the merge-based
// construction over the resulting partile vectors, retaining the argmin
// total cost across the sweep (spec.md §4.C.1). The winning sweep
// candidate is then post-optimized at its fixed group count (spec.md
// §4.C.2, §4.C.3, §4.C.5). The returned GroupResult's Assignment maps
// original source rows (pre-preprocessing) to final group indices.
func Group(source *freqtable.Table, attributeCost float64, maxOutputGroups int, oneSingleGarbageGroup bool, tok interrupt.Token) (*GroupResult, error) {
	if tok == nil {
		tok = interrupt.Never
	}
	if source.Len() == 0 {
		return nil, ErrEmptySource
	}
	if source.Len() == 1 {
		single, err := identitySingleResult(source)
		return single, err
	}

	preAssignment, preprocessed, err := ComposePreprocessing(source, maxOutputGroups, oneSingleGarbageGroup, tok)
	if err != nil {
		return nil, err
	}

	rows := preprocessed.Len()
	classValueNumber := vectorSizeOfTable(preprocessed)
	vectors := make([]freqtable.Vector, rows)
	frequencies := make([]int64, rows)
	for i := range vectors {
		v, err := preprocessed.Vector(i)
		if err != nil {
			return nil, err
		}
		vectors[i] = v
		frequencies[i] = v.Total()
	}

	builder, err := granularity.NewQuantileBuilder(frequencies)
	if err != nil {
		return nil, err
	}

	type candidate struct {
		result     *GroupResult
		assignment []int
		cfg        *costmodel.Config
	}
	var bestCandidate *candidate

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
		partiled := freqtable.NewWithCapacity(freqtable.Dense, vectorSizeOf(partileVectors), step.PartileCount)
		for _, v := range partileVectors {
			if err := partiled.Append(v); err != nil {
				return mdlmath.MaxValue
			}
		}
		partiled.SetInitialValueNumber(step.PartileCount)

		stepCfgBuilder := func(valueNumber int) (*costmodel.Config, error) {
			return costmodel.NewConfig(int(preprocessed.Total()), valueNumber, classValueNumber,
				costmodel.WithAttributeCost(attributeCost), costmodel.WithGranularity(step.Granularity))
		}

		result, err := buildMergeConstruction(partiled, stepCfgBuilder, tok)
		if err != nil {
			return mdlmath.MaxValue
		}

		cfg, err := stepCfgBuilder(step.PartileCount)
		if err != nil {
			return mdlmath.MaxValue
		}

		finalAssignment := make([]int, rows)
		for row, part := range step.Assignment {
			finalAssignment[row] = result.Assignment[part]
		}
		if bestCandidate == nil || result.ChosenCost < bestCandidate.result.ChosenCost {
			bestCandidate = &candidate{result: result, assignment: finalAssignment, cfg: cfg}
		}
		return result.ChosenCost
	})

	if bestCandidate == nil {
		if interrupted {
			return nil, telemetry.ErrInterrupted
		}
		return nil, ErrEmptySource
	}

	result := bestCandidate.result
	cfg := bestCandidate.cfg
	garbageIdx := handleInvalid
	if result.Chosen == result.WithGarbage {
		garbageIdx = largestGroupIndex(result.Chosen)
	}
	optimized, optimizedAssignment, optimizedCost, err := PostOptimize(preprocessed, bestCandidate.assignment, result.Chosen, cfg, garbageIdx, tok)
	if err != nil {
		return nil, err
	}
	result.Chosen = optimized
	result.ChosenCost = optimizedCost

	final := make([]int, len(preAssignment))
	for i, mid := range preAssignment {
		final[i] = optimizedAssignment[mid]
	}
	result.Assignment = final
	return result, nil
}

func identitySingleResult(source *freqtable.Table) (*GroupResult, error) {
	v, err := source.Vector(0)
	if err != nil {
		return nil, err
	}
	out := freqtable.NewWithCapacity(freqtable.Dense, v.Size(), 1)
	if err := out.Append(v.Clone()); err != nil {
		return nil, err
	}
	return &GroupResult{WithoutGarbage: out, Chosen: out, Assignment: []int{0}}, nil
}

func largestGroupIndex(t *freqtable.Table) int {
	best, bestMod := handleInvalid, -1
	for i := 0; i < t.Len(); i++ {
		v, err := t.Vector(i)
		if err != nil {
			continue
		}
		if v.ModalityNumber() > bestMod {
			best, bestMod = i, v.ModalityNumber()
		}
	}
	return best
}
