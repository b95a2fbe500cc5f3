// SPDX-License-Identifier: MIT
//
// File: sweep.go — the granularity ladder sweep driver (spec.md §4.C.1).
package granularity

import (
	"math"

	"github.com/katalvlaran/modl/interrupt"
)

// GMax returns ⌈log2(N)⌉ for N total instances, the maximum granularity
// index (spec.md glossary).
func GMax(totalInstanceNumber int64) int {
	if totalInstanceNumber <= 1 {
		return 0
	}
	return int(math.Ceil(math.Log2(float64(totalInstanceNumber))))
}

// StepResult is what one eligible granularity iteration reports back to
// the sweep's caller.
type StepResult struct {
	Granularity    int
	Assignment     []int
	PartileCount   int
	PreviousPartileCount int
}

// Sweep drives the granularity ladder from g=1 to GMax(b.Total()),
// skipping ineligible levels and invoking onEligible for each eligible
// one. onEligible returns the cost of the candidate it builds from
// step; Sweep tracks and returns the step with the lowest cost seen.
// Cooperative cancellation is polled once per iteration (spec.md §4.C.1,
// §5): when tok.IsRequested(), Sweep returns immediately with whatever
// best step has been found so far (possibly none) and interrupted=true.
func Sweep(b *QuantileBuilder, tok interrupt.Token, onEligible func(StepResult) float64) (best *StepResult, bestCost float64, interrupted bool) {
	if tok == nil {
		tok = interrupt.Never
	}
	gMax := GMax(b.Total())
	prevP := 1
	bestCost = math.Inf(1)

	for g := 1; g <= gMax; g++ {
		if tok.IsRequested() {
			return best, bestCost, true
		}
		assignment, p := b.Granularize(g)
		if !IsEligible(p, prevP, b.RowCount()) {
			prevP = p
			continue
		}
		step := StepResult{
			Granularity:          g,
			Assignment:           assignment,
			PartileCount:         p,
			PreviousPartileCount: prevP,
		}
		cost := onEligible(step)
		if cost < bestCost {
			bestCost = cost
			stepCopy := step
			best = &stepCopy
		}
		prevP = p
	}
	return best, bestCost, false
}
