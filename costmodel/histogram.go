// SPDX-License-Identifier: MIT
//
// File: histogram.go — histogram (G-Enum / G-Enum-fp) cost (spec.md §4.B,
// §4.C.6, §6).
package costmodel

import (
	"math"

	"github.com/katalvlaran/modl/mdlmath"
)

// MaxElementaryBins is the target grid size E from spec.md §6's histogram
// grid derivation.
const MaxElementaryBins = 1e9

// HistogramGrid is the derived epsilon-bin grid for a [min, max] continuous
// range, per spec.md §6's "Histogram grid derivation".
type HistogramGrid struct {
	EpsilonBinLength float64
	LowerBound       float64
	UpperBound       float64
	MaxPartileNumber int
}

// DeriveHistogramGrid computes the epsilon-bin grid for the given range,
// sample count n, and elementary bin budget e (pass MaxElementaryBins for
// the spec default). distinctValues is typically
// mdlmath.NumberDistinctValues(min, max).
func DeriveHistogramGrid(min, max float64, n int, e float64, distinctValues float64) HistogramGrid {
	var epsilon float64
	if min == max || min == 0 || max == 0 {
		m := math.Max(math.Abs(min), math.Abs(max))
		if m < 1 {
			m = 1
		}
		epsilon = 2 / e * m
	} else {
		epsilon = (max - min) / (e - 1)
	}

	lower := min - epsilon/2
	upper := max + epsilon/2
	if lower >= min {
		lower = mdlmath.ClosestLowerBound(min)
	}
	if upper <= max {
		upper = mdlmath.ClosestUpperBound(max)
	}

	denom := math.Sqrt(float64(n) * math.Log(float64(n)))
	if denom < 1 {
		denom = 1
	}
	maxPartiles := int(e)
	if alt := int(distinctValues / denom); alt < maxPartiles {
		maxPartiles = alt
	}
	if maxPartiles < 1 {
		maxPartiles = 1
	}

	return HistogramGrid{
		EpsilonBinLength: epsilon,
		LowerBound:       lower,
		UpperBound:       upper,
		MaxPartileNumber: maxPartiles,
	}
}

// HistogramPartitionCost returns the G-Enum histogram cost for k intervals
// over a domain of lengthInBins elementary bins, analogous in form to
// DiscretizationPartitionCost but substituting the bin-length bookkeeping
// for the plain value count V (spec.md §4.B: "analogous form with
// interval-length bookkeeping"). lengthInBins plays the role of V in the
// discretization formula: it gates the informative branch and
// lengthInBins-1, the number of interior elementary bin boundaries (each an
// equally-likely cut point), replaces V-1 in the combinatorial terms.
func (c *Config) HistogramPartitionCost(k int, lengthInBins float64) (float64, error) {
	if k < 1 {
		return 0, ErrInvalidPartNumber
	}
	cost := math.Ln2
	if k > 1 && lengthInBins > 1 {
		cost += c.attributeCost
		cost += mdlmath.LBounded(c.granularity, c.GMax())
		cost += mdlmath.LBounded(k-1, int(lengthInBins)-1)
		cost += float64(k-1)*math.Log(lengthInBins-1) - mdlmath.LnFactorial(k-1)
	}
	return cost, nil
}

// HistogramDeltaCost mirrors DiscretizationDeltaCost for the histogram
// flavor.
func (c *Config) HistogramDeltaCost(k int, lengthInBins float64) (float64, error) {
	if k < 2 {
		return 0, ErrInvalidPartNumber
	}
	costK, err := c.HistogramPartitionCost(k, lengthInBins)
	if err != nil {
		return 0, err
	}
	costKMinus1, err := c.HistogramPartitionCost(k-1, lengthInBins)
	if err != nil {
		return 0, err
	}
	return costKMinus1 - costK, nil
}
