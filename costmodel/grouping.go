// SPDX-License-Identifier: MIT
//
// File: grouping.go — MODL grouping cost with optional garbage group
// (spec.md §4.B).
package costmodel

import (
	"math"

	"github.com/katalvlaran/modl/mdlmath"
)

// GroupingPartitionCost returns the MODL grouping cost for k groups, of
// which garbageModalityNumber values have been folded into a garbage
// group (0 means no garbage group), per spec.md §4.B:
//
//	K_inf = K - [garbage>0], V_inf = V - garbageModalityNumber
//	cost(K, garbage) = ln 2 + [informative]·(
//	    attributeCost + L_bounded(g, Gmax) +
//	    [V >= minValuesForGarbage]·ln 2 +
//	    garbage == 0:
//	        L_bounded(K_inf-1, V_inf-1) + LnBell(V_inf, K_inf)
//	    garbage > 0:
//	        L_bounded(V_inf-1, V-2) + V_inf·ln(V) - ln(Γ(V_inf+1)) +
//	        L_bounded(K_inf-1, V_inf-1) + LnBell(V_inf, K_inf)
//	)
//
// "Informative" is K_inf > 1 and V_inf > 1, matching the discretization
// flavor's [K>1 and V>1] gate generalized to the garbage-adjusted counts.
// Returns ErrInvalidPartNumber if k < 1, or ErrInvalidGarbageModalityNumber
// if garbageModalityNumber is negative or >= V.
func (c *Config) GroupingPartitionCost(k, garbageModalityNumber int) (float64, error) {
	if k < 1 {
		return 0, ErrInvalidPartNumber
	}
	v := c.valueNumber
	if garbageModalityNumber < 0 || garbageModalityNumber >= v {
		return 0, ErrInvalidGarbageModalityNumber
	}

	hasGarbage := garbageModalityNumber > 0
	kInf := k
	if hasGarbage {
		kInf = k - 1
	}
	vInf := v - garbageModalityNumber

	cost := math.Ln2
	informative := kInf > 1 && vInf > 1
	if !informative {
		return cost, nil
	}

	cost += c.attributeCost
	cost += mdlmath.LBounded(c.granularity, c.GMax())
	if v >= c.minValuesForGarbage {
		cost += math.Ln2
	}

	if !hasGarbage {
		cost += mdlmath.LBounded(kInf-1, vInf-1)
		cost += mdlmath.LnBell(vInf, kInf)
		return cost, nil
	}

	cost += mdlmath.LBounded(vInf-1, v-2)
	cost += float64(vInf)*math.Log(float64(v)) - mdlmath.LnFactorial(vInf)
	cost += mdlmath.LBounded(kInf-1, vInf-1)
	cost += mdlmath.LnBell(vInf, kInf)
	return cost, nil
}

// GroupingDeltaCost returns compute_partition_cost(K-1, garbage) −
// compute_partition_cost(K, garbage) holding the garbage modality count
// fixed (spec.md §8 invariant 7, restricted to moves that do not change
// garbage size; moves that do must recompute both terms directly).
func (c *Config) GroupingDeltaCost(k, garbageModalityNumber int) (float64, error) {
	if k < 2 {
		return 0, ErrInvalidPartNumber
	}
	costK, err := c.GroupingPartitionCost(k, garbageModalityNumber)
	if err != nil {
		return 0, err
	}
	costKMinus1, err := c.GroupingPartitionCost(k-1, garbageModalityNumber)
	if err != nil {
		return 0, err
	}
	return costKMinus1 - costK, nil
}
