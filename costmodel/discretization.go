// SPDX-License-Identifier: MIT
//
// File: discretization.go — MODL discretization cost (spec.md §4.B).
package costmodel

import (
	"math"

	"github.com/katalvlaran/modl/freqtable"
	"github.com/katalvlaran/modl/mdlmath"
)

// DiscretizationPartitionCost returns the MODL discretization cost for a
// partition of k intervals, per spec.md §4.B:
//
//	cost(K) = ln 2 + [K>1 and V>1]·( attributeCost + L_bounded(g, Gmax) +
//	                                 L_bounded(K-1, V-1) + (K-1)·ln(V-1) − ln((K-1)!) )
//
// Returns ErrInvalidPartNumber if k < 1.
func (c *Config) DiscretizationPartitionCost(k int) (float64, error) {
	if k < 1 {
		return 0, ErrInvalidPartNumber
	}
	cost := math.Ln2
	v := c.valueNumber
	if k > 1 && v > 1 {
		cost += c.attributeCost
		cost += mdlmath.LBounded(c.granularity, c.GMax())
		cost += mdlmath.LBounded(k-1, v-1)
		cost += float64(k-1)*math.Log(float64(v-1)) - mdlmath.LnFactorial(k-1)
	}
	return cost, nil
}

// PartCost returns the MODL per-part cost for a single frequency vector:
//
//	ln Γ(n_k + T) − ln Γ(T) − Σ_t ln Γ(n_{k,t} + 1)
//
// (spec.md §4.B). Shared verbatim by discretization, grouping and
// histogram flavors since they share the same Dense-multinomial part
// model. Returns ErrNilVector if v is nil.
func (c *Config) PartCost(v *freqtable.Vector) (float64, error) {
	if v == nil {
		return 0, ErrNilVector
	}
	nk := v.Total()
	t := c.classValueNumber
	cost := mdlmath.LnGammaRatio(int(nk), t)
	if v.Kind() == freqtable.Dense {
		for _, nkt := range v.Counts() {
			cost -= mdlmath.LnFactorial(int(nkt))
		}
	}
	return cost, nil
}

// DiscretizationDeltaCost returns the change in cost from K−1 to K
// intervals: compute_partition_cost(K-1) − compute_partition_cost(K)
// (spec.md §4.B, §8 invariant 7). It evaluates both partition costs and
// subtracts them, so it agrees with direct recomputation by construction.
func (c *Config) DiscretizationDeltaCost(k int) (float64, error) {
	if k < 2 {
		return 0, ErrInvalidPartNumber
	}
	costK, err := c.DiscretizationPartitionCost(k)
	if err != nil {
		return 0, err
	}
	costKMinus1, err := c.DiscretizationPartitionCost(k - 1)
	if err != nil {
		return 0, err
	}
	return costKMinus1 - costK, nil
}
