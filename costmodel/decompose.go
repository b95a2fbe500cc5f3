// SPDX-License-Identifier: MIT
//
// File: decompose.go — construction/preparation/data cost decomposition
// (spec.md §4.B, §8 invariant 6).
package costmodel

import (
	"math"

	"github.com/katalvlaran/modl/mdlmath"
)

// Decomposition splits a total model cost into its three MDL components:
//
//	construction = ln 2 + [K>1]·attributeCost
//	preparation  = modelCost − construction
//	data         = total − modelCost
//
// All three are clamped to 0 at the ε boundary (spec.md §4.B, §5).
type Decomposition struct {
	Construction float64
	Preparation  float64
	Data         float64
}

// Sum returns Construction + Preparation + Data, which must equal the
// original total up to mdlmath.Epsilon (spec.md §8 invariant 6).
func (d Decomposition) Sum() float64 {
	return d.Construction + d.Preparation + d.Data
}

// Decompose splits modelCost (the partition-level cost, excluding the
// Σ part costs) and total (modelCost plus the summed part/data costs)
// into the three-way decomposition.
func (c *Config) Decompose(k int, modelCost, total float64) Decomposition {
	construction := math.Ln2
	if k > 1 {
		construction += c.attributeCost
	}
	preparation := mdlmath.ClampNonNegative(modelCost - construction)
	data := mdlmath.ClampNonNegative(total - modelCost)
	return Decomposition{
		Construction: mdlmath.ClampNonNegative(construction),
		Preparation:  preparation,
		Data:         data,
	}
}
