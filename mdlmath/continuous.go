// SPDX-License-Identifier: MIT
//
// File: continuous.go
// Role: the Continuous numeric model — sentinels and mantissa-rounded
// bound helpers described in spec.md §6.
package mdlmath

import "math"

// Continuous is an IEEE 754 double with a mantissa-rounding step of 1e-10
// (10 significant digits), per spec.md §6.
type Continuous = float64

// Digits is the number of significant decimal digits a Continuous value
// keeps; it drives the decade decomposition used by NumberDistinctValues.
const Digits = 10

// Epsilon is the single comparison/clamp threshold used across the module
// for "strictly better" tests and for absorbing small negative residues in
// algebraic ΔCost computations (spec.md §5, §8).
const Epsilon = 1e-6

// MissingValue is the sentinel ordered below every other representable
// value (spec.md §6).
var MissingValue Continuous = math.Inf(-1)

// EpsilonValue is the smallest strictly-positive representable value used
// by this module's bound arithmetic.
var EpsilonValue Continuous = math.SmallestNonzeroFloat64

// MaxValue is the largest finite representable value used by this
// module's bound arithmetic.
var MaxValue Continuous = math.MaxFloat64

// decadeStep is 10^(Digits-1), the smallest mantissa increment within one
// decade at the configured precision.
var decadeStep = math.Pow(10, float64(Digits-1))

// ClosestLowerBound returns the nearest representable value strictly below
// v at the module's configured precision, honoring the three sentinels.
//
// Complexity: O(1).
func ClosestLowerBound(v Continuous) Continuous {
	switch {
	case v == MissingValue:
		return MissingValue
	case v > 0 && v <= EpsilonValue:
		// The smallest positive value snaps down to MissingValue, the
		// mirror of ClosestUpperBound(MissingValue) == EpsilonValue.
		return MissingValue
	case math.IsInf(v, 1):
		return MaxValue
	default:
		return v - decadeUnit(v)
	}
}

// ClosestUpperBound returns the nearest representable value strictly above
// v at the module's configured precision, honoring the three sentinels.
//
// Complexity: O(1).
func ClosestUpperBound(v Continuous) Continuous {
	switch {
	case v == MissingValue:
		return EpsilonValue
	case v >= MaxValue:
		return MaxValue
	default:
		return v + decadeUnit(v)
	}
}

// decadeUnit returns the precision increment applicable to v's decade: the
// magnitude of v's most significant digit divided by 10^(Digits-1).
func decadeUnit(v Continuous) Continuous {
	av := math.Abs(v)
	if av == 0 {
		return 1.0 / decadeStep
	}
	exp := math.Floor(math.Log10(av))
	return math.Pow(10, exp) / decadeStep
}

// NumberDistinctValues counts representable Continuous values within
// [min, max] using the decade decomposition: one decade spanning magnitude
// [10^(D-1), 10^D) contains 10^D - 10^(D-1) distinct mantissas, where
// D = Digits. Ranges spanning zero or crossing sign are handled by summing
// contributions from the negative and non-negative halves.
//
// Complexity: O(log(max/min)) — bounded number of decades.
func NumberDistinctValues(min, max Continuous) float64 {
	if max <= min {
		return 0
	}
	if min < 0 && max > 0 {
		return NumberDistinctValues(0, max) + NumberDistinctValues(0, -min)
	}
	if min < 0 {
		return NumberDistinctValues(-max, -min)
	}
	// 0 <= min < max now.
	if min == 0 {
		if max == 0 {
			return 0
		}
		// Count every decade from the smallest representable magnitude
		// up to max.
		return countDecades(EpsilonValue, max)
	}
	return countDecades(min, max)
}

// countDecades sums 10^D - 10^(D-1) once for every decade from lo's up to
// hi's, both included (0 < lo < hi).
func countDecades(lo, hi Continuous) float64 {
	loExp := math.Floor(math.Log10(lo))
	hiExp := math.Floor(math.Log10(hi))
	total := 0.0
	perDecade := math.Pow(10, float64(Digits)) - math.Pow(10, float64(Digits-1))
	for e := loExp; e <= hiExp; e++ {
		total += perDecade
	}
	if total < 1 {
		return 1
	}
	return total
}

// ClampEpsilon returns 0 if |x| < Epsilon, otherwise x unchanged. This is
// the NumericClampApplied rule from spec.md §7: not an error, a silent
// correction for small FP residues from algebraic derivations.
func ClampEpsilon(x Continuous) Continuous {
	if math.Abs(x) < Epsilon {
		return 0
	}
	return x
}

// ClampNonNegative clamps small negative residues (within Epsilon of zero)
// up to zero, leaving larger negatives untouched so genuine bugs remain
// visible to callers that assert non-negativity.
func ClampNonNegative(x Continuous) Continuous {
	if x < 0 && x >= -Epsilon {
		return 0
	}
	return x
}
