// SPDX-License-Identifier: MIT
//
// File: types.go — AttributePartition, the tagged variant a Grid carries
// per attribute (spec.md §3).
package datagrid

import (
	"math"
	"sort"
)

// PartitionKind tags which variant an AttributePartition carries.
type PartitionKind int

const (
	// KindDiscretization holds K-1 sorted interval bounds.
	KindDiscretization PartitionKind = iota
	// KindGrouping holds kept symbols grouped by FirstValueIndex, with an
	// optional garbage group and catch-all ("*") bookkeeping.
	KindGrouping
	// KindContinuousValues is a singleton partition: one numeric value
	// per part.
	KindContinuousValues
	// KindSymbolValues is a singleton partition: one symbol per part,
	// possibly including the catch-all "*".
	KindSymbolValues
	// KindVirtualValues is type-less; only frequencies matter.
	KindVirtualValues
)

// StarSymbol is the sentinel default/catch-all value for Grouping
// partitions (spec.md §3).
const StarSymbol = "*"

// Value is a single observation for ComputePartIndexFor: either a
// Continuous number or a categorical Symbol.
type Value struct {
	IsContinuous bool
	Continuous   float64
	Symbol       string
}

// AttributePartition is the tagged variant a Grid carries per attribute
// (spec.md §3's AttributePartition).
type AttributePartition struct {
	Kind                    PartitionKind
	AttributeName           string
	InitialValueNumber      int
	GranularizedValueNumber int

	// Discretization payload: K-1 sorted bounds, non-strictly increasing.
	// A first bound equal to mdlmath.MissingValue splits off a leading
	// {Missing} interval.
	Bounds []float64

	// Grouping payload.
	Symbols             []string // kept symbols, one entry per retained modality
	FirstValueIndex     []int    // per group, strictly increasing indices into Symbols
	GarbageGroupIndex   int      // -1 if absent, else 0..K-1
	CatchAllValueNumber int

	// Singleton payload for ContinuousValues / SymbolValues.
	ContinuousSingleton []float64
	SymbolSingleton     []string

	// partCount is memoized at construction; see PartCount.
	partCount int
}

// NewDiscretization builds a Discretization AttributePartition from sorted
// interval bounds. PartCount() == len(bounds)+1.
func NewDiscretization(name string, bounds []float64, initialValueNumber, granularizedValueNumber int) *AttributePartition {
	b := append([]float64(nil), bounds...)
	return &AttributePartition{
		Kind:                    KindDiscretization,
		AttributeName:           name,
		Bounds:                  b,
		InitialValueNumber:      initialValueNumber,
		GranularizedValueNumber: granularizedValueNumber,
		GarbageGroupIndex:       -1,
		partCount:               len(b) + 1,
	}
}

// NewGrouping builds a Grouping AttributePartition. symbols must contain
// StarSymbol exactly once; firstValueIndex must be strictly increasing and
// start at 0.
func NewGrouping(name string, symbols []string, firstValueIndex []int, garbageGroupIndex, catchAllValueNumber, initialValueNumber, granularizedValueNumber int) *AttributePartition {
	return &AttributePartition{
		Kind:                    KindGrouping,
		AttributeName:           name,
		Symbols:                 append([]string(nil), symbols...),
		FirstValueIndex:         append([]int(nil), firstValueIndex...),
		GarbageGroupIndex:       garbageGroupIndex,
		CatchAllValueNumber:     catchAllValueNumber,
		InitialValueNumber:      initialValueNumber,
		GranularizedValueNumber: granularizedValueNumber,
		partCount:               len(firstValueIndex),
	}
}

// NewContinuousSingleton builds a ContinuousValues singleton partition:
// one unique numeric value per part.
func NewContinuousSingleton(name string, values []float64) *AttributePartition {
	v := append([]float64(nil), values...)
	sort.Float64s(v)
	return &AttributePartition{
		Kind:                    KindContinuousValues,
		AttributeName:           name,
		ContinuousSingleton:     v,
		InitialValueNumber:      len(v),
		GranularizedValueNumber: len(v),
		GarbageGroupIndex:       -1,
		partCount:               len(v),
	}
}

// NewSymbolSingleton builds a SymbolValues singleton partition: one symbol
// per part, possibly including StarSymbol.
func NewSymbolSingleton(name string, values []string) *AttributePartition {
	v := append([]string(nil), values...)
	return &AttributePartition{
		Kind:                    KindSymbolValues,
		AttributeName:           name,
		SymbolSingleton:         v,
		InitialValueNumber:      len(v),
		GranularizedValueNumber: len(v),
		GarbageGroupIndex:       -1,
		partCount:               len(v),
	}
}

// NewVirtual builds a type-less VirtualValues partition with the given
// part count; only frequencies matter for this variant.
func NewVirtual(name string, partCount int) *AttributePartition {
	return &AttributePartition{
		Kind:              KindVirtualValues,
		AttributeName:     name,
		InitialValueNumber: partCount,
		GarbageGroupIndex: -1,
		partCount:         partCount,
	}
}

// PartCount returns the number of parts this partition contributes to a
// Grid's shape.
func (p *AttributePartition) PartCount() int {
	return p.partCount
}

// ComputePartIndexFor returns the part index v falls into, the default
// group index if v is an absent symbol, or -1 for a singleton
// continuous/symbol partition with no exact match (spec.md §3's lookup
// contract).
func (p *AttributePartition) ComputePartIndexFor(v Value) int {
	switch p.Kind {
	case KindDiscretization:
		return p.discretizationIndex(v)
	case KindGrouping:
		return p.groupingIndex(v)
	case KindContinuousValues:
		return searchFloat64(p.ContinuousSingleton, v.Continuous)
	case KindSymbolValues:
		return searchString(p.SymbolSingleton, v.Symbol)
	default: // KindVirtualValues
		return -1
	}
}

func (p *AttributePartition) discretizationIndex(v Value) int {
	// A leading bound equal to MissingValue splits off a {Missing}
	// interval at index 0.
	if len(p.Bounds) > 0 && isMissingSentinel(p.Bounds[0]) {
		if isMissingSentinel(v.Continuous) {
			return 0
		}
		// search in bounds[1:], offset result by 1.
		idx := sort.SearchFloat64s(p.Bounds[1:], v.Continuous)
		// sort.Search returns first index where bounds[i] >= v is false for <=;
		// interval i covers ]b[i-1], b[i]], so we want first bound >= v.
		for idx < len(p.Bounds)-1 && p.Bounds[1+idx] < v.Continuous {
			idx++
		}
		return idx + 1
	}
	idx := 0
	for idx < len(p.Bounds) && v.Continuous > p.Bounds[idx] {
		idx++
	}
	return idx
}

func (p *AttributePartition) groupingIndex(v Value) int {
	// Find which group the symbol maps to; default to the group holding
	// StarSymbol if the symbol is not explicitly listed.
	starGroup := -1
	for gi := 0; gi < len(p.FirstValueIndex); gi++ {
		lo := p.FirstValueIndex[gi]
		hi := len(p.Symbols)
		if gi+1 < len(p.FirstValueIndex) {
			hi = p.FirstValueIndex[gi+1]
		}
		for si := lo; si < hi; si++ {
			if p.Symbols[si] == StarSymbol {
				starGroup = gi
			}
			if p.Symbols[si] == v.Symbol {
				return gi
			}
		}
	}
	return starGroup
}

// isMissingSentinel reports whether v is the MissingValue sentinel
// (mdlmath.MissingValue == math.Inf(-1)), written as a plain float64
// predicate so that this package does not import mdlmath.
func isMissingSentinel(v float64) bool {
	return math.IsInf(v, -1)
}

func searchFloat64(values []float64, target float64) int {
	for i, v := range values {
		if v == target {
			return i
		}
	}
	return -1
}

func searchString(values []string, target string) int {
	for i, v := range values {
		if v == target {
			return i
		}
	}
	return -1
}
