// SPDX-License-Identifier: MIT
//
// File: table.go — Table: an ordered, homogeneous sequence of Vectors plus
// granularity/garbage metadata (spec.md §3, §4.A).
package freqtable

import (
	"sort"

	"github.com/katalvlaran/modl/datagrid"
)

// Table holds K ordered FrequencyVectors that all share Kind and, for
// Dense, Size, plus the partition-level metadata the optimizer and cost
// model need: the source value count it was built from, the granularity
// index it corresponds to, and which part (if any) holds the garbage
// catch-all group.
type Table struct {
	kind           Kind
	vectorSize     int // Dense only; 0 for Histogram
	vectors        []Vector
	total          int64
	initialValues  int // V: number of distinct source values before grouping
	granularity    int
	garbagePartIdx int // -1 if no garbage group
}

// NewWithCapacity returns an empty Table configured for Dense vectors of
// the given class count, or Histogram vectors when vectorSize == 0.
func NewWithCapacity(kind Kind, vectorSize int, capacity int) *Table {
	return &Table{
		kind:           kind,
		vectorSize:     vectorSize,
		vectors:        make([]Vector, 0, capacity),
		garbagePartIdx: -1,
	}
}

// Len returns the number of vectors (parts) currently in the table.
func (t *Table) Len() int { return len(t.vectors) }

// Vector returns the vector at i.
func (t *Table) Vector(i int) (Vector, error) {
	if i < 0 || i >= len(t.vectors) {
		return Vector{}, ErrIndexOutOfRange
	}
	return t.vectors[i], nil
}

// SetVector replaces the vector at i, validating Kind/Size and the
// "no zero-frequency vector when len > 1" invariant (spec.md §3),
// maintaining the memoized Total.
func (t *Table) SetVector(i int, v Vector) error {
	if i < 0 || i >= len(t.vectors) {
		return ErrIndexOutOfRange
	}
	if err := t.validateVector(v); err != nil {
		return err
	}
	if v.Total() == 0 && len(t.vectors) > 1 {
		return ErrEmptyVectorNotAllowed
	}
	t.total -= t.vectors[i].Total()
	t.total += v.Total()
	t.vectors[i] = v
	return nil
}

// Append adds v as a new last vector, validating as SetVector does.
func (t *Table) Append(v Vector) error {
	if err := t.validateVector(v); err != nil {
		return err
	}
	if v.Total() == 0 && len(t.vectors) >= 1 {
		return ErrEmptyVectorNotAllowed
	}
	t.vectors = append(t.vectors, v)
	t.total += v.Total()
	return nil
}

func (t *Table) validateVector(v Vector) error {
	if v.Kind() != t.kind {
		return ErrKindMismatch
	}
	if t.kind == Dense && v.Size() != t.vectorSize {
		return ErrSizeMismatch
	}
	return nil
}

// Total returns the memoized grand total frequency across every vector.
func (t *Table) Total() int64 { return t.total }

// PartialTotal returns the total frequency of the vectors in [from, to).
func (t *Table) PartialTotal(from, to int) (int64, error) {
	if from < 0 || to > len(t.vectors) || from > to {
		return 0, ErrIndexOutOfRange
	}
	var s int64
	for i := from; i < to; i++ {
		s += t.vectors[i].Total()
	}
	return s, nil
}

// SetInitialValueNumber records V, the distinct source value count this
// table was constructed from, before any grouping collapsed it.
func (t *Table) SetInitialValueNumber(v int) { t.initialValues = v }

// InitialValueNumber returns V.
func (t *Table) InitialValueNumber() int { return t.initialValues }

// SetGranularity records which granularity-ladder index this table
// corresponds to.
func (t *Table) SetGranularity(g int) { t.granularity = g }

// Granularity returns the recorded granularity index.
func (t *Table) Granularity() int { return t.granularity }

// SetGarbagePartIndex records which part, if any, is the garbage
// catch-all group; pass -1 to indicate no garbage group.
func (t *Table) SetGarbagePartIndex(idx int) error {
	if idx >= 0 && len(t.vectors) < 3 {
		return ErrGarbageRequiresThreeVectors
	}
	t.garbagePartIdx = idx
	return nil
}

// GarbagePartIndex returns the garbage part index, or -1 if none.
func (t *Table) GarbagePartIndex() int { return t.garbagePartIdx }

// HasGarbage reports whether a garbage group is configured.
func (t *Table) HasGarbage() bool { return t.garbagePartIdx >= 0 }

// ComputeTargetFrequencies returns the Dense table's column sums — the
// marginal target-class frequencies across every part.
func (t *Table) ComputeTargetFrequencies() ([]int64, error) {
	if t.kind != Dense {
		return nil, ErrKindMismatch
	}
	out := make([]int64, t.vectorSize)
	for _, v := range t.vectors {
		for c, n := range v.Counts() {
			out[c] += n
		}
	}
	return out, nil
}

// ComputeNullTable returns the single-vector table representing "no
// partition": one part holding the sum of every vector.
func (t *Table) ComputeNullTable() (*Table, error) {
	out := NewWithCapacity(t.kind, t.vectorSize, 1)
	if len(t.vectors) == 0 {
		return out, nil
	}
	merged := t.vectors[0].Clone()
	for _, v := range t.vectors[1:] {
		if err := merged.Add(v); err != nil {
			return nil, err
		}
	}
	if err := out.Append(merged); err != nil {
		return nil, err
	}
	out.initialValues = t.initialValues
	return out, nil
}

// ImportFromDataGrid builds a Dense Table from one source attribute's
// parts against a target attribute in grid g (spec.md §4.A, §4.D).
func ImportFromDataGrid(g *datagrid.Grid, sourceAttrIdx, targetAttrIdx int) (*Table, error) {
	cells, err := g.ExportSourceCellsAt(targetAttrIdx)
	if err != nil {
		return nil, err
	}
	srcAttr, err := g.Attribute(sourceAttrIdx)
	if err != nil {
		return nil, err
	}
	targetAttr, err := g.Attribute(targetAttrIdx)
	if err != nil {
		return nil, err
	}
	targetParts := targetAttr.PartCount()

	byPart := make([][]int64, srcAttr.PartCount())
	for i := range byPart {
		byPart[i] = make([]int64, targetParts)
	}
	for _, cell := range cells {
		var srcPart int
		for i, idx := range cell.SourcePartIndices {
			if i == sourceAttrIdxPosition(g, sourceAttrIdx, targetAttrIdx) {
				srcPart = idx
			}
		}
		for c, f := range cell.TargetFrequencies {
			byPart[srcPart][c] += f
		}
	}

	out := NewWithCapacity(Dense, targetParts, len(byPart))
	for _, counts := range byPart {
		if err := out.Append(NewDenseVector(counts, 1)); err != nil {
			return nil, err
		}
	}
	out.SetInitialValueNumber(srcAttr.InitialValueNumber)
	return out, nil
}

// sourceAttrIdxPosition maps a source attribute's grid index to its
// position within ExportSourceCellsAt's SourcePartIndices slice, which
// skips the target attribute.
func sourceAttrIdxPosition(g *datagrid.Grid, sourceAttrIdx, targetAttrIdx int) int {
	if sourceAttrIdx < targetAttrIdx {
		return sourceAttrIdx
	}
	return sourceAttrIdx - 1
}

// FilterEmptyVectors removes zero-frequency vectors in place, preserving
// order, and returns the number removed.
func (t *Table) FilterEmptyVectors() int {
	kept := t.vectors[:0]
	removed := 0
	for _, v := range t.vectors {
		if v.Total() == 0 {
			removed++
			continue
		}
		kept = append(kept, v)
	}
	t.vectors = kept
	return removed
}

// IsSortedBySourceFrequency reports whether vectors are in descending
// Total() order.
func (t *Table) IsSortedBySourceFrequency() bool {
	for i := 1; i < len(t.vectors); i++ {
		if t.vectors[i].Total() > t.vectors[i-1].Total() {
			return false
		}
	}
	return true
}

// SortBySourceFrequency reorders vectors into descending Total() order.
// The sort is not stable by design: ties are broken arbitrarily, matching
// the teacher's preference for sort.Slice over sort.SliceStable absent a
// documented tie-break rule.
func (t *Table) SortBySourceFrequency() {
	sort.Slice(t.vectors, func(i, j int) bool {
		return t.vectors[i].Total() > t.vectors[j].Total()
	})
}

// SortBySourceAndFirstModalityFrequency reorders vectors into descending
// Total() order, breaking ties by ascending ModalityNumber() (fewer
// modalities first), matching the preprocessing order the merge optimizer
// expects before it assigns initial singleton handles.
func (t *Table) SortBySourceAndFirstModalityFrequency() {
	sort.Slice(t.vectors, func(i, j int) bool {
		a, b := t.vectors[i], t.vectors[j]
		if a.Total() != b.Total() {
			return a.Total() > b.Total()
		}
		return a.ModalityNumber() < b.ModalityNumber()
	})
}
