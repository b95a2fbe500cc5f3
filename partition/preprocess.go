// SPDX-License-Identifier: MIT
//
// File: preprocess.go — the three grouping preprocessings (spec.md
// §4.C.3).
package partition

import (
	"encoding/binary"
	"encoding/hex"
	"sort"

	"github.com/katalvlaran/modl/freqtable"
	"github.com/katalvlaran/modl/interrupt"
)

// MergePureValues merges every initial modality whose target counts are
// concentrated in exactly one class with all other pure modalities of
// that class, producing one aggregated vector per observed pure class
// plus every originally-mixed vector untouched (spec.md §4.C.3.1).
// Returns the old->new index assignment and the resulting table.
func MergePureValues(source *freqtable.Table) ([]int, *freqtable.Table, error) {
	n := source.Len()
	if n == 0 {
		return nil, nil, ErrEmptySource
	}
	size := vectorSizeOfTable(source)

	pureClassGroup := make(map[int]int) // class -> new group index
	assignment := make([]int, n)
	var newVectors []freqtable.Vector

	for i := 0; i < n; i++ {
		v, err := source.Vector(i)
		if err != nil {
			return nil, nil, err
		}
		if cls, ok := purityClass(v); ok {
			gi, exists := pureClassGroup[cls]
			if !exists {
				gi = len(newVectors)
				newVectors = append(newVectors, v.Clone())
				pureClassGroup[cls] = gi
				assignment[i] = gi
				continue
			}
			if err := newVectors[gi].Add(v); err != nil {
				return nil, nil, err
			}
			assignment[i] = gi
			continue
		}
		gi := len(newVectors)
		newVectors = append(newVectors, v.Clone())
		assignment[i] = gi
	}

	out := freqtable.NewWithCapacity(freqtable.Dense, size, len(newVectors))
	for _, v := range newVectors {
		if err := out.Append(v); err != nil {
			return nil, nil, err
		}
	}
	out.SetInitialValueNumber(source.InitialValueNumber())
	return assignment, out, nil
}

// purityClass reports the single target class a Dense vector's frequency
// is concentrated in, if any.
func purityClass(v freqtable.Vector) (int, bool) {
	if v.Kind() != freqtable.Dense {
		return 0, false
	}
	cls := -1
	for c, n := range v.Counts() {
		if n > 0 {
			if cls != -1 {
				return 0, false
			}
			cls = c
		}
	}
	if cls == -1 {
		return 0, false
	}
	return cls, true
}

// BuildReliableSubgroups runs SubgroupTwoClass once per target class in a
// one-vs-rest fashion and intersects the resulting assignments: a
// reliable subgroup is the equivalence class of modalities that landed in
// the same subgroup under every one-vs-rest run (spec.md §4.C.3.2). Keys
// are built by hex-encoding each modality's per-run subgroup index
// vector, each index written as a varint, keeping them compact and unique.
func BuildReliableSubgroups(source *freqtable.Table, tok interrupt.Token) ([]int, *freqtable.Table, error) {
	n := source.Len()
	if n == 0 {
		return nil, nil, ErrEmptySource
	}
	classCount := vectorSizeOfTable(source)
	if classCount < 2 {
		return identityAssignment(source)
	}

	perRunAssignment := make([][]int, classCount)
	for cls := 0; cls < classCount; cls++ {
		oneVsRest, err := projectOneVsRest(source, cls)
		if err != nil {
			return nil, nil, err
		}
		assignment, _, err := SubgroupTwoClass(oneVsRest, false, tok)
		if err != nil {
			return nil, nil, err
		}
		perRunAssignment[cls] = assignment
	}

	keyOf := func(row int) string {
		buf := make([]byte, 0, classCount)
		for cls := 0; cls < classCount; cls++ {
			buf = binary.AppendUvarint(buf, uint64(perRunAssignment[cls][row]))
		}
		return hex.EncodeToString(buf)
	}

	keyToGroup := make(map[string]int)
	assignment := make([]int, n)
	var groupRows [][]int
	for row := 0; row < n; row++ {
		k := keyOf(row)
		gi, ok := keyToGroup[k]
		if !ok {
			gi = len(groupRows)
			keyToGroup[k] = gi
			groupRows = append(groupRows, nil)
		}
		groupRows[gi] = append(groupRows[gi], row)
		assignment[row] = gi
	}

	size := vectorSizeOfTable(source)
	out := freqtable.NewWithCapacity(freqtable.Dense, size, len(groupRows))
	for _, rows := range groupRows {
		merged, err := source.Vector(rows[0])
		if err != nil {
			return nil, nil, err
		}
		merged = merged.Clone()
		for _, r := range rows[1:] {
			v, err := source.Vector(r)
			if err != nil {
				return nil, nil, err
			}
			if err := merged.Add(v); err != nil {
				return nil, nil, err
			}
		}
		if err := out.Append(merged); err != nil {
			return nil, nil, err
		}
	}
	out.SetInitialValueNumber(source.InitialValueNumber())
	return assignment, out, nil
}

// projectOneVsRest builds a synthetic 2-class table from a multi-class
// source: class cls stays in column 0, every other class is summed into
// column 1.
func projectOneVsRest(source *freqtable.Table, cls int) (*freqtable.Table, error) {
	out := freqtable.NewWithCapacity(freqtable.Dense, 2, source.Len())
	for i := 0; i < source.Len(); i++ {
		v, err := source.Vector(i)
		if err != nil {
			return nil, err
		}
		counts := v.Counts()
		var one, rest int64
		for c, n := range counts {
			if c == cls {
				one += n
			} else {
				rest += n
			}
		}
		if err := out.Append(freqtable.NewDenseVector([]int64{one, rest}, v.ModalityNumber())); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// smallGroupThreshold returns the smallest n such that after folding all
// groups of total frequency <= n the table is left with <= maxOutputGroups
// groups, found by sorting the group sizes and scanning them in ascending
// order, O(N log N) (spec.md §4.C.3.3).
func smallGroupThreshold(sizes []int64, maxOutputGroups int) int64 {
	if len(sizes) <= maxOutputGroups {
		return 0
	}
	sorted := append([]int64(nil), sizes...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	remaining := len(sorted)
	for thresholdIdx := 0; thresholdIdx < len(sorted); {
		n := sorted[thresholdIdx]
		folded := 0
		for thresholdIdx < len(sorted) && sorted[thresholdIdx] <= n {
			folded++
			thresholdIdx++
		}
		remaining = len(sorted) - folded + 1 // folded groups collapse into 1 bucket
		if remaining <= maxOutputGroups {
			return n
		}
	}
	return sorted[len(sorted)-1]
}

// MergeSmallGroups merges groups whose total frequency is at or below
// the computed threshold into a per-target-class aggregation bucket, or a
// single bucket if oneSingleGarbageGroup is true (spec.md §4.C.3.3).
func MergeSmallGroups(source *freqtable.Table, maxOutputGroups int, oneSingleGarbageGroup bool) ([]int, *freqtable.Table, error) {
	n := source.Len()
	if n == 0 {
		return nil, nil, ErrEmptySource
	}
	sizes := make([]int64, n)
	for i := 0; i < n; i++ {
		v, err := source.Vector(i)
		if err != nil {
			return nil, nil, err
		}
		sizes[i] = v.Total()
	}
	threshold := smallGroupThreshold(sizes, maxOutputGroups)

	size := vectorSizeOfTable(source)
	bucketOf := make(map[int]int) // class (or 0 if single bucket) -> new index
	assignment := make([]int, n)
	var newVectors []freqtable.Vector

	for i := 0; i < n; i++ {
		v, err := source.Vector(i)
		if err != nil {
			return nil, nil, err
		}
		if v.Total() > threshold {
			gi := len(newVectors)
			newVectors = append(newVectors, v.Clone())
			assignment[i] = gi
			continue
		}
		bucketKey := 0
		if !oneSingleGarbageGroup {
			bucketKey = dominantClass(v)
		}
		gi, ok := bucketOf[bucketKey]
		if !ok {
			gi = len(newVectors)
			newVectors = append(newVectors, v.Clone())
			bucketOf[bucketKey] = gi
			assignment[i] = gi
			continue
		}
		if err := newVectors[gi].Add(v); err != nil {
			return nil, nil, err
		}
		assignment[i] = gi
	}

	out := freqtable.NewWithCapacity(freqtable.Dense, size, len(newVectors))
	for _, v := range newVectors {
		if err := out.Append(v); err != nil {
			return nil, nil, err
		}
	}
	out.SetInitialValueNumber(source.InitialValueNumber())
	return assignment, out, nil
}

func dominantClass(v freqtable.Vector) int {
	best, bestN := 0, int64(-1)
	for c, n := range v.Counts() {
		if n > bestN {
			best, bestN = c, n
		}
	}
	return best
}

func identityAssignment(source *freqtable.Table) ([]int, *freqtable.Table, error) {
	n := source.Len()
	assignment := make([]int, n)
	size := vectorSizeOfTable(source)
	out := freqtable.NewWithCapacity(freqtable.Dense, size, n)
	for i := 0; i < n; i++ {
		assignment[i] = i
		v, err := source.Vector(i)
		if err != nil {
			return nil, nil, err
		}
		if err := out.Append(v.Clone()); err != nil {
			return nil, nil, err
		}
	}
	out.SetInitialValueNumber(source.InitialValueNumber())
	return assignment, out, nil
}

// ComposePreprocessing runs MergePureValues, BuildReliableSubgroups, and
// MergeSmallGroups in order, composing their old->new index vectors into
// one final assignment from original source rows to the fully
// preprocessed table (spec.md §4.C.3: "each producing an old->new index
// vector composed into a single final one").
func ComposePreprocessing(source *freqtable.Table, maxOutputGroups int, oneSingleGarbageGroup bool, tok interrupt.Token) ([]int, *freqtable.Table, error) {
	a1, t1, err := MergePureValues(source)
	if err != nil {
		return nil, nil, err
	}
	a2, t2, err := BuildReliableSubgroups(t1, tok)
	if err != nil {
		return nil, nil, err
	}
	a3, t3, err := MergeSmallGroups(t2, maxOutputGroups, oneSingleGarbageGroup)
	if err != nil {
		return nil, nil, err
	}
	final := make([]int, len(a1))
	for i, mid1 := range a1 {
		final[i] = a3[a2[mid1]]
	}
	return final, t3, nil
}
