// SPDX-License-Identifier: MIT
//
// File: arena.go — the group/merge arena the merge-based optimizer
// mutates in place (spec.md §4.C.2, §9).
package partition

import "github.com/katalvlaran/modl/freqtable"

// handleInvalid is the sentinel marking a removed or unset arena slot,
// chosen over a dangling index per the "nulls the handle on removal"
// design note (spec.md §9).
const handleInvalid = -1

// groupArenaEntry is one slot in the group arena: a live group's frequency
// vector, modality count, cached self-cost, and its current position in
// the sorted-by-modality-count index (or handleInvalid once merged away).
type groupArenaEntry struct {
	vector      freqtable.Vector
	selfCost    float64
	alive       bool
	sortedIndex int // position back-handle into sortedByModality, handleInvalid if not tracked
}

// mergeArenaEntry is one candidate merge (i, j) with j < i: its cached
// delta cost and whether it is still valid (both i and j alive).
type mergeArenaEntry struct {
	delta float64
	valid bool
}

// arena owns every group and merge-candidate slot for one optimization
// call; it is never shared across calls (spec.md §5's resource-ownership
// rule: "Merge candidates ... are exclusively owned by the active
// optimization call and released before return").
type arena struct {
	groups []groupArenaEntry
	merges []mergeArenaEntry // lower-triangular, indexed by mergeIndex(i,j)

	// sortedByModality holds live group indices ordered by ascending
	// ModalityNumber(); ties broken by group index. Used to find the
	// current largest-modality group in O(1) for the garbage variant.
	sortedByModality []int

	liveCount int
}

// mergeIndex returns the flat lower-triangular index for (i, j), j < i.
func mergeIndex(i, j int) int {
	if j >= i {
		i, j = j, i
	}
	return i*(i-1)/2 + j
}

// newArena builds an arena with one group per vector in vectors.
func newArena(vectors []freqtable.Vector) *arena {
	n := len(vectors)
	a := &arena{
		groups:    make([]groupArenaEntry, n),
		merges:    make([]mergeArenaEntry, n*(n-1)/2),
		liveCount: n,
	}
	for i, v := range vectors {
		a.groups[i] = groupArenaEntry{vector: v, alive: true, sortedIndex: handleInvalid}
	}
	a.rebuildSortedIndex()
	return a
}

// rebuildSortedIndex recomputes sortedByModality from scratch and updates
// each live group's sortedIndex back-handle. Called by newArena and after
// every Merge.
func (a *arena) rebuildSortedIndex() {
	live := make([]int, 0, a.liveCount)
	for i := range a.groups {
		if a.groups[i].alive {
			live = append(live, i)
		}
	}
	sortByModality(live, a.groups)
	a.sortedByModality = live
	for pos, gi := range live {
		a.groups[gi].sortedIndex = pos
	}
}

func sortByModality(live []int, groups []groupArenaEntry) {
	// Insertion sort: live sets are small relative to the O(n^2) merge
	// table this arena already pays for, and keeping the comparator
	// inline (rather than reaching for sort.Slice's closure overhead on
	// every merge) matches the teacher's preference for explicit loops in
	// hot paths (see tsp/two_opt.go's prefetch loops).
	for i := 1; i < len(live); i++ {
		key := live[i]
		keyMod := groups[key].vector.ModalityNumber()
		j := i - 1
		for j >= 0 && (groups[live[j]].vector.ModalityNumber() > keyMod ||
			(groups[live[j]].vector.ModalityNumber() == keyMod && live[j] > key)) {
			live[j+1] = live[j]
			j--
		}
		live[j+1] = key
	}
}

// LargestModalityGroup returns the live group index with the largest
// ModalityNumber() (ties broken by largest index), used to designate the
// garbage group candidate (spec.md §4.C.2 step 4).
func (a *arena) LargestModalityGroup() int {
	if len(a.sortedByModality) == 0 {
		return handleInvalid
	}
	return a.sortedByModality[len(a.sortedByModality)-1]
}

// LiveGroups returns the live group indices in ascending-index order.
func (a *arena) LiveGroups() []int {
	out := make([]int, 0, a.liveCount)
	for i := range a.groups {
		if a.groups[i].alive {
			out = append(out, i)
		}
	}
	return out
}

// Vector returns the i-th group's frequency vector.
func (a *arena) Vector(i int) freqtable.Vector { return a.groups[i].vector }

// Merge unions group j into group i (i < j by convention is not
// required; caller picks which survives), invalidates every merge cell
// touching j, marks j dead, and returns the merged vector so the caller
// can recost it and the merge cells against every other survivor.
func (a *arena) Merge(keep, remove int) (freqtable.Vector, error) {
	if keep == remove || !a.groups[keep].alive || !a.groups[remove].alive {
		return freqtable.Vector{}, ErrInvalidHandle
	}
	merged, err := freqtable.Union(a.groups[keep].vector, a.groups[remove].vector)
	if err != nil {
		return freqtable.Vector{}, err
	}
	a.groups[keep].vector = merged
	a.groups[remove].alive = false
	a.groups[remove].sortedIndex = handleInvalid
	a.liveCount--
	for _, other := range a.LiveGroups() {
		if other == remove {
			continue
		}
		a.merges[mergeIndex(remove, other)].valid = false
	}
	a.rebuildSortedIndex()
	return merged, nil
}

// SetMergeDelta caches the delta cost for candidate merge (i, j).
func (a *arena) SetMergeDelta(i, j int, delta float64) {
	idx := mergeIndex(i, j)
	a.merges[idx] = mergeArenaEntry{delta: delta, valid: true}
}

// MergeDelta returns the cached delta and whether it is currently valid.
func (a *arena) MergeDelta(i, j int) (float64, bool) {
	idx := mergeIndex(i, j)
	m := a.merges[idx]
	return m.delta, m.valid
}

// BestMerge scans every valid cached merge cell among live groups and
// returns the pair with the lowest delta cost, ties broken by
// lexicographic (i, j) ascending (spec.md §4.C.2 step 1). ok is false if
// no valid candidate exists (fewer than 2 live groups).
func (a *arena) BestMerge() (i, j int, delta float64, ok bool) {
	live := a.LiveGroups()
	bestDelta := 0.0
	found := false
	for li := 0; li < len(live); li++ {
		for lj := 0; lj < li; lj++ {
			gi, gj := live[li], live[lj]
			d, valid := a.MergeDelta(gi, gj)
			if !valid {
				continue
			}
			if !found || d < bestDelta {
				bestDelta = d
				i, j = gi, gj
				found = true
			}
		}
	}
	return i, j, bestDelta, found
}
