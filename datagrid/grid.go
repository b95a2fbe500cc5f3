// SPDX-License-Identifier: MIT
//
// File: grid.go — Grid: the K-dimensional flat cell-frequency buffer
// (spec.md §4.D).
package datagrid

// Grid is an ordered list of K attribute partitions plus a flat cell
// frequency vector in row-major order over the product of part counts,
// low-dimension-fastest (spec.md §3, §4.D).
type Grid struct {
	attributes              []*AttributePartition
	sourceAttributeNumber    int
	mainTargetModalityIndex  int
	strides                  []int
	cellFrequencies          []int64
	cellsCreated             bool
	totalFrequency           int64
}

// NewGrid returns an empty Grid. Attributes are added via AddAttribute;
// the shape is frozen by CreateAllCells.
func NewGrid() *Grid {
	return &Grid{
		sourceAttributeNumber:   0,
		mainTargetModalityIndex: -1,
	}
}

// AddAttribute appends an attribute partition to the grid. Must be called
// before CreateAllCells.
//
// Complexity: O(1).
func (g *Grid) AddAttribute(p *AttributePartition) error {
	if g.cellsCreated {
		return ErrCellsAlreadyCreated
	}
	if p == nil {
		return ErrNilPartition
	}
	if p.PartCount() <= 0 {
		return ErrEmptyPartition
	}
	g.attributes = append(g.attributes, p)
	return nil
}

// AttributeCount returns the number of attributes added so far.
func (g *Grid) AttributeCount() int {
	return len(g.attributes)
}

// Attribute returns the k-th attribute partition.
func (g *Grid) Attribute(k int) (*AttributePartition, error) {
	if k < 0 || k >= len(g.attributes) {
		return nil, ErrIndexOutOfRange
	}
	return g.attributes[k], nil
}

// SetSourceAttributeNumber sets how many of the leading attributes are
// "source" attributes; the rest are "target" attributes (spec.md §3).
//
// Complexity: O(1).
func (g *Grid) SetSourceAttributeNumber(k int) error {
	if g.cellsCreated {
		return ErrCellsAlreadyCreated
	}
	if k < 0 || k >= len(g.attributes) {
		return ErrInvalidSourceAttributeNumber
	}
	g.sourceAttributeNumber = k
	return nil
}

// SourceAttributeNumber returns the configured source/target split point.
func (g *Grid) SourceAttributeNumber() int {
	return g.sourceAttributeNumber
}

// SetMainTargetModalityIndex designates the target class of interest for
// reports, or -1 for none.
func (g *Grid) SetMainTargetModalityIndex(idx int) {
	g.mainTargetModalityIndex = idx
}

// MainTargetModalityIndex returns the configured class of interest, or -1.
func (g *Grid) MainTargetModalityIndex() int {
	return g.mainTargetModalityIndex
}

// CreateAllCells allocates the flat cell-frequency buffer, sized to the
// product of all attributes' part counts, and freezes the grid's shape.
//
// Complexity: O(∏ K_i) time and space.
func (g *Grid) CreateAllCells() error {
	if g.cellsCreated {
		return ErrCellsAlreadyCreated
	}
	if len(g.attributes) == 0 {
		g.strides = nil
		g.cellFrequencies = make([]int64, 1)
		g.cellsCreated = true
		return nil
	}
	g.strides = make([]int, len(g.attributes))
	size := 1
	for i, a := range g.attributes {
		g.strides[i] = size
		size *= a.PartCount()
	}
	g.cellFrequencies = make([]int64, size)
	g.cellsCreated = true
	return nil
}

// ComputeCellIndex converts a per-attribute part-index tuple into a flat
// cell index, low-dimension-fastest (spec.md §3, §8 invariant 10).
//
// Complexity: O(K).
func (g *Grid) ComputeCellIndex(indices []int) (int, error) {
	if !g.cellsCreated {
		return 0, ErrCellsNotCreated
	}
	if len(indices) != len(g.attributes) {
		return 0, ErrDimensionMismatch
	}
	idx := 0
	for i, a := range g.attributes {
		if indices[i] < 0 || indices[i] >= a.PartCount() {
			return 0, ErrIndexOutOfRange
		}
		idx += indices[i] * g.strides[i]
	}
	return idx, nil
}

// ComputeIndicesForCell is the inverse of ComputeCellIndex: it recovers the
// per-attribute part-index tuple for a flat cell index.
//
// Complexity: O(K).
func (g *Grid) ComputeIndicesForCell(cellIndex int) ([]int, error) {
	if !g.cellsCreated {
		return nil, ErrCellsNotCreated
	}
	if cellIndex < 0 || cellIndex >= len(g.cellFrequencies) {
		return nil, ErrIndexOutOfRange
	}
	indices := make([]int, len(g.attributes))
	rem := cellIndex
	for i := len(g.attributes) - 1; i >= 0; i-- {
		indices[i] = rem / g.strides[i]
		rem = rem % g.strides[i]
	}
	return indices, nil
}

// SetCellFrequency sets the frequency of the cell identified by indices.
//
// Complexity: O(K).
func (g *Grid) SetCellFrequency(indices []int, freq int64) error {
	if freq < 0 {
		return ErrNegativeFrequency
	}
	idx, err := g.ComputeCellIndex(indices)
	if err != nil {
		return err
	}
	g.totalFrequency += freq - g.cellFrequencies[idx]
	g.cellFrequencies[idx] = freq
	return nil
}

// GetCellFrequency returns the frequency of the cell identified by
// indices.
//
// Complexity: O(K).
func (g *Grid) GetCellFrequency(indices []int) (int64, error) {
	idx, err := g.ComputeCellIndex(indices)
	if err != nil {
		return 0, err
	}
	return g.cellFrequencies[idx], nil
}

// ComputeGridFrequency returns the sum over all cell frequencies (spec.md
// §4.D invariant).
//
// Complexity: O(1) — memoized incrementally by SetCellFrequency.
func (g *Grid) ComputeGridFrequency() int64 {
	return g.totalFrequency
}

// ExportAllCells returns a copy of the flat cell-frequency buffer.
//
// Complexity: O(∏ K_i).
func (g *Grid) ExportAllCells() []int64 {
	out := make([]int64, len(g.cellFrequencies))
	copy(out, g.cellFrequencies)
	return out
}
