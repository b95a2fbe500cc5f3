// SPDX-License-Identifier: MIT
//
// File: project.go — bivariate source projection (spec.md §4.E step 1:
// "project the two source attributes into a single virtual cartesian-
// product attribute").
package shapley

import "github.com/katalvlaran/modl/datagrid"

// BuildUnivariateDataGridStats collapses a grid carrying exactly two
// source attributes (plus one target attribute) into an equivalent grid
// carrying a single VirtualValues source attribute whose parts enumerate
// the distinct (sourceAttr0, sourceAttr1) tuples, against the same target
// attribute at targetAttrIdx. The returned grid's target attribute always
// sits at index 1.
func BuildUnivariateDataGridStats(g *datagrid.Grid, targetAttrIdx int) (*datagrid.Grid, error) {
	if g.SourceAttributeNumber() != 2 {
		return nil, ErrNotBivariate
	}
	cells, err := g.ExportSourceCellsAt(targetAttrIdx)
	if err != nil {
		return nil, err
	}
	targetAttr, err := g.Attribute(targetAttrIdx)
	if err != nil {
		return nil, err
	}
	if targetAttr.PartCount() == 0 {
		return nil, ErrEmptyTarget
	}

	out := datagrid.NewGrid()
	virtual := datagrid.NewVirtual("virtual_source", len(cells))
	if err := out.AddAttribute(virtual); err != nil {
		return nil, err
	}
	if err := out.AddAttribute(targetAttr); err != nil {
		return nil, err
	}
	if err := out.SetSourceAttributeNumber(1); err != nil {
		return nil, err
	}
	if err := out.CreateAllCells(); err != nil {
		return nil, err
	}

	for vi, cell := range cells {
		for ti, freq := range cell.TargetFrequencies {
			if freq == 0 {
				continue
			}
			if err := out.SetCellFrequency([]int{vi, ti}, freq); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}
