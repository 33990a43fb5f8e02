/*
 * batch.go, part of gognn.
 *
 * Copyright 2024 Raul Mera  <rmeraa{at}academicos(dot)uta(dot)cl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package gnn

import (
	"fmt"
	"math"

	"github.com/rmera/gognn/nn"
	v3 "github.com/rmera/gognn/v3"
)

// Batch is one or more atomic structures, ready for a forward pass.
// Messages flow along the edges from EdgeSrc[e] to EdgeDst[e] and are
// collected at EdgeDst[e].
type Batch struct {
	AtomicNumbers []int
	EdgeSrc       []int
	EdgeDst       []int

	//BatchIndex assigns each atom to a structure, numbered from 0.
	//If nil, all atoms belong to the same structure.
	BatchIndex []int

	//Either Distances (one per edge) or Positions (one vector per atom)
	//must be given. Distances wins if both are.
	Distances []float64
	Positions *v3.Matrix
	//Shifts, if not nil, holds one cartesian offset per edge, added to
	//the vector between the atoms (periodic images in crystals).
	Shifts *v3.Matrix
}

// NAtoms returns the number of atoms in the batch.
func (b *Batch) NAtoms() int { return len(b.AtomicNumbers) }

// NEdges returns the number of edges in the batch.
func (b *Batch) NEdges() int { return len(b.EdgeSrc) }

// NStructures returns the number of structures in the batch, which is the
// largest batch index plus one.
func (b *Batch) NStructures() int {
	if len(b.BatchIndex) == 0 {
		return 1
	}
	m := 0
	for _, v := range b.BatchIndex {
		m = max(m, v)
	}
	return m + 1
}

// Validate checks that all the slices of the batch agree with each other.
func (b *Batch) Validate() error {
	const caller = "Batch.Validate"
	n := b.NAtoms()
	if n == 0 {
		return nn.NewError(nn.ErrShape, caller, "the batch has no atoms")
	}
	if len(b.EdgeSrc) != len(b.EdgeDst) {
		return nn.NewError(nn.ErrShape, caller, "%d edge sources for %d edge destinations", len(b.EdgeSrc), len(b.EdgeDst))
	}
	for e := range b.EdgeSrc {
		s, d := b.EdgeSrc[e], b.EdgeDst[e]
		if s < 0 || s >= n || d < 0 || d >= n {
			return nn.NewError(nn.ErrOutOfRange, caller, "edge %d (%d->%d) refers to an atom outside [0,%d)", e, s, d, n)
		}
	}
	if b.BatchIndex != nil {
		if len(b.BatchIndex) != n {
			return nn.NewError(nn.ErrShape, caller, "batch index has %d elements for %d atoms", len(b.BatchIndex), n)
		}
		for i, v := range b.BatchIndex {
			if v < 0 {
				return nn.NewError(nn.ErrOutOfRange, caller, "negative batch index %d for atom %d", v, i)
			}
		}
		for e := range b.EdgeSrc {
			if b.BatchIndex[b.EdgeSrc[e]] != b.BatchIndex[b.EdgeDst[e]] {
				return nn.NewError(nn.ErrShape, caller, "edge %d joins atoms of structures %d and %d", e, b.BatchIndex[b.EdgeSrc[e]], b.BatchIndex[b.EdgeDst[e]])
			}
		}
	}
	switch {
	case b.Distances != nil:
		if len(b.Distances) != b.NEdges() {
			return nn.NewError(nn.ErrShape, caller, "%d distances for %d edges", len(b.Distances), b.NEdges())
		}
		if err := checkDistances(b.Distances); err != nil {
			return nn.Decorate(err, caller)
		}
	case b.Positions != nil:
		if _, err := v3.Dense2Matrix(b.Positions.Dense); err != nil {
			return nn.NewError(nn.ErrShape, caller, "positions: %v", err)
		}
		if b.Shifts != nil {
			if _, err := v3.Dense2Matrix(b.Shifts.Dense); err != nil {
				return nn.NewError(nn.ErrShape, caller, "shifts: %v", err)
			}
		}
		if b.Positions.NVecs() != n {
			return nn.NewError(nn.ErrShape, caller, "%d positions for %d atoms", b.Positions.NVecs(), n)
		}
		if b.Shifts != nil && b.Shifts.NVecs() != b.NEdges() {
			return nn.NewError(nn.ErrShape, caller, "%d shifts for %d edges", b.Shifts.NVecs(), b.NEdges())
		}
	case b.NEdges() > 0:
		return nn.NewError(nn.ErrShape, caller, "neither distances nor positions given")
	}
	return nil
}

// EdgeDistances returns the distance along every edge, either the
// given Distances or the ones computed from the Positions.
func (b *Batch) EdgeDistances() ([]float64, error) {
	if b.Distances != nil || b.NEdges() == 0 {
		return b.Distances, nil
	}
	d, err := v3.EdgeDistances(b.Positions, b.EdgeSrc, b.EdgeDst, b.Shifts)
	if err != nil {
		return nil, nn.NewError(nn.ErrShape, "Batch.EdgeDistances", "%v", err)
	}
	if err := checkDistances(d); err != nil {
		return nil, nn.Decorate(err, "Batch.EdgeDistances")
	}
	return d, nil
}

// checkDistances returns an error if a distance is negative or not finite.
func checkDistances(d []float64) error {
	for e, v := range d {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return nn.NewError(nn.ErrShape, "checkDistances", "edge %d has distance %g", e, v)
		}
	}
	return nil
}

func (b *Batch) String() string {
	return fmt.Sprintf("Batch(atoms=%d, edges=%d, structures=%d)", b.NAtoms(), b.NEdges(), b.NStructures())
}
