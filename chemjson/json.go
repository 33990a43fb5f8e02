/*
 * json.go, part of gognn.
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

package chemjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	gnn "github.com/rmera/gognn"
	"github.com/rmera/gognn/chemgraph"
	"github.com/rmera/gognn/exponent"
	v3 "github.com/rmera/gognn/v3"
	"gonum.org/v1/gonum/mat"
)

// Structure is a ready-to-serialize atomic structure.
// Atoms are given either by AtomicNumbers or by Symbols. Coords holds
// the 3 cartesian coordinates of every atom, one after the other.
// If EdgeSrc and EdgeDst are not given, the edges are built from the
// coordinates with a radius graph. Distances, if given, are used instead
// of the coordinates. Shifts, if given, are 3 numbers per edge.
type Structure struct {
	Name          string    `json:",omitempty"`
	AtomicNumbers []int     `json:",omitempty"`
	Symbols       []string  `json:",omitempty"`
	Coords        []float64 `json:",omitempty"`
	EdgeSrc       []int     `json:",omitempty"`
	EdgeDst       []int     `json:",omitempty"`
	Distances     []float64 `json:",omitempty"`
	Shifts        []float64 `json:",omitempty"`
}

// An easily JSON-serializable error type.
type Error struct {
	deco          []string
	IsError       bool //If this is false (no error) all the other fields will be at their zero-values.
	InInput       bool //was it reading the structures?
	InProcess     bool
	InPostProcess bool //was it in preparing the output?
	Structure     int  //which structure? -1 if not structure-specific.
	Function      string
	Message       string
}

// Error implements the error interface
func (J *Error) Error() string {
	if J.Structure >= 0 {
		return fmt.Sprintf("%s: structure %d: %s", J.Function, J.Structure, J.Message)
	}
	return fmt.Sprintf("%s: %s", J.Function, J.Message)
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (J *Error) Decorate(dec string) []string {
	if dec == "" {
		return J.deco
	}
	J.deco = append(J.deco, dec)
	return J.deco
}

// Marshal serializes the error. Panics on failure.
func (J *Error) Marshal() []byte {
	ret, err2 := json.Marshal(J)
	if err2 != nil {
		panic(strings.Join([]string{J.Error(), err2.Error()}, " - "))
	}
	return ret
}

// NewError takes an error and some additional info to create a json-marshal-ble error.
// where is "input", "postprocess" or anything else for the processing stage.
func NewError(where, function string, structure int, err error) *Error {
	jerr := &Error{IsError: true, Function: function, Structure: structure, Message: err.Error()}
	switch where {
	case "input":
		jerr.InInput = true
	case "postprocess":
		jerr.InPostProcess = true
	default:
		jerr.InProcess = true
	}
	return jerr
}

// DecodeStructures reads JSON structures from stream until it ends.
func DecodeStructures(stream io.Reader) ([]*Structure, *Error) {
	dec := json.NewDecoder(stream)
	dec.DisallowUnknownFields()
	var ret []*Structure
	for {
		s := new(Structure)
		err := dec.Decode(s)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, NewError("input", "DecodeStructures", len(ret), err)
		}
		ret = append(ret, s)
	}
	if len(ret) == 0 {
		return nil, NewError("input", "DecodeStructures", -1, fmt.Errorf("no structures in the input"))
	}
	return ret, nil
}

// atomicNumbers returns the atomic numbers of the structure, taken from
// the symbols if they were not given.
func (S *Structure) atomicNumbers() ([]int, error) {
	if len(S.AtomicNumbers) > 0 {
		return S.AtomicNumbers, nil
	}
	if len(S.Symbols) == 0 {
		return nil, fmt.Errorf("no atoms")
	}
	ret := make([]int, len(S.Symbols))
	for i, v := range S.Symbols {
		z, err := exponent.Z(v)
		if err != nil {
			return nil, err
		}
		ret[i] = z
	}
	return ret, nil
}

// ToBatch joins the structures into a single gnn.Batch. Structures without
// an edge index get the radius graph of their coordinates, with the given
// cutoff and, if positive, at most maxNeighbors incoming edges per atom.
// Either all structures, or none, need to give Distances.
func ToBatch(structs []*Structure, cutoff float64, maxNeighbors int) (*gnn.Batch, *Error) {
	const funcname = "ToBatch"
	b := new(gnn.Batch)
	var coords, shifts []float64
	withDist := len(structs) > 0 && structs[0].Distances != nil
	offset := 0
	for i, s := range structs {
		z, err := s.atomicNumbers()
		if err != nil {
			return nil, NewError("input", funcname, i, err)
		}
		n := len(z)
		if (s.Distances != nil) != withDist {
			return nil, NewError("input", funcname, i, fmt.Errorf("some structures give distances and some don't"))
		}
		if !withDist && len(s.Coords) != 3*n {
			return nil, NewError("input", funcname, i, fmt.Errorf("%d coordinates for %d atoms", len(s.Coords), n))
		}
		src, dst := s.EdgeSrc, s.EdgeDst
		if src == nil && dst == nil {
			if withDist {
				return nil, NewError("input", funcname, i, fmt.Errorf("distances given without edges"))
			}
			pos, err := v3.NewMatrix(s.Coords)
			if err != nil {
				return nil, NewError("input", funcname, i, err)
			}
			src, dst, err = chemgraph.RadiusGraph(pos, nil, cutoff, maxNeighbors)
			if err != nil {
				return nil, NewError("process", funcname, i, err)
			}
		}
		if len(src) != len(dst) {
			return nil, NewError("input", funcname, i, fmt.Errorf("%d edge sources for %d destinations", len(src), len(dst)))
		}
		if s.Shifts != nil && len(s.Shifts) != 3*len(src) {
			return nil, NewError("input", funcname, i, fmt.Errorf("%d shift components for %d edges", len(s.Shifts), len(src)))
		}
		if withDist && s.Shifts != nil {
			return nil, NewError("input", funcname, i, fmt.Errorf("shifts given with distances"))
		}
		if (s.Shifts != nil) != (structs[0].Shifts != nil) {
			return nil, NewError("input", funcname, i, fmt.Errorf("some structures give shifts and some don't"))
		}
		b.AtomicNumbers = append(b.AtomicNumbers, z...)
		for e := range src {
			b.EdgeSrc = append(b.EdgeSrc, src[e]+offset)
			b.EdgeDst = append(b.EdgeDst, dst[e]+offset)
		}
		for range n {
			b.BatchIndex = append(b.BatchIndex, i)
		}
		b.Distances = append(b.Distances, s.Distances...)
		coords = append(coords, s.Coords...)
		shifts = append(shifts, s.Shifts...)
		offset += n
	}
	if !withDist {
		var err error
		if b.Positions, err = v3.NewMatrix(coords); err != nil {
			return nil, NewError("input", funcname, -1, err)
		}
		if len(shifts) > 0 {
			if b.Shifts, err = v3.NewMatrix(shifts); err != nil {
				return nil, NewError("input", funcname, -1, err)
			}
		}
	}
	if err := b.Validate(); err != nil {
		return nil, NewError("input", funcname, -1, err)
	}
	return b, nil
}

// Information to be passed back to the calling program.
type Info struct {
	Structures int
	Names      []string    `json:",omitempty"`
	Properties [][]float64 //one row per structure
}

// NewInfo collects the predictions, one row per structure, and the names
// of the structures they were predicted for.
func NewInfo(structs []*Structure, pred mat.Matrix) *Info {
	r, _ := pred.Dims()
	J := &Info{Structures: r, Properties: make([][]float64, r)}
	for i := range r {
		J.Properties[i] = mat.Row(nil, i, pred)
	}
	for _, s := range structs {
		J.Names = append(J.Names, s.Name)
	}
	return J
}

// Send Marshals the info and writes to out, returns an error or nil
func (J *Info) Send(out io.Writer) *Error {
	enc := json.NewEncoder(out)
	if err := enc.Encode(J); err != nil {
		return NewError("postprocess", "Info.Send", -1, err)
	}
	return nil
}
