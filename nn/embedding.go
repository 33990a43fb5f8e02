/*
 * embedding.go, part of gognn.
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

package nn

import (
	"fmt"
	"math/rand/v2"

	"github.com/rmera/gognn/exponent"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Embedder maps atomic numbers to node vectors.
type Embedder interface {
	Forward(z []int) (*mat.Dense, error)
	Dim() int
	MaxZ() int
	Params(prefix string) []Param
}

// Embedding is a learned lookup table with one row per atomic number,
// 0 to MaxZ.
type Embedding struct {
	table *mat.Dense
}

// NewEmbedding returns a (maxZ+1) x dim table of standard normal values
// drawn from src.
func NewEmbedding(maxZ, dim int, src rand.Source) (*Embedding, error) {
	if maxZ < 1 || dim < 1 {
		return nil, NewError(ErrConfig, "NewEmbedding", "max_z (%d) and dimension (%d) must be positive", maxZ, dim)
	}
	t := mat.NewDense(maxZ+1, dim, nil)
	norm := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
	t.Apply(func(_, _ int, _ float64) float64 { return norm.Rand() }, t)
	return &Embedding{table: t}, nil
}

func (e *Embedding) Dim() int {
	_, c := e.table.Dims()
	return c
}

func (e *Embedding) MaxZ() int {
	r, _ := e.table.Dims()
	return r - 1
}

// Forward returns one row per atomic number in z.
func (e *Embedding) Forward(z []int) (*mat.Dense, error) {
	if len(z) == 0 {
		return nil, NewError(ErrShape, "Embedding.Forward", "no atoms")
	}
	ret := mat.NewDense(len(z), e.Dim(), nil)
	for i, v := range z {
		if v < 0 || v > e.MaxZ() {
			return nil, NewError(ErrOutOfRange, "Embedding.Forward", "atomic number %d of atom %d is outside [0,%d]", v, i, e.MaxZ())
		}
		copy(ret.RawRowView(i), e.table.RawRowView(v))
	}
	return ret, nil
}

func (e *Embedding) Params(prefix string) []Param {
	return []Param{{Name: prefix + ".weight", Value: e.table}}
}

func (e *Embedding) String() string {
	return fmt.Sprintf("Embedding(max_z=%d, dim=%d)", e.MaxZ(), e.Dim())
}

// ExponentEmbedding projects the Slater exponents of each element's
// orbitals (see package exponent) onto the node dimension with a learned
// linear layer.
type ExponentEmbedding struct {
	proj *Dense
	maxZ int
}

// NewExponentEmbedding needs maxZ to be covered by the exponent table.
func NewExponentEmbedding(maxZ, dim int, init Init, src rand.Source) (*ExponentEmbedding, error) {
	if maxZ < 1 || maxZ > exponent.MaxZ || dim < 1 {
		return nil, NewError(ErrConfig, "NewExponentEmbedding", "max_z must be in [1,%d] and the dimension positive, got %d and %d", exponent.MaxZ, maxZ, dim)
	}
	return &ExponentEmbedding{proj: NewDense(exponent.NOrbitals, dim, true, Identity, init, src), maxZ: maxZ}, nil
}

func (e *ExponentEmbedding) Dim() int  { return e.proj.Out() }
func (e *ExponentEmbedding) MaxZ() int { return e.maxZ }

func (e *ExponentEmbedding) Forward(z []int) (*mat.Dense, error) {
	if len(z) == 0 {
		return nil, NewError(ErrShape, "ExponentEmbedding.Forward", "no atoms")
	}
	feats := mat.NewDense(len(z), exponent.NOrbitals, nil)
	for i, v := range z {
		if v < 1 || v > e.maxZ {
			return nil, NewError(ErrOutOfRange, "ExponentEmbedding.Forward", "atomic number %d of atom %d is outside [1,%d]", v, i, e.maxZ)
		}
		row, err := exponent.Row(v)
		if err != nil {
			return nil, Decorate(err, "ExponentEmbedding.Forward")
		}
		copy(feats.RawRowView(i), row[:])
	}
	out, err := e.proj.Forward(feats)
	return out, Decorate(err, "ExponentEmbedding.Forward")
}

func (e *ExponentEmbedding) Params(prefix string) []Param {
	return e.proj.Params(prefix + ".proj")
}

func (e *ExponentEmbedding) String() string {
	return fmt.Sprintf("ExponentEmbedding(max_z=%d, dim=%d)", e.maxZ, e.Dim())
}
