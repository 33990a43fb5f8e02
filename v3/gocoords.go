/*
 * gocoords.go, part of gognn.
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

package v3

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Zeros returns a zero-filled Matrix with vecs vectors and 3 in the other dimension.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	return &Matrix{mat.NewDense(vecs, cols, nil)}
}

//METHODS

// NVecs returns the number of vecs in F.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return r
}

// String returns a neat string representation of a Matrix
func (F *Matrix) String() string {
	r := F.NVecs()
	v := make([]string, r)
	for i := 0; i < r; i++ {
		row := F.RawRowView(i)
		v[i] = fmt.Sprintf("%8.3f %8.3f %8.3f", row[0], row[1], row[2])
	}
	return "\n[" + strings.Join(v, "\n ") + " ]"
}

// Distance returns the euclidean distance between the ith and jth vectors of F.
func (F *Matrix) Distance(i, j int) float64 {
	return floats.Distance(F.RawRowView(i), F.RawRowView(j), 2)
}

// EdgeVectors returns, for each edge e, the vector from the src[e]th to the
// dst[e]th vector of coords, plus the eth vector of shifts if shifts is not nil.
// shifts holds the cartesian offsets of periodic images.
func EdgeVectors(coords *Matrix, src, dst []int, shifts *Matrix) (*Matrix, error) {
	if len(src) != len(dst) {
		return nil, Error{fmt.Sprintf("%d sources for %d destinations", len(src), len(dst)), []string{"EdgeVectors"}, true}
	}
	if len(src) == 0 {
		return nil, Error{"no edges", []string{"EdgeVectors"}, true}
	}
	if _, err := Dense2Matrix(coords.dense()); err != nil {
		return nil, errDecorate(err, "EdgeVectors")
	}
	if shifts != nil {
		if _, err := Dense2Matrix(shifts.dense()); err != nil {
			return nil, errDecorate(err, "EdgeVectors")
		}
	}
	if shifts != nil && shifts.NVecs() != len(src) {
		return nil, Error{fmt.Sprintf("%d shifts for %d edges", shifts.NVecs(), len(src)), []string{"EdgeVectors"}, true}
	}
	n := coords.NVecs()
	ret := Zeros(len(src))
	for e := range src {
		s, d := src[e], dst[e]
		if s < 0 || s >= n || d < 0 || d >= n {
			return nil, Error{fmt.Sprintf("edge %d (%d->%d) outside the %d vectors", e, s, d, n), []string{"EdgeVectors"}, true}
		}
		v := ret.RawRowView(e)
		floats.SubTo(v, coords.RawRowView(d), coords.RawRowView(s))
		if shifts != nil {
			floats.Add(v, shifts.RawRowView(e))
		}
	}
	return ret, nil
}

// EdgeDistances returns the norms of the EdgeVectors.
func EdgeDistances(coords *Matrix, src, dst []int, shifts *Matrix) ([]float64, error) {
	vecs, err := EdgeVectors(coords, src, dst, shifts)
	if err != nil {
		return nil, errDecorate(err, "EdgeDistances")
	}
	ret := make([]float64, len(src))
	for e := range ret {
		ret[e] = floats.Norm(vecs.RawRowView(e), 2)
	}
	return ret, nil
}

// dense returns the Dense underlying F, or nil if F is nil.
func (F *Matrix) dense() *mat.Dense {
	if F == nil {
		return nil
	}
	return F.Dense
}

// errDecorate decorates err with the caller's name, if err is an Error.
func errDecorate(err error, caller string) error {
	if e, ok := err.(Error); ok {
		e.deco = e.Decorate(caller)
		return e
	}
	return err
}
