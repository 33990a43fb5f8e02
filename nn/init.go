/*
 * init.go, part of gognn.
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
	"math"
	"math/rand/v2"
	"strings"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Init is the closed set of weight initializers.
type Init int

const (
	XavierUniform Init = iota
	XavierNormal
	KaimingUniform
	GlorotOrthogonal
	Zeros
)

var initNames = map[string]Init{
	"xavier_uniform":    XavierUniform,
	"glorot_uniform":    XavierUniform,
	"xavier_normal":     XavierNormal,
	"glorot_normal":     XavierNormal,
	"kaiming_uniform":   KaimingUniform,
	"he_uniform":        KaimingUniform,
	"glorot_orthogonal": GlorotOrthogonal,
	"zeros":             Zeros,
}

// ParseInit returns the initializer called name. Unknown names are a
// configuration error.
func ParseInit(name string) (Init, error) {
	in, ok := initNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return XavierUniform, NewError(ErrConfig, "ParseInit", "unknown weight initializer %q (known: %s)", name, strings.Join(knownNames(initNames), ", "))
	}
	return in, nil
}

func (in Init) String() string {
	switch in {
	case XavierUniform:
		return "xavier_uniform"
	case XavierNormal:
		return "xavier_normal"
	case KaimingUniform:
		return "kaiming_uniform"
	case GlorotOrthogonal:
		return "glorot_orthogonal"
	case Zeros:
		return "zeros"
	}
	return "unknown"
}

// Fill overwrites w, a (fan_out x fan_in) weight matrix, with values drawn
// from src. The same src state always gives the same weights.
func (in Init) Fill(w *mat.Dense, src rand.Source) {
	r, c := w.Dims()
	fanIn, fanOut := float64(c), float64(r)
	raw := w.RawMatrix()
	switch in {
	case Zeros:
		w.Zero()
	case XavierUniform:
		a := math.Sqrt(6 / (fanIn + fanOut))
		fillRand(raw, distuv.Uniform{Min: -a, Max: a, Src: src}.Rand)
	case XavierNormal:
		std := math.Sqrt(2 / (fanIn + fanOut))
		fillRand(raw, distuv.Normal{Mu: 0, Sigma: std, Src: src}.Rand)
	case KaimingUniform:
		a := math.Sqrt(6 / fanIn)
		fillRand(raw, distuv.Uniform{Min: -a, Max: a, Src: src}.Rand)
	case GlorotOrthogonal:
		orthogonal(w, src)
		data := make([]float64, 0, r*c)
		for i := 0; i < r; i++ {
			data = append(data, w.RawRowView(i)...)
		}
		v := stat.Variance(data, nil)
		if v > 0 && !math.IsNaN(v) {
			w.Scale(math.Sqrt(2/((fanIn+fanOut)*v)), w)
		}
	}
}

func fillRand(raw blas64.General, f func() float64) {
	for i := 0; i < raw.Rows; i++ {
		row := raw.Data[i*raw.Stride : i*raw.Stride+raw.Cols]
		for j := range row {
			row[j] = f()
		}
	}
}

// orthogonal puts in w a matrix with orthonormal rows or columns (whichever
// are fewer), taken from the QR factorization of a gaussian matrix.
func orthogonal(w *mat.Dense, src rand.Source) {
	r, c := w.Dims()
	n, k := max(r, c), min(r, c)
	g := mat.NewDense(n, k, nil)
	norm := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
	g.Apply(func(_, _ int, _ float64) float64 { return norm.Rand() }, g)
	var qr mat.QR
	qr.Factorize(g)
	var q mat.Dense
	qr.QTo(&q)
	qk := q.Slice(0, n, 0, k)
	if r >= c {
		w.Copy(qk)
		return
	}
	w.Copy(qk.T())
}
