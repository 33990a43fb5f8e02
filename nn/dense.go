/*
 * dense.go, part of gognn.
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

	"github.com/viterin/vek"
	"gonum.org/v1/gonum/mat"
)

// Param is a named, trainable parameter. Biases are 1xn matrices that
// share their storage with the layer, so writing into Value updates the
// layer.
type Param struct {
	Name  string
	Value *mat.Dense
}

// Dense is a fully connected layer, y = act(x W^T + b).
type Dense struct {
	W   *mat.Dense //out x in
	B   []float64  //nil when the layer has no bias
	Act Activation
}

// NewDense returns an in->out layer with weights filled by init from src.
// Biases start at zero.
func NewDense(in, out int, bias bool, act Activation, init Init, src rand.Source) *Dense {
	d := &Dense{W: mat.NewDense(out, in, nil), Act: act}
	init.Fill(d.W, src)
	if bias {
		d.B = make([]float64, out)
	}
	return d
}

// In returns the input dimension.
func (d *Dense) In() int {
	_, c := d.W.Dims()
	return c
}

// Out returns the output dimension.
func (d *Dense) Out() int {
	r, _ := d.W.Dims()
	return r
}

// Forward maps the rows of x (n x in) to a new n x out matrix.
func (d *Dense) Forward(x *mat.Dense) (*mat.Dense, error) {
	if x == nil {
		return nil, NewError(ErrShape, "Dense.Forward", "nil input")
	}
	_, c := x.Dims()
	if c != d.In() {
		return nil, NewError(ErrShape, "Dense.Forward", "input has %d columns, layer expects %d", c, d.In())
	}
	y := new(mat.Dense)
	y.Mul(x, d.W.T())
	if d.B != nil {
		r, _ := y.Dims()
		for i := 0; i < r; i++ {
			vek.Add_Inplace(y.RawRowView(i), d.B)
		}
	}
	d.Act.Apply(y)
	return y, nil
}

// Params returns the layer parameters, named prefix.weight and prefix.bias.
func (d *Dense) Params(prefix string) []Param {
	ret := []Param{{Name: prefix + ".weight", Value: d.W}}
	if d.B != nil {
		ret = append(ret, Param{Name: prefix + ".bias", Value: mat.NewDense(1, len(d.B), d.B)})
	}
	return ret
}

func (d *Dense) String() string {
	return fmt.Sprintf("Dense(%d->%d, bias=%v, %s)", d.In(), d.Out(), d.B != nil, d.Act)
}

// Sequential chains Dense layers.
type Sequential []*Dense

// Forward applies every layer in order.
func (s Sequential) Forward(x *mat.Dense) (*mat.Dense, error) {
	var err error
	for i, l := range s {
		x, err = l.Forward(x)
		if err != nil {
			return nil, Decorate(err, fmt.Sprintf("Sequential.Forward: layer %d", i))
		}
	}
	return x, nil
}

// Params returns the parameters of every layer, named prefix.i.weight
// and prefix.i.bias.
func (s Sequential) Params(prefix string) []Param {
	var ret []Param
	for i, l := range s {
		ret = append(ret, l.Params(fmt.Sprintf("%s.%d", prefix, i))...)
	}
	return ret
}

// In returns the input dimension of the first layer.
func (s Sequential) In() int { return s[0].In() }

// Out returns the output dimension of the last layer.
func (s Sequential) Out() int { return s[len(s)-1].Out() }
