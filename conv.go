/*
 * conv.go, part of gognn.
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
	"math/rand/v2"

	"github.com/rmera/gognn/nn"
	"github.com/viterin/vek"
	"gonum.org/v1/gonum/mat"
)

// ConvOptions lists everything a Conv is built from.
type ConvOptions struct {
	NodeDim       int
	EdgeFilterDim int
	NGaussian     int
	HiddenDim     int
	Activation    nn.Activation
	Init          nn.Init
	Aggregation   nn.Aggregation
	Cutoff        nn.Cutoff //nil for no cutoff
	Residual      bool
}

// Conv is a continuous-filter convolution (interaction block) of SchNet.
type Conv struct {
	filter   nn.Sequential //n_gaussian -> F -> F
	proj     *nn.Dense     //node_dim -> F
	output   nn.Sequential //F -> hidden -> node_dim
	cutoff   nn.Cutoff
	aggr     nn.Aggregation
	residual bool
}

// NewConv returns a convolution with parameters drawn from src.
func NewConv(o ConvOptions, src rand.Source) (*Conv, error) {
	if o.NodeDim < 1 || o.EdgeFilterDim < 1 || o.NGaussian < 1 || o.HiddenDim < 1 {
		return nil, nn.NewError(nn.ErrConfig, "NewConv", "all dimensions must be positive: %+v", o)
	}
	if o.Aggregation != nn.AggrAdd && o.Aggregation != nn.AggrMean {
		return nil, nn.NewError(nn.ErrConfig, "NewConv", "invalid aggregation %d", o.Aggregation)
	}
	F := o.EdgeFilterDim
	c := &Conv{
		filter: nn.Sequential{
			nn.NewDense(o.NGaussian, F, true, o.Activation, o.Init, src),
			nn.NewDense(F, F, true, nn.Identity, o.Init, src),
		},
		proj: nn.NewDense(o.NodeDim, F, false, nn.Identity, o.Init, src),
		output: nn.Sequential{
			nn.NewDense(F, o.HiddenDim, true, o.Activation, o.Init, src),
			nn.NewDense(o.HiddenDim, o.NodeDim, true, nn.Identity, o.Init, src),
		},
		cutoff:   o.Cutoff,
		aggr:     o.Aggregation,
		residual: o.Residual,
	}
	return c, nil
}

// Forward updates the node embeddings x (n x node_dim) with messages along
// the edges src->dst. dist has one distance per edge and basis is its
// radial basis expansion (edges x n_gaussian). basis may be nil only if
// there are no edges.
func (c *Conv) Forward(x *mat.Dense, dist []float64, basis *mat.Dense, src, dst []int) (*mat.Dense, error) {
	const caller = "Conv.Forward"
	if x == nil {
		return nil, nn.NewError(nn.ErrShape, caller, "nil node embeddings")
	}
	n, xc := x.Dims()
	if xc != c.proj.In() {
		return nil, nn.NewError(nn.ErrShape, caller, "embeddings have %d columns, layer expects %d", xc, c.proj.In())
	}
	E := len(dist)
	if len(src) != E || len(dst) != E {
		return nil, nn.NewError(nn.ErrShape, caller, "%d distances, %d sources and %d destinations", E, len(src), len(dst))
	}
	var agg *mat.Dense
	if E == 0 {
		agg = mat.NewDense(n, c.proj.Out(), nil)
	} else {
		if basis == nil {
			return nil, nn.NewError(nn.ErrShape, caller, "nil radial basis for %d edges", E)
		}
		if br, bc := basis.Dims(); br != E || bc != c.filter.In() {
			return nil, nn.NewError(nn.ErrShape, caller, "radial basis is %dx%d, expected %dx%d", br, bc, E, c.filter.In())
		}
		W, err := c.filter.Forward(basis)
		if err != nil {
			return nil, nn.Decorate(err, caller)
		}
		var cut []float64
		if c.cutoff != nil {
			cut = c.cutoff.Weights(dist)
		}
		h, err := c.proj.Forward(x)
		if err != nil {
			return nil, nn.Decorate(err, caller)
		}
		//W becomes the messages, row by row.
		for e := 0; e < E; e++ {
			if src[e] < 0 || src[e] >= n || dst[e] < 0 || dst[e] >= n {
				return nil, nn.NewError(nn.ErrOutOfRange, caller, "edge %d (%d->%d) outside [0,%d)", e, src[e], dst[e], n)
			}
			w := W.RawRowView(e)
			if cut != nil {
				vek.MulNumber_Inplace(w, cut[e])
			}
			vek.Mul_Inplace(w, h.RawRowView(src[e]))
		}
		agg, err = nn.Scatter(W, dst, n, c.aggr)
		if err != nil {
			return nil, nn.Decorate(err, caller)
		}
	}
	out, err := c.output.Forward(agg)
	if err != nil {
		return nil, nn.Decorate(err, caller)
	}
	if c.residual {
		out.Add(out, x)
	}
	return out, nil
}

// Params returns the parameters of the layer.
func (c *Conv) Params(prefix string) []nn.Param {
	var ret []nn.Param
	ret = append(ret, c.filter.Params(prefix+".filter")...)
	ret = append(ret, c.proj.Params(prefix+".proj")...)
	ret = append(ret, c.output.Params(prefix+".output")...)
	return ret
}

func (c *Conv) String() string {
	return fmt.Sprintf("Conv(node_dim=%d, filter=%d, n_gaussian=%d, aggr=%s, cutoff=%v, residual=%v)",
		c.proj.In(), c.proj.Out(), c.filter.In(), c.aggr, c.cutoff, c.residual)
}
