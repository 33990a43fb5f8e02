/*
 * readout.go, part of gognn.
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
	"gonum.org/v1/gonum/mat"
)

// Readout turns node embeddings into one property vector per structure.
// batch assigns each node to one of nStruct structures; a nil batch puts
// all nodes in one structure.
type Readout interface {
	Forward(x *mat.Dense, batch []int, nStruct int) (*mat.Dense, error)
	Params(prefix string) []nn.Param
}

// ReadoutOptions lists everything a readout is built from.
type ReadoutOptions struct {
	NodeDim     int
	HiddenDim   int
	OutDim      int
	Activation  nn.Activation
	Init        nn.Init
	Aggregation nn.Aggregation
	Scaler      nn.Scaler //nil for no scaling, only used by Node2Prop2
}

func (o ReadoutOptions) check(caller string) error {
	if o.NodeDim < 1 || o.HiddenDim < 1 || o.OutDim < 1 {
		return nn.NewError(nn.ErrConfig, caller, "all dimensions must be positive: %+v", o)
	}
	if o.Aggregation != nn.AggrAdd && o.Aggregation != nn.AggrMean {
		return nn.NewError(nn.ErrConfig, caller, "invalid aggregation %d", o.Aggregation)
	}
	return nil
}

// Node2Prop2 transforms every node, optionally rescales the result, and
// then aggregates by structure. This is the SchNet readout.
type Node2Prop2 struct {
	output nn.Sequential //node -> hidden -> out
	scaler nn.Scaler
	aggr   nn.Aggregation
}

// NewNode2Prop2 returns a readout with parameters drawn from src.
func NewNode2Prop2(o ReadoutOptions, src rand.Source) (*Node2Prop2, error) {
	if err := o.check("NewNode2Prop2"); err != nil {
		return nil, err
	}
	return &Node2Prop2{
		output: nn.Sequential{
			nn.NewDense(o.NodeDim, o.HiddenDim, true, o.Activation, o.Init, src),
			nn.NewDense(o.HiddenDim, o.OutDim, false, nn.Identity, o.Init, src),
		},
		scaler: o.Scaler,
		aggr:   o.Aggregation,
	}, nil
}

func (r *Node2Prop2) Forward(x *mat.Dense, batch []int, nStruct int) (*mat.Dense, error) {
	const caller = "Node2Prop2.Forward"
	out, err := r.output.Forward(x)
	if err != nil {
		return nil, nn.Decorate(err, caller)
	}
	if r.scaler != nil {
		if err := r.scaler.Scale(out); err != nil {
			return nil, nn.Decorate(err, caller)
		}
	}
	ret, err := aggregate(out, batch, nStruct, r.aggr)
	return ret, nn.Decorate(err, caller)
}

func (r *Node2Prop2) Params(prefix string) []nn.Param {
	return r.output.Params(prefix + ".output")
}

func (r *Node2Prop2) String() string {
	return fmt.Sprintf("Node2Prop2(%d->%d->%d, aggr=%s, scaler=%v)", r.output.In(), r.output[0].Out(), r.output.Out(), r.aggr, r.scaler)
}

// Node2Prop1 transforms every node, aggregates by structure, and then
// transforms the aggregate again (the EGNN readout).
type Node2Prop1 struct {
	node   nn.Sequential //node -> hidden -> hidden
	output nn.Sequential //hidden -> hidden -> out
	aggr   nn.Aggregation
}

// NewNode2Prop1 returns a readout with parameters drawn from src.
func NewNode2Prop1(o ReadoutOptions, src rand.Source) (*Node2Prop1, error) {
	if err := o.check("NewNode2Prop1"); err != nil {
		return nil, err
	}
	return &Node2Prop1{
		node: nn.Sequential{
			nn.NewDense(o.NodeDim, o.HiddenDim, true, o.Activation, o.Init, src),
			nn.NewDense(o.HiddenDim, o.HiddenDim, true, nn.Identity, o.Init, src),
		},
		output: nn.Sequential{
			nn.NewDense(o.HiddenDim, o.HiddenDim, true, o.Activation, o.Init, src),
			nn.NewDense(o.HiddenDim, o.OutDim, false, nn.Identity, o.Init, src),
		},
		aggr: o.Aggregation,
	}, nil
}

func (r *Node2Prop1) Forward(x *mat.Dense, batch []int, nStruct int) (*mat.Dense, error) {
	const caller = "Node2Prop1.Forward"
	h, err := r.node.Forward(x)
	if err != nil {
		return nil, nn.Decorate(err, caller)
	}
	h, err = aggregate(h, batch, nStruct, r.aggr)
	if err != nil {
		return nil, nn.Decorate(err, caller)
	}
	ret, err := r.output.Forward(h)
	return ret, nn.Decorate(err, caller)
}

func (r *Node2Prop1) Params(prefix string) []nn.Param {
	return append(r.node.Params(prefix+".node"), r.output.Params(prefix+".output")...)
}

func (r *Node2Prop1) String() string {
	return fmt.Sprintf("Node2Prop1(%d->%d->%d, aggr=%s)", r.node.In(), r.node.Out(), r.output.Out(), r.aggr)
}

// aggregate scatters the rows of m by structure. A nil batch means a single
// structure.
func aggregate(m *mat.Dense, batch []int, nStruct int, aggr nn.Aggregation) (*mat.Dense, error) {
	r, _ := m.Dims()
	if batch == nil {
		batch = make([]int, r)
		nStruct = 1
	}
	if len(batch) != r {
		return nil, nn.NewError(nn.ErrShape, "aggregate", "batch index has %d elements for %d nodes", len(batch), r)
	}
	return nn.Scatter(m, batch, nStruct, aggr)
}
