/*
 * schnet.go, part of gognn.
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
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/rmera/gognn/nn"
	"gonum.org/v1/gonum/mat"
)

// SchNet is a message passing network that maps a Batch of atomic
// structures to one property vector per structure.
// Forward only reads the parameters, so it can be called from several
// goroutines at the same time, as long as nobody changes the weights
// (Load) meanwhile.
type SchNet struct {
	cfg     Config
	rbf     *nn.GaussianRBF
	cutoff  nn.Cutoff
	embed   nn.Embedder
	convs   []*Conv //with shared weights, the same pointer repeated.
	readout Readout
	logger  *slog.Logger
}

// New builds a model from cfg. The parameters are drawn from a PCG source
// seeded with cfg.Seed, so two models built from the same Config are
// identical.
func New(cfg *Config) (*SchNet, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, nn.Decorate(err, "New")
	}
	//Validate already checked every name, so the errors below can't happen.
	act, _ := nn.ParseActivation(cfg.Activation)
	winit, _ := nn.ParseInit(cfg.WeightInit)
	aggr, _ := nn.ParseAggregation(cfg.Aggregation)
	cut, _ := nn.NewCutoff(nn.CutoffKind(cfg.Cutoff), cfg.CutoffRadius)
	src := rand.NewPCG(cfg.Seed, cfg.Seed)
	m := &SchNet{cfg: *cfg, cutoff: cut, logger: slog.Default()}
	var err error
	m.rbf, err = nn.NewGaussianRBF(0, cfg.rbfStop(), cfg.NGaussian)
	if err != nil {
		return nil, nn.Decorate(err, "New")
	}
	switch cfg.Embedding {
	case EmbeddingExponent:
		m.embed, err = nn.NewExponentEmbedding(cfg.MaxZ, cfg.NodeDim, winit, src)
	default:
		m.embed, err = nn.NewEmbedding(cfg.MaxZ, cfg.NodeDim, src)
	}
	if err != nil {
		return nil, nn.Decorate(err, "New")
	}
	co := ConvOptions{
		NodeDim:       cfg.NodeDim,
		EdgeFilterDim: cfg.EdgeFilterDim,
		NGaussian:     cfg.NGaussian,
		HiddenDim:     cfg.HiddenDim,
		Activation:    act,
		Init:          winit,
		Aggregation:   aggr,
		Cutoff:        cut,
		Residual:      cfg.Residual,
	}
	m.convs = make([]*Conv, cfg.NConvLayer)
	for i := range m.convs {
		if cfg.ShareWeight && i > 0 {
			m.convs[i] = m.convs[0]
			continue
		}
		m.convs[i], err = NewConv(co, src)
		if err != nil {
			return nil, nn.Decorate(err, "New")
		}
	}
	ro := ReadoutOptions{
		NodeDim:     cfg.NodeDim,
		HiddenDim:   cfg.HiddenDim,
		OutDim:      cfg.OutDim,
		Activation:  act,
		Init:        winit,
		Aggregation: aggr,
	}
	if cfg.Scaler != nil {
		ro.Scaler, err = nn.NewStandardScaler(cfg.Scaler.Mean, cfg.Scaler.Stddev, cfg.OutDim)
		if err != nil {
			return nil, nn.Decorate(err, "New")
		}
	}
	switch cfg.Readout {
	case ReadoutNode2Prop1:
		m.readout, err = NewNode2Prop1(ro, src)
	default:
		m.readout, err = NewNode2Prop2(ro, src)
	}
	if err != nil {
		return nil, nn.Decorate(err, "New")
	}
	m.logger.Info("gognn: model built", "layers", cfg.NConvLayer, "shared", cfg.ShareWeight, "params", m.NParams())
	return m, nil
}

// SetLogger replaces the logger of the model. A nil logger discards
// all output.
func (m *SchNet) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	m.logger = l
}

// Config returns a copy of the configuration the model was built from.
func (m *SchNet) Config() Config {
	return m.cfg
}

// Forward returns the predicted properties for the structures in b,
// one row per structure.
func (m *SchNet) Forward(b *Batch) (*mat.Dense, error) {
	const caller = "SchNet.Forward"
	if b == nil {
		return nil, nn.NewError(nn.ErrShape, caller, "nil batch")
	}
	if err := b.Validate(); err != nil {
		return nil, nn.Decorate(err, caller)
	}
	dist, err := b.EdgeDistances()
	if err != nil {
		return nil, nn.Decorate(err, caller)
	}
	basis := m.rbf.Expand(dist)
	x, err := m.embed.Forward(b.AtomicNumbers)
	if err != nil {
		return nil, nn.Decorate(err, caller)
	}
	for i, c := range m.convs {
		x, err = c.Forward(x, dist, basis, b.EdgeSrc, b.EdgeDst)
		if err != nil {
			return nil, nn.Decorate(err, fmt.Sprintf("%s (layer %d)", caller, i))
		}
	}
	out, err := m.readout.Forward(x, b.BatchIndex, b.NStructures())
	if err != nil {
		return nil, nn.Decorate(err, caller)
	}
	m.logger.Debug("gognn: forward pass", "atoms", b.NAtoms(), "edges", b.NEdges(), "structures", b.NStructures())
	return out, nil
}

// Params returns all the parameters of the model, in a fixed order.
// A shared convolution is listed only once.
func (m *SchNet) Params() []nn.Param {
	ret := m.embed.Params("embedding")
	seen := make(map[*Conv]bool, len(m.convs))
	for i, c := range m.convs {
		if seen[c] {
			continue
		}
		seen[c] = true
		ret = append(ret, c.Params(fmt.Sprintf("conv.%d", i))...)
	}
	return append(ret, m.readout.Params("readout")...)
}

// NParams returns the number of scalar parameters in the model.
func (m *SchNet) NParams() int {
	n := 0
	for _, p := range m.Params() {
		r, c := p.Value.Dims()
		n += r * c
	}
	return n
}

func (m *SchNet) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "SchNet(\n  embedding: %v\n  rbf: %v\n  cutoff: %v\n", m.embed, m.rbf, m.cutoff)
	shared := ""
	if m.cfg.ShareWeight && len(m.convs) > 1 {
		shared = " (shared)"
	}
	fmt.Fprintf(&b, "  convs: %d x %v%s\n", len(m.convs), m.convs[0], shared)
	fmt.Fprintf(&b, "  readout: %v\n)", m.readout)
	return b.String()
}
