/*
 * weights.go, part of gognn.
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
	"encoding/json"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/rmera/gognn/nn"
)

// tensor is the on-disk form of one parameter.
type tensor struct {
	Name  string    `json:"name"`
	Shape [2]int    `json:"shape"`
	Data  []float64 `json:"data"`
}

type weightFile struct {
	Config Config   `json:"config"`
	Params []tensor `json:"params"`
}

// Save writes the configuration and all parameters of the model to w, as
// zstd-compressed JSON.
func (m *SchNet) Save(w io.Writer) error {
	zw, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("SchNet.Save: %w", err)
	}
	wf := weightFile{Config: m.cfg}
	for _, p := range m.Params() {
		r, c := p.Value.Dims()
		data := make([]float64, 0, r*c)
		for i := 0; i < r; i++ {
			data = append(data, p.Value.RawRowView(i)...)
		}
		wf.Params = append(wf.Params, tensor{Name: p.Name, Shape: [2]int{r, c}, Data: data})
	}
	if err := json.NewEncoder(zw).Encode(wf); err != nil {
		zw.Close()
		return fmt.Errorf("SchNet.Save: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("SchNet.Save: %w", err)
	}
	return nil
}

// readWeights decompresses and decodes a weight file.
func readWeights(r io.Reader) (*weightFile, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	wf := new(weightFile)
	if err := json.NewDecoder(zr).Decode(wf); err != nil {
		return nil, err
	}
	return wf, nil
}

// Load replaces the parameters of the model with the ones read from r.
// Every parameter of the model must be present, with the same name and
// shape, or a shape error is returned and the model is left unchanged.
// Load must not run at the same time as Forward.
func (m *SchNet) Load(r io.Reader) error {
	const caller = "SchNet.Load"
	wf, err := readWeights(r)
	if err != nil {
		return fmt.Errorf("%s: %w", caller, err)
	}
	if err := m.setParams(wf.Params); err != nil {
		return nn.Decorate(err, caller)
	}
	return nil
}

// setParams copies ts into the model parameters. Every parameter of the
// model must be present, in order, with the same name and shape.
func (m *SchNet) setParams(ts []tensor) error {
	const caller = "setParams"
	params := m.Params()
	if len(ts) != len(params) {
		return nn.NewError(nn.ErrShape, caller, "file has %d parameters, model has %d", len(ts), len(params))
	}
	//check everything before copying anything.
	for i, p := range params {
		t := ts[i]
		r, c := p.Value.Dims()
		if t.Name != p.Name || t.Shape != [2]int{r, c} || len(t.Data) != r*c {
			return nn.NewError(nn.ErrShape, caller, "parameter %d is %s %v in the file, %s [%d %d] in the model", i, t.Name, t.Shape, p.Name, r, c)
		}
	}
	for i, p := range params {
		t := ts[i]
		_, c := p.Value.Dims()
		for j := range t.Shape[0] {
			copy(p.Value.RawRowView(j), t.Data[j*c:(j+1)*c])
		}
	}
	m.logger.Info("gognn: weights loaded", "params", len(params))
	return nil
}

// LoadModel builds a model from the configuration stored in a weight file
// and loads its parameters.
func LoadModel(r io.Reader) (*SchNet, error) {
	wf, err := readWeights(r)
	if err != nil {
		return nil, fmt.Errorf("LoadModel: %w", err)
	}
	m, err := New(&wf.Config)
	if err != nil {
		return nil, nn.Decorate(err, "LoadModel")
	}
	if err := m.setParams(wf.Params); err != nil {
		return nil, nn.Decorate(err, "LoadModel")
	}
	return m, nil
}
