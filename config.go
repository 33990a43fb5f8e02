/*
 * config.go, part of gognn.
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
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rmera/gognn/exponent"
	"github.com/rmera/gognn/nn"
	"gopkg.in/yaml.v3"
)

// Readout names.
const (
	ReadoutNode2Prop2 = "node2prop2"
	ReadoutNode2Prop1 = "node2prop1"
)

// Embedding names.
const (
	EmbeddingLookup   = "lookup"
	EmbeddingExponent = "exponent"
)

// Config holds every option of a SchNet model. Options not listed here
// do not exist; unknown keys in a YAML file are an error.
type Config struct {
	NodeDim       int     `yaml:"node_dim"`
	EdgeFilterDim int     `yaml:"edge_filter_dim"`
	NConvLayer    int     `yaml:"n_conv_layer"`
	OutDim        int     `yaml:"out_dim"`
	NGaussian     int     `yaml:"n_gaussian"`
	HiddenDim     int     `yaml:"hidden_dim"`
	Activation    string  `yaml:"activation"`
	Cutoff        string  `yaml:"cutoff"`
	CutoffRadius  float64 `yaml:"cutoff_radius"`
	//RBFStop is the last gaussian center. If 0, CutoffRadius-0.5 is used.
	RBFStop     float64       `yaml:"rbf_stop"`
	Aggregation string        `yaml:"aggregation"`
	Readout     string        `yaml:"readout"`
	Scaler      *ScalerConfig `yaml:"scaler"`
	WeightInit  string        `yaml:"weight_init"`
	ShareWeight bool          `yaml:"share_weight"`
	MaxZ        int           `yaml:"max_z"`
	Embedding   string        `yaml:"embedding"`
	Residual    bool          `yaml:"residual"`
	Seed        uint64        `yaml:"seed"`
}

// ScalerConfig turns on the output scaler of the readout. A nil Mean is 0
// and a nil Stddev is 1.
type ScalerConfig struct {
	Mean   []float64 `yaml:"mean"`
	Stddev []float64 `yaml:"stddev"`
}

// DefaultConfig returns the options of the reference SchNet: shifted
// softplus, cosine cutoff at 4 A, sum aggregation and xavier uniform
// initialization.
func DefaultConfig() *Config {
	return &Config{
		NodeDim:       128,
		EdgeFilterDim: 128,
		NConvLayer:    3,
		OutDim:        1,
		NGaussian:     50,
		HiddenDim:     256,
		Activation:    "shifted_softplus",
		Cutoff:        string(nn.CutoffCosine),
		CutoffRadius:  4.0,
		Aggregation:   "add",
		Readout:       ReadoutNode2Prop2,
		WeightInit:    "xavier_uniform",
		MaxZ:          100,
		Embedding:     EmbeddingLookup,
		Residual:      true,
	}
}

// ParseConfig decodes YAML on top of DefaultConfig and validates the result.
func ParseConfig(data []byte) (*Config, error) {
	c := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, nn.NewError(nn.ErrConfig, "ParseConfig", "%v", err)
	}
	if err := c.Validate(); err != nil {
		return nil, nn.Decorate(err, "ParseConfig")
	}
	return c, nil
}

// LoadConfig reads a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("LoadConfig: %w", err)
	}
	c, err := ParseConfig(data)
	return c, nn.Decorate(err, "LoadConfig: "+path)
}

// Marshal returns the YAML form of c.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// rbfStop is the position of the last gaussian.
func (c *Config) rbfStop() float64 {
	if c.RBFStop > 0 {
		return c.RBFStop
	}
	return c.CutoffRadius - 0.5
}

// Validate returns a configuration error for the first invalid option.
func (c *Config) Validate() error {
	const caller = "Config.Validate"
	dims := []struct {
		name string
		v    int
	}{
		{"node_dim", c.NodeDim},
		{"edge_filter_dim", c.EdgeFilterDim},
		{"n_conv_layer", c.NConvLayer},
		{"out_dim", c.OutDim},
		{"n_gaussian", c.NGaussian},
		{"hidden_dim", c.HiddenDim},
		{"max_z", c.MaxZ},
	}
	for _, d := range dims {
		if d.v < 1 {
			return nn.NewError(nn.ErrConfig, caller, "%s must be positive, got %d", d.name, d.v)
		}
	}
	if _, err := nn.ParseActivation(c.Activation); err != nil {
		return nn.Decorate(err, caller)
	}
	if _, err := nn.ParseInit(c.WeightInit); err != nil {
		return nn.Decorate(err, caller)
	}
	if _, err := nn.ParseAggregation(c.Aggregation); err != nil {
		return nn.Decorate(err, caller)
	}
	if _, err := nn.NewCutoff(nn.CutoffKind(c.Cutoff), c.CutoffRadius); err != nil {
		return nn.Decorate(err, caller)
	}
	if c.NGaussian > 1 && c.rbfStop() <= 0 {
		return nn.NewError(nn.ErrConfig, caller, "the radial basis needs rbf_stop or a cutoff_radius larger than 0.5")
	}
	switch c.Readout {
	case ReadoutNode2Prop1, ReadoutNode2Prop2:
	default:
		return nn.NewError(nn.ErrConfig, caller, "unknown readout %q", c.Readout)
	}
	if c.Readout == ReadoutNode2Prop1 && c.Scaler != nil {
		return nn.NewError(nn.ErrConfig, caller, "the scaler is only available with the %s readout", ReadoutNode2Prop2)
	}
	switch c.Embedding {
	case EmbeddingLookup, EmbeddingExponent:
	default:
		return nn.NewError(nn.ErrConfig, caller, "unknown embedding %q", c.Embedding)
	}
	if c.Embedding == EmbeddingExponent && c.MaxZ > exponent.MaxZ {
		return nn.NewError(nn.ErrConfig, caller, "the exponent embedding covers up to Z=%d, max_z is %d", exponent.MaxZ, c.MaxZ)
	}
	return nil
}
