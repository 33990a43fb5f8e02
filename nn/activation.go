/*
 * activation.go, part of gognn.
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
	"sort"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Activation is the closed set of nonlinearities a layer can use.
type Activation int

const (
	Identity Activation = iota
	ShiftedSoftplus
	Softplus
	Swish
	ReLU
	Tanh
	Sigmoid
)

var activationNames = map[string]Activation{
	"identity":         Identity,
	"linear":           Identity,
	"shifted_softplus": ShiftedSoftplus,
	"ssp":              ShiftedSoftplus,
	"softplus":         Softplus,
	"swish":            Swish,
	"silu":             Swish,
	"relu":             ReLU,
	"tanh":             Tanh,
	"sigmoid":          Sigmoid,
}

// ParseActivation returns the Activation called name. Unknown names are
// a configuration error.
func ParseActivation(name string) (Activation, error) {
	a, ok := activationNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Identity, NewError(ErrConfig, "ParseActivation", "unknown activation %q (known: %s)", name, strings.Join(knownNames(activationNames), ", "))
	}
	return a, nil
}

func (a Activation) String() string {
	switch a {
	case Identity:
		return "identity"
	case ShiftedSoftplus:
		return "shifted_softplus"
	case Softplus:
		return "softplus"
	case Swish:
		return "swish"
	case ReLU:
		return "relu"
	case Tanh:
		return "tanh"
	case Sigmoid:
		return "sigmoid"
	}
	return "unknown"
}

// Func returns the scalar function for a.
func (a Activation) Func() func(float64) float64 {
	switch a {
	case ShiftedSoftplus:
		return func(x float64) float64 { return softplus(x) - math.Ln2 }
	case Softplus:
		return softplus
	case Swish:
		return func(x float64) float64 { return x * sigmoid(x) }
	case ReLU:
		return func(x float64) float64 { return math.Max(x, 0) }
	case Tanh:
		return math.Tanh
	case Sigmoid:
		return sigmoid
	}
	return func(x float64) float64 { return x }
}

// Apply applies a element-wise to m, in place.
func (a Activation) Apply(m *mat.Dense) {
	if a == Identity || m == nil {
		return
	}
	f := a.Func()
	m.Apply(func(_, _ int, v float64) float64 { return f(v) }, m)
}

// log(1+e^x) without overflow for large x.
func softplus(x float64) float64 {
	return math.Max(x, 0) + math.Log1p(math.Exp(-math.Abs(x)))
}

func sigmoid(x float64) float64 {
	if x >= 0 {
		return 1 / (1 + math.Exp(-x))
	}
	e := math.Exp(x)
	return e / (1 + e)
}

func knownNames[T any](m map[string]T) []string {
	ret := make([]string, 0, len(m))
	for k := range m {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}
