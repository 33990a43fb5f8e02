/*
 * cutoff.go, part of gognn.
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
	"math"
	"strings"
)

// Cutoff turns distances into weights in [0,1] that reach 0, with a
// continuous derivative, at Radius().
type Cutoff interface {
	Weights(d []float64) []float64
	Derivative(d []float64) []float64
	Radius() float64
}

// CutoffKind names a Cutoff implementation. CutoffNone means the
// interactions are not weighted at all.
type CutoffKind string

const (
	CutoffNone       CutoffKind = "none"
	CutoffCosine     CutoffKind = "cosine"
	CutoffPolynomial CutoffKind = "polynomial"
)

// exponent of the default polynomial envelope.
const defaultEnvelopeP = 6

// NewCutoff returns the Cutoff of the given kind. It returns a nil Cutoff
// and no error for CutoffNone.
func NewCutoff(kind CutoffKind, radius float64) (Cutoff, error) {
	switch CutoffKind(strings.ToLower(string(kind))) {
	case CutoffNone:
		return nil, nil
	case CutoffCosine:
		if radius <= 0 {
			return nil, NewError(ErrConfig, "NewCutoff", "the cosine cutoff needs a positive radius, got %g", radius)
		}
		return CosineCutoff{R: radius}, nil
	case CutoffPolynomial:
		if radius <= 0 {
			return nil, NewError(ErrConfig, "NewCutoff", "the polynomial cutoff needs a positive radius, got %g", radius)
		}
		return PolynomialCutoff{R: radius, P: defaultEnvelopeP}, nil
	}
	return nil, NewError(ErrConfig, "NewCutoff", "unknown cutoff %q (known: cosine, polynomial, none)", kind)
}

// CosineCutoff is 0.5*(cos(pi d/R)+1) for d<R and 0 beyond.
type CosineCutoff struct {
	R float64
}

func (c CosineCutoff) Radius() float64 { return c.R }

func (c CosineCutoff) Weights(d []float64) []float64 {
	ret := make([]float64, len(d))
	for i, v := range d {
		if v < c.R {
			ret[i] = 0.5 * (math.Cos(math.Pi*v/c.R) + 1)
		}
	}
	return ret
}

func (c CosineCutoff) Derivative(d []float64) []float64 {
	ret := make([]float64, len(d))
	for i, v := range d {
		if v < c.R {
			ret[i] = -0.5 * math.Pi / c.R * math.Sin(math.Pi*v/c.R)
		}
	}
	return ret
}

func (c CosineCutoff) String() string { return fmt.Sprintf("CosineCutoff(%g)", c.R) }

// PolynomialCutoff is the envelope of Klicpera et al. (DimeNet), with
// x=d/R:
//
//	1 - (p+1)(p+2)/2 x^p + p(p+2) x^(p+1) - p(p+1)/2 x^(p+2)
//
// for x<1 and 0 beyond.
type PolynomialCutoff struct {
	R float64
	P int
}

func (c PolynomialCutoff) Radius() float64 { return c.R }

func (c PolynomialCutoff) coeffs() (a, b, cc float64) {
	p := float64(c.P)
	return -(p + 1) * (p + 2) / 2, p * (p + 2), -p * (p + 1) / 2
}

func (c PolynomialCutoff) Weights(d []float64) []float64 {
	a, b, cc := c.coeffs()
	ret := make([]float64, len(d))
	for i, v := range d {
		x := v / c.R
		if x < 1 {
			xp := math.Pow(x, float64(c.P))
			ret[i] = 1 + a*xp + b*xp*x + cc*xp*x*x
		}
	}
	return ret
}

func (c PolynomialCutoff) Derivative(d []float64) []float64 {
	a, b, cc := c.coeffs()
	p := float64(c.P)
	ret := make([]float64, len(d))
	for i, v := range d {
		x := v / c.R
		if x < 1 {
			xp1 := math.Pow(x, p-1)
			ret[i] = (a*p*xp1 + b*(p+1)*xp1*x + cc*(p+2)*xp1*x*x) / c.R
		}
	}
	return ret
}

func (c PolynomialCutoff) String() string {
	return fmt.Sprintf("PolynomialCutoff(%g, p=%d)", c.R, c.P)
}
