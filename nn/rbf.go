/*
 * rbf.go, part of gognn.
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

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// GaussianRBF expands a distance into Len() gaussians of equal width
// centered on evenly spaced points.
type GaussianRBF struct {
	centers []float64
	width   float64
}

// NewGaussianRBF returns n gaussians centered on an evenly spaced grid from
// start to stop, both included. The width of every gaussian is the grid
// spacing (1 for a single gaussian).
func NewGaussianRBF(start, stop float64, n int) (*GaussianRBF, error) {
	if n < 1 {
		return nil, NewError(ErrConfig, "NewGaussianRBF", "need at least one gaussian, got %d", n)
	}
	if n == 1 {
		return &GaussianRBF{centers: []float64{start}, width: 1}, nil
	}
	if !(stop > start) {
		return nil, NewError(ErrConfig, "NewGaussianRBF", "stop (%g) must be larger than start (%g)", stop, start)
	}
	c := floats.Span(make([]float64, n), start, stop)
	return &GaussianRBF{centers: c, width: c[1] - c[0]}, nil
}

// Len returns the number of gaussians.
func (g *GaussianRBF) Len() int { return len(g.centers) }

// Width returns the (shared) width of the gaussians.
func (g *GaussianRBF) Width() float64 { return g.width }

// Centers returns a copy of the gaussian centers.
func (g *GaussianRBF) Centers() []float64 {
	return append([]float64(nil), g.centers...)
}

// Extend returns a basis with extra more gaussians, placed after the last
// center with the same spacing and width. The first Len() columns of the
// new expansion are equal to those of g.
func (g *GaussianRBF) Extend(extra int) *GaussianRBF {
	c := make([]float64, len(g.centers), len(g.centers)+max(extra, 0))
	copy(c, g.centers)
	last := c[len(c)-1]
	for i := 1; i <= extra; i++ {
		c = append(c, last+float64(i)*g.width)
	}
	return &GaussianRBF{centers: c, width: g.width}
}

// Expand returns the len(d) x Len() expansion of the distances d, or nil
// if d is empty.
func (g *GaussianRBF) Expand(d []float64) *mat.Dense {
	if len(d) == 0 {
		return nil
	}
	coeff := -0.5 / (g.width * g.width)
	ret := mat.NewDense(len(d), len(g.centers), nil)
	for i, v := range d {
		row := ret.RawRowView(i)
		for k, mu := range g.centers {
			x := v - mu
			row[k] = math.Exp(coeff * x * x)
		}
	}
	return ret
}

// Derivative returns the derivative of every column of Expand with
// respect to the distance, or nil if d is empty.
func (g *GaussianRBF) Derivative(d []float64) *mat.Dense {
	if len(d) == 0 {
		return nil
	}
	coeff := -0.5 / (g.width * g.width)
	ret := mat.NewDense(len(d), len(g.centers), nil)
	for i, v := range d {
		row := ret.RawRowView(i)
		for k, mu := range g.centers {
			x := v - mu
			row[k] = 2 * coeff * x * math.Exp(coeff*x*x)
		}
	}
	return ret
}

func (g *GaussianRBF) String() string {
	return fmt.Sprintf("GaussianRBF(start=%g, stop=%g, n=%d)", g.centers[0], g.centers[len(g.centers)-1], len(g.centers))
}
