/*
 * predict.go, part of gognn.
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
	"context"

	"github.com/rmera/gognn/nn"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// PredictAll runs m.Forward on every batch, with at most workers passes
// running at the same time (workers < 1 means no limit). The results are
// in the same order as batches. The first error cancels the passes not
// yet started and is returned.
func PredictAll(ctx context.Context, m *SchNet, batches []*Batch, workers int) ([]*mat.Dense, error) {
	ret := make([]*mat.Dense, len(batches))
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, b := range batches {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out, err := m.Forward(b)
			if err != nil {
				return nn.Decorate(err, "PredictAll")
			}
			ret[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return ret, nil
}
