/*
 * doc.go, part of gognn.
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

/*Package gnn implements SchNet-style continuous-filter convolutional
networks for the prediction of molecular and crystal properties.

	**gognn Capabilities**

    Builds a model from a YAML configuration. Every option is listed in
	Config, and unknown options are rejected.

    Embeds atoms by atomic number, either with a learned table or with
	a projection of their Slater orbital exponents (package exponent).

    Expands interatomic distances in gaussian radial basis functions,
	optionally damped by a smooth cutoff.

    Runs any number of convolutions (interaction blocks), either each
	with its own weights or all sharing a single set.

    Reads out one property vector per structure, so many structures can
	be predicted in one Batch.

    Saves and loads the weights (zstd-compressed JSON) and predicts many
	batches concurrently (PredictAll).

Distances can be given directly, or computed from the positions, with
optional periodic shift vectors. The radius graph of a structure (the
edges of the Batch) can be built with package chemgraph.

Training is not implemented. Models only do forward passes, which read
the parameters and nothing else, so they are safe for concurrent use.
*/
package gnn
