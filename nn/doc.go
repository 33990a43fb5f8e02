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

/*Package nn contains the building blocks of the gognn models: dense layers,
activations and initializers (closed sets, selected by name), atomic number
embeddings, the gaussian radial basis, cutoff functions, output scalers and
the scatter reductions used for message aggregation and readout.

All matrices are gonum *mat.Dense, one row per atom or per edge. Layers
never modify their inputs, and their parameters are only read during a
forward pass, so a layer can be shared by concurrent forward passes as long
as nobody writes its parameters at the same time.*/
package nn
