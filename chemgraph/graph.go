/*
 * graph.go, part of gognn.
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

// Package chemgraph builds the edge index of atomic structures (which atom
// sends messages to which) and exposes it as a Gonum graph.
package chemgraph

import (
	"fmt"
	"sort"

	v3 "github.com/rmera/gognn/v3"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
)

// Error is the error type of this package.
type Error struct {
	message string
	caller  string
}

func (err Error) Error() string {
	return fmt.Sprintf("chemgraph.%s: %s", err.caller, err.message)
}

// RadiusGraph returns, as an edge index, every ordered pair of atoms of the
// same structure closer than cutoff. Both directions of each pair are
// included, and self-loops are not. batch assigns each atom to a structure
// (nil means all atoms belong to the same one). If maxNeighbors is positive,
// each atom receives messages from, at most, its maxNeighbors closest
// neighbors. Edges are sorted by destination and then by distance.
func RadiusGraph(coords *v3.Matrix, batch []int, cutoff float64, maxNeighbors int) (src, dst []int, err error) {
	if coords == nil {
		return nil, nil, Error{"nil coordinates", "RadiusGraph"}
	}
	n := coords.NVecs()
	if batch != nil && len(batch) != n {
		return nil, nil, Error{fmt.Sprintf("%d batch indexes for %d atoms", len(batch), n), "RadiusGraph"}
	}
	if cutoff <= 0 {
		return nil, nil, Error{fmt.Sprintf("cutoff must be positive, got %g", cutoff), "RadiusGraph"}
	}
	type neighbor struct {
		i int
		d float64
	}
	nb := make([]neighbor, 0, 16)
	for j := 0; j < n; j++ {
		nb = nb[:0]
		for i := 0; i < n; i++ {
			if i == j || (batch != nil && batch[i] != batch[j]) {
				continue
			}
			if d := coords.Distance(i, j); d < cutoff {
				nb = append(nb, neighbor{i, d})
			}
		}
		sort.SliceStable(nb, func(a, b int) bool { return nb[a].d < nb[b].d })
		if maxNeighbors > 0 && len(nb) > maxNeighbors {
			nb = nb[:maxNeighbors]
		}
		for _, v := range nb {
			src = append(src, v.i)
			dst = append(dst, j)
		}
	}
	return src, dst, nil
}

// Atom is a node of a Graph. Its ID is the atom index.
type Atom struct {
	Index int
	Z     int
}

func (A *Atom) ID() int64 {
	return int64(A.Index)
}

// Edge goes from the atom that sends a message to the one that receives it.
type Edge struct {
	At1, At2 *Atom
	Distance float64
	Index    int //position in the edge index
}

func (E *Edge) From() graph.Node {
	return E.At1
}

func (E *Edge) To() graph.Node {
	return E.At2
}

// ReversedEdge returns a new edge with the ends swapped. It is not part of
// the graph unless the reverse edge was also in the edge index.
func (E *Edge) ReversedEdge() graph.Edge {
	return &Edge{At1: E.At2, At2: E.At1, Distance: E.Distance, Index: -1}
}

// Weight returns the length of the edge.
func (E *Edge) Weight() float64 {
	return E.Distance
}

// Graph is a directed graph view of an edge index. It implements
// graph.Directed and graph.Weighted, with the interatomic distances as
// weights.
type Graph struct {
	atoms []*Atom
	edges map[[2]int64]*Edge
	from  [][]graph.Node //from[i]: nodes reached by edges leaving i
	to    [][]graph.Node //to[i]: nodes with edges arriving at i
}

// NewGraph builds the graph of a structure with the given atomic numbers
// and edge index. dist may be nil, in which case all the weights are 1.
func NewGraph(z, src, dst []int, dist []float64) (*Graph, error) {
	n := len(z)
	if len(src) != len(dst) || (dist != nil && len(dist) != len(src)) {
		return nil, Error{fmt.Sprintf("%d sources, %d destinations and %d distances", len(src), len(dst), len(dist)), "NewGraph"}
	}
	G := &Graph{
		atoms: make([]*Atom, n),
		edges: make(map[[2]int64]*Edge, len(src)),
		from:  make([][]graph.Node, n),
		to:    make([][]graph.Node, n),
	}
	for i, v := range z {
		G.atoms[i] = &Atom{Index: i, Z: v}
	}
	for e := range src {
		s, d := src[e], dst[e]
		if s < 0 || s >= n || d < 0 || d >= n {
			return nil, Error{fmt.Sprintf("edge %d (%d->%d) outside [0,%d)", e, s, d, n), "NewGraph"}
		}
		key := [2]int64{int64(s), int64(d)}
		if _, ok := G.edges[key]; ok {
			continue //repeated edges (periodic images) count once
		}
		w := 1.0
		if dist != nil {
			w = dist[e]
		}
		G.edges[key] = &Edge{At1: G.atoms[s], At2: G.atoms[d], Distance: w, Index: e}
		G.from[s] = append(G.from[s], G.atoms[d])
		G.to[d] = append(G.to[d], G.atoms[s])
	}
	return G, nil
}

func (G *Graph) Node(id int64) graph.Node {
	if id < 0 || id >= int64(len(G.atoms)) {
		return nil
	}
	return G.atoms[id]
}

func (G *Graph) Nodes() graph.Nodes {
	nodes := make([]graph.Node, len(G.atoms))
	for i, v := range G.atoms {
		nodes[i] = v
	}
	return iterator.NewOrderedNodes(nodes)
}

func (G *Graph) From(id int64) graph.Nodes {
	if G.Node(id) == nil || len(G.from[id]) == 0 {
		return graph.Empty
	}
	return iterator.NewOrderedNodes(G.from[id])
}

func (G *Graph) To(id int64) graph.Nodes {
	if G.Node(id) == nil || len(G.to[id]) == 0 {
		return graph.Empty
	}
	return iterator.NewOrderedNodes(G.to[id])
}

func (G *Graph) HasEdgeFromTo(uid, vid int64) bool {
	_, ok := G.edges[[2]int64{uid, vid}]
	return ok
}

func (G *Graph) HasEdgeBetween(xid, yid int64) bool {
	return G.HasEdgeFromTo(xid, yid) || G.HasEdgeFromTo(yid, xid)
}

func (G *Graph) Edge(uid, vid int64) graph.Edge {
	return G.WeightedEdge(uid, vid)
}

func (G *Graph) WeightedEdge(uid, vid int64) graph.WeightedEdge {
	e, ok := G.edges[[2]int64{uid, vid}]
	if !ok {
		return nil
	}
	return e
}

func (G *Graph) Weight(xid, yid int64) (w float64, ok bool) {
	if xid == yid {
		return 0, true
	}
	e, ok := G.edges[[2]int64{xid, yid}]
	if !ok {
		return 0, false
	}
	return e.Distance, true
}

// Degree returns the number of edges arriving at each atom, that is, the
// number of messages each atom receives in a convolution.
func (G *Graph) Degree() []int {
	ret := make([]int, len(G.atoms))
	for i, v := range G.to {
		ret[i] = len(v)
	}
	return ret
}
