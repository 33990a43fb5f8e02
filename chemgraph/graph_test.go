package chemgraph

import (
	"testing"

	v3 "github.com/rmera/gognn/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/topo"
)

// a linear chain 0-1-2 with 1.5 A spacing, plus a far away atom 3,
// and a copy of the first two atoms as a second structure.
func chain(t *testing.T) (*v3.Matrix, []int) {
	c, err := v3.NewMatrix([]float64{
		0, 0, 0,
		1.5, 0, 0,
		3.0, 0, 0,
		20, 0, 0,
		0, 0, 0,
		1.5, 0, 0,
	})
	require.NoError(t, err)
	return c, []int{0, 0, 0, 0, 1, 1}
}

func TestRadiusGraph(t *testing.T) {
	c, batch := chain(t)
	src, dst, err := RadiusGraph(c, batch, 2.0, 0)
	require.NoError(t, err)
	pairs := make(map[[2]int]bool)
	for e := range src {
		pairs[[2]int{src[e], dst[e]}] = true
		assert.NotEqual(t, src[e], dst[e], "self loop")
		assert.Equal(t, batch[src[e]], batch[dst[e]], "edge across structures")
	}
	want := [][2]int{{0, 1}, {1, 0}, {1, 2}, {2, 1}, {4, 5}, {5, 4}}
	assert.Len(t, src, len(want))
	for _, w := range want {
		assert.True(t, pairs[w], "missing edge %v", w)
	}

	//without batch the two structures overlap.
	src, _, err = RadiusGraph(c, nil, 2.0, 0)
	require.NoError(t, err)
	assert.Greater(t, len(src), len(want))

	//the longer cutoff reaches 0-2, but only one neighbor is kept.
	src, dst, err = RadiusGraph(c, batch, 3.5, 1)
	require.NoError(t, err)
	in := make(map[int]int)
	for e := range dst {
		in[dst[e]]++
	}
	for k, v := range in {
		assert.Equal(t, 1, v, "atom %d", k)
	}
	_ = src

	_, _, err = RadiusGraph(c, batch[:2], 2, 0)
	assert.Error(t, err)
	_, _, err = RadiusGraph(c, batch, 0, 0)
	assert.Error(t, err)
}

func TestGraph(t *testing.T) {
	c, batch := chain(t)
	src, dst, err := RadiusGraph(c, batch, 2.0, 0)
	require.NoError(t, err)
	dist, err := v3.EdgeDistances(c, src, dst, nil)
	require.NoError(t, err)
	G, err := NewGraph([]int{6, 6, 8, 1, 6, 6}, src, dst, dist)
	require.NoError(t, err)

	var _ graph.Directed = G
	var _ graph.Weighted = G

	assert.Equal(t, 6, G.Nodes().Len())
	assert.Equal(t, 2, G.From(1).Len())
	assert.Equal(t, 0, G.To(3).Len())
	assert.True(t, G.HasEdgeFromTo(0, 1))
	assert.False(t, G.HasEdgeFromTo(0, 2))
	assert.Nil(t, G.Edge(0, 2))
	w, ok := G.Weight(1, 2)
	assert.True(t, ok)
	assert.InDelta(t, 1.5, w, 1e-12)
	assert.Equal(t, []int{1, 2, 1, 0, 1, 1}, G.Degree())

	assert.True(t, topo.PathExistsIn(G, G.Node(0), G.Node(2)))
	assert.False(t, topo.PathExistsIn(G, G.Node(0), G.Node(3)))
	assert.False(t, topo.PathExistsIn(G, G.Node(0), G.Node(5)))

	sp := path.DijkstraFrom(G.Node(0), G)
	assert.InDelta(t, 3.0, sp.WeightTo(2), 1e-12)

	_, err = NewGraph([]int{1}, []int{0}, []int{1}, nil)
	assert.Error(t, err)
}
