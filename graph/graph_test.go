// SPDX-License-Identifier: MIT
package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lagraph/edge"
	"github.com/katalvlaran/lagraph/graph"
	"github.com/katalvlaran/lagraph/vertex"
)

func newTestGraph(t *testing.T) *graph.Graph {
	t.Helper()
	return graph.New(
		graph.WithInitialVertexCapacity(4),
		graph.WithInitialVertexTypeCapacity(8),
		graph.WithInitialEdgeTypeCapacity(8),
		graph.WithMaxVertexCapacity(64),
	)
}

// Fresh graphs are isolated: neither ID nor any type/index allocated
// in one leaks into another.
func TestGraph_FreshGraphIsolation(t *testing.T) {
	a := newTestGraph(t)
	b := newTestGraph(t)
	require.NotEqual(t, a.ID(), b.ID())

	ta, err := graph.NewVertexType[int64](a, vertex.Public)
	require.NoError(t, err)
	require.True(t, a.IsValidVertexType(ta))
	require.False(t, b.IsValidVertexType(ta))
}

// Allocating vertices past initial capacity cascades a resize across
// both the vertex store and every live adjacency matrix.
func TestGraph_CapacityGrowthCascade(t *testing.T) {
	g := newTestGraph(t)

	ti, err := graph.NewVertexType[int64](g, vertex.Public)
	require.NoError(t, err)
	ei, err := graph.NewEdgeType[float64](g, edge.Public)
	require.NoError(t, err)

	before := g.VertexCapacity()
	var last vertex.Index
	for i := 0; i < int(before)+1; i++ {
		v, err := g.NewVertexIndex()
		require.NoError(t, err)
		last = v
	}
	require.Greater(t, g.VertexCapacity(), before)

	require.NoError(t, graph.SetVertex[int64](g, ti, last, 7))
	require.NoError(t, graph.NewEdge[float64](g, ei, last, last, 1.5))
}

// Dropping a vertex clears every edge that touched it, in both
// directions, across every edge type.
func TestGraph_DropVertexCleansEdges(t *testing.T) {
	g := newTestGraph(t)

	ei, err := graph.NewEdgeType[float64](g, edge.Public)
	require.NoError(t, err)

	a, err := g.NewVertexIndex()
	require.NoError(t, err)
	b, err := g.NewVertexIndex()
	require.NoError(t, err)

	require.NoError(t, graph.NewEdge[float64](g, ei, a, b, 2.0))
	require.NoError(t, graph.NewEdge[float64](g, ei, b, a, 3.0))

	require.NoError(t, g.DropVertexIndex(a))

	_, ok, err := graph.EdgeWeight[float64](g, ei, a, b)
	require.NoError(t, err)
	require.False(t, ok)

	_, ok, err = graph.EdgeWeight[float64](g, ei, b, a)
	require.NoError(t, err)
	require.False(t, ok)

	require.False(t, g.IsValidVertex(a))
}

// A freed index is reused (FIFO) before the high-water mark advances
// again, per the element Indexer's allocation policy.
func TestGraph_IndexReuseFIFO(t *testing.T) {
	g := newTestGraph(t)

	v1, err := g.NewVertexIndex()
	require.NoError(t, err)
	v2, err := g.NewVertexIndex()
	require.NoError(t, err)

	require.NoError(t, g.DropVertexIndex(v1))

	v3, err := g.NewVertexIndex()
	require.NoError(t, err)
	require.Equal(t, v1, v3)
	require.NotEqual(t, v2, v3)
}
