// SPDX-License-Identifier: MIT
package traverse_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lagraph/edge"
	"github.com/katalvlaran/lagraph/graph"
	"github.com/katalvlaran/lagraph/traverse"
	"github.com/katalvlaran/lagraph/vertex"
)

// chain builds a directed path v0 -> v1 -> ... -> v(n-1) on a fresh
// graph and returns its vertices in order.
func chain(t *testing.T, n int) (*graph.Graph, []vertex.Index, edge.TypeIndex) {
	t.Helper()
	g := graph.New(
		graph.WithInitialVertexCapacity(4),
		graph.WithInitialVertexTypeCapacity(8),
		graph.WithInitialEdgeTypeCapacity(8),
		graph.WithMaxVertexCapacity(64),
	)

	ei, err := graph.NewEdgeType[float64](g, edge.Public)
	require.NoError(t, err)

	vs := make([]vertex.Index, n)
	for i := range vs {
		v, err := g.NewVertexIndex()
		require.NoError(t, err)
		vs[i] = v
	}
	for i := 0; i < n-1; i++ {
		require.NoError(t, graph.NewEdge[float64](g, ei, vs[i], vs[i+1], 1))
	}

	return g, vs, ei
}

func TestBFS_LinearChainDistances(t *testing.T) {
	g, vs, ei := chain(t, 4)

	levels, err := traverse.BFS(g, ei, vs[0])
	require.NoError(t, err)

	require.Equal(t, 0, levels.Level[vs[0]])
	require.Equal(t, 1, levels.Level[vs[1]])
	require.Equal(t, 2, levels.Level[vs[2]])
	require.Equal(t, 3, levels.Level[vs[3]])
	require.Equal(t, 3, levels.Depth())
}

func TestBFS_UnreachableVertexAbsent(t *testing.T) {
	g, vs, ei := chain(t, 2)

	isolated, err := g.NewVertexIndex()
	require.NoError(t, err)

	levels, err := traverse.BFS(g, ei, vs[0])
	require.NoError(t, err)

	require.False(t, levels.IsReachable(isolated))
}

func TestBFS_LeavesNoPrivateTypesBehind(t *testing.T) {
	g, vs, ei := chain(t, 3)

	publicBefore := len(g.Dispatcher().Vertices.PublicTypeIndices())

	_, err := traverse.BFS(g, ei, vs[0])
	require.NoError(t, err)

	require.Equal(t, publicBefore, len(g.Dispatcher().Vertices.PublicTypeIndices()))
}

func TestParallelReachable_IndependentGraphs(t *testing.T) {
	g1, vs1, ei1 := chain(t, 3)
	g2, vs2, ei2 := chain(t, 2)

	results, errs := traverse.ParallelReachable(context.Background(), []traverse.Query{
		{Graph: g1, EdgeType: ei1, Source: vs1[0]},
		{Graph: g2, EdgeType: ei2, Source: vs2[0]},
	})

	require.Nil(t, errs[0])
	require.Nil(t, errs[1])
	require.Len(t, results[0], 3)
	require.Len(t, results[1], 2)
}
