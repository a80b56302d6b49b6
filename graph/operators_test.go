// SPDX-License-Identifier: MIT
package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lagraph/backend"
	"github.com/katalvlaran/lagraph/edge"
	"github.com/katalvlaran/lagraph/graph"
	"github.com/katalvlaran/lagraph/operator"
	"github.com/katalvlaran/lagraph/vertex"
)

// MxV must agree with repeated scalar multiply-accumulate: for a
// weighted adjacency matrix A and a frontier vector x, (A x)[i] equals
// the plus-times reduction over j of A[i][j] * x[j]. This exercises
// the whole Graph -> Dispatcher -> operator.MxV path with a
// hand-computed expected result rather than re-deriving it from the
// same semiring.
func TestGraph_MxV_PlusTimesMultiplyLaw(t *testing.T) {
	g := newTestGraph(t)

	vt, err := graph.NewVertexType[uint64](g, vertex.Public)
	require.NoError(t, err)
	out, err := graph.NewVertexType[uint64](g, vertex.Public)
	require.NoError(t, err)
	ei, err := graph.NewEdgeType[uint64](g, edge.Public)
	require.NoError(t, err)

	v0, err := g.NewVertexIndex()
	require.NoError(t, err)
	v1, err := g.NewVertexIndex()
	require.NoError(t, err)
	v2, err := g.NewVertexIndex()
	require.NoError(t, err)

	// Row v0: 2*x[v1] + 3*x[v2]. Row v1, v2 empty.
	require.NoError(t, graph.NewEdge[uint64](g, ei, v0, v1, 2))
	require.NoError(t, graph.NewEdge[uint64](g, ei, v0, v2, 3))

	require.NoError(t, graph.SetVertex[uint64](g, vt, v1, 5))
	require.NoError(t, graph.SetVertex[uint64](g, vt, v2, 7))

	err = graph.MxV[uint64, uint64, uint64](g, out, ei, backend.PlusTimesSemiring[uint64](), vt, nil, nil, operator.MatrixArgOptions{})
	require.NoError(t, err)

	want := uint64(2*5 + 3*7)
	got, ok, err := graph.VertexValue[uint64](g, out, v0)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, want, got)

	_, ok, err = graph.VertexValue[uint64](g, out, v1)
	require.NoError(t, err)
	require.False(t, ok)
}
