// SPDX-License-Identifier: MIT
package edge_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lagraph/edge"
)

func TestStore_NewEdgeTypeAndSetGet(t *testing.T) {
	s := edge.NewStore(8)

	ei, err := edge.NewEdgeType[float64](s, edge.Public, 8)
	require.NoError(t, err)
	require.True(t, s.IsValidType(ei))

	require.NoError(t, edge.SetEdgeWeight[float64](s, ei, 0, 1, 2.5))

	w, ok, err := edge.GetEdgeWeight[float64](s, ei, 0, 1)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 2.5, w)
}

func TestStore_DomainMismatch(t *testing.T) {
	s := edge.NewStore(8)

	ei, err := edge.NewEdgeType[float64](s, edge.Public, 8)
	require.NoError(t, err)

	_, err = edge.AdjacencyMatrixRef[int64](s, ei)
	require.ErrorIs(t, err, edge.ErrDomainMismatch)
}

func TestStore_DeleteEdge(t *testing.T) {
	s := edge.NewStore(8)

	ei, err := edge.NewEdgeType[float64](s, edge.Public, 8)
	require.NoError(t, err)

	require.NoError(t, edge.SetEdgeWeight[float64](s, ei, 0, 1, 1))
	require.NoError(t, edge.DeleteEdge[float64](s, ei, 0, 1))

	_, ok, err := edge.GetEdgeWeight[float64](s, ei, 0, 1)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestStore_DeleteVertexConnections(t *testing.T) {
	s := edge.NewStore(8)

	ei, err := edge.NewEdgeType[float64](s, edge.Public, 8)
	require.NoError(t, err)

	require.NoError(t, edge.SetEdgeWeight[float64](s, ei, 0, 1, 1))
	require.NoError(t, edge.SetEdgeWeight[float64](s, ei, 2, 0, 1))

	require.NoError(t, s.DeleteVertexConnections(0))

	_, ok, err := edge.GetEdgeWeight[float64](s, ei, 0, 1)
	require.NoError(t, err)
	require.False(t, ok)

	_, ok, err = edge.GetEdgeWeight[float64](s, ei, 2, 0)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestStore_ResizeAdjacencyMatrices(t *testing.T) {
	s := edge.NewStore(8)

	ei, err := edge.NewEdgeType[float64](s, edge.Public, 4)
	require.NoError(t, err)

	m, err := edge.AdjacencyMatrixRef[float64](s, ei)
	require.NoError(t, err)

	n0, err := m.Order()
	require.NoError(t, err)
	require.Equal(t, uint64(4), uint64(n0))

	require.NoError(t, s.ResizeAdjacencyMatrices(8))

	n1, err := m.Order()
	require.NoError(t, err)
	require.Equal(t, uint64(8), uint64(n1))
}

func TestWeightedAdjacencyMatrix_TransposeCache(t *testing.T) {
	s := edge.NewStore(8)

	ei, err := edge.NewEdgeType[float64](s, edge.Public, 4)
	require.NoError(t, err)

	m, err := edge.AdjacencyMatrixRef[float64](s, ei)
	require.NoError(t, err)

	require.NoError(t, m.SetElement(0, 1, 9))

	tr, err := m.Transpose()
	require.NoError(t, err)

	w, ok, err := tr.GetElement(1, 0)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 9.0, w)
}

func TestStore_DeleteEdgeType(t *testing.T) {
	s := edge.NewStore(8)

	ei, err := edge.NewEdgeType[float64](s, edge.Public, 4)
	require.NoError(t, err)
	require.NoError(t, s.DeleteEdgeType(ei))
	require.False(t, s.IsValidType(ei))

	_, err = edge.AdjacencyMatrixRef[float64](s, ei)
	require.ErrorIs(t, err, edge.ErrTypeIndexNotValid)
}
