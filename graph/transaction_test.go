// SPDX-License-Identifier: MIT
package graph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lagraph/edge"
	"github.com/katalvlaran/lagraph/graph"
	"github.com/katalvlaran/lagraph/vertex"
)

// Aborting a transaction replays every recorded inverse in LIFO order,
// leaving the graph exactly as it was before the transaction began.
func TestTransaction_Abort(t *testing.T) {
	g := newTestGraph(t)

	ti, err := graph.NewVertexType[int64](g, vertex.Public)
	require.NoError(t, err)
	v, err := g.NewVertexIndex()
	require.NoError(t, err)
	require.NoError(t, graph.SetVertex[int64](g, ti, v, 1))

	capBefore := g.VertexCapacity()
	sentinel := errors.New("seed test: deliberate abort")

	err = graph.WithTransaction(g, func(tx *graph.Transaction) error {
		other, err := graph.TxNewVertexType[float64](tx, vertex.Public)
		require.NoError(t, err)
		require.True(t, g.IsValidVertexType(other))

		require.NoError(t, graph.TxSetVertex[int64](tx, ti, v, 99))

		v2, err := tx.NewVertexIndex()
		require.NoError(t, err)
		require.True(t, g.IsValidVertex(v2))

		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	got, ok, verr := graph.VertexValue[int64](g, ti, v)
	require.NoError(t, verr)
	require.True(t, ok)
	require.Equal(t, int64(1), got)
	require.Equal(t, capBefore, g.VertexCapacity())
}

// Committing a transaction (the closure returns nil) discards the
// inverse log and every mutation stands.
func TestTransaction_Commit(t *testing.T) {
	g := newTestGraph(t)

	ti, err := graph.NewVertexType[int64](g, vertex.Public)
	require.NoError(t, err)

	var v vertex.Index
	err = graph.WithTransaction(g, func(tx *graph.Transaction) error {
		var err error
		v, err = tx.NewVertexIndex()
		if err != nil {
			return err
		}
		return graph.TxSetVertex[int64](tx, ti, v, 42)
	})
	require.NoError(t, err)

	require.True(t, g.IsValidVertex(v))
	got, ok, err := graph.VertexValue[int64](g, ti, v)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int64(42), got)
}

// Aborting a transaction that dropped a vertex restores both its
// per-type values and every edge that touched it.
func TestTransaction_AbortRestoresDroppedVertex(t *testing.T) {
	g := newTestGraph(t)

	ti, err := graph.NewVertexType[int64](g, vertex.Public)
	require.NoError(t, err)
	ei, err := graph.NewEdgeType[float64](g, edge.Public)
	require.NoError(t, err)

	a, err := g.NewVertexIndex()
	require.NoError(t, err)
	b, err := g.NewVertexIndex()
	require.NoError(t, err)
	require.NoError(t, graph.SetVertex[int64](g, ti, a, 5))
	require.NoError(t, graph.NewEdge[float64](g, ei, a, b, 2.5))

	sentinel := errors.New("seed test: deliberate abort")
	err = graph.WithTransaction(g, func(tx *graph.Transaction) error {
		require.NoError(t, tx.DropVertexIndex(a))
		require.False(t, g.IsValidVertex(a))
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	require.True(t, g.IsValidVertex(a))
	value, ok, err := graph.VertexValue[int64](g, ti, a)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int64(5), value)

	weight, ok, err := graph.EdgeWeight[float64](g, ei, a, b)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 2.5, weight)
}

// A transaction started from inside another transaction on the same
// Graph is rejected outright, rather than silently interleaving two
// inverse logs against one another.
func TestTransaction_NestedRejected(t *testing.T) {
	g := newTestGraph(t)

	err := graph.WithTransaction(g, func(outer *graph.Transaction) error {
		inner := graph.WithTransaction(g, func(*graph.Transaction) error {
			return nil
		})
		require.ErrorIs(t, inner, graph.ErrNestedTransactionNotSupported)

		_, err := outer.NewVertexIndex()
		return err
	})
	require.NoError(t, err)
}
