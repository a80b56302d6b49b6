// SPDX-License-Identifier: MIT
package operator_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lagraph/backend"
	"github.com/katalvlaran/lagraph/edge"
	"github.com/katalvlaran/lagraph/index"
	"github.com/katalvlaran/lagraph/operator"
	"github.com/katalvlaran/lagraph/vertex"
)

func newDispatcher(t *testing.T, n index.Index) (*operator.Dispatcher, *vertex.Store, *edge.Store) {
	t.Helper()
	vs := vertex.NewStore(n, 1<<20, 8)
	es := edge.NewStore(8)

	return &operator.Dispatcher{Vertices: vs, Edges: es}, vs, es
}

func TestApplyUnaryVector_Identity(t *testing.T) {
	d, vs, _ := newDispatcher(t, 4)

	src, err := vertex.NewVertexType[int64](vs, vertex.Public)
	require.NoError(t, err)
	dst, err := vertex.NewVertexType[int64](vs, vertex.Public)
	require.NoError(t, err)

	assigned, err := vs.NewVertexIndex()
	require.NoError(t, err)
	v := vertex.Index(assigned.Index)
	require.NoError(t, vertex.SetVertex[int64](vs, src, v, 5))

	err = operator.ApplyUnaryVector[int64, int64](d, dst, src, backend.Identity[int64](), nil, nil, operator.Options{})
	require.NoError(t, err)

	got, ok, err := vertex.VertexValue[int64](vs, dst, v)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int64(5), got)
}

func TestApplyUnaryVector_RejectsOverlappingSlot(t *testing.T) {
	d, vs, _ := newDispatcher(t, 4)

	ti, err := vertex.NewVertexType[int64](vs, vertex.Public)
	require.NoError(t, err)

	err = operator.ApplyUnaryVector[int64, int64](d, ti, ti, backend.Identity[int64](), nil, nil, operator.Options{})
	require.ErrorIs(t, err, operator.ErrOverlappingSlots)
}

func TestMxM_PlusTimesSemiring(t *testing.T) {
	d, vs, es := newDispatcher(t, 4)
	_ = vs

	e1, err := edge.NewEdgeType[uint64](es, edge.Public, vs.VertexCapacity())
	require.NoError(t, err)
	r, err := edge.NewEdgeType[uint64](es, edge.Public, vs.VertexCapacity())
	require.NoError(t, err)

	require.NoError(t, edge.SetEdgeWeight[uint64](es, e1, 0, 1, 1))
	require.NoError(t, edge.SetEdgeWeight[uint64](es, e1, 1, 0, 2))

	err = operator.MxM[uint64, uint64, uint64](d, r, e1, e1, backend.PlusTimesSemiring[uint64](), nil, nil, operator.MatrixArgsOptions{})
	require.NoError(t, err)

	w00, ok, err := edge.GetEdgeWeight[uint64](es, r, 0, 0)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, uint64(2), w00)

	w11, ok, err := edge.GetEdgeWeight[uint64](es, r, 1, 1)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, uint64(2), w11)
}

func TestTransposeMatrix_InPlaceAndCached(t *testing.T) {
	d, vs, es := newDispatcher(t, 4)

	e0, err := edge.NewEdgeType[float64](es, edge.Public, vs.VertexCapacity())
	require.NoError(t, err)
	prod, err := edge.NewEdgeType[float64](es, edge.Public, vs.VertexCapacity())
	require.NoError(t, err)

	require.NoError(t, edge.SetEdgeWeight[float64](es, e0, 0, 1, 7))

	err = operator.TransposeMatrix[float64](d, prod, e0, nil, nil, operator.Options{})
	require.NoError(t, err)

	w, ok, err := edge.GetEdgeWeight[float64](es, prod, 1, 0)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 7.0, w)

	err = operator.TransposeMatrix[float64](d, e0, e0, nil, nil, operator.Options{})
	require.NoError(t, err)

	w2, ok, err := edge.GetEdgeWeight[float64](es, e0, 1, 0)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 7.0, w2)
}

func TestSelectEdgesWithTailVertex(t *testing.T) {
	d, vs, es := newDispatcher(t, 4)

	e0, err := edge.NewEdgeType[float64](es, edge.Public, vs.VertexCapacity())
	require.NoError(t, err)
	prod, err := edge.NewEdgeType[float64](es, edge.Public, vs.VertexCapacity())
	require.NoError(t, err)

	require.NoError(t, edge.SetEdgeWeight[float64](es, e0, 0, 1, 3))
	require.NoError(t, edge.SetEdgeWeight[float64](es, e0, 2, 1, 4))

	err = operator.SelectEdgesWithTailVertex[float64](d, prod, e0, 0, nil, operator.MatrixArgOptions{})
	require.NoError(t, err)

	_, ok, err := edge.GetEdgeWeight[float64](es, prod, 0, 1)
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = edge.GetEdgeWeight[float64](es, prod, 2, 1)
	require.NoError(t, err)
	require.False(t, ok)
}
