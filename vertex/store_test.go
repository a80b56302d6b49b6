// SPDX-License-Identifier: MIT
package vertex_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lagraph/vertex"
)

func TestStore_NewVertexTypeAndSetGet(t *testing.T) {
	s := vertex.NewStore(4, 64, 8)

	ti, err := vertex.NewVertexType[int64](s, vertex.Public)
	require.NoError(t, err)
	require.True(t, s.IsValidType(ti))

	assigned, err := s.NewVertexIndex()
	require.NoError(t, err)
	v := vertex.Index(assigned.Index)

	require.NoError(t, vertex.SetVertex[int64](s, ti, v, 42))

	got, ok, err := vertex.VertexValue[int64](s, ti, v)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int64(42), got)
}

func TestStore_DomainMismatch(t *testing.T) {
	s := vertex.NewStore(4, 64, 8)

	ti, err := vertex.NewVertexType[int64](s, vertex.Public)
	require.NoError(t, err)

	_, err = vertex.VertexVectorRef[float64](s, ti)
	require.ErrorIs(t, err, vertex.ErrDomainMismatch)
}

func TestStore_UpdateRequiresPresence(t *testing.T) {
	s := vertex.NewStore(4, 64, 8)

	ti, err := vertex.NewVertexType[int64](s, vertex.Public)
	require.NoError(t, err)

	assigned, err := s.NewVertexIndex()
	require.NoError(t, err)
	v := vertex.Index(assigned.Index)

	err = vertex.UpdateVertex[int64](s, ti, v, 1)
	require.ErrorIs(t, err, vertex.ErrElementNotPresent)

	require.NoError(t, vertex.SetVertex[int64](s, ti, v, 1))
	require.NoError(t, vertex.UpdateVertex[int64](s, ti, v, 2))

	got, ok, err := vertex.VertexValue[int64](s, ti, v)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int64(2), got)
}

func TestStore_ResizeVertexVectors(t *testing.T) {
	s := vertex.NewStore(2, 64, 8)

	ti, err := vertex.NewVertexType[int64](s, vertex.Public)
	require.NoError(t, err)

	vv, err := vertex.VertexVectorRef[int64](s, ti)
	require.NoError(t, err)

	l0, err := vv.Length()
	require.NoError(t, err)
	require.Equal(t, s.VertexCapacity(), l0)

	require.NoError(t, s.ResizeVertexVectors(l0*2))

	l1, err := vv.Length()
	require.NoError(t, err)
	require.Equal(t, l0*2, l1)
}

func TestStore_DeleteVertexForAllTypes(t *testing.T) {
	s := vertex.NewStore(4, 64, 8)

	t0, err := vertex.NewVertexType[int64](s, vertex.Public)
	require.NoError(t, err)
	t1, err := vertex.NewVertexType[bool](s, vertex.Private)
	require.NoError(t, err)

	assigned, err := s.NewVertexIndex()
	require.NoError(t, err)
	v := vertex.Index(assigned.Index)

	require.NoError(t, vertex.SetVertex[int64](s, t0, v, 7))
	require.NoError(t, vertex.SetVertex[bool](s, t1, v, true))

	require.NoError(t, s.DeleteVertexForAllTypes(v))
	require.False(t, s.IsValidVertex(v))

	_, ok, err := vertex.VertexValue[int64](s, t0, v)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestStore_PublicTypeIndicesOmitsPrivate(t *testing.T) {
	s := vertex.NewStore(4, 64, 8)

	pub, err := vertex.NewVertexType[int64](s, vertex.Public)
	require.NoError(t, err)
	_, err = vertex.NewVertexType[bool](s, vertex.Private)
	require.NoError(t, err)

	ids := s.PublicTypeIndices()
	require.Len(t, ids, 1)
	require.Equal(t, pub, ids[0])
}

func TestStore_DeleteVertexType(t *testing.T) {
	s := vertex.NewStore(4, 64, 8)

	ti, err := vertex.NewVertexType[int64](s, vertex.Public)
	require.NoError(t, err)
	require.NoError(t, s.DeleteVertexType(ti))
	require.False(t, s.IsValidType(ti))

	_, err = vertex.VertexVectorRef[int64](s, ti)
	require.ErrorIs(t, err, vertex.ErrTypeIndexNotValid)
}
