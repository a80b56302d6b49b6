// SPDX-License-Identifier: MIT
package index_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lagraph/index"
)

func TestIndexer_FIFOReuse(t *testing.T) {
	ix := index.New(10, 100)

	a0, err := ix.NewIndex()
	require.NoError(t, err)
	a1, err := ix.NewIndex()
	require.NoError(t, err)
	a2, err := ix.NewIndex()
	require.NoError(t, err)
	require.Equal(t, index.Index(0), a0.Index)
	require.Equal(t, index.Index(1), a1.Index)
	require.Equal(t, index.Index(2), a2.Index)

	require.NoError(t, ix.FreeValidIndex(a1.Index))
	require.NoError(t, ix.FreeValidIndex(a0.Index))

	a3, err := ix.NewIndex()
	require.NoError(t, err)
	a4, err := ix.NewIndex()
	require.NoError(t, err)

	require.Equal(t, index.Index(1), a3.Index, "freed indices are reused in FIFO order")
	require.Equal(t, index.Index(0), a4.Index)
	require.True(t, a3.IsReused)
	require.True(t, a4.IsReused)
}

func TestIndexer_CapacityGrowth(t *testing.T) {
	ix := index.New(2, 5)

	a0, err := ix.NewIndex()
	require.NoError(t, err)
	require.Nil(t, a0.NewCapacity)
	a1, err := ix.NewIndex()
	require.NoError(t, err)
	require.Nil(t, a1.NewCapacity)

	a2, err := ix.NewIndex()
	require.NoError(t, err)
	require.NotNil(t, a2.NewCapacity)
	require.Equal(t, index.Index(4), *a2.NewCapacity)
	require.Equal(t, index.Index(4), ix.IndexCapacity())
}

func TestIndexer_CapacityExhausted(t *testing.T) {
	ix := index.New(1, 1)

	_, err := ix.NewIndex()
	require.NoError(t, err)

	_, err = ix.NewIndex()
	require.Error(t, err)
	require.True(t, errors.Is(err, index.ErrCapacityExhausted))
}

func TestIndexer_FreeValidIndex_Errors(t *testing.T) {
	ix := index.New(2, 2)

	err := ix.FreeValidIndex(5)
	require.True(t, errors.Is(err, index.ErrIndexOutOfBounds))

	err = ix.FreeValidIndex(0)
	require.True(t, errors.Is(err, index.ErrIndexNotValid))
}

func TestIndexer_IsValid(t *testing.T) {
	ix := index.New(4, 4)
	a, err := ix.NewIndex()
	require.NoError(t, err)

	require.True(t, ix.IsValid(a.Index))
	require.False(t, ix.IsValid(a.Index+1))
	require.False(t, ix.IsValid(999))

	require.NoError(t, ix.TryIsValid(a.Index))
	require.True(t, errors.Is(ix.TryIsValid(a.Index+1), index.ErrIndexNotValid))
}

func TestIndexer_RestoreIndexAndCapacity_RoundTrip(t *testing.T) {
	ix := index.New(2, 8)

	_, err := ix.NewIndex()
	require.NoError(t, err)
	_, err = ix.NewIndex()
	require.NoError(t, err)

	statsBefore := ix.Stats()

	grown, err := ix.NewIndex()
	require.NoError(t, err)
	require.NotNil(t, grown.NewCapacity)

	// Undo in LIFO order: free the new index, then shrink capacity.
	ix.FreeIndexUnchecked(grown.Index)
	ix.RestoreCapacity(statsBefore.IndexCapacity)

	require.Equal(t, statsBefore, ix.Stats())
}

func TestIndexer_RestoreIndex_UndoesFree(t *testing.T) {
	ix := index.New(4, 4)
	a, err := ix.NewIndex()
	require.NoError(t, err)

	require.NoError(t, ix.FreeValidIndex(a.Index))
	require.False(t, ix.IsValid(a.Index))

	ix.RestoreIndex(a.Index)
	require.True(t, ix.IsValid(a.Index))

	// The index must no longer be reusable via the free queue.
	next, err := ix.NewIndex()
	require.NoError(t, err)
	require.NotEqual(t, a.Index, next.Index)
}

func TestIndexer_NumberOfIndexedElements(t *testing.T) {
	ix := index.New(4, 4)
	require.Equal(t, 0, ix.NumberOfIndexedElements())

	a, _ := ix.NewIndex()
	b, _ := ix.NewIndex()
	require.Equal(t, 2, ix.NumberOfIndexedElements())

	require.NoError(t, ix.FreeValidIndex(a.Index))
	require.Equal(t, 1, ix.NumberOfIndexedElements())

	require.NoError(t, ix.FreeValidIndex(b.Index))
	require.Equal(t, 0, ix.NumberOfIndexedElements())
}
