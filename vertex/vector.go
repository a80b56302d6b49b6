// SPDX-License-Identifier: MIT
package vertex

import (
	"github.com/katalvlaran/lagraph/backend"
	"github.com/katalvlaran/lagraph/index"
	"github.com/katalvlaran/lagraph/valuetype"
)

// VertexVector is the sparse attribute storage for one vertex type: a
// vector of element type T whose length is kept coupled to the
// element-axis Indexer's capacity by Store. A vertex index i has a
// value of this type iff IsElement(i) is true; absence is ordinary GrB
// sparsity, not a sentinel zero value.
type VertexVector[T valuetype.Value] struct {
	data *backend.Vector[T]
}

// newVertexVector allocates a vector of length n, matching the element
// Indexer's current capacity at the moment the owning type is created.
func newVertexVector[T valuetype.Value](n index.Index) (*VertexVector[T], error) {
	v, err := backend.NewVector[T](n)
	if err != nil {
		return nil, err
	}

	return &VertexVector[T]{data: v}, nil
}

// Length returns the vector's current length (always equal to the
// vertex-element Indexer's capacity for a live type).
func (vv *VertexVector[T]) Length() (index.Index, error) {
	return vv.data.Length()
}

// Resize grows the vector to length n. Store only ever calls this with
// a growing n, to keep step with capacity coupling; transaction
// rollback never shrinks physical storage, only the Indexer's own
// logical capacity view, so leftover headroom after a rollback is
// surplus rather than something this method is asked to undo.
func (vv *VertexVector[T]) Resize(n index.Index) error {
	return vv.data.Resize(n)
}

// IsElement reports whether vertex i carries a value in this type.
func (vv *VertexVector[T]) IsElement(i Index) (bool, error) {
	return vv.data.IsElement(index.Index(i))
}

// SetElement stores value at vertex i, overwriting any existing value.
func (vv *VertexVector[T]) SetElement(i Index, value T) error {
	return vv.data.SetElement(index.Index(i), value)
}

// DropElement removes any value stored at vertex i. Not an error if
// absent.
func (vv *VertexVector[T]) DropElement(i Index) error {
	return vv.data.DropElement(index.Index(i))
}

// GetElement returns the value at vertex i and whether it was present.
func (vv *VertexVector[T]) GetElement(i Index) (T, bool, error) {
	return vv.data.GetElement(index.Index(i))
}

// Nvals returns the number of vertices of this type currently carrying
// a value.
func (vv *VertexVector[T]) Nvals() (int, error) {
	return vv.data.Nvals()
}

// Raw exposes the underlying backend.Vector[T] for the operator
// package's dispatch functions.
func (vv *VertexVector[T]) Raw() *backend.Vector[T] { return vv.data }

// Free releases the underlying GrB handle.
func (vv *VertexVector[T]) Free() error { return vv.data.Free() }
