// SPDX-License-Identifier: MIT
package edge

import (
	"github.com/katalvlaran/lagraph/backend"
	"github.com/katalvlaran/lagraph/index"
	"github.com/katalvlaran/lagraph/valuetype"
)

// WeightedAdjacencyMatrix is the sparse attribute storage for one edge
// type: a square matrix of weight type T whose order is kept coupled
// to the vertex-element Indexer's capacity by Store.
// Row is the tail vertex, column the head vertex. A cached transpose
// is computed lazily on first request and invalidated by any mutation,
// per Design Notes §9's "cached adjacency-matrix transpose" paragraph.
type WeightedAdjacencyMatrix[T valuetype.Value] struct {
	data *backend.Matrix[T]

	transpose      *backend.Matrix[T]
	transposeValid bool
}

// newWeightedAdjacencyMatrix allocates an n x n matrix, matching the
// vertex-element Indexer's current capacity at the moment the owning
// edge type is created.
func newWeightedAdjacencyMatrix[T valuetype.Value](n index.Index) (*WeightedAdjacencyMatrix[T], error) {
	m, err := backend.NewMatrix[T](n)
	if err != nil {
		return nil, err
	}

	return &WeightedAdjacencyMatrix[T]{data: m}, nil
}

func (m *WeightedAdjacencyMatrix[T]) invalidate() {
	m.transposeValid = false
}

// InvalidateTranspose marks the cached transpose stale. Exposed for
// callers (the operator package's in-place Transpose) that mutate the
// matrix's raw contents directly, bypassing SetElement/DropElement.
func (m *WeightedAdjacencyMatrix[T]) InvalidateTranspose() {
	m.invalidate()
}

// Order returns the matrix's current order (always equal to the
// vertex-element Indexer's capacity for a live type).
func (m *WeightedAdjacencyMatrix[T]) Order() (index.Index, error) {
	return m.data.Order()
}

// Resize grows the matrix to order n x n. Store only ever calls this
// with a growing n to keep step with capacity coupling; transaction
// rollback never calls it, so matrices are never shrunk.
func (m *WeightedAdjacencyMatrix[T]) Resize(n index.Index) error {
	if err := m.data.Resize(n); err != nil {
		return err
	}
	if m.transpose != nil {
		if err := m.transpose.Resize(n); err != nil {
			return err
		}
	}
	m.invalidate()

	return nil
}

// GetElement returns the weight at (tail, head), and false if absent.
func (m *WeightedAdjacencyMatrix[T]) GetElement(tail, head index.Index) (T, bool, error) {
	return m.data.GetElement(tail, head)
}

// SetElement stores weight at (tail, head), overwriting any existing
// edge between the same pair.
func (m *WeightedAdjacencyMatrix[T]) SetElement(tail, head index.Index, weight T) error {
	if err := m.data.SetElement(tail, head, weight); err != nil {
		return err
	}
	m.invalidate()

	return nil
}

// DropElement removes the edge at (tail, head) if one exists.
func (m *WeightedAdjacencyMatrix[T]) DropElement(tail, head index.Index) error {
	if err := m.data.DropElement(tail, head); err != nil {
		return err
	}
	m.invalidate()

	return nil
}

// SnapshotVertexConnections captures every edge of this type touching
// v (as tail or head) and returns a closure that restores exactly
// those cells. Used by graph.Transaction to make DropVertexIndex
// revertible, symmetric to how VertexVector snapshots build their own
// inverse closures.
func (m *WeightedAdjacencyMatrix[T]) SnapshotVertexConnections(v index.Index) (func() error, error) {
	rows, cols, vals, err := backend.MatrixExtractTuples(m.data)
	if err != nil {
		return nil, err
	}

	type cell struct {
		tail, head index.Index
		weight     T
	}
	var touching []cell
	for i := range rows {
		if rows[i] == v || cols[i] == v {
			touching = append(touching, cell{tail: rows[i], head: cols[i], weight: vals[i]})
		}
	}

	return func() error {
		for _, c := range touching {
			if err := m.SetElement(c.tail, c.head, c.weight); err != nil {
				return err
			}
		}
		return nil
	}, nil
}

// DeleteVertexConnections removes every edge touching v as either tail
// or head.
func (m *WeightedAdjacencyMatrix[T]) DeleteVertexConnections(v index.Index) error {
	if err := m.data.ClearRow(v); err != nil {
		return err
	}
	if err := m.data.ClearCol(v); err != nil {
		return err
	}
	m.invalidate()

	return nil
}

// Nvals returns the number of stored edges of this type.
func (m *WeightedAdjacencyMatrix[T]) Nvals() (int, error) {
	return m.data.Nvals()
}

// Raw exposes the underlying backend.Matrix[T] for the operator
// package's dispatch functions.
func (m *WeightedAdjacencyMatrix[T]) Raw() *backend.Matrix[T] { return m.data }

// Transpose returns the cached transpose of this matrix, computing it
// if the cache is stale or has never been populated. The returned
// pointer is owned by m and must not be resized or freed by the
// caller; any further mutation of m invalidates it again.
func (m *WeightedAdjacencyMatrix[T]) Transpose() (*backend.Matrix[T], error) {
	if m.transposeValid {
		return m.transpose, nil
	}

	n, err := m.data.Order()
	if err != nil {
		return nil, err
	}

	if m.transpose == nil {
		t, err := backend.NewMatrix[T](n)
		if err != nil {
			return nil, err
		}
		m.transpose = t
	} else if tn, err := m.transpose.Order(); err != nil {
		return nil, err
	} else if tn != n {
		if err := m.transpose.Resize(n); err != nil {
			return nil, err
		}
	}

	if err := backend.TransposeMatrix[T](m.transpose, backend.NoMatrixMask(), nil, m.data, nil); err != nil {
		return nil, err
	}
	m.transposeValid = true

	return m.transpose, nil
}

// Free releases the underlying GrB handles (including the cached
// transpose, if one was ever computed).
func (m *WeightedAdjacencyMatrix[T]) Free() error {
	if m.transpose != nil {
		if err := m.transpose.Free(); err != nil {
			return err
		}
	}

	return m.data.Free()
}
