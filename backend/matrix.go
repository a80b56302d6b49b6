// SPDX-License-Identifier: MIT
package backend

import (
	"github.com/intel/forGraphBLASGo/GrB"

	"github.com/katalvlaran/lagraph/index"
	"github.com/katalvlaran/lagraph/valuetype"
)

// Matrix is a square sparse matrix of element type T and order n,
// backed by a GrB.Matrix[T]. Row is the tail vertex, column the head
// vertex.
type Matrix[T valuetype.Value] struct {
	grb GrB.Matrix[T]
}

// NewMatrix allocates an empty n x n sparse matrix.
func NewMatrix[T valuetype.Value](n index.Index) (m *Matrix[T], err error) {
	defer guardPanic("NewMatrix", &err)

	g, gerr := GrB.MatrixNew[T](uint64(n), uint64(n))
	if gerr != nil {
		return nil, translate("NewMatrix", gerr)
	}

	return &Matrix[T]{grb: g}, nil
}

// Order returns the matrix's current row/column count (it is always
// square per the capacity-coupling invariant).
func (m *Matrix[T]) Order() (n index.Index, err error) {
	defer guardPanic("Matrix.Order", &err)

	rows, gerr := GrB.MatrixNRows(m.grb)
	if gerr != nil {
		return 0, translate("Matrix.Order", gerr)
	}

	return index.Index(rows), nil
}

// Resize grows or shrinks the matrix to order n x n.
func (m *Matrix[T]) Resize(n index.Index) (err error) {
	defer guardPanic("Matrix.Resize", &err)

	if gerr := GrB.MatrixResize(m.grb, uint64(n), uint64(n)); gerr != nil {
		return translate("Matrix.Resize", gerr)
	}

	return nil
}

// GetElement returns the weight stored at (tail, head), and false if
// no edge exists there.
func (m *Matrix[T]) GetElement(tail, head index.Index) (value T, present bool, err error) {
	defer guardPanic("Matrix.GetElement", &err)

	val, present, gerr := GrB.MatrixExtractElement(m.grb, uint64(tail), uint64(head))
	if gerr != nil {
		return value, false, translate("Matrix.GetElement", gerr)
	}

	return val, present, nil
}

// SetElement stores weight at (tail, head), overwriting any existing
// edge of this type between the same pair.
func (m *Matrix[T]) SetElement(tail, head index.Index, value T) (err error) {
	defer guardPanic("Matrix.SetElement", &err)

	if gerr := GrB.MatrixSetElement(m.grb, value, uint64(tail), uint64(head)); gerr != nil {
		return translate("Matrix.SetElement", gerr)
	}

	return nil
}

// DropElement removes the edge at (tail, head) if one exists.
func (m *Matrix[T]) DropElement(tail, head index.Index) (err error) {
	defer guardPanic("Matrix.DropElement", &err)

	if gerr := GrB.MatrixRemoveElement(m.grb, uint64(tail), uint64(head)); gerr != nil {
		return translate("Matrix.DropElement", gerr)
	}

	return nil
}

// Nvals returns the number of stored edges.
func (m *Matrix[T]) Nvals() (n int, err error) {
	defer guardPanic("Matrix.Nvals", &err)

	n64, gerr := GrB.MatrixNvals(m.grb)
	if gerr != nil {
		return 0, translate("Matrix.Nvals", gerr)
	}

	return int(n64), nil
}

// ClearRow removes every stored edge whose tail is v, via
// GrB.MatrixRowClear.
func (m *Matrix[T]) ClearRow(v index.Index) (err error) {
	defer guardPanic("Matrix.ClearRow", &err)

	if gerr := GrB.MatrixRowClear(m.grb, uint64(v)); gerr != nil {
		return translate("Matrix.ClearRow", gerr)
	}

	return nil
}

// ClearCol removes every stored edge whose head is v.
func (m *Matrix[T]) ClearCol(v index.Index) (err error) {
	defer guardPanic("Matrix.ClearCol", &err)

	if gerr := GrB.MatrixColClear(m.grb, uint64(v)); gerr != nil {
		return translate("Matrix.ClearCol", gerr)
	}

	return nil
}

// Clear removes every stored edge, keeping the matrix's order.
func (m *Matrix[T]) Clear() (err error) {
	defer guardPanic("Matrix.Clear", &err)

	if gerr := GrB.MatrixClear(m.grb); gerr != nil {
		return translate("Matrix.Clear", gerr)
	}

	return nil
}

// Free releases the underlying GrB handle. Safe to call multiple times.
func (m *Matrix[T]) Free() error {
	return translate("Matrix.Free", GrB.MatrixFree(&m.grb))
}

// Raw exposes the underlying GrB.Matrix[T] for the operator package.
func (m *Matrix[T]) Raw() GrB.Matrix[T] { return m.grb }
