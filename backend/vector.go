// SPDX-License-Identifier: MIT
package backend

import (
	"github.com/intel/forGraphBLASGo/GrB"

	"github.com/katalvlaran/lagraph/index"
	"github.com/katalvlaran/lagraph/valuetype"
)

// Vector is a sparse vector of element type T and length n, backed by
// a GrB.Vector[T]. Present/absent per-index is GrB's native sparsity;
// "present" means GrB reports a stored element at that index.
type Vector[T valuetype.Value] struct {
	grb GrB.Vector[T]
}

// NewVector allocates an empty sparse vector of length n.
func NewVector[T valuetype.Value](n index.Index) (v *Vector[T], err error) {
	defer guardPanic("NewVector", &err)

	g, gerr := GrB.VectorNew[T](uint64(n))
	if gerr != nil {
		return nil, translate("NewVector", gerr)
	}

	return &Vector[T]{grb: g}, nil
}

// Length returns the vector's current length.
func (v *Vector[T]) Length() (n index.Index, err error) {
	defer guardPanic("Vector.Length", &err)

	n64, gerr := GrB.VectorSize(v.grb)
	if gerr != nil {
		return 0, translate("Vector.Length", gerr)
	}

	return index.Index(n64), nil
}

// Resize grows or shrinks the vector to length n. Once a vector is
// coupled to the global vertex capacity only growth (n >= length) is
// ever requested; callers enforce that constraint, not Resize itself.
// Transaction rollback does not call Resize: it leaves physical
// storage at its grown size.
func (v *Vector[T]) Resize(n index.Index) (err error) {
	defer guardPanic("Vector.Resize", &err)

	if gerr := GrB.VectorResize(v.grb, uint64(n)); gerr != nil {
		return translate("Vector.Resize", gerr)
	}

	return nil
}

// IsElement reports whether a value is stored at index i.
func (v *Vector[T]) IsElement(i index.Index) (ok bool, err error) {
	defer guardPanic("Vector.IsElement", &err)

	_, present, gerr := GrB.VectorExtractElement(v.grb, uint64(i))
	if gerr != nil {
		return false, translate("Vector.IsElement", gerr)
	}

	return present, nil
}

// GetElement returns the value stored at index i, and false if no
// value is stored there.
func (v *Vector[T]) GetElement(i index.Index) (value T, present bool, err error) {
	defer guardPanic("Vector.GetElement", &err)

	val, present, gerr := GrB.VectorExtractElement(v.grb, uint64(i))
	if gerr != nil {
		return value, false, translate("Vector.GetElement", gerr)
	}

	return val, present, nil
}

// SetElement stores value at index i, overwriting any existing value.
func (v *Vector[T]) SetElement(i index.Index, value T) (err error) {
	defer guardPanic("Vector.SetElement", &err)

	if gerr := GrB.VectorSetElement(v.grb, value, uint64(i)); gerr != nil {
		return translate("Vector.SetElement", gerr)
	}

	return nil
}

// DropElement removes any stored value at index i. It is not an error
// for no value to have been stored there.
func (v *Vector[T]) DropElement(i index.Index) (err error) {
	defer guardPanic("Vector.DropElement", &err)

	if gerr := GrB.VectorRemoveElement(v.grb, uint64(i)); gerr != nil {
		return translate("Vector.DropElement", gerr)
	}

	return nil
}

// Nvals returns the number of stored elements.
func (v *Vector[T]) Nvals() (n int, err error) {
	defer guardPanic("Vector.Nvals", &err)

	n64, gerr := GrB.VectorNvals(v.grb)
	if gerr != nil {
		return 0, translate("Vector.Nvals", gerr)
	}

	return int(n64), nil
}

// Clear removes every stored element, keeping the vector's length.
func (v *Vector[T]) Clear() (err error) {
	defer guardPanic("Vector.Clear", &err)

	if gerr := GrB.VectorClear(v.grb); gerr != nil {
		return translate("Vector.Clear", gerr)
	}

	return nil
}

// Free releases the underlying GrB handle. Safe to call multiple times.
func (v *Vector[T]) Free() error {
	return translate("Vector.Free", GrB.VectorFree(&v.grb))
}

// Raw exposes the underlying GrB.Vector[T] for the operator package,
// which calls GrB's operator-family functions directly.
func (v *Vector[T]) Raw() GrB.Vector[T] { return v.grb }
