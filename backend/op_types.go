// SPDX-License-Identifier: MIT
package backend

import (
	"github.com/intel/forGraphBLASGo/GrB"

	"github.com/katalvlaran/lagraph/valuetype"
)

// UnaryOp wraps a GrB unary operator z = f(x).
type UnaryOp[Dz, Dx valuetype.Value] struct{ grb GrB.UnaryOp[Dz, Dx] }

// BinaryOp wraps a GrB binary operator z = f(x, y).
type BinaryOp[Dz, Dx, Dy valuetype.Value] struct{ grb GrB.BinaryOp[Dz, Dx, Dy] }

// IndexUnaryOp wraps a GrB index-unary operator z = f(x, i, j, y), used
// by Select and by Apply's index-unary variant.
type IndexUnaryOp[Dz, Dx, Dy valuetype.Value] struct{ grb GrB.IndexUnaryOp[Dz, Dx, Dy] }

// Monoid wraps a GrB monoid: an associative, commutative BinaryOp[D,D,D]
// with an identity element, used by the element-wise-add family and by
// vector/matrix reduction.
type Monoid[D valuetype.Value] struct{ grb GrB.Monoid[D] }

// Semiring wraps a GrB semiring (an "add" monoid plus a "multiply"
// binary op), used by the Multiply family (MxM/MxV/VxM).
type Semiring[Dz, Dx, Dy valuetype.Value] struct{ grb GrB.Semiring[Dz, Dx, Dy] }

// Descriptor wraps a GrB operation descriptor (transpose-input flags,
// replace-output, structural-mask-only, complement-mask). operator's
// dispatcher constructs one per call from an operator.Options bundle.
type Descriptor struct{ grb *GrB.Descriptor }

// VectorMask wraps a *Vector[bool] used to restrict a write set.
type VectorMask struct{ grb *GrB.Vector[bool] }

// MatrixMask wraps a *Matrix[bool] used to restrict a write set.
type MatrixMask struct{ grb *GrB.Matrix[bool] }

// NoVectorMask / NoMatrixMask signal "entire vector/matrix", the
// sentinel mask an operator call uses when the caller supplies none.
func NoVectorMask() VectorMask { return VectorMask{} }
func NoMatrixMask() MatrixMask { return MatrixMask{} }

func VectorMaskFrom(v *Vector[bool]) VectorMask {
	if v == nil {
		return NoVectorMask()
	}
	return VectorMask{grb: &v.grb}
}

func MatrixMaskFrom(m *Matrix[bool]) MatrixMask {
	if m == nil {
		return NoMatrixMask()
	}
	return MatrixMask{grb: &m.grb}
}

// NewDescriptor builds a Descriptor from the individual boolean flags
// operator.Options exposes; a zero-value Descriptor (all flags false)
// is the GrB default and is represented as a nil *GrB.Descriptor.
func NewDescriptor(replace, structuralMaskOnly, complementMask, transposeFirst, transposeSecond bool) (*Descriptor, error) {
	if !replace && !structuralMaskOnly && !complementMask && !transposeFirst && !transposeSecond {
		return &Descriptor{}, nil
	}

	d, err := GrB.DescriptorNew()
	if err != nil {
		return nil, translate("NewDescriptor", err)
	}
	if replace {
		if err := GrB.DescriptorSet(d, GrB.Outp, GrB.Replace); err != nil {
			return nil, translate("NewDescriptor", err)
		}
	}
	if structuralMaskOnly {
		if err := GrB.DescriptorSet(d, GrB.Mask, GrB.Structure); err != nil {
			return nil, translate("NewDescriptor", err)
		}
	}
	if complementMask {
		if err := GrB.DescriptorSet(d, GrB.Mask, GrB.Comp); err != nil {
			return nil, translate("NewDescriptor", err)
		}
	}
	if transposeFirst {
		if err := GrB.DescriptorSet(d, GrB.Inp0, GrB.Tran); err != nil {
			return nil, translate("NewDescriptor", err)
		}
	}
	if transposeSecond {
		if err := GrB.DescriptorSet(d, GrB.Inp1, GrB.Tran); err != nil {
			return nil, translate("NewDescriptor", err)
		}
	}

	return &Descriptor{grb: &d}, nil
}

func (d *Descriptor) raw() *GrB.Descriptor {
	if d == nil {
		return nil
	}
	return d.grb
}

// --- Predefined operator instances ------------------------------------
//
// GrB ships these as package-level predefined operators; the functions
// below are thin generic constructors over them, named the way the
// GrB-apply.go/GrB-assign.go examples name their own wrapper functions.

// Plus returns the additive BinaryOp for numeric type T.
func Plus[T valuetype.Value]() BinaryOp[T, T, T] {
	return BinaryOp[T, T, T]{grb: GrB.PlusBinaryOp[T]()}
}

// Times returns the multiplicative BinaryOp for numeric type T.
func Times[T valuetype.Value]() BinaryOp[T, T, T] {
	return BinaryOp[T, T, T]{grb: GrB.TimesBinaryOp[T]()}
}

// PlusMonoid returns the additive Monoid for numeric type T (identity 0).
func PlusMonoid[T valuetype.Value]() Monoid[T] {
	return Monoid[T]{grb: GrB.PlusMonoid[T]()}
}

// PlusTimesSemiring returns the conventional "plus-times" semiring,
// the one MxM needs to compute ordinary matrix multiplication (A . A).
func PlusTimesSemiring[T valuetype.Value]() Semiring[T, T, T] {
	return Semiring[T, T, T]{grb: GrB.PlusTimesSemiring[T]()}
}

// LorLandSemiring returns the boolean "or-and" semiring traverse.BFS
// uses for level-synchronous frontier expansion.
func LorLandSemiring() Semiring[bool, bool, bool] {
	return Semiring[bool, bool, bool]{grb: GrB.LorLandSemiring()}
}

// Identity returns the identity UnaryOp for type T.
func Identity[T valuetype.Value]() UnaryOp[T, T] {
	return UnaryOp[T, T]{grb: GrB.IdentityUnaryOp[T]()}
}
