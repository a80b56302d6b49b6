// SPDX-License-Identifier: MIT
package backend

import (
	"github.com/intel/forGraphBLASGo/GrB"

	"github.com/katalvlaran/lagraph/valuetype"
)

// ElementWiseAddVectorBinary computes w<mask> = accum(w, u + v) where
// "+" is the supplied binary operator, union of u's and v's patterns.
func ElementWiseAddVectorBinary[Dw, Du, Dv valuetype.Value](w *Vector[Dw], mask VectorMask, accum *BinaryOp[Dw, Dw, Dw], op BinaryOp[Dw, Du, Dv], u *Vector[Du], v *Vector[Dv], desc *Descriptor) (err error) {
	defer guardPanic("ElementWiseAddVectorBinary", &err)

	return translate("ElementWiseAddVectorBinary", GrB.VectorEWiseAddBinaryOp(w.grb, mask.grb, rawBinary(accum), op.grb, u.grb, v.grb, desc.raw()))
}

// ElementWiseAddVectorMonoid is ElementWiseAddVectorBinary specialized
// to a Monoid.
func ElementWiseAddVectorMonoid[D valuetype.Value](w *Vector[D], mask VectorMask, accum *BinaryOp[D, D, D], op Monoid[D], u, v *Vector[D], desc *Descriptor) (err error) {
	defer guardPanic("ElementWiseAddVectorMonoid", &err)

	return translate("ElementWiseAddVectorMonoid", GrB.VectorEWiseAddMonoid(w.grb, mask.grb, rawBinary(accum), op.grb, u.grb, v.grb, desc.raw()))
}

// ElementWiseAddMatrixBinary is ElementWiseAddVectorBinary's matrix
// counterpart.
func ElementWiseAddMatrixBinary[Dc, Da, Db valuetype.Value](c *Matrix[Dc], mask MatrixMask, accum *BinaryOp[Dc, Dc, Dc], op BinaryOp[Dc, Da, Db], a *Matrix[Da], b *Matrix[Db], desc *Descriptor) (err error) {
	defer guardPanic("ElementWiseAddMatrixBinary", &err)

	return translate("ElementWiseAddMatrixBinary", GrB.MatrixEWiseAddBinaryOp(c.grb, mask.grb, rawBinary(accum), op.grb, a.grb, b.grb, desc.raw()))
}

// ElementWiseMultiplyVectorBinary computes w<mask> = accum(w, u .* v),
// intersection of u's and v's patterns.
func ElementWiseMultiplyVectorBinary[Dw, Du, Dv valuetype.Value](w *Vector[Dw], mask VectorMask, accum *BinaryOp[Dw, Dw, Dw], op BinaryOp[Dw, Du, Dv], u *Vector[Du], v *Vector[Dv], desc *Descriptor) (err error) {
	defer guardPanic("ElementWiseMultiplyVectorBinary", &err)

	return translate("ElementWiseMultiplyVectorBinary", GrB.VectorEWiseMultBinaryOp(w.grb, mask.grb, rawBinary(accum), op.grb, u.grb, v.grb, desc.raw()))
}

// ElementWiseMultiplyMatrixBinary is the matrix counterpart.
func ElementWiseMultiplyMatrixBinary[Dc, Da, Db valuetype.Value](c *Matrix[Dc], mask MatrixMask, accum *BinaryOp[Dc, Dc, Dc], op BinaryOp[Dc, Da, Db], a *Matrix[Da], b *Matrix[Db], desc *Descriptor) (err error) {
	defer guardPanic("ElementWiseMultiplyMatrixBinary", &err)

	return translate("ElementWiseMultiplyMatrixBinary", GrB.MatrixEWiseMultBinaryOp(c.grb, mask.grb, rawBinary(accum), op.grb, a.grb, b.grb, desc.raw()))
}
