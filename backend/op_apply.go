// SPDX-License-Identifier: MIT
package backend

import (
	"github.com/intel/forGraphBLASGo/GrB"

	"github.com/katalvlaran/lagraph/valuetype"
)

// ApplyUnaryVector computes w<mask> = accum(w, op(u)). Grounded on
// GrB.VectorApply (other_examples GrB-apply.go.go).
func ApplyUnaryVector[Dw, Du valuetype.Value](w *Vector[Dw], mask VectorMask, accum *BinaryOp[Dw, Dw, Dw], op UnaryOp[Dw, Du], u *Vector[Du], desc *Descriptor) (err error) {
	defer guardPanic("ApplyUnaryVector", &err)

	return translate("ApplyUnaryVector", GrB.VectorApply(w.grb, mask.grb, rawBinary(accum), op.grb, u.grb, desc.raw()))
}

// ApplyUnaryMatrix computes C<mask> = accum(C, op(A)).
func ApplyUnaryMatrix[Dc, Da valuetype.Value](c *Matrix[Dc], mask MatrixMask, accum *BinaryOp[Dc, Dc, Dc], op UnaryOp[Dc, Da], a *Matrix[Da], desc *Descriptor) (err error) {
	defer guardPanic("ApplyUnaryMatrix", &err)

	return translate("ApplyUnaryMatrix", GrB.MatrixApply(c.grb, mask.grb, rawBinary(accum), op.grb, a.grb, desc.raw()))
}

// ApplyIndexUnaryVector computes w<mask> = accum(w, op(u, i, 0, y)),
// the operator family Select's predicate machinery also uses.
func ApplyIndexUnaryVector[Dw, Du, Dy valuetype.Value](w *Vector[Dw], mask VectorMask, accum *BinaryOp[Dw, Dw, Dw], op IndexUnaryOp[Dw, Du, Dy], u *Vector[Du], y Dy, desc *Descriptor) (err error) {
	defer guardPanic("ApplyIndexUnaryVector", &err)

	return translate("ApplyIndexUnaryVector", GrB.VectorApplyIndexOp(w.grb, mask.grb, rawBinary(accum), op.grb, u.grb, y, desc.raw()))
}

// ApplyIndexUnaryMatrix is ApplyIndexUnaryVector's matrix counterpart.
func ApplyIndexUnaryMatrix[Dc, Da, Dy valuetype.Value](c *Matrix[Dc], mask MatrixMask, accum *BinaryOp[Dc, Dc, Dc], op IndexUnaryOp[Dc, Da, Dy], a *Matrix[Da], y Dy, desc *Descriptor) (err error) {
	defer guardPanic("ApplyIndexUnaryMatrix", &err)

	return translate("ApplyIndexUnaryMatrix", GrB.MatrixApplyIndexOp(c.grb, mask.grb, rawBinary(accum), op.grb, a.grb, y, desc.raw()))
}

// ApplyBinaryVector2nd computes w<mask> = accum(w, op(u, y)) for a
// fixed scalar y applied as the binary operator's second argument —
// the shape the "binary" apply family uses.
func ApplyBinaryVector2nd[Dw, Du, Dy valuetype.Value](w *Vector[Dw], mask VectorMask, accum *BinaryOp[Dw, Dw, Dw], op BinaryOp[Dw, Du, Dy], u *Vector[Du], y Dy, desc *Descriptor) (err error) {
	defer guardPanic("ApplyBinaryVector2nd", &err)

	return translate("ApplyBinaryVector2nd", GrB.VectorApplyBinaryOp2ndScalar(w.grb, mask.grb, rawBinary(accum), op.grb, u.grb, y, desc.raw()))
}

// ApplyBinaryMatrix2nd is ApplyBinaryVector2nd's matrix counterpart.
func ApplyBinaryMatrix2nd[Dc, Da, Dy valuetype.Value](c *Matrix[Dc], mask MatrixMask, accum *BinaryOp[Dc, Dc, Dc], op BinaryOp[Dc, Da, Dy], a *Matrix[Da], y Dy, desc *Descriptor) (err error) {
	defer guardPanic("ApplyBinaryMatrix2nd", &err)

	return translate("ApplyBinaryMatrix2nd", GrB.MatrixApplyBinaryOp2ndScalar(c.grb, mask.grb, rawBinary(accum), op.grb, a.grb, y, desc.raw()))
}

func rawBinary[Dz, Dx, Dy valuetype.Value](op *BinaryOp[Dz, Dx, Dy]) *GrB.BinaryOp[Dz, Dx, Dy] {
	if op == nil {
		return nil
	}
	return &op.grb
}
