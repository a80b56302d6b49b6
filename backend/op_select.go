// SPDX-License-Identifier: MIT
package backend

import (
	"github.com/intel/forGraphBLASGo/GrB"

	"github.com/katalvlaran/lagraph/valuetype"
)

// SelectVector computes w<mask> = accum(w, select(u, op, y)): every
// element of u for which op(value, i, 0, y) is true survives into w.
func SelectVector[D, Dy valuetype.Value](w *Vector[D], mask VectorMask, accum *BinaryOp[D, D, D], op IndexUnaryOp[bool, D, Dy], u *Vector[D], y Dy, desc *Descriptor) (err error) {
	defer guardPanic("SelectVector", &err)

	return translate("SelectVector", GrB.VectorSelect(w.grb, mask.grb, rawBinary(accum), op.grb, u.grb, y, desc.raw()))
}

// SelectMatrix is SelectVector's matrix counterpart, used directly by
// SelectEdgesWithTailVertex/HeadVertex.
func SelectMatrix[D, Dy valuetype.Value](c *Matrix[D], mask MatrixMask, accum *BinaryOp[D, D, D], op IndexUnaryOp[bool, D, Dy], a *Matrix[D], y Dy, desc *Descriptor) (err error) {
	defer guardPanic("SelectMatrix", &err)

	return translate("SelectMatrix", GrB.MatrixSelect(c.grb, mask.grb, rawBinary(accum), op.grb, a.grb, y, desc.raw()))
}

// RowIndexEquals / ColIndexEquals are index-unary predicates used to
// implement SelectEdgesWithTailVertex (select cell (i,j) where i == y)
// and SelectEdgesWithHeadVertex (j == y): GrB's predefined "row index
// equals thunk" / "column index equals thunk" operators.
func RowIndexEquals[D valuetype.Value]() IndexUnaryOp[bool, D, uint64] {
	return IndexUnaryOp[bool, D, uint64]{grb: GrB.RowIndexEqIndexUnaryOp[D]()}
}

func ColIndexEquals[D valuetype.Value]() IndexUnaryOp[bool, D, uint64] {
	return IndexUnaryOp[bool, D, uint64]{grb: GrB.ColIndexEqIndexUnaryOp[D]()}
}
