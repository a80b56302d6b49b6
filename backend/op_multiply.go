// SPDX-License-Identifier: MIT
package backend

import (
	"github.com/intel/forGraphBLASGo/GrB"

	"github.com/katalvlaran/lagraph/valuetype"
)

// MxM computes C<mask> = accum(C, A +.* B) under the given semiring.
func MxM[Dc, Da, Db valuetype.Value](c *Matrix[Dc], mask MatrixMask, accum *BinaryOp[Dc, Dc, Dc], semiring Semiring[Dc, Da, Db], a *Matrix[Da], b *Matrix[Db], desc *Descriptor) (err error) {
	defer guardPanic("MxM", &err)

	return translate("MxM", GrB.MxM(c.grb, mask.grb, rawBinary(accum), semiring.grb, a.grb, b.grb, desc.raw()))
}

// MxV computes w<mask> = accum(w, A +.* u).
func MxV[Dw, Da, Du valuetype.Value](w *Vector[Dw], mask VectorMask, accum *BinaryOp[Dw, Dw, Dw], semiring Semiring[Dw, Da, Du], a *Matrix[Da], u *Vector[Du], desc *Descriptor) (err error) {
	defer guardPanic("MxV", &err)

	return translate("MxV", GrB.MxV(w.grb, mask.grb, rawBinary(accum), semiring.grb, a.grb, u.grb, desc.raw()))
}

// VxM computes w<mask> = accum(w, u +.* A) — the row-vector-times-matrix
// shape traverse.BFS uses for one level of frontier expansion.
func VxM[Dw, Du, Da valuetype.Value](w *Vector[Dw], mask VectorMask, accum *BinaryOp[Dw, Dw, Dw], semiring Semiring[Dw, Du, Da], u *Vector[Du], a *Matrix[Da], desc *Descriptor) (err error) {
	defer guardPanic("VxM", &err)

	return translate("VxM", GrB.VxM(w.grb, mask.grb, rawBinary(accum), semiring.grb, u.grb, a.grb, desc.raw()))
}
