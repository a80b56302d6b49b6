// SPDX-License-Identifier: MIT
package backend

import (
	"github.com/intel/forGraphBLASGo/GrB"

	"github.com/katalvlaran/lagraph/index"
	"github.com/katalvlaran/lagraph/valuetype"
)

// ExtractRow computes w<mask> = accum(w, A(v, :)^T) — the row of
// adjacency matrix a at tail vertex v, as a vector over head vertices.
func ExtractRow[Dw, Da valuetype.Value](w *Vector[Dw], mask VectorMask, accum *BinaryOp[Dw, Dw, Dw], a *Matrix[Da], v index.Index, desc *Descriptor) (err error) {
	defer guardPanic("ExtractRow", &err)

	return translate("ExtractRow", GrB.MatrixExtractRow(w.grb, mask.grb, rawBinary(accum), a.grb, uint64(v), GrB.All(0), desc.raw()))
}

// ExtractCol computes w<mask> = accum(w, A(:, v)) — the column of a at
// head vertex v.
func ExtractCol[Dw, Da valuetype.Value](w *Vector[Dw], mask VectorMask, accum *BinaryOp[Dw, Dw, Dw], a *Matrix[Da], v index.Index, desc *Descriptor) (err error) {
	defer guardPanic("ExtractCol", &err)

	return translate("ExtractCol", GrB.MatrixExtractCol(w.grb, mask.grb, rawBinary(accum), a.grb, GrB.All(0), uint64(v), desc.raw()))
}

// ExtractSubMatrix computes C<mask> = accum(C, A(rows, cols)).
func ExtractSubMatrix[Dc, Da valuetype.Value](c *Matrix[Dc], mask MatrixMask, accum *BinaryOp[Dc, Dc, Dc], a *Matrix[Da], rows, cols []index.Index, desc *Descriptor) (err error) {
	defer guardPanic("ExtractSubMatrix", &err)

	return translate("ExtractSubMatrix", GrB.MatrixExtract(c.grb, mask.grb, rawBinary(accum), a.grb, toU64(rows), toU64(cols), desc.raw()))
}

// ExtractSubVector computes w<mask> = accum(w, u(indices)).
func ExtractSubVector[Dw valuetype.Value](w *Vector[Dw], mask VectorMask, accum *BinaryOp[Dw, Dw, Dw], u *Vector[Dw], indices []index.Index, desc *Descriptor) (err error) {
	defer guardPanic("ExtractSubVector", &err)

	return translate("ExtractSubVector", GrB.VectorExtractSubvector(w.grb, mask.grb, rawBinary(accum), u.grb, toU64(indices), desc.raw()))
}

func toU64(xs []index.Index) []uint64 {
	out := make([]uint64, len(xs))
	for i, x := range xs {
		out[i] = uint64(x)
	}
	return out
}
