// SPDX-License-Identifier: MIT
package backend

import (
	"github.com/intel/forGraphBLASGo/GrB"

	"github.com/katalvlaran/lagraph/valuetype"
)

// TransposeMatrix computes C<mask> = accum(C, A^T). When c and a are
// distinct matrices the caller (edge.WeightedAdjacencyMatrix) caches c
// as a's transpose; TransposeMatrix itself is a pure orchestration
// call with no caching concerns.
func TransposeMatrix[D valuetype.Value](c *Matrix[D], mask MatrixMask, accum *BinaryOp[D, D, D], a *Matrix[D], desc *Descriptor) (err error) {
	defer guardPanic("TransposeMatrix", &err)

	return translate("TransposeMatrix", GrB.Transpose(c.grb, mask.grb, rawBinary(accum), a.grb, desc.raw()))
}
