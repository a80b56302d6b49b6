// SPDX-License-Identifier: MIT
package operator

import (
	"github.com/katalvlaran/lagraph/backend"
	"github.com/katalvlaran/lagraph/edge"
	"github.com/katalvlaran/lagraph/valuetype"
)

// TransposeMatrix computes product<mask> = accum(product, arg^T).
// Unlike every other family, Transpose
// declares in-place support: when product and arg name the same edge
// type, the matrix is transposed into itself and its cached transpose
// is invalidated. When product and arg are distinct, arg's cached
// transpose (edge.WeightedAdjacencyMatrix.Transpose, §4.D) is reused
// and assigned into product through the accumulator/mask, so repeated
// calls against the same argument do not recompute the transpose.
func TransposeMatrix[D valuetype.Value](d *Dispatcher, product, arg edge.TypeIndex, accum *backend.BinaryOp[D, D, D], maskType *edge.TypeIndex, opts Options) error {
	a, err := resolveMatrix[D](d, arg)
	if err != nil {
		return err
	}
	mask, err := d.resolveMatrixMask(maskType)
	if err != nil {
		return err
	}
	desc, err := opts.descriptor()
	if err != nil {
		return err
	}

	if product == arg {
		if err := backend.TransposeMatrix[D](a.Raw(), mask, accum, a.Raw(), desc); err != nil {
			return err
		}
		a.InvalidateTranspose()

		return nil
	}

	c, err := resolveMatrix[D](d, product)
	if err != nil {
		return err
	}

	cached, err := a.Transpose()
	if err != nil {
		return err
	}

	return backend.ApplyUnaryMatrix[D, D](c.Raw(), mask, accum, backend.Identity[D](), cached, desc)
}
