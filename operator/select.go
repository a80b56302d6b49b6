// SPDX-License-Identifier: MIT
package operator

import (
	"github.com/katalvlaran/lagraph/backend"
	"github.com/katalvlaran/lagraph/edge"
	"github.com/katalvlaran/lagraph/index"
	"github.com/katalvlaran/lagraph/valuetype"
	"github.com/katalvlaran/lagraph/vertex"
)

// SelectVector computes product<mask> = accum(product, select(arg,
// op, y)): every element of arg for which op(value, i, 0, y) is true
// survives into product.
func SelectVector[D, Dy valuetype.Value](d *Dispatcher, product, arg vertex.TypeIndex, op backend.IndexUnaryOp[bool, D, Dy], y Dy, accum *backend.BinaryOp[D, D, D], maskType *vertex.TypeIndex, opts Options) error {
	if err := requireDisjointVectors(product, arg); err != nil {
		return err
	}

	w, err := resolveVector[D](d, product)
	if err != nil {
		return err
	}
	u, err := resolveVector[D](d, arg)
	if err != nil {
		return err
	}
	mask, err := d.resolveVectorMask(maskType)
	if err != nil {
		return err
	}
	desc, err := opts.descriptor()
	if err != nil {
		return err
	}

	return backend.SelectVector(w.Raw(), mask, accum, op, u.Raw(), y, desc)
}

// SelectMatrix is SelectVector's edge-type counterpart.
func SelectMatrix[D, Dy valuetype.Value](d *Dispatcher, product, arg edge.TypeIndex, op backend.IndexUnaryOp[bool, D, Dy], y Dy, accum *backend.BinaryOp[D, D, D], maskType *edge.TypeIndex, opts MatrixArgOptions) error {
	if err := requireDisjointMatrices(product, arg); err != nil {
		return err
	}

	c, err := resolveMatrix[D](d, product)
	if err != nil {
		return err
	}
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

	return backend.SelectMatrix(c.Raw(), mask, accum, op, a.Raw(), y, desc)
}

// SelectEdgesWithTailVertex selects, into product, every edge of type
// arg whose tail vertex is exactly v — a common enough query to expose
// as a direct method, built here on top of the general Select family.
func SelectEdgesWithTailVertex[D valuetype.Value](d *Dispatcher, product, arg edge.TypeIndex, v index.Index, maskType *edge.TypeIndex, opts MatrixArgOptions) error {
	return SelectMatrix[D, uint64](d, product, arg, backend.RowIndexEquals[D](), uint64(v), nil, maskType, opts)
}

// SelectEdgesWithHeadVertex selects, into product, every edge of type
// arg whose head vertex is exactly v.
func SelectEdgesWithHeadVertex[D valuetype.Value](d *Dispatcher, product, arg edge.TypeIndex, v index.Index, maskType *edge.TypeIndex, opts MatrixArgOptions) error {
	return SelectMatrix[D, uint64](d, product, arg, backend.ColIndexEquals[D](), uint64(v), nil, maskType, opts)
}
