// SPDX-License-Identifier: MIT
package operator

import (
	"github.com/katalvlaran/lagraph/backend"
	"github.com/katalvlaran/lagraph/edge"
	"github.com/katalvlaran/lagraph/valuetype"
	"github.com/katalvlaran/lagraph/vertex"
)

// ApplyUnaryVector computes product<mask> = accum(product, op(arg)) for
// two vertex types.
func ApplyUnaryVector[Dz, Dx valuetype.Value](d *Dispatcher, product, arg vertex.TypeIndex, op backend.UnaryOp[Dz, Dx], accum *backend.BinaryOp[Dz, Dz, Dz], maskType *vertex.TypeIndex, opts Options) error {
	if err := requireDisjointVectors(product, arg); err != nil {
		return err
	}

	w, err := resolveVector[Dz](d, product)
	if err != nil {
		return err
	}
	u, err := resolveVector[Dx](d, arg)
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

	return backend.ApplyUnaryVector(w.Raw(), mask, accum, op, u.Raw(), desc)
}

// ApplyUnaryMatrix is ApplyUnaryVector's edge-type counterpart.
func ApplyUnaryMatrix[Dz, Dx valuetype.Value](d *Dispatcher, product, arg edge.TypeIndex, op backend.UnaryOp[Dz, Dx], accum *backend.BinaryOp[Dz, Dz, Dz], maskType *edge.TypeIndex, opts MatrixArgOptions) error {
	if err := requireDisjointMatrices(product, arg); err != nil {
		return err
	}

	c, err := resolveMatrix[Dz](d, product)
	if err != nil {
		return err
	}
	a, err := resolveMatrix[Dx](d, arg)
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

	return backend.ApplyUnaryMatrix(c.Raw(), mask, accum, op, a.Raw(), desc)
}

// ApplyIndexUnaryVector computes product<mask> = accum(product,
// op(arg, i, 0, y)) for two vertex types.
func ApplyIndexUnaryVector[Dz, Dx, Dy valuetype.Value](d *Dispatcher, product, arg vertex.TypeIndex, op backend.IndexUnaryOp[Dz, Dx, Dy], y Dy, accum *backend.BinaryOp[Dz, Dz, Dz], maskType *vertex.TypeIndex, opts Options) error {
	if err := requireDisjointVectors(product, arg); err != nil {
		return err
	}

	w, err := resolveVector[Dz](d, product)
	if err != nil {
		return err
	}
	u, err := resolveVector[Dx](d, arg)
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

	return backend.ApplyIndexUnaryVector(w.Raw(), mask, accum, op, u.Raw(), y, desc)
}

// ApplyIndexUnaryMatrix is ApplyIndexUnaryVector's edge-type counterpart.
func ApplyIndexUnaryMatrix[Dz, Dx, Dy valuetype.Value](d *Dispatcher, product, arg edge.TypeIndex, op backend.IndexUnaryOp[Dz, Dx, Dy], y Dy, accum *backend.BinaryOp[Dz, Dz, Dz], maskType *edge.TypeIndex, opts MatrixArgOptions) error {
	if err := requireDisjointMatrices(product, arg); err != nil {
		return err
	}

	c, err := resolveMatrix[Dz](d, product)
	if err != nil {
		return err
	}
	a, err := resolveMatrix[Dx](d, arg)
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

	return backend.ApplyIndexUnaryMatrix(c.Raw(), mask, accum, op, a.Raw(), y, desc)
}

// ApplyBinaryVector2nd computes product<mask> = accum(product,
// op(arg, y)) for a vertex-type argument and a fixed scalar second
// operand.
func ApplyBinaryVector2nd[Dz, Dx, Dy valuetype.Value](d *Dispatcher, product, arg vertex.TypeIndex, op backend.BinaryOp[Dz, Dx, Dy], y Dy, accum *backend.BinaryOp[Dz, Dz, Dz], maskType *vertex.TypeIndex, opts Options) error {
	if err := requireDisjointVectors(product, arg); err != nil {
		return err
	}

	w, err := resolveVector[Dz](d, product)
	if err != nil {
		return err
	}
	u, err := resolveVector[Dx](d, arg)
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

	return backend.ApplyBinaryVector2nd(w.Raw(), mask, accum, op, u.Raw(), y, desc)
}

// ApplyBinaryMatrix2nd is ApplyBinaryVector2nd's edge-type counterpart.
func ApplyBinaryMatrix2nd[Dz, Dx, Dy valuetype.Value](d *Dispatcher, product, arg edge.TypeIndex, op backend.BinaryOp[Dz, Dx, Dy], y Dy, accum *backend.BinaryOp[Dz, Dz, Dz], maskType *edge.TypeIndex, opts MatrixArgOptions) error {
	if err := requireDisjointMatrices(product, arg); err != nil {
		return err
	}

	c, err := resolveMatrix[Dz](d, product)
	if err != nil {
		return err
	}
	a, err := resolveMatrix[Dx](d, arg)
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

	return backend.ApplyBinaryMatrix2nd(c.Raw(), mask, accum, op, a.Raw(), y, desc)
}
