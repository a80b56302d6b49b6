// SPDX-License-Identifier: MIT
package operator

import (
	"github.com/katalvlaran/lagraph/backend"
	"github.com/katalvlaran/lagraph/edge"
	"github.com/katalvlaran/lagraph/valuetype"
	"github.com/katalvlaran/lagraph/vertex"
)

// ElementWiseAddVectorBinary computes product<mask> = accum(product,
// left + right) over two vertex types, using a binary operator as the
// "+".
func ElementWiseAddVectorBinary[Dz, Dx, Dy valuetype.Value](d *Dispatcher, product, left, right vertex.TypeIndex, op backend.BinaryOp[Dz, Dx, Dy], accum *backend.BinaryOp[Dz, Dz, Dz], maskType *vertex.TypeIndex, opts Options) error {
	if err := requireDisjointVectors(product, left, right); err != nil {
		return err
	}

	w, err := resolveVector[Dz](d, product)
	if err != nil {
		return err
	}
	u, err := resolveVector[Dx](d, left)
	if err != nil {
		return err
	}
	v, err := resolveVector[Dy](d, right)
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

	return backend.ElementWiseAddVectorBinary(w.Raw(), mask, accum, op, u.Raw(), v.Raw(), desc)
}

// ElementWiseAddVectorMonoid is ElementWiseAddVectorBinary specialized
// to a Monoid.
func ElementWiseAddVectorMonoid[D valuetype.Value](d *Dispatcher, product, left, right vertex.TypeIndex, op backend.Monoid[D], accum *backend.BinaryOp[D, D, D], maskType *vertex.TypeIndex, opts Options) error {
	if err := requireDisjointVectors(product, left, right); err != nil {
		return err
	}

	w, err := resolveVector[D](d, product)
	if err != nil {
		return err
	}
	u, err := resolveVector[D](d, left)
	if err != nil {
		return err
	}
	v, err := resolveVector[D](d, right)
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

	return backend.ElementWiseAddVectorMonoid(w.Raw(), mask, accum, op, u.Raw(), v.Raw(), desc)
}

// ElementWiseAddMatrixBinary is ElementWiseAddVectorBinary's edge-type
// counterpart.
func ElementWiseAddMatrixBinary[Dz, Dx, Dy valuetype.Value](d *Dispatcher, product, left, right edge.TypeIndex, op backend.BinaryOp[Dz, Dx, Dy], accum *backend.BinaryOp[Dz, Dz, Dz], maskType *edge.TypeIndex, opts MatrixArgsOptions) error {
	if err := requireDisjointMatrices(product, left, right); err != nil {
		return err
	}

	c, err := resolveMatrix[Dz](d, product)
	if err != nil {
		return err
	}
	a, err := resolveMatrix[Dx](d, left)
	if err != nil {
		return err
	}
	b, err := resolveMatrix[Dy](d, right)
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

	return backend.ElementWiseAddMatrixBinary(c.Raw(), mask, accum, op, a.Raw(), b.Raw(), desc)
}

// ElementWiseMultiplyVectorBinary computes product<mask> = accum(product,
// left .* right), intersection of left's and right's patterns.
func ElementWiseMultiplyVectorBinary[Dz, Dx, Dy valuetype.Value](d *Dispatcher, product, left, right vertex.TypeIndex, op backend.BinaryOp[Dz, Dx, Dy], accum *backend.BinaryOp[Dz, Dz, Dz], maskType *vertex.TypeIndex, opts Options) error {
	if err := requireDisjointVectors(product, left, right); err != nil {
		return err
	}

	w, err := resolveVector[Dz](d, product)
	if err != nil {
		return err
	}
	u, err := resolveVector[Dx](d, left)
	if err != nil {
		return err
	}
	v, err := resolveVector[Dy](d, right)
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

	return backend.ElementWiseMultiplyVectorBinary(w.Raw(), mask, accum, op, u.Raw(), v.Raw(), desc)
}

// ElementWiseMultiplyMatrixBinary is the edge-type counterpart.
func ElementWiseMultiplyMatrixBinary[Dz, Dx, Dy valuetype.Value](d *Dispatcher, product, left, right edge.TypeIndex, op backend.BinaryOp[Dz, Dx, Dy], accum *backend.BinaryOp[Dz, Dz, Dz], maskType *edge.TypeIndex, opts MatrixArgsOptions) error {
	if err := requireDisjointMatrices(product, left, right); err != nil {
		return err
	}

	c, err := resolveMatrix[Dz](d, product)
	if err != nil {
		return err
	}
	a, err := resolveMatrix[Dx](d, left)
	if err != nil {
		return err
	}
	b, err := resolveMatrix[Dy](d, right)
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

	return backend.ElementWiseMultiplyMatrixBinary(c.Raw(), mask, accum, op, a.Raw(), b.Raw(), desc)
}
