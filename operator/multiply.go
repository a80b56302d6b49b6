// SPDX-License-Identifier: MIT
package operator

import (
	"github.com/katalvlaran/lagraph/backend"
	"github.com/katalvlaran/lagraph/edge"
	"github.com/katalvlaran/lagraph/valuetype"
	"github.com/katalvlaran/lagraph/vertex"
)

// MxM computes product<mask> = accum(product, left +.* right) under
// the given semiring — matrix-matrix multiply over two edge types.
func MxM[Dz, Dx, Dy valuetype.Value](d *Dispatcher, product, left, right edge.TypeIndex, semiring backend.Semiring[Dz, Dx, Dy], accum *backend.BinaryOp[Dz, Dz, Dz], maskType *edge.TypeIndex, opts MatrixArgsOptions) error {
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

	return backend.MxM(c.Raw(), mask, accum, semiring, a.Raw(), b.Raw(), desc)
}

// MxV computes product<mask> = accum(product, matrixArg +.* vectorArg)
// — an edge type times a vertex type into a vertex type.
func MxV[Dz, Da, Du valuetype.Value](d *Dispatcher, product vertex.TypeIndex, matrixArg edge.TypeIndex, semiring backend.Semiring[Dz, Da, Du], vectorArg vertex.TypeIndex, accum *backend.BinaryOp[Dz, Dz, Dz], maskType *vertex.TypeIndex, opts MatrixArgOptions) error {
	if err := requireDisjointVectors(product, vectorArg); err != nil {
		return err
	}

	w, err := resolveVector[Dz](d, product)
	if err != nil {
		return err
	}
	a, err := resolveMatrix[Da](d, matrixArg)
	if err != nil {
		return err
	}
	u, err := resolveVector[Du](d, vectorArg)
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

	return backend.MxV(w.Raw(), mask, accum, semiring, a.Raw(), u.Raw(), desc)
}

// VxM computes product<mask> = accum(product, vectorArg +.* matrixArg)
// — the row-vector-times-matrix shape traverse.BFS uses for one level
// of frontier expansion.
func VxM[Dz, Du, Da valuetype.Value](d *Dispatcher, product vertex.TypeIndex, vectorArg vertex.TypeIndex, semiring backend.Semiring[Dz, Du, Da], matrixArg edge.TypeIndex, accum *backend.BinaryOp[Dz, Dz, Dz], maskType *vertex.TypeIndex, opts MatrixArgOptions) error {
	if err := requireDisjointVectors(product, vectorArg); err != nil {
		return err
	}

	w, err := resolveVector[Dz](d, product)
	if err != nil {
		return err
	}
	u, err := resolveVector[Du](d, vectorArg)
	if err != nil {
		return err
	}
	a, err := resolveMatrix[Da](d, matrixArg)
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

	return backend.VxM(w.Raw(), mask, accum, semiring, u.Raw(), a.Raw(), desc)
}
