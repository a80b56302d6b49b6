// SPDX-License-Identifier: MIT
package operator

import (
	"github.com/katalvlaran/lagraph/backend"
	"github.com/katalvlaran/lagraph/edge"
	"github.com/katalvlaran/lagraph/index"
	"github.com/katalvlaran/lagraph/valuetype"
	"github.com/katalvlaran/lagraph/vertex"
)

// ExtractRow computes product<mask> = accum(product, arg(tail, :)^T)
// — the row of adjacency matrix arg at tail vertex v, as a vertex-type
// vector over head vertices.
func ExtractRow[Dw, Da valuetype.Value](d *Dispatcher, product vertex.TypeIndex, arg edge.TypeIndex, v index.Index, accum *backend.BinaryOp[Dw, Dw, Dw], maskType *vertex.TypeIndex, opts Options) error {
	w, err := resolveVector[Dw](d, product)
	if err != nil {
		return err
	}
	a, err := resolveMatrix[Da](d, arg)
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

	return backend.ExtractRow(w.Raw(), mask, accum, a.Raw(), v, desc)
}

// ExtractCol computes product<mask> = accum(product, arg(:, head)) —
// the column of arg at head vertex v.
func ExtractCol[Dw, Da valuetype.Value](d *Dispatcher, product vertex.TypeIndex, arg edge.TypeIndex, v index.Index, accum *backend.BinaryOp[Dw, Dw, Dw], maskType *vertex.TypeIndex, opts Options) error {
	w, err := resolveVector[Dw](d, product)
	if err != nil {
		return err
	}
	a, err := resolveMatrix[Da](d, arg)
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

	return backend.ExtractCol(w.Raw(), mask, accum, a.Raw(), v, desc)
}

// ExtractSubMatrix computes product<mask> = accum(product,
// arg(rows, cols)).
func ExtractSubMatrix[Dc, Da valuetype.Value](d *Dispatcher, product, arg edge.TypeIndex, rows, cols []index.Index, accum *backend.BinaryOp[Dc, Dc, Dc], maskType *edge.TypeIndex, opts MatrixArgOptions) error {
	if err := requireDisjointMatrices(product, arg); err != nil {
		return err
	}

	c, err := resolveMatrix[Dc](d, product)
	if err != nil {
		return err
	}
	a, err := resolveMatrix[Da](d, arg)
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

	return backend.ExtractSubMatrix(c.Raw(), mask, accum, a.Raw(), rows, cols, desc)
}

// ExtractSubVector computes product<mask> = accum(product,
// arg(indices)).
func ExtractSubVector[Dw valuetype.Value](d *Dispatcher, product, arg vertex.TypeIndex, indices []index.Index, accum *backend.BinaryOp[Dw, Dw, Dw], maskType *vertex.TypeIndex, opts Options) error {
	if err := requireDisjointVectors(product, arg); err != nil {
		return err
	}

	w, err := resolveVector[Dw](d, product)
	if err != nil {
		return err
	}
	u, err := resolveVector[Dw](d, arg)
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

	return backend.ExtractSubVector(w.Raw(), mask, accum, u.Raw(), indices, desc)
}
