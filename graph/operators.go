// SPDX-License-Identifier: MIT
package graph

import (
	"github.com/katalvlaran/lagraph/backend"
	"github.com/katalvlaran/lagraph/edge"
	"github.com/katalvlaran/lagraph/index"
	"github.com/katalvlaran/lagraph/operator"
	"github.com/katalvlaran/lagraph/valuetype"
	"github.com/katalvlaran/lagraph/vertex"
)

// This file re-exposes each operator family as a package-level
// function taking *Graph in place of g.Dispatcher(),
// so callers working against Graph never need to reach into the
// operator package directly. Every wrapper is a straight forward to
// the matching operator.* function plus classify() for the boundary
// error taxonomy; the actual semiring/monoid/op plumbing lives there.

// ApplyUnaryVector applies op elementwise to arg's vertex vector,
// storing into product.
func ApplyUnaryVector[Dz, Dx valuetype.Value](g *Graph, product, arg vertex.TypeIndex, op backend.UnaryOp[Dz, Dx], accum *backend.BinaryOp[Dz, Dz, Dz], maskType *vertex.TypeIndex, opts operator.Options) error {
	if err := operator.ApplyUnaryVector[Dz, Dx](g.dispatcher, product, arg, op, accum, maskType, opts); err != nil {
		return classify("ApplyUnaryVector", err)
	}
	return nil
}

// ApplyUnaryMatrix is ApplyUnaryVector over adjacency matrices.
func ApplyUnaryMatrix[Dz, Dx valuetype.Value](g *Graph, product, arg edge.TypeIndex, op backend.UnaryOp[Dz, Dx], accum *backend.BinaryOp[Dz, Dz, Dz], maskType *edge.TypeIndex, opts operator.MatrixArgOptions) error {
	if err := operator.ApplyUnaryMatrix[Dz, Dx](g.dispatcher, product, arg, op, accum, maskType, opts); err != nil {
		return classify("ApplyUnaryMatrix", err)
	}
	return nil
}

// ApplyIndexUnaryVector applies an index-unary op (parameterized by y)
// elementwise to arg's vertex vector.
func ApplyIndexUnaryVector[Dz, Dx, Dy valuetype.Value](g *Graph, product, arg vertex.TypeIndex, op backend.IndexUnaryOp[Dz, Dx, Dy], y Dy, accum *backend.BinaryOp[Dz, Dz, Dz], maskType *vertex.TypeIndex, opts operator.Options) error {
	if err := operator.ApplyIndexUnaryVector[Dz, Dx, Dy](g.dispatcher, product, arg, op, y, accum, maskType, opts); err != nil {
		return classify("ApplyIndexUnaryVector", err)
	}
	return nil
}

// ApplyIndexUnaryMatrix is ApplyIndexUnaryVector over adjacency matrices.
func ApplyIndexUnaryMatrix[Dz, Dx, Dy valuetype.Value](g *Graph, product, arg edge.TypeIndex, op backend.IndexUnaryOp[Dz, Dx, Dy], y Dy, accum *backend.BinaryOp[Dz, Dz, Dz], maskType *edge.TypeIndex, opts operator.MatrixArgOptions) error {
	if err := operator.ApplyIndexUnaryMatrix[Dz, Dx, Dy](g.dispatcher, product, arg, op, y, accum, maskType, opts); err != nil {
		return classify("ApplyIndexUnaryMatrix", err)
	}
	return nil
}

// ApplyBinaryVector2nd applies op(x, y) with y bound, elementwise to
// arg's vertex vector.
func ApplyBinaryVector2nd[Dz, Dx, Dy valuetype.Value](g *Graph, product, arg vertex.TypeIndex, op backend.BinaryOp[Dz, Dx, Dy], y Dy, accum *backend.BinaryOp[Dz, Dz, Dz], maskType *vertex.TypeIndex, opts operator.Options) error {
	if err := operator.ApplyBinaryVector2nd[Dz, Dx, Dy](g.dispatcher, product, arg, op, y, accum, maskType, opts); err != nil {
		return classify("ApplyBinaryVector2nd", err)
	}
	return nil
}

// ApplyBinaryMatrix2nd is ApplyBinaryVector2nd over adjacency matrices.
func ApplyBinaryMatrix2nd[Dz, Dx, Dy valuetype.Value](g *Graph, product, arg edge.TypeIndex, op backend.BinaryOp[Dz, Dx, Dy], y Dy, accum *backend.BinaryOp[Dz, Dz, Dz], maskType *edge.TypeIndex, opts operator.MatrixArgOptions) error {
	if err := operator.ApplyBinaryMatrix2nd[Dz, Dx, Dy](g.dispatcher, product, arg, op, y, accum, maskType, opts); err != nil {
		return classify("ApplyBinaryMatrix2nd", err)
	}
	return nil
}

// ElementWiseAddVectorBinary computes the elementwise union of left and
// right under op, storing into product.
func ElementWiseAddVectorBinary[Dz, Dx, Dy valuetype.Value](g *Graph, product, left, right vertex.TypeIndex, op backend.BinaryOp[Dz, Dx, Dy], accum *backend.BinaryOp[Dz, Dz, Dz], maskType *vertex.TypeIndex, opts operator.Options) error {
	if err := operator.ElementWiseAddVectorBinary[Dz, Dx, Dy](g.dispatcher, product, left, right, op, accum, maskType, opts); err != nil {
		return classify("ElementWiseAddVectorBinary", err)
	}
	return nil
}

// ElementWiseAddVectorMonoid is ElementWiseAddVectorBinary specialized
// to a monoid, so left and right may share a single domain D.
func ElementWiseAddVectorMonoid[D valuetype.Value](g *Graph, product, left, right vertex.TypeIndex, op backend.Monoid[D], accum *backend.BinaryOp[D, D, D], maskType *vertex.TypeIndex, opts operator.Options) error {
	if err := operator.ElementWiseAddVectorMonoid[D](g.dispatcher, product, left, right, op, accum, maskType, opts); err != nil {
		return classify("ElementWiseAddVectorMonoid", err)
	}
	return nil
}

// ElementWiseAddMatrixBinary is ElementWiseAddVectorBinary over
// adjacency matrices.
func ElementWiseAddMatrixBinary[Dz, Dx, Dy valuetype.Value](g *Graph, product, left, right edge.TypeIndex, op backend.BinaryOp[Dz, Dx, Dy], accum *backend.BinaryOp[Dz, Dz, Dz], maskType *edge.TypeIndex, opts operator.MatrixArgsOptions) error {
	if err := operator.ElementWiseAddMatrixBinary[Dz, Dx, Dy](g.dispatcher, product, left, right, op, accum, maskType, opts); err != nil {
		return classify("ElementWiseAddMatrixBinary", err)
	}
	return nil
}

// ElementWiseMultiplyVectorBinary computes the elementwise
// intersection of left and right under op, storing into product.
func ElementWiseMultiplyVectorBinary[Dz, Dx, Dy valuetype.Value](g *Graph, product, left, right vertex.TypeIndex, op backend.BinaryOp[Dz, Dx, Dy], accum *backend.BinaryOp[Dz, Dz, Dz], maskType *vertex.TypeIndex, opts operator.Options) error {
	if err := operator.ElementWiseMultiplyVectorBinary[Dz, Dx, Dy](g.dispatcher, product, left, right, op, accum, maskType, opts); err != nil {
		return classify("ElementWiseMultiplyVectorBinary", err)
	}
	return nil
}

// ElementWiseMultiplyMatrixBinary is ElementWiseMultiplyVectorBinary
// over adjacency matrices.
func ElementWiseMultiplyMatrixBinary[Dz, Dx, Dy valuetype.Value](g *Graph, product, left, right edge.TypeIndex, op backend.BinaryOp[Dz, Dx, Dy], accum *backend.BinaryOp[Dz, Dz, Dz], maskType *edge.TypeIndex, opts operator.MatrixArgsOptions) error {
	if err := operator.ElementWiseMultiplyMatrixBinary[Dz, Dx, Dy](g.dispatcher, product, left, right, op, accum, maskType, opts); err != nil {
		return classify("ElementWiseMultiplyMatrixBinary", err)
	}
	return nil
}

// MxM computes product = left * right under semiring, matrix times
// matrix.
func MxM[Dz, Dx, Dy valuetype.Value](g *Graph, product, left, right edge.TypeIndex, semiring backend.Semiring[Dz, Dx, Dy], accum *backend.BinaryOp[Dz, Dz, Dz], maskType *edge.TypeIndex, opts operator.MatrixArgsOptions) error {
	if err := operator.MxM[Dz, Dx, Dy](g.dispatcher, product, left, right, semiring, accum, maskType, opts); err != nil {
		return classify("MxM", err)
	}
	return nil
}

// MxV computes product = matrixArg * vectorArg under semiring, matrix
// times vector.
func MxV[Dz, Da, Du valuetype.Value](g *Graph, product vertex.TypeIndex, matrixArg edge.TypeIndex, semiring backend.Semiring[Dz, Da, Du], vectorArg vertex.TypeIndex, accum *backend.BinaryOp[Dz, Dz, Dz], maskType *vertex.TypeIndex, opts operator.MatrixArgOptions) error {
	if err := operator.MxV[Dz, Da, Du](g.dispatcher, product, matrixArg, semiring, vectorArg, accum, maskType, opts); err != nil {
		return classify("MxV", err)
	}
	return nil
}

// VxM computes product = vectorArg * matrixArg under semiring, vector
// times matrix.
func VxM[Dz, Du, Da valuetype.Value](g *Graph, product vertex.TypeIndex, vectorArg vertex.TypeIndex, semiring backend.Semiring[Dz, Du, Da], matrixArg edge.TypeIndex, accum *backend.BinaryOp[Dz, Dz, Dz], maskType *vertex.TypeIndex, opts operator.MatrixArgOptions) error {
	if err := operator.VxM[Dz, Du, Da](g.dispatcher, product, vectorArg, semiring, matrixArg, accum, maskType, opts); err != nil {
		return classify("VxM", err)
	}
	return nil
}

// SelectVector keeps only the elements of arg's vertex vector for
// which the index-unary predicate op(index, value, y) holds.
func SelectVector[D, Dy valuetype.Value](g *Graph, product, arg vertex.TypeIndex, op backend.IndexUnaryOp[bool, D, Dy], y Dy, accum *backend.BinaryOp[D, D, D], maskType *vertex.TypeIndex, opts operator.Options) error {
	if err := operator.SelectVector[D, Dy](g.dispatcher, product, arg, op, y, accum, maskType, opts); err != nil {
		return classify("SelectVector", err)
	}
	return nil
}

// SelectMatrix is SelectVector over adjacency matrices.
func SelectMatrix[D, Dy valuetype.Value](g *Graph, product, arg edge.TypeIndex, op backend.IndexUnaryOp[bool, D, Dy], y Dy, accum *backend.BinaryOp[D, D, D], maskType *edge.TypeIndex, opts operator.MatrixArgOptions) error {
	if err := operator.SelectMatrix[D, Dy](g.dispatcher, product, arg, op, y, accum, maskType, opts); err != nil {
		return classify("SelectMatrix", err)
	}
	return nil
}

// SelectEdgesWithTailVertex keeps only the edges of arg whose tail is v.
func SelectEdgesWithTailVertex[D valuetype.Value](g *Graph, product, arg edge.TypeIndex, v vertex.Index, maskType *edge.TypeIndex, opts operator.MatrixArgOptions) error {
	if err := operator.SelectEdgesWithTailVertex[D](g.dispatcher, product, arg, index.Index(v), maskType, opts); err != nil {
		return classify("SelectEdgesWithTailVertex", err)
	}
	return nil
}

// SelectEdgesWithHeadVertex keeps only the edges of arg whose head is v.
func SelectEdgesWithHeadVertex[D valuetype.Value](g *Graph, product, arg edge.TypeIndex, v vertex.Index, maskType *edge.TypeIndex, opts operator.MatrixArgOptions) error {
	if err := operator.SelectEdgesWithHeadVertex[D](g.dispatcher, product, arg, index.Index(v), maskType, opts); err != nil {
		return classify("SelectEdgesWithHeadVertex", err)
	}
	return nil
}

// TransposeMatrix computes product = argᵀ. When product and arg name
// the same edge type this transposes in place; otherwise it reuses
// arg's own cached transpose.
func TransposeMatrix[D valuetype.Value](g *Graph, product, arg edge.TypeIndex, accum *backend.BinaryOp[D, D, D], maskType *edge.TypeIndex, opts operator.Options) error {
	if err := operator.TransposeMatrix[D](g.dispatcher, product, arg, accum, maskType, opts); err != nil {
		return classify("TransposeMatrix", err)
	}
	return nil
}

// ExtractRow extracts row v of arg's adjacency matrix into product's
// vertex vector.
func ExtractRow[Dw, Da valuetype.Value](g *Graph, product vertex.TypeIndex, arg edge.TypeIndex, v vertex.Index, accum *backend.BinaryOp[Dw, Dw, Dw], maskType *vertex.TypeIndex, opts operator.Options) error {
	if err := operator.ExtractRow[Dw, Da](g.dispatcher, product, arg, index.Index(v), accum, maskType, opts); err != nil {
		return classify("ExtractRow", err)
	}
	return nil
}

// ExtractCol extracts column v of arg's adjacency matrix into
// product's vertex vector.
func ExtractCol[Dw, Da valuetype.Value](g *Graph, product vertex.TypeIndex, arg edge.TypeIndex, v vertex.Index, accum *backend.BinaryOp[Dw, Dw, Dw], maskType *vertex.TypeIndex, opts operator.Options) error {
	if err := operator.ExtractCol[Dw, Da](g.dispatcher, product, arg, index.Index(v), accum, maskType, opts); err != nil {
		return classify("ExtractCol", err)
	}
	return nil
}

// ExtractSubMatrix extracts the submatrix of arg induced by rows and
// cols into product.
func ExtractSubMatrix[Dc, Da valuetype.Value](g *Graph, product, arg edge.TypeIndex, rows, cols []vertex.Index, accum *backend.BinaryOp[Dc, Dc, Dc], maskType *edge.TypeIndex, opts operator.MatrixArgOptions) error {
	ri := make([]index.Index, len(rows))
	for i, v := range rows {
		ri[i] = index.Index(v)
	}
	ci := make([]index.Index, len(cols))
	for i, v := range cols {
		ci[i] = index.Index(v)
	}

	if err := operator.ExtractSubMatrix[Dc, Da](g.dispatcher, product, arg, ri, ci, accum, maskType, opts); err != nil {
		return classify("ExtractSubMatrix", err)
	}
	return nil
}

// ExtractSubVector extracts the subvector of arg induced by indices
// into product.
func ExtractSubVector[Dw valuetype.Value](g *Graph, product, arg vertex.TypeIndex, indices []vertex.Index, accum *backend.BinaryOp[Dw, Dw, Dw], maskType *vertex.TypeIndex, opts operator.Options) error {
	ii := make([]index.Index, len(indices))
	for i, v := range indices {
		ii[i] = index.Index(v)
	}

	if err := operator.ExtractSubVector[Dw](g.dispatcher, product, arg, ii, accum, maskType, opts); err != nil {
		return classify("ExtractSubVector", err)
	}
	return nil
}
