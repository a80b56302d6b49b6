// SPDX-License-Identifier: MIT
package backend

import (
	"github.com/intel/forGraphBLASGo/GrB"

	"github.com/katalvlaran/lagraph/index"
	"github.com/katalvlaran/lagraph/valuetype"
)

// MatrixExtractTuples returns every stored (tail, head, weight) triple
// in m. Used by graph.Transaction to snapshot a matrix's affected
// cells before a destructive operation (e.g. drop_vertex_index's
// clear-row/clear-col), so the snapshot can be replayed on abort.
func MatrixExtractTuples[T valuetype.Value](m *Matrix[T]) (rows, cols []index.Index, vals []T, err error) {
	defer guardPanic("MatrixExtractTuples", &err)

	r64, c64, v, gerr := GrB.MatrixExtractTuples(m.grb)
	if gerr != nil {
		return nil, nil, nil, translate("MatrixExtractTuples", gerr)
	}

	rows = make([]index.Index, len(r64))
	for i, x := range r64 {
		rows[i] = index.Index(x)
	}
	cols = make([]index.Index, len(c64))
	for i, x := range c64 {
		cols[i] = index.Index(x)
	}

	return rows, cols, v, nil
}

// VectorExtractTuples returns every stored (index, value) pair in v.
// Used by traverse.BFS to read back which vertices a frontier vector
// actually holds after a masked vxm round, since a boolean vector's
// true/false domain does not by itself say which indices are present.
func VectorExtractTuples[T valuetype.Value](v *Vector[T]) (indices []index.Index, vals []T, err error) {
	defer guardPanic("VectorExtractTuples", &err)

	i64, val, gerr := GrB.VectorExtractTuples(v.grb)
	if gerr != nil {
		return nil, nil, translate("VectorExtractTuples", gerr)
	}

	indices = make([]index.Index, len(i64))
	for i, x := range i64 {
		indices[i] = index.Index(x)
	}

	return indices, val, nil
}
