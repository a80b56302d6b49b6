// SPDX-License-Identifier: MIT
package operator

import (
	"fmt"

	"github.com/katalvlaran/lagraph/backend"
	"github.com/katalvlaran/lagraph/edge"
	"github.com/katalvlaran/lagraph/valuetype"
	"github.com/katalvlaran/lagraph/vertex"
)

// Dispatcher is the shared entry point every operator family goes
// through: it resolves vertex.TypeIndex/edge.TypeIndex arguments to
// concrete vector/matrix references against the two stores a Graph
// owns.
//
// Dispatcher holds no state of its own beyond the two store pointers;
// Graph constructs one per call (or keeps one alive for its lifetime)
// pointing at its own VertexStore/EdgeStore.
type Dispatcher struct {
	Vertices *vertex.Store
	Edges    *edge.Store
}

// resolveVector resolves a vertex-type argument to its VertexVector,
// checked.
func resolveVector[T valuetype.Value](d *Dispatcher, t vertex.TypeIndex) (*vertex.VertexVector[T], error) {
	return vertex.VertexVectorRef[T](d.Vertices, t)
}

// resolveMatrix resolves an edge-type argument to its
// WeightedAdjacencyMatrix, checked.
func resolveMatrix[T valuetype.Value](d *Dispatcher, e edge.TypeIndex) (*edge.WeightedAdjacencyMatrix[T], error) {
	return edge.AdjacencyMatrixRef[T](d.Edges, e)
}

// resolveVectorMask resolves an optional bool-valued vertex-type mask.
// A nil maskType selects the entire-vector sentinel mask, so callers
// never need a special case for "no mask".
func (d *Dispatcher) resolveVectorMask(maskType *vertex.TypeIndex) (backend.VectorMask, error) {
	if maskType == nil {
		return backend.NoVectorMask(), nil
	}

	mv, err := resolveVector[bool](d, *maskType)
	if err != nil {
		return backend.VectorMask{}, err
	}

	return backend.VectorMaskFrom(mv.Raw()), nil
}

// resolveMatrixMask resolves an optional bool-valued edge-type mask.
func (d *Dispatcher) resolveMatrixMask(maskType *edge.TypeIndex) (backend.MatrixMask, error) {
	if maskType == nil {
		return backend.NoMatrixMask(), nil
	}

	mm, err := resolveMatrix[bool](d, *maskType)
	if err != nil {
		return backend.MatrixMask{}, err
	}

	return backend.MatrixMaskFrom(mm.Raw()), nil
}

// requireDisjointVectors rejects a call whose argument and product
// type-indices name the same slot, for operator families that do not
// declare in-place support (every family except Transpose).
func requireDisjointVectors(args ...vertex.TypeIndex) error {
	for i := 0; i < len(args); i++ {
		for j := i + 1; j < len(args); j++ {
			if args[i] == args[j] {
				return fmt.Errorf("operator: vertex type %d used as both argument and product: %w", args[i], ErrOverlappingSlots)
			}
		}
	}

	return nil
}

// requireDisjointMatrices is requireDisjointVectors for edge-type
// arguments.
func requireDisjointMatrices(args ...edge.TypeIndex) error {
	for i := 0; i < len(args); i++ {
		for j := i + 1; j < len(args); j++ {
			if args[i] == args[j] {
				return fmt.Errorf("operator: edge type %d used as both argument and product: %w", args[i], ErrOverlappingSlots)
			}
		}
	}

	return nil
}
