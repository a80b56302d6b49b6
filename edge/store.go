// SPDX-License-Identifier: MIT
package edge

import (
	"fmt"

	"github.com/katalvlaran/lagraph/index"
	"github.com/katalvlaran/lagraph/valuetype"
)

// matrixHandle is the type-erased face every matrixBox[T] presents to
// Store, mirroring vertex.vectorHandle.
type matrixHandle interface {
	kind() valuetype.Kind
	resize(n index.Index) error
	deleteVertexConnections(v index.Index) error
	snapshotVertexConnections(v index.Index) (func() error, error)
}

type matrixBox[T valuetype.Value] struct {
	m *WeightedAdjacencyMatrix[T]
}

func (b *matrixBox[T]) kind() valuetype.Kind { return valuetype.KindOf[T]() }
func (b *matrixBox[T]) resize(n index.Index) error { return b.m.Resize(n) }
func (b *matrixBox[T]) deleteVertexConnections(v index.Index) error {
	return b.m.DeleteVertexConnections(v)
}
func (b *matrixBox[T]) snapshotVertexConnections(v index.Index) (func() error, error) {
	return b.m.SnapshotVertexConnections(v)
}

// Store is the edge-type home for a Graph: one Indexer (the edge-type
// axis) plus an ordered collection of WeightedAdjacencyMatrices, one
// per live edge type.
type Store struct {
	typeIndexer *index.Indexer
	slots       map[TypeIndex]matrixHandle
	visibility  map[TypeIndex]Visibility
}

// NewStore builds an empty Store. initialEdgeTypeCapacity seeds the
// edge-type axis.
func NewStore(initialEdgeTypeCapacity index.Index) *Store {
	return &Store{
		typeIndexer: index.New(initialEdgeTypeCapacity, ^index.Index(0)),
		slots:       make(map[TypeIndex]matrixHandle),
		visibility:  make(map[TypeIndex]Visibility),
	}
}

// NewEdgeType allocates a new edge type backed by weight type T and
// constructs its WeightedAdjacencyMatrix at order n (the Graph's
// current vertex capacity).
func NewEdgeType[T valuetype.Value](s *Store, vis Visibility, n index.Index) (TypeIndex, error) {
	assigned, err := s.typeIndexer.NewIndex()
	if err != nil {
		return 0, fmt.Errorf("edge.NewEdgeType: %w", err)
	}

	m, err := newWeightedAdjacencyMatrix[T](n)
	if err != nil {
		s.typeIndexer.FreeIndexUnchecked(assigned.Index)
		return 0, fmt.Errorf("edge.NewEdgeType: %w", err)
	}

	ei := TypeIndex(assigned.Index)
	s.slots[ei] = &matrixBox[T]{m: m}
	s.visibility[ei] = vis

	return ei, nil
}

// DeleteEdgeType frees an edge type and releases its adjacency matrix.
// It never touches any vertex type; vertex/edge axes are independent,
// each with its own Indexer and its own free-index reuse queue.
func (s *Store) DeleteEdgeType(e TypeIndex) error {
	if err := s.typeIndexer.FreeValidIndex(index.Index(e)); err != nil {
		return fmt.Errorf("edge.DeleteEdgeType: %w", ErrTypeIndexNotValid)
	}

	delete(s.slots, e)
	delete(s.visibility, e)

	return nil
}

// DeleteEdgeTypeUnchecked frees e and discards its slot without
// checking liveness first. Used by graph.Transaction to undo a
// NewEdgeType call within the same transaction.
func (s *Store) DeleteEdgeTypeUnchecked(e TypeIndex) {
	s.typeIndexer.FreeIndexUnchecked(index.Index(e))
	delete(s.slots, e)
	delete(s.visibility, e)
}

// DeleteEdgeTypeForTransaction deletes e and returns a closure that
// fully restores it (handle, visibility, and indexer liveness) to its
// pre-delete state. For graph.Transaction rollback of a DeleteEdgeType
// call within the same transaction.
func (s *Store) DeleteEdgeTypeForTransaction(e TypeIndex) (func() error, error) {
	h, ok := s.slots[e]
	if !ok {
		return nil, fmt.Errorf("edge.DeleteEdgeTypeForTransaction: %w", ErrTypeIndexNotValid)
	}
	vis := s.visibility[e]

	if err := s.DeleteEdgeType(e); err != nil {
		return nil, err
	}

	return func() error {
		s.typeIndexer.RestoreIndex(index.Index(e))
		s.slots[e] = h
		s.visibility[e] = vis

		return nil
	}, nil
}

// PublicTypeIndices returns every live edge type index created with
// Visibility Public, skipping Private ones, mirroring
// vertex.Store.PublicTypeIndices.
func (s *Store) PublicTypeIndices() []TypeIndex {
	out := make([]TypeIndex, 0, len(s.slots))
	for e := range s.slots {
		if s.visibility[e] == Public {
			out = append(out, e)
		}
	}

	return out
}

// IsValidType reports whether e currently names a live edge type.
func (s *Store) IsValidType(e TypeIndex) bool { return s.typeIndexer.IsValid(index.Index(e)) }

// ResizeAdjacencyMatrices grows every live adjacency matrix to order n.
// Called by Graph immediately after the vertex-element indexer reports
// capacity growth, to keep every matrix's order equal to vertex
// capacity at all times.
func (s *Store) ResizeAdjacencyMatrices(n index.Index) error {
	return s.MapMutAllAdjacencyMatrices(func(e TypeIndex, h matrixHandle) error {
		return h.resize(n)
	})
}

// MapMutAllAdjacencyMatrices iterates over every live matrix and
// applies f to each. Iteration order is unspecified.
func (s *Store) MapMutAllAdjacencyMatrices(f func(e TypeIndex, h matrixHandle) error) error {
	for e, h := range s.slots {
		if err := f(e, h); err != nil {
			return fmt.Errorf("edge.MapMutAllAdjacencyMatrices: type %d: %w", e, err)
		}
	}

	return nil
}

// DeleteVertexConnections clears row/col v in every live adjacency
// matrix, the edge-store half of dropping a vertex index.
func (s *Store) DeleteVertexConnections(v index.Index) error {
	return s.MapMutAllAdjacencyMatrices(func(_ TypeIndex, h matrixHandle) error {
		return h.deleteVertexConnections(v)
	})
}

// SnapshotVertexConnections captures, for every live adjacency matrix,
// the edges touching v, and returns one restore closure per matrix.
// Used by graph.Transaction to make DropVertexIndex revertible.
func (s *Store) SnapshotVertexConnections(v index.Index) ([]func() error, error) {
	restores := make([]func() error, 0, len(s.slots))
	err := s.MapMutAllAdjacencyMatrices(func(_ TypeIndex, h matrixHandle) error {
		restore, err := h.snapshotVertexConnections(v)
		if err != nil {
			return err
		}
		restores = append(restores, restore)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return restores, nil
}

// TypeIndexer exposes the underlying Indexer for Graph's transaction
// log to record inverse operations against.
func (s *Store) TypeIndexer() *index.Indexer { return s.typeIndexer }

// matrixRefChecked returns the typed WeightedAdjacencyMatrix at e,
// validating both that e is live and that its recorded weight type
// matches T.
func matrixRefChecked[T valuetype.Value](s *Store, e TypeIndex) (*WeightedAdjacencyMatrix[T], error) {
	if !s.IsValidType(e) {
		return nil, fmt.Errorf("edge.AdjacencyMatrixRef: %w", ErrTypeIndexNotValid)
	}

	return matrixRefUnchecked[T](s, e)
}

// matrixRefUnchecked skips the liveness check, for callers that have
// already established e is valid.
func matrixRefUnchecked[T valuetype.Value](s *Store, e TypeIndex) (*WeightedAdjacencyMatrix[T], error) {
	h, ok := s.slots[e]
	if !ok {
		return nil, fmt.Errorf("edge.AdjacencyMatrixRef: %w", ErrTypeIndexNotValid)
	}

	b, ok := h.(*matrixBox[T])
	if !ok {
		return nil, fmt.Errorf("edge.AdjacencyMatrixRef: want %s, have %s: %w", valuetype.KindOf[T](), h.kind(), ErrDomainMismatch)
	}

	return b.m, nil
}

// AdjacencyMatrixRef returns the matrix of weight type T at edge type
// e, erroring if e is not live or was created with a different weight
// type.
func AdjacencyMatrixRef[T valuetype.Value](s *Store, e TypeIndex) (*WeightedAdjacencyMatrix[T], error) {
	return matrixRefChecked[T](s, e)
}

// AdjacencyMatrixRefUnchecked is AdjacencyMatrixRef without the
// liveness check, for callers that have already validated e as part
// of a larger, multi-argument check. The operator dispatcher uses the
// checked AdjacencyMatrixRef.
func AdjacencyMatrixRefUnchecked[T valuetype.Value](s *Store, e TypeIndex) (*WeightedAdjacencyMatrix[T], error) {
	return matrixRefUnchecked[T](s, e)
}

// SetEdgeWeight stores weight at (e, tail, head), overwriting any
// existing edge of type e between the same pair.
func SetEdgeWeight[T valuetype.Value](s *Store, e TypeIndex, tail, head index.Index, weight T) error {
	m, err := matrixRefChecked[T](s, e)
	if err != nil {
		return err
	}

	return m.SetElement(tail, head, weight)
}

// DeleteEdge removes the edge at (e, tail, head) if one exists.
func DeleteEdge[T valuetype.Value](s *Store, e TypeIndex, tail, head index.Index) error {
	m, err := matrixRefChecked[T](s, e)
	if err != nil {
		return err
	}

	return m.DropElement(tail, head)
}

// GetEdgeWeight reads the weight at (e, tail, head), ok=false if
// absent.
func GetEdgeWeight[T valuetype.Value](s *Store, e TypeIndex, tail, head index.Index) (weight T, ok bool, err error) {
	m, err := matrixRefChecked[T](s, e)
	if err != nil {
		return weight, false, err
	}

	return m.GetElement(tail, head)
}
