// SPDX-License-Identifier: MIT
package vertex

import (
	"fmt"

	"github.com/katalvlaran/lagraph/index"
	"github.com/katalvlaran/lagraph/valuetype"
)

// vectorHandle is the type-erased face every vectorBox[T] presents to
// Store, so Store can hold a heterogeneous collection of VertexVectors
// keyed by vertex-type index without a sum type. Go has no sum types;
// an interface plus a type tag recorded at creation is the idiomatic
// stand-in.
type vectorHandle interface {
	kind() valuetype.Kind
	resize(n index.Index) error
	dropElement(i index.Index) error
	length() (index.Index, error)
	snapshotElement(i index.Index) (func() error, error)
}

// vectorBox adapts a *VertexVector[T] to vectorHandle.
type vectorBox[T valuetype.Value] struct {
	v *VertexVector[T]
}

func (b *vectorBox[T]) kind() valuetype.Kind            { return valuetype.KindOf[T]() }
func (b *vectorBox[T]) resize(n index.Index) error      { return b.v.Resize(n) }
func (b *vectorBox[T]) dropElement(i index.Index) error { return b.v.DropElement(i) }
func (b *vectorBox[T]) length() (index.Index, error)    { return b.v.Length() }

// snapshotElement captures the value at i (if any) and returns a
// closure that restores it — set if it was present, no-op if absent.
func (b *vectorBox[T]) snapshotElement(i index.Index) (func() error, error) {
	old, present, err := b.v.GetElement(Index(i))
	if err != nil {
		return nil, err
	}
	if !present {
		return func() error { return nil }, nil
	}

	return func() error { return b.v.SetElement(Index(i), old) }, nil
}

// Store is the vertex-type and vertex-element home for a Graph: two
// Indexers (one per axis) plus an ordered collection of VertexVectors,
// one per live vertex type.
type Store struct {
	typeIndexer    *index.Indexer
	elementIndexer *index.Indexer

	slots       map[TypeIndex]vectorHandle
	visibility  map[TypeIndex]Visibility
}

// NewStore builds an empty Store. initialVertexCapacity and
// maxVertexCapacity govern the element axis; initialVertexTypeCapacity
// seeds the type axis.
func NewStore(initialVertexCapacity, maxVertexCapacity, initialVertexTypeCapacity index.Index) *Store {
	return &Store{
		typeIndexer:    index.New(initialVertexTypeCapacity, ^index.Index(0)),
		elementIndexer: index.New(initialVertexCapacity, maxVertexCapacity),
		slots:          make(map[TypeIndex]vectorHandle),
		visibility:     make(map[TypeIndex]Visibility),
	}
}

// NewVertexType allocates a new vertex type backed by value type T and
// constructs its VertexVector at the element indexer's current
// capacity.
func NewVertexType[T valuetype.Value](s *Store, vis Visibility) (TypeIndex, error) {
	assigned, err := s.typeIndexer.NewIndex()
	if err != nil {
		return 0, fmt.Errorf("vertex.NewVertexType: %w", err)
	}

	vv, err := newVertexVector[T](s.elementIndexer.IndexCapacity())
	if err != nil {
		s.typeIndexer.FreeIndexUnchecked(assigned.Index)
		return 0, fmt.Errorf("vertex.NewVertexType: %w", err)
	}

	ti := TypeIndex(assigned.Index)
	s.slots[ti] = &vectorBox[T]{v: vv}
	s.visibility[ti] = vis

	return ti, nil
}

// DeleteVertexType frees a vertex type and releases its VertexVector.
func (s *Store) DeleteVertexType(t TypeIndex) error {
	if err := s.typeIndexer.FreeValidIndex(index.Index(t)); err != nil {
		return fmt.Errorf("vertex.DeleteVertexType: %w", ErrTypeIndexNotValid)
	}

	delete(s.slots, t)
	delete(s.visibility, t)

	return nil
}

// NewVertexIndex allocates a new vertex identifier on the element
// axis. The caller (Graph) is responsible for resizing every
// VertexVector and adjacency matrix when AssignedIndex.NewCapacity is
// non-nil, before the index is considered published.
func (s *Store) NewVertexIndex() (index.AssignedIndex, error) {
	assigned, err := s.elementIndexer.NewIndex()
	if err != nil {
		return index.AssignedIndex{}, fmt.Errorf("vertex.NewVertexIndex: %w", err)
	}

	return assigned, nil
}

// ResizeVertexVectors grows every live VertexVector to length n. Called
// by Graph immediately after the element indexer reports capacity
// growth, to keep every vector's length coupled to it.
func (s *Store) ResizeVertexVectors(n index.Index) error {
	for t, h := range s.slots {
		if err := h.resize(n); err != nil {
			return fmt.Errorf("vertex.ResizeVertexVectors: type %d: %w", t, err)
		}
	}

	return nil
}

// deleteVertexElementValues drops vertex v's value from every vertex
// type (used by DeleteVertexForAllTypes), without touching the element
// indexer itself.
func (s *Store) deleteVertexElementValues(v Index) error {
	for t, h := range s.slots {
		if err := h.dropElement(index.Index(v)); err != nil {
			return fmt.Errorf("vertex.deleteVertexElementValues: type %d: %w", t, err)
		}
	}

	return nil
}

// SnapshotVertexValues captures, for every live vertex type, the value
// at v, and returns one restore closure per type. Used by
// graph.Transaction to make DropVertexIndex revertible.
func (s *Store) SnapshotVertexValues(v Index) ([]func() error, error) {
	restores := make([]func() error, 0, len(s.slots))
	for t, h := range s.slots {
		restore, err := h.snapshotElement(index.Index(v))
		if err != nil {
			return nil, fmt.Errorf("vertex.SnapshotVertexValues: type %d: %w", t, err)
		}
		restores = append(restores, restore)
	}

	return restores, nil
}

// DeleteVertexForAllTypes clears vertex v's value in every vertex
// vector and frees v on the element indexer (the vertex-store half of
// dropping a vertex outright; Graph.DropVertexIndex pairs this with
// the edge-store equivalent).
func (s *Store) DeleteVertexForAllTypes(v Index) error {
	if err := s.deleteVertexElementValues(v); err != nil {
		return err
	}

	if err := s.elementIndexer.FreeValidIndex(index.Index(v)); err != nil {
		return fmt.Errorf("vertex.DeleteVertexForAllTypes: %w", ErrVertexIndexNotValid)
	}

	return nil
}

// DeleteVertexTypeUnchecked frees t and discards its slot without
// checking liveness first. Used by graph.Transaction to undo a
// NewVertexType call within the same transaction: a type born inside
// an aborted transaction never existed, so its inverse discards the
// type and its VertexVector outright rather than restoring anything.
func (s *Store) DeleteVertexTypeUnchecked(t TypeIndex) {
	s.typeIndexer.FreeIndexUnchecked(index.Index(t))
	delete(s.slots, t)
	delete(s.visibility, t)
}

// DeleteVertexTypeForTransaction deletes t and returns a closure that
// fully restores it (handle, visibility, and indexer liveness) to its
// pre-delete state. For graph.Transaction rollback of a
// DeleteVertexType call within the same transaction.
func (s *Store) DeleteVertexTypeForTransaction(t TypeIndex) (func() error, error) {
	h, ok := s.slots[t]
	if !ok {
		return nil, fmt.Errorf("vertex.DeleteVertexTypeForTransaction: %w", ErrTypeIndexNotValid)
	}
	vis := s.visibility[t]

	if err := s.DeleteVertexType(t); err != nil {
		return nil, err
	}

	return func() error {
		s.typeIndexer.RestoreIndex(index.Index(t))
		s.slots[t] = h
		s.visibility[t] = vis

		return nil
	}, nil
}

// IsValidType reports whether t currently names a live vertex type.
func (s *Store) IsValidType(t TypeIndex) bool { return s.typeIndexer.IsValid(index.Index(t)) }

// IsValidVertex reports whether v currently names a live vertex.
func (s *Store) IsValidVertex(v Index) bool { return s.elementIndexer.IsValid(index.Index(v)) }

// VertexCapacity returns the element axis's current capacity — the
// length every VertexVector and, via the Graph, every adjacency
// matrix's order must match.
func (s *Store) VertexCapacity() index.Index { return s.elementIndexer.IndexCapacity() }

// TypeIndexer and ElementIndexer expose the underlying Indexers for
// Graph's transaction log to record inverse operations against:
// restoring freed indices and shrinking capacity on rollback both need
// direct Indexer access that no other Store method exposes.
func (s *Store) TypeIndexer() *index.Indexer    { return s.typeIndexer }
func (s *Store) ElementIndexer() *index.Indexer { return s.elementIndexer }

// PublicTypeIndices returns every live vertex type index created with
// Visibility Public, skipping Private ones.
func (s *Store) PublicTypeIndices() []TypeIndex {
	out := make([]TypeIndex, 0, len(s.slots))
	for t := range s.slots {
		if s.visibility[t] == Public {
			out = append(out, t)
		}
	}

	return out
}

// vectorRefChecked returns the typed VertexVector at t, validating both
// that t is a live type and that its recorded value type matches T.
func vectorRefChecked[T valuetype.Value](s *Store, t TypeIndex) (*VertexVector[T], error) {
	if !s.IsValidType(t) {
		return nil, fmt.Errorf("vertex.VertexVectorRef: %w", ErrTypeIndexNotValid)
	}

	return vectorRefUnchecked[T](s, t)
}

// vectorRefUnchecked skips the liveness check (used internally once a
// caller has already established t is valid, e.g. by vectorRefChecked
// after its own liveness check).
func vectorRefUnchecked[T valuetype.Value](s *Store, t TypeIndex) (*VertexVector[T], error) {
	h, ok := s.slots[t]
	if !ok {
		return nil, fmt.Errorf("vertex.VertexVectorRef: %w", ErrTypeIndexNotValid)
	}

	b, ok := h.(*vectorBox[T])
	if !ok {
		return nil, fmt.Errorf("vertex.VertexVectorRef: want %s, have %s: %w", valuetype.KindOf[T](), h.kind(), ErrDomainMismatch)
	}

	return b.v, nil
}

// VertexVectorRef returns the VertexVector of type T at vertex type t,
// erroring if t is not live or was created with a different value
// type.
func VertexVectorRef[T valuetype.Value](s *Store, t TypeIndex) (*VertexVector[T], error) {
	return vectorRefChecked[T](s, t)
}

// VertexVectorRefUnchecked is VertexVectorRef without the liveness
// check, for callers that have already validated t as part of a
// larger, multi-argument check. The operator dispatcher uses the
// checked VertexVectorRef.
func VertexVectorRefUnchecked[T valuetype.Value](s *Store, t TypeIndex) (*VertexVector[T], error) {
	return vectorRefUnchecked[T](s, t)
}

// SetVertex stores value at (t, v), creating the stored value if
// absent and overwriting it otherwise.
func SetVertex[T valuetype.Value](s *Store, t TypeIndex, v Index, value T) error {
	vv, err := vectorRefChecked[T](s, t)
	if err != nil {
		return err
	}
	if !s.IsValidVertex(v) {
		return fmt.Errorf("vertex.SetVertex: %w", ErrVertexIndexNotValid)
	}

	return vv.SetElement(v, value)
}

// UpdateVertex overwrites an existing value at (t, v); unlike
// SetVertex it fails with ErrElementNotPresent if v carries no value
// of type t yet, for callers that need to distinguish "overwrite" from
// "create".
func UpdateVertex[T valuetype.Value](s *Store, t TypeIndex, v Index, value T) error {
	vv, err := vectorRefChecked[T](s, t)
	if err != nil {
		return err
	}
	if !s.IsValidVertex(v) {
		return fmt.Errorf("vertex.UpdateVertex: %w", ErrVertexIndexNotValid)
	}

	present, err := vv.IsElement(v)
	if err != nil {
		return err
	}
	if !present {
		return fmt.Errorf("vertex.UpdateVertex: %w", ErrElementNotPresent)
	}

	return vv.SetElement(v, value)
}

// DeleteVertexElement drops the value at (t, v) in a single vertex
// type's vector, leaving the vertex itself (and its values in other
// types) untouched.
func DeleteVertexElement[T valuetype.Value](s *Store, t TypeIndex, v Index) error {
	vv, err := vectorRefChecked[T](s, t)
	if err != nil {
		return err
	}

	return vv.DropElement(v)
}

// VertexValue reads the value at (t, v), returning ok=false if absent.
func VertexValue[T valuetype.Value](s *Store, t TypeIndex, v Index) (value T, ok bool, err error) {
	vv, err := vectorRefChecked[T](s, t)
	if err != nil {
		return value, false, err
	}

	return vv.GetElement(v)
}
