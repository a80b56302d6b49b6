// SPDX-License-Identifier: MIT
package graph

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lagraph/edge"
	"github.com/katalvlaran/lagraph/index"
	"github.com/katalvlaran/lagraph/operator"
	"github.com/katalvlaran/lagraph/valuetype"
	"github.com/katalvlaran/lagraph/vertex"
)

// Graph owns a vertex.Store and an edge.Store, preserves the
// capacity-coupling invariant between them, and exposes the operator
// dispatch surface. It carries no internal mutex: the core is
// single-threaded cooperative within one Graph; single-writer
// discipline is a caller obligation, enforced only at the
// WithTransaction boundary via Go's ordinary exclusive-reference rules.
type Graph struct {
	id uuid.UUID

	vertices   *vertex.Store
	edges      *edge.Store
	dispatcher *operator.Dispatcher

	logger *logrus.Logger
	log    *logrus.Entry

	// txActive guards against a nested WithTransaction call on the same
	// Graph. A nested transaction's rollback closures capture state
	// relative to the inner transaction's own start, not the outer
	// one's; replaying them during an outer abort would restore
	// capacity and indices to the wrong baseline and corrupt the
	// capacity-coupling invariant out from under already-committed
	// inner work. Rejecting re-entry outright avoids that case
	// entirely rather than trying to reconcile two overlapping logs.
	txActive bool
}

// config holds the values New's defaults and Option list populate
// before a Graph is constructed.
type config struct {
	initialVertexCapacity     index.Index
	initialVertexTypeCapacity index.Index
	initialEdgeTypeCapacity   index.Index
	maxVertexCapacity         index.Index
	logger                    *logrus.Logger
}

// Option configures a Graph before construction, mirroring lvlath's
// core.GraphOption pattern: a function applied left to right over a
// zero-value config.
type Option func(*config)

// WithInitialVertexCapacity sets the vertex-element axis's starting
// capacity (default 0).
func WithInitialVertexCapacity(n index.Index) Option {
	return func(c *config) { c.initialVertexCapacity = n }
}

// WithMaxVertexCapacity bounds the vertex-element axis's doubling
// growth. Omitted or 0 leaves it effectively unbounded.
func WithMaxVertexCapacity(n index.Index) Option {
	return func(c *config) { c.maxVertexCapacity = n }
}

// WithInitialVertexTypeCapacity sets the vertex-type axis's starting
// capacity (default 0).
func WithInitialVertexTypeCapacity(n index.Index) Option {
	return func(c *config) { c.initialVertexTypeCapacity = n }
}

// WithInitialEdgeTypeCapacity sets the edge-type axis's starting
// capacity (default 0).
func WithInitialEdgeTypeCapacity(n index.Index) Option {
	return func(c *config) { c.initialEdgeTypeCapacity = n }
}

// WithLogger overrides the *logrus.Logger a Graph derives its
// graph_id-scoped Entry from. Defaults to logrus.StandardLogger().
func WithLogger(l *logrus.Logger) Option {
	return func(c *config) { c.logger = l }
}

// New constructs a Graph from the given Options. Every axis defaults
// to 0 and every growth bound defaults to unbounded. Growth doubles
// the current capacity, so an axis left at 0 never grows: its first
// allocation fails with CapacityExhausted.
func New(opts ...Option) *Graph {
	c := &config{logger: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(c)
	}

	maxVertexCapacity := c.maxVertexCapacity
	if maxVertexCapacity == 0 {
		maxVertexCapacity = ^index.Index(0)
	}

	vs := vertex.NewStore(c.initialVertexCapacity, maxVertexCapacity, c.initialVertexTypeCapacity)
	es := edge.NewStore(c.initialEdgeTypeCapacity)

	id := uuid.New()
	g := &Graph{
		id:         id,
		vertices:   vs,
		edges:      es,
		dispatcher: &operator.Dispatcher{Vertices: vs, Edges: es},
		logger:     c.logger,
		log:        c.logger.WithField("graph_id", id.String()),
	}
	g.log.WithFields(logrus.Fields{
		"initial_vertex_capacity":      uint64(c.initialVertexCapacity),
		"initial_vertex_type_capacity": uint64(c.initialVertexTypeCapacity),
		"initial_edge_type_capacity":   uint64(c.initialEdgeTypeCapacity),
	}).Debug("graph created")

	return g
}

// ID returns the Graph's correlation identifier, used only in log
// fields — never as an index or a substitute for index.Index identity.
func (g *Graph) ID() uuid.UUID { return g.id }

// Dispatcher exposes the operator package's entry point directly, for
// callers that want a §4.G operator family not wrapped by a Graph
// convenience method.
func (g *Graph) Dispatcher() *operator.Dispatcher { return g.dispatcher }

// NewVertexType creates a new vertex type of value type T on g.
// It is a package-level function,
// not a Graph method, because Go methods cannot carry their own type
// parameters.
func NewVertexType[T valuetype.Value](g *Graph, vis vertex.Visibility) (vertex.TypeIndex, error) {
	ti, err := vertex.NewVertexType[T](g.vertices, vis)
	if err != nil {
		return 0, classify("NewVertexType", err)
	}
	g.log.WithField("vertex_type", uint64(ti)).Debug("vertex type created")

	return ti, nil
}

// NewEdgeType creates a new edge type of weight type T on g, allocated
// at g's current vertex capacity.
func NewEdgeType[T valuetype.Value](g *Graph, vis edge.Visibility) (edge.TypeIndex, error) {
	ei, err := edge.NewEdgeType[T](g.edges, vis, g.vertices.VertexCapacity())
	if err != nil {
		return 0, classify("NewEdgeType", err)
	}
	g.log.WithField("edge_type", uint64(ei)).Debug("edge type created")

	return ei, nil
}

// DeleteVertexType frees a vertex type and its VertexVector.
func (g *Graph) DeleteVertexType(t vertex.TypeIndex) error {
	if err := g.vertices.DeleteVertexType(t); err != nil {
		return classify("DeleteVertexType", err)
	}

	return nil
}

// DeleteEdgeType frees an edge type and its adjacency matrix.
func (g *Graph) DeleteEdgeType(e edge.TypeIndex) error {
	if err := g.edges.DeleteEdgeType(e); err != nil {
		return classify("DeleteEdgeType", err)
	}

	return nil
}

// NewVertexIndex allocates a new vertex identifier, resizing every
// live vertex vector and adjacency matrix if capacity grew: growth
// resizes every adjacency matrix before the new index is returned.
func (g *Graph) NewVertexIndex() (vertex.Index, error) {
	assigned, err := g.vertices.NewVertexIndex()
	if err != nil {
		return 0, classify("NewVertexIndex", err)
	}

	if assigned.NewCapacity != nil {
		n := *assigned.NewCapacity
		if err := g.vertices.ResizeVertexVectors(n); err != nil {
			return 0, classify("NewVertexIndex", err)
		}
		if err := g.edges.ResizeAdjacencyMatrices(n); err != nil {
			return 0, classify("NewVertexIndex", err)
		}
		g.log.WithField("new_capacity", uint64(n)).Debug("vertex capacity grew")
	}

	return vertex.Index(assigned.Index), nil
}

// DropVertexIndex deletes v from the graph entirely: clears every edge
// touching v (as tail or head) in every live adjacency matrix, then
// clears v's value in every vertex vector and frees v on the element
// indexer. Edge cleanup happens
// before the indexer free so no observer can see a live index whose
// edges have not yet been cleared.
func (g *Graph) DropVertexIndex(v vertex.Index) error {
	if err := g.edges.DeleteVertexConnections(index.Index(v)); err != nil {
		return classify("DropVertexIndex", err)
	}
	if err := g.vertices.DeleteVertexForAllTypes(v); err != nil {
		return classify("DropVertexIndex", err)
	}

	return nil
}

// SetVertex stores value at (t, v).
func SetVertex[T valuetype.Value](g *Graph, t vertex.TypeIndex, v vertex.Index, value T) error {
	if err := vertex.SetVertex[T](g.vertices, t, v, value); err != nil {
		return classify("SetVertex", err)
	}

	return nil
}

// DeleteVertexValue drops the value at (t, v) in a single vertex type.
func DeleteVertexValue[T valuetype.Value](g *Graph, t vertex.TypeIndex, v vertex.Index) error {
	if err := vertex.DeleteVertexElement[T](g.vertices, t, v); err != nil {
		return classify("DeleteVertexValue", err)
	}

	return nil
}

// VertexValue reads the value at (t, v).
func VertexValue[T valuetype.Value](g *Graph, t vertex.TypeIndex, v vertex.Index) (value T, ok bool, err error) {
	value, ok, err = vertex.VertexValue[T](g.vertices, t, v)
	if err != nil {
		return value, false, classify("VertexValue", err)
	}

	return value, ok, nil
}

// NewEdge stores weight at (e, tail, head), creating the edge if
// absent.
func NewEdge[T valuetype.Value](g *Graph, e edge.TypeIndex, tail, head vertex.Index, weight T) error {
	if err := edge.SetEdgeWeight[T](g.edges, e, index.Index(tail), index.Index(head), weight); err != nil {
		return classify("NewEdge", err)
	}

	return nil
}

// DeleteEdge removes the edge at (e, tail, head) if one exists.
func DeleteEdge[T valuetype.Value](g *Graph, e edge.TypeIndex, tail, head vertex.Index) error {
	if err := edge.DeleteEdge[T](g.edges, e, index.Index(tail), index.Index(head)); err != nil {
		return classify("DeleteEdge", err)
	}

	return nil
}

// EdgeWeight reads the weight at (e, tail, head).
func EdgeWeight[T valuetype.Value](g *Graph, e edge.TypeIndex, tail, head vertex.Index) (weight T, ok bool, err error) {
	weight, ok, err = edge.GetEdgeWeight[T](g.edges, e, index.Index(tail), index.Index(head))
	if err != nil {
		return weight, false, classify("EdgeWeight", err)
	}

	return weight, ok, nil
}

// VertexVector returns the VertexVector of type T at vertex type t.
func VertexVector[T valuetype.Value](g *Graph, t vertex.TypeIndex) (*vertex.VertexVector[T], error) {
	vv, err := vertex.VertexVectorRef[T](g.vertices, t)
	if err != nil {
		return nil, classify("VertexVector", err)
	}

	return vv, nil
}

// AdjacencyMatrix returns the WeightedAdjacencyMatrix of type T at
// edge type e.
func AdjacencyMatrix[T valuetype.Value](g *Graph, e edge.TypeIndex) (*edge.WeightedAdjacencyMatrix[T], error) {
	m, err := edge.AdjacencyMatrixRef[T](g.edges, e)
	if err != nil {
		return nil, classify("AdjacencyMatrix", err)
	}

	return m, nil
}

// IsValidVertex reports whether v currently names a live vertex.
func (g *Graph) IsValidVertex(v vertex.Index) bool { return g.vertices.IsValidVertex(v) }

// IsValidVertexType reports whether t currently names a live vertex type.
func (g *Graph) IsValidVertexType(t vertex.TypeIndex) bool { return g.vertices.IsValidType(t) }

// IsValidEdgeType reports whether e currently names a live edge type.
func (g *Graph) IsValidEdgeType(e edge.TypeIndex) bool { return g.edges.IsValidType(e) }

// VertexCapacity returns the vertex-element axis's current capacity.
func (g *Graph) VertexCapacity() index.Index { return g.vertices.VertexCapacity() }
