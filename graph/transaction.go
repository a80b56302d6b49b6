// SPDX-License-Identifier: MIT
package graph

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/lagraph/edge"
	"github.com/katalvlaran/lagraph/index"
	"github.com/katalvlaran/lagraph/valuetype"
	"github.com/katalvlaran/lagraph/vertex"
)

// Transaction records the inverse of every mutation applied through it,
// in the order the mutations happened, so an abort can replay that log
// in strict LIFO order and return g to its pre-transaction state —
// closures over a LIFO log, not a materialized snapshot. A Transaction carries no
// lock of its own: g's single-writer discipline is the caller's
// obligation for the transaction's whole duration.
type Transaction struct {
	g  *Graph
	id uuid.UUID

	log []func() error
}

// ID returns the Transaction's correlation identifier, used only in
// log fields.
func (tx *Transaction) ID() uuid.UUID { return tx.id }

// push appends an inverse operation to the log. Operations in this
// file call it themselves immediately after the forward mutation they
// wrap succeeds; a forward mutation that fails pushes nothing.
func (tx *Transaction) push(inverse func() error) {
	tx.log = append(tx.log, inverse)
}

// WithTransaction runs fn against a fresh Transaction over g. If fn
// returns nil, the log is discarded and every mutation fn made stands
// (commit). If fn returns a non-nil error — including ErrAborted,
// which fn can return to abort deliberately — every inverse in the log
// is replayed in LIFO order and that error is returned to the caller.
// A replay failure means the Graph's own invariants
// broke between the forward operation and its inverse, which is a
// programming error, not a recoverable condition: it panics rather
// than returning a half-rolled-back Graph.
func WithTransaction(g *Graph, fn func(tx *Transaction) error) error {
	if g.txActive {
		return classify("WithTransaction", ErrNestedTransactionNotSupported)
	}
	g.txActive = true
	defer func() { g.txActive = false }()

	tx := &Transaction{g: g, id: uuid.New()}
	log := g.log.WithField("tx_id", tx.id.String())

	err := fn(tx)
	if err == nil {
		log.Debug("transaction committed")

		return nil
	}

	log.WithError(err).Debug("transaction aborting")
	for i := len(tx.log) - 1; i >= 0; i-- {
		if rerr := tx.log[i](); rerr != nil {
			panic(fmt.Errorf("graph: transaction rollback failed: %w", rerr))
		}
	}
	log.Debug("transaction rolled back")

	return err
}

// TxNewVertexType creates a new vertex type within tx, undone on abort
// by discarding the type outright (a type born inside an aborted
// transaction never existed).
func TxNewVertexType[T valuetype.Value](tx *Transaction, vis vertex.Visibility) (vertex.TypeIndex, error) {
	g := tx.g

	ti, err := vertex.NewVertexType[T](g.vertices, vis)
	if err != nil {
		return 0, classify("NewVertexType", err)
	}
	tx.push(func() error {
		g.vertices.DeleteVertexTypeUnchecked(ti)
		return nil
	})
	g.log.WithField("vertex_type", uint64(ti)).Debug("vertex type created")

	return ti, nil
}

// TxNewEdgeType creates a new edge type within tx, undone on abort by
// discarding the type outright.
func TxNewEdgeType[T valuetype.Value](tx *Transaction, vis edge.Visibility) (edge.TypeIndex, error) {
	g := tx.g

	ei, err := edge.NewEdgeType[T](g.edges, vis, g.vertices.VertexCapacity())
	if err != nil {
		return 0, classify("NewEdgeType", err)
	}
	tx.push(func() error {
		g.edges.DeleteEdgeTypeUnchecked(ei)
		return nil
	})
	g.log.WithField("edge_type", uint64(ei)).Debug("edge type created")

	return ei, nil
}

// DeleteVertexType deletes a vertex type within tx, undone on abort
// by reinstating the exact VertexVector and visibility it had.
func (tx *Transaction) DeleteVertexType(t vertex.TypeIndex) error {
	g := tx.g

	restore, err := g.vertices.DeleteVertexTypeForTransaction(t)
	if err != nil {
		return classify("DeleteVertexType", err)
	}
	tx.push(restore)

	return nil
}

// DeleteEdgeType deletes an edge type within tx, undone on abort by
// reinstating the exact WeightedAdjacencyMatrix it had.
func (tx *Transaction) DeleteEdgeType(e edge.TypeIndex) error {
	g := tx.g

	restore, err := g.edges.DeleteEdgeTypeForTransaction(e)
	if err != nil {
		return classify("DeleteEdgeType", err)
	}
	tx.push(restore)

	return nil
}

// NewVertexIndex allocates a new vertex identifier within tx, undone
// on abort by freeing the index again and, if allocating it grew
// capacity, restoring the element indexer's logical capacity to what
// it was before. Rollback deliberately does not shrink the physical
// VertexVector/WeightedAdjacencyMatrix storage that growth resized: the
// capacity-coupling invariant is a lower bound enforced on growth, not
// an upper bound, so leftover headroom after a rollback is surplus,
// not a violation.
func (tx *Transaction) NewVertexIndex() (vertex.Index, error) {
	g := tx.g
	capBefore := g.vertices.VertexCapacity()

	v, err := g.NewVertexIndex()
	if err != nil {
		return 0, err
	}

	tx.push(func() error {
		g.vertices.ElementIndexer().FreeIndexUnchecked(index.Index(v))
		if g.vertices.VertexCapacity() != capBefore {
			g.vertices.ElementIndexer().RestoreCapacity(capBefore)
		}

		return nil
	})

	return v, nil
}

// DropVertexIndex deletes v within tx, undone on abort by restoring
// every edge touching v and every per-type value v carried, then
// re-validating v on the element indexer.
func (tx *Transaction) DropVertexIndex(v vertex.Index) error {
	g := tx.g

	valueRestores, err := g.vertices.SnapshotVertexValues(v)
	if err != nil {
		return classify("DropVertexIndex", err)
	}
	connRestores, err := g.edges.SnapshotVertexConnections(index.Index(v))
	if err != nil {
		return classify("DropVertexIndex", err)
	}

	if err := g.DropVertexIndex(v); err != nil {
		return err
	}

	tx.push(func() error {
		g.vertices.ElementIndexer().RestoreIndex(index.Index(v))
		for _, restore := range valueRestores {
			if err := restore(); err != nil {
				return err
			}
		}
		for _, restore := range connRestores {
			if err := restore(); err != nil {
				return err
			}
		}

		return nil
	})

	return nil
}

// TxSetVertex stores value at (t, v) within tx, undone on abort by
// restoring whatever was there before — the old value if one was
// present, or removing the value again if (t, v) was absent.
func TxSetVertex[T valuetype.Value](tx *Transaction, t vertex.TypeIndex, v vertex.Index, value T) error {
	g := tx.g

	old, present, err := vertex.VertexValue[T](g.vertices, t, v)
	if err != nil {
		return classify("SetVertex", err)
	}

	if err := vertex.SetVertex[T](g.vertices, t, v, value); err != nil {
		return classify("SetVertex", err)
	}

	tx.push(func() error {
		if present {
			return vertex.SetVertex[T](g.vertices, t, v, old)
		}
		return vertex.DeleteVertexElement[T](g.vertices, t, v)
	})

	return nil
}

// TxDeleteVertexValue drops the value at (t, v) within tx, undone on
// abort by restoring it.
func TxDeleteVertexValue[T valuetype.Value](tx *Transaction, t vertex.TypeIndex, v vertex.Index) error {
	g := tx.g

	old, present, err := vertex.VertexValue[T](g.vertices, t, v)
	if err != nil {
		return classify("DeleteVertexValue", err)
	}
	if !present {
		return classify("DeleteVertexValue", vertex.ErrElementNotPresent)
	}

	if err := vertex.DeleteVertexElement[T](g.vertices, t, v); err != nil {
		return classify("DeleteVertexValue", err)
	}

	tx.push(func() error {
		return vertex.SetVertex[T](g.vertices, t, v, old)
	})

	return nil
}

// TxNewEdge stores weight at (e, tail, head) within tx, undone on abort
// by restoring whatever edge was there before (or removing it again if
// none was).
func TxNewEdge[T valuetype.Value](tx *Transaction, e edge.TypeIndex, tail, head vertex.Index, weight T) error {
	g := tx.g

	old, present, err := edge.GetEdgeWeight[T](g.edges, e, index.Index(tail), index.Index(head))
	if err != nil {
		return classify("NewEdge", err)
	}

	if err := edge.SetEdgeWeight[T](g.edges, e, index.Index(tail), index.Index(head), weight); err != nil {
		return classify("NewEdge", err)
	}

	tx.push(func() error {
		if present {
			return edge.SetEdgeWeight[T](g.edges, e, index.Index(tail), index.Index(head), old)
		}
		return edge.DeleteEdge[T](g.edges, e, index.Index(tail), index.Index(head))
	})

	return nil
}

// TxDeleteEdge removes the edge at (e, tail, head) within tx, undone on
// abort by restoring its weight.
func TxDeleteEdge[T valuetype.Value](tx *Transaction, e edge.TypeIndex, tail, head vertex.Index) error {
	g := tx.g

	old, present, err := edge.GetEdgeWeight[T](g.edges, e, index.Index(tail), index.Index(head))
	if err != nil {
		return classify("DeleteEdge", err)
	}
	if !present {
		return classify("DeleteEdge", edge.ErrElementNotPresent)
	}

	if err := edge.DeleteEdge[T](g.edges, e, index.Index(tail), index.Index(head)); err != nil {
		return classify("DeleteEdge", err)
	}

	tx.push(func() error {
		return edge.SetEdgeWeight[T](g.edges, e, index.Index(tail), index.Index(head), old)
	})

	return nil
}
