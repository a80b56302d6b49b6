// SPDX-License-Identifier: MIT
package traverse

import (
	"fmt"

	"github.com/katalvlaran/lagraph/backend"
	"github.com/katalvlaran/lagraph/edge"
	"github.com/katalvlaran/lagraph/graph"
	"github.com/katalvlaran/lagraph/operator"
	"github.com/katalvlaran/lagraph/vertex"
)

// Levels is the result of a BFS: the hop-distance from the source to
// every vertex it reached. A vertex absent from Level was never
// reached.
type Levels struct {
	Source vertex.Index
	Level  map[vertex.Index]int
}

// IsReachable reports whether v was reached from Source.
func (l *Levels) IsReachable(v vertex.Index) bool {
	_, ok := l.Level[v]
	return ok
}

// Depth returns the maximum level recorded in Level: 0 if only Source
// was reached, or -1 if Level is empty (which cannot happen for a
// Levels returned by BFS, since Source is recorded at level 0).
func (l *Levels) Depth() int {
	max := -1
	for _, d := range l.Level {
		if d > max {
			max = d
		}
	}
	return max
}

// BFS computes hop-distances from source over edgeType's adjacency
// relation, treated as a boolean reachability matrix regardless of
// edgeType's declared weight type: the Multiply family applies
// independently of the stored domain, and BFS only asks "is there
// an edge", which is exactly the OR-AND boolean semiring.
//
// Each round computes frontier' = frontier · A under LorLand, masked
// by the complement of the visited set, via one graph.VxM call (the
// operator package's VxM family) — not a hand-rolled queue.
func BFS(g *graph.Graph, edgeType edge.TypeIndex, source vertex.Index) (*Levels, error) {
	if !g.IsValidVertex(source) {
		return nil, fmt.Errorf("traverse.BFS: %w", vertex.ErrVertexIndexNotValid)
	}
	if !g.IsValidEdgeType(edgeType) {
		return nil, fmt.Errorf("traverse.BFS: %w", edge.ErrTypeIndexNotValid)
	}

	visited, err := graph.NewVertexType[bool](g, vertex.Private)
	if err != nil {
		return nil, fmt.Errorf("traverse.BFS: %w", err)
	}
	defer func() { _ = g.DeleteVertexType(visited) }()

	frontierA, err := graph.NewVertexType[bool](g, vertex.Private)
	if err != nil {
		return nil, fmt.Errorf("traverse.BFS: %w", err)
	}
	defer func() { _ = g.DeleteVertexType(frontierA) }()

	frontierB, err := graph.NewVertexType[bool](g, vertex.Private)
	if err != nil {
		return nil, fmt.Errorf("traverse.BFS: %w", err)
	}
	defer func() { _ = g.DeleteVertexType(frontierB) }()

	levels := &Levels{Source: source, Level: map[vertex.Index]int{source: 0}}

	if err := graph.SetVertex[bool](g, visited, source, true); err != nil {
		return nil, fmt.Errorf("traverse.BFS: %w", err)
	}
	if err := graph.SetVertex[bool](g, frontierA, source, true); err != nil {
		return nil, fmt.Errorf("traverse.BFS: %w", err)
	}

	current, next := frontierA, frontierB
	semiring := backend.LorLandSemiring()

	for depth := 1; ; depth++ {
		opts := operator.MatrixArgOptions{Options: operator.Options{
			ClearOutputBeforeUse: true,
			UseMaskStructureOnly: true,
			UseMaskComplement:    true,
		}}
		if err := graph.VxM[bool, bool, bool](g, next, current, semiring, edgeType, nil, &visited, opts); err != nil {
			return nil, fmt.Errorf("traverse.BFS: %w", err)
		}

		nextVector, err := graph.VertexVector[bool](g, next)
		if err != nil {
			return nil, fmt.Errorf("traverse.BFS: %w", err)
		}
		indices, vals, err := backend.VectorExtractTuples(nextVector.Raw())
		if err != nil {
			return nil, fmt.Errorf("traverse.BFS: %w", err)
		}

		reached := 0
		for i, idx := range indices {
			if !vals[i] {
				continue
			}
			v := vertex.Index(idx)
			if _, already := levels.Level[v]; already {
				continue
			}
			levels.Level[v] = depth
			if err := graph.SetVertex[bool](g, visited, v, true); err != nil {
				return nil, fmt.Errorf("traverse.BFS: %w", err)
			}
			reached++
		}
		if reached == 0 {
			break
		}

		current, next = next, current
	}

	return levels, nil
}
