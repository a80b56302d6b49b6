// SPDX-License-Identifier: MIT
package traverse

import (
	"context"
	"fmt"

	"github.com/intel/forGoParallel/parallel"

	"github.com/katalvlaran/lagraph/edge"
	"github.com/katalvlaran/lagraph/graph"
	"github.com/katalvlaran/lagraph/vertex"
)

// Reachable returns the set of vertices reachable from source over
// edgeType, source included.
func Reachable(g *graph.Graph, edgeType edge.TypeIndex, source vertex.Index) (map[vertex.Index]bool, error) {
	levels, err := BFS(g, edgeType, source)
	if err != nil {
		return nil, err
	}

	out := make(map[vertex.Index]bool, len(levels.Level))
	for v := range levels.Level {
		out[v] = true
	}

	return out, nil
}

// Query names one BFS to run: an independent Graph, the edge type to
// traverse on it, and the source vertex. ParallelReachable's fan-out
// unit — each Query is entirely self-contained, since a Graph carries
// no internal synchronization: parallelism is only safe across
// distinct Graph values, never within one.
type Query struct {
	Graph    *graph.Graph
	EdgeType edge.TypeIndex
	Source   vertex.Index
}

// ParallelReachable runs Reachable for every Query concurrently across
// forGoParallel's worker pool. Results are returned in the same
// order as queries; a query whose BFS fails reports that error in
// errs at the same index, leaving results[i] nil.
func ParallelReachable(ctx context.Context, queries []Query) (results []map[vertex.Index]bool, errs []error) {
	results = make([]map[vertex.Index]bool, len(queries))
	errs = make([]error, len(queries))

	err := parallel.Range(ctx, len(queries), func(low, high int) error {
		for i := low; i < high; i++ {
			q := queries[i]
			r, err := Reachable(q.Graph, q.EdgeType, q.Source)
			if err != nil {
				errs[i] = fmt.Errorf("traverse.ParallelReachable: query %d: %w", i, err)
				continue
			}
			results[i] = r
		}
		return nil
	})
	if err != nil {
		for i := range errs {
			if errs[i] == nil && results[i] == nil {
				errs[i] = fmt.Errorf("traverse.ParallelReachable: %w", err)
			}
		}
	}

	return results, errs
}
