// SPDX-License-Identifier: MIT
//
// lagraphdemo builds a small graph, mutates it inside a transaction,
// and runs a BFS, to exercise the embedding API end to end. It is a
// demo binary only, not a product surface.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lagraph/edge"
	"github.com/katalvlaran/lagraph/graph"
	"github.com/katalvlaran/lagraph/traverse"
	"github.com/katalvlaran/lagraph/vertex"
)

func main() {
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if err := run(); err != nil {
		logrus.WithError(err).Error("lagraphdemo failed")
		os.Exit(1)
	}
}

func run() error {
	g := graph.New(
		graph.WithInitialVertexCapacity(4),
		graph.WithInitialVertexTypeCapacity(4),
		graph.WithInitialEdgeTypeCapacity(4),
		graph.WithMaxVertexCapacity(1<<16),
	)

	labels, err := graph.NewVertexType[int64](g, vertex.Public)
	if err != nil {
		return fmt.Errorf("new vertex type: %w", err)
	}
	roads, err := graph.NewEdgeType[float64](g, edge.Public)
	if err != nil {
		return fmt.Errorf("new edge type: %w", err)
	}

	var a, b, c vertex.Index
	err = graph.WithTransaction(g, func(tx *graph.Transaction) error {
		var terr error
		a, terr = tx.NewVertexIndex()
		if terr != nil {
			return terr
		}
		b, terr = tx.NewVertexIndex()
		if terr != nil {
			return terr
		}
		c, terr = tx.NewVertexIndex()
		if terr != nil {
			return terr
		}

		if terr = graph.TxSetVertex[int64](tx, labels, a, 1); terr != nil {
			return terr
		}
		if terr = graph.TxSetVertex[int64](tx, labels, b, 2); terr != nil {
			return terr
		}
		if terr = graph.TxSetVertex[int64](tx, labels, c, 3); terr != nil {
			return terr
		}

		if terr = graph.TxNewEdge[float64](tx, roads, a, b, 4.2); terr != nil {
			return terr
		}
		if terr = graph.TxNewEdge[float64](tx, roads, b, c, 1.1); terr != nil {
			return terr
		}

		return nil
	})
	if err != nil && !errors.Is(err, graph.ErrAborted) {
		return fmt.Errorf("seed transaction: %w", err)
	}

	levels, err := traverse.BFS(g, roads, a)
	if err != nil {
		return fmt.Errorf("bfs: %w", err)
	}

	for _, v := range []vertex.Index{a, b, c} {
		label, _, verr := graph.VertexValue[int64](g, labels, v)
		if verr != nil {
			return fmt.Errorf("vertex value: %w", verr)
		}
		depth, reached := levels.Level[v]
		logrus.WithFields(logrus.Fields{
			"vertex":    uint64(v),
			"label":     label,
			"reachable": reached,
			"depth":     depth,
		}).Info("bfs result")
	}

	return nil
}
