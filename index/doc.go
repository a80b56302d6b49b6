// SPDX-License-Identifier: MIT
//
// Package index assigns dense, reusable integer identifiers to named
// entities (vertex types, edge types, vertex elements) and tracks which
// identifiers are currently live.
//
// An Indexer owns three things: a validity mask (one bit per issued
// identifier), a FIFO queue of freed identifiers available for reuse,
// and a high-water mark beyond which no identifier has ever been
// assigned. Capacity grows by doubling (bounded by a configured
// maximum) whenever the high-water mark catches up to the mask length
// and the free queue is empty.
//
// Indexer itself is not safe for concurrent use; callers (graph.Graph,
// graph.Transaction) are responsible for single-writer discipline.
package index
