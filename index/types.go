// SPDX-License-Identifier: MIT
package index

// Index is a dense, non-negative, reusable integer identifier. It is
// used unchanged as a row/column index into sparse vectors and
// matrices held by the vertex and edge stores.
type Index uint64

// AssignedIndex is the result of allocating a new Index. NewCapacity is
// non-nil only when the allocation forced the indexer to grow its
// capacity, in which case the caller MUST propagate that new capacity
// to every dependent container (vertex vectors, adjacency matrices)
// before the index is handed to userland.
type AssignedIndex struct {
	Index       Index
	NewCapacity *Index
	IsReused    bool
}

// Stats is a read-only snapshot of an Indexer, useful for diagnostics
// and tests.
type Stats struct {
	NumberOfIndexedElements int
	IndexCapacity           Index
	HighWaterMark           Index
	FreeQueueLength         int
}
