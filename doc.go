// Package lagraph is a typed, in-memory directed multigraph engine
// built on sparse linear algebra: vertices and edges live as typed
// attribute vectors and matrices indexed by dense integer IDs, and
// every bulk operation (apply, element-wise add/multiply, multiply,
// select, transpose, extract) runs as a GraphBLAS-style operator
// rather than a per-vertex loop.
//
// The engine is organized as:
//
//	index/     — slot-reusing integer ID allocation (vertex types, edge
//	             types, vertex elements), shared by every other package
//	valuetype/ — the closed set of scalar value/weight types recognized
//	             for vertex and edge attributes
//	backend/   — the sparse vector/matrix primitives and operator family
//	             wrappers, built on forGraphBLASGo
//	vertex/    — per-type vertex attribute storage (VertexVector)
//	edge/      — per-type weighted adjacency storage (WeightedAdjacencyMatrix)
//	operator/  — the checked operator dispatch surface over vertex/edge stores
//	graph/     — Graph: owns vertex/edge storage, keeps their capacities
//	             coupled, and exposes transactions with LIFO rollback
//	traverse/  — read-only BFS/reachability expressed as repeated
//	             boolean-semiring operator calls
//
// cmd/lagraphdemo is a demo binary exercising the above end to end; it
// is not a product surface.
package lagraph
