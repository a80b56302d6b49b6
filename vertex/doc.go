// SPDX-License-Identifier: MIT
//
// Package vertex holds per-vertex-type attribute storage: one sparse
// VertexVector[T] per live vertex type, all kept at a common length
// (the vertex capacity), plus the two Indexers (vertex-type axis,
// vertex-element axis) that assign the dense identifiers used to index
// into them.
package vertex
