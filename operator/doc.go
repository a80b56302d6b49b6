// SPDX-License-Identifier: MIT
//
// Package operator is the Graph's operator dispatcher:
// one family per GraphBLAS-style operator (Apply, element-wise Add and
// Multiply, Multiply, Select, Transpose, Extract), each with a single
// checked entry point that validates every type-index argument; the
// package has no unchecked variants. Every family resolves
// its type-index arguments to vertex.VertexVector/edge.
// WeightedAdjacencyMatrix references, resolves an optional mask, and
// invokes the matching backend applier.
package operator
