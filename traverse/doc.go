// SPDX-License-Identifier: MIT
//
// Package traverse implements read-only graph traversal on top of
// graph.Graph's operator dispatch surface, in the GraphBLAS idiom:
// BFS is level-synchronous frontier propagation via repeated
// OR-AND-semiring vector-matrix multiplies, not a hand-rolled queue
// walk over adjacency lists. It never mutates
// caller-visible Graph state; the private vertex types it allocates
// for frontier/visited bookkeeping are created and torn down within
// a single call.
package traverse
