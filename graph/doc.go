// SPDX-License-Identifier: MIT
//
// Package graph owns a vertex.Store and an edge.Store, enforces the
// capacity-coupling invariant between them, and exposes the operator
// dispatch surface callers drive the engine through, plus the
// single-writer transaction layer with rollback-on-abort.
package graph
