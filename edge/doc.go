// SPDX-License-Identifier: MIT
//
// Package edge holds per-edge-type adjacency storage: one weighted
// adjacency matrix per live edge type, all square and kept at a common
// order (the vertex capacity), plus the Indexer that assigns the dense
// edge-type identifiers used to index into them.
package edge
