// SPDX-License-Identifier: MIT
package edge

import "github.com/katalvlaran/lagraph/index"

// TypeIndex identifies an edge type (the bucket one
// WeightedAdjacencyMatrix belongs to).
type TypeIndex index.Index

// Visibility marks an edge type as enumerable from public listings or
// not, mirroring vertex.Visibility. Private types still participate
// fully in capacity coupling and transactions; only PublicTypeIndices
// omits them.
type Visibility uint8

const (
	Public Visibility = iota
	Private
)
