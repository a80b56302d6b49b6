// SPDX-License-Identifier: MIT
package vertex

import "github.com/katalvlaran/lagraph/index"

// Index identifies a vertex element. It is a distinct defined type over
// index.Index so a vertex index cannot be passed where a TypeIndex (or
// an edge.TypeIndex) is expected without an explicit conversion —
// per-axis newtypes as compile-time guardrails against mixing up what
// are otherwise all just integers.
type Index index.Index

// TypeIndex identifies a vertex type (the bucket one VertexVector
// belongs to).
type TypeIndex index.Index

// Visibility marks a vertex type as enumerable from public listings or
// not. Private types still participate fully in capacity coupling and
// transactions; only PublicTypeIndices omits them.
type Visibility uint8

const (
	Public Visibility = iota
	Private
)
