// SPDX-License-Identifier: MIT
//
// Package backend adapts github.com/intel/forGraphBLASGo (package GrB,
// a cgo binding over SuiteSparse GraphBLAS) into the narrow surface
// this engine's stores and operator dispatcher need: generic sparse
// Vector[T]/Matrix[T] containers, and the operator/monoid/semiring
// handle types the operator package's families are built from.
//
// This is the external sparse linear-algebra backend the rest of the
// module treats as a dependency rather than reimplements; nothing in this
// package reimplements sparse linear algebra — every method is a thin,
// error-translating call into GrB.
package backend
