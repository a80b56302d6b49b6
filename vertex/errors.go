// SPDX-License-Identifier: MIT
package vertex

import "errors"

var (
	// ErrTypeIndexNotValid is returned when a vertex-type index does
	// not currently refer to a live type.
	ErrTypeIndexNotValid = errors.New("vertex: type index not valid")

	// ErrVertexIndexNotValid is returned when a vertex-element index
	// does not currently refer to a live vertex.
	ErrVertexIndexNotValid = errors.New("vertex: index not valid")

	// ErrDomainMismatch is returned when a caller's expected Go type T
	// does not match the value type a vertex type was created with.
	ErrDomainMismatch = errors.New("vertex: domain mismatch")

	// ErrElementNotPresent is returned by the "update" (as opposed to
	// "set") variant of a vertex write when no value is currently
	// stored at the target index.
	ErrElementNotPresent = errors.New("vertex: element not present")
)
