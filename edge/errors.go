// SPDX-License-Identifier: MIT
package edge

import "errors"

var (
	// ErrTypeIndexNotValid is returned when an edge-type index does not
	// currently refer to a live edge type.
	ErrTypeIndexNotValid = errors.New("edge: type index not valid")

	// ErrDomainMismatch is returned when a caller's expected Go type T
	// does not match the weight type an edge type was created with.
	ErrDomainMismatch = errors.New("edge: domain mismatch")

	// ErrElementNotPresent is returned when an operation requires an
	// existing edge at (tail, head) and none is stored.
	ErrElementNotPresent = errors.New("edge: element not present")
)
