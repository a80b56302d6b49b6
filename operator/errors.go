// SPDX-License-Identifier: MIT
package operator

import "errors"

var (
	// ErrOverlappingSlots is returned when an argument and the product
	// of an operator call resolve to the same underlying vector/matrix
	// slot, and the operator family does not declare in-place support.
	// Transpose is the one family that declares in-place support.
	ErrOverlappingSlots = errors.New("operator: argument and product overlap a slot that does not support in-place evaluation")
)
