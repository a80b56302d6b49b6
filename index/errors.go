// SPDX-License-Identifier: MIT
package index

import "errors"

// Sentinel errors returned by Indexer operations. Wrap with
// fmt.Errorf("%s: %w", op, ErrX) at call sites that need extra context;
// callers match with errors.Is.
var (
	// ErrIndexOutOfBounds is returned when an index exceeds the current
	// mask length.
	ErrIndexOutOfBounds = errors.New("index: out of bounds")

	// ErrIndexNotValid is returned when an index is within bounds but
	// its validity bit is clear.
	ErrIndexNotValid = errors.New("index: not valid")

	// ErrCapacityExhausted is returned when NewIndex needs to grow but
	// the configured maximum capacity has already been reached.
	ErrCapacityExhausted = errors.New("index: capacity exhausted")
)
