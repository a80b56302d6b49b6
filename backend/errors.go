// SPDX-License-Identifier: MIT
package backend

import (
	"errors"
	"fmt"

	"github.com/intel/forGraphBLASGo/GrB"
)

// ErrBackend wraps any error surfaced by the underlying GrB call that
// does not map to a more specific sentinel below. The graph package
// translates this, together with ErrDomainMismatch, into its own
// ErrorKind taxonomy; operator/ passes both through unchanged.
var ErrBackend = errors.New("backend: graphblas operation failed")

// ErrDomainMismatch is returned when GrB reports that an operator's
// declared domain is incompatible with an operand or the product.
var ErrDomainMismatch = errors.New("backend: domain mismatch")

// translate converts a raw GrB error into one of this package's
// sentinels: GrB.DomainMismatch becomes ErrDomainMismatch, anything
// else is wrapped in ErrBackend. It does not recover panics; each
// backend call defers guardPanic for that.
func translate(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, GrB.DomainMismatch) {
		return fmt.Errorf("backend.%s: %w", op, ErrDomainMismatch)
	}

	return fmt.Errorf("backend.%s: %w: %w", op, ErrBackend, err)
}

// guardPanic recovers a panic raised by a GrB call (OutOfMemory,
// InvalidObject, Panic per the GrB doc comments) and reports it through
// the usual (T, error) channel instead of unwinding the caller.
func guardPanic(op string, errp *error) {
	if r := recover(); r != nil {
		*errp = fmt.Errorf("backend.%s: %w: recovered panic: %v", op, ErrBackend, r)
	}
}
