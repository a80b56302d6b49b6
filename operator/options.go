// SPDX-License-Identifier: MIT
package operator

import "github.com/katalvlaran/lagraph/backend"

// Options is the base operator options bundle, shared by every
// operator family.
type Options struct {
	ClearOutputBeforeUse bool
	UseMaskStructureOnly bool
	UseMaskComplement    bool
}

// MatrixArgOptions extends Options with a single transpose-argument
// flag, for operator families taking exactly one adjacency-matrix
// argument.
type MatrixArgOptions struct {
	Options
	TransposeArgument bool
}

// MatrixArgsOptions extends Options with independent transpose flags
// for left and right adjacency-matrix arguments. Single-transpose
// variants ("transpose just the left side", say) are just this
// bundle with one flag left false.
type MatrixArgsOptions struct {
	Options
	TransposeLeft  bool
	TransposeRight bool
}

func (o Options) descriptor() (*backend.Descriptor, error) {
	return backend.NewDescriptor(o.ClearOutputBeforeUse, o.UseMaskStructureOnly, o.UseMaskComplement, false, false)
}

func (o MatrixArgOptions) descriptor() (*backend.Descriptor, error) {
	return backend.NewDescriptor(o.ClearOutputBeforeUse, o.UseMaskStructureOnly, o.UseMaskComplement, o.TransposeArgument, false)
}

func (o MatrixArgsOptions) descriptor() (*backend.Descriptor, error) {
	return backend.NewDescriptor(o.ClearOutputBeforeUse, o.UseMaskStructureOnly, o.UseMaskComplement, o.TransposeLeft, o.TransposeRight)
}
