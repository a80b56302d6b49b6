// SPDX-License-Identifier: MIT
package valuetype_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lagraph/valuetype"
)

func TestKindOf(t *testing.T) {
	require.Equal(t, valuetype.Bool, valuetype.KindOf[bool]())
	require.Equal(t, valuetype.Int64, valuetype.KindOf[int64]())
	require.Equal(t, valuetype.Uint8, valuetype.KindOf[uint8]())
	require.Equal(t, valuetype.Float64, valuetype.KindOf[float64]())
	require.Equal(t, "float64", valuetype.Float64.String())
	require.Equal(t, "int", valuetype.Int.String())
}
