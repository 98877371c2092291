// SPDX-License-Identifier: MIT

package distribution

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPERTShape(t *testing.T) {
	t.Parallel()

	a, b, ok := pertShape(0.15, 0.2, 0.25, 4)
	require.True(t, ok)
	require.Equal(t, 3.0, a)
	require.Equal(t, 3.0, b)

	// mean = 1/6: α = 1, β = 5.
	a, b, ok = pertShape(0, 0, 1, 4)
	require.True(t, ok)
	require.InDelta(t, 1.0, a, 1e-12)
	require.InDelta(t, 5.0, b, 1e-12)

	_, _, ok = pertShape(0, 0.5, 1, -2)
	require.False(t, ok)
}
