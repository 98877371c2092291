// SPDX-License-Identifier: MIT

package risk

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRanks_AverageTies(t *testing.T) {
	t.Parallel()

	require.Equal(t, []float64{1, 2.5, 2.5, 4}, ranks([]float64{1, 2, 2, 3}))
	require.Equal(t, []float64{3, 1, 3, 3}, ranks([]float64{5, 0, 5, 5}))
	require.Empty(t, ranks(nil))
}
