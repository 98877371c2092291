// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvmc/matrix"
	"github.com/stretchr/testify/require"
)

func TestCorrelation_PerfectAndDegenerate(t *testing.T) {
	t.Parallel()

	// col0 and col1 are perfectly linear, col2 anti-linear, col3 constant.
	X := MustFromRows(t, [][]float64{
		{1, 2, 10, 5},
		{2, 4, 8, 5},
		{3, 6, 6, 5},
		{4, 8, 4, 5},
	})
	corr, means, stds, err := matrix.Correlation(X)
	require.NoError(t, err)
	require.Equal(t, []float64{2.5, 5, 7, 5}, means)
	require.Equal(t, 0.0, stds[3])

	require.InDelta(t, 1.0, MustAt(t, corr, 0, 1), 1e-12)
	require.InDelta(t, -1.0, MustAt(t, corr, 0, 2), 1e-12)
	require.Equal(t, 0.0, MustAt(t, corr, 0, 3))
	require.Equal(t, 1.0, MustAt(t, corr, 3, 3))
	require.NoError(t, matrix.ValidateSymmetric(corr, 0))

	slow, _, _, err := matrix.Correlation(hide{X})
	require.NoError(t, err)
	CompareClose(t, slow, corr, 0, 0)
}

func TestCorrelation_TooFewRows(t *testing.T) {
	t.Parallel()

	_, _, _, err := matrix.Correlation(MustFromRows(t, [][]float64{{1, 2}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
