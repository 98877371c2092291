// SPDX-License-Identifier: MIT

package correlation_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmc/correlation"
	"github.com/katalvlaran/lvmc/matrix"
)

// infeasible builds the classic jointly impossible triple:
// a~b and a~c strongly positive, b~c strongly negative.
func infeasible(t *testing.T) *correlation.Matrix {
	t.Helper()
	m, err := correlation.New([]string{"a", "b", "c"})
	require.NoError(t, err)
	require.NoError(t, m.SetPairwise("a", "b", 0.9))
	require.NoError(t, m.SetPairwise("a", "c", 0.9))
	require.NoError(t, m.SetPairwise("b", "c", -0.9))

	return m
}

func at(t *testing.T, d *matrix.Dense, i, j int) float64 {
	t.Helper()
	v, err := d.At(i, j)
	require.NoError(t, err)

	return v
}

func TestNew(t *testing.T) {
	t.Parallel()

	_, err := correlation.New(nil)
	require.ErrorIs(t, err, correlation.ErrNoVariables)
	_, err = correlation.New([]string{"x", "y", "x"})
	require.ErrorIs(t, err, correlation.ErrDuplicateVariable)

	m, err := correlation.New([]string{"x", "y"})
	require.NoError(t, err)
	require.Equal(t, 2, m.Size())
	require.Equal(t, []string{"x", "y"}, m.Names())
	v, err := m.At("x", "y")
	require.NoError(t, err)
	require.Zero(t, v)
	v, err = m.At("y", "y")
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}

func TestSetPairwise(t *testing.T) {
	t.Parallel()

	m, err := correlation.New([]string{"x", "y", "z"})
	require.NoError(t, err)

	require.NoError(t, m.SetPairwise("x", "z", -0.4))
	v, err := m.At("z", "x")
	require.NoError(t, err)
	require.Equal(t, -0.4, v)

	require.NoError(t, m.SetPairwise("x", "y", 1))
	require.NoError(t, m.SetPairwise("x", "y", -1))

	require.ErrorIs(t, m.SetPairwise("x", "y", 1.01), correlation.ErrOutOfRange)
	require.ErrorIs(t, m.SetPairwise("x", "y", math.NaN()), correlation.ErrOutOfRange)
	require.ErrorIs(t, m.SetPairwise("x", "w", 0.1), correlation.ErrUnknownVariable)
	require.ErrorIs(t, m.SetPairwise("x", "x", 0.1), correlation.ErrSelfCorrelation)
	_, err = m.At("q", "x")
	require.ErrorIs(t, err, correlation.ErrUnknownVariable)

	// Dense is a copy.
	d := m.Dense()
	require.NoError(t, d.Set(0, 2, 0.99))
	v, err = m.At("x", "z")
	require.NoError(t, err)
	require.Equal(t, -0.4, v)
}

func TestFactor_Feasible(t *testing.T) {
	t.Parallel()

	m, err := correlation.New([]string{"x", "y"})
	require.NoError(t, err)
	require.NoError(t, m.SetPairwise("x", "y", 0.6))

	f, err := m.Factor()
	require.NoError(t, err)
	require.False(t, f.Repaired)
	require.InDelta(t, 0.0, f.MaxDeviation, 1e-12)
	require.InDelta(t, 1.0, at(t, f.L, 0, 0), 1e-12)
	require.InDelta(t, 0.6, at(t, f.L, 1, 0), 1e-12)
	require.InDelta(t, 0.8, at(t, f.L, 1, 1), 1e-12)
	require.Zero(t, at(t, f.L, 0, 1))
}

func TestTryFactor_Infeasible(t *testing.T) {
	t.Parallel()

	_, err := infeasible(t).TryFactor()
	require.ErrorIs(t, err, correlation.ErrNotPositiveDefinite)
	require.ErrorIs(t, err, matrix.ErrNotPositiveDefinite)
}

func TestFactor_RepairsInfeasible(t *testing.T) {
	t.Parallel()

	m := infeasible(t)
	f, err := m.Factor()
	require.NoError(t, err)
	require.True(t, f.Repaired)
	require.Greater(t, f.MaxDeviation, 0.0)

	n := m.Size()
	for i := 0; i < n; i++ {
		require.InDelta(t, 1.0, at(t, f.Effective, i, i), 1e-9)
		for j := i + 1; j < n; j++ {
			require.Zero(t, at(t, f.L, i, j), "L must be lower triangular")
			require.InDelta(t, at(t, f.Effective, i, j), at(t, f.Effective, j, i), 1e-12)
		}
	}
	// Signs of the request survive the repair.
	require.Greater(t, at(t, f.Effective, 0, 1), 0.0)
	require.Greater(t, at(t, f.Effective, 0, 2), 0.0)
	require.Less(t, at(t, f.Effective, 1, 2), 0.0)

	// Effective is PSD: its own eigenvalues are non-negative up to rounding.
	vals, _, err := matrix.Eigen(f.Effective, 1e-12, 0)
	require.NoError(t, err)
	for _, v := range vals {
		require.GreaterOrEqual(t, v, -1e-10)
	}

	// The request is untouched.
	v, err := m.At("b", "c")
	require.NoError(t, err)
	require.Equal(t, -0.9, v)
}

func TestRepair_MatchesFactorL(t *testing.T) {
	t.Parallel()

	m := infeasible(t)
	L, err := m.Repair()
	require.NoError(t, err)
	f, err := m.Factor()
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			require.Equal(t, at(t, f.L, i, j), at(t, L, i, j))
		}
	}
}

func TestRepair_LargeFloor(t *testing.T) {
	t.Parallel()

	// A large initial floor still yields a valid correlation matrix.
	opts := correlation.DefaultOptions()
	opts.EigenFloor = 0.05
	m, err := correlation.NewWithOptions([]string{"a", "b", "c"}, opts)
	require.NoError(t, err)
	require.NoError(t, m.SetPairwise("a", "b", 0.9))
	require.NoError(t, m.SetPairwise("a", "c", 0.9))
	require.NoError(t, m.SetPairwise("b", "c", -0.9))

	f, err := m.Factor()
	require.NoError(t, err)
	require.True(t, f.Repaired)
	for i := 0; i < 3; i++ {
		require.InDelta(t, 1.0, at(t, f.Effective, i, i), 1e-9)
	}
}
