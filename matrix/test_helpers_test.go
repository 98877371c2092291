// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Small deterministic fixtures and fatal-on-error accessors.

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvmc/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type, forcing the At/Set path.
type hide struct{ matrix.Matrix }

// MustFromRows builds a Dense from literal rows or fails the test.
func MustFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// CompareClose asserts |a-b| ≤ atol + rtol·|b| element-wise.
func CompareClose(t *testing.T, a, b matrix.Matrix, rtol, atol float64) {
	t.Helper()
	require.Equal(t, b.Rows(), a.Rows(), "rows")
	require.Equal(t, b.Cols(), a.Cols(), "cols")
	var i, j int
	var av, bv float64
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			av, bv = MustAt(t, a, i, j), MustAt(t, b, i, j)
			if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
				t.Fatalf("(%d,%d): got %.15g want %.15g", i, j, av, bv)
			}
		}
	}
}

// gram returns L·Lᵀ.
func gram(t *testing.T, L matrix.Matrix) *matrix.Dense {
	t.Helper()
	Lt, err := matrix.Transpose(L)
	require.NoError(t, err)
	G, err := matrix.Mul(L, Lt)
	require.NoError(t, err)

	return G
}
