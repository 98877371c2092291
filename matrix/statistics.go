// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Column statistics over a sample matrix (rows = observations, cols = variables).
//
// Exposed API:
//   - Correlation(X) -> (Corr, means, stds) // Pearson corr; degenerate std=0 → zeroed row/col, unit diagonal

package matrix

import "math"

// Correlation computes the Pearson correlation matrix of the columns of X.
// Implementation:
//   - Stage 1: validate non-nil, r ≥ 2.
//   - Stage 2: column means, then sample stds (divisor r-1).
//   - Stage 3: Corr[a,b] = Σ_i (x_ia-μ_a)(x_ib-μ_b) / ((r-1)·σ_a·σ_b).
//
// Behavior highlights:
//   - A constant column (σ=0) gets zero correlation with every other column
//     and 1 on its own diagonal cell.
//
// Errors:
//   - ErrNilMatrix; ErrDimensionMismatch when r < 2.
//
// Complexity:
//   - Time O(r·c²), Space O(c²).
func Correlation(X Matrix) (*Dense, []float64, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}
	src, err := toDense(X)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}
	r, c := src.r, src.c
	if r < 2 {
		return nil, nil, nil, matrixErrorf(opCorrelation, ErrDimensionMismatch)
	}

	means := make([]float64, c)
	stds := make([]float64, c)
	var (
		i, a, b int
		d       float64
	)
	for i = 0; i < r; i++ {
		for a = 0; a < c; a++ {
			means[a] += src.data[i*c+a]
		}
	}
	for a = 0; a < c; a++ {
		means[a] /= float64(r)
	}
	for i = 0; i < r; i++ {
		for a = 0; a < c; a++ {
			d = src.data[i*c+a] - means[a]
			stds[a] += d * d
		}
	}
	for a = 0; a < c; a++ {
		stds[a] = math.Sqrt(stds[a] / float64(r-1))
	}

	corr, err := NewIdentity(c)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}
	var cov float64
	for a = 0; a < c; a++ {
		for b = a + 1; b < c; b++ {
			if stds[a] == 0 || stds[b] == 0 {
				continue
			}
			cov = zeroSum
			for i = 0; i < r; i++ {
				cov += (src.data[i*c+a] - means[a]) * (src.data[i*c+b] - means[b])
			}
			cov /= float64(r-1) * stds[a] * stds[b]
			corr.data[a*c+b] = cov
			corr.data[b*c+a] = cov
		}
	}

	return corr, means, stds, nil
}
