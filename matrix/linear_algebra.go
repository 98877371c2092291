// SPDX-License-Identifier: MIT
// Package matrix provides products and decompositions over any Matrix implementation,
// with *Dense fast-paths over the flat row-major buffer.
//
// Purpose:
//   - Mul/Transpose for sampling transforms (Z·Lᵀ).
//   - Cholesky for imposing a correlation structure.
//   - Eigen (Jacobi) + Reconstruct for spectral repair of indefinite input.
//
// Notes:
//   - All routines allocate fresh results; inputs are never mutated.
//   - Fixed loop orders keep results bit-reproducible.

package matrix

import (
	"fmt"
	"math"
)

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: validate non-nil operands and a.Cols()==b.Rows().
//   - Stage 2: Dense×Dense uses the i-k-j order over flat buffers (row-major friendly),
//     other implementations go through At.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "Mul").
//
// Complexity:
//   - Time O(r·k·c), Space O(r·c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := da.r, da.c, db.c
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k                            int
		av                                 float64
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = da.data[rowOffsetA+k]
			if av == 0 {
				continue // lower-triangular factors are half zeros
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Complexity: O(r·c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res, err := NewDense(src.c, src.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var i, j int
	for i = 0; i < src.r; i++ {
		for j = 0; j < src.c; j++ {
			res.data[j*src.r+i] = src.data[i*src.c+j]
		}
	}

	return res, nil
}

// Cholesky factors a symmetric positive-definite A into a lower-triangular L
// such that L·Lᵀ = A (Cholesky–Banachiewicz, row by row).
//
// Implementation:
//   - Stage 1: validate square + symmetric within DefaultSymmetryTol.
//   - Stage 2: for each row i and column j ≤ i accumulate Σ_k L[i,k]·L[j,k];
//     the diagonal pivot A[i,i] − Σ L[i,k]² must be strictly positive.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrAsymmetry.
//   - ErrNotPositiveDefinite when a pivot is ≤ 0 or NaN. No partial factor is returned.
//
// Determinism:
//   - Fixed i→j→k order.
//
// Complexity:
//   - Time O(n³/3), Space O(n²).
func Cholesky(a Matrix) (*Dense, error) {
	if err := ValidateSymmetric(a, DefaultSymmetryTol); err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}
	src, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}
	n := src.r
	L, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}

	var (
		i, j, k int
		sum     float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j <= i; j++ {
			sum = zeroSum
			for k = 0; k < j; k++ {
				sum += L.data[i*n+k] * L.data[j*n+k]
			}
			if i == j {
				sum = src.data[i*n+i] - sum
				if !(sum > 0) { // also catches NaN
					return nil, matrixErrorf(opCholesky, fmt.Errorf("pivot %d = %g: %w", i, sum, ErrNotPositiveDefinite))
				}
				L.data[i*n+i] = math.Sqrt(sum)
				continue
			}
			L.data[i*n+j] = (src.data[i*n+j] - sum) / L.data[j*n+j]
		}
	}

	return L, nil
}

// Eigen computes eigenvalues and eigenvectors of a symmetric matrix via classical
// Jacobi rotations: each step annihilates the largest |A[p,q]|.
//
// Implementation:
//   - Stage 1: validate square + symmetric within tol.
//   - Stage 2: work on a copy A and accumulate rotations in Q (starts at identity).
//   - Stage 3: stop when max_{i<j}|A[i,j]| < tol; eigenvalues are diag(A),
//     eigenvectors are the columns of Q.
//
// Inputs:
//   - tol: off-diagonal convergence threshold (> 0).
//   - maxIter: rotation budget; ≤ 0 selects DefaultEigenSweeps·n².
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrAsymmetry, ErrNaNInf (bad tol).
//   - ErrEigenFailed when the budget is exhausted.
//
// Complexity:
//   - O(n²) per rotation for the pivot search and update.
func Eigen(m Matrix, tol float64, maxIter int) ([]float64, *Dense, error) {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		return nil, nil, matrixErrorf(opEigen, ErrNaNInf)
	}
	if err := ValidateSymmetric(m, DefaultSymmetryTol); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	src, err := toDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	n := src.r
	if maxIter <= 0 {
		maxIter = DefaultEigenSweeps * n * n
	}

	A := src.Clone().(*Dense)
	Q, err := NewIdentity(n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	var (
		iter, i, j, p, q int
		maxOff, off      float64
		theta, t, c, s   float64
		app, aqq, apq    float64
		aip, aiq         float64
		converged        bool
	)
	for iter = 0; iter <= maxIter; iter++ {
		// Locate the largest off-diagonal magnitude.
		maxOff, p, q = 0, 0, 0
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				off = math.Abs(A.data[i*n+j])
				if off > maxOff {
					maxOff, p, q = off, i, j
				}
			}
		}
		if maxOff < tol {
			converged = true
			break
		}
		if iter == maxIter {
			break
		}

		app, aqq, apq = A.data[p*n+p], A.data[q*n+q], A.data[p*n+q]
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Sqrt(theta*theta+1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		for i = 0; i < n; i++ {
			if i == p || i == q {
				continue
			}
			aip, aiq = A.data[i*n+p], A.data[i*n+q]
			A.data[i*n+p] = c*aip - s*aiq
			A.data[p*n+i] = A.data[i*n+p]
			A.data[i*n+q] = s*aip + c*aiq
			A.data[q*n+i] = A.data[i*n+q]
		}
		A.data[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
		A.data[q*n+q] = s*s*app + 2*c*s*apq + c*c*aqq
		A.data[p*n+q] = 0
		A.data[q*n+p] = 0

		for i = 0; i < n; i++ {
			aip, aiq = Q.data[i*n+p], Q.data[i*n+q]
			Q.data[i*n+p] = c*aip - s*aiq
			Q.data[i*n+q] = s*aip + c*aiq
		}
	}
	if !converged {
		return nil, nil, matrixErrorf(opEigen, fmt.Errorf("off-diagonal %g after %d rotations: %w", maxOff, maxIter, ErrEigenFailed))
	}

	vals := make([]float64, n)
	for i = 0; i < n; i++ {
		vals[i] = A.data[i*n+i]
	}

	return vals, Q, nil
}

// Reconstruct rebuilds V·diag(vals)·Vᵀ from an eigen pair. Only the lower
// triangle is computed; the upper triangle mirrors it, so the result is exactly symmetric.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch when len(vals) != n.
//
// Complexity: O(n³).
func Reconstruct(vals []float64, vecs Matrix) (*Dense, error) {
	if err := ValidateSquare(vecs); err != nil {
		return nil, matrixErrorf(opReconstruct, err)
	}
	V, err := toDense(vecs)
	if err != nil {
		return nil, matrixErrorf(opReconstruct, err)
	}
	n := V.r
	if len(vals) != n {
		return nil, matrixErrorf(opReconstruct, fmt.Errorf("%d eigenvalues for %dx%d vectors: %w", len(vals), n, n, ErrDimensionMismatch))
	}
	out, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opReconstruct, err)
	}

	var (
		i, j, k int
		sum     float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j <= i; j++ {
			sum = zeroSum
			for k = 0; k < n; k++ {
				sum += V.data[i*n+k] * vals[k] * V.data[j*n+k]
			}
			out.data[i*n+j] = sum
		}
	}
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			out.data[i*n+j] = out.data[j*n+i]
		}
	}

	return out, nil
}
