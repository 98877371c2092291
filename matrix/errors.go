// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All algorithms return these sentinels (optionally wrapped with an operation
// tag) and tests check them via errors.Is. No routine panics on user input.

package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// Wrap with context at the boundary (matrixErrorf); callers still match with errors.Is.
var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Mul where a.Cols != b.Rows, or ragged rows in NewFromRows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated symmetry
	// within the configured tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrEigenFailed indicates that the Jacobi routine did not converge
	// under the given tolerance/iterations.
	ErrEigenFailed = errors.New("matrix: eigen decomposition failed")

	// ErrNotPositiveDefinite is returned by Cholesky when a pivot is not
	// strictly positive, i.e. the input is not (numerically) positive definite.
	ErrNotPositiveDefinite = errors.New("matrix: matrix is not positive definite")
)

// Operation tags for matrixErrorf.
const (
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opCholesky    = "Cholesky"
	opEigen       = "Eigen"
	opReconstruct = "Reconstruct"
	opCorrelation = "Correlation"
	opFromRows    = "NewFromRows"
)

// matrixErrorf wraps err as "Op: err", keeping the sentinel reachable via errors.Is.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
