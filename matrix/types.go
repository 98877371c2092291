// SPDX-License-Identifier: MIT

package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// Every method enforces bounds checking and returns sentinel errors on misuse.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}

// Numeric policy defaults shared by decompositions.
const (
	// DefaultSymmetryTol bounds |A[i,j]-A[j,i]| accepted as symmetric.
	DefaultSymmetryTol = 1e-9

	// DefaultEigenTol is the off-diagonal magnitude below which Jacobi stops.
	DefaultEigenTol = 1e-12

	// DefaultEigenSweeps scales the rotation budget: maxIter = DefaultEigenSweeps·n².
	DefaultEigenSweeps = 100

	// zeroSum is the initial accumulator for dot products and substitutions.
	zeroSum = 0.0
)
