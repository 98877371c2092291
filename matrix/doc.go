// SPDX-License-Identifier: MIT

// Package matrix is the small dense linear-algebra kernel behind lvmc's
// correlation handling and correlated sampling.
//
// What & Why:
//
//	Correlated Monte Carlo needs exactly four numeric primitives: a dense
//	row-major store, matrix products with transposes, a Cholesky factor for
//	imposing a correlation structure, and a symmetric eigen-decomposition for
//	repairing correlation input that is not positive definite. This package
//	provides those primitives with the same safety contract everywhere:
//	public accessors never panic, every failure is a sentinel error that
//	callers match with errors.Is.
//
// Exposed API:
//
//   - Dense, NewDense, NewIdentity, NewFromRows   : storage and constructors
//   - Mul, Transpose                               : products
//   - Cholesky                                     : A = L·Lᵀ, ErrNotPositiveDefinite on failure
//   - Eigen                                        : Jacobi sweeps for symmetric A
//   - Reconstruct                                  : V·diag(λ)·Vᵀ from an eigen pair
//   - Correlation                                  : Pearson correlation of columns
//   - ValidateNotNil, ValidateSquare, ValidateSymmetric
//
// Determinism:
//
//	All loops run in fixed i→j→k order and no map is iterated, so the same
//	input always yields bit-identical output.
//
// Complexity:
//
//	At/Set O(1); Mul O(r·k·c); Cholesky O(n³/3); Eigen O(n²) per rotation.
package matrix
