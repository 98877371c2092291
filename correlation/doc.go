// SPDX-License-Identifier: MIT

// Package correlation holds the pairwise correlation structure between named
// input variables and turns it into a lower-triangular factor L with
// L·Lᵀ equal to the (possibly repaired) correlation matrix.
//
// What & Why:
//
//	Correlations are usually elicited one pair at a time, and a set of
//	individually plausible pairs can be jointly infeasible (not positive
//	definite). Factoring is therefore two explicit steps:
//
//	  1. TryFactor: plain Cholesky of the requested matrix.
//	  2. Repair: Jacobi eigen-decomposition, clamp every eigenvalue up to
//	     EigenFloor, rebuild V·diag(λ)·Vᵀ, rescale to unit diagonal and
//	     factor again. The floor grows tenfold per failed attempt, up to
//	     MaxRepairs times.
//
//	Factor runs step 2 only when step 1 reports ErrNotPositiveDefinite and
//	reports what happened through Factorization.Repaired and MaxDeviation.
//
// Invariants:
//   - The stored matrix is symmetric with unit diagonal; SetPairwise writes
//     both cells.
//   - Every off-diagonal entry lies in [-1, 1].
//
// Complexity:
//
//	SetPairwise O(1) after an O(1) name lookup; TryFactor O(n³);
//	Repair O(n²) per Jacobi rotation plus O(n³) per attempt.
package correlation
