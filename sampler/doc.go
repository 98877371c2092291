// SPDX-License-Identifier: MIT

// Package sampler produces the joint sample matrix for a set of declared
// input variables, optionally imposing a correlation structure.
//
// Modes:
//   - Independent (no correlation matrix): each variable draws its n values
//     in declaration order from the shared generator.
//   - Correlated: an n×k matrix Z of standard normals is drawn row by row,
//     mixed as Z·Lᵀ with the correlation factor L, pushed through Φ into
//     (0,1) and mapped through each variable's inverse CDF. Variables without
//     a closed-form inverse CDF (lognormal, pert) are drawn independently
//     from the same generator after Z, in column order; correlation is not
//     imposed on those columns.
//
// The generator is a golang.org/x/exp/rand *Rand owned by the caller. The
// same seed and the same declarations give bit-identical samples.
package sampler
