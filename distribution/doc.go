// SPDX-License-Identifier: MIT

// Package distribution describes the marginal law of one named random input.
//
// 🚀 Families
//
//	normal      mean, std                    Gaussian
//	lognormal   mean, std                    arithmetic mean/std of the variable itself
//	triangular  low, mode, high              standard triangular
//	uniform     low, high                    continuous uniform
//	pert        low, mode, high [, lambda=4] modified Beta
//
// ✨ Key features:
//   - Sample(n, src) draws n independent values from a caller-owned source;
//     the package never touches global random state.
//   - Quantile(p) is exact for normal, triangular and uniform; lognormal and
//     pert report ErrNoInverseCDF so correlated samplers can fall back to
//     independent draws for them.
//   - Missing parameter keys are reported at Sample/Quantile time with
//     ErrMissingParameter; Validate runs the same checks eagerly.
//
// ⚙️ Usage:
//
//	d := distribution.NewTriangular("margin", 0.15, 0.20, 0.28)
//	src := rand.NewSource(42)
//	xs, err := d.Sample(1000, src)
//
// Samplers are gonum stat/distuv laws driven by golang.org/x/exp/rand sources.
package distribution
