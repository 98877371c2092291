// SPDX-License-Identifier: MIT

// Package lvmc is a Monte Carlo engine for valuation risk: declare uncertain
// inputs, correlate them, run any deterministic valuation model once per
// trial and read the output distribution back as risk metrics.
//
// 🚀 What is lvmc?
//
//	A small, deterministic, single-threaded library plus a CLI:
//		• Distributions: normal, lognormal, triangular, uniform, PERT
//		• Correlation: pairwise declarations, Cholesky factor, eigenvalue repair
//		• Sampling: inverse-CDF mapping of correlated standard normals
//		• Simulation: variable registry, seeded generator, Model contract
//		• Risk: percentiles, confidence intervals, VaR/CVaR, targets, sensitivity
//		• Reports, YAML scenarios and the lvmc command
//
// ✨ Guarantees
//
//   - Reproducible: one owned generator per simulation; same seed, same table.
//   - Explicit repair: a non-positive-definite correlation request is repaired
//     and reported (Meta.Repaired, Meta.MaxDeviation), never silently ignored.
//   - No panics on user input: every failure is a sentinel error matched with
//     errors.Is.
//
// Packages, leaves first:
//
//	matrix/       dense matrix, Cholesky, Jacobi eigen, column correlation
//	distribution/ marginal laws: Sample and Quantile
//	correlation/  named correlation matrix with TryFactor / Repair / Factor
//	sampler/      independent and correlated joint sampling
//	result/       trial-indexed result table with CSV export
//	simulation/   registry, Model, Run, Quick
//	risk/         Analyzer: Statistics, ConfidenceInterval, VaR, Sensitivity
//	report/       text report
//	models/       DCF and Product valuation models
//	scenario/     YAML scenario files
//	cmd/lvmc/     command-line interface
//
// Quick start:
//
//	sim := simulation.New(simulation.WithSeed(42))
//	_ = sim.AddNormal("revenue", 1000, 100)
//	_ = sim.AddTriangular("margin", 0.15, 0.20, 0.28)
//	_, _ = sim.Run(models.Product{Output: "profit", Inputs: []string{"revenue", "margin"}}, 5000)
//	an, _ := sim.Analyzer()
//	st, _ := an.Statistics("profit")
//
// Sensitivity is squared Pearson correlation normalised to 100%. It is an
// approximation and does not capture interaction effects.
package lvmc
