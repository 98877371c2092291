// SPDX-License-Identifier: MIT

// Package simulation runs a Monte Carlo valuation: it owns the variable
// registry, the pairwise correlation declarations and one seeded generator,
// draws the joint samples, evaluates a caller-supplied Model once per trial
// and keeps the resulting table for risk analysis.
//
// Lifecycle:
//
//	sim := simulation.New(simulation.WithSeed(42))
//	_ = sim.AddNormal("revenue", 1000, 100)
//	_ = sim.AddTriangular("margin", 0.15, 0.20, 0.28)
//	_ = sim.SetCorrelation("revenue", "margin", 0.3)
//	tbl, err := sim.Run(model, 5000)
//	an, err := sim.Analyzer()
//
// The registry freezes at the first Run. Later Runs reuse the declarations
// and continue the same generator stream.
//
// Errors come in three kinds: configuration errors fail at the offending
// call; a non-positive-definite correlation matrix is repaired and reported
// through the table Meta and a warn log; a Model error aborts the run and no
// table is kept.
//
// Concurrency: a Simulation is not safe for concurrent use, and Run evaluates
// trials sequentially, so Model implementations need not be goroutine-safe.
package simulation
