// SPDX-License-Identifier: MIT

// Package scenario loads a simulation description from YAML: run settings,
// variable declarations, pairwise correlations, the valuation model and the
// report settings. Build turns it into a ready-to-run simulation.
//
// Example file:
//
//	name: dcf-example
//	seed: 42
//	iterations: 5000
//	variables:
//	  - name: revenue
//	    distribution: normal
//	    params: {mean: 1000, std: 100}
//	  - name: margin
//	    distribution: triangular
//	    params: {low: 0.15, mode: 0.20, high: 0.28}
//	correlations:
//	  - {a: revenue, b: margin, rho: 0.3}
//	model:
//	  type: product
//	  output: profit
//	  inputs: [revenue, margin]
//	report:
//	  output: profit
//	  targets: [200]
//
// LVMC_SEED and LVMC_ITERATIONS override the file when set.
package scenario
