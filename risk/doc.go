// SPDX-License-Identifier: MIT

// Package risk aggregates one output column of a result table into risk
// metrics: summary statistics, confidence intervals, VaR and CVaR,
// probability of reaching a target, and a correlation-based sensitivity
// ranking of the inputs.
//
// Conventions:
//   - Quantiles interpolate linearly between order statistics with
//     h = (n−1)·p (type 7 in Hyndman & Fan).
//   - Std is the sample std (divisor n−1); skewness and excess kurtosis are
//     the bias-corrected G1 and G2.
//   - Sensitivity is squared Pearson correlation normalised to 100%. It is
//     not a Sobol decomposition and ignores interaction effects.
//
// Metrics are recomputed on every call; nothing is cached.
package risk
