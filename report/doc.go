// SPDX-License-Identifier: MIT

// Package report renders a plain-text summary of one simulated output:
// iteration count, summary statistics, percentiles, confidence intervals and
// distribution shape, plus optional VaR, target probabilities and an input
// sensitivity table. Money is formatted with github.com/leekchan/accounting.
package report
