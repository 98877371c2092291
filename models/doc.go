// SPDX-License-Identifier: MIT

// Package models provides ready-made valuation strategies that satisfy
// simulation.Model: a five-year discounted cash flow with a Gordon terminal
// value, and a plain product of named inputs. Both are pure functions of
// their inputs and report domain violations as errors instead of producing
// Inf or NaN.
package models
