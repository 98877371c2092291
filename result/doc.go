// SPDX-License-Identifier: MIT

// Package result is the in-memory table produced by one simulation run:
// one row per trial, a "trial" column, then inputs in registration order,
// then model outputs.
package result
