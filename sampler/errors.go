// SPDX-License-Identifier: MIT

package sampler

import (
	"errors"
	"fmt"
)

var (
	// ErrNoVariables is returned by New when no variables are given.
	ErrNoVariables = errors.New("sampler: no variables")

	// ErrNilVariable is returned by New for a nil entry.
	ErrNilVariable = errors.New("sampler: nil variable")

	// ErrDuplicateVariable is returned when two variables share a name.
	ErrDuplicateVariable = errors.New("sampler: duplicate variable")

	// ErrNilRNG is returned by New without a generator.
	ErrNilRNG = errors.New("sampler: nil generator")

	// ErrCorrelationMismatch is returned when the correlation names differ
	// from the variable names or their order.
	ErrCorrelationMismatch = errors.New("sampler: correlation names do not match variables")

	// ErrInvalidCount is returned by Sample for n ≤ 0.
	ErrInvalidCount = errors.New("sampler: sample count must be > 0")

	// ErrUnknownColumn is returned by Samples.Column for a name not sampled.
	ErrUnknownColumn = errors.New("sampler: unknown column")
)

func samplerErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
