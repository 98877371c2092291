// SPDX-License-Identifier: MIT

package correlation

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmc/matrix"
)

var (
	// ErrNoVariables is returned by New for an empty name list.
	ErrNoVariables = errors.New("correlation: no variables")

	// ErrDuplicateVariable is returned by New when a name repeats.
	ErrDuplicateVariable = errors.New("correlation: duplicate variable")

	// ErrUnknownVariable is returned when a pair names a variable outside the matrix.
	ErrUnknownVariable = errors.New("correlation: unknown variable")

	// ErrSelfCorrelation is returned when a variable is paired with itself.
	ErrSelfCorrelation = errors.New("correlation: variable paired with itself")

	// ErrOutOfRange is returned for a coefficient outside [-1, 1] or NaN.
	ErrOutOfRange = errors.New("correlation: coefficient outside [-1, 1]")

	// ErrNotPositiveDefinite is the matrix sentinel, re-exported so callers
	// need not import matrix to detect a failed direct factorization.
	ErrNotPositiveDefinite = matrix.ErrNotPositiveDefinite

	// ErrRepairFailed is returned when no attempt of Repair produced a
	// factorable matrix.
	ErrRepairFailed = errors.New("correlation: repair did not produce a positive definite matrix")
)

const (
	opNew         = "New"
	opSetPairwise = "SetPairwise"
	opAt          = "At"
	opTryFactor   = "TryFactor"
	opRepair      = "Repair"
	opFactor      = "Factor"
)

func correlationErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
