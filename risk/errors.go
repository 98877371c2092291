// SPDX-License-Identifier: MIT

package risk

import (
	"errors"
	"fmt"
)

var (
	// ErrNotRun is returned by New for a nil table.
	ErrNotRun = errors.New("risk: no simulation results")

	// ErrUnknownColumn is returned for a column the table does not hold.
	ErrUnknownColumn = errors.New("risk: unknown column")

	// ErrInvalidConfidence is returned for a confidence outside (0, 1).
	ErrInvalidConfidence = errors.New("risk: confidence must lie in (0, 1)")

	// ErrInvalidInitialValue is returned by ValueAtRiskFrom for initial == 0 or non-finite.
	ErrInvalidInitialValue = errors.New("risk: initial value must be finite and non-zero")

	// ErrInvalidDirection is returned by ParseDirection.
	ErrInvalidDirection = errors.New("risk: direction must be above or below")
)

func riskErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
