// SPDX-License-Identifier: MIT

package simulation

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmc/correlation"
)

var (
	// ErrDuplicateVariable is returned when a name is registered twice.
	ErrDuplicateVariable = errors.New("simulation: duplicate variable")

	// ErrReservedName is returned when a variable or output uses the trial column name.
	ErrReservedName = errors.New("simulation: reserved name")

	// ErrRegistryFrozen is returned by registry and correlation calls after the first Run.
	ErrRegistryFrozen = errors.New("simulation: registry frozen after first run")

	// ErrNoVariables is returned by Run when nothing was registered.
	ErrNoVariables = errors.New("simulation: no variables registered")

	// ErrInvalidIterations is returned by Run for n ≤ 0.
	ErrInvalidIterations = errors.New("simulation: iterations must be > 0")

	// ErrNilModel is returned by Run without a model.
	ErrNilModel = errors.New("simulation: nil model")

	// ErrOutputShadowsInput is returned when a model output reuses an input name.
	ErrOutputShadowsInput = errors.New("simulation: output shadows input")

	// ErrInconsistentOutputs is returned when a trial returns a different key set than trial 0.
	ErrInconsistentOutputs = errors.New("simulation: inconsistent output keys")

	// ErrUnknownOutput is returned when a declared output name is never produced.
	ErrUnknownOutput = errors.New("simulation: unknown output")

	// ErrNotRun is returned by Results and Analyzer before a successful Run.
	ErrNotRun = errors.New("simulation: no completed run")

	// ErrUnknownVariable, ErrSelfCorrelation and ErrOutOfRange are shared with
	// package correlation so either can be matched.
	ErrUnknownVariable = correlation.ErrUnknownVariable
	ErrSelfCorrelation = correlation.ErrSelfCorrelation
	ErrOutOfRange      = correlation.ErrOutOfRange
)

const (
	opRegister       = "Register"
	opSetCorrelation = "SetCorrelation"
	opRun            = "Run"
	opResults        = "Results"
	opAnalyzer       = "Analyzer"
)

func simulationErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
