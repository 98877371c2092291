// SPDX-License-Identifier: MIT

package models

import "errors"

var (
	// ErrMissingInput is returned when a required input is absent from a trial.
	ErrMissingInput = errors.New("models: missing input")

	// ErrDiscountRate is returned by DCF when the discount rate does not exceed
	// the terminal growth rate, or is ≤ -1.
	ErrDiscountRate = errors.New("models: discount rate must exceed terminal growth")

	// ErrUnknownModel is returned by Lookup for an unregistered model type.
	ErrUnknownModel = errors.New("models: unknown model type")

	// ErrInvalidConfig is returned for unusable model settings.
	ErrInvalidConfig = errors.New("models: invalid model configuration")
)
