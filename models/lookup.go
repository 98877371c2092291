// SPDX-License-Identifier: MIT

package models

import (
	"fmt"

	"github.com/katalvlaran/lvmc/simulation"
)

// Model type tags accepted by Lookup.
const (
	TypeDCF     = "dcf"
	TypeProduct = "product"
)

// Config selects and parameterises a model by tag, as read from a scenario file.
type Config struct {
	Type   string             `yaml:"type"`
	Output string             `yaml:"output,omitempty"`
	Inputs []string           `yaml:"inputs,omitempty"`
	Params map[string]float64 `yaml:"params,omitempty"`
}

// Lookup builds the model described by cfg.
//
//	dcf:     params years (default 5), cash_conversion (default 0.75)
//	product: output name and at least one input
func Lookup(cfg Config) (simulation.Model, error) {
	switch cfg.Type {
	case TypeDCF:
		m := NewDCF()
		if y, ok := cfg.Params["years"]; ok {
			if y < 1 || y != float64(int(y)) {
				return nil, fmt.Errorf("dcf years=%g: %w", y, ErrInvalidConfig)
			}
			m.Years = int(y)
		}
		if c, ok := cfg.Params["cash_conversion"]; ok {
			m.CashConversion = c
		}
		return m, nil
	case TypeProduct:
		if cfg.Output == "" || len(cfg.Inputs) == 0 {
			return nil, fmt.Errorf("product needs output and inputs: %w", ErrInvalidConfig)
		}
		return Product{Output: cfg.Output, Inputs: append([]string(nil), cfg.Inputs...)}, nil
	}

	return nil, fmt.Errorf("%q: %w", cfg.Type, ErrUnknownModel)
}
