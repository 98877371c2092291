// SPDX-License-Identifier: MIT

package models

import (
	"fmt"
	"math"
)

// DCF input and output names.
const (
	InRevenue        = "revenue"
	InMargin         = "margin"
	InGrowth         = "growth"
	InWACC           = "wacc"
	InTerminalGrowth = "terminal_growth"

	OutEnterpriseValue = "enterprise_value"
	OutPVFCF           = "pv_fcf"
	OutPVTerminal      = "pv_terminal"
)

// DCF values a business from base revenue: revenue grows for Years periods,
// free cash flow is revenue·margin·CashConversion, and the last flow is
// capitalised with the Gordon growth formula.
type DCF struct {
	// Years is the explicit forecast horizon.
	Years int

	// CashConversion turns operating profit into after-tax free cash flow.
	CashConversion float64
}

// NewDCF returns the five-year model with 75% cash conversion.
func NewDCF() DCF {
	return DCF{Years: 5, CashConversion: 0.75}
}

// Evaluate implements simulation.Model.
//
// Outputs: enterprise_value, pv_fcf, pv_terminal.
func (m DCF) Evaluate(in map[string]float64) (map[string]float64, error) {
	v, err := need(in, InRevenue, InMargin, InGrowth, InWACC, InTerminalGrowth)
	if err != nil {
		return nil, err
	}
	revenue, margin, growth, wacc, tg := v[0], v[1], v[2], v[3], v[4]
	if wacc <= tg || wacc <= -1 {
		return nil, fmt.Errorf("wacc=%g terminal_growth=%g: %w", wacc, tg, ErrDiscountRate)
	}

	var pvFCF, fcf float64
	for year := 1; year <= m.Years; year++ {
		revenue *= 1 + growth
		fcf = revenue * margin * m.CashConversion
		pvFCF += fcf / math.Pow(1+wacc, float64(year))
	}
	terminal := fcf * (1 + tg) / (wacc - tg)
	pvTerminal := terminal / math.Pow(1+wacc, float64(m.Years))

	return map[string]float64{
		OutEnterpriseValue: pvFCF + pvTerminal,
		OutPVFCF:           pvFCF,
		OutPVTerminal:      pvTerminal,
	}, nil
}

// need reads names from in, in order.
func need(in map[string]float64, names ...string) ([]float64, error) {
	out := make([]float64, len(names))
	for i, n := range names {
		v, ok := in[n]
		if !ok {
			return nil, fmt.Errorf("%q: %w", n, ErrMissingInput)
		}
		out[i] = v
	}

	return out, nil
}
