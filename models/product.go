// SPDX-License-Identifier: MIT

package models

// Product multiplies the named inputs into a single output.
type Product struct {
	Output string
	Inputs []string
}

// Evaluate implements simulation.Model.
func (m Product) Evaluate(in map[string]float64) (map[string]float64, error) {
	v, err := need(in, m.Inputs...)
	if err != nil {
		return nil, err
	}
	p := 1.0
	for _, x := range v {
		p *= x
	}

	return map[string]float64{m.Output: p}, nil
}
