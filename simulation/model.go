// SPDX-License-Identifier: MIT

package simulation

// Model is a deterministic valuation: one set of sampled inputs in, named
// outputs out. Evaluate is called once per trial, in trial order, and must
// return the same key set every time. The inputs map is owned by the callee
// for the duration of the call.
type Model interface {
	Evaluate(inputs map[string]float64) (map[string]float64, error)
}

// ModelFunc adapts a plain function to Model.
type ModelFunc func(inputs map[string]float64) (map[string]float64, error)

// Evaluate calls f(inputs).
func (f ModelFunc) Evaluate(inputs map[string]float64) (map[string]float64, error) {
	return f(inputs)
}
