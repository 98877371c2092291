// SPDX-License-Identifier: MIT

package distribution

import (
	"fmt"
	"math"
)

// Distribution is the declared law of one named random variable.
// It is immutable once constructed: the parameter map is copied in and
// Params() hands out copies.
type Distribution struct {
	name   string
	family Family
	params Params
}

// familyErrorf wraps a sentinel with the offending tag or variable name.
func familyErrorf(ctx string, err error) error {
	return fmt.Errorf("%s: %w", ctx, err)
}

// New declares a variable with the given family and parameters.
// An unknown family fails fast with ErrUnsupportedDistribution; missing keys
// are only reported when the law is first used (Sample/Quantile/Validate).
func New(name string, family Family, params Params) (*Distribution, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if _, ok := required[family]; !ok {
		return nil, familyErrorf(name, fmt.Errorf("family %q: %w", family, ErrUnsupportedDistribution))
	}
	cp := make(Params, len(params))
	for k, v := range params {
		cp[k] = v
	}

	return &Distribution{name: name, family: family, params: cp}, nil
}

// NewNormal declares name ~ N(mean, std²).
func NewNormal(name string, mean, std float64) *Distribution {
	return &Distribution{name: name, family: Normal, params: Params{KeyMean: mean, KeyStd: std}}
}

// NewLogNormal declares a lognormal variable whose own arithmetic mean and std are given.
func NewLogNormal(name string, mean, std float64) *Distribution {
	return &Distribution{name: name, family: LogNormal, params: Params{KeyMean: mean, KeyStd: std}}
}

// NewTriangular declares name ~ Triangular(low, mode, high).
func NewTriangular(name string, low, mode, high float64) *Distribution {
	return &Distribution{name: name, family: Triangular, params: Params{KeyLow: low, KeyMode: mode, KeyHigh: high}}
}

// NewUniform declares name ~ U(low, high).
func NewUniform(name string, low, high float64) *Distribution {
	return &Distribution{name: name, family: Uniform, params: Params{KeyLow: low, KeyHigh: high}}
}

// NewPERT declares name ~ PERT(low, mode, high, lambda).
// lambda ≤ 0 is rejected at use time; pass DefaultPERTLambda for the classic shape.
func NewPERT(name string, low, mode, high, lambda float64) *Distribution {
	return &Distribution{name: name, family: PERT, params: Params{KeyLow: low, KeyMode: mode, KeyHigh: high, KeyLambda: lambda}}
}

// Name returns the variable name.
func (d *Distribution) Name() string { return d.name }

// Family returns the family tag.
func (d *Distribution) Family() Family { return d.family }

// Params returns a copy of the parameter map.
func (d *Distribution) Params() Params {
	cp := make(Params, len(d.params))
	for k, v := range d.params {
		cp[k] = v
	}

	return cp
}

// HasInverseCDF reports whether Quantile is exact for this family.
func (d *Distribution) HasInverseCDF() bool {
	switch d.family {
	case Normal, Triangular, Uniform:
		return true
	default:
		return false
	}
}

// String renders "name~family(k=v, ...)" with keys in family order.
func (d *Distribution) String() string {
	s := d.name + "~" + string(d.family) + "("
	for i, k := range required[d.family] {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%s=%g", k, d.params[k])
	}

	return s + ")"
}

// Validate checks the family tag, required keys and parameter relations.
func (d *Distribution) Validate() error {
	_, err := d.resolve()

	return err
}

// shape holds resolved, validated parameters.
type shape struct {
	mean, std       float64
	low, mode, high float64
	lambda          float64
}

// resolve validates the declaration and returns the parameters it needs.
func (d *Distribution) resolve() (shape, error) {
	var s shape
	keys, ok := required[d.family]
	if !ok {
		return s, familyErrorf(d.name, fmt.Errorf("family %q: %w", d.family, ErrUnsupportedDistribution))
	}
	for _, k := range keys {
		v, ok := d.params[k]
		if !ok {
			return s, familyErrorf(d.name, fmt.Errorf("%s requires %q: %w", d.family, k, ErrMissingParameter))
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return s, familyErrorf(d.name, fmt.Errorf("%s=%g: %w", k, v, ErrInvalidParameter))
		}
	}

	invalid := func(format string, args ...any) error {
		return familyErrorf(d.name, fmt.Errorf(format+": %w", append(args, ErrInvalidParameter)...))
	}
	switch d.family {
	case Normal, LogNormal:
		s.mean, s.std = d.params[KeyMean], d.params[KeyStd]
		if s.std < 0 {
			return s, invalid("std=%g < 0", s.std)
		}
		if d.family == LogNormal && s.mean <= 0 {
			return s, invalid("lognormal mean=%g ≤ 0", s.mean)
		}
	case Uniform:
		s.low, s.high = d.params[KeyLow], d.params[KeyHigh]
		if s.low > s.high {
			return s, invalid("low=%g > high=%g", s.low, s.high)
		}
	case Triangular, PERT:
		s.low, s.mode, s.high = d.params[KeyLow], d.params[KeyMode], d.params[KeyHigh]
		if s.low > s.mode || s.mode > s.high {
			return s, invalid("need low ≤ mode ≤ high, got %g, %g, %g", s.low, s.mode, s.high)
		}
		s.lambda = DefaultPERTLambda
		if v, ok := d.params[KeyLambda]; ok && d.family == PERT {
			if !(v > 0) || math.IsInf(v, 0) {
				return s, invalid("lambda=%g", v)
			}
			s.lambda = v
		}
	}

	return s, nil
}
