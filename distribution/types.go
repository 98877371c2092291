// SPDX-License-Identifier: MIT

package distribution

import (
	"errors"
	"sort"
)

// Family tags a supported probability law.
type Family string

const (
	// Normal is the Gaussian law N(mean, std²).
	Normal Family = "normal"

	// LogNormal is parameterised by the arithmetic mean/std of the variable.
	LogNormal Family = "lognormal"

	// Triangular is the standard triangular law on [low, high] with peak at mode.
	Triangular Family = "triangular"

	// Uniform is the continuous uniform law on [low, high].
	Uniform Family = "uniform"

	// PERT is the modified-Beta law on [low, high].
	PERT Family = "pert"
)

// Parameter keys.
const (
	KeyMean   = "mean"
	KeyStd    = "std"
	KeyLow    = "low"
	KeyMode   = "mode"
	KeyHigh   = "high"
	KeyLambda = "lambda"
)

// DefaultPERTLambda is the PERT shape used when "lambda" is omitted.
const DefaultPERTLambda = 4.0

// Params maps a family-specific parameter key to its value.
type Params map[string]float64

// required lists the keys each family must carry.
var required = map[Family][]string{
	Normal:     {KeyMean, KeyStd},
	LogNormal:  {KeyMean, KeyStd},
	Triangular: {KeyLow, KeyMode, KeyHigh},
	Uniform:    {KeyLow, KeyHigh},
	PERT:       {KeyLow, KeyMode, KeyHigh},
}

// Families returns every supported family tag in lexical order.
func Families() []Family {
	out := make([]Family, 0, len(required))
	for f := range required {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// ParseFamily maps a tag to a Family, or fails with ErrUnsupportedDistribution.
func ParseFamily(tag string) (Family, error) {
	f := Family(tag)
	if _, ok := required[f]; !ok {
		return "", familyErrorf(tag, ErrUnsupportedDistribution)
	}

	return f, nil
}

// Sentinel errors.
var (
	// ErrUnsupportedDistribution is returned for an unrecognised family tag.
	ErrUnsupportedDistribution = errors.New("distribution: unsupported distribution")

	// ErrMissingParameter is returned when a family-required key is absent.
	ErrMissingParameter = errors.New("distribution: missing parameter")

	// ErrInvalidParameter is returned for non-finite values or violated relations
	// (std < 0, low > high, mode outside [low, high], lognormal mean ≤ 0, lambda ≤ 0).
	ErrInvalidParameter = errors.New("distribution: invalid parameter")

	// ErrInvalidCount is returned when Sample is asked for n ≤ 0 draws.
	ErrInvalidCount = errors.New("distribution: sample count must be > 0")

	// ErrNilSource is returned when Sample receives a nil random source.
	ErrNilSource = errors.New("distribution: nil random source")

	// ErrNoInverseCDF is returned by Quantile for families without a closed-form inverse CDF.
	ErrNoInverseCDF = errors.New("distribution: no closed-form inverse CDF")

	// ErrInvalidProbability is returned by Quantile for p outside [0, 1].
	ErrInvalidProbability = errors.New("distribution: probability outside [0, 1]")

	// ErrEmptyName is returned when a distribution is constructed without a variable name.
	ErrEmptyName = errors.New("distribution: empty variable name")
)
