// SPDX-License-Identifier: MIT

package scenario

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvmc/distribution"
	"github.com/katalvlaran/lvmc/models"
	"github.com/katalvlaran/lvmc/report"
	"github.com/katalvlaran/lvmc/simulation"
)

// DefaultIterations is used when the file omits iterations.
const DefaultIterations = 10000

// Environment overrides.
const (
	EnvSeed       = "LVMC_SEED"
	EnvIterations = "LVMC_ITERATIONS"
)

// ErrInvalidScenario is returned by Validate.
var ErrInvalidScenario = errors.New("scenario: invalid scenario")

// Variable declares one input.
type Variable struct {
	Name         string             `yaml:"name"`
	Distribution string             `yaml:"distribution"`
	Params       map[string]float64 `yaml:"params"`
}

// Correlation declares corr(A, B) = Rho.
type Correlation struct {
	A   string  `yaml:"a"`
	B   string  `yaml:"b"`
	Rho float64 `yaml:"rho"`
}

// Report holds report settings.
type Report struct {
	Output        string    `yaml:"output"`
	Currency      string    `yaml:"currency,omitempty"`
	Precision     int       `yaml:"precision,omitempty"`
	Confidences   []float64 `yaml:"confidences,omitempty"`
	Targets       []float64 `yaml:"targets,omitempty"`
	InitialValue  float64   `yaml:"initial_value,omitempty"`
	VaRConfidence float64   `yaml:"var_confidence,omitempty"`
	Sensitivity   bool      `yaml:"sensitivity"`
}

// Scenario is the whole file.
type Scenario struct {
	Name         string        `yaml:"name"`
	Seed         uint64        `yaml:"seed"`
	Iterations   int           `yaml:"iterations"`
	Variables    []Variable    `yaml:"variables"`
	Correlations []Correlation `yaml:"correlations,omitempty"`
	Model        models.Config `yaml:"model"`
	Report       Report        `yaml:"report"`
}

// Default returns an empty scenario with default run and report settings.
func Default() *Scenario {
	d := report.DefaultOptions()

	return &Scenario{
		Iterations: DefaultIterations,
		Report: Report{
			Currency:      d.Currency,
			Precision:     d.Precision,
			Confidences:   d.Confidences,
			VaRConfidence: d.VaRConfidence,
			Sensitivity:   true,
		},
	}
}

// Parse decodes YAML over Default.
func Parse(data []byte) (*Scenario, error) {
	s := Default()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}

	return s, nil
}

// LoadFromFile reads path, applies environment overrides and validates.
func LoadFromFile(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, err
	}
	if err = s.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err = s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Scenario) applyEnvOverrides() error {
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvSeed, v, err)
		}
		s.Seed = seed
	}
	if v := os.Getenv(EnvIterations); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvIterations, v, err)
		}
		s.Iterations = n
	}

	return nil
}

// Validate checks structure only; distribution parameters are checked when
// the simulation samples.
func (s *Scenario) Validate() error {
	if s.Iterations <= 0 {
		return fmt.Errorf("iterations must be > 0, got %d: %w", s.Iterations, ErrInvalidScenario)
	}
	if len(s.Variables) == 0 {
		return fmt.Errorf("no variables: %w", ErrInvalidScenario)
	}
	for i, v := range s.Variables {
		if v.Name == "" {
			return fmt.Errorf("variables[%d]: missing name: %w", i, ErrInvalidScenario)
		}
		if _, err := distribution.ParseFamily(v.Distribution); err != nil {
			return fmt.Errorf("variables[%d] %q: %w", i, v.Name, err)
		}
	}
	if s.Model.Type == "" {
		return fmt.Errorf("model.type is required: %w", ErrInvalidScenario)
	}

	return nil
}

// Build registers variables and correlations on a new simulation and
// resolves the model.
func (s *Scenario) Build(opts ...simulation.Option) (*simulation.Simulation, simulation.Model, error) {
	model, err := models.Lookup(s.Model)
	if err != nil {
		return nil, nil, err
	}
	sim := simulation.New(append([]simulation.Option{simulation.WithSeed(s.Seed)}, opts...)...)
	for _, v := range s.Variables {
		if err = sim.Register(v.Name, distribution.Family(v.Distribution), v.Params); err != nil {
			return nil, nil, err
		}
	}
	for _, c := range s.Correlations {
		if err = sim.SetCorrelation(c.A, c.B, c.Rho); err != nil {
			return nil, nil, err
		}
	}

	return sim, model, nil
}

// ReportOutput returns the output to report on: report.output, else
// model.output.
func (s *Scenario) ReportOutput() string {
	if s.Report.Output != "" {
		return s.Report.Output
	}

	return s.Model.Output
}

// ReportOptions converts the report section into report.Options.
func (s *Scenario) ReportOptions() report.Options {
	o := report.DefaultOptions()
	if s.Report.Currency != "" {
		o.Currency = s.Report.Currency
	}
	o.Precision = s.Report.Precision
	if len(s.Report.Confidences) > 0 {
		o.Confidences = s.Report.Confidences
	}
	o.Targets = s.Report.Targets
	o.Initial = s.Report.InitialValue
	if s.Report.VaRConfidence > 0 {
		o.VaRConfidence = s.Report.VaRConfidence
	}
	o.Sensitivity = s.Report.Sensitivity

	return o
}
