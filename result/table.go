// SPDX-License-Identifier: MIT

package result

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/google/uuid"

	"github.com/katalvlaran/lvmc/matrix"
)

// TrialColumn is the reserved name of the trial index column.
const TrialColumn = "trial"

var (
	// ErrUnknownColumn is returned for a column the table does not hold.
	ErrUnknownColumn = errors.New("result: unknown column")

	// ErrDuplicateColumn is returned by New when names collide.
	ErrDuplicateColumn = errors.New("result: duplicate column")

	// ErrRowShape is returned by SetRow when the value counts do not match the columns.
	ErrRowShape = errors.New("result: row shape mismatch")
)

// Meta describes how the table was produced.
type Meta struct {
	RunID uuid.UUID
	Seed  uint64

	// Correlated is true when a correlation matrix was imposed.
	Correlated bool

	// Repaired and MaxDeviation mirror correlation.Factorization.
	Repaired     bool
	MaxDeviation float64

	// Effective is the correlation actually imposed (nil when uncorrelated).
	Effective *matrix.Dense
}

// Table is a trial-indexed row-major table.
type Table struct {
	Meta

	inputs  []string
	outputs []string
	index   map[string]int
	data    *matrix.Dense
}

// New allocates a table with n rows and a fresh RunID. Trial indices
// 0..n-1 are filled in.
func New(n int, inputs, outputs []string) (*Table, error) {
	cols := 1 + len(inputs) + len(outputs)
	index := make(map[string]int, cols)
	index[TrialColumn] = 0
	for i, name := range append(append([]string(nil), inputs...), outputs...) {
		if _, dup := index[name]; dup {
			return nil, fmt.Errorf("New: %q: %w", name, ErrDuplicateColumn)
		}
		index[name] = i + 1
	}
	data, err := matrix.NewDense(n, cols)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	for i := 0; i < n; i++ {
		_ = data.Set(i, 0, float64(i))
	}

	return &Table{
		Meta:    Meta{RunID: uuid.New()},
		inputs:  append([]string(nil), inputs...),
		outputs: append([]string(nil), outputs...),
		index:   index,
		data:    data,
	}, nil
}

// SetRow writes the input and output values of trial i.
func (t *Table) SetRow(i int, inputs, outputs []float64) error {
	if len(inputs) != len(t.inputs) || len(outputs) != len(t.outputs) {
		return fmt.Errorf("SetRow: %d/%d values for %d/%d columns: %w",
			len(inputs), len(outputs), len(t.inputs), len(t.outputs), ErrRowShape)
	}
	for j, v := range inputs {
		if err := t.data.Set(i, 1+j, v); err != nil {
			return fmt.Errorf("SetRow: %w", err)
		}
	}
	off := 1 + len(t.inputs)
	for j, v := range outputs {
		if err := t.data.Set(i, off+j, v); err != nil {
			return fmt.Errorf("SetRow: %w", err)
		}
	}

	return nil
}

// Len returns the number of trials.
func (t *Table) Len() int { return t.data.Rows() }

// Columns returns every column name in table order.
func (t *Table) Columns() []string {
	out := make([]string, 0, 1+len(t.inputs)+len(t.outputs))
	out = append(out, TrialColumn)
	out = append(out, t.inputs...)

	return append(out, t.outputs...)
}

// Inputs returns the input column names in registration order.
func (t *Table) Inputs() []string { return append([]string(nil), t.inputs...) }

// Outputs returns the output column names.
func (t *Table) Outputs() []string { return append([]string(nil), t.outputs...) }

// Has reports whether the table holds a column.
func (t *Table) Has(name string) bool {
	_, ok := t.index[name]

	return ok
}

// Column returns a copy of one column.
func (t *Table) Column(name string) ([]float64, error) {
	j, ok := t.index[name]
	if !ok {
		return nil, fmt.Errorf("Column: %q: %w", name, ErrUnknownColumn)
	}

	return t.data.Col(j)
}

// Rows returns a row-major copy of the table.
func (t *Table) Rows() [][]float64 {
	out := make([][]float64, t.data.Rows())
	for i := range out {
		out[i], _ = t.data.Row(i)
	}

	return out
}

// Dense returns a copy of the backing matrix.
func (t *Table) Dense() *matrix.Dense { return t.data.Clone().(*matrix.Dense) }

// WriteCSV writes a header line and one record per trial.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns()); err != nil {
		return fmt.Errorf("WriteCSV: %w", err)
	}
	rec := make([]string, t.data.Cols())
	for i := 0; i < t.data.Rows(); i++ {
		row, _ := t.data.Row(i)
		rec[0] = strconv.Itoa(i)
		for j := 1; j < len(row); j++ {
			rec[j] = strconv.FormatFloat(row[j], 'g', -1, 64)
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("WriteCSV: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("WriteCSV: %w", err)
	}

	return nil
}
