// Package task holds the data model shared by every stage downstream of
// result loading: task identity, categories/classifications, RunResult,
// RunSetResult, and Row. Keeping these types in one package
// lets C5 through C9 share a single vocabulary instead of each component
// re-deriving task identity or category semantics.
package task

import (
	"strings"

	"github.com/benchtable/tablegen/internal/column"
	"github.com/benchtable/tablegen/pkg/decimalx"
)

// ID is the 3-tuple identifying a benchmarked input:
// "(name, properties, runset)". Equality is tuple equality; a Go struct
// value already gives us that for free, so ID is directly usable as a map
// key.
type ID struct {
	Name       string
	Properties string
	Runset     string
}

// Category is the verdict about the tool's verdict.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryCorrect
	CategoryCorrectUnconfirmed
	CategoryWrong
	CategoryError
	CategoryMissing
)

// String implements fmt.Stringer.
func (c Category) String() string {
	switch c {
	case CategoryCorrect:
		return "correct"
	case CategoryCorrectUnconfirmed:
		return "correct-unconfirmed"
	case CategoryWrong:
		return "wrong"
	case CategoryError:
		return "error"
	case CategoryMissing:
		return "missing"
	default:
		return "unknown"
	}
}

// Classification is the shape of a status string)"), derived purely from the
// status text with no external input.
type Classification int

const (
	ClassificationNone Classification = iota
	ClassificationTrue
	ClassificationFalse
)

// String implements fmt.Stringer.
func (c Classification) String() string {
	switch c {
	case ClassificationTrue:
		return "true"
	case ClassificationFalse:
		return "false"
	default:
		return ""
	}
}

// ClassifyStatus derives a Classification from a raw status string: "TRUE"
// (case-insensitive) classifies as true; any status beginning with "false"
// (e.g. "FALSE(reach)") classifies as false; anything else (TIMEOUT, ERROR,
// OUT OF MEMORY, ...) has no classification.
func ClassifyStatus(status string) Classification {
	lower := strings.ToLower(strings.TrimSpace(status))

	switch {
	case lower == "true":
		return ClassificationTrue
	case strings.HasPrefix(lower, "false"):
		return ClassificationFalse
	default:
		return ClassificationNone
	}
}

// Scorer is the external scoring collaborator: a numeric reward assigned
// per run based on (task, properties, category, status), and the
// category-assignment step (a verdict checker comparing status against
// the task's expected result, which this pipeline never computes itself).
// Both methods are pure functions of their inputs.
type Scorer interface {
	// Category returns the verdict category for one run, given its task id
	// and raw status string.
	Category(id ID, status string) Category
	// Score returns the numeric reward for one run.
	Score(id ID, category Category, status string) decimalx.Extended
}

// Cell is one run's value for one column. Text, status, and main-status
// columns are driven by Raw; integer/decimal/measurement columns are driven
// by Num. Both are always populated when known so callers never have to
// guess which one a column type needs — column.Type says which to read.
type Cell struct {
	Raw string
	Num decimalx.Extended
}

// NullCell is the Cell for a value that could not be resolved (missing
// task, missing log, failed extraction).
func NullCell() Cell {
	return Cell{Num: decimalx.Null()}
}

// TextCell builds a Cell from a raw string, parsing it as an extended real
// opportunistically so numeric-looking text columns still sort/aggregate if
// asked to.
func TextCell(raw string) Cell {
	num, ok := decimalx.ParseString(raw)
	if !ok {
		num = decimalx.Null()
	}

	return Cell{Raw: raw, Num: num}
}

// RunResult is one (run set × task) outcome.
type RunResult struct {
	TaskID           ID
	Status           string
	Category         Category
	Classification   Classification
	Score            decimalx.Extended
	LogFile          string
	Columns          []*column.Column
	Values           []Cell
	DiffRelevant     map[string]bool
	SourcefilesExist bool
}

// ColumnIndex returns the index of the column titled name, or -1.
func (r *RunResult) ColumnIndex(name string) int {
	for i, c := range r.Columns {
		if c.Title == name {
			return i
		}
	}

	return -1
}

// Value returns the value of column name for this run, or a null Cell if
// the run has no such column.
func (r *RunResult) Value(name string) Cell {
	i := r.ColumnIndex(name)
	if i < 0 {
		return NullCell()
	}

	return r.Values[i]
}

// Missing builds the synthetic RunResult used for a task absent from a
// run set: category=missing, every value null.
func Missing(id ID, columns []*column.Column) *RunResult {
	values := make([]Cell, len(columns))
	for i := range values {
		values[i] = NullCell()
	}

	return &RunResult{
		TaskID:       id,
		Category:     CategoryMissing,
		Score:        decimalx.Null(),
		Columns:      columns,
		Values:       values,
		DiffRelevant: map[string]bool{},
	}
}
