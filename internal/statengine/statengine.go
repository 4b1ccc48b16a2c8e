// Package statengine implements the statistics engine: per column, per
// run set, the eleven rows of counts/sums partitioned by
// (category, classification), using extended-real arithmetic so sums of
// many durations never accumulate binary-float error.
//
// Uses a population-stddev convention throughout (divide by n, not n-1),
// built directly over pkg/decimalx's Extended via pkg/decimalx.Reduce so
// sums and standard deviations stay exact decimal arithmetic end to end.
package statengine

import (
	"github.com/benchtable/tablegen/internal/column"
	"github.com/benchtable/tablegen/internal/task"
	"github.com/benchtable/tablegen/pkg/decimalx"
)

// RowKind names one of the eleven statistics rows.
type RowKind int

const (
	RowTotal RowKind = iota
	RowCorrect
	RowCorrectTrue
	RowCorrectFalse
	RowCorrectUnconfirmed
	RowCorrectUnconfirmedTrue
	RowCorrectUnconfirmedFalse
	RowIncorrect
	RowWrongTrue
	RowWrongFalse
	RowScore
)

// String implements fmt.Stringer.
func (k RowKind) String() string {
	switch k {
	case RowTotal:
		return "total"
	case RowCorrect:
		return "correct"
	case RowCorrectTrue:
		return "correct-true"
	case RowCorrectFalse:
		return "correct-false"
	case RowCorrectUnconfirmed:
		return "correct-unconfirmed"
	case RowCorrectUnconfirmedTrue:
		return "correct-unconfirmed-true"
	case RowCorrectUnconfirmedFalse:
		return "correct-unconfirmed-false"
	case RowIncorrect:
		return "incorrect"
	case RowWrongTrue:
		return "wrong-true"
	case RowWrongFalse:
		return "wrong-false"
	case RowScore:
		return "score"
	default:
		return ""
	}
}

// allRows lists every row computed when correctOnly is false.
var allRows = []RowKind{
	RowTotal, RowCorrect, RowCorrectTrue, RowCorrectFalse,
	RowCorrectUnconfirmed, RowCorrectUnconfirmedTrue, RowCorrectUnconfirmedFalse,
	RowIncorrect, RowWrongTrue, RowWrongFalse, RowScore,
}

// correctOnlyRows is allRows with the incorrect/wrong-* rows removed, per
// DESIGN.md's Open Question (b) decision: correct-only "skips wrong-* rows"
// rather than computing and blanking them.
var correctOnlyRows = []RowKind{
	RowTotal, RowCorrect, RowCorrectTrue, RowCorrectFalse,
	RowCorrectUnconfirmed, RowCorrectUnconfirmedTrue, RowCorrectUnconfirmedFalse,
	RowScore,
}

// Cell is one (row, column) statistics cell. For status/main-status columns
// Count alone is meaningful");
// for numeric columns Stat carries the full reduction.
type Cell struct {
	Count int
	Stat  decimalx.Reduced
	Blank bool
}

// Table is the full set of computed rows for one column.
type Table struct {
	Column *column.Column
	Rows   map[RowKind]Cell
}

// sample is one row's (category, classification, value) triple aligned to
// one column.7's "column's values aligned with a
// parallel list of per-row (category, status) pairs".
type sample struct {
	category       task.Category
	classification task.Classification
	value          task.Cell
	score          decimalx.Extended
}

// Compute runs the statistics engine for one column across a run set's
// rows. runs holds, for each row, the RunResult belonging to this run set;
// callers pass task.Missing results through like any other.
func Compute(col *column.Column, runs []*task.RunResult, correctOnly bool) Table {
	samples := make([]sample, 0, len(runs))

	for _, r := range runs {
		samples = append(samples, sample{
			category:       r.Category,
			classification: r.Classification,
			value:          r.Value(col.Title),
			score:          r.Score,
		})
	}

	kinds := allRows
	if correctOnly {
		kinds = correctOnlyRows
	}

	t := Table{Column: col, Rows: make(map[RowKind]Cell, len(kinds))}

	for _, k := range kinds {
		t.Rows[k] = computeRow(k, col, samples)
	}

	totalCount := t.Rows[RowTotal].Count
	if totalCount == 0 {
		for k, c := range t.Rows {
			c.Blank = true
			t.Rows[k] = c
		}
	}

	return t
}

func computeRow(kind RowKind, col *column.Column, samples []sample) Cell {
	var matched []sample

	for _, s := range samples {
		if rowMatches(kind, s) {
			matched = append(matched, s)
		}
	}

	if kind == RowScore {
		return scoreCell(col, matched)
	}

	if col.Type == column.TypeStatus || col.Type == column.TypeMainStatus {
		return Cell{Count: len(matched), Stat: decimalx.Reduced{Count: len(matched), Sum: decimalx.FromFloat64(float64(len(matched)))}}
	}

	values := make([]decimalx.Extended, len(matched))
	for i, s := range matched {
		values[i] = s.value.Num
	}

	return Cell{Count: len(matched), Stat: decimalx.Reduce(values)}
}

// scoreCell implements "score ... only on the main-status column, sum of
// per-row scores; null on other columns".
func scoreCell(col *column.Column, matched []sample) Cell {
	if !col.IsMainStatus {
		return Cell{Stat: decimalx.Reduced{Sum: decimalx.Null(), Mean: decimalx.Null(), Median: decimalx.Null(), StdDev: decimalx.Null()}}
	}

	scores := make([]decimalx.Extended, len(matched))
	for i, s := range matched {
		scores[i] = s.score
	}

	return Cell{Count: len(matched), Stat: decimalx.Reduce(scores)}
}

func rowMatches(kind RowKind, s sample) bool {
	switch kind {
	case RowTotal:
		return s.category != task.CategoryMissing
	case RowCorrect:
		return s.category == task.CategoryCorrect
	case RowCorrectTrue:
		return s.category == task.CategoryCorrect && s.classification == task.ClassificationTrue
	case RowCorrectFalse:
		return s.category == task.CategoryCorrect && s.classification == task.ClassificationFalse
	case RowCorrectUnconfirmed:
		return s.category == task.CategoryCorrectUnconfirmed
	case RowCorrectUnconfirmedTrue:
		return s.category == task.CategoryCorrectUnconfirmed && s.classification == task.ClassificationTrue
	case RowCorrectUnconfirmedFalse:
		return s.category == task.CategoryCorrectUnconfirmed && s.classification == task.ClassificationFalse
	case RowIncorrect:
		return s.category == task.CategoryWrong
	case RowWrongTrue:
		return s.category == task.CategoryWrong && s.classification == task.ClassificationTrue
	case RowWrongFalse:
		return s.category == task.CategoryWrong && s.classification == task.ClassificationFalse
	case RowScore:
		return s.category != task.CategoryMissing
	default:
		return false
	}
}
