package diff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benchtable/tablegen/internal/column"
	"github.com/benchtable/tablegen/internal/diff"
	"github.com/benchtable/tablegen/internal/task"
)

var statusColumns = []*column.Column{{Title: "status"}}

func rr(status string) *task.RunResult {
	return &task.RunResult{
		Columns:      statusColumns,
		DiffRelevant: map[string]bool{},
		Values:       []task.Cell{task.TextCell(status)},
	}
}

func TestFilter_EmptyInput(t *testing.T) {
	t.Parallel()

	result := diff.Filter(nil)
	assert.Empty(t, result.Rows)
	assert.Empty(t, result.Note)
}

func TestFilter_SingleRunSet(t *testing.T) {
	t.Parallel()

	rows := []task.Row{{Results: []*task.RunResult{rr("true")}}}

	result := diff.Filter(rows)
	assert.Empty(t, result.Rows)
}

func TestFilter_DefaultsToStatusWhenNoneDeclared(t *testing.T) {
	t.Parallel()

	rows := []task.Row{
		{Results: []*task.RunResult{rr("TRUE"), rr("FALSE(unreach-call)")}},
	}

	result := diff.Filter(rows)
	require.Len(t, result.Rows, 1)
	assert.Contains(t, result.Rows[0].Columns, "status")
}

func TestFilter_AgreeingRowDropped(t *testing.T) {
	t.Parallel()

	rows := []task.Row{
		{Results: []*task.RunResult{rr("TRUE"), rr("TRUE")}},
	}

	result := diff.Filter(rows)
	assert.Empty(t, result.Rows)
}

func TestFilter_EveryRowDiffersReturnsNote(t *testing.T) {
	t.Parallel()

	rows := []task.Row{
		{Results: []*task.RunResult{rr("TRUE"), rr("FALSE(a)")}},
		{Results: []*task.RunResult{rr("TRUE"), rr("FALSE(b)")}},
	}

	result := diff.Filter(rows)
	assert.Empty(t, result.Rows)
	assert.NotEmpty(t, result.Note)
}

func TestHighlight_ProducesDiffOps(t *testing.T) {
	t.Parallel()

	diffs := diff.Highlight("TRUE", "FALSE")
	assert.NotEmpty(t, diffs)
}
