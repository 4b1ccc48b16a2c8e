package reconcile_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benchtable/tablegen/internal/column"
	"github.com/benchtable/tablegen/internal/reconcile"
	"github.com/benchtable/tablegen/internal/task"
)

func run(name string) *task.RunResult {
	id := task.ID{Name: name}

	return &task.RunResult{TaskID: id, Category: task.CategoryCorrect}
}

func runSet(names ...string) *task.RunSetResult {
	rs := &task.RunSetResult{Columns: []*column.Column{{Title: "status"}}}
	for _, n := range names {
		rs.Runs = append(rs.Runs, run(n))
	}

	return rs
}

func taskNames(rows []task.Row) []string {
	names := make([]string, len(rows))
	for i, r := range rows {
		names[i] = r.TaskID.Name
	}

	return names
}

func TestReconcile_UnionOneMissingTask(t *testing.T) {
	t.Parallel()

	a := runSet("t1", "t2")
	b := runSet("t1")

	rows := reconcile.Reconcile([]*task.RunSetResult{a, b}, reconcile.Union, slog.Default())

	assert.Equal(t, []string{"t1", "t2"}, taskNames(rows))
	require.Len(t, rows, 2)
	assert.Len(t, rows[1].Results, 2)
	assert.Equal(t, task.CategoryMissing, rows[1].Results[1].Category)
}

func TestReconcile_UnionPreservesFirstOccurrenceOrder(t *testing.T) {
	t.Parallel()

	a := runSet("t2", "t3")
	b := runSet("t1", "t2")

	rows := reconcile.Reconcile([]*task.RunSetResult{a, b}, reconcile.Union, slog.Default())

	// a places t2,t3; b's cursor starts again before the first entry, so its
	// new t1 is inserted at the front and its t2 is then found at index 1.
	assert.Equal(t, []string{"t1", "t2", "t3"}, taskNames(rows))
}

func TestReconcile_UnionContainsEveryTaskExactlyOnce(t *testing.T) {
	t.Parallel()

	a := runSet("t1", "t2", "t3")
	b := runSet("t2", "t4")

	rows := reconcile.Reconcile([]*task.RunSetResult{a, b}, reconcile.Union, slog.Default())

	seen := map[string]int{}
	for _, r := range rows {
		seen[r.TaskID.Name]++
	}

	for _, name := range []string{"t1", "t2", "t3", "t4"} {
		assert.Equal(t, 1, seen[name], name)
	}
}

func TestReconcile_Intersection(t *testing.T) {
	t.Parallel()

	a := runSet("t1", "t2", "t3")
	b := runSet("t2", "t3", "t4")

	rows := reconcile.Reconcile([]*task.RunSetResult{a, b}, reconcile.Intersection, slog.Default())

	assert.Equal(t, []string{"t2", "t3"}, taskNames(rows))
}

func TestReconcile_IntersectionIsSubsequenceOfFirstRunSet(t *testing.T) {
	t.Parallel()

	a := runSet("t1", "t2", "t3", "t4")
	b := runSet("t2", "t4")

	rows := reconcile.Reconcile([]*task.RunSetResult{a, b}, reconcile.Intersection, slog.Default())

	assert.Equal(t, []string{"t2", "t4"}, taskNames(rows))
}

func TestReconcile_DuplicateTaskDroppedWithWarning(t *testing.T) {
	t.Parallel()

	rs := runSet("t1", "t1", "t2")

	rows := reconcile.Reconcile([]*task.RunSetResult{rs}, reconcile.Union, slog.Default())

	assert.Equal(t, []string{"t1", "t2"}, taskNames(rows))
}

func TestReconcile_EmptyInput(t *testing.T) {
	t.Parallel()

	rows := reconcile.Reconcile(nil, reconcile.Union, slog.Default())
	assert.Nil(t, rows)
}
