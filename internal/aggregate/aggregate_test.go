package aggregate_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benchtable/tablegen/internal/aggregate"
	"github.com/benchtable/tablegen/internal/reconcile"
	"github.com/benchtable/tablegen/internal/task"
	"github.com/benchtable/tablegen/pkg/decimalx"
)

type stubScorer struct{}

func (stubScorer) Category(id task.ID, status string) task.Category {
	switch {
	case status == "true":
		return task.CategoryCorrect
	case strings.HasPrefix(status, "false"):
		return task.CategoryWrong
	default:
		return task.CategoryError
	}
}

func (s stubScorer) Score(id task.ID, category task.Category, status string) decimalx.Extended {
	if category == task.CategoryCorrect {
		return decimalx.FromFloat64(1)
	}

	return decimalx.FromFloat64(-16)
}

const resultA = `<?xml version="1.0"?>
<result tool="cpachecker" version="2.1" benchmarkname="bench" toolmodule="cpachecker">
  <run name="task1.c" files="task1.c" properties="reach" status="true">
    <column title="status" value="true"/>
    <column title="cputime" value="1.23"/>
  </run>
  <run name="task2.c" files="task2.c" properties="reach" status="false(reach)">
    <column title="status" value="false(reach)"/>
    <column title="cputime" value="4.56"/>
  </run>
</result>`

const resultB = `<?xml version="1.0"?>
<result tool="cpachecker" version="2.2" benchmarkname="bench" toolmodule="cpachecker">
  <run name="task1.c" files="task1.c" properties="reach" status="true">
    <column title="status" value="true"/>
    <column title="cputime" value="1.00"/>
  </run>
</result>`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestRun_TwoRunSetsOneMissingTask(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	fileA := writeFile(t, dir, "results.A.xml", resultA)
	fileB := writeFile(t, dir, "results.B.xml", resultB)

	result, err := aggregate.Run(context.Background(), aggregate.Options{
		Inputs: []string{fileA, fileB},
		Scorer: stubScorer{},
		Mode:   reconcile.Union,
	})
	require.NoError(t, err)
	require.Len(t, result.RunSets, 2)
	require.Len(t, result.Rows, 2)

	var t2Row *task.Row

	for i := range result.Rows {
		if result.Rows[i].TaskID.Name == "task2.c" {
			t2Row = &result.Rows[i]
		}
	}

	require.NotNil(t, t2Row)
	assert.Equal(t, task.CategoryMissing, t2Row.Results[1].Category)
}

func TestRun_DiffDetectsDisagreement(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	fileA := writeFile(t, dir, "results.A.xml", resultA)
	fileB := writeFile(t, dir, "results.B.xml", resultB)

	result, err := aggregate.Run(context.Background(), aggregate.Options{
		Inputs: []string{fileA, fileB},
		Scorer: stubScorer{},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.DiffRaw.Rows)
}

func TestBuildDump_ReportsRegressionsAndStats(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	fileA := writeFile(t, dir, "results.A.xml", resultA)
	fileB := writeFile(t, dir, "results.B.xml", resultB)

	result, err := aggregate.Run(context.Background(), aggregate.Options{
		Inputs: []string{fileA, fileB},
		Scorer: stubScorer{},
	})
	require.NoError(t, err)

	dump := aggregate.BuildDump(result, true)
	assert.Contains(t, dump, "REGRESSIONS")
	assert.Contains(t, dump, "STATS")
}

func TestEmit_WritesCSVFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	fileA := writeFile(t, dir, "results.A.xml", resultA)

	result, err := aggregate.Run(context.Background(), aggregate.Options{
		Inputs: []string{fileA},
		Scorer: stubScorer{},
	})
	require.NoError(t, err)

	outDir := t.TempDir()

	err = aggregate.Emit(result, aggregate.EmitOptions{
		OutputPath:      outDir,
		Name:            "bench",
		Formats:         []string{"csv"},
		SingleInputFile: true,
	})
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(outDir, "bench.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "status")
}
