package task_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/benchtable/tablegen/internal/column"
	"github.com/benchtable/tablegen/internal/task"
)

func TestClassifyStatus(t *testing.T) {
	t.Parallel()

	assert.Equal(t, task.ClassificationTrue, task.ClassifyStatus("TRUE"))
	assert.Equal(t, task.ClassificationTrue, task.ClassifyStatus("true"))
	assert.Equal(t, task.ClassificationFalse, task.ClassifyStatus("FALSE(reach)"))
	assert.Equal(t, task.ClassificationNone, task.ClassifyStatus("TIMEOUT"))
	assert.Equal(t, task.ClassificationNone, task.ClassifyStatus("ERROR"))
}

func TestCategory_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "correct", task.CategoryCorrect.String())
	assert.Equal(t, "missing", task.CategoryMissing.String())
	assert.Equal(t, "unknown", task.CategoryUnknown.String())
}

func TestRunResult_ValueAndColumnIndex(t *testing.T) {
	t.Parallel()

	cols := []*column.Column{{Title: "status"}, {Title: "cputime"}}
	r := &task.RunResult{
		Columns: cols,
		Values:  []task.Cell{task.TextCell("true"), task.NullCell()},
	}

	assert.Equal(t, 0, r.ColumnIndex("status"))
	assert.Equal(t, -1, r.ColumnIndex("absent"))
	assert.True(t, r.Value("absent").Num.IsNull())
}

func TestMissing_AllValuesNull(t *testing.T) {
	t.Parallel()

	cols := []*column.Column{{Title: "status"}, {Title: "cputime"}}
	id := task.ID{Name: "t1.c", Properties: "reach", Runset: "run-0"}

	r := task.Missing(id, cols)
	assert.Equal(t, task.CategoryMissing, r.Category)
	assert.Len(t, r.Values, 2)

	for _, v := range r.Values {
		assert.True(t, v.Num.IsNull())
	}
}

func TestRow_FilenameAndProperties(t *testing.T) {
	t.Parallel()

	row := task.Row{TaskID: task.ID{Name: "t1.c", Properties: "reach"}}
	assert.Equal(t, "t1.c", row.Filename())
	assert.Equal(t, "reach", row.Properties())
}
