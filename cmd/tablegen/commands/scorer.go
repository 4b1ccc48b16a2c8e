package commands

import (
	"strings"

	"github.com/benchtable/tablegen/internal/task"
	"github.com/benchtable/tablegen/pkg/decimalx"
)

// defaultScorer is the CLI's out-of-the-box task.Scorer. Verdict scoring is
// an external collaborator by design: it does not know a task's expected
// verdict, so it can only classify by shape, not correctness: every non-empty,
// non-error status is CategoryUnknown and every score is zero. Embedders
// that know expected verdicts supply their own task.Scorer through
// internal/aggregate.Options.Scorer instead of this one.
type defaultScorer struct{}

func (defaultScorer) Category(_ task.ID, status string) task.Category {
	switch {
	case status == "":
		return task.CategoryMissing
	case strings.EqualFold(status, "error") || strings.HasPrefix(strings.ToLower(status), "error "):
		return task.CategoryError
	default:
		return task.CategoryUnknown
	}
}

func (defaultScorer) Score(_ task.ID, _ task.Category, _ string) decimalx.Extended {
	return decimalx.FromFloat64(0)
}
