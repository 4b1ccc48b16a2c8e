package aggregate

import (
	"fmt"
	"strings"

	"github.com/benchtable/tablegen/internal/reconcile"
	"github.com/benchtable/tablegen/internal/task"
)

// BuildDump renders the -d/--dump regression-count output:
// one REGRESSIONS line, one STATS line, then one "correct wrong
// unknown-or-error-or-missing" line per run set, in run-set order.
//
// correct-unconfirmed counts alongside correct: both classify the tool's
// verdict as correct for counting purposes, only the statistics engine
// (C7) needs to tell them apart. unknown/error/missing share the third
// bucket since none of them represent a verdict the tool stands behind.
func BuildDump(result *Result, ignoreFlappingTimeout bool) string {
	var b strings.Builder

	regressions := reconcile.CountRegressions(histories(result.Rows), ignoreFlappingTimeout)
	fmt.Fprintf(&b, "REGRESSIONS %d\n", regressions)
	b.WriteString("STATS\n")

	for i, rs := range result.RunSets {
		correct, wrong, other := 0, 0, 0

		for _, row := range result.Rows {
			if i >= len(row.Results) || row.Results[i] == nil {
				other++

				continue
			}

			switch row.Results[i].Category {
			case task.CategoryCorrect, task.CategoryCorrectUnconfirmed:
				correct++
			case task.CategoryWrong:
				wrong++
			default:
				other++
			}
		}

		fmt.Fprintf(&b, "%s %d %d %d\n", rs.RunsetName, correct, wrong, other)
	}

	return b.String()
}

func histories(rows []task.Row) []reconcile.History {
	out := make([]reconcile.History, 0, len(rows))

	for _, row := range rows {
		var statuses []string

		var newCategory task.Category

		for _, r := range row.Results {
			if r == nil {
				continue
			}

			statuses = append(statuses, r.Status)
			newCategory = r.Category
		}

		out = append(out, reconcile.History{
			TaskID:      row.TaskID,
			Statuses:    statuses,
			NewCategory: newCategory,
		})
	}

	return out
}
