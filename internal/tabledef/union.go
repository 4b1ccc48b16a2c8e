package tabledef

import (
	"log/slog"

	"github.com/benchtable/tablegen/internal/task"
)

// MergeUnion aggregates several result-derived run sets into one synthetic
// run set <union>. DESIGN.md's Open Question (a)
// decision applies here: when more than one member reports the same task
// id, the later member (in document order) wins and the earlier one is
// dropped with a warning naming both source run sets, since a <union> is
// conceptually one merged run set and later data supersedes earlier
// placeholder data.
func MergeUnion(name string, members []*task.RunSetResult, logger *slog.Logger) *task.RunSetResult {
	if logger == nil {
		logger = slog.Default()
	}

	if len(members) == 0 {
		return nil
	}

	merged := &task.RunSetResult{
		RunsetName: name,
		Columns:    members[0].Columns,
	}

	byID := map[task.ID]*task.RunResult{}
	source := map[task.ID]string{}
	order := []task.ID{}

	for _, rs := range members {
		for _, r := range rs.Runs {
			if _, exists := byID[r.TaskID]; exists {
				logger.Warn("union task id collision, later result wins",
					"task", r.TaskID.Name,
					"previous_runset", source[r.TaskID],
					"winning_runset", rs.RunsetName,
				)
			} else {
				order = append(order, r.TaskID)
			}

			byID[r.TaskID] = r
			source[r.TaskID] = rs.RunsetName
		}
	}

	merged.Runs = make([]*task.RunResult, 0, len(order))
	for _, id := range order {
		merged.Runs = append(merged.Runs, byID[id])
	}

	return merged
}
