package reconcile

import (
	"strings"

	"github.com/benchtable/tablegen/internal/task"
)

// History is one task's main-status values across successive benchmark
// runs, oldest first, with the most recently produced run last. Regression
// counting only ever looks at the last two entries: whatever came before
// them never changes the verdict. A long history doesn't need replaying,
// only the latest transition does.
type History struct {
	TaskID      task.ID
	Statuses    []string
	NewCategory task.Category
}

// CountRegressions implements the flapping-timeout-aware regression rule:
// a task regresses when its newest category is not correct and its newest
// status differs from the one before it. When ignoreFlappingTimeout is
// true, a transition between two different TIMEOUT statuses is not counted;
// when it is false, such a TIMEOUT-to-TIMEOUT transition still counts.
func CountRegressions(histories []History, ignoreFlappingTimeout bool) int {
	n := 0

	for _, h := range histories {
		if regressed(h, ignoreFlappingTimeout) {
			n++
		}
	}

	return n
}

func regressed(h History, ignoreFlappingTimeout bool) bool {
	if len(h.Statuses) < 2 {
		return false
	}

	oldStatus := h.Statuses[len(h.Statuses)-2]
	newStatus := h.Statuses[len(h.Statuses)-1]

	if h.NewCategory == task.CategoryCorrect {
		return false
	}

	if oldStatus == newStatus {
		return false
	}

	if ignoreFlappingTimeout && isTimeout(oldStatus) && isTimeout(newStatus) {
		return false
	}

	return true
}

func isTimeout(status string) bool {
	return strings.HasPrefix(strings.ToUpper(strings.TrimSpace(status)), "TIMEOUT")
}
