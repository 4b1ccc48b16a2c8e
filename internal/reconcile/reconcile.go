// Package reconcile implements the task reconciler: merging the ordered
// task lists of N run sets into one canonical list,
// either as an order-preserving union or an intersection, then filling
// every run set's missing tasks with synthetic task.Missing results.
//
// The merge itself is a cursor walk over linear per-run-set orders, not a
// graph sort: its symtab type interns task.ID values to a canonical index
// with a plain map, the minimal machinery an O(1) "have I seen this id"
// and "what's its canonical index" lookup needs.
package reconcile

import (
	"log/slog"

	"github.com/benchtable/tablegen/internal/task"
)

// Mode selects the reconciliation strategy.
type Mode int

const (
	// Union produces the order-preserving merge of all run sets' task
	// lists.
	Union Mode = iota
	// Intersection (the spec's "common" mode) keeps only tasks present in
	// every run set.
	Intersection
)

// symtab interns task.ID values to their canonical index.
type symtab struct {
	idToIndex map[task.ID]int
	order     []task.ID
}

func newSymtab() *symtab {
	return &symtab{idToIndex: make(map[task.ID]int)}
}

func (s *symtab) indexOf(id task.ID) (int, bool) {
	i, ok := s.idToIndex[id]

	return i, ok
}

// insertAfter inserts id immediately after position cursor, shifting every
// later entry's index up by one, and returns id's new index.
func (s *symtab) insertAfter(cursor int, id task.ID) int {
	pos := cursor + 1

	s.order = append(s.order, task.ID{})
	copy(s.order[pos+1:], s.order[pos:])
	s.order[pos] = id

	for i := pos; i < len(s.order); i++ {
		s.idToIndex[s.order[i]] = i
	}

	return pos
}

// Reconcile merges runSets' task orders per mode, logs and drops duplicate
// tasks within one run set, and fills every run set's absent tasks with
// task.Missing results so every returned Row has exactly len(runSets)
// entries in run-set order.
func Reconcile(runSets []*task.RunSetResult, mode Mode, logger *slog.Logger) []task.Row {
	if logger == nil {
		logger = slog.Default()
	}

	if len(runSets) == 0 {
		return nil
	}

	var canonical []task.ID

	switch mode {
	case Intersection:
		canonical = intersectionOrder(runSets)
	default:
		canonical = unionOrder(runSets, logger)
	}

	byRunSet := make([]map[task.ID]*task.RunResult, len(runSets))
	for i, rs := range runSets {
		byRunSet[i] = indexRuns(rs, logger)
	}

	rows := make([]task.Row, 0, len(canonical))

	for _, id := range canonical {
		results := make([]*task.RunResult, len(runSets))

		for i, rs := range runSets {
			if r, ok := byRunSet[i][id]; ok {
				results[i] = r
			} else {
				results[i] = task.Missing(id, rs.Columns)
			}
		}

		rows = append(rows, task.Row{TaskID: id, Results: results})
	}

	return rows
}

// indexRuns builds a task.ID -> *RunResult map for one run set, logging and
// dropping duplicate task ids.
func indexRuns(rs *task.RunSetResult, logger *slog.Logger) map[task.ID]*task.RunResult {
	m := make(map[task.ID]*task.RunResult, len(rs.Runs))

	for _, r := range rs.Runs {
		if _, dup := m[r.TaskID]; dup {
			logger.Warn("duplicate task id within run set dropped",
				"runset", rs.RunsetName, "task", r.TaskID.Name, "properties", r.TaskID.Properties)

			continue
		}

		m[r.TaskID] = r
	}

	return m
}

// unionOrder implements cursor-based merge: "walk its tasks
// in order, maintaining a cursor i into the canonical list. If the task is
// new, insert after position i and advance i; if already present, set i to
// its existing index."
func unionOrder(runSets []*task.RunSetResult, logger *slog.Logger) []task.ID {
	sym := newSymtab()

	for _, rs := range runSets {
		cursor := -1
		seen := map[task.ID]bool{}

		for _, r := range rs.Runs {
			if seen[r.TaskID] {
				continue
			}

			seen[r.TaskID] = true

			if idx, ok := sym.indexOf(r.TaskID); ok {
				cursor = idx

				continue
			}

			cursor = sym.insertAfter(cursor, r.TaskID)
		}
	}

	return sym.order
}

// intersectionOrder implements "common" mode: the first run
// set's task order, filtered to ids present in every other run set.
func intersectionOrder(runSets []*task.RunSetResult) []task.ID {
	if len(runSets[0].Runs) == 0 {
		return nil
	}

	presentEverywhere := make([]map[task.ID]bool, len(runSets))
	for i, rs := range runSets {
		m := make(map[task.ID]bool, len(rs.Runs))
		for _, r := range rs.Runs {
			m[r.TaskID] = true
		}

		presentEverywhere[i] = m
	}

	var result []task.ID

	seen := map[task.ID]bool{}

	for _, r := range runSets[0].Runs {
		if seen[r.TaskID] {
			continue
		}

		seen[r.TaskID] = true

		inAll := true

		for i := 1; i < len(runSets); i++ {
			if !presentEverywhere[i][r.TaskID] {
				inAll = false

				break
			}
		}

		if inAll {
			result = append(result, r.TaskID)
		}
	}

	return result
}
