package aggregate

import "github.com/benchtable/tablegen/internal/task"

// finalizeColumns runs column.Finalize (C3) over every column in rs, using
// the non-null raw values collected across all its runs as the inference
// sample Called once per run set after materialization,
// before the run set's values are handed to statistics or table assembly.
func finalizeColumns(rs *task.RunSetResult) {
	for i, col := range rs.Columns {
		samples := make([]string, 0, len(rs.Runs))

		for _, r := range rs.Runs {
			if i >= len(r.Values) {
				continue
			}

			if raw := r.Values[i].Raw; raw != "" {
				samples = append(samples, raw)
			}
		}

		col.Finalize(samples)
	}
}
