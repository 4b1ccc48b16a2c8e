package diff

import "github.com/benchtable/tablegen/internal/task"

// Result is the diff filter's output: the retained rows, each paired with
// the columns that triggered its retention, plus a note for the degenerate
// "every row differs" case.
type Result struct {
	Rows []Row
	Note string
}

// Filter implements : for each row, collect the union of
// diff-relevant column titles across its run results (defaulting to
// {status} if none declared); retain the row iff at least one of those
// columns has two or more distinct values across the row's run results.
func Filter(rows []task.Row) Result {
	if len(rows) == 0 {
		return Result{}
	}

	if singleRunSet(rows) {
		return Result{}
	}

	var kept []Row

	for i, row := range rows {
		cols := relevantColumns(row)

		var disagreeing []string

		for _, col := range cols {
			if columnDisagrees(row, col) {
				disagreeing = append(disagreeing, col)
			}
		}

		if len(disagreeing) > 0 {
			kept = append(kept, Row{TaskIndex: i, Columns: disagreeing})
		}
	}

	if len(kept) == len(rows) {
		return Result{Note: "every row differs; the diff view adds nothing"}
	}

	return Result{Rows: kept}
}

func singleRunSet(rows []task.Row) bool {
	return len(rows) > 0 && len(rows[0].Results) < 2
}

func relevantColumns(row task.Row) []string {
	set := map[string]bool{}

	for _, r := range row.Results {
		if r == nil {
			continue
		}

		for title := range r.DiffRelevant {
			set[title] = true
		}
	}

	if len(set) == 0 {
		set["status"] = true
	}

	cols := make([]string, 0, len(set))
	for title := range set {
		cols = append(cols, title)
	}

	return cols
}

// columnDisagrees recomputes the column-to-index lookup per run result,
// since column lists may differ between run sets.
func columnDisagrees(row task.Row, column string) bool {
	values := map[string]bool{}

	for _, r := range row.Results {
		if r == nil {
			continue
		}

		cell := r.Value(column)
		values[cell.Raw] = true
	}

	return len(values) >= 2
}
