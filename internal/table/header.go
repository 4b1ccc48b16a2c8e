package table

import "github.com/benchtable/tablegen/internal/task"

// Header is the header bundle of : everything above the
// column titles row, plus the column titles themselves.
type Header struct {
	ToolNameVersion []string
	Limits          []string
	Host            []string
	OS              []string
	System          []string
	Date            []string
	NiceName        []string
	Options         []string
	PropertyFiles   []string
	ColumnTitles    []string
}

// BuildHeader assembles the header bundle from a set of reconciled run
// sets, one column per run set, collapsing adjacent equal cells when
// collapse is true.
func BuildHeader(runSets []*task.RunSetResult, collapse bool) Header {
	h := Header{}

	for _, rs := range runSets {
		h.ToolNameVersion = append(h.ToolNameVersion, rs.ToolName+" "+rs.ToolVersion)
		h.Limits = append(h.Limits, PrettyTimeLimit(rs.Timelimit)+" / "+PrettyTimeLimit(rs.Memlimit))
		h.Date = append(h.Date, rs.Date)
		h.NiceName = append(h.NiceName, rs.NiceName)
		h.Options = append(h.Options, rs.Options)

		if rs.System != nil {
			h.Host = append(h.Host, rs.System.Hostname)
			h.OS = append(h.OS, rs.System.OSName)
			h.System = append(h.System, rs.System.CPUModel)
		} else {
			h.Host = append(h.Host, "")
			h.OS = append(h.OS, "")
			h.System = append(h.System, "")
		}
	}

	if len(runSets) > 0 {
		h.ColumnTitles = runSets[0].ColumnTitles()
	}

	if collapse {
		h.ToolNameVersion = collapseAdjacent(h.ToolNameVersion)
		h.Limits = collapseAdjacent(h.Limits)
		h.Host = collapseAdjacent(h.Host)
		h.OS = collapseAdjacent(h.OS)
		h.System = collapseAdjacent(h.System)
		h.Date = collapseAdjacent(h.Date)
		h.NiceName = collapseAdjacent(h.NiceName)
		h.Options = collapseAdjacent(h.Options)
	}

	return h
}

// collapseAdjacent blanks a cell equal to the one immediately before it, so
// a run of identical header cells renders as a single visual span.
func collapseAdjacent(cells []string) []string {
	out := make([]string, len(cells))

	for i, c := range cells {
		if i > 0 && c == cells[i-1] {
			out[i] = ""

			continue
		}

		out[i] = c
	}

	return out
}

// IDRelevance is a bitmap over the task-id tuple (name, properties,
// runset) identifying which components differ across rows and thus
// deserve display.
type IDRelevance struct {
	Name       bool
	Properties bool
	Runset     bool
}

// ComputeIDRelevance scans rows and marks Properties and Runset relevant iff
// they differ across at least two rows; Name is always marked relevant.
func ComputeIDRelevance(rows []task.Row) IDRelevance {
	if len(rows) == 0 {
		return IDRelevance{Name: true}
	}

	rel := IDRelevance{}
	first := rows[0].TaskID

	for _, row := range rows[1:] {
		if row.TaskID.Name != first.Name {
			rel.Name = true
		}

		if row.TaskID.Properties != first.Properties {
			rel.Properties = true
		}

		if row.TaskID.Runset != first.Runset {
			rel.Runset = true
		}
	}

	rel.Name = true // the filename always identifies a row, even when constant

	return rel
}
