package task

import "github.com/benchtable/tablegen/internal/column"

// SystemInfo describes the host that produced a run set.
type SystemInfo struct {
	Hostname string
	OSName   string
	CPUModel string
	CPUCores string
	CPUFreq  string
	RAMSize  string
}

// RunSetResult is a collection of run results sharing one set of columns
// and attributes.
type RunSetResult struct {
	ToolName      string
	ToolVersion   string
	Benchmarkname string
	Date          string
	Options       string
	Timelimit     string
	Memlimit      string
	CPUCores      string
	Block         string
	NiceName      string
	RunsetName    string
	System        *SystemInfo

	Columns []*column.Column
	Runs    []*RunResult
}

// ColumnTitles returns the declared titles of rs's columns, in order.
func (rs *RunSetResult) ColumnTitles() []string {
	titles := make([]string, len(rs.Columns))
	for i, c := range rs.Columns {
		titles[i] = c.Title
	}

	return titles
}

// Row is all run results for one task id, across run sets, in run-set
// order.
type Row struct {
	TaskID  ID
	Results []*RunResult
}

// Filename returns the task's benchmarked-input file name, derived from
// the task id.
func (row Row) Filename() string {
	return row.TaskID.Name
}

// Properties returns the task's space-separated property-file list.
func (row Row) Properties() string {
	return row.TaskID.Properties
}
