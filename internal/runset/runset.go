// Package runset implements the run-set loader: building a
// task.RunSetResult from one parsed result file, resolving each
// run's per-column values from XML, score function, or log extraction.
//
// Grounded on internal/framework/runner.go's two-phase construct/run
// convention (construct-then-run split): Pending is
// built cheaply from XML alone, and Materialize is the expensive step that
// touches the log archive, mirroring "two-phase initialization
// (construct from XML, then collect_data)".
package runset

import (
	"fmt"
	"log/slog"

	"github.com/benchtable/tablegen/internal/column"
	"github.com/benchtable/tablegen/internal/extractor"
	"github.com/benchtable/tablegen/internal/logarchive"
	"github.com/benchtable/tablegen/internal/resultxml"
	"github.com/benchtable/tablegen/internal/task"
	"github.com/benchtable/tablegen/pkg/decimalx"
)

const scoreColumnTitle = "score"
const statusColumnTitle = "status"
const categoryColumnTitle = "category"

// Options configures loading one result file into a RunSetResult.
type Options struct {
	// RunsetID names the loaded run set (RunSetResult.RunsetName) and
	// prefixes derived log-file names; task ids take their runset component
	// from each run's own runset attribute.
	RunsetID string
	// AllColumns disables the "hidden" attribute's suppression of columns
	// from discovery.
	AllColumns bool
	// Columns, if non-nil, overrides discovery entirely (a table-definition
	// C11 override).
	Columns []*column.Column
	// Scorer supplies category/score for each run from its status.
	Scorer task.Scorer
	// Extractors resolves named tool extractors for log-derived columns.
	Extractors *extractor.Registry
	// ResultDir and ResultBaseName locate the result file on disk, for
	// resolving log locators.
	ResultDir      string
	ResultBaseName string
	Logger         *slog.Logger
}

// Pending is the cheap, XML-only first phase of loading a result file:
// everything needed to validate a table definition before paying for log
// reads.
type Pending struct {
	opts   Options
	result *resultxml.XMLResult
	rs     *task.RunSetResult
}

// Load parses and validates the result's shape without touching any log
// archive.
func Load(result *resultxml.XMLResult, opts Options) *Pending {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	rs := &task.RunSetResult{
		ToolName:      result.Tool,
		ToolVersion:   result.Version,
		Benchmarkname: result.Benchmarkname,
		Date:          result.Date,
		Options:       result.Options,
		Timelimit:     result.Timelimit,
		Memlimit:      result.Memlimit,
		CPUCores:      result.CPUCores,
		Block:         result.Block,
		RunsetName:    opts.RunsetID,
		System:        systemInfoFrom(result),
	}

	columns := opts.Columns
	if columns == nil {
		columns = discoverColumns(result, opts.AllColumns)
	}

	rs.Columns = columns

	return &Pending{opts: opts, result: result, rs: rs}
}

func systemInfoFrom(result *resultxml.XMLResult) *task.SystemInfo {
	if result.SystemInfo == nil {
		return nil
	}

	si := result.SystemInfo

	return &task.SystemInfo{
		Hostname: si.Hostname,
		OSName:   si.OS.Name,
		CPUModel: si.CPU.Model,
		CPUCores: si.CPU.Cores,
		CPUFreq:  si.CPU.Frequency,
		RAMSize:  si.RAM.Size,
	}
}

// discoverColumns builds the union of column titles across every run, then
// orders them fixed priority list. allColumns is
// accepted for symmetry with the table-definition path (internal/tabledef):
// a result's own XML columns carry no "hidden" attribute of their own, so
// discovery here never has anything to suppress; the hidden/all-columns
// interaction applies only to columns declared in a table definition.
func discoverColumns(result *resultxml.XMLResult, allColumns bool) []*column.Column {
	seen := map[string]*column.Column{}
	var order []string

	considerColumn := func(title string) {
		if title == "" {
			return
		}

		if _, ok := seen[title]; ok {
			return
		}

		seen[title] = &column.Column{Title: title}
		order = append(order, title)
	}

	considerColumn(statusColumnTitle)
	considerColumn(categoryColumnTitle)

	for _, run := range result.AllRuns() {
		for _, col := range run.Columns {
			considerColumn(col.Title)
		}
	}

	order = column.SortDiscovered(order)

	columns := make([]*column.Column, 0, len(order))
	for _, title := range order {
		c := seen[title]
		if title == statusColumnTitle {
			c.IsMainStatus = true
		}

		columns = append(columns, c)
	}

	return columns
}
