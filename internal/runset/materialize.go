package runset

import (
	"fmt"

	"github.com/benchtable/tablegen/internal/column"
	"github.com/benchtable/tablegen/internal/logarchive"
	"github.com/benchtable/tablegen/internal/resultxml"
	"github.com/benchtable/tablegen/internal/task"
	"github.com/benchtable/tablegen/pkg/decimalx"
)

// Materialize runs collect_data: resolves every run's
// per-column values, reading each run's log lines at most once regardless
// of how many columns extract from them, and closes the log-archive cache
// on return even on error.
func (p *Pending) Materialize(cache *logarchive.Cache, textCache *logarchive.TextCache) (*task.RunSetResult, error) {
	defer cache.Close()

	runs := p.result.AllRuns()
	p.rs.Runs = make([]*task.RunResult, 0, len(runs))

	for _, xr := range runs {
		run := p.materializeRun(xr, cache, textCache)
		p.rs.Runs = append(p.rs.Runs, run)
	}

	return p.rs, nil
}

func (p *Pending) materializeRun(xr resultxml.XMLRun, cache *logarchive.Cache, textCache *logarchive.TextCache) *task.RunResult {
	id := task.ID{Name: xr.Name, Properties: xr.Properties, Runset: xr.Runset}

	classification := task.ClassifyStatus(xr.Status)

	var category task.Category

	var score decimalx.Extended

	if p.opts.Scorer != nil {
		category = p.opts.Scorer.Category(id, xr.Status)
		score = p.opts.Scorer.Score(id, category, xr.Status)
	} else {
		score = decimalx.Null()
	}

	loc := resultxml.Locate(p.opts.ResultBaseName, xr, p.opts.RunsetID)

	xmlValues := make(map[string]string, len(xr.Columns))
	for _, c := range xr.Columns {
		xmlValues[c.Title] = c.Value
	}

	values := make([]task.Cell, len(p.rs.Columns))

	var (
		logLinesLoaded bool
		logLines       []string
		logMissing     bool
	)

	for i, col := range p.rs.Columns {
		switch {
		case col.Title == scoreColumnTitle:
			values[i] = task.Cell{Raw: score.String(), Num: score}
		case col.Title == statusColumnTitle:
			values[i] = task.TextCell(xr.Status)
		case col.Title == categoryColumnTitle:
			values[i] = task.TextCell(category.String())
		case !col.HasExtraction():
			if raw, ok := xmlValues[col.Title]; ok {
				values[i] = task.TextCell(raw)
			} else {
				values[i] = task.NullCell()
			}
		default:
			if !logLinesLoaded {
				logLinesLoaded = true

				lines, err := loadLogLines(p.opts, cache, textCache, loc.Path, id)
				if err != nil {
					logMissing = true

					p.opts.Logger.Warn("missing log file for run", "task", xr.Name, "path", loc.Path, "error", err)
				}

				logLines = lines
			}

			if logMissing {
				values[i] = task.NullCell()

				continue
			}

			values[i] = extractValue(p.opts, col.Pattern, p.result.ToolModule, logLines)
		}
	}

	return &task.RunResult{
		TaskID:           id,
		Status:           xr.Status,
		Category:         category,
		Classification:   classification,
		Score:            score,
		LogFile:          loc.Path,
		Columns:          p.rs.Columns,
		Values:           values,
		DiffRelevant:     relevantDiffColumns(p.rs.Columns),
		SourcefilesExist: xr.Files != "",
	}
}

func loadLogLines(opts Options, cache *logarchive.Cache, textCache *logarchive.TextCache, logPath string, id task.ID) ([]string, error) {
	key := fmt.Sprintf("%s/%s", id.Runset, logPath)

	return textCache.GetOrLoad(key, func() ([]byte, error) {
		stem := resultxml.ResultStem(opts.ResultBaseName)

		return cache.ReadLog(opts.ResultDir, stem, logPath)
	})
}

func extractValue(opts Options, pattern, toolModule string, lines []string) task.Cell {
	if opts.Extractors == nil || lines == nil {
		return task.NullCell()
	}

	ext, ok := opts.Extractors.Lookup(toolModule)
	if !ok {
		ext, ok = opts.Extractors.Lookup("generic")
		if !ok {
			return task.NullCell()
		}
	}

	raw, ok := ext.Extract(lines, pattern)
	if !ok {
		return task.NullCell()
	}

	return task.TextCell(raw)
}

func relevantDiffColumns(columns []*column.Column) map[string]bool {
	m := map[string]bool{}

	var any bool

	for _, c := range columns {
		if c.RelevantForDiff {
			m[c.Title] = true
			any = true
		}
	}

	if !any {
		m[statusColumnTitle] = true
	}

	return m
}
