// Package aggregate implements the top-level pipeline of : load
// every result file, reconcile tasks across the resulting run sets,
// extract and type columns, compute statistics, filter the diff view, and
// assemble the final tables. It is the library surface cmd/tablegen's CLI
// layer is a thin adapter over.
//
// Grounded on internal/framework/runner.go's orchestrator shape: a struct
// holding configuration, a Run(ctx) entry point that initializes, fans out
// over the parallel-safe middle stage, then finalizes, with OpenTelemetry
// spans wrapping the natural units of work.
package aggregate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/benchtable/tablegen/internal/diff"
	"github.com/benchtable/tablegen/internal/driver"
	"github.com/benchtable/tablegen/internal/extractor"
	"github.com/benchtable/tablegen/internal/logarchive"
	"github.com/benchtable/tablegen/internal/reconcile"
	"github.com/benchtable/tablegen/internal/resultxml"
	"github.com/benchtable/tablegen/internal/runset"
	"github.com/benchtable/tablegen/internal/tabledef"
	"github.com/benchtable/tablegen/internal/table"
	"github.com/benchtable/tablegen/internal/task"
)

const tracerName = "tablegen"

// Options configures one aggregation run.
type Options struct {
	// Inputs is the positional list of result-file paths or globs.
	Inputs []string
	// TableDefPath is the optional -x/--xml table-definition file.
	TableDefPath string
	// IgnoreErroneousBenchmarks drops a result file that reports a
	// top-level error instead of failing the whole run.
	IgnoreErroneousBenchmarks bool
	// Mode selects Union (default) or Intersection (-c/--common)
	// reconciliation.
	Mode reconcile.Mode
	// CorrectOnly narrows the statistics engine to the correct-only row
	// set (--correct-only).
	CorrectOnly bool
	// AllColumns disables hidden-column suppression during discovery.
	AllColumns bool
	// NoDiff skips the diff-table computation entirely.
	NoDiff bool
	// CollapseHeader collapses adjacent-equal header cells.
	CollapseHeader bool
	// IgnoreFlappingTimeoutRegressions gates the regression counter's
	// TIMEOUT-to-TIMEOUT suppression.
	IgnoreFlappingTimeoutRegressions bool
	// Concurrency bounds C10's worker pool; zero uses its default.
	Concurrency int
	// Scorer supplies category/score for every run.
	Scorer task.Scorer
	// Logger receives every warning/info the pipeline emits. Defaults to
	// slog.Default().
	Logger *slog.Logger
	// Tracer receives the pipeline's spans. Defaults to
	// otel.Tracer("tablegen").
	Tracer trace.Tracer
}

// Result is everything a caller needs to render or dump one aggregation
// run.
type Result struct {
	RunSets []*task.RunSetResult
	Rows    []task.Row
	Table   table.Assembled
	Diff    table.Assembled
	DiffRaw diff.Result
}

func (o *Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}

	return slog.Default()
}

func (o *Options) tracer() trace.Tracer {
	if o.Tracer != nil {
		return o.Tracer
	}

	return otel.Tracer(tracerName)
}

// Run executes the full pipeline: resolve inputs, load run sets in
// parallel (C10), finalize column types (C3), reconcile (C6), filter the
// diff view (C8), and assemble both tables (C9).
func Run(ctx context.Context, opts Options) (*Result, error) {
	ctx, span := opts.tracer().Start(ctx, "aggregate.Run")
	defer span.End()

	plan, err := resolveInputs(opts)
	if err != nil {
		return nil, err
	}

	runSets, err := loadRunSets(ctx, opts, plan)
	if err != nil {
		return nil, err
	}

	for _, rs := range runSets {
		finalizeColumns(rs)
	}

	rows := reconcile.Reconcile(runSets, opts.Mode, opts.logger())

	span.SetAttributes(
		attribute.Int("tablegen.runsets", len(runSets)),
		attribute.Int("tablegen.rows", len(rows)),
	)

	assembled := table.Assemble(runSets, rows, opts.CollapseHeader, opts.CorrectOnly)

	result := &Result{
		RunSets: runSets,
		Rows:    rows,
		Table:   assembled,
	}

	if !opts.NoDiff {
		diffResult := diff.Filter(rows)
		result.DiffRaw = diffResult
		result.Diff = table.Assemble(runSets, diffRows(rows, diffResult), opts.CollapseHeader, opts.CorrectOnly)
	}

	return result, nil
}

// diffRows projects task.Row values at the indices diff.Filter kept: the
// output is a subset of the input rows.
func diffRows(rows []task.Row, result diff.Result) []task.Row {
	out := make([]task.Row, 0, len(result.Rows))

	for _, r := range result.Rows {
		out = append(out, rows[r.TaskIndex])
	}

	return out
}

// plannedRunSet is one result file (or table-definition <result>/<union>
// member) ready to load.
type plannedRunSet struct {
	path      string
	runsetID  string
	unionName string
}

func resolveInputs(opts Options) ([]plannedRunSet, error) {
	if opts.TableDefPath != "" {
		return resolveFromTableDef(opts)
	}

	return resolveFromPositional(opts)
}

func resolveFromPositional(opts Options) ([]plannedRunSet, error) {
	var plan []plannedRunSet

	for _, pattern := range opts.Inputs {
		matches, err := tabledef.ResolveGlob(".", pattern)
		if err != nil {
			return nil, err
		}

		if len(matches) == 0 {
			matches = []string{pattern}
		}

		for _, m := range matches {
			plan = append(plan, plannedRunSet{path: m, runsetID: runsetIDFromPath(m)})
		}
	}

	if len(plan) == 0 {
		return nil, fmt.Errorf("aggregate: no result files given")
	}

	return plan, nil
}

func resolveFromTableDef(opts Options) ([]plannedRunSet, error) {
	def, err := tabledef.Load(opts.TableDefPath)
	if err != nil {
		return nil, err
	}

	baseDir := filepath.Dir(opts.TableDefPath)

	var plan []plannedRunSet

	for _, rd := range def.Results {
		matches, err := tabledef.ResolveGlob(baseDir, rd.Filename)
		if err != nil {
			return nil, err
		}

		for _, m := range matches {
			plan = append(plan, plannedRunSet{path: m, runsetID: runsetIDFromPath(m)})
		}
	}

	for i, ud := range def.Unions {
		unionName := ud.Name
		if unionName == "" {
			unionName = ud.Title
		}

		if unionName == "" {
			unionName = fmt.Sprintf("union-%d", i)
		}

		for _, rd := range ud.Results {
			matches, err := tabledef.ResolveGlob(baseDir, rd.Filename)
			if err != nil {
				return nil, err
			}

			for _, m := range matches {
				plan = append(plan, plannedRunSet{path: m, runsetID: runsetIDFromPath(m), unionName: unionName})
			}
		}
	}

	if len(plan) == 0 {
		return nil, fmt.Errorf("aggregate: table definition %s names no result files", opts.TableDefPath)
	}

	return plan, nil
}

func runsetIDFromPath(p string) string {
	base := filepath.Base(p)
	base = strings.TrimSuffix(base, ".bz2")
	base = strings.TrimSuffix(base, ".gz")

	return strings.TrimSuffix(base, filepath.Ext(base))
}

func loadRunSets(ctx context.Context, opts Options, plan []plannedRunSet) ([]*task.RunSetResult, error) {
	pool := driver.New(opts.Concurrency)

	loaded, err := driver.Run(ctx, pool, plan, func(ctx context.Context, p plannedRunSet) (*task.RunSetResult, error) {
		return loadOne(ctx, opts, p)
	})
	if err != nil {
		return nil, err
	}

	byUnion := map[string][]*task.RunSetResult{}

	var runSets []*task.RunSetResult

	for i, rs := range loaded {
		if rs == nil {
			continue
		}

		unionName := plan[i].unionName
		if unionName == "" {
			runSets = append(runSets, rs)

			continue
		}

		byUnion[unionName] = append(byUnion[unionName], rs)
	}

	for name, members := range byUnion {
		merged := tabledef.MergeUnion(name, members, opts.logger())
		if merged != nil {
			runSets = append(runSets, merged)
		}
	}

	return runSets, nil
}

func loadOne(ctx context.Context, opts Options, p plannedRunSet) (*task.RunSetResult, error) {
	_, span := opts.tracer().Start(ctx, "aggregate.loadOne", trace.WithAttributes(attribute.String("tablegen.file", p.path)))
	defer span.End()

	result, err := resultxml.Load(p.path, resultxml.LoadOptions{
		IgnoreErrors: opts.IgnoreErroneousBenchmarks,
	})
	if err != nil {
		if errors.Is(err, resultxml.ErrSkipped) {
			opts.logger().Warn("result file skipped", "file", p.path)

			return nil, nil
		}

		return nil, err
	}

	pending := runset.Load(result, runset.Options{
		RunsetID:       p.runsetID,
		AllColumns:     opts.AllColumns,
		Scorer:         opts.Scorer,
		Extractors:     extractor.NewRegistry(opts.logger()),
		ResultDir:      filepath.Dir(p.path),
		ResultBaseName: filepath.Base(p.path),
		Logger:         opts.logger(),
	})

	return pending.Materialize(logarchive.NewWithLogger(opts.logger()), logarchive.NewTextCache())
}
