package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	metricFilesTotal       = "tablegen.pipeline.files.total"
	metricColumnJobsTotal  = "tablegen.pipeline.column_jobs.total"
	metricColumnJobDur     = "tablegen.pipeline.column_job.duration.seconds"
	metricCacheHitsTotal   = "tablegen.pipeline.cache.hits.total"
	metricCacheMissesTotal = "tablegen.pipeline.cache.misses.total"
)

// PipelineMetrics holds OTel instruments for the aggregation pipeline's
// per-run-set load (C1/C5) and per-column statistics (C7) work, plus the
// log-archive cache (C2) hit rate.
type PipelineMetrics struct {
	filesTotal      metric.Int64Counter
	columnJobsTotal metric.Int64Counter
	columnJobDur    metric.Float64Histogram
	cacheHits       metric.Int64Counter
	cacheMisses     metric.Int64Counter
}

// PipelineStats holds the statistics for one aggregate.Run call.
type PipelineStats struct {
	Files             int64
	ColumnJobs        int
	ColumnJobDuration []time.Duration
	LogArchiveHits    int64
	LogArchiveMisses  int64
}

// NewPipelineMetrics creates the pipeline metric instruments from the given meter.
func NewPipelineMetrics(mt metric.Meter) (*PipelineMetrics, error) {
	files, err := mt.Int64Counter(metricFilesTotal,
		metric.WithDescription("Total result files loaded"),
		metric.WithUnit("{file}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricFilesTotal, err)
	}

	jobs, err := mt.Int64Counter(metricColumnJobsTotal,
		metric.WithDescription("Total per-column statistics jobs completed"),
		metric.WithUnit("{job}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricColumnJobsTotal, err)
	}

	jobDur, err := mt.Float64Histogram(metricColumnJobDur,
		metric.WithDescription("Per-column statistics job duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(durationBucketBoundaries...),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricColumnJobDur, err)
	}

	hits, err := mt.Int64Counter(metricCacheHitsTotal,
		metric.WithDescription("Log-archive cache hits"),
		metric.WithUnit("{hit}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricCacheHitsTotal, err)
	}

	misses, err := mt.Int64Counter(metricCacheMissesTotal,
		metric.WithDescription("Log-archive cache misses"),
		metric.WithUnit("{miss}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", metricCacheMissesTotal, err)
	}

	return &PipelineMetrics{
		filesTotal:      files,
		columnJobsTotal: jobs,
		columnJobDur:    jobDur,
		cacheHits:       hits,
		cacheMisses:     misses,
	}, nil
}

// RecordRun records pipeline statistics for one completed aggregate.Run.
// Safe to call on a nil receiver (no-op), so callers can skip wiring metrics
// without guarding every call site.
func (pm *PipelineMetrics) RecordRun(ctx context.Context, stats PipelineStats) {
	if pm == nil {
		return
	}

	pm.filesTotal.Add(ctx, stats.Files)
	pm.columnJobsTotal.Add(ctx, int64(stats.ColumnJobs))

	for _, d := range stats.ColumnJobDuration {
		pm.columnJobDur.Record(ctx, d.Seconds())
	}

	archiveAttrs := metric.WithAttributes(attribute.String("cache", "logarchive"))
	pm.cacheHits.Add(ctx, stats.LogArchiveHits, archiveAttrs)
	pm.cacheMisses.Add(ctx, stats.LogArchiveMisses, archiveAttrs)
}
