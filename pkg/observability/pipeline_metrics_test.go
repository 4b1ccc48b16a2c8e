package observability_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/benchtable/tablegen/pkg/observability"
)

func TestPipelineMetrics_RecordRun(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	meter := mp.Meter("test")

	pm, err := observability.NewPipelineMetrics(meter)
	require.NoError(t, err)

	pm.RecordRun(context.Background(), observability.PipelineStats{
		Files:             3,
		ColumnJobs:        12,
		ColumnJobDuration: []time.Duration{10 * time.Millisecond, 20 * time.Millisecond},
		LogArchiveHits:    5,
		LogArchiveMisses:  1,
	})

	rm := collectMetrics(t, reader)

	require.NotNil(t, findMetric(rm, "tablegen.pipeline.files.total"))
	require.NotNil(t, findMetric(rm, "tablegen.pipeline.column_jobs.total"))
	require.NotNil(t, findMetric(rm, "tablegen.pipeline.column_job.duration.seconds"))
	require.NotNil(t, findMetric(rm, "tablegen.pipeline.cache.hits.total"))
	require.NotNil(t, findMetric(rm, "tablegen.pipeline.cache.misses.total"))
}

func TestPipelineMetrics_NilReceiverIsNoop(t *testing.T) {
	t.Parallel()

	var pm *observability.PipelineMetrics

	pm.RecordRun(context.Background(), observability.PipelineStats{Files: 1})
}
