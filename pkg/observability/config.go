package observability

import "log/slog"

// AppMode distinguishes how tablegen is being invoked, for the "mode"
// attribute attached to every log record.
type AppMode string

const (
	// ModeCLI marks a run driven by cmd/tablegen.
	ModeCLI AppMode = "cli"
	// ModeLibrary marks internal/aggregate invoked directly, outside the CLI.
	ModeLibrary AppMode = "library"
)

const defaultShutdownTimeoutSec = 5

// Config configures Init's tracer, meter, and logger.
type Config struct {
	// ServiceName identifies the process in logs and trace resources.
	ServiceName string
	// ServiceVersion is pkg/version.Version, attached to the trace resource.
	ServiceVersion string
	// Environment is an optional deployment label (e.g. "ci", "dev").
	Environment string
	// Mode is the app mode attribute (ModeCLI or ModeLibrary).
	Mode AppMode

	// MetricsAddr, when non-empty, starts a Prometheus /metrics endpoint on
	// this address (e.g. ":9090"). Empty disables metrics export.
	MetricsAddr string

	// SampleRatio is the trace sampling ratio used when no
	// OTEL_TRACES_SAMPLER env var is set. Zero defaults to always-on.
	SampleRatio float64

	// LogLevel is the minimum slog level emitted.
	LogLevel slog.Level
	// LogJSON selects JSON log output; false selects human-readable text.
	LogJSON bool

	// ShutdownTimeoutSec bounds Providers.Shutdown. Zero uses a 5s default.
	ShutdownTimeoutSec int
}

// DefaultConfig returns tablegen's baseline observability configuration:
// text logging at info level, tracing always sampled but never exported,
// metrics export disabled.
func DefaultConfig() Config {
	return Config{
		ServiceName: "tablegen",
		Mode:        ModeCLI,
		LogLevel:    slog.LevelInfo,
		LogJSON:     false,
	}
}
