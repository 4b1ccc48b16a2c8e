// Package config provides configuration loading and validation for tablegen.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Sentinel validation errors.
var (
	ErrInvalidConcurrency = errors.New("pipeline concurrency must be non-negative")
	ErrUnknownFormat      = errors.New("unknown output format")
)

// Default configuration values.
const (
	defaultConcurrency = 0
	defaultOutputName  = "results"
)

var defaultOutputFormats = []string{"html", "csv"}

var knownFormats = map[string]bool{"html": true, "csv": true}

// Config holds all configuration for tablegen.
type Config struct {
	Pipeline      PipelineConfig      `mapstructure:"pipeline"`
	Output        OutputConfig        `mapstructure:"output"`
	Diff          DiffConfig          `mapstructure:"diff"`
	Logging       LoggingConfig       `mapstructure:"logging"`
	Observability ObservabilityConfig `mapstructure:"observability"`
}

// PipelineConfig holds the worker-pool (C10) knob.
type PipelineConfig struct {
	// Concurrency bounds the number of result files loaded in parallel.
	// Zero uses internal/driver's own default (2×NumCPU).
	Concurrency int `mapstructure:"concurrency"`
}

// OutputConfig holds -n/--name and -f/--format defaults.
type OutputConfig struct {
	Name    string   `mapstructure:"name"`
	Formats []string `mapstructure:"formats"`
}

// DiffConfig holds defaults for the diff table and regression dump.
type DiffConfig struct {
	IgnoreFlappingTimeoutRegressions bool `mapstructure:"ignore_flapping_timeout_regressions"`
	CorrectOnly                      bool `mapstructure:"correct_only"`
	NoDiff                           bool `mapstructure:"no_diff"`
}

// LoggingConfig holds logging-specific configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ObservabilityConfig holds the Prometheus metrics endpoint's settings.
type ObservabilityConfig struct {
	MetricsEnabled bool   `mapstructure:"metrics_enabled"`
	MetricsAddr    string `mapstructure:"metrics_addr"`
}

// LoadConfig loads configuration from file and environment variables.
func LoadConfig(configPath string) (*Config, error) {
	viperCfg := viper.New()

	setDefaults(viperCfg)

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName("tablegen")
		viperCfg.SetConfigType("yaml")
		viperCfg.AddConfigPath(".")
		viperCfg.AddConfigPath("/etc/tablegen")
	}

	viperCfg.SetEnvPrefix("TABLEGEN")
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	var cfg Config

	unmarshalErr := viperCfg.Unmarshal(&cfg)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", unmarshalErr)
	}

	if validateErr := validateConfig(&cfg); validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return &cfg, nil
}

func setDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("pipeline.concurrency", defaultConcurrency)

	viperCfg.SetDefault("output.name", defaultOutputName)
	viperCfg.SetDefault("output.formats", defaultOutputFormats)

	viperCfg.SetDefault("diff.ignore_flapping_timeout_regressions", false)
	viperCfg.SetDefault("diff.correct_only", false)
	viperCfg.SetDefault("diff.no_diff", false)

	viperCfg.SetDefault("logging.level", "info")
	viperCfg.SetDefault("logging.format", "json")

	viperCfg.SetDefault("observability.metrics_enabled", false)
	viperCfg.SetDefault("observability.metrics_addr", ":9090")
}

func validateConfig(cfg *Config) error {
	if cfg.Pipeline.Concurrency < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidConcurrency, cfg.Pipeline.Concurrency)
	}

	for _, f := range cfg.Output.Formats {
		if !knownFormats[f] {
			return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
		}
	}

	return nil
}
