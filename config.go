package tasksetgen

import (
	"context"
	"errors"
	"fmt"
	"github.com/joho/godotenv"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
	"github.com/viant/tasksetgen/service/generator"
	"gopkg.in/yaml.v3"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
)

// Environment variables recognised by ApplyEnv.
const (
	EnvOutput      = "TASKSETGEN_OUTPUT"
	EnvMaxAttempts = "TASKSETGEN_MAX_ATTEMPTS"
	EnvSeed        = "TASKSETGEN_SEED"
	EnvTraceFile   = "TASKSETGEN_TRACE_FILE"
	EnvMetricsAddr = "TASKSETGEN_METRICS_ADDR"
	EnvLogLevel    = "TASKSETGEN_LOG_LEVEL"
)

// DefaultOutputURL is where tasksets are written unless configured.
const DefaultOutputURL = "output_generated"

// Config is a serialisable representation of the service configuration.
type Config struct {
	Generator GeneratorConfig `json:"generator" yaml:"generator"`
	Output    OutputConfig    `json:"output" yaml:"output"`
	Telemetry TelemetryConfig `json:"telemetry" yaml:"telemetry"`
}

// GeneratorConfig controls synthesis.
type GeneratorConfig struct {
	MaxAttempts int `json:"maxAttempts" yaml:"maxAttempts"`
	// Seed makes runs reproducible; nil draws a random seed.
	Seed *int64 `json:"seed,omitempty" yaml:"seed,omitempty"`
}

// OutputConfig controls where and how results go.
type OutputConfig struct {
	BaseURL string `json:"baseURL" yaml:"baseURL"`
	Color   bool   `json:"color" yaml:"color"`
}

// TelemetryConfig controls logs, traces and metrics.
type TelemetryConfig struct {
	LogLevel    string `json:"logLevel,omitempty" yaml:"logLevel,omitempty"`
	Tracing     bool   `json:"tracing" yaml:"tracing"`
	TraceFile   string `json:"traceFile,omitempty" yaml:"traceFile,omitempty"`
	OTelLogs    bool   `json:"otelLogs" yaml:"otelLogs"`
	MetricsAddr string `json:"metricsAddr,omitempty" yaml:"metricsAddr,omitempty"`
}

// DefaultConfig returns the configuration used when nothing is supplied.
func DefaultConfig() *Config {
	return &Config{
		Generator: GeneratorConfig{MaxAttempts: generator.DefaultMaxAttempts},
		Output:    OutputConfig{BaseURL: DefaultOutputURL},
		Telemetry: TelemetryConfig{LogLevel: "info"},
	}
}

// Validate returns an error describing the first invalid setting.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if c.Generator.MaxAttempts <= 0 {
		return fmt.Errorf("generator.maxAttempts must be > 0")
	}
	if c.Output.BaseURL == "" {
		return fmt.Errorf("output.baseURL cannot be empty")
	}
	if c.Telemetry.LogLevel != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(c.Telemetry.LogLevel)); err != nil {
			return fmt.Errorf("telemetry.logLevel: %w", err)
		}
	}
	return nil
}

// GeneratorOptions translates the generator settings into options.
func (c *Config) GeneratorOptions() []generator.Option {
	options := []generator.Option{generator.WithMaxAttempts(c.Generator.MaxAttempts)}
	if c.Generator.Seed != nil {
		options = append(options, generator.WithSeed(*c.Generator.Seed))
	}
	return options
}

// LoadConfig reads a YAML (or JSON) configuration through afs.  Settings
// missing from the document keep their DefaultConfig values.
func LoadConfig(ctx context.Context, fs afs.Service, URL string) (*Config, error) {
	if fs == nil {
		fs = afs.New()
	}
	URL = url.Normalize(URL, file.Scheme)
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", URL, err)
	}
	ret := DefaultConfig()
	if err = yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", URL, err)
	}
	if err = ret.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", URL, err)
	}
	return ret, nil
}

// ApplyEnv overrides settings from TASKSETGEN_* variables.  Values from the
// process environment win over values read from envFiles; missing files are
// ignored.
func (c *Config) ApplyEnv(envFiles ...string) error {
	fileValues := map[string]string{}
	for _, name := range envFiles {
		values, err := godotenv.Read(name)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to read %s: %w", name, err)
		}
		for k, v := range values {
			if _, ok := fileValues[k]; !ok {
				fileValues[k] = v
			}
		}
	}
	lookup := func(key string) (string, bool) {
		if value, ok := os.LookupEnv(key); ok {
			return value, true
		}
		value, ok := fileValues[key]
		return value, ok
	}
	if value, ok := lookup(EnvOutput); ok && value != "" {
		c.Output.BaseURL = value
	}
	if value, ok := lookup(EnvMaxAttempts); ok && value != "" {
		count, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMaxAttempts, err)
		}
		c.Generator.MaxAttempts = count
	}
	if value, ok := lookup(EnvSeed); ok && value != "" {
		seed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.Generator.Seed = &seed
	}
	if value, ok := lookup(EnvTraceFile); ok && value != "" {
		c.Telemetry.Tracing = true
		c.Telemetry.TraceFile = value
	}
	if value, ok := lookup(EnvMetricsAddr); ok {
		c.Telemetry.MetricsAddr = value
	}
	if value, ok := lookup(EnvLogLevel); ok && value != "" {
		c.Telemetry.LogLevel = value
	}
	return c.Validate()
}
