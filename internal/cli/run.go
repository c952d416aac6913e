package cli

import (
	"context"
	"fmt"
	"github.com/viant/tasksetgen"
	"github.com/viant/tasksetgen/internal/logging"
	"github.com/viant/tasksetgen/metrics"
	"github.com/viant/tasksetgen/progress"
	"github.com/viant/tasksetgen/tracing"
	"io"
	"time"
)

// Service identification used by telemetry exporters.
const (
	ServiceName    = "tasksetgen"
	ServiceVersion = "0.1.0"
)

// Result is the outcome of Execute.
type Result struct {
	ExitCode int
	Report   *tasksetgen.Report
}

// Config resolves the effective configuration: defaults or the settings
// file, then TASKSETGEN_* variables, then explicit flags.
func Config(ctx context.Context, inv *Invocation) (*tasksetgen.Config, error) {
	config := tasksetgen.DefaultConfig()
	if inv.SettingsURL != "" {
		var err error
		if config, err = tasksetgen.LoadConfig(ctx, nil, inv.SettingsURL); err != nil {
			return nil, err
		}
	}
	var envFiles []string
	if inv.EnvFile != "" {
		envFiles = append(envFiles, inv.EnvFile)
	}
	if err := config.ApplyEnv(envFiles...); err != nil {
		return nil, err
	}
	if inv.OutputURL != nil {
		config.Output.BaseURL = *inv.OutputURL
	}
	if inv.Seed != nil {
		config.Generator.Seed = inv.Seed
	}
	if inv.Color != nil {
		config.Output.Color = *inv.Color
	}
	if inv.Trace != nil {
		config.Telemetry.Tracing = *inv.Trace
	}
	if inv.TraceFile != nil {
		config.Telemetry.Tracing = true
		config.Telemetry.TraceFile = *inv.TraceFile
	}
	if inv.OTelLogs != nil {
		config.Telemetry.OTelLogs = *inv.OTelLogs
	}
	if inv.MetricsAddr != nil {
		config.Telemetry.MetricsAddr = *inv.MetricsAddr
	}
	return config, config.Validate()
}

// Execute runs the invocation, writing the human-readable summary to stdout
// and diagnostics to stderr.
func Execute(ctx context.Context, inv *Invocation, stdout, stderr io.Writer) (*Result, error) {
	config, err := Config(ctx, inv)
	if err != nil {
		return &Result{ExitCode: ExitConfigError}, fmt.Errorf("invalid configuration: %w", err)
	}
	logger, err := logging.New(stderr, config.Telemetry.LogLevel)
	if err != nil {
		return &Result{ExitCode: ExitConfigError}, err
	}
	logging.SetLogger(logger)
	var shutdowns []func(context.Context) error
	defer func() {
		for i := len(shutdowns) - 1; i >= 0; i-- {
			if err := shutdowns[i](context.Background()); err != nil {
				logging.Logger().Warn("telemetry shutdown failed", "error", err)
			}
		}
	}()
	if config.Telemetry.OTelLogs {
		level, _ := logging.ParseLevel(config.Telemetry.LogLevel)
		shutdown, err := logging.InitOTel(ServiceName, ServiceVersion, stderr, level)
		if err != nil {
			return &Result{ExitCode: ExitConfigError}, fmt.Errorf("failed to initialise log export: %w", err)
		}
		shutdowns = append(shutdowns, shutdown)
	}
	if config.Telemetry.Tracing {
		shutdown, err := tracing.Init(ServiceName, ServiceVersion, config.Telemetry.TraceFile)
		if err != nil {
			return &Result{ExitCode: ExitConfigError}, fmt.Errorf("failed to initialise tracing: %w", err)
		}
		shutdowns = append(shutdowns, shutdown)
	}
	collector := metrics.New()
	if config.Telemetry.MetricsAddr != "" {
		server, err := collector.Serve(config.Telemetry.MetricsAddr)
		if err != nil {
			return &Result{ExitCode: ExitConfigError}, fmt.Errorf("failed to serve metrics: %w", err)
		}
		logging.Logger().Info("serving metrics", "address", server.Addr)
		shutdowns = append(shutdowns, server.Shutdown)
	}

	srv, err := tasksetgen.New(
		tasksetgen.WithConfig(config),
		tasksetgen.WithMetrics(collector),
		tasksetgen.WithLogger(logging.Logger()),
		tasksetgen.WithOutput(stdout),
		tasksetgen.WithProgress(progressPrinter(stderr)),
	)
	if err != nil {
		return &Result{ExitCode: ExitConfigError}, err
	}
	switch inv.Command {
	case CommandClean:
		if err = srv.Clean(ctx); err != nil {
			return &Result{ExitCode: ExitInternalError}, err
		}
		_, err = fmt.Fprintf(stdout, "Cleaned all tasksets from %s\n", config.Output.BaseURL)
		return &Result{ExitCode: ExitSuccess}, err
	default:
		return run(ctx, srv, inv.ConfigURL)
	}
}

func run(ctx context.Context, srv *tasksetgen.Service, URL string) (*Result, error) {
	report, err := srv.RunFile(ctx, URL)
	if err != nil {
		if report == nil {
			return &Result{ExitCode: ExitConfigError}, err
		}
		return &Result{ExitCode: ExitInternalError, Report: report}, err
	}
	ret := &Result{ExitCode: ExitSuccess, Report: report}
	if report.Failed() > 0 {
		ret.ExitCode = ExitRequirementFailure
		logging.Logger().Warn("some requirements failed", "failed", report.Failed(), "succeeded", report.Succeeded(), "first", report.Err())
	}
	return ret, nil
}

// progressPrinter writes one line per finished requirement.
func progressPrinter(w io.Writer) func(progress.Snapshot) {
	processed := 0
	return func(snapshot progress.Snapshot) {
		done := snapshot.Completed + snapshot.Failed
		if done == processed {
			return
		}
		processed = done
		fmt.Fprintf(w, "[%d/%d] %s pending=%d attempts=%d elapsed=%s\n",
			done, snapshot.Total, snapshot.Current, snapshot.Pending(), snapshot.Attempts, snapshot.Elapsed().Round(time.Millisecond))
	}
}
