// Package cli turns command-line arguments into a canonical invocation and
// executes it against the tasksetgen service.
package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// Exit codes.
const (
	ExitSuccess            = 0
	ExitRequirementFailure = 1
	ExitInvalidInvocation  = 2
	ExitConfigError        = 3
	ExitInternalError      = 4
)

// Command names.
const (
	CommandRun   = "run"
	CommandClean = "clean"
)

// Usage is printed for invalid invocations.
const Usage = `Usage: tasksetgen run -config <requirements.csv|yaml> [-out URL] [-settings config.yaml] [-env .env] [-seed N] [-color] [-trace] [-trace-file FILE] [-otel-logs] [-metrics :2112]
       tasksetgen clean [-out URL] [-settings config.yaml] [-env .env]`

// Invocation is the parsed command line.  Pointer fields are nil when the
// flag was not given so configuration values are only overridden on demand.
type Invocation struct {
	Command     string
	ConfigURL   string
	SettingsURL string
	EnvFile     string
	OutputURL   *string
	Seed        *int64
	Color       *bool
	Trace       *bool
	TraceFile   *string
	OTelLogs    *bool
	MetricsAddr *string
}

// InvocationError carries the exit code for a rejected invocation.
type InvocationError struct {
	ExitCode int
	Message  string
}

func (e *InvocationError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func invalidInvocationf(format string, args ...any) error {
	return &InvocationError{ExitCode: ExitInvalidInvocation, Message: fmt.Sprintf(format, args...) + "\n" + Usage}
}

// ParseInvocation parses "<command> [flags]".
func ParseInvocation(args []string) (*Invocation, error) {
	if len(args) == 0 {
		return nil, invalidInvocationf("missing command")
	}
	ret := &Invocation{Command: args[0], EnvFile: ".env"}
	if ret.Command != CommandRun && ret.Command != CommandClean {
		return nil, invalidInvocationf("unknown command %q, use 'run' or 'clean'", ret.Command)
	}
	fs := flag.NewFlagSet("tasksetgen "+ret.Command, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&ret.SettingsURL, "settings", "", "Service configuration (YAML).")
	fs.StringVar(&ret.EnvFile, "env", ret.EnvFile, "Optional .env file with TASKSETGEN_* variables.")
	outputURL := fs.String("out", "", "Output base URL.")
	if ret.Command == CommandRun {
		fs.StringVar(&ret.ConfigURL, "config", "", "Requirements file (CSV or YAML). Required.")
		fs.Int64("seed", 0, "Random seed for reproducible runs.")
		fs.Bool("color", false, "Highlight the summary with ANSI colors.")
		fs.Bool("trace", false, "Export OpenTelemetry spans.")
		fs.String("trace-file", "", "Write spans to this file instead of stdout.")
		fs.Bool("otel-logs", false, "Export logs through the OpenTelemetry log SDK.")
		fs.String("metrics", "", "Serve Prometheus metrics on this address.")
	}
	if err := fs.Parse(args[1:]); err != nil {
		return nil, invalidInvocationf("%v", err)
	}
	if fs.NArg() != 0 {
		return nil, invalidInvocationf("unexpected positional arguments: %q", strings.Join(fs.Args(), " "))
	}
	fs.Visit(func(f *flag.Flag) {
		getter := f.Value.(flag.Getter)
		switch f.Name {
		case "out":
			ret.OutputURL = outputURL
		case "seed":
			seed := getter.Get().(int64)
			ret.Seed = &seed
		case "color":
			color := getter.Get().(bool)
			ret.Color = &color
		case "trace":
			trace := getter.Get().(bool)
			ret.Trace = &trace
		case "trace-file":
			traceFile := getter.Get().(string)
			ret.TraceFile = &traceFile
		case "otel-logs":
			otelLogs := getter.Get().(bool)
			ret.OTelLogs = &otelLogs
		case "metrics":
			addr := getter.Get().(string)
			ret.MetricsAddr = &addr
		}
	})
	if ret.OutputURL != nil && *ret.OutputURL == "" {
		return nil, invalidInvocationf("-out cannot be empty")
	}
	if ret.Command == CommandRun && ret.ConfigURL == "" {
		return nil, invalidInvocationf("-config is required")
	}
	return ret, nil
}
