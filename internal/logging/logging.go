// Package logging holds the process-wide structured logger.
//
// By default records go to stderr through a slog text handler.  InitOTel
// switches the logger to the OpenTelemetry bridge so records are exported by
// the OpenTelemetry log SDK alongside traces.
package logging

import (
	"context"
	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutlog"
	"go.opentelemetry.io/otel/log/global"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/resource"
	"io"
	"log/slog"
	"os"
	"sync"
)

const instrumentationName = "github.com/viant/tasksetgen"

var (
	mux    sync.RWMutex
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
)

// Logger returns the current process-wide logger.
func Logger() *slog.Logger {
	mux.RLock()
	defer mux.RUnlock()
	return logger
}

// SetLogger replaces the process-wide logger.  A nil logger is ignored.
func SetLogger(l *slog.Logger) {
	if l == nil {
		return
	}
	mux.Lock()
	logger = l
	mux.Unlock()
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// InitOTel routes the process-wide logger through the OpenTelemetry log SDK,
// exporting records at or above level to w (os.Stdout when nil).  The
// returned function flushes and shuts the provider down.
func InitOTel(serviceName, serviceVersion string, w io.Writer, level slog.Leveler) (func(context.Context) error, error) {
	if w == nil {
		w = os.Stdout
	}
	exporter, err := stdoutlog.New(stdoutlog.WithWriter(w))
	if err != nil {
		return nil, err
	}
	res, err := resource.New(context.Background(),
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
		),
	)
	if err != nil {
		return nil, err
	}
	provider := sdklog.NewLoggerProvider(
		sdklog.WithProcessor(sdklog.NewSimpleProcessor(exporter)),
		sdklog.WithResource(res),
	)
	global.SetLoggerProvider(provider)
	bridge := otelslog.NewHandler(instrumentationName, otelslog.WithLoggerProvider(provider))
	SetLogger(slog.New(&levelHandler{Handler: bridge, level: level}))
	return provider.Shutdown, nil
}

// ParseLevel parses "debug", "info", "warn" or "error"; empty means info.
func ParseLevel(level string) (slog.Level, error) {
	var ret slog.Level
	if level == "" {
		return ret, nil
	}
	err := ret.UnmarshalText([]byte(level))
	return ret, err
}

// New returns a text logger writing to w at level.
func New(w io.Writer, level string) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// levelHandler drops records below level before they reach the wrapped
// handler.
type levelHandler struct {
	slog.Handler
	level slog.Leveler
}

func (h *levelHandler) Enabled(ctx context.Context, level slog.Level) bool {
	if h.level != nil && level < h.level.Level() {
		return false
	}
	return h.Handler.Enabled(ctx, level)
}

func (h *levelHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &levelHandler{Handler: h.Handler.WithAttrs(attrs), level: h.level}
}

func (h *levelHandler) WithGroup(name string) slog.Handler {
	return &levelHandler{Handler: h.Handler.WithGroup(name), level: h.level}
}
