package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks implements PipelineHooks, CacheHooks, and HTTPHooks by writing
// structured log lines. Stage starts log at debug level, completions at
// info (or error when the stage failed).
//
// Register at startup to trace pipeline execution:
//
//	hooks := observability.NewLogHooks(logger)
//	observability.SetPipelineHooks(hooks)
//	observability.SetCacheHooks(hooks)
//	observability.SetHTTPHooks(hooks)
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks creates logging hooks backed by logger.
// Pass nil to use the default logger.
func NewLogHooks(logger *log.Logger) *LogHooks {
	if logger == nil {
		logger = log.Default()
	}
	return &LogHooks{logger: logger}
}

func (h *LogHooks) OnLoadStart(ctx context.Context, source string) {
	h.logger.Debug("loading manifest", "source", source)
}

func (h *LogHooks) OnLoadComplete(ctx context.Context, source string, size int, duration time.Duration, err error) {
	if err != nil {
		h.logger.Error("load failed", "source", source, "error", err)
		return
	}
	h.logger.Info("manifest loaded", "source", source, "bytes", size, "duration", duration)
}

func (h *LogHooks) OnValidateStart(ctx context.Context, kind string) {
	h.logger.Debug("validating manifest", "kind", kind)
}

func (h *LogHooks) OnValidateComplete(ctx context.Context, kind string, duration time.Duration, err error) {
	if err != nil {
		h.logger.Error("validation failed", "kind", kind, "error", err)
		return
	}
	h.logger.Info("manifest valid", "kind", kind, "duration", duration)
}

func (h *LogHooks) OnBuildStart(ctx context.Context, kind string) {
	h.logger.Debug("building diagram", "kind", kind)
}

func (h *LogHooks) OnBuildComplete(ctx context.Context, kind string, nodeCount, edgeCount int, duration time.Duration, err error) {
	if err != nil {
		h.logger.Error("build failed", "kind", kind, "error", err)
		return
	}
	h.logger.Info("diagram built", "kind", kind, "nodes", nodeCount, "edges", edgeCount, "duration", duration)
}

func (h *LogHooks) OnRenderStart(ctx context.Context, kind string) {
	h.logger.Debug("rendering diagram", "kind", kind)
}

func (h *LogHooks) OnRenderComplete(ctx context.Context, kind string, size int, duration time.Duration, err error) {
	if err != nil {
		h.logger.Error("render failed", "kind", kind, "error", err)
		return
	}
	h.logger.Info("diagram rendered", "kind", kind, "bytes", size, "duration", duration)
}

func (h *LogHooks) OnCacheHit(ctx context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *LogHooks) OnCacheMiss(ctx context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *LogHooks) OnCacheSet(ctx context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h *LogHooks) OnRequest(ctx context.Context, method, host, path string) {
	h.logger.Debug("http request", "method", method, "host", host, "path", path)
}

func (h *LogHooks) OnResponse(ctx context.Context, method, host, path string, statusCode int, duration time.Duration) {
	h.logger.Debug("http response", "method", method, "host", host, "path", path, "status", statusCode, "duration", duration)
}

func (h *LogHooks) OnError(ctx context.Context, method, host, path string, err error) {
	h.logger.Error("http error", "method", method, "host", host, "path", path, "error", err)
}

// Interface conformance checks.
var (
	_ PipelineHooks = (*LogHooks)(nil)
	_ CacheHooks    = (*LogHooks)(nil)
	_ HTTPHooks     = (*LogHooks)(nil)
)
