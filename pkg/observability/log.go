package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks writes every event to a logger at debug level. It implements
// all hook interfaces.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks that log through logger, prefixed "hooks".
func NewLogHooks(logger *log.Logger) *LogHooks {
	return &LogHooks{logger: logger.WithPrefix("hooks")}
}

var (
	_ PipelineHooks = (*LogHooks)(nil)
	_ CacheHooks    = (*LogHooks)(nil)
	_ ServerHooks   = (*LogHooks)(nil)
)

func (h *LogHooks) OnParseStart(_ context.Context, source string) {
	h.logger.Debug("parse start", "source", source)
}

func (h *LogHooks) OnParseComplete(_ context.Context, source string, tagCount int, d time.Duration, err error) {
	h.done("parse", err, "source", source, "tags", tagCount, "duration", d)
}

func (h *LogHooks) OnLayoutStart(_ context.Context, unit string, tagCount int) {
	h.logger.Debug("layout start", "unit", unit, "tags", tagCount)
}

func (h *LogHooks) OnLayoutComplete(_ context.Context, unit string, rowCount int, d time.Duration, err error) {
	h.done("layout", err, "unit", unit, "rows", rowCount, "duration", d)
}

func (h *LogHooks) OnRenderStart(_ context.Context, formats []string) {
	h.logger.Debug("render start", "formats", formats)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	h.done("render", err, "formats", formats, "duration", d)
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h *LogHooks) OnRequest(_ context.Context, requestID, method, route string) {
	h.logger.Debug("request", "id", requestID, "method", method, "route", route)
}

func (h *LogHooks) OnResponse(_ context.Context, requestID, method, route string, status int, d time.Duration) {
	h.logger.Debug("response", "id", requestID, "method", method, "route", route, "status", status, "duration", d)
}

func (h *LogHooks) done(stage string, err error, kv ...any) {
	if err != nil {
		h.logger.Debug(stage+" failed", append(kv, "err", err)...)
		return
	}
	h.logger.Debug(stage+" complete", kv...)
}
